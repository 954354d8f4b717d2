package main

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/battedball/internal/aero"
	"github.com/san-kum/battedball/internal/batch"
	"github.com/san-kum/battedball/internal/config"
	"github.com/san-kum/battedball/internal/export"
	"github.com/san-kum/battedball/internal/fielding"
	"github.com/san-kum/battedball/internal/flight"
	"github.com/san-kum/battedball/internal/groundball"
	"github.com/san-kum/battedball/internal/storage"
	"github.com/san-kum/battedball/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string

	dt          float64
	maxTime     float64
	groundLevel float64
	airDensity  float64
	crossArea   float64

	launchX, launchY, launchZ    float64
	launchVX, launchVY, launchVZ float64
	spinAxisX, spinAxisY         float64
	spinAxisZ                    float64
	spinRPM                      float64
	windX, windY, windZ          float64

	saveRun bool
	fps     int
	outFile string

	// ground ball / interception
	gbX, gbY                float64
	gbVX, gbVY, gbVZ        float64
	gbSpin                  float64
	surfaceName             string
	fielderSpecs            []string
	exitVelocity            float64
	groundChart             string

	// batch
	batchN       int
	batchSeed    int64
	batchWorkers int
)

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "battedball",
		Short: "batted-ball flight and ground-ball simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".battedball", "data directory")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "integrate one airborne trajectory",
		RunE:  runSimulate,
	}
	addFlightFlags(simulateCmd)
	simulateCmd.Flags().BoolVar(&saveRun, "save", false, "save run to the data directory")

	groundballCmd := &cobra.Command{
		Use:   "groundball",
		Short: "simulate a ground ball's bounce and roll",
		RunE:  runGroundBall,
	}
	addGroundFlags(groundballCmd)
	groundballCmd.Flags().StringVar(&groundChart, "chart", "", "write an HTML chart of the rolling path")

	interceptCmd := &cobra.Command{
		Use:   "intercept",
		Short: "find where fielders can cut off a ground ball",
		RunE:  runIntercept,
	}
	addGroundFlags(interceptCmd)
	interceptCmd.Flags().StringArrayVar(&fielderSpecs, "fielder", nil, "fielder as x,y,speed,reaction (ft, ft/s, s); repeatable")
	interceptCmd.Flags().Float64Var(&exitVelocity, "exit-velocity", 95.0, "exit velocity off the bat (mph)")

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "integrate many random trajectories in parallel",
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&batchN, "n", 1000, "number of trajectories")
	batchCmd.Flags().Int64Var(&batchSeed, "seed", time.Now().UnixNano(), "random seed")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "worker count (0 = all cores)")
	batchCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	batchCmd.Flags().Float64Var(&maxTime, "time", config.DefaultMaxTime, "max flight time (s)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  runList,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	chartCmd := &cobra.Command{
		Use:   "chart [run_id]",
		Short: "write an HTML chart of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  runChart,
	}
	chartCmd.Flags().StringVar(&outFile, "out", "", "output file (default <run_id>.html)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate a trajectory in the terminal",
		RunE:  runLive,
	}
	addFlightFlags(liveCmd)
	liveCmd.Flags().IntVar(&fps, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list launch presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(simulateCmd, groundballCmd, interceptCmd, batchCmd, listCmd, plotCmd, exportCmd, chartCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addFlightFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	cmd.Flags().Float64Var(&maxTime, "time", config.DefaultMaxTime, "max flight time (s)")
	cmd.Flags().Float64Var(&groundLevel, "ground", 0.0, "ground level (m)")
	cmd.Flags().Float64Var(&airDensity, "density", config.DefaultAirDensity, "air density (kg/m^3)")
	cmd.Flags().Float64Var(&crossArea, "area", config.DefaultCrossArea, "cross-sectional area (m^2)")
	cmd.Flags().Float64Var(&launchX, "x", 0, "launch x (m)")
	cmd.Flags().Float64Var(&launchY, "y", 0, "launch y (m)")
	cmd.Flags().Float64Var(&launchZ, "z", 1.0, "launch height (m)")
	cmd.Flags().Float64Var(&launchVX, "vx", 0, "launch vx (m/s)")
	cmd.Flags().Float64Var(&launchVY, "vy", 40, "launch vy (m/s)")
	cmd.Flags().Float64Var(&launchVZ, "vz", 20, "launch vz (m/s)")
	cmd.Flags().Float64Var(&spinAxisX, "spin-x", 1, "spin axis x")
	cmd.Flags().Float64Var(&spinAxisY, "spin-y", 0, "spin axis y")
	cmd.Flags().Float64Var(&spinAxisZ, "spin-z", 0, "spin axis z")
	cmd.Flags().Float64Var(&spinRPM, "spin", 1800, "spin rate (rpm)")
	cmd.Flags().Float64Var(&windX, "wind-x", 0, "wind x at 10m (m/s)")
	cmd.Flags().Float64Var(&windY, "wind-y", 0, "wind y at 10m (m/s)")
	cmd.Flags().Float64Var(&windZ, "wind-z", 0, "wind z at 10m (m/s)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "launch preset")
}

func addGroundFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&gbX, "x", 0, "start x (ft)")
	cmd.Flags().Float64Var(&gbY, "y", 0, "start y (ft)")
	cmd.Flags().Float64Var(&gbVX, "vx", 80, "velocity x (mph)")
	cmd.Flags().Float64Var(&gbVY, "vy", 0, "velocity y (mph)")
	cmd.Flags().Float64Var(&gbVZ, "vz", -5, "velocity z (mph)")
	cmd.Flags().Float64Var(&gbSpin, "spin", 1500, "spin rate (rpm)")
	cmd.Flags().StringVar(&surfaceName, "surface", "grass", "surface (grass or dirt)")
}

// resolveFlightConfig layers preset, config file and explicitly set flags,
// flags winning.
func resolveFlightConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	setIf := func(name string, dst *float64, v float64) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	setIf("dt", &cfg.Dt, dt)
	setIf("time", &cfg.MaxTime, maxTime)
	setIf("ground", &cfg.GroundLevel, groundLevel)
	setIf("density", &cfg.AirDensity, airDensity)
	setIf("area", &cfg.CrossArea, crossArea)
	setIf("x", &cfg.Launch.X, launchX)
	setIf("y", &cfg.Launch.Y, launchY)
	setIf("z", &cfg.Launch.Z, launchZ)
	setIf("vx", &cfg.Launch.VX, launchVX)
	setIf("vy", &cfg.Launch.VY, launchVY)
	setIf("vz", &cfg.Launch.VZ, launchVZ)
	setIf("spin-x", &cfg.Launch.SpinAxisX, spinAxisX)
	setIf("spin-y", &cfg.Launch.SpinAxisY, spinAxisY)
	setIf("spin-z", &cfg.Launch.SpinAxisZ, spinAxisZ)
	setIf("spin", &cfg.Launch.SpinRPM, spinRPM)
	setIf("wind-x", &cfg.Wind.X, windX)
	setIf("wind-y", &cfg.Wind.Y, windY)
	setIf("wind-z", &cfg.Wind.Z, windZ)

	return cfg, nil
}

func flightParams(cfg *config.Config) *flight.Params {
	var wind aero.WindModel
	if cfg.Wind.X != 0 || cfg.Wind.Y != 0 || cfg.Wind.Z != 0 {
		wind = aero.NewShear(aero.Vec3{cfg.Wind.X, cfg.Wind.Y, cfg.Wind.Z})
	}
	return &flight.Params{
		SpinAxis:   aero.Vec3{cfg.Launch.SpinAxisX, cfg.Launch.SpinAxisY, cfg.Launch.SpinAxisZ},
		SpinRPM:    cfg.Launch.SpinRPM,
		AirDensity: cfg.AirDensity,
		CrossArea:  cfg.CrossArea,
		Table:      aero.DefaultTable(),
		Wind:       wind,
	}
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveFlightConfig(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	samples, err := flight.Integrate(cfg.LaunchState(), cfg.Dt, cfg.MaxTime, cfg.GroundLevel, flightParams(cfg))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	summary := flight.Summarize(samples)
	last := samples[len(samples)-1]
	landingSpeed := math.Sqrt(last.Vel[0]*last.Vel[0] + last.Vel[1]*last.Vel[1] + last.Vel[2]*last.Vel[2])

	fmt.Printf("integrated %d samples in %v\n\n", len(samples), elapsed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "hang time\t%.3f s\n", summary.LandingTime)
	fmt.Fprintf(w, "distance\t%.1f m\n", summary.Distance)
	fmt.Fprintf(w, "apex\t%.1f m\n", summary.Apex)
	fmt.Fprintf(w, "landing\t(%.1f, %.1f) m\n", summary.Landing[0], summary.Landing[1])
	fmt.Fprintf(w, "landing speed\t%.1f m/s\n", landingSpeed)
	w.Flush()

	fmt.Println()
	heights := make([]float64, len(samples))
	for i, s := range samples {
		heights[i] = s.Pos[2]
	}
	fmt.Println(asciigraph.Plot(heights,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("height (m) vs step"),
	))

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(storage.RunMetadata{
			Name:        "flight",
			Dt:          cfg.Dt,
			MaxTime:     cfg.MaxTime,
			SpinRPM:     cfg.Launch.SpinRPM,
			AirDensity:  cfg.AirDensity,
			WindSpeed:   math.Sqrt(cfg.Wind.X*cfg.Wind.X + cfg.Wind.Y*cfg.Wind.Y + cfg.Wind.Z*cfg.Wind.Z),
			LandingTime: summary.LandingTime,
			Distance:    summary.Distance,
			Apex:        summary.Apex,
		}, samples)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func parseSurface() (groundball.Surface, error) {
	switch surfaceName {
	case "", "grass":
		return groundball.Grass, nil
	case "dirt":
		return groundball.Dirt, nil
	default:
		return groundball.Grass, fmt.Errorf("unknown surface: %s", surfaceName)
	}
}

func runGroundBall(cmd *cobra.Command, args []string) error {
	surface, err := parseSurface()
	if err != nil {
		return err
	}

	gb := groundball.Simulate(gbX, gbY, gbVX, gbVY, gbVZ, gbSpin, surface)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "surface\t%s\n", surface)
	fmt.Fprintf(w, "rolling from\t(%.1f, %.1f) ft\n", gb.Landing[0], gb.Landing[1])
	fmt.Fprintf(w, "rolling speed\t%.1f mph\n", gb.LandingSpeed)
	fmt.Fprintf(w, "direction\t(%.3f, %.3f)\n", gb.Direction[0], gb.Direction[1])
	fmt.Fprintf(w, "bounce time\t%.3f s\n", gb.LandingTime)
	fmt.Fprintf(w, "stop after\t%.2f s rolling\n", gb.StopTime())
	w.Flush()

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "t (s)\tx (ft)\ty (ft)\tspeed (mph)")
	stop := gb.StopTime()
	for t := 0.0; t <= stop+0.25; t += 0.5 {
		pos, speed := gb.PositionAt(t)
		fmt.Fprintf(w, "%.1f\t%.1f\t%.1f\t%.1f\n", t, pos[0], pos[1], speed)
	}
	w.Flush()

	if groundChart != "" {
		if err := export.WriteGroundPathChart(groundChart, gb); err != nil {
			return err
		}
		fmt.Printf("\nchart written to %s\n", groundChart)
	}

	return nil
}

func parseFielders() ([]fielding.Profile, error) {
	if len(fielderSpecs) == 0 {
		// Shortstop-ish default.
		return []fielding.Profile{{X: 40, Y: 110, SprintSpeed: 27, ReactionTime: 0.3}}, nil
	}

	profiles := make([]fielding.Profile, 0, len(fielderSpecs))
	for _, spec := range fielderSpecs {
		parts := strings.Split(spec, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("fielder %q: want x,y,speed,reaction", spec)
		}
		vals := make([]float64, 4)
		for i, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, fmt.Errorf("fielder %q: %w", spec, err)
			}
			vals[i] = v
		}
		profiles = append(profiles, fielding.Profile{
			X: vals[0], Y: vals[1], SprintSpeed: vals[2], ReactionTime: vals[3],
		})
	}
	return profiles, nil
}

func runIntercept(cmd *cobra.Command, args []string) error {
	surface, err := parseSurface()
	if err != nil {
		return err
	}
	fielders, err := parseFielders()
	if err != nil {
		return err
	}

	gb := groundball.Simulate(gbX, gbY, gbVX, gbVY, gbVZ, gbSpin, surface)

	var (
		outcome fielding.Outcome
		bestIdx int
	)
	if len(fielders) == 1 {
		outcome = fielding.FindInterception(gb, fielders[0], exitVelocity)
		bestIdx = 0
	} else {
		bestIdx, outcome = fielding.FindBestInterception(gb, fielders, exitVelocity)
	}

	if outcome.CanIntercept {
		fmt.Println(okStyle.Render("reachable"))
	} else {
		fmt.Println(failStyle.Render("not reachable"))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if len(fielders) > 1 {
		fmt.Fprintf(w, "best fielder\t#%d\n", bestIdx)
	}
	fmt.Fprintf(w, "interception point\t(%.1f, %.1f) ft\n", outcome.Point[0], outcome.Point[1])
	fmt.Fprintf(w, "fielder arrives\t%.2f s\n", outcome.FielderTime)
	fmt.Fprintf(w, "ball arrives\t%.2f s\n", outcome.BallTime)
	fmt.Fprintf(w, "margin\t%+.2f s\n", outcome.Margin)
	fmt.Fprintf(w, "ball speed there\t%.1f mph\n", outcome.BallSpeedMPH)
	return w.Flush()
}

func runBatch(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(batchSeed))

	states := make([]flight.State, batchN)
	spins := make([]batch.Spin, batchN)
	for i := 0; i < batchN; i++ {
		speed := 30.0 + 20.0*rng.Float64()              // m/s
		launch := (-5.0 + 50.0*rng.Float64()) * math.Pi / 180
		spray := (-45.0 + 90.0*rng.Float64()) * math.Pi / 180

		horiz := speed * math.Cos(launch)
		states[i] = flight.State{
			0, 0, 1.0,
			horiz * math.Sin(spray),
			horiz * math.Cos(spray),
			speed * math.Sin(launch),
		}
		spins[i] = batch.Spin{
			Axis: aero.Vec3{1, 0, 0},
			RPM:  1000 + 2000*rng.Float64(),
		}
	}

	pool := batch.NewPool(batchWorkers)
	job := batch.Job{
		States:     states,
		Spins:      spins,
		Dt:         dt,
		MaxTime:    maxTime,
		AirDensity: config.DefaultAirDensity,
		CrossArea:  config.DefaultCrossArea,
		Table:      aero.DefaultTable(),
	}

	start := time.Now()
	summaries, err := pool.Integrate(job)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	stats := batch.Summarize(summaries)

	fmt.Printf("%d trajectories on %d workers in %v (%.0f/s)\n\n",
		batchN, pool.Workers(), elapsed, float64(batchN)/elapsed.Seconds())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "mean distance\t%.1f m\n", stats.MeanDistance)
	fmt.Fprintf(w, "max distance\t%.1f m\n", stats.MaxDistance)
	fmt.Fprintf(w, "mean hang time\t%.2f s\n", stats.MeanHangTime)
	fmt.Fprintf(w, "mean apex\t%.1f m\n", stats.MeanApex)
	fmt.Fprintf(w, "max apex\t%.1f m\n", stats.MaxApex)
	return w.Flush()
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tHANG\tDIST\tAPEX\tSPIN")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2fs\t%.1fm\t%.1fm\t%.0frpm\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.LandingTime,
			run.Distance,
			run.Apex,
			run.SpinRPM,
		)
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(samples))

	heights := make([]float64, len(samples))
	dists := make([]float64, len(samples))
	for i, s := range samples {
		heights[i] = s.Pos[2]
		dists[i] = math.Hypot(s.Pos[0], s.Pos[1])
	}

	fmt.Println(asciigraph.Plot(heights,
		asciigraph.Height(10), asciigraph.Width(80),
		asciigraph.Caption("height (m)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(dists,
		asciigraph.Height(10), asciigraph.Width(80),
		asciigraph.Caption("horizontal distance (m)"),
	))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func runChart(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	out := outFile
	if out == "" {
		out = args[0] + ".html"
	}
	if err := export.WriteFlightChart(out, samples); err != nil {
		return err
	}
	fmt.Printf("chart written to %s\n", out)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveFlightConfig(cmd)
	if err != nil {
		return err
	}

	samples, err := flight.Integrate(cfg.LaunchState(), cfg.Dt, cfg.MaxTime, cfg.GroundLevel, flightParams(cfg))
	if err != nil {
		return err
	}

	return tui.Run(samples, fps)
}
