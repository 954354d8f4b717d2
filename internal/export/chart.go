// Package export renders trajectories and ground-ball paths to standalone
// HTML charts.
package export

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/san-kum/battedball/internal/flight"
	"github.com/san-kum/battedball/internal/groundball"
)

// WriteFlightChart writes a side-view (horizontal distance vs height) line
// chart of the trajectory to path.
func WriteFlightChart(path string, samples []flight.Sample) error {
	if len(samples) == 0 {
		return fmt.Errorf("no samples to chart")
	}

	data := make([]opts.LineData, 0, len(samples))
	xs := make([]string, 0, len(samples))
	for _, s := range samples {
		dist := horizontal(s.Pos)
		xs = append(xs, fmt.Sprintf("%.1f", dist))
		data = append(data, opts.LineData{Value: s.Pos[2]})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Batted Ball Flight", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Batted ball flight",
			Subtitle: fmt.Sprintf("samples=%d hang=%.2fs", len(samples), samples[len(samples)-1].T),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "distance (m)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "height (m)"}),
	)
	line.SetXAxis(xs)
	line.AddSeries("height", data, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}

// WriteGroundPathChart writes an overhead scatter of the rolling path,
// sampled every 100 ms until the ball stops.
func WriteGroundPathChart(path string, gb groundball.State) error {
	data := make([]opts.ScatterData, 0, 64)
	stop := gb.StopTime()
	for t := 0.0; t <= stop; t += 0.1 {
		pos, speed := gb.PositionAt(t)
		data = append(data, opts.ScatterData{Value: []interface{}{pos[0], pos[1], speed}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Ground Ball Path", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Ground ball path",
			Subtitle: fmt.Sprintf("landing speed=%.1f mph stop=%.2fs", gb.LandingSpeed, stop),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "X (ft)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Y (ft)"}),
	)
	scatter.AddSeries("path", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 5}))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return scatter.Render(f)
}

func horizontal(pos [3]float64) float64 {
	return math.Hypot(pos[0], pos[1])
}
