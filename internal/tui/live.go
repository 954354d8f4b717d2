// Package tui animates a computed trajectory in the terminal.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/battedball/internal/flight"
)

const (
	canvasWidth  = 72
	canvasHeight = 18
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	metricLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	metricValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	keyHint     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true)
)

type tickMsg time.Time

type model struct {
	samples []flight.Sample
	idx     int
	step    int
	fps     int
	maxDist float64
	maxZ    float64
	landed  bool
}

func newModel(samples []flight.Sample, fps int) model {
	maxDist, maxZ := 1.0, 1.0
	for _, s := range samples {
		maxDist = math.Max(maxDist, math.Hypot(s.Pos[0], s.Pos[1]))
		maxZ = math.Max(maxZ, s.Pos[2])
	}

	// Advance enough samples per frame to play back in roughly real time.
	step := 1
	if len(samples) > 1 && fps > 0 {
		dt := samples[1].T - samples[0].T
		if dt > 0 {
			step = int(1.0 / (float64(fps) * dt))
			if step < 1 {
				step = 1
			}
		}
	}

	return model{samples: samples, step: step, fps: fps, maxDist: maxDist, maxZ: maxZ}
}

// Run plays back the trajectory at the given frame rate until it lands or
// the user quits.
func Run(samples []flight.Sample, fps int) error {
	if len(samples) == 0 {
		return fmt.Errorf("no samples to display")
	}
	if fps <= 0 {
		fps = 30
	}
	_, err := tea.NewProgram(newModel(samples, fps)).Run()
	return err
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		if m.idx < len(m.samples)-1 {
			m.idx += m.step
			if m.idx >= len(m.samples)-1 {
				m.idx = len(m.samples) - 1
				m.landed = true
			}
			return m, m.tick()
		}
		m.landed = true
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("batted ball: live flight"))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(m.renderCanvas()))
	b.WriteString("\n")

	cur := m.samples[m.idx]
	dist := math.Hypot(cur.Pos[0], cur.Pos[1])
	speed := math.Sqrt(cur.Vel[0]*cur.Vel[0] + cur.Vel[1]*cur.Vel[1] + cur.Vel[2]*cur.Vel[2])

	metrics := fmt.Sprintf("%s %s   %s %s   %s %s   %s %s",
		metricLabel.Render("t"), metricValue.Render(fmt.Sprintf("%5.2fs", cur.T)),
		metricLabel.Render("dist"), metricValue.Render(fmt.Sprintf("%6.1fm", dist)),
		metricLabel.Render("height"), metricValue.Render(fmt.Sprintf("%5.1fm", cur.Pos[2])),
		metricLabel.Render("speed"), metricValue.Render(fmt.Sprintf("%5.1fm/s", speed)),
	)
	b.WriteString(metrics)
	b.WriteString("\n")

	if m.landed {
		b.WriteString(keyHint.Render("landed - press q to exit"))
	} else {
		b.WriteString(keyHint.Render("q: quit"))
	}
	b.WriteString("\n")

	return b.String()
}

// renderCanvas draws the side view: horizontal distance left to right,
// height bottom to top, with a trail behind the ball.
func (m model) renderCanvas() string {
	grid := make([][]rune, canvasHeight)
	for i := range grid {
		grid[i] = make([]rune, canvasWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	plot := func(s flight.Sample, c rune) {
		dist := math.Hypot(s.Pos[0], s.Pos[1])
		col := int(dist / m.maxDist * float64(canvasWidth-1))
		row := canvasHeight - 1 - int(s.Pos[2]/m.maxZ*float64(canvasHeight-1))
		if col >= 0 && col < canvasWidth && row >= 0 && row < canvasHeight {
			grid[row][col] = c
		}
	}

	for i := 0; i < m.idx; i++ {
		plot(m.samples[i], '·')
	}
	plot(m.samples[m.idx], '●')

	// Ground line.
	for j := 0; j < canvasWidth; j++ {
		if grid[canvasHeight-1][j] == ' ' {
			grid[canvasHeight-1][j] = '─'
		}
	}

	rows := make([]string, canvasHeight)
	for i, r := range grid {
		rows[i] = string(r)
	}
	return strings.Join(rows, "\n")
}
