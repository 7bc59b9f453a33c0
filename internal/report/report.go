// Package report renders headless flock runs for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lao-tseu-is-alive/go-boids/internal/host"
)

const (
	plotHeight = 10
	plotWidth  = 80
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// Write prints a summary of the last sample followed by the mean and max
// speed series. Series are only plotted once there are two points.
func Write(w io.Writer, title string, samples []host.Sample) error {
	if len(samples) == 0 {
		_, err := fmt.Fprintln(w, "no samples")
		return err
	}
	last := samples[len(samples)-1]

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	rows := [][2]string{
		{"ticks", fmt.Sprintf("%d", last.Tick)},
		{"boids", fmt.Sprintf("%d", last.Count)},
		{"mean speed", fmt.Sprintf("%.2f", last.MeanSpeed)},
		{"max speed", fmt.Sprintf("%.2f", last.MaxSpeed)},
		{"centroid", fmt.Sprintf("(%.1f, %.1f)", last.Centroid.X, last.Centroid.Y)},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r[0]))
		b.WriteString(valueStyle.Render(r[1]))
		b.WriteString("\n")
	}
	if _, err := fmt.Fprintln(w, panelStyle.Render(strings.TrimRight(b.String(), "\n"))); err != nil {
		return err
	}

	if len(samples) < 2 {
		return nil
	}
	for _, s := range []struct {
		caption string
		pick    func(host.Sample) float64
	}{
		{"mean speed per sample", func(s host.Sample) float64 { return s.MeanSpeed }},
		{"max speed per sample", func(s host.Sample) float64 { return s.MaxSpeed }},
	} {
		graph := asciigraph.Plot(Series(samples, s.pick),
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(s.caption),
		)
		if _, err := fmt.Fprintf(w, "\n%s\n", graph); err != nil {
			return err
		}
	}
	return nil
}

// Title names a run after the flock it started with and the frames it ran.
func Title(samples []host.Sample, dt time.Duration) string {
	if len(samples) == 0 {
		return "empty run"
	}
	return fmt.Sprintf("%d boids, %d ticks of %v", samples[0].Count, samples[len(samples)-1].Tick, dt)
}

// Series extracts one value per sample.
func Series(samples []host.Sample, pick func(host.Sample) float64) []float64 {
	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = pick(s)
	}
	return data
}
