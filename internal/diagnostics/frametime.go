// Package diagnostics renders offline PNG charts of frame timing and PPU
// mode occupancy, for a caller that wants to inspect a run after the fact
// without a live window attached.
package diagnostics

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteFrameTimingChart renders cycles - the per-frame clock-cycle
// counts a caller has been accumulating - as a line chart to path, in PNG
// form.
func WriteFrameTimingChart(path string, cycles []int) error {
	p := plot.New()
	p.Title.Text = "frame cycle counts"
	p.X.Label.Text = "frame"
	p.Y.Label.Text = "cycles"

	points := make(plotter.XYs, len(cycles))
	for i, c := range cycles {
		points[i].X = float64(i)
		points[i].Y = float64(c)
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("diagnostics: building line plotter: %w", err)
	}
	p.Add(line)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("diagnostics: creating %s: %w", path, err)
	}
	defer f.Close()

	writer, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("diagnostics: rendering chart: %w", err)
	}
	_, err = writer.WriteTo(f)
	return err
}

// WriteModeHistogram renders a histogram of how many cycles the PPU spent
// in each of its four modes across a run, as a PNG at path.
func WriteModeHistogram(path string, modeCycles [4]int) error {
	p := plot.New()
	p.Title.Text = "PPU mode-cycle distribution"
	p.Y.Label.Text = "cycles"

	values := make(plotter.Values, 4)
	for i, v := range modeCycles {
		values[i] = float64(v)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("diagnostics: building bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX("H-blank", "V-blank", "OAM", "VRAM")

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("diagnostics: creating %s: %w", path, err)
	}
	defer f.Close()

	writer, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("diagnostics: rendering chart: %w", err)
	}
	_, err = writer.WriteTo(f)
	return err
}
