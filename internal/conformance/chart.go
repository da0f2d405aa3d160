package conformance

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RenderChart draws CycleTable as a bar chart (NotTaken cost per opcode,
// in table order) and saves it as a PNG at path, alongside the textual
// table spec §4.4.11 requires.
func RenderChart(table []CycleEntry, path string) error {
	p := plot.New()
	p.Title.Text = "SM83 per-opcode cycle cost"
	p.Y.Label.Text = "M-cycles"

	values := make(plotter.Values, len(table))
	for i, entry := range table {
		values[i] = float64(entry.NotTaken)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(3))
	if err != nil {
		return err
	}
	p.Add(bars)

	return p.Save(12*vg.Inch, 4*vg.Inch, path)
}
