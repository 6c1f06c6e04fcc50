package graphio

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotDegreeDistribution renders g's degree histogram to path, a diagnostic
// companion to the testable average-degree law in §8 rather than part of
// the core.
func PlotDegreeDistribution(g *Graph, bins int, path string) error {
	values := make(plotter.Values, g.n)
	for u := 0; u < g.n; u++ {
		values[u] = float64(g.Degree(int32(u)))
	}

	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "Degree distribution"
	p.X.Label.Text = "degree"
	p.Y.Label.Text = "count"

	hist, err := plotter.NewHist(values, bins)
	if err != nil {
		return err
	}
	p.Add(hist)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
