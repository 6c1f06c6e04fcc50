package main

import (
	"fmt"

	"github.com/spatialmodel/girgs"
	"github.com/spatialmodel/girgs/girgsutil"
	"github.com/spatialmodel/girgs/graphio"
)

// buildConfiguredGraph builds the graph named by the "model" option,
// shared by the degree and plot commands, which both operate on a graph
// rather than a raw edge stream.
func buildConfiguredGraph(cfg *girgsutil.Cfg) (*graphio.Graph, error) {
	switch model := cfg.Model(); model {
	case "girg":
		opts := cfg.GIRGOptions()
		g := graphio.New(opts.N)
		if _, err := girgs.GenerateGIRG(opts, g.Collector()); err != nil {
			return nil, err
		}
		return g, nil
	case "hrg":
		opts := cfg.HRGOptions()
		g := graphio.New(opts.N)
		if _, err := girgs.GenerateHRG(opts, g.Collector()); err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("girgs: unknown model %q, want girg or hrg", model)
	}
}
