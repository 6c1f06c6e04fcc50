package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spatialmodel/girgs"
	"github.com/spatialmodel/girgs/girgsutil"
	"github.com/spatialmodel/girgs/graphio"
	"github.com/spatialmodel/girgs/sampler"
)

// attachBuildCommands wires RunE handlers onto the girg/hrg subcommands
// that girgsutil.InitializeConfig already built and registered flags for.
func attachBuildCommands(cfg *girgsutil.Cfg) {
	cfg.GirgCmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cfg.GIRGOptions()
		g := graphio.New(opts.N)
		stats, err := girgs.GenerateGIRG(opts, g.Collector())
		if err != nil {
			return err
		}
		return reportGraph(cfg, g, stats)
	}

	cfg.HrgCmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cfg.HRGOptions()
		g := graphio.New(opts.N)
		stats, err := girgs.GenerateHRG(opts, g.Collector())
		if err != nil {
			return err
		}
		return reportGraph(cfg, g, stats)
	}
}

// reportGraph writes the built graph to the configured output file (DOT
// format), or prints a one-line summary to stdout when no output path was
// given.
func reportGraph(cfg *girgsutil.Cfg, g *graphio.Graph, stats sampler.Stats) error {
	if out := cfg.OutputFile(); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("girgs: creating output file: %v", err)
		}
		defer f.Close()
		if err := graphio.WriteDOT(f, g, "girgs"); err != nil {
			return fmt.Errorf("girgs: writing DOT output: %v", err)
		}
		fmt.Printf("wrote %s (%d nodes, %d edges)\n", out, g.N(), g.M())
		return nil
	}
	fmt.Printf("%d nodes, %d edges, average degree %.2f (checks: %d type I, %d type II)\n",
		g.N(), g.M(), g.AverageDegree(), stats.TypeIChecks, stats.TypeIIChecks)
	return nil
}
