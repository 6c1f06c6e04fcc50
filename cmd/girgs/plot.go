package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spatialmodel/girgs/girgsutil"
	"github.com/spatialmodel/girgs/graphio"
)

// attachPlotCommand wires a RunE handler onto the plot subcommand
// girgsutil.InitializeConfig already built and registered flags for.
func attachPlotCommand(cfg *girgsutil.Cfg) {
	cfg.PlotCmd.RunE = func(cmd *cobra.Command, args []string) error {
		g, err := buildConfiguredGraph(cfg)
		if err != nil {
			return err
		}
		if err := graphio.PlotDegreeDistribution(g, cfg.Bins(), cfg.PlotFile()); err != nil {
			return fmt.Errorf("girgs: rendering degree distribution: %v", err)
		}
		fmt.Printf("wrote %s\n", cfg.PlotFile())
		return nil
	}
}
