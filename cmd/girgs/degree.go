package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spatialmodel/girgs/girgsutil"
)

// attachDegreeCommand wires a RunE handler onto the degree subcommand
// girgsutil.InitializeConfig already built and registered flags for.
func attachDegreeCommand(cfg *girgsutil.Cfg) {
	cfg.DegreeCmd.RunE = func(cmd *cobra.Command, args []string) error {
		g, err := buildConfiguredGraph(cfg)
		if err != nil {
			return err
		}
		for u, d := range g.DegreeSequence() {
			fmt.Printf("%d\t%d\n", u, d)
		}
		return nil
	}
}
