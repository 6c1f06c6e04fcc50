// Command girgs is a command-line interface for generating geometric
// inhomogeneous and hyperbolic random graphs.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spatialmodel/girgs"
	"github.com/spatialmodel/girgs/girgsutil"
)

var cfg *girgsutil.Cfg

func main() {
	cfg = girgsutil.InitializeConfig()

	loadConfig := cfg.Root.PersistentPreRunE
	cfg.Root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd, args); err != nil {
			return err
		}
		if cfg.Verbose() {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	attachBuildCommands(cfg)
	attachDegreeCommand(cfg)
	attachPlotCommand(cfg)

	if err := cfg.Root.Execute(); err != nil {
		fmt.Println(labelErr(err))
		os.Exit(1)
	}
}

func labelErr(err error) error {
	if err != nil {
		return fmt.Errorf("girgs: %v", err)
	}
	return nil
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	girgs.Logger = logrus.StandardLogger()
}
