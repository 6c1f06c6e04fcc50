// Package girgsutil holds configuration types shared by the girgs library
// and its command-line driver, mirroring inmaputil's Cfg: a *viper.Viper
// wrapped with cobra commands and typed accessors over the command-line
// flags and an optional TOML config file.
package girgsutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/girgs"
)

// Cfg holds the configuration state for the girgs CLI: a viper instance
// bound to the command tree's flags, plus the commands themselves so that
// cmd/girgs only has to wire up Run funcs.
type Cfg struct {
	*viper.Viper

	Root                      *cobra.Command
	BuildCmd, GirgCmd, HrgCmd *cobra.Command
	DegreeCmd, PlotCmd        *cobra.Command
}

// option describes one configuration variable: its viper key, a usage
// string for --help, a default value (which also determines the pflag
// type to register), and the flag sets it should appear on.
var options []struct {
	name, usage string
	defaultVal  interface{}
	flagsets    []*pflag.FlagSet
}

// InitializeConfig builds the girgs command tree and registers every
// configuration option from the options table onto the flag sets of the
// commands that use it, binding each flag into the returned Cfg's viper
// instance.
func InitializeConfig() *Cfg {
	cfg := &Cfg{Viper: viper.New()}

	cfg.Root = &cobra.Command{
		Use:   "girgs",
		Short: "Generate geometric inhomogeneous and hyperbolic random graphs.",
		Long: `girgs generates random graphs in expected linear time from two models:
Geometric Inhomogeneous Random Graphs (GIRGs) on the D-dimensional torus,
and Hyperbolic Random Graphs (HRGs) in native disk representation.

Configuration can be set via a TOML config file (--config), command-line
flags, or environment variables prefixed GIRGS_.`,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return setConfig(cfg)
		},
	}

	cfg.BuildCmd = &cobra.Command{
		Use:   "build",
		Short: "Build a random graph.",
		Long:  "build samples a graph from one of the supported models. Use a model subcommand.",
		DisableAutoGenTag: true,
	}

	cfg.GirgCmd = &cobra.Command{
		Use:   "girg",
		Short: "Build a geometric inhomogeneous random graph.",
		DisableAutoGenTag: true,
	}

	cfg.HrgCmd = &cobra.Command{
		Use:   "hrg",
		Short: "Build a hyperbolic random graph.",
		DisableAutoGenTag: true,
	}

	cfg.DegreeCmd = &cobra.Command{
		Use:   "degree",
		Short: "Build a graph and report its degree sequence.",
		DisableAutoGenTag: true,
	}

	cfg.PlotCmd = &cobra.Command{
		Use:   "plot",
		Short: "Build a graph and render its degree-distribution histogram.",
		DisableAutoGenTag: true,
	}

	cfg.Root.AddCommand(cfg.BuildCmd, cfg.DegreeCmd, cfg.PlotCmd)
	cfg.BuildCmd.AddCommand(cfg.GirgCmd, cfg.HrgCmd)

	cfg.SetEnvPrefix("GIRGS")
	cfg.AutomaticEnv()

	options = []struct {
		name, usage string
		defaultVal  interface{}
		flagsets    []*pflag.FlagSet
	}{
		{name: "config", usage: "path to a TOML configuration file", defaultVal: "", flagsets: []*pflag.FlagSet{cfg.Root.PersistentFlags()}},
		{name: "n", usage: "number of nodes", defaultVal: 1000, flagsets: []*pflag.FlagSet{cfg.GirgCmd.Flags(), cfg.HrgCmd.Flags(), cfg.DegreeCmd.Flags(), cfg.PlotCmd.Flags()}},
		{name: "dimension", usage: "torus dimension (GIRG only)", defaultVal: 2, flagsets: []*pflag.FlagSet{cfg.GirgCmd.Flags(), cfg.DegreeCmd.Flags(), cfg.PlotCmd.Flags()}},
		{name: "ple", usage: "power-law exponent of the weight sequence (GIRG only)", defaultVal: 2.5, flagsets: []*pflag.FlagSet{cfg.GirgCmd.Flags(), cfg.DegreeCmd.Flags(), cfg.PlotCmd.Flags()}},
		{name: "alpha", usage: "inverse temperature (GIRG: <=0 selects the threshold model; HRG: radial concentration, must be >0)", defaultVal: 1.0, flagsets: []*pflag.FlagSet{cfg.GirgCmd.Flags(), cfg.HrgCmd.Flags(), cfg.DegreeCmd.Flags(), cfg.PlotCmd.Flags()}},
		{name: "temperature", usage: "sigmoid temperature; 0 selects the threshold model (HRG only)", defaultVal: 0.0, flagsets: []*pflag.FlagSet{cfg.HrgCmd.Flags(), cfg.DegreeCmd.Flags(), cfg.PlotCmd.Flags()}},
		{name: "avgdegree", usage: "desired average degree, used to calibrate the model's scaling constant", defaultVal: 10.0, flagsets: []*pflag.FlagSet{cfg.GirgCmd.Flags(), cfg.HrgCmd.Flags(), cfg.DegreeCmd.Flags(), cfg.PlotCmd.Flags()}},
		{name: "threads", usage: "number of sampler worker goroutines", defaultVal: 1, flagsets: []*pflag.FlagSet{cfg.GirgCmd.Flags(), cfg.HrgCmd.Flags(), cfg.DegreeCmd.Flags(), cfg.PlotCmd.Flags()}},
		{name: "seed", usage: "base random seed; the three generators are seeded with seed, seed+1 and seed+2, and a negative generator seed draws from hardware entropy", defaultVal: int64(1), flagsets: []*pflag.FlagSet{cfg.GirgCmd.Flags(), cfg.HrgCmd.Flags(), cfg.DegreeCmd.Flags(), cfg.PlotCmd.Flags()}},
		{name: "output", usage: "output DOT file path; empty prints a summary to stdout", defaultVal: "", flagsets: []*pflag.FlagSet{cfg.GirgCmd.Flags(), cfg.HrgCmd.Flags()}},
		{name: "model", usage: "which model to build before reporting: girg or hrg", defaultVal: "girg", flagsets: []*pflag.FlagSet{cfg.DegreeCmd.Flags(), cfg.PlotCmd.Flags()}},
		{name: "plotfile", usage: "output image path for the degree-distribution histogram", defaultVal: "degree.png", flagsets: []*pflag.FlagSet{cfg.PlotCmd.Flags()}},
		{name: "bins", usage: "number of histogram bins", defaultVal: 20, flagsets: []*pflag.FlagSet{cfg.PlotCmd.Flags()}},
		{name: "verbose", usage: "enable debug logging", defaultVal: false, flagsets: []*pflag.FlagSet{cfg.Root.PersistentFlags()}},
	}

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 {
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.String(option.name, v, option.usage)
			case bool:
				set.Bool(option.name, v, option.usage)
			case int:
				set.Int(option.name, v, option.usage)
			case int64:
				set.Int64(option.name, v, option.usage)
			case float64:
				set.Float64(option.name, v, option.usage)
			default:
				panic(fmt.Errorf("girgsutil: invalid default value type: %T", option.defaultVal))
			}
			cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	return cfg
}

// setConfig reads the configuration file named by the "config" flag, if
// one was given. An absent flag is not an error: flags and environment
// variables alone are a valid configuration.
func setConfig(cfg *Cfg) error {
	if cfgPath := cfg.GetString("config"); cfgPath != "" {
		cfg.SetConfigFile(cfgPath)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("girgs: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// GIRGOptions converts the current configuration into a girgs.GIRGOptions,
// deriving the weight/position/sampling seeds from the base "seed" option
// so a single flag controls a full, reproducible run.
func (cfg *Cfg) GIRGOptions() girgs.GIRGOptions {
	seed := cfg.GetInt64("seed")
	return girgs.GIRGOptions{
		N:            cfg.GetInt("n"),
		Dimension:    cfg.GetInt("dimension"),
		PLE:          cfg.GetFloat64("ple"),
		Alpha:        cfg.GetFloat64("alpha"),
		AvgDegree:    cfg.GetFloat64("avgdegree"),
		WeightSeed:   seed,
		PositionSeed: seed + 1,
		SamplingSeed: seed + 2,
		Threads:      cfg.GetInt("threads"),
	}
}

// HRGOptions converts the current configuration into a girgs.HRGOptions,
// deriving the radius/angle/sampling seeds from the base "seed" option.
func (cfg *Cfg) HRGOptions() girgs.HRGOptions {
	seed := cfg.GetInt64("seed")
	return girgs.HRGOptions{
		N:            cfg.GetInt("n"),
		Alpha:        cfg.GetFloat64("alpha"),
		Temperature:  cfg.GetFloat64("temperature"),
		AvgDegree:    cfg.GetFloat64("avgdegree"),
		RadiusSeed:   seed,
		AngleSeed:    seed + 1,
		SamplingSeed: seed + 2,
		Threads:      cfg.GetInt("threads"),
	}
}

// OutputFile returns the configured DOT output path, or "" if results
// should be summarized to stdout instead.
func (cfg *Cfg) OutputFile() string {
	return cfg.GetString("output")
}

// Verbose reports whether debug logging was requested.
func (cfg *Cfg) Verbose() bool {
	return cfg.GetBool("verbose")
}

// Model returns the "model" option, used by the degree and plot commands
// to choose which generator to run before reporting.
func (cfg *Cfg) Model() string {
	return cfg.GetString("model")
}

// PlotFile returns the configured histogram image path.
func (cfg *Cfg) PlotFile() string {
	return cfg.GetString("plotfile")
}

// Bins returns the configured histogram bin count.
func (cfg *Cfg) Bins() int {
	return cfg.GetInt("bins")
}
