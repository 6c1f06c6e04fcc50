package girgsutil

import "testing"

func TestInitializeConfigDefaults(t *testing.T) {
	cfg := InitializeConfig()
	if got := cfg.GetInt("n"); got != 1000 {
		t.Errorf("default n = %d, want 1000", got)
	}
	if got := cfg.GetInt("dimension"); got != 2 {
		t.Errorf("default dimension = %d, want 2", got)
	}
	if got := cfg.GetInt64("seed"); got != 1 {
		t.Errorf("default seed = %d, want 1", got)
	}
}

func TestGIRGOptionsDerivesDistinctSeeds(t *testing.T) {
	cfg := InitializeConfig()
	cfg.Set("seed", int64(42))
	cfg.Set("n", 500)

	opts := cfg.GIRGOptions()
	if opts.N != 500 {
		t.Errorf("N = %d, want 500", opts.N)
	}
	if opts.WeightSeed != 42 || opts.PositionSeed != 43 || opts.SamplingSeed != 44 {
		t.Errorf("seeds = %d,%d,%d, want 42,43,44", opts.WeightSeed, opts.PositionSeed, opts.SamplingSeed)
	}
}

func TestHRGOptionsDerivesDistinctSeeds(t *testing.T) {
	cfg := InitializeConfig()
	cfg.Set("seed", int64(7))

	opts := cfg.HRGOptions()
	if opts.RadiusSeed != 7 || opts.AngleSeed != 8 || opts.SamplingSeed != 9 {
		t.Errorf("seeds = %d,%d,%d, want 7,8,9", opts.RadiusSeed, opts.AngleSeed, opts.SamplingSeed)
	}
}

func TestVerboseDefaultsFalse(t *testing.T) {
	cfg := InitializeConfig()
	if cfg.Verbose() {
		t.Errorf("Verbose() = true, want false by default")
	}
}

func TestOutputFileDefaultsEmpty(t *testing.T) {
	cfg := InitializeConfig()
	if cfg.OutputFile() != "" {
		t.Errorf("OutputFile() = %q, want empty", cfg.OutputFile())
	}
}
