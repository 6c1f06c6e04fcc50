package girgrand

import "math/rand"

// Source is the minimal RNG capability every sampler in this package
// needs. *rand.Rand satisfies it; tests can substitute a fixed-sequence
// fake for deterministic coverage of edge cases.
type Source interface {
	Float64() float64
}

// NewSource seeds a new generator, mirroring hypergirgs' convention that a
// negative seed draws from a hardware entropy source instead of a fixed
// value.
func NewSource(seed int64) *rand.Rand {
	if seed < 0 {
		return rand.New(rand.NewSource(rand.Int63()))
	}
	return rand.New(rand.NewSource(seed))
}
