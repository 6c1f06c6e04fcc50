package girgrand

import "math"

// SampleAngles draws n angles uniformly on [0,2*pi).
func SampleAngles(n int, rng Source) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64() * 2 * math.Pi
	}
	return out
}
