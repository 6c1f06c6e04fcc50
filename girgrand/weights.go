package girgrand

import "math"

// SampleWeights draws n weights in [1, n) from a power-law distribution
// with exponent ple via inverse-CDF sampling, the standard GIRG weight
// sequence (Node.cpp's weight field is populated from exactly this kind of
// sequence upstream of the generator).
func SampleWeights(n int, ple float64, rng Source) []float64 {
	out := make([]float64, n)
	wMin, wMax := 1.0, float64(n)
	if ple == 1 {
		logMin, logMax := math.Log(wMin), math.Log(wMax)
		for i := range out {
			u := rng.Float64()
			out[i] = math.Exp(logMin + u*(logMax-logMin))
		}
		return out
	}
	exp := 1 - ple
	minP, maxP := math.Pow(wMin, exp), math.Pow(wMax, exp)
	for i := range out {
		u := rng.Float64()
		out[i] = math.Pow(minP+u*(maxP-minP), 1/exp)
	}
	return out
}
