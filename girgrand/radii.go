// Package girgrand provides the weight, position, radius, and angle
// samplers and the average-degree calibration search that sit outside the
// core sampling engine: §6's "external collaborators". Grounded on
// hypergirgs/Hyperbolic.h's declared primitives (sampleRadii, sampleAngles,
// calculateRadius) and girgs/Generator.h (setWeights, setPositions,
// scaleWeights, exponentialSearch).
package girgrand

import "math"

// SampleRadii draws n radii on [0,R] from density
// f(r) = alpha*sinh(alpha*r) / (cosh(alpha*R) - 1), via inverse-CDF
// sampling: CDF(r) = (cosh(alpha*r)-1) / (cosh(alpha*R)-1).
func SampleRadii(n int, alpha, r float64, rng Source) []float64 {
	out := make([]float64, n)
	denom := math.Cosh(alpha*r) - 1
	for i := range out {
		u := rng.Float64()
		out[i] = math.Acosh(1+u*denom) / alpha
	}
	return out
}
