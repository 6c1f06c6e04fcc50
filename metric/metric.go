// Package metric computes point-to-point distances and connection
// probabilities for both models: the L-infinity torus metric for GIRG and
// the native hyperbolic disk metric for HRG, grounded on girgs/Node.cpp and
// hypergirgs/Hyperbolic.h respectively.
package metric

import "math"

// Torus returns the L-infinity distance between a and b on the unit torus
// [0,1)^D, wrapping each axis independently.
func Torus(a, b []float64) float64 {
	max := 0.0
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > 0.5 {
			d = 1 - d
		}
		if d > max {
			max = d
		}
	}
	return max
}

// Hyperbolic returns the hyperbolic distance between two points given in
// native disk coordinates (radius, angle), via the hyperbolic law of
// cosines. It is accurate but requires an acosh; HyperbolicCoshThreshold
// below avoids it in the T=0 hot path.
func Hyperbolic(r1, phi1, r2, phi2 float64) float64 {
	cosDeltaPhi := math.Cos(phi1 - phi2)
	x := math.Cosh(r1)*math.Cosh(r2) - math.Sinh(r1)*math.Sinh(r2)*cosDeltaPhi
	if x < 1 {
		x = 1 // guard against rounding pushing acosh's argument below its domain
	}
	return math.Acosh(x)
}

// HyperbolicCoshThreshold returns cosh(dist(p1,p2)) without ever calling
// acosh, for use against a precomputed cosh(R) threshold in the T=0 case
// (connectionProb is a hard cutoff there, so the actual distance value is
// never needed — only its comparison against R).
func HyperbolicCoshThreshold(r1, phi1, r2, phi2 float64) float64 {
	cosDeltaPhi := math.Cos(phi1 - phi2)
	return math.Cosh(r1)*math.Cosh(r2) - math.Sinh(r1)*math.Sinh(r2)*cosDeltaPhi
}

// ConnectionProbability is the Fermi-Dirac sigmoid shared by both models:
// p(d) = 1 / (1 + exp((d-R) / (2T))). Callers must not invoke this with
// T==0; use the coshR threshold shortcut instead for that case.
func ConnectionProbability(dist, radius, temperature float64) float64 {
	return 1 / (1 + math.Exp((dist-radius)/(2*temperature)))
}

// GIRGConnectionRadius returns the per-pair connection-threshold radius
// analogue R_uv = c*(w_u*w_v/W)^(1/D) used by GIRG in place of HRG's fixed
// disk radius R, where W is the sum of all weights and c is the model's
// scaling constant (calibrated to the target average degree by
// girgrand.EstimateWeightScaling; the weights themselves are not rescaled).
func GIRGConnectionRadius(wu, wv, totalWeight float64, dimension int, c float64) float64 {
	return c * math.Pow(wu*wv/totalWeight, 1/float64(dimension))
}
