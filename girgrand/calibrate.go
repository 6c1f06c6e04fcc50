package girgrand

import (
	"math"

	"github.com/spatialmodel/girgs/cell"
	"github.com/spatialmodel/girgs/partition"
	"github.com/spatialmodel/girgs/point"
	"github.com/spatialmodel/girgs/sampler"
)

// calibrationSampleSize caps the trial graph used to estimate average
// degree during CalculateRadius / EstimateWeightScaling: for both models,
// average degree is a density statistic that stabilizes well before n
// reaches the millions Generate is meant to handle, so sampling a bounded
// trial graph with the same alpha/T and measuring it directly is both
// faster and more faithful than an analytic approximation.
const calibrationSampleSize = 20000

// ExponentialSearch finds x in the neighbourhood of [lower, upper] such
// that f(x) is within accuracy of desired, mirroring girgs' Generator::
// exponentialSearch. f need not be monotonic globally, but must be
// monotonic in the direction being searched; the bracket is doubled
// outward from [lower, upper] until it straddles desired, then bisected.
func ExponentialSearch(f func(float64) float64, desired, accuracy, lower, upper float64) float64 {
	flow, fhigh := f(lower), f(upper)
	increasing := fhigh >= flow

	for i := 0; i < 64; i++ {
		if increasing {
			if fhigh >= desired {
				break
			}
		} else if fhigh <= desired {
			break
		}
		lower, upper = upper, upper+(upper-lower)*2
		fhigh = f(upper)
	}

	for i := 0; i < 100; i++ {
		mid := (lower + upper) / 2
		fmid := f(mid)
		if math.Abs(fmid-desired) <= accuracy {
			return mid
		}
		if (fmid < desired) == increasing {
			lower = mid
		} else {
			upper = mid
		}
	}
	return (lower + upper) / 2
}

// CalculateRadius numerically solves for the disk radius R that yields the
// desired average degree for n points with concentration alpha and
// temperature t, by repeatedly sampling a trial hyperbolic random graph at
// candidate radii and measuring its average degree.
func CalculateRadius(n int, alpha, t, avgDeg float64, seed int64) float64 {
	m := n
	if m > calibrationSampleSize {
		m = calibrationSampleSize
	}
	measure := func(r float64) float64 {
		return measureHRGAvgDegree(m, alpha, t, r, seed)
	}
	return ExponentialSearch(measure, avgDeg, 0.05, 1.0, 2.0)
}

func measureHRGAvgDegree(n int, alpha, t, r float64, seed int64) float64 {
	rng := NewSource(seed)
	radii := SampleRadii(n, alpha, r, rng)
	angles := SampleAngles(n, rng)
	pts := make([]pointLike, n)
	for i := range pts {
		pts[i] = pointLike{id: int32(i), radius: radii[i], angle: angles[i]}
	}
	edges := countHRGEdges(pts, r, t, seed)
	return 2 * float64(edges) / float64(n)
}

// EstimateWeightScaling numerically solves for the GIRG scaling constant c
// in R_uv = c*(w_u*w_v/W)^(1/D) that yields the desired average degree for
// the given weight sequence and position dimension, by sampling a trial
// graph for each candidate c.
func EstimateWeightScaling(weights []float64, desiredAvgDegree, dimension int, seed int64) float64 {
	n := len(weights)
	if n > calibrationSampleSize {
		n = calibrationSampleSize
		weights = weights[:n]
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	measure := func(c float64) float64 {
		return measureGIRGAvgDegree(weights, total, dimension, c, seed)
	}
	return ExponentialSearch(measure, float64(desiredAvgDegree), 0.05, 1.0, 2.0)
}

func measureGIRGAvgDegree(weights []float64, total float64, dimension int, c float64, seed int64) float64 {
	rng := NewSource(seed)
	n := len(weights)
	positions := SamplePositions(n, dimension, rng)
	pts := make([]pointLike, n)
	for i := range pts {
		pts[i] = pointLike{id: int32(i), coord: positions[i], weight: weights[i]}
	}
	edges := countGIRGEdges(pts, total, dimension, c, seed)
	return 2 * float64(edges) / float64(n)
}

// pointLike decouples the calibration helpers above from the point package
// so this file reads as a self-contained numerical routine; both count*
// functions translate it into a real point.Point before handing it to the
// partition/sampler packages.
type pointLike struct {
	id     int32
	coord  []float64
	weight float64
	radius float64
	angle  float64
}

func toPoints(pts []pointLike) []point.Point {
	out := make([]point.Point, len(pts))
	for i, p := range pts {
		out[i] = point.Point{ID: p.id, Coord: p.coord, Weight: p.weight, Radius: p.radius, Angle: p.angle}
	}
	return out
}

func countHRGEdges(pts []pointLike, r, t float64, seed int64) int64 {
	maxLevel := cell.MaxLevelFor(len(pts), 2)
	h := cell.NewAngleHelper(maxLevel)
	bands := partition.NewHRGBands(r, 1.0)
	converted := toPoints(pts)
	part := partition.Build(h, bands, converted, maxLevel)
	model := sampler.NewHRGModel(r, t)
	model.SetExtents(part.Extents)
	var count int64
	s := sampler.New(h, part, model, func(u, v int32, _ int) { count++ })
	s.Generate(sampler.Options{Seed: seed, Threads: 1})
	return count
}

func countGIRGEdges(pts []pointLike, total float64, dimension int, c float64, seed int64) int64 {
	maxLevel := cell.MaxLevelFor(len(pts), 1<<uint(dimension))
	h := cell.NewTorusHelper(dimension, maxLevel)
	wMin, wMax := pts[0].weight, pts[0].weight
	for _, p := range pts {
		if p.weight < wMin {
			wMin = p.weight
		}
		if p.weight > wMax {
			wMax = p.weight
		}
	}
	bands := partition.NewGIRGBands(wMin, wMax, total, dimension, c)
	converted := toPoints(pts)
	part := partition.Build(h, bands, converted, maxLevel)
	model := sampler.NewGIRGModel(total, dimension, c, 0)
	model.SetExtents(part.Extents)
	var count int64
	s := sampler.New(h, part, model, func(u, v int32, _ int) { count++ })
	s.Generate(sampler.Options{Seed: seed, Threads: 1})
	return count
}
