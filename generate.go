// Package girgs generates random graphs in expected linear time from two
// models: Geometric Inhomogeneous Random Graphs (GIRGs) on the
// D-dimensional torus, and Hyperbolic Random Graphs (HRGs) in native disk
// representation. GenerateGIRG and GenerateHRG are the library's two entry
// points; everything else (cell, layer, partition, sampler, metric,
// girgrand) is an internal collaborator exposed for composition and
// testing.
package girgs

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/girgs/cell"
	"github.com/spatialmodel/girgs/girgrand"
	"github.com/spatialmodel/girgs/partition"
	"github.com/spatialmodel/girgs/point"
	"github.com/spatialmodel/girgs/sampler"
)

// Logger receives one Debug line per generation phase (weights/positions
// sampled, partition built, sampling started/finished). It defaults to the
// standard logger and is never required for correct operation; callers
// embedding this package as a silent library can swap in a no-op
// logrus.FieldLogger.
var Logger logrus.FieldLogger = logrus.StandardLogger()

// GenerateGIRG samples positions and weights, calibrates the scaling
// constant to the desired average degree, and streams every sampled edge
// to callback. It returns the debug coverage counters from §8 Invariant 1.
func GenerateGIRG(opts GIRGOptions, callback sampler.EdgeCallback) (sampler.Stats, error) {
	if err := opts.Validate(); err != nil {
		return sampler.Stats{}, err
	}

	weights := girgrand.SampleWeights(opts.N, opts.PLE, girgrand.NewSource(opts.WeightSeed))
	positions := girgrand.SamplePositions(opts.N, opts.Dimension, girgrand.NewSource(opts.PositionSeed))
	Logger.WithFields(logrus.Fields{"n": opts.N, "dimension": opts.Dimension}).Debug("girgs: weights and positions sampled")

	c := girgrand.EstimateWeightScaling(weights, int(math.Round(opts.AvgDegree)), opts.Dimension, opts.SamplingSeed)

	total := 0.0
	wMin, wMax := weights[0], weights[0]
	for _, w := range weights {
		total += w
		if w < wMin {
			wMin = w
		}
		if w > wMax {
			wMax = w
		}
	}

	pts := make([]point.Point, opts.N)
	for i := range pts {
		pts[i] = point.Point{ID: int32(i), Coord: positions[i], Weight: weights[i]}
	}

	maxLevel := cell.MaxLevelFor(opts.N, 1<<uint(opts.Dimension))
	h := cell.NewTorusHelper(opts.Dimension, maxLevel)
	bands := partition.NewGIRGBands(wMin, wMax, total, opts.Dimension, c)
	part := partition.Build(h, bands, pts, maxLevel)
	Logger.WithField("layers", len(part.Layers)).Debug("girgs: girg partition built")

	model := sampler.NewGIRGModel(total, opts.Dimension, c, opts.Temperature())
	model.SetExtents(part.Extents)

	s := sampler.New(h, part, model, callback)
	Logger.Debug("girgs: girg sampling started")
	stats := s.Generate(sampler.Options{Seed: opts.SamplingSeed, Threads: opts.Threads})
	Logger.WithFields(logrus.Fields{"typeI": stats.TypeIChecks, "typeII": stats.TypeIIChecks}).Debug("girgs: girg sampling finished")
	return stats, nil
}

// GenerateHRG samples radii and angles, calibrates the disk radius to the
// desired average degree, and streams every sampled edge to callback. It
// returns the debug coverage counters from §8 Invariant 1.
func GenerateHRG(opts HRGOptions, callback sampler.EdgeCallback) (sampler.Stats, error) {
	if err := opts.Validate(); err != nil {
		return sampler.Stats{}, err
	}

	r := girgrand.CalculateRadius(opts.N, opts.Alpha, opts.Temperature, opts.AvgDegree, opts.SamplingSeed)
	if r <= 0 {
		return sampler.Stats{}, ErrNonPositiveRadius
	}

	radii := girgrand.SampleRadii(opts.N, opts.Alpha, r, girgrand.NewSource(opts.RadiusSeed))
	angles := girgrand.SampleAngles(opts.N, girgrand.NewSource(opts.AngleSeed))
	Logger.WithFields(logrus.Fields{"n": opts.N, "R": r}).Debug("girgs: radii and angles sampled")

	pts := make([]point.Point, opts.N)
	for i := range pts {
		pts[i] = point.Point{ID: int32(i), Radius: radii[i], Angle: angles[i]}
	}

	maxLevel := cell.MaxLevelFor(opts.N, 2)
	h := cell.NewAngleHelper(maxLevel)
	bands := partition.NewHRGBands(r, 1.0)
	part := partition.Build(h, bands, pts, maxLevel)
	Logger.WithField("layers", len(part.Layers)).Debug("girgs: hrg partition built")

	model := sampler.NewHRGModel(r, opts.Temperature)
	model.SetExtents(part.Extents)

	s := sampler.New(h, part, model, callback)
	Logger.Debug("girgs: hrg sampling started")
	stats := s.Generate(sampler.Options{Seed: opts.SamplingSeed, Threads: opts.Threads})
	Logger.WithFields(logrus.Fields{"typeI": stats.TypeIChecks, "typeII": stats.TypeIIChecks}).Debug("girgs: hrg sampling finished")
	return stats, nil
}
