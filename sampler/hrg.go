package sampler

import (
	"math"

	"github.com/spatialmodel/girgs/metric"
	"github.com/spatialmodel/girgs/point"
)

// HRGModel implements Model for hyperbolic random graphs: a single global
// disk radius R governs every pair, with the T=0 case accelerated by a
// precomputed cosh(R) threshold.
type HRGModel struct {
	R, T   float64
	coshR  float64
	isZero bool
	rMin   []float64 // rMin[i] = partition.Partition.Extents[i], the band's minimum radius
}

// NewHRGModel builds the HRG connection model for disk radius r and
// temperature t. SetExtents must be called with the built Partition's
// Extents before Generate runs any Type II sampling.
func NewHRGModel(r, t float64) *HRGModel {
	return &HRGModel{R: r, T: t, coshR: math.Cosh(r), isZero: t == 0}
}

// SetExtents records each band's minimum radius, in Partition.Layers order,
// used by UpperBoundProbability's Type II bound.
func (m *HRGModel) SetExtents(rMin []float64) { m.rMin = rMin }

func (m *HRGModel) IsThreshold() bool { return m.isZero }

func (m *HRGModel) Distance(u, v point.Point) float64 {
	return metric.Hyperbolic(u.Radius, u.Angle, v.Radius, v.Angle)
}

func (m *HRGModel) ThresholdEdge(u, v point.Point) bool {
	return metric.HyperbolicCoshThreshold(u.Radius, u.Angle, v.Radius, v.Angle) < m.coshR
}

func (m *HRGModel) ConnectionProbability(dist float64, _, _ point.Point) float64 {
	return metric.ConnectionProbability(dist, m.R, m.T)
}

// UpperBoundProbability evaluates the sigmoid at the smallest distance any
// pair drawn from bands i and j could have: both points at their band's
// minimum radius, separated by the cell helper's lower-bound angular gap.
func (m *HRGModel) UpperBoundProbability(i, j int, cellDist float64) float64 {
	dLower := metric.Hyperbolic(m.rMin[i], 0, m.rMin[j], cellDist)
	return metric.ConnectionProbability(dLower, m.R, m.T)
}
