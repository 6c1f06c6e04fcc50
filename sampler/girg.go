package sampler

import (
	"github.com/spatialmodel/girgs/metric"
	"github.com/spatialmodel/girgs/point"
)

// GIRGModel implements Model for geometric inhomogeneous random graphs on
// the torus: the connection-threshold radius is per-pair, derived from the
// two points' weights rather than a single global constant.
type GIRGModel struct {
	TotalWeight float64
	Dimension   int
	C           float64
	T           float64
	isZero      bool
	wMax        []float64 // wMax[i] = partition.Partition.Extents[i], the band's maximum weight
}

// NewGIRGModel builds the GIRG connection model. totalWeight, dimension,
// and c parameterize the per-pair radius R_uv = c*(w_u*w_v/W)^(1/D).
// SetExtents must be called with the built Partition's Extents before
// Generate runs any Type II sampling.
func NewGIRGModel(totalWeight float64, dimension int, c, t float64) *GIRGModel {
	return &GIRGModel{TotalWeight: totalWeight, Dimension: dimension, C: c, T: t, isZero: t == 0}
}

// SetExtents records each band's maximum weight, in Partition.Layers order.
func (m *GIRGModel) SetExtents(wMax []float64) { m.wMax = wMax }

func (m *GIRGModel) IsThreshold() bool { return m.isZero }

func (m *GIRGModel) Distance(u, v point.Point) float64 {
	return metric.Torus(u.Coord, v.Coord)
}

func (m *GIRGModel) radius(wu, wv float64) float64 {
	return metric.GIRGConnectionRadius(wu, wv, m.TotalWeight, m.Dimension, m.C)
}

func (m *GIRGModel) ThresholdEdge(u, v point.Point) bool {
	return m.Distance(u, v) < m.radius(u.Weight, v.Weight)
}

func (m *GIRGModel) ConnectionProbability(dist float64, u, v point.Point) float64 {
	return metric.ConnectionProbability(dist, m.radius(u.Weight, v.Weight), m.T)
}

// UpperBoundProbability evaluates the sigmoid at the smallest distance and
// largest radius any pair drawn from bands i and j could have: both points
// at their band's maximum weight (largest radius), separated by the cell
// helper's lower-bound torus gap.
func (m *GIRGModel) UpperBoundProbability(i, j int, cellDist float64) float64 {
	rMax := m.radius(m.wMax[i], m.wMax[j])
	return metric.ConnectionProbability(cellDist, rMax, m.T)
}
