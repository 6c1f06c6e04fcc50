package partition

import (
	"math"

	"github.com/spatialmodel/girgs/cell"
	"github.com/spatialmodel/girgs/point"
)

// GIRGBands buckets points by weight into exponential buckets
// floor(log2(w_max/w)), the analogue of girgs' WeightLayer partition:
// band 0 holds the heaviest points (largest weight, largest connection
// radius); higher bands hold progressively lighter points.
type GIRGBands struct {
	WMin, WMax  float64
	TotalWeight float64
	Dimension   int
	C           float64 // GIRG scaling constant, see metric.GIRGConnectionRadius
	Bands       int
}

// NewGIRGBands builds the band model from the observed weight extent.
func NewGIRGBands(wMin, wMax, totalWeight float64, dimension int, c float64) *GIRGBands {
	bands := int(math.Log2(wMax/wMin)) + 2
	return &GIRGBands{WMin: wMin, WMax: wMax, TotalWeight: totalWeight, Dimension: dimension, C: c, Bands: bands}
}

func (m *GIRGBands) NumBands() int { return m.Bands }

func (m *GIRGBands) BandOf(p point.Point) int {
	i := int(math.Log2(m.WMax / p.Weight))
	if i < 0 {
		i = 0
	}
	if i >= m.Bands {
		i = m.Bands - 1
	}
	return i
}

// wMaxOf returns the largest weight a point in band i can have: w_max / 2^i.
func (m *GIRGBands) wMaxOf(i int) float64 {
	return m.WMax / math.Pow(2, float64(i))
}

// Extent returns band i's maximum weight, the value that yields the
// largest possible connection radius for a point in this band.
func (m *GIRGBands) Extent(i int) float64 { return m.wMaxOf(i) }

// connectionRadius returns the GIRG connection-threshold radius analogue
// for a pair of points with weights wu, wv (see metric.GIRGConnectionRadius).
func (m *GIRGBands) connectionRadius(wu, wv float64) float64 {
	r := wu * wv / m.TotalWeight
	if r <= 0 {
		return 0
	}
	return m.C * math.Pow(r, 1/float64(m.Dimension))
}

// TargetLevel is the base level of band i paired with the lightest band
// (band Bands-1, smallest connection radius), mirroring
// HRGBands.TargetLevel for the torus metric. The lightest band has the
// smallest pairwise radius with band i, so no pair involving band i has a
// deeper base level.
func (m *GIRGBands) TargetLevel(band int, h cell.Helper, maxLevel int) int {
	if _, ok := h.(*cell.TorusHelper); !ok {
		panic("partition: GIRGBands requires a TorusHelper")
	}
	return m.BasePairLevel(band, m.Bands-1, h, maxLevel)
}

// BasePairLevel is the deepest level at which the minimum torus gap
// between non-touching cells (one cell width) is still at least the
// pairwise connection radius of bands i and j (evaluated at maximum
// weights, the strongest reach either band can produce), so such cells
// cannot host an edge. The search stops at the last level before the cell
// width drops below the radius, or at maxLevel.
func (m *GIRGBands) BasePairLevel(i, j int, h cell.Helper, maxLevel int) int {
	wA, wB := m.wMaxOf(i), m.wMaxOf(j)
	radius := m.connectionRadius(wA, wB)
	for level := 0; level < maxLevel; level++ {
		n := 1 << uint(level+1)
		cellWidth := 1.0 / float64(n)
		if cellWidth < radius {
			return level
		}
	}
	return maxLevel
}
