package partition

import (
	"math"

	"github.com/spatialmodel/girgs/cell"
	"github.com/spatialmodel/girgs/metric"
	"github.com/spatialmodel/girgs/point"
)

// HRGBands buckets points by radius into layer-height bands, the analogue
// of hypergirgs' RadiusLayer::buildPartition. Band i covers radii in
// (R-(i+1)*h, R-i*h], so band 0 holds the points closest to the disk
// boundary (hence with the smallest connection reach).
type HRGBands struct {
	R      float64
	Height float64
	Bands  int
}

// NewHRGBands builds the band model for a disk of radius R, bucketing by
// the given layer height (1.0 in hypergirgs).
func NewHRGBands(r, height float64) *HRGBands {
	bands := int(math.Ceil(r/height)) + 1
	return &HRGBands{R: r, Height: height, Bands: bands}
}

func (m *HRGBands) NumBands() int { return m.Bands }

func (m *HRGBands) BandOf(p point.Point) int {
	i := int((m.R - p.Radius) / m.Height)
	if i < 0 {
		i = 0
	}
	if i >= m.Bands {
		i = m.Bands - 1
	}
	return i
}

// rMin returns the minimum radius a point in band i can have: r_min_i =
// R - (i+1)*h, clamped to 0.
func (m *HRGBands) rMin(i int) float64 {
	r := m.R - float64(i+1)*m.Height
	if r < 0 {
		return 0
	}
	return r
}

// Extent returns band i's minimum radius, the value that yields the
// largest possible connection reach for a point in this band.
func (m *HRGBands) Extent(i int) float64 { return m.rMin(i) }

// TargetLevel is the base level of band i paired with the outermost band
// (band 0, largest radius, weakest reach): the deepest angular level at
// which a non-touching cell pair still separates the two bands by more
// than R. Every other band reaches at least as far as band 0, so no pair
// involving band i has a deeper base level.
func (m *HRGBands) TargetLevel(band int, h cell.Helper, maxLevel int) int {
	return m.BasePairLevel(band, 0, h, maxLevel)
}

// BasePairLevel is the deepest level at which a non-touching cell pair
// cannot host an edge between bands i and j: two points at the bands'
// minimum radii, separated by one cell width (the smallest angular gap
// between non-touching cells), are still more than R apart. Doubling the
// level halves the cell width, so the distance shrinks with depth; the
// search stops at the last level before it drops to R or below, or at
// maxLevel. Mirrors HyperbolicTree::partitioningBaseLevel.
func (m *HRGBands) BasePairLevel(i, j int, h cell.Helper, maxLevel int) int {
	rA, rB := m.rMin(i), m.rMin(j)
	ah, ok := h.(*cell.AngleHelper)
	if !ok {
		panic("partition: HRGBands requires an AngleHelper")
	}
	for level := 0; level < maxLevel; level++ {
		n := ah.NumCellsInLevel(level + 1)
		cellDiameter := cell.TwoPi / float64(n)
		d := metric.Hyperbolic(rA, 0, rB, cellDiameter)
		if d <= m.R {
			return level
		}
	}
	return maxLevel
}
