// Package partition buckets points into weight/radius bands, computes each
// band's target level, builds a layer.Layer per band, and precomputes the
// base level at which every ordered band pair stops needing recursion.
// Grounded on hypergirgs' RadiusLayer::buildPartition and girgs'
// WeightLayer, generalized to share one implementation via the BandModel
// abstraction below.
package partition

import (
	"github.com/spatialmodel/girgs/cell"
	"github.com/spatialmodel/girgs/layer"
	"github.com/spatialmodel/girgs/point"
)

// LayerPair names one ordered band pair (I, J) whose cell-pair recursion
// bottoms out at a given level.
type LayerPair struct {
	I, J int
}

// BandModel supplies the metric-specific pieces needed to bucket points
// into bands and compute each band's target level. GIRG and HRG each
// implement it (partition/girg.go, partition/hrg.go).
type BandModel interface {
	// NumBands returns the number of bands the model partitions points into.
	NumBands() int
	// BandOf returns the band index of a point.
	BandOf(p point.Point) int
	// TargetLevel returns the level band i's points are indexed at: its
	// base pair level with the band of weakest connection reach, the
	// deepest base pair level any pair involving band i can have.
	TargetLevel(band int, h cell.Helper, maxLevel int) int
	// BasePairLevel returns the deepest level at which a non-touching
	// cell pair between bands i and j is guaranteed to never host an edge.
	BasePairLevel(i, j int, h cell.Helper, maxLevel int) int
	// Extent returns the metric extremum of band i used by Type II's
	// upper-bound probability: the minimum radius for HRG, the maximum
	// weight for GIRG — whichever yields the largest connection reach
	// for any point in the band.
	Extent(band int) float64
}

// Partition owns every Layer and the per-level table of band pairs whose
// Type I/Type II sampling bottoms out at that level.
type Partition struct {
	Helper     cell.Helper
	Layers     []*layer.Layer // indexed by (non-empty) band index, in band order
	Levels     int            // 1 + the deepest target level among all bands
	LayerPairs [][]LayerPair  // LayerPairs[level] = pairs whose basePairLevel == level
	Extents    []float64      // Extents[i] = model.Extent of the original band backing Layers[i]
}

// Build assigns pts to bands via model, computes target levels, builds one
// Layer per non-empty band, and groups every ordered band pair by its base
// level. maxLevel bounds how deep any band's target level may reach; the
// caller picks it from n and the model's density so that the deepest band
// has a handful of points per cell in expectation.
func Build(h cell.Helper, model BandModel, pts []point.Point, maxLevel int) *Partition {
	numBands := model.NumBands()
	targetLevel := make([]int, numBands)
	for i := 0; i < numBands; i++ {
		targetLevel[i] = model.TargetLevel(i, h, maxLevel)
	}

	buckets := make([][]point.Point, numBands)
	for _, p := range pts {
		b := model.BandOf(p)
		buckets[b] = append(buckets[b], p)
	}

	var layers []*layer.Layer
	var bandIdx []int
	levels := 0
	for i := 0; i < numBands; i++ {
		if len(buckets[i]) == 0 {
			continue // empty-band pruning: never build a Layer with no points
		}
		tl := targetLevel[i]
		for k := range buckets[i] {
			buckets[i][k].Cell = cellForPoint(h, buckets[i][k], tl)
		}
		layers = append(layers, layer.New(h, tl, buckets[i]))
		bandIdx = append(bandIdx, i)
		if tl+1 > levels {
			levels = tl + 1
		}
	}

	layerPairs := make([][]LayerPair, levels)
	for a, bandA := range bandIdx {
		for b, bandB := range bandIdx {
			lvl := model.BasePairLevel(bandA, bandB, h, maxLevel)
			if lvl >= levels {
				lvl = levels - 1
			}
			// A pair is sampled at its base level in both layers, so the
			// level must not exceed either layer's target level.
			if tA := targetLevel[bandA]; lvl > tA {
				lvl = tA
			}
			if tB := targetLevel[bandB]; lvl > tB {
				lvl = tB
			}
			layerPairs[lvl] = append(layerPairs[lvl], LayerPair{I: a, J: b})
		}
	}

	extents := make([]float64, len(bandIdx))
	for i, band := range bandIdx {
		extents[i] = model.Extent(band)
	}

	return &Partition{Helper: h, Layers: layers, Levels: levels, LayerPairs: layerPairs, Extents: extents}
}

// cellForPoint locates the level-tl cell containing p's coordinates,
// dispatching on which coordinate fields are populated (GIRG uses Coord,
// HRG uses Angle via the 1-D AngleHelper).
func cellForPoint(h cell.Helper, p point.Point, tl int) int {
	switch th := h.(type) {
	case *cell.TorusHelper:
		return th.CellForPoint(p.Coord, tl)
	case *cell.AngleHelper:
		return th.CellForPoint(p.Angle, tl)
	default:
		panic("partition: unknown cell.Helper implementation")
	}
}
