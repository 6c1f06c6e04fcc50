// Package cell implements the integer arithmetic of a fixed-arity
// hierarchical cell hierarchy: a complete tree over dyadic levels where each
// cell has a constant number of children. Two concrete flavours are
// provided: TorusHelper, a D-dimensional grid over the unit torus used by
// GIRG, and AngleHelper, a 1-D angular partition of [0,2*pi) used by HRG.
//
// Cell ids are dense integers: level 0 is the single root cell (id 0), and
// cell ids increase monotonically with level. All operations are pure,
// deterministic, and O(level) or O(1).
package cell

import "math"

// MaxLevelFor returns a level bound deep enough that a partition band built
// over n points has O(1) expected points per cell at its deepest level,
// plus a few levels of slack for the parallel schedule's
// first_parallel_level. Helper level tables are O(maxLevel) and
// numCellsInLevel grows as arity^level, so callers must size this from n
// rather than picking one generous constant for every dimension.
func MaxLevelFor(n, arity int) int {
	if n < arity {
		return 1
	}
	levels := int(math.Ceil(math.Log(float64(n))/math.Log(float64(arity)))) + 4
	if levels < 1 {
		levels = 1
	}
	return levels
}

// Helper is the capability both flavours provide to layer, partition, and
// sampler. They never need to know which concrete geometry backs a Helper.
type Helper interface {
	// Arity is the fixed number of children per cell (2^D for the torus,
	// 2 for the angular partition).
	Arity() int
	// FirstCellOfLevel returns the id of the first cell at the given level.
	FirstCellOfLevel(level int) int
	// NumCellsInLevel returns how many cells exist at the given level.
	NumCellsInLevel(level int) int
	// FirstChild returns the id of the first of Arity() children of cell,
	// which is known to be at the given level.
	FirstChild(cellID, level int) int
	// Touching reports whether the regions of a and b (both at level)
	// share at least one boundary point in the ambient metric.
	Touching(a, b, level int) bool
	// Dist returns the infimum metric distance between the regions of a
	// and b (both at level); zero exactly when Touching is true.
	Dist(a, b, level int) float64
}
