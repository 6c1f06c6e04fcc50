// Package layer implements Layer, a band of points sorted into the cells of
// a fixed target partition level with an O(1) prefix-sum index over cell
// occupancy. It mirrors hypergirgs' RadiusLayer: each weight band (GIRG) or
// radius band (HRG) owns exactly one Layer built at its target level, but
// the sampler queries it at every coarser level the cell-pair recursion
// passes through on the way down, via the same levelledCell mapping.
package layer

import (
	"sort"

	"github.com/spatialmodel/girgs/cell"
	"github.com/spatialmodel/girgs/point"
)

// Layer holds the points of one band, sorted by the id of the
// TargetLevel cell each falls into, plus a prefix-sum array so
// PointsInCell and KthPoint are O(1) after the one-time O(n log n) sort in
// New, at the target level or any coarser ancestor level.
type Layer struct {
	h           cell.Helper
	targetLevel int
	firstTarget int
	points      []point.Point
	prefix      []int32 // len NumCellsInLevel(targetLevel)+1
}

// New builds a Layer whose points are indexed at targetLevel from pts,
// which must already carry a Cell id consistent with targetLevel
// (Partition sets this via Helper.CellForPoint before constructing bands).
// New sorts pts in place by Cell and is stable, so points with equal Cell
// preserve their input (ID) order — required for reproducibility across
// identical runs.
func New(h cell.Helper, targetLevel int, pts []point.Point) *Layer {
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Cell < pts[j].Cell })

	first := h.FirstCellOfLevel(targetLevel)
	n := h.NumCellsInLevel(targetLevel)
	prefix := make([]int32, n+1)
	for _, p := range pts {
		prefix[p.Cell-first+1]++
	}
	for i := 1; i <= n; i++ {
		prefix[i] += prefix[i-1]
	}
	return &Layer{h: h, targetLevel: targetLevel, firstTarget: first, points: pts, prefix: prefix}
}

// TargetLevel returns the level this Layer's points are physically sorted
// and indexed at.
func (l *Layer) TargetLevel() int { return l.targetLevel }

// Empty reports whether the band holds no points at all.
func (l *Layer) Empty() bool { return len(l.points) == 0 }

// levelledRange maps cellID, known to live at level <= l.targetLevel, to
// the half-open [begin,end) range of target-level descendant cells it
// covers. Every cell before cellID's parent splits into Arity() children
// at each level down to targetLevel, so the descendant range is a
// contiguous block of cellID's local index times the descendant count.
func (l *Layer) levelledRange(cellID, level int) (begin, end int) {
	descendants := l.h.NumCellsInLevel(l.targetLevel - level)
	localIndex := cellID - l.h.FirstCellOfLevel(level)
	begin = localIndex * descendants
	end = begin + descendants
	return begin, end
}

// PointsInCell returns how many points of the band fall within cellID,
// known to live at level (level <= TargetLevel()).
func (l *Layer) PointsInCell(cellID, level int) int32 {
	begin, end := l.levelledRange(cellID, level)
	return l.prefix[end] - l.prefix[begin]
}

// KthPoint returns the k-th (0-based) point within cellID, known to live
// at level, in sort order.
func (l *Layer) KthPoint(cellID, level int, k int32) point.Point {
	begin, _ := l.levelledRange(cellID, level)
	return l.points[l.prefix[begin]+k]
}

// CellPoints returns the slice of points belonging to cellID at level. The
// returned slice aliases the Layer's backing array and must not be
// mutated.
func (l *Layer) CellPoints(cellID, level int) []point.Point {
	begin, end := l.levelledRange(cellID, level)
	return l.points[l.prefix[begin]:l.prefix[end]]
}

// Len returns the total number of points in the band.
func (l *Layer) Len() int { return len(l.points) }

// All returns every point in the band, in sorted (cell-major) order.
func (l *Layer) All() []point.Point { return l.points }
