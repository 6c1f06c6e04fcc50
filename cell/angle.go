package cell

import (
	"math"

	"github.com/golang/geo/s1"
)

const TwoPi = 2 * math.Pi

// AngleHelper indexes a complete binary tree over the angular partition of
// [0,2*pi), the 1-D analogue of TorusHelper used by HRG.
type AngleHelper struct {
	maxLevel  int
	firstCell []int
	numCells  []int
}

func NewAngleHelper(maxLevel int) *AngleHelper {
	firstCell := make([]int, maxLevel+2)
	numCells := make([]int, maxLevel+2)
	numCells[0] = 1
	for l := 1; l <= maxLevel+1; l++ {
		numCells[l] = numCells[l-1] * 2
		firstCell[l] = firstCell[l-1] + numCells[l-1]
	}
	return &AngleHelper{maxLevel: maxLevel, firstCell: firstCell, numCells: numCells}
}

func (h *AngleHelper) Arity() int { return 2 }

func (h *AngleHelper) FirstCellOfLevel(level int) int { return h.firstCell[level] }

func (h *AngleHelper) NumCellsInLevel(level int) int { return h.numCells[level] }

func (h *AngleHelper) FirstChild(cellID, level int) int {
	return h.firstCell[level+1] + 2*(cellID-h.firstCell[level])
}

// CellForPoint returns the id of the level-ℓ cell containing the angle phi,
// normalized into [0,2*pi) via s1.Angle before bucketing.
func (h *AngleHelper) CellForPoint(phi float64, level int) int {
	n := 1 << uint(level)
	normalized := NormalizeAngle(phi)
	i := int(normalized / TwoPi * float64(n))
	if i >= n {
		i = n - 1
	} else if i < 0 {
		i = 0
	}
	return h.firstCell[level] + i
}

// NormalizeAngle wraps phi into [0,2*pi) using s1.Angle's radian
// representation.
func NormalizeAngle(phi float64) float64 {
	a := math.Mod(float64(s1.Angle(phi).Radians()), TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}

func (h *AngleHelper) circularGap(a, b, level int) (int, float64) {
	numCells := h.numCells[level]
	localA := a - h.firstCell[level]
	localB := b - h.firstCell[level]
	diff := localA - localB
	if diff < 0 {
		diff = -diff
	}
	if numCells-diff < diff {
		diff = numCells - diff
	}
	cellWidth := TwoPi / float64(numCells)
	return diff, cellWidth
}

func (h *AngleHelper) Touching(a, b, level int) bool {
	diff, _ := h.circularGap(a, b, level)
	return diff <= 1
}

func (h *AngleHelper) Dist(a, b, level int) float64 {
	diff, cellWidth := h.circularGap(a, b, level)
	if diff <= 1 {
		return 0
	}
	return float64(diff-1) * cellWidth
}
