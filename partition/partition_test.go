package partition

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/spatialmodel/girgs/cell"
	"github.com/spatialmodel/girgs/point"
)

func hrgPoints() []point.Point {
	return []point.Point{
		{ID: 0, Radius: 0.1, Angle: 0.1},
		{ID: 1, Radius: 4.9, Angle: 3.0},
		{ID: 2, Radius: 2.5, Angle: 1.0},
		{ID: 3, Radius: 4.95, Angle: 4.5},
	}
}

func TestBuildHRGLayerSortInvariant(t *testing.T) {
	h := cell.NewAngleHelper(10)
	model := NewHRGBands(5.0, 1.0)
	p := Build(h, model, hrgPoints(), 10)

	for _, l := range p.Layers {
		pts := l.All()
		for i := 1; i < len(pts); i++ {
			if pts[i].Cell < pts[i-1].Cell {
				t.Errorf("layer points not sorted by cell: %d before %d", pts[i-1].Cell, pts[i].Cell)
			}
		}
	}
}

func TestBuildHRGNoEmptyLayers(t *testing.T) {
	h := cell.NewAngleHelper(10)
	model := NewHRGBands(5.0, 1.0)
	p := Build(h, model, hrgPoints(), 10)
	for _, l := range p.Layers {
		if l.Empty() {
			t.Error("Build must prune empty bands, found an empty Layer")
		}
	}
}

func TestBuildHRGLayerPairsCoverAllPairs(t *testing.T) {
	h := cell.NewAngleHelper(10)
	model := NewHRGBands(5.0, 1.0)
	p := Build(h, model, hrgPoints(), 10)

	count := 0
	for _, pairs := range p.LayerPairs {
		count += len(pairs)
	}
	want := len(p.Layers) * len(p.Layers)
	if count != want {
		t.Errorf("total layer pairs = %d, want %d (every ordered pair assigned exactly one level)\npartition:\n%s", count, want, spew.Sdump(p))
	}
}

func girgPoints() []point.Point {
	return []point.Point{
		{ID: 0, Coord: []float64{0.1, 0.1}, Weight: 10},
		{ID: 1, Coord: []float64{0.9, 0.9}, Weight: 1},
		{ID: 2, Coord: []float64{0.5, 0.5}, Weight: 5},
		{ID: 3, Coord: []float64{0.2, 0.8}, Weight: 0.5},
	}
}

func TestBuildGIRGLayerSortInvariant(t *testing.T) {
	h := cell.NewTorusHelper(2, 10)
	model := NewGIRGBands(0.5, 10, 16.5, 2, 1)
	p := Build(h, model, girgPoints(), 10)

	for _, l := range p.Layers {
		pts := l.All()
		for i := 1; i < len(pts); i++ {
			if pts[i].Cell < pts[i-1].Cell {
				t.Errorf("layer points not sorted by cell: %d before %d", pts[i-1].Cell, pts[i].Cell)
			}
		}
	}
}

func TestBuildGIRGBandAssignmentMonotone(t *testing.T) {
	model := NewGIRGBands(0.5, 10, 16.5, 2, 1)
	heavy := model.BandOf(point.Point{Weight: 10})
	light := model.BandOf(point.Point{Weight: 0.5})
	if heavy > light {
		t.Errorf("heavier points should land in a band index <= lighter points: heavy=%d light=%d", heavy, light)
	}
}
