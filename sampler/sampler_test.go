package sampler

import (
	"sort"
	"testing"

	"github.com/spatialmodel/girgs/cell"
	"github.com/spatialmodel/girgs/partition"
	"github.com/spatialmodel/girgs/point"
)

type edge struct{ u, v int32 }

func TestSamplerThresholdNearPairIsEdge(t *testing.T) {
	r := 10.0
	pts := []point.Point{
		{ID: 0, Radius: 1.0, Angle: 0.0},
		{ID: 1, Radius: 1.0, Angle: 0.01},
	}
	h := cell.NewAngleHelper(12)
	bands := partition.NewHRGBands(r, 1.0)
	part := partition.Build(h, bands, pts, 12)
	model := NewHRGModel(r, 0)
	model.SetExtents(part.Extents)

	var got []edge
	s := New(h, part, model, func(u, v int32, _ int) { got = append(got, edge{u, v}) })
	s.Generate(Options{Seed: 1, Threads: 1})

	if len(got) != 1 {
		t.Fatalf("expected exactly one edge for a close pair well within R, got %d", len(got))
	}
}

func TestSamplerThresholdFarPairIsNotEdge(t *testing.T) {
	r := 1.0
	pts := []point.Point{
		{ID: 0, Radius: 0.0, Angle: 0.0},
		{ID: 1, Radius: 5.0, Angle: 3.14159},
	}
	h := cell.NewAngleHelper(12)
	bands := partition.NewHRGBands(r, 1.0)
	part := partition.Build(h, bands, pts, 12)
	model := NewHRGModel(r, 0)
	model.SetExtents(part.Extents)

	var got []edge
	s := New(h, part, model, func(u, v int32, _ int) { got = append(got, edge{u, v}) })
	s.Generate(Options{Seed: 1, Threads: 1})

	if len(got) != 0 {
		t.Fatalf("expected no edge for a pair far outside R, got %d", len(got))
	}
}

func TestSamplerCoverageInvariant(t *testing.T) {
	r := 6.0
	pts := make([]point.Point, 0, 20)
	for i := 0; i < 20; i++ {
		pts = append(pts, point.Point{
			ID:     int32(i),
			Radius: float64(i%7) * 0.8,
			Angle:  float64(i) * 0.31,
		})
	}
	h := cell.NewAngleHelper(12)
	bands := partition.NewHRGBands(r, 1.0)
	part := partition.Build(h, bands, pts, 12)
	model := NewHRGModel(r, 0)
	model.SetExtents(part.Extents)

	s := New(h, part, model, func(u, v int32, _ int) {})
	stats := s.Generate(Options{Seed: 1, Threads: 1})

	n := int64(len(pts))
	want := n * (n - 1)
	got := stats.TypeIChecks + stats.TypeIIChecks
	if got != want {
		t.Errorf("TypeIChecks+TypeIIChecks = %d, want %d (n*(n-1))", got, want)
	}
}

func TestSamplerNoDuplicateOrderedEdges(t *testing.T) {
	r := 6.0
	pts := make([]point.Point, 0, 30)
	for i := 0; i < 30; i++ {
		pts = append(pts, point.Point{
			ID:     int32(i),
			Radius: float64(i%9) * 0.6,
			Angle:  float64(i) * 0.21,
		})
	}
	h := cell.NewAngleHelper(12)
	bands := partition.NewHRGBands(r, 1.0)
	part := partition.Build(h, bands, pts, 12)
	model := NewHRGModel(r, 0.5)
	model.SetExtents(part.Extents)

	seen := make(map[edge]bool)
	s := New(h, part, model, func(u, v int32, _ int) {
		e := edge{u, v}
		rev := edge{v, u}
		if seen[e] || seen[rev] {
			t.Errorf("edge (%d,%d) emitted more than once (possibly with both orderings)", u, v)
		}
		seen[e] = true
	})
	s.Generate(Options{Seed: 42, Threads: 1})
}

func TestSamplerDeterministicAcrossRuns(t *testing.T) {
	r := 6.0
	pts := make([]point.Point, 0, 40)
	for i := 0; i < 40; i++ {
		pts = append(pts, point.Point{
			ID:     int32(i),
			Radius: float64(i%11) * 0.5,
			Angle:  float64(i) * 0.17,
		})
	}

	run := func() []edge {
		h := cell.NewAngleHelper(12)
		bands := partition.NewHRGBands(r, 1.0)
		part := partition.Build(h, bands, pts, 12)
		model := NewHRGModel(r, 0.5)
		model.SetExtents(part.Extents)
		var got []edge
		s := New(h, part, model, func(u, v int32, _ int) { got = append(got, edge{u, v}) })
		s.Generate(Options{Seed: 7, Threads: 1})
		sort.Slice(got, func(i, j int) bool {
			if got[i].u != got[j].u {
				return got[i].u < got[j].u
			}
			return got[i].v < got[j].v
		})
		return got
	}

	a := run()
	b := run()
	if len(a) != len(b) {
		t.Fatalf("edge counts differ across identical runs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("edge multiset differs at index %d: %v vs %v", i, a[i], b[i])
		}
	}
}
