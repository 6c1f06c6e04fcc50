package girgs

import "testing"

func TestGenerateGIRGValidatesN(t *testing.T) {
	_, err := GenerateGIRG(GIRGOptions{N: 0, Dimension: 2}, func(int32, int32, int) {})
	if err != ErrTooFewPoints {
		t.Fatalf("expected ErrTooFewPoints, got %v", err)
	}
}

func TestGenerateHRGValidatesAlpha(t *testing.T) {
	_, err := GenerateHRG(HRGOptions{N: 10, Alpha: 0}, func(int32, int32, int) {})
	if err != ErrNonPositiveAlpha {
		t.Fatalf("expected ErrNonPositiveAlpha, got %v", err)
	}
}

func TestGenerateHRGSmallGraphRuns(t *testing.T) {
	var edges int
	opts := HRGOptions{
		N:            200,
		Alpha:        1.0,
		Temperature:  0,
		AvgDegree:    6,
		RadiusSeed:   1,
		AngleSeed:    2,
		SamplingSeed: 3,
		Threads:      1,
	}
	stats, err := GenerateHRG(opts, func(u, v int32, _ int) {
		edges++
		if u == v {
			t.Errorf("self-loop emitted: (%d,%d)", u, v)
		}
	})
	if err != nil {
		t.Fatalf("GenerateHRG returned error: %v", err)
	}
	n := int64(opts.N)
	if got := stats.TypeIChecks + stats.TypeIIChecks; got != n*(n-1) {
		t.Errorf("coverage invariant failed: got %d, want %d", got, n*(n-1))
	}
}

func TestGenerateGIRGSmallGraphRuns(t *testing.T) {
	var edges int
	opts := GIRGOptions{
		N:            200,
		Dimension:    2,
		PLE:          2.5,
		Alpha:        0, // threshold model
		AvgDegree:    6,
		WeightSeed:   1,
		PositionSeed: 2,
		SamplingSeed: 3,
		Threads:      1,
	}
	stats, err := GenerateGIRG(opts, func(u, v int32, _ int) {
		edges++
		if u == v {
			t.Errorf("self-loop emitted: (%d,%d)", u, v)
		}
	})
	if err != nil {
		t.Fatalf("GenerateGIRG returned error: %v", err)
	}
	n := int64(opts.N)
	if got := stats.TypeIChecks + stats.TypeIIChecks; got != n*(n-1) {
		t.Errorf("coverage invariant failed: got %d, want %d", got, n*(n-1))
	}
}

func TestGenerateHRGDeterministic(t *testing.T) {
	opts := HRGOptions{
		N:            150,
		Alpha:        1.0,
		Temperature:  0.5,
		AvgDegree:    5,
		RadiusSeed:   10,
		AngleSeed:    20,
		SamplingSeed: 30,
		Threads:      1,
	}
	run := func() []int64 {
		var got []int64
		GenerateHRG(opts, func(u, v int32, _ int) { got = append(got, int64(u)<<32|int64(v)) })
		return got
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("edge counts differ across identical runs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("edge multiset differs at index %d", i)
			break
		}
	}
}
