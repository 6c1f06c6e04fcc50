// Package sampler implements the recursive cell-pair traversal that drives
// expected-linear-time edge sampling: at each (cellA, cellB, level)
// frontier it dispatches Type I (exhaustive, touching cells) or Type II
// (geometric-jump, non-touching cells) sampling and streams edges to a
// caller-supplied callback. Grounded on hypergirgs' HyperbolicTree.inl,
// generalized over CellHelper.Arity() so the same recursion drives both the
// D-dimensional torus (GIRG) and the 1-D angular partition (HRG).
package sampler

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/spatialmodel/girgs/cell"
	"github.com/spatialmodel/girgs/partition"
	"github.com/spatialmodel/girgs/point"
)

// EdgeCallback receives every sampled edge. It is invoked concurrently from
// up to Options.Threads goroutines; threadID lets the caller shard output
// without locking. Implementations must be safe for concurrent use or rely
// solely on threadID-based sharding.
type EdgeCallback func(u, v int32, threadID int)

// Model supplies the metric-specific pieces the traversal needs: the true
// distance between two points, the connection probability for that
// distance, an upper bound on connection probability for an entire
// non-touching band pair, and the T=0 threshold fast path. GIRG and HRG
// each provide one (sampler/girg.go, sampler/hrg.go).
type Model interface {
	// IsThreshold reports whether T == 0, selecting the deterministic
	// threshold rule over the stochastic sigmoid.
	IsThreshold() bool
	// Distance returns the true metric distance between two points.
	Distance(u, v point.Point) float64
	// ThresholdEdge reports, for the T=0 case, whether (u,v) is an edge.
	// Implementations may use a fast short-circuit (e.g. HRG's coshR
	// comparison) instead of comparing Distance against a threshold.
	ThresholdEdge(u, v point.Point) bool
	// ConnectionProbability returns p(dist) for a pair at the given true
	// distance, T > 0 only.
	ConnectionProbability(dist float64, u, v point.Point) float64
	// UpperBoundProbability returns p*, an upper bound on the connection
	// probability of any pair drawn from band i in one cell and band j in
	// another, given cellDist, the CellHelper's lower-bound distance
	// between the two (non-touching) cell regions.
	UpperBoundProbability(i, j int, cellDist float64) float64
}

// Stats holds the debug coverage counters from §8 Invariant 1: their sum
// must equal n*(n-1) over a complete Generate call.
type Stats struct {
	TypeIChecks  int64
	TypeIIChecks int64
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.TypeIChecks += other.TypeIChecks
	s.TypeIIChecks += other.TypeIIChecks
}

// Options configures a Generate run.
type Options struct {
	// Seed seeds the per-worker RNGs as Seed+threadID. A negative Seed
	// draws from a hardware entropy source instead.
	Seed int64
	// Threads is the worker count. 0 or 1 runs single-threaded.
	Threads int
	// FirstParallelLevel is the level at which the sequential prelude
	// hands off to the worker pool. 0 picks a default (5, as in
	// hypergirgs) clamped to the partition's depth.
	FirstParallelLevel int
}

// Sampler runs the recursive traversal over one Partition.
type Sampler struct {
	h        cell.Helper
	part     *partition.Partition
	model    Model
	callback EdgeCallback
}

// New builds a Sampler over an already-built Partition.
func New(h cell.Helper, part *partition.Partition, model Model, callback EdgeCallback) *Sampler {
	return &Sampler{h: h, part: part, model: model, callback: callback}
}

type worker struct {
	id    int
	rng   *rand.Rand
	stats Stats
}

// Generate runs the traversal to completion, starting from (0,0,0), and
// returns the aggregated coverage counters.
func (s *Sampler) Generate(opts Options) Stats {
	threads := opts.Threads
	if threads < 1 {
		threads = 1
	}
	if threads == 1 {
		w := &worker{id: 0, rng: newWorkerRand(opts.Seed, 0)}
		s.visitCellPair(0, 0, 0, w)
		return w.stats
	}

	firstParallelLevel := opts.FirstParallelLevel
	if firstParallelLevel <= 0 {
		firstParallelLevel = 5
	}
	if firstParallelLevel >= s.part.Levels {
		firstParallelLevel = s.part.Levels - 1
	}
	if firstParallelLevel <= 0 {
		// Partition too shallow to parallelise; fall back to single-threaded.
		w := &worker{id: 0, rng: newWorkerRand(opts.Seed, 0)}
		s.visitCellPair(0, 0, 0, w)
		return w.stats
	}

	// Every worker RNG is seeded up front, mirroring hypergirgs: the
	// sequential prelude below runs on worker 0's own generator, and that
	// generator's state carries forward into the parallel phase rather
	// than being reseeded.
	workers := make([]*worker, threads)
	for t := 0; t < threads; t++ {
		workers[t] = &worker{id: t, rng: newWorkerRand(opts.Seed, t)}
	}

	parallelCells := s.h.NumCellsInLevel(firstParallelLevel)
	firstParallelCell := s.h.FirstCellOfLevel(firstParallelLevel)
	parallelCalls := make([][]int, parallelCells)
	s.visitCellPairSequentialStart(0, 0, 0, firstParallelLevel, parallelCalls, workers[0])

	// Static partitioning of the parallel_cells root calls across threads
	// is mandated for reproducibility: the work each thread does never
	// depends on runtime scheduling.
	done := make(chan int, threads)
	for t := 0; t < threads; t++ {
		go func(t int) {
			w := workers[t]
			for i := t; i < parallelCells; i += threads {
				currentCell := firstParallelCell + i
				for _, partner := range parallelCalls[i] {
					s.visitCellPair(currentCell, partner, firstParallelLevel, w)
				}
			}
			done <- t
		}(t)
	}
	var total Stats
	for i := 0; i < threads; i++ {
		<-done
	}
	for _, w := range workers {
		total.Add(w.stats)
	}
	return total
}

func newWorkerRand(seed int64, threadID int) *rand.Rand {
	if seed < 0 {
		return rand.New(rand.NewSource(rand.Int63()))
	}
	return rand.New(rand.NewSource(seed + int64(threadID)))
}

// visitCellPair is the core recursion of §4.4: Case A (non-touching) fans
// out to Type II for every descendant level's layer pairs and stops; Case B
// (touching) samples Type I at this level then recurses into child cell
// combinations.
func (s *Sampler) visitCellPair(a, b, level int, w *worker) {
	if !s.h.Touching(a, b, level) {
		for l := level; l < s.part.Levels; l++ {
			for _, lp := range s.part.LayerPairs[l] {
				s.sampleTypeII(a, b, level, lp.I, lp.J, w)
			}
		}
		return
	}

	for _, lp := range s.part.LayerPairs[level] {
		if a != b || lp.I <= lp.J {
			s.sampleTypeI(a, b, level, lp.I, lp.J, w)
		}
	}

	if level == s.part.Levels-1 {
		return
	}

	arity := s.h.Arity()
	fA := s.h.FirstChild(a, level)
	fB := s.h.FirstChild(b, level)
	for k := 0; k < arity; k++ {
		for m := 0; m < arity; m++ {
			if a == b && k > m {
				continue // upper-triangular restriction avoids double-visiting (fA+m,fB+k)
			}
			s.visitCellPair(fA+k, fB+m, level+1, w)
		}
	}
}

// visitCellPairSequentialStart mirrors visitCellPair down to
// firstParallelLevel, but instead of recursing past it, records every
// (cellA, partnerB) call that would be made so the parallel phase can
// replay them on a static per-thread schedule.
func (s *Sampler) visitCellPairSequentialStart(a, b, level, firstParallelLevel int, calls [][]int, w *worker) {
	if !s.h.Touching(a, b, level) {
		for l := level; l < s.part.Levels; l++ {
			for _, lp := range s.part.LayerPairs[l] {
				s.sampleTypeII(a, b, level, lp.I, lp.J, w)
			}
		}
		return
	}

	for _, lp := range s.part.LayerPairs[level] {
		if a != b || lp.I <= lp.J {
			s.sampleTypeI(a, b, level, lp.I, lp.J, w)
		}
	}

	if level == s.part.Levels-1 {
		return
	}

	arity := s.h.Arity()
	fA := s.h.FirstChild(a, level)
	fB := s.h.FirstChild(b, level)
	if level+1 != firstParallelLevel {
		for k := 0; k < arity; k++ {
			for m := 0; m < arity; m++ {
				if a == b && k > m {
					continue
				}
				s.visitCellPairSequentialStart(fA+k, fB+m, level+1, firstParallelLevel, calls, w)
			}
		}
		return
	}

	offset := s.h.FirstCellOfLevel(firstParallelLevel)
	for k := 0; k < arity; k++ {
		for m := 0; m < arity; m++ {
			if a == b && k > m {
				continue
			}
			calls[fA+k-offset] = append(calls[fA+k-offset], fB+m)
		}
	}
}

// sampleTypeI exhaustively enumerates every pair in the touching cells a
// (band i) and b (band j), with the usual triangular restriction when a==b
// and i==j avoids visiting (v,u) after (u,v).
func (s *Sampler) sampleTypeI(a, b, level, i, j int, w *worker) {
	layerI := s.part.Layers[i]
	layerJ := s.part.Layers[j]
	ptsA := layerI.CellPoints(a, level)
	ptsB := layerJ.CellPoints(b, level)
	if len(ptsA) == 0 || len(ptsB) == 0 {
		return
	}

	triangular := a == b && i == j
	if triangular {
		w.stats.TypeIChecks += int64(len(ptsA)) * int64(len(ptsA)-1)
	} else {
		w.stats.TypeIChecks += 2 * int64(len(ptsA)) * int64(len(ptsB))
	}

	for kA, u := range ptsA {
		start := 0
		if triangular {
			start = kA + 1
		}
		for _, v := range ptsB[start:] {
			if s.model.IsThreshold() {
				if s.model.ThresholdEdge(u, v) {
					s.callback(u.ID, v.ID, w.id)
				}
				continue
			}
			dist := s.model.Distance(u, v)
			p := s.model.ConnectionProbability(dist, u, v)
			if w.rng.Float64() < p {
				s.callback(u.ID, v.ID, w.id)
			}
		}
	}
}

// sampleTypeII implements §4.4.2: a geometric jump process visits only the
// candidate pairs that clear the band pair's upper-bound probability p*,
// then accepts each candidate with probability p(dist)/p*.
func (s *Sampler) sampleTypeII(a, b, level, i, j int, w *worker) {
	layerI := s.part.Layers[i]
	layerJ := s.part.Layers[j]
	sizeA := int64(layerI.PointsInCell(a, level))
	sizeB := int64(layerJ.PointsInCell(b, level))

	if s.model.IsThreshold() || sizeA == 0 || sizeB == 0 {
		w.stats.TypeIIChecks += 2 * sizeA * sizeB
		return
	}

	cellDist := s.h.Dist(a, b, level)
	pStar := s.model.UpperBoundProbability(i, j, cellDist)

	if pStar == 1.0 {
		// 1.0 is not a valid geometric-distribution parameter; every pair
		// must be visited, so this degenerates to Type I.
		s.sampleTypeI(a, b, level, i, j, w)
		return
	}

	w.stats.TypeIIChecks += 2 * sizeA * sizeB

	if pStar <= 1e-10 {
		return
	}

	geo := distuv.Geometric{P: pStar, Src: w.rng}
	n := sizeA * sizeB
	for r := int64(geo.Rand()); r < n; r += 1 + int64(geo.Rand()) {
		u := layerI.KthPoint(a, level, int32(r%sizeA))
		v := layerJ.KthPoint(b, level, int32(r/sizeA))
		dist := s.model.Distance(u, v)
		p := s.model.ConnectionProbability(dist, u, v)
		if w.rng.Float64() < p/pStar {
			s.callback(u.ID, v.ID, w.id)
		}
	}
}
