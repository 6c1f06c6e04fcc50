// Package graphio collects the streamed output of a Generate call into an
// adjacency structure and exports it, the "persisted format" collaborator
// of §6. It is not part of the core engine: Graph only ever observes the
// edges a Sampler emits through an EdgeCallback.
package graphio

import (
	"github.com/ctessum/sparse"
)

// Graph is a sparse, undirected adjacency matrix over node ids 0..n-1,
// built incrementally from a stream of (u, v) edges.
type Graph struct {
	n     int
	adj   *sparse.SparseArray
	edges int
}

// New allocates a Graph for n nodes.
func New(n int) *Graph {
	return &Graph{n: n, adj: sparse.ZerosSparse(n, n)}
}

// Collector returns an EdgeCallback-compatible closure that records every
// edge into g; threadID is ignored, since sparse.SparseArray's map-backed
// storage is not safe for concurrent writers, so callers running a
// multi-threaded Generate must route edges through a single collector
// goroutine (e.g. a buffered channel drained serially).
func (g *Graph) Collector() func(u, v int32, threadID int) {
	return func(u, v int32, _ int) {
		g.AddEdge(u, v)
	}
}

// AddEdge records an undirected edge between u and v.
func (g *Graph) AddEdge(u, v int32) {
	if g.adj.Get(int(u), int(v)) == 0 {
		g.edges++
	}
	g.adj.Set(1, int(u), int(v))
	g.adj.Set(1, int(v), int(u))
}

// N returns the number of nodes.
func (g *Graph) N() int { return g.n }

// M returns the number of distinct undirected edges recorded.
func (g *Graph) M() int { return g.edges }

// Neighbors returns every node adjacent to u.
func (g *Graph) Neighbors(u int32) []int32 {
	var out []int32
	for v := 0; v < g.n; v++ {
		if g.adj.Get(int(u), v) != 0 {
			out = append(out, int32(v))
		}
	}
	return out
}

// Degree returns the degree of node u.
func (g *Graph) Degree(u int32) int {
	return len(g.Neighbors(u))
}

// DegreeSequence returns the degree of every node, indexed by id.
func (g *Graph) DegreeSequence() []int {
	degs := make([]int, g.n)
	for u := 0; u < g.n; u++ {
		degs[u] = g.Degree(int32(u))
	}
	return degs
}

// AverageDegree returns 2*M()/N().
func (g *Graph) AverageDegree() float64 {
	if g.n == 0 {
		return 0
	}
	return 2 * float64(g.edges) / float64(g.n)
}
