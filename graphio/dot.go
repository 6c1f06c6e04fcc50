package graphio

import (
	"fmt"
	"io"
)

// WriteDOT writes g as a standard undirected DOT graph with integer vertex
// ids 0..n-1, the optional persisted format from §6.
func WriteDOT(w io.Writer, g *Graph, name string) error {
	if _, err := fmt.Fprintf(w, "graph %s {\n", name); err != nil {
		return err
	}
	for u := 0; u < g.n; u++ {
		if _, err := fmt.Fprintf(w, "  %d;\n", u); err != nil {
			return err
		}
	}
	for u := 0; u < g.n; u++ {
		for v := u + 1; v < g.n; v++ {
			if g.adj.Get(u, v) == 0 {
				continue
			}
			if _, err := fmt.Fprintf(w, "  %d -- %d;\n", u, v); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprint(w, "}\n")
	return err
}
