// This file implements cycle detection for both graph variants.
//
// Directed graphs use an iterative depth-first walk with the classic
// three-color scheme (white / gray-on-stack / black); an edge into a gray
// vertex is a back-edge and signals a cycle. Undirected graphs use
// parent-tracking discovery: any edge connecting two already discovered
// vertices, other than the edge just used to arrive, signals a cycle.
//
// Only the boolean verdict is produced; the cycle itself is not
// reconstructed.
//
// Complexity: O(V + E) time, O(V) memory.

package dfs

import "github.com/gryphlib/gryph/core"

// HasCycle reports whether g contains at least one cycle. A nil graph is
// cycle-free by convention. Self-loops count as cycles.
func HasCycle[V comparable](g core.Graph[V]) bool {
	if g == nil {
		return false
	}
	if g.Directed() {
		return hasDirectedCycle(g)
	}

	return hasUndirectedCycle(g)
}

// frame is one explicit-stack entry: a vertex and the index of the next
// outgoing edge to examine.
type frame[V comparable] struct {
	v   *core.Vertex[V]
	idx int
}

// hasDirectedCycle runs three-color DFS from every undiscovered vertex.
// The color lives in the scratch Order field of the current run.
func hasDirectedCycle[V comparable](g core.Graph[V]) bool {
	run := g.NewRun()
	for _, root := range g.Vertices() {
		rec, ok := g.Vertex(root)
		if !ok {
			continue
		}
		rec.Touch(run)
		if rec.Order != white {
			continue
		}
		rec.Order = gray
		stack := []frame[V]{{v: rec}}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			out := f.v.Out()
			if f.idx >= len(out) {
				f.v.Order = black
				stack = stack[:len(stack)-1]

				continue
			}
			e := out[f.idx]
			f.idx++
			w, ok := g.Vertex(e.To())
			if !ok {
				continue
			}
			w.Touch(run)
			switch w.Order {
			case white:
				w.Order = gray
				stack = append(stack, frame[V]{v: w})
			case gray:
				// Back-edge to a vertex still on the stack.
				return true
			}
		}
	}

	return false
}

// hasUndirectedCycle runs parent-tracking discovery from every
// undiscovered vertex. The edge used to reach a vertex is remembered in
// PrevEdge; its mirror is the one legal route back.
func hasUndirectedCycle[V comparable](g core.Graph[V]) bool {
	run := g.NewRun()
	for _, root := range g.Vertices() {
		rec, ok := g.Vertex(root)
		if !ok {
			continue
		}
		rec.Touch(run)
		if rec.Visited {
			continue
		}
		rec.Visited = true
		stack := []*core.Vertex[V]{rec}
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, e := range u.Out() {
				if e.To() == u.Value() {
					// Self-loop.
					return true
				}
				if u.PrevEdge != nil && e == u.PrevEdge.Mirror() {
					// The edge we arrived through.
					continue
				}
				w, ok := g.Vertex(e.To())
				if !ok {
					continue
				}
				w.Touch(run)
				if w.Visited {
					// Non-tree edge between discovered vertices.
					return true
				}
				w.Visited = true
				w.Prev = u
				w.PrevEdge = e
				stack = append(stack, w)
			}
		}
	}

	return false
}
