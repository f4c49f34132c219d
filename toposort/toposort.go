// Package toposort implements topological ordering of directed graphs
// using Kahn's algorithm, as a resumable state machine: one zero-in-degree
// vertex is removed per Step.
//
// On success the source graph's vertex iteration order is rewritten to the
// computed order, an observable side effect callers can rely on. If any
// vertex never reaches zero in-degree the graph is cyclic and the sort
// fails with a boolean verdict, leaving the iteration order untouched.
//
// Remaining in-degrees live in the vertex scratch Order field of the
// current run; the incoming-edge lists that directed graphs maintain make
// the initial count O(1) per vertex.
//
// Complexity: O(V + E) time, O(V) memory.
package toposort

import (
	"errors"

	"github.com/gryphlib/gryph/core"
)

// Sentinel errors for sorter construction.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrUndirectedGraph is returned when the graph is not directed;
	// every undirected edge is a two-cycle under Kahn's scheme.
	ErrUndirectedGraph = errors.New("toposort: directed graph required")
)

// Sorter is one Kahn run over a directed graph. It must not interleave
// with any other algorithm run against the same graph.
type Sorter[V comparable] struct {
	graph core.Graph[V]
	run   uint64

	queue []*core.Vertex[V] // zero-in-degree frontier, FIFO
	order []V

	done bool
}

// New builds a sorter with every vertex's remaining in-degree counted and
// the zero-in-degree frontier seeded in iteration order. Returns
// ErrGraphNil or ErrUndirectedGraph for invalid input.
func New[V comparable](g core.Graph[V]) (*Sorter[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	s := &Sorter[V]{
		graph: g,
		run:   g.NewRun(),
		order: make([]V, 0, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		rec, ok := g.Vertex(v)
		if !ok {
			continue
		}
		rec.Touch(s.run)
		rec.Order = len(rec.In())
		if rec.Order == 0 {
			s.queue = append(s.queue, rec)
		}
	}

	return s, nil
}

// Finished reports whether the run has completed: frontier exhausted,
// whether or not every vertex was emitted.
func (s *Sorter[V]) Finished() bool { return s.done }

// Succeeded reports whether every vertex reached zero in-degree.
// Meaningful once Finished; false means the graph contains a cycle.
func (s *Sorter[V]) Succeeded() bool {
	return s.done && len(s.order) == s.graph.VertexCount()
}

// Order returns the vertices emitted so far.
func (s *Sorter[V]) Order() []V { return s.order }

// Step removes one zero-in-degree vertex, appends it to the output order,
// and decrements its out-neighbors' remaining in-degrees. Calling Step
// after completion is a no-op.
func (s *Sorter[V]) Step() {
	if s.done {
		return
	}
	if len(s.queue) == 0 {
		s.done = true

		return
	}
	u := s.queue[0]
	s.queue = s.queue[1:]
	s.order = append(s.order, u.Value())

	for _, e := range u.Out() {
		w, ok := s.graph.Vertex(e.To())
		if !ok {
			continue
		}
		w.Order--
		if w.Order == 0 {
			s.queue = append(s.queue, w)
		}
	}
}

// Run drives Step until Finished. On success it rewrites the graph's
// vertex iteration order to the computed order and returns (order, true);
// on a cyclic graph it returns (partial order, false) and leaves the
// iteration order untouched.
func (s *Sorter[V]) Run() ([]V, bool) {
	for !s.done {
		s.Step()
	}
	if !s.Succeeded() {
		return s.order, false
	}
	s.graph.Reorder(s.order)

	return s.order, true
}

// Sort computes a topological order of g, rewriting g's vertex iteration
// order as a side effect on success. An undirected graph sorts trivially
// when edgeless and fails otherwise; a nil graph fails.
func Sort[V comparable](g core.Graph[V]) ([]V, bool) {
	if g == nil {
		return nil, false
	}
	if !g.Directed() {
		if g.EdgeCount() > 0 {
			return nil, false
		}

		return g.Vertices(), true
	}
	s, err := New(g)
	if err != nil {
		return nil, false
	}

	return s.Run()
}
