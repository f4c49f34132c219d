// Package search implements resumable best-first shortest-path search:
// A* when a heuristic is supplied, plain Dijkstra when it is not. One
// engine serves both; the heuristic only contributes to the frontier key.
//
// The engine is a single-threaded cooperative state machine: Step performs
// one unit of work (finalize one vertex and relax its outgoing edges),
// Finished reports completion, and Run drives Step to completion. Callers
// with a per-frame step budget drive Step themselves.
//
// Frontier ordering uses an indexed min-heap keyed by distance + estimate
// with true decrease-key, so the frontier never holds duplicate entries
// and extraction order is deterministic for a fixed insertion order.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
package search

import (
	"github.com/gryphlib/gryph/core"
	"github.com/gryphlib/gryph/pqueue"
)

// Search is one best-first run over a graph. A Search must not interleave
// with any other algorithm run against the same graph: vertex scratch
// state belongs to the run holding the current stamp.
type Search[V comparable] struct {
	graph core.Graph[V]
	goal  *core.Vertex[V]
	run   uint64
	opts  Options[V]

	heap  *pqueue.Heap[*core.Vertex[V]]
	items map[*core.Vertex[V]]*pqueue.Item[*core.Vertex[V]]

	steps int
	done  bool
	found bool
	err   error
}

// New builds a search machine bound to g's vertex records, seeded with the
// start vertex at distance 0. Returns ErrGraphNil, ErrStartVertexNotFound,
// or ErrGoalVertexNotFound for invalid input.
func New[V comparable](g core.Graph[V], start, goal V, opts ...Option[V]) (*Search[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	src, ok := g.Vertex(start)
	if !ok {
		return nil, ErrStartVertexNotFound
	}
	dst, ok := g.Vertex(goal)
	if !ok {
		return nil, ErrGoalVertexNotFound
	}

	s := &Search[V]{
		graph: g,
		goal:  dst,
		run:   g.NewRun(),
		opts:  o,
		heap:  pqueue.New[*core.Vertex[V]](),
		items: make(map[*core.Vertex[V]]*pqueue.Item[*core.Vertex[V]]),
	}

	// Seed: start at distance 0, estimate computed on first sight.
	src.Touch(s.run)
	src.Dist = 0
	src.Estimate = s.estimate(start)
	s.items[src] = s.heap.Insert(src, src.Estimate)

	return s, nil
}

// Finished reports whether the run has completed: goal finalized, frontier
// exhausted, terminated by the visitor, or cancelled.
func (s *Search[V]) Finished() bool { return s.done }

// Found reports whether the goal was reached. Meaningful once Finished.
func (s *Search[V]) Found() bool { return s.found }

// Steps returns the number of vertices processed so far.
func (s *Search[V]) Steps() int { return s.steps }

// Step performs one unit of work: pop the minimum-key frontier vertex,
// report it to the visitor, check the goal, and relax its outgoing edges.
// Calling Step after completion is a no-op. Returns the context's error
// on cancellation.
func (s *Search[V]) Step() error {
	if s.done {
		return s.err
	}
	select {
	case <-s.opts.Ctx.Done():
		s.done = true
		s.err = s.opts.Ctx.Err()

		return s.err
	default:
	}

	u, ok := s.heap.ExtractMin()
	if !ok {
		// Frontier exhausted: no path exists.
		s.done = true

		return nil
	}
	delete(s.items, u)
	if u.Visited {
		// Stale entry; cannot occur with decrease-key, kept as a guard.
		return nil
	}
	u.Visited = true

	if s.opts.Logger != nil {
		s.opts.Logger.Debugf("search: finalize %v dist=%g step=%d", u.Value(), u.Dist, s.steps)
	}

	// Visitor verdict precedes the goal check: Terminate aborts the run
	// outright, Ignore suppresses relaxation but keeps the vertex.
	signal := core.Continue
	if s.opts.Processor != nil {
		signal = s.opts.Processor(core.Step[V]{
			Vertex: u.Value(),
			Edge:   u.PrevEdge,
			Depth:  u.Order,
			Count:  s.steps,
		})
	}
	s.steps++
	if signal == core.Terminate {
		s.done = true

		return nil
	}

	if u == s.goal {
		// Heap ordering guarantees no unexplored vertex has a smaller
		// tentative cost, so the remaining frontier can be discarded.
		s.done = true
		s.found = true

		return nil
	}
	if signal == core.Ignore {
		return nil
	}

	s.relax(u)

	return nil
}

// relax attempts to improve the tentative distance of every out-neighbor
// of u, inserting or re-keying frontier entries as needed.
func (s *Search[V]) relax(u *core.Vertex[V]) {
	for _, e := range u.Out() {
		v, ok := s.graph.Vertex(e.To())
		if !ok {
			continue
		}
		if v.Touch(s.run) {
			// First sight in this run: the estimate is computed once
			// and stays fixed for the whole search.
			v.Estimate = s.estimate(e.To())
		}
		if v.Visited {
			continue
		}
		candidate := u.Dist + e.Weight()
		if candidate >= v.Dist {
			continue
		}
		v.Dist = candidate
		v.Prev = u
		v.PrevEdge = e
		v.Order = u.Order + 1

		key := candidate + v.Estimate
		if it, queued := s.items[v]; queued {
			s.heap.DecreaseKey(it, key)
		} else {
			s.items[v] = s.heap.Insert(v, key)
		}
	}
}

// Run drives Step until Finished, then returns the resulting path.
// A zero-length path means no route exists (or the run was terminated).
func (s *Search[V]) Run() (*core.Path[V], error) {
	for !s.done {
		if err := s.Step(); err != nil {
			return core.NewPath[V](), err
		}
	}

	return s.Path(), s.err
}

// Path builds the result by backtracking predecessor links from the goal.
// Returns the explicit empty-path sentinel when the goal was not reached.
func (s *Search[V]) Path() *core.Path[V] {
	p := core.NewPath[V]()
	if !s.found {
		return p
	}
	for v := s.goal; v != nil; v = v.Prev {
		p.PushFront(v.Value())
		if v.PrevEdge != nil {
			p.AddLength(v.PrevEdge.Weight())
		}
	}

	return p
}

// estimate applies the configured heuristic, defaulting to zero.
func (s *Search[V]) estimate(v V) float64 {
	if s.opts.Heuristic == nil {
		return 0
	}

	return s.opts.Heuristic(v, s.goal.Value())
}

// FindPath runs a complete search from start to goal and returns the
// shortest path found, or the empty-path sentinel if goal is unreachable.
// Construction errors (nil graph, absent endpoints) are returned as-is.
func FindPath[V comparable](g core.Graph[V], start, goal V, opts ...Option[V]) (*core.Path[V], error) {
	s, err := New(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	return s.Run()
}
