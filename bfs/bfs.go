// Package bfs implements visitor-driven breadth-first traversal as a
// resumable state machine: one dequeued vertex per Step, a Finished
// predicate, and a Run driver.
//
// Neighbors are marked visited immediately upon discovery, not upon
// processing, so no vertex is ever enqueued twice. Edge weights are
// accumulated into each vertex's distance purely as a byproduct of the
// discovery tree; they play no part in the ordering.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs

import (
	"github.com/gryphlib/gryph/core"
)

// BFS is one breadth-first run over a graph. It must not interleave with
// any other algorithm run against the same graph.
type BFS[V comparable] struct {
	graph core.Graph[V]
	run   uint64
	opts  Options[V]

	queue []*core.Vertex[V]
	res   *Result[V]

	steps int
	done  bool
	err   error
}

// New builds a traversal machine seeded with the start vertex. Returns
// ErrGraphNil or ErrStartVertexNotFound for invalid input.
func New[V comparable](g core.Graph[V], start V, opts ...Option[V]) (*BFS[V], error) {
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

	b := &BFS[V]{
		graph: g,
		run:   g.NewRun(),
		opts:  o,
		res:   &Result[V]{Tree: g.Empty()},
	}

	// Seed: discovering the root marks it visited at once.
	src.Touch(b.run)
	src.Visited = true
	src.Dist = 0
	b.res.Tree.AddVertex(start)
	b.queue = append(b.queue, src)

	return b, nil
}

// Finished reports whether the traversal has completed.
func (b *BFS[V]) Finished() bool { return b.done }

// Steps returns the number of vertices processed so far.
func (b *BFS[V]) Steps() int { return b.steps }

// Result returns the traversal record accumulated so far.
func (b *BFS[V]) Result() *Result[V] { return b.res }

// Step processes one queued vertex: record it, report it to the visitor,
// and discover its unvisited neighbors. Calling Step after completion is
// a no-op. Returns the context's error on cancellation.
func (b *BFS[V]) Step() error {
	if b.done {
		return b.err
	}
	select {
	case <-b.opts.Ctx.Done():
		b.done = true
		b.err = b.opts.Ctx.Err()

		return b.err
	default:
	}

	if len(b.queue) == 0 {
		b.done = true

		return nil
	}
	u := b.queue[0]
	b.queue = b.queue[1:]

	// Ignored vertices stay in the traversal record; only expansion is
	// suppressed.
	b.res.Order = append(b.res.Order, u.Value())

	if b.opts.Logger != nil {
		b.opts.Logger.Debugf("bfs: process %v depth=%d step=%d", u.Value(), u.Order, b.steps)
	}

	signal := core.Continue
	if b.opts.Processor != nil {
		signal = b.opts.Processor(core.Step[V]{
			Vertex: u.Value(),
			Edge:   u.PrevEdge,
			Depth:  u.Order,
			Count:  b.steps,
		})
	}
	b.steps++
	switch signal {
	case core.Terminate:
		b.done = true

		return nil
	case core.Ignore:
		return nil
	}

	b.discover(u)

	return nil
}

// discover enqueues every unvisited out-neighbor of u, extending the
// discovery tree and accumulating edge weights into distances.
func (b *BFS[V]) discover(u *core.Vertex[V]) {
	for _, e := range u.Out() {
		v, ok := b.graph.Vertex(e.To())
		if !ok {
			continue
		}
		v.Touch(b.run)
		if v.Visited {
			continue
		}
		v.Visited = true
		v.Prev = u
		v.PrevEdge = e
		v.Order = u.Order + 1
		v.Dist = u.Dist + e.Weight()

		b.res.Tree.AddVertex(e.To())
		b.res.Tree.AddEdge(u.Value(), e.To(), e.Weight())
		b.queue = append(b.queue, v)
	}
}

// Run drives Step until Finished and returns the traversal record.
func (b *BFS[V]) Run() (*Result[V], error) {
	for !b.done {
		if err := b.Step(); err != nil {
			return b.res, err
		}
	}

	return b.res, b.err
}

// Traverse runs a complete breadth-first traversal from start.
func Traverse[V comparable](g core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	b, err := New(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return b.Run()
}
