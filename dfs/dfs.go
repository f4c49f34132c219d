// Package dfs implements visitor-driven depth-first traversal as a
// resumable state machine over an explicit LIFO stack (no recursion, so
// call depth stays bounded regardless of graph shape).
//
// Neighbors are marked visited immediately upon discovery, not upon
// processing, so no vertex is ever pushed twice. Neighbors are pushed in
// reverse adjacency order, which makes the machine process a vertex's
// first out-edge first, the order recursive descent would produce.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"github.com/gryphlib/gryph/core"
)

// DFS is one depth-first run over a graph. It must not interleave with
// any other algorithm run against the same graph.
type DFS[V comparable] struct {
	graph core.Graph[V]
	run   uint64
	opts  Options[V]

	stack []*core.Vertex[V]
	res   *Result[V]

	steps int
	done  bool
	err   error
}

// New builds a traversal machine seeded with the start vertex. Returns
// ErrGraphNil or ErrStartVertexNotFound for invalid input.
func New[V comparable](g core.Graph[V], start V, opts ...Option[V]) (*DFS[V], error) {
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

	d := &DFS[V]{
		graph: g,
		run:   g.NewRun(),
		opts:  o,
		res:   &Result[V]{Tree: g.Empty()},
	}

	src.Touch(d.run)
	src.Visited = true
	src.Dist = 0
	d.res.Tree.AddVertex(start)
	d.stack = append(d.stack, src)

	return d, nil
}

// Finished reports whether the traversal has completed.
func (d *DFS[V]) Finished() bool { return d.done }

// Steps returns the number of vertices processed so far.
func (d *DFS[V]) Steps() int { return d.steps }

// Result returns the traversal record accumulated so far.
func (d *DFS[V]) Result() *Result[V] { return d.res }

// Step processes one stacked vertex: record it, report it to the visitor,
// and discover its unvisited neighbors. Calling Step after completion is
// a no-op. Returns the context's error on cancellation.
func (d *DFS[V]) Step() error {
	if d.done {
		return d.err
	}
	select {
	case <-d.opts.Ctx.Done():
		d.done = true
		d.err = d.opts.Ctx.Err()

		return d.err
	default:
	}

	if len(d.stack) == 0 {
		d.done = true

		return nil
	}
	u := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]

	d.res.Order = append(d.res.Order, u.Value())

	if d.opts.Logger != nil {
		d.opts.Logger.Debugf("dfs: process %v depth=%d step=%d", u.Value(), u.Order, d.steps)
	}

	signal := core.Continue
	if d.opts.Processor != nil {
		signal = d.opts.Processor(core.Step[V]{
			Vertex: u.Value(),
			Edge:   u.PrevEdge,
			Depth:  u.Order,
			Count:  d.steps,
		})
	}
	d.steps++
	switch signal {
	case core.Terminate:
		d.done = true

		return nil
	case core.Ignore:
		return nil
	}

	d.discover(u)

	return nil
}

// discover pushes every unvisited out-neighbor of u in reverse adjacency
// order, extending the discovery tree and accumulating edge weights into
// distances as a byproduct.
func (d *DFS[V]) discover(u *core.Vertex[V]) {
	out := u.Out()
	for i := len(out) - 1; i >= 0; i-- {
		e := out[i]
		v, ok := d.graph.Vertex(e.To())
		if !ok {
			continue
		}
		v.Touch(d.run)
		if v.Visited {
			continue
		}
		v.Visited = true
		v.Prev = u
		v.PrevEdge = e
		v.Order = u.Order + 1
		v.Dist = u.Dist + e.Weight()

		d.res.Tree.AddVertex(e.To())
		d.res.Tree.AddEdge(u.Value(), e.To(), e.Weight())
		d.stack = append(d.stack, v)
	}
}

// Run drives Step until Finished and returns the traversal record.
func (d *DFS[V]) Run() (*Result[V], error) {
	for !d.done {
		if err := d.Step(); err != nil {
			return d.res, err
		}
	}

	return d.res, d.err
}

// Traverse runs a complete depth-first traversal from start.
func Traverse[V comparable](g core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	d, err := New(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return d.Run()
}
