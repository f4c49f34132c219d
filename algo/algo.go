// Package algo ties the engine family together behind a per-graph facade.
// A facade is scoped to one graph and its directedness; it instantiates
// the relevant state machine per call, runs it to completion, and yields
// a path or a derived graph. Callers that need step-by-step execution use
// the underlying packages (search, bfs, dfs, toposort, kruskal) directly.
//
// The facade follows the engine-wide failure policy: expected absence
// (missing vertices, unreachable goals, cyclic sort input, directed
// spanning-tree input) yields sentinels (empty paths, false, nil),
// never errors.
package algo

import (
	"github.com/kataras/golog"

	"github.com/gryphlib/gryph/bfs"
	"github.com/gryphlib/gryph/core"
	"github.com/gryphlib/gryph/dfs"
	"github.com/gryphlib/gryph/kruskal"
	"github.com/gryphlib/gryph/search"
	"github.com/gryphlib/gryph/toposort"
)

// Option configures a facade.
type Option[V comparable] func(*Algorithms[V])

// WithLogger installs a golog logger; the facade logs one debug line per
// completed operation and hands the logger down to the engines for
// per-step tracing. Defaults to nil (silent).
func WithLogger[V comparable](l *golog.Logger) Option[V] {
	return func(a *Algorithms[V]) { a.log = l }
}

// Algorithms is the facade bound to one graph. Calls must not overlap:
// every operation claims the graph's vertex scratch state for its run.
type Algorithms[V comparable] struct {
	g   core.Graph[V]
	log *golog.Logger
}

// New returns an algorithm facade scoped to g.
func New[V comparable](g core.Graph[V], opts ...Option[V]) *Algorithms[V] {
	a := &Algorithms[V]{g: g}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// FindShortestPath computes the cheapest route from start to goal,
// best-first. An optional heuristic upgrades the engine to A*; it must be
// admissible for the shortest-path guarantee to hold. Absent endpoints or
// an unreachable goal yield the empty-path sentinel.
func (a *Algorithms[V]) FindShortestPath(start, goal V, heuristic ...search.Heuristic[V]) *core.Path[V] {
	opts := []search.Option[V]{search.WithLogger[V](a.log)}
	if len(heuristic) > 0 {
		opts = append(opts, search.WithHeuristic[V](heuristic[0]))
	}
	p, err := search.FindPath(a.g, start, goal, opts...)
	if err != nil {
		return core.NewPath[V]()
	}
	a.debugf("algo: shortest path %v->%v: %d vertices, length=%g", start, goal, p.Len(), p.Length())

	return p
}

// IsConnected reports whether goal is reachable from start along directed
// edges (both orientations of an undirected edge count).
func (a *Algorithms[V]) IsConnected(start, goal V) bool {
	return a.FindShortestPath(start, goal).Len() > 0
}

// ContainsCycle reports whether the graph holds at least one cycle.
func (a *Algorithms[V]) ContainsCycle() bool {
	found := dfs.HasCycle(a.g)
	a.debugf("algo: cycle check: %t", found)

	return found
}

// TopologicalSort orders the graph's vertices so every edge points
// forward, rewriting the vertex iteration order as a side effect.
// Returns false on cyclic (or edged undirected) input.
func (a *Algorithms[V]) TopologicalSort() bool {
	_, ok := toposort.Sort(a.g)
	a.debugf("algo: topological sort: %t", ok)

	return ok
}

// FindMinimumWeightSpanningTree builds the minimum-weight spanning tree
// (or forest, when the graph is disconnected). Returns nil for directed
// graphs.
func (a *Algorithms[V]) FindMinimumWeightSpanningTree() core.Graph[V] {
	return a.spanningTree(kruskal.Minimum)
}

// FindMaximumWeightSpanningTree builds the maximum-weight spanning tree
// (or forest, when the graph is disconnected). Returns nil for directed
// graphs.
func (a *Algorithms[V]) FindMaximumWeightSpanningTree() core.Graph[V] {
	return a.spanningTree(kruskal.Maximum)
}

func (a *Algorithms[V]) spanningTree(objective kruskal.Objective) core.Graph[V] {
	b, err := kruskal.New(a.g, objective)
	if err != nil {
		return nil
	}
	tree, total := b.Run()
	a.debugf("algo: spanning tree: %d edges, weight=%g", b.Accepted(), total)

	return tree
}

// BreadthFirstSearch traverses from start level by level, reporting each
// processed vertex to processor (nil means visit-all). Returns nil if
// start is absent.
func (a *Algorithms[V]) BreadthFirstSearch(start V, processor core.Processor[V]) *bfs.Result[V] {
	res, err := bfs.Traverse(a.g, start,
		bfs.WithProcessor[V](processor), bfs.WithLogger[V](a.log))
	if err != nil {
		return nil
	}

	return res
}

// DepthFirstSearch traverses from start depth-first, reporting each
// processed vertex to processor (nil means visit-all). Returns nil if
// start is absent.
func (a *Algorithms[V]) DepthFirstSearch(start V, processor core.Processor[V]) *dfs.Result[V] {
	res, err := dfs.Traverse(a.g, start,
		dfs.WithProcessor[V](processor), dfs.WithLogger[V](a.log))
	if err != nil {
		return nil
	}

	return res
}

func (a *Algorithms[V]) debugf(format string, args ...interface{}) {
	if a.log != nil {
		a.log.Debugf(format, args...)
	}
}
