// Package kruskal implements minimum- and maximum-weight spanning tree
// construction over undirected graphs using Kruskal's algorithm, as a
// resumable state machine: one candidate edge is examined per Step.
//
// Edges are sorted by weight (ascending for minimum, descending for
// maximum) with sort.SliceStable, so equal-weight edges retain the edge
// set's insertion order as tie-break and the result is deterministic.
// Each edge is tested against a union-find structure; accepted edges go
// into a new graph sharing the source's vertex set.
//
// When the source graph is connected, construction stops early once
// |V|-1 edges have been accepted. A disconnected source drains the whole
// edge queue and yields a spanning forest, one tree per component: a
// partial result, not an error.
//
// Complexity: O(E log E) for the sort, near-O(E) for the union-find scan.
package kruskal

import (
	"errors"
	"sort"

	"github.com/gryphlib/gryph/core"
)

// Sentinel errors for builder construction.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("kruskal: graph is nil")

	// ErrDirectedGraph is returned when the graph is directed; spanning
	// trees are defined over undirected graphs.
	ErrDirectedGraph = errors.New("kruskal: undirected graph required")
)

// Objective selects which spanning tree to build.
type Objective int

const (
	// Minimum builds the minimum-weight spanning tree.
	Minimum Objective = iota

	// Maximum builds the maximum-weight spanning tree.
	Maximum
)

// Builder is one Kruskal run over an undirected graph.
type Builder[V comparable] struct {
	edges []*core.Edge[V] // sorted candidates
	idx   int
	sets  *dsu[V]

	tree     core.Graph[V]
	total    float64
	accepted int
	target   int // accepted-edge count that completes a tree; -1 drains

	done bool
}

// New builds a spanning-tree machine over g with the given objective.
// Returns ErrGraphNil or ErrDirectedGraph for invalid input.
func New[V comparable](g core.Graph[V], objective Objective) (*Builder[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	vertices := g.Vertices()
	tree := g.Empty()
	for _, v := range vertices {
		tree.AddVertex(v)
	}

	// Self-loops can never join two components; drop them up front.
	all := g.Edges()
	edges := make([]*core.Edge[V], 0, len(all))
	for _, e := range all {
		if e.From() == e.To() {
			continue
		}
		edges = append(edges, e)
	}
	if objective == Maximum {
		sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight() > edges[j].Weight() })
	} else {
		sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight() < edges[j].Weight() })
	}

	target := -1
	if g.IsConnected() {
		target = len(vertices) - 1
	}

	return &Builder[V]{
		edges:  edges,
		sets:   newDSU(vertices),
		tree:   tree,
		target: target,
	}, nil
}

// Finished reports whether the run has completed.
func (b *Builder[V]) Finished() bool { return b.done }

// Accepted returns the number of edges taken into the tree so far.
func (b *Builder[V]) Accepted() int { return b.accepted }

// TotalWeight returns the summed weight of accepted edges so far.
func (b *Builder[V]) TotalWeight() float64 { return b.total }

// Tree returns the spanning tree (or forest) built so far.
func (b *Builder[V]) Tree() core.Graph[V] { return b.tree }

// Step examines one candidate edge: if its endpoints lie in different
// components they are united and the edge joins the tree. Calling Step
// after completion is a no-op.
func (b *Builder[V]) Step() {
	if b.done {
		return
	}
	if b.idx >= len(b.edges) {
		b.done = true

		return
	}
	e := b.edges[b.idx]
	b.idx++

	if !b.sets.union(e.From(), e.To()) {
		return
	}
	b.tree.AddEdge(e.From(), e.To(), e.Weight())
	b.total += e.Weight()
	b.accepted++
	if b.target >= 0 && b.accepted == b.target {
		// Connected source: the tree is complete, the rest of the
		// queue cannot contribute.
		b.done = true
	}
}

// Run drives Step until Finished and returns the spanning tree (or
// forest) with its total weight.
func (b *Builder[V]) Run() (core.Graph[V], float64) {
	for !b.done {
		b.Step()
	}

	return b.tree, b.total
}

// MinimumSpanningTree builds the minimum-weight spanning tree of g, or a
// spanning forest when g is disconnected.
func MinimumSpanningTree[V comparable](g core.Graph[V]) (core.Graph[V], float64, error) {
	b, err := New(g, Minimum)
	if err != nil {
		return nil, 0, err
	}
	tree, total := b.Run()

	return tree, total, nil
}

// MaximumSpanningTree builds the maximum-weight spanning tree of g, or a
// spanning forest when g is disconnected.
func MaximumSpanningTree[V comparable](g core.Graph[V]) (core.Graph[V], float64, error) {
	b, err := New(g, Maximum)
	if err != nil {
		return nil, 0, err
	}
	tree, total := b.Run()

	return tree, total, nil
}
