// This file declares the Vertex and Edge record types and the Graph
// interface shared by the directed and undirected variants.

package core

import "math"

// Vertex is the per-vertex record: one immutable value, adjacency lists,
// and a block of algorithm scratch state guarded by a run stamp.
//
// Scratch fields (Visited, Dist, Estimate, Prev, PrevEdge, Order) are
// owned by whichever algorithm run currently holds the matching stamp.
// Call Touch with the current run identifier before reading or writing
// them; Touch lazily resets the block on the first touch of each run.
type Vertex[V comparable] struct {
	value V

	out []*Edge[V] // outgoing edges, insertion order
	in  []*Edge[V] // incoming edges; populated only on directed graphs

	stamp uint64 // identifier of the run that owns the scratch block

	// Visited reports whether the current run has finalized this vertex.
	Visited bool

	// Dist is the tentative distance from the run's start vertex.
	// Defaults to +Inf on first touch.
	Dist float64

	// Estimate is the heuristic cost-to-goal, computed on first sight.
	Estimate float64

	// Prev is the predecessor vertex on the discovery tree.
	Prev *Vertex[V]

	// PrevEdge is the edge used to discover this vertex.
	PrevEdge *Edge[V]

	// Order is an integer rung: BFS/DFS depth, or visitation state,
	// depending on the algorithm that owns the run.
	Order int
}

// Value returns the vertex value wrapped by this record.
func (v *Vertex[V]) Value() V { return v.value }

// Out returns the outgoing-edge list in insertion order.
// The returned slice is the record's own storage; treat it as read-only.
func (v *Vertex[V]) Out() []*Edge[V] { return v.out }

// In returns the incoming-edge list in insertion order.
// Empty on undirected graphs, whose outgoing lists are already symmetric.
func (v *Vertex[V]) In() []*Edge[V] { return v.in }

// Stamp returns the identifier of the run that last touched this record.
func (v *Vertex[V]) Stamp() uint64 { return v.stamp }

// Touch claims the scratch block for run, resetting every scratch field
// on the first touch of that run. Returns true if a reset happened,
// false if the block already belonged to run.
//
// Complexity: O(1).
func (v *Vertex[V]) Touch(run uint64) bool {
	if v.stamp == run {
		return false
	}
	v.stamp = run
	v.Visited = false
	v.Dist = math.Inf(1)
	v.Estimate = 0
	v.Prev = nil
	v.PrevEdge = nil
	v.Order = 0

	return true
}

// Edge is a weighted connection between two vertex records. Endpoints are
// held as vertex values (handles into the owning Graph), never as owning
// references.
//
// On an undirected graph every logical edge is a mutually linked pair of
// records, one in each endpoint's outgoing list; SetWeight propagates to
// both halves so that the pair always shares one weight. The half stored
// in the graph's edge set is the primary; its twin is the mirror.
type Edge[V comparable] struct {
	from, to V
	weight   float64

	mirror  *Edge[V] // twin record on undirected graphs, nil otherwise
	primary bool     // true for the half registered in the edge set
}

// From returns the source endpoint value.
func (e *Edge[V]) From() V { return e.from }

// To returns the destination endpoint value.
func (e *Edge[V]) To() V { return e.to }

// Weight returns the edge weight. Zero and negative weights are legal;
// their interpretation is the caller's responsibility.
func (e *Edge[V]) Weight() float64 { return e.weight }

// SetWeight mutates the weight, propagating to the mirror half on
// undirected graphs so both directions stay in sync.
func (e *Edge[V]) SetWeight(w float64) {
	e.weight = w
	if e.mirror != nil {
		e.mirror.weight = w
	}
}

// Mirror returns the symmetric twin record on an undirected graph,
// or nil for directed edges and self-loops.
func (e *Edge[V]) Mirror() *Edge[V] { return e.mirror }

// Graph is the structural surface shared by the Directed and Undirected
// variants. Each variant supplies its own edge-construction and removal
// semantics; everything else is common.
//
// Mutating operations that reference absent vertices return false or nil
// rather than an error.
type Graph[V comparable] interface {
	// Directed reports the construction-time directedness.
	Directed() bool

	// AddVertex inserts v; returns false if v is already present.
	AddVertex(v V) bool

	// RemoveVertex deletes v and every incident edge.
	// Returns false if v is absent.
	RemoveVertex(v V) bool

	// HasVertex reports whether v is present.
	HasVertex(v V) bool

	// Vertex returns the record for v, or (nil, false) if absent.
	Vertex(v V) (*Vertex[V], bool)

	// Vertices returns the vertex values in iteration order.
	// The order is insertion order until rewritten by Reorder.
	Vertices() []V

	// VertexCount returns the number of vertices.
	VertexCount() int

	// AddEdge connects a to b with the given weight, returning the new
	// (or re-weighted existing) edge record, or nil if either endpoint
	// is absent. On an undirected graph an existing edge is re-weighted
	// on both sides rather than duplicated.
	AddEdge(a, b V, weight float64) *Edge[V]

	// RemoveEdge deletes the edge a→b (and its mirror on undirected
	// graphs). Returns false if no such edge exists.
	RemoveEdge(a, b V) bool

	// HasEdge reports whether an edge a→b exists.
	HasEdge(a, b V) bool

	// Edge returns the edge record a→b, or (nil, false) if absent.
	Edge(a, b V) (*Edge[V], bool)

	// Edges returns the edge set in insertion order: every record for a
	// directed graph, one primary record per linked pair for an
	// undirected graph. Algorithms rely on this order for deterministic
	// tie-breaking.
	Edges() []*Edge[V]

	// EdgeCount returns the size of the edge set.
	EdgeCount() int

	// IsConnected reports whether a traversal from an arbitrary vertex
	// reaches every vertex. For directed graphs this is a weak
	// connectivity check (edges are followed in both directions).
	IsConnected() bool

	// NewRun advances and returns the graph's run identifier, claiming
	// the vertex scratch blocks for a fresh algorithm run.
	NewRun() uint64

	// Reorder rewrites the vertex iteration order. The argument must be
	// a permutation of the current vertex set; otherwise Reorder leaves
	// the graph untouched and returns false.
	Reorder(order []V) bool

	// Empty returns a new empty graph of the same directedness, used by
	// algorithms that build derived graphs (discovery trees, spanning
	// trees).
	Empty() Graph[V]
}
