// This file implements the directed graph variant: single standalone edge
// records, with incoming-edge lists maintained for reverse traversal
// (in-degree queries, Kahn's algorithm, weak connectivity).

package core

// Directed is a graph whose edges are one-way. Incoming-edge lists are
// always populated so that reverse traversal and in-degree queries stay
// O(deg).
type Directed[V comparable] struct {
	graph[V]
}

var _ Graph[int] = (*Directed[int])(nil)

// NewDirected returns an empty directed graph.
func NewDirected[V comparable]() *Directed[V] {
	return &Directed[V]{graph: newGraph[V](true)}
}

// AddEdge connects a to b with the given weight, returning the edge
// record, or nil if either endpoint is absent. An existing a→b edge is
// re-weighted rather than duplicated (parallel edges are not supported).
// Complexity: O(deg(a)).
func (g *Directed[V]) AddEdge(a, b V, weight float64) *Edge[V] {
	va, ok := g.vertices[a]
	if !ok {
		return nil
	}
	vb, ok := g.vertices[b]
	if !ok {
		return nil
	}
	if e, ok := g.Edge(a, b); ok {
		e.SetWeight(weight)

		return e
	}

	e := &Edge[V]{from: a, to: b, weight: weight, primary: true}
	va.out = append(va.out, e)
	if a != b {
		vb.in = append(vb.in, e)
	} else {
		va.in = append(va.in, e)
	}
	g.edges = append(g.edges, e)

	return e
}

// RemoveEdge deletes the edge a→b. Returns false if no such edge exists.
// Complexity: O(deg(a) + deg(b) + E) worst case for edge-set compaction.
func (g *Directed[V]) RemoveEdge(a, b V) bool {
	e, ok := g.Edge(a, b)
	if !ok {
		return false
	}
	g.detachEdge(e)

	return true
}

// RemoveVertex deletes v and every incident edge, incoming and outgoing.
// Returns false if v is absent.
// Complexity: O(deg(v) · deg_max + E).
func (g *Directed[V]) RemoveVertex(v V) bool {
	rec, ok := g.vertices[v]
	if !ok {
		return false
	}
	// Copy before detaching: detachEdge mutates the adjacency slices.
	incident := make([]*Edge[V], 0, len(rec.out)+len(rec.in))
	incident = append(incident, rec.out...)
	incident = append(incident, rec.in...)
	for _, e := range incident {
		g.detachEdge(e)
	}
	delete(g.vertices, v)
	g.removeOrder(v)

	return true
}

// OutDegree returns the number of outgoing edges of v,
// or (0, false) if v is absent.
func (g *Directed[V]) OutDegree(v V) (int, bool) {
	rec, ok := g.vertices[v]
	if !ok {
		return 0, false
	}

	return len(rec.out), true
}

// InDegree returns the number of incoming edges of v,
// or (0, false) if v is absent.
func (g *Directed[V]) InDegree(v V) (int, bool) {
	rec, ok := g.vertices[v]
	if !ok {
		return 0, false
	}

	return len(rec.in), true
}

// Empty returns a new empty directed graph.
func (g *Directed[V]) Empty() Graph[V] { return NewDirected[V]() }
