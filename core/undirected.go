// This file implements the undirected graph variant. Every logical edge
// is realized as a mutually linked pair of records, one per endpoint's
// outgoing list, sharing one weight. Traversal code always walks outgoing
// lists, so symmetry is a property of the data, not of the algorithms.

package core

// Undirected is a graph whose edges are symmetric linked pairs.
// Incoming-edge lists are never populated: the outgoing lists already
// contain both directions of every edge.
type Undirected[V comparable] struct {
	graph[V]
}

var _ Graph[int] = (*Undirected[int])(nil)

// NewUndirected returns an empty undirected graph.
func NewUndirected[V comparable]() *Undirected[V] {
	return &Undirected[V]{graph: newGraph[V](false)}
}

// AddEdge connects a and b with the given weight, returning the primary
// record of the linked pair, or nil if either endpoint is absent. If an
// edge between a and b already exists it is re-weighted on both sides
// rather than duplicated.
// Complexity: O(deg(a)).
func (g *Undirected[V]) AddEdge(a, b V, weight float64) *Edge[V] {
	va, ok := g.vertices[a]
	if !ok {
		return nil
	}
	vb, ok := g.vertices[b]
	if !ok {
		return nil
	}
	if e, ok := g.Edge(a, b); ok {
		e.SetWeight(weight) // propagates to the mirror half
		if e.primary {
			return e
		}

		return e.mirror
	}

	e := &Edge[V]{from: a, to: b, weight: weight, primary: true}
	va.out = append(va.out, e)
	if a != b {
		m := &Edge[V]{from: b, to: a, weight: weight}
		e.mirror, m.mirror = m, e
		vb.out = append(vb.out, m)
	}
	g.edges = append(g.edges, e)

	return e
}

// RemoveEdge deletes the edge between a and b, both halves of the pair.
// Returns false if no such edge exists.
// Complexity: O(deg(a) + deg(b) + E) worst case for edge-set compaction.
func (g *Undirected[V]) RemoveEdge(a, b V) bool {
	e, ok := g.Edge(a, b)
	if !ok {
		return false
	}
	g.detachEdge(e)
	if e.mirror != nil {
		g.detachEdge(e.mirror)
	}

	return true
}

// RemoveVertex deletes v and every incident edge. Returns false if v is
// absent.
// Complexity: O(deg(v) · deg_max + E).
func (g *Undirected[V]) RemoveVertex(v V) bool {
	rec, ok := g.vertices[v]
	if !ok {
		return false
	}
	incident := make([]*Edge[V], 0, len(rec.out))
	incident = append(incident, rec.out...)
	for _, e := range incident {
		g.detachEdge(e)
		if e.mirror != nil {
			g.detachEdge(e.mirror)
		}
	}
	delete(g.vertices, v)
	g.removeOrder(v)

	return true
}

// Degree returns the number of edges incident to v, or (0, false) if v is
// absent. A self-loop counts once.
func (g *Undirected[V]) Degree(v V) (int, bool) {
	rec, ok := g.vertices[v]
	if !ok {
		return 0, false
	}

	return len(rec.out), true
}

// Empty returns a new empty undirected graph.
func (g *Undirected[V]) Empty() Graph[V] { return NewUndirected[V]() }
