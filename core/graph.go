// This file holds the storage shared by both graph variants: the vertex
// catalog, iteration order, edge set, and run counter.

package core

// graph is the common storage embedded by Directed and Undirected.
// Variant-specific behavior (edge construction and removal) lives on the
// concrete types; everything here is directedness-agnostic.
type graph[V comparable] struct {
	directed bool

	vertices map[V]*Vertex[V]
	order    []V        // vertex iteration order; rewritable via Reorder
	edges    []*Edge[V] // primary edge records, insertion order
	run      uint64     // generation counter for algorithm runs
}

func newGraph[V comparable](directed bool) graph[V] {
	return graph[V]{
		directed: directed,
		vertices: make(map[V]*Vertex[V]),
	}
}

// Directed reports the construction-time directedness.
// Complexity: O(1).
func (g *graph[V]) Directed() bool { return g.directed }

// AddVertex inserts v; returns false if v is already present.
// Complexity: O(1) amortized.
func (g *graph[V]) AddVertex(v V) bool {
	if _, ok := g.vertices[v]; ok {
		return false
	}
	g.vertices[v] = &Vertex[V]{value: v}
	g.order = append(g.order, v)

	return true
}

// HasVertex reports whether v is present.
// Complexity: O(1).
func (g *graph[V]) HasVertex(v V) bool {
	_, ok := g.vertices[v]

	return ok
}

// Vertex returns the record for v, or (nil, false) if absent.
// Complexity: O(1).
func (g *graph[V]) Vertex(v V) (*Vertex[V], bool) {
	rec, ok := g.vertices[v]

	return rec, ok
}

// Vertices returns a copy of the vertex values in iteration order.
// Complexity: O(V).
func (g *graph[V]) Vertices() []V {
	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *graph[V]) VertexCount() int { return len(g.vertices) }

// HasEdge reports whether an edge a→b exists.
// Complexity: O(deg(a)).
func (g *graph[V]) HasEdge(a, b V) bool {
	_, ok := g.Edge(a, b)

	return ok
}

// Edge returns the edge record a→b, or (nil, false) if absent.
// On undirected graphs the mirror half counts: Edge(a,b) and Edge(b,a)
// both succeed for one logical edge.
// Complexity: O(deg(a)).
func (g *graph[V]) Edge(a, b V) (*Edge[V], bool) {
	va, ok := g.vertices[a]
	if !ok {
		return nil, false
	}
	for _, e := range va.out {
		if e.to == b {
			return e, true
		}
	}

	return nil, false
}

// Edges returns a copy of the edge set in insertion order.
// Complexity: O(E).
func (g *graph[V]) Edges() []*Edge[V] {
	out := make([]*Edge[V], len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the size of the edge set.
// Complexity: O(1).
func (g *graph[V]) EdgeCount() int { return len(g.edges) }

// NewRun advances and returns the run identifier. Vertex records still
// stamped with an older identifier are lazily reset by Vertex.Touch.
// Complexity: O(1).
func (g *graph[V]) NewRun() uint64 {
	g.run++

	return g.run
}

// Run returns the current run identifier without advancing it.
func (g *graph[V]) Run() uint64 { return g.run }

// Reorder rewrites the vertex iteration order. Returns false (leaving the
// order untouched) unless the argument is a permutation of the vertex set.
// Complexity: O(V).
func (g *graph[V]) Reorder(order []V) bool {
	if len(order) != len(g.vertices) {
		return false
	}
	seen := make(map[V]struct{}, len(order))
	for _, v := range order {
		if _, ok := g.vertices[v]; !ok {
			return false
		}
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	g.order = append(g.order[:0], order...)

	return true
}

// IsConnected reports whether a traversal from an arbitrary vertex reaches
// every vertex, following edges in both directions (weak connectivity).
// The empty graph is connected by convention.
// Complexity: O(V + E).
func (g *graph[V]) IsConnected() bool {
	if len(g.order) == 0 {
		return true
	}
	visited := make(map[V]struct{}, len(g.vertices))
	queue := []V{g.order[0]}
	visited[g.order[0]] = struct{}{}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		rec := g.vertices[u]
		for _, e := range rec.out {
			if _, ok := visited[e.to]; !ok {
				visited[e.to] = struct{}{}
				queue = append(queue, e.to)
			}
		}
		for _, e := range rec.in {
			if _, ok := visited[e.from]; !ok {
				visited[e.from] = struct{}{}
				queue = append(queue, e.from)
			}
		}
	}

	return len(visited) == len(g.vertices)
}

// detachEdge removes e from both endpoints' adjacency lists and from the
// edge set. The caller resolves which record is primary.
func (g *graph[V]) detachEdge(e *Edge[V]) {
	if va, ok := g.vertices[e.from]; ok {
		va.out = removeEdge(va.out, e)
		va.in = removeEdge(va.in, e)
	}
	if vb, ok := g.vertices[e.to]; ok {
		vb.out = removeEdge(vb.out, e)
		vb.in = removeEdge(vb.in, e)
	}
	if e.primary {
		for i, cand := range g.edges {
			if cand == e {
				g.edges = append(g.edges[:i], g.edges[i+1:]...)
				break
			}
		}
	}
}

// removeEdge deletes the first occurrence of e from list, preserving order.
func removeEdge[V comparable](list []*Edge[V], e *Edge[V]) []*Edge[V] {
	for i, cand := range list {
		if cand == e {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}

// removeOrder deletes v from the iteration-order slice, preserving order.
func (g *graph[V]) removeOrder(v V) {
	for i, cand := range g.order {
		if cand == v {
			g.order = append(g.order[:i], g.order[i+1:]...)

			return
		}
	}
}
