// This file declares the visitor contract shared by the traversal and
// search engines.

package core

// Signal is the visitor's verdict on one traversal step. Modeling control
// flow as a returned value keeps it explicit and thread-agnostic; there
// are no mutable flags on a shared step object.
type Signal int

const (
	// Continue proceeds normally: the vertex is expanded.
	Continue Signal = iota

	// Ignore skips expansion of this vertex's neighbors. The vertex
	// itself stays in the traversal record.
	Ignore

	// Terminate aborts the whole run immediately, discarding any
	// remaining frontier. This is the only cancellation channel besides
	// context cancellation, checked once per processed vertex.
	Terminate
)

// Step is the record handed to a Processor for each processed vertex.
type Step[V comparable] struct {
	// Vertex is the value being processed.
	Vertex V

	// Edge is the edge this vertex was discovered through;
	// nil for the root.
	Edge *Edge[V]

	// Depth is the discovery depth (BFS/DFS) or finalization order rung
	// (best-first search).
	Depth int

	// Count is a monotonically increasing step counter, starting at 0
	// for the root.
	Count int
}

// Processor is a visitor callback invoked once per processed vertex.
// A nil Processor is treated as "always Continue".
type Processor[V comparable] func(Step[V]) Signal
