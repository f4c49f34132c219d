// Package core defines the central Graph, Vertex, Edge, and Path types
// that every gryph algorithm operates on.
//
// A Graph is either directed or undirected; directedness is fixed at
// construction and determines edge semantics. Undirected edges are stored
// as two mutually linked records, one per endpoint's outgoing list, that
// share one weight. Traversal code always walks the outgoing list, so
// undirectedness is realized as symmetric directed pairs rather than as a
// special traversal case.
//
// Vertex records carry a block of algorithm scratch state (visited flag,
// distance, heuristic estimate, predecessor links, order, run stamp).
// Scratch fields are valid only while the record's run stamp equals the
// identifier of the algorithm run that owns them; a new run obtains a fresh
// identifier from Graph.NewRun and lazily resets each vertex on first
// touch. Reset is therefore O(1) amortized instead of O(V) per run, which
// is what makes repeated incremental queries against one graph cheap.
//
// Because scratch state lives on the vertex records themselves, two
// algorithm runs against the same Graph must not interleave. Sequential
// reuse is safe and is the intended mode of operation.
//
// Failure policy: operations referencing vertices absent from the graph
// return a sentinel (false or nil) rather than an error. Expected absence
// is not exceptional, and callers are required to check return values.
package core
