// Package gryph is a generic in-memory graph engine: directed and
// undirected graphs over arbitrary comparable vertex types, with a family
// of resumable traversal and optimization algorithms.
//
// What gryph provides:
//
//   - Core primitives: vertices, weighted edges, adjacency, path results
//   - Traversals: visitor-driven BFS and DFS with step-by-step execution
//   - Shortest paths: best-first search (A*; zero heuristic means Dijkstra)
//   - Cycle detection and topological sort
//   - Minimum / maximum weight spanning trees and forests (Kruskal)
//
// Every algorithm is a single-threaded cooperative state machine: one unit
// of work per Step(), a Finished() predicate, and a Run() driver that loops
// to completion. Callers that need time-sliced execution (e.g. a fixed step
// budget per frame) drive Step() themselves; everyone else calls Run().
//
// Packages:
//
//	core/     - Graph, Vertex, Edge, Path types and the visitor contract
//	pqueue/   - indexed binary min-heap with decrease-key
//	search/   - best-first shortest-path engine (A* / Dijkstra)
//	bfs/      - breadth-first traversal and discovery trees
//	dfs/      - depth-first traversal and cycle detection
//	toposort/ - Kahn's topological sort
//	kruskal/  - spanning tree / forest construction
//	algo/     - per-graph algorithm facade tying the above together
//	codec/    - flat vertex/edge-list persistence round-trip
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
//
//	go get github.com/gryphlib/gryph
package gryph
