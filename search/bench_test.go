package search_test

import (
	"testing"

	"github.com/gryphlib/gryph/search"
)

// BenchmarkFindPath_Grid measures repeated searches over one graph,
// exercising the run-stamp lazy-reset path (no per-run O(V) clearing).
func BenchmarkFindPath_Grid(b *testing.B) {
	g := buildGrid(64, 64)
	start, goal := cell{0, 0}, cell{63, 63}

	b.Run("dijkstra", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := search.FindPath(g, start, goal); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("astar", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := search.FindPath(g, start, goal, search.WithHeuristic[cell](manhattan)); err != nil {
				b.Fatal(err)
			}
		}
	})
}
