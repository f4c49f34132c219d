package search_test

import (
	"fmt"
	"math"

	"github.com/gryphlib/gryph/core"
	"github.com/gryphlib/gryph/search"
)

// ExampleFindPath demonstrates plain best-first search (no heuristic) on a
// small weighted road network.
func ExampleFindPath() {
	g := core.NewUndirected[string]()
	for _, v := range []string{"Depot", "North", "East", "Plant"} {
		g.AddVertex(v)
	}
	g.AddEdge("Depot", "North", 2)
	g.AddEdge("Depot", "East", 5)
	g.AddEdge("North", "East", 1)
	g.AddEdge("East", "Plant", 2)

	p, err := search.FindPath(g, "Depot", "Plant")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p.Slice(), p.Length())
	// Output: [Depot North East Plant] 5
}

// ExampleSearch_Step drives the engine one step at a time, the way a
// caller with a fixed per-frame budget would.
func ExampleSearch_Step() {
	type pt struct{ x, y int }
	g := core.NewUndirected[pt]()
	for x := 0; x < 4; x++ {
		g.AddVertex(pt{x, 0})
		if x > 0 {
			g.AddEdge(pt{x - 1, 0}, pt{x, 0}, 1)
		}
	}

	s, _ := search.New(g, pt{0, 0}, pt{3, 0}, search.WithHeuristic[pt](func(from, goal pt) float64 {
		return math.Abs(float64(from.x - goal.x))
	}))
	for !s.Finished() {
		_ = s.Step()
	}
	fmt.Println(s.Found(), s.Path().Length())
	// Output: true 3
}
