package algo_test

import (
	"fmt"

	"github.com/gryphlib/gryph/algo"
	"github.com/gryphlib/gryph/core"
)

// ExampleAlgorithms routes between two stations and then checks the
// network for cycles.
func ExampleAlgorithms() {
	g := core.NewUndirected[string]()
	for _, v := range []string{"Depot", "North", "East", "Plant"} {
		g.AddVertex(v)
	}
	g.AddEdge("Depot", "North", 2)
	g.AddEdge("North", "East", 1)
	g.AddEdge("Depot", "East", 5)
	g.AddEdge("East", "Plant", 2)

	a := algo.New[string](g)
	path := a.FindShortestPath("Depot", "Plant")
	fmt.Println(path.Slice(), path.Length())
	fmt.Println(a.ContainsCycle())
	// Output:
	// [Depot North East Plant] 5
	// true
}

// ExampleAlgorithms_TopologicalSort orders build targets so every
// dependency comes first.
func ExampleAlgorithms_TopologicalSort() {
	g := core.NewDirected[string]()
	for _, v := range []string{"binary", "objects", "sources"} {
		g.AddVertex(v)
	}
	g.AddEdge("sources", "objects", 1)
	g.AddEdge("objects", "binary", 1)

	a := algo.New[string](g)
	fmt.Println(a.TopologicalSort())
	fmt.Println(g.Vertices())
	// Output:
	// true
	// [sources objects binary]
}
