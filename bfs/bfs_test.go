// Package bfs_test verifies breadth-first traversal: level order,
// discovery-tree shape, distance byproduct, visitor control, and
// step-wise driving.
package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gryphlib/gryph/bfs"
	"github.com/gryphlib/gryph/core"
)

// buildDiamond constructs the undirected diamond
//
//	A—B(1), A—C(2), B—D(4), C—D(1)
func buildDiamond() *core.Undirected[string] {
	g := core.NewUndirected[string]()
	for _, v := range []string{"A", "B", "C", "D"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 2)
	g.AddEdge("B", "D", 4)
	g.AddEdge("C", "D", 1)

	return g
}

func TestNew_Validation(t *testing.T) {
	g := buildDiamond()

	_, err := bfs.New[string](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.New(g, "X")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestTraverse_LevelOrder(t *testing.T) {
	g := buildDiamond()

	res, err := bfs.Traverse(g, "A")
	require.NoError(t, err)

	// Ties within a level break by adjacency insertion order.
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
}

func TestTraverse_DiscoveryTree(t *testing.T) {
	g := buildDiamond()

	res, err := bfs.Traverse(g, "A")
	require.NoError(t, err)

	tree := res.Tree
	assert.Equal(t, 4, tree.VertexCount(), "n vertices")
	assert.Equal(t, 3, tree.EdgeCount(), "n-1 edges")
	assert.False(t, tree.Directed(), "tree shares the source's directedness")
	assert.True(t, tree.HasEdge("A", "B"))
	assert.True(t, tree.HasEdge("A", "C"))
	assert.True(t, tree.HasEdge("B", "D"), "D discovered through B, the earlier level peer")
	assert.False(t, tree.HasEdge("C", "D"), "non-tree edge must not appear")
}

func TestTraverse_DepthAndCount(t *testing.T) {
	g := buildDiamond()

	depths := map[string]int{}
	var counts []int
	_, err := bfs.Traverse(g, "A", bfs.WithProcessor[string](func(st core.Step[string]) core.Signal {
		depths[st.Vertex] = st.Depth
		counts = append(counts, st.Count)
		if st.Vertex == "A" {
			assert.Nil(t, st.Edge)
		} else {
			require.NotNil(t, st.Edge)
			assert.Equal(t, st.Vertex, st.Edge.To())
		}

		return core.Continue
	}))
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, depths)
	assert.Equal(t, []int{0, 1, 2, 3}, counts)
}

func TestTraverse_DistanceByproduct(t *testing.T) {
	g := buildDiamond()

	_, err := bfs.Traverse(g, "A")
	require.NoError(t, err)

	// Distances sum weights along the discovery tree, not shortest paths:
	// D was discovered through B, so its distance is 1+4, not 2+1.
	d, ok := g.Vertex("D")
	require.True(t, ok)
	assert.Equal(t, 5.0, d.Dist)
}

func TestVisitor_Ignore(t *testing.T) {
	g := buildDiamond()

	res, err := bfs.Traverse(g, "A", bfs.WithProcessor[string](func(st core.Step[string]) core.Signal {
		if st.Vertex == "B" {
			return core.Ignore
		}

		return core.Continue
	}))
	require.NoError(t, err)

	// B stays in the record but is not expanded: D arrives through C.
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.True(t, res.Tree.HasEdge("C", "D"))
	assert.False(t, res.Tree.HasEdge("B", "D"))
}

func TestVisitor_Terminate(t *testing.T) {
	g := buildDiamond()

	res, err := bfs.Traverse(g, "A", bfs.WithProcessor[string](func(st core.Step[string]) core.Signal {
		if st.Vertex == "B" {
			return core.Terminate
		}

		return core.Continue
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, res.Order, "stopped mid-traversal")
}

func TestDirectedTraversal(t *testing.T) {
	g := core.NewDirected[int]()
	for v := 0; v < 4; v++ {
		g.AddVertex(v)
	}
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 1)
	g.AddEdge(3, 0, 1) // unreachable from 0: wrong direction

	res, err := bfs.Traverse(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, 3, res.Tree.VertexCount())
	assert.True(t, res.Tree.Directed())
}

func TestStepwiseDriving(t *testing.T) {
	g := buildDiamond()
	b, err := bfs.New(g, "A")
	require.NoError(t, err)

	require.False(t, b.Finished())
	require.NoError(t, b.Step())
	assert.Equal(t, []string{"A"}, b.Result().Order, "one vertex per step")

	for !b.Finished() {
		require.NoError(t, b.Step())
	}
	assert.Equal(t, 4, b.Steps())
}

func TestContextCancellation(t *testing.T) {
	g := buildDiamond()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Traverse(g, "A", bfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
