// Package codec_test verifies the persisted graph form: round-trips for
// both directedness variants and arbitrary vertex types, deterministic
// output, and malformed-input errors.
package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gryphlib/gryph/codec"
	"github.com/gryphlib/gryph/core"
)

func TestRoundTrip_Undirected(t *testing.T) {
	g := core.NewUndirected[string]()
	for _, v := range []string{"A", "B", "C", "D"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2.5)
	g.AddEdge("C", "D", -3)

	var buf bytes.Buffer
	require.NoError(t, codec.Encode[string](&buf, g))

	got, err := codec.Decode[string](&buf)
	require.NoError(t, err)

	assert.False(t, got.Directed())
	assert.Equal(t, g.Vertices(), got.Vertices())
	assert.Equal(t, 3, got.EdgeCount(), "each pair stored once")
	assert.True(t, got.HasEdge("B", "C"))
	assert.True(t, got.HasEdge("C", "B"), "mirror re-derived on read")
	e, ok := got.Edge("B", "C")
	require.True(t, ok)
	assert.Equal(t, 2.5, e.Weight())
	back, ok := got.Edge("D", "C")
	require.True(t, ok, "mirror direction resolvable")
	assert.Equal(t, -3.0, back.Weight())
}

func TestRoundTrip_Directed(t *testing.T) {
	g := core.NewDirected[int]()
	for v := 0; v < 3; v++ {
		g.AddVertex(v)
	}
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 0, 7)
	g.AddEdge(2, 2, 0.5) // self-loop survives the trip

	var buf bytes.Buffer
	require.NoError(t, codec.Encode[int](&buf, g))

	got, err := codec.Decode[int](&buf)
	require.NoError(t, err)

	assert.True(t, got.Directed())
	forward, ok := got.Edge(0, 1)
	require.True(t, ok)
	assert.Equal(t, 1.0, forward.Weight())
	reverse, ok := got.Edge(1, 0)
	require.True(t, ok, "opposing directed edges stay distinct")
	assert.Equal(t, 7.0, reverse.Weight())
	loop, ok := got.Edge(2, 2)
	require.True(t, ok, "self-loop survives the trip")
	assert.Equal(t, 0.5, loop.Weight())
	assert.False(t, got.HasEdge(0, 2))
}

func TestRoundTrip_StructVertices(t *testing.T) {
	type station struct {
		Name string `json:"name"`
		Zone int    `json:"zone"`
	}
	g := core.NewUndirected[station]()
	hub := station{"hub", 1}
	east := station{"east", 2}
	g.AddVertex(hub)
	g.AddVertex(east)
	g.AddEdge(hub, east, 4)

	var buf bytes.Buffer
	require.NoError(t, codec.Encode[station](&buf, g))

	got, err := codec.Decode[station](&buf)
	require.NoError(t, err)
	assert.True(t, got.HasVertex(hub))
	e, ok := got.Edge(east, hub)
	require.True(t, ok)
	assert.Equal(t, 4.0, e.Weight())
}

func TestEncode_Deterministic(t *testing.T) {
	g := core.NewUndirected[string]()
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)

	var first, second bytes.Buffer
	require.NoError(t, codec.Encode[string](&first, g))
	require.NoError(t, codec.Encode[string](&second, g))
	assert.Equal(t, first.String(), second.String())
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"directed": fal`,
		"vertex type":    `{"directed":false,"vertices":[1],"edges":[]}`,
		"short triple":   `{"directed":false,"vertices":["A","B"],"edges":[["A","B"]]}`,
		"weight type":    `{"directed":false,"vertices":["A","B"],"edges":[["A","B","heavy"]]}`,
		"unknown vertex": `{"directed":false,"vertices":["A"],"edges":[["A","B",1]]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decode[string](strings.NewReader(doc))
			assert.ErrorIs(t, err, codec.ErrMalformed)
		})
	}
}

func TestRoundTrip_EmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, codec.Encode[string](&buf, core.NewDirected[string]()))

	got, err := codec.Decode[string](&buf)
	require.NoError(t, err)
	assert.True(t, got.Directed())
	assert.Equal(t, 0, got.VertexCount())
}
