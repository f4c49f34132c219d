// Package codec reads and writes the flat persisted form of a graph: one
// list of vertex values (each in its own serialized form) and one list of
// edges, each written as three consecutive values: endpoint A, endpoint
// B, weight. Round-tripping reconstructs identical adjacency and weights;
// an undirected edge is written once and the reader re-derives the
// symmetric pair.
//
// Framing is JSON. Malformed input is the one failure here that raises an
// error rather than a sentinel: the document came from outside the
// engine's control.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gryphlib/gryph/core"
)

// ErrMalformed is returned when a graph document cannot be decoded.
var ErrMalformed = errors.New("codec: malformed graph document")

// document is the wire shape. Vertex values and edge-triple members stay
// raw so that the caller's V type controls their serialized form.
type document struct {
	Directed bool                `json:"directed"`
	Vertices []json.RawMessage   `json:"vertices"`
	Edges    [][]json.RawMessage `json:"edges"`
}

// Encode writes g to w. Vertices appear in iteration order, edges in
// edge-set insertion order; the output is deterministic for a fixed
// graph.
func Encode[V comparable](w io.Writer, g core.Graph[V]) error {
	doc := document{
		Directed: g.Directed(),
		Vertices: make([]json.RawMessage, 0, g.VertexCount()),
		Edges:    make([][]json.RawMessage, 0, g.EdgeCount()),
	}
	for _, v := range g.Vertices() {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("codec: encode vertex %v: %w", v, err)
		}
		doc.Vertices = append(doc.Vertices, raw)
	}
	for _, e := range g.Edges() {
		from, err := json.Marshal(e.From())
		if err != nil {
			return fmt.Errorf("codec: encode edge endpoint %v: %w", e.From(), err)
		}
		to, err := json.Marshal(e.To())
		if err != nil {
			return fmt.Errorf("codec: encode edge endpoint %v: %w", e.To(), err)
		}
		weight, err := json.Marshal(e.Weight())
		if err != nil {
			return fmt.Errorf("codec: encode edge weight: %w", err)
		}
		doc.Edges = append(doc.Edges, []json.RawMessage{from, to, weight})
	}

	return json.NewEncoder(w).Encode(doc)
}

// Decode reads a graph document from r, reconstructing a graph of the
// recorded directedness. For undirected graphs each stored triple yields
// the full mirrored pair. Returns ErrMalformed (wrapped with detail) on
// any structural or type mismatch.
func Decode[V comparable](r io.Reader) (core.Graph[V], error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var g core.Graph[V]
	if doc.Directed {
		g = core.NewDirected[V]()
	} else {
		g = core.NewUndirected[V]()
	}

	for _, raw := range doc.Vertices {
		var v V
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("%w: vertex %s: %v", ErrMalformed, raw, err)
		}
		g.AddVertex(v)
	}
	for i, triple := range doc.Edges {
		if len(triple) != 3 {
			return nil, fmt.Errorf("%w: edge %d: want 3 values, got %d", ErrMalformed, i, len(triple))
		}
		var a, b V
		var weight float64
		if err := json.Unmarshal(triple[0], &a); err != nil {
			return nil, fmt.Errorf("%w: edge %d endpoint A: %v", ErrMalformed, i, err)
		}
		if err := json.Unmarshal(triple[1], &b); err != nil {
			return nil, fmt.Errorf("%w: edge %d endpoint B: %v", ErrMalformed, i, err)
		}
		if err := json.Unmarshal(triple[2], &weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d weight: %v", ErrMalformed, i, err)
		}
		if g.AddEdge(a, b, weight) == nil {
			return nil, fmt.Errorf("%w: edge %d references unknown vertex", ErrMalformed, i)
		}
	}

	return g, nil
}
