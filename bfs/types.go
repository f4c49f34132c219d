// Package bfs defines options, sentinel errors, and the result type for
// breadth-first traversal.
package bfs

import (
	"context"
	"errors"

	"github.com/kataras/golog"

	"github.com/gryphlib/gryph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Option configures BFS behavior via functional arguments.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks customizing one traversal.
type Options[V comparable] struct {
	// Ctx allows cancellation and deadlines; checked once per step.
	Ctx context.Context

	// Processor is invoked once per dequeued vertex; its Signal can
	// skip expansion (Ignore) or abort the traversal (Terminate).
	Processor core.Processor[V]

	// Logger, when non-nil, receives a debug trace of processed
	// vertices. Defaults to nil (silent).
	Logger *golog.Logger
}

// DefaultOptions returns Options with a Background context, no visitor,
// and no logging.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
// A nil context is ignored.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithProcessor installs the visitor callback.
func WithProcessor[V comparable](p core.Processor[V]) Option[V] {
	return func(o *Options[V]) { o.Processor = p }
}

// WithLogger installs a golog logger for per-step debug tracing.
func WithLogger[V comparable](l *golog.Logger) Option[V] {
	return func(o *Options[V]) { o.Logger = l }
}

// Result holds the outcome of a traversal: the processing order and the
// discovery tree, a derived graph of the same directedness sharing the
// reached vertex set.
type Result[V comparable] struct {
	// Order lists processed vertices in processing sequence.
	Order []V

	// Tree is the discovery tree: for a connected component of n
	// reached vertices it has exactly n vertices and n-1 edges.
	Tree core.Graph[V]
}
