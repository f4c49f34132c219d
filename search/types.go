// Package search defines options and sentinel errors for the best-first
// shortest-path engine.
package search

import (
	"context"
	"errors"

	"github.com/kataras/golog"

	"github.com/gryphlib/gryph/core"
)

// Sentinel errors for search construction and execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("search: start vertex not found")

	// ErrGoalVertexNotFound is returned when the goal vertex is absent.
	ErrGoalVertexNotFound = errors.New("search: goal vertex not found")
)

// Heuristic estimates the remaining cost from a vertex to the goal.
// It must be pure and static for the duration of one search. For A*
// optimality it must be admissible (never overestimate the true cost);
// a non-admissible heuristic is accepted but voids the shortest-path
// guarantee. A nil Heuristic degrades the engine to plain Dijkstra.
type Heuristic[V comparable] func(from, goal V) float64

// Option configures search behavior via functional arguments.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks customizing one search run.
type Options[V comparable] struct {
	// Ctx allows cancellation and deadlines; checked once per step.
	Ctx context.Context

	// Heuristic keys the frontier by distance + estimate.
	// Nil means a zero estimate everywhere (Dijkstra ordering).
	Heuristic Heuristic[V]

	// Processor is invoked once per finalized vertex; its Signal can
	// skip relaxation (Ignore) or abort the run (Terminate).
	Processor core.Processor[V]

	// Logger, when non-nil, receives a debug trace of finalized
	// vertices. Defaults to nil (silent).
	Logger *golog.Logger
}

// DefaultOptions returns Options with a Background context, no heuristic,
// no visitor, and no logging.
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

// WithHeuristic installs h as the cost-to-goal estimator.
func WithHeuristic[V comparable](h Heuristic[V]) Option[V] {
	return func(o *Options[V]) { o.Heuristic = h }
}

// WithProcessor installs the visitor callback.
func WithProcessor[V comparable](p core.Processor[V]) Option[V] {
	return func(o *Options[V]) { o.Processor = p }
}

// WithLogger installs a golog logger for per-step debug tracing.
func WithLogger[V comparable](l *golog.Logger) Option[V] {
	return func(o *Options[V]) { o.Logger = l }
}
