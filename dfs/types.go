// Package dfs defines types and options for depth-first search over
// implicit state graphs: topological ordering and longest simple paths.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrNilSuccessors is returned when a nil transition function is passed.
	ErrNilSuccessors = errors.New("dfs: successor function is nil")

	// ErrNilGoal is returned when LongestPath is called without a goal predicate.
	ErrNilGoal = errors.New("dfs: goal predicate is nil")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNegativeWeight indicates a negative edge cost in LongestPath.
	ErrNegativeWeight = errors.New("dfs: negative edge weight encountered")
)

// Edge is a weighted transition to another state.
type Edge[S comparable] struct {
	To   S
	Cost int64
}

// Option configures optional behavior of DFS traversals.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversals.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort the traversal early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked each time a traversal enters a state,
	// with the current recursion depth. LongestPath enters a state once per
	// simple path through it, so this doubles as a work counter.
	OnVisit func(depth int)
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No visit hook
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(depth int)) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}
