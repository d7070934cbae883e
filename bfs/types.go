// Package bfs provides tunable options, error definitions and result types
// for breadth-first search over an implicit state graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNoStart is returned when the start list is empty.
	ErrNoStart = errors.New("bfs: at least one start state is required")

	// ErrNilSuccessors is returned if the transition function is nil.
	ErrNilSuccessors = errors.New("bfs: successor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStateLimit is returned when more states are discovered than WithMaxStates allows.
	ErrStateLimit = errors.New("bfs: state limit exceeded")

	// ErrUnreachable is returned by PathTo for a state the search never reached.
	ErrUnreachable = errors.New("bfs: state not reached")
)

// unlimited marks the absence of a depth budget.
const unlimited = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnLayer is called once per depth layer, just before its first state
	// is expanded, with the layer depth and the number of states in it.
	OnLayer func(depth, size int)

	// MaxDepth is the step budget: states deeper than MaxDepth are never
	// enqueued. A negative value (the default) means no budget.
	MaxDepth int

	// MaxStates, if > 0, aborts the search with ErrStateLimit once more
	// than MaxStates distinct states have been discovered.
	MaxStates int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth budget
//   - no state limit
//   - no-op OnLayer hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnLayer:   func(int, int) {},
		MaxDepth:  unlimited,
		MaxStates: 0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnLayer registers a callback invoked at the start of each depth layer.
func WithOnLayer(fn func(depth, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// WithMaxDepth sets the step budget (inclusive).
//
//	d >= 0: only states within d transitions of a start are reached
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates bounds the number of distinct states a search may discover.
//
//	n > 0: limit to n states
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxStates must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: map from state to its minimum number of transitions from any start.
//   - Parent: map from state to its predecessor in the BFS tree (absent for starts).
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// Reached reports whether s was discovered by the search.
func (r *Result[S]) Reached(s S) bool {
	_, ok := r.Depth[s]
	return ok
}

// MaxDepth returns the greatest depth of any reached state.
func (r *Result[S]) MaxDepth() int {
	best := 0
	for _, d := range r.Depth {
		if d > best {
			best = d
		}
	}

	return best
}

// CountParity returns the number of reached states whose depth is at most
// budget and has the same parity as budget. On graphs where every step can
// be undone, these are exactly the states occupiable after budget steps.
func (r *Result[S]) CountParity(budget int) int {
	n := 0
	for _, d := range r.Depth {
		if d <= budget && d%2 == budget%2 {
			n++
		}
	}

	return n
}

// PathTo reconstructs the path from a start state to dest.
// Returns ErrUnreachable if dest was not reached.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	// build reversed path
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
