// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on implicit weighted state graphs.
//
// Dijkstra computes the minimum-cost path from a start state to a goal
// (or to every reachable state) when all transition costs are non-negative.
// The algorithm maintains a priority queue of states to explore and
// relaxes transitions in increasing order of distance from the start.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |reached states|, E = |transitions|
//	   • Each state is settled at most once (V extracts).
//	   • Each relaxation may push into the priority queue (up to E pushes).
//	– Space: O(V + E)
//	   • O(V) to store distance and predecessor maps.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– ReturnPath:       if true, record predecessors and return the path / predecessor map.
//	– MaxDistance:      optional cap on distances to explore; states beyond this are skipped.
//	– InfEdgeThreshold: transitions with cost >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilSuccessors   if the transition function is nil.
//	– ErrNilGoal         if ShortestPath is given a nil goal predicate.
//	– ErrNegativeWeight  if a negative transition cost is produced.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilSuccessors indicates that a nil transition function was passed.
	ErrNilSuccessors = errors.New("dijkstra: successor function is nil")

	// ErrNilGoal indicates that ShortestPath was called without a goal predicate.
	ErrNilGoal = errors.New("dijkstra: goal predicate is nil")

	// ErrNegativeWeight indicates that a negative transition cost was produced.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Edge is one transition out of a state: the successor and the cost of moving there.
type Edge[S comparable] struct {
	To   S
	Cost int64
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Ctx              – cancellation and deadlines, checked once per settled state.
// ReturnPath       – if true, predecessors are recorded and returned.
// MaxDistance      – optional cap on distances to explore (states beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat transitions with cost ≥ this threshold as impassable.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Ctx              context.Context // Cancellation context
	ReturnPath       bool            // Whether to record predecessors
	MaxDistance      int64           // Maximum distance to explore
	InfEdgeThreshold int64           // Cost threshold above which edges are non-traversable

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath enables predecessor tracking.
// If false (default), Result.Path and the predecessor map are nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// States whose shortest distance would exceed this value are not explored.
// Negative values are recorded and surface as ErrBadMaxDistance on run.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold above which transitions are
// considered non-traversable (treated as infinite weight).
// Zero or negative values surface as ErrBadInfThreshold on run.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Ctx:              context.Background().
//   - ReturnPath:       false (no predecessor tracking).
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result is the outcome of ShortestPath.
//
// Found   – whether a goal state was settled; false is not an error.
// Cost    – minimum total cost to Goal (0 when !Found).
// Goal    – the first goal state settled.
// Path    – start → Goal inclusive, only with WithReturnPath.
// Settled – number of states whose distance was finalized.
type Result[S comparable] struct {
	Found   bool
	Cost    int64
	Goal    S
	Path    []S
	Settled int
}
