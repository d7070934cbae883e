// Package cycle defines options, errors and result types for fixed-point
// iteration with cycle detection.
package cycle

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for cycle-detected iteration.
var (
	// ErrNegativeTarget is returned when the requested step count is negative.
	ErrNegativeTarget = errors.New("cycle: target step count must be non-negative")

	// ErrNilStep is returned when the step or key function is nil.
	ErrNilStep = errors.New("cycle: step and key functions are required")

	// ErrNoCycle is returned when WithMaxSteps is exhausted before the
	// target is reached or a configuration repeats.
	ErrNoCycle = errors.New("cycle: no repetition within step limit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cycle: invalid option supplied")
)

// Option configures Iterate via functional arguments.
type Option func(*Options)

// Options holds parameters for Iterate.
type Options struct {
	// Ctx allows cancellation; checked once per step.
	Ctx context.Context

	// MaxSteps, if > 0, bounds how many steps are simulated while looking
	// for a repetition.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no step bound.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the simulation to m steps (m > 0).
func WithMaxSteps(m int) Option {
	return func(o *Options) {
		if m <= 0 {
			o.err = fmt.Errorf("%w: MaxSteps must be positive (%d)", ErrOptionViolation, m)
			return
		}
		o.MaxSteps = m
	}
}

// Period describes the detected cycle. When the target was reached by
// direct simulation, Found is false and Start/Length are zero.
//
// Start  – index of the first configuration that later repeats.
// Length – distance between the two occurrences (always ≥ 1 when Found).
// Steps  – number of step calls actually made.
type Period struct {
	Found  bool
	Start  int
	Length int
	Steps  int
}
