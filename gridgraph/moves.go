package gridgraph

import "fmt"

// Heading is a search state for run-length constrained movement: the
// current cell, the direction of the last move, and how many consecutive
// moves were made in that direction. Heading is comparable and can be
// used directly as a visited-set key.
type Heading struct {
	Pos Position
	Dir Direction
	Run int
}

// StartHeading returns the heading used before the first move: no
// direction, no run.
func StartHeading(p Position) Heading {
	return Heading{Pos: p, Dir: Stay}
}

// RunLimits bounds the number of consecutive moves in one direction.
// A mover must travel at least Min cells before turning and at most Max
// before it is forced to turn. Reversing is never allowed.
type RunLimits struct {
	Min, Max int
}

// Validate returns ErrBadRunLimits unless 0 <= Min <= Max and Max >= 1.
func (l RunLimits) Validate() error {
	if l.Max < 1 || l.Min < 0 || l.Min > l.Max {
		return fmt.Errorf("%w: min=%d max=%d", ErrBadRunLimits, l.Min, l.Max)
	}

	return nil
}

// CanStop reports whether a mover in heading h may end its journey,
// i.e. it has completed at least Min moves in its current direction.
// A start heading can always stop.
func (l RunLimits) CanStop(h Heading) bool {
	return h.Dir == Stay || h.Run >= l.Min
}

// Next returns the headings reachable from h in one move that stay within b.
//
// Steps:
//  1. From a start heading, every cardinal direction begins a run of 1.
//  2. Continuing straight is allowed while Run < Max.
//  3. Turning left or right is allowed once Run >= Min; the new run is 1.
//  4. Reversing is never generated.
func (l RunLimits) Next(b Bounds, h Heading) []Heading {
	out := make([]Heading, 0, 3)
	add := func(d Direction, run int) {
		p := h.Pos.Add(d)
		if b.InBounds(p) {
			out = append(out, Heading{Pos: p, Dir: d, Run: run})
		}
	}

	if h.Dir == Stay {
		for _, d := range Cardinals() {
			add(d, 1)
		}
		return out
	}
	if h.Run < l.Max {
		add(h.Dir, h.Run+1)
	}
	if h.Run >= l.Min {
		add(h.Dir.TurnLeft(), 1)
		add(h.Dir.TurnRight(), 1)
	}

	return out
}
