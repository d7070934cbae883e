// Package interval defines half-open integer ranges and the rule tables
// that remap them.
package interval

import (
	"errors"
	"fmt"
)

// ErrBadRule indicates a rule with negative length.
var ErrBadRule = errors.New("interval: rule length must be non-negative")

// Range is the half-open integer interval [Start, End).
// A Range with End <= Start is empty.
type Range struct {
	Start, End int64
}

// Of returns the range of length n starting at start.
func Of(start, n int64) Range {
	return Range{Start: start, End: start + n}
}

// Len returns the number of integers in r (0 when empty).
func (r Range) Len() int64 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether r contains no integers.
func (r Range) Empty() bool { return r.End <= r.Start }

// Contains reports whether v lies in r.
func (r Range) Contains(v int64) bool { return v >= r.Start && v < r.End }

// Intersect returns the overlap of r and o; ok is false when they are disjoint.
func (r Range) Intersect(o Range) (Range, bool) {
	out := Range{Start: max(r.Start, o.Start), End: min(r.End, o.End)}
	if out.Empty() {
		return Range{}, false
	}
	return out, true
}

// SplitAt cuts r at v into [Start, v) and [v, End), clamped to r.
// Either half may be empty.
func (r Range) SplitAt(v int64) (lo, hi Range) {
	v = min(max(v, r.Start), r.End)
	return Range{Start: r.Start, End: v}, Range{Start: v, End: r.End}
}

// Shift returns r translated by d.
func (r Range) Shift(d int64) Range {
	return Range{Start: r.Start + d, End: r.End + d}
}

// String formats r as "[start,end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Rule maps the source block [Source, Source+Length) onto
// [Dest, Dest+Length) by a constant offset.
type Rule struct {
	Dest, Source, Length int64
}

// SourceRange returns the block of values the rule applies to.
func (r Rule) SourceRange() Range { return Of(r.Source, r.Length) }

// Offset returns the amount added to every value the rule maps.
func (r Rule) Offset() int64 { return r.Dest - r.Source }

// Validate returns ErrBadRule for a negative length.
func (r Rule) Validate() error {
	if r.Length < 0 {
		return fmt.Errorf("%w: %d %d %d", ErrBadRule, r.Dest, r.Source, r.Length)
	}
	return nil
}

// Table is an ordered list of rules. Values covered by no rule map to
// themselves; when rules overlap, the first matching rule wins.
type Table []Rule

// Pipeline is a sequence of tables applied in order.
type Pipeline []Table
