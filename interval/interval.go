package interval

import "sort"

// MapValue maps a single value through the first rule whose source block
// contains it, or returns it unchanged.
func (t Table) MapValue(v int64) int64 {
	for _, r := range t {
		if r.SourceRange().Contains(v) {
			return v + r.Offset()
		}
	}
	return v
}

// MapRanges remaps a set of ranges through t.
//
// Steps:
//  1. Keep a pending list, initially the input ranges.
//  2. For each rule in order, split every pending range into the part
//     inside the rule's source block and the parts left and right of it.
//  3. The inside part is shifted to the output and leaves the pending list;
//     the outside parts stay pending for later rules.
//  4. Whatever is still pending after the last rule maps to itself.
//
// Empty ranges are dropped. Total length is conserved: TotalLen(out) ==
// TotalLen(in) whenever the rules' source blocks do not overlap.
func (t Table) MapRanges(in []Range) []Range {
	pending := make([]Range, 0, len(in))
	for _, r := range in {
		if !r.Empty() {
			pending = append(pending, r)
		}
	}

	var out []Range
	for _, rule := range t {
		src := rule.SourceRange()
		var rest []Range
		for _, r := range pending {
			overlap, ok := r.Intersect(src)
			if !ok {
				rest = append(rest, r)
				continue
			}
			out = append(out, overlap.Shift(rule.Offset()))
			if left := (Range{Start: r.Start, End: overlap.Start}); !left.Empty() {
				rest = append(rest, left)
			}
			if right := (Range{Start: overlap.End, End: r.End}); !right.Empty() {
				rest = append(rest, right)
			}
		}
		pending = rest
	}

	return append(out, pending...)
}

// MapValue sends v through every table in order.
func (p Pipeline) MapValue(v int64) int64 {
	for _, t := range p {
		v = t.MapValue(v)
	}
	return v
}

// MapRanges sends the ranges through every table in order.
func (p Pipeline) MapRanges(in []Range) []Range {
	out := in
	for _, t := range p {
		out = t.MapRanges(out)
	}
	return out
}

// TotalLen returns the summed length of rs. Overlapping ranges count twice.
func TotalLen(rs []Range) int64 {
	var n int64
	for _, r := range rs {
		n += r.Len()
	}
	return n
}

// Merge sorts rs by start and coalesces overlapping or touching ranges.
// Empty ranges are dropped. The input slice is not modified.
func Merge(rs []Range) []Range {
	sorted := make([]Range, 0, len(rs))
	for _, r := range rs {
		if !r.Empty() {
			sorted = append(sorted, r)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var out []Range
	for _, r := range sorted {
		if n := len(out); n > 0 && r.Start <= out[n-1].End {
			out[n-1].End = max(out[n-1].End, r.End)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Min returns the smallest Start among non-empty ranges; ok is false if there are none.
func Min(rs []Range) (int64, bool) {
	var best int64
	found := false
	for _, r := range rs {
		if r.Empty() {
			continue
		}
		if !found || r.Start < best {
			best, found = r.Start, true
		}
	}
	return best, found
}
