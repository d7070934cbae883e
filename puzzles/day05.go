package puzzles

import (
	"strings"

	"github.com/katalvlaran/aoc2023/internal/input"
	"github.com/katalvlaran/aoc2023/interval"
)

func init() {
	Register(Solution{Day: 5, Title: "If You Give A Seed A Fertilizer", Part1: day05a, Part2: day05b})
}

func day05a(in *input.Input) (int64, error) {
	seeds, almanac, err := parseAlmanac(in)
	if err != nil {
		return 0, err
	}
	if len(seeds) == 0 {
		return 0, ErrNoAnswer
	}
	best := almanac.MapValue(seeds[0])
	for _, s := range seeds[1:] {
		best = min(best, almanac.MapValue(s))
	}

	return best, nil
}

// day05b reads the seed list as (start, length) pairs and pushes whole
// ranges through the almanac instead of single seeds.
func day05b(in *input.Input) (int64, error) {
	seeds, almanac, err := parseAlmanac(in)
	if err != nil {
		return 0, err
	}
	if len(seeds)%2 != 0 {
		return 0, input.Malformed(1, in.Lines[0], "odd number of seed values")
	}
	ranges := make([]interval.Range, 0, len(seeds)/2)
	for i := 0; i < len(seeds); i += 2 {
		ranges = append(ranges, interval.Of(seeds[i], seeds[i+1]))
	}
	best, ok := interval.Min(almanac.MapRanges(ranges))
	if !ok {
		return 0, ErrNoAnswer
	}

	return best, nil
}

// parseAlmanac reads the "seeds:" line and one table per "... map:" block.
func parseAlmanac(in *input.Input) ([]int64, interval.Pipeline, error) {
	if len(in.Lines) == 0 || !strings.HasPrefix(in.Lines[0], "seeds:") {
		return nil, nil, input.Malformed(1, firstLine(in), "missing seeds line")
	}
	seeds, err := input.Ints(1, in.Lines[0])
	if err != nil {
		return nil, nil, err
	}

	var pipe interval.Pipeline
	for i, text := range in.Lines[1:] {
		lineNo := i + 2
		switch {
		case strings.TrimSpace(text) == "":
			continue
		case strings.HasSuffix(text, "map:"):
			pipe = append(pipe, interval.Table{})
			continue
		case len(pipe) == 0:
			return nil, nil, input.Malformed(lineNo, text, "rule before any map header")
		}
		vals, err := input.Ints(lineNo, text)
		if err != nil {
			return nil, nil, err
		}
		if len(vals) != 3 {
			return nil, nil, input.Malformed(lineNo, text, "want 3 numbers, got %d", len(vals))
		}
		r := interval.Rule{Dest: vals[0], Source: vals[1], Length: vals[2]}
		if err := r.Validate(); err != nil {
			return nil, nil, input.Malformed(lineNo, text, "%v", err)
		}
		pipe[len(pipe)-1] = append(pipe[len(pipe)-1], r)
	}

	return seeds, pipe, nil
}

func firstLine(in *input.Input) string {
	if len(in.Lines) == 0 {
		return ""
	}

	return in.Lines[0]
}
