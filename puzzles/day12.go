package puzzles

import (
	"strings"

	"github.com/katalvlaran/aoc2023/internal/input"
	"github.com/katalvlaran/aoc2023/memo"
)

func init() {
	Register(Solution{Day: 12, Title: "Hot Springs", Part1: day12a, Part2: day12b})
}

func day12a(in *input.Input) (int64, error) {
	return sumArrangements(in, 1)
}

// day12b unfolds each row five times: springs joined by '?', groups repeated.
func day12b(in *input.Input) (int64, error) {
	return sumArrangements(in, 5)
}

func sumArrangements(in *input.Input, copies int) (int64, error) {
	var sum int64
	for i, line := range in.Lines {
		springs, list, err := input.Cut(i+1, line, " ")
		if err != nil {
			return 0, err
		}
		var groups []int
		for _, f := range strings.Split(list, ",") {
			n, err := input.ParseInt(i+1, line, f)
			if err != nil {
				return 0, err
			}
			if n <= 0 {
				return 0, input.Malformed(i+1, line, "group size %d", n)
			}
			groups = append(groups, int(n))
		}
		if strings.Trim(springs, ".#?") != "" {
			return 0, input.Malformed(i+1, line, "springs must be '.', '#' or '?'")
		}

		unfoldedGroups := make([]int, 0, len(groups)*copies)
		parts := make([]string, copies)
		for k := range copies {
			parts[k] = springs
			unfoldedGroups = append(unfoldedGroups, groups...)
		}
		row := &springRow{
			springs: strings.Join(parts, "?"),
			groups:  unfoldedGroups,
			cache:   memo.New[springKey, int64](),
		}
		sum += row.count(0, 0)
	}

	return sum, nil
}

// springKey identifies a subproblem: the springs from pos on must hold the
// groups from group on.
type springKey struct {
	pos, group int
}

// springRow counts the damaged/operational assignments of one row that
// match its group list. Its cache lives and dies with the row.
type springRow struct {
	springs string
	groups  []int
	cache   *memo.Cache[springKey, int64]
}

func (r *springRow) count(pos, group int) int64 {
	if pos >= len(r.springs) {
		if group == len(r.groups) {
			return 1
		}
		return 0
	}
	if group == len(r.groups) {
		if strings.ContainsRune(r.springs[pos:], '#') {
			return 0
		}
		return 1
	}

	return r.cache.Do(springKey{pos, group}, func() int64 {
		var n int64
		c := r.springs[pos]
		if c == '.' || c == '?' {
			n += r.count(pos+1, group)
		}
		if c == '#' || c == '?' {
			size := r.groups[group]
			end := pos + size
			if end <= len(r.springs) && !strings.ContainsRune(r.springs[pos:end], '.') &&
				(end == len(r.springs) || r.springs[end] != '#') {
				n += r.count(end+1, group+1)
			}
		}
		return n
	})
}
