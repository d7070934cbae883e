package puzzles

import (
	"strings"

	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 4, Title: "Scratchcards", Part1: day04a, Part2: day04b})
}

func day04a(in *input.Input) (int64, error) {
	matches, err := cardMatches(in)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, m := range matches {
		if m > 0 {
			sum += 1 << (m - 1)
		}
	}

	return sum, nil
}

// day04b counts cards after each win hands out copies of the next cards.
func day04b(in *input.Input) (int64, error) {
	matches, err := cardMatches(in)
	if err != nil {
		return 0, err
	}
	copies := make([]int64, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	var total int64
	for i, m := range matches {
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}

	return total, nil
}

// cardMatches returns, per card, how many of its numbers are winning ones.
func cardMatches(in *input.Input) ([]int, error) {
	out := make([]int, 0, len(in.Lines))
	for i, line := range in.Lines {
		_, body, err := input.Cut(i+1, line, ":")
		if err != nil {
			return nil, err
		}
		winning, have, err := input.Cut(i+1, body, "|")
		if err != nil {
			return nil, err
		}
		win := make(map[string]bool)
		for _, f := range strings.Fields(winning) {
			win[f] = true
		}
		m := 0
		for _, f := range strings.Fields(have) {
			if win[f] {
				m++
			}
		}
		out = append(out, m)
	}

	return out, nil
}
