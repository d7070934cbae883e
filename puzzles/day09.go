package puzzles

import (
	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 9, Title: "Mirage Maintenance", Part1: day09a, Part2: day09b})
}

func day09a(in *input.Input) (int64, error) {
	return sumExtrapolated(in, false)
}

// day09b extrapolates backwards, which is the forward extrapolation of
// the reversed history.
func day09b(in *input.Input) (int64, error) {
	return sumExtrapolated(in, true)
}

func sumExtrapolated(in *input.Input, backwards bool) (int64, error) {
	var sum int64
	for i, line := range in.Lines {
		hist, err := input.Ints(i+1, line)
		if err != nil {
			return 0, err
		}
		if len(hist) == 0 {
			return 0, input.Malformed(i+1, line, "empty history")
		}
		if backwards {
			for a, b := 0, len(hist)-1; a < b; a, b = a+1, b-1 {
				hist[a], hist[b] = hist[b], hist[a]
			}
		}
		sum += extrapolate(hist)
	}

	return sum, nil
}

// extrapolate predicts the next value: the sum of the last element of
// every difference row down to the all-zero row.
func extrapolate(hist []int64) int64 {
	row := append([]int64(nil), hist...)
	var next int64
	for len(row) > 0 {
		next += row[len(row)-1]
		allZero := true
		for k := 0; k+1 < len(row); k++ {
			row[k] = row[k+1] - row[k]
			if row[k] != 0 {
				allZero = false
			}
		}
		row = row[:len(row)-1]
		if allZero {
			break
		}
	}

	return next
}
