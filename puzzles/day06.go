package puzzles

import (
	"math"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 6, Title: "Wait For It", Part1: day06a, Part2: day06b})
}

func day06a(in *input.Input) (int64, error) {
	times, dists, err := parseRaces(in)
	if err != nil {
		return 0, err
	}
	product := int64(1)
	for i := range times {
		product *= waysToWin(times[i], dists[i])
	}

	return product, nil
}

// day06b reads each line as one number with the spaces removed.
func day06b(in *input.Input) (int64, error) {
	if len(in.Lines) < 2 {
		return 0, input.Malformed(len(in.Lines), firstLine(in), "want Time and Distance lines")
	}
	var joined [2]int64
	for i := range joined {
		_, digits, err := input.Cut(i+1, in.Lines[i], ":")
		if err != nil {
			return 0, err
		}
		v, err := input.ParseInt(i+1, in.Lines[i], strings.ReplaceAll(digits, " ", ""))
		if err != nil {
			return 0, err
		}
		joined[i] = v
	}

	return waysToWin(joined[0], joined[1]), nil
}

func parseRaces(in *input.Input) (times, dists []int64, err error) {
	if len(in.Lines) < 2 {
		return nil, nil, input.Malformed(len(in.Lines), firstLine(in), "want Time and Distance lines")
	}
	if times, err = input.Ints(1, in.Lines[0]); err != nil {
		return nil, nil, err
	}
	if dists, err = input.Ints(2, in.Lines[1]); err != nil {
		return nil, nil, err
	}
	if len(times) != len(dists) {
		return nil, nil, input.Malformed(2, in.Lines[1], "%d times but %d distances", len(times), len(dists))
	}

	return times, dists, nil
}

// waysToWin counts hold times h in [0, t] with h*(t-h) > record. The
// winning holds form one interval centred on t/2 bounded by the roots of
// h² - t·h + record = 0; the float root is corrected by integer checks.
func waysToWin(t, record int64) int64 {
	beats := func(h int64) bool { return h*(t-h) > record }
	if !beats(t / 2) {
		return 0
	}
	disc := max(float64(t)*float64(t)-4*float64(record), 0)
	lo := max(int64(math.Floor((float64(t)-math.Sqrt(disc))/2)), 0)
	for !beats(lo) {
		lo++
	}
	for lo > 0 && beats(lo-1) {
		lo--
	}

	return t - 2*lo + 1
}
