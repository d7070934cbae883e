package puzzles

import (
	"strings"

	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 1, Title: "Trebuchet?!", Part1: day01a, Part2: day01b})
}

var spelledDigits = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func day01a(in *input.Input) (int64, error) {
	return calibrationSum(in, false)
}

func day01b(in *input.Input) (int64, error) {
	return calibrationSum(in, true)
}

// calibrationSum adds up the two-digit values formed by the first and last
// digit of each line. Spelled digits may overlap ("eightwo" is 8 then 2).
func calibrationSum(in *input.Input, spelled bool) (int64, error) {
	var sum int64
	for i, line := range in.Lines {
		first, last := -1, -1
		for j := range len(line) {
			d, ok := digitAt(line, j, spelled)
			if !ok {
				continue
			}
			if first < 0 {
				first = d
			}
			last = d
		}
		if first < 0 {
			return 0, input.Malformed(i+1, line, "no digit")
		}
		sum += int64(first*10 + last)
	}

	return sum, nil
}

func digitAt(line string, j int, spelled bool) (int, bool) {
	if c := line[j]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for k, word := range spelledDigits {
		if strings.HasPrefix(line[j:], word) {
			return k + 1, true
		}
	}

	return 0, false
}
