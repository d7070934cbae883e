// Package puzzles holds one solver per Advent of Code 2023 day, each built
// on the search and remapping engines of this module.
//
// Every day file registers its Solution from init, so importing the
// package is enough to make all days available through Lookup and All.
package puzzles

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/aoc2023/internal/input"
)

// Sentinel errors shared by the day solvers.
var (
	// ErrUnknownDay is returned by Lookup for a day nobody registered.
	ErrUnknownDay = errors.New("puzzles: no solver registered for day")

	// ErrNoStart indicates a map without its start marker.
	ErrNoStart = errors.New("puzzles: start position not found")

	// ErrNoLoop indicates the pipe maze start is not part of a closed loop.
	ErrNoLoop = errors.New("puzzles: start is not on a closed loop")

	// ErrUnsupportedLayout indicates input whose shape a closed-form
	// solution relies on does not hold.
	ErrUnsupportedLayout = errors.New("puzzles: unsupported input layout")

	// ErrNoAnswer indicates the puzzle has no answer for this input.
	ErrNoAnswer = errors.New("puzzles: input has no answer")
)

// Solver computes one part of a day from its input.
type Solver func(in *input.Input) (int64, error)

// Solution describes one day: its number, its title and both parts.
type Solution struct {
	Day   int
	Title string
	Part1 Solver
	Part2 Solver
}

// Part returns the solver for part 1 or 2, nil otherwise.
func (s Solution) Part(n int) Solver {
	switch n {
	case 1:
		return s.Part1
	case 2:
		return s.Part2
	default:
		return nil
	}
}

var registry = make(map[int]Solution)

// Register adds s to the registry. It panics on a duplicate day or a
// missing solver, which can only happen through a programming error.
func Register(s Solution) {
	if s.Part1 == nil || s.Part2 == nil {
		panic(fmt.Sprintf("puzzles: day %d registered without both parts", s.Day))
	}
	if _, ok := registry[s.Day]; ok {
		panic(fmt.Sprintf("puzzles: day %d registered twice", s.Day))
	}
	registry[s.Day] = s
}

// Lookup returns the solution registered for day.
func Lookup(day int) (Solution, error) {
	s, ok := registry[day]
	if !ok {
		return Solution{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// All returns every registered solution ordered by day.
func All() []Solution {
	out := make([]Solution, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })

	return out
}
