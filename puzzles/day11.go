package puzzles

import (
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 11, Title: "Cosmic Expansion", Part1: day11a, Part2: day11b})
}

func day11a(in *input.Input) (int64, error) {
	return GalaxyDistances(in, 2)
}

func day11b(in *input.Input) (int64, error) {
	return GalaxyDistances(in, 1_000_000)
}

// GalaxyDistances sums the shortest distances between every pair of
// galaxies after each empty row and column has been widened to factor
// rows or columns.
func GalaxyDistances(in *input.Input, factor int64) (int64, error) {
	g, err := byteGrid(in.Lines, gridgraph.DefaultGridOptions())
	if err != nil {
		return 0, err
	}
	isGalaxy := func(b byte) bool { return b == '#' }
	galaxies := g.FindAll(isGalaxy)

	// rowAt[r] and colAt[c] are the expanded coordinates of row r and column c.
	rowAt := expandedAxis(g.Height, factor, func(i int) bool {
		for _, b := range g.Row(i) {
			if isGalaxy(b) {
				return false
			}
		}
		return true
	})
	colAt := expandedAxis(g.Width, factor, func(i int) bool {
		for _, b := range g.Col(i) {
			if isGalaxy(b) {
				return false
			}
		}
		return true
	})

	var sum int64
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			sum += abs64(rowAt[a.Row]-rowAt[b.Row]) + abs64(colAt[a.Col]-colAt[b.Col])
		}
	}

	return sum, nil
}

func expandedAxis(n int, factor int64, empty func(int) bool) []int64 {
	at := make([]int64, n)
	var pos int64
	for i := range at {
		at[i] = pos
		if empty(i) {
			pos += factor
		} else {
			pos++
		}
	}

	return at
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
