package puzzles

import (
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 13, Title: "Point of Incidence", Part1: day13a, Part2: day13b})
}

func day13a(in *input.Input) (int64, error) {
	return summarizeMirrors(in, 0)
}

// day13b looks for the reflection line that appears once exactly one
// smudge is fixed, i.e. the line whose two halves differ in one cell.
func day13b(in *input.Input) (int64, error) {
	return summarizeMirrors(in, 1)
}

// summarizeMirrors adds the column count left of each vertical mirror and
// 100 times the row count above each horizontal one.
func summarizeMirrors(in *input.Input, smudges int) (int64, error) {
	var sum int64
	for _, block := range in.Blocks() {
		g, err := byteGrid(block, gridgraph.DefaultGridOptions())
		if err != nil {
			return 0, err
		}
		rows := g.Rows()
		cols := make([][]byte, g.Width)
		for c := range cols {
			cols[c] = g.Col(c)
		}
		sum += 100*int64(mirrorLine(rows, smudges)) + int64(mirrorLine(cols, smudges))
	}

	return sum, nil
}

// mirrorLine returns how many lines lie before the first mirror position
// whose reflected halves differ in exactly smudges cells, or 0.
func mirrorLine(lines [][]byte, smudges int) int {
	for split := 1; split < len(lines); split++ {
		diff := 0
		for a, b := split-1, split; a >= 0 && b < len(lines) && diff <= smudges; a, b = a-1, b+1 {
			for k := range lines[a] {
				if lines[a][k] != lines[b][k] {
					diff++
				}
			}
		}
		if diff == smudges {
			return split
		}
	}

	return 0
}
