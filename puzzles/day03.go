package puzzles

import (
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 3, Title: "Gear Ratios", Part1: day03a, Part2: day03b})
}

// partNumber is a horizontal run of digits on the schematic.
type partNumber struct {
	Value int64
	Cells []gridgraph.Position
}

func day03a(in *input.Input) (int64, error) {
	g, nums, err := parseSchematic(in)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, n := range nums {
		if len(symbolsAround(g, n, isSymbol)) > 0 {
			sum += n.Value
		}
	}

	return sum, nil
}

// day03b sums the gear ratios: every '*' touching exactly two numbers
// contributes their product.
func day03b(in *input.Input) (int64, error) {
	g, nums, err := parseSchematic(in)
	if err != nil {
		return 0, err
	}
	touching := make(map[gridgraph.Position][]int64)
	for _, n := range nums {
		for _, p := range symbolsAround(g, n, func(b byte) bool { return b == '*' }) {
			touching[p] = append(touching[p], n.Value)
		}
	}
	var sum int64
	for _, vals := range touching {
		if len(vals) == 2 {
			sum += vals[0] * vals[1]
		}
	}

	return sum, nil
}

func parseSchematic(in *input.Input) (*gridgraph.Grid[byte], []partNumber, error) {
	g, err := byteGrid(in.Lines, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	if err != nil {
		return nil, nil, err
	}
	runs := g.ComponentsWith(isDigitByte, []gridgraph.Direction{gridgraph.West, gridgraph.East})
	nums := make([]partNumber, 0, len(runs))
	for _, run := range runs {
		var v int64
		for _, p := range run {
			v = v*10 + int64(g.Cell(p)-'0')
		}
		nums = append(nums, partNumber{Value: v, Cells: run})
	}

	return g, nums, nil
}

// symbolsAround returns the distinct cells adjacent to n (diagonals
// included) whose byte satisfies match.
func symbolsAround(g *gridgraph.Grid[byte], n partNumber, match func(byte) bool) []gridgraph.Position {
	seen := make(map[gridgraph.Position]bool)
	var out []gridgraph.Position
	for _, c := range n.Cells {
		for _, p := range g.Adjacent(c) {
			if seen[p] || !match(g.Cell(p)) {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}

	return out
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func isSymbol(b byte) bool { return b != '.' && !isDigitByte(b) }
