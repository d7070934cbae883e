package puzzles

import (
	"github.com/katalvlaran/aoc2023/bfs"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 16, Title: "The Floor Will Be Lava", Part1: day16a, Part2: day16b})
}

// beam is light entering the tile at Pos while travelling in Dir.
type beam struct {
	Pos gridgraph.Position
	Dir gridgraph.Direction
}

func day16a(in *input.Input) (int64, error) {
	g, err := byteGrid(in.Lines, gridgraph.DefaultGridOptions())
	if err != nil {
		return 0, err
	}

	return energized(g, beam{Pos: gridgraph.Position{}, Dir: gridgraph.East})
}

// day16b tries every edge tile as the entry point, beam pointing inwards.
func day16b(in *input.Input) (int64, error) {
	g, err := byteGrid(in.Lines, gridgraph.DefaultGridOptions())
	if err != nil {
		return 0, err
	}
	var entries []beam
	for r := 0; r < g.Height; r++ {
		entries = append(entries,
			beam{gridgraph.Position{Row: r, Col: 0}, gridgraph.East},
			beam{gridgraph.Position{Row: r, Col: g.Width - 1}, gridgraph.West})
	}
	for c := 0; c < g.Width; c++ {
		entries = append(entries,
			beam{gridgraph.Position{Row: 0, Col: c}, gridgraph.South},
			beam{gridgraph.Position{Row: g.Height - 1, Col: c}, gridgraph.North})
	}

	var best int64
	for _, e := range entries {
		n, err := energized(g, e)
		if err != nil {
			return 0, err
		}
		best = max(best, n)
	}

	return best, nil
}

// energized counts distinct tiles crossed by light entering at start.
// Beam states are finite, so a BFS over them terminates even when the
// light loops.
func energized(g *gridgraph.Grid[byte], start beam) (int64, error) {
	next := func(b beam) []beam {
		var out []beam
		for _, d := range deflect(g.Cell(b.Pos), b.Dir) {
			if p := b.Pos.Add(d); g.InBounds(p) {
				out = append(out, beam{Pos: p, Dir: d})
			}
		}
		return out
	}
	res, err := bfs.Search([]beam{start}, next)
	if err != nil {
		return 0, err
	}
	tiles := make(map[gridgraph.Position]bool)
	for _, b := range res.Order {
		tiles[b.Pos] = true
	}

	return int64(len(tiles)), nil
}

// deflect returns the directions light leaves a tile in after entering
// it moving d.
func deflect(tile byte, d gridgraph.Direction) []gridgraph.Direction {
	switch {
	case tile == '/':
		return []gridgraph.Direction{{DRow: -d.DCol, DCol: -d.DRow}}
	case tile == '\\':
		return []gridgraph.Direction{{DRow: d.DCol, DCol: d.DRow}}
	case tile == '|' && d.DRow == 0:
		return []gridgraph.Direction{gridgraph.North, gridgraph.South}
	case tile == '-' && d.DCol == 0:
		return []gridgraph.Direction{gridgraph.East, gridgraph.West}
	default:
		return []gridgraph.Direction{d}
	}
}
