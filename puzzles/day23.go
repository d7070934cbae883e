package puzzles

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/bfs"
	"github.com/katalvlaran/aoc2023/dfs"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 23, Title: "A Long Walk", Part1: day23a, Part2: day23b})
}

var slopes = map[byte]gridgraph.Direction{
	'^': gridgraph.North,
	'>': gridgraph.East,
	'v': gridgraph.South,
	'<': gridgraph.West,
}

// trailMap is the hiking map reduced to its junctions: the start, the
// end and every tile with three or more open neighbours. Edges carry the
// length of the corridor between two junctions.
type trailMap struct {
	grid       *gridgraph.Grid[byte]
	start, end gridgraph.Position
	edges      map[gridgraph.Position][]dfs.Edge[gridgraph.Position]
}

func day23a(in *input.Input) (int64, error) {
	return longestHike(in, true)
}

// day23b treats slopes as ordinary path tiles.
func day23b(in *input.Input) (int64, error) {
	return longestHike(in, false)
}

func longestHike(in *input.Input, icy bool) (int64, error) {
	t, err := buildTrailMap(in, icy)
	if err != nil {
		return 0, err
	}
	next := func(p gridgraph.Position) []dfs.Edge[gridgraph.Position] { return t.edges[p] }
	goal := func(p gridgraph.Position) bool { return p == t.end }
	steps, ok, err := dfs.LongestPath(t.start, goal, next)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: end not reachable", ErrNoAnswer)
	}

	return steps, nil
}

func buildTrailMap(in *input.Input, icy bool) (*trailMap, error) {
	g, err := byteGrid(in.Lines, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	sc, ec := strings.IndexByte(in.Lines[0], '.'), strings.IndexByte(in.Lines[g.Height-1], '.')
	if sc < 0 || ec < 0 {
		return nil, fmt.Errorf("%w: no gap in the top or bottom wall", ErrNoStart)
	}
	t := &trailMap{
		grid:  g,
		start: gridgraph.Position{Row: 0, Col: sc},
		end:   gridgraph.Position{Row: g.Height - 1, Col: ec},
		edges: make(map[gridgraph.Position][]dfs.Edge[gridgraph.Position]),
	}

	junction := map[gridgraph.Position]bool{t.start: true, t.end: true}
	for _, p := range g.FindAll(func(b byte) bool { return b != '#' }) {
		if len(t.open(p)) >= 3 {
			junction[p] = true
		}
	}

	// Corridors: a BFS from each junction that stops at the next junctions.
	for from := range junction {
		next := func(p gridgraph.Position) []gridgraph.Position {
			if p != from && junction[p] {
				return nil
			}
			return t.moves(p, icy)
		}
		res, err := bfs.Search([]gridgraph.Position{from}, next)
		if err != nil {
			return nil, err
		}
		for _, p := range res.Order {
			if p != from && junction[p] {
				t.edges[from] = append(t.edges[from], dfs.Edge[gridgraph.Position]{To: p, Cost: int64(res.Depth[p])})
			}
		}
	}

	return t, nil
}

// open returns the non-forest neighbours of p.
func (t *trailMap) open(p gridgraph.Position) []gridgraph.Position {
	var out []gridgraph.Position
	for _, q := range t.grid.Adjacent(p) {
		if t.grid.Cell(q) != '#' {
			out = append(out, q)
		}
	}

	return out
}

// moves returns where a hiker on p may step. On icy maps a slope tile
// only lets the hiker continue downhill.
func (t *trailMap) moves(p gridgraph.Position, icy bool) []gridgraph.Position {
	if d, ok := slopes[t.grid.Cell(p)]; ok && icy {
		q := p.Add(d)
		if t.grid.InBounds(q) && t.grid.Cell(q) != '#' {
			return []gridgraph.Position{q}
		}
		return nil
	}

	return t.open(p)
}
