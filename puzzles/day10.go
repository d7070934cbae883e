package puzzles

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/bfs"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 10, Title: "Pipe Maze", Part1: day10a, Part2: day10b})
}

// pipeEnds lists the two directions each pipe tile connects.
var pipeEnds = map[byte][2]gridgraph.Direction{
	'|': {gridgraph.North, gridgraph.South},
	'-': {gridgraph.East, gridgraph.West},
	'L': {gridgraph.North, gridgraph.East},
	'J': {gridgraph.North, gridgraph.West},
	'7': {gridgraph.South, gridgraph.West},
	'F': {gridgraph.South, gridgraph.East},
}

// pipeMaze is the diagram with the start tile replaced by the pipe it hides.
type pipeMaze struct {
	grid  *gridgraph.Grid[byte]
	start gridgraph.Position
	pipe  byte // shape under S
}

// day10a returns the distance to the loop tile farthest from the start.
func day10a(in *input.Input) (int64, error) {
	m, err := parsePipeMaze(in)
	if err != nil {
		return 0, err
	}
	loop, err := m.loop()
	if err != nil {
		return 0, err
	}

	return int64(loop.MaxDepth()), nil
}

// day10b counts tiles enclosed by the loop. Scanning each row left to
// right, crossing a loop tile with a north end toggles inside/outside.
func day10b(in *input.Input) (int64, error) {
	m, err := parsePipeMaze(in)
	if err != nil {
		return 0, err
	}
	loop, err := m.loop()
	if err != nil {
		return 0, err
	}
	var enclosed int64
	for r := 0; r < m.grid.Height; r++ {
		inside := false
		for c := 0; c < m.grid.Width; c++ {
			p := gridgraph.Position{Row: r, Col: c}
			if !loop.Reached(p) {
				if inside {
					enclosed++
				}
				continue
			}
			if ends, ok := pipeEnds[m.tile(p)]; ok && (ends[0] == gridgraph.North || ends[1] == gridgraph.North) {
				inside = !inside
			}
		}
	}

	return enclosed, nil
}

func parsePipeMaze(in *input.Input) (*pipeMaze, error) {
	g, err := byteGrid(in.Lines, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	start, ok := g.Find(func(b byte) bool { return b == 'S' })
	if !ok {
		return nil, ErrNoStart
	}
	m := &pipeMaze{grid: g, start: start}

	// S hides the pipe whose two ends both meet pipes pointing back at it.
	var open []gridgraph.Direction
	for _, d := range gridgraph.Cardinals() {
		q := start.Add(d)
		if g.InBounds(q) && connects(g.Cell(q), d.Reverse()) {
			open = append(open, d)
		}
	}
	if len(open) != 2 {
		return nil, fmt.Errorf("%w: start has %d connecting pipes", ErrNoLoop, len(open))
	}
	for shape, ends := range pipeEnds {
		if ends == [2]gridgraph.Direction{open[0], open[1]} || ends == [2]gridgraph.Direction{open[1], open[0]} {
			m.pipe = shape
		}
	}

	return m, nil
}

func connects(tile byte, d gridgraph.Direction) bool {
	ends, ok := pipeEnds[tile]
	return ok && (ends[0] == d || ends[1] == d)
}

func (m *pipeMaze) tile(p gridgraph.Position) byte {
	if p == m.start {
		return m.pipe
	}
	return m.grid.Cell(p)
}

// next follows both ends of the pipe at p, keeping neighbours whose pipe
// connects back.
func (m *pipeMaze) next(p gridgraph.Position) []gridgraph.Position {
	ends, ok := pipeEnds[m.tile(p)]
	if !ok {
		return nil
	}
	out := make([]gridgraph.Position, 0, 2)
	for _, d := range ends {
		q := p.Add(d)
		if m.grid.InBounds(q) && connects(m.tile(q), d.Reverse()) {
			out = append(out, q)
		}
	}

	return out
}

// loop runs a BFS from the start along the pipes and checks that every
// tile reached has both ends connected, i.e. the tiles form a closed loop.
func (m *pipeMaze) loop() (*bfs.Result[gridgraph.Position], error) {
	res, err := bfs.Search([]gridgraph.Position{m.start}, m.next)
	if err != nil {
		return nil, err
	}
	for _, p := range res.Order {
		if len(m.next(p)) != 2 {
			return nil, fmt.Errorf("%w: pipe at %v is a dead end", ErrNoLoop, p)
		}
	}

	return res, nil
}
