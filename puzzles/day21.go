package puzzles

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/bfs"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 21, Title: "Step Counter", Part1: day21a, Part2: day21b})
}

const (
	gardenSteps         = 64
	infiniteGardenSteps = 26501365
)

func day21a(in *input.Input) (int64, error) {
	return GardenPlots(in, gardenSteps)
}

func day21b(in *input.Input) (int64, error) {
	return InfiniteGardenPlots(in, infiniteGardenSteps)
}

// garden is the map with its start position.
type garden struct {
	grid  *gridgraph.Grid[byte]
	start gridgraph.Position
}

func parseGarden(in *input.Input) (*garden, error) {
	g, err := byteGrid(in.Lines, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	start, ok := g.Find(func(b byte) bool { return b == 'S' })
	if !ok {
		return nil, ErrNoStart
	}

	return &garden{grid: g, start: start}, nil
}

// plotsFrom counts the plots the elf can stand on after exactly steps
// steps from p without leaving the map. Every step can be undone, so
// these are the plots within steps moves at the same parity as steps.
func (gd *garden) plotsFrom(p gridgraph.Position, steps int) (int64, error) {
	next := func(q gridgraph.Position) []gridgraph.Position {
		var out []gridgraph.Position
		for _, n := range gd.grid.Adjacent(q) {
			if gd.grid.Cell(n) != '#' {
				out = append(out, n)
			}
		}
		return out
	}
	res, err := bfs.Search([]gridgraph.Position{p}, next, bfs.WithMaxDepth(steps))
	if err != nil {
		return 0, err
	}

	return int64(res.CountParity(steps)), nil
}

// GardenPlots counts the plots reachable in exactly steps steps from S.
func GardenPlots(in *input.Input, steps int) (int64, error) {
	gd, err := parseGarden(in)
	if err != nil {
		return 0, err
	}

	return gd.plotsFrom(gd.start, steps)
}

// InfiniteGardenPlots counts reachable plots when the map repeats in every
// direction. It needs the layout real puzzle inputs have: a square map of
// odd size with S in the centre, the start row, start column and border
// free of rocks, and steps = size/2 + an even number of map widths. The
// walk then covers a diamond of whole tiles, whose count is assembled from
// a handful of bounded searches: full tiles of both parities, the four
// tips and the small and large diagonal edge pieces.
func InfiniteGardenPlots(in *input.Input, steps int) (int64, error) {
	gd, err := parseGarden(in)
	if err != nil {
		return 0, err
	}
	if err := gd.checkDiamondLayout(steps); err != nil {
		return 0, err
	}

	size := gd.grid.Height
	last := size - 1
	sr, sc := gd.start.Row, gd.start.Col
	width := int64(steps/size - 1) // whole tiles from the centre tile to the edge, exclusive

	at := func(r, c int) gridgraph.Position { return gridgraph.Position{Row: r, Col: c} }
	type probe struct {
		from  gridgraph.Position
		steps int
		mul   int64
	}
	odd := (width/2*2 + 1) * (width/2*2 + 1)
	even := ((width + 1) / 2 * 2) * ((width + 1) / 2 * 2)
	probes := []probe{
		{gd.start, size*2 + 1, odd},
		{gd.start, size * 2, even},
		// tips
		{at(last, sc), last, 1},
		{at(sr, 0), last, 1},
		{at(0, sc), last, 1},
		{at(sr, last), last, 1},
		// small edge pieces
		{at(last, 0), size/2 - 1, width + 1},
		{at(last, last), size/2 - 1, width + 1},
		{at(0, 0), size/2 - 1, width + 1},
		{at(0, last), size/2 - 1, width + 1},
		// large edge pieces
		{at(last, 0), size*3/2 - 1, width},
		{at(last, last), size*3/2 - 1, width},
		{at(0, 0), size*3/2 - 1, width},
		{at(0, last), size*3/2 - 1, width},
	}

	var total int64
	for _, p := range probes {
		n, err := gd.plotsFrom(p.from, p.steps)
		if err != nil {
			return 0, err
		}
		total += p.mul * n
	}

	return total, nil
}

func (gd *garden) checkDiamondLayout(steps int) error {
	g := gd.grid
	size := g.Height
	switch {
	case g.Width != size || size%2 == 0:
		return fmt.Errorf("%w: map is %dx%d, want an odd square", ErrUnsupportedLayout, g.Height, g.Width)
	case gd.start != (gridgraph.Position{Row: size / 2, Col: size / 2}):
		return fmt.Errorf("%w: start %v is not the centre", ErrUnsupportedLayout, gd.start)
	case steps%size != size/2 || (steps/size)%2 != 0 || steps < 2*size:
		return fmt.Errorf("%w: %d steps is not size/2 plus an even number of widths %d", ErrUnsupportedLayout, steps, size)
	}
	for i := 0; i < size; i++ {
		for _, p := range []gridgraph.Position{
			{Row: size / 2, Col: i}, {Row: i, Col: size / 2},
			{Row: 0, Col: i}, {Row: size - 1, Col: i}, {Row: i, Col: 0}, {Row: i, Col: size - 1},
		} {
			if g.Cell(p) == '#' {
				return fmt.Errorf("%w: rock at %v on the start cross or border", ErrUnsupportedLayout, p)
			}
		}
	}

	return nil
}
