package puzzles

import (
	"bytes"

	"github.com/katalvlaran/aoc2023/cycle"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 14, Title: "Parabolic Reflector Dish", Part1: day14a, Part2: day14b})
}

// spinCycles is how many north, west, south, east tilt rounds part 2 runs.
const spinCycles = 1_000_000_000

// platform is a mutable copy of the dish: 'O' rolls, '#' is fixed.
type platform [][]byte

func day14a(in *input.Input) (int64, error) {
	p, err := parsePlatform(in)
	if err != nil {
		return 0, err
	}
	p.tilt(gridgraph.North)

	return p.northLoad(), nil
}

// day14b finds the spin cycle after which the platform repeats and jumps
// straight to the state it would be in after a billion cycles.
func day14b(in *input.Input) (int64, error) {
	p, err := parsePlatform(in)
	if err != nil {
		return 0, err
	}
	final, _, err := cycle.Iterate(p, spinCycles, platform.spin, platform.key)
	if err != nil {
		return 0, err
	}

	return final.northLoad(), nil
}

func parsePlatform(in *input.Input) (platform, error) {
	g, err := byteGrid(in.Lines, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	for r, row := range g.Rows() {
		if len(bytes.Trim(row, ".#O")) > 0 {
			return nil, input.Malformed(r+1, in.Lines[r], "platform cells must be '.', '#' or 'O'")
		}
	}

	return platform(g.Rows()), nil
}

// spin returns a copy of p after one north, west, south, east cycle.
func (p platform) spin() platform {
	q := make(platform, len(p))
	for r := range p {
		q[r] = append([]byte(nil), p[r]...)
	}
	for _, d := range []gridgraph.Direction{gridgraph.North, gridgraph.West, gridgraph.South, gridgraph.East} {
		q.tilt(d)
	}

	return q
}

// tilt rolls every round rock as far as it goes towards d, in place.
// Rocks are visited nearest-to-the-edge first so each one lands on the
// free cell left by the rocks ahead of it.
func (p platform) tilt(d gridgraph.Direction) {
	h, w := len(p), len(p[0])
	rows, cols := order(h, d.DRow > 0), order(w, d.DCol > 0)
	for _, r := range rows {
		for _, c := range cols {
			if p[r][c] != 'O' {
				continue
			}
			cur := gridgraph.Position{Row: r, Col: c}
			for {
				n := cur.Add(d)
				if n.Row < 0 || n.Row >= h || n.Col < 0 || n.Col >= w || p[n.Row][n.Col] != '.' {
					break
				}
				cur = n
			}
			p[r][c] = '.'
			p[cur.Row][cur.Col] = 'O'
		}
	}
}

// order lists 0..n-1, reversed when the tilt moves towards higher indices.
func order(n int, reversed bool) []int {
	out := make([]int, n)
	for i := range out {
		if reversed {
			out[i] = n - 1 - i
		} else {
			out[i] = i
		}
	}

	return out
}

// northLoad sums, for every round rock, its distance from the south edge
// plus one.
func (p platform) northLoad() int64 {
	var load int64
	for r, row := range p {
		load += int64(bytes.Count(row, []byte{'O'}) * (len(p) - r))
	}

	return load
}

func (p platform) key() string {
	return string(bytes.Join(p, []byte{'\n'}))
}
