package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid[T any](values [][]T, opts GridOptions) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for i, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]T, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]T, w)
		copy(cells[r], values[r])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets []Direction
	if opts.Conn == Conn8 {
		offsets = []Direction{North, {-1, 1}, East, {1, 1}, South, {1, -1}, West, {-1, -1}}
	} else {
		offsets = Cardinals()
	}

	return &Grid[T]{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// FromLines builds a byte grid from text lines, one cell per byte.
// Trailing carriage returns are stripped so CRLF input parses the same.
func FromLines(lines []string, opts GridOptions) (*Grid[byte], error) {
	rows := make([][]byte, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []byte(strings.TrimSuffix(line, "\r")))
	}

	return NewGrid(rows, opts)
}

// DigitsFromLines builds an integer grid from lines of decimal digits.
// Returns ErrNotDigit (wrapped with the position) on any other byte.
func DigitsFromLines(lines []string, opts GridOptions) (*Grid[int], error) {
	rows := make([][]int, 0, len(lines))
	for r, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]int, len(line))
		for c := 0; c < len(line); c++ {
			ch := line[c]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at %v", ErrNotDigit, ch, Position{r, c})
			}
			row[c] = int(ch - '0')
		}
		rows = append(rows, row)
	}

	return NewGrid(rows, opts)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the cell at p, or ErrOutOfBounds.
func (g *Grid[T]) At(p Position) (T, error) {
	if !g.InBounds(p) {
		var zero T
		return zero, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.Height, g.Width)
	}

	return g.cells[p.Row][p.Col], nil
}

// Cell returns the cell at p without a bounds check; callers must have
// verified InBounds(p). Intended for hot search loops.
func (g *Grid[T]) Cell(p Position) T {
	return g.cells[p.Row][p.Col]
}

// MustAt is like At but panics on an out-of-bounds position.
func (g *Grid[T]) MustAt(p Position) T {
	v, err := g.At(p)
	if err != nil {
		panic(err)
	}

	return v
}

// NeighborOffsets returns the precomputed neighbor offsets for g.Conn.
// The slice is shared; callers must not modify it.
// Complexity: O(1).
func (g *Grid[T]) NeighborOffsets() []Direction {
	return g.neighborOffsets
}

// Neighbors returns p shifted by each offset, keeping only in-bounds results.
func (g *Grid[T]) Neighbors(p Position, offsets []Direction) []Position {
	out := make([]Position, 0, len(offsets))
	for _, d := range offsets {
		q := p.Add(d)
		if g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Adjacent returns the in-bounds neighbors of p under the grid's connectivity.
func (g *Grid[T]) Adjacent(p Position) []Position {
	return g.Neighbors(p, g.neighborOffsets)
}

// Find returns the first position in row-major order whose cell satisfies pred.
func (g *Grid[T]) Find(pred func(T) bool) (Position, bool) {
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if pred(g.cells[r][c]) {
				return Position{r, c}, true
			}
		}
	}

	return Position{}, false
}

// FindAll returns every position whose cell satisfies pred, in row-major order.
func (g *Grid[T]) FindAll(pred func(T) bool) []Position {
	var out []Position
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if pred(g.cells[r][c]) {
				out = append(out, Position{r, c})
			}
		}
	}

	return out
}

// Count returns how many cells satisfy pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if pred(v) {
				n++
			}
		}
	}

	return n
}

// Row returns a copy of row r.
func (g *Grid[T]) Row(r int) []T {
	out := make([]T, g.Width)
	copy(out, g.cells[r])

	return out
}

// Col returns a copy of column c.
func (g *Grid[T]) Col(c int) []T {
	out := make([]T, g.Height)
	for r := 0; r < g.Height; r++ {
		out[r] = g.cells[r][c]
	}

	return out
}

// Rows returns a deep copy of all cells.
func (g *Grid[T]) Rows() [][]T {
	out := make([][]T, g.Height)
	for r := range out {
		out[r] = g.Row(r)
	}

	return out
}

// Wrap maps any position onto the grid as if it tiled the plane infinitely.
func (g *Grid[T]) Wrap(p Position) Position {
	return Position{Row: mod(p.Row, g.Height), Col: mod(p.Col, g.Width)}
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}
