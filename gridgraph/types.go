// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/aoc2023.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid extents.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrNotDigit indicates a non-digit cell while building a numeric grid.
	ErrNotDigit = errors.New("gridgraph: cell is not a decimal digit")
	// ErrBadRunLimits indicates RunLimits with Min > Max or Max < 1.
	ErrBadRunLimits = errors.New("gridgraph: invalid run limits")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Position is a (row, column) cell coordinate. Row 0 is the top line of input.
type Position struct {
	Row, Col int
}

// Add returns p moved one step along d.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Step returns p moved n steps along d.
func (p Position) Step(d Direction, n int) Position {
	return Position{Row: p.Row + d.DRow*n, Col: p.Col + d.DCol*n}
}

// Sub returns the direction vector leading from q to p.
func (p Position) Sub(q Position) Direction {
	return Direction{DRow: p.Row - q.Row, DCol: p.Col - q.Col}
}

// Manhattan returns the taxicab distance between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is a unit (or zero) displacement on the grid.
type Direction struct {
	DRow, DCol int
}

// The cardinal directions plus the zero vector used by start states.
var (
	Stay  = Direction{0, 0}
	North = Direction{-1, 0}
	East  = Direction{0, 1}
	South = Direction{1, 0}
	West  = Direction{0, -1}
)

// Cardinals returns N, E, S, W in clockwise order.
func Cardinals() []Direction {
	return []Direction{North, East, South, West}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// TurnRight rotates d clockwise by 90 degrees.
func (d Direction) TurnRight() Direction {
	return Direction{DRow: d.DCol, DCol: -d.DRow}
}

// TurnLeft rotates d counter-clockwise by 90 degrees.
func (d Direction) TurnLeft() Direction {
	return Direction{DRow: -d.DCol, DCol: d.DRow}
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity for Adjacent and Components.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Grid is an immutable 2D field of cells. It is read-only once built:
// the constructor deep-copies its input and no method mutates cells.
// Width and Height define dimensions; neighborOffsets is precomputed
// from Conn for efficient adjacency lookups.
type Grid[T any] struct {
	Width, Height   int
	Conn            Connectivity
	cells           [][]T
	neighborOffsets []Direction
}

// Bounds is satisfied by anything that can answer in-bounds queries,
// which is all RunLimits needs from a grid.
type Bounds interface {
	InBounds(p Position) bool
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
