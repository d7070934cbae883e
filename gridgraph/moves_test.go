package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

func openGrid(t *testing.T, n int) *gridgraph.Grid[byte] {
	t.Helper()
	lines := make([]string, n)
	for i := range lines {
		row := make([]byte, n)
		for j := range row {
			row[j] = '.'
		}
		lines[i] = string(row)
	}
	g, err := gridgraph.FromLines(lines, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	return g
}

// TestRunLimits_Validate rejects inconsistent bounds.
func TestRunLimits_Validate(t *testing.T) {
	assert.NoError(t, gridgraph.RunLimits{Min: 1, Max: 3}.Validate())
	assert.NoError(t, gridgraph.RunLimits{Min: 4, Max: 10}.Validate())
	assert.ErrorIs(t, gridgraph.RunLimits{Min: 4, Max: 3}.Validate(), gridgraph.ErrBadRunLimits)
	assert.ErrorIs(t, gridgraph.RunLimits{Min: 0, Max: 0}.Validate(), gridgraph.ErrBadRunLimits)
	assert.ErrorIs(t, gridgraph.RunLimits{Min: -1, Max: 2}.Validate(), gridgraph.ErrBadRunLimits)
}

// TestRunLimits_Next walks the successor rules for a 1..3 mover.
func TestRunLimits_Next(t *testing.T) {
	g := openGrid(t, 5)
	l := gridgraph.RunLimits{Min: 1, Max: 3}
	centre := gridgraph.Position{Row: 2, Col: 2}

	// Start heading fans out in all four directions.
	start := l.Next(g, gridgraph.StartHeading(centre))
	assert.Len(t, start, 4)
	for _, h := range start {
		assert.Equal(t, 1, h.Run)
	}

	// Mid-run: straight, left, right; never back.
	h := gridgraph.Heading{Pos: centre, Dir: gridgraph.East, Run: 2}
	next := l.Next(g, h)
	assert.ElementsMatch(t, []gridgraph.Heading{
		{Pos: gridgraph.Position{Row: 2, Col: 3}, Dir: gridgraph.East, Run: 3},
		{Pos: gridgraph.Position{Row: 1, Col: 2}, Dir: gridgraph.North, Run: 1},
		{Pos: gridgraph.Position{Row: 3, Col: 2}, Dir: gridgraph.South, Run: 1},
	}, next)

	// At Max the mover must turn.
	h.Run = 3
	for _, s := range l.Next(g, h) {
		assert.NotEqual(t, gridgraph.East, s.Dir)
		assert.NotEqual(t, gridgraph.West, s.Dir)
	}
}

// TestRunLimits_MinBeforeTurn forbids turning before Min moves.
func TestRunLimits_MinBeforeTurn(t *testing.T) {
	g := openGrid(t, 12)
	l := gridgraph.RunLimits{Min: 4, Max: 10}
	h := gridgraph.Heading{Pos: gridgraph.Position{Row: 5, Col: 5}, Dir: gridgraph.South, Run: 2}

	next := l.Next(g, h)
	require.Len(t, next, 1)
	assert.Equal(t, gridgraph.South, next[0].Dir)
	assert.Equal(t, 3, next[0].Run)

	assert.False(t, l.CanStop(h))
	h.Run = 4
	assert.True(t, l.CanStop(h))
	assert.True(t, l.CanStop(gridgraph.StartHeading(h.Pos)))
}

// TestRunLimits_Bounds drops successors that leave the grid.
func TestRunLimits_Bounds(t *testing.T) {
	g := openGrid(t, 3)
	l := gridgraph.RunLimits{Min: 1, Max: 3}
	next := l.Next(g, gridgraph.StartHeading(gridgraph.Position{Row: 0, Col: 0}))
	assert.ElementsMatch(t, []gridgraph.Heading{
		{Pos: gridgraph.Position{Row: 0, Col: 1}, Dir: gridgraph.East, Run: 1},
		{Pos: gridgraph.Position{Row: 1, Col: 0}, Dir: gridgraph.South, Run: 1},
	}, next)
}
