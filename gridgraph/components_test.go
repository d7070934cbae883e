package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

func isHash(b byte) bool { return b == '#' }

// TestComponents_Simple4 tests Components on a simple 3×4 grid
// with orthogonal connectivity (Conn4).
//
// Grid (# = filled):
//
//	.##.
//	##..
//	..##
//
// Expected: 2 regions of sizes 4 and 2.
func TestComponents_Simple4(t *testing.T) {
	g, err := gridgraph.FromLines([]string{".##.", "##..", "..##"}, gridgraph.GridOptions{Conn: gridgraph.Conn4})
	require.NoError(t, err)

	comps := g.Components(isHash)
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
}

// TestComponents_Diagonal8 uses a 5×5 X shape that only connects
// through diagonal hops. Conn4 yields 9 singletons, Conn8 one region of 9.
func TestComponents_Diagonal8(t *testing.T) {
	lines := []string{
		"#...#",
		".#.#.",
		"..#..",
		".#.#.",
		"#...#",
	}
	g4, err := gridgraph.FromLines(lines, gridgraph.GridOptions{Conn: gridgraph.Conn4})
	require.NoError(t, err)
	g8, err := gridgraph.FromLines(lines, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	require.NoError(t, err)

	assert.Len(t, g4.Components(isHash), 9)
	comps := g8.Components(isHash)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)
}

// TestComponentsWith_HorizontalRuns splits digits into horizontal runs,
// which is how number tokens are read off a schematic.
func TestComponentsWith_HorizontalRuns(t *testing.T) {
	g, err := gridgraph.FromLines([]string{"12.3", "4..5"}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }
	runs := g.ComponentsWith(isDigit, []gridgraph.Direction{gridgraph.West, gridgraph.East})
	require.Len(t, runs, 4)
	assert.Equal(t, []gridgraph.Position{{0, 0}, {0, 1}}, runs[0])
	assert.Equal(t, []gridgraph.Position{{0, 3}}, runs[1])
	assert.Equal(t, []gridgraph.Position{{1, 0}}, runs[2])
	assert.Equal(t, []gridgraph.Position{{1, 3}}, runs[3])
}

// TestComponents_None returns nil when no cell matches.
func TestComponents_None(t *testing.T) {
	g, err := gridgraph.FromLines([]string{"...", "..."}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Empty(t, g.Components(isHash))
}
