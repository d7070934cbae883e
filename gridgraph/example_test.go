package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Components demonstrates how to identify contiguous regions
// of matching cells in a text grid.
// Scenario:
//
//   - '#' cells are rock, '.' cells are open
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect two rock regions.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGrid_Components() {
	g, _ := gridgraph.FromLines([]string{
		".##.#",
		"##.##",
		"#.##.",
	}, gridgraph.DefaultGridOptions())

	comps := g.Components(func(b byte) bool { return b == '#' })
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, p := range comp {
			fmt.Printf(" %v", p)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (0,1) (0,2) (1,1) (1,0) (2,0)
	// component 1: (0,4) (1,4) (1,3) (2,3) (2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: RunLimits
////////////////////////////////////////////////////////////////////////////////

// ExampleRunLimits_Next shows the successors of a mover that has already
// travelled three cells east under a 1..3 limit: it must turn.
func ExampleRunLimits_Next() {
	g, _ := gridgraph.FromLines([]string{"...", "...", "..."}, gridgraph.DefaultGridOptions())
	l := gridgraph.RunLimits{Min: 1, Max: 3}
	h := gridgraph.Heading{Pos: gridgraph.Position{Row: 1, Col: 1}, Dir: gridgraph.East, Run: 3}

	for _, s := range l.Next(g, h) {
		fmt.Println(s.Pos, s.Run)
	}

	// Output:
	// (0,1) 1
	// (2,1) 1
}
