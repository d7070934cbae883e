package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

// BenchmarkComponents measures performance of Components
// on a randomly generated 1000×1000 grid with values in [0,4].
// Complexity: O(W×H×d)
func BenchmarkComponents(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = rng.Intn(5)
		}
		grid[y] = row
	}
	g, err := gridgraph.NewGrid(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components(func(v int) bool { return v >= 1 })
	}
}

// BenchmarkRunLimitsNext measures successor generation for a 4..10 mover.
func BenchmarkRunLimitsNext(b *testing.B) {
	g, err := gridgraph.NewGrid([][]int{make([]int, 64), make([]int, 64)}, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	l := gridgraph.RunLimits{Min: 4, Max: 10}
	h := gridgraph.Heading{Pos: gridgraph.Position{Row: 0, Col: 30}, Dir: gridgraph.East, Run: 5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Next(g, h)
	}
}
