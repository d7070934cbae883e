package bfs_test

import (
	"testing"

	"github.com/katalvlaran/aoc2023/bfs"
	"github.com/katalvlaran/aoc2023/gridgraph"
)

// BenchmarkSearch_Chain measures BFS on a linear chain of N+1 states.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 10000
	next := line(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search([]int{0}, next)
	}
}

// BenchmarkSearch_Grid runs BFS over an open 200×200 grid.
func BenchmarkSearch_Grid(b *testing.B) {
	const n = 200
	rows := make([][]byte, n)
	for i := range rows {
		rows[i] = make([]byte, n)
	}
	g, err := gridgraph.NewGrid(rows, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search([]gridgraph.Position{{Row: 0, Col: 0}}, g.Adjacent)
	}
}
