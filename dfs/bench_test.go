package dfs_test

import (
	"testing"

	"github.com/katalvlaran/aoc2023/dfs"
)

// BenchmarkTopologicalSort_Chain measures TopologicalSort on a chain of 10,000 states.
func BenchmarkTopologicalSort_Chain(b *testing.B) {
	const n = 10000
	next := func(v int) []int {
		if v+1 < n {
			return []int{v + 1}
		}
		return nil
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort([]int{0}, next)
	}
}

// BenchmarkLongestPath_Ladder runs LongestPath on a 2×8 ladder, the shape
// of a compressed maze with many alternative routes.
func BenchmarkLongestPath_Ladder(b *testing.B) {
	const rungs = 8
	// state = 2*rung + side
	next := func(v int) []dfs.Edge[int] {
		rung, side := v/2, v%2
		var out []dfs.Edge[int]
		out = append(out, dfs.Edge[int]{To: 2*rung + 1 - side, Cost: 1})
		if rung+1 < rungs {
			out = append(out, dfs.Edge[int]{To: v + 2, Cost: 2})
		}
		if rung > 0 {
			out = append(out, dfs.Edge[int]{To: v - 2, Cost: 2})
		}
		return out
	}
	goal := func(v int) bool { return v == 2*rungs-1 }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dfs.LongestPath(0, goal, next)
	}
}
