package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/dfs"
)

// ExampleTopologicalSort orders a diamond-shaped dependency graph.
// Graph structure:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
func ExampleTopologicalSort() {
	edges := map[string][]string{"A": {"B", "C"}, "B": {"D"}, "C": {"D"}}
	order, err := dfs.TopologicalSort([]string{"A"}, func(s string) []string { return edges[s] })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output:
	// [A C B D]
}

// ExampleLongestPath finds the scenic route between two junctions.
func ExampleLongestPath() {
	edges := map[int][]dfs.Edge[int]{
		0: {{To: 1, Cost: 2}, {To: 2, Cost: 3}},
		1: {{To: 2, Cost: 4}, {To: 3, Cost: 9}},
		2: {{To: 1, Cost: 4}, {To: 3, Cost: 1}},
	}
	cost, ok, _ := dfs.LongestPath(0, func(v int) bool { return v == 3 }, func(v int) []dfs.Edge[int] { return edges[v] })
	fmt.Println(cost, ok)
	// Output:
	// 16 true
}
