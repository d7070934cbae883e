package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/dijkstra"
)

// ExampleShortestPath_triangle shows a basic triangle where the two-hop
// route beats the direct edge:
//
//	A → B (1), B → C (2), A → C (4)
func ExampleShortestPath_triangle() {
	edges := map[string][]dijkstra.Edge[string]{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 4}},
		"B": {{To: "C", Cost: 2}},
	}
	next := func(s string) []dijkstra.Edge[string] { return edges[s] }

	res, err := dijkstra.ShortestPath("A", func(s string) bool { return s == "C" }, next, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Cost, res.Path)
	// Output:
	// 3 [A B C]
}

// ExampleDistances_thresholds demonstrates MaxDistance and InfEdgeThreshold together.
func ExampleDistances_thresholds() {
	edges := map[string][]dijkstra.Edge[string]{
		"A": {{To: "B", Cost: 1}, {To: "D", Cost: 50}},
		"B": {{To: "C", Cost: 2}},
		"C": {{To: "E", Cost: 5}},
	}
	next := func(s string) []dijkstra.Edge[string] { return edges[s] }

	dist, _, _ := dijkstra.Distances("A", next,
		dijkstra.WithMaxDistance(5),
		dijkstra.WithInfEdgeThreshold(10),
	)
	for _, v := range []string{"A", "B", "C", "D", "E"} {
		d, ok := dist[v]
		fmt.Println(v, d, ok)
	}
	// Output:
	// A 0 true
	// B 1 true
	// C 3 true
	// D 0 false
	// E 0 false
}
