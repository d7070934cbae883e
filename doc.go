// Package aoc2023 is a bounded-state search toolkit and the Advent of Code
// 2023 solvers built on it.
//
// 🚀 What is inside?
//
//	Small generic engines that treat puzzle inputs as implicit graphs:
//		• gridgraph: immutable 2-D grids, positions, directions, run-limited headings
//		• bfs: breadth-first reachability with depth budgets and parity counts
//		• dijkstra: priority-ordered shortest path over any comparable state
//		• dfs: topological order and longest simple paths
//		• cycle: fixed-point iteration that jumps ahead once a state repeats
//		• interval: half-open ranges remapped through offset rule tables
//		• memo, numeric: scoped caches, GCD/LCM, shoelace area and Pick's theorem
//
// ✨ Why engines and not one-off loops?
//
//   - States are plain comparable structs, so visited sets are ordinary maps.
//   - Every engine takes functional options (context, budgets, hooks) and
//     reports misuse through sentinel errors.
//   - The same BFS walks a pipe loop, a light beam and a garden.
//
// Under the hood:
//
//	bfs/ dfs/ dijkstra/  search engines over successor callbacks
//	cycle/               cycle-detected iteration
//	gridgraph/           grid model and movement rules
//	interval/            range splitting and remapping
//	memo/ numeric/       supporting helpers
//	puzzles/             day 01 to 23 solvers and their registry
//	cmd/advent/          command-line runner with answer checking
//
// Quick example, the farthest tile of a flood fill from the top-left corner:
//
//	start := gridgraph.Position{Row: 0, Col: 0}
//	res, _ := bfs.Search([]gridgraph.Position{start}, next)
//	fmt.Println(res.MaxDepth())
//
//	go install github.com/katalvlaran/aoc2023/cmd/advent@latest
package aoc2023
