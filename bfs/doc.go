// Package bfs provides breadth-first search over an implicit state graph,
// returning minimum step counts, parent links, and visit order.
//
// What
//
//   - States are any comparable Go value; the graph is described by a
//     successor function next(S) []S, so grids with auxiliary fields
//     (direction, run length) need no conversion step.
//   - Multiple start states are seeded at depth 0.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → minimum transitions from any start
//   - Parent: map from state → its predecessor in the BFS tree
//   - Honors a depth budget (WithMaxDepth) and a safety bound on the
//     number of discovered states (WithMaxStates).
//   - ShortestSteps stops at the first goal state.
//
// Why
//
//   - Step counting on grids and state machines in O(V + E) time.
//   - Reachability under a step budget, including the parity trick:
//     on graphs where every step can be undone, the cells occupiable after
//     exactly n steps are those with depth ≤ n and depth ≡ n (mod 2).
//
// Determinism
//
//	States are expanded in the order next returns them, so Order is fully
//	reproducible for a deterministic successor function.
//
// Complexity (V = reached states, E = transitions among them)
//
//   - Time:   O(V + E)   (each state dequeued once, each transition examined once)
//   - Memory: O(V)       (for queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.Search([]P{start}, next,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(64),
//	    bfs.WithOnLayer(func(depth, size int) { /* ... */ }),
//	)
//	plots := res.CountParity(64)
//
// Options
//
//   - DefaultOptions(): background Context, no budget, no state limit.
//   - WithContext(ctx):     set a custom context for cancellation.
//   - WithMaxDepth(d):      never enqueue states deeper than d (d ≥ 0).
//   - WithMaxStates(n):     abort once more than n states are discovered.
//   - WithOnLayer(fn):      hook at the start of each depth layer.
//
// Errors
//
//   - ErrNoStart          if the start list is empty.
//   - ErrNilSuccessors    if next is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrStateLimit       if WithMaxStates is exceeded.
//   - ErrUnreachable      from PathTo for a state never reached.
//   - ctx.Err()           on cancellation.
package bfs
