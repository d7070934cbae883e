// Package dijkstra provides Dijkstra's shortest-path algorithm over implicit
// state graphs with non-negative transition costs.
//
// Overview:
//
//   - States are any comparable Go value and transitions come from a callback
//     next(S) []Edge[S], so auxiliary state (direction, run length) lives in
//     the key itself and constraints are expressed purely by which
//     transitions next generates.
//   - ShortestPath stops at the first settled goal state, which is optimal.
//   - Distances computes the full single-source distance map.
//   - It relies on a min-heap (priority queue) to always expand the next-closest state;
//     equal distances pop in insertion order.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: records predecessors so the optimal path can be rebuilt.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any transition with cost ≥ threshold as impassable.
//   - Ctx: cancellation checked once per settled state.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) under lazy decrease-key.
//
// Errors:
//
//   - ErrNilSuccessors, ErrNilGoal for missing callbacks.
//   - ErrNegativeWeight when next yields a negative cost.
//   - ErrBadMaxDistance, ErrBadInfThreshold for invalid options.
//   - An unreachable goal is not an error: Result.Found is false.
package dijkstra
