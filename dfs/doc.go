// Package dfs implements depth-first algorithms over implicit state graphs
// described by transition callbacks.
//
// Key features:
//   - TopologicalSort(nodes, next, opts...): reverse post-order with
//     three-color cycle detection
//   - LongestPath(start, goal, next, opts...): maximum-cost simple path by
//     exhaustive backtracking with on-stack (Gray) marking
//   - Cancellation via context.Context and a pre-order OnVisit hook
//
// Complexity:
//
//   - TopologicalSort: O(V + E) time, O(V) memory.
//   - LongestPath: exponential in the worst case; intended for small graphs
//     such as junction graphs obtained by compressing grid corridors.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook receiving the recursion depth.
//
// Errors:
//
//   - ErrNilSuccessors          if next is nil.
//   - ErrNilGoal                if LongestPath gets a nil goal.
//   - ErrCycleDetected          if TopologicalSort meets a back edge.
//   - ErrNegativeWeight         if LongestPath meets a negative cost.
//   - context.Canceled          if ctx is done.
package dfs
