// Package gridgraph treats a 2D field of cells as an implicit graph for
// the search engines in this module.
//
// What:
//
//   - Grid[T] wraps a rectangular [][]T, deep-copied on construction and
//     read-only afterwards.
//   - Position and Direction give value-typed coordinates with turn and
//     reverse helpers.
//   - Adjacent/Neighbors enumerate in-bounds neighbors under Conn4 or Conn8.
//   - Components finds contiguous regions of cells matching a predicate.
//   - RunLimits/Heading generate successors for movers that must travel
//     between Min and Max cells in a straight line before turning.
//
// Why:
//
//   - Puzzle maps: start/goal lookup, flood fills, part-number runs.
//   - Search states: Heading is comparable, so bfs and dijkstra can key
//     visited sets on it directly.
//
// Complexity:
//
//   - NewGrid, FromLines, DigitsFromLines: O(W×H) time and memory.
//   - At, Cell, InBounds: O(1).
//   - Components: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - RunLimits.Next: O(1), at most three successors (four from a start heading).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: At called with a position outside the grid.
//   - ErrNotDigit: DigitsFromLines met a non-digit byte.
//   - ErrBadRunLimits: RunLimits with Min > Max, Min < 0 or Max < 1.
package gridgraph
