package dfs

import "fmt"

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[S comparable] struct {
	next  func(S) []S // outgoing edges u→v
	opts  DFSOptions  // traversal options (cancellation)
	state map[S]int   // visitation state: White, Gray, Black
	order []S         // recorded post-order sequence
}

// TopologicalSort computes an ordering of nodes (and of every state
// reachable from them) such that for every edge u→v produced by next,
// u appears before v.
// Roots are explored in the order given, so the result is deterministic.
// If a cycle is detected, returns ErrCycleDetected.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
func TopologicalSort[S comparable](nodes []S, next func(S) []S, opts ...Option) ([]S, error) {
	// 1. Validate transition function
	if next == nil {
		return nil, ErrNilSuccessors
	}
	// 2. Apply optional settings
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// 3. Initialize sorter state
	sorter := &topoSorter[S]{
		next:  next,
		opts:  o,
		state: make(map[S]int, len(nodes)), // all vertices start as White (0)
		order: make([]S, 0, len(nodes)),    // capacity hint for post-order
	}
	// 4. Drive DFS from every unvisited vertex
	for _, v := range nodes {
		if sorter.state[v] == White {
			if err := sorter.visit(v, 0); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter[S]) visit(id S, depth int) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
	}
	// 2. Cycle detection: if already Gray, we found a back-edge
	if t.state[id] == Gray {
		return fmt.Errorf("%w: back edge into %v", ErrCycleDetected, id)
	}
	// 3. Already fully processed (Black)? then skip
	if t.state[id] == Black {
		return nil
	}
	// 4. Mark as in-progress (Gray)
	t.state[id] = Gray
	if t.opts.OnVisit != nil {
		t.opts.OnVisit(depth)
	}

	// 5. Explore each outgoing edge
	for _, v := range t.next(id) {
		if err := t.visit(v, depth+1); err != nil {
			return err
		}
	}

	// 6. Mark as fully explored (Black) and record in post-order list
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
