package dfs

import "fmt"

// pathSearcher holds the mutable state of one LongestPath run.
type pathSearcher[S comparable] struct {
	next    func(S) []Edge[S]
	goal    func(S) bool
	opts    DFSOptions
	onStack map[S]bool // Gray marks: states on the current path
	best    int64
	found   bool
}

// LongestPath returns the maximum total cost of a simple path (no state
// visited twice) from start to any state satisfying goal. A path ends at
// the first goal it reaches. ok is false when no goal is reachable.
//
// The search is exhaustive backtracking: exponential in the worst case, so
// callers should first compress long corridors into single weighted edges.
//
// Complexity:
//
//   - Time:   O(number of simple paths × average out-degree)
//   - Memory: O(V) for the on-stack set and recursion.
func LongestPath[S comparable](start S, goal func(S) bool, next func(S) []Edge[S], opts ...Option) (cost int64, ok bool, err error) {
	if next == nil {
		return 0, false, ErrNilSuccessors
	}
	if goal == nil {
		return 0, false, ErrNilGoal
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &pathSearcher[S]{
		next:    next,
		goal:    goal,
		opts:    o,
		onStack: make(map[S]bool),
	}
	if err = p.walk(start, 0, 0); err != nil {
		return 0, false, err
	}

	return p.best, p.found, nil
}

// walk extends the current path with u, reached at total cost d.
func (p *pathSearcher[S]) walk(u S, d int64, depth int) error {
	// 1. Cancellation check
	select {
	case <-p.opts.Ctx.Done():
		return p.opts.Ctx.Err()
	default:
	}
	if p.opts.OnVisit != nil {
		p.opts.OnVisit(depth)
	}

	// 2. Goal ends the path
	if p.goal(u) {
		if !p.found || d > p.best {
			p.best, p.found = d, true
		}
		return nil
	}

	// 3. Mark Gray, recurse into every state not already on the path
	p.onStack[u] = true
	for _, e := range p.next(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v weight=%d", ErrNegativeWeight, u, e.To, e.Cost)
		}
		if p.onStack[e.To] {
			continue
		}
		if err := p.walk(e.To, d+e.Cost, depth+1); err != nil {
			return err
		}
	}
	// 4. Unmark on the way back so sibling paths may reuse u
	delete(p.onStack, u)

	return nil
}
