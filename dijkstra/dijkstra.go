// Package dijkstra implements Dijkstra's shortest-path algorithm over
// implicit state graphs described by a transition function.
//
// It processes states in order of increasing distance using a min-heap
// priority queue, relaxing transitions and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - Negative costs are detected during relaxation and fail with ErrNegativeWeight,
//     since an implicit graph cannot be pre-scanned.
//   - We treat any transition with cost ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Equal distances pop in insertion order, so runs are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// ShortestPath returns the minimum total cost from start to the first
// state satisfying goal, exploring transitions produced by next.
// The first goal state settled is optimal because all costs are
// non-negative. An unreachable goal yields Found == false and a nil error.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. next must be non-nil (ErrNilSuccessors).
//  3. goal must be non-nil (ErrNilGoal).
//  4. No transition may have negative cost (ErrNegativeWeight, detected lazily).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath[S comparable](start S, goal func(S) bool, next func(S) []Edge[S], opts ...Option) (*Result[S], error) {
	if goal == nil {
		return nil, ErrNilGoal
	}
	r, err := newRunner(start, next, goal, opts)
	if err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	res := &Result[S]{Settled: len(r.visited)}
	if !r.found {
		return res, nil
	}
	res.Found = true
	res.Goal = r.goalState
	res.Cost = r.dist[r.goalState]
	if r.prev != nil {
		res.Path = r.pathTo(r.goalState)
	}

	return res, nil
}

// Distances computes shortest distances from start to every state
// reachable through next.
//
// Returns:
//
//   - dist: map from state to minimum distance (reachable states only).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//   - err:  error if inputs are invalid or if a negative cost is produced.
func Distances[S comparable](start S, next func(S) []Edge[S], opts ...Option) (map[S]int64, map[S]S, error) {
	r, err := newRunner(start, next, nil, opts)
	if err != nil {
		return nil, nil, err
	}
	if err = r.process(); err != nil {
		return nil, nil, err
	}
	// only settled distances are final; drop tentative ones past MaxDistance
	for s := range r.dist {
		if !r.visited[s] {
			delete(r.dist, s)
			if r.prev != nil {
				delete(r.prev, s)
			}
		}
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[S comparable] struct {
	next    func(S) []Edge[S] // Transition function; read-only within Dijkstra.
	goal    func(S) bool      // Optional goal predicate; nil explores everything.
	options Options           // Configuration options (thresholds, etc.).
	dist    map[S]int64       // Maps state → current best distance from start.
	prev    map[S]S           // Maps state → predecessor on the shortest path.
	visited map[S]bool        // Tracks if a state's distance is finalized.
	pq      statePQ[S]        // Min-heap of *stateItem for lazy priority queue.
	seq     uint64            // Insertion counter for stable tie-breaking.

	found     bool
	goalState S
}

// newRunner builds and validates options, then seeds the heap with start.
func newRunner[S comparable](start S, next func(S) []Edge[S], goal func(S) bool, opts []Option) (*runner[S], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate transition function is non-nil
	if next == nil {
		return nil, ErrNilSuccessors
	}

	r := &runner[S]{
		next:    next,
		goal:    goal,
		options: cfg,
		dist:    make(map[S]int64),
		visited: make(map[S]bool),
	}
	// 3) Predecessors only when requested.
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
	}

	// 4) Distance to the start is zero; push it as the first heap entry.
	r.dist[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)

	return r, nil
}

// push adds a heap entry stamped with the next insertion sequence number.
func (r *runner[S]) push(s S, d int64) {
	heap.Push(&r.pq, &stateItem[S]{state: s, dist: d, seq: r.seq})
	r.seq++
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the state
// with the minimum distance from the start and relaxes its outgoing transitions.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable states processed).
//   - The minimum distance in the heap exceeds MaxDistance (no need to explore farther).
//   - A goal state is settled.
//   - The context is cancelled.
func (r *runner[S]) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		select {
		case <-cfg.Ctx.Done():
			return cfg.Ctx.Err()
		default:
		}

		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*stateItem[S])
		u, d := item.state, item.dist

		// 2) If this state was already visited (finalized), skip stale heap entry.
		if r.visited[u] {
			continue
		}

		// 3) If this distance exceeds MaxDistance, stop exploring any further states.
		if d > cfg.MaxDistance {
			break
		}

		// 4) Mark u as visited. Its shortest distance d is now final.
		r.visited[u] = true

		// 5) First settled goal is optimal.
		if r.goal != nil && r.goal(u) {
			r.found, r.goalState = true, u
			return nil
		}

		// 6) Relax all outgoing transitions from u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each transition out of u and attempts to improve distances to its successors.
// It respects the InfEdgeThreshold and ignores any cost ≥ that threshold.
// If a shorter path to successor v is found (newDist < dist[v]), we update dist[v], prev[v], and push a new heap entry.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner[S]) relax(u S) error {
	du := r.dist[u]
	for _, e := range r.next(u) {
		v, w := e.To, e.Cost

		// Skip any transition that is marked as impassable by InfEdgeThreshold.
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: %v→%v weight=%d", ErrNegativeWeight, u, v, w)
		}
		if r.visited[v] {
			continue
		}

		// Candidate distance via u, guarding against overflow.
		if du > math.MaxInt64-w {
			continue
		}
		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}

		// If newDist is not strictly better than the current dist[v], skip.
		if old, ok := r.dist[v]; ok && newDist >= old {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}

		// Lazy decrease-key: stale entries are ignored when popped.
		r.push(v, newDist)
	}

	return nil
}

// pathTo walks predecessors back from s to the start.
func (r *runner[S]) pathTo(s S) []S {
	path := []S{s}
	for {
		p, ok := r.prev[s]
		if !ok {
			break
		}
		path = append(path, p)
		s = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// stateItem represents a state and its tentative distance from the start.
type stateItem[S comparable] struct {
	state S
	dist  int64
	seq   uint64
}

// statePQ is a min-heap of *stateItem, ordered by dist ascending then by
// insertion sequence.
type statePQ[S comparable] []*stateItem[S]

// Len returns the number of items in the heap.
func (pq statePQ[S]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority; ties → earlier insertion.
func (pq statePQ[S]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *statePQ[S]) Push(x any) { *pq = append(*pq, x.(*stateItem[S])) }

// Pop removes and returns the smallest element from the heap.
func (pq *statePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
