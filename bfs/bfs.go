package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state for one search run.
type walker[S comparable] struct {
	next  func(S) []S
	opts  Options
	ctx   context.Context
	queue []queueItem[S]
	res   *Result[S]

	// goal, when non-nil, stops the walk at the first state satisfying it.
	goal  func(S) bool
	hit   S
	found bool
	layer int
}

// Search runs breadth-first search from every state in starts (all at
// depth 0), expanding states through next and applying any number of
// functional Options. Each distinct state is enqueued at most once, so
// Depth holds the minimum number of transitions from the nearest start.
// Returns ErrNoStart, ErrNilSuccessors, ErrOptionViolation, ErrStateLimit
// or the context error on cancellation.
func Search[S comparable](starts []S, next func(S) []S, opts ...Option) (*Result[S], error) {
	w, err := newWalker(starts, next, nil, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// ShortestSteps returns the depth of the first state satisfying goal.
// ok is false (with a nil error) when the frontier is exhausted or the
// depth budget is spent before any goal is reached.
func ShortestSteps[S comparable](starts []S, next func(S) []S, goal func(S) bool, opts ...Option) (steps int, ok bool, err error) {
	w, err := newWalker(starts, next, goal, opts)
	if err != nil {
		return 0, false, err
	}
	if err = w.loop(); err != nil {
		return 0, false, err
	}
	if !w.found {
		return 0, false, nil
	}

	return w.res.Depth[w.hit], true, nil
}

// newWalker validates input, applies options and seeds the queue.
func newWalker[S comparable](starts []S, next func(S) []S, goal func(S) bool, opts []Option) (*walker[S], error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(starts) == 0 {
		return nil, ErrNoStart
	}
	if next == nil {
		return nil, ErrNilSuccessors
	}

	w := &walker[S]{
		next:  next,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[S], 0, len(starts)),
		goal:  goal,
		layer: -1,
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}
	// Seed queue with start states (no parent), skipping duplicates
	for _, s := range starts {
		if !w.res.Reached(s) {
			if err := w.enqueue(s, 0, s, false); err != nil {
				return nil, err
			}
		}
	}

	return w, nil
}

// enqueue marks s discovered at depth d, records its parent, and adds it to the queue.
func (w *walker[S]) enqueue(s S, d int, parent S, hasParent bool) error {
	if w.opts.MaxStates > 0 && len(w.res.Depth) >= w.opts.MaxStates {
		return fmt.Errorf("%w: more than %d states", ErrStateLimit, w.opts.MaxStates)
	}
	w.res.Depth[s] = d
	if hasParent {
		w.res.Parent[s] = parent
	}
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})

	return nil
}

// loop processes the queue until empty, goal, error, or cancellation.
func (w *walker[S]) loop() error {
	for head := 0; head < len(w.queue); head++ {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		if item.depth != w.layer {
			// every state of this layer is already queued behind head
			w.layer = item.depth
			w.opts.OnLayer(item.depth, len(w.queue)-head)
		}

		w.res.Order = append(w.res.Order, item.state)
		if w.goal != nil && w.goal(item.state) {
			w.hit, w.found = item.state, true
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	w.queue = nil

	return nil
}

// enqueueNeighbors expands item through the successor function, applies
// the depth budget, and enqueues each unseen successor.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth != unlimited && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range w.next(item.state) {
		// first time seen?
		if w.res.Reached(nbr) {
			continue
		}
		if err := w.enqueue(nbr, nextDepth, item.state, true); err != nil {
			return err
		}
	}

	return nil
}
