package cycle

import "fmt"

// Iterate applies step to initial n times and returns the resulting
// configuration, short-circuiting through cycle detection.
//
// Every configuration is recorded by key. When configuration j repeats the
// key first seen at index i, the sequence is periodic from i with period
// j−i, so configuration n equals configuration i + (n−i) mod (j−i), which
// is returned without further simulation. If n is reached before any
// repetition, the directly simulated configuration is returned.
//
// Steps:
//  1. Validate n, callbacks and options.
//  2. Record key(initial) at index 0.
//  3. For k = 1..n: apply step, look up its key; on a hit, extrapolate.
//  4. Honour MaxSteps and context cancellation once per step.
//
// Complexity: O(μ + λ) step and key calls (μ = tail length, λ = period),
// O(μ + λ) memory for the stored configurations.
func Iterate[C any, K comparable](initial C, n int, step func(C) C, key func(C) K, opts ...Option) (C, Period, error) {
	// 1. Validate
	if n < 0 {
		return initial, Period{}, fmt.Errorf("%w: %d", ErrNegativeTarget, n)
	}
	if step == nil || key == nil {
		return initial, Period{}, ErrNilStep
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return initial, Period{}, o.err
	}

	// 2. Seed the history
	seen := map[K]int{key(initial): 0}
	history := []C{initial}
	cur := initial

	// 3. Simulate until target or repetition
	for k := 1; k <= n; k++ {
		select {
		case <-o.Ctx.Done():
			return cur, Period{Steps: k - 1}, o.Ctx.Err()
		default:
		}
		if o.MaxSteps > 0 && k > o.MaxSteps {
			return cur, Period{Steps: k - 1}, fmt.Errorf("%w: %d steps", ErrNoCycle, o.MaxSteps)
		}

		cur = step(cur)
		kk := key(cur)
		if i, ok := seen[kk]; ok {
			length := k - i
			p := Period{Found: true, Start: i, Length: length, Steps: k}
			return history[i+(n-i)%length], p, nil
		}
		seen[kk] = k
		history = append(history, cur)
	}

	return cur, Period{Steps: n}, nil
}
