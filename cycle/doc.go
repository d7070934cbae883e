// Package cycle evaluates the n-th configuration of a deterministic
// process whose step count is far too large to simulate, by detecting the
// first repeated configuration and extrapolating through the period.
//
// What:
//
//   - Iterate(initial, n, step, key, opts...) returns configuration n.
//   - key maps a configuration to a comparable value; two configurations
//     are the same state exactly when their keys are equal, so the key must
//     capture everything step depends on.
//   - The answer is configuration i + (n−i) mod (j−i), where j is the first
//     index whose key equals that of an earlier index i.
//
// Properties:
//
//   - Extrapolation equals direct simulation for every n.
//   - Iterating a configuration already on the cycle by a multiple of the
//     period returns an equal configuration.
//
// Options:
//
//   - WithContext(ctx): cancellation, checked once per step.
//   - WithMaxSteps(m):  fail with ErrNoCycle after m steps without repetition.
//
// Errors:
//
//   - ErrNegativeTarget, ErrNilStep, ErrNoCycle, ErrOptionViolation.
package cycle
