package cycle_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/cycle"
)

// ExampleIterate evaluates a billion steps of a modular counter without
// simulating them.
func ExampleIterate() {
	step := func(v int) int { return (v*v + 1) % 97 }
	key := func(v int) int { return v }

	got, p, _ := cycle.Iterate(2, 1_000_000_000, step, key)
	fmt.Println(got, p.Found)
	// Output:
	// 5 true
}
