package puzzles_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/internal/input"
	"github.com/katalvlaran/aoc2023/puzzles"
)

// ExampleLookup runs day 15 part 1 on the single step "HASH".
func ExampleLookup() {
	s, err := puzzles.Lookup(15)
	if err != nil {
		fmt.Println(err)
		return
	}
	n, _ := s.Part1(input.FromString("hash", "HASH"))
	fmt.Println(s.Title, n)
	// Output: Lens Library 52
}

// ExampleGalaxyDistances widens every empty row and column tenfold.
func ExampleGalaxyDistances() {
	n, _ := puzzles.GalaxyDistances(input.FromString("sky", sample11), 10)
	fmt.Println(n)
	// Output: 1030
}
