package puzzles

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/input"
)

// byteGrid builds a map grid from lines; an empty or ragged map is malformed input.
func byteGrid(lines []string, opts gridgraph.GridOptions) (*gridgraph.Grid[byte], error) {
	g, err := gridgraph.FromLines(lines, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", input.ErrMalformed, err)
	}

	return g, nil
}
