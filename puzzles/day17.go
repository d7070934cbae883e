package puzzles

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/dijkstra"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 17, Title: "Clumsy Crucible", Part1: day17a, Part2: day17b})
}

// Run limits of the two crucible kinds.
var (
	CrucibleLimits      = gridgraph.RunLimits{Min: 1, Max: 3}
	UltraCrucibleLimits = gridgraph.RunLimits{Min: 4, Max: 10}
)

func day17a(in *input.Input) (int64, error) {
	return MinHeatLoss(in, CrucibleLimits)
}

func day17b(in *input.Input) (int64, error) {
	return MinHeatLoss(in, UltraCrucibleLimits)
}

// MinHeatLoss returns the least total heat loss of a crucible path from
// the top-left to the bottom-right block. Entering a block costs its digit.
// The crucible moves within limits and may only stop at the goal once its
// current run has reached limits.Min.
func MinHeatLoss(in *input.Input, limits gridgraph.RunLimits) (int64, error) {
	if err := limits.Validate(); err != nil {
		return 0, err
	}
	g, err := gridgraph.DigitsFromLines(in.Lines, gridgraph.DefaultGridOptions())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", input.ErrMalformed, err)
	}

	end := gridgraph.Position{Row: g.Height - 1, Col: g.Width - 1}
	next := func(h gridgraph.Heading) []dijkstra.Edge[gridgraph.Heading] {
		succ := limits.Next(g, h)
		out := make([]dijkstra.Edge[gridgraph.Heading], len(succ))
		for i, s := range succ {
			out[i] = dijkstra.Edge[gridgraph.Heading]{To: s, Cost: int64(g.Cell(s.Pos))}
		}
		return out
	}
	goal := func(h gridgraph.Heading) bool { return h.Pos == end && limits.CanStop(h) }

	res, err := dijkstra.ShortestPath(gridgraph.StartHeading(gridgraph.Position{}), goal, next)
	if err != nil {
		return 0, err
	}
	if !res.Found {
		return 0, fmt.Errorf("%w: no crucible path with runs %d..%d", ErrNoAnswer, limits.Min, limits.Max)
	}

	return res.Cost, nil
}
