package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/dfs"
)

type adj map[string][]string

func (a adj) next(s string) []string { return a[s] }

type wadj map[string][]dfs.Edge[string]

func (a wadj) next(s string) []dfs.Edge[string] { return a[s] }

func diamond() adj {
	return adj{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {"E", "F"},
	}
}

// TestTopologicalSort_Diamond checks exact order and the edge invariant.
func TestTopologicalSort_Diamond(t *testing.T) {
	g := diamond()
	order, err := dfs.TopologicalSort([]string{"A"}, g.next)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D", "F", "E"}, order)

	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for u, vs := range g {
		for _, v := range vs {
			assert.Less(t, pos[u], pos[v], "%s→%s", u, v)
		}
	}
}

// TestTopologicalSort_Forest covers disconnected roots and repeated nodes.
func TestTopologicalSort_Forest(t *testing.T) {
	g := adj{"X": {"Y"}, "P": {"Q"}}
	order, err := dfs.TopologicalSort([]string{"X", "P", "Y", "Q"}, g.next)
	require.NoError(t, err)
	assert.Len(t, order, 4)
	assert.Equal(t, "P", order[0])
}

// TestTopologicalSort_Cycle reports ErrCycleDetected.
func TestTopologicalSort_Cycle(t *testing.T) {
	g := adj{"A": {"B"}, "B": {"C"}, "C": {"A"}}
	_, err := dfs.TopologicalSort([]string{"A"}, g.next)
	if !errors.Is(err, dfs.ErrCycleDetected) {
		t.Fatalf("want ErrCycleDetected, got %v", err)
	}
}

// TestTopologicalSort_Errors covers nil successors and cancellation.
func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort[string]([]string{"A"}, nil)
	assert.ErrorIs(t, err, dfs.ErrNilSuccessors)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.TopologicalSort([]string{"A"}, diamond().next, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestLongestPath_Detour prefers the longer simple route through a 2-cycle.
//
//	S→A(1) S→B(5) A↔B(1) A→G(10) B→G(1)
//
// Simple paths: SAG=11, SABG=3, SBG=6, SBAG=16.
func TestLongestPath_Detour(t *testing.T) {
	g := wadj{
		"S": {{To: "A", Cost: 1}, {To: "B", Cost: 5}},
		"A": {{To: "B", Cost: 1}, {To: "G", Cost: 10}},
		"B": {{To: "A", Cost: 1}, {To: "G", Cost: 1}},
	}
	visits := 0
	cost, ok, err := dfs.LongestPath("S", func(s string) bool { return s == "G" }, g.next,
		dfs.WithOnVisit(func(int) { visits++ }))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(16), cost)
	assert.Positive(t, visits)
}

// TestLongestPath_Unreachable returns ok=false without error.
func TestLongestPath_Unreachable(t *testing.T) {
	g := wadj{"S": {{To: "A", Cost: 3}}}
	_, ok, err := dfs.LongestPath("S", func(s string) bool { return s == "G" }, g.next)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestLongestPath_StartIsGoal has zero cost.
func TestLongestPath_StartIsGoal(t *testing.T) {
	cost, ok, err := dfs.LongestPath("G", func(s string) bool { return s == "G" }, wadj{}.next)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, cost)
}

// TestLongestPath_Errors covers argument validation.
func TestLongestPath_Errors(t *testing.T) {
	_, _, err := dfs.LongestPath[string]("S", func(string) bool { return true }, nil)
	assert.ErrorIs(t, err, dfs.ErrNilSuccessors)

	_, _, err = dfs.LongestPath("S", nil, wadj{}.next)
	assert.ErrorIs(t, err, dfs.ErrNilGoal)

	g := wadj{"S": {{To: "G", Cost: -1}}}
	_, _, err = dfs.LongestPath("S", func(s string) bool { return s == "G" }, g.next)
	assert.ErrorIs(t, err, dfs.ErrNegativeWeight)
}
