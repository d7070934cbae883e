package puzzles

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/input"
	"github.com/katalvlaran/aoc2023/numeric"
)

func init() {
	Register(Solution{Day: 8, Title: "Haunted Wasteland", Part1: day08a, Part2: day08b})
}

// desertMap is a left/right instruction string plus the node network.
type desertMap struct {
	Turns string
	Left  map[string]string
	Right map[string]string
	Nodes []string // in input order
}

func day08a(in *input.Input) (int64, error) {
	m, err := parseDesertMap(in)
	if err != nil {
		return 0, err
	}
	if _, ok := m.Left["AAA"]; !ok {
		return 0, fmt.Errorf("%w: node AAA", ErrNoStart)
	}

	return m.walk("AAA", func(n string) bool { return n == "ZZZ" })
}

// day08b walks every node ending in A at once. Each ghost reaches a Z node
// on a fixed period, so they all meet after the LCM of the periods.
func day08b(in *input.Input) (int64, error) {
	m, err := parseDesertMap(in)
	if err != nil {
		return 0, err
	}
	var periods []int64
	for _, n := range m.Nodes {
		if !strings.HasSuffix(n, "A") {
			continue
		}
		steps, err := m.walk(n, func(n string) bool { return strings.HasSuffix(n, "Z") })
		if err != nil {
			return 0, err
		}
		periods = append(periods, steps)
	}
	if len(periods) == 0 {
		return 0, fmt.Errorf("%w: no node ends in A", ErrNoStart)
	}

	return numeric.LCMAll(periods...)
}

// walk follows the turn instructions from start, repeating them as
// needed, and returns the number of steps until done holds. A walk that
// revisits the same node at the same instruction offset never ends.
func (m *desertMap) walk(start string, done func(string) bool) (int64, error) {
	type visit struct {
		node string
		turn int
	}
	seen := make(map[visit]bool)
	cur := start
	for steps := int64(0); ; steps++ {
		if done(cur) {
			return steps, nil
		}
		i := int(steps % int64(len(m.Turns)))
		v := visit{cur, i}
		if seen[v] {
			return 0, fmt.Errorf("%w: walk from %s never arrives", ErrNoAnswer, start)
		}
		seen[v] = true
		next := m.Left
		if m.Turns[i] == 'R' {
			next = m.Right
		}
		n, ok := next[cur]
		if !ok {
			return 0, fmt.Errorf("%w: node %s has no edges", ErrNoAnswer, cur)
		}
		cur = n
	}
}

// parseDesertMap reads the instruction line and "AAA = (BBB, CCC)" nodes.
func parseDesertMap(in *input.Input) (*desertMap, error) {
	if len(in.Lines) < 3 {
		return nil, input.Malformed(1, firstLine(in), "want instructions and nodes")
	}
	turns := strings.TrimSpace(in.Lines[0])
	if turns == "" || strings.Trim(turns, "LR") != "" {
		return nil, input.Malformed(1, in.Lines[0], "instructions must be L or R")
	}
	m := &desertMap{Turns: turns, Left: make(map[string]string), Right: make(map[string]string)}
	for i, line := range in.Lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, targets, err := input.Cut(i+2, line, " = ")
		if err != nil {
			return nil, err
		}
		l, r, err := input.Cut(i+2, strings.Trim(targets, "()"), ", ")
		if err != nil {
			return nil, err
		}
		m.Left[name], m.Right[name] = l, r
		m.Nodes = append(m.Nodes, name)
	}

	return m, nil
}
