package puzzles

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/input"
	"github.com/katalvlaran/aoc2023/numeric"
)

func init() {
	Register(Solution{Day: 20, Title: "Pulse Propagation", Part1: day20a, Part2: day20b})
}

const (
	broadcasterName = "broadcaster"
	buttonPresses   = 1000
	// maxPresses bounds the search for feeder periods in part 2.
	maxPresses = 1 << 20
)

// moduleKind tags the behaviour of a communication module.
type moduleKind int

const (
	broadcaster moduleKind = iota
	flipFlop
	conjunction
)

type commModule struct {
	Name    string
	Kind    moduleKind
	Outputs []string
	on      bool            // flip-flop state
	memory  map[string]bool // conjunction: last pulse per input, true = high
}

type pulse struct {
	From, To string
	High     bool
}

// network is the wired module set plus its mutable state.
type network struct {
	modules map[string]*commModule
}

func day20a(in *input.Input) (int64, error) {
	n, err := parseNetwork(in)
	if err != nil {
		return 0, err
	}
	var low, high int64
	for range buttonPresses {
		n.press(func(p pulse) {
			if p.High {
				high++
			} else {
				low++
			}
		})
	}

	return low * high, nil
}

// day20b finds the fewest presses that deliver a low pulse to rx. rx is
// fed by one conjunction, which emits low only when every one of its
// inputs has just sent high; each input does so on its own period, so
// the answer is the LCM of those periods.
func day20b(in *input.Input) (int64, error) {
	n, err := parseNetwork(in)
	if err != nil {
		return 0, err
	}
	var feeder *commModule
	for _, m := range n.modules {
		for _, o := range m.Outputs {
			if o == "rx" {
				if feeder != nil {
					return 0, fmt.Errorf("%w: rx has more than one input", ErrUnsupportedLayout)
				}
				feeder = m
			}
		}
	}
	if feeder == nil || feeder.Kind != conjunction {
		return 0, fmt.Errorf("%w: rx must be fed by a single conjunction", ErrUnsupportedLayout)
	}

	periods := make(map[string]int64, len(feeder.memory))
	for presses := int64(1); presses <= maxPresses; presses++ {
		n.press(func(p pulse) {
			if p.To == feeder.Name && p.High {
				if _, ok := periods[p.From]; !ok {
					periods[p.From] = presses
				}
			}
		})
		if len(periods) == len(feeder.memory) {
			vals := make([]int64, 0, len(periods))
			for _, v := range periods {
				vals = append(vals, v)
			}
			return numeric.LCMAll(vals...)
		}
	}

	return 0, fmt.Errorf("%w: no period found within %d presses", ErrNoAnswer, maxPresses)
}

// press sends one low pulse to the broadcaster and processes the pulses
// in the order they were sent. observe sees every pulse, the button's
// included.
func (n *network) press(observe func(pulse)) {
	queue := []pulse{{From: "button", To: broadcasterName}}
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		observe(p)
		m, ok := n.modules[p.To]
		if !ok {
			continue
		}
		var out bool
		switch m.Kind {
		case broadcaster:
			out = p.High
		case flipFlop:
			if p.High {
				continue
			}
			m.on = !m.on
			out = m.on
		case conjunction:
			m.memory[p.From] = p.High
			out = false
			for _, h := range m.memory {
				if !h {
					out = true
					break
				}
			}
		}
		for _, o := range m.Outputs {
			queue = append(queue, pulse{From: m.Name, To: o, High: out})
		}
	}
}

// parseNetwork reads lines like "%a -> b, c" and "&inv -> a".
func parseNetwork(in *input.Input) (*network, error) {
	n := &network{modules: make(map[string]*commModule)}
	for i, line := range in.Lines {
		left, right, err := input.Cut(i+1, line, " -> ")
		if err != nil {
			return nil, err
		}
		m := &commModule{Outputs: strings.Split(right, ", ")}
		switch {
		case left == broadcasterName:
			m.Name, m.Kind = left, broadcaster
		case strings.HasPrefix(left, "%"):
			m.Name, m.Kind = left[1:], flipFlop
		case strings.HasPrefix(left, "&"):
			m.Name, m.Kind = left[1:], conjunction
			m.memory = make(map[string]bool)
		default:
			return nil, input.Malformed(i+1, line, "unknown module %q", left)
		}
		n.modules[m.Name] = m
	}
	if _, ok := n.modules[broadcasterName]; !ok {
		return nil, fmt.Errorf("%w: no %s module", ErrNoStart, broadcasterName)
	}
	// conjunctions start out remembering a low pulse from each input
	for _, m := range n.modules {
		for _, o := range m.Outputs {
			if t, ok := n.modules[o]; ok && t.Kind == conjunction {
				t.memory[m.Name] = false
			}
		}
	}

	return n, nil
}
