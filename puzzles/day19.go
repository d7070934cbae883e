package puzzles

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/input"
	"github.com/katalvlaran/aoc2023/interval"
)

func init() {
	Register(Solution{Day: 19, Title: "Aplenty", Part1: day19a, Part2: day19b})
}

const (
	acceptFlow = "A"
	rejectFlow = "R"
	entryFlow  = "in"
	categories = "xmas"
)

// ruleKind tags the variant a workflowRule holds.
type ruleKind int

const (
	// ruleCompare sends parts whose Category rating compares true against
	// Value to Target.
	ruleCompare ruleKind = iota
	// ruleFallback sends every part that reaches it to Target.
	ruleFallback
)

type workflowRule struct {
	Kind     ruleKind
	Category int  // index into categories; ruleCompare only
	Less     bool // '<' when true, '>' otherwise; ruleCompare only
	Value    int64
	Target   string
}

// partRating holds the x, m, a and s ratings of one machine part.
type partRating [4]int64

// ratingBox is a set of parts: one half-open range per category.
type ratingBox [4]interval.Range

func day19a(in *input.Input) (int64, error) {
	flows, parts, err := parseSystem(in)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, p := range parts {
		ok, err := accepts(flows, p)
		if err != nil {
			return 0, err
		}
		if ok {
			sum += p[0] + p[1] + p[2] + p[3]
		}
	}

	return sum, nil
}

// day19b counts every rating combination in 1..4000 that ends in A by
// pushing boxes of ratings through the workflows and splitting them at
// each comparison.
func day19b(in *input.Input) (int64, error) {
	flows, _, err := parseSystem(in)
	if err != nil {
		return 0, err
	}
	full := interval.Range{Start: 1, End: 4001}

	return countAccepted(flows, entryFlow, ratingBox{full, full, full, full}, make(map[string]bool))
}

func accepts(flows map[string][]workflowRule, p partRating) (bool, error) {
	seen := make(map[string]bool)
	name := entryFlow
	for {
		switch name {
		case acceptFlow:
			return true, nil
		case rejectFlow:
			return false, nil
		}
		rules, ok := flows[name]
		if !ok {
			return false, fmt.Errorf("%w: unknown workflow %q", ErrNoAnswer, name)
		}
		if seen[name] {
			return false, fmt.Errorf("%w: workflow %q loops", ErrNoAnswer, name)
		}
		seen[name] = true
		name = rejectFlow // falling off the end rejects
		for _, r := range rules {
			if r.matches(p) {
				name = r.Target
				break
			}
		}
	}
}

func (r workflowRule) matches(p partRating) bool {
	switch r.Kind {
	case ruleCompare:
		if r.Less {
			return p[r.Category] < r.Value
		}
		return p[r.Category] > r.Value
	case ruleFallback:
		return true
	default:
		panic(fmt.Sprintf("puzzles: unknown rule kind %d", r.Kind))
	}
}

// split divides box into the parts r sends to its target and the parts
// that fall through to the next rule.
func (r workflowRule) split(box ratingBox) (taken, rest ratingBox) {
	switch r.Kind {
	case ruleCompare:
		taken, rest = box, box
		rng := box[r.Category]
		if r.Less {
			taken[r.Category], rest[r.Category] = rng.SplitAt(r.Value)
		} else {
			rest[r.Category], taken[r.Category] = rng.SplitAt(r.Value + 1)
		}
		return taken, rest
	case ruleFallback:
		return box, ratingBox{}
	default:
		panic(fmt.Sprintf("puzzles: unknown rule kind %d", r.Kind))
	}
}

func (b ratingBox) size() int64 {
	n := int64(1)
	for _, r := range b {
		n *= r.Len()
	}
	return n
}

func countAccepted(flows map[string][]workflowRule, name string, box ratingBox, onPath map[string]bool) (int64, error) {
	switch {
	case box.size() == 0 || name == rejectFlow:
		return 0, nil
	case name == acceptFlow:
		return box.size(), nil
	}
	rules, ok := flows[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown workflow %q", ErrNoAnswer, name)
	}
	if onPath[name] {
		return 0, fmt.Errorf("%w: workflow %q loops", ErrNoAnswer, name)
	}
	onPath[name] = true
	defer delete(onPath, name)

	var total int64
	for _, r := range rules {
		taken, rest := r.split(box)
		n, err := countAccepted(flows, r.Target, taken, onPath)
		if err != nil {
			return 0, err
		}
		total += n
		box = rest
		if box.size() == 0 {
			break
		}
	}

	return total, nil
}

// parseSystem reads the workflow block "px{a<2006:qkq,m>2090:A,rfg}" and
// the part block "{x=787,m=2655,a=1222,s=2876}".
func parseSystem(in *input.Input) (map[string][]workflowRule, []partRating, error) {
	flows := make(map[string][]workflowRule)
	var parts []partRating
	inParts := false
	for i, line := range in.Lines {
		switch {
		case strings.TrimSpace(line) == "":
			inParts = true
		case inParts:
			p, err := parseRating(i+1, line)
			if err != nil {
				return nil, nil, err
			}
			parts = append(parts, p)
		default:
			name, rules, err := parseWorkflow(i+1, line)
			if err != nil {
				return nil, nil, err
			}
			flows[name] = rules
		}
	}
	if _, ok := flows[entryFlow]; !ok {
		return nil, nil, fmt.Errorf("%w: no %q workflow", ErrNoStart, entryFlow)
	}

	return flows, parts, nil
}

func parseWorkflow(line int, text string) (string, []workflowRule, error) {
	name, body, err := input.Cut(line, text, "{")
	if err != nil {
		return "", nil, err
	}
	var rules []workflowRule
	for _, item := range strings.Split(strings.TrimSuffix(body, "}"), ",") {
		cond, target, ok := strings.Cut(item, ":")
		if !ok {
			rules = append(rules, workflowRule{Kind: ruleFallback, Target: item})
			continue
		}
		if len(cond) < 3 || (cond[1] != '<' && cond[1] != '>') {
			return "", nil, input.Malformed(line, text, "bad condition %q", cond)
		}
		cat := strings.IndexByte(categories, cond[0])
		if cat < 0 {
			return "", nil, input.Malformed(line, text, "unknown category %q", cond[0])
		}
		v, err := input.ParseInt(line, text, cond[2:])
		if err != nil {
			return "", nil, err
		}
		rules = append(rules, workflowRule{Kind: ruleCompare, Category: cat, Less: cond[1] == '<', Value: v, Target: target})
	}

	return name, rules, nil
}

func parseRating(line int, text string) (partRating, error) {
	var p partRating
	fields := strings.Split(strings.Trim(text, "{}"), ",")
	if len(fields) != len(categories) {
		return p, input.Malformed(line, text, "want %d ratings", len(categories))
	}
	for _, f := range fields {
		k, v, err := input.Cut(line, f, "=")
		if err != nil {
			return p, err
		}
		cat := strings.Index(categories, k)
		if len(k) != 1 || cat < 0 {
			return p, input.Malformed(line, text, "unknown category %q", k)
		}
		if p[cat], err = input.ParseInt(line, text, v); err != nil {
			return p, err
		}
	}

	return p, nil
}
