package puzzles

import (
	"slices"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 15, Title: "Lens Library", Part1: day15a, Part2: day15b})
}

// lens is a labelled lens in a box slot.
type lens struct {
	Label string
	Focal int64
}

func day15a(in *input.Input) (int64, error) {
	var sum int64
	for _, step := range initSequence(in) {
		sum += int64(holidayHash(step))
	}

	return sum, nil
}

// day15b runs the HASHMAP procedure: "label=N" inserts or replaces a lens
// in box HASH(label), "label-" removes it. The answer is the focusing power.
func day15b(in *input.Input) (int64, error) {
	var boxes [256][]lens
	for _, step := range initSequence(in) {
		if label, ok := strings.CutSuffix(step, "-"); ok {
			b := holidayHash(label)
			boxes[b] = slices.DeleteFunc(boxes[b], func(l lens) bool { return l.Label == label })
			continue
		}
		label, focal, err := input.Cut(1, step, "=")
		if err != nil {
			return 0, err
		}
		f, err := input.ParseInt(1, step, focal)
		if err != nil {
			return 0, err
		}
		b := holidayHash(label)
		if k := slices.IndexFunc(boxes[b], func(l lens) bool { return l.Label == label }); k >= 0 {
			boxes[b][k].Focal = f
		} else {
			boxes[b] = append(boxes[b], lens{Label: label, Focal: f})
		}
	}

	var power int64
	for b, box := range boxes {
		for slot, l := range box {
			power += int64(b+1) * int64(slot+1) * l.Focal
		}
	}

	return power, nil
}

// initSequence splits the comma separated steps; newlines are ignored.
func initSequence(in *input.Input) []string {
	var steps []string
	for _, s := range strings.Split(strings.Join(in.Lines, ""), ",") {
		if s != "" {
			steps = append(steps, s)
		}
	}

	return steps
}

// holidayHash is the puzzle's HASH: for each byte, add it, multiply by 17
// and keep the remainder modulo 256.
func holidayHash(s string) int {
	h := 0
	for i := range len(s) {
		h = (h + int(s[i])) * 17 % 256
	}

	return h
}
