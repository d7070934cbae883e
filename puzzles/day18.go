package puzzles

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/input"
	"github.com/katalvlaran/aoc2023/numeric"
)

func init() {
	Register(Solution{Day: 18, Title: "Lavaduct Lagoon", Part1: day18a, Part2: day18b})
}

// digStep is one instruction of the dig plan.
type digStep struct {
	Dir gridgraph.Direction
	Len int64
}

var digDirs = map[byte]gridgraph.Direction{
	'U': gridgraph.North,
	'D': gridgraph.South,
	'L': gridgraph.West,
	'R': gridgraph.East,
}

func day18a(in *input.Input) (int64, error) {
	return lagoonVolume(in, plainStep)
}

// day18b takes each step from the colour code instead: five hex digits of
// length, then one digit for the direction (0=R 1=D 2=L 3=U).
func day18b(in *input.Input) (int64, error) {
	return lagoonVolume(in, hexStep)
}

func plainStep(line int, text string) (digStep, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 || len(fields[0]) != 1 {
		return digStep{}, input.Malformed(line, text, "want direction, length and colour")
	}
	d, ok := digDirs[fields[0][0]]
	if !ok {
		return digStep{}, input.Malformed(line, text, "unknown direction %q", fields[0])
	}
	n, err := input.ParseInt(line, text, fields[1])
	if err != nil {
		return digStep{}, err
	}

	return digStep{Dir: d, Len: n}, nil
}

func hexStep(line int, text string) (digStep, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return digStep{}, input.Malformed(line, text, "want direction, length and colour")
	}
	code := strings.TrimSuffix(strings.TrimPrefix(fields[2], "(#"), ")")
	if len(code) != 6 || code[5] < '0' || code[5] > '3' {
		return digStep{}, input.Malformed(line, text, "bad colour code %q", fields[2])
	}
	n, err := strconv.ParseInt(code[:5], 16, 64)
	if err != nil {
		return digStep{}, input.Malformed(line, text, "bad hex length %q", code[:5])
	}

	return digStep{Dir: []gridgraph.Direction{gridgraph.East, gridgraph.South, gridgraph.West, gridgraph.North}[code[5]-'0'], Len: n}, nil
}

// lagoonVolume returns the number of cubes dug: the trench (boundary
// points) plus the interior points, via the shoelace area and Pick's theorem.
func lagoonVolume(in *input.Input, parse func(int, string) (digStep, error)) (int64, error) {
	var (
		pts []numeric.Point[int64]
		cur numeric.Point[int64]
	)
	for i, line := range in.Lines {
		s, err := parse(i+1, line)
		if err != nil {
			return 0, err
		}
		cur = numeric.Point[int64]{X: cur.X + int64(s.Dir.DCol)*s.Len, Y: cur.Y + int64(s.Dir.DRow)*s.Len}
		pts = append(pts, cur)
	}
	if len(pts) == 0 {
		return 0, ErrNoAnswer
	}
	boundary := numeric.Perimeter(pts)
	interior := numeric.PickInterior(numeric.ShoelaceArea2(pts), boundary)

	return interior + boundary, nil
}
