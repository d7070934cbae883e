// Package input loads puzzle input files and provides the small parsing
// helpers every solver shares.
package input

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrMalformed marks input that does not match the expected format.
// Solvers wrap it with the offending line number and text.
var ErrMalformed = errors.New("input: malformed input")

// Input is the text of one puzzle input, split into lines.
// Carriage returns are stripped and trailing blank lines removed.
type Input struct {
	Name  string
	Lines []string
	Size  int
}

// Load reads the file at path.
func Load(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read %s: %w", path, err)
	}
	in := FromString(path, string(data))
	in.Size = len(data)

	return in, nil
}

// FromString builds an Input from literal text, as used by tests.
func FromString(name, text string) *Input {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}

	return &Input{Name: name, Lines: lines, Size: len(text)}
}

// Text returns the lines joined by newlines.
func (in *Input) Text() string {
	return strings.Join(in.Lines, "\n")
}

// Blocks splits the lines into groups separated by blank lines.
// Empty groups (from repeated blank lines) are skipped.
func (in *Input) Blocks() [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, l := range in.Lines {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks
}

// Malformed wraps ErrMalformed with a 1-based line number, the line text
// and a reason.
func Malformed(line int, text, format string, args ...any) error {
	return fmt.Errorf("%w: line %d %q: %s", ErrMalformed, line, text, fmt.Sprintf(format, args...))
}

// Ints extracts every signed decimal integer from text, in order.
// A '-' counts as a sign only when immediately followed by a digit.
// A number that does not fit in int64 is reported as malformed on line.
func Ints(line int, text string) ([]int64, error) {
	var out []int64
	for i := 0; i < len(text); {
		j := i
		if text[j] == '-' && j+1 < len(text) && isDigit(text[j+1]) {
			j++
		}
		if !isDigit(text[j]) {
			i++
			continue
		}
		k := j
		for k < len(text) && isDigit(text[k]) {
			k++
		}
		v, err := strconv.ParseInt(text[i:k], 10, 64)
		if err != nil {
			return nil, Malformed(line, text, "integer %s out of range", text[i:k])
		}
		out = append(out, v)
		i = k
	}

	return out, nil
}

// ParseInt parses a base-10 integer field, reporting the line on failure.
func ParseInt(line int, text, field string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, Malformed(line, text, "bad integer %q", field)
	}

	return v, nil
}

// Cut splits text around sep, reporting the line when sep is missing.
func Cut(line int, text, sep string) (before, after string, err error) {
	before, after, ok := strings.Cut(text, sep)
	if !ok {
		return "", "", Malformed(line, text, "missing %q", sep)
	}

	return before, after, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
