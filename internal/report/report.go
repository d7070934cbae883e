// Package report renders per-part results of an advent run for the terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Status classifies one computed answer.
type Status int

const (
	// StatusUnknown means no expected answer is configured.
	StatusUnknown Status = iota
	// StatusPass means the answer equals the expected value.
	StatusPass
	// StatusFail means the answer differs from the expected value.
	StatusFail
	// StatusError means the solver returned an error.
	StatusError
)

// Icon returns the plain status glyph.
func (s Status) Icon() string {
	switch s {
	case StatusPass:
		return "✓"
	case StatusFail, StatusError:
		return "✗"
	default:
		return "○"
	}
}

// Row is the outcome of one part of one day.
type Row struct {
	Day        int
	Title      string
	Part       int
	Answer     int64
	Expected   *int64
	Elapsed    time.Duration
	InputBytes int
	Err        error
}

// Status classifies r.
func (r Row) Status() Status {
	switch {
	case r.Err != nil:
		return StatusError
	case r.Expected == nil:
		return StatusUnknown
	case *r.Expected == r.Answer:
		return StatusPass
	default:
		return StatusFail
	}
}

// styles are the lipgloss styles bound to one renderer.
type styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Pending lipgloss.Style
}

// Printer writes rows and a summary to an output stream.
type Printer struct {
	w      io.Writer
	styles styles
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewPrinter returns a Printer writing to w. When color is false every
// style degrades to plain text (termenv.Ascii profile).
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w: w,
		styles: styles{
			Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
			Muted:   r.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
			Success: r.NewStyle().Foreground(lipgloss.Color("#2CD7C7")),
			Error:   r.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
			Pending: r.NewStyle().Foreground(lipgloss.Color("#F4D03F")),
		},
	}
}

// Header prints the day banner.
func (p *Printer) Header(day int, title string, inputBytes int) {
	fmt.Fprintln(p.w, p.styles.Title.Render(fmt.Sprintf("Day %02d: %s", day, title))+
		" "+p.styles.Muted.Render("("+humanize.Bytes(uint64(inputBytes))+" input)"))
}

// Row prints one part result.
func (p *Printer) Row(r Row) {
	icon := p.icon(r.Status())
	elapsed := p.styles.Muted.Render(r.Elapsed.Round(time.Microsecond).String())
	switch r.Status() {
	case StatusError:
		fmt.Fprintf(p.w, "  %s part %d: %s\n", icon, r.Part, p.styles.Error.Render(r.Err.Error()))
	case StatusFail:
		fmt.Fprintf(p.w, "  %s part %d: %d (want %d) %s\n", icon, r.Part, r.Answer, *r.Expected, elapsed)
	default:
		fmt.Fprintf(p.w, "  %s part %d: %d %s\n", icon, r.Part, r.Answer, elapsed)
	}
}

// Summary prints pass/fail counts and total time for rows.
func (p *Printer) Summary(rows []Row) {
	var counts [4]int
	var total time.Duration
	for _, r := range rows {
		counts[r.Status()]++
		total += r.Elapsed
	}
	parts := []string{
		p.styles.Success.Render(fmt.Sprintf("%s passed", humanize.Comma(int64(counts[StatusPass])))),
		p.styles.Error.Render(fmt.Sprintf("%s failed", humanize.Comma(int64(counts[StatusFail]+counts[StatusError])))),
		p.styles.Pending.Render(fmt.Sprintf("%s unchecked", humanize.Comma(int64(counts[StatusUnknown])))),
	}
	fmt.Fprintf(p.w, "%s in %s\n", strings.Join(parts, ", "), total.Round(time.Millisecond))
}

func (p *Printer) icon(s Status) string {
	switch s {
	case StatusPass:
		return p.styles.Success.Render(s.Icon())
	case StatusFail, StatusError:
		return p.styles.Error.Render(s.Icon())
	default:
		return p.styles.Pending.Render(s.Icon())
	}
}

// Failed reports whether any row failed or errored.
func Failed(rows []Row) bool {
	for _, r := range rows {
		if s := r.Status(); s == StatusFail || s == StatusError {
			return true
		}
	}
	return false
}
