package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/internal/input"
	"github.com/katalvlaran/aoc2023/internal/report"
	"github.com/katalvlaran/aoc2023/puzzles"
)

// errChecksFailed is returned by run --check when an answer is wrong or
// a solver failed.
var errChecksFailed = errors.New("advent: some answers did not match")

func newRunCmd(a *app) *cobra.Command {
	var (
		check bool
		part  int
	)

	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days (all registered days when none are given)",
		Long: `Loads each day's input from the input directory, runs the requested parts
and prints the answers with their timings. With --check the command fails
when any answer differs from the one configured for it.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if part < 0 || part > 2 {
				return fmt.Errorf("--part must be 0, 1 or 2, got %d", part)
			}
			days, err := selectDays(args)
			if err != nil {
				return err
			}

			rows := a.runDays(days, part)
			if check && report.Failed(rows) {
				return errChecksFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Fail when an answer differs from the configured one")
	cmd.Flags().IntVarP(&part, "part", "p", 0, "Run only part 1 or 2 (0 runs both)")

	return cmd
}

// selectDays resolves command arguments to registered solutions.
func selectDays(args []string) ([]puzzles.Solution, error) {
	if len(args) == 0 {
		return puzzles.All(), nil
	}
	out := make([]puzzles.Solution, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q: %w", arg, err)
		}
		s, err := puzzles.Lookup(day)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// runDays solves every selected day and prints the results. A day whose
// input cannot be loaded yields an error row per requested part.
func (a *app) runDays(days []puzzles.Solution, part int) []report.Row {
	p := report.NewPrinter(a.stdout, a.color())
	log := a.log.WithField("run_id", uuid.NewString()[:8])
	log.WithField("days", len(days)).Info("run started")

	var rows []report.Row
	for _, s := range days {
		dayLog := log.WithField("day", s.Day)
		path := a.cfg.InputPath(s.Day)
		in, loadErr := input.Load(path)
		size := 0
		if in != nil {
			size = in.Size
		}
		p.Header(s.Day, s.Title, size)

		for n := 1; n <= 2; n++ {
			if part != 0 && part != n {
				continue
			}
			row := report.Row{
				Day:        s.Day,
				Title:      s.Title,
				Part:       n,
				Expected:   a.cfg.Answers[s.Day].Part(n),
				InputBytes: size,
				Err:        loadErr,
			}
			if loadErr == nil {
				start := time.Now()
				row.Answer, row.Err = s.Part(n)(in)
				row.Elapsed = time.Since(start)
			}
			logRow(dayLog, row)
			p.Row(row)
			rows = append(rows, row)
		}
	}
	p.Summary(rows)
	log.WithField("failed", report.Failed(rows)).Info("run finished")

	return rows
}

// logRow records one result at a level matching its status.
func logRow(log *logrus.Entry, r report.Row) {
	entry := log.WithFields(logrus.Fields{
		"part":    r.Part,
		"elapsed": r.Elapsed,
	})
	switch r.Status() {
	case report.StatusError:
		entry.WithError(r.Err).Error("solver failed")
	case report.StatusFail:
		entry.WithFields(logrus.Fields{
			"answer":   r.Answer,
			"expected": *r.Expected,
		}).Warn("answer mismatch")
	default:
		entry.WithField("answer", r.Answer).Debug("solved")
	}
}
