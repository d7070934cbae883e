package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/puzzles"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered days and whether their input is present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range puzzles.All() {
				status := "missing"
				if fi, err := os.Stat(a.cfg.InputPath(s.Day)); err == nil {
					status = humanize.Bytes(uint64(fi.Size()))
				}
				fmt.Fprintf(a.stdout, "%02d  %-32s %s\n", s.Day, s.Title, status)
			}
			return nil
		},
	}
}
