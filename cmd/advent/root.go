package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/logging"
	"github.com/katalvlaran/aoc2023/internal/report"
)

// app carries the state shared by all subcommands once the persistent
// flags have been resolved.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	inputDir   string
	logLevel   string
	noColor    bool

	cfg config.Config
	log *logrus.Logger
}

// newRootCmd builds the command tree writing answers to stdout and logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "advent",
		Short:         "Advent of Code 2023 solver runner",
		Long:          `Runs the day solvers against input files and checks them against the answers listed in the config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	// Persistent flags (available to all commands)
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "advent.yaml", "Path to the YAML config file")
	root.PersistentFlags().StringVar(&a.inputDir, "input-dir", "", "Directory holding the input files (overrides config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newRunCmd(a), newListCmd(a), newVersionCmd())

	return root
}

// setup loads the config file and applies flag overrides on top of it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = a.inputDir
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(a.stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.WithFields(logrus.Fields{
		"config":    a.configPath,
		"input_dir": cfg.InputDir,
	}).Debug("configuration loaded")

	return nil
}

// color reports whether styled output should be used.
func (a *app) color() bool {
	if a.noColor {
		return false
	}
	f, ok := a.stdout.(*os.File)
	return ok && report.IsTerminal(f)
}

// Execute runs the root command against the process streams.
func Execute() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
