// Package config loads the advent runner configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration that loads but cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// dayVerb matches the integer verb a file pattern formats the day with.
var dayVerb = regexp.MustCompile(`%0?[0-9]*d`)

// Expected holds the known answers for one day. Nil means unknown.
type Expected struct {
	Part1 *int64 `yaml:"part1"`
	Part2 *int64 `yaml:"part2"`
}

// Part returns the expected answer for part 1 or 2.
func (e Expected) Part(n int) *int64 {
	if n == 1 {
		return e.Part1
	}
	return e.Part2
}

// Config is the structure of advent.yaml.
type Config struct {
	InputDir    string           `yaml:"input_dir"`
	FilePattern string           `yaml:"file_pattern"`
	LogLevel    string           `yaml:"log_level"`
	Answers     map[int]Expected `yaml:"answers"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		InputDir:    "inputs",
		FilePattern: "day%02d.txt",
		LogLevel:    "info",
		Answers:     map[int]Expected{},
	}
}

// Load reads a YAML configuration file. A missing file yields Default();
// fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Answers == nil {
		cfg.Answers = map[int]Expected{}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the file pattern can produce per-day names.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("%w: input_dir is empty", ErrInvalid)
	}
	// %% is a literal percent sign and may appear anywhere.
	verbs := strings.ReplaceAll(c.FilePattern, "%%", "")
	if strings.Count(verbs, "%") != 1 || len(dayVerb.FindAllString(verbs, -1)) != 1 {
		return fmt.Errorf("%w: file_pattern %q must contain exactly one integer verb", ErrInvalid, c.FilePattern)
	}
	for day := range c.Answers {
		if day < 1 || day > 25 {
			return fmt.Errorf("%w: answers for day %d", ErrInvalid, day)
		}
	}

	return nil
}

// InputPath returns the input file location for day.
func (c Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf(c.FilePattern, day))
}
