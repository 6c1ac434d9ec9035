// Package config loads udfix run settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config holds the settings of one run. Command-line flags override values
// read from a file.
type Config struct {
	DataDir              string `yaml:"data_dir"`
	OutputDir            string `yaml:"output_dir"`
	Changes              string `yaml:"changes"`
	Workers              int    `yaml:"workers"`
	DocumentSuffix       string `yaml:"document_suffix"`
	AllowUnknownComments bool   `yaml:"allow_unknown_comments"`
	RequireComplete      bool   `yaml:"require_complete"`
	LogLevel             string `yaml:"log_level"`
	LogFormat            string `yaml:"log_format"`
}

// Mode selects which settings Validate requires.
type Mode int

const (
	// ModeApply needs the corpus, output directory and change list.
	ModeApply Mode = iota
	// ModeCheck needs the corpus and change list.
	ModeCheck
	// ModeChanges needs only the change list.
	ModeChanges
)

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers:        runtime.NumCPU(),
		DocumentSuffix: "conllu",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load reads path and fills unset values with defaults. An empty path
// yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	if err := yaml.UnmarshalWithOptions(data, &file, yaml.DisallowUnknownField()); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return file.withDefaults(cfg), nil
}

func (c Config) withDefaults(d Config) Config {
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.DocumentSuffix == "" {
		c.DocumentSuffix = d.DocumentSuffix
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
	return c
}

// Validate reports missing or invalid settings for mode.
func (c Config) Validate(mode Mode) error {
	var errs []error

	if c.Changes == "" {
		errs = append(errs, errors.New("changes is required"))
	}
	if mode == ModeApply || mode == ModeCheck {
		if c.DataDir == "" {
			errs = append(errs, errors.New("data_dir is required"))
		}
	}
	if mode == ModeApply {
		switch {
		case c.OutputDir == "":
			errs = append(errs, errors.New("output_dir is required"))
		case c.DataDir != "" && sameDir(c.DataDir, c.OutputDir):
			errs = append(errs, errors.New("output_dir must differ from data_dir"))
		}
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

func sameDir(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
