package udfix

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/jamesainslie/go-udfix/changeset"
)

// Option configures a Fixer.
type Option func(*config)

type config struct {
	workers              int
	suffix               string
	allowUnknownComments bool
	requireComplete      bool
	diff                 io.Writer
	diffColor            bool
	logger               *slog.Logger
}

func defaultConfig() config {
	return config{
		workers: runtime.NumCPU(),
		suffix:  changeset.DefaultSuffix,
		logger:  slog.Default(),
	}
}

// WithWorkers sets how many documents are patched concurrently
// (default: runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithDocumentSuffix sets the suffix every document name in the change list
// must end with (default: "conllu").
func WithDocumentSuffix(s string) Option {
	return func(c *config) {
		if s != "" {
			c.suffix = s
		}
	}
}

// WithAllowUnknownComments copies corpus comments with unrecognized keys
// instead of failing on them.
func WithAllowUnknownComments(allow bool) Option {
	return func(c *config) {
		c.allowUnknownComments = allow
	}
}

// WithRequireComplete makes Run and Check fail with ErrIncomplete when a
// correction matched no corpus word.
func WithRequireComplete(require bool) Option {
	return func(c *config) {
		c.requireComplete = require
	}
}

// WithDiffOutput writes a line diff of every changed document to w.
func WithDiffOutput(w io.Writer, colorize bool) Option {
	return func(c *config) {
		c.diff = w
		c.diffColor = colorize
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
