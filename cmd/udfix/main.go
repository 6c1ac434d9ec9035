package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	udfix "github.com/jamesainslie/go-udfix"
	"github.com/jamesainslie/go-udfix/changeset"
	"github.com/jamesainslie/go-udfix/internal/config"
	"github.com/jamesainslie/go-udfix/internal/stats"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes.
const (
	exitError              = 1
	exitMalformedChangeSet = 2
	exitConsistency        = 3
	exitMalformedDocument  = 4
	exitIncomplete         = 5
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.RunContext(ctx, os.Args); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "udfix",
		Usage:     "apply word-level annotation fixes to a CoNLL-U corpus",
		Version:   fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML settings file",
				EnvVars: []string{"UDFIX_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"UDFIX_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "text or json",
				EnvVars: []string{"UDFIX_LOG_FORMAT"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "apply",
				Usage:  "patch every document of a corpus directory into an output directory",
				Flags:  append(changesFlags(), append(corpusFlags(true), runFlags()...)...),
				Action: runApply,
			},
			{
				Name:   "check",
				Usage:  "verify a change list against a corpus without writing output",
				Flags:  append(changesFlags(), append(corpusFlags(false), runFlags()...)...),
				Action: runCheck,
			},
			{
				Name:  "compile",
				Usage: "parse a change list and write it as a protobuf snapshot",
				Flags: append(changesFlags(), &cli.StringFlag{
					Name:    "out",
					Aliases: []string{"o"},
					Usage:   "snapshot path (default: change list path with .pb extension)",
				}),
				Action: runCompile,
			},
			{
				Name:  "stats",
				Usage: "summarize the corrections of a change list",
				Flags: append(changesFlags(),
					&cli.IntFlag{Name: "top", Value: 20, Usage: "transitions to show, 0 for all"},
					&cli.StringFlag{Name: "field", Usage: "restrict transitions to UPOS, XPOS or FEATS"},
				),
				Action: runStats,
			},
		},
	}
}

func changesFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "changes",
			Aliases: []string{"changes_fn"},
			Usage:   "change list (.tsv) or compiled snapshot (.pb)",
			EnvVars: []string{"UDFIX_CHANGES"},
		},
		&cli.StringFlag{
			Name:    "suffix",
			Usage:   "required suffix of document names in the change list",
			EnvVars: []string{"UDFIX_DOCUMENT_SUFFIX"},
		},
	}
}

func corpusFlags(output bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "data-dir",
			Aliases: []string{"data_dir"},
			Usage:   "directory of corpus documents",
			EnvVars: []string{"UDFIX_DATA_DIR"},
		},
	}
	if output {
		flags = append(flags, &cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"output_dir"},
			Usage:   "directory for patched documents",
			EnvVars: []string{"UDFIX_OUTPUT_DIR"},
		})
	}
	return flags
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "workers",
			Usage:   "documents patched concurrently",
			EnvVars: []string{"UDFIX_WORKERS"},
		},
		&cli.BoolFlag{
			Name:    "allow-unknown-comments",
			Usage:   "copy comments other than newdoc, sent_id and text",
			EnvVars: []string{"UDFIX_ALLOW_UNKNOWN_COMMENTS"},
		},
		&cli.BoolFlag{
			Name:    "require-complete",
			Usage:   "fail when a correction matches no corpus word",
			EnvVars: []string{"UDFIX_REQUIRE_COMPLETE"},
		},
		&cli.BoolFlag{
			Name:  "diff",
			Usage: "print a line diff of every changed document",
		},
	}
}

// settings merges the config file with flags set on the command line or
// through the environment.
func settings(c *cli.Context, mode config.Mode) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	strs := map[string]*string{
		"changes":    &cfg.Changes,
		"suffix":     &cfg.DocumentSuffix,
		"data-dir":   &cfg.DataDir,
		"output-dir": &cfg.OutputDir,
		"log-level":  &cfg.LogLevel,
		"log-format": &cfg.LogFormat,
	}
	for name, dst := range strs {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("allow-unknown-comments") {
		cfg.AllowUnknownComments = c.Bool("allow-unknown-comments")
	}
	if c.IsSet("require-complete") {
		cfg.RequireComplete = c.Bool("require-complete")
	}

	if err := cfg.Validate(mode); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	level, _ := cfg.Level()
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func fixerOptions(c *cli.Context, cfg config.Config, logger *slog.Logger) []udfix.Option {
	opts := []udfix.Option{
		udfix.WithLogger(logger),
		udfix.WithWorkers(cfg.Workers),
		udfix.WithDocumentSuffix(cfg.DocumentSuffix),
		udfix.WithAllowUnknownComments(cfg.AllowUnknownComments),
		udfix.WithRequireComplete(cfg.RequireComplete),
	}
	if c.Bool("diff") {
		opts = append(opts, udfix.WithDiffOutput(c.App.Writer, colorEnabled(c.App.Writer)))
	}
	return opts
}

func runApply(c *cli.Context) error {
	cfg, err := settings(c, config.ModeApply)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, c.App.ErrWriter)

	fx, err := udfix.New(cfg.Changes, fixerOptions(c, cfg, logger)...)
	if err != nil {
		return err
	}
	report, err := fx.Run(c.Context, cfg.DataDir, cfg.OutputDir)
	if report != nil {
		printReport(c.App.Writer, report)
	}
	return err
}

func runCheck(c *cli.Context) error {
	cfg, err := settings(c, config.ModeCheck)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, c.App.ErrWriter)

	fx, err := udfix.New(cfg.Changes, fixerOptions(c, cfg, logger)...)
	if err != nil {
		return err
	}
	report, err := fx.Check(c.Context, cfg.DataDir)
	if report != nil {
		printReport(c.App.Writer, report)
	}
	return err
}

func runCompile(c *cli.Context) error {
	cfg, err := settings(c, config.ModeChanges)
	if err != nil {
		return err
	}

	idx, err := changeset.Load(cfg.Changes, changeset.WithSuffix(cfg.DocumentSuffix))
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		out = strings.TrimSuffix(cfg.Changes, filepath.Ext(cfg.Changes)) + changeset.SnapshotExt
	}
	if out == cfg.Changes {
		return errors.New("refusing to overwrite the change list with its snapshot")
	}
	if err := changeset.WriteSnapshot(out, idx); err != nil {
		return err
	}

	docs, sents, words := idx.Counts()
	fmt.Fprintf(c.App.Writer, "Wrote %s (%d documents, %d sentences, %d words)\n", out, docs, sents, words)
	return nil
}

func runStats(c *cli.Context) error {
	cfg, err := settings(c, config.ModeChanges)
	if err != nil {
		return err
	}

	idx, err := changeset.Load(cfg.Changes, changeset.WithSuffix(cfg.DocumentSuffix))
	if err != nil {
		return err
	}
	s := stats.Summarize(idx)

	w := c.App.Writer
	fmt.Fprintf(w, "Documents: %d  Sentences: %d  Words: %d\n", s.Documents, s.Sentences, s.Words)
	fmt.Fprintf(w, "Changed UPOS: %d  XPOS: %d  FEATS: %d  (assert only: %d)\n",
		s.Changed["UPOS"], s.Changed["XPOS"], s.Changed["FEATS"], s.AssertOnly)

	top := s.Top(strings.ToUpper(c.String("field")), c.Int("top"))
	if len(top) == 0 {
		return nil
	}
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "%-6s %-22s %-22s %6s\n", "Field", "From", "To", "Count")
	for _, t := range top {
		fmt.Fprintf(w, "%-6s %-22s %-22s %6d\n", t.Field, t.From, t.To, t.Count)
	}
	return nil
}

// maxListed caps how many unapplied corrections are printed.
const maxListed = 20

func printReport(w io.Writer, r *udfix.Report) {
	fmt.Fprintf(w, "Documents: %d  Patched: %d  Applied: %d  Unapplied: %d\n",
		r.Documents, r.Patched, len(r.Applied), len(r.Unapplied))
	if len(r.Unapplied) == 0 {
		return
	}

	warn := color.New(color.FgYellow)
	setColor(warn, w)
	for i, k := range r.Unapplied {
		if i == maxListed {
			warn.Fprintf(w, "  ... and %d more\n", len(r.Unapplied)-maxListed)
			break
		}
		warn.Fprintf(w, "  not applied: %s %s word %s\n", k.Document, k.SentenceID, k.WordID)
	}
}

func printError(w io.Writer, err error) {
	label := color.New(color.FgRed, color.Bold)
	setColor(label, w)
	label.Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, udfix.ErrMalformedChangeSet), errors.Is(err, changeset.ErrInvalidSnapshot):
		return exitMalformedChangeSet
	case errors.Is(err, udfix.ErrConsistency):
		return exitConsistency
	case errors.Is(err, udfix.ErrMalformedDocument):
		return exitMalformedDocument
	case errors.Is(err, udfix.ErrIncomplete):
		return exitIncomplete
	default:
		return exitError
	}
}

func setColor(c *color.Color, w io.Writer) {
	if colorEnabled(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// colorEnabled reports whether w is a terminal and NO_COLOR is unset.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
