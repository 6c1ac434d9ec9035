package udfix

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jamesainslie/go-udfix/changeset"
	"github.com/jamesainslie/go-udfix/conllu"
	"github.com/jamesainslie/go-udfix/internal/corpus"
	"github.com/jamesainslie/go-udfix/internal/diffview"
)

// Fixer applies a change list to corpus documents.
// It is safe for concurrent use.
type Fixer struct {
	index           *changeset.Index
	patcher         *conllu.Patcher
	workers         int
	requireComplete bool
	logger          *slog.Logger

	diffMu  sync.Mutex
	diff    io.Writer
	printer *diffview.Printer
}

// Report summarizes a run over a corpus directory.
type Report struct {
	Documents int             // files read
	Patched   int             // files with at least one applied correction
	Applied   []changeset.Key // in document-name, then line order
	Unapplied []changeset.Key // index entries no corpus word matched
}

// New creates a Fixer from the change list at changesPath, either a
// tab-separated list or a ".pb" snapshot.
func New(changesPath string, opts ...Option) (*Fixer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	idx, err := changeset.Load(changesPath, changeset.WithSuffix(cfg.suffix))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrChangesNotFound, changesPath)
		}
		return nil, err
	}

	documents, sentences, words := idx.Counts()
	cfg.logger.Info("change list loaded",
		"path", changesPath,
		"documents", documents,
		"sentences", sentences,
		"words", words,
	)

	return newFixer(idx, cfg), nil
}

// NewWithIndex creates a Fixer for an already parsed index.
func NewWithIndex(idx *changeset.Index, opts ...Option) *Fixer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newFixer(idx, cfg)
}

func newFixer(idx *changeset.Index, cfg config) *Fixer {
	f := &Fixer{
		index:           idx,
		patcher:         conllu.NewPatcher(idx, conllu.WithAllowUnknownComments(cfg.allowUnknownComments)),
		workers:         cfg.workers,
		requireComplete: cfg.requireComplete,
		logger:          cfg.logger,
		diff:            cfg.diff,
	}
	if f.diff != nil {
		f.printer = diffview.New(cfg.diffColor)
	}
	return f
}

// Index returns the change index the Fixer applies.
func (f *Fixer) Index() *changeset.Index {
	return f.index
}

// PatchFile patches the document at path. The file name addresses the
// change list.
func (f *Fixer) PatchFile(path string) (*conllu.Result, error) {
	_, res, err := f.patchFile(path)
	return res, err
}

func (f *Fixer) patchFile(path string) ([]string, *conllu.Result, error) {
	lines, err := corpus.ReadLines(path)
	if err != nil {
		return nil, nil, err
	}
	res, err := f.patcher.Patch(filepath.Base(path), lines)
	if err != nil {
		return nil, nil, err
	}
	return lines, res, nil
}

// Run patches every file in dataDir and writes the results under outDir,
// which is created if needed. The first error stops the run; outDir must
// then be treated as incomplete.
func (f *Fixer) Run(ctx context.Context, dataDir, outDir string) (*Report, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}
	return f.run(ctx, dataDir, outDir)
}

// Check patches every file in dataDir without writing any output.
func (f *Fixer) Check(ctx context.Context, dataDir string) (*Report, error) {
	return f.run(ctx, dataDir, "")
}

func (f *Fixer) run(ctx context.Context, dataDir, outDir string) (*Report, error) {
	docs, err := corpus.List(dataDir)
	if err != nil {
		return nil, err
	}

	applied := make([][]changeset.Key, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			before, res, err := f.patchFile(doc.Path)
			if err != nil {
				return err
			}
			f.logger.Debug("document patched",
				"document", doc.Name,
				"lines", len(res.Lines),
				"applied", len(res.Applied),
			)

			if err := f.writeDiff(doc.Name, before, res.Lines); err != nil {
				return err
			}
			if outDir != "" {
				if err := corpus.WriteLines(filepath.Join(outDir, doc.Name), res.Lines); err != nil {
					return err
				}
			}
			applied[i] = res.Applied
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := f.report(docs, applied)
	f.logger.Info("run complete",
		"documents", report.Documents,
		"patched", report.Patched,
		"applied", len(report.Applied),
		"unapplied", len(report.Unapplied),
	)

	if len(report.Unapplied) > 0 {
		if f.requireComplete {
			return report, fmt.Errorf("%w: %d of %d corrections matched no corpus word",
				ErrIncomplete, len(report.Unapplied), len(report.Unapplied)+len(report.Applied))
		}
		f.logger.Warn("corrections not applied", "count", len(report.Unapplied))
	}
	return report, nil
}

func (f *Fixer) report(docs []corpus.Document, applied [][]changeset.Key) *Report {
	r := &Report{Documents: len(docs)}
	seen := make(map[changeset.Key]bool)
	for _, keys := range applied {
		if len(keys) > 0 {
			r.Patched++
		}
		for _, k := range keys {
			seen[k] = true
		}
		r.Applied = append(r.Applied, keys...)
	}
	for _, k := range f.index.Keys() {
		if !seen[k] {
			r.Unapplied = append(r.Unapplied, k)
		}
	}
	return r
}

func (f *Fixer) writeDiff(name string, before, after []string) error {
	if f.diff == nil {
		return nil
	}
	text := f.printer.Render(name, before, after)
	if text == "" {
		return nil
	}

	f.diffMu.Lock()
	defer f.diffMu.Unlock()
	if _, err := io.WriteString(f.diff, text); err != nil {
		return fmt.Errorf("writing diff: %w", err)
	}
	return nil
}
