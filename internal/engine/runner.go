// Package engine drives analysis over files: it reads each input, reduces
// Markdown to prose when configured, and analyzes every file as an
// independent document.
package engine

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/jeduden/textstat"
	"github.com/jeduden/textstat/internal/config"
	vlog "github.com/jeduden/textstat/internal/log"
	"github.com/jeduden/textstat/internal/mdtext"
)

// Runner analyzes files in parallel. Config must be non-nil; Logger may be
// nil.
type Runner struct {
	Config *config.Config
	Logger *vlog.Logger
}

// FileReport is the analysis of a single input.
type FileReport struct {
	Path   string          `json:"path"`
	Report textstat.Report `json:"report"`
}

// Result holds the output of a run.
type Result struct {
	Files  []FileReport
	Errors []error
}

// Run analyzes the files at the given paths. Reports keep the order of
// paths. Files that cannot be read are reported in Result.Errors and do
// not stop the others. The returned error is non-nil only when ctx is
// cancelled.
func (r *Runner) Run(ctx context.Context, paths []string) (*Result, error) {
	reports := make([]*FileReport, len(paths))
	errs := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(r.Config.JobCount(), len(paths))))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			source, err := os.ReadFile(path)
			if err != nil {
				errs[i] = fmt.Errorf("reading %q: %w", path, err)
				r.Logger.Warn("skipped", "file", path, "err", err)
				return nil
			}

			fr := r.RunSource(path, source)
			reports[i] = &fr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Files: make([]FileReport, 0, len(paths))}
	for i := range paths {
		if errs[i] != nil {
			res.Errors = append(res.Errors, errs[i])
			continue
		}
		res.Files = append(res.Files, *reports[i])
	}
	return res, nil
}

// RunSource analyzes source as if it had been read from path. The path
// selects per-file overrides and decides Markdown handling in auto mode.
func (r *Runner) RunSource(path string, source []byte) FileReport {
	settings := config.Effective(r.Config, path)

	text := string(source)
	if useMarkdown(settings.Markdown, path) {
		text = mdtext.PlainText(source)
	}

	report := textstat.Analyze(textstat.Load(text), settings.Top)
	r.Logger.Debug("analyzed",
		"file", path,
		"markdown", useMarkdown(settings.Markdown, path),
		"words", report.Stats.Words,
		"sentences", report.Stats.Sentences,
	)

	return FileReport{Path: path, Report: report}
}

func useMarkdown(mode config.MarkdownMode, path string) bool {
	switch mode {
	case config.MarkdownAlways:
		return true
	case config.MarkdownNever:
		return false
	default:
		return mdtext.IsMarkdownPath(path)
	}
}
