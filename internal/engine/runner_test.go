package engine

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeduden/textstat/internal/config"
	vlog "github.com/jeduden/textstat/internal/log"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newRunner(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.Defaults()
	}
	return &Runner{Config: cfg}
}

func TestRunner_KeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"c.txt", "a.txt", "b.txt"} {
		paths = append(paths, writeFile(t, dir, name, "One sentence here."))
	}

	res, err := newRunner(nil).Run(context.Background(), paths)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Files) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(res.Files))
	}
	for i, fr := range res.Files {
		if fr.Path != paths[i] {
			t.Errorf("report %d path = %s, want %s", i, fr.Path, paths[i])
		}
		if fr.Report.Stats.Words != 3 {
			t.Errorf("report %d words = %d, want 3", i, fr.Report.Stats.Words)
		}
	}
}

func TestRunner_MissingFileCollectedAsError(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "Fine text.")
	missing := filepath.Join(dir, "missing.txt")

	res, err := newRunner(nil).Run(context.Background(), []string{missing, good})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Files) != 1 || res.Files[0].Path != good {
		t.Errorf("expected only good.txt, got %+v", res.Files)
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0].Error(), "missing.txt") {
		t.Errorf("expected one error for missing.txt, got %v", res.Errors)
	}
}

func TestRunner_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "Text.")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner(nil).Run(ctx, []string{path})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunner_MarkdownAutoByExtension(t *testing.T) {
	dir := t.TempDir()
	src := "# Heading\n\nSome `code` and *emphasis*.\n\n```\nskipped code block.\n```\n"
	md := writeFile(t, dir, "doc.md", src)
	txt := writeFile(t, dir, "doc.txt", src)

	res, err := newRunner(nil).Run(context.Background(), []string{md, txt})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	mdStats, txtStats := res.Files[0].Report.Stats, res.Files[1].Report.Stats
	if mdStats.Paragraphs != 2 {
		t.Errorf("markdown paragraphs = %d, want 2", mdStats.Paragraphs)
	}
	if mdStats.Words != 5 {
		t.Errorf("markdown words = %d, want 5", mdStats.Words)
	}
	if txtStats.Words <= mdStats.Words {
		t.Errorf("plain text should keep markup and code: %d <= %d", txtStats.Words, mdStats.Words)
	}
}

func TestRunner_MarkdownModes(t *testing.T) {
	src := []byte("Plain *text*.\n")

	always := config.Defaults()
	always.Markdown = config.MarkdownAlways
	fr := newRunner(always).RunSource("notes.txt", src)
	if fr.Report.Stats.Characters != len("Plain text.") {
		t.Errorf("always: characters = %d", fr.Report.Stats.Characters)
	}

	never := config.Defaults()
	never.Markdown = config.MarkdownNever
	fr = newRunner(never).RunSource("notes.md", src)
	if fr.Report.Stats.Characters != len(src) {
		t.Errorf("never: characters = %d, want %d", fr.Report.Stats.Characters, len(src))
	}
}

func TestRunner_OverrideTop(t *testing.T) {
	two := 2
	cfg := config.Merge(config.Defaults(), &config.Config{
		Overrides: []config.Override{{Files: []string{"short/*"}, Top: &two}},
	})
	src := []byte("alpha bravo charlie delta echo foxtrot.")

	if fr := newRunner(cfg).RunSource("short/a.txt", src); len(fr.Report.Frequency) != 2 {
		t.Errorf("override: got %d words, want 2", len(fr.Report.Frequency))
	}
	if fr := newRunner(cfg).RunSource("long/a.txt", src); len(fr.Report.Frequency) != 6 {
		t.Errorf("default: got %d words, want 6", len(fr.Report.Frequency))
	}
}

func TestRunner_LogsWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{Config: config.Defaults(), Logger: &vlog.Logger{Enabled: true, W: &buf}}

	r.RunSource("x.txt", []byte("Hello world."))

	if !strings.Contains(buf.String(), "file=x.txt") {
		t.Errorf("expected log line for x.txt, got %q", buf.String())
	}
}
