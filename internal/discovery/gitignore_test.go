package discovery

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeGitignore(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve_GitignoreSkipsIgnoredPaths(t *testing.T) {
	dir := setupTree(t,
		"keep.txt",
		"notes.md",
		"build/out.txt",
		"drafts/a.txt",
		"drafts/keep-me.txt",
		"sub/scratch.txt",
	)
	writeGitignore(t, dir, "# generated\nbuild/\ndrafts/*\n!drafts/keep-me.txt\n*.md\n")
	writeGitignore(t, filepath.Join(dir, "sub"), "scratch.txt\n")

	got, err := Resolve([]string{dir}, Options{Extensions: textExts, Gitignore: true})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []string{"drafts/keep-me.txt", "keep.txt"}
	if g := rel(t, dir, got); !reflect.DeepEqual(g, want) {
		t.Errorf("got %v, want %v", g, want)
	}
}

func TestResolve_GitignoreDisabled(t *testing.T) {
	dir := setupTree(t, "keep.txt", "build/out.txt")
	writeGitignore(t, dir, "build/\n")

	got, err := Resolve([]string{dir}, Options{Extensions: textExts})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []string{"build/out.txt", "keep.txt"}
	if g := rel(t, dir, got); !reflect.DeepEqual(g, want) {
		t.Errorf("got %v, want %v", g, want)
	}
}

func TestResolve_GitignoreAppliesFromParent(t *testing.T) {
	dir := setupTree(t, "docs/a.txt", "docs/tmp/b.txt")
	writeGitignore(t, dir, "/docs/tmp\n")

	got, err := Resolve([]string{filepath.Join(dir, "docs")}, Options{Extensions: textExts, Gitignore: true})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []string{"docs/a.txt"}
	if g := rel(t, dir, got); !reflect.DeepEqual(g, want) {
		t.Errorf("got %v, want %v", g, want)
	}
}

func TestGitignore_DoublestarPattern(t *testing.T) {
	dir := t.TempDir()
	writeGitignore(t, dir, "logs/**/*.txt\n")
	g := loadGitignore(dir)

	if !g.ignored(filepath.Join(dir, "logs", "a", "b", "c.txt"), false) {
		t.Error("expected nested file under logs/ to be ignored")
	}
	if g.ignored(filepath.Join(dir, "other", "c.txt"), false) {
		t.Error("file outside logs/ should not be ignored")
	}
	if g.ignored(filepath.Join(filepath.Dir(dir), "logs", "c.txt"), false) {
		t.Error("paths outside the .gitignore directory should not match")
	}
}

func TestGitignore_DirOnlyRule(t *testing.T) {
	dir := t.TempDir()
	writeGitignore(t, dir, "cache/\n")
	g := loadGitignore(dir)

	if !g.ignored(filepath.Join(dir, "cache"), true) {
		t.Error("directory cache should be ignored")
	}
	if g.ignored(filepath.Join(dir, "cache"), false) {
		t.Error("file named cache should not match a directory-only rule")
	}
}

func TestGitignore_NilMatcher(t *testing.T) {
	var g *gitignore
	if g.ignored("anything.txt", false) {
		t.Error("nil matcher should ignore nothing")
	}
}
