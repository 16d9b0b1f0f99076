package discovery

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// gitignore holds the .gitignore rules that apply below a walk root, ordered
// from the outermost file to the innermost. Later rules win.
type gitignore struct {
	rules []ignoreRule
}

type ignoreRule struct {
	base    string // directory holding the .gitignore
	pattern string
	negate  bool
	dirOnly bool
	// anchored patterns contain a slash and match the path relative to
	// base; the rest match the base name at any depth.
	anchored bool
}

// loadGitignore collects .gitignore files from the ancestors of root and
// from every directory inside it. Unreadable files are skipped.
func loadGitignore(root string) *gitignore {
	g := &gitignore{}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return g
	}

	var ancestors []string
	for dir := filepath.Dir(absRoot); ; dir = filepath.Dir(dir) {
		ancestors = append([]string{filepath.Join(dir, ".gitignore")}, ancestors...)
		if filepath.Dir(dir) == dir {
			break
		}
	}
	for _, path := range ancestors {
		g.rules = append(g.rules, parseGitignore(path)...)
	}

	_ = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() && d.Name() == ".gitignore" {
			g.rules = append(g.rules, parseGitignore(path)...)
		}
		return nil
	})
	return g
}

func parseGitignore(path string) []ignoreRule {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	base := filepath.Dir(path)
	var rules []ignoreRule

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		r := ignoreRule{base: base}
		if rest, ok := strings.CutPrefix(line, "!"); ok {
			r.negate = true
			line = rest
		}
		if rest, ok := strings.CutSuffix(line, "/"); ok {
			r.dirOnly = true
			line = rest
		}
		if rest, ok := strings.CutPrefix(line, "/"); ok {
			r.anchored = true
			line = rest
		} else {
			r.anchored = strings.Contains(line, "/")
		}

		r.pattern = line
		rules = append(rules, r)
	}
	return rules
}

// ignored reports whether path is excluded. isDir selects directory-only
// rules.
func (g *gitignore) ignored(path string, isDir bool) bool {
	if g == nil || len(g.rules) == 0 {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	ignored := false
	for _, r := range g.rules {
		if r.dirOnly && !isDir {
			continue
		}
		if r.match(abs) {
			ignored = !r.negate
		}
	}
	return ignored
}

func (r ignoreRule) match(abs string) bool {
	rel, err := filepath.Rel(r.base, abs)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}

	if r.anchored {
		ok, _ := doublestar.Match(r.pattern, rel)
		return ok
	}
	ok, _ := doublestar.Match(r.pattern, filepath.Base(abs))
	return ok
}
