// Package discovery resolves command-line arguments into the text files to
// analyze.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// Options controls how file resolution behaves.
type Options struct {
	// Extensions lists the file extensions collected when walking a
	// directory, compared case-insensitively and including the dot.
	Extensions []string

	// Ignore is a list of glob patterns. Walked and globbed files whose
	// path or base name matches a pattern are skipped. Explicitly named
	// files are never ignored.
	Ignore []string

	// Gitignore skips walked files and directories excluded by .gitignore
	// files in or above the walked directory.
	Gitignore bool
}

// Resolve takes positional arguments and returns deduplicated, sorted file
// paths. It supports individual files, directories (walked recursively for
// files with a configured extension) and doublestar glob patterns such as
// "docs/**/*.md". Returns an error for nonexistent paths that are not glob
// patterns.
func Resolve(args []string, opts Options) ([]string, error) {
	r := &resolver{
		exts:      normalizeExts(opts.Extensions),
		ignore:    compileAll(opts.Ignore),
		gitignore: opts.Gitignore,
		seen:      make(map[string]bool),
	}

	for _, arg := range args {
		if err := r.resolveArg(arg); err != nil {
			return nil, err
		}
	}

	sort.Strings(r.result)
	return r.result, nil
}

type resolver struct {
	exts      map[string]bool
	ignore    []glob.Glob
	gitignore bool
	seen      map[string]bool
	result    []string
}

// resolveArg resolves a single argument (glob, directory, or file).
func (r *resolver) resolveArg(arg string) error {
	if hasGlobChars(arg) {
		return r.resolveGlob(arg)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}

	if info.IsDir() {
		return r.walkDir(arg)
	}

	r.add(arg)
	return nil
}

// resolveGlob expands a pattern and adds matching files.
func (r *resolver) resolveGlob(pattern string) error {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if info.IsDir() {
			if err := r.walkDir(m); err != nil {
				return err
			}
			continue
		}
		if !r.ignored(m) {
			r.add(m)
		}
	}
	return nil
}

// walkDir recursively walks a directory and adds files with a known
// extension. Hidden directories below the root are skipped.
func (r *resolver) walkDir(dir string) error {
	var gi *gitignore
	if r.gitignore {
		gi = loadGitignore(dir)
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == dir {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") || r.ignored(path) || gi.ignored(path, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if r.exts[strings.ToLower(filepath.Ext(path))] && !r.ignored(path) && !gi.ignored(path, false) {
			r.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking directory %q: %w", dir, err)
	}
	return nil
}

func (r *resolver) add(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if !r.seen[abs] {
		r.seen[abs] = true
		r.result = append(r.result, path)
	}
}

// ignored returns true if path matches any ignore pattern.
func (r *resolver) ignored(path string) bool {
	slashed := filepath.ToSlash(filepath.Clean(path))
	base := filepath.Base(path)
	for _, g := range r.ignore {
		if g.Match(path) || g.Match(slashed) || g.Match(base) {
			return true
		}
	}
	return false
}

// hasGlobChars returns true if the string contains glob meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

func compileAll(patterns []string) []glob.Glob {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			continue
		}
		out = append(out, g)
	}
	return out
}

func normalizeExts(exts []string) map[string]bool {
	out := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out[e] = true
	}
	return out
}
