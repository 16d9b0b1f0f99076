package config

import (
	"github.com/gobwas/glob"
)

// Merge merges a loaded config on top of defaults. Scalar fields set in
// loaded override the defaults; unset fields keep their default value.
// Ignore and Overrides come from the loaded config only.
func Merge(defaults, loaded *Config) *Config {
	out := *defaults
	out.Extensions = append([]string(nil), defaults.Extensions...)
	out.Ignore = nil
	out.Overrides = nil

	if loaded == nil {
		return &out
	}

	if loaded.Top != nil {
		out.Top = loaded.Top
	}
	if loaded.Format != "" {
		out.Format = loaded.Format
	}
	if loaded.Color != nil {
		out.Color = loaded.Color
	}
	if loaded.Markdown != "" {
		out.Markdown = loaded.Markdown
	}
	if loaded.Jobs != nil {
		out.Jobs = loaded.Jobs
	}
	if loaded.FailUnder != nil {
		out.FailUnder = loaded.FailUnder
	}
	if len(loaded.Extensions) > 0 {
		out.Extensions = append([]string(nil), loaded.Extensions...)
	}
	out.Ignore = loaded.Ignore
	out.Overrides = loaded.Overrides

	return &out
}

// FileSettings is the effective per-file configuration.
type FileSettings struct {
	Top      int
	Markdown MarkdownMode
}

// Effective returns the settings for a given file path. It starts with the
// top-level values and then applies each override whose file patterns
// match filePath, in order. Later overrides take precedence. Pinned
// values are applied last.
func Effective(cfg *Config, filePath string) FileSettings {
	s := FileSettings{Top: cfg.TopN(), Markdown: cfg.Markdown}
	if s.Markdown == "" {
		s.Markdown = MarkdownAuto
	}

	for _, o := range cfg.Overrides {
		if !matchesAny(o.Files, filePath) {
			continue
		}
		if o.Top != nil {
			s.Top = *o.Top
		}
		if o.Markdown != "" {
			s.Markdown = o.Markdown
		}
	}

	if cfg.Pinned.Top != nil {
		s.Top = *cfg.Pinned.Top
	}
	if cfg.Pinned.Markdown != "" {
		s.Markdown = cfg.Pinned.Markdown
	}
	return s
}

// matchesAny returns true if filePath matches any of the given glob patterns.
func matchesAny(patterns []string, filePath string) bool {
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			// Skip invalid patterns silently.
			continue
		}
		if g.Match(filePath) {
			return true
		}
	}
	return false
}
