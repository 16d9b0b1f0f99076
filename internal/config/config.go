package config

import (
	"fmt"
	"runtime"

	"github.com/gobwas/glob"
)

// MarkdownMode controls whether Markdown input is reduced to prose before
// analysis.
type MarkdownMode string

const (
	// MarkdownAuto treats .md and .markdown files as Markdown.
	MarkdownAuto MarkdownMode = "auto"
	// MarkdownAlways treats every input as Markdown.
	MarkdownAlways MarkdownMode = "always"
	// MarkdownNever analyzes every input as plain text.
	MarkdownNever MarkdownMode = "never"
)

// Output formats accepted by Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultTop is the default frequency-table size.
const DefaultTop = 10

// DefaultExtensions are the file extensions collected when walking
// directories.
var DefaultExtensions = []string{".txt", ".text", ".md", ".markdown"}

// Config is the top-level configuration.
type Config struct {
	Top        *int         `yaml:"top,omitempty" toml:"top"`
	Format     string       `yaml:"format,omitempty" toml:"format"`
	Color      *bool        `yaml:"color,omitempty" toml:"color"`
	Markdown   MarkdownMode `yaml:"markdown,omitempty" toml:"markdown"`
	Jobs       *int         `yaml:"jobs,omitempty" toml:"jobs"`
	FailUnder  *float64     `yaml:"fail-under,omitempty" toml:"fail-under"`
	Extensions []string     `yaml:"extensions,omitempty" toml:"extensions"`
	Ignore     []string     `yaml:"ignore,omitempty" toml:"ignore"`
	Overrides  []Override   `yaml:"overrides,omitempty" toml:"overrides"`

	// Pinned holds values set on the command line. They win over the
	// top-level fields and every matching override.
	Pinned Pinned `yaml:"-" toml:"-"`
}

// Pinned are per-file settings fixed by command-line flags.
type Pinned struct {
	Top      *int
	Markdown MarkdownMode
}

// Override applies settings to files matching glob patterns.
type Override struct {
	Files    []string     `yaml:"files" toml:"files"`
	Top      *int         `yaml:"top,omitempty" toml:"top"`
	Markdown MarkdownMode `yaml:"markdown,omitempty" toml:"markdown"`
}

// TopN returns the configured frequency-table size.
func (c *Config) TopN() int {
	if c.Top == nil {
		return DefaultTop
	}
	return *c.Top
}

// ColorEnabled reports whether colored output is enabled.
// Defaults to true if not set.
func (c *Config) ColorEnabled() bool {
	if c.Color == nil {
		return true
	}
	return *c.Color
}

// JobCount returns the number of files analyzed in parallel.
// Zero or unset means GOMAXPROCS.
func (c *Config) JobCount() int {
	if c.Jobs == nil || *c.Jobs <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return *c.Jobs
}

// Validate checks field values and glob patterns.
func (c *Config) Validate() error {
	switch c.Format {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (supported: text, json)", c.Format)
	}
	if err := c.Markdown.validate(); err != nil {
		return err
	}
	if c.Top != nil && *c.Top < 0 {
		return fmt.Errorf("top must be >= 0, got %d", *c.Top)
	}
	if c.Jobs != nil && *c.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0, got %d", *c.Jobs)
	}
	if c.FailUnder != nil && (*c.FailUnder < 0 || *c.FailUnder > 100) {
		return fmt.Errorf("fail-under must be between 0 and 100, got %g", *c.FailUnder)
	}
	for _, p := range c.Ignore {
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
	}
	for i, o := range c.Overrides {
		if err := o.Markdown.validate(); err != nil {
			return fmt.Errorf("overrides[%d]: %w", i, err)
		}
		if o.Top != nil && *o.Top < 0 {
			return fmt.Errorf("overrides[%d]: top must be >= 0, got %d", i, *o.Top)
		}
		for _, p := range o.Files {
			if _, err := glob.Compile(p); err != nil {
				return fmt.Errorf("overrides[%d]: invalid pattern %q: %w", i, p, err)
			}
		}
	}
	return nil
}

// ParseMarkdownMode parses a user-provided markdown mode.
func ParseMarkdownMode(raw string) (MarkdownMode, error) {
	m := MarkdownMode(raw)
	if m == "" {
		return MarkdownAuto, nil
	}
	if err := m.validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m MarkdownMode) validate() error {
	switch m {
	case "", MarkdownAuto, MarkdownAlways, MarkdownNever:
		return nil
	default:
		return fmt.Errorf("unknown markdown mode %q (supported: auto, always, never)", string(m))
	}
}
