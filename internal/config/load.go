package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configFileNames are checked in order in every directory.
var configFileNames = []string{".textstat.yml", ".textstat.yaml", ".textstat.toml"}

// DefaultFileName is the file written by "textstat init".
const DefaultFileName = ".textstat.yml"

// Load reads and parses a config file at the given path. Files ending in
// .toml are decoded as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// config file. It stops searching when it encounters a .git directory
// (the repository root) or reaches the filesystem root.
// Returns the path to the config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Defaults returns a Config with every field set to its built-in value.
func Defaults() *Config {
	top := DefaultTop
	color := true
	jobs := 0
	return &Config{
		Top:        &top,
		Format:     FormatText,
		Color:      &color,
		Markdown:   MarkdownAuto,
		Jobs:       &jobs,
		Extensions: append([]string(nil), DefaultExtensions...),
	}
}

// Marshal renders cfg as YAML. It is consumed by "textstat init".
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
