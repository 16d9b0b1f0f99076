// Package output renders analysis reports and metric tables.
package output

import (
	"fmt"
	"io"

	"github.com/jeduden/textstat/internal/engine"
)

// Formatter defines the interface for writing file reports.
type Formatter interface {
	Format(w io.Writer, files []engine.FileReport) error
}

// New returns the formatter for format ("text" or "json").
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "", "text":
		return &TextFormatter{Color: color}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (supported: text, json)", format)
	}
}
