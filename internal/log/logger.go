// Package log provides the verbose diagnostic logger used by the CLI.
package log

import (
	"io"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

const prefix = "textstat"

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer (typically stderr) through a
// charm logger without timestamps.
type Logger struct {
	Enabled bool
	W       io.Writer

	once sync.Once
	cl   *charmlog.Logger
}

func (l *Logger) logger() *charmlog.Logger {
	l.once.Do(func() {
		l.cl = charmlog.NewWithOptions(l.W, charmlog.Options{
			Prefix: prefix,
			Level:  charmlog.DebugLevel,
		})
	})
	return l.cl
}

// Printf writes a formatted message to W when Enabled is true.
// It is a no-op when Enabled is false.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	l.logger().Infof(format, args...)
}

// Debug writes msg with key/value pairs when Enabled is true.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if l == nil || !l.Enabled {
		return
	}
	l.logger().Debug(msg, keyvals...)
}

// Warn writes msg with key/value pairs when Enabled is true.
func (l *Logger) Warn(msg string, keyvals ...any) {
	if l == nil || !l.Enabled {
		return
	}
	l.logger().Warn(msg, keyvals...)
}
