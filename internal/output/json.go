package output

import (
	"io"

	"github.com/jeduden/textstat/internal/engine"
)

// JSONFormatter outputs reports as a JSON array of {path, report} objects.
type JSONFormatter struct{}

// Format writes files as a pretty-printed JSON array.
// An empty slice produces [].
func (f *JSONFormatter) Format(w io.Writer, files []engine.FileReport) error {
	if files == nil {
		files = []engine.FileReport{}
	}
	return encodeJSON(w, files)
}
