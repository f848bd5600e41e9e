package report

import (
	"io"
	"strings"

	"github.com/nao1215/rosterscan/internal/model"
)

// Writer defines the interface for result output.
type Writer interface {
	// Write outputs the result to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(result *model.PageResult) (int, error)
}

// MultiWriter writes to multiple Writers in order.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the result to all configured Writers.
// Returns the total bytes written and stops on the first error.
func (m *MultiWriter) Write(result *model.PageResult) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for result writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// displayFields returns the record fields trimmed for display.
func displayFields(r model.Record) []string {
	fields := r.Fields()
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// searchLabel renders the search query for headers.
func searchLabel(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return "(none)"
	}
	return query
}
