package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/rosterscan/internal/model"
	"github.com/nao1215/rosterscan/internal/paging"
)

// JSONWriter outputs results in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the PageResult in JSON format, fields untouched.
func (w *JSONWriter) Write(result *model.PageResult) (int, error) {
	return w.writeJSON(result)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}

// JSONReport wraps a PageResult with the tool version and pager state.
type JSONReport struct {
	// Version is the rosterscan version that produced the result.
	Version string `json:"version"`

	// Result is the page result.
	Result *model.PageResult `json:"result"`

	// Navigation is the pager state derived from Result.
	Navigation paging.Navigation `json:"navigation"`
}

// NewJSONReport creates a JSONReport for result.
func NewJSONReport(result *model.PageResult, version string) *JSONReport {
	return &JSONReport{
		Version:    version,
		Result:     result,
		Navigation: paging.ForResult(result),
	}
}

// FullJSONWriter outputs results wrapped in a JSONReport.
type FullJSONWriter struct {
	*JSONWriter

	version string
}

// NewFullJSONWriter creates a writer for wrapped results.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// Write outputs the result wrapped with version and navigation.
func (w *FullJSONWriter) Write(result *model.PageResult) (int, error) {
	return w.writeJSON(NewJSONReport(result, w.version))
}
