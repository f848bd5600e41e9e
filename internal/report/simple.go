package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nao1215/rosterscan/internal/model"
	"github.com/nao1215/rosterscan/internal/paging"
)

// ruleWidth is the width of the section separators.
const ruleWidth = 70

// SimpleWriter outputs human-readable text.
// Columns are padded by display width so that names in wide scripts stay
// aligned in a terminal.
type SimpleWriter struct {
	baseWriter

	// showPager controls whether the page selector line is printed.
	showPager bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithPager toggles the page selector line. It is on by default.
func WithPager(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showPager = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showPager:  true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the result in human-readable format.
func (w *SimpleWriter) Write(result *model.PageResult) (int, error) {
	var sb strings.Builder
	nav := paging.ForResult(result)

	w.writeHeader(&sb, result)
	w.writeRecords(&sb, result)
	if w.showPager {
		w.writePager(&sb, nav)
	}
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")

	return io.WriteString(w.output, sb.String())
}

// writeHeader writes the page information block.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, result *model.PageResult) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("                            ROSTER PAGE\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Page:    %d of %d\n", result.CurrentPage, result.TotalPages)
	fmt.Fprintf(sb, "Search:  %s\n", searchLabel(result.SearchQuery))
	if result.Failed() {
		fmt.Fprintf(sb, "Status:  ERROR - %s\n", result.Error)
	} else {
		fmt.Fprintf(sb, "Status:  %d record(s)\n", len(result.Records))
	}
	if nav := paging.ForResult(result); !result.Failed() && !nav.Window.Contains(nav.Current) {
		fmt.Fprintf(sb, "Note:    page %d is past the last page\n", nav.Current)
	}
	sb.WriteString("\n")
}

// writeRecords writes the records as aligned columns.
func (w *SimpleWriter) writeRecords(sb *strings.Builder, result *model.PageResult) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("RECORDS\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n\n")

	if len(result.Records) == 0 {
		sb.WriteString("  No records\n\n")
		return
	}

	rows := make([][]string, 0, len(result.Records)+1)
	rows = append(rows, model.RecordColumns[:])
	for _, r := range result.Records {
		rows = append(rows, displayFields(r))
	}

	widths := make([]int, model.RecordArity)
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for _, row := range rows {
		sb.WriteString(" ")
		for i, cell := range row {
			sb.WriteString(" ")
			if i == len(row)-1 {
				sb.WriteString(cell)
				continue
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// writePager writes the page selector, marking the current page with brackets.
func (w *SimpleWriter) writePager(sb *strings.Builder, nav paging.Navigation) {
	if !nav.ShowPager() {
		return
	}

	items := make([]string, 0, nav.Window.Len()+2)
	if nav.HasPrevious() {
		items = append(items, "«")
	}
	for _, p := range nav.Pages() {
		label := strconv.Itoa(p)
		if p == nav.Current {
			label = "[" + label + "]"
		}
		items = append(items, label)
	}
	if nav.HasNext() {
		items = append(items, "»")
	}

	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "PAGES  %s\n", strings.Join(items, " "))
}
