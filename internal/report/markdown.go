package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nao1215/rosterscan/internal/model"
	"github.com/nao1215/rosterscan/internal/paging"
)

// MarkdownWriter outputs results in GitHub Flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the result in Markdown format.
func (w *MarkdownWriter) Write(result *model.PageResult) (int, error) {
	md := markdown.NewMarkdown(w.output)
	nav := paging.ForResult(result)

	w.writeHeader(md, result)
	w.writeRecords(md, result)
	w.writePager(md, nav)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the page information table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.PageResult) {
	md.H1("Roster Page")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Page", strconv.Itoa(result.CurrentPage) + " of " + strconv.Itoa(result.TotalPages)},
			{"Search", escapeCell(searchLabel(result.SearchQuery))},
			{"Records", strconv.Itoa(len(result.Records))},
		},
	})
	md.PlainText("")

	if result.Failed() {
		md.Cautionf("Failed to fetch the page: %s", escapeCell(result.Error))
		md.PlainText("")
	}

	if nav := paging.ForResult(result); !result.Failed() && !nav.Window.Contains(nav.Current) {
		md.Warningf("Page %d is past the last page (%d).", nav.Current, nav.Total)
		md.PlainText("")
	}
}

// writeRecords writes the records table.
func (w *MarkdownWriter) writeRecords(md *markdown.Markdown, result *model.PageResult) {
	md.H2("Records")
	md.PlainText("")

	if len(result.Records) == 0 {
		md.Note("No records on this page.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(result.Records))
	for i, r := range result.Records {
		fields := displayFields(r)
		for j, f := range fields {
			fields[j] = escapeCell(f)
		}
		rows[i] = fields
	}

	md.Table(markdown.TableSet{
		Header: model.RecordColumns[:],
		Rows:   rows,
	})
	md.PlainText("")
}

// writePager writes the visible page numbers, the current one in bold.
func (w *MarkdownWriter) writePager(md *markdown.Markdown, nav paging.Navigation) {
	if !nav.ShowPager() {
		return
	}

	md.H2("Pages")
	md.PlainText("")

	items := make([]string, 0, nav.Window.Len()+2)
	if nav.HasPrevious() {
		items = append(items, "« "+strconv.Itoa(nav.Previous()))
	}
	for _, p := range nav.Pages() {
		label := strconv.Itoa(p)
		if p == nav.Current {
			label = "**" + label + "**"
		}
		items = append(items, label)
	}
	if nav.HasNext() {
		items = append(items, strconv.Itoa(nav.Next())+" »")
	}

	md.PlainText(strings.Join(items, " | "))
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated by [rosterscan](https://github.com/nao1215/rosterscan)*")
}

// escapeCell keeps pipes and line breaks from breaking a table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
