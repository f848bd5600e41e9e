// Package report renders a PageResult for terminals and files.
//
// This package contains writers for different output formats:
//   - SimpleWriter: human-readable text with aligned columns and a pager line
//   - JSONWriter: the PageResult as JSON, optionally wrapped with navigation
//   - MarkdownWriter: GitHub Flavored Markdown tables
//
// Writers trim surrounding whitespace from every record field before
// display; the PageResult itself carries the raw cell text. HTML escaping is
// the job of an HTML presentation layer and is not done here.
package report
