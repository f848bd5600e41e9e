package paging

import (
	"strconv"
	"strings"

	"github.com/nao1215/rosterscan/internal/model"
)

// Resolver derives the total page count from pagination links.
type Resolver interface {
	// Resolve returns the total number of pages, at least 1.
	Resolve(links []model.Anchor) int
}

// SecondToLast reads the total page count from the second-to-last anchor.
//
// It assumes the pager layout "... | <last page number> | Next »", where the
// final anchor is a "next" control and the one before it is the last page.
// This is a property of one specific pager widget, not a general algorithm.
// Any other layout (no "next" anchor, trailing "last »" control, ellipsis in
// that slot) produces an underestimate, usually 1. Replace the Resolver when
// the remote markup changes.
type SecondToLast struct{}

// Resolve implements Resolver.
func (SecondToLast) Resolve(links []model.Anchor) int {
	if len(links) < 2 {
		return 1
	}
	return parsePageNumber(links[len(links)-2].Text)
}

// parsePageNumber parses anchor text as a positive page number.
// Anything else yields 1.
func parsePageNumber(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
