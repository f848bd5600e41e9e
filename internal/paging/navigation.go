package paging

import (
	"math"

	"github.com/nao1215/rosterscan/internal/model"
)

// Navigation is the pager state a writer needs to render page links.
type Navigation struct {
	// Current is the requested page, unclamped.
	Current int `json:"current"`

	// Total is the total number of pages.
	Total int `json:"total"`

	// Window is the visible page range.
	Window model.PageWindow `json:"window"`
}

// NewNavigation builds the pager state for current out of total pages.
func NewNavigation(current, total int) Navigation {
	if total < 1 {
		total = 1
	}
	return Navigation{
		Current: current,
		Total:   total,
		Window:  Window(current, total),
	}
}

// ForResult builds the pager state for a PageResult.
func ForResult(result *model.PageResult) Navigation {
	return NewNavigation(result.CurrentPage, result.TotalPages)
}

// ShowPager reports whether there is more than one page to navigate.
func (n Navigation) ShowPager() bool {
	return n.Total > 1
}

// HasPrevious reports whether a "previous" link applies.
func (n Navigation) HasPrevious() bool {
	return n.Current > 1
}

// HasNext reports whether a "next" link applies.
func (n Navigation) HasNext() bool {
	return n.Current < n.Total
}

// Previous returns the previous page number.
func (n Navigation) Previous() int {
	return n.Current - 1
}

// Next returns the next page number, saturating at math.MaxInt.
func (n Navigation) Next() int {
	if n.Current == math.MaxInt {
		return n.Current
	}
	return n.Current + 1
}

// Pages lists the page numbers inside the window.
func (n Navigation) Pages() []int {
	pages := make([]int, n.Window.Len())
	for i := range pages {
		pages[i] = n.Window.StartPage + i
	}
	return pages
}
