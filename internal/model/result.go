package model

// DefaultGroupSize is the number of page links shown in one pager group.
const DefaultGroupSize = 10

// PageRequest is the caller input for one listing fetch.
type PageRequest struct {
	// Page is the 1-based page number to fetch.
	Page int `json:"page"`

	// SearchQuery is free text. Empty means no filter.
	SearchQuery string `json:"search_query"`
}

// NewPageRequest builds a PageRequest, clamping page to at least 1.
func NewPageRequest(page int, searchQuery string) PageRequest {
	if page < 1 {
		page = 1
	}
	return PageRequest{
		Page:        page,
		SearchQuery: searchQuery,
	}
}

// PageResult is the outcome of fetching one listing page.
//
// Exactly one of two shapes holds: Records populated with an empty Error, or
// Error set with no Records. Pagination fields are always defined so a pager
// can be rendered even after a failure.
type PageResult struct {
	// Records are the extracted rows in document order.
	Records []Record `json:"records"`

	// CurrentPage echoes the requested page. It is never clamped to TotalPages.
	CurrentPage int `json:"current_page"`

	// TotalPages is the number of pages reported by the listing (at least 1).
	TotalPages int `json:"total_pages"`

	// SearchQuery echoes the requested search text.
	SearchQuery string `json:"search_query"`

	// Error is a human-readable failure message.
	Error string `json:"error,omitempty"`
}

// NewPageResult builds a successful result.
func NewPageResult(req PageRequest, records []Record, totalPages int) *PageResult {
	if records == nil {
		records = make([]Record, 0)
	}
	if totalPages < 1 {
		totalPages = 1
	}
	return &PageResult{
		Records:     records,
		CurrentPage: req.Page,
		TotalPages:  totalPages,
		SearchQuery: req.SearchQuery,
	}
}

// NewErrorResult builds the failure shape of PageResult.
// Records are empty and TotalPages falls back to 1.
func NewErrorResult(req PageRequest, message string) *PageResult {
	return &PageResult{
		Records:     make([]Record, 0),
		CurrentPage: req.Page,
		TotalPages:  1,
		SearchQuery: req.SearchQuery,
		Error:       message,
	}
}

// Failed reports whether the result carries an error instead of records.
func (r *PageResult) Failed() bool {
	return r.Error != ""
}

// PageWindow is the contiguous range of page numbers shown in a pager.
type PageWindow struct {
	// StartPage is the first visible page number.
	StartPage int `json:"start_page"`

	// EndPage is the last visible page number.
	EndPage int `json:"end_page"`

	// GroupSize is the number of pages per group.
	GroupSize int `json:"group_size"`
}

// Len returns the number of visible pages.
func (w PageWindow) Len() int {
	if w.EndPage < w.StartPage {
		return 0
	}
	return w.EndPage - w.StartPage + 1
}

// Contains reports whether page is inside the window.
func (w PageWindow) Contains(page int) bool {
	return page >= w.StartPage && page <= w.EndPage
}
