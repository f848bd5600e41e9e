package paging

import "github.com/nao1215/rosterscan/internal/model"

// Window computes the visible page range for current out of total pages,
// grouping page links in blocks of model.DefaultGroupSize.
func Window(current, total int) model.PageWindow {
	return WindowWithGroupSize(current, total, model.DefaultGroupSize)
}

// WindowWithGroupSize computes the visible page range with a custom group size.
//
// The group is ceil(current/groupSize); the window starts at the first page
// of that group and ends groupSize-1 pages later, capped at total. When
// current lies past the last group, the window is anchored on the group that
// holds total so that 1 <= StartPage <= EndPage <= total always holds.
// current itself is not clamped by callers; only the window is.
func WindowWithGroupSize(current, total, groupSize int) model.PageWindow {
	if groupSize < 1 {
		groupSize = model.DefaultGroupSize
	}
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}

	start := groupStart(current, groupSize)
	if start > total {
		start = groupStart(total, groupSize)
	}

	return model.PageWindow{
		StartPage: start,
		EndPage:   start + min(groupSize-1, total-start),
		GroupSize: groupSize,
	}
}

// groupStart returns the first page of the group containing page.
// It does not overflow for any page >= 1.
func groupStart(page, groupSize int) int {
	return (page-1)/groupSize*groupSize + 1
}
