// Package model defines the data structures shared by every stage of rosterscan.
//
// This package contains the following main types:
//   - PageRequest: The validated caller input (page number and search query)
//   - Record: One roster row with its nine fixed columns
//   - Anchor: A pagination link copied out of the parsed document
//   - PageResult: The aggregate outcome of fetching one listing page
//   - PageWindow: The visible range of page numbers in a pager
//
// Design decision: We keep the models in their own package so that the
// extractor, the pagination resolver, the pipeline and the report writers can
// share them without import cycles.
//
// All values are request-scoped. None of them holds a reference into the
// parsed HTML tree, so the document can be discarded as soon as extraction
// finishes.
package model
