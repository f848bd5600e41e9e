// Package extract turns listing markup into library-neutral values.
//
// # Components
//
//   - StructuralDocument: a parsed page that can locate the records table
//     and the pagination links
//   - Table: a snapshot of the records table as rows of cell text
//   - MapRows: converts qualifying table rows into model.Record values
//
// Design decision: We parse with golang.org/x/net/html and query with
// goquery selectors, but nothing outside this package sees either library.
// FindRecordsTable copies cell text into a Table and FindPaginationLinks
// copies anchors into model.Anchor, so the tree can be dropped as soon as the
// two lookups return. Another HTML library can back StructuralDocument
// without touching the rest of the pipeline.
//
// # Leniency
//
// The HTML5 parsing algorithm recovers from unclosed and misnested tags the
// same way browsers do, so malformed markup never fails parsing. The only
// terminal extraction failure is a missing records table.
package extract
