package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/nao1215/rosterscan/internal/model"
)

// Default marker classes of the listing markup.
const (
	// RecordsTableClass marks the <table> holding the roster rows.
	RecordsTableClass = "players"

	// PaginationClass marks the element whose <a> children form the pager.
	PaginationClass = "pages"
)

// Markers names the classes used to locate the two structural regions.
type Markers struct {
	// Table is the class token of the records table.
	Table string `yaml:"table"`

	// Pagination is the class token of the pagination container.
	Pagination string `yaml:"pagination"`
}

// DefaultMarkers returns the markers used by the listing endpoint.
func DefaultMarkers() Markers {
	return Markers{
		Table:      RecordsTableClass,
		Pagination: PaginationClass,
	}
}

// StructuralDocument is a parsed listing page.
type StructuralDocument interface {
	// FindRecordsTable returns the first table carrying the records marker,
	// or ErrTableNotFound.
	FindRecordsTable() (*Table, error)

	// FindPaginationLinks returns the anchors that are direct children of the
	// pagination container, in document order. The result may be empty.
	FindPaginationLinks() []model.Anchor
}

// Table is a snapshot of the records table.
// Rows holds one entry per <tr>, each listing the text of its <td> cells.
type Table struct {
	Rows [][]string
}

// document implements StructuralDocument on top of goquery.
type document struct {
	doc     *goquery.Document
	markers Markers
}

// Parse parses markup with the default markers.
func Parse(markup string) (StructuralDocument, error) {
	return ParseWithMarkers(markup, DefaultMarkers())
}

// ParseWithMarkers parses markup and locates regions with the given markers.
// Empty marker fields fall back to the defaults.
func ParseWithMarkers(markup string, markers Markers) (StructuralDocument, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, &ExtractionError{Reason: fmt.Sprintf("failed to parse markup: %v", err)}
	}

	defaults := DefaultMarkers()
	if markers.Table == "" {
		markers.Table = defaults.Table
	}
	if markers.Pagination == "" {
		markers.Pagination = defaults.Pagination
	}

	return &document{
		doc:     goquery.NewDocumentFromNode(root),
		markers: markers,
	}, nil
}

// FindRecordsTable implements StructuralDocument.
func (d *document) FindRecordsTable() (*Table, error) {
	table := d.doc.Find("table").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.HasClass(d.markers.Table)
	}).First()
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	// Rows and cells are collected from all descendants, including header
	// rows; MapRows filters on cell count.
	rows := table.Find("tr")
	snapshot := &Table{Rows: make([][]string, 0, rows.Length())}
	rows.Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		texts := make([]string, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			texts = append(texts, cell.Text())
		})
		snapshot.Rows = append(snapshot.Rows, texts)
	})

	return snapshot, nil
}

// FindPaginationLinks implements StructuralDocument.
func (d *document) FindPaginationLinks() []model.Anchor {
	containers := d.doc.Find("[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.HasClass(d.markers.Pagination)
	})

	links := make([]model.Anchor, 0)
	containers.ChildrenFiltered("a").Each(func(_ int, a *goquery.Selection) {
		links = append(links, model.Anchor{
			Text: a.Text(),
			Href: getAttr(a.Get(0), "href"),
		})
	})
	return links
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
