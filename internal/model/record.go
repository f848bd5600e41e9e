package model

// RecordArity is the number of table cells a row needs to become a Record.
const RecordArity = 9

// RecordColumns names the Record fields in cell order.
// Writers use it as the table header.
var RecordColumns = [RecordArity]string{
	"ID",
	"Position",
	"Name",
	"Team",
	"Nationality",
	"Height",
	"Weight",
	"Age",
	"Rating",
}

// Record is one roster entry extracted from a table row.
//
// Each field holds the raw text content of one cell. Whitespace is not
// trimmed here; presentation code trims (and escapes, when rendering HTML)
// before display.
type Record struct {
	// ID is the entity identifier (cell 0).
	ID string `json:"id"`

	// Position is the playing position (cell 1).
	Position string `json:"position"`

	// Name is the entity name (cell 2).
	Name string `json:"name"`

	// Team is the affiliation (cell 3).
	Team string `json:"team"`

	// Nationality is cell 4.
	Nationality string `json:"nationality"`

	// Height is cell 5.
	Height string `json:"height"`

	// Weight is cell 6.
	Weight string `json:"weight"`

	// Age is cell 7.
	Age string `json:"age"`

	// Rating is the overall rating (cell 8).
	Rating string `json:"rating"`
}

// NewRecord builds a Record from the first RecordArity cells.
// It returns false when fewer cells are given. Extra cells are ignored.
func NewRecord(cells []string) (Record, bool) {
	if len(cells) < RecordArity {
		return Record{}, false
	}
	return Record{
		ID:          cells[0],
		Position:    cells[1],
		Name:        cells[2],
		Team:        cells[3],
		Nationality: cells[4],
		Height:      cells[5],
		Weight:      cells[6],
		Age:         cells[7],
		Rating:      cells[8],
	}, true
}

// Fields returns the record values in column order.
func (r Record) Fields() []string {
	return []string{
		r.ID,
		r.Position,
		r.Name,
		r.Team,
		r.Nationality,
		r.Height,
		r.Weight,
		r.Age,
		r.Rating,
	}
}

// Anchor is a pagination link taken from the listing page.
type Anchor struct {
	// Text is the full text content of the <a> element.
	Text string `json:"text"`

	// Href is the raw href attribute, if any.
	Href string `json:"href,omitempty"`
}
