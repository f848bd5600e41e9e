package extract

import "github.com/nao1215/rosterscan/internal/model"

// MapRows converts table rows into records, preserving document order.
//
// A row qualifies when it has at least model.RecordArity cells; shorter rows
// (header rows built from <th>, spacer rows, footers) are skipped without
// error. A nil table yields an empty slice.
func MapRows(table *Table) []model.Record {
	records := make([]model.Record, 0)
	if table == nil {
		return records
	}

	for _, cells := range table.Rows {
		record, ok := model.NewRecord(cells)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}
