package sources

import (
	"encoding/csv"
	"io"
)

// ReadCSV reads a comma separated table with a header row.
// Rows may have any number of fields.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return newTable(rows)
}
