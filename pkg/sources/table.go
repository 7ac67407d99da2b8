// Package sources reads the files the viewer is launched with: the volcano
// table and the optional GeoJSON basemap.
package sources

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyTable is returned when a file has no header row.
var ErrEmptyTable = errors.New("table has no header row")

// Table is a header row plus data rows, exactly as read from the file.
type Table struct {
	Header []string
	Rows   [][]string
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(column string) int {
	for i, h := range t.Header {
		if h == column {
			return i
		}
	}
	return -1
}

// Cell returns the value at row/col. Short rows read as empty cells.
func (t *Table) Cell(row, col int) string {
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// OpenTable reads path as a spreadsheet when the extension says so and as
// CSV otherwise.
func OpenTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	var t *Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		t, err = ReadXLSX(f)
	default:
		t, err = ReadCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

func newTable(rows [][]string) (*Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyTable
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	return &Table{Header: header, Rows: rows[1:]}, nil
}
