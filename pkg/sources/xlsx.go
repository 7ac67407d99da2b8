package sources

import (
	"io"
	"log"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the first sheet of a workbook. The first row is the header.
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing workbook: %v", err)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyTable
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return newTable(rows)
}
