package sources

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

var sampleRows = [][]string{
	{"Volcano Name", "Country", "Latitude", "Longitude", "Elevation (m)", "TypeCategory", "Last Known Eruption"},
	{"Fuji", "Japan", "35.3606", "138.7274", "3776", "Stratovolcano", "1707 CE"},
	{"Kilauea", "United States", "19.421", "-155.287", "1222", "Shield", "2023 CE"},
	{"Unknown Seamount", "Undersea Features", "", "-120.5", "-1500"},
}

const sampleCSV = "\ufeffVolcano Name,Country,Latitude,Longitude,Elevation (m),TypeCategory,Last Known Eruption\n" +
	"Fuji,Japan,35.3606,138.7274,3776,Stratovolcano,1707 CE\n" +
	"Kilauea,United States,19.421,-155.287,1222,Shield,2023 CE\n" +
	"Unknown Seamount,Undersea Features,,-120.5,-1500\n"

func checkSampleTable(t *testing.T, tbl *Table) {
	t.Helper()
	if len(tbl.Header) != len(sampleRows[0]) {
		t.Fatalf("Header = %q; want %q", tbl.Header, sampleRows[0])
	}
	for i, h := range sampleRows[0] {
		if tbl.Header[i] != h {
			t.Errorf("Header[%d] = %q; want %q", i, tbl.Header[i], h)
		}
	}
	if len(tbl.Rows) != 3 {
		t.Fatalf("got %d rows; want 3", len(tbl.Rows))
	}
	if got := tbl.Cell(0, tbl.Index("Volcano Name")); got != "Fuji" {
		t.Errorf("Cell(0, Volcano Name) = %q; want Fuji", got)
	}
	if got := tbl.Cell(1, tbl.Index("Longitude")); got != "-155.287" {
		t.Errorf("Cell(1, Longitude) = %q; want -155.287", got)
	}
	// Short row: trailing cells read as empty.
	if got := tbl.Cell(2, tbl.Index("Last Known Eruption")); got != "" {
		t.Errorf("Cell(2, Last Known Eruption) = %q; want empty", got)
	}
	if got := tbl.Cell(2, tbl.Index("Latitude")); got != "" {
		t.Errorf("Cell(2, Latitude) = %q; want empty", got)
	}
}

func TestReadCSV(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	checkSampleTable(t, tbl)
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyTable) {
		t.Errorf("ReadCSV(\"\") error = %v; want ErrEmptyTable", err)
	}
}

func TestIndexMissingColumn(t *testing.T) {
	tbl := &Table{Header: []string{"a", "b"}}
	if i := tbl.Index("c"); i != -1 {
		t.Errorf("Index(c) = %d; want -1", i)
	}
	if i := tbl.Index("b"); i != 1 {
		t.Errorf("Index(b) = %d; want 1", i)
	}
}

func sampleWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range sampleRows {
		cells := make([]interface{}, len(row))
		for j, c := range row {
			cells[j] = c
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &cells); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf
}

func TestReadXLSX(t *testing.T) {
	tbl, err := ReadXLSX(sampleWorkbook(t))
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}
	checkSampleTable(t, tbl)
}

func TestOpenTable(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("Failed to write csv: %v", err)
	}
	xlsxPath := filepath.Join(dir, "data.xlsx")
	if err := os.WriteFile(xlsxPath, sampleWorkbook(t).Bytes(), 0o644); err != nil {
		t.Fatalf("Failed to write xlsx: %v", err)
	}

	for _, path := range []string{csvPath, xlsxPath} {
		tbl, err := OpenTable(path)
		if err != nil {
			t.Fatalf("OpenTable(%s) failed: %v", path, err)
		}
		checkSampleTable(t, tbl)
	}

	if _, err := OpenTable(filepath.Join(dir, "missing.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("OpenTable(missing) error = %v; want os.ErrNotExist", err)
	}
}
