// Package volcanoengine turns a volcano table into an interactive scatter
// plot: it loads records, maps them to markers for the current window size
// and draws them every frame.
package volcanoengine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sudorandom/volcano-map/pkg/sources"
	"github.com/sudorandom/volcano-map/pkg/utils"
)

// Column names expected in the input table.
const (
	ColumnLongitude    = "Longitude"
	ColumnLatitude     = "Latitude"
	ColumnElevation    = "Elevation (m)"
	ColumnType         = "TypeCategory"
	ColumnName         = "Volcano Name"
	ColumnCountry      = "Country"
	ColumnLastEruption = "Last Known Eruption"
)

// ErrMissingColumn is returned when a numeric column is absent from the table.
var ErrMissingColumn = errors.New("missing column")

// Record is one volcano as read from the table. It is never modified after
// load.
type Record struct {
	Name         string
	TypeLabel    string
	Country      string
	Elevation    float64
	LastEruption string
	Longitude    float64
	Latitude     float64
}

// Dataset holds the parsed records in table order together with the extrema
// used for every coordinate mapping. The extrema are fixed at load time.
type Dataset struct {
	Records []Record

	Lon, Lat, Elev utils.Extent

	// Skipped counts rows dropped for a non-numeric coordinate or elevation.
	Skipped int
}

// NewDataset parses every row of t. Rows whose latitude, longitude or
// elevation is not a number are skipped. Text columns may be absent and read
// as empty strings.
func NewDataset(t *sources.Table) (*Dataset, error) {
	lonCol, latCol, elevCol := t.Index(ColumnLongitude), t.Index(ColumnLatitude), t.Index(ColumnElevation)
	for _, c := range []struct {
		name string
		idx  int
	}{{ColumnLongitude, lonCol}, {ColumnLatitude, latCol}, {ColumnElevation, elevCol}} {
		if c.idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, c.name)
		}
	}
	nameCol, typeCol := t.Index(ColumnName), t.Index(ColumnType)
	countryCol, eruptionCol := t.Index(ColumnCountry), t.Index(ColumnLastEruption)

	ds := &Dataset{Records: make([]Record, 0, len(t.Rows))}
	for row := range t.Rows {
		lat, okLat := parseNumber(t.Cell(row, latCol))
		lon, okLon := parseNumber(t.Cell(row, lonCol))
		elev, okElev := parseNumber(t.Cell(row, elevCol))
		if !okLat || !okLon || !okElev {
			ds.Skipped++
			continue
		}

		ds.Records = append(ds.Records, Record{
			Name:         t.Cell(row, nameCol),
			TypeLabel:    t.Cell(row, typeCol),
			Country:      t.Cell(row, countryCol),
			Elevation:    elev,
			LastEruption: t.Cell(row, eruptionCol),
			Longitude:    lon,
			Latitude:     lat,
		})
		ds.Lon.Include(lon)
		ds.Lat.Include(lat)
		ds.Elev.Include(elev)
	}
	return ds, nil
}

// parseNumber accepts finite decimal numbers only.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
