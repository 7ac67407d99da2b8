package sources

import (
	"fmt"
	"os"

	geojson "github.com/paulmach/go.geojson"
)

// Polygon is a list of rings of [lon, lat] positions. The first ring is the
// outer boundary, the rest are holes.
type Polygon [][][]float64

// Line is an open path of [lon, lat] positions.
type Line [][]float64

// Basemap is the land geometry drawn beneath the grid.
type Basemap struct {
	Polygons []Polygon
	Lines    []Line
}

// Empty reports whether the basemap has nothing to draw.
func (b *Basemap) Empty() bool {
	return b == nil || (len(b.Polygons) == 0 && len(b.Lines) == 0)
}

// LoadBasemap reads a GeoJSON FeatureCollection from path.
func LoadBasemap(path string) (*Basemap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read basemap: %w", err)
	}
	b, err := ParseBasemap(data)
	if err != nil {
		return nil, fmt.Errorf("parse basemap %s: %w", path, err)
	}
	return b, nil
}

// ParseBasemap keeps polygon and line geometry from a FeatureCollection.
// Points and features without geometry are ignored.
func ParseBasemap(data []byte) (*Basemap, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}
	b := &Basemap{}
	for _, f := range fc.Features {
		if f.Geometry != nil {
			b.add(f.Geometry)
		}
	}
	return b, nil
}

func (b *Basemap) add(g *geojson.Geometry) {
	switch {
	case g.IsPolygon():
		b.Polygons = append(b.Polygons, g.Polygon)
	case g.IsMultiPolygon():
		for _, poly := range g.MultiPolygon {
			b.Polygons = append(b.Polygons, poly)
		}
	case g.IsLineString():
		b.Lines = append(b.Lines, g.LineString)
	case g.IsMultiLineString():
		for _, line := range g.MultiLineString {
			b.Lines = append(b.Lines, line)
		}
	case g.IsCollection():
		for _, child := range g.Geometries {
			b.add(child)
		}
	}
}
