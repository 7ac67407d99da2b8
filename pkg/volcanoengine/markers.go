package volcanoengine

import (
	"image/color"
	"math"
)

// Marker is a record placed on the canvas. Radius is the drawn diameter of the
// marker; the pointer must be within Radius/2 of the center to hover it.
type Marker struct {
	X, Y   float64
	Radius float64
	Fill   color.NRGBA
	Record Record
}

// BuildMarkers places every record of ds, in order. The returned slice is
// new on each call and is meant to replace the previous one as a whole.
func BuildMarkers(ds *Dataset, p Projector, c *TypeClassifier) []Marker {
	markers := make([]Marker, len(ds.Records))
	for i, r := range ds.Records {
		x, y := p.Project(r.Longitude, r.Latitude)
		markers[i] = Marker{
			X:      x,
			Y:      y,
			Radius: p.Radius(r.Elevation),
			Fill:   c.Classify(r.TypeLabel),
			Record: r,
		}
	}
	return markers
}

// HitTest returns the index of the marker under the pointer, or -1.
// The pointer must be strictly closer than Radius/2 to a marker's center.
// When markers overlap the nearest center wins; on equal distance the later
// marker wins since it is drawn on top.
func HitTest(markers []Marker, px, py float64) int {
	hovered, best := -1, math.Inf(1)
	for i := range markers {
		m := &markers[i]
		d := math.Hypot(px-m.X, py-m.Y)
		if d < m.Radius/2 && d <= best {
			hovered, best = i, d
		}
	}
	return hovered
}
