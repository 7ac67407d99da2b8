package volcanoengine

import (
	"github.com/sudorandom/volcano-map/pkg/utils"
)

// Marker radius range in pixels, mapped linearly from the elevation extent.
const (
	MinMarkerRadius = 3.0
	MaxMarkerRadius = 15.0
)

// Margins is the space left between the plot area and the canvas edges.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargins leaves 100px on every side.
var DefaultMargins = Margins{Top: 100, Right: 100, Bottom: 100, Left: 100}

// Projector maps longitude, latitude and elevation to canvas pixels using the
// dataset extrema. Latitude is inverted so north is up.
type Projector struct {
	Width, Height int
	Margins       Margins

	lon, lat, elev utils.Extent
}

// NewProjector builds the mapping for a canvas of the given size. The extrema
// come from ds and are never recomputed.
func NewProjector(ds *Dataset, width, height int) Projector {
	return Projector{
		Width:   width,
		Height:  height,
		Margins: DefaultMargins,
		lon:     ds.Lon,
		lat:     ds.Lat,
		elev:    ds.Elev,
	}
}

// PlotArea returns the rectangle markers are mapped into.
func (p Projector) PlotArea() (x0, y0, x1, y1 float64) {
	return p.Margins.Left, p.Margins.Top, float64(p.Width) - p.Margins.Right, float64(p.Height) - p.Margins.Bottom
}

// Project maps a coordinate to canvas pixels.
func (p Projector) Project(lon, lat float64) (x, y float64) {
	x0, y0, x1, y1 := p.PlotArea()
	x = utils.Lerp(lon, p.lon.Min, p.lon.Max, x0, x1)
	y = utils.Lerp(lat, p.lat.Min, p.lat.Max, y1, y0)
	return x, y
}

// Radius maps an elevation in meters to a marker radius.
func (p Projector) Radius(elev float64) float64 {
	return utils.Lerp(elev, p.elev.Min, p.elev.Max, MinMarkerRadius, MaxMarkerRadius)
}

// GridLine is one reference line of the coordinate grid.
type GridLine struct {
	Degrees        float64
	X0, Y0, X1, Y1 float64
}

// Grid returns meridians and parallels every step degrees inside the dataset
// extent, each spanning the plot area.
func (p Projector) Grid(step float64) (meridians, parallels []GridLine) {
	x0, y0, x1, y1 := p.PlotArea()
	for _, lon := range p.lon.Steps(step) {
		x, _ := p.Project(lon, 0)
		meridians = append(meridians, GridLine{Degrees: lon, X0: x, Y0: y0, X1: x, Y1: y1})
	}
	for _, lat := range p.lat.Steps(step) {
		_, y := p.Project(0, lat)
		parallels = append(parallels, GridLine{Degrees: lat, X0: x0, Y0: y, X1: x1, Y1: y})
	}
	return meridians, parallels
}
