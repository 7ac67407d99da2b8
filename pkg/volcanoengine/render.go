package volcanoengine

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
)

const (
	Title = "Interactive Volcano Visualization"

	gridStepDegrees = 30.0
	dashOn, dashOff = 4.0, 4.0

	legendBottomOffset = 30.0
	legendStartX       = 50.0
	legendSpacing      = 120.0
	legendSwatchSize   = 12.0
)

var (
	ColorBackground = color.RGBA{0x04, 0x09, 0x1D, 0xFF}
	ColorGrid       = color.Gray{Y: 80}
	ColorGridLabel  = color.Gray{Y: 200}
	ColorText       = color.White
	ColorTooltipBox = color.RGBA{0, 0, 0, 160}
	ColorTooltipRim = color.RGBA{36, 42, 53, 255}
)

// Frame is everything the Renderer needs to draw one frame. Hovered is an
// index into Markers or -1.
type Frame struct {
	Projector Projector
	Markers   []Marker
	Hovered   int
	Backdrop  *image.RGBA
}

// Renderer draws frames. It holds no per-frame state.
type Renderer struct {
	legend []TypeRule
}

// NewRenderer draws legend entries in the given order.
func NewRenderer(legend []TypeRule) *Renderer {
	return &Renderer{legend: legend}
}

// Render draws f onto c back to front.
func (r *Renderer) Render(c Canvas, f *Frame) {
	w, h := float64(f.Projector.Width), float64(f.Projector.Height)

	c.Fill(ColorBackground)
	c.DrawRaster(f.Backdrop)
	r.drawGrid(c, f.Projector)

	var hovered *Marker
	if f.Hovered >= 0 && f.Hovered < len(f.Markers) {
		hovered = &f.Markers[f.Hovered]
	}
	for i := range f.Markers {
		m := &f.Markers[i]
		if m == hovered {
			c.FillCircle(m.X, m.Y, (m.Radius+4)/2, m.Fill)
			c.StrokeCircle(m.X, m.Y, (m.Radius+8)/2, 1, ColorText)
			continue
		}
		c.FillCircle(m.X, m.Y, m.Radius/2, m.Fill)
	}

	if hovered != nil {
		r.drawTooltip(c, hovered, w, h)
		c.Text(CoordinateLabel(hovered.Record), w-20, h-10, TextStyle{
			Size: 14, Color: ColorText, AlignX: AlignEnd, AlignY: AlignEnd,
		})
	}

	c.Text(Title, w/2, 20, TextStyle{Font: FontBold, Size: 40, Color: ColorText, AlignX: AlignCenter})
	r.drawLegend(c, h)
}

func (r *Renderer) drawGrid(c Canvas, p Projector) {
	meridians, parallels := p.Grid(gridStepDegrees)
	label := TextStyle{Size: 12, Color: ColorGridLabel}

	for _, l := range meridians {
		drawDashedLine(c, l)
		label.AlignX, label.AlignY = AlignCenter, AlignStart
		c.Text(DegreeLabel(l.Degrees), l.X1, l.Y1+5, label)
	}
	for _, l := range parallels {
		drawDashedLine(c, l)
		label.AlignX, label.AlignY = AlignEnd, AlignCenter
		c.Text(DegreeLabel(l.Degrees), l.X0-5, l.Y0, label)
	}
}

func drawDashedLine(c Canvas, l GridLine) {
	for _, s := range DashSegments(l.X0, l.Y0, l.X1, l.Y1, dashOn, dashOff) {
		c.StrokeLine(s[0], s[1], s[2], s[3], 1, ColorGrid)
	}
}

// DashSegments splits a line into dashes of length on separated by gaps of
// length off. The last dash is clipped to the line end.
func DashSegments(x0, y0, x1, y1, on, off float64) [][4]float64 {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 || on <= 0 {
		return nil
	}
	ux, uy := (x1-x0)/length, (y1-y0)/length
	segments := make([][4]float64, 0, int(length/(on+off))+1)
	for d := 0.0; d < length; d += on + off {
		end := math.Min(d+on, length)
		segments = append(segments, [4]float64{x0 + ux*d, y0 + uy*d, x0 + ux*end, y0 + uy*end})
	}
	return segments
}

func (r *Renderer) drawTooltip(c Canvas, m *Marker, w, h float64) {
	style := TextStyle{Size: 14, Color: ColorText}
	label := TooltipLabel(m.Record)
	tw, th := c.MeasureText(label, style)
	x, y := TooltipOrigin(m, tw, th, w, h)

	const pad = 6.0
	c.FillRect(x-pad, y-pad, tw+2*pad, th+2*pad, ColorTooltipBox)
	c.StrokeRect(x-pad, y-pad, tw+2*pad, th+2*pad, 1, ColorTooltipRim)
	c.Text(label, x, y, style)
}

// TooltipOrigin anchors the tooltip text up and to the right of the marker,
// flipping to the left or down when it would leave the canvas.
func TooltipOrigin(m *Marker, tw, th, w, h float64) (x, y float64) {
	x, y = m.X+10, m.Y-30
	if x+tw > w {
		x = m.X - 10 - tw
	}
	if y < 0 {
		y = m.Y + 10
	}
	if y+th > h {
		y = h - th
	}
	return math.Max(x, 0), math.Max(y, 0)
}

func (r *Renderer) drawLegend(c Canvas, h float64) {
	y := h - legendBottomOffset
	label := TextStyle{Size: 12, Color: ColorText, AlignY: AlignCenter}
	for i, rule := range r.legend {
		x := legendStartX + float64(i)*legendSpacing
		c.FillCircle(x, y, legendSwatchSize/2, rule.Color)
		c.Text(rule.Label, x+15, y, label)
	}
}

// TooltipLabel is the two line description shown for a hovered volcano.
func TooltipLabel(r Record) string {
	return fmt.Sprintf("%s (%s)\n%s, %s m", r.Name, r.TypeLabel, r.Country, formatNumber(r.Elevation))
}

// CoordinateLabel is the raw position shown in the bottom right corner.
func CoordinateLabel(r Record) string {
	return fmt.Sprintf("Longitude: %s°, Latitude: %s°", formatNumber(r.Longitude), formatNumber(r.Latitude))
}

// DegreeLabel formats a grid line value.
func DegreeLabel(deg float64) string {
	return formatNumber(deg) + "°"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
