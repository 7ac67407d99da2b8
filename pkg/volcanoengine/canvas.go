package volcanoengine

import (
	"image"
	"image/color"
)

// Align positions text relative to its anchor point along one axis.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Font selects one of the embedded typefaces.
type Font int

const (
	FontRegular Font = iota
	FontBold
	FontMono
)

// TextStyle is everything needed to draw one string. A zero LineSpacing
// means 1.25 times Size.
type TextStyle struct {
	Font        Font
	Size        float64
	Color       color.Color
	AlignX      Align
	AlignY      Align
	LineSpacing float64
}

func (s TextStyle) lineSpacing() float64 {
	if s.LineSpacing > 0 {
		return s.LineSpacing
	}
	return s.Size * 1.25
}

// Canvas is the drawing target of a frame. Every call carries its own style;
// a Canvas keeps no current color or stroke between calls.
type Canvas interface {
	Fill(c color.Color)
	DrawRaster(img *image.RGBA)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, width float64, c color.Color)
	Text(s string, x, y float64, style TextStyle)
	MeasureText(s string, style TextStyle) (w, h float64)
}
