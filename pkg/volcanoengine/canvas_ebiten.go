package volcanoengine

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type faceKey struct {
	font Font
	size float64
}

// ebitenCanvas draws onto an *ebiten.Image. It lives as long as the Engine so
// faces and the uploaded raster survive between frames.
type ebitenCanvas struct {
	dst *ebiten.Image

	sources map[Font]*text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace

	rasterSrc *image.RGBA
	raster    *ebiten.Image
}

func newEbitenCanvas() (*ebitenCanvas, error) {
	c := &ebitenCanvas{
		sources: make(map[Font]*text.GoTextFaceSource),
		faces:   make(map[faceKey]*text.GoTextFace),
	}
	for f, ttf := range map[Font][]byte{FontRegular: goregular.TTF, FontBold: gobold.TTF, FontMono: gomono.TTF} {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			return nil, fmt.Errorf("load font %d: %w", f, err)
		}
		c.sources[f] = s
	}
	return c, nil
}

// target points the canvas at this frame's screen.
func (c *ebitenCanvas) target(dst *ebiten.Image) Canvas {
	c.dst = dst
	return c
}

func (c *ebitenCanvas) face(style TextStyle) *text.GoTextFace {
	key := faceKey{style.Font, style.Size}
	f, ok := c.faces[key]
	if !ok {
		f = &text.GoTextFace{Source: c.sources[style.Font], Size: style.Size}
		c.faces[key] = f
	}
	return f
}

func (c *ebitenCanvas) Fill(clr color.Color) { c.dst.Fill(clr) }

// DrawRaster uploads img the first time it is seen and reuses the texture
// until a different image is passed.
func (c *ebitenCanvas) DrawRaster(img *image.RGBA) {
	if img == nil {
		return
	}
	if img != c.rasterSrc {
		if c.raster != nil {
			c.raster.Deallocate()
		}
		c.raster = ebiten.NewImageFromImage(img)
		c.rasterSrc = img
	}
	c.dst.DrawImage(c.raster, nil)
}

func (c *ebitenCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *ebitenCanvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

func (c *ebitenCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, false)
}

func (c *ebitenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *ebitenCanvas) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (c *ebitenCanvas) Text(s string, x, y float64, style TextStyle) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(style.Color)
	op.PrimaryAlign = textAlign(style.AlignX)
	op.SecondaryAlign = textAlign(style.AlignY)
	op.LineSpacing = style.lineSpacing()
	text.Draw(c.dst, s, c.face(style), op)
}

func (c *ebitenCanvas) MeasureText(s string, style TextStyle) (w, h float64) {
	return text.Measure(s, c.face(style), style.lineSpacing())
}

func textAlign(a Align) text.Align {
	switch a {
	case AlignCenter:
		return text.AlignCenter
	case AlignEnd:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
