package volcanoengine

import (
	"image"
	"image/color"
	"testing"

	"github.com/sudorandom/volcano-map/pkg/sources"
)

var testHeader = []string{ColumnName, ColumnCountry, ColumnLatitude, ColumnLongitude, ColumnElevation, ColumnType, ColumnLastEruption}

// worldTable spans lon [-180, 180], lat [-90, 90] and elevation [0, 5000].
func worldTable() *sources.Table {
	return &sources.Table{
		Header: testHeader,
		Rows: [][]string{
			{"Southwest", "Nowhere", "-90", "-180", "0", "Shield", "Unknown"},
			{"Center", "Null Island", "0", "0", "2500", "Stratovolcano", "1707 CE"},
			{"Northeast", "Nowhere", "90", "180", "5000", "Submarine", "2023 CE"},
		},
	}
}

func mustDataset(t testing.TB, tbl *sources.Table) *Dataset {
	t.Helper()
	ds, err := NewDataset(tbl)
	if err != nil {
		t.Fatalf("NewDataset failed: %v", err)
	}
	return ds
}

type drawOp struct {
	kind   string
	args   []float64
	text   string
	style  TextStyle
	color  color.Color
	raster *image.RGBA
}

// recordingCanvas keeps every call so tests can inspect what a frame drew.
type recordingCanvas struct {
	ops []drawOp
}

func (c *recordingCanvas) Fill(clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "fill", color: clr})
}

func (c *recordingCanvas) DrawRaster(img *image.RGBA) {
	if img != nil {
		c.ops = append(c.ops, drawOp{kind: "raster", raster: img})
	}
}

func (c *recordingCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "fillCircle", args: []float64{cx, cy, r}, color: clr})
}

func (c *recordingCanvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "strokeCircle", args: []float64{cx, cy, r, width}, color: clr})
}

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "line", args: []float64{x0, y0, x1, y1, width}, color: clr})
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "fillRect", args: []float64{x, y, w, h}, color: clr})
}

func (c *recordingCanvas) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "strokeRect", args: []float64{x, y, w, h, width}, color: clr})
}

func (c *recordingCanvas) Text(s string, x, y float64, style TextStyle) {
	c.ops = append(c.ops, drawOp{kind: "text", args: []float64{x, y}, text: s, style: style})
}

// MeasureText approximates glyphs as 0.6em wide.
func (c *recordingCanvas) MeasureText(s string, style TextStyle) (w, h float64) {
	lines, longest, cur := 1, 0, 0
	for _, r := range s {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		longest = max(longest, cur)
	}
	return float64(longest) * style.Size * 0.6, float64(lines) * style.lineSpacing()
}

func (c *recordingCanvas) count(kind string) int {
	n := 0
	for _, op := range c.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) findText(s string) (drawOp, bool) {
	for _, op := range c.ops {
		if op.kind == "text" && op.text == s {
			return op, true
		}
	}
	return drawOp{}, false
}
