package volcanoengine

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/sudorandom/volcano-map/pkg/sources"
)

var (
	ColorLand    = color.RGBA{11, 20, 48, 255}
	ColorOutline = color.RGBA{24, 36, 74, 255}
)

// RasterizeBasemap draws b into a transparent image the size of the canvas,
// using the same mapping as the markers. It returns nil for an empty basemap.
func RasterizeBasemap(b *sources.Basemap, p Projector) *image.RGBA {
	if b.Empty() || p.Width <= 0 || p.Height <= 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for _, poly := range b.Polygons {
		fillPolygon(img, poly, p, ColorLand)
		for _, ring := range poly {
			drawPath(img, ring, p, ColorOutline)
		}
	}
	for _, line := range b.Lines {
		drawPath(img, line, p, ColorOutline)
	}
	return img
}

type point struct{ x, y float64 }

// fillPolygon is an even-odd scanline fill over all rings of the polygon.
func fillPolygon(img *image.RGBA, rings sources.Polygon, p Projector, c color.RGBA) {
	if len(rings) == 0 {
		return
	}
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	projected := make([][]point, len(rings))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, ring := range rings {
		projected[i] = make([]point, 0, len(ring))
		for _, pos := range ring {
			if len(pos) < 2 {
				continue
			}
			x, y := p.Project(pos[0], pos[1])
			projected[i] = append(projected[i], point{x, y})
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
	}
	if math.IsInf(minY, 1) {
		return
	}

	var nodes []int
	for y := max(int(minY), 0); y <= min(int(maxY), height-1); y++ {
		nodes = nodes[:0]
		fy := float64(y)
		for _, ring := range projected {
			for i := range ring {
				j := (i + 1) % len(ring)
				a, b := ring[i], ring[j]
				if (a.y < fy && b.y >= fy) || (b.y < fy && a.y >= fy) {
					nodes = append(nodes, int(a.x+(fy-a.y)/(b.y-a.y)*(b.x-a.x)))
				}
			}
		}
		sort.Ints(nodes)
		for i := 0; i+1 < len(nodes); i += 2 {
			xs, xe := max(nodes[i], 0), min(nodes[i+1], width)
			for x := xs; x < xe; x++ {
				setPixel(img, x, y, c)
			}
		}
	}
}

func drawPath(img *image.RGBA, coords [][]float64, p Projector, c color.RGBA) {
	for i := 0; i+1 < len(coords); i++ {
		if len(coords[i]) < 2 || len(coords[i+1]) < 2 {
			continue
		}
		x1, y1 := p.Project(coords[i][0], coords[i][1])
		x2, y2 := p.Project(coords[i+1][0], coords[i+1][1])
		drawLine(img, int(x1), int(y1), int(x2), int(y2), c)
	}
}

// drawLine is Bresenham's algorithm, clipped to the image.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA) {
	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}
	err := dx - dy
	for {
		setPixel(img, x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if !(image.Point{x, y}.In(img.Rect)) {
		return
	}
	off := img.PixOffset(x, y)
	img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3] = c.R, c.G, c.B, c.A
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
