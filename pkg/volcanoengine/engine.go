package volcanoengine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sudorandom/volcano-map/pkg/sources"
)

// Input and cursor hooks, replaced in tests.
var (
	cursorPosition = ebiten.CursorPosition
	setCursorShape = ebiten.SetCursorShape
)

// Engine is the ebiten.Game for the viewer. Markers are rebuilt whenever the
// window size changes; everything else is fixed after NewEngine.
type Engine struct {
	Width, Height int

	dataset    *Dataset
	basemap    *sources.Basemap
	classifier *TypeClassifier
	renderer   *Renderer
	canvas     *ebitenCanvas

	projector Projector
	markers   []Marker
	backdrop  *image.RGBA

	pointerX, pointerY float64
	hovered            int
	cursor             ebiten.CursorShapeType

	frame Frame
}

// NewEngine prepares a viewer for ds. basemap may be nil.
func NewEngine(ds *Dataset, basemap *sources.Basemap) (*Engine, error) {
	canvas, err := newEbitenCanvas()
	if err != nil {
		return nil, err
	}
	classifier := DefaultTypeClassifier()
	return &Engine{
		dataset:    ds,
		basemap:    basemap,
		classifier: classifier,
		renderer:   NewRenderer(classifier.Legend()),
		canvas:     canvas,
		hovered:    -1,
		cursor:     ebiten.CursorShapeDefault,
	}, nil
}

// Resize rebuilds every marker for a canvas of w by h pixels. The dataset
// extrema are reused as loaded.
func (e *Engine) Resize(w, h int) {
	e.Width, e.Height = w, h
	e.projector = NewProjector(e.dataset, w, h)
	e.markers = BuildMarkers(e.dataset, e.projector, e.classifier)
	e.backdrop = RasterizeBasemap(e.basemap, e.projector)
	e.hovered = HitTest(e.markers, e.pointerX, e.pointerY)
}

// Markers returns the current marker set. The slice is replaced, never
// modified, on resize.
func (e *Engine) Markers() []Marker { return e.markers }

// Hovered returns the marker under the pointer as of the last Update.
func (e *Engine) Hovered() (Marker, bool) {
	if e.hovered < 0 || e.hovered >= len(e.markers) {
		return Marker{}, false
	}
	return e.markers[e.hovered], true
}

func (e *Engine) Update() error {
	x, y := cursorPosition()
	e.pointerX, e.pointerY = float64(x), float64(y)
	e.hovered = HitTest(e.markers, e.pointerX, e.pointerY)

	shape := ebiten.CursorShapeDefault
	if e.hovered >= 0 {
		shape = ebiten.CursorShapePointer
	}
	if shape != e.cursor {
		setCursorShape(shape)
		e.cursor = shape
	}
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	e.frame = Frame{
		Projector: e.projector,
		Markers:   e.markers,
		Hovered:   e.hovered,
		Backdrop:  e.backdrop,
	}
	e.renderer.Render(e.canvas.target(screen), &e.frame)
}

// Layout keeps the canvas the same size as the window, rebuilding the
// markers before the next Draw whenever that size changes.
func (e *Engine) Layout(w, h int) (int, int) {
	if w != e.Width || h != e.Height || e.markers == nil {
		e.Resize(w, h)
	}
	return w, h
}
