// Package canvas hosts a twirl.Tracker in an Ebitengine window. Canvas
// implements both collaborator contracts: it is a twirl.Surface that strokes
// and fills registered shapes every frame, and a twirl.InputSource that turns
// Ebitengine mouse state into pointer events.
//
// Wire it into an ebiten.Game by calling [Canvas.Update] from Update and
// [Canvas.Draw] from Draw.
package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/twirl"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type renderEntry struct {
	shape twirl.Shape
	style twirl.Style
}

// Canvas is an Ebitengine-backed host surface and input source.
type Canvas struct {
	width  int
	height int

	shapes   []renderEntry
	handlers twirl.CallbackRegistry

	pointerDown bool
	inside      bool
	lastX       float64
	lastY       float64

	injectQueue []syntheticPointerEvent

	// Antialias toggles antialiased stroking and filling. On by default.
	Antialias bool
}

// New creates a canvas with the given logical size in pixels. Pointer
// positions outside this area count as having left the surface.
func New(width, height int) *Canvas {
	return &Canvas{width: width, height: height, Antialias: true}
}

// Size returns the logical size passed to New. Games typically return it
// from their ebiten Layout method.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// --- twirl.Surface ---

// Add registers a shape for per-frame rendering with the given style.
func (c *Canvas) Add(s twirl.Shape, style twirl.Style) {
	c.shapes = append(c.shapes, renderEntry{shape: s, style: style})
}

// Remove unregisters a shape. Unknown shapes are a no-op.
func (c *Canvas) Remove(s twirl.Shape) {
	for i := range c.shapes {
		if c.shapes[i].shape == s {
			copy(c.shapes[i:], c.shapes[i+1:])
			c.shapes[len(c.shapes)-1] = renderEntry{}
			c.shapes = c.shapes[:len(c.shapes)-1]
			return
		}
	}
}

// Redraw is a no-op: the canvas re-strokes every registered shape from its
// current coordinates each Draw, so mutations are picked up automatically.
func (c *Canvas) Redraw(s twirl.Shape) {}

// Clear unregisters all shapes.
func (c *Canvas) Clear() {
	c.shapes = c.shapes[:0]
}

// --- twirl.InputSource ---

// OnPointerDown registers a callback for pointer press events.
func (c *Canvas) OnPointerDown(fn twirl.PointerFunc) twirl.CallbackHandle {
	return c.handlers.OnPointerDown(fn)
}

// OnPointerMove registers a callback for pointer move events while pressed.
func (c *Canvas) OnPointerMove(fn twirl.PointerFunc) twirl.CallbackHandle {
	return c.handlers.OnPointerMove(fn)
}

// OnPointerUp registers a callback for pointer release events.
func (c *Canvas) OnPointerUp(fn twirl.PointerFunc) twirl.CallbackHandle {
	return c.handlers.OnPointerUp(fn)
}

// OnPointerLeave registers a callback fired when the cursor leaves the
// canvas area.
func (c *Canvas) OnPointerLeave(fn twirl.PointerFunc) twirl.CallbackHandle {
	return c.handlers.OnPointerLeave(fn)
}

// --- Input processing ---

// Update polls input and dispatches pointer events. Call once per frame from
// the game's Update. If a synthetic event is queued, it is consumed instead
// of real mouse input for this frame.
func (c *Canvas) Update() {
	if c.processInjectedInput() {
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if x < 0 || y < 0 || x >= float64(c.width) || y >= float64(c.height) {
		c.processLeave(x, y)
		return
	}
	c.inside = true
	c.processPointer(x, y, pressed)
}

// processPointer runs the press/move/release edge detection for one frame.
func (c *Canvas) processPointer(x, y float64, pressed bool) {
	p := twirl.Point{X: x, Y: y}
	switch {
	case pressed && !c.pointerDown:
		c.pointerDown = true
		c.handlers.FirePointerDown(p)
	case pressed && c.pointerDown:
		if x != c.lastX || y != c.lastY {
			c.handlers.FirePointerMove(p)
		}
	case !pressed && c.pointerDown:
		c.pointerDown = false
		c.handlers.FirePointerUp(p)
	}
	c.lastX = x
	c.lastY = y
}

// processLeave fires pointer-leave once per excursion outside the canvas.
func (c *Canvas) processLeave(x, y float64) {
	if !c.inside {
		return
	}
	c.inside = false
	c.pointerDown = false
	c.handlers.FirePointerLeave(twirl.Point{X: x, Y: y})
}

// --- Rendering ---

// Draw renders every registered shape to screen. Shapes that don't implement
// twirl.Outliner are skipped.
func (c *Canvas) Draw(screen *ebiten.Image) {
	var outlines [][]twirl.Point
	for _, e := range c.shapes {
		o, ok := e.shape.(twirl.Outliner)
		if !ok {
			continue
		}
		outlines = o.AppendOutline(outlines[:0])
		for _, line := range outlines {
			c.drawOutline(screen, line, e.style)
		}
	}
}

// drawOutline fills a closed outline (first point repeated at the end) when
// the style has a visible fill, then strokes it.
func (c *Canvas) drawOutline(screen *ebiten.Image, line []twirl.Point, style twirl.Style) {
	if len(line) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(line[0].X), float32(line[0].Y))
	for _, p := range line[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	closed := line[0] == line[len(line)-1]
	if closed && style.Fill.A > 0 {
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		tintVertices(vs, style.Fill)
		screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
			AntiAlias: c.Antialias,
			FillRule:  ebiten.FillRuleNonZero,
		})
	}
	if style.Width > 0 && style.Stroke.A > 0 {
		vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
			Width:    float32(style.Width),
			LineJoin: vector.LineJoinRound,
			LineCap:  vector.LineCapRound,
		})
		tintVertices(vs, style.Stroke)
		screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
			AntiAlias: c.Antialias,
		})
	}
}

// tintVertices sets every vertex color to clr. Vertex colors are
// premultiplied at submission, matching ebiten's expectation.
func tintVertices(vs []ebiten.Vertex, clr twirl.Color) {
	r := float32(clr.R * clr.A)
	g := float32(clr.G * clr.A)
	b := float32(clr.B * clr.A)
	a := float32(clr.A)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}
