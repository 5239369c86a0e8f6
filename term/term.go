// Package term hosts a twirl.Tracker in a terminal using tcell. Canvas
// rasterizes shape outlines into character cells and converts tcell mouse
// events into pointer events.
//
// Coordinates are in square canvas units: one unit equals one column, and
// rows are compressed by the cell aspect ratio so shapes keep their
// proportions on screen.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/twirl"
)

// DefaultAspect is the row-per-unit factor for typical terminal fonts, whose
// cells are about twice as tall as they are wide.
const DefaultAspect = 0.5

// cellRune is the glyph used for rasterized outline cells.
const cellRune = '█'

type renderEntry struct {
	shape twirl.Shape
	style twirl.Style
}

// Canvas is a tcell-backed host surface and input source.
type Canvas struct {
	screen   tcell.Screen
	handlers twirl.CallbackRegistry
	shapes   []renderEntry

	// Aspect is the rows-per-unit compression factor. Change before adding
	// shapes; DefaultAspect suits most terminals.
	Aspect float64

	buttonDown bool
	lastX      int
	lastY      int
}

// New creates a canvas on a real terminal screen with mouse reporting
// enabled. Call Fini to restore the terminal.
func New() (*Canvas, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen)
}

// NewWithScreen creates a canvas on the given screen, initializing it and
// enabling mouse reporting. Tests pass a tcell.NewSimulationScreen.
func NewWithScreen(screen tcell.Screen) (*Canvas, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	return &Canvas{screen: screen, Aspect: DefaultAspect, lastX: -1, lastY: -1}, nil
}

// Screen returns the underlying tcell screen.
func (c *Canvas) Screen() tcell.Screen {
	return c.screen
}

// Fini restores the terminal.
func (c *Canvas) Fini() {
	c.screen.Fini()
}

// --- twirl.Surface ---

// Add registers a shape and repaints.
func (c *Canvas) Add(s twirl.Shape, style twirl.Style) {
	c.shapes = append(c.shapes, renderEntry{shape: s, style: style})
	c.render()
}

// Remove unregisters a shape and repaints. Unknown shapes are a no-op.
func (c *Canvas) Remove(s twirl.Shape) {
	for i := range c.shapes {
		if c.shapes[i].shape == s {
			copy(c.shapes[i:], c.shapes[i+1:])
			c.shapes[len(c.shapes)-1] = renderEntry{}
			c.shapes = c.shapes[:len(c.shapes)-1]
			c.render()
			return
		}
	}
}

// Redraw repaints from the shapes' current coordinates.
func (c *Canvas) Redraw(s twirl.Shape) {
	c.render()
}

// Clear unregisters all shapes and repaints.
func (c *Canvas) Clear() {
	c.shapes = c.shapes[:0]
	c.render()
}

// --- twirl.InputSource ---

// OnPointerDown registers a callback for mouse button-1 press events.
func (c *Canvas) OnPointerDown(fn twirl.PointerFunc) twirl.CallbackHandle {
	return c.handlers.OnPointerDown(fn)
}

// OnPointerMove registers a callback for drag-move events.
func (c *Canvas) OnPointerMove(fn twirl.PointerFunc) twirl.CallbackHandle {
	return c.handlers.OnPointerMove(fn)
}

// OnPointerUp registers a callback for button release events.
func (c *Canvas) OnPointerUp(fn twirl.PointerFunc) twirl.CallbackHandle {
	return c.handlers.OnPointerUp(fn)
}

// OnPointerLeave registers a callback for pointer-leave events. Terminals
// don't report the mouse leaving the window, so this fires only when a mouse
// event arrives outside the screen bounds (some terminals report drags past
// the edge).
func (c *Canvas) OnPointerLeave(fn twirl.PointerFunc) twirl.CallbackHandle {
	return c.handlers.OnPointerLeave(fn)
}

// --- Event loop ---

// Run polls events and dispatches them until ESC or Ctrl-C. It does not call
// Fini; defer that at the call site.
func (c *Canvas) Run() {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		if !c.HandleEvent(ev) {
			return
		}
	}
}

// HandleEvent dispatches a single tcell event. Returns false when the event
// asks to quit (ESC or Ctrl-C).
func (c *Canvas) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
			return false
		}
	case *tcell.EventResize:
		c.screen.Sync()
		c.render()
	case *tcell.EventMouse:
		c.handleMouse(e)
	}
	return true
}

// handleMouse converts a tcell mouse event into pointer events. Button1 held
// drives the down/move/up edges; coordinates outside the screen fire leave.
func (c *Canvas) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	w, h := c.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		if c.buttonDown || c.lastX >= 0 {
			c.buttonDown = false
			c.lastX, c.lastY = -1, -1
			c.handlers.FirePointerLeave(c.toUnits(x, y))
		}
		return
	}

	pressed := e.Buttons()&tcell.Button1 != 0
	p := c.toUnits(x, y)
	switch {
	case pressed && !c.buttonDown:
		c.buttonDown = true
		c.handlers.FirePointerDown(p)
	case pressed && c.buttonDown:
		if x != c.lastX || y != c.lastY {
			c.handlers.FirePointerMove(p)
		}
	case !pressed && c.buttonDown:
		c.buttonDown = false
		c.handlers.FirePointerUp(p)
	}
	c.lastX, c.lastY = x, y
}

// toUnits converts a cell position to canvas units (square coordinates).
func (c *Canvas) toUnits(x, y int) twirl.Point {
	return twirl.Point{X: float64(x), Y: float64(y) / c.Aspect}
}

// --- Rasterization ---

// render repaints every registered shape's outline into cells and shows the
// result.
func (c *Canvas) render() {
	c.screen.Clear()
	var outlines [][]twirl.Point
	for _, e := range c.shapes {
		o, ok := e.shape.(twirl.Outliner)
		if !ok {
			continue
		}
		st := tcell.StyleDefault.Foreground(toTcellColor(e.style.Stroke))
		outlines = o.AppendOutline(outlines[:0])
		for _, line := range outlines {
			for i := 0; i+1 < len(line); i++ {
				c.plotSegment(line[i], line[i+1], st)
			}
		}
	}
	c.screen.Show()
}

// plotSegment rasterizes one segment with integer Bresenham stepping in cell
// space. Cells outside the screen are clipped by SetContent.
func (c *Canvas) plotSegment(a, b twirl.Point, st tcell.Style) {
	x0 := int(math.Round(a.X))
	y0 := int(math.Round(a.Y * c.Aspect))
	x1 := int(math.Round(b.X))
	y1 := int(math.Round(b.Y * c.Aspect))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.screen.SetContent(x0, y0, cellRune, nil, st)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// toTcellColor converts a twirl color to a 24-bit tcell color. Alpha is
// ignored; terminals don't blend.
func toTcellColor(clr twirl.Color) tcell.Color {
	return tcell.NewRGBColor(
		int32(clamp01(clr.R)*255),
		int32(clamp01(clr.G)*255),
		int32(clamp01(clr.B)*255),
	)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
