package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/twirl"
)

func newSimCanvas(t *testing.T) *Canvas {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	c, err := NewWithScreen(screen)
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	t.Cleanup(c.Fini)
	return c
}

func mouse(x, y int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, btn, 0)
}

func TestMouseEdgeDetection(t *testing.T) {
	c := newSimCanvas(t)

	var events []string
	c.OnPointerDown(func(p twirl.Point) { events = append(events, "down") })
	c.OnPointerMove(func(p twirl.Point) { events = append(events, "move") })
	c.OnPointerUp(func(p twirl.Point) { events = append(events, "up") })

	c.HandleEvent(mouse(10, 5, tcell.Button1))
	c.HandleEvent(mouse(12, 6, tcell.Button1))
	c.HandleEvent(mouse(12, 6, tcell.Button1)) // same cell, no move event
	c.HandleEvent(mouse(12, 6, tcell.ButtonNone))

	want := []string{"down", "move", "up"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
}

func TestMouseAspectCorrection(t *testing.T) {
	c := newSimCanvas(t)

	var down twirl.Point
	c.OnPointerDown(func(p twirl.Point) { down = p })

	// With the default 0.5 aspect, row 6 is 12 canvas units down.
	c.HandleEvent(mouse(10, 6, tcell.Button1))
	if down.X != 10 || down.Y != 12 {
		t.Errorf("down at %v, want (10,12)", down)
	}
}

func TestEscAndCtrlCQuit(t *testing.T) {
	c := newSimCanvas(t)
	if c.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, 0)) {
		t.Error("ESC should quit")
	}
	if c.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, 0)) {
		t.Error("Ctrl-C should quit")
	}
	if !c.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', 0)) {
		t.Error("other keys should not quit")
	}
}

func simRuneAt(t *testing.T, screen tcell.Screen, x, y int) rune {
	t.Helper()
	sim := screen.(tcell.SimulationScreen)
	cells, w, h := sim.GetContents()
	if x < 0 || y < 0 || x >= w || y >= h {
		t.Fatalf("cell (%d,%d) outside %dx%d", x, y, w, h)
	}
	cell := cells[y*w+x]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func TestRasterizeHorizontalLine(t *testing.T) {
	c := newSimCanvas(t)

	// A line from (2,8) to (8,8) in canvas units lands on row 4 with the
	// default 0.5 aspect.
	c.Add(twirl.NewPolyline([]twirl.Point{{X: 2, Y: 8}, {X: 8, Y: 8}}), twirl.DefaultStyle)

	for x := 2; x <= 8; x++ {
		if r := simRuneAt(t, c.Screen(), x, 4); r != cellRune {
			t.Errorf("cell (%d,4) = %q, want %q", x, r, cellRune)
		}
	}
	if r := simRuneAt(t, c.Screen(), 1, 4); r == cellRune {
		t.Error("cell left of the segment should be empty")
	}
}

func TestRemoveErasesShape(t *testing.T) {
	c := newSimCanvas(t)
	line := twirl.NewPolyline([]twirl.Point{{X: 2, Y: 8}, {X: 8, Y: 8}})
	c.Add(line, twirl.DefaultStyle)
	c.Remove(line)
	if r := simRuneAt(t, c.Screen(), 4, 4); r == cellRune {
		t.Error("removed shape should no longer be rasterized")
	}
}

func TestPolygonOutlineClosesOnScreen(t *testing.T) {
	c := newSimCanvas(t)
	// Square from (4,4) to (12,12) in canvas units: rows 2..6, cols 4..12.
	c.Add(twirl.NewPolygon([]twirl.Point{
		{X: 4, Y: 4}, {X: 12, Y: 4}, {X: 12, Y: 12}, {X: 4, Y: 12},
	}), twirl.DefaultStyle)

	// The closing edge (left side) exists only because the ring is closed.
	if r := simRuneAt(t, c.Screen(), 4, 4); r != cellRune {
		t.Error("left edge missing; polygon ring not closed")
	}
}

// The full loop against a simulation screen.
func TestTrackerDragOverTerminal(t *testing.T) {
	c := newSimCanvas(t)
	tr := twirl.NewTracker(c, twirl.Options{})
	tr.SetTemplate(twirl.NewPolyline([]twirl.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}))
	tr.Attach(c)

	var done twirl.Shape
	tr.OnDone(func(ctx twirl.DoneContext) { done = ctx.Shape })

	// Press at cell (20,10) = units (20,20); drag right to cell (40,10) =
	// units (40,20): angle 0, radius 20 → width normalizes to 20.
	c.HandleEvent(mouse(20, 10, tcell.Button1))
	c.HandleEvent(mouse(40, 10, tcell.Button1))
	c.HandleEvent(mouse(40, 10, tcell.ButtonNone))

	if done == nil {
		t.Fatal("done callback did not fire")
	}
	if w := done.Bounds().Width(); w < 20-1e-9 || w > 20+1e-9 {
		t.Errorf("width = %v, want 20", w)
	}
	if len(c.shapes) != 0 {
		t.Fatal("rendering should be cleared after done delivery")
	}
}
