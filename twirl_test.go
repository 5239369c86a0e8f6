package twirl

import "testing"

func TestBoundsUnion(t *testing.T) {
	a := Bounds{Left: 0, Top: 0, Right: 5, Bottom: 5}
	b := Bounds{Left: -2, Top: 3, Right: 4, Bottom: 9}
	got := a.union(b)
	assertBounds(t, "union", got, Bounds{Left: -2, Top: 0, Right: 5, Bottom: 9})
}

func TestBoundsOf(t *testing.T) {
	got := boundsOf([]Point{{X: 3, Y: -1}, {X: -4, Y: 7}, {X: 0, Y: 0}})
	assertBounds(t, "boundsOf", got, Bounds{Left: -4, Top: -1, Right: 3, Bottom: 7})
}

func TestBoundsOfEmpty(t *testing.T) {
	assertBounds(t, "empty", boundsOf(nil), Bounds{})
}

func TestBoundsOfSinglePoint(t *testing.T) {
	got := boundsOf([]Point{{X: 2, Y: 3}})
	assertBounds(t, "single", got, Bounds{Left: 2, Top: 3, Right: 2, Bottom: 3})
}

func TestStateString(t *testing.T) {
	if StateIdle.String() != "idle" {
		t.Errorf("StateIdle = %q", StateIdle.String())
	}
	if StateDragging.String() != "dragging" {
		t.Errorf("StateDragging = %q", StateDragging.String())
	}
	if State(99).String() != "unknown" {
		t.Errorf("State(99) = %q", State(99).String())
	}
}
