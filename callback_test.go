package twirl

import "testing"

func TestCallbacksFireInRegistrationOrder(t *testing.T) {
	var reg CallbackRegistry
	var order []int
	reg.OnPointerDown(func(Point) { order = append(order, 1) })
	reg.OnPointerDown(func(Point) { order = append(order, 2) })
	reg.OnPointerDown(func(Point) { order = append(order, 3) })

	reg.FirePointerDown(Point{})
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("order = %v, want [1 2 3]", order)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	var reg CallbackRegistry
	var fired []string
	reg.OnDone(func(DoneContext) { fired = append(fired, "a") })
	h := reg.OnDone(func(DoneContext) { fired = append(fired, "b") })
	reg.OnDone(func(DoneContext) { fired = append(fired, "c") })

	h.Remove()
	reg.fireDone(DoneContext{})
	if len(fired) != 2 || fired[0] != "a" || fired[1] != "c" {
		t.Fatalf("fired = %v, want [a c]", fired)
	}
}

func TestCallbackHandleRemoveTwice(t *testing.T) {
	var reg CallbackRegistry
	h := reg.OnCancel(func(CancelContext) {})
	h.Remove()
	h.Remove()
	reg.fireCancel(CancelContext{})
}

func TestZeroHandleRemoveIsSafe(t *testing.T) {
	var h CallbackHandle
	h.Remove()
}

func TestRemoveOneEventTypeLeavesOthers(t *testing.T) {
	var reg CallbackRegistry
	downFired := false
	moveFired := false
	h := reg.OnPointerDown(func(Point) { downFired = true })
	reg.OnPointerMove(func(Point) { moveFired = true })

	h.Remove()
	reg.FirePointerDown(Point{})
	reg.FirePointerMove(Point{})
	if downFired {
		t.Error("removed pointer-down callback fired")
	}
	if !moveFired {
		t.Error("pointer-move callback should still fire")
	}
}

func TestCreateContextCarriesPayload(t *testing.T) {
	var reg CallbackRegistry
	shape := NewMarker(Point{X: 1, Y: 2})
	var got CreateContext
	reg.OnCreate(func(ctx CreateContext) { got = ctx })

	reg.fireCreate(CreateContext{Origin: Point{X: 7, Y: 8}, Shape: shape})
	assertPoint(t, "origin", got.Origin, Point{X: 7, Y: 8})
	if got.Shape != Shape(shape) {
		t.Error("shape not delivered")
	}
}
