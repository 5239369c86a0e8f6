package twirl

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ShapeTween animates a single rotation or resize on a Shape over time,
// applying per-frame deltas about a fixed pivot so the result composes
// exactly with whatever other transforms the shape accumulates. Useful for
// settle or entrance effects after a gesture finishes.
//
// Create one with TweenRotate or TweenResize and call Update(dt) each frame.
// There is no global animation manager — users call Update themselves.
type ShapeTween struct {
	shape  Shape
	pivot  Point
	tween  *gween.Tween
	prev   float32
	resize bool
	Done   bool
}

// TweenRotate creates a ShapeTween that rotates shape by byDeg degrees about
// pivot over the given duration using the easing function.
func TweenRotate(shape Shape, pivot Point, byDeg float64, duration float32, fn ease.TweenFunc) *ShapeTween {
	return &ShapeTween{
		shape: shape,
		pivot: pivot,
		tween: gween.New(0, float32(byDeg), duration, fn),
	}
}

// TweenResize creates a ShapeTween that scales shape about pivot from its
// current size to toFactor times that size over the given duration using the
// easing function.
func TweenResize(shape Shape, pivot Point, toFactor float64, duration float32, fn ease.TweenFunc) *ShapeTween {
	return &ShapeTween{
		shape:  shape,
		pivot:  pivot,
		prev:   1,
		resize: true,
		tween:  gween.New(1, float32(toFactor), duration, fn),
	}
}

// Update advances the tween by dt seconds and applies the delta since the
// previous frame to the shape. Sets Done when the tween finishes; further
// calls are no-ops.
func (st *ShapeTween) Update(dt float32) {
	if st.Done {
		return
	}
	val, finished := st.tween.Update(dt)
	if st.resize {
		if st.prev != 0 {
			st.shape.Resize(float64(val)/float64(st.prev), st.pivot)
		}
	} else {
		st.shape.Rotate(float64(val)-float64(st.prev), st.pivot)
	}
	st.prev = val
	st.Done = finished
}
