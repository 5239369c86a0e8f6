// Package twirl is a drag-to-transform gesture engine for 2D canvases.
//
// A [Tracker] owns a template shape. On pointer-down it stamps a clone of the
// template at the press point; while the pointer drags, the stamp rotates to
// follow the pointer and scales with the drag distance, both about the fixed
// press point; on release a clone of the result is handed to the caller.
//
// # Quick start
//
//	tracker := twirl.NewTracker(surface, twirl.Options{})
//	tracker.SetTemplate(twirl.NewPolygon([]twirl.Point{
//		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8},
//	}))
//	tracker.OnDone(func(ctx twirl.DoneContext) {
//		// ctx.Shape is a finished, caller-owned clone.
//	})
//	tracker.Attach(input)
//
// Rendering and input are host concerns behind two small interfaces,
// [Surface] and [InputSource]. Two hosts ship with the library: canvas
// (Ebitengine window) and term (tcell terminal). Any pair of implementations
// works; a nil Surface runs the engine headless.
//
// # Geometry
//
// Shapes implement the five-method [Shape] interface (clone, bounds, move,
// rotate, resize). [Marker], [Polyline], [Polygon], and [Group] are provided;
// callers may supply their own. All angles are degrees, clockwise in the
// Y-down coordinate space shared with Ebitengine.
//
// The engine is single-threaded: call it only from the loop that delivers
// pointer events.
package twirl
