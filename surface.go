package twirl

// Surface is the render collaborator. The tracker adds its working shape on
// session start, redraws it after every transform, and removes it at session
// end; how (and whether) the shape reaches pixels is entirely the host's
// business. A nil Surface on the tracker skips all rendering calls.
type Surface interface {
	// Add registers a shape for rendering with the given style.
	Add(s Shape, style Style)
	// Remove unregisters a previously added shape. Unknown shapes are a no-op.
	Remove(s Shape)
	// Redraw signals that a registered shape mutated and needs repainting.
	Redraw(s Shape)
	// Clear removes every registered shape.
	Clear()
}

// InputSource delivers pointer events with positions already projected into
// the tracker's coordinate space. Tracker.Attach registers its four pointer
// methods here; hosts fire them from their event loop.
type InputSource interface {
	OnPointerDown(fn PointerFunc) CallbackHandle
	OnPointerMove(fn PointerFunc) CallbackHandle
	OnPointerUp(fn PointerFunc) CallbackHandle
	OnPointerLeave(fn PointerFunc) CallbackHandle
}
