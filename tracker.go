package twirl

import "math"

// Options configures a Tracker. The zero value is a sensible default: the
// working shape renders with DefaultStyle, the pointer leaving the host
// cancels the session, and angle snapping is off.
type Options struct {
	// Style used when adding the working shape to the surface.
	// The zero Style means DefaultStyle.
	Style Style
	// KeepOnLeave stops pointer-leave events from cancelling the session.
	KeepOnLeave bool
	// SnapAngle snaps the tracked angle to multiples of this many degrees.
	// Zero or negative disables snapping.
	SnapAngle float64
}

// Tracker owns the drag-to-transform session: the template shape, and while
// a drag is active, the fixed origin, the cumulative angle, the last observed
// radius, and the working shape.
//
// Lifecycle: Idle → Start → Dragging → Move* → End/Cancel → Idle. All methods
// must be called from the single loop that delivers pointer events.
type Tracker struct {
	surface  Surface
	opts     Options
	handlers CallbackRegistry

	template Shape

	state   State
	origin  Point
	angle   float64 // cumulative degrees since session start
	radius  float64 // last observed origin→pointer distance
	working Shape
	// rendered is the shape currently on the surface. It outlives the
	// session (finalize keeps it visible) and is removed by clearRendered.
	rendered Shape

	attached      InputSource
	attachHandles []CallbackHandle
}

// NewTracker creates a tracker rendering to surface. A nil surface runs the
// tracker headless: sessions work normally, rendering calls are skipped.
func NewTracker(surface Surface, opts Options) *Tracker {
	if opts.Style == (Style{}) {
		opts.Style = DefaultStyle
	}
	return &Tracker{surface: surface, opts: opts}
}

// SetTemplate sets the template shape cloned at every session start. The
// tracker takes ownership; the template itself is never transformed. A nil
// template makes Start a no-op.
func (t *Tracker) SetTemplate(s Shape) {
	t.template = s
}

// Template returns the current template shape.
func (t *Tracker) Template() Shape {
	return t.template
}

// State returns the tracker's position in the session lifecycle.
func (t *Tracker) State() State {
	return t.state
}

// Origin returns the session's fixed anchor point. Zero when idle.
func (t *Tracker) Origin() Point {
	return t.origin
}

// Angle returns the cumulative rotation in degrees applied to the working
// shape since session start. Zero when idle.
func (t *Tracker) Angle() float64 {
	return t.angle
}

// Radius returns the last observed origin→pointer distance. Right after
// Start it holds the template's native width instead, so the first move
// normalizes the shape to the first observed distance.
func (t *Tracker) Radius() float64 {
	return t.radius
}

// --- Callback registration ---

// OnCreate registers a callback fired at session start with the origin and
// the live working shape. The shape is tracker-owned until the session ends;
// treat it as read-only.
func (t *Tracker) OnCreate(fn func(CreateContext)) CallbackHandle {
	return t.handlers.OnCreate(fn)
}

// OnDone registers a callback fired by the pointer-up wiring with a clone of
// the finalized shape. Recipients own the clone.
func (t *Tracker) OnDone(fn func(DoneContext)) CallbackHandle {
	return t.handlers.OnDone(fn)
}

// OnCancel registers a callback fired on Cancel with a clone of the working
// shape as it stood at cancellation.
func (t *Tracker) OnCancel(fn func(CancelContext)) CallbackHandle {
	return t.handlers.OnCancel(fn)
}

// --- Session ---

// Start begins a drag session anchored at p. Without a template this is a
// no-op. Any previously rendered working shape is cleared first, so calling
// Start mid-session restarts cleanly.
//
// The template is cloned, the clone's bottom-left bounds corner is moved onto
// p, and the radius is seeded with the clone's native width so the first Move
// normalizes the shape to the first observed pointer distance.
func (t *Tracker) Start(p Point) {
	if t.template == nil {
		Logger().Debug("twirl: start ignored, no template")
		return
	}
	t.clearRendered()

	working := t.template.Clone()
	b := working.Bounds()
	working.Move(p.X-b.Left, p.Y-b.Bottom)

	t.working = working
	t.rendered = working
	t.origin = p
	t.angle = 0
	t.radius = math.Abs(b.Width())
	t.state = StateDragging

	if t.surface != nil {
		t.surface.Add(working, t.opts.Style)
	}
	Logger().Debug("twirl: session start", "x", p.X, "y", p.Y, "radius", t.radius)
	t.handlers.fireCreate(CreateContext{Origin: p, Shape: working})
}

// Move advances the session to pointer position p: the working shape is
// rotated by the angle delta since the previous frame, then scaled by the
// radius ratio, both about the fixed origin, and the surface is asked to
// repaint. Without an active session this is a no-op.
//
// Degenerate cases never reach the shape as NaN or Inf: a pointer exactly on
// the origin skips the whole frame (its angle is meaningless and a zero
// factor would collapse the shape beyond recovery), and a zero radius from a
// zero-width template skips only the scale step for that frame.
func (t *Tracker) Move(p Point) {
	if t.state != StateDragging {
		return
	}
	newRadius := dist(t.origin, p)
	if newRadius == 0 {
		return
	}

	newAngle := snapDeg(angleDeg(t.origin, p), t.opts.SnapAngle)
	t.working.Rotate(newAngle-t.angle, t.origin)
	t.angle = newAngle

	if t.radius > 0 {
		t.working.Resize(newRadius/t.radius, t.origin)
	}
	t.radius = newRadius

	if t.surface != nil {
		t.surface.Redraw(t.working)
	}
}

// End finalizes the session and returns a clone of the final working shape,
// or nil when no session is active. No cancel event fires; terminal delivery
// is the caller's business (PointerUp does it for attached trackers). The
// rendered shape stays on the surface until the next Start or clear.
func (t *Tracker) End() Shape {
	if t.state != StateDragging {
		return nil
	}
	out := t.working.Clone()
	t.finalize()
	Logger().Debug("twirl: session end")
	return out
}

// Cancel aborts the session: fires the cancel callbacks with a clone of the
// working shape, then finalizes and clears the rendering. Idempotent; with
// no active session nothing fires.
func (t *Tracker) Cancel() {
	if t.state != StateDragging {
		return
	}
	clone := t.working.Clone()
	t.handlers.fireCancel(CancelContext{Shape: clone})
	t.finalize()
	t.clearRendered()
	Logger().Debug("twirl: session cancelled")
}

// finalize resets all session state to Idle. Safe to call repeatedly.
func (t *Tracker) finalize() {
	t.origin = Point{}
	t.angle = 0
	t.radius = 0
	t.working = nil
	t.state = StateIdle
}

// clearRendered removes the rendered working shape from the surface.
// Callable in any state.
func (t *Tracker) clearRendered() {
	if t.rendered == nil {
		return
	}
	if t.surface != nil {
		t.surface.Remove(t.rendered)
	}
	t.rendered = nil
}

// --- Pointer wiring ---

// PointerDown is the pointer-press handler; it starts a session.
func (t *Tracker) PointerDown(p Point) {
	t.Start(p)
}

// PointerMove is the pointer-move handler; it advances the session.
func (t *Tracker) PointerMove(p Point) {
	t.Move(p)
}

// PointerUp is the pointer-release handler: it ends the session, delivers
// the finalized clone to the done callbacks, and clears the rendering.
func (t *Tracker) PointerUp(p Point) {
	s := t.End()
	if s == nil {
		return
	}
	t.handlers.fireDone(DoneContext{Shape: s})
	t.clearRendered()
}

// PointerLeave is the pointer-leave handler: it cancels the session unless
// Options.KeepOnLeave is set.
func (t *Tracker) PointerLeave(p Point) {
	if t.opts.KeepOnLeave {
		return
	}
	t.Cancel()
}

// Attach registers the tracker's four pointer handlers with src. Attaching
// while already attached detaches first, so a tracker follows at most one
// input source.
func (t *Tracker) Attach(src InputSource) {
	if t.attached != nil {
		t.Detach()
	}
	t.attached = src
	t.attachHandles = []CallbackHandle{
		src.OnPointerDown(t.PointerDown),
		src.OnPointerMove(t.PointerMove),
		src.OnPointerUp(t.PointerUp),
		src.OnPointerLeave(t.PointerLeave),
	}
}

// Detach unregisters the pointer handlers. A session in flight is cancelled,
// since no further pointer events can finish it. Safe when not attached.
func (t *Tracker) Detach() {
	if t.attached == nil {
		return
	}
	t.Cancel()
	for _, h := range t.attachHandles {
		h.Remove()
	}
	t.attachHandles = nil
	t.attached = nil
}
