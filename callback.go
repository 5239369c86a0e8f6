package twirl

// EventType identifies a kind of callback registration.
type EventType uint8

const (
	EventPointerDown  EventType = iota // pointer button pressed
	EventPointerMove                   // pointer moved
	EventPointerUp                     // pointer button released
	EventPointerLeave                  // pointer left the host surface
	EventCreate                        // session started, working shape stamped
	EventDone                          // session finalized by release
	EventCancel                        // session aborted
)

// PointerFunc is a pointer-event callback. The position is in the tracker's
// coordinate space.
type PointerFunc func(p Point)

// CreateContext is delivered to OnCreate callbacks at session start.
// Shape is the live working shape, owned by the tracker until the session
// ends; treat it as read-only.
type CreateContext struct {
	Origin Point
	Shape  Shape
}

// DoneContext is delivered to OnDone callbacks after a session finalizes via
// pointer-up. Shape is a clone owned by the recipient.
type DoneContext struct {
	Shape Shape
}

// CancelContext is delivered to OnCancel callbacks when a session aborts.
// Shape is a clone of the working shape as it stood at cancellation.
type CancelContext struct {
	Shape Shape
}

type pointerHandler struct {
	id uint32
	fn PointerFunc
}

type createHandler struct {
	id uint32
	fn func(CreateContext)
}

type doneHandler struct {
	id uint32
	fn func(DoneContext)
}

type cancelHandler struct {
	id uint32
	fn func(CancelContext)
}

// CallbackRegistry stores removable callbacks per event type. The zero value
// is ready to use. Tracker embeds one for its session events; host input
// sources embed one to satisfy InputSource and dispatch with the Fire
// methods.
type CallbackRegistry struct {
	pointerDown  []pointerHandler
	pointerMove  []pointerHandler
	pointerUp    []pointerHandler
	pointerLeave []pointerHandler
	create       []createHandler
	done         []doneHandler
	cancel       []cancelHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *CallbackRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removePointerHandler(h.reg.pointerDown, h.id)
	case EventPointerMove:
		h.reg.pointerMove = removePointerHandler(h.reg.pointerMove, h.id)
	case EventPointerUp:
		h.reg.pointerUp = removePointerHandler(h.reg.pointerUp, h.id)
	case EventPointerLeave:
		h.reg.pointerLeave = removePointerHandler(h.reg.pointerLeave, h.id)
	case EventCreate:
		h.reg.create = removeCreateHandler(h.reg.create, h.id)
	case EventDone:
		h.reg.done = removeDoneHandler(h.reg.done, h.id)
	case EventCancel:
		h.reg.cancel = removeCancelHandler(h.reg.cancel, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeCreateHandler(s []createHandler, id uint32) []createHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = createHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeDoneHandler(s []doneHandler, id uint32) []doneHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = doneHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeCancelHandler(s []cancelHandler, id uint32) []cancelHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = cancelHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Registration ---

// OnPointerDown registers a callback for pointer press events.
func (r *CallbackRegistry) OnPointerDown(fn PointerFunc) CallbackHandle {
	r.nextID++
	r.pointerDown = append(r.pointerDown, pointerHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: EventPointerDown}
}

// OnPointerMove registers a callback for pointer move events.
func (r *CallbackRegistry) OnPointerMove(fn PointerFunc) CallbackHandle {
	r.nextID++
	r.pointerMove = append(r.pointerMove, pointerHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: EventPointerMove}
}

// OnPointerUp registers a callback for pointer release events.
func (r *CallbackRegistry) OnPointerUp(fn PointerFunc) CallbackHandle {
	r.nextID++
	r.pointerUp = append(r.pointerUp, pointerHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: EventPointerUp}
}

// OnPointerLeave registers a callback for pointer-leave events.
func (r *CallbackRegistry) OnPointerLeave(fn PointerFunc) CallbackHandle {
	r.nextID++
	r.pointerLeave = append(r.pointerLeave, pointerHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: EventPointerLeave}
}

// OnCreate registers a callback fired at session start.
func (r *CallbackRegistry) OnCreate(fn func(CreateContext)) CallbackHandle {
	r.nextID++
	r.create = append(r.create, createHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: EventCreate}
}

// OnDone registers a callback fired when a session finalizes via pointer-up.
func (r *CallbackRegistry) OnDone(fn func(DoneContext)) CallbackHandle {
	r.nextID++
	r.done = append(r.done, doneHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: EventDone}
}

// OnCancel registers a callback fired when a session aborts.
func (r *CallbackRegistry) OnCancel(fn func(CancelContext)) CallbackHandle {
	r.nextID++
	r.cancel = append(r.cancel, cancelHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: EventCancel}
}

// --- Dispatch ---

// FirePointerDown invokes all pointer-down callbacks in registration order.
func (r *CallbackRegistry) FirePointerDown(p Point) {
	for _, h := range r.pointerDown {
		h.fn(p)
	}
}

// FirePointerMove invokes all pointer-move callbacks in registration order.
func (r *CallbackRegistry) FirePointerMove(p Point) {
	for _, h := range r.pointerMove {
		h.fn(p)
	}
}

// FirePointerUp invokes all pointer-up callbacks in registration order.
func (r *CallbackRegistry) FirePointerUp(p Point) {
	for _, h := range r.pointerUp {
		h.fn(p)
	}
}

// FirePointerLeave invokes all pointer-leave callbacks in registration order.
func (r *CallbackRegistry) FirePointerLeave(p Point) {
	for _, h := range r.pointerLeave {
		h.fn(p)
	}
}

func (r *CallbackRegistry) fireCreate(ctx CreateContext) {
	for _, h := range r.create {
		h.fn(ctx)
	}
}

func (r *CallbackRegistry) fireDone(ctx DoneContext) {
	for _, h := range r.done {
		h.fn(ctx)
	}
}

func (r *CallbackRegistry) fireCancel(ctx CancelContext) {
	for _, h := range r.cancel {
		h.fn(ctx)
	}
}
