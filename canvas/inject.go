package canvas

// syntheticPointerEvent represents a single injected pointer event in canvas
// coordinates, fed through the same edge detection as real mouse input.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	leave   bool
}

// InjectPress queues a pointer press at the given canvas coordinates.
// The event is consumed on the next Update call, replacing real mouse input
// for that frame.
func (c *Canvas) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (c *Canvas) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given canvas coordinates.
func (c *Canvas) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectLeave queues a pointer-leave event, as if the cursor left the canvas.
func (c *Canvas) InjectLeave() {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: -1, y: -1, leave: true})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes `frames` Update calls. Minimum frames
// is 2 (press + release).
func (c *Canvas) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the pointer state machine. Returns true if an event was consumed
// (real mouse input is skipped for this frame).
func (c *Canvas) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	if evt.leave {
		c.processLeave(evt.x, evt.y)
		return true
	}
	c.inside = true
	c.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
