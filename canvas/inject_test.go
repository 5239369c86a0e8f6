package canvas

import "testing"

func TestInjectQueueOrder(t *testing.T) {
	c := New(640, 480)

	c.InjectPress(10, 20)
	c.InjectMove(30, 40)
	c.InjectRelease(50, 60)

	if len(c.injectQueue) != 3 {
		t.Fatalf("expected 3 events, got %d", len(c.injectQueue))
	}
	if !c.injectQueue[0].pressed || c.injectQueue[0].x != 10 {
		t.Error("first event should be press at (10,20)")
	}
	if !c.injectQueue[1].pressed || c.injectQueue[1].x != 30 {
		t.Error("second event should be move at (30,40)")
	}
	if c.injectQueue[2].pressed || c.injectQueue[2].x != 50 {
		t.Error("third event should be release at (50,60)")
	}
}

func TestInjectDragMinFrames(t *testing.T) {
	c := New(640, 480)
	c.InjectDrag(0, 0, 100, 100, 1) // should clamp to 2
	if len(c.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events (clamped), got %d", len(c.injectQueue))
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	c := New(640, 480)
	c.InjectDrag(0, 0, 100, 0, 4)
	if len(c.injectQueue) != 4 {
		t.Fatalf("expected 4 queued events, got %d", len(c.injectQueue))
	}
	// Two intermediate moves at 1/3 and 2/3 of the way.
	if x := c.injectQueue[1].x; x < 33 || x > 34 {
		t.Errorf("first move x = %v, want ~33.3", x)
	}
	if x := c.injectQueue[2].x; x < 66 || x > 67 {
		t.Errorf("second move x = %v, want ~66.7", x)
	}
}

func TestInjectConsumedOnePerUpdate(t *testing.T) {
	c := New(640, 480)
	c.InjectDrag(10, 10, 50, 50, 3)

	c.Update()
	if len(c.injectQueue) != 2 {
		t.Fatalf("expected 2 remaining after frame 1, got %d", len(c.injectQueue))
	}
	c.Update()
	c.Update()
	if len(c.injectQueue) != 0 {
		t.Fatalf("expected empty queue, got %d", len(c.injectQueue))
	}
}

func TestProcessInjectedInputEmptyQueue(t *testing.T) {
	c := New(640, 480)
	if c.processInjectedInput() {
		t.Error("should not consume when queue is empty")
	}
}
