package willowxr

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestInjectQueueCounts(t *testing.T) {
	w := NewWorld()
	w.InjectCursorMove(1, 1)
	w.InjectCursorClick(2, 2)
	if w.PendingInjections() != 3 {
		t.Errorf("pending = %d, want 3", w.PendingInjections())
	}

	w.InjectCursorDrag(0, 0, 10, 10, 5)
	if w.PendingInjections() != 8 {
		t.Errorf("pending = %d, want 8", w.PendingInjections())
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	w := NewWorld()
	w.InjectCursorDrag(0, 0, 10, 10, 0)
	if w.PendingInjections() != 2 {
		t.Errorf("pending = %d, want press + release", w.PendingInjections())
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	w := NewWorld()
	w.InjectCursorDrag(0, 0, 30, 60, 4)

	q := w.injectQueue
	if len(q) != 4 {
		t.Fatalf("queue len = %d, want 4", len(q))
	}
	if q[0].kind != PointerButtonDown || q[3].kind != PointerButtonUp {
		t.Error("drag should start with press and end with release")
	}
	if !vec2Approx(q[1].screen, mgl64.Vec2{10, 20}, epsilon) || !vec2Approx(q[2].screen, mgl64.Vec2{20, 40}, epsilon) {
		t.Errorf("moves = %v, %v", q[1].screen, q[2].screen)
	}
	if q[3].screen != (mgl64.Vec2{30, 60}) {
		t.Errorf("release at %v, want (30, 60)", q[3].screen)
	}
}

func TestInjectOneEventPerFrame(t *testing.T) {
	w, _, rec := newTestWorld(t)
	w.InjectCursorClick(400, 300)

	w.Update(frame)
	if w.PendingInjections() != 1 || len(rec.events) != 1 {
		t.Fatalf("after one frame: pending=%d events=%d", w.PendingInjections(), len(rec.events))
	}
	w.Update(frame)
	if w.PendingInjections() != 0 || len(rec.events) != 2 {
		t.Fatalf("after two frames: pending=%d events=%d", w.PendingInjections(), len(rec.events))
	}
	w.Update(frame)
	if len(rec.events) != 2 {
		t.Error("an empty queue should not emit")
	}
}

func TestInjectedClickThroughCamera(t *testing.T) {
	w, b, rec := newTestWorld(t)
	w.InjectCursorClick(400, 300)
	w.Update(frame)
	w.Update(frame)

	evs := rec.pointers()
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	if evs[0].Kind != PointerButtonDown || evs[1].Kind != PointerButtonUp {
		t.Errorf("kinds = %v, %v", evs[0].Kind, evs[1].Kind)
	}
	if !vec2Approx(evs[0].Position, mgl64.Vec2{400, 300}, 1e-6) {
		t.Errorf("press at %v, want (400, 300)", evs[0].Position)
	}
	if b.IsPointerHeld() {
		t.Error("click should leave the pointer released")
	}
}

func TestInjectedDragKeepsReportingOffSurface(t *testing.T) {
	w, _, rec := newTestWorld(t)
	// Starts on the panel center and ends in the screen corner, off the panel.
	w.InjectCursorDrag(400, 300, 0, 0, 4)
	for i := 0; i < 4; i++ {
		w.Update(frame)
	}

	evs := rec.pointers()
	if len(evs) != 4 {
		t.Fatalf("expected 4 events, got %d", len(evs))
	}
	last := evs[3]
	if last.Kind != PointerButtonUp {
		t.Errorf("last kind = %v, want up", last.Kind)
	}
	for i, ev := range evs {
		if ev.Position.X() < 0 || ev.Position.X() > 800 || ev.Position.Y() < 0 || ev.Position.Y() > 600 {
			t.Errorf("event %d at %v is outside the surface", i, ev.Position)
		}
	}
}
