package willowxr

import "github.com/go-gl/mathgl/mgl64"

// syntheticPointerEvent represents a single injected cursor event in screen
// coordinates. It goes through HandleInput exactly like real mouse input.
type syntheticPointerEvent struct {
	screen mgl64.Vec2
	kind   PointerKind
	button MouseButton
}

// InjectCursorMove queues a cursor motion event at the given screen
// coordinates. The event is consumed on the next Update.
func (w *World) InjectCursorMove(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{
		screen: mgl64.Vec2{x, y},
		kind:   PointerMotion,
	})
}

// InjectCursorPress queues a left-button press at the given screen coordinates.
func (w *World) InjectCursorPress(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{
		screen: mgl64.Vec2{x, y},
		kind:   PointerButtonDown,
		button: MouseButtonLeft,
	})
}

// InjectCursorRelease queues a left-button release at the given screen coordinates.
func (w *World) InjectCursorRelease(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{
		screen: mgl64.Vec2{x, y},
		kind:   PointerButtonUp,
		button: MouseButtonLeft,
	})
}

// InjectCursorClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (w *World) InjectCursorClick(x, y float64) {
	w.InjectCursorPress(x, y)
	w.InjectCursorRelease(x, y)
}

// InjectCursorDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (w *World) InjectCursorDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	w.InjectCursorPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		w.InjectCursorMove(x, y)
	}
	w.InjectCursorRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (w *World) PendingInjections() int {
	return len(w.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through HandleInput. Returns true if an event was consumed.
func (w *World) processInjectedInput() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	w.HandleInput(PointerEvent{Kind: evt.kind, Position: evt.screen, Button: evt.button})
	return true
}
