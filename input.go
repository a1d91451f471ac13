package willowxr

import "github.com/go-gl/mathgl/mgl64"

// --- Handler registry ---

type signalHandler struct {
	id uint32
	fn func()
}

type pointerHandler struct {
	id uint32
	fn func(PointerEvent)
}

type inputHandler struct {
	id uint32
	fn func(InputEvent)
}

type handlerRegistry struct {
	mouseEntered []signalHandler
	mouseExited  []signalHandler
	pointer      []pointerHandler
	input        []inputHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// Calling Remove more than once, or on a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventMouseEntered:
		h.reg.mouseEntered = removeSignalHandler(h.reg.mouseEntered, h.id)
	case EventMouseExited:
		h.reg.mouseExited = removeSignalHandler(h.reg.mouseExited, h.id)
	case EventPointer:
		h.reg.pointer = removePointerHandler(h.reg.pointer, h.id)
	case EventInput:
		h.reg.input = removeInputHandler(h.reg.input, h.id)
	}
}

func removeSignalHandler(s []signalHandler, id uint32) []signalHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = signalHandler{}
			return s[:len(s)-1]
		}
	}
	return s
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

func removeInputHandler(s []inputHandler, id uint32) []inputHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = inputHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) addSignal(event EventType, fn func()) CallbackHandle {
	r.nextID++
	id := r.nextID
	h := signalHandler{id: id, fn: fn}
	if event == EventMouseExited {
		r.mouseExited = append(r.mouseExited, h)
	} else {
		r.mouseEntered = append(r.mouseEntered, h)
	}
	return CallbackHandle{id: id, reg: r, event: event}
}

// --- Area signals ---

// OnMouseEntered registers a callback fired when the direct cursor ray starts
// hitting this area. Only meaningful on NodeTypeArea nodes.
func (n *Node) OnMouseEntered(fn func()) CallbackHandle {
	return n.handlers.addSignal(EventMouseEntered, fn)
}

// OnMouseExited registers a callback fired when the direct cursor ray stops
// hitting this area.
func (n *Node) OnMouseExited(fn func()) CallbackHandle {
	return n.handlers.addSignal(EventMouseExited, fn)
}

func (n *Node) fireMouseEntered() {
	for _, h := range n.handlers.mouseEntered {
		h.fn()
	}
}

func (n *Node) fireMouseExited() {
	for _, h := range n.handlers.mouseExited {
		h.fn()
	}
}

// --- World input routing ---

// HandleInput routes one raw input event through the world. Pointer events
// first update which area lies under the direct cursor (firing enter / exit
// signals), then every surface gets the event on its unhandled-input path.
func (w *World) HandleInput(ev InputEvent) {
	if pe, ok := ev.(PointerEvent); ok {
		w.trackCursor(pe.Position)
	}
	// Copy so a handler that removes a surface does not disturb iteration.
	w.routeBuf = append(w.routeBuf[:0], w.surfaces...)
	for _, b := range w.routeBuf {
		b.HandleInput(ev)
	}
	clear(w.routeBuf)
}

// trackCursor casts the camera ray under the screen position and fires enter
// and exit signals when the hit area changes.
func (w *World) trackCursor(screen mgl64.Vec2) {
	var target *Node
	if w.camera != nil {
		origin := w.camera.ProjectRayOrigin(screen)
		hit, ok := w.space.IntersectRay(RayQuery{
			Origin:        origin,
			Direction:     w.camera.ProjectRayNormal(screen),
			MaxDistance:   w.camera.Far,
			CollisionMask: allLayers,
		})
		if ok {
			target = hit.Collider
		}
	}
	if target == w.cursorArea {
		return
	}
	prev := w.cursorArea
	w.cursorArea = target
	if prev != nil && !prev.IsDisposed() {
		prev.fireMouseExited()
	}
	if target != nil {
		w.debugLogf("cursor entered area %q", target.Name)
		target.fireMouseEntered()
	}
}
