package willowxr

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// UISurface is the flat UI that a Bridge drives. It receives fully resolved
// pixel-space events and knows nothing about 3D.
type UISurface interface {
	PushInput(ev InputEvent)
	Size() (width, height int)
}

// Viewport is the default UISurface: a fixed-size offscreen render target
// plus the handlers that consume the events pushed into it.
type Viewport struct {
	width, height int
	img           *ebiten.Image
	handlers      handlerRegistry
}

// NewViewport creates a viewport with the given pixel size. The backing image
// is allocated on first use of Image.
func NewViewport(width, height int) *Viewport {
	return &Viewport{width: width, height: height}
}

// Size returns the viewport's pixel dimensions.
func (v *Viewport) Size() (int, int) {
	return v.width, v.height
}

// Image returns the render target the UI draws into, allocating it if needed.
func (v *Viewport) Image() *ebiten.Image {
	if v.img == nil {
		w, h := v.width, v.height
		if w <= 0 || h <= 0 {
			w, h = 1, 1
		}
		v.img = ebiten.NewImageWithOptions(image.Rect(0, 0, w, h), nil)
	}
	return v.img
}

// Dispose releases the backing image. The viewport may be reused; Image
// allocates a fresh target.
func (v *Viewport) Dispose() {
	if v.img != nil {
		v.img.Deallocate()
		v.img = nil
	}
}

// OnPointer registers a callback for every pointer event pushed into the viewport.
func (v *Viewport) OnPointer(fn func(PointerEvent)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.pointer = append(v.handlers.pointer, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventPointer}
}

// OnInput registers a callback for every event pushed into the viewport,
// pointer or not.
func (v *Viewport) OnInput(fn func(InputEvent)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.input = append(v.handlers.input, inputHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventInput}
}

// PushInput delivers an event to the registered handlers. Generic input
// handlers run first, then pointer handlers for pointer events.
func (v *Viewport) PushInput(ev InputEvent) {
	for _, h := range v.handlers.input {
		h.fn(ev)
	}
	pe, ok := ev.(PointerEvent)
	if !ok {
		return
	}
	for _, h := range v.handlers.pointer {
		h.fn(pe)
	}
}
