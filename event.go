package willowxr

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputEvent is any event delivered to a surface. Pointer-class events are
// PointerEvent values; everything else passes through to the UI untouched.
type InputEvent interface {
	inputEvent()
}

// PointerEvent is a plain pointer event passed by value through the pipeline.
//
// Raw events from a screen carry the cursor position in Position. Once a
// Bridge has converted an event, Position is in the target surface's pixel
// space and Relative holds the motion delta since the previous emitted event.
type PointerEvent struct {
	Kind     PointerKind
	Position mgl64.Vec2
	Relative mgl64.Vec2  // valid for PointerMotion
	Button   MouseButton // valid for PointerButtonDown / PointerButtonUp
}

func (PointerEvent) inputEvent() {}

// IsButton reports whether the event is a press or release.
func (e PointerEvent) IsButton() bool {
	return e.Kind == PointerButtonDown || e.Kind == PointerButtonUp
}

// Pressed reports whether the event is a button press.
func (e PointerEvent) Pressed() bool {
	return e.Kind == PointerButtonDown
}

// KeyEvent is a keyboard edge event. Surfaces never convert it.
type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool
}

func (KeyEvent) inputEvent() {}

// InteractionEvent carries a converted pointer event for the ECS bridge.
type InteractionEvent struct {
	Surface SurfaceID
	Kind    PointerKind
	X, Y    float64
	DeltaX  float64 // valid for PointerMotion
	DeltaY  float64 // valid for PointerMotion
	Button  MouseButton
}

// EntityStore is the interface for optional ECS integration.
// When set on a World, every converted pointer event is forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}
