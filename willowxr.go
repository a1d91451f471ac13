package willowxr

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// ToRGBA converts c to a premultiplied color.RGBA for image fills and vertex tints.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// NodeType distinguishes the role a Node plays in the panel ownership chain.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // plain transform group
	NodeTypeSurface                   // root of a panel, owns a Bridge through the registry
	NodeTypeQuad                      // visual proxy the UI texture is painted onto
	NodeTypeArea                      // hit region collider tested by ray queries
)

// String returns a lowercase name for the node type.
func (t NodeType) String() string {
	switch t {
	case NodeTypeContainer:
		return "container"
	case NodeTypeSurface:
		return "surface"
	case NodeTypeQuad:
		return "quad"
	case NodeTypeArea:
		return "area"
	default:
		return "unknown"
	}
}

// PointerKind identifies the shape of a PointerEvent.
type PointerKind uint8

const (
	PointerMotion     PointerKind = iota // pointer moved; Relative is valid
	PointerButtonDown                    // a button was pressed
	PointerButtonUp                      // a button was released
)

// String returns a lowercase name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerMotion:
		return "motion"
	case PointerButtonDown:
		return "down"
	case PointerButtonUp:
		return "up"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EventType identifies a kind of registered callback.
type EventType uint8

const (
	EventMouseEntered EventType = iota // direct cursor ray started hitting an area
	EventMouseExited                   // direct cursor ray stopped hitting an area
	EventPointer                       // converted pointer event reached a viewport
	EventInput                         // any input event reached a viewport
)
