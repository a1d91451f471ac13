package willowxr

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Bridge drives one flat UI surface from 3D pointer input. It owns the
// conversion from 3D hit points to the surface's pixel space and the
// hover / held / last-position state that keeps pointer events continuous
// while a ray slides on and off the panel.
//
// A Bridge lives under a Surface node built by World.NewSurface:
//
//	Surface (node)
//	└── Quad (visual proxy, UI texture)
//	    └── Area (hit box, collision layer)
type Bridge struct {
	id    SurfaceID
	world *World
	cfg   SurfaceConfig
	ui    UISurface

	node *Node
	quad *Node
	area *Node

	quadSize mgl64.Vec2

	held       bool
	inside     bool
	lastLocal  mgl64.Vec3
	hasLast    bool
	lastCursor mgl64.Vec2

	enterHandle CallbackHandle
	closed      bool
}

// ID returns the surface's registry handle.
func (b *Bridge) ID() SurfaceID { return b.id }

// Node returns the surface root node.
func (b *Bridge) Node() *Node { return b.node }

// Quad returns the visual proxy node.
func (b *Bridge) Quad() *Node { return b.quad }

// Area returns the hit region node.
func (b *Bridge) Area() *Node { return b.area }

// UI returns the surface the bridge pushes events into.
func (b *Bridge) UI() UISurface { return b.ui }

// Config returns the config the surface was built with.
func (b *Bridge) Config() SurfaceConfig { return b.cfg }

// PlaneSize returns the quad's physical width and height.
func (b *Bridge) PlaneSize() mgl64.Vec2 { return b.quadSize }

// IsPointerHeld reports whether a press has not yet been released.
func (b *Bridge) IsPointerHeld() bool { return b.held }

// IsPointerOver reports whether the last resolved event hit the surface.
func (b *Bridge) IsPointerOver() bool { return b.inside }

// LastCursor returns the position of the most recently emitted event.
func (b *Bridge) LastCursor() mgl64.Vec2 { return b.lastCursor }

// LastLocalHit returns the most recent hit point in the area's local space.
func (b *Bridge) LastLocalHit() (mgl64.Vec3, bool) { return b.lastLocal, b.hasLast }

// Closed reports whether the bridge has been torn down.
func (b *Bridge) Closed() bool { return b.closed }

// --- Geometry ---

// PlaneToSurface converts a point in the area's local space to surface pixels.
// The local Y axis points up while surface Y points down, and the plane is
// centered on the local origin while surface pixels start at the top-left.
func (b *Bridge) PlaneToSurface(local mgl64.Vec3) mgl64.Vec2 {
	w, h := b.ui.Size()
	p := mgl64.Vec2{local.X(), -local.Y()}
	p[0] += b.quadSize.X() / 2
	p[1] += b.quadSize.Y() / 2
	p[0] /= b.quadSize.X()
	p[1] /= b.quadSize.Y()
	p[0] *= float64(w)
	p[1] *= float64(h)
	return p
}

// SurfaceToPlane is the inverse of PlaneToSurface on the plane z = 0.
func (b *Bridge) SurfaceToPlane(px mgl64.Vec2) mgl64.Vec3 {
	w, h := b.ui.Size()
	x := px.X()/float64(w)*b.quadSize.X() - b.quadSize.X()/2
	y := px.Y()/float64(h)*b.quadSize.Y() - b.quadSize.Y()/2
	return mgl64.Vec3{x, -y, 0}
}

// Corners returns the quad footprint's world-space corners in the order
// top-right, bottom-right, top-left, bottom-left.
func (b *Bridge) Corners() [4]mgl64.Vec3 {
	hx, hy := b.quadSize.X()/2, b.quadSize.Y()/2
	return [4]mgl64.Vec3{
		b.area.ToGlobal(mgl64.Vec3{hx, hy, 0}),
		b.area.ToGlobal(mgl64.Vec3{hx, -hy, 0}),
		b.area.ToGlobal(mgl64.Vec3{-hx, hy, 0}),
		b.area.ToGlobal(mgl64.Vec3{-hx, -hy, 0}),
	}
}

// --- Input paths ---

// HandleInput is the unhandled-input path. Pointer events are converted when
// the cursor is over the surface or a press is held; other pointer events are
// not meant for this surface and are ignored. Non-pointer events pass
// through to the UI untouched.
func (b *Bridge) HandleInput(ev InputEvent) {
	if b.closed {
		return
	}
	pe, ok := ev.(PointerEvent)
	if !ok {
		b.ui.PushInput(ev)
		return
	}
	if b.inside || b.held {
		b.HandlePointer(pe)
	}
}

// HandlePointer converts a raw screen-space pointer event by casting the
// camera ray under ev.Position against this surface's hit region.
func (b *Bridge) HandlePointer(ev PointerEvent) {
	point, ok := b.findMouse(ev.Position)
	b.inside = ok
	b.emit(ev, point)
}

// HandlePointerAt converts ev using a hit point the caller already resolved.
// The point is in world space.
func (b *Bridge) HandlePointerAt(ev PointerEvent, point mgl64.Vec3) {
	b.inside = true
	b.emit(ev, point)
}

// HandleSyntheticMotion feeds a motion event at a world-space hit point.
func (b *Bridge) HandleSyntheticMotion(point mgl64.Vec3) {
	if b.closed {
		return
	}
	b.HandlePointerAt(PointerEvent{Kind: PointerMotion}, point)
}

// HandleSyntheticClick feeds a left-button press or release at a world-space
// hit point.
func (b *Bridge) HandleSyntheticClick(point mgl64.Vec3, pressed bool) {
	if b.closed {
		return
	}
	kind := PointerButtonUp
	if pressed {
		kind = PointerButtonDown
	}
	b.HandlePointerAt(PointerEvent{Kind: kind, Button: MouseButtonLeft}, point)
}

// HandleSyntheticLeave tells the surface a ray stopped targeting it. No event
// is emitted; a held press keeps reporting the last known point.
func (b *Bridge) HandleSyntheticLeave() {
	b.inside = false
}

// emit resolves the effective point for ev, converts it to surface pixels and
// pushes the event. Every call emits exactly one event.
func (b *Bridge) emit(ev PointerEvent, point mgl64.Vec3) {
	if ev.IsButton() {
		b.held = ev.Pressed()
	}

	var local mgl64.Vec3
	switch {
	case b.inside:
		local = b.area.ToLocal(point)
		b.lastLocal = local
		b.hasLast = true
	case b.hasLast:
		local = b.lastLocal
	}

	pos := b.PlaneToSurface(local)
	ev.Position = pos
	if ev.Kind == PointerMotion {
		ev.Relative = pos.Sub(b.lastCursor)
	}
	b.lastCursor = pos

	b.ui.PushInput(ev)
	b.world.emitInteraction(b.id, ev)
}

// findMouse casts the camera ray under a screen position against the hit
// region. The ray reaches the quad corner furthest from the camera, so it
// spans the whole panel even at grazing angles.
func (b *Bridge) findMouse(screen mgl64.Vec2) (mgl64.Vec3, bool) {
	cam := b.world.camera
	if cam == nil {
		return mgl64.Vec3{}, false
	}
	corners := b.Corners()
	origin := cam.ProjectRayOrigin(screen)
	hit, ok := b.world.space.IntersectRay(RayQuery{
		Origin:        origin,
		Direction:     cam.ProjectRayNormal(screen),
		MaxDistance:   furthestDistance(cam.Origin(), corners[:]),
		CollisionMask: b.area.CollisionLayer,
	})
	if !ok || hit.Collider != b.area {
		return mgl64.Vec3{}, false
	}
	return hit.Position, true
}

// mouseEntered marks the surface as a routing candidate. Each event still
// confirms the hit with its own ray query.
func (b *Bridge) mouseEntered() {
	b.inside = true
}

// Close tears the bridge down: it unsubscribes from the area's enter signal,
// leaves the registry and removes its hit region from the space. The nodes
// stay in the tree. Disposing the surface node closes the bridge as well.
func (b *Bridge) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.enterHandle.Remove()
	b.node.onDispose = nil
	b.world.detachSurface(b)
}
