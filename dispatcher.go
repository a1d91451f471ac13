package willowxr

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RaySource produces the world-space ray a dispatcher casts each tick.
type RaySource interface {
	Ray() (origin, direction mgl64.Vec3)
}

// StaticRay is a RaySource with a fixed origin and direction.
type StaticRay struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// Ray returns the stored ray.
func (r *StaticRay) Ray() (mgl64.Vec3, mgl64.Vec3) {
	return r.Origin, r.Direction
}

// NodeRay casts along a node's local -Z axis from its origin, the way a
// tracked controller points.
type NodeRay struct {
	Node *Node
}

// Ray returns the node's pointing ray in world space.
func (r NodeRay) Ray() (mgl64.Vec3, mgl64.Vec3) {
	origin := r.Node.ToGlobal(mgl64.Vec3{})
	tip := r.Node.ToGlobal(mgl64.Vec3{0, 0, -1})
	return origin, tip.Sub(origin)
}

// DispatcherState is the hover state of a dispatcher.
type DispatcherState uint8

const (
	DispatcherIdle     DispatcherState = iota // no surface targeted
	DispatcherHovering                        // a surface is targeted
)

// String returns a lowercase name for the state.
func (s DispatcherState) String() string {
	if s == DispatcherHovering {
		return "hovering"
	}
	return "idle"
}

// RayVisual is the presentational state of a dispatcher's ray. Alpha fades
// between 0 and 1 when the visual is shown or hidden.
type RayVisual struct {
	visible bool
	alpha   float64
	fade    float32
	tween   *gween.Tween
}

// Visible reports whether the ray is shown.
func (v *RayVisual) Visible() bool { return v.visible }

// Alpha returns the current fade level in [0, 1].
func (v *RayVisual) Alpha() float64 { return v.alpha }

func (v *RayVisual) setVisible(visible bool) {
	if v.visible == visible {
		return
	}
	v.visible = visible
	target := 0.0
	if visible {
		target = 1
	}
	if v.fade <= 0 {
		v.alpha = target
		v.tween = nil
		return
	}
	v.tween = gween.New(float32(v.alpha), float32(target), v.fade, ease.OutQuad)
}

// update advances the fade. Called from World.Update().
func (v *RayVisual) update(dt float32) {
	if v.tween == nil {
		return
	}
	val, done := v.tween.Update(dt)
	v.alpha = float64(val)
	if done {
		v.tween = nil
	}
}

// Dispatcher relays one ray source to the surfaces it points at. Each physics
// tick it resolves the hit collider to a surface through the ownership chain
// Area -> Quad -> Surface and feeds the hit point as motion; the primary
// action signal becomes a complete click at the current hit point.
type Dispatcher struct {
	Name string

	world  *World
	source RaySource
	cfg    DispatcherConfig

	hovered SurfaceID
	hit     RayHit
	visual  RayVisual
}

// Source returns the dispatcher's ray source.
func (d *Dispatcher) Source() RaySource { return d.source }

// SetSource replaces the ray source. Panics on nil.
func (d *Dispatcher) SetSource(src RaySource) {
	if src == nil {
		panic("willowxr: nil ray source")
	}
	d.source = src
}

// Config returns the dispatcher's config.
func (d *Dispatcher) Config() DispatcherConfig { return d.cfg }

// Visual returns the ray visualizer state.
func (d *Dispatcher) Visual() *RayVisual { return &d.visual }

// State returns Hovering while a surface is targeted.
func (d *Dispatcher) State() DispatcherState {
	if d.hovered != 0 {
		return DispatcherHovering
	}
	return DispatcherIdle
}

// HoveredID returns the handle of the targeted surface, or zero.
func (d *Dispatcher) HoveredID() SurfaceID { return d.hovered }

// Hovered resolves the targeted surface. It returns false when nothing is
// targeted or the surface has been torn down since the last tick.
func (d *Dispatcher) Hovered() (*Bridge, bool) {
	return d.world.registry.Lookup(d.hovered)
}

// LastHit returns the most recent successful ray hit.
func (d *Dispatcher) LastHit() RayHit { return d.hit }

// PhysicsProcess evaluates one tick: cast the ray, resolve the target and
// relay motion, or drop back to Idle.
func (d *Dispatcher) PhysicsProcess() {
	origin, dir := d.source.Ray()
	hit, ok := d.world.space.IntersectRay(RayQuery{
		Origin:        origin,
		Direction:     dir,
		MaxDistance:   d.cfg.RayLength,
		CollisionMask: d.cfg.CollisionMask,
	})
	if ok {
		d.handleCollision(hit)
	} else if d.hovered != 0 || d.visual.Visible() {
		d.hide()
	}
}

func (d *Dispatcher) handleCollision(hit RayHit) {
	b, ok := d.resolve(hit.Collider)
	if !ok {
		if d.hovered != 0 || d.visual.Visible() {
			d.world.debugLogf("dispatcher %q: collider %q is not a surface hit region", d.Name, colliderName(hit.Collider))
		}
		d.hide()
		return
	}
	if d.hovered != b.ID() {
		if d.hovered != 0 {
			d.leave(d.hovered)
		}
		d.world.debugLogf("dispatcher %q: hovering surface %q", d.Name, b.cfg.Name)
	}
	d.visual.setVisible(true)
	d.hovered = b.ID()
	d.hit = hit
	b.HandleSyntheticMotion(hit.Position)
}

// resolve walks collider -> quad -> surface and looks the surface up in the
// registry. Any collider outside that structure resolves to no surface.
func (d *Dispatcher) resolve(collider *Node) (*Bridge, bool) {
	if collider == nil || collider.Type != NodeTypeArea {
		return nil, false
	}
	quad := collider.Parent
	if quad == nil || quad.Type != NodeTypeQuad {
		return nil, false
	}
	surface := quad.Parent
	if surface == nil || surface.Type != NodeTypeSurface {
		return nil, false
	}
	b, ok := d.world.registry.Lookup(surface.surfaceID)
	if !ok || b.area != collider {
		return nil, false
	}
	return b, true
}

func (d *Dispatcher) hide() {
	if d.hovered != 0 {
		d.world.debugLogf("dispatcher %q: idle", d.Name)
		d.leave(d.hovered)
	}
	d.visual.setVisible(false)
	d.hovered = 0
}

// leave tells the previous target it lost the ray when StrictLeave is set.
func (d *Dispatcher) leave(id SurfaceID) {
	if !d.cfg.StrictLeave {
		return
	}
	if b, ok := d.world.registry.Lookup(id); ok {
		b.HandleSyntheticLeave()
	}
}

// HandleButton receives a named button signal from the ray source. Only the
// primary action fires, and only while a surface is targeted; the press and
// release are delivered together at the current hit point.
func (d *Dispatcher) HandleButton(name string) {
	if name != d.cfg.PrimaryAction || d.hovered == 0 {
		return
	}
	b, ok := d.world.registry.Lookup(d.hovered)
	if !ok {
		d.hovered = 0
		return
	}
	b.HandleSyntheticClick(d.hit.Position, true)
	b.HandleSyntheticClick(d.hit.Position, false)
}

func colliderName(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Name
}
