package willowxr

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
)

// World is the top-level object that owns the node tree, the ray-query space,
// the surface registry, the camera, and every surface and dispatcher.
type World struct {
	root     *Node
	space    *Space
	registry *SurfaceRegistry
	camera   *Camera
	store    EntityStore

	surfaces    []*Bridge
	dispatchers []*Dispatcher
	routeBuf    []*Bridge
	cursorArea  *Node

	debug    bool
	debugOut io.Writer

	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
}

// NewWorld creates an empty world with a root container and no camera.
func NewWorld() *World {
	return &World{
		root:     NewContainer("root"),
		space:    NewSpace(),
		registry: NewSurfaceRegistry(),
		debugOut: os.Stderr,
	}
}

// Root returns the world's root container node.
func (w *World) Root() *Node { return w.root }

// Space returns the world's ray-query space.
func (w *World) Space() *Space { return w.space }

// Registry returns the world's surface registry.
func (w *World) Registry() *SurfaceRegistry { return w.registry }

// Camera returns the camera used for direct cursor input, or nil.
func (w *World) Camera() *Camera { return w.camera }

// SetCamera sets the camera used for direct cursor input. A nil camera
// disables the direct path: every cursor query misses.
func (w *World) SetCamera(cam *Camera) { w.camera = cam }

// Surfaces returns the live surfaces in creation order. The returned slice
// MUST NOT be mutated.
func (w *World) Surfaces() []*Bridge { return w.surfaces }

// Dispatchers returns the dispatchers in creation order. The returned slice
// MUST NOT be mutated.
func (w *World) Dispatchers() []*Dispatcher { return w.dispatchers }

// SetEntityStore sets the optional ECS bridge.
func (w *World) SetEntityStore(store EntityStore) { w.store = store }

// NewSurface builds a panel under parent (the root when nil) that drives ui.
// The quad is sized from the UI's pixel size divided by PixelsPerUnit and the
// hit box matches the quad's footprint with the configured depth.
func (w *World) NewSurface(parent *Node, ui UISurface, cfg SurfaceConfig) (*Bridge, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateTarget(cfg.Name, ui); err != nil {
		return nil, err
	}
	if parent == nil {
		parent = w.root
	}

	width, height := ui.Size()
	size := mgl64.Vec2{float64(width) / cfg.PixelsPerUnit, float64(height) / cfg.PixelsPerUnit}

	node := newSurfaceNode(cfg.Name)
	quad := NewQuad(cfg.Name+"-quad", size)
	if vp, ok := ui.(*Viewport); ok {
		quad.Texture = vp
	}
	area := NewArea(cfg.Name+"-area", cfg.CollisionLayer, mgl64.Vec3{size.X(), size.Y(), cfg.HitDepth})
	quad.AddChild(area)
	node.AddChild(quad)
	parent.AddChild(node)

	b := &Bridge{
		world:    w,
		cfg:      cfg,
		ui:       ui,
		node:     node,
		quad:     quad,
		area:     area,
		quadSize: size,
	}
	b.id = w.registry.Register(b)
	node.surfaceID = b.id
	node.onDispose = b.Close
	b.enterHandle = area.OnMouseEntered(b.mouseEntered)
	w.space.AddArea(area)
	w.surfaces = append(w.surfaces, b)

	w.debugLogf("surface %q: %dx%d px on a %.3fx%.3f quad", cfg.Name, width, height, size.X(), size.Y())
	return b, nil
}

// RemoveSurface disposes the surface's nodes and closes its bridge.
func (w *World) RemoveSurface(b *Bridge) {
	if b == nil {
		return
	}
	if b.node.IsDisposed() {
		b.Close()
		return
	}
	b.node.Dispose()
}

// detachSurface drops every world-side reference to b. Called from Bridge.Close.
func (w *World) detachSurface(b *Bridge) {
	w.registry.Unregister(b.id)
	w.space.RemoveArea(b.area)
	if w.cursorArea == b.area {
		w.cursorArea = nil
	}
	for i, s := range w.surfaces {
		if s == b {
			copy(w.surfaces[i:], w.surfaces[i+1:])
			w.surfaces[len(w.surfaces)-1] = nil
			w.surfaces = w.surfaces[:len(w.surfaces)-1]
			break
		}
	}
	w.debugLogf("surface %q: closed", b.cfg.Name)
}

// NewDispatcher creates a dispatcher for one ray source. Zero config fields
// take their defaults.
func (w *World) NewDispatcher(name string, src RaySource, cfg DispatcherConfig) (*Dispatcher, error) {
	if src == nil {
		return nil, fmt.Errorf("dispatcher %q: %w", name, ErrNilRaySource)
	}
	d := DefaultDispatcherConfig()
	if cfg.PrimaryAction == "" {
		cfg.PrimaryAction = d.PrimaryAction
	}
	if cfg.RayLength == 0 {
		cfg.RayLength = d.RayLength
	}
	if cfg.CollisionMask == 0 {
		cfg.CollisionMask = d.CollisionMask
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dispatcher %q: %w", name, err)
	}
	disp := &Dispatcher{
		Name:   name,
		world:  w,
		source: src,
		cfg:    cfg,
		visual: RayVisual{fade: cfg.RayFade},
	}
	w.dispatchers = append(w.dispatchers, disp)
	return disp, nil
}

// RemoveDispatcher stops ticking d.
func (w *World) RemoveDispatcher(d *Dispatcher) {
	for i, x := range w.dispatchers {
		if x == d {
			copy(w.dispatchers[i:], w.dispatchers[i+1:])
			w.dispatchers[len(w.dispatchers)-1] = nil
			w.dispatchers = w.dispatchers[:len(w.dispatchers)-1]
			return
		}
	}
}

// Update runs one frame: refresh transforms, step the test runner, consume
// one injected pointer event, tick every dispatcher, and advance animations.
// dt is the frame time in seconds.
func (w *World) Update(dt float64) {
	updateWorldTransform(w.root, mgl64.Ident4(), false)

	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	w.processInjectedInput()

	for _, d := range w.dispatchers {
		d.PhysicsProcess()
		d.visual.update(float32(dt))
	}
	if w.camera != nil {
		w.camera.update(float32(dt))
	}
}

// emitInteraction forwards a converted event to the ECS bridge, if any.
func (w *World) emitInteraction(id SurfaceID, ev PointerEvent) {
	if w.store == nil {
		return
	}
	w.store.EmitEvent(InteractionEvent{
		Surface: id,
		Kind:    ev.Kind,
		X:       ev.Position.X(),
		Y:       ev.Position.Y(),
		DeltaX:  ev.Relative.X(),
		DeltaY:  ev.Relative.Y(),
		Button:  ev.Button,
	})
}
