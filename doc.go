// Package willowxr lets a pointer in 3D space drive a flat UI painted onto a
// panel in a 3D scene, built on [Ebitengine].
//
// A controller ray or a camera-projected cursor ray hits a panel's hit box;
// willowxr converts the hit point into the panel's pixel space and emits
// correctly sequenced pointer events (motion with deltas, press, release)
// into the flat UI, keeping hover, held and last-position state continuous
// across frames where the ray does or does not touch the panel.
//
// # Quick start
//
//	world := willowxr.NewWorld()
//	world.SetCamera(willowxr.NewCamera(willowxr.Rect{Width: 1280, Height: 720}))
//
//	ui := willowxr.NewViewport(800, 600)
//	ui.OnPointer(func(ev willowxr.PointerEvent) { /* 2D widget logic */ })
//
//	panel, err := world.NewSurface(nil, ui, willowxr.DefaultSurfaceConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	panel.Node().SetPosition(0, 1.5, -1)
//
// Feed raw input every frame and advance the world:
//
//	for _, ev := range input.Poll(buf[:0]) {
//		world.HandleInput(ev)
//	}
//	world.Update(1.0 / float64(ebiten.TPS()))
//
// # Surfaces
//
// [World.NewSurface] builds a Surface node with a Quad child (the visual
// proxy) and an Area grandchild (the hit box). The quad is the viewport size
// divided by [SurfaceConfig.PixelsPerUnit]. The returned [Bridge] owns the
// coordinate mapping: local (0, 0) is the panel center, local +Y is up, and
// surface pixels start at the top-left.
//
// # Controllers
//
// A [Dispatcher] casts one ray source per tick, resolves the hit collider
// through Area -> Quad -> Surface, and feeds the hit point to that surface as
// motion. [Dispatcher.HandleButton] with the primary action name delivers a
// complete click (press then release) at the current hit point.
//
// # Testing
//
// [World.InjectCursorClick] and friends queue synthetic cursor input consumed
// one event per frame, and [LoadTestScript] drives cursor and controller
// actions from JSON.
//
// Ray visuals and camera moves are animated with [gween]; pointer events can
// be mirrored into a [Donburi] world through willowxr/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package willowxr
