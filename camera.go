package willowxr

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// moveAnim holds active move-to tweens for the camera position.
type moveAnim struct {
	tweens [3]*gween.Tween
	done   [3]bool
}

// Camera is a perspective camera that turns screen positions into world rays.
type Camera struct {
	// Position is the eye point in world space.
	Position mgl64.Vec3
	// Target is the world point the camera looks at.
	Target mgl64.Vec3
	// Up is the camera's up direction.
	Up mgl64.Vec3
	// FovY is the vertical field of view in radians.
	FovY float64
	// Near and Far are the clip plane distances.
	Near, Far float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	moveTween *moveAnim
}

// NewCamera creates a camera two units in front of the origin, looking at it.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Position: mgl64.Vec3{0, 0, 2},
		Up:       mgl64.Vec3{0, 1, 0},
		FovY:     mgl64.DegToRad(70),
		Near:     0.05,
		Far:      100,
		Viewport: viewport,
	}
}

// Origin returns the camera's eye point.
func (c *Camera) Origin() mgl64.Vec3 {
	return c.Position
}

// ViewMatrix returns the world-to-eye matrix.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the eye-to-clip matrix.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	aspect := 1.0
	if c.Viewport.Height > 0 {
		aspect = c.Viewport.Width / c.Viewport.Height
	}
	return mgl64.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// screenToNDC converts a screen position to normalized device coordinates.
func (c *Camera) screenToNDC(screen mgl64.Vec2) (float64, float64) {
	vp := c.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return 0, 0
	}
	x := 2*(screen.X()-vp.X)/vp.Width - 1
	y := 1 - 2*(screen.Y()-vp.Y)/vp.Height
	return x, y
}

// unproject maps an NDC point back to world space.
func (c *Camera) unproject(inv mgl64.Mat4, x, y, z float64) mgl64.Vec3 {
	p := inv.Mul4x1(mgl64.Vec4{x, y, z, 1})
	if p.W() != 0 {
		return p.Vec3().Mul(1 / p.W())
	}
	return p.Vec3()
}

// ProjectRayOrigin returns the point on the near plane under the screen position.
func (c *Camera) ProjectRayOrigin(screen mgl64.Vec2) mgl64.Vec3 {
	inv := affineInverse(c.ProjectionMatrix().Mul4(c.ViewMatrix()))
	x, y := c.screenToNDC(screen)
	return c.unproject(inv, x, y, -1)
}

// ProjectRayNormal returns the unit direction of the ray under the screen position.
func (c *Camera) ProjectRayNormal(screen mgl64.Vec2) mgl64.Vec3 {
	inv := affineInverse(c.ProjectionMatrix().Mul4(c.ViewMatrix()))
	x, y := c.screenToNDC(screen)
	near := c.unproject(inv, x, y, -1)
	far := c.unproject(inv, x, y, 1)
	d := far.Sub(near)
	if d.Len() == 0 {
		return c.Target.Sub(c.Position).Normalize()
	}
	return d.Normalize()
}

// WorldToScreen projects a world point to screen space. The second result is
// false when the point is behind the camera.
func (c *Camera) WorldToScreen(p mgl64.Vec3) (mgl64.Vec2, bool) {
	clip := c.ProjectionMatrix().Mul4(c.ViewMatrix()).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return mgl64.Vec2{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	vp := c.Viewport
	return mgl64.Vec2{
		vp.X + (ndc.X()+1)/2*vp.Width,
		vp.Y + (1-ndc.Y())/2*vp.Height,
	}, true
}

// MoveTo animates the camera position to pos over duration seconds.
// The target is left unchanged, so the camera keeps looking at it.
func (c *Camera) MoveTo(pos mgl64.Vec3, duration float32, easeFn ease.TweenFunc) {
	anim := &moveAnim{}
	for i := 0; i < 3; i++ {
		anim.tweens[i] = gween.New(float32(c.Position[i]), float32(pos[i]), duration, easeFn)
	}
	c.moveTween = anim
}

// Moving reports whether a MoveTo animation is in progress.
func (c *Camera) Moving() bool {
	return c.moveTween != nil
}

// update advances the move animation. Called from World.Update().
func (c *Camera) update(dt float32) {
	if c.moveTween == nil {
		return
	}
	finished := true
	for i := 0; i < 3; i++ {
		if c.moveTween.done[i] {
			continue
		}
		val, done := c.moveTween.tweens[i].Update(dt)
		c.Position[i] = float64(val)
		c.moveTween.done[i] = done
		finished = finished && done
	}
	if finished {
		c.moveTween = nil
	}
}

// furthestDistance returns the largest distance from origin to any of points.
func furthestDistance(origin mgl64.Vec3, points []mgl64.Vec3) float64 {
	far := 0.0
	for _, p := range points {
		far = math.Max(far, origin.Sub(p).Len())
	}
	return far
}
