package willowxr

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// allLayers is a collision mask matching every layer.
const allLayers = ^uint32(0)

// RayQuery describes one ray intersection request.
type RayQuery struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3 // need not be normalized
	// MaxDistance bounds the ray length in world units.
	MaxDistance float64
	// CollisionMask selects which collision layers the ray can hit.
	CollisionMask uint32
}

// RayHit is the result of a successful ray query.
type RayHit struct {
	Position mgl64.Vec3 // world-space hit point
	Collider *Node
	Distance float64
}

// RayQuerier is the ray-collision query service. Implementations must be
// read-only per call so several callers can query within the same tick.
type RayQuerier interface {
	IntersectRay(q RayQuery) (RayHit, bool)
}

// Space is a minimal RayQuerier over box-shaped Area nodes.
type Space struct {
	areas []*Node
}

// NewSpace creates an empty space.
func NewSpace() *Space {
	return &Space{}
}

// AddArea registers an area for ray queries. Adding an area twice is a no-op.
// Panics if n is not a NodeTypeArea node.
func (s *Space) AddArea(n *Node) {
	if n == nil || n.Type != NodeTypeArea {
		panic("willowxr: only area nodes can be added to a space")
	}
	for _, a := range s.areas {
		if a == n {
			return
		}
	}
	s.areas = append(s.areas, n)
}

// RemoveArea unregisters an area. No-op if the area was never added.
func (s *Space) RemoveArea(n *Node) {
	for i, a := range s.areas {
		if a == n {
			copy(s.areas[i:], s.areas[i+1:])
			s.areas[len(s.areas)-1] = nil
			s.areas = s.areas[:len(s.areas)-1]
			return
		}
	}
}

// Areas returns the registered areas. The returned slice MUST NOT be mutated.
func (s *Space) Areas() []*Node {
	return s.areas
}

// IntersectRay returns the nearest visible area on a layer selected by the
// mask that the ray segment enters. Rays starting inside a box do not hit it.
func (s *Space) IntersectRay(q RayQuery) (RayHit, bool) {
	if q.MaxDistance <= 0 || q.Direction.Len() == 0 {
		return RayHit{}, false
	}
	dir := q.Direction.Normalize()
	to := q.Origin.Add(dir.Mul(q.MaxDistance))

	var best RayHit
	found := false
	bestT := math.Inf(1)
	for _, a := range s.areas {
		if a.IsDisposed() || a.CollisionLayer&q.CollisionMask == 0 || !a.VisibleInTree() {
			continue
		}
		inv := affineInverse(a.GlobalTransform())
		from := mgl64.TransformCoordinate(q.Origin, inv)
		end := mgl64.TransformCoordinate(to, inv)
		t, ok := intersectSegmentBox(from, end, a.BoxSize.Mul(0.5))
		if !ok || t >= bestT {
			continue
		}
		bestT = t
		found = true
		best = RayHit{
			Position: q.Origin.Add(dir.Mul(q.MaxDistance * t)),
			Collider: a,
			Distance: q.MaxDistance * t,
		}
	}
	return best, found
}

// intersectSegmentBox runs a slab test of the segment from->to against the
// box [-half, half]. Returns the segment parameter in [0, 1] where the segment
// enters the box.
func intersectSegmentBox(from, to, half mgl64.Vec3) (float64, bool) {
	d := to.Sub(from)
	tEnter, tExit := 0.0, 1.0
	for axis := 0; axis < 3; axis++ {
		lo, hi := -half[axis], half[axis]
		if math.Abs(d[axis]) < 1e-12 {
			if from[axis] < lo || from[axis] > hi {
				return 0, false
			}
			continue
		}
		t0 := (lo - from[axis]) / d[axis]
		t1 := (hi - from[axis]) / d[axis]
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tEnter {
			tEnter = t0
		}
		if t1 < tExit {
			tExit = t1
		}
		if tEnter > tExit {
			return 0, false
		}
	}
	if insideBox(from, half) {
		return 0, false
	}
	return tEnter, true
}

func insideBox(p, half mgl64.Vec3) bool {
	return p.X() > -half.X() && p.X() < half.X() &&
		p.Y() > -half.Y() && p.Y() < half.Y() &&
		p.Z() > -half.Z() && p.Z() < half.Z()
}
