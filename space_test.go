package willowxr

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// panelArea returns a 2x1.5x0.1 area on layer 1 at the origin.
func panelArea(name string) *Node {
	return NewArea(name, 1, mgl64.Vec3{2, 1.5, 0.1})
}

func towardPanel(origin mgl64.Vec3) RayQuery {
	return RayQuery{
		Origin:        origin,
		Direction:     mgl64.Vec3{0, 0, -1},
		MaxDistance:   5,
		CollisionMask: allLayers,
	}
}

func TestIntersectRayFrontFace(t *testing.T) {
	s := NewSpace()
	a := panelArea("a")
	s.AddArea(a)

	hit, ok := s.IntersectRay(towardPanel(mgl64.Vec3{0, 0, 1}))
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Collider != a {
		t.Error("wrong collider")
	}
	assertVec3(t, "position", hit.Position, mgl64.Vec3{0, 0, 0.05})
	if !approxEqual(hit.Distance, 0.95, epsilon) {
		t.Errorf("Distance = %v, want 0.95", hit.Distance)
	}
}

func TestIntersectRayMisses(t *testing.T) {
	tests := []struct {
		name  string
		query RayQuery
	}{
		{"beside", towardPanel(mgl64.Vec3{1.5, 0, 1})},
		{"pointing away", RayQuery{Origin: mgl64.Vec3{0, 0, 1}, Direction: mgl64.Vec3{0, 0, 1}, MaxDistance: 5, CollisionMask: allLayers}},
		{"too short", RayQuery{Origin: mgl64.Vec3{0, 0, 1}, Direction: mgl64.Vec3{0, 0, -1}, MaxDistance: 0.5, CollisionMask: allLayers}},
		{"zero length", RayQuery{Origin: mgl64.Vec3{0, 0, 1}, Direction: mgl64.Vec3{0, 0, -1}, CollisionMask: allLayers}},
		{"zero direction", RayQuery{Origin: mgl64.Vec3{0, 0, 1}, MaxDistance: 5, CollisionMask: allLayers}},
		{"other layer", RayQuery{Origin: mgl64.Vec3{0, 0, 1}, Direction: mgl64.Vec3{0, 0, -1}, MaxDistance: 5, CollisionMask: 2}},
		{"starts inside", towardPanel(mgl64.Vec3{0, 0, 0})},
		{"parallel outside", RayQuery{Origin: mgl64.Vec3{-3, 0, 1}, Direction: mgl64.Vec3{1, 0, 0}, MaxDistance: 10, CollisionMask: allLayers}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpace()
			s.AddArea(panelArea("a"))
			if _, ok := s.IntersectRay(tt.query); ok {
				t.Error("expected a miss")
			}
		})
	}
}

func TestIntersectRayUnnormalizedDirection(t *testing.T) {
	s := NewSpace()
	s.AddArea(panelArea("a"))
	q := towardPanel(mgl64.Vec3{0, 0, 1})
	q.Direction = mgl64.Vec3{0, 0, -10}
	hit, ok := s.IntersectRay(q)
	if !ok || !approxEqual(hit.Distance, 0.95, epsilon) {
		t.Errorf("hit = %+v, %v; want distance 0.95", hit, ok)
	}
}

func TestIntersectRayNearestWins(t *testing.T) {
	s := NewSpace()
	back := panelArea("back")
	front := panelArea("front")
	front.SetPosition(0, 0, 0.5)
	s.AddArea(back)
	s.AddArea(front)

	hit, ok := s.IntersectRay(towardPanel(mgl64.Vec3{0, 0, 1}))
	if !ok || hit.Collider != front {
		t.Errorf("collider = %v, want front", colliderName(hit.Collider))
	}
}

func TestIntersectRayTransformedArea(t *testing.T) {
	parent := NewContainer("parent")
	parent.SetPosition(3, 0, 0)
	parent.SetRotation(0, math.Pi/2, 0)
	a := panelArea("a")
	parent.AddChild(a)

	s := NewSpace()
	s.AddArea(a)

	// Rotated a quarter turn about Y, the panel faces +X.
	hit, ok := s.IntersectRay(RayQuery{
		Origin:        mgl64.Vec3{5, 0.5, 0},
		Direction:     mgl64.Vec3{-1, 0, 0},
		MaxDistance:   5,
		CollisionMask: 1,
	})
	if !ok {
		t.Fatal("expected a hit")
	}
	assertVec3(t, "position", hit.Position, mgl64.Vec3{3.05, 0.5, 0})
	local := a.ToLocal(hit.Position)
	assertVec3(t, "local", local, mgl64.Vec3{0, 0.5, 0.05})
}

func TestIntersectRaySkipsHiddenAndDisposed(t *testing.T) {
	s := NewSpace()
	group := NewContainer("group")
	hidden := panelArea("hidden")
	group.AddChild(hidden)
	group.Visible = false
	gone := panelArea("gone")
	gone.SetPosition(0, 0, 0.5)
	s.AddArea(hidden)
	s.AddArea(gone)
	gone.Dispose()

	if _, ok := s.IntersectRay(towardPanel(mgl64.Vec3{0, 0, 1})); ok {
		t.Error("hidden and disposed areas should not be hit")
	}
	group.Visible = true
	if hit, ok := s.IntersectRay(towardPanel(mgl64.Vec3{0, 0, 1})); !ok || hit.Collider != hidden {
		t.Error("area should be hit once visible")
	}
}

func TestSpaceAddRemove(t *testing.T) {
	s := NewSpace()
	a := panelArea("a")
	s.AddArea(a)
	s.AddArea(a)
	if len(s.Areas()) != 1 {
		t.Fatalf("duplicate add: Areas len = %d, want 1", len(s.Areas()))
	}
	s.RemoveArea(a)
	s.RemoveArea(a)
	if len(s.Areas()) != 0 {
		t.Errorf("Areas len = %d, want 0", len(s.Areas()))
	}
}

func TestSpaceAddNonAreaPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewSpace().AddArea(NewContainer("c"))
}

func TestIntersectSegmentBox(t *testing.T) {
	half := mgl64.Vec3{1, 1, 1}
	tests := []struct {
		name     string
		from, to mgl64.Vec3
		wantT    float64
		wantHit  bool
	}{
		{"through center", mgl64.Vec3{0, 0, 3}, mgl64.Vec3{0, 0, -3}, 1.0 / 3, true},
		{"ends before box", mgl64.Vec3{0, 0, 3}, mgl64.Vec3{0, 0, 2}, 0, false},
		{"touches face", mgl64.Vec3{0, 0, 3}, mgl64.Vec3{0, 0, 1}, 1, true},
		{"diagonal", mgl64.Vec3{-3, -3, 0}, mgl64.Vec3{3, 3, 0}, 1.0 / 3, true},
		{"outside slab", mgl64.Vec3{2, 0, 3}, mgl64.Vec3{2, 0, -3}, 0, false},
		{"inside", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, -3}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := intersectSegmentBox(tt.from, tt.to, half)
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if ok && !approxEqual(got, tt.wantT, epsilon) {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}
