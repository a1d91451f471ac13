package willowxr

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// computeLocalTransform computes the local matrix from the node's transform
// properties.
//
// Composition order:
//
//	Scale -> RotateX -> RotateY -> RotateZ -> Translate(Position)
func computeLocalTransform(n *Node) mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	rx := mgl64.HomogRotate3DX(n.Rotation.X())
	ry := mgl64.HomogRotate3DY(n.Rotation.Y())
	rz := mgl64.HomogRotate3DZ(n.Rotation.Z())
	s := mgl64.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}

// affineInverse inverts m. Returns the identity matrix if m is singular
// (for example a node scaled to zero on one axis).
func affineInverse(m mgl64.Mat4) mgl64.Mat4 {
	det := m.Det()
	if math.Abs(det) < 1e-12 {
		return mgl64.Ident4()
	}
	return m.Inv()
}

// updateWorldTransform recomputes a node's worldTransform.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform mgl64.Mat4, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parentTransform.Mul4(computeLocalTransform(n))
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local position and marks its subtree dirty.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = mgl64.Vec3{x, y, z}
	markSubtreeDirty(n)
}

// SetRotation sets the node's Euler rotation (in radians) and marks its subtree dirty.
func (n *Node) SetRotation(x, y, z float64) {
	n.Rotation = mgl64.Vec3{x, y, z}
	markSubtreeDirty(n)
}

// SetScale sets the node's scale and marks its subtree dirty.
func (n *Node) SetScale(x, y, z float64) {
	n.Scale = mgl64.Vec3{x, y, z}
	markSubtreeDirty(n)
}

// MarkDirty marks the node's subtree as dirty, forcing recomputation on the
// next read. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	markSubtreeDirty(n)
}

// --- Coordinate conversion ---

// GlobalTransform returns the node's world matrix, recomputing the dirty part
// of the ancestor chain first.
func (n *Node) GlobalTransform() mgl64.Mat4 {
	if n.transformDirty {
		parent := mgl64.Ident4()
		if n.Parent != nil {
			parent = n.Parent.GlobalTransform()
		}
		n.worldTransform = parent.Mul4(computeLocalTransform(n))
		n.transformDirty = false
	}
	return n.worldTransform
}

// GlobalPosition returns the node's origin in world space.
func (n *Node) GlobalPosition() mgl64.Vec3 {
	return n.GlobalTransform().Col(3).Vec3()
}

// ToGlobal converts a point in this node's local space to world space.
func (n *Node) ToGlobal(local mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(local, n.GlobalTransform())
}

// ToLocal converts a world-space point to this node's local space.
func (n *Node) ToLocal(global mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(global, affineInverse(n.GlobalTransform()))
}
