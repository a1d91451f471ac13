package willowxr

import (
	"github.com/go-gl/mathgl/mgl64"
)

// nodeIDCounter is a plain counter (no atomic, willowxr is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the 3D scene graph element. A single flat struct is used for all
// node types; the fields that only apply to one type say so.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Rotation is Euler XYZ in radians, applied X then Y then Z.
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3

	// Computed
	worldTransform mgl64.Mat4
	transformDirty bool

	Visible  bool
	UserData any

	// Area fields (NodeTypeArea)
	CollisionLayer uint32
	BoxSize        mgl64.Vec3 // full box extents centered on the node origin
	handlers       handlerRegistry

	// Quad fields (NodeTypeQuad)
	QuadSize mgl64.Vec2
	Texture  *Viewport

	// Surface fields (NodeTypeSurface)
	surfaceID SurfaceID

	// Internal
	disposed  bool
	onDispose func()
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Scale = mgl64.Vec3{1, 1, 1}
	n.Visible = true
	n.worldTransform = mgl64.Ident4()
	n.transformDirty = true
}

// NewContainer creates a plain transform group.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewQuad creates a visual proxy node of the given physical size.
func NewQuad(name string, size mgl64.Vec2) *Node {
	n := &Node{Name: name, Type: NodeTypeQuad, QuadSize: size}
	nodeDefaults(n)
	return n
}

// NewArea creates a box-shaped hit region on the given collision layer.
func NewArea(name string, layer uint32, box mgl64.Vec3) *Node {
	n := &Node{Name: name, Type: NodeTypeArea, CollisionLayer: layer, BoxSize: box}
	nodeDefaults(n)
	return n
}

// newSurfaceNode creates the root node of a panel. Only World builds these,
// because the node is meaningless without a registered Bridge.
func newSurfaceNode(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeSurface}
	nodeDefaults(n)
	return n
}

// SurfaceID returns the registry handle of a surface node, or zero for every
// other node type.
func (n *Node) SurfaceID() SurfaceID {
	return n.surfaceID
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("willowxr: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("willowxr: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("willowxr: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// FirstChildOfType returns the first direct child with the given type, or nil.
func (n *Node) FirstChildOfType(t NodeType) *Node {
	for _, c := range n.children {
		if c.Type == t {
			return c
		}
	}
	return nil
}

// VisibleInTree reports whether this node and all of its ancestors are visible.
func (n *Node) VisibleInTree() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible {
			return false
		}
	}
	return true
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Surface nodes close their
// Bridge as part of disposal.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	if n.onDispose != nil {
		fn := n.onDispose
		n.onDispose = nil
		fn()
	}
	n.disposed = true
	n.ID = 0
	n.children = nil
	n.Parent = nil
	n.Texture = nil
	n.UserData = nil
	n.handlers = handlerRegistry{}
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
