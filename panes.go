package panes

import (
	"fmt"
	"strconv"
)

// Vec2 is a 2D vector used for offsets, sizes and zoom factors throughout
// the API.
type Vec2 struct {
	X, Y float64
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

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Handle is a light-weight key referring to a region owned by a Session.
// Handles are never reused: once a region is deleted its handle stays
// invalid forever.
type Handle struct {
	index uint64
}

// Index returns the registry index wrapped by the handle.
func (h Handle) Index() uint64 {
	return h.index
}

// String implements fmt.Stringer.
func (h Handle) String() string {
	return fmt.Sprintf("pane#%d", h.index)
}

// NodeRef is an opaque reference to a display node owned by the Host.
// The session only stores it and hands it back to the Host.
type NodeRef any

// Host is the display surface the session drives. Implementations own every
// node they create; the session never inspects a NodeRef.
type Host interface {
	CreateNode() (NodeRef, error)
	AttachNode(parent, node NodeRef) error
	// DetachNode removes node from parent and returns the detached node.
	DetachNode(parent, node NodeRef) (NodeRef, error)
	SetStyleProperty(node NodeRef, name, value string) error
	SetClassName(node NodeRef, classes string) error
}

// Releaser is implemented by hosts that want to be told when a deleted
// region's node is no longer referenced by the session.
type Releaser interface {
	ReleaseNode(node NodeRef)
}

// ComponentHost is implemented by hosts that can load externally defined
// components and instantiate them inside a node.
type ComponentHost interface {
	// LoadModule starts loading the named components from src. The load
	// must proceed without further calls from the session; done is called
	// once when it finishes.
	LoadModule(src string, names []string, done func()) error
	ComponentExists(name string) bool
	Instantiate(name string, node NodeRef) error
}

// Declaration is a single CSS property assignment.
type Declaration struct {
	Property string
	Value    string
}

// Style carries the optional extra classes and inline declarations applied
// to a region's node at creation.
type Style struct {
	Classes []string
	CSS     []Declaration
}

// px formats a placement coordinate the way hosts expect it. Fractions are
// truncated toward zero.
func px(v float64) string {
	return strconv.FormatInt(int64(v), 10) + "px"
}
