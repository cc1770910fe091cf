// Package ebitenhost implements a panes.Host for Ebitengine.
//
// Nodes form a small retained tree. Style properties and class names are
// stored on the nodes as given; Draw paints every node attached under the
// root using its left/top/width/height and background-color properties.
//
//	host := ebitenhost.New()
//	s := panes.NewSession(host)
//	s.Init(host.Root(), panes.Config{Width: 640, Height: 480})
//
//	func (g *Game) Update() error        { g.host.Update(); return nil }
//	func (g *Game) Draw(screen *ebiten.Image) { g.host.Draw(screen) }
package ebitenhost

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/phanxgames/panes"
)

var (
	// ErrForeignNode is returned for a NodeRef not created by this host.
	ErrForeignNode = errors.New("ebitenhost: node was not created by this host")

	// ErrNotChild is returned by DetachNode when node is not a child of parent.
	ErrNotChild = errors.New("ebitenhost: node is not a child of parent")

	// ErrReleased is returned for operations on a released node.
	ErrReleased = errors.New("ebitenhost: node has been released")
)

// Constructor fills a node with a component instance.
type Constructor func(node *Node)

// pendingLoad is a module load waiting for the next Update.
type pendingLoad struct {
	src   string
	names []string
	done  func()
}

// Host is a panes.Host backed by an in-memory node tree drawn with ebiten.
type Host struct {
	root   *Node
	nextID int

	modules    map[string]map[string]Constructor // defined, not yet loaded
	components map[string]Constructor            // loaded or registered
	loads      []pendingLoad

	font *labelFont

	// Debug prints module load activity to stderr.
	Debug bool
}

// New creates a host with an empty root node.
func New() *Host {
	h := &Host{
		modules:    make(map[string]map[string]Constructor),
		components: make(map[string]Constructor),
	}
	h.root = h.NewNode()
	return h
}

// Root returns the root node to pass to panes.Session.Init.
func (h *Host) Root() *Node {
	return h.root
}

// NewNode creates a detached node, for example to pass as region content.
func (h *Host) NewNode() *Node {
	h.nextID++
	return &Node{ID: h.nextID, host: h, style: make(map[string]string)}
}

// node unwraps a NodeRef created by this host.
func (h *Host) node(ref panes.NodeRef) (*Node, error) {
	n, ok := ref.(*Node)
	if !ok || n == nil || n.host != h {
		return nil, ErrForeignNode
	}
	if n.released {
		return nil, ErrReleased
	}
	return n, nil
}

// CreateNode implements panes.Host.
func (h *Host) CreateNode() (panes.NodeRef, error) {
	return h.NewNode(), nil
}

// AttachNode implements panes.Host. A node that already has a parent is
// moved.
func (h *Host) AttachNode(parent, node panes.NodeRef) error {
	p, err := h.node(parent)
	if err != nil {
		return err
	}
	n, err := h.node(node)
	if err != nil {
		return err
	}
	if n.isAncestorOf(p) {
		return fmt.Errorf("ebitenhost: attaching node %d to %d would create a cycle", n.ID, p.ID)
	}
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	n.parent = p
	p.children = append(p.children, n)
	return nil
}

// DetachNode implements panes.Host.
func (h *Host) DetachNode(parent, node panes.NodeRef) (panes.NodeRef, error) {
	p, err := h.node(parent)
	if err != nil {
		return nil, err
	}
	n, err := h.node(node)
	if err != nil {
		return nil, err
	}
	if n.parent != p {
		return nil, ErrNotChild
	}
	p.removeChild(n)
	n.parent = nil
	return n, nil
}

// SetStyleProperty implements panes.Host.
func (h *Host) SetStyleProperty(node panes.NodeRef, name, value string) error {
	n, err := h.node(node)
	if err != nil {
		return err
	}
	n.style[name] = value
	return nil
}

// SetClassName implements panes.Host.
func (h *Host) SetClassName(node panes.NodeRef, classes string) error {
	n, err := h.node(node)
	if err != nil {
		return err
	}
	n.className = classes
	return nil
}

// ReleaseNode implements panes.Releaser. The node and its subtree become
// unusable.
func (h *Host) ReleaseNode(node panes.NodeRef) {
	n, err := h.node(node)
	if err != nil {
		return
	}
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	n.release()
}

// DefineModule makes the components of a module available to LoadModule
// under src. They become instantiable once a load of src completes.
func (h *Host) DefineModule(src string, components map[string]Constructor) {
	h.modules[src] = components
}

// Register makes a component available immediately, as if it had been
// loaded before the session started.
func (h *Host) Register(name string, c Constructor) {
	h.components[name] = c
}

// LoadModule implements panes.ComponentHost. The load is queued and
// completes on a later Update.
func (h *Host) LoadModule(src string, names []string, done func()) error {
	if len(names) == 0 {
		return fmt.Errorf("ebitenhost: load %s: no component names", src)
	}
	h.loads = append(h.loads, pendingLoad{src: src, names: names, done: done})
	return nil
}

// ComponentExists implements panes.ComponentHost.
func (h *Host) ComponentExists(name string) bool {
	_, ok := h.components[name]
	return ok
}

// Instantiate implements panes.ComponentHost.
func (h *Host) Instantiate(name string, node panes.NodeRef) error {
	n, err := h.node(node)
	if err != nil {
		return err
	}
	c, ok := h.components[name]
	if !ok {
		return fmt.Errorf("ebitenhost: component %q is not loaded", name)
	}
	n.Component = name
	if c != nil {
		c(n)
	}
	return nil
}

// PendingLoads returns the number of queued module loads.
func (h *Host) PendingLoads() int {
	return len(h.loads)
}

// Update completes at most one queued module load. Call it once per frame.
// A load whose module was never defined is dropped without signaling
// completion, so its Pending never becomes ready.
func (h *Host) Update() {
	if len(h.loads) == 0 {
		return
	}
	ld := h.loads[0]
	h.loads = slices.Delete(h.loads, 0, 1)

	mod, ok := h.modules[ld.src]
	if !ok {
		if h.Debug {
			_, _ = fmt.Fprintf(os.Stderr, "[ebitenhost] load %s: module not defined\n", ld.src)
		}
		return
	}
	for _, name := range ld.names {
		c, ok := mod[name]
		if !ok {
			if h.Debug {
				_, _ = fmt.Fprintf(os.Stderr, "[ebitenhost] load %s: no component %q\n", ld.src, name)
			}
			continue
		}
		h.components[name] = c
	}
	if h.Debug {
		_, _ = fmt.Fprintf(os.Stderr, "[ebitenhost] loaded %v from %s\n", ld.names, ld.src)
	}
	if ld.done != nil {
		ld.done()
	}
}
