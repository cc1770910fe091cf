package panes

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertRect(t *testing.T, name string, got, want Rect) {
	t.Helper()
	assertNear(t, name+".X", got.X, want.X)
	assertNear(t, name+".Y", got.Y, want.Y)
	assertNear(t, name+".Width", got.Width, want.Width)
	assertNear(t, name+".Height", got.Height, want.Height)
}

func assertErr(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}

var errHostFailure = errors.New("host failure")

// fakeNode records everything the session pushed to it.
type fakeNode struct {
	id       int
	parent   *fakeNode
	children []*fakeNode
	style    map[string]string
	class    string
	released bool
	instance string
}

// fakeHost is an in-memory Host, ComponentHost and Releaser.
type fakeHost struct {
	nextID int
	root   *fakeNode

	calls []string // host method names in call order

	failOn    string // method name that returns errHostFailure
	detachNil bool   // DetachNode returns a nil node
	failRoot  bool   // AttachNode under the root returns errHostFailure

	// onStyle runs inside SetStyleProperty, for reentrancy tests.
	onStyle func()

	components map[string]bool
	loads      []func()
	loadSync   bool // complete loads inside LoadModule
}

func newFakeHost() *fakeHost {
	h := &fakeHost{components: make(map[string]bool)}
	h.root = h.newNode()
	return h
}

func (h *fakeHost) newNode() *fakeNode {
	h.nextID++
	return &fakeNode{id: h.nextID, style: make(map[string]string)}
}

func (h *fakeHost) call(name string) error {
	h.calls = append(h.calls, name)
	if h.failOn == name {
		return errHostFailure
	}
	return nil
}

func (h *fakeHost) CreateNode() (NodeRef, error) {
	if err := h.call("CreateNode"); err != nil {
		return nil, err
	}
	return h.newNode(), nil
}

func (h *fakeHost) AttachNode(parent, node NodeRef) error {
	if err := h.call("AttachNode"); err != nil {
		return err
	}
	p, n := parent.(*fakeNode), node.(*fakeNode)
	if h.failRoot && p == h.root {
		return errHostFailure
	}
	n.parent = p
	p.children = append(p.children, n)
	return nil
}

func (h *fakeHost) DetachNode(parent, node NodeRef) (NodeRef, error) {
	if err := h.call("DetachNode"); err != nil {
		return nil, err
	}
	if h.detachNil {
		return nil, nil
	}
	p, n := parent.(*fakeNode), node.(*fakeNode)
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			n.parent = nil
			return n, nil
		}
	}
	return nil, errors.New("not a child")
}

func (h *fakeHost) SetStyleProperty(node NodeRef, name, value string) error {
	if err := h.call("SetStyleProperty"); err != nil {
		return err
	}
	if h.onStyle != nil {
		h.onStyle()
	}
	node.(*fakeNode).style[name] = value
	return nil
}

func (h *fakeHost) SetClassName(node NodeRef, classes string) error {
	if err := h.call("SetClassName"); err != nil {
		return err
	}
	node.(*fakeNode).class = classes
	return nil
}

func (h *fakeHost) ReleaseNode(node NodeRef) {
	h.calls = append(h.calls, "ReleaseNode")
	node.(*fakeNode).released = true
}

func (h *fakeHost) LoadModule(src string, names []string, done func()) error {
	if err := h.call("LoadModule"); err != nil {
		return err
	}
	finish := func() {
		for _, n := range names {
			h.components[n] = true
		}
		done()
	}
	if h.loadSync {
		finish()
		return nil
	}
	h.loads = append(h.loads, finish)
	return nil
}

// completeNext finishes the oldest outstanding load.
func (h *fakeHost) completeNext() {
	f := h.loads[0]
	h.loads = h.loads[1:]
	f()
}

func (h *fakeHost) ComponentExists(name string) bool {
	return h.components[name]
}

func (h *fakeHost) Instantiate(name string, node NodeRef) error {
	if err := h.call("Instantiate"); err != nil {
		return err
	}
	node.(*fakeNode).instance = name
	return nil
}

// plainHost hides the optional capabilities of a fakeHost.
type plainHost struct {
	Host
}

// newTestSession returns an initialized session at origin (0, 0). A size of
// zero leaves the reference size undefined.
func newTestSession(t *testing.T, w, h float64) (*Session, *fakeHost) {
	t.Helper()
	host := newFakeHost()
	s := NewSession(host)
	if err := s.Init(host.root, Config{Width: w, Height: h}); err != nil {
		t.Fatal(err)
	}
	return s, host
}

func nodeOf(t *testing.T, s *Session, h Handle) *fakeNode {
	t.Helper()
	ref, err := s.Node(h)
	if err != nil {
		t.Fatal(err)
	}
	return ref.(*fakeNode)
}
