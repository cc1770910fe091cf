package ebitenhost

import (
	"errors"
	"testing"

	"github.com/phanxgames/panes"
	"golang.org/x/image/font/gofont/goregular"
)

func TestHostImplementsInterfaces(t *testing.T) {
	h := New()
	var _ panes.Host = h
	var _ panes.ComponentHost = h
	var _ panes.Releaser = h
}

func TestAttachDetach(t *testing.T) {
	h := New()
	n := h.NewNode()
	if err := h.AttachNode(h.Root(), n); err != nil {
		t.Fatal(err)
	}
	if n.Parent() != h.Root() || len(h.Root().Children()) != 1 {
		t.Fatal("node should be attached to root")
	}
	got, err := h.DetachNode(h.Root(), n)
	if err != nil {
		t.Fatal(err)
	}
	if got != n {
		t.Error("DetachNode should return the detached node")
	}
	if n.Parent() != nil || len(h.Root().Children()) != 0 {
		t.Error("node should be detached")
	}
	if _, err := h.DetachNode(h.Root(), n); !errors.Is(err, ErrNotChild) {
		t.Errorf("second detach err = %v, want ErrNotChild", err)
	}
}

func TestAttachReparents(t *testing.T) {
	h := New()
	a, b, c := h.NewNode(), h.NewNode(), h.NewNode()
	_ = h.AttachNode(a, c)
	_ = h.AttachNode(b, c)
	if len(a.Children()) != 0 || len(b.Children()) != 1 || c.Parent() != b {
		t.Error("attach should move node to its new parent")
	}
}

func TestAttachCycle(t *testing.T) {
	h := New()
	a, b := h.NewNode(), h.NewNode()
	_ = h.AttachNode(a, b)
	if err := h.AttachNode(b, a); err == nil {
		t.Error("expected error for cycle")
	}
}

func TestForeignNode(t *testing.T) {
	h1, h2 := New(), New()
	if err := h1.AttachNode(h1.Root(), h2.NewNode()); !errors.Is(err, ErrForeignNode) {
		t.Errorf("err = %v, want ErrForeignNode", err)
	}
	if err := h1.SetStyleProperty("not a node", "left", "1px"); !errors.Is(err, ErrForeignNode) {
		t.Errorf("err = %v, want ErrForeignNode", err)
	}
}

func TestStyleAndClass(t *testing.T) {
	h := New()
	n := h.NewNode()
	_ = h.SetStyleProperty(n, "left", "10px")
	_ = h.SetClassName(n, "panes hud")
	if n.Style("left") != "10px" {
		t.Errorf("left = %q", n.Style("left"))
	}
	if n.ClassName() != "panes hud" {
		t.Errorf("class = %q", n.ClassName())
	}
}

func TestReleaseNode(t *testing.T) {
	h := New()
	n, child := h.NewNode(), h.NewNode()
	_ = h.AttachNode(h.Root(), n)
	_ = h.AttachNode(n, child)
	h.ReleaseNode(n)
	if !n.Released() || !child.Released() {
		t.Error("subtree should be released")
	}
	if len(h.Root().Children()) != 0 {
		t.Error("released node should leave the tree")
	}
	if err := h.SetStyleProperty(n, "left", "1px"); !errors.Is(err, ErrReleased) {
		t.Errorf("err = %v, want ErrReleased", err)
	}
}

func TestModuleLoadCompletesOnUpdate(t *testing.T) {
	h := New()
	var built int
	h.DefineModule("./foo", map[string]Constructor{
		"Foo": func(n *Node) { built++; n.Text = "foo" },
	})

	done := 0
	if err := h.LoadModule("./foo", []string{"Foo"}, func() { done++ }); err != nil {
		t.Fatal(err)
	}
	if h.ComponentExists("Foo") {
		t.Error("component should not exist before Update")
	}
	h.Update()
	if done != 1 {
		t.Fatalf("done called %d times, want 1", done)
	}
	if !h.ComponentExists("Foo") {
		t.Fatal("component should exist after Update")
	}

	n := h.NewNode()
	if err := h.Instantiate("Foo", n); err != nil {
		t.Fatal(err)
	}
	if built != 1 || n.Component != "Foo" || n.Text != "foo" {
		t.Errorf("instance not built: built=%d component=%q text=%q", built, n.Component, n.Text)
	}
}

func TestModuleLoadUndefinedNeverCompletes(t *testing.T) {
	h := New()
	done := 0
	_ = h.LoadModule("./missing", []string{"Bar"}, func() { done++ })
	h.Update()
	h.Update()
	if done != 0 {
		t.Errorf("done called %d times, want 0", done)
	}
	if h.PendingLoads() != 0 {
		t.Errorf("PendingLoads = %d, want 0", h.PendingLoads())
	}
}

func TestUpdateCompletesOneLoadPerFrame(t *testing.T) {
	h := New()
	h.DefineModule("./a", map[string]Constructor{"A": nil})
	h.DefineModule("./b", map[string]Constructor{"B": nil})
	done := 0
	_ = h.LoadModule("./a", []string{"A"}, func() { done++ })
	_ = h.LoadModule("./b", []string{"B"}, func() { done++ })
	h.Update()
	if done != 1 || h.PendingLoads() != 1 {
		t.Fatalf("after 1 update: done=%d pending=%d", done, h.PendingLoads())
	}
	h.Update()
	if done != 2 || h.PendingLoads() != 0 {
		t.Fatalf("after 2 updates: done=%d pending=%d", done, h.PendingLoads())
	}
}

func TestInstantiateUnknown(t *testing.T) {
	h := New()
	if err := h.Instantiate("Nope", h.NewNode()); err == nil {
		t.Error("expected error for unknown component")
	}
}

func TestPxValue(t *testing.T) {
	tests := []struct {
		in   string
		def  float64
		want float64
	}{
		{"12px", 0, 12},
		{" 7 ", 0, 7},
		{"-3px", 0, -3},
		{"", 5, 5},
		{"auto", 9, 9},
	}
	for _, tt := range tests {
		if got := pxValue(tt.in, tt.def); got != tt.want {
			t.Errorf("pxValue(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want [4]uint8
		ok   bool
	}{
		{"#ff0000", [4]uint8{255, 0, 0, 255}, true},
		{"#0f0", [4]uint8{0, 255, 0, 255}, true},
		{"#00000080", [4]uint8{0, 0, 0, 128}, true},
		{"Blue", [4]uint8{0, 0, 255, 255}, true},
		{"transparent", [4]uint8{}, false},
		{"#12", [4]uint8{}, false},
		{"#zzzzzz", [4]uint8{}, false},
	}
	for _, tt := range tests {
		c, ok := parseColor(tt.in)
		if ok != tt.ok {
			t.Errorf("parseColor(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && [4]uint8{c.R, c.G, c.B, c.A} != tt.want {
			t.Errorf("parseColor(%q) = %v, want %v", tt.in, c, tt.want)
		}
	}
}

func TestSessionOnHost(t *testing.T) {
	h := New()
	s := panes.NewSession(h)
	if err := s.Init(h.Root(), panes.Config{Width: 100, Height: 100}); err != nil {
		t.Fatal(err)
	}
	content := h.NewNode()
	ph, err := s.NewRegion(panes.Rect{X: 10, Y: 10, Width: 10, Height: 10}, content)
	if err != nil {
		t.Fatal(err)
	}
	ref, _ := s.Node(ph)
	n := ref.(*Node)
	if n.Parent() != h.Root() || content.Parent() != n {
		t.Fatal("region node should hang under root with content inside")
	}
	if err := s.GlobalResize(200, 200); err != nil {
		t.Fatal(err)
	}
	if n.Style("width") != "20px" || n.Style("left") != "20px" {
		t.Errorf("style after resize: left=%q width=%q", n.Style("left"), n.Style("width"))
	}
	if err := s.Delete(ph); err != nil {
		t.Fatal(err)
	}
	if !n.Released() || len(h.Root().Children()) != 0 {
		t.Error("deleted region node should be released and detached")
	}
}

func TestSetFont(t *testing.T) {
	h := New()
	if err := h.SetFont([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid font data")
	}
	if h.font != nil {
		t.Error("failed SetFont should keep the default")
	}
	if err := h.SetFont(goregular.TTF, 20); err != nil {
		t.Fatal(err)
	}
	if h.font.face.Size != 20 || h.font.lh <= 0 {
		t.Errorf("font size=%v lineHeight=%v", h.font.face.Size, h.font.lh)
	}
}

func TestDefaultLabelFont(t *testing.T) {
	h := New()
	f := h.labelFont()
	if f.face.Size != defaultLabelSize {
		t.Errorf("size = %v, want %v", f.face.Size, defaultLabelSize)
	}
	if h.labelFont() != f {
		t.Error("default font should be loaded once")
	}
}
