package panes

import "testing"

func TestNestedPlacementIdentity(t *testing.T) {
	got := NestedPlacement(Rect{X: 10, Y: 20, Width: 30, Height: 40}, Vec2{}, Vec2{1, 1})
	assertRect(t, "placed", got, Rect{X: 10, Y: 20, Width: 30, Height: 40})
}

func TestNestedPlacementOffsetAndZoom(t *testing.T) {
	got := NestedPlacement(Rect{X: 10, Y: 20, Width: 30, Height: 40}, Vec2{5, 7}, Vec2{2, 3})
	// (ox + zx*lx, oy + zy*ly, zx*lw, zy*lh)
	assertRect(t, "placed", got, Rect{X: 25, Y: 67, Width: 60, Height: 120})
}

func TestGlobalMatrix(t *testing.T) {
	m := globalMatrix(Vec2{5, 6}, Vec2{2, 3})
	want := [6]float64{2, 0, 0, 3, 5, 6}
	if m != want {
		t.Errorf("matrix = %v, want %v", m, want)
	}
	x, y := transformPoint(m, 1, 1)
	assertNear(t, "x", x, 7)
	assertNear(t, "y", y, 9)
}

func TestTransformDefaults(t *testing.T) {
	tf := newTransform(Config{X: 3, Y: 4})
	assertNear(t, "zoom.X", tf.zoom.X, 1)
	assertNear(t, "zoom.Y", tf.zoom.Y, 1)
	if tf.hasSize {
		t.Error("no reference size expected")
	}
	if _, ok := tf.frameSize(); ok {
		t.Error("frameSize should report false without a reference size")
	}
	assertRect(t, "apply", tf.apply(Rect{X: 1, Y: 1, Width: 2, Height: 2}), Rect{X: 4, Y: 5, Width: 2, Height: 2})
}

func TestTransformSetSize(t *testing.T) {
	tf := newTransform(Config{Width: 100, Height: 50})
	if err := tf.setSize(200, 25); err != nil {
		t.Fatal(err)
	}
	assertNear(t, "zoom.X", tf.zoom.X, 2)
	assertNear(t, "zoom.Y", tf.zoom.Y, 0.5)
	size, ok := tf.frameSize()
	if !ok {
		t.Fatal("frameSize should be defined")
	}
	assertNear(t, "frame.X", size.X, 200)
	assertNear(t, "frame.Y", size.Y, 25)
}

func TestTransformSetSizeUndefined(t *testing.T) {
	tf := newTransform(Config{})
	assertErr(t, tf.setSize(200, 200), ErrUndefinedSize)
	assertNear(t, "zoom.X", tf.zoom.X, 1)
	assertNear(t, "zoom.Y", tf.zoom.Y, 1)
}

func TestTransformHalfSizeIsUndefined(t *testing.T) {
	tf := newTransform(Config{Width: 100})
	if tf.hasSize {
		t.Error("a reference size needs both width and height")
	}
}

func TestTransformCustomPlacement(t *testing.T) {
	flat := func(local Rect, offset, zoom Vec2) Rect {
		return Rect{X: offset.X + local.X, Y: offset.Y + local.Y, Width: local.Width, Height: local.Height}
	}
	tf := newTransform(Config{X: 1, Y: 1, Width: 10, Height: 10, Placement: flat})
	if err := tf.setSize(20, 20); err != nil {
		t.Fatal(err)
	}
	assertRect(t, "apply", tf.apply(Rect{X: 2, Y: 2, Width: 3, Height: 3}), Rect{X: 3, Y: 3, Width: 3, Height: 3})
}

func TestPx(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0px"},
		{12, "12px"},
		{12.9, "12px"},
		{-3.7, "-3px"},
	}
	for _, tt := range tests {
		if got := px(tt.in); got != tt.want {
			t.Errorf("px(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRectContainsIntersects(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 10, Height: 10}
	if !r.Contains(10, 10) || !r.Contains(20, 20) || r.Contains(21, 15) {
		t.Error("Contains mismatch")
	}
	if !r.Intersects(Rect{X: 20, Y: 20, Width: 5, Height: 5}) {
		t.Error("edge-sharing rects should intersect")
	}
	if r.Intersects(Rect{X: 30, Y: 30, Width: 5, Height: 5}) {
		t.Error("disjoint rects should not intersect")
	}
}
