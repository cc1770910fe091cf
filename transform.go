package panes

// PlacementFunc maps a region's stored local rect to its absolute rect under
// the session's global offset and zoom.
type PlacementFunc func(local Rect, offset, zoom Vec2) Rect

// NestedPlacement is the default PlacementFunc:
//
//	(ox + zx*lx, oy + zy*ly, zx*lw, zy*lh)
//
// A region's stored x/y already contains the offset that was current when
// it was created, so that part is scaled again by every later zoom change
// and the region drifts with global resizes.
func NestedPlacement(local Rect, offset, zoom Vec2) Rect {
	m := globalMatrix(offset, zoom)
	x, y := transformPoint(m, local.X, local.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  zoom.X * local.Width,
		Height: zoom.Y * local.Height,
	}
}

// globalMatrix builds the affine matrix [a, b, c, d, tx, ty] for a uniform
// per-axis zoom followed by a translation to the offset.
//
//	| zx  0  ox |
//	|  0 zy  oy |
//	|  0  0   1 |
func globalMatrix(offset, zoom Vec2) [6]float64 {
	return [6]float64{zoom.X, 0, 0, zoom.Y, offset.X, offset.Y}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transform is the session-wide global placement state.
type transform struct {
	offset  Vec2
	size    Vec2 // reference size, valid when hasSize
	hasSize bool
	zoom    Vec2
	place   PlacementFunc
}

func newTransform(cfg Config) transform {
	t := transform{
		offset: Vec2{cfg.X, cfg.Y},
		zoom:   Vec2{1, 1},
		place:  cfg.Placement,
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		t.size = Vec2{cfg.Width, cfg.Height}
		t.hasSize = true
	}
	if t.place == nil {
		t.place = NestedPlacement
	}
	return t
}

// apply returns the absolute rect for a local rect.
func (t *transform) apply(local Rect) Rect {
	return t.place(local, t.offset, t.zoom)
}

// setSize derives the zoom from a new frame size relative to the reference
// size. The zoom is left untouched when no reference size exists.
func (t *transform) setSize(w, h float64) error {
	if !t.hasSize {
		return ErrUndefinedSize
	}
	t.zoom = Vec2{w / t.size.X, h / t.size.Y}
	return nil
}

// frameSize returns the current size of the global frame.
func (t *transform) frameSize() (Vec2, bool) {
	if !t.hasSize {
		return Vec2{}, false
	}
	return Vec2{t.size.X * t.zoom.X, t.size.Y * t.zoom.Y}, true
}
