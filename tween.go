package panes

import (
	"errors"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates up to 4 placement values and writes them back through the
// Session on every Update, so each step is a regular guarded operation.
// Create one with TweenOffset, TweenSize or TweenRegion and call Update(dt)
// each frame. If the target region is deleted, the tween stops quietly.
//
// There is no animation manager; callers drive Update themselves.
type Tween struct {
	tweens [4]*gween.Tween
	count  int
	values [4]float64
	apply  func(v [4]float64) error
	Done   bool
}

// Update advances all tweens by dt seconds and applies the new values.
// Errors from the session stop the tween and are returned.
func (g *Tween) Update(dt float32) error {
	if g.Done {
		return nil
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if err := g.apply(g.values); err != nil {
		g.Done = true
		if errors.Is(err, ErrUseAfterDelete) {
			return nil
		}
		return err
	}
	return nil
}

func newTween(from, to []float64, duration float32, fn ease.TweenFunc, apply func([4]float64) error) *Tween {
	g := &Tween{count: len(from), apply: apply}
	for i := range from {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
		g.values[i] = from[i]
	}
	return g
}

// TweenOffset animates the global origin to (toX, toY).
func (s *Session) TweenOffset(toX, toY float64, duration float32, fn ease.TweenFunc) (*Tween, error) {
	from, err := s.Offset()
	if err != nil {
		return nil, err
	}
	return newTween(
		[]float64{from.X, from.Y},
		[]float64{toX, toY},
		duration, fn,
		func(v [4]float64) error { return s.GlobalReposition(v[0], v[1]) },
	), nil
}

// TweenSize animates the global frame to (toW, toH). It requires a
// reference size, like GlobalResize.
func (s *Session) TweenSize(toW, toH float64, duration float32, fn ease.TweenFunc) (*Tween, error) {
	from, err := s.FrameSize()
	if err != nil {
		return nil, err
	}
	return newTween(
		[]float64{from.X, from.Y},
		[]float64{toW, toH},
		duration, fn,
		func(v [4]float64) error { return s.GlobalResize(v[0], v[1]) },
	), nil
}

// TweenRegion animates a region's local rect to the target.
func (s *Session) TweenRegion(h Handle, to Rect, duration float32, fn ease.TweenFunc) (*Tween, error) {
	from, err := s.LocalRect(h)
	if err != nil {
		return nil, err
	}
	return newTween(
		[]float64{from.X, from.Y, from.Width, from.Height},
		[]float64{to.X, to.Y, to.Width, to.Height},
		duration, fn,
		func(v [4]float64) error { return s.RepositionAndResize(h, v[0], v[1], v[2], v[3]) },
	), nil
}
