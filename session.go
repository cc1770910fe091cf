package panes

import (
	"fmt"
	"slices"
	"time"
)

// Session owns every region placed on a host surface together with the
// global transform applied to them. Create one with NewSession and call
// Init before anything else.
//
// All methods return ErrLocked instead of blocking when the session is
// already held, so a host callback that re-enters the session from inside
// an update fails loudly.
type Session struct {
	host   Host
	guard  guard
	st     *state
	bridge *Bridge
	sink   EventSink
	debug  bool

	// queued collects events raised while the guard is held. They are
	// delivered after it is released.
	queued []Event
}

// state exists once Init succeeded.
type state struct {
	root       NodeRef
	tf         transform
	regions    *registry
	components componentCache
	classes    []string // base classes for every region node
}

// NewSession creates an uninitialized session driving host.
func NewSession(host Host) *Session {
	return &Session{host: host, bridge: NewBridge()}
}

// Bridge returns the completion bridge used for component loads.
func (s *Session) Bridge() *Bridge {
	return s.bridge
}

// SetEventSink sets the optional receiver of lifecycle events.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// Init mounts the session under root. cfg sets the global origin and the
// optional reference size that GlobalResize scales against.
func (s *Session) Init(root NodeRef, cfg Config) error {
	if err := s.guard.lock(); err != nil {
		return err
	}
	defer s.guard.unlock()
	if s.st != nil {
		return ErrAlreadyInitialized
	}
	if root == nil {
		return ErrMissingRoot
	}
	s.st = &state{
		root:    root,
		tf:      newTransform(cfg),
		regions: newRegistry(),
		classes: append([]string{baseClass}, cfg.Classes...),
	}
	s.debugf("init origin=(%g,%g) size=(%g,%g)", cfg.X, cfg.Y, cfg.Width, cfg.Height)
	return nil
}

// exec runs fn with exclusive access to the initialized state.
func (s *Session) exec(fn func(st *state) error) error {
	if err := s.guard.lock(); err != nil {
		return err
	}
	var err error
	var events []Event
	func() {
		defer func() {
			events, s.queued = s.queued, nil
			s.guard.unlock()
		}()
		if s.st == nil {
			err = ErrNotInitialized
			return
		}
		err = fn(s.st)
	}()
	s.emit(events)
	return err
}

// query runs fn with shared access to the initialized state.
func (s *Session) query(fn func(st *state) error) error {
	if err := s.guard.rlock(); err != nil {
		return err
	}
	defer s.guard.runlock()
	if s.st == nil {
		return ErrNotInitialized
	}
	return fn(s.st)
}

// NewRegion creates a visible region at r, relative to the global origin.
// A non-nil content node is attached as the region's first child.
func (s *Session) NewRegion(r Rect, content NodeRef) (Handle, error) {
	return s.NewStyledRegion(r, content, Style{})
}

// NewStyledRegion is NewRegion with extra classes and inline CSS applied to
// the region node.
func (s *Session) NewStyledRegion(r Rect, content NodeRef, style Style) (Handle, error) {
	var h Handle
	err := s.exec(func(st *state) error {
		var err error
		h, err = s.newRegion(st, r, content, style, nil)
		return err
	})
	return h, err
}

// newRegion builds the node, places it and registers it. fill, when set,
// runs against the fresh node before it is attached to the root. On failure
// the content is detached again and the node is handed back to a Releaser.
func (s *Session) newRegion(st *state, r Rect, content NodeRef, style Style, fill func(NodeRef) error) (_ Handle, err error) {
	node, err := s.host.CreateNode()
	if err != nil {
		return Handle{}, hostErr("create node", err)
	}
	var contentAttached bool
	defer func() {
		if err == nil {
			return
		}
		if contentAttached {
			_, _ = s.host.DetachNode(node, content)
		}
		if rel, ok := s.host.(Releaser); ok {
			rel.ReleaseNode(node)
		}
	}()
	p := &region{
		node:      node,
		content:   content,
		displayed: true,
		local: Rect{
			X:      st.tf.offset.X + r.X,
			Y:      st.tf.offset.Y + r.Y,
			Width:  r.Width,
			Height: r.Height,
		},
		classes: slices.Clone(st.classes),
	}
	for _, c := range style.Classes {
		p.addClass(c)
	}
	if err := s.host.SetClassName(node, p.className()); err != nil {
		return Handle{}, hostErr("set class name", err)
	}
	for _, d := range append(defaultCSS(), style.CSS...) {
		if err := s.host.SetStyleProperty(node, d.Property, d.Value); err != nil {
			return Handle{}, hostErr("set style "+d.Property, err)
		}
	}
	if content != nil {
		if err := s.host.AttachNode(node, content); err != nil {
			return Handle{}, hostErr("attach content", err)
		}
		contentAttached = true
	}
	if fill != nil {
		if err := fill(node); err != nil {
			return Handle{}, err
		}
	}
	if err := p.redraw(s.host, &st.tf); err != nil {
		return Handle{}, err
	}
	if err := s.host.AttachNode(st.root, node); err != nil {
		return Handle{}, hostErr("attach node", err)
	}
	h := st.regions.insert(p)
	s.queue(Event{Type: EventRegionCreated, Handle: h, Rect: p.placed})
	s.debugf("created %v at %+v", h, p.placed)
	return h, nil
}

// defaultCSS returns the inline declarations every region node starts with.
func defaultCSS() []Declaration {
	return []Declaration{
		{"position", "absolute"},
		{"overflow", "hidden"},
	}
}

// Reposition moves a region. x and y are in reference scale, relative to
// the global origin.
func (s *Session) Reposition(h Handle, x, y float64) error {
	return s.update(h, func(r *Rect) {
		r.X, r.Y = x, y
	})
}

// Resize changes a region's size in reference scale.
func (s *Session) Resize(h Handle, w, hgt float64) error {
	return s.update(h, func(r *Rect) {
		r.Width, r.Height = w, hgt
	})
}

// RepositionAndResize moves and resizes a region with a single redraw.
func (s *Session) RepositionAndResize(h Handle, x, y, w, hgt float64) error {
	return s.update(h, func(r *Rect) {
		*r = Rect{X: x, Y: y, Width: w, Height: hgt}
	})
}

// Move shifts a region by (dx, dy) in reference scale.
func (s *Session) Move(h Handle, dx, dy float64) error {
	return s.update(h, func(r *Rect) {
		r.X += dx
		r.Y += dy
	})
}

func (s *Session) update(h Handle, change func(*Rect)) error {
	return s.exec(func(st *state) error {
		p, err := st.regions.get(h)
		if err != nil {
			return err
		}
		change(&p.local)
		if err := p.redraw(s.host, &st.tf); err != nil {
			return err
		}
		s.queue(Event{Type: EventRegionMoved, Handle: h, Rect: p.placed})
		return nil
	})
}

// Hide detaches a region's node from the root. The region keeps its state
// and follows global changes; Show displays it again.
func (s *Session) Hide(h Handle) error {
	return s.exec(func(st *state) error {
		return s.hide(st, h)
	})
}

func (s *Session) hide(st *state, h Handle) error {
	p, err := st.regions.get(h)
	if err != nil {
		return err
	}
	if !p.displayed {
		return nil
	}
	node, err := s.host.DetachNode(st.root, p.node)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMissingChild, hostErr("detach node", err))
	}
	if node == nil {
		return ErrMissingChild
	}
	p.node = node
	p.displayed = false
	s.queue(Event{Type: EventRegionHidden, Handle: h, Rect: p.placed})
	return nil
}

// Show re-attaches a hidden region. Showing a visible region is a no-op.
func (s *Session) Show(h Handle) error {
	return s.exec(func(st *state) error {
		p, err := st.regions.get(h)
		if err != nil {
			return err
		}
		if p.displayed {
			return nil
		}
		if err := s.host.AttachNode(st.root, p.node); err != nil {
			return hostErr("attach node", err)
		}
		p.displayed = true
		s.queue(Event{Type: EventRegionShown, Handle: h, Rect: p.placed})
		return nil
	})
}

// Delete removes a region from the host and the session. The handle is
// invalid afterwards and reports ErrUseAfterDelete.
func (s *Session) Delete(h Handle) error {
	return s.exec(func(st *state) error {
		if err := s.hide(st, h); err != nil {
			return err
		}
		p, err := st.regions.remove(h)
		if err != nil {
			return err
		}
		if rel, ok := s.host.(Releaser); ok {
			rel.ReleaseNode(p.node)
		}
		s.queue(Event{Type: EventRegionDeleted, Handle: h, Rect: p.placed})
		s.debugf("deleted %v", h)
		return nil
	})
}

// SetCSS sets an inline style property on a region's node.
func (s *Session) SetCSS(h Handle, property, value string) error {
	return s.exec(func(st *state) error {
		p, err := st.regions.get(h)
		if err != nil {
			return err
		}
		return hostErr("set style "+property, s.host.SetStyleProperty(p.node, property, value))
	})
}

// AddClass adds a class to a region's node. Adding a present class is a no-op.
func (s *Session) AddClass(h Handle, class string) error {
	return s.setClasses(h, func(p *region) bool { return p.addClass(class) })
}

// RemoveClass removes a class from a region's node.
func (s *Session) RemoveClass(h Handle, class string) error {
	return s.setClasses(h, func(p *region) bool { return p.removeClass(class) })
}

func (s *Session) setClasses(h Handle, change func(*region) bool) error {
	return s.exec(func(st *state) error {
		p, err := st.regions.get(h)
		if err != nil {
			return err
		}
		if !change(p) {
			return nil
		}
		return hostErr("set class name", s.host.SetClassName(p.node, p.className()))
	})
}

// Node returns the host node of a region. Content passed at creation is its
// first child.
func (s *Session) Node(h Handle) (NodeRef, error) {
	var node NodeRef
	err := s.query(func(st *state) error {
		p, err := st.regions.get(h)
		if err != nil {
			return err
		}
		node = p.node
		return nil
	})
	return node, err
}

// Content returns the content node a region was created with.
func (s *Session) Content(h Handle) (NodeRef, error) {
	var node NodeRef
	err := s.query(func(st *state) error {
		p, err := st.regions.get(h)
		if err != nil {
			return err
		}
		if p.content == nil {
			return ErrMissingChild
		}
		node = p.content
		return nil
	})
	return node, err
}

// Placement returns the absolute rect last pushed to the host for a region.
func (s *Session) Placement(h Handle) (Rect, error) {
	var r Rect
	err := s.query(func(st *state) error {
		p, err := st.regions.get(h)
		if err != nil {
			return err
		}
		r = p.placed
		return nil
	})
	return r, err
}

// LocalRect returns a region's stored local rect.
func (s *Session) LocalRect(h Handle) (Rect, error) {
	var r Rect
	err := s.query(func(st *state) error {
		p, err := st.regions.get(h)
		if err != nil {
			return err
		}
		r = p.local
		return nil
	})
	return r, err
}

// Visible reports whether a region is attached to the root.
func (s *Session) Visible(h Handle) (bool, error) {
	var v bool
	err := s.query(func(st *state) error {
		p, err := st.regions.get(h)
		if err != nil {
			return err
		}
		v = p.displayed
		return nil
	})
	return v, err
}

// Len returns the number of live regions, visible or hidden.
func (s *Session) Len() (int, error) {
	var n int
	err := s.query(func(st *state) error {
		n = st.regions.len()
		return nil
	})
	return n, err
}

// RegionAt returns the topmost visible region whose placement contains the
// point. Regions created later are on top.
func (s *Session) RegionAt(x, y float64) (Handle, bool, error) {
	var (
		h     Handle
		found bool
	)
	err := s.query(func(st *state) error {
		for i := len(st.regions.order) - 1; i >= 0; i-- {
			idx := st.regions.order[i]
			p := st.regions.regions[idx]
			if p.displayed && p.placed.Contains(x, y) {
				h, found = Handle{index: idx}, true
				return nil
			}
		}
		return nil
	})
	return h, found, err
}

// GlobalReposition moves the global origin. Every region, visible or
// hidden, is placed again immediately.
func (s *Session) GlobalReposition(x, y float64) error {
	return s.exec(func(st *state) error {
		st.tf.offset = Vec2{x, y}
		if err := s.sweep(st); err != nil {
			return err
		}
		s.queue(Event{Type: EventGlobalMoved, Rect: frameRect(&st.tf)})
		return nil
	})
}

// GlobalResize rescales every region so that the reference size given to
// Init maps to (w, h). Without a reference size it returns
// ErrUndefinedSize and leaves the zoom untouched.
func (s *Session) GlobalResize(w, h float64) error {
	return s.exec(func(st *state) error {
		if err := st.tf.setSize(w, h); err != nil {
			return err
		}
		if err := s.sweep(st); err != nil {
			return err
		}
		s.queue(Event{Type: EventGlobalResized, Rect: frameRect(&st.tf)})
		return nil
	})
}

// sweep redraws every region under the current transform.
func (s *Session) sweep(st *state) error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	err := st.regions.forEach(func(_ Handle, p *region) error {
		return p.redraw(s.host, &st.tf)
	})
	if s.debug {
		s.debugSweep(sweepStats{
			regions: st.regions.len(),
			offset:  st.tf.offset,
			zoom:    st.tf.zoom,
			elapsed: time.Since(t0),
		})
	}
	return err
}

// frameRect returns the global frame in absolute coordinates. Its size is
// zero when no reference size exists.
func frameRect(t *transform) Rect {
	size, _ := t.frameSize()
	return Rect{X: t.offset.X, Y: t.offset.Y, Width: size.X, Height: size.Y}
}

// Offset returns the global origin.
func (s *Session) Offset() (Vec2, error) {
	var v Vec2
	err := s.query(func(st *state) error {
		v = st.tf.offset
		return nil
	})
	return v, err
}

// Zoom returns the current global zoom factors. They are (1, 1) until
// GlobalResize succeeds.
func (s *Session) Zoom() (Vec2, error) {
	var v Vec2
	err := s.query(func(st *state) error {
		v = st.tf.zoom
		return nil
	})
	return v, err
}

// FrameSize returns the current size of the global frame, or
// ErrUndefinedSize when Init set no reference size.
func (s *Session) FrameSize() (Vec2, error) {
	var v Vec2
	err := s.query(func(st *state) error {
		size, ok := st.tf.frameSize()
		if !ok {
			return ErrUndefinedSize
		}
		v = size
		return nil
	})
	return v, err
}
