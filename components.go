package panes

import (
	"fmt"
	"slices"
)

// ComponentHandle refers to a component known to a session.
type ComponentHandle struct {
	index int
}

// Index returns the cache index wrapped by the handle.
func (c ComponentHandle) Index() int {
	return c.index
}

type component struct {
	name string
}

// componentCache is append-only; handles stay valid for the session's life.
type componentCache struct {
	data []component
}

func (c *componentCache) add(name string) ComponentHandle {
	c.data = append(c.data, component{name: name})
	return ComponentHandle{index: len(c.data) - 1}
}

func (c *componentCache) get(h ComponentHandle) (component, error) {
	if h.index < 0 || h.index >= len(c.data) {
		return component{}, fmt.Errorf("%w: handle %d", ErrUnknownComponent, h.index)
	}
	return c.data[h.index], nil
}

func (c *componentCache) find(name string) (ComponentHandle, bool) {
	i := slices.IndexFunc(c.data, func(cm component) bool { return cm.name == name })
	if i < 0 {
		return ComponentHandle{}, false
	}
	return ComponentHandle{index: i}, true
}

func (s *Session) componentHost() (ComponentHost, error) {
	ch, ok := s.host.(ComponentHost)
	if !ok {
		return nil, ErrNoComponentHost
	}
	return ch, nil
}

// LoadComponents asks the host to load the named components from src. The
// load is started before LoadComponents returns and proceeds whether or not
// the returned Pending is ever polled. The handles become usable with
// AttachComponent once the Pending is ready.
func (s *Session) LoadComponents(src string, names ...string) (*Pending[[]ComponentHandle], error) {
	var p *Pending[[]ComponentHandle]
	err := s.exec(func(st *state) error {
		ch, err := s.componentHost()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return fmt.Errorf("%w: no component names for %q", ErrUnknownComponent, src)
		}
		if err := ch.LoadModule(src, slices.Clone(names), s.bridge.Complete); err != nil {
			return hostErr("load module "+src, err)
		}
		handles := make([]ComponentHandle, 0, len(names))
		for _, name := range names {
			handles = append(handles, st.components.add(name))
		}
		ticket := s.bridge.issue()
		p = newPending(s.bridge, ticket, handles)
		s.queue(Event{Type: EventComponentsRequested, Ticket: ticket})
		s.debugf("loading %v from %s (ticket %d)", names, src, ticket)
		return nil
	})
	return p, err
}

// LoadComponent loads a single component. See LoadComponents.
func (s *Session) LoadComponent(name, src string) (*Pending[ComponentHandle], error) {
	all, err := s.LoadComponents(src, name)
	if err != nil {
		return nil, err
	}
	return newPending(all.bridge, all.ticket, all.value[0]), nil
}

// PreloadedComponent returns the handle of a component the host already
// provides, registering it with the session on first use.
func (s *Session) PreloadedComponent(name string) (ComponentHandle, error) {
	var h ComponentHandle
	err := s.exec(func(st *state) error {
		if found, ok := st.components.find(name); ok {
			h = found
			return nil
		}
		ch, err := s.componentHost()
		if err != nil {
			return err
		}
		if !ch.ComponentExists(name) {
			return fmt.Errorf("%w: %q", ErrUnknownComponent, name)
		}
		h = st.components.add(name)
		return nil
	})
	return h, err
}

// ComponentName returns the name a component was registered under.
func (s *Session) ComponentName(c ComponentHandle) (string, error) {
	var name string
	err := s.query(func(st *state) error {
		cm, err := st.components.get(c)
		if err != nil {
			return err
		}
		name = cm.name
		return nil
	})
	return name, err
}

// AttachComponent creates a region at r and instantiates component c inside
// its node.
func (s *Session) AttachComponent(r Rect, c ComponentHandle) (Handle, error) {
	var h Handle
	err := s.exec(func(st *state) error {
		cm, err := st.components.get(c)
		if err != nil {
			return err
		}
		ch, err := s.componentHost()
		if err != nil {
			return err
		}
		h, err = s.newRegion(st, r, nil, Style{}, func(node NodeRef) error {
			return hostErr("instantiate "+cm.name, ch.Instantiate(cm.name, node))
		})
		return err
	})
	return h, err
}
