// Package panes manages rectangular overlay regions placed on a host display
// surface under one global transform.
//
// A [Session] owns the regions. Each region has a local rect relative to
// the global origin; the session multiplies it by the global zoom, adds the
// origin and pushes the result to the [Host] as left/top/width/height style
// properties. Changing the origin or zoom re-places every region at once,
// hidden ones included.
//
// # Quick start
//
//	s := panes.NewSession(host)
//	if err := s.Init(host.Root(), panes.Config{Width: 1280, Height: 720}); err != nil {
//		return err
//	}
//	h, err := s.NewRegion(panes.Rect{X: 10, Y: 10, Width: 200, Height: 100}, nil)
//	// ...
//	s.GlobalResize(1920, 1080) // every region scales by 1.5
//
// Regions are referred to by [Handle]. Handles are never reused, so a handle
// kept after [Session.Delete] reports [ErrUseAfterDelete] instead of
// reaching an unrelated region.
//
// # Hosts
//
// The session never renders anything. A [Host] creates, attaches and styles
// nodes. The ebitenhost package provides one for [Ebitengine]. Hosts that
// implement [ComponentHost] can also load components asynchronously; see
// [Session.LoadComponent] and [Pending].
//
// # Exclusive access
//
// Sessions are meant for a single goroutine. Every operation takes the
// session for its duration and fails with [ErrLocked] rather than waiting
// if it is already taken.
//
// # Animation and events
//
// [Session.TweenOffset], [Session.TweenSize] and [Session.TweenRegion]
// animate placement with [gween]. An [EventSink] receives region and global
// events; the ecs module forwards them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package panes
