// Package ecs provides ECS adapters for panes.
package ecs

import (
	"github.com/phanxgames/panes"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType is the Donburi event type for panes session events.
// Subscribe to this in your ECS systems to follow region and global changes.
var EventType = events.NewEventType[panes.Event]()

// RegionData mirrors one live region. Rect is the placement last reported
// for the region; global moves and resizes are recorded on Frame instead.
type RegionData struct {
	Handle  panes.Handle
	Rect    panes.Rect
	Visible bool
}

// FrameData holds the global frame after the latest global move or resize.
type FrameData struct {
	Rect panes.Rect
}

var (
	// Region is attached to one entity per live region.
	Region = donburi.NewComponentType[RegionData]()
	// Frame is attached to a single entity, created on the first global event.
	Frame = donburi.NewComponentType[FrameData]()
)

// DonburiSink is an EventSink that publishes session events into a Donburi
// world and keeps a Region entity in step with every region it hears about.
type DonburiSink struct {
	world    donburi.World
	entities map[panes.Handle]donburi.Entity
	frame    donburi.Entity
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Session events are published to EventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{
		world:    world,
		entities: make(map[panes.Handle]donburi.Entity),
		frame:    donburi.Null,
	}
}

// Entity returns the entity mirroring region h.
func (s *DonburiSink) Entity(h panes.Handle) (donburi.Entity, bool) {
	e, ok := s.entities[h]
	return e, ok
}

// EmitEvent updates the mirrored entities, then publishes the event.
func (s *DonburiSink) EmitEvent(event panes.Event) {
	switch event.Type {
	case panes.EventRegionCreated:
		e := s.world.Create(Region)
		s.entities[event.Handle] = e
		Region.SetValue(s.world.Entry(e), RegionData{
			Handle:  event.Handle,
			Rect:    event.Rect,
			Visible: true,
		})
	case panes.EventRegionMoved:
		if d := s.region(event.Handle); d != nil {
			d.Rect = event.Rect
		}
	case panes.EventRegionHidden, panes.EventRegionShown:
		if d := s.region(event.Handle); d != nil {
			d.Visible = event.Type == panes.EventRegionShown
		}
	case panes.EventRegionDeleted:
		if e, ok := s.entities[event.Handle]; ok {
			delete(s.entities, event.Handle)
			if s.world.Valid(e) {
				s.world.Remove(e)
			}
		}
	case panes.EventGlobalMoved, panes.EventGlobalResized:
		if !s.world.Valid(s.frame) {
			s.frame = s.world.Create(Frame)
		}
		Frame.SetValue(s.world.Entry(s.frame), FrameData{Rect: event.Rect})
	}
	EventType.Publish(s.world, event)
}

// region returns the mirrored data for h, or nil when the entity is gone.
func (s *DonburiSink) region(h panes.Handle) *RegionData {
	e, ok := s.entities[h]
	if !ok || !s.world.Valid(e) {
		return nil
	}
	return Region.Get(s.world.Entry(e))
}
