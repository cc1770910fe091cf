package panes

// EventType identifies a kind of session event.
type EventType uint8

const (
	EventRegionCreated       EventType = iota // region created and attached
	EventRegionMoved                          // region repositioned or resized
	EventRegionHidden                         // region detached from the root
	EventRegionShown                          // region attached again
	EventRegionDeleted                        // region removed for good
	EventGlobalMoved                          // global origin changed
	EventGlobalResized                        // global zoom changed
	EventComponentsRequested                  // component module load fired
)

var eventTypeNames = [...]string{
	EventRegionCreated:       "region-created",
	EventRegionMoved:         "region-moved",
	EventRegionHidden:        "region-hidden",
	EventRegionShown:         "region-shown",
	EventRegionDeleted:       "region-deleted",
	EventGlobalMoved:         "global-moved",
	EventGlobalResized:       "global-resized",
	EventComponentsRequested: "components-requested",
}

// String returns the kebab-case name of the event type.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event describes a change made by a Session.
type Event struct {
	Type EventType
	// Handle is the affected region (region events only).
	Handle Handle
	// Rect is the region's absolute placement for region events and the
	// global frame for global events.
	Rect Rect
	// Ticket is the completion ticket (EventComponentsRequested only).
	Ticket uint64
}

// EventSink receives session events. Events are delivered after the session
// is released, so a sink may call back into the session.
type EventSink interface {
	EmitEvent(event Event)
}

// queue records an event while the guard is held.
func (s *Session) queue(e Event) {
	if s.sink == nil {
		return
	}
	s.queued = append(s.queued, e)
}

func (s *Session) emit(events []Event) {
	if s.sink == nil {
		return
	}
	for _, e := range events {
		s.sink.EmitEvent(e)
	}
}
