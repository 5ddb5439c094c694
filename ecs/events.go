package ecs

import "github.com/milk9111/levelq/ecs/component"

// EventKind identifies world events.
type EventKind string

const (
	// EventPortalEntered fires when the player overlaps a portal and a
	// transition begins. Data is the portal side.
	EventPortalEntered EventKind = "portal_entered"
	// EventLevelChanged fires when a transition completes. Data is a
	// LevelChange.
	EventLevelChanged EventKind = "level_changed"
)

// Event is a generic ECS event payload.
type Event struct {
	Kind EventKind
	Data any
}

// LevelChange describes a completed transition.
type LevelChange struct {
	From int
	To   int
	Side component.PortalSide
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
