package model

import "github.com/soocke/spot-marker-go/domain/editor"

// DefaultQueueLimit bounds the number of buffered input events.
const DefaultQueueLimit = 256

// EventQueue buffers input events delivered by the windowing toolkit until
// the frame loop drains them. Producers and the consumer both run on the UI
// thread, so it needs no synchronization. The zero value is usable.
type EventQueue struct {
	events []editor.Event
	limit  int
	// Dropped counts events discarded because the queue was full.
	Dropped int
}

// NewEventQueue returns a queue holding at most limit events.
func NewEventQueue(limit int) *EventQueue {
	if limit <= 0 {
		limit = DefaultQueueLimit
	}
	return &EventQueue{limit: limit}
}

// Push appends ev. A pointer move directly following another pointer move
// replaces it, since only the latest position matters for the preview. When
// the queue is full ev is discarded and counted in Dropped.
func (q *EventQueue) Push(ev editor.Event) {
	if q == nil {
		return
	}
	if n := len(q.events); n > 0 && ev.Kind == editor.EventPointerMove && q.events[n-1].Kind == editor.EventPointerMove {
		q.events[n-1] = ev
		return
	}
	limit := q.limit
	if limit <= 0 {
		limit = DefaultQueueLimit
	}
	// Full: drop the incoming event. Evicting buffered ones could split a
	// press from its release.
	if len(q.events) >= limit {
		q.Dropped++
		return
	}
	q.events = append(q.events, ev)
}

// Drain returns all buffered events in arrival order and empties the queue.
func (q *EventQueue) Drain() []editor.Event {
	if q == nil || len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of buffered events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.events)
}
