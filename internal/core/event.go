package core

// EventKind identifies the kind of an input event.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit           // Window closed, q or Ctrl+C
	EventKey            // Any other key press
	EventResize         // Window or terminal resized
)

// String returns a human-readable name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventKey:
		return "Key"
	case EventResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Event is a single input event delivered by a backend.
type Event struct {
	Kind EventKind
	Key  string // Key name for EventKey
}

// EventQueue buffers events between backend polls and the loop.
// Backends push; the loop drains everything once per iteration.
// It is not safe for concurrent use.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Quit is shorthand for pushing an EventQuit.
func (q *EventQueue) Quit() {
	q.Push(Event{Kind: EventQuit})
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
