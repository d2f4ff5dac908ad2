package events

import "context"

// Publisher is the write side of the change bus. The board depends on this
// interface so tests can observe or drop notifications.
type Publisher interface {
	// Publish delivers an event to every subscriber without blocking
	Publish(eventType EventType) error
}

// Subscriber is the read side of the change bus
type Subscriber interface {
	// Subscribe returns a channel of events that is closed when ctx is done
	// or the bus is closed
	Subscribe(ctx context.Context) <-chan Event
}

// Compile-time verification that *Bus implements both sides
var (
	_ Publisher  = (*Bus)(nil)
	_ Subscriber = (*Bus)(nil)
)
