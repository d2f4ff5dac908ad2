package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// defaultBufferSize bounds each subscriber's queue. When a queue is full the queued
// events are coalesced to the newest one of each type: subscribers only care that a
// sequence changed, not how often.
const defaultBufferSize = 16

// Bus fans change notifications out to in-process subscribers.
// Publish never blocks, so it is safe to call while holding the board lock.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	seq    int64
	closed bool
	done   chan struct{}

	bufferSize int
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		subs:       make(map[int]chan Event),
		done:       make(chan struct{}),
		bufferSize: defaultBufferSize,
	}
}

// Publish stamps and delivers an event to all current subscribers
func (b *Bus) Publish(eventType EventType) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.seq++
	event := Event{
		Type:       eventType,
		Timestamp:  time.Now(),
		SequenceID: b.seq,
	}

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			coalesce(id, ch, event)
		}
	}

	return nil
}

// coalesce makes room in a full queue by keeping only the newest pending event of each
// type, then enqueues event. Order by sequence is preserved. Called with the bus lock
// held, so no other publisher writes to ch meanwhile.
func coalesce(id int, ch chan Event, event Event) {
	var pending []Event
drain:
	for {
		select {
		case ev := <-ch:
			pending = append(pending, ev)
		default:
			break drain
		}
	}
	pending = append(pending, event)

	latest := make(map[EventType]int64, 2)
	for _, ev := range pending {
		latest[ev.Type] = ev.SequenceID
	}
	for _, ev := range pending {
		if latest[ev.Type] != ev.SequenceID {
			continue
		}
		select {
		case ch <- ev:
		default:
			slog.Warn("dropping board event", "subscriber", id, "type", ev.Type)
		}
	}
}

// Subscribe registers a new subscriber. The returned channel is closed when ctx is
// done or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)
	if b.closed {
		close(ch)
		return ch
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	go func() {
		select {
		case <-ctx.Done():
			b.unsubscribe(id)
		case <-b.done:
		}
	}()

	return ch
}

func (b *Bus) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Close closes every subscriber channel. Further publishes return ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)

	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
	return nil
}
