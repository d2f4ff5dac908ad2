package events

import "time"

// EventType indicates which ordered sequence changed
type EventType string

const (
	EventColumnsChanged EventType = "columns_changed"
	EventTasksChanged   EventType = "tasks_changed"
)

// Event represents a board change notification
type Event struct {
	Type       EventType
	Timestamp  time.Time // When the change was published
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
