package drag

import "github.com/thenoetrevino/kanban/internal/models"

// Endpoint identifies one side of a drag: the entity being dragged or the entity under
// the pointer.
type Endpoint struct {
	ID   models.ID   `json:"id"`
	Kind models.Kind `json:"kind"`
}

// Payload carries the dragged entity for presentation (the floating copy under the
// pointer). Only the field matching the endpoint's kind is read.
type Payload struct {
	Column *models.Column `json:"column,omitempty"`
	Task   *models.Task   `json:"task,omitempty"`
}

// StartEvent is raised when a drag gesture begins
type StartEvent struct {
	Active  Endpoint `json:"active"`
	Payload Payload  `json:"payload"`
}

// OverEvent is raised repeatedly while the pointer is over a droppable target.
// Over is nil when the pointer is not over anything.
type OverEvent struct {
	Active Endpoint  `json:"active"`
	Over   *Endpoint `json:"over,omitempty"`
}

// EndEvent is raised exactly once when the gesture ends. Over is nil when the entity
// was released outside any target or the drag was cancelled.
type EndEvent struct {
	Active Endpoint  `json:"active"`
	Over   *Endpoint `json:"over,omitempty"`
}

// TaskEndpoint is shorthand for a task endpoint
func TaskEndpoint(id models.ID) Endpoint {
	return Endpoint{ID: id, Kind: models.KindTask}
}

// ColumnEndpoint is shorthand for a column endpoint
func ColumnEndpoint(id models.ID) Endpoint {
	return Endpoint{ID: id, Kind: models.KindColumn}
}
