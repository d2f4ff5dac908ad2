package drag

import "github.com/thenoetrevino/kanban/internal/models"

// Lookup resolves entities by ID. Satisfied by *board.Board.
type Lookup interface {
	Column(id models.ID) (models.Column, bool)
	Task(id models.ID) (models.Task, bool)
}

// PayloadFor snapshots the entity behind ep. Missing entities give an empty payload.
func PayloadFor(lookup Lookup, ep Endpoint) Payload {
	switch ep.Kind {
	case models.KindColumn:
		if col, ok := lookup.Column(ep.ID); ok {
			return Payload{Column: &col}
		}
	case models.KindTask:
		if task, ok := lookup.Task(ep.ID); ok {
			return Payload{Task: &task}
		}
	}
	return Payload{}
}

// Move runs a complete gesture: start on active, a single hover over target, then a drop
// on target. It is what one-shot callers (CLI, HTTP clients without a pointer) use.
// Returns true when the board changed.
func (c *Controller) Move(lookup Lookup, active, target Endpoint) bool {
	c.DragStart(StartEvent{Active: active, Payload: PayloadFor(lookup, active)})
	hovered := c.DragOver(OverEvent{Active: active, Over: &target})
	dropped := c.DragEnd(EndEvent{Active: active, Over: &target})
	return hovered || dropped
}
