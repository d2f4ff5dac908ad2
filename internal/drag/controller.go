// Package drag implements the drag session controller: a small state machine that turns
// drag lifecycle events into ordering operations on the board.
package drag

import (
	"log/slog"
	"sync"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Store is the state container the controller publishes through. Each Apply call must run
// its read-transform-write step atomically.
type Store interface {
	Column(id models.ID) (models.Column, bool)
	ApplyColumns(fn func([]models.Column) []models.Column) bool
	ApplyTasks(fn func([]models.Task) []models.Task) bool
}

// State is the controller's session state
type State int

const (
	StateIdle State = iota
	StateDraggingColumn
	StateDraggingTask
)

// String implements fmt.Stringer
func (s State) String() string {
	switch s {
	case StateDraggingColumn:
		return "dragging_column"
	case StateDraggingTask:
		return "dragging_task"
	default:
		return "idle"
	}
}

// Options tunes controller behavior
type Options struct {
	// ApplyTasksOnDrop re-runs the task rules on drop. Only needed when the presentation
	// layer does not raise hover events.
	ApplyTasksOnDrop bool
}

// Controller tracks the active drag and applies the hover and drop transition tables
type Controller struct {
	mu sync.Mutex

	store     Store
	hover     map[kindPair]rule
	drop      map[kindPair]rule
	state     State
	active    Endpoint
	columnAct *models.Column
	taskAct   *models.Task
}

// NewController creates an idle controller writing through store
func NewController(store Store, opts Options) *Controller {
	drop := dropRules
	if opts.ApplyTasksOnDrop {
		drop = dropRulesWithTasks()
	}
	return &Controller{
		store: store,
		hover: hoverRules,
		drop:  drop,
	}
}

// DragStart enters the dragging state for the event's kind and keeps a snapshot of the
// dragged entity. Unknown kinds leave the controller idle.
func (c *Controller) DragStart(ev StartEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateIdle {
		slog.Debug("drag start while dragging, resetting", "previous", c.active.ID)
	}
	c.resetLocked()

	switch ev.Active.Kind {
	case models.KindColumn:
		col := models.Column{ID: ev.Active.ID}
		if ev.Payload.Column != nil {
			col = *ev.Payload.Column
		}
		c.columnAct = &col
		c.state = StateDraggingColumn
	case models.KindTask:
		task := models.Task{ID: ev.Active.ID}
		if ev.Payload.Task != nil {
			task = *ev.Payload.Task
		}
		c.taskAct = &task
		c.state = StateDraggingTask
	default:
		slog.Debug("drag start with unknown kind", "kind", ev.Active.Kind, "id", ev.Active.ID)
		return
	}

	c.active = ev.Active
	slog.Debug("drag start", "kind", ev.Active.Kind, "id", ev.Active.ID)
}

// DragOver applies the hover table. Events outside a session, or for another entity than
// the one being dragged, are ignored. Returns true when the board changed.
func (c *Controller) DragOver(ev OverEvent) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.inSessionLocked(ev.Active) {
		slog.Debug("drag over outside session", "id", ev.Active.ID, "state", c.state)
		return false
	}
	return c.applyLocked(c.hover, ev.Active, ev.Over)
}

// DragEnd returns to idle, then applies the drop table when the event ends the current
// session. Returns true when the board changed.
func (c *Controller) DragEnd(ev EndEvent) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	inSession := c.inSessionLocked(ev.Active)
	c.resetLocked()
	if !inSession {
		slog.Debug("drag end outside session", "id", ev.Active.ID)
		return false
	}
	changed := c.applyLocked(c.drop, ev.Active, ev.Over)
	slog.Debug("drag end", "kind", ev.Active.Kind, "id", ev.Active.ID, "dropped", ev.Over != nil, "changed", changed)
	return changed
}

func (c *Controller) applyLocked(table map[kindPair]rule, active Endpoint, over *Endpoint) bool {
	if over == nil || active.ID == over.ID {
		return false
	}
	apply, ok := table[kindPair{active: active.Kind, over: over.Kind}]
	if !ok {
		return false
	}
	return apply(c.store, active.ID, over.ID)
}

func (c *Controller) inSessionLocked(active Endpoint) bool {
	return c.state != StateIdle && active == c.active
}

func (c *Controller) resetLocked() {
	c.state = StateIdle
	c.active = Endpoint{}
	c.columnAct = nil
	c.taskAct = nil
}

// State returns the current session state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Active returns the dragged endpoint, or false when idle
func (c *Controller) Active() (Endpoint, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active, c.state != StateIdle
}

// ColumnActive returns a copy of the dragged column, or nil
func (c *Controller) ColumnActive() *models.Column {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.columnAct == nil {
		return nil
	}
	col := *c.columnAct
	return &col
}

// TaskActive returns a copy of the dragged task, or nil
func (c *Controller) TaskActive() *models.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.taskAct == nil {
		return nil
	}
	task := *c.taskAct
	return &task
}
