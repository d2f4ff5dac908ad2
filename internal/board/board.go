// Package board is the state container that owns the ordered column and task sequences.
//
// Every read and write goes through a single mutex, which plays the role of the host
// event queue: operations run to completion one at a time in arrival order.
package board

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
)

// Board holds the columns and the flat task sequence
type Board struct {
	mu      sync.Mutex
	columns []models.Column
	tasks   []models.Task

	publisher   events.Publisher
	newID       func() models.ID
	columnTitle string
	taskContent string
}

// New creates a Board seeded with the given snapshot. The snapshot is copied.
func New(snapshot models.Snapshot, opts ...Option) *Board {
	snap := snapshot.Clone()
	b := &Board{
		columns:     snap.Columns,
		tasks:       snap.Tasks,
		newID:       NewUUID,
		columnTitle: models.DefaultColumnTitle,
		taskContent: models.DefaultTaskContent,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ============================================================================
// READS
// ============================================================================

// Columns returns a copy of the ordered column sequence
func (b *Board) Columns() []models.Column {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.columns)
}

// Tasks returns a copy of the flat task sequence
func (b *Board) Tasks() []models.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.tasks)
}

// Snapshot returns a consistent copy of both sequences
func (b *Board) Snapshot() models.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return models.Snapshot{Columns: b.columns, Tasks: b.tasks}.Clone()
}

// TasksInColumn returns the column's tasks in display order
func (b *Board) TasksInColumn(columnID models.ID) []models.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return models.TasksInColumn(b.tasks, columnID)
}

// Column looks up a column by ID
func (b *Board) Column(id models.ID) (models.Column, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := slices.IndexFunc(b.columns, func(c models.Column) bool { return c.ID == id })
	if i == -1 {
		return models.Column{}, false
	}
	return b.columns[i], true
}

// Task looks up a task by ID
func (b *Board) Task(id models.ID) (models.Task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := slices.IndexFunc(b.tasks, func(t models.Task) bool { return t.ID == id })
	if i == -1 {
		return models.Task{}, false
	}
	return b.tasks[i], true
}

// ============================================================================
// PUBLISH STEP
// ============================================================================

// ApplyColumns runs fn against the current column sequence and stores its result.
// A change event is published only when the sequence actually changed.
func (b *Board) ApplyColumns(fn func([]models.Column) []models.Column) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.setColumnsLocked(fn(slices.Clone(b.columns)))
}

// ApplyTasks runs fn against the current task sequence and stores its result.
// A change event is published only when the sequence actually changed. Results that
// would leave a task in a missing column are discarded.
func (b *Board) ApplyTasks(fn func([]models.Task) []models.Task) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := fn(slices.Clone(b.tasks))
	if id, ok := b.orphanLocked(next); ok {
		slog.Debug("discarding task update with missing column", "task", id)
		return false
	}
	return b.setTasksLocked(next)
}

// orphanLocked returns the first task that tasks would move into a missing column.
// Tasks keeping their current column are not checked.
func (b *Board) orphanLocked(tasks []models.Task) (models.ID, bool) {
	known := make(map[models.ID]struct{}, len(b.columns))
	for _, c := range b.columns {
		known[c.ID] = struct{}{}
	}
	current := make(map[models.ID]models.ID, len(b.tasks))
	for _, t := range b.tasks {
		current[t.ID] = t.ColumnID
	}
	for _, t := range tasks {
		if col, ok := current[t.ID]; ok && col == t.ColumnID {
			continue
		}
		if _, ok := known[t.ColumnID]; !ok {
			return t.ID, true
		}
	}
	return "", false
}

// Replace swaps in a whole snapshot after validating it
func (b *Board) Replace(snapshot models.Snapshot) error {
	if err := Validate(snapshot); err != nil {
		return err
	}
	snap := snapshot.Clone()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.setColumnsLocked(snap.Columns)
	b.setTasksLocked(snap.Tasks)
	return nil
}

func (b *Board) setColumnsLocked(next []models.Column) bool {
	if slices.Equal(b.columns, next) {
		return false
	}
	b.columns = next
	b.publish(events.EventColumnsChanged)
	return true
}

func (b *Board) setTasksLocked(next []models.Task) bool {
	if slices.Equal(b.tasks, next) {
		return false
	}
	b.tasks = next
	b.publish(events.EventTasksChanged)
	return true
}

func (b *Board) publish(eventType events.EventType) {
	if b.publisher == nil {
		return
	}
	if err := b.publisher.Publish(eventType); err != nil {
		slog.Warn("failed to publish board change", "type", eventType, "error", err)
	}
}

// ============================================================================
// COLUMN CRUD
// ============================================================================

// CreateColumn appends a column with a fresh ID and a numbered default title
func (b *Board) CreateColumn() models.Column {
	b.mu.Lock()
	defer b.mu.Unlock()

	col := models.Column{
		ID:    b.newID(),
		Title: fmt.Sprintf("%s %d", b.columnTitle, len(b.columns)+1),
	}
	b.setColumnsLocked(append(slices.Clone(b.columns), col))
	slog.Debug("column created", "id", col.ID)
	return col
}

// RenameColumn sets a column's title. Returns false if the column does not exist.
func (b *Board) RenameColumn(id models.ID, title string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := slices.IndexFunc(b.columns, func(c models.Column) bool { return c.ID == id })
	if i == -1 {
		return false
	}
	next := slices.Clone(b.columns)
	next[i].Title = title
	b.setColumnsLocked(next)
	return true
}

// DeleteColumn removes a column and every task that belongs to it.
// Returns false if the column does not exist.
func (b *Board) DeleteColumn(id models.ID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !slices.ContainsFunc(b.columns, func(c models.Column) bool { return c.ID == id }) {
		return false
	}

	columns := slices.DeleteFunc(slices.Clone(b.columns), func(c models.Column) bool { return c.ID == id })
	tasks := slices.DeleteFunc(slices.Clone(b.tasks), func(t models.Task) bool { return t.ColumnID == id })

	b.setColumnsLocked(columns)
	b.setTasksLocked(tasks)
	slog.Debug("column deleted", "id", id)
	return true
}

// ============================================================================
// TASK CRUD
// ============================================================================

// CreateTask appends a task to the end of the flat sequence in the given column
func (b *Board) CreateTask(columnID models.ID, opts ...TaskOption) (models.Task, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !slices.ContainsFunc(b.columns, func(c models.Column) bool { return c.ID == columnID }) {
		return models.Task{}, fmt.Errorf("create task in %q: %w", columnID, ErrColumnNotFound)
	}

	task := models.Task{
		ID:       b.newID(),
		ColumnID: columnID,
		Content:  fmt.Sprintf("%s %d", b.taskContent, len(b.tasks)+1),
	}
	for _, opt := range opts {
		opt(&task)
	}
	b.setTasksLocked(append(slices.Clone(b.tasks), task))
	slog.Debug("task created", "id", task.ID, "column", columnID)
	return task, nil
}

// EditTask replaces a task's content. Returns false if the task does not exist.
func (b *Board) EditTask(id models.ID, content string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := slices.IndexFunc(b.tasks, func(t models.Task) bool { return t.ID == id })
	if i == -1 {
		return false
	}
	next := slices.Clone(b.tasks)
	next[i].Content = content
	b.setTasksLocked(next)
	return true
}

// DeleteTask removes a task. Returns false if the task does not exist.
func (b *Board) DeleteTask(id models.ID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !slices.ContainsFunc(b.tasks, func(t models.Task) bool { return t.ID == id }) {
		return false
	}
	b.setTasksLocked(slices.DeleteFunc(slices.Clone(b.tasks), func(t models.Task) bool { return t.ID == id }))
	slog.Debug("task deleted", "id", id)
	return true
}
