// Package ordering holds the pure reordering functions behind drag and drop.
//
// Every function returns a fresh slice and leaves its input untouched. When a referenced ID
// cannot be found the input is returned as is: a drag target that disappeared mid-gesture
// is not an error.
package ordering

import (
	"slices"

	"github.com/thenoetrevino/kanban/internal/models"
)

// ArrayMove returns a copy of items with the element at from moved to index to.
// Elements between the two positions shift by one slot. Out of range indexes return an
// unmodified copy.
func ArrayMove[T any](items []T, from, to int) []T {
	out := slices.Clone(items)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}

	moved := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, moved)
}

// IndexOfTask returns the index of the first task with the given ID, or -1
func IndexOfTask(tasks []models.Task, id models.ID) int {
	return slices.IndexFunc(tasks, func(t models.Task) bool { return t.ID == id })
}

// IndexOfColumn returns the index of the first column with the given ID, or -1
func IndexOfColumn(columns []models.Column, id models.ID) int {
	return slices.IndexFunc(columns, func(c models.Column) bool { return c.ID == id })
}

// MoveTask moves the active task to the over task's slot. The active task first adopts the
// over task's column so a task crossing into another column lands there.
func MoveTask(tasks []models.Task, activeID, overID models.ID) []models.Task {
	ai := IndexOfTask(tasks, activeID)
	oi := IndexOfTask(tasks, overID)
	if ai == -1 || oi == -1 {
		return tasks
	}

	updated := slices.Clone(tasks)
	updated[ai].ColumnID = updated[oi].ColumnID
	return ArrayMove(updated, ai, oi)
}

// MoveColumn moves the active column to the over column's slot. Tasks are not touched.
func MoveColumn(columns []models.Column, activeID, overID models.ID) []models.Column {
	ai := IndexOfColumn(columns, activeID)
	oi := IndexOfColumn(columns, overID)
	if ai == -1 || oi == -1 {
		return columns
	}
	return ArrayMove(columns, ai, oi)
}

// MoveTaskToColumn reparents a task without changing its position in the flat sequence.
// Used when a task is dropped on a column body rather than on another task.
func MoveTaskToColumn(tasks []models.Task, taskID, columnID models.ID) []models.Task {
	i := IndexOfTask(tasks, taskID)
	if i == -1 {
		return tasks
	}

	updated := slices.Clone(tasks)
	updated[i].ColumnID = columnID
	return updated
}
