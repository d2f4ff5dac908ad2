package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/drag"
	"github.com/thenoetrevino/kanban/internal/models"
)

// handleDragMode handles keys while a drag is in progress. The cursor plays the pointer:
// moving a dragged task raises a hover over the neighbour it moves onto, so tasks
// reorder live. A dragged column stays put until it is dropped.
func (m Model) handleDragMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	active, ok := m.Drag.Active()
	if !ok {
		return m, nil
	}

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case "ctrl+c":
		m.Drag.DragEnd(drag.EndEvent{Active: active})
		return m, tea.Quit
	case km.Drop:
		return m.handleDrop(active)
	case km.Cancel:
		return m.handleCancelDrag(active)
	}

	if active.Kind == models.KindColumn {
		return m.handleColumnDragKey(key)
	}
	return m.handleTaskDragKey(active, key)
}

// handleTaskDragKey hovers the dragged task over the adjacent task (up/down) or the
// adjacent column (left/right), then follows the task with the cursor
func (m Model) handleTaskDragKey(active drag.Endpoint, key string) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	col, pos, ok := m.locateTask(active.ID)
	if !ok {
		// Dragged task vanished (deleted elsewhere)
		m.Drag.DragEnd(drag.EndEvent{Active: active})
		m.clampSelection()
		return m, nil
	}
	columns := m.Board.Columns()
	tasks := m.Board.TasksInColumn(columns[col].ID)

	var over *drag.Endpoint
	switch key {
	case km.PrevTask, "up":
		if pos > 0 {
			over = endpoint(drag.TaskEndpoint(tasks[pos-1].ID))
		}
	case km.NextTask, "down":
		if pos < len(tasks)-1 {
			over = endpoint(drag.TaskEndpoint(tasks[pos+1].ID))
		}
	case km.PrevColumn, "left":
		if col > 0 {
			over = endpoint(drag.ColumnEndpoint(columns[col-1].ID))
		}
	case km.NextColumn, "right":
		if col < len(columns)-1 {
			over = endpoint(drag.ColumnEndpoint(columns[col+1].ID))
		}
	default:
		return m, nil
	}

	if over != nil {
		m.Drag.DragOver(drag.OverEvent{Active: active, Over: over})
	}
	m.selectTask(active.ID)
	return m, nil
}

// handleColumnDragKey moves the drop target left or right
func (m Model) handleColumnDragKey(key string) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch key {
	case km.PrevColumn, "left":
		if m.UiState.SelectedColumn() > 0 {
			m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
		}
	case km.NextColumn, "right":
		if m.UiState.SelectedColumn() < len(m.Board.Columns())-1 {
			m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
		}
	}
	m.UiState.SetSelectedTask(-1)
	m.UiState.EnsureSelectionVisible()
	return m, nil
}

// handleDrop ends the drag over the entity under the cursor
func (m Model) handleDrop(active drag.Endpoint) (tea.Model, tea.Cmd) {
	over := endpoint(drag.TaskEndpoint(active.ID))
	if active.Kind == models.KindColumn {
		col, ok := m.getCurrentColumn()
		if !ok {
			return m.handleCancelDrag(active)
		}
		over = endpoint(drag.ColumnEndpoint(col.ID))
	}

	m.Drag.DragEnd(drag.EndEvent{Active: active, Over: over})
	return m.followActive(active), nil
}

// handleCancelDrag ends the drag outside any target. Live task moves are kept.
func (m Model) handleCancelDrag(active drag.Endpoint) (tea.Model, tea.Cmd) {
	m.Drag.DragEnd(drag.EndEvent{Active: active})
	return m.followActive(active), nil
}

// followActive puts the cursor back on the entity that was dragged
func (m Model) followActive(active drag.Endpoint) Model {
	if active.Kind == models.KindColumn {
		m.selectColumnHeader(active.ID)
	} else {
		m.selectTask(active.ID)
	}
	m.clampSelection()
	return m
}

func endpoint(e drag.Endpoint) *drag.Endpoint {
	return &e
}
