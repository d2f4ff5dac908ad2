package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/drag"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.PrevColumn, "left":
		return m.handleNavigateLeft()
	case km.NextColumn, "right":
		return m.handleNavigateRight()
	case km.PrevTask, "up":
		return m.handleNavigateUp()
	case km.NextTask, "down":
		return m.handleNavigateDown()
	case km.CreateColumn:
		return m.handleCreateColumn()
	case km.RenameColumn:
		return m.handleRenameColumn()
	case km.DeleteColumn:
		return m.handleDeleteColumn()
	case km.AddTask:
		return m.handleAddTask()
	case km.EditTask:
		return m.handleEditTask()
	case km.DeleteTask:
		return m.handleDeleteTask()
	case km.Grab:
		return m.handleGrab()
	}

	return m, nil
}

// ============================================================================
// NAVIGATION
// ============================================================================

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() == 0 {
		m.status = "Already at the first column"
		return m, nil
	}
	m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
	m.clampSelection()
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() >= len(m.Board.Columns())-1 {
		m.status = "Already at the last column"
		return m, nil
	}
	m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
	m.clampSelection()
	return m, nil
}

// handleNavigateUp moves towards the column header, which counts as row -1
func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if !m.UiState.HeaderSelected() {
		m.UiState.SetSelectedTask(m.UiState.SelectedTask() - 1)
	}
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedTask() < len(m.getCurrentTasks())-1 {
		m.UiState.SetSelectedTask(m.UiState.SelectedTask() + 1)
	}
	return m, nil
}

// ============================================================================
// COLUMNS
// ============================================================================

// handleCreateColumn appends a column with the default title and opens the rename
// dialog on it. Cancelling the dialog keeps the default title.
func (m Model) handleCreateColumn() (tea.Model, tea.Cmd) {
	col := m.Board.CreateColumn()
	m.selectColumnHeader(col.ID)

	m.UiState.SetMode(state.EditColumnMode)
	return m, m.InputState.Start("New column title:", col.ID, col.Title)
}

func (m Model) handleRenameColumn() (tea.Model, tea.Cmd) {
	col, ok := m.getCurrentColumn()
	if !ok {
		m.status = "No column selected"
		return m, nil
	}

	m.UiState.SetMode(state.EditColumnMode)
	return m, m.InputState.Start("Rename column:", col.ID, col.Title)
}

func (m Model) handleDeleteColumn() (tea.Model, tea.Cmd) {
	col, ok := m.getCurrentColumn()
	if !ok {
		m.status = "No column selected"
		return m, nil
	}

	m.InputState.TargetID = col.ID
	m.InputState.DeleteColumnTaskCount = len(m.Board.TasksInColumn(col.ID))
	m.UiState.SetMode(state.DeleteColumnConfirmMode)
	return m, nil
}

// ============================================================================
// TASKS
// ============================================================================

// handleAddTask appends a task to the selected column and opens the edit dialog on it
func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	col, ok := m.getCurrentColumn()
	if !ok {
		m.status = "Create a column first"
		return m, nil
	}

	task, err := m.Board.CreateTask(col.ID)
	if err != nil {
		slog.Error("failed to create task", "column", col.ID, "error", err)
		m.status = "Error creating task"
		return m, nil
	}
	m.selectTask(task.ID)

	m.UiState.SetMode(state.EditTaskMode)
	return m, m.InputState.Start("New task:", task.ID, task.Content)
}

func (m Model) handleEditTask() (tea.Model, tea.Cmd) {
	task, ok := m.getCurrentTask()
	if !ok {
		m.status = "No task selected"
		return m, nil
	}

	m.UiState.SetMode(state.EditTaskMode)
	return m, m.InputState.Start("Edit task:", task.ID, task.Content)
}

func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	task, ok := m.getCurrentTask()
	if !ok {
		m.status = "No task selected"
		return m, nil
	}

	m.InputState.TargetID = task.ID
	m.UiState.SetMode(state.DeleteTaskConfirmMode)
	return m, nil
}

// ============================================================================
// DRAG START
// ============================================================================

// handleGrab starts a drag on whatever is under the cursor: the column when its header
// is selected, otherwise the selected task
func (m Model) handleGrab() (tea.Model, tea.Cmd) {
	col, ok := m.getCurrentColumn()
	if !ok {
		return m, nil
	}

	active := drag.ColumnEndpoint(col.ID)
	if task, ok := m.getCurrentTask(); ok {
		active = drag.TaskEndpoint(task.ID)
	}

	m.Drag.DragStart(drag.StartEvent{
		Active:  active,
		Payload: drag.PayloadFor(m.Board, active),
	})
	return m, nil
}
