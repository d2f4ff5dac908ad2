package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/drag"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// RefreshMsg is sent when the board changed outside of the current key press
type RefreshMsg struct {
	Event events.Event
}

// Model represents the application state for the TUI.
// The board is the source of truth; the model only keeps the cursor and dialogs.
type Model struct {
	Ctx    context.Context
	Config *config.Config
	Board  *board.Board
	Drag   *drag.Controller

	UiState    *state.UIState
	InputState *state.InputState

	// EventChan delivers board changes. Nil disables live refresh.
	EventChan <-chan events.Event

	// status is a one-line message shown in the status bar until the next key press
	status string
}

// New creates the TUI model over an already loaded board
func New(ctx context.Context, b *board.Board, ctrl *drag.Controller, cfg *config.Config, eventChan <-chan events.Event) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		Ctx:        ctx,
		Config:     cfg,
		Board:      b,
		Drag:       ctrl,
		UiState:    state.NewUIState(),
		InputState: state.NewInputState(),
		EventChan:  eventChan,
	}
	m.clampSelection()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.listenForEvents()
}

// listenForEvents returns a command that waits for the next board change.
// Returns nil if EventChan is not set.
func (m Model) listenForEvents() tea.Cmd {
	if m.EventChan == nil {
		return nil
	}
	ch, ctx := m.EventChan, m.Ctx

	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

// getCurrentColumn returns the selected column, or false when the board has none
func (m Model) getCurrentColumn() (models.Column, bool) {
	columns := m.Board.Columns()
	i := m.UiState.SelectedColumn()
	if i < 0 || i >= len(columns) {
		return models.Column{}, false
	}
	return columns[i], true
}

// getCurrentTasks returns the tasks of the selected column
// Returns an empty slice if there are no columns
func (m Model) getCurrentTasks() []models.Task {
	col, ok := m.getCurrentColumn()
	if !ok {
		return []models.Task{}
	}
	return m.Board.TasksInColumn(col.ID)
}

// getCurrentTask returns the task under the cursor, or false when a header is selected
func (m Model) getCurrentTask() (models.Task, bool) {
	tasks := m.getCurrentTasks()
	i := m.UiState.SelectedTask()
	if i < 0 || i >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[i], true
}

// columnIndex returns the display index of a column, or -1
func (m Model) columnIndex(id models.ID) int {
	for i, col := range m.Board.Columns() {
		if col.ID == id {
			return i
		}
	}
	return -1
}

// locateTask returns the column index of a task and its position inside that column
func (m Model) locateTask(id models.ID) (col int, pos int, ok bool) {
	task, found := m.Board.Task(id)
	if !found {
		return 0, 0, false
	}
	col = m.columnIndex(task.ColumnID)
	if col == -1 {
		return 0, 0, false
	}
	for i, t := range m.Board.TasksInColumn(task.ColumnID) {
		if t.ID == id {
			return col, i, true
		}
	}
	return 0, 0, false
}

// selectTask moves the cursor onto a task wherever it currently lives
func (m Model) selectTask(id models.ID) {
	if col, pos, ok := m.locateTask(id); ok {
		m.UiState.SetSelectedColumn(col)
		m.UiState.SetSelectedTask(pos)
		m.UiState.EnsureSelectionVisible()
	}
}

// selectColumnHeader moves the cursor onto a column header
func (m Model) selectColumnHeader(id models.ID) {
	if i := m.columnIndex(id); i != -1 {
		m.UiState.SetSelectedColumn(i)
		m.UiState.SetSelectedTask(-1)
		m.UiState.EnsureSelectionVisible()
	}
}

// clampSelection keeps the cursor on the board after something was removed
func (m Model) clampSelection() {
	columns := m.Board.Columns()
	m.UiState.Clamp(len(columns), func(i int) int {
		return len(m.Board.TasksInColumn(columns[i].ID))
	})
}
