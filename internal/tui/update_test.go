package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/drag"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// ============================================================================
// NAVIGATION
// ============================================================================

func TestNavigation_HeaderAndTasks(t *testing.T) {
	m := setupTestModel(t)
	require.True(t, m.UiState.HeaderSelected())

	m, _ = press(t, m, "j")
	task, ok := m.getCurrentTask()
	require.True(t, ok)
	assert.Equal(t, models.ID("T1"), task.ID)

	m, _ = press(t, m, "j", "j")
	assert.Equal(t, 1, m.UiState.SelectedTask(), "cursor stops at the last task")

	m, _ = press(t, m, "k", "k")
	assert.True(t, m.UiState.HeaderSelected())

	m, _ = press(t, m, "right")
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	assert.True(t, m.UiState.HeaderSelected())
}

func TestNavigation_ClampsTaskRowAcrossColumns(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "j", "j", "l")
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	assert.Equal(t, 0, m.UiState.SelectedTask(), "Doing has one task")

	m, _ = press(t, m, "l")
	assert.True(t, m.UiState.HeaderSelected(), "Done is empty")

	m, _ = press(t, m, "l")
	assert.Equal(t, 2, m.UiState.SelectedColumn())
	assert.Equal(t, "Already at the last column", m.status)
}

// ============================================================================
// TASK DRAG
// ============================================================================

func TestTaskDrag_ReordersLiveWithinColumn(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "j", "space")
	require.Equal(t, drag.StateDraggingTask, m.Drag.State())

	m, _ = press(t, m, "j")
	assert.Equal(t, []models.ID{"T2", "T1"}, taskIDs(m.Board.TasksInColumn("C1")))
	assert.Equal(t, 1, m.UiState.SelectedTask(), "cursor follows the dragged task")

	m, _ = press(t, m, "enter")
	assert.Equal(t, drag.StateIdle, m.Drag.State())
	assert.Equal(t, []models.ID{"T2", "T1"}, taskIDs(m.Board.TasksInColumn("C1")))
}

func TestTaskDrag_MovesToAdjacentColumn(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "j", "space", "l")

	task, ok := m.Board.Task("T1")
	require.True(t, ok)
	assert.Equal(t, models.ID("C2"), task.ColumnID)
	assert.Equal(t, []models.ID{"T1", "T3"}, taskIDs(m.Board.TasksInColumn("C2")))
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	assert.Equal(t, 0, m.UiState.SelectedTask())

	// Into the empty column
	m, _ = press(t, m, "l", "enter")
	task, _ = m.Board.Task("T1")
	assert.Equal(t, models.ID("C3"), task.ColumnID)
	assert.Equal(t, 2, m.UiState.SelectedColumn())
}

func TestTaskDrag_CancelKeepsLiveMoves(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "j", "space", "j", "esc")

	assert.Equal(t, drag.StateIdle, m.Drag.State())
	assert.Equal(t, []models.ID{"T2", "T1"}, taskIDs(m.Board.TasksInColumn("C1")))
}

func TestTaskDrag_IgnoresEditingKeys(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "j", "space", "d", "a", "C")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Len(t, m.Board.Tasks(), 3)
	assert.Len(t, m.Board.Columns(), 3)
}

// ============================================================================
// COLUMN DRAG
// ============================================================================

func TestColumnDrag_MovesOnlyOnDrop(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "space")
	require.Equal(t, drag.StateDraggingColumn, m.Drag.State())

	m, _ = press(t, m, "l", "l")
	assert.Equal(t, []models.ID{"C1", "C2", "C3"}, columnIDs(m.Board), "columns never move on hover")
	assert.Equal(t, 2, m.UiState.SelectedColumn())

	m, _ = press(t, m, "enter")
	assert.Equal(t, drag.StateIdle, m.Drag.State())
	assert.Equal(t, []models.ID{"C2", "C3", "C1"}, columnIDs(m.Board))
	assert.Equal(t, 2, m.UiState.SelectedColumn(), "cursor stays on the dropped column")
	assert.True(t, m.UiState.HeaderSelected())
}

func TestColumnDrag_CancelRestoresCursor(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "space", "l", "esc")

	assert.Equal(t, drag.StateIdle, m.Drag.State())
	assert.Equal(t, []models.ID{"C1", "C2", "C3"}, columnIDs(m.Board))
	assert.Equal(t, 0, m.UiState.SelectedColumn())
}

func TestColumnDrag_DropOnItselfIsNoop(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "l", "space", "enter")

	assert.Equal(t, []models.ID{"C1", "C2", "C3"}, columnIDs(m.Board))
	assert.Equal(t, 1, m.UiState.SelectedColumn())
}

// ============================================================================
// CRUD DIALOGS
// ============================================================================

func TestCreateColumn_OpensRenameDialog(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "C")
	require.Equal(t, state.EditColumnMode, m.UiState.Mode())
	assert.Len(t, m.Board.Columns(), 4)
	assert.Equal(t, 3, m.UiState.SelectedColumn())
	assert.Equal(t, "Column 4", m.InputState.Value())

	m, _ = press(t, m, "!", "enter")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	col, _ := m.getCurrentColumn()
	assert.Equal(t, "Column 4!", col.Title)
}

func TestRenameColumn_BlankKeepsTitle(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "R")
	require.Equal(t, state.EditColumnMode, m.UiState.Mode())
	m.InputState.Start("Rename column:", "C1", "   ")

	m, _ = press(t, m, "enter")
	col, _ := m.Board.Column("C1")
	assert.Equal(t, "Todo", col.Title)
}

func TestAddTask_CancelKeepsDefaultContent(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "l", "l", "a")
	require.Equal(t, state.EditTaskMode, m.UiState.Mode())

	m, _ = press(t, m, "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())

	tasks := m.Board.TasksInColumn("C3")
	require.Len(t, tasks, 1)
	assert.Equal(t, "Task 4", tasks[0].Content)
	assert.Equal(t, 0, m.UiState.SelectedTask(), "cursor lands on the new task")
}

func TestEditTask(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "j", "e")
	require.Equal(t, state.EditTaskMode, m.UiState.Mode())
	assert.Equal(t, "one", m.InputState.Value())

	m, _ = press(t, m, "!", "enter")
	task, _ := m.Board.Task("T1")
	assert.Equal(t, "one!", task.Content)
}

func TestEditTask_OnHeaderShowsStatus(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "e")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, "No task selected", m.status)
}

func TestDeleteTask_Confirm(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "j", "j", "d")
	require.Equal(t, state.DeleteTaskConfirmMode, m.UiState.Mode())

	m, _ = press(t, m, "y")
	_, ok := m.Board.Task("T2")
	assert.False(t, ok)
	assert.Equal(t, 0, m.UiState.SelectedTask(), "cursor moves up to the remaining task")
}

func TestDeleteColumn_CancelAndConfirm(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "X")
	require.Equal(t, state.DeleteColumnConfirmMode, m.UiState.Mode())
	assert.Equal(t, 2, m.InputState.DeleteColumnTaskCount)

	m, _ = press(t, m, "n")
	assert.Len(t, m.Board.Columns(), 3)

	m, _ = press(t, m, "X", "y")
	assert.Equal(t, []models.ID{"C2", "C3"}, columnIDs(m.Board))
	assert.Len(t, m.Board.Tasks(), 1, "tasks of the column go with it")
}

func TestAddTask_EmptyBoard(t *testing.T) {
	m := setupTestModel(t)
	m, _ = press(t, m, "X", "y", "X", "y", "X", "y")
	require.Empty(t, m.Board.Columns())

	m, _ = press(t, m, "a")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, "Create a column first", m.status)

	m, _ = press(t, m, "space")
	assert.Equal(t, drag.StateIdle, m.Drag.State())
}

// ============================================================================
// OTHER
// ============================================================================

func TestHelpMode_AnyKeyCloses(t *testing.T) {
	m := setupTestModel(t)

	m, _ = press(t, m, "?")
	assert.Equal(t, state.HelpMode, m.UiState.Mode())

	m, _ = press(t, m, "j")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.True(t, m.UiState.HeaderSelected(), "closing key is not replayed")
}

func TestQuit(t *testing.T) {
	m := setupTestModel(t)

	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRefreshMsg_ClampsSelection(t *testing.T) {
	m := setupTestModel(t)
	m, _ = press(t, m, "l", "l")

	m.Board.DeleteColumn("C3")
	next, cmd := m.Update(RefreshMsg{Event: events.Event{Type: events.EventColumnsChanged}})
	m = next.(Model)

	assert.Nil(t, cmd, "no event channel to listen on")
	assert.Equal(t, 1, m.UiState.SelectedColumn())
}

func TestListenForEvents(t *testing.T) {
	m := setupTestModel(t)
	ch := make(chan events.Event, 1)
	m.EventChan = ch

	ch <- events.Event{Type: events.EventTasksChanged, SequenceID: 7}
	cmd := m.Init()
	require.NotNil(t, cmd)

	msg, ok := cmd().(RefreshMsg)
	require.True(t, ok)
	assert.Equal(t, int64(7), msg.Event.SequenceID)

	close(ch)
	assert.Nil(t, m.listenForEvents()())
}
