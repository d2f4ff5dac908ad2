package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// ============================================================================
// INPUT MODE HANDLERS
// ============================================================================

// handleInputMode handles the rename-column and edit-task dialogs.
// Enter applies a non-blank value, esc leaves the entity unchanged.
func (m Model) handleInputMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.applyInput()
		m.InputState.Clear()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case "esc":
		m.InputState.Clear()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	return m, m.InputState.Update(msg)
}

func (m Model) applyInput() {
	value := strings.TrimSpace(m.InputState.Value())
	if value == "" {
		return
	}

	target := m.InputState.TargetID
	switch m.UiState.Mode() {
	case state.EditColumnMode:
		m.Board.RenameColumn(target, value)
	case state.EditTaskMode:
		m.Board.EditTask(target, value)
	}
}

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// handleConfirmMode handles the delete confirmations
func (m Model) handleConfirmMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		target := m.InputState.TargetID
		if m.UiState.Mode() == state.DeleteColumnConfirmMode {
			m.Board.DeleteColumn(target)
		} else {
			m.Board.DeleteTask(target)
		}
		m.finishConfirm()
		m.clampSelection()
		return m, nil
	case "n", "N", "esc":
		m.finishConfirm()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) finishConfirm() {
	m.InputState.TargetID = ""
	m.InputState.DeleteColumnTaskCount = 0
	m.UiState.SetMode(state.NormalMode)
}
