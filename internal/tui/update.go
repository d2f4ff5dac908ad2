package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/drag"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Context cancelled, initiate graceful shutdown
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.UiState.EnsureSelectionVisible()
		return m, nil

	case RefreshMsg:
		m.clampSelection()
		return m, m.listenForEvents()

	case tea.KeyPressMsg:
		m.status = ""
		return m.handleKey(msg)
	}

	// Text inputs need non-key messages too (cursor blink)
	if m.isEditing() {
		return m, m.InputState.Update(msg)
	}
	return m, nil
}

// handleKey routes a key press to the handler of the current mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.EditColumnMode, state.EditTaskMode:
		return m.handleInputMode(msg)
	case state.DeleteTaskConfirmMode, state.DeleteColumnConfirmMode:
		return m.handleConfirmMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	}

	if m.Drag.State() != drag.StateIdle {
		return m.handleDragMode(msg)
	}
	return m.handleNormalMode(msg)
}

func (m Model) isEditing() bool {
	mode := m.UiState.Mode()
	return mode == state.EditColumnMode || mode == state.EditTaskMode
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	default:
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
}
