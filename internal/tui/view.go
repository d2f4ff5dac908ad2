package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// Base board, then the floating drag copy, then any modal
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBoard()),
	}
	if overlay := m.renderDragOverlayLayer(); overlay != nil {
		layers = append(layers, overlay)
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.EditColumnMode, state.EditTaskMode:
		modalLayer = m.renderInputLayer()
	case state.DeleteTaskConfirmMode:
		modalLayer = m.renderDeleteTaskLayer()
	case state.DeleteColumnConfirmMode:
		modalLayer = m.renderDeleteColumnLayer()
	case state.HelpMode:
		modalLayer = m.renderHelpLayer()
	}
	if modalLayer != nil {
		layers = append(layers, modalLayer.Z(2))
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}
