package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/tui/components"
)

// renderDragOverlayLayer renders the floating copy of the dragged entity in the
// bottom-right corner. Returns nil when nothing is being dragged.
func (m Model) renderDragOverlayLayer() *lipgloss.Layer {
	var content string
	if task := m.Drag.TaskActive(); task != nil {
		content = components.WrapCardContent(task.Content, components.CardTextWidth, components.CardMaxLines)
	} else if col := m.Drag.ColumnActive(); col != nil {
		count := len(m.Board.TasksInColumn(col.ID))
		content = components.TitleStyle.Render(col.Title) + "\n" +
			components.SubtleStyle.Render(fmt.Sprintf("%d task(s)", count))
	} else {
		return nil
	}

	box := components.DragOverlayStyle.Render(content)
	return components.CreateCornerLayer(box, m.UiState.Width(), m.UiState.Height(), 2)
}

// renderInputLayer renders the rename-column / edit-task dialog as a layer
func (m Model) renderInputLayer() *lipgloss.Layer {
	style := components.EditInputBoxStyle
	if strings.HasPrefix(m.InputState.Prompt, "New") {
		style = components.CreateInputBoxStyle
	}

	inputBox := style.Render(fmt.Sprintf("%s\n\n%s\n\n%s",
		m.InputState.Prompt,
		m.InputState.View(),
		components.SubtleStyle.Render("enter: save · esc: keep as is"),
	))

	return components.CreateCenteredLayer(inputBox, m.UiState.Width(), m.UiState.Height())
}

// renderDeleteTaskLayer renders the task deletion confirmation dialog
func (m Model) renderDeleteTaskLayer() *lipgloss.Layer {
	task, ok := m.Board.Task(m.InputState.TargetID)
	if !ok {
		return nil
	}

	confirmBox := components.DeleteConfirmBoxStyle.Render(fmt.Sprintf(
		"Delete task?\n\n%s\n\n[y]es  [n]o",
		components.WrapCardContent(task.Content, 40, 2),
	))

	return components.CreateCenteredLayer(confirmBox, m.UiState.Width(), m.UiState.Height())
}

// renderDeleteColumnLayer renders the column deletion confirmation with task count warning
func (m Model) renderDeleteColumnLayer() *lipgloss.Layer {
	col, ok := m.Board.Column(m.InputState.TargetID)
	if !ok {
		return nil
	}

	var content string
	taskCount := m.InputState.DeleteColumnTaskCount
	if taskCount > 0 {
		content = fmt.Sprintf(
			"Delete column '%s'?\nThis will also delete %d task(s).\n\n[y]es  [n]o",
			col.Title,
			taskCount,
		)
	} else {
		content = fmt.Sprintf("Delete column '%s'?\n\n[y]es  [n]o", col.Title)
	}

	confirmBox := components.DeleteConfirmBoxStyle.Render(content)
	return components.CreateCenteredLayer(confirmBox, m.UiState.Width(), m.UiState.Height())
}

// renderHelpLayer renders the keyboard shortcuts help screen as a layer
func (m Model) renderHelpLayer() *lipgloss.Layer {
	helpBox := components.HelpBoxStyle.Render(m.generateHelpText())
	return components.CreateCenteredLayer(helpBox, m.UiState.Width(), m.UiState.Height())
}

// generateHelpText creates help text based on current key mappings
func (m Model) generateHelpText() string {
	km := m.Config.KeyMappings
	return fmt.Sprintf(`KANBAN - Keyboard Shortcuts

TASKS
  %-6s Add task to current column
  %-6s Edit selected task
  %-6s Delete selected task

COLUMNS
  %-6s Create column
  %-6s Rename current column
  %-6s Delete current column and its tasks

DRAG
  %-6s Grab the selected task or column header
  %-6s Drop
  %-6s Cancel (task moves are kept)

NAVIGATION
  %-6s Previous column
  %-6s Next column
  %-6s Previous task / header
  %-6s Next task

OTHER
  %-6s Show this help
  %-6s Quit

Press any key to close`,
		km.AddTask,
		km.EditTask,
		km.DeleteTask,
		km.CreateColumn,
		km.RenameColumn,
		km.DeleteColumn,
		km.Grab,
		km.Drop,
		km.Cancel,
		km.PrevColumn,
		km.NextColumn,
		km.PrevTask,
		km.NextTask,
		km.ShowHelp,
		km.Quit,
	)
}
