package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/drag"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/components"
)

// viewBoard renders the title bar, the visible columns and the status bar
func (m Model) viewBoard() string {
	columns := m.Board.Columns()
	active, dragging := m.Drag.Active()

	title := components.TitleStyle.Render("kanban") + "  " +
		components.SubtleStyle.Render(fmt.Sprintf("%d columns · %d tasks", len(columns), len(m.Board.Tasks())))

	var content string
	if len(columns) == 0 {
		content = components.SubtleStyle.Render(
			fmt.Sprintf("No columns yet. Press %s to create one.", m.Config.KeyMappings.CreateColumn))
	} else {
		offset := m.UiState.ViewportOffset()
		end := min(offset+m.UiState.ViewportSize(), len(columns))

		rendered := make([]string, 0, end-offset+2)
		rendered = append(rendered, scrollIndicator(offset > 0, "‹"))
		for i := offset; i < end; i++ {
			rendered = append(rendered, m.renderColumn(i, columns[i], active, dragging), " ")
		}
		rendered = append(rendered, scrollIndicator(end < len(columns), "›"))
		content = lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}

	// Constrain content to fit terminal height, leaving room for the title and footer
	contentLines := strings.Split(content, "\n")
	maxContentLines := max(m.UiState.Height()-4, 1)
	if len(contentLines) > maxContentLines {
		contentLines = contentLines[:maxContentLines]
	}

	return title + "\n\n" + strings.Join(contentLines, "\n") + "\n\n" + m.renderStatusBar()
}

func scrollIndicator(show bool, glyph string) string {
	if !show {
		return " "
	}
	return components.SubtleStyle.Render(glyph)
}

// renderColumn renders one column with as many cards as fit, scrolled so the selected
// card stays visible
func (m Model) renderColumn(index int, col models.Column, active drag.Endpoint, dragging bool) string {
	selected := index == m.UiState.SelectedColumn()
	tasks := m.Board.TasksInColumn(col.ID)

	titleStyle := components.TitleStyle
	if selected && m.UiState.HeaderSelected() {
		titleStyle = components.SelectedTitleStyle
	}
	header := titleStyle.Render(col.Title) + " " + components.SubtleStyle.Render(fmt.Sprintf("(%d)", len(tasks)))

	cards := make([]string, len(tasks))
	heights := make([]int, len(tasks))
	for i, task := range tasks {
		style := components.TaskStyle
		switch {
		case dragging && active.Kind == models.KindTask && active.ID == task.ID:
			style = components.DraggedTaskStyle
		case selected && i == m.UiState.SelectedTask():
			style = components.SelectedTaskStyle
		}
		cards[i] = style.Render(components.WrapCardContent(task.Content, components.CardTextWidth, components.CardMaxLines))
		heights[i] = lipgloss.Height(cards[i])
	}

	// border (2) + header (1) + blank (1)
	budget := max(m.UiState.ContentHeight()-4, 1)
	focus := 0
	if selected {
		focus = max(m.UiState.SelectedTask(), 0)
	}
	start, end := visibleWindow(heights, focus, budget)

	body := []string{header, ""}
	if start > 0 {
		body = append(body, components.SubtleStyle.Render(fmt.Sprintf("↑ %d more", start)))
	}
	body = append(body, cards[start:end]...)
	if end < len(cards) {
		body = append(body, components.SubtleStyle.Render(fmt.Sprintf("↓ %d more", len(cards)-end)))
	}
	if len(tasks) == 0 {
		body = append(body, components.SubtleStyle.Render("empty"))
	}

	style := components.ColumnStyle
	switch {
	case dragging && active.Kind == models.KindColumn && active.ID == col.ID:
		style = components.DraggedColumnStyle
	case selected:
		style = components.SelectedColumnStyle
	}
	return style.Height(m.UiState.ContentHeight()).Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

// visibleWindow returns the half-open range of cards to draw so the total height stays
// within budget and focus is included. At least one card is always drawn.
func visibleWindow(heights []int, focus, budget int) (int, int) {
	if len(heights) == 0 {
		return 0, 0
	}
	focus = min(max(focus, 0), len(heights)-1)

	start, used := focus, heights[focus]
	// Grow upwards first so the top of the column stays visible when possible
	for start > 0 && used+heights[start-1] <= budget {
		start--
		used += heights[start]
	}
	end := focus + 1
	for end < len(heights) && used+heights[end] <= budget {
		used += heights[end]
		end++
	}
	return start, end
}

// renderStatusBar shows the mode, the drag state and a short key hint
func (m Model) renderStatusBar() string {
	km := m.Config.KeyMappings

	mode := m.UiState.Mode().String()
	hint := fmt.Sprintf("%s grab · %s help · %s quit", km.Grab, km.ShowHelp, km.Quit)
	if active, ok := m.Drag.Active(); ok {
		mode = "DRAG " + strings.ToLower(string(active.Kind))
		hint = fmt.Sprintf("%s%s%s%s move · %s drop · %s cancel",
			km.PrevColumn, km.NextTask, km.PrevTask, km.NextColumn, km.Drop, km.Cancel)
	}

	bar := components.ModeStyle.Render(mode) + "  " + components.StatusBarStyle.Render(hint)
	if m.status != "" {
		bar += "  " + components.ErrorStyle.Render(m.status)
	}
	return bar
}
