// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/config/colors"
)

const (
	// ColumnWidth is the outer width of a column, borders included
	ColumnWidth = 32
	// CardWidth is the outer width of a task card inside a column
	CardWidth = ColumnWidth - 4
	// CardTextWidth is the wrapping width of card content
	CardTextWidth = CardWidth - 4
	// CardMaxLines caps how many content lines a card shows
	CardMaxLines = 3
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of board columns
	ColumnStyle lipgloss.Style

	// SelectedColumnStyle highlights the column holding the cursor
	SelectedColumnStyle lipgloss.Style

	// DraggedColumnStyle marks a column that is being dragged
	DraggedColumnStyle lipgloss.Style

	// TaskStyle defines the appearance of individual tasks as cards
	TaskStyle lipgloss.Style

	// SelectedTaskStyle highlights the card under the cursor
	SelectedTaskStyle lipgloss.Style

	// DraggedTaskStyle marks the card being dragged at its live position
	DraggedTaskStyle lipgloss.Style

	// DragOverlayStyle frames the floating copy of the dragged entity
	DragOverlayStyle lipgloss.Style

	// TitleStyle defines the appearance of column titles
	TitleStyle lipgloss.Style

	// SelectedTitleStyle is a column title under the cursor
	SelectedTitleStyle lipgloss.Style

	// SubtleStyle is used for hints and placeholders
	SubtleStyle lipgloss.Style

	// CreateInputBoxStyle defines the base style for creation dialogs (green border)
	CreateInputBoxStyle lipgloss.Style

	// EditInputBoxStyle defines the base style for edit dialogs (blue border)
	EditInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for the help screen
	HelpBoxStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// ModeStyle renders the mode badge in the status bar
	ModeStyle lipgloss.Style

	// ErrorStyle renders the last error in the status bar
	ErrorStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ColumnBorder)).
		Padding(0, 1).
		Width(ColumnWidth)

	SelectedColumnStyle = ColumnStyle.
		BorderForeground(lipgloss.Color(scheme.Accent))

	DraggedColumnStyle = ColumnStyle.
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(scheme.DragBorder))

	TaskStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(scheme.TaskBorder)).
		Foreground(lipgloss.Color(scheme.Normal)).
		Padding(0, 1).
		Width(CardWidth)

	SelectedTaskStyle = TaskStyle.
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(scheme.SelectedBorder))

	DraggedTaskStyle = TaskStyle.
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(scheme.DragBorder)).
		Foreground(lipgloss.Color(scheme.Subtle))

	DragOverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(scheme.DragBorder)).
		Foreground(lipgloss.Color(scheme.Normal)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SelectedTitleStyle = TitleStyle.
		Underline(true).
		Foreground(lipgloss.Color(scheme.Accent))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Width(50)

	CreateInputBoxStyle = dialog.BorderForeground(lipgloss.Color(scheme.Create))
	EditInputBoxStyle = dialog.BorderForeground(lipgloss.Color(scheme.Edit))
	DeleteConfirmBoxStyle = dialog.BorderForeground(lipgloss.Color(scheme.Delete))
	HelpBoxStyle = dialog.BorderForeground(lipgloss.Color(scheme.Accent))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	ModeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Delete))
}
