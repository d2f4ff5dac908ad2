package styles

import (
	"strconv"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/config/colors"
	"github.com/thenoetrevino/kanban/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Column:"
	ValueStyle    lipgloss.Style // For field values

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Delete))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// Check renders the success marker used by mutating commands
func Check() string {
	return SuccessStyle.Render("✓")
}

// RenderField renders "Label: value"
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderColumnHeading renders a column title with its ID and task count
func RenderColumnHeading(col models.Column, shortID string, taskCount int) string {
	return TitleStyle.Render(col.Title) + " " +
		SubtitleStyle.Render("("+shortID+", "+pluralTasks(taskCount)+")")
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

func pluralTasks(n int) string {
	switch n {
	case 0:
		return "no tasks"
	case 1:
		return "1 task"
	default:
		return strconv.Itoa(n) + " tasks"
	}
}
