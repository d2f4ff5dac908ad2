package state

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/models"
)

// maxInputLength bounds the text typed into a dialog
const maxInputLength = 200

// InputState manages the single-line text input used to rename columns and edit tasks.
type InputState struct {
	// Prompt is the text displayed above the input (e.g., "Rename column:")
	Prompt string

	// TargetID is the column or task the input will be applied to
	TargetID models.ID

	// DeleteColumnTaskCount stores the number of tasks in a column being deleted.
	// It is shown as a warning in the delete confirmation dialog.
	DeleteColumnTaskCount int

	input textinput.Model
}

// NewInputState creates a new InputState with empty values.
func NewInputState() *InputState {
	ti := textinput.New()
	ti.CharLimit = maxInputLength
	return &InputState{input: ti}
}

// Start prepares the input for a new dialog and focuses it
func (s *InputState) Start(prompt string, target models.ID, value string) tea.Cmd {
	s.Prompt = prompt
	s.TargetID = target
	s.input.SetValue(value)
	s.input.CursorEnd()
	return s.input.Focus()
}

// Update forwards a message to the underlying text input
func (s *InputState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// Value returns the current text
func (s *InputState) Value() string {
	return s.input.Value()
}

// View renders the text input
func (s *InputState) View() string {
	return s.input.View()
}

// Clear blurs the input and forgets the dialog target.
// The task count is not cleared as it's managed separately.
func (s *InputState) Clear() {
	s.input.Blur()
	s.input.SetValue("")
	s.Prompt = ""
	s.TargetID = ""
}
