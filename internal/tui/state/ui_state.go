package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode, also used while dragging
	EditColumnMode                      // Renaming a column
	EditTaskMode                        // Editing a task's content
	DeleteTaskConfirmMode               // Confirming task deletion
	DeleteColumnConfirmMode             // Confirming column deletion
	HelpMode                            // Displaying help screen
)

// String implements fmt.Stringer for the status bar
func (m Mode) String() string {
	switch m {
	case EditColumnMode:
		return "RENAME"
	case EditTaskMode:
		return "EDIT"
	case DeleteTaskConfirmMode, DeleteColumnConfirmMode:
		return "CONFIRM"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// UIState manages the user interface state.
// This includes navigation (column/task selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the selected task within the selected column.
	// -1 means the column header is selected.
	selectedTask int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int
}

// NewUIState creates a new UIState with the header of the first column selected.
func NewUIState() *UIState {
	return &UIState{
		selectedTask: -1,
		mode:         NormalMode,
		viewportSize: 1, // recalculated when width is set
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task, or -1 for the header.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// HeaderSelected reports whether the cursor is on a column header
func (s *UIState) HeaderSelected() bool {
	return s.selectedTask < 0
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height left for columns once the title and status bars
// are drawn, never less than 5.
func (s *UIState) ContentHeight() int {
	const titleBarHeight = 2  // title + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-titleBarHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many columns fit in the terminal width.
// A column takes 32 cells including its border, plus 1 cell of spacing.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const columnSpan = 33
	const reservedWidth = 2 // scroll indicators

	s.viewportSize = max(1, (s.width-reservedWidth)/columnSpan)
}

// EnsureSelectionVisible adjusts the viewport so the selected column is on screen.
func (s *UIState) EnsureSelectionVisible() {
	if s.selectedColumn < s.viewportOffset {
		s.viewportOffset = s.selectedColumn
	}
	if s.selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = s.selectedColumn - s.viewportSize + 1
	}
}

// Clamp pulls the selection back inside the board after columns or tasks vanished.
// taskCount reports how many tasks a column index holds.
func (s *UIState) Clamp(columnsLen int, taskCount func(col int) int) {
	if columnsLen == 0 {
		s.selectedColumn = 0
		s.selectedTask = -1
		s.viewportOffset = 0
		return
	}

	s.selectedColumn = min(max(s.selectedColumn, 0), columnsLen-1)
	if n := taskCount(s.selectedColumn); s.selectedTask >= n {
		s.selectedTask = n - 1
	}

	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
	s.EnsureSelectionVisible()
}
