package models

// Task represents a single unit of work on the board.
// All tasks live in one flat ordered sequence; the relative order of the tasks sharing a
// ColumnID is the task order inside that column.
type Task struct {
	ID       ID     `json:"id" cbor:"id"`
	ColumnID ID     `json:"columnId" cbor:"columnId"`
	Content  string `json:"content" cbor:"content"`
}

// GetID returns the task ID (used for quiet CLI output)
func (t Task) GetID() ID {
	return t.ID
}

// TasksInColumn returns the tasks belonging to columnID, preserving their flat order.
func TasksInColumn(tasks []Task, columnID ID) []Task {
	out := make([]Task, 0)
	for _, t := range tasks {
		if t.ColumnID == columnID {
			out = append(out, t)
		}
	}
	return out
}
