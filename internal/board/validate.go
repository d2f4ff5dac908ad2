package board

import (
	"fmt"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Validate checks the referential invariants of a snapshot: IDs are non-empty and unique
// per kind, and every task points at an existing column.
func Validate(snapshot models.Snapshot) error {
	columnIDs := make(map[models.ID]struct{}, len(snapshot.Columns))
	for _, c := range snapshot.Columns {
		if c.ID == "" {
			return fmt.Errorf("column %q: %w", c.Title, ErrEmptyID)
		}
		if _, dup := columnIDs[c.ID]; dup {
			return fmt.Errorf("column %s: %w", c.ID, ErrDuplicateID)
		}
		columnIDs[c.ID] = struct{}{}
	}

	taskIDs := make(map[models.ID]struct{}, len(snapshot.Tasks))
	for _, t := range snapshot.Tasks {
		if t.ID == "" {
			return fmt.Errorf("task %q: %w", t.Content, ErrEmptyID)
		}
		if _, dup := taskIDs[t.ID]; dup {
			return fmt.Errorf("task %s: %w", t.ID, ErrDuplicateID)
		}
		taskIDs[t.ID] = struct{}{}

		if _, ok := columnIDs[t.ColumnID]; !ok {
			return fmt.Errorf("task %s -> column %s: %w", t.ID, t.ColumnID, ErrOrphanTask)
		}
	}

	return nil
}
