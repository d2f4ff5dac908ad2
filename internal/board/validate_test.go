package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/kanban/internal/models"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		snap    models.Snapshot
		wantErr error
	}{
		{
			name: "empty is valid",
			snap: models.Snapshot{},
		},
		{
			name: "valid board",
			snap: models.Snapshot{
				Columns: []models.Column{{ID: "a"}, {ID: "b"}},
				Tasks:   []models.Task{{ID: "1", ColumnID: "a"}, {ID: "2", ColumnID: "b"}},
			},
		},
		{
			name: "task and column may share an id",
			snap: models.Snapshot{
				Columns: []models.Column{{ID: "x"}},
				Tasks:   []models.Task{{ID: "x", ColumnID: "x"}},
			},
		},
		{
			name:    "duplicate column",
			snap:    models.Snapshot{Columns: []models.Column{{ID: "a"}, {ID: "a"}}},
			wantErr: ErrDuplicateID,
		},
		{
			name: "duplicate task",
			snap: models.Snapshot{
				Columns: []models.Column{{ID: "a"}},
				Tasks:   []models.Task{{ID: "1", ColumnID: "a"}, {ID: "1", ColumnID: "a"}},
			},
			wantErr: ErrDuplicateID,
		},
		{
			name: "orphan task",
			snap: models.Snapshot{
				Columns: []models.Column{{ID: "a"}},
				Tasks:   []models.Task{{ID: "1", ColumnID: "b"}},
			},
			wantErr: ErrOrphanTask,
		},
		{
			name:    "empty column id",
			snap:    models.Snapshot{Columns: []models.Column{{Title: "nameless"}}},
			wantErr: ErrEmptyID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.snap)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
