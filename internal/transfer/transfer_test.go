package transfer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/models"
)

func sampleSnapshot() models.Snapshot {
	return models.Snapshot{
		Columns: []models.Column{{ID: "c1", Title: "Todo"}, {ID: "c2", Title: "Done"}},
		Tasks: []models.Task{
			{ID: "t2", ColumnID: "c2", Content: "ship"},
			{ID: "t1", ColumnID: "c1", Content: "write"},
		},
	}
}

func TestExportImport_PreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, sampleSnapshot()))

	got, err := Import(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), got)
}

func TestExport_Shape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, models.Snapshot{}))

	assert.JSONEq(t, `{"columns": [], "tasks": []}`, buf.String())
}

func TestImport_AcceptsJSONC(t *testing.T) {
	input := `{
  // sprint board
  "columns": [
    {"id": "c1", "title": "Todo"}, /* first */
  ],
  "tasks": [
    {"id": "t1", "columnId": "c1", "content": "write"},
  ],
}`
	got, err := Import(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []models.Column{{ID: "c1", Title: "Todo"}}, got.Columns)
	assert.Equal(t, []models.Task{{ID: "t1", ColumnID: "c1", Content: "write"}}, got.Tasks)
}

func TestImport_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmptyInput},
		{"only comments", "// nothing here\n", ErrEmptyInput},
		{"orphan task", `{"columns": [], "tasks": [{"id": "t1", "columnId": "c9"}]}`, board.ErrOrphanTask},
		{"duplicate column", `{"columns": [{"id": "c1"}, {"id": "c1"}]}`, board.ErrDuplicateID},
		{"empty id", `{"columns": [{"id": "", "title": "x"}]}`, board.ErrEmptyID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestImport_Malformed(t *testing.T) {
	_, err := Import(strings.NewReader(`{"columns": [`))
	assert.Error(t, err)
}

func TestImport_MissingSequencesAreEmpty(t *testing.T) {
	got, err := Import(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.NotNil(t, got.Columns)
	assert.NotNil(t, got.Tasks)
	assert.True(t, got.Empty())
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.jsonc")
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, sampleSnapshot()))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), got)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
