package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/models"
)

// SetupCLITest creates an App backed by an in-memory store seeded with snapshot.
// IDs generated during the test are "id-1", "id-2", ...
func SetupCLITest(t *testing.T, snapshot models.Snapshot) (*app.App, *database.MemoryStore) {
	t.Helper()

	store := database.NewMemoryStore(snapshot)
	n := 0
	appInstance, err := app.New(context.Background(), config.Default(),
		app.WithBridge(store),
		app.WithIDGenerator(func() models.ID {
			n++
			return models.ID(fmt.Sprintf("id-%d", n))
		}),
	)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = appInstance.Close() })

	return appInstance, store
}

// SampleBoard is a small board with two columns: Todo (c1: t1, t2) and Done (c2: t3).
func SampleBoard() models.Snapshot {
	return models.Snapshot{
		Columns: []models.Column{
			{ID: "c1", Title: "Todo"},
			{ID: "c2", Title: "Done"},
		},
		Tasks: []models.Task{
			{ID: "t1", ColumnID: "c1", Content: "write tests"},
			{ID: "t2", ColumnID: "c1", Content: "fix bug"},
			{ID: "t3", ColumnID: "c2", Content: "ship"},
		},
	}
}
