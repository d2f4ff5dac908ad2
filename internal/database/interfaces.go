// Package database persists the board's two ordered sequences.
package database

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Bridge is the persistence contract the board needs: load both sequences at startup
// and save either one after it changes. Implementations must tolerate absent data by
// returning empty sequences.
type Bridge interface {
	Load(ctx context.Context) (models.Snapshot, error)
	SaveColumns(ctx context.Context, columns []models.Column) error
	SaveTasks(ctx context.Context, tasks []models.Task) error
	Close() error
}

// Storage keys, shared by every backend
const (
	KeyColumns = "kanban:columns"
	KeyTasks   = "kanban:tasks"
)

// Compile-time verification that every backend implements Bridge
var (
	_ Bridge = (*SQLiteStore)(nil)
	_ Bridge = (*FileStore)(nil)
	_ Bridge = (*MemoryStore)(nil)
)
