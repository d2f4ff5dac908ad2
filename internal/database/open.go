package database

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/thenoetrevino/kanban/internal/codec"
	"github.com/thenoetrevino/kanban/internal/models"
)

// Drivers accepted by Open
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Options selects and configures a storage backend
type Options struct {
	Driver  string // sqlite (default), file or memory
	DataDir string // directory holding kanban.db or the sequence files
	Codec   string // json (default) or cbor
}

// Open creates the Bridge described by opts
func Open(ctx context.Context, opts Options) (Bridge, error) {
	c, err := codec.ByName(opts.Codec)
	if err != nil {
		return nil, err
	}

	switch opts.Driver {
	case "", DriverSQLite:
		db, err := InitDB(ctx, filepath.Join(opts.DataDir, "kanban.db"))
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(db, c), nil
	case DriverFile:
		return NewFileStore(opts.DataDir, c)
	case DriverMemory:
		return NewMemoryStore(models.Snapshot{}), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
}

// LoadOrEmpty loads the persisted board. Failures are logged and replaced by an empty
// board: unreadable state must never keep the application from starting.
func LoadOrEmpty(ctx context.Context, bridge Bridge) models.Snapshot {
	snap, err := bridge.Load(ctx)
	if err != nil {
		slog.Error("failed to load board, starting empty", "error", err)
		return models.Snapshot{}.Clone()
	}
	return snap.Clone()
}
