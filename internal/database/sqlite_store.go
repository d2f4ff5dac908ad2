package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/codec"
	"github.com/thenoetrevino/kanban/internal/models"
)

// SQLiteStore keeps each sequence as one encoded value in a key/value table
type SQLiteStore struct {
	db    *sql.DB
	codec codec.Codec
}

// NewSQLiteStore wraps an initialized database (see InitDB)
func NewSQLiteStore(db *sql.DB, c codec.Codec) *SQLiteStore {
	if c == nil {
		c = codec.JSON{}
	}
	return &SQLiteStore{db: db, codec: c}
}

// Load reads both sequences. Missing keys yield empty sequences.
func (s *SQLiteStore) Load(ctx context.Context) (models.Snapshot, error) {
	snap := models.Snapshot{Columns: []models.Column{}, Tasks: []models.Task{}}

	if err := s.get(ctx, KeyColumns, &snap.Columns); err != nil {
		return models.Snapshot{}, err
	}
	if err := s.get(ctx, KeyTasks, &snap.Tasks); err != nil {
		return models.Snapshot{}, err
	}
	return snap.Clone(), nil
}

// SaveColumns replaces the stored column sequence
func (s *SQLiteStore) SaveColumns(ctx context.Context, columns []models.Column) error {
	return s.set(ctx, KeyColumns, nonNil(columns))
}

// SaveTasks replaces the stored task sequence
func (s *SQLiteStore) SaveTasks(ctx context.Context, tasks []models.Task) error {
	return s.set(ctx, KeyTasks, nonNil(tasks))
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) get(ctx context.Context, key string, dst any) error {
	var value []byte
	var codecName string
	err := s.db.QueryRowContext(ctx, `SELECT value, codec FROM kv WHERE key = ?`, key).Scan(&value, &codecName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", key, err)
	}

	// Values written with another codec stay readable after a config change
	c, err := codec.ByName(codecName)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", key, ErrCorruptState, err)
	}
	if err := c.Unmarshal(value, dst); err != nil {
		return fmt.Errorf("%s: %w: %w", key, ErrCorruptState, err)
	}
	return nil
}

func (s *SQLiteStore) set(ctx context.Context, key string, v any) error {
	data, err := s.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, codec, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, codec = excluded.codec, updated_at = CURRENT_TIMESTAMP
	`, key, data, s.codec.Name())
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// nonNil makes nil slices encode as empty arrays rather than null
func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
