package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/thenoetrevino/kanban/internal/codec"
	"github.com/thenoetrevino/kanban/internal/models"
)

// FileStore persists each sequence to its own file in a directory
type FileStore struct {
	mu      sync.Mutex
	dataDir string
	codec   codec.Codec
}

// NewFileStore creates the data directory if needed
func NewFileStore(dataDir string, c codec.Codec) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if c == nil {
		c = codec.JSON{}
	}
	return &FileStore{dataDir: dataDir, codec: c}, nil
}

func (f *FileStore) filePath(name string) string {
	return filepath.Join(f.dataDir, name+"."+f.codec.Ext())
}

// Load reads both files. Missing files yield empty sequences.
func (f *FileStore) Load(_ context.Context) (models.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := models.Snapshot{Columns: []models.Column{}, Tasks: []models.Task{}}
	if err := f.read("columns", &snap.Columns); err != nil {
		return models.Snapshot{}, err
	}
	if err := f.read("tasks", &snap.Tasks); err != nil {
		return models.Snapshot{}, err
	}
	return snap.Clone(), nil
}

// SaveColumns writes the column file
func (f *FileStore) SaveColumns(_ context.Context, columns []models.Column) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write("columns", nonNil(columns))
}

// SaveTasks writes the task file
func (f *FileStore) SaveTasks(_ context.Context, tasks []models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write("tasks", nonNil(tasks))
}

// Close is a no-op; files are closed after every write
func (f *FileStore) Close() error {
	return nil
}

func (f *FileStore) read(name string, dst any) error {
	data, err := os.ReadFile(f.filePath(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := f.codec.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%s: %w: %w", name, ErrCorruptState, err)
	}
	return nil
}

// write replaces the file atomically through a temp file and rename
func (f *FileStore) write(name string, v any) error {
	data, err := f.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(f.dataDir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	return os.Rename(tmp.Name(), f.filePath(name))
}
