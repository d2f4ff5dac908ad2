package database

import (
	"context"
	"slices"
	"sync"

	"github.com/thenoetrevino/kanban/internal/models"
)

// MemoryStore keeps sequences in memory. Used by tests and the "memory" driver.
type MemoryStore struct {
	mu      sync.RWMutex
	columns []models.Column
	tasks   []models.Task

	loadErr error
	saveErr error
	saves   int
}

// NewMemoryStore creates a store seeded with snapshot
func NewMemoryStore(snapshot models.Snapshot) *MemoryStore {
	snap := snapshot.Clone()
	return &MemoryStore{columns: snap.Columns, tasks: snap.Tasks}
}

func (m *MemoryStore) Load(_ context.Context) (models.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.loadErr != nil {
		return models.Snapshot{}, m.loadErr
	}
	return models.Snapshot{Columns: m.columns, Tasks: m.tasks}.Clone(), nil
}

func (m *MemoryStore) SaveColumns(_ context.Context, columns []models.Column) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.columns = slices.Clone(nonNil(columns))
	return nil
}

func (m *MemoryStore) SaveTasks(_ context.Context, tasks []models.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.tasks = slices.Clone(nonNil(tasks))
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// Saves reports how many save calls were made, failed ones included
func (m *MemoryStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

// SetLoadErr makes subsequent Load calls fail with err (nil clears it)
func (m *MemoryStore) SetLoadErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

// SetSaveErr makes subsequent save calls fail with err (nil clears it)
func (m *MemoryStore) SetSaveErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}
