package database

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
)

// Source is where the syncer reads the current sequences from (the board)
type Source interface {
	Columns() []models.Column
	Tasks() []models.Task
}

// Syncer saves board sequences after they change. It runs outside the board's event
// handling so a slow disk never delays a drag.
type Syncer struct {
	bridge     Bridge
	source     Source
	maxRetries int
	baseDelay  time.Duration

	// last sequences known to be in storage
	mu      sync.Mutex
	columns []models.Column
	tasks   []models.Task
}

// NewSyncer creates a syncer with three attempts per save (50ms, 100ms backoff).
// The source's current sequences are taken as already stored, so call it right after
// the board was loaded.
func NewSyncer(bridge Bridge, source Source) *Syncer {
	return &Syncer{
		bridge:     bridge,
		source:     source,
		maxRetries: 3,
		baseDelay:  50 * time.Millisecond,
		columns:    source.Columns(),
		tasks:      source.Tasks(),
	}
}

// Run consumes change events until ctx is done or the channel closes. Events that queued
// up while a save was running are coalesced into one save per sequence.
func (s *Syncer) Run(ctx context.Context, changes <-chan events.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-changes:
			if !ok {
				return
			}
			columns, tasks := false, false
			mark := func(e events.Event) {
				switch e.Type {
				case events.EventColumnsChanged:
					columns = true
				case events.EventTasksChanged:
					tasks = true
				}
			}
			mark(ev)
		drain:
			for {
				select {
				case next, ok := <-changes:
					if !ok {
						break drain
					}
					mark(next)
				default:
					break drain
				}
			}
			s.save(ctx, columns, tasks)
		}
	}
}

// Flush saves every sequence that differs from what was last stored. Used on shutdown.
// A session that changed nothing writes nothing.
func (s *Syncer) Flush(ctx context.Context) error {
	var colErr, taskErr error
	if columns := s.source.Columns(); !s.columnsStored(columns) {
		colErr = s.saveColumns(ctx, columns)
	}
	if tasks := s.source.Tasks(); !s.tasksStored(tasks) {
		taskErr = s.saveTasks(ctx, tasks)
	}
	return errors.Join(colErr, taskErr)
}

func (s *Syncer) save(ctx context.Context, columns, tasks bool) {
	if columns {
		if err := s.withRetry(ctx, "columns", func() error {
			return s.saveColumns(ctx, s.source.Columns())
		}); err != nil {
			slog.Error("failed to save columns", "error", err)
		}
	}
	if tasks {
		if err := s.withRetry(ctx, "tasks", func() error {
			return s.saveTasks(ctx, s.source.Tasks())
		}); err != nil {
			slog.Error("failed to save tasks", "error", err)
		}
	}
}

func (s *Syncer) saveColumns(ctx context.Context, columns []models.Column) error {
	if err := s.bridge.SaveColumns(ctx, columns); err != nil {
		return err
	}
	s.mu.Lock()
	s.columns = columns
	s.mu.Unlock()
	return nil
}

func (s *Syncer) saveTasks(ctx context.Context, tasks []models.Task) error {
	if err := s.bridge.SaveTasks(ctx, tasks); err != nil {
		return err
	}
	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

func (s *Syncer) columnsStored(columns []models.Column) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Equal(s.columns, columns)
}

func (s *Syncer) tasksStored(tasks []models.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Equal(s.tasks, tasks)
}

// withRetry makes up to maxRetries attempts with exponential backoff.
// Returns the error from the final attempt if all retries fail.
func (s *Syncer) withRetry(ctx context.Context, what string, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		err := fn()
		if err == nil {
			if attempt > 0 {
				slog.Debug("save succeeded after retry", "what", what, "attempt", attempt+1)
			}
			return nil
		}
		lastErr = err

		// Don't sleep after the last attempt
		if attempt < s.maxRetries-1 {
			delay := s.baseDelay * (1 << attempt)
			slog.Debug("save failed, retrying",
				"what", what,
				"attempt", attempt+1,
				"max_retries", s.maxRetries,
				"retry_delay", delay,
				"error", err)
			select {
			case <-ctx.Done():
				return errors.Join(lastErr, ctx.Err())
			case <-time.After(delay):
			}
		}
	}

	slog.Warn("save failed after all retries", "what", what, "attempts", s.maxRetries, "error", lastErr)
	return lastErr
}
