package board

import (
	"strings"

	"github.com/google/uuid"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
)

// Option is a functional option for configuring a Board
type Option func(*Board)

// WithPublisher sets where change notifications are sent
func WithPublisher(p events.Publisher) Option {
	return func(b *Board) {
		b.publisher = p
	}
}

// WithIDGenerator overrides how fresh IDs are generated (tests use sequential IDs)
func WithIDGenerator(gen func() models.ID) Option {
	return func(b *Board) {
		b.newID = gen
	}
}

// WithDefaults sets the prefixes used to title new columns and tasks.
// Empty values keep the built-in defaults.
func WithDefaults(columnTitle, taskContent string) Option {
	return func(b *Board) {
		if columnTitle != "" {
			b.columnTitle = columnTitle
		}
		if taskContent != "" {
			b.taskContent = taskContent
		}
	}
}

// TaskOption adjusts a task before CreateTask stores it
type TaskOption func(*models.Task)

// WithContent replaces the default content of a new task. Blank content keeps the default.
func WithContent(content string) TaskOption {
	return func(t *models.Task) {
		if strings.TrimSpace(content) != "" {
			t.Content = content
		}
	}
}

// NewUUID returns a random UUIDv4 string ID
func NewUUID() models.ID {
	return models.ID(uuid.NewString())
}
