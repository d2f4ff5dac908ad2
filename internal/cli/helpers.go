package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ErrAmbiguousRef is returned when a reference matches more than one entity
var ErrAmbiguousRef = errors.New("ambiguous reference")

// ResolveColumn finds a column by exact ID, unique ID prefix, or unique
// case-insensitive title.
func ResolveColumn(b *board.Board, ref string) (models.Column, error) {
	columns := b.Columns()
	match, err := resolve(columns, ref, func(c models.Column) (models.ID, string) {
		return c.ID, c.Title
	})
	if err != nil {
		return models.Column{}, fmt.Errorf("column %q: %w", ref, orNotFound(err, board.ErrColumnNotFound))
	}
	return match, nil
}

// ResolveTask finds a task by exact ID or unique ID prefix
func ResolveTask(b *board.Board, ref string) (models.Task, error) {
	tasks := b.Tasks()
	match, err := resolve(tasks, ref, func(t models.Task) (models.ID, string) {
		return t.ID, ""
	})
	if err != nil {
		return models.Task{}, fmt.Errorf("task %q: %w", ref, orNotFound(err, board.ErrTaskNotFound))
	}
	return match, nil
}

var errNoMatch = errors.New("no match")

func orNotFound(err, notFound error) error {
	if errors.Is(err, errNoMatch) {
		return notFound
	}
	return err
}

func resolve[T any](items []T, ref string, key func(T) (models.ID, string)) (T, error) {
	var zero T
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return zero, errNoMatch
	}

	for _, item := range items {
		if id, _ := key(item); string(id) == ref {
			return item, nil
		}
	}

	var matches []T
	for _, item := range items {
		if id, _ := key(item); strings.HasPrefix(string(id), ref) {
			matches = append(matches, item)
		}
	}
	if len(matches) == 0 {
		for _, item := range items {
			if _, title := key(item); title != "" && strings.EqualFold(title, ref) {
				matches = append(matches, item)
			}
		}
	}

	switch len(matches) {
	case 0:
		return zero, errNoMatch
	case 1:
		return matches[0], nil
	default:
		return zero, ErrAmbiguousRef
	}
}

// ExitCodeFor maps lookup errors to CLI exit codes
func ExitCodeFor(err error) int {
	switch {
	case errors.Is(err, board.ErrColumnNotFound), errors.Is(err, board.ErrTaskNotFound):
		return ExitNotFound
	case errors.Is(err, ErrAmbiguousRef):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCodeFor maps lookup errors to the JSON error codes
func ErrorCodeFor(err error) string {
	switch {
	case errors.Is(err, board.ErrColumnNotFound):
		return "COLUMN_NOT_FOUND"
	case errors.Is(err, board.ErrTaskNotFound):
		return "TASK_NOT_FOUND"
	case errors.Is(err, ErrAmbiguousRef):
		return "AMBIGUOUS_REFERENCE"
	default:
		return "ERROR"
	}
}

// FailLookup reports a failed column or task lookup with the matching codes
func (f *OutputFormatter) FailLookup(err error) error {
	return f.Fail(ExitCodeFor(err), ErrorCodeFor(err), err)
}

// ShortID truncates long IDs (UUIDs) for human-readable output
func ShortID(id models.ID) string {
	const n = 8
	if len(id) <= n {
		return string(id)
	}
	return string(id[:n])
}
