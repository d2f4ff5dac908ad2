// Package backup holds the export and import commands, which move a whole board in and
// out as a JSON document.
package backup

import (
	"errors"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/transfer"
)

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}

// failImport maps an import failure to its exit code and JSON error code
func failImport(formatter *cli.OutputFormatter, err error) error {
	switch {
	case errors.Is(err, board.ErrDuplicateID),
		errors.Is(err, board.ErrOrphanTask),
		errors.Is(err, board.ErrEmptyID):
		return formatter.Fail(cli.ExitValidation, "INVALID_BOARD", err)
	case errors.Is(err, transfer.ErrEmptyInput):
		return formatter.Fail(cli.ExitDataErr, "EMPTY_INPUT", err)
	default:
		return formatter.Fail(cli.ExitDataErr, "INVALID_INPUT", err)
	}
}
