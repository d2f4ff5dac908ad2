package column

import (
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/cli"
)

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
