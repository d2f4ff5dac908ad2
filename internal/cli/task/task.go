package task

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(RmCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
