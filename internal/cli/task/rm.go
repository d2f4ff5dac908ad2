package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// RmCmd returns the task rm subcommand
func RmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <task>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE:    runRm,
	}
}

func runRm(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer closeCLI(cliInstance)

	b := cliInstance.App.Board
	task, err := cli.ResolveTask(b, args[0])
	if err != nil {
		return formatter.FailLookup(err)
	}

	b.DeleteTask(task.ID)

	return formatter.Success(task, func(w io.Writer) {
		fmt.Fprintf(w, "%s Task '%s' deleted\n", styles.Check(), firstLine(task.Content))
	})
}
