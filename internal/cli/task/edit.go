package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <task> <content>",
		Short: "Replace a task's content",
		Long: `Replace a task's content. The task can be given by ID or unique ID prefix.

Examples:
  kanban task edit 9c1e "Write the release notes"
`,
		Args: cobra.ExactArgs(2),
		RunE: runEdit,
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	b.EditTask(task.ID, args[1])
	task.Content = args[1]

	return formatter.Success(task, func(w io.Writer) {
		fmt.Fprintf(w, "%s Task %s updated\n", styles.Check(), cli.ShortID(task.ID))
	})
}
