package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add --column <column>",
		Short: "Add a task to a column",
		Long: `Add a task to the end of a column.

Without --content the task is named after its position ("Task 4").

Examples:
  kanban task add --column Todo --content "Write the release notes"

  # Quiet mode for bash capture
  TASK_ID=$(kanban task add --column Todo --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("column", "", "Column to add the task to (required)")
	_ = cmd.MarkFlagRequired("column")
	cmd.Flags().String("content", "", "Task content (markdown)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	columnRef, _ := cmd.Flags().GetString("column")
	content, _ := cmd.Flags().GetString("content")
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer closeCLI(cliInstance)

	b := cliInstance.App.Board
	col, err := cli.ResolveColumn(b, columnRef)
	if err != nil {
		return formatter.FailLookup(err)
	}

	task, err := b.CreateTask(col.ID, board.WithContent(content))
	if err != nil {
		return formatter.FailLookup(err)
	}

	return formatter.Success(task, func(w io.Writer) {
		fmt.Fprintf(w, "%s Task '%s' added to '%s' (ID: %s)\n", styles.Check(), firstLine(task.Content), col.Title, task.ID)
	})
}
