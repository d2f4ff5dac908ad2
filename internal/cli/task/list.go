package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by column",
		Long: `List tasks in board order, grouped by column.

Examples:
  kanban task list
  kanban task list --column Todo
  kanban task list --column Todo --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("column", "", "Only list tasks in this column")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	columnRef, _ := cmd.Flags().GetString("column")
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer closeCLI(cliInstance)

	b := cliInstance.App.Board
	columns := b.Columns()
	tasks := b.Tasks()

	if columnRef != "" {
		col, err := cli.ResolveColumn(b, columnRef)
		if err != nil {
			return formatter.FailLookup(err)
		}
		columns = []models.Column{col}
		tasks = b.TasksInColumn(col.ID)
	}

	return formatter.Success(tasks, func(w io.Writer) {
		for _, col := range columns {
			inColumn := models.TasksInColumn(tasks, col.ID)
			fmt.Fprintln(w, styles.RenderColumnHeading(col, cli.ShortID(col.ID), len(inColumn)))
			for _, t := range inColumn {
				fmt.Fprintf(w, "  %s %s\n", styles.SubtitleStyle.Render(cli.ShortID(t.ID)), firstLine(t.Content))
			}
		}
	})
}
