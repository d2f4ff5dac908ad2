package column

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List columns in board order",
		Long: `List all columns (in order) with their task counts.

Examples:
  kanban column list
  kanban column list --json
  kanban column list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer closeCLI(cliInstance)

	b := cliInstance.App.Board
	columns := b.Columns()

	return formatter.Success(columns, func(w io.Writer) {
		if len(columns) == 0 {
			fmt.Fprintln(w, "No columns yet. Create one with 'kanban column add'.")
			return
		}
		for i, col := range columns {
			count := len(b.TasksInColumn(col.ID))
			fmt.Fprintf(w, "%d. %s\n", i+1, styles.RenderColumnHeading(col, cli.ShortID(col.ID), count))
		}
	})
}
