package column

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/drag"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <column> --over <column>",
		Short: "Drag a column onto another column",
		Long: `Move a column to the position of another column, exactly as dragging it there
and dropping it would.

Examples:
  # Put Done first
  kanban column move Done --over Todo
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("over", "", "Column to drop onto (required)")
	_ = cmd.MarkFlagRequired("over")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	overRef, _ := cmd.Flags().GetString("over")
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer closeCLI(cliInstance)

	a := cliInstance.App
	col, err := cli.ResolveColumn(a.Board, args[0])
	if err != nil {
		return formatter.FailLookup(err)
	}
	target, err := cli.ResolveColumn(a.Board, overRef)
	if err != nil {
		return formatter.FailLookup(err)
	}

	moved := a.Drag.Move(a.Board, drag.ColumnEndpoint(col.ID), drag.ColumnEndpoint(target.ID))
	columns := a.Board.Columns()

	return formatter.Success(columns, func(w io.Writer) {
		if !moved {
			fmt.Fprintf(w, "Column '%s' is already there\n", col.Title)
			return
		}
		fmt.Fprintf(w, "%s Column '%s' moved\n", styles.Check(), col.Title)
		for i, c := range columns {
			fmt.Fprintf(w, "  %d. %s\n", i+1, c.Title)
		}
	})
}
