package column

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <column> <title>",
		Short: "Rename a column",
		Long: `Replace a column's title. The column can be given by ID, unique ID prefix or title.

Examples:
  kanban column rename 3f2a "In Review"
  kanban column rename Todo Backlog
`,
		Args: cobra.ExactArgs(2),
		RunE: runRename,
	}
}

func runRename(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer closeCLI(cliInstance)

	b := cliInstance.App.Board
	col, err := cli.ResolveColumn(b, args[0])
	if err != nil {
		return formatter.FailLookup(err)
	}

	oldTitle := col.Title
	b.RenameColumn(col.ID, args[1])
	col.Title = args[1]

	return formatter.Success(col, func(w io.Writer) {
		fmt.Fprintf(w, "%s Column %s renamed\n", styles.Check(), cli.ShortID(col.ID))
		fmt.Fprintf(w, "  '%s' → '%s'\n", oldTitle, col.Title)
	})
}
