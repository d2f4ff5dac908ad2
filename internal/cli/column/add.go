package column

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a new column",
		Long: `Append a new column to the end of the board.

Without --title the column is named after its position ("Column 3").

Examples:
  kanban column add
  kanban column add --title "Review"

  # Quiet mode for bash capture
  COLUMN_ID=$(kanban column add --title "Review" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Column title")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer closeCLI(cliInstance)

	b := cliInstance.App.Board
	col := b.CreateColumn()
	if strings.TrimSpace(title) != "" {
		b.RenameColumn(col.ID, title)
		col.Title = title
	}

	return formatter.Success(col, func(w io.Writer) {
		fmt.Fprintf(w, "%s Column '%s' created (ID: %s)\n", styles.Check(), col.Title, col.ID)
	})
}
