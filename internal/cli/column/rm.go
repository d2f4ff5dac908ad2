package column

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// RmCmd returns the column rm subcommand
func RmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <column>",
		Aliases: []string{"delete"},
		Short:   "Delete a column and its tasks",
		Long: `Delete a column. Every task in the column is deleted with it.

Asks for confirmation unless --force, --quiet or --json is given.

Examples:
  kanban column rm Done
  kanban column rm 3f2a --force
`,
		Args: cobra.ExactArgs(1),
		RunE: runRm,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	return cmd
}

func runRm(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
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
	taskCount := len(b.TasksInColumn(col.ID))

	if !force && !formatter.Quiet && !formatter.JSON {
		out := cmd.OutOrStdout()
		if taskCount > 0 {
			fmt.Fprintf(out, "Warning: deleting column '%s' also deletes its %d task(s)\n", col.Title, taskCount)
		}
		fmt.Fprintf(out, "Delete column '%s'? (y/N): ", col.Title)
		var response string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Cancelled")
			return nil
		}
	}

	b.DeleteColumn(col.ID)

	return formatter.Success(col, func(w io.Writer) {
		fmt.Fprintf(w, "%s Column '%s' deleted (%d task(s) removed)\n", styles.Check(), col.Title, taskCount)
	})
}
