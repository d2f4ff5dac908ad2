package backup

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/transfer"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the board with a JSON document",
		Long: `Replace every column and task with the board described in a JSON file.

Comments and trailing commas are accepted. Use '-' to read from stdin.
The file is validated before anything is replaced: IDs must be unique and
every task must belong to a column in the file.

Asks for confirmation when the current board is not empty, unless --force,
--quiet or --json is given.

Examples:
  kanban import board.json
  kanban export | kanban import - --force
`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	formatter := cli.NewFormatter(cmd)

	var (
		snapshot models.Snapshot
		err      error
	)
	if args[0] == "-" {
		snapshot, err = transfer.Import(cmd.InOrStdin())
	} else {
		snapshot, err = transfer.ReadFile(args[0])
	}
	if err != nil {
		return failImport(formatter, err)
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer closeCLI(cliInstance)

	b := cliInstance.App.Board
	current := b.Snapshot()

	// stdin already carried the document, there is nothing left to answer with
	canPrompt := args[0] != "-"
	if !current.Empty() && canPrompt && !force && !formatter.Quiet && !formatter.JSON {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Replace %d column(s) and %d task(s)? (y/N): ", len(current.Columns), len(current.Tasks))
		var response string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Cancelled")
			return nil
		}
	}

	if err := b.Replace(snapshot); err != nil {
		return failImport(formatter, err)
	}

	summary := map[string]any{
		"columns": len(snapshot.Columns),
		"tasks":   len(snapshot.Tasks),
	}
	return formatter.Success(summary, func(w io.Writer) {
		fmt.Fprintf(w, "%s Imported %d column(s) and %d task(s)\n", styles.Check(), len(snapshot.Columns), len(snapshot.Tasks))
	})
}
