package backup

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/transfer"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board as JSON",
		Long: `Write every column and task as a JSON document.

The document can be read back with 'kanban import'.

Examples:
  kanban export > board.json
  kanban export --out board.json
`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer closeCLI(cliInstance)

	snapshot := cliInstance.App.Board.Snapshot()

	if outPath == "" {
		if err := transfer.Export(cmd.OutOrStdout(), snapshot); err != nil {
			return formatter.Fail(cli.ExitError, "EXPORT_ERROR", err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := transfer.Export(&buf, snapshot); err != nil {
		return formatter.Fail(cli.ExitError, "EXPORT_ERROR", err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return formatter.Fail(cli.ExitError, "WRITE_ERROR", err)
	}

	summary := map[string]any{
		"path":    outPath,
		"columns": len(snapshot.Columns),
		"tasks":   len(snapshot.Tasks),
	}
	return formatter.Success(summary, func(w io.Writer) {
		fmt.Fprintf(w, "%s Exported %d column(s) and %d task(s) to %s\n",
			styles.Check(), len(snapshot.Columns), len(snapshot.Tasks), outPath)
	})
}
