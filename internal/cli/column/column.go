package column

import (
	"github.com/spf13/cobra"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(RmCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}
