package setup

import (
	"github.com/spf13/cobra"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create and inspect the kanban config file",
		Long:  `Write a config file with every option at its default value, or report where it lives.`,
	}

	cmd.AddCommand(ConfigCmd())

	return cmd
}
