package setup

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/config"
)

// configStatus is what `setup config` reports
type configStatus struct {
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
	Written bool   `json:"written"`
}

// ConfigCmd returns the setup config subcommand
func ConfigCmd() *cobra.Command {
	var checkFlag bool
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the default config file",
		Long: `Write config.yaml with every option set to its default value.

The file lives in $XDG_CONFIG_HOME/kanban (or ~/.config/kanban).
An existing file is left alone unless --force is given.

Examples:
  # Write the defaults
  kanban setup config

  # Show where the file lives and whether it exists
  kanban setup config --check

  # Reset to defaults
  kanban setup config --force
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, checkFlag, forceFlag)
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Report the config path without writing")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")

	return cmd
}

func runConfig(cmd *cobra.Command, check, force bool) error {
	formatter := cli.NewFormatter(cmd)

	path, err := config.Path()
	if err != nil {
		return formatter.Fail(cli.ExitError, "CONFIG_PATH_ERROR", err)
	}

	status := configStatus{Path: path}
	if _, err := os.Stat(path); err == nil {
		status.Exists = true
	}

	if check {
		return formatter.Success(status, func(w io.Writer) {
			state := "not created yet"
			if status.Exists {
				state = "exists"
			}
			fmt.Fprintf(w, "%s (%s)\n", styles.RenderField("Config", path), state)
		})
	}

	if status.Exists && !force {
		return formatter.Fail(cli.ExitUsage, "CONFIG_EXISTS",
			fmt.Errorf("%s already exists (use --force to overwrite)", path))
	}

	if err := config.Default().Save(); err != nil {
		return formatter.Fail(cli.ExitError, "CONFIG_WRITE_ERROR", err)
	}
	status.Exists, status.Written = true, true

	return formatter.Success(status, func(w io.Writer) {
		fmt.Fprintf(w, "%s Wrote default config to %s\n", styles.Check(), path)
	})
}
