package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/backup"
	"github.com/thenoetrevino/kanban/internal/cli/column"
	"github.com/thenoetrevino/kanban/internal/cli/serve"
	"github.com/thenoetrevino/kanban/internal/cli/setup"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/cli/task"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/tui"
	"github.com/thenoetrevino/kanban/internal/tui/components"
)

// NewRootCmd builds the kanban command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kanban",
		Short: "Kanban - A terminal kanban board with drag and drop",
		Long: `Kanban is a terminal kanban board. Run it without arguments to open the board;
use the subcommands to script it.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initRuntime,
		RunE:              runTUI,
	}

	cli.AddOutputFlags(rootCmd)

	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(backup.ExportCmd())
	rootCmd.AddCommand(backup.ImportCmd())
	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(setup.SetupCmd())

	return rootCmd
}

// Execute runs the command tree. Errors that did not come from a command (bad flags,
// wrong argument counts) are printed here and reported as usage errors.
func Execute() error {
	err := NewRootCmd().Execute()
	if err == nil {
		return nil
	}

	var coded *cli.CodedError
	if errors.As(err, &coded) {
		return err
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return cli.Exit(cli.ExitUsage, err)
}

// initRuntime loads the config once per invocation to start the file logger and apply the theme.
// A logger that cannot start is reported but never blocks the command.
func initRuntime(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return cli.Exit(cli.ExitError, fmt.Errorf("failed to load config: %w", err))
	}

	if err := logging.Init(cfg.Storage.Path, cfg.Log.Level); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
	}

	styles.Init(cfg.ColorScheme)
	components.InitStyles(cfg.ColorScheme)
	return nil
}

// runTUI opens the board in the terminal UI
func runTUI(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Exit(cli.ExitError, err)
	}
	a := cliInstance.App

	model := tui.New(ctx, a.Board, a.Drag, a.Config, a.Subscribe(ctx))
	p := tea.NewProgram(model, tea.WithContext(ctx))
	_, runErr := p.Run()

	// Close flushes the board, so it must finish even when the program failed
	closeErr := cliInstance.Close()

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return cli.Exit(cli.ExitError, fmt.Errorf("running TUI: %w", runErr))
	}
	if closeErr != nil {
		return cli.Exit(cli.ExitError, fmt.Errorf("saving board: %w", closeErr))
	}
	return nil
}
