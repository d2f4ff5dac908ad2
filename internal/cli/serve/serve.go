// Package serve holds the command that exposes the board over HTTP.
package serve

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/server"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over HTTP",
		Long: `Serve the board and its drag controller as a JSON API.

Every change is saved the same way the TUI saves it. Stop with Ctrl+C;
pending changes are flushed before exit.

Defaults to server.addr from the config file (":8080").

Examples:
  kanban serve
  kanban serve --addr 127.0.0.1:9000
  curl localhost:8080/api/board
  curl localhost:8080/api/metrics
`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (overrides server.addr)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	formatter := cli.NewFormatter(cmd)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	a := cliInstance.App
	if addr == "" {
		addr = a.Config.Server.Addr
	}

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(a.Board, a.Drag, slog.Default())

	if !formatter.Quiet && !formatter.JSON {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Serving board on %s (Ctrl+C to stop)\n", styles.Check(), addr)
	}

	if err := srv.Run(ctx, addr); err != nil {
		return formatter.Fail(cli.ExitError, "SERVER_ERROR", err)
	}
	return nil
}
