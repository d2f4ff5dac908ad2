package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/app"
	kanbancli "github.com/thenoetrevino/kanban/internal/cli"
)

// ExecuteCLICommand runs cmd with args against testApp and returns what it printed.
// The command is mounted under a bare root carrying the global output flags.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	root := &cobra.Command{Use: "kanban", SilenceUsage: true, SilenceErrors: true}
	kanbancli.AddOutputFlags(root)
	root.AddCommand(cmd)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{cmd.Name()}, args...))

	err := root.ExecuteContext(kanbancli.WithApp(ctx, testApp))
	return out.String(), err
}
