package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/config"
	clitest "github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func isolate(t *testing.T) string {
	t.Helper()
	dataDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvDataDir, dataDir)
	t.Setenv(config.EnvThemeFile, "")
	return dataDir
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0)
	for _, sub := range NewRootCmd().Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"column", "task", "export", "import", "serve", "setup"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_RunsSubcommandAndStartsLogger(t *testing.T) {
	dataDir := isolate(t)
	app, _ := clitest.SetupCLITest(t, clitest.SampleBoard())

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"column", "list", "--quiet"})

	require.NoError(t, root.ExecuteContext(cli.WithApp(context.Background(), app)))
	assert.Equal(t, "c1\nc2\n", out.String())

	_, err := os.Stat(filepath.Join(dataDir, "logs", "kanban.log"))
	assert.NoError(t, err)
}

func TestRootCmd_BadConfig(t *testing.T) {
	isolate(t)
	configDir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "kanban")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("storage: [unclosed"), 0o644))

	root := NewRootCmd()
	root.SetArgs([]string{"column", "list"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
}

func TestRootCmd_LookupFailureExitCode(t *testing.T) {
	isolate(t)
	app, _ := clitest.SetupCLITest(t, clitest.SampleBoard())

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"task", "show", "missing"})

	err := root.ExecuteContext(cli.WithApp(context.Background(), app))
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}
