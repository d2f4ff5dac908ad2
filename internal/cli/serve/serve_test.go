package serve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/cli"
	clitest "github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestServe_StopsWhenContextDone(t *testing.T) {
	app, _ := clitest.SetupCLITest(t, clitest.SampleBoard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	output, err := clitest.ExecuteCLICommandWithContext(t, ctx, app, ServeCmd(), []string{"--addr", "127.0.0.1:0"})
	require.NoError(t, err)
	assert.Contains(t, output, "Serving board on 127.0.0.1:0")
}

func TestServe_QuietPrintsNothing(t *testing.T) {
	app, _ := clitest.SetupCLITest(t, clitest.SampleBoard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	output, err := clitest.ExecuteCLICommandWithContext(t, ctx, app, ServeCmd(), []string{"--addr", "127.0.0.1:0", "--quiet"})
	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestServe_BadAddress(t *testing.T) {
	app, _ := clitest.SetupCLITest(t, clitest.SampleBoard())

	_, err := clitest.ExecuteCLICommand(t, app, ServeCmd(), []string{"--addr", "not-an-address"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
}
