package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
)

type appKey struct{}

// CLI represents the CLI application context
type CLI struct {
	App   *app.App
	owned bool
}

// WithApp returns a context carrying a ready application. Commands run against it
// instead of opening the configured storage (tests inject in-memory apps this way).
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// GetCLIFromContext returns the application injected with WithApp, or opens one from
// the user's config.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open board: %w", err)
	}
	return &CLI{App: a, owned: true}, nil
}

// Close saves and releases the application if this CLI opened it
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
