package app

import (
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/models"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	bridge database.Bridge
	newID  func() models.ID
	logger *slog.Logger
}

// WithBridge uses bridge instead of opening the configured storage driver.
// The App takes ownership and closes it.
func WithBridge(bridge database.Bridge) Option {
	return func(cfg *appConfig) {
		cfg.bridge = bridge
	}
}

// WithIDGenerator overrides the UUID generator for new columns and tasks
func WithIDGenerator(gen func() models.ID) Option {
	return func(cfg *appConfig) {
		cfg.newID = gen
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
