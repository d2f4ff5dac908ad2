package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/drag"
	"github.com/thenoetrevino/kanban/internal/events"
)

// flushTimeout bounds the final save on Close
const flushTimeout = 5 * time.Second

// App holds the board, its drag controller and the persistence pipeline.
// This is the main application container that manages their lifecycles.
type App struct {
	Config *config.Config
	Board  *board.Board
	Drag   *drag.Controller

	bus    *events.Bus
	bridge database.Bridge
	syncer *database.Syncer
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// New loads the persisted board and starts saving changes in the background.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(ac)
	}

	bridge := ac.bridge
	if bridge == nil {
		var err error
		bridge, err = database.Open(ctx, database.Options{
			Driver:  cfg.Storage.Driver,
			DataDir: cfg.Storage.Path,
			Codec:   cfg.Storage.Codec,
		})
		if err != nil {
			return nil, err
		}
	}

	bus := events.NewBus()
	boardOpts := []board.Option{
		board.WithPublisher(bus),
		board.WithDefaults(cfg.Defaults.ColumnTitle, cfg.Defaults.TaskContent),
	}
	if ac.newID != nil {
		boardOpts = append(boardOpts, board.WithIDGenerator(ac.newID))
	}
	b := board.New(database.LoadOrEmpty(ctx, bridge), boardOpts...)

	runCtx, cancel := context.WithCancel(context.Background())
	a := &App{
		Config: cfg,
		Board:  b,
		Drag:   drag.NewController(b, drag.Options{ApplyTasksOnDrop: cfg.Drag.ApplyTasksOnDrop}),
		bus:    bus,
		bridge: bridge,
		syncer: database.NewSyncer(bridge, b),
		logger: ac.logger,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	changes := bus.Subscribe(runCtx)
	go func() {
		defer close(a.done)
		a.syncer.Run(runCtx, changes)
	}()

	a.logger.Info("board loaded",
		"driver", cfg.Storage.Driver,
		"columns", len(b.Columns()),
		"tasks", len(b.Tasks()))

	return a, nil
}

// Subscribe returns a channel of board change notifications, closed when ctx ends
func (a *App) Subscribe(ctx context.Context) <-chan events.Event {
	return a.bus.Subscribe(ctx)
}

// Close stops background saving, writes the final board state and releases storage.
func (a *App) Close() error {
	a.cancel()
	<-a.done

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	flushErr := a.syncer.Flush(ctx)
	if flushErr != nil {
		a.logger.Error("failed to flush board on close", "error", flushErr)
	}
	return errors.Join(flushErr, a.bus.Close(), a.bridge.Close())
}
