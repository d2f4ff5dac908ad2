// Package server exposes the board and its drag controller over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/drag"
)

const shutdownTimeout = 5 * time.Second

// Server provides HTTP handlers for the board.
type Server struct {
	engine  *gin.Engine
	board   *board.Board
	drag    *drag.Controller
	logger  *slog.Logger
	metrics *Metrics
}

// New constructs the HTTP server with routes and middleware configured.
func New(b *board.Board, ctrl *drag.Controller, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	metrics := NewMetrics()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger, metrics))

	srv := &Server{
		engine:  router,
		board:   b,
		drag:    ctrl,
		logger:  logger,
		metrics: metrics,
	}

	srv.registerRoutes()
	return srv
}

// Metrics exposes the live counters.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("http server shutting down")
	return httpServer.Shutdown(shutdownCtx)
}

// registerRoutes wires all API handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)
		api.GET("/metrics", s.handleMetrics)
		api.GET("/board", s.handleBoard)

		columns := api.Group("/columns")
		{
			columns.GET("", s.handleListColumns)
			columns.POST("", s.handleCreateColumn)
			columns.PUT(":id", s.handleRenameColumn)
			columns.DELETE(":id", s.handleDeleteColumn)
			columns.GET(":id/tasks", s.handleListTasks)
			columns.POST(":id/tasks", s.handleCreateTask)
		}

		api.PUT("/tasks/:id", s.handleEditTask)
		api.DELETE("/tasks/:id", s.handleDeleteTask)

		dragGroup := api.Group("/drag")
		{
			dragGroup.POST("/start", s.handleDragStart)
			dragGroup.POST("/over", s.handleDragOver)
			dragGroup.POST("/end", s.handleDragEnd)
		}
	}
}

// requestLogger logs and counts each request through slog instead of gin's stdout writer.
func requestLogger(logger *slog.Logger, metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.observeRequest(c.Writer.Status())
		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"status": "ok"})
}

// handleMetrics reports request and drag counters.
func (s *Server) handleMetrics(c *gin.Context) {
	respondSuccess(c, http.StatusOK, s.metrics.GetSnapshot())
}

// handleBoard returns both sequences plus the current drag session.
func (s *Server) handleBoard(c *gin.Context) {
	snap := s.board.Snapshot()
	respondSuccess(c, http.StatusOK, gin.H{
		"columns":      snap.Columns,
		"tasks":        snap.Tasks,
		"columnActive": s.drag.ColumnActive(),
		"taskActive":   s.drag.TaskActive(),
		"state":        s.drag.State().String(),
	})
}

// respondError logs the error and returns a JSON envelope.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	} else {
		s.logger.Debug("request rejected", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

// respondSuccess wraps a payload in a JSON envelope for consistency.
func respondSuccess(c *gin.Context, status int, payload any) {
	c.JSON(status, gin.H{"success": true, "data": payload})
}
