package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/models"
)

type taskRequest struct {
	Content *string `json:"content"`
}

// handleListTasks returns a column's tasks in board order.
func (s *Server) handleListTasks(c *gin.Context) {
	id := models.ID(c.Param("id"))
	if _, ok := s.board.Column(id); !ok {
		s.respondError(c, http.StatusNotFound, board.ErrColumnNotFound)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"tasks": s.board.TasksInColumn(id)})
}

// handleCreateTask appends a task to the flat sequence, assigned to the column.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			s.respondError(c, http.StatusBadRequest, err)
			return
		}
	}

	task, err := s.board.CreateTask(models.ID(c.Param("id")), board.WithContent(getString(req.Content)))
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	s.metrics.observeChange(true)
	respondSuccess(c, http.StatusCreated, gin.H{"task": task})
}

// handleEditTask replaces a task's content.
func (s *Server) handleEditTask(c *gin.Context) {
	id := models.ID(c.Param("id"))

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Content == nil {
		s.respondError(c, http.StatusBadRequest, errors.New("content is required"))
		return
	}

	if _, ok := s.board.Task(id); !ok {
		s.respondError(c, http.StatusNotFound, board.ErrTaskNotFound)
		return
	}
	s.board.EditTask(id, *req.Content)

	task, _ := s.board.Task(id)
	s.metrics.observeChange(true)
	respondSuccess(c, http.StatusOK, gin.H{"task": task})
}

// handleDeleteTask removes a task completely.
func (s *Server) handleDeleteTask(c *gin.Context) {
	if !s.board.DeleteTask(models.ID(c.Param("id"))) {
		s.respondError(c, http.StatusNotFound, board.ErrTaskNotFound)
		return
	}
	s.metrics.observeChange(true)
	respondSuccess(c, http.StatusOK, gin.H{"status": "deleted"})
}

// statusFor maps board sentinel errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, board.ErrColumnNotFound), errors.Is(err, board.ErrTaskNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func getString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
