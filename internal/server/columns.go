package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/models"
)

type columnRequest struct {
	Title *string `json:"title"`
}

// handleListColumns returns the ordered column sequence.
func (s *Server) handleListColumns(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"columns": s.board.Columns()})
}

// handleCreateColumn appends a column, optionally titled by the request.
func (s *Server) handleCreateColumn(c *gin.Context) {
	var req columnRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			s.respondError(c, http.StatusBadRequest, err)
			return
		}
	}

	col := s.board.CreateColumn()
	if title := getString(req.Title); strings.TrimSpace(title) != "" {
		s.board.RenameColumn(col.ID, title)
		col.Title = title
	}
	s.metrics.observeChange(true)
	respondSuccess(c, http.StatusCreated, gin.H{"column": col})
}

// handleRenameColumn replaces a column title.
func (s *Server) handleRenameColumn(c *gin.Context) {
	id := models.ID(c.Param("id"))

	var req columnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Title == nil {
		s.respondError(c, http.StatusBadRequest, errors.New("title is required"))
		return
	}

	if _, ok := s.board.Column(id); !ok {
		s.respondError(c, http.StatusNotFound, board.ErrColumnNotFound)
		return
	}
	s.board.RenameColumn(id, *req.Title)

	col, _ := s.board.Column(id)
	s.metrics.observeChange(true)
	respondSuccess(c, http.StatusOK, gin.H{"column": col})
}

// handleDeleteColumn removes a column and every task in it.
func (s *Server) handleDeleteColumn(c *gin.Context) {
	if !s.board.DeleteColumn(models.ID(c.Param("id"))) {
		s.respondError(c, http.StatusNotFound, board.ErrColumnNotFound)
		return
	}
	s.metrics.observeChange(true)
	respondSuccess(c, http.StatusOK, gin.H{"status": "deleted"})
}
