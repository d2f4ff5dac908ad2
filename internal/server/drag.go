package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/kanban/internal/drag"
	"github.com/thenoetrevino/kanban/internal/models"
)

type endpointRequest struct {
	ID   string `json:"id" binding:"required"`
	Kind string `json:"kind" binding:"required"`
}

type dragRequest struct {
	Active endpointRequest  `json:"active"`
	Over   *endpointRequest `json:"over"`
}

func (r endpointRequest) endpoint() (drag.Endpoint, error) {
	kind, ok := models.ParseKind(r.Kind)
	if !ok {
		return drag.Endpoint{}, fmt.Errorf("unknown kind %q", r.Kind)
	}
	return drag.Endpoint{ID: models.ID(r.ID), Kind: kind}, nil
}

// bindDrag decodes a drag request. It writes the error response itself and returns false
// when the request is unusable.
func (s *Server) bindDrag(c *gin.Context) (drag.Endpoint, *drag.Endpoint, bool) {
	var req dragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return drag.Endpoint{}, nil, false
	}

	active, err := req.Active.endpoint()
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return drag.Endpoint{}, nil, false
	}

	if req.Over == nil {
		return active, nil, true
	}
	over, err := req.Over.endpoint()
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return drag.Endpoint{}, nil, false
	}
	return active, &over, true
}

func (s *Server) dragResult(c *gin.Context, changed bool) {
	s.metrics.observeChange(changed)
	respondSuccess(c, http.StatusOK, gin.H{
		"changed":      changed,
		"state":        s.drag.State().String(),
		"columnActive": s.drag.ColumnActive(),
		"taskActive":   s.drag.TaskActive(),
	})
}

// handleDragStart begins a session. The payload is resolved from the board.
func (s *Server) handleDragStart(c *gin.Context) {
	active, _, ok := s.bindDrag(c)
	if !ok {
		return
	}
	s.metrics.DragStarts.Add(1)
	s.drag.DragStart(drag.StartEvent{Active: active, Payload: drag.PayloadFor(s.board, active)})
	s.dragResult(c, false)
}

// handleDragOver applies the hover rules.
func (s *Server) handleDragOver(c *gin.Context) {
	active, over, ok := s.bindDrag(c)
	if !ok {
		return
	}
	s.metrics.DragOvers.Add(1)
	s.dragResult(c, s.drag.DragOver(drag.OverEvent{Active: active, Over: over}))
}

// handleDragEnd ends the session and applies the drop rules.
func (s *Server) handleDragEnd(c *gin.Context) {
	active, over, ok := s.bindDrag(c)
	if !ok {
		return
	}
	s.metrics.DragEnds.Add(1)
	s.dragResult(c, s.drag.DragEnd(drag.EndEvent{Active: active, Over: over}))
}
