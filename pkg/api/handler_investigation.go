package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rootline-ai/rootline/pkg/queue"
	"github.com/rootline-ai/rootline/pkg/services"
	"github.com/rootline-ai/rootline/pkg/session"
)

// createInvestigation accepts a query and queues it. 202 with the run ID
// on success; the caller follows up on /events or by polling.
func (s *Server) createInvestigation(c *gin.Context) {
	var req createInvestigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	mode := req.Mode
	switch mode {
	case "":
		mode = session.ModeInvestigation
	case session.ModeInvestigation, session.ModeAssistant:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be investigation or assistant"})
		return
	}

	id := uuid.NewString()
	err := s.deps.Pool.Submit(queue.Request{
		ID:                id,
		Query:             req.Query,
		IncidentID:        req.IncidentID,
		AdditionalContext: req.AdditionalContext,
		Mode:              mode,
		Overrides:         req.Overrides,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusAccepted, gin.H{"id": id, "status": session.StatusPending})
	case errors.Is(err, queue.ErrQueueFull):
		c.Header("Retry-After", "5")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queue is full"})
	default:
		status, msg := mapServiceError(err)
		c.JSON(status, gin.H{"error": msg})
	}
}

// listInvestigations returns persisted history when the database is on,
// otherwise the live in-memory runs.
func (s *Server) listInvestigations(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	if s.deps.Sessions == nil {
		views := s.deps.Manager.List()
		out := make([]sessionResponse, 0, len(views))
		for _, v := range views {
			out = append(out, fromView(v))
		}
		c.JSON(http.StatusOK, gin.H{"investigations": out})
		return
	}

	rows, err := s.deps.Sessions.List(c.Request.Context(), services.ListParams{
		Status:     q.Status,
		IncidentID: q.IncidentID,
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	if err != nil {
		status, msg := mapServiceError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	out := make([]sessionResponse, 0, len(rows))
	for _, row := range rows {
		resp := fromRow(row)
		// Live state wins over the persisted snapshot while a run is
		// still in flight.
		if run := s.deps.Manager.Get(row.ID); run != nil {
			resp = fromView(run.Snapshot())
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, gin.H{"investigations": out})
}

// getInvestigation prefers the live run, falling back to the database.
func (s *Server) getInvestigation(c *gin.Context) {
	id := c.Param("id")

	if run := s.deps.Manager.Get(id); run != nil {
		c.JSON(http.StatusOK, fromView(run.Snapshot()))
		return
	}

	if s.deps.Sessions == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "investigation not found"})
		return
	}
	row, err := s.deps.Sessions.Get(c.Request.Context(), id)
	if err != nil {
		status, msg := mapServiceError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, fromRow(row))
}

// cancelInvestigation cancels a live run, or marks a pending persisted
// session cancelled when no live run exists (e.g. after a restart).
func (s *Server) cancelInvestigation(c *gin.Context) {
	id := c.Param("id")

	if s.deps.Manager.Cancel(id) {
		c.JSON(http.StatusAccepted, gin.H{"id": id, "status": session.StatusCancelled})
		return
	}

	if s.deps.Sessions == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "investigation not found"})
		return
	}
	if err := s.deps.Sessions.Cancel(c.Request.Context(), id); err != nil {
		status, msg := mapServiceError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"id": id, "status": session.StatusCancelled})
}

// streamEvents serves the run's event stream over SSE: the buffered
// history is replayed first, then live events until the done event closes
// the stream. Only live runs stream; finished runs are read via GET.
func (s *Server) streamEvents(c *gin.Context) {
	id := c.Param("id")
	run := s.deps.Manager.Get(id)
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "investigation not found"})
		return
	}

	replay, live, unsubscribe := run.Subscribe()
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	for _, ev := range replay {
		if !writeSSE(c.Writer, ev.Type, ev) {
			return
		}
	}
	c.Writer.Flush()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case ev, ok := <-live:
			if !ok {
				return
			}
			if !writeSSE(c.Writer, ev.Type, ev) {
				return
			}
			c.Writer.Flush()
		}
	}
}

func writeSSE(w io.Writer, eventType string, payload any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		return false
	}
	if _, err := w.Write([]byte("event: " + eventType + "\ndata: " + string(data) + "\n\n")); err != nil {
		return false
	}
	return true
}
