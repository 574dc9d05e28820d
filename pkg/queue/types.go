// Package queue accepts investigation requests and runs them on a bounded
// worker pool. Each request gets its own emitter, scratchpad, cache, and
// executor; the pool owns the shared LLM client and tool registry.
package queue

import (
	"errors"

	"github.com/rootline-ai/rootline/pkg/config"
	"github.com/rootline-ai/rootline/pkg/session"
)

// Sentinel errors for queue operations.
var (
	// ErrQueueFull indicates the pending backlog is at capacity.
	ErrQueueFull = errors.New("queue is full")

	// ErrNotStarted indicates Submit was called before Start.
	ErrNotStarted = errors.New("worker pool is not started")
)

// Request is one unit of work. ID must be unique across live runs.
type Request struct {
	ID                string
	Query             string
	IncidentID        string
	AdditionalContext string
	Mode              session.Mode
	Overrides         *config.RunOverrides

	// scratchpadID names the session file; assigned at submission.
	scratchpadID string
}

// PoolHealth is the pool's health snapshot, served by the API.
type PoolHealth struct {
	Started    bool `json:"started"`
	Workers    int  `json:"workers"`
	ActiveRuns int  `json:"activeRuns"`
	QueueDepth int  `json:"queueDepth"`
	QueueBound int  `json:"queueBound"`
}
