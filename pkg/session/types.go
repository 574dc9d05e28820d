// Package session tracks investigations that are currently in memory: the
// queue registers a run when it starts, the engine's events are buffered
// and fanned out to API subscribers, and cancellation reaches the run's
// context through the registry. Durable history lives in pkg/services;
// this package only covers the live window.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/rootline-ai/rootline/pkg/events"
	"github.com/rootline-ai/rootline/pkg/models"
)

// Mode selects which engine processes the run.
type Mode string

const (
	ModeInvestigation Mode = "investigation"
	ModeAssistant     Mode = "assistant"
)

// Status is the live lifecycle state of a run.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

const (
	// maxBufferedEvents bounds the replay buffer per run. Subscribers
	// joining later than that see a truncated prefix.
	maxBufferedEvents = 1000

	// subscriberBuffer is the channel depth per subscriber. A subscriber
	// that falls further behind loses events rather than stalling the run.
	subscriberBuffer = 256
)

// Run is one live investigation. All fields are guarded by mu; reads go
// through Snapshot.
type Run struct {
	mu sync.Mutex

	id         string
	query      string
	incidentID string
	mode       Mode
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
	errMsg     string
	result     *models.InvestigationResult
	answer     string

	buffer  []events.Event
	dropped int
	subs    map[int]chan events.Event
	nextSub int
	closed  bool

	cancel context.CancelFunc
}

// View is an immutable copy of a run's state.
type View struct {
	ID         string                      `json:"id"`
	Query      string                      `json:"query"`
	IncidentID string                      `json:"incidentId,omitempty"`
	Mode       Mode                        `json:"mode"`
	Status     Status                      `json:"status"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
	Error      string                      `json:"error,omitempty"`
	Result     *models.InvestigationResult `json:"result,omitempty"`
	Answer     string                      `json:"answer,omitempty"`
}

// ID returns the run identifier.
func (r *Run) ID() string { return r.id }

// Snapshot returns a consistent copy of the run state.
func (r *Run) Snapshot() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return View{
		ID:         r.id,
		Query:      r.query,
		IncidentID: r.incidentID,
		Mode:       r.mode,
		Status:     r.status,
		CreatedAt:  r.createdAt,
		UpdatedAt:  r.updatedAt,
		Error:      r.errMsg,
		Result:     r.result,
		Answer:     r.answer,
	}
}

// SetCancelFunc installs the cancellation hook for the run's context.
func (r *Run) SetCancelFunc(cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancel = cancel
}

// SetStatus moves the run to a new lifecycle state.
func (r *Run) SetStatus(status Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
	r.updatedAt = time.Now()
}

// SetResult records the terminal investigation result.
func (r *Run) SetResult(result *models.InvestigationResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result = result
	r.updatedAt = time.Now()
}

// SetAnswer records the terminal assistant answer.
func (r *Run) SetAnswer(answer string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answer = answer
	r.updatedAt = time.Now()
}

// SetError marks the run failed.
func (r *Run) SetError(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errMsg = message
	r.status = StatusFailed
	r.updatedAt = time.Now()
}

// Cancel triggers the run's context cancellation. Returns false when the
// run is already terminal or has no cancel hook yet.
func (r *Run) Cancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status.Terminal() || r.cancel == nil {
		return false
	}
	r.cancel()
	r.status = StatusCancelled
	r.updatedAt = time.Now()
	return true
}

// Publish buffers an event and fans it out to subscribers. The done event
// closes the stream: subscriber channels are closed and later publishes
// are dropped.
func (r *Run) Publish(ev events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	r.buffer = append(r.buffer, ev)
	if len(r.buffer) > maxBufferedEvents {
		over := len(r.buffer) - maxBufferedEvents
		r.buffer = r.buffer[over:]
		r.dropped += over
	}

	for _, ch := range r.subs {
		select {
		case ch <- ev:
		default: // slow subscriber loses this event
		}
	}

	if ev.Type == events.TypeDone {
		r.closed = true
		for id, ch := range r.subs {
			close(ch)
			delete(r.subs, id)
		}
	}
}

// Subscribe returns the buffered history plus a channel of future events.
// The channel is closed after the done event. The returned unsubscribe
// function is idempotent.
func (r *Run) Subscribe() ([]events.Event, <-chan events.Event, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	replay := make([]events.Event, len(r.buffer))
	copy(replay, r.buffer)

	ch := make(chan events.Event, subscriberBuffer)
	if r.closed {
		close(ch)
		return replay, ch, func() {}
	}

	id := r.nextSub
	r.nextSub++
	r.subs[id] = ch

	unsubscribe := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if existing, ok := r.subs[id]; ok {
			close(existing)
			delete(r.subs, id)
		}
	}
	return replay, ch, unsubscribe
}
