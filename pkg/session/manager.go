package session

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rootline-ai/rootline/pkg/events"
)

// maxFinishedRuns bounds how many terminal runs stay in the registry for
// status polling before the oldest are evicted.
const maxFinishedRuns = 100

// Manager is the in-memory run registry.
type Manager struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{runs: make(map[string]*Run)}
}

// Create registers a pending run. The ID must be unused.
func (m *Manager) Create(id, query, incidentID string, mode Mode) (*Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.runs[id]; exists {
		return nil, fmt.Errorf("run already registered: %s", id)
	}

	now := time.Now()
	run := &Run{
		id:         id,
		query:      query,
		incidentID: incidentID,
		mode:       mode,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
		subs:       make(map[int]chan events.Event),
	}
	m.runs[id] = run
	m.evictFinishedLocked()
	return run, nil
}

// Get returns a run, or nil when unknown.
func (m *Manager) Get(id string) *Run {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.runs[id]
}

// List returns run views, newest first.
func (m *Manager) List() []View {
	m.mu.RLock()
	runs := make([]*Run, 0, len(m.runs))
	for _, r := range m.runs {
		runs = append(runs, r)
	}
	m.mu.RUnlock()

	views := make([]View, len(runs))
	for i, r := range runs {
		views[i] = r.Snapshot()
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views
}

// Cancel cancels a run by ID. Returns false when the run is unknown or
// already terminal.
func (m *Manager) Cancel(id string) bool {
	run := m.Get(id)
	if run == nil {
		return false
	}
	return run.Cancel()
}

// Delete drops a run from the registry.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.runs, id)
}

// evictFinishedLocked drops the oldest terminal runs past the cap.
// Caller holds the write lock.
func (m *Manager) evictFinishedLocked() {
	var finished []*Run
	for _, r := range m.runs {
		if r.Snapshot().Status.Terminal() {
			finished = append(finished, r)
		}
	}
	if len(finished) <= maxFinishedRuns {
		return
	}
	sort.Slice(finished, func(i, j int) bool {
		return finished[i].createdAt.Before(finished[j].createdAt)
	})
	for _, r := range finished[:len(finished)-maxFinishedRuns] {
		delete(m.runs, r.id)
	}
}
