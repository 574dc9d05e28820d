package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/config"
	"github.com/rootline-ai/rootline/pkg/session"
)

// answeringLLM completes every chat immediately with a fixed answer.
type answeringLLM struct {
	answer string
}

func (a *answeringLLM) Chat(context.Context, *agent.ChatRequest) (*agent.ChatResponse, error) {
	return &agent.ChatResponse{Content: a.answer}, nil
}

// gatedLLM blocks every chat until released, honoring cancellation.
type gatedLLM struct {
	release chan struct{}
	once    sync.Once
}

func newGatedLLM() *gatedLLM {
	return &gatedLLM{release: make(chan struct{})}
}

func (g *gatedLLM) Chat(ctx context.Context, _ *agent.ChatRequest) (*agent.ChatResponse, error) {
	select {
	case <-g.release:
		return &agent.ChatResponse{Content: "done"}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *gatedLLM) Release() {
	g.once.Do(func() { close(g.release) })
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Initialize(context.Background(), "")
	require.NoError(t, err)
	cfg.Scratchpad.Dir = t.TempDir()
	return cfg
}

func newTestPool(t *testing.T, llm agent.LLMClient, opts Options) (*Pool, *session.Manager) {
	t.Helper()
	manager := session.NewManager()
	pool := NewPool(Deps{
		Config:  testConfig(t),
		LLM:     llm,
		Tools:   agent.NewRegistry(),
		Manager: manager,
	}, opts)
	return pool, manager
}

func waitForStatus(t *testing.T, manager *session.Manager, id string, want session.Status) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		run := manager.Get(id)
		if run != nil && run.Snapshot().Status == want {
			return
		}
		select {
		case <-deadline:
			var got session.Status
			if run != nil {
				got = run.Snapshot().Status
			}
			t.Fatalf("run %s never reached %s, last status %s", id, want, got)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestSubmitRunsAssistantToCompletion(t *testing.T) {
	pool, manager := newTestPool(t, &answeringLLM{answer: "all healthy"}, Options{Workers: 1})
	pool.Start(context.Background())
	defer pool.Stop()

	require.NoError(t, pool.Submit(Request{
		ID:    "run-1",
		Query: "is the checkout service healthy",
		Mode:  session.ModeAssistant,
	}))

	waitForStatus(t, manager, "run-1", session.StatusCompleted)
	assert.Equal(t, "all healthy", manager.Get("run-1").Snapshot().Answer)
}

func TestSubmitBeforeStart(t *testing.T) {
	pool, _ := newTestPool(t, &answeringLLM{}, Options{})
	err := pool.Submit(Request{ID: "r", Query: "q"})
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestSubmitRejectsDuplicateID(t *testing.T) {
	llm := newGatedLLM()
	defer llm.Release()
	pool, _ := newTestPool(t, llm, Options{Workers: 1})
	pool.Start(context.Background())
	defer pool.Stop()

	require.NoError(t, pool.Submit(Request{ID: "dup", Query: "q", Mode: session.ModeAssistant}))
	err := pool.Submit(Request{ID: "dup", Query: "q", Mode: session.ModeAssistant})
	assert.Error(t, err)
}

func TestSubmitFailsFastWhenQueueFull(t *testing.T) {
	llm := newGatedLLM()
	defer llm.Release()
	pool, manager := newTestPool(t, llm, Options{Workers: 1, QueueBound: 1})
	pool.Start(context.Background())
	defer pool.Stop()

	// First occupies the worker, second fills the queue.
	require.NoError(t, pool.Submit(Request{ID: "a", Query: "q", Mode: session.ModeAssistant}))
	waitForStatus(t, manager, "a", session.StatusRunning)
	require.NoError(t, pool.Submit(Request{ID: "b", Query: "q", Mode: session.ModeAssistant}))

	err := pool.Submit(Request{ID: "c", Query: "q", Mode: session.ModeAssistant})
	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Nil(t, manager.Get("c"), "rejected run must not linger in the registry")
}

func TestCancelThroughManagerStopsRun(t *testing.T) {
	llm := newGatedLLM()
	defer llm.Release()
	pool, manager := newTestPool(t, llm, Options{Workers: 1})
	pool.Start(context.Background())
	defer pool.Stop()

	require.NoError(t, pool.Submit(Request{ID: "slow", Query: "q", Mode: session.ModeAssistant}))
	waitForStatus(t, manager, "slow", session.StatusRunning)

	require.True(t, manager.Cancel("slow"))
	waitForStatus(t, manager, "slow", session.StatusCancelled)
}

func TestHealthReflectsLoad(t *testing.T) {
	llm := newGatedLLM()
	pool, manager := newTestPool(t, llm, Options{Workers: 1, QueueBound: 4})

	health := pool.Health()
	assert.False(t, health.Started)

	pool.Start(context.Background())
	defer pool.Stop()

	require.NoError(t, pool.Submit(Request{ID: "h1", Query: "q", Mode: session.ModeAssistant}))
	waitForStatus(t, manager, "h1", session.StatusRunning)

	health = pool.Health()
	assert.True(t, health.Started)
	assert.Equal(t, 1, health.ActiveRuns)
	assert.Equal(t, 1, health.Workers)

	llm.Release()
	waitForStatus(t, manager, "h1", session.StatusCompleted)
}

func TestStopAbandonsQueuedRequests(t *testing.T) {
	llm := newGatedLLM()
	pool, manager := newTestPool(t, llm, Options{Workers: 1, QueueBound: 2})
	pool.Start(context.Background())

	require.NoError(t, pool.Submit(Request{ID: "active", Query: "q", Mode: session.ModeAssistant}))
	waitForStatus(t, manager, "active", session.StatusRunning)
	require.NoError(t, pool.Submit(Request{ID: "queued", Query: "q", Mode: session.ModeAssistant}))

	pool.Stop()

	queued := manager.Get("queued").Snapshot()
	assert.Equal(t, session.StatusFailed, queued.Status)
	assert.Contains(t, queued.Error, "shut down")
}
