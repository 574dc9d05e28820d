package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/events"
	"github.com/rootline-ai/rootline/pkg/queue"
	"github.com/rootline-ai/rootline/pkg/session"
)

func TestCancellationEndsRunWithDoneEvent(t *testing.T) {
	started := make(chan struct{})
	blocker := &agent.ToolFunc{
		ToolName: "inventory",
		ToolDesc: "blocks until cancelled",
		Fn: func(ctx context.Context, _ map[string]any) (any, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	llm := &scriptedLLM{responses: []agent.ChatResponse{
		toolCalls(agent.ToolCall{Name: "inventory", Args: map[string]any{}}),
	}}
	h := newHarness(t, llm, withTools(blocker))

	require.NoError(t, h.pool.Submit(queue.Request{
		ID:    "assist-cancel",
		Query: "inventory the checkout stack",
		Mode:  session.ModeAssistant,
	}))

	select {
	case <-started:
	case <-time.After(runTimeout):
		t.Fatal("blocking tool never started")
	}
	require.True(t, h.manager.Cancel("assist-cancel"))

	view, evs := h.await("assist-cancel")
	assert.Equal(t, session.StatusCancelled, view.Status)
	assert.Contains(t, view.Answer, "interrupted")

	types := typesOf(evs)
	require.NotEmpty(t, types)
	assert.Equal(t, events.TypeDone, types[len(types)-1], "cancelled streams still terminate")
}

func TestCancelUnknownOrFinishedRun(t *testing.T) {
	llm := &scriptedLLM{responses: []agent.ChatResponse{text("All quiet.")}}
	h := newHarness(t, llm)

	assert.False(t, h.manager.Cancel("never-submitted"))

	view, _ := h.run(queue.Request{
		ID: "assist-done", Query: "current state of checkout", Mode: session.ModeAssistant,
	})
	require.Equal(t, session.StatusCompleted, view.Status)
	assert.False(t, h.manager.Cancel("assist-done"), "terminal runs cannot be cancelled")
}
