package loop

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/events"
	"github.com/rootline-ai/rootline/pkg/executor"
	"github.com/rootline-ai/rootline/pkg/knowledge"
	"github.com/rootline-ai/rootline/pkg/models"
	"github.com/rootline-ai/rootline/pkg/scratchpad"
)

// scriptedLLM replays canned responses and records the requests it saw.
type scriptedLLM struct {
	mu        sync.Mutex
	responses []*agent.ChatResponse
	requests  []*agent.ChatRequest
}

func (s *scriptedLLM) Chat(_ context.Context, req *agent.ChatRequest) (*agent.ChatResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	i := len(s.requests) - 1
	if i >= len(s.responses) {
		return &agent.ChatResponse{Content: "no further findings"}, nil
	}
	return s.responses[i], nil
}

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *scriptedLLM) request(i int) *agent.ChatRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[i]
}

// countingTool records how many times it executed.
type countingTool struct {
	name   string
	result any
	mu     sync.Mutex
	calls  int
}

func (t *countingTool) Name() string             { return t.name }
func (t *countingTool) Description() string      { return t.name }
func (t *countingTool) Schema() agent.ToolSchema { return agent.ToolSchema{} }

func (t *countingTool) Execute(context.Context, map[string]any) (any, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls++
	return t.result, nil
}

func (t *countingTool) callCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls
}

func newTestLoop(t *testing.T, llm agent.LLMClient, opts Options, extra ...agent.Tool) (*Loop, *events.Collector, *scratchpad.Scratchpad) {
	t.Helper()
	collector := events.NewCollector()
	emitter := events.NewEmitter()
	emitter.Subscribe(collector.Handler())

	pad, err := scratchpad.New(t.TempDir(), scratchpad.GenerateSessionID())
	require.NoError(t, err)
	t.Cleanup(func() { pad.Close() })

	tools := agent.NewRegistry()
	for _, tool := range extra {
		tools.Register(tool)
	}

	l := New(Deps{
		LLM:        llm,
		Tools:      tools,
		Executor:   executor.New(executor.Config{MaxConcurrent: 2}),
		Emitter:    emitter,
		Scratchpad: pad,
	}, opts)
	return l, collector, pad
}

func toolCallResponse(calls ...agent.ToolCall) *agent.ChatResponse {
	return &agent.ChatResponse{ToolCalls: calls}
}

func TestRunAnswersAfterToolCalls(t *testing.T) {
	logs := &countingTool{name: "logs-query", result: map[string]any{
		"events": []any{map[string]any{"message": "connection refused"}},
	}}
	llm := &scriptedLLM{responses: []*agent.ChatResponse{
		toolCallResponse(agent.ToolCall{ID: "c1", Name: "logs-query", Args: map[string]any{"filter": "ERROR"}}),
		{Content: "The service is refusing connections."},
	}}
	l, collector, pad := newTestLoop(t, llm, Options{}, logs)

	answer, err := l.Run(context.Background(), "why are requests failing")
	require.NoError(t, err)
	assert.Equal(t, "The service is refusing connections.", answer)
	assert.Equal(t, 1, logs.callCount())

	types := collector.Types()
	assert.Equal(t, events.TypeInit, types[0])
	assert.Equal(t, events.TypeDone, types[len(types)-1])
	assert.Contains(t, types, events.TypeToolStart)
	assert.Contains(t, types, events.TypeToolEnd)
	assert.Contains(t, types, events.TypeAnswerStart)

	require.Len(t, pad.ToolResults(), 1)
	assert.Equal(t, "logs-query", pad.ToolResults()[0].Tool)

	// The second iteration saw the first result in its tiered context.
	secondReq := llm.request(1)
	assert.Contains(t, secondReq.User, "connection refused")
}

func TestRunProceduralQueryShortCircuitsToKnowledge(t *testing.T) {
	llm := &scriptedLLM{responses: []*agent.ChatResponse{
		{Content: "Fail over by promoting the replica, then update the DNS record."},
	}}
	l, collector, _ := newTestLoop(t, llm, Options{})
	l.knowledge = knowledge.RetrieverFunc(func(context.Context, models.KnowledgeQuery) (*models.KnowledgeBundle, error) {
		return &models.KnowledgeBundle{
			Runbooks: []models.KnowledgeItem{{
				Title:     "Database failover runbook",
				Content:   "Promote the replica.",
				SourceURL: "https://wiki.internal/runbooks/db-failover",
			}},
		}, nil
	})

	answer, err := l.Run(context.Background(), "runbook for database failover")
	require.NoError(t, err)
	assert.Contains(t, answer, "promoting the replica")
	assert.Contains(t, answer, "Sources:")
	assert.Contains(t, answer, "https://wiki.internal/runbooks/db-failover")

	require.Equal(t, 1, llm.callCount())
	assert.Nil(t, llm.request(0).Tools, "knowledge-only answers must not offer tools")

	types := collector.Types()
	assert.Contains(t, types, events.TypeKnowledgeRetrieved)
	assert.NotContains(t, types, events.TypeToolStart)
	assert.Equal(t, events.TypeDone, types[len(types)-1])
}

func TestRunSkipsRepetitiveCalls(t *testing.T) {
	logs := &countingTool{name: "logs-query", result: map[string]any{"events": []any{}}}
	sameCall := agent.ToolCall{Name: "logs-query", Args: map[string]any{"filter": "ERROR"}}
	llm := &scriptedLLM{responses: []*agent.ChatResponse{
		toolCallResponse(sameCall),
		toolCallResponse(sameCall),
		toolCallResponse(sameCall),
		{Content: "giving up on the logs"},
	}}
	l, collector, pad := newTestLoop(t, llm, Options{}, logs)

	answer, err := l.Run(context.Background(), "what is in the error logs")
	require.NoError(t, err)
	assert.Equal(t, "giving up on the logs", answer)
	assert.Equal(t, 2, logs.callCount(), "the third identical call must not execute")

	var limited bool
	for _, ev := range collector.Events() {
		if ev.Type == events.TypeToolLimit {
			limited = true
		}
	}
	assert.True(t, limited)

	// The skip leaves an error result so the model sees why.
	results := pad.ToolResults()
	require.Len(t, results, 3)
	last, ok := results[2].Full.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "skipping repetitive tool call", last["error"])
}

func TestRunForcedConclusionAtIterationLimit(t *testing.T) {
	inventory := &countingTool{name: "inventory", result: map[string]any{"instances": []any{}}}
	llm := &scriptedLLM{responses: []*agent.ChatResponse{
		toolCallResponse(agent.ToolCall{Name: "inventory", Args: map[string]any{"page": 1.0}}),
		toolCallResponse(agent.ToolCall{Name: "inventory", Args: map[string]any{"page": 2.0}}),
		{Content: "Best guess: the fleet is undersized."},
	}}
	l, collector, _ := newTestLoop(t, llm, Options{MaxIterations: 2}, inventory)

	answer, err := l.Run(context.Background(), "is anything wrong with the fleet")
	require.NoError(t, err)
	assert.Equal(t, "Best guess: the fleet is undersized.", answer)
	assert.Equal(t, 3, llm.callCount(), "two iterations plus the forced wrap-up")
	assert.Nil(t, llm.request(2).Tools, "the wrap-up call must not offer tools")
	assert.Equal(t, events.TypeDone, collector.Types()[len(collector.Types())-1])
}

func TestRunCompactsContextPastThreshold(t *testing.T) {
	logs := &countingTool{name: "logs-query", result: map[string]any{
		"events": []any{map[string]any{
			"message": "a moderately long log line that contributes a meaningful number of context tokens to the rendering",
		}},
	}}
	firstBatch := make([]agent.ToolCall, 4)
	for i := range firstBatch {
		firstBatch[i] = agent.ToolCall{Name: "logs-query", Args: map[string]any{"page": float64(i)}}
	}
	secondBatch := make([]agent.ToolCall, 3)
	for i := range secondBatch {
		secondBatch[i] = agent.ToolCall{Name: "logs-query", Args: map[string]any{"page": float64(i + 10)}}
	}
	llm := &scriptedLLM{responses: []*agent.ChatResponse{
		toolCallResponse(firstBatch...),
		toolCallResponse(secondBatch...),
		{Content: "done"},
	}}
	l, collector, pad := newTestLoop(t, llm, Options{ContextThresholdTokens: 30}, logs)

	_, err := l.Run(context.Background(), "scan the logs")
	require.NoError(t, err)

	// Seven results, keep the most recent five: the two oldest get cleared.
	cleared := pad.TieredResults()[scratchpad.TierCleared]
	assert.Len(t, cleared, 2)

	var payload events.ContextClearedPayload
	for _, ev := range collector.Events() {
		if ev.Type == events.TypeContextCleared {
			payload = ev.Payload.(events.ContextClearedPayload)
		}
	}
	assert.Equal(t, 2, payload.Cleared)
}

func TestRunGetFullResultServesClearedBodies(t *testing.T) {
	big := &countingTool{name: "metrics-query", result: map[string]any{
		"datapoints": []any{map[string]any{"value": 99.5}},
		"note":       "padding text so the rendered context comfortably exceeds the tiny threshold used by this test",
	}}
	var drilled any
	llm := &scriptedLLM{responses: nil}
	l, _, pad := newTestLoop(t, llm, Options{ContextThresholdTokens: 1}, big)

	// Seed six results directly so the first clear pass demotes one.
	for i := 0; i < 6; i++ {
		call := agent.ToolCall{ID: fmt.Sprintf("c%d", i), Name: "metrics-query", Args: map[string]any{"page": float64(i)}}
		_, err := pad.AppendToolResult(context.Background(), call, big.result, nil)
		require.NoError(t, err)
	}
	pad.ClearOldestToolResults(1)

	clearedID := pad.ToolResults()[0].ResultID
	l.fullResult.Install(pad.Snapshot())
	drilled, err := l.fullResult.Execute(context.Background(), map[string]any{"resultId": clearedID})
	require.NoError(t, err)

	body, ok := drilled.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, clearedID, body["resultId"])
	assert.NotNil(t, body["result"], "cleared results remain retrievable by ID")
}
