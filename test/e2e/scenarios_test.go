package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/config"
	"github.com/rootline-ai/rootline/pkg/events"
	"github.com/rootline-ai/rootline/pkg/knowledge"
	"github.com/rootline-ai/rootline/pkg/models"
	"github.com/rootline-ai/rootline/pkg/queue"
	"github.com/rootline-ai/rootline/pkg/session"
)

const triageResponse = `{
	"summary": "Checkout latency elevated",
	"affectedServices": ["checkout-api"],
	"symptoms": ["latency"],
	"severity": "high",
	"timeWindow": {"start": "2026-08-24T10:00:00Z", "end": "2026-08-24T11:00:00Z"}
}`

const hypothesesResponse = `[
	{"statement": "connection pool exhaustion in the checkout-api database", "category": "capacity", "priority": 1}
]`

const confirmResponse = `{
	"evidenceStrength": "strong",
	"confidence": 90,
	"action": "confirm",
	"findings": ["pool pinned at max connections", "timeouts correlate with pool saturation"]
}`

const conclusionResponse = `{
	"rootCause": "connection pool exhaustion in checkout-api",
	"confidence": "high",
	"confirmedHypothesisId": "h_1",
	"affectedServices": ["checkout-api", "unrelated-svc"],
	"evidenceChain": [
		{"finding": "pool pinned at max connections", "source": "h_1", "strength": "strong"}
	]
}`

func runbookRetriever() knowledge.Retriever {
	return knowledge.RetrieverFunc(func(context.Context, models.KnowledgeQuery) (*models.KnowledgeBundle, error) {
		return &models.KnowledgeBundle{
			Runbooks: []models.KnowledgeItem{{
				ID:        "rb-1",
				Title:     "Redis Connection Exhaustion",
				Content:   "Recycle the client pool, then raise maxclients.",
				Type:      models.KnowledgeRunbook,
				SourceURL: "https://kb.example.com/runbooks/redis-connections",
			}},
		}, nil
	})
}

func TestProceduralQuestionAnsweredWithoutTools(t *testing.T) {
	llm := &scriptedLLM{responses: []agent.ChatResponse{
		text("Recycle the client pool, then raise maxclients as the runbook describes."),
	}}
	tool, executions := countingTool("metrics-query", map[string]any{"datapoints": []any{}})
	h := newHarness(t, llm, withTools(tool), withKnowledge(runbookRetriever()))

	view, evs := h.run(queue.Request{
		ID:    "assist-1",
		Query: "How do I fix Redis connection timeouts?",
		Mode:  session.ModeAssistant,
	})

	assert.Equal(t, session.StatusCompleted, view.Status)
	assert.Equal(t, 1, llm.callCount(), "one knowledge-only call, no iterations")
	assert.Zero(t, executions.Load(), "procedural answers never touch tools")
	assert.Empty(t, toolStarts(evs))

	require.Contains(t, view.Answer, "runbook describes")
	assert.Contains(t, view.Answer, "\n\nSources:\n- https://kb.example.com/runbooks/redis-connections")

	types := typesOf(evs)
	require.NotEmpty(t, types)
	assert.Equal(t, events.TypeInit, types[0])
	assert.Equal(t, events.TypeDone, types[len(types)-1])
	assert.Contains(t, types, events.TypeKnowledgeRetrieved)
	assert.Contains(t, types, events.TypeAnswerStart)
}

func TestInvestigationConfirmsRootCause(t *testing.T) {
	llm := &scriptedLLM{responses: []agent.ChatResponse{
		text(triageResponse), text(hypothesesResponse), text(confirmResponse), text(conclusionResponse),
	}}
	h := newHarness(t, llm, withTools(
		staticTool("alarms-query", map[string]any{
			"alarms": []any{map[string]any{"name": "checkout-api-latency", "state": "ALARM"}},
		}),
		staticTool("metrics-query", map[string]any{
			"datapoints": []any{map[string]any{"value": 98.0, "timestamp": "2026-08-24T10:02:00Z"}},
		}),
		staticTool("logs-query", map[string]any{
			"events": []any{map[string]any{"message": "connection pool exhausted", "timestamp": "2026-08-24T10:03:00Z"}},
		}),
		staticTool("inventory", map[string]any{
			"resources": []any{map[string]any{"name": "checkout-api", "type": "service"}},
		}),
	))

	view, evs := h.run(queue.Request{
		ID:         "inv-1",
		Query:      "why is checkout latency elevated",
		IncidentID: "PD-12345",
	})

	assert.Equal(t, session.StatusCompleted, view.Status)
	require.NotNil(t, view.Result)
	assert.Equal(t, "connection pool exhaustion in checkout-api", view.Result.RootCause)
	assert.Equal(t, models.ConfidenceHigh, view.Result.Confidence)
	// unrelated-svc was never seen by triage and is dropped from the
	// conclusion's service list.
	assert.Equal(t, []string{"checkout-api"}, view.Result.AffectedServices)
	assert.Equal(t, 4, llm.callCount(), "triage, hypotheses, one evaluation, conclusion")

	types := typesOf(evs)
	require.NotEmpty(t, types)
	assert.Equal(t, events.TypeInit, types[0])
	assert.Equal(t, events.TypeDone, types[len(types)-1])
	assert.Contains(t, types, events.TypeTriageComplete)
	assert.Contains(t, types, events.TypeHypothesisFormed)
	assert.Contains(t, types, events.TypeToolStart)
	assert.Contains(t, types, events.TypeHypothesisConfirmed)
	assert.Contains(t, types, events.TypeConclusionReached)

	// The planner sent the pool hypothesis to logs and db metrics.
	started := make(map[string]bool)
	for _, p := range toolStarts(evs) {
		started[p.Tool] = true
	}
	assert.True(t, started["logs-query"])
	assert.True(t, started["metrics-query"])
}

func TestQueriesFallBackWhenPreferredToolsAbsent(t *testing.T) {
	llm := &scriptedLLM{responses: []agent.ChatResponse{
		text(triageResponse), text(hypothesesResponse), text(confirmResponse), text(conclusionResponse),
	}}
	// No metrics-query and no logs-query: the pool hypothesis's preferred
	// tools are both missing.
	h := newHarness(t, llm, withTools(
		staticTool("alarms-query", map[string]any{
			"alarms": []any{map[string]any{"name": "db-connections-max", "state": "ALARM"}},
		}),
		staticTool("inventory", map[string]any{
			"resources": []any{map[string]any{"name": "checkout-db", "type": "database"}},
		}),
	))

	view, evs := h.run(queue.Request{
		ID:    "inv-2",
		Query: "why is checkout latency elevated",
	})

	assert.Equal(t, session.StatusCompleted, view.Status)

	// Every planned query landed on a registered tool; nothing was aimed at
	// an absent one.
	available := map[string]bool{"alarms-query": true, "inventory": true}
	starts := toolStarts(evs)
	require.NotEmpty(t, starts)
	fellBack := false
	for _, p := range starts {
		assert.True(t, available[p.Tool], "query dispatched to unregistered tool %s", p.Tool)
		if p.Tool == "alarms-query" || p.Tool == "inventory" {
			fellBack = true
		}
	}
	assert.True(t, fellBack)

	for _, p := range toolErrors(evs) {
		assert.NotContains(t, p.Error, "unknown tool")
	}
}

func TestSlowCallTimesOutWithoutStallingTheBatch(t *testing.T) {
	slow := &agent.ToolFunc{
		ToolName: "slow-scan",
		ToolDesc: "slow-scan fake",
		Fn: func(ctx context.Context, _ map[string]any) (any, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(2 * time.Second):
				return map[string]any{"status": "done"}, nil
			}
		},
	}
	llm := &scriptedLLM{responses: []agent.ChatResponse{
		toolCalls(
			agent.ToolCall{ID: "c1", Name: "metrics-query", Args: map[string]any{"metric": "latency_p99"}},
			agent.ToolCall{ID: "c2", Name: "logs-query", Args: map[string]any{"filter": "ERROR"}},
			agent.ToolCall{ID: "c3", Name: "slow-scan", Args: map[string]any{"depth": "full"}},
		),
		text("Latency spikes line up with the error burst; the deep scan did not finish in time."),
	}}
	h := newHarness(t, llm,
		withTools(
			staticTool("metrics-query", map[string]any{"datapoints": []any{map[string]any{"value": 98.0}}}),
			staticTool("logs-query", map[string]any{"events": []any{map[string]any{"message": "ERROR timeout"}}}),
			slow,
		),
		withConfig(func(cfg *config.Config) {
			cfg.Parallel.Timeout = "100ms"
		}),
	)

	view, evs := h.run(queue.Request{
		ID:    "assist-2",
		Query: "what is behind the checkout latency spike",
		Mode:  session.ModeAssistant,
	})

	assert.Equal(t, session.StatusCompleted, view.Status, "one timed-out call does not fail the run")

	errs := toolErrors(evs)
	require.Len(t, errs, 1)
	assert.Equal(t, "slow-scan", errs[0].Tool)
	assert.True(t, errs[0].TimedOut)

	ends := toolEnds(evs)
	ended := make(map[string]bool)
	for _, p := range ends {
		ended[p.Tool] = true
	}
	assert.True(t, ended["metrics-query"], "fast calls complete despite the slow sibling")
	assert.True(t, ended["logs-query"])
}

func TestRepeatedCallServedFromCache(t *testing.T) {
	call := agent.ToolCall{Name: "metrics-query", Args: map[string]any{
		"metric": "latency_p99", "service": "checkout-api",
	}}
	llm := &scriptedLLM{responses: []agent.ChatResponse{
		toolCalls(call),
		toolCalls(call),
		text("p99 latency is pinned at 980ms for checkout-api."),
	}}
	tool, executions := countingTool("metrics-query", map[string]any{
		"datapoints": []any{map[string]any{"value": 980.0}},
	})
	h := newHarness(t, llm, withTools(tool))

	view, evs := h.run(queue.Request{
		ID:    "assist-3",
		Query: "what does checkout latency look like right now",
		Mode:  session.ModeAssistant,
	})

	assert.Equal(t, session.StatusCompleted, view.Status)
	assert.Equal(t, int64(1), executions.Load(), "second identical call never reaches the tool")

	var fromCache int
	for _, p := range toolEnds(evs) {
		if p.FromCache {
			fromCache++
		}
	}
	assert.Equal(t, 1, fromCache)
	assert.Len(t, toolStarts(evs), 1, "cache hits skip the start event")
}

func TestRepetitiveCallsAreSkipped(t *testing.T) {
	call := agent.ToolCall{Name: "logs-query", Args: map[string]any{"filter": "ERROR"}}
	llm := &scriptedLLM{responses: []agent.ChatResponse{
		toolCalls(call), toolCalls(call), toolCalls(call), toolCalls(call),
		text("The same error filter keeps coming back empty; nothing more to learn there."),
	}}
	tool, executions := countingTool("logs-query", map[string]any{"events": []any{}})
	h := newHarness(t, llm,
		withTools(tool),
		withConfig(func(cfg *config.Config) {
			// Cache off so every permitted repeat actually executes.
			cfg.Cache.Enabled = boolPtr(false)
		}),
	)

	view, evs := h.run(queue.Request{
		ID:    "assist-4",
		Query: "are there application errors during the incident window",
		Mode:  session.ModeAssistant,
	})

	assert.Equal(t, session.StatusCompleted, view.Status)
	assert.Equal(t, int64(2), executions.Load(), "third and fourth identical calls are skipped")

	limits := toolLimits(evs)
	require.Len(t, limits, 2)
	assert.Equal(t, "logs-query", limits[0].Tool)
	assert.Contains(t, limits[0].Warning, "identical arguments")

	var skips int
	for _, p := range toolErrors(evs) {
		if p.Error == "skipping repetitive tool call" {
			skips++
		}
	}
	assert.Equal(t, 2, skips)
}

func TestConcurrentRunsKeepIndependentStreams(t *testing.T) {
	llm := &scriptedLLM{responses: []agent.ChatResponse{
		text("All quiet."), text("All quiet."),
	}}
	h := newHarness(t, llm)

	require.NoError(t, h.pool.Submit(queue.Request{
		ID: "assist-5", Query: "current state of checkout", Mode: session.ModeAssistant,
	}))
	require.NoError(t, h.pool.Submit(queue.Request{
		ID: "assist-6", Query: "current state of payments", Mode: session.ModeAssistant,
	}))

	viewA, evsA := h.await("assist-5")
	viewB, evsB := h.await("assist-6")

	assert.Equal(t, session.StatusCompleted, viewA.Status)
	assert.Equal(t, session.StatusCompleted, viewB.Status)

	for _, evs := range [][]events.Event{evsA, evsB} {
		types := typesOf(evs)
		require.NotEmpty(t, types)
		assert.Equal(t, events.TypeInit, types[0])
		assert.Equal(t, events.TypeDone, types[len(types)-1])
	}

	initA := evsA[0].Payload.(events.InitPayload)
	initB := evsB[0].Payload.(events.InitPayload)
	assert.NotEqual(t, initA.InvestigationID, initB.InvestigationID)
}
