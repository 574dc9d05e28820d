package orchestrator

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/events"
	"github.com/rootline-ai/rootline/pkg/executor"
	"github.com/rootline-ai/rootline/pkg/models"
	"github.com/rootline-ai/rootline/pkg/scratchpad"
	"github.com/rootline-ai/rootline/pkg/toolcache"
)

// scriptedLLM returns canned responses in call order.
type scriptedLLM struct {
	mu        sync.Mutex
	responses []string
	calls     int
}

func (s *scriptedLLM) Chat(_ context.Context, _ *agent.ChatRequest) (*agent.ChatResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	if i >= len(s.responses) {
		return &agent.ChatResponse{}, nil
	}
	return &agent.ChatResponse{Content: s.responses[i]}, nil
}

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func staticTool(name string, result any) agent.Tool {
	return &agent.ToolFunc{
		ToolName: name,
		ToolDesc: name + " test tool",
		Fn: func(context.Context, map[string]any) (any, error) {
			return result, nil
		},
	}
}

const triageResponse = `{
	"summary": "Checkout latency elevated",
	"affectedServices": ["checkout-api"],
	"symptoms": ["latency"],
	"severity": "high",
	"timeWindow": {"start": "2026-08-24T10:00:00Z", "end": "2026-08-24T11:00:00Z"}
}`

const hypothesesResponse = `[
	{"statement": "connection pool exhaustion in the checkout-api database", "category": "capacity", "priority": 1},
	{"statement": "recent deploy caused a regression", "category": "application", "priority": 3}
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

func newTestDeps(t *testing.T, llm agent.LLMClient) (Deps, *events.Collector, *scratchpad.Scratchpad) {
	t.Helper()
	collector := events.NewCollector()
	emitter := events.NewEmitter()
	emitter.Subscribe(collector.Handler())

	pad, err := scratchpad.New(t.TempDir(), scratchpad.GenerateSessionID())
	require.NoError(t, err)
	t.Cleanup(func() { pad.Close() })

	tools := agent.NewRegistry()
	tools.Register(staticTool("metrics-query", map[string]any{
		"datapoints": []any{map[string]any{"value": 98.0, "timestamp": "2026-08-24T10:02:00Z"}},
	}))
	tools.Register(staticTool("logs-query", map[string]any{
		"events": []any{map[string]any{"message": "connection pool exhausted", "timestamp": "2026-08-24T10:03:00Z"}},
	}))

	return Deps{
		LLM:        llm,
		Tools:      tools,
		Executor:   executor.New(executor.Config{MaxConcurrent: 2}),
		Emitter:    emitter,
		Cache:      toolcache.New(),
		Scratchpad: pad,
	}, collector, pad
}

func TestRunConfirmsHypothesisAndConcludes(t *testing.T) {
	llm := &scriptedLLM{responses: []string{
		triageResponse, hypothesesResponse, confirmResponse, conclusionResponse,
	}}
	deps, collector, pad := newTestDeps(t, llm)
	o := New(deps, Options{})

	result, err := o.Run(context.Background(), "why is checkout latency elevated", "INC-42", "")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "connection pool exhaustion in checkout-api", result.RootCause)
	assert.Equal(t, models.ConfidenceHigh, result.Confidence)
	// unrelated-svc was never seen by triage and is dropped.
	assert.Equal(t, []string{"checkout-api"}, result.AffectedServices)
	assert.Equal(t, 4, llm.callCount(), "triage, hypotheses, one evaluation, conclusion")

	types := collector.Types()
	require.NotEmpty(t, types)
	assert.Equal(t, events.TypeInit, types[0])
	assert.Equal(t, events.TypeDone, types[len(types)-1])
	assert.Contains(t, types, events.TypeTriageComplete)
	assert.Contains(t, types, events.TypeHypothesisFormed)
	assert.Contains(t, types, events.TypeEvidenceGathered)
	assert.Contains(t, types, events.TypeHypothesisConfirmed)
	assert.Contains(t, types, events.TypeConclusionReached)

	// Tool results were logged durably.
	assert.NotEmpty(t, pad.ToolResults())
	entries := pad.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, scratchpad.EntryInit, entries[0].Type)
}

func TestRunConfirmedHypothesisStopsTheLoop(t *testing.T) {
	llm := &scriptedLLM{responses: []string{
		triageResponse, hypothesesResponse, confirmResponse, conclusionResponse,
	}}
	deps, _, _ := newTestDeps(t, llm)
	o := New(deps, Options{MaxIterations: 10})

	collected := make(chan *models.InvestigationResult, 1)
	deps.Emitter.Subscribe(func(ev events.Event) {
		if ev.Type == events.TypeDone {
			collected <- ev.Payload.(events.DonePayload).Result
		}
	})

	result, err := o.Run(context.Background(), "why is checkout latency elevated", "", "")
	require.NoError(t, err)

	// h_2 was never evaluated: the first confirm short-circuits.
	assert.Equal(t, 4, llm.callCount())
	assert.Equal(t, result, <-collected, "done event carries the returned result")
}

func TestRunSurvivesUnparseableResponses(t *testing.T) {
	llm := &scriptedLLM{responses: []string{
		"no json here", "still no json",
		"nope", "nope",
		"nothing", "nothing",
	}}
	deps, collector, _ := newTestDeps(t, llm)
	o := New(deps, Options{})

	result, err := o.Run(context.Background(), "what broke", "", "")
	require.NoError(t, err)
	require.NotNil(t, result)

	// Triage fell back to the query, hypothesis generation produced nothing,
	// and the conclusion fell back to the inconclusive sentinel.
	assert.Equal(t, "not determined", result.RootCause)
	assert.Equal(t, models.ConfidenceLow, result.Confidence)

	types := collector.Types()
	assert.Equal(t, events.TypeDone, types[len(types)-1], "failed runs still terminate the stream")
	assert.Contains(t, types, events.TypeError)
}

func TestRunCancelledContextStillEmitsDone(t *testing.T) {
	llm := &scriptedLLM{}
	deps, collector, _ := newTestDeps(t, llm)
	o := New(deps, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := o.Run(ctx, "what broke", "", "")
	require.Error(t, err)
	require.NotNil(t, result)

	types := collector.Types()
	require.NotEmpty(t, types)
	assert.Equal(t, events.TypeDone, types[len(types)-1])
}

func TestRunRemediationExecutesSkillSteps(t *testing.T) {
	remediationResponse := `{
		"summary": "Recycle the pool and raise the cap",
		"steps": [
			{"action": "restart checkout-api", "riskLevel": "low",
			 "command": "kubectl rollout restart deploy/checkout-api",
			 "matchingSkill": "restart-service"},
			{"action": "raise pool max from 20 to 50", "riskLevel": "medium",
			 "command": "psql -c 'ALTER SYSTEM ...'"}
		]
	}`
	llm := &scriptedLLM{responses: []string{
		triageResponse, hypothesesResponse, confirmResponse, conclusionResponse, remediationResponse,
	}}
	deps, collector, _ := newTestDeps(t, llm)

	var skillMu sync.Mutex
	var skillCalls []map[string]any
	deps.Tools.Register(&agent.ToolFunc{
		ToolName: "skill",
		ToolDesc: "named skill runner",
		Fn: func(_ context.Context, args map[string]any) (any, error) {
			skillMu.Lock()
			skillCalls = append(skillCalls, args)
			skillMu.Unlock()
			return map[string]any{"status": "ok"}, nil
		},
	})

	o := New(deps, Options{EnableRemediation: true, AutoApproveRemediation: true})
	result, err := o.Run(context.Background(), "why is checkout latency elevated", "", "")
	require.NoError(t, err)
	require.NotNil(t, result.RemediationPlan)
	require.Len(t, result.RemediationPlan.Steps, 2)

	first := result.RemediationPlan.Steps[0]
	assert.Equal(t, models.StepCompleted, first.Status)
	require.Len(t, skillCalls, 1)
	assert.Equal(t, "restart-service", skillCalls[0]["name"])

	// A raw command with no matching skill is never executed here.
	second := result.RemediationPlan.Steps[1]
	assert.Equal(t, models.StepPending, second.Status)
	assert.Equal(t, "manual execution required", second.Result)

	assert.Contains(t, collector.Types(), events.TypeRemediationStarted)
	assert.Contains(t, collector.Types(), events.TypeStepCompleted)
}

func TestRunRemediationRequiresApproval(t *testing.T) {
	remediationResponse := `{
		"steps": [
			{"action": "rollback deploy", "riskLevel": "high",
			 "command": "kubectl rollout undo deploy/checkout-api",
			 "matchingSkill": "rollback"}
		]
	}`
	llm := &scriptedLLM{responses: []string{
		triageResponse, hypothesesResponse, confirmResponse, conclusionResponse, remediationResponse,
	}}
	deps, _, _ := newTestDeps(t, llm)
	deps.Tools.Register(staticTool("skill", map[string]any{"status": "ok"}))

	denied := 0
	o := New(deps, Options{
		EnableRemediation: true,
		ApproveStep: func(_ context.Context, step models.RemediationStep) bool {
			denied++
			return false
		},
	})

	result, err := o.Run(context.Background(), "why is checkout latency elevated", "", "")
	require.NoError(t, err)
	require.NotNil(t, result.RemediationPlan)

	assert.Equal(t, 1, denied)
	step := result.RemediationPlan.Steps[0]
	assert.Equal(t, models.StepPending, step.Status)
	assert.Equal(t, "awaiting approval", step.Result)
}

func TestRunWithoutRemediationSkipsPlanning(t *testing.T) {
	llm := &scriptedLLM{responses: []string{
		triageResponse, hypothesesResponse, confirmResponse, conclusionResponse,
	}}
	deps, _, _ := newTestDeps(t, llm)
	o := New(deps, Options{})

	result, err := o.Run(context.Background(), "why is checkout latency elevated", "", "")
	require.NoError(t, err)
	assert.Nil(t, result.RemediationPlan)
	assert.Equal(t, 4, llm.callCount())
}
