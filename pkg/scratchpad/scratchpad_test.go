package scratchpad

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/summarizer"
)

func newTestPad(t *testing.T, opts ...Option) *Scratchpad {
	t.Helper()
	s, err := New(t.TempDir(), GenerateSessionID(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func toolCall(id, name string, args map[string]any) agent.ToolCall {
	if args == nil {
		args = map[string]any{}
	}
	return agent.ToolCall{ID: id, Name: name, Args: args}
}

func TestGenerateSessionIDMonotonic(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}-\d{3}Z-[0-9a-f]{6}$`)

	ids := make([]string, 20)
	for i := range ids {
		ids[i] = GenerateSessionID()
		assert.Regexp(t, pattern, ids[i])
	}

	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	assert.Equal(t, sorted, ids, "session IDs must sort in generation order")
}

func TestAppendAndReplay(t *testing.T) {
	dir := t.TempDir()
	sessionID := GenerateSessionID()

	s, err := New(dir, sessionID)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Append(ctx, Entry{Type: EntryInit, Content: "checkout latency spike"}))
	require.NoError(t, s.Append(ctx, Entry{Type: EntryThinking, Content: "checking recent deploys"}))

	resultID, err := s.AppendToolResult(ctx,
		toolCall("c1", "logs-query", map[string]any{"service": "checkout-api"}),
		map[string]any{"events": []any{"timeout"}},
		nil)
	require.NoError(t, err)
	assert.NotEmpty(t, resultID)
	require.NoError(t, s.Close())

	// Reopening with the same session ID restores the history.
	s2, err := New(dir, sessionID)
	require.NoError(t, err)
	defer s2.Close()

	entries := s2.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, EntryInit, entries[0].Type)
	assert.Equal(t, "checkout latency spike", entries[0].Content)

	results := s2.ToolResults()
	require.Len(t, results, 1)
	assert.Equal(t, resultID, results[0].ResultID)
	assert.Equal(t, TierFull, results[0].Tier)
	assert.Equal(t, 1, s2.ToolCallCount("logs-query"))
}

func TestAppendCancelledContext(t *testing.T) {
	s := newTestPad(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Append(ctx, Entry{Type: EntryThinking, Content: "x"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.Entries())
}

func TestBuildTieredContext(t *testing.T) {
	s := newTestPad(t)
	ctx := context.Background()

	full, err := s.AppendToolResult(ctx, toolCall("c1", "logs-query", nil),
		map[string]any{"events": []any{"timeout calling payments"}}, nil)
	require.NoError(t, err)

	compactID, err := s.AppendToolResult(ctx, toolCall("c2", "metrics-query", nil),
		map[string]any{"datapoints": []any{1.0, 2.0}},
		&summarizer.CompactToolResult{ResultID: "metrics-aaaa1111", Summary: "p99 elevated on checkout-api"})
	require.NoError(t, err)
	assert.Equal(t, "metrics-aaaa1111", compactID)

	clearedID, err := s.AppendToolResult(ctx, toolCall("c3", "inventory", nil),
		map[string]any{"hosts": []any{"a", "b"}}, nil)
	require.NoError(t, err)

	s.ApplyCompactionPlan(CompactionPlan{
		KeepFull:    []string{full},
		KeepCompact: []string{compactID},
		Clear:       []string{clearedID},
	})

	text := s.BuildTieredContext()
	assert.Contains(t, text, "["+full+"] logs-query (full)")
	assert.Contains(t, text, "timeout calling payments")
	assert.Contains(t, text, "p99 elevated on checkout-api")
	assert.Contains(t, text, "["+clearedID+"] inventory at ")
	assert.Contains(t, text, "get_full_result")
	// The cleared body must not appear in context.
	assert.NotContains(t, text, `"hosts"`)
}

func TestClearOldestToolResults(t *testing.T) {
	s := newTestPad(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := s.AppendToolResult(ctx, toolCall("c", "logs-query", map[string]any{"i": i}),
			map[string]any{"i": i}, nil)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	cleared := s.ClearOldestToolResults(2)
	assert.Equal(t, ids[:3], cleared)

	tiers := s.TieredResults()
	assert.Len(t, tiers[TierCleared], 3)
	assert.Len(t, tiers[TierFull], 2)

	// Idempotent: already-cleared results are not reported again.
	assert.Empty(t, s.ClearOldestToolResults(2))
}

func TestCompactionSynthesizesSummary(t *testing.T) {
	s := newTestPad(t)
	id, err := s.AppendToolResult(context.Background(), toolCall("c1", "logs-query", nil),
		map[string]any{"events": []any{"a", "b"}}, nil)
	require.NoError(t, err)

	s.ApplyCompactionPlan(CompactionPlan{KeepCompact: []string{id}})
	results := s.ToolResults()
	require.Len(t, results, 1)
	assert.Equal(t, TierCompact, results[0].Tier)
	require.NotNil(t, results[0].Compact)
	assert.Equal(t, id, results[0].Compact.ResultID)
}

func TestSnapshotServesClearedResults(t *testing.T) {
	s := newTestPad(t)
	body := map[string]any{"events": []any{"oom kill on checkout-api"}}
	id, err := s.AppendToolResult(context.Background(), toolCall("c1", "logs-query", nil), body, nil)
	require.NoError(t, err)
	s.ClearOldestToolResults(0)

	tool := NewFullResultTool()
	tool.Install(s.Snapshot())

	got, err := tool.Execute(context.Background(), map[string]any{"resultId": id})
	require.NoError(t, err)
	assert.Equal(t, body, got.(map[string]any)["result"])

	_, err = tool.Execute(context.Background(), map[string]any{"resultId": "nope-00000000"})
	assert.Error(t, err)
}

func TestFullResultToolRequiresSnapshot(t *testing.T) {
	tool := NewFullResultTool()
	_, err := tool.Execute(context.Background(), map[string]any{"resultId": "x"})
	assert.Error(t, err)
	_, err = tool.Execute(context.Background(), map[string]any{})
	assert.Error(t, err)
}

func TestCanCallToolCapWarning(t *testing.T) {
	s := newTestPad(t, WithToolLimits(map[string]int{"web-search": 2}))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		check := s.CanCallTool("web-search", map[string]any{"q": i})
		assert.True(t, check.Allowed)
		assert.Empty(t, check.Warning)
		_, err := s.AppendToolResult(ctx,
			toolCall("c", "web-search", map[string]any{"query": strings.Repeat("x", i+1)}),
			map[string]any{"hits": i}, nil)
		require.NoError(t, err)
	}

	check := s.CanCallTool("web-search", map[string]any{"q": "third"})
	assert.True(t, check.Allowed, "over-cap never blocks")
	assert.Contains(t, check.Warning, "suggested cap 2")
}

func TestCanCallToolRetryLoopWarning(t *testing.T) {
	s := newTestPad(t)
	args := map[string]any{"service": "checkout-api", "window": "15m", "filter": "ERROR"}

	_, err := s.AppendToolResult(context.Background(),
		toolCall("c1", "logs-query", args), map[string]any{"events": []any{}}, nil)
	require.NoError(t, err)

	check := s.CanCallTool("logs-query", args)
	assert.True(t, check.Allowed)
	assert.Contains(t, check.Warning, "possible retry loop")

	// Clearly different arguments do not trip the detector.
	check = s.CanCallTool("logs-query", map[string]any{"service": "payments-db", "window": "24h"})
	assert.Empty(t, check.Warning)
}
