package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/toolcache"
)

func TestInvestigationLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.InvestigationStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.investigationsActive))

	m.InvestigationFinished("concluded", 3*time.Second)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.investigationsActive))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.investigationsFinished.WithLabelValues("concluded")))
}

func TestToolAndLLMCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ToolCall("logs-query", "ok", 120*time.Millisecond)
	m.ToolCall("logs-query", "error", 80*time.Millisecond)
	m.LLMCall("ok", time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("logs-query", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("logs-query", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.llmCalls.WithLabelValues("ok")))
}

func TestSyncCacheStatsRecordsDeltas(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	prev := toolcache.Stats{}
	prev = m.SyncCacheStats(prev, toolcache.Stats{Hits: 3, Misses: 5})
	assert.Equal(t, 3.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.cacheMisses))

	// Only the delta since the last sync is added.
	prev = m.SyncCacheStats(prev, toolcache.Stats{Hits: 4, Misses: 5})
	assert.Equal(t, 4.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.cacheMisses))
	require.Equal(t, int64(4), prev.Hits)
}
