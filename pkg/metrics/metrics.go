// Package metrics exposes the engine's Prometheus collectors. One Metrics
// value is wired at startup and shared; all methods are safe for
// concurrent use.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rootline-ai/rootline/pkg/toolcache"
)

// Metrics holds the engine collectors, registered against one registry.
type Metrics struct {
	investigationsStarted  prometheus.Counter
	investigationsFinished *prometheus.CounterVec
	investigationsActive   prometheus.Gauge
	investigationDuration  prometheus.Histogram

	toolCalls    *prometheus.CounterVec
	toolDuration *prometheus.HistogramVec

	llmCalls    *prometheus.CounterVec
	llmDuration prometheus.Histogram

	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter

	contextCompactions prometheus.Counter
}

// New creates and registers the collectors. Pass prometheus.DefaultRegisterer
// in production; tests use a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		investigationsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rootline_investigations_started_total",
			Help: "Investigations started.",
		}),
		investigationsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rootline_investigations_finished_total",
			Help: "Investigations finished, by outcome.",
		}, []string{"outcome"}),
		investigationsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rootline_investigations_active",
			Help: "Investigations currently running.",
		}),
		investigationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rootline_investigation_duration_seconds",
			Help:    "End-to-end investigation duration.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rootline_tool_calls_total",
			Help: "Tool executions, by tool and status.",
		}, []string{"tool", "status"}),
		toolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rootline_tool_duration_seconds",
			Help:    "Tool execution latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"tool"}),
		llmCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rootline_llm_calls_total",
			Help: "LLM calls, by status.",
		}, []string{"status"}),
		llmDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rootline_llm_call_duration_seconds",
			Help:    "LLM call latency.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rootline_tool_cache_hits_total",
			Help: "Tool cache hits.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rootline_tool_cache_misses_total",
			Help: "Tool cache misses.",
		}),
		contextCompactions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rootline_context_compactions_total",
			Help: "Context compaction passes.",
		}),
	}
	reg.MustRegister(
		m.investigationsStarted, m.investigationsFinished, m.investigationsActive,
		m.investigationDuration, m.toolCalls, m.toolDuration,
		m.llmCalls, m.llmDuration, m.cacheHits, m.cacheMisses,
		m.contextCompactions,
	)
	return m
}

// InvestigationStarted marks a run entering execution.
func (m *Metrics) InvestigationStarted() {
	m.investigationsStarted.Inc()
	m.investigationsActive.Inc()
}

// InvestigationFinished marks a run leaving execution.
func (m *Metrics) InvestigationFinished(outcome string, duration time.Duration) {
	m.investigationsFinished.WithLabelValues(outcome).Inc()
	m.investigationsActive.Dec()
	m.investigationDuration.Observe(duration.Seconds())
}

// ToolCall records one tool execution.
func (m *Metrics) ToolCall(tool, status string, duration time.Duration) {
	m.toolCalls.WithLabelValues(tool, status).Inc()
	m.toolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// LLMCall records one model call.
func (m *Metrics) LLMCall(status string, duration time.Duration) {
	m.llmCalls.WithLabelValues(status).Inc()
	m.llmDuration.Observe(duration.Seconds())
}

// ContextCompaction records one compaction pass.
func (m *Metrics) ContextCompaction() {
	m.contextCompactions.Inc()
}

// SyncCacheStats records the delta since the previous snapshot. Call
// periodically or after each run; the cache keeps absolute counters.
func (m *Metrics) SyncCacheStats(prev, current toolcache.Stats) toolcache.Stats {
	if d := current.Hits - prev.Hits; d > 0 {
		m.cacheHits.Add(float64(d))
	}
	if d := current.Misses - prev.Misses; d > 0 {
		m.cacheMisses.Add(float64(d))
	}
	return current
}
