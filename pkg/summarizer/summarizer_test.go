package summarizer

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResultIDFormat(t *testing.T) {
	id := NewResultID("logs-query")
	assert.Regexp(t, regexp.MustCompile(`^logs-[0-9a-f]{8}$`), id)

	id = NewResultID("inventory")
	assert.Regexp(t, regexp.MustCompile(`^inventory-[0-9a-f]{8}$`), id)

	assert.NotEqual(t, NewResultID("logs-query"), NewResultID("logs-query"))
}

func TestDefaultSummarizeObject(t *testing.T) {
	result := map[string]any{
		"events": []any{
			map[string]any{"message": "timeout calling payments-api", "service": "checkout-api"},
			map[string]any{"message": "retry exhausted"},
		},
		"nextToken": "abc",
	}
	compact := DefaultSummarize("logs-query", result)

	assert.Equal(t, 2, compact.ItemCount)
	assert.Contains(t, compact.Summary, "2 items")
	assert.Contains(t, compact.Services, "checkout-api")
	assert.Contains(t, compact.Services, "payments-api")
	assert.False(t, compact.IsError)
}

func TestDefaultSummarizeError(t *testing.T) {
	compact := DefaultSummarize("logs-query", map[string]any{"error": "access denied"})
	assert.True(t, compact.IsError)
	assert.Contains(t, compact.Summary, "access denied")
}

func TestClassifyHealth(t *testing.T) {
	tests := []struct {
		name   string
		result any
		want   HealthStatus
	}{
		{"critical marker", map[string]any{"status": "ALARM"}, HealthCritical},
		{"degraded marker", map[string]any{"status": "degraded"}, HealthDegraded},
		{"healthy marker", map[string]any{"status": "healthy"}, HealthHealthy},
		{"no signal", map[string]any{"count": 3}, HealthUnknown},
		{"nil", nil, HealthUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyHealth(tt.result))
		})
	}
}

func TestRegistryCustomSummarizer(t *testing.T) {
	r := NewRegistry()
	r.Register("metrics-query", func(tool string, result any) *CompactToolResult {
		return &CompactToolResult{Summary: "p99 latency 2.1s, breaching SLO"}
	})

	compact := r.Summarize("metrics-query", map[string]any{"datapoints": []any{1, 2}})
	require.NotNil(t, compact)
	assert.Equal(t, "p99 latency 2.1s, breaching SLO", compact.Summary)
	assert.Equal(t, "metrics-query", compact.Tool)
	assert.NotEmpty(t, compact.ResultID)
	assert.Equal(t, HealthUnknown, compact.Health)
}

func TestRegistryFallsBackToDefault(t *testing.T) {
	r := NewRegistry()
	compact := r.Summarize("unknown-tool", []any{1, 2, 3})
	require.NotNil(t, compact)
	assert.Equal(t, 3, compact.ItemCount)
	assert.NotEmpty(t, compact.ResultID)
}

func TestExtractServicesDeduplicates(t *testing.T) {
	result := map[string]any{
		"services": []any{"checkout-api", "checkout-api", "payments-api"},
	}
	assert.Equal(t, []string{"checkout-api", "payments-api"}, ExtractServices(result))
}
