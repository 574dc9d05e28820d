package compactor

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/scratchpad"
	"github.com/rootline-ai/rootline/pkg/summarizer"
)

func result(id, tool string, compact *summarizer.CompactToolResult) scratchpad.TieredResult {
	return scratchpad.TieredResult{
		ResultID:  id,
		Tool:      tool,
		Tier:      scratchpad.TierFull,
		Compact:   compact,
		Timestamp: time.Now(),
	}
}

func TestBuildPlanPinsMostRecent(t *testing.T) {
	c := New(Config{KeepToolUses: 3})
	var results []scratchpad.TieredResult
	for i := 0; i < 10; i++ {
		results = append(results, result(fmt.Sprintf("logs-%08d", i), "logs-query", nil))
	}

	plan := c.BuildPlan(results, Context{})
	for i := 7; i < 10; i++ {
		assert.Contains(t, plan.KeepFull, fmt.Sprintf("logs-%08d", i),
			"the most recent keepToolUses results are always kept full")
	}
	total := len(plan.KeepFull) + len(plan.KeepCompact) + len(plan.Clear)
	assert.Equal(t, 10, total, "every result must be classified exactly once")
}

func TestBuildPlanKeepsErrorAndCriticalResults(t *testing.T) {
	c := New(Config{Preset: PresetIncident, KeepToolUses: 1})

	boring := result("logs-00000001", "logs-query",
		&summarizer.CompactToolResult{Summary: "no events found", Health: summarizer.HealthHealthy})
	critical := result("metrics-00000002", "metrics-query",
		&summarizer.CompactToolResult{
			Summary:  "checkout-api p99 breaching SLO",
			Health:   summarizer.HealthCritical,
			IsError:  false,
			Services: []string{"checkout-api"},
		})
	errored := result("aws-00000003", "aws-query",
		&summarizer.CompactToolResult{Summary: "access denied", IsError: true})
	recent := result("logs-00000004", "logs-query", nil)

	plan := c.BuildPlan([]scratchpad.TieredResult{boring, critical, errored, recent},
		Context{AffectedServices: []string{"checkout-api"}})

	assert.Contains(t, plan.KeepFull, "metrics-00000002",
		"critical health on an affected service must stay full")
	assert.Contains(t, plan.KeepFull, "logs-00000004", "pinned recent result")
	assert.NotContains(t, plan.KeepFull, "logs-00000001")
	assert.Contains(t, plan.Clear, "logs-00000001", "healthy, irrelevant, old results are cleared")
	assert.NotContains(t, plan.Clear, "aws-00000003", "error results are retained in some form")
}

func TestBuildPlanResearchPresetFavorsHypothesisRelevance(t *testing.T) {
	c := New(Config{Preset: PresetResearch, KeepToolUses: 1})
	invCtx := Context{
		Query:               "why is checkout latency elevated",
		HypothesisStatement: "connection pool exhaustion in checkout-api against payments-db",
	}

	relevant := result("logs-00000001", "logs-query",
		&summarizer.CompactToolResult{Summary: "checkout-api connection pool exhaustion, payments-db saturated"})
	irrelevant := result("web-00000002", "web-search",
		&summarizer.CompactToolResult{Summary: "vendor changelog for unrelated sdk release"})
	recent := result("logs-00000003", "logs-query", nil)

	plan := c.BuildPlan([]scratchpad.TieredResult{relevant, irrelevant, recent}, invCtx)
	assert.NotContains(t, plan.Clear, "logs-00000001", "hypothesis-relevant result must survive")
	assert.Contains(t, plan.Clear, "web-00000002")
}

func TestBuildPlanEmpty(t *testing.T) {
	c := New(Config{})
	plan := c.BuildPlan(nil, Context{})
	assert.Empty(t, plan.KeepFull)
	assert.Empty(t, plan.KeepCompact)
	assert.Empty(t, plan.Clear)
}

func TestNewDefaults(t *testing.T) {
	c := New(Config{Preset: "bogus"})
	require.NotNil(t, c)
	assert.Equal(t, DefaultKeepToolUses, c.keep)
	assert.Equal(t, presetWeights(PresetBalanced), c.weights)
}
