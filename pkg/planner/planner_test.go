package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/models"
)

func hyp(statement string) *models.Hypothesis {
	return &models.Hypothesis{ID: "h_1", Statement: statement}
}

func triage(services ...string) *models.TriageResult {
	return &models.TriageResult{AffectedServices: services}
}

func TestPlanQueriesLatency(t *testing.T) {
	p := New(Config{})
	queries := p.PlanQueries(hyp("p99 latency regression in checkout-api after deploy"), triage("checkout-api"), Hints{})
	require.NotEmpty(t, queries)

	tools := make(map[string]bool)
	for _, q := range queries {
		tools[q.Tool] = true
		assert.Equal(t, "h_1", q.HypothesisID)
		assert.NotEmpty(t, q.ID)
	}
	assert.True(t, tools[ToolMetrics], "latency hypothesis plans a metrics query")
	assert.True(t, tools[ToolDeploys], "deploy mention plans a deploy-history query")

	// Prioritized: relevance never increases down the list.
	for i := 1; i < len(queries); i++ {
		assert.GreaterOrEqual(t, queries[i-1].RelevanceScore, queries[i].RelevanceScore)
	}
}

func TestPlanQueriesNoMatch(t *testing.T) {
	p := New(Config{})
	assert.Empty(t, p.PlanQueries(hyp("the moon is in the wrong phase"), nil, Hints{}))
	assert.Empty(t, p.PlanQueries(nil, nil, Hints{}))
}

func TestBroadQueryRefinement(t *testing.T) {
	p := New(Config{})
	tr := triage("payments-db", "checkout-api")
	tr.TimeWindow = models.TimeWindow{
		Start: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 24, 11, 0, 0, 0, time.UTC),
	}

	queries := p.PlanQueries(hyp("recent deploy caused a regression"), tr, Hints{})
	require.NotEmpty(t, queries)

	var deploy *models.CausalQuery
	for i := range queries {
		if queries[i].Tool == ToolDeploys {
			deploy = &queries[i]
		}
	}
	require.NotNil(t, deploy)
	assert.Equal(t, "payments-db", deploy.Parameters["service"],
		"broad queries inherit the first affected service")
	assert.Equal(t, "2026-08-24T10:00:00Z", deploy.Parameters["start"])
	assert.Equal(t, "2026-08-24T11:00:00Z", deploy.Parameters["end"])
}

func TestBroadQueryDefaultWindow(t *testing.T) {
	q := models.CausalQuery{Parameters: map[string]any{}}
	require.True(t, IsBroadQuery(q))

	RefineQuery(&q, nil)
	start, err := time.Parse(time.RFC3339, q.Parameters["start"].(string))
	require.NoError(t, err)
	end, err := time.Parse(time.RFC3339, q.Parameters["end"].(string))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, end.Sub(start).Round(time.Minute))
}

func TestIsBroadQuery(t *testing.T) {
	assert.True(t, IsBroadQuery(models.CausalQuery{Parameters: map[string]any{"metric": "cpu"}}))
	assert.False(t, IsBroadQuery(models.CausalQuery{Parameters: map[string]any{"service": "x"}}))
	assert.False(t, IsBroadQuery(models.CausalQuery{Parameters: map[string]any{"filter": "ERROR"}}))
	assert.False(t, IsBroadQuery(models.CausalQuery{Parameters: map[string]any{"start": "t"}}))
}

func TestEnvironmentFallback(t *testing.T) {
	// Metrics unavailable; alarms unavailable; logs present.
	p := New(Config{AvailableTools: []string{ToolLogs, ToolInventory}})
	queries := p.PlanQueries(hyp("cpu saturation on checkout-api"), triage("checkout-api"), Hints{})
	require.NotEmpty(t, queries)

	for _, q := range queries {
		assert.Contains(t, []string{ToolLogs, ToolInventory}, q.Tool,
			"every query must land on an available tool")
	}

	// The cpu template starts at 0.85 on metrics; two hops (alarms, logs)
	// cost at most the capped penalty.
	var cpu *models.CausalQuery
	for i := range queries {
		if q := queries[i]; q.Tool == ToolLogs && q.Parameters["metric"] == "cpu_utilization" {
			cpu = &queries[i]
		}
	}
	require.NotNil(t, cpu)
	assert.InDelta(t, 0.75, cpu.RelevanceScore, 0.001)
}

func TestLogGroupEnrichment(t *testing.T) {
	p := New(Config{DefaultLogGroup: "/demo/app"})

	queries := p.PlanQueries(hyp("errors spiking in checkout"), triage("checkout-api"),
		Hints{FunctionName: "checkout-handler"})
	require.NotEmpty(t, queries)
	for _, q := range queries {
		if q.Tool == ToolLogs {
			assert.Equal(t, "/aws/lambda/checkout-handler", q.Parameters["logGroup"],
				"function-name hint wins over the default group")
		}
	}

	queries = p.PlanQueries(hyp("errors spiking in checkout"), triage("checkout-api"), Hints{})
	for _, q := range queries {
		if q.Tool == ToolLogs {
			assert.Equal(t, "/demo/app", q.Parameters["logGroup"])
		}
	}
}
