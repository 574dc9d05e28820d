package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rootline-ai/rootline/pkg/models"
)

func TestTriageRequestIncludesContextSections(t *testing.T) {
	b := NewBuilder()
	req := b.Triage("checkout is slow", "escalated by on-call", map[string]string{
		"Active alarms": "HighLatency ALARM on checkout-api",
		"Knowledge":     "",
	})

	assert.Contains(t, req.User, "checkout is slow")
	assert.Contains(t, req.User, "escalated by on-call")
	assert.Contains(t, req.User, "## Active alarms")
	assert.NotContains(t, req.User, "## Knowledge", "empty sections are skipped")
	assert.Contains(t, req.System, "Site Reliability Engineer")
}

func TestEvaluationRequestRendersEvidence(t *testing.T) {
	b := NewBuilder()
	h := &models.Hypothesis{
		ID:        "h_1",
		Statement: "pool exhaustion",
		Category:  models.CategoryCapacity,
		Queries: []models.CausalQuery{
			{ID: "q1", Tool: "metrics-query", ExpectedOutcome: "pool pinned at max"},
		},
		QueryResults: map[string]any{
			"q1": map[string]any{"connections": 100, "max": 100},
			"q2": "orphan result",
		},
	}
	req := b.Evaluation(h)
	assert.Contains(t, req.User, "pool pinned at max via metrics-query")
	assert.Contains(t, req.User, `"connections":100`)
	assert.Contains(t, req.User, "orphan result", "results without a matching query still render")
}

func TestEvaluationRequestNoEvidence(t *testing.T) {
	b := NewBuilder()
	req := b.Evaluation(&models.Hypothesis{ID: "h_1", Statement: "x"})
	assert.Contains(t, req.User, "no evidence gathered yet")
}

func TestKnowledgeOnlyRequest(t *testing.T) {
	b := NewBuilder()
	req := b.KnowledgeOnly("how do I rotate the api keys", &models.KnowledgeBundle{
		Runbooks: []models.KnowledgeItem{{Title: "Key rotation runbook", Content: "step 1: ..."}},
	})
	assert.Contains(t, req.User, "Key rotation runbook")
	assert.Contains(t, req.User, "Do not call any tools")
}

func TestWithStrictReminder(t *testing.T) {
	b := NewBuilder()
	req := b.Hypotheses(&models.TriageResult{Summary: "x"}).WithStrictReminder()
	assert.Contains(t, req.User, "could not be parsed")
}

func TestForcedConclusionMentionsIterations(t *testing.T) {
	b := NewBuilder()
	req := b.ForcedConclusion(10)
	assert.Contains(t, req.User, "10 iterations")
}
