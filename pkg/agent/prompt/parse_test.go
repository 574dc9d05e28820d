package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/models"
)

func TestParseTriage(t *testing.T) {
	content := "```json\n" + `{
		"summary": "checkout latency spike after deploy",
		"affectedServices": ["checkout-api", "payments-db"],
		"symptoms": ["p99 over 2s", "elevated 5xx"],
		"errorMessages": "connection pool timeout",
		"severity": "high",
		"timeWindow": {"start": "2026-08-24T10:00:00Z", "end": "2026-08-24T11:00:00Z"}
	}` + "\n```"

	triage, err := ParseTriage(content)
	require.NoError(t, err)
	assert.Equal(t, "checkout latency spike after deploy", triage.Summary)
	assert.Equal(t, []string{"checkout-api", "payments-db"}, triage.AffectedServices)
	assert.Equal(t, []string{"connection pool timeout"}, triage.ErrorMessages,
		"a scalar where a list is expected becomes a singleton")
	assert.Equal(t, models.SeverityHigh, triage.Severity)
	assert.Equal(t, time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC), triage.TimeWindow.Start)
}

func TestParseTriageNormalizesUnknowns(t *testing.T) {
	triage, err := ParseTriage(`{"summary": "x", "severity": "catastrophic", "timeWindow": {"start": "whenever", "end": null}}`)
	require.NoError(t, err)
	assert.Equal(t, models.SeverityMedium, triage.Severity)
	assert.True(t, triage.TimeWindow.IsZero())
	assert.Nil(t, triage.AffectedServices)
}

func TestParseHypothesesArray(t *testing.T) {
	content := `[
		{"statement": "connection pool exhaustion", "category": "capacity", "priority": 1,
		 "confirmingEvidence": "pool at max", "refutingEvidence": "pool has headroom"},
		{"statement": "deploy regression", "category": "application", "priority": 2},
		{"statement": "", "category": "unknown", "priority": 3}
	]`
	hyps, err := ParseHypotheses(content)
	require.NoError(t, err)
	require.Len(t, hyps, 2, "empty statements are dropped")
	assert.Equal(t, models.CategoryCapacity, hyps[0].Category)
	assert.Equal(t, 1, hyps[0].Priority)
}

func TestParseHypothesesSingleObject(t *testing.T) {
	hyps, err := ParseHypotheses(`{"statement": "dns failure", "category": "bogus", "priority": 1}`)
	require.NoError(t, err)
	require.Len(t, hyps, 1)
	assert.Equal(t, models.CategoryUnknown, hyps[0].Category, "unknown categories are normalized")
}

func TestParseHypothesesCapsAtFive(t *testing.T) {
	var entries []string
	for i := 0; i < 8; i++ {
		entries = append(entries, `{"statement": "h`+string(rune('a'+i))+`", "priority": 1}`)
	}
	hyps, err := ParseHypotheses("[" + strings.Join(entries, ",") + "]")
	require.NoError(t, err)
	assert.Len(t, hyps, 5)
}

func TestParseHypothesesEmpty(t *testing.T) {
	_, err := ParseHypotheses(`[]`)
	assert.Error(t, err)
	_, err = ParseHypotheses(`[{"statement": ""}]`)
	assert.Error(t, err)
}

func TestParseEvaluationBranch(t *testing.T) {
	content := `{
		"evidenceStrength": "weak",
		"confidence": 55,
		"reasoning": "pool is saturated but cause unclear",
		"action": "branch",
		"findings": ["pool at 100/100"],
		"subHypotheses": [{"statement": "leaked connections from retry storm", "category": "application", "priority": 1}]
	}`
	parsed, err := ParseEvaluation(content)
	require.NoError(t, err)
	assert.Equal(t, models.EvidenceWeak, parsed.Evaluation.EvidenceStrength)
	assert.Equal(t, models.ActionBranch, parsed.Evaluation.Action)
	assert.Equal(t, []string{"pool at 100/100"}, parsed.Evaluation.Findings)
	require.Len(t, parsed.SubHypotheses, 1)
	assert.Equal(t, "leaked connections from retry storm", parsed.SubHypotheses[0].Statement)
}

func TestParseEvaluationNormalizesUnknowns(t *testing.T) {
	parsed, err := ParseEvaluation(`{"evidenceStrength": "overwhelming", "action": "celebrate", "confidence": 90}`)
	require.NoError(t, err)
	assert.Equal(t, models.EvidencePending, parsed.Evaluation.EvidenceStrength)
	assert.Equal(t, models.ActionContinue, parsed.Evaluation.Action,
		"a malformed action must never wedge the loop")
}

func TestParseEvaluationIgnoresSubHypothesesUnlessBranch(t *testing.T) {
	parsed, err := ParseEvaluation(`{"evidenceStrength": "strong", "action": "confirm",
		"subHypotheses": [{"statement": "should be ignored"}]}`)
	require.NoError(t, err)
	assert.Empty(t, parsed.SubHypotheses)
}

func TestParseConclusion(t *testing.T) {
	content := `{
		"rootCause": "connection pool exhaustion in checkout-api",
		"confidence": "high",
		"confirmedHypothesisId": "h_2",
		"affectedServices": ["checkout-api"],
		"evidenceChain": [
			{"finding": "pool pinned at max", "source": "h_2", "strength": "strong"},
			{"finding": "latency correlated", "source": "metrics-query", "strength": "moderate"}
		],
		"alternativeExplanations": ["upstream dependency slowdown"],
		"unknowns": ["why the pool size was lowered"]
	}`
	c, err := ParseConclusion(content)
	require.NoError(t, err)
	assert.Equal(t, models.ConfidenceHigh, c.Confidence)
	assert.Equal(t, "h_2", c.ConfirmedHypothesisID)
	require.Len(t, c.EvidenceChain, 2)
	assert.Equal(t, models.EvidenceStrong, c.EvidenceChain[0].Strength)
	assert.Equal(t, models.EvidenceWeak, c.EvidenceChain[1].Strength,
		"unknown strengths in the chain degrade to weak")
}

func TestParseConclusionNotDetermined(t *testing.T) {
	c, err := ParseConclusion(`{"rootCause": "", "confidence": "high"}`)
	require.NoError(t, err)
	assert.Equal(t, "not determined", c.RootCause)
	assert.Equal(t, models.ConfidenceLow, c.Confidence)
}

func TestParseRemediation(t *testing.T) {
	content := `{
		"summary": "restart and raise pool size",
		"steps": [
			{"action": "Restart checkout-api", "command": "kubectl rollout restart deploy/checkout-api",
			 "rollbackCommand": "n/a", "riskLevel": "medium"},
			{"action": "Raise pool size", "riskLevel": "low", "requiresApproval": false},
			{"action": "Drop the database", "riskLevel": "apocalyptic"}
		]
	}`
	plan, err := ParseRemediation(content)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 3)

	assert.Equal(t, "step_1", plan.Steps[0].ID)
	assert.Equal(t, models.RiskMedium, plan.Steps[0].RiskLevel)
	assert.True(t, plan.Steps[0].RequiresApproval, "non-low risk defaults to requiring approval")

	assert.False(t, plan.Steps[1].RequiresApproval, "explicit requiresApproval is honored")

	assert.Equal(t, models.RiskHigh, plan.Steps[2].RiskLevel, "unknown risk normalizes to high")
	assert.True(t, plan.Steps[2].RequiresApproval)
	for _, step := range plan.Steps {
		assert.Equal(t, models.StepPending, step.Status)
	}
}

func TestParseRemediationNoSteps(t *testing.T) {
	_, err := ParseRemediation(`{"summary": "nothing to do", "steps": []}`)
	assert.Error(t, err)
}
