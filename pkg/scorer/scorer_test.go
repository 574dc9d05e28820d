package scorer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/models"
)

// scriptedLLM returns canned responses in order.
type scriptedLLM struct {
	responses []string
	errs      []error
	calls     int
}

func (s *scriptedLLM) Chat(_ context.Context, _ *agent.ChatRequest) (*agent.ChatResponse, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i >= len(s.responses) {
		return &agent.ChatResponse{}, nil
	}
	return &agent.ChatResponse{Content: s.responses[i]}, nil
}

func TestConfidenceFactors(t *testing.T) {
	tests := []struct {
		name string
		f    Factors
		want int
	}{
		{"nothing", Factors{}, 0},
		{"chain depth capped", Factors{ChainDepth: 10}, 30},
		{"strong signals capped", Factors{StrongSignals: 10}, 40},
		{"contradicting floors at zero", Factors{ContradictingSignals: 3}, 0},
		{"temporal", Factors{TemporalCorrelation: true}, 15},
		{"historical", Factors{HistoricalMatch: true}, 15},
		{"direct", Factors{DirectEvidence: true}, 20},
		{
			"everything clamps at 100",
			Factors{ChainDepth: 5, StrongSignals: 5, TemporalCorrelation: true,
				HistoricalMatch: true, DirectEvidence: true},
			100,
		},
		{
			"mixed",
			Factors{ChainDepth: 2, StrongSignals: 2, ContradictingSignals: 1, DirectEvidence: true},
			35,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Confidence(tt.f))
		})
	}
}

func TestDeriveFactorsTemporal(t *testing.T) {
	start := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	eval := models.EvidenceEvaluation{EvidenceStrength: models.EvidenceStrong, Findings: []string{"a", "b"}}

	f := DeriveFactors(eval, Signals{
		IncidentStart: start,
		EventTimes:    []time.Time{start.Add(3 * time.Minute)},
	})
	assert.True(t, f.TemporalCorrelation)
	assert.Equal(t, 2, f.ChainDepth)
	assert.Equal(t, 2, f.StrongSignals)

	f = DeriveFactors(eval, Signals{
		IncidentStart: start,
		EventTimes:    []time.Time{start.Add(10 * time.Minute)},
	})
	assert.False(t, f.TemporalCorrelation, "events outside five minutes do not correlate")
}

func TestDeriveFactorsContradicting(t *testing.T) {
	f := DeriveFactors(models.EvidenceEvaluation{EvidenceStrength: models.EvidenceContradicting}, Signals{})
	assert.Equal(t, 1, f.ContradictingSignals)
	assert.Equal(t, 0, f.StrongSignals)
}

func TestHistoricalMatch(t *testing.T) {
	h := &models.Hypothesis{Statement: "connection pool exhaustion in checkout-api"}
	bundle := &models.KnowledgeBundle{
		Postmortems: []models.KnowledgeItem{
			{Title: "2025 outage: connection pool exhaustion", Content: "the pool was exhausted"},
		},
	}
	assert.True(t, HistoricalMatch(h, bundle))
	assert.False(t, HistoricalMatch(h, &models.KnowledgeBundle{}))
	assert.False(t, HistoricalMatch(h, &models.KnowledgeBundle{
		Postmortems: []models.KnowledgeItem{{Title: "dns outage", Content: "resolver died"}},
	}))
}

func TestScoreUsesLocalConfidence(t *testing.T) {
	llm := &scriptedLLM{responses: []string{
		`{"evidenceStrength": "strong", "confidence": 99,
		  "action": "confirm", "findings": ["pool pinned at max", "timeouts in logs"]}`,
	}}
	s := New(llm)
	h := &models.Hypothesis{ID: "h_1", Statement: "pool exhaustion"}

	parsed, err := s.Score(context.Background(), h, Signals{DirectEvidence: true})
	require.NoError(t, err)
	assert.Equal(t, "h_1", parsed.Evaluation.HypothesisID)
	// 2 findings (20) + 2 strong signals (20) + direct (20); the model's 99
	// is discarded.
	assert.Equal(t, 60, parsed.Evaluation.Confidence)
	assert.Equal(t, models.ActionConfirm, parsed.Evaluation.Action)
}

func TestScoreRetriesOnceOnParseFailure(t *testing.T) {
	llm := &scriptedLLM{responses: []string{
		"I think the evidence is strong but I forgot the JSON.",
		`{"evidenceStrength": "weak", "action": "continue", "findings": ["partial signal"]}`,
	}}
	s := New(llm)

	parsed, err := s.Score(context.Background(), &models.Hypothesis{ID: "h_1"}, Signals{})
	require.NoError(t, err)
	assert.Equal(t, 2, llm.calls)
	assert.Equal(t, models.EvidenceWeak, parsed.Evaluation.EvidenceStrength)
}

func TestScoreReturnsPendingOnRepeatedFailure(t *testing.T) {
	llm := &scriptedLLM{errs: []error{errors.New("boom"), errors.New("boom")}}
	s := New(llm)

	parsed, err := s.Score(context.Background(), &models.Hypothesis{ID: "h_1"}, Signals{})
	require.Error(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, models.EvidencePending, parsed.Evaluation.EvidenceStrength)
	assert.Equal(t, models.ActionContinue, parsed.Evaluation.Action)
}
