// Package scorer turns gathered evidence into a verdict on a hypothesis.
// The classification itself (strong / weak / none / contradicting /
// pending) is delegated to the LLM through a structured evaluation prompt;
// the confidence number is computed locally from explicit factors so it
// cannot be inflated by the model.
package scorer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/agent/prompt"
	"github.com/rootline-ai/rootline/pkg/models"
)

// temporalWindow is how close an observed event must be to the incident
// start to count as temporally correlated.
const temporalWindow = 5 * time.Minute

// Factor weights. The caps keep any single factor from dominating.
const (
	chainDepthWeight   = 10
	chainDepthCap      = 30
	strongSignalWeight = 10
	strongSignalCap    = 40
	contradictPenalty  = 25
	temporalBonus      = 15
	historicalBonus    = 15
	directBonus        = 20
)

// Factors are the locally observable inputs to the confidence score.
type Factors struct {
	ChainDepth           int
	StrongSignals        int
	ContradictingSignals int
	TemporalCorrelation  bool
	HistoricalMatch      bool
	DirectEvidence       bool
}

// Confidence computes the 0-100 confidence for a set of factors.
func Confidence(f Factors) int {
	score := f.ChainDepth * chainDepthWeight
	if score > chainDepthCap {
		score = chainDepthCap
	}
	strong := f.StrongSignals * strongSignalWeight
	if strong > strongSignalCap {
		strong = strongSignalCap
	}
	score += strong
	score -= f.ContradictingSignals * contradictPenalty
	if f.TemporalCorrelation {
		score += temporalBonus
	}
	if f.HistoricalMatch {
		score += historicalBonus
	}
	if f.DirectEvidence {
		score += directBonus
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Signals carry context the orchestrator knows but the evaluation prompt
// does not: timing, knowledge matches, and evidence directness.
type Signals struct {
	IncidentStart   time.Time
	EventTimes      []time.Time
	HistoricalMatch bool
	DirectEvidence  bool
}

// DeriveFactors maps an LLM verdict plus orchestrator signals to factors.
func DeriveFactors(eval models.EvidenceEvaluation, sig Signals) Factors {
	f := Factors{
		ChainDepth:      len(eval.Findings),
		HistoricalMatch: sig.HistoricalMatch,
		DirectEvidence:  sig.DirectEvidence,
	}
	switch eval.EvidenceStrength {
	case models.EvidenceStrong:
		f.StrongSignals = len(eval.Findings)
		if f.StrongSignals == 0 {
			f.StrongSignals = 1
		}
	case models.EvidenceContradicting:
		f.ContradictingSignals = 1
	}
	if !sig.IncidentStart.IsZero() {
		for _, at := range sig.EventTimes {
			if delta := at.Sub(sig.IncidentStart); delta >= -temporalWindow && delta <= temporalWindow {
				f.TemporalCorrelation = true
				break
			}
		}
	}
	return f
}

// HistoricalMatch reports whether retrieved postmortems or known issues
// overlap the hypothesis statement enough to count as a pattern match.
func HistoricalMatch(h *models.Hypothesis, bundle *models.KnowledgeBundle) bool {
	if h == nil || bundle.Empty() {
		return false
	}
	statement := strings.ToLower(h.Statement)
	items := append(append([]models.KnowledgeItem{}, bundle.Postmortems...), bundle.KnownIssues...)
	for _, item := range items {
		if overlaps(statement, strings.ToLower(item.Title+" "+item.Content)) {
			return true
		}
	}
	return false
}

// overlaps requires at least two shared meaningful tokens.
func overlaps(a, b string) bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(a) {
		if len(tok) >= 4 {
			tokens[tok] = true
		}
	}
	hits := 0
	for _, tok := range strings.Fields(b) {
		if tokens[tok] {
			hits++
			if hits >= 2 {
				return true
			}
		}
	}
	return false
}

// Scorer evaluates hypotheses through an LLM.
type Scorer struct {
	llm     agent.LLMClient
	builder *prompt.Builder
}

// New creates a scorer. Panics on a nil client.
func New(llm agent.LLMClient) *Scorer {
	if llm == nil {
		panic("scorer: llm client is required")
	}
	return &Scorer{llm: llm, builder: prompt.NewBuilder()}
}

// Score asks the LLM for a verdict on the hypothesis and replaces its
// confidence with the locally computed one. A response that fails to parse
// is retried once with a strict reminder; a second failure returns the
// parse error with a pending evaluation the caller can record.
func (s *Scorer) Score(ctx context.Context, h *models.Hypothesis, sig Signals) (*prompt.ParsedEvaluation, error) {
	req := s.builder.Evaluation(h)
	parsed, err := s.requestVerdict(ctx, req)
	if err != nil {
		parsed, err = s.requestVerdict(ctx, req.WithStrictReminder())
	}
	if err != nil {
		return &prompt.ParsedEvaluation{
			Evaluation: models.EvidenceEvaluation{
				HypothesisID:     h.ID,
				EvidenceStrength: models.EvidencePending,
				Action:           models.ActionContinue,
			},
		}, err
	}

	parsed.Evaluation.HypothesisID = h.ID
	parsed.Evaluation.Confidence = Confidence(DeriveFactors(parsed.Evaluation, sig))
	return parsed, nil
}

func (s *Scorer) requestVerdict(ctx context.Context, req prompt.Request) (*prompt.ParsedEvaluation, error) {
	resp, err := s.llm.Chat(ctx, &agent.ChatRequest{System: req.System, User: req.User})
	if err != nil {
		return nil, fmt.Errorf("evaluation call failed: %w", err)
	}
	return prompt.ParseEvaluation(resp.Content)
}
