package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rootline-ai/rootline/pkg/models"
)

// ParseTriage decodes the triage verdict. Missing optional fields are
// normalized: scalar strings become singleton lists, unknown severities
// fall back to medium, unparseable timestamps leave the window unset.
func ParseTriage(content string) (*models.TriageResult, error) {
	doc, err := ExtractJSON(content)
	if err != nil {
		return nil, fmt.Errorf("triage response: %w", err)
	}
	var raw struct {
		Summary          string `json:"summary"`
		AffectedServices any    `json:"affectedServices"`
		Symptoms         any    `json:"symptoms"`
		ErrorMessages    any    `json:"errorMessages"`
		Severity         string `json:"severity"`
		TimeWindow       struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"timeWindow"`
	}
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode triage response: %w", err)
	}
	return &models.TriageResult{
		Summary:          strings.TrimSpace(raw.Summary),
		AffectedServices: toStringSlice(raw.AffectedServices),
		Symptoms:         toStringSlice(raw.Symptoms),
		ErrorMessages:    toStringSlice(raw.ErrorMessages),
		Severity:         models.NormalizeSeverity(raw.Severity),
		TimeWindow: models.TimeWindow{
			Start: parseTime(raw.TimeWindow.Start),
			End:   parseTime(raw.TimeWindow.End),
		},
	}, nil
}

// rawHypothesis is the wire form of one proposed hypothesis.
type rawHypothesis struct {
	Statement          string `json:"statement"`
	Category           string `json:"category"`
	Priority           int    `json:"priority"`
	ConfirmingEvidence string `json:"confirmingEvidence"`
	RefutingEvidence   string `json:"refutingEvidence"`
	Reasoning          string `json:"reasoning"`
}

func (r rawHypothesis) toModel() *models.Hypothesis {
	return &models.Hypothesis{
		Statement:          strings.TrimSpace(r.Statement),
		Category:           models.NormalizeCategory(r.Category),
		Priority:           r.Priority,
		ConfirmingEvidence: r.ConfirmingEvidence,
		RefutingEvidence:   r.RefutingEvidence,
		Reasoning:          r.Reasoning,
	}
}

// ParseHypotheses decodes 1-5 proposed hypotheses. A single object is
// accepted as a singleton list; empty statements are dropped; anything
// past the fifth entry is discarded.
func ParseHypotheses(content string) ([]*models.Hypothesis, error) {
	doc, err := ExtractJSON(content)
	if err != nil {
		return nil, fmt.Errorf("hypothesis response: %w", err)
	}

	var raws []rawHypothesis
	if err := json.Unmarshal([]byte(doc), &raws); err != nil {
		var single rawHypothesis
		if err2 := json.Unmarshal([]byte(doc), &single); err2 != nil {
			return nil, fmt.Errorf("failed to decode hypothesis response: %w", err)
		}
		raws = []rawHypothesis{single}
	}

	var out []*models.Hypothesis
	for _, r := range raws {
		if strings.TrimSpace(r.Statement) == "" {
			continue
		}
		out = append(out, r.toModel())
		if len(out) == 5 {
			break
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("hypothesis response contained no usable hypotheses")
	}
	return out, nil
}

// ParsedEvaluation is an evaluation verdict plus any sub-hypotheses the
// model proposed for a branch action.
type ParsedEvaluation struct {
	Evaluation    models.EvidenceEvaluation
	SubHypotheses []*models.Hypothesis
}

// ParseEvaluation decodes the evidence verdict. Unknown strengths become
// pending; unknown actions become continue — the loop must never wedge on
// a malformed verdict.
func ParseEvaluation(content string) (*ParsedEvaluation, error) {
	doc, err := ExtractJSON(content)
	if err != nil {
		return nil, fmt.Errorf("evaluation response: %w", err)
	}
	var raw struct {
		HypothesisID     string          `json:"hypothesisId"`
		EvidenceStrength string          `json:"evidenceStrength"`
		Confidence       int             `json:"confidence"`
		Reasoning        string          `json:"reasoning"`
		Action           string          `json:"action"`
		Findings         any             `json:"findings"`
		SubHypotheses    []rawHypothesis `json:"subHypotheses"`
	}
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode evaluation response: %w", err)
	}

	strength := models.EvidenceStrength(strings.ToLower(raw.EvidenceStrength))
	if !strength.Valid() {
		strength = models.EvidencePending
	}
	action := models.EvaluationAction(strings.ToLower(raw.Action))
	if !action.Valid() {
		action = models.ActionContinue
	}

	parsed := &ParsedEvaluation{
		Evaluation: models.EvidenceEvaluation{
			HypothesisID:     raw.HypothesisID,
			EvidenceStrength: strength,
			Confidence:       raw.Confidence,
			Reasoning:        raw.Reasoning,
			Action:           action,
			Findings:         toStringSlice(raw.Findings),
		},
	}
	if action == models.ActionBranch {
		for _, r := range raw.SubHypotheses {
			if strings.TrimSpace(r.Statement) != "" {
				parsed.SubHypotheses = append(parsed.SubHypotheses, r.toModel())
			}
		}
	}
	return parsed, nil
}

// ParseConclusion decodes the final verdict. An absent root cause becomes
// the explicit "not determined" sentinel.
func ParseConclusion(content string) (*models.Conclusion, error) {
	doc, err := ExtractJSON(content)
	if err != nil {
		return nil, fmt.Errorf("conclusion response: %w", err)
	}
	var raw struct {
		RootCause             string `json:"rootCause"`
		Confidence            string `json:"confidence"`
		ConfirmedHypothesisID string `json:"confirmedHypothesisId"`
		AffectedServices      any    `json:"affectedServices"`
		EvidenceChain         []struct {
			Finding  string `json:"finding"`
			Source   string `json:"source"`
			Strength string `json:"strength"`
		} `json:"evidenceChain"`
		AlternativeExplanations any `json:"alternativeExplanations"`
		Unknowns                any `json:"unknowns"`
	}
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode conclusion response: %w", err)
	}

	c := &models.Conclusion{
		RootCause:               strings.TrimSpace(raw.RootCause),
		Confidence:              normalizeConfidenceLabel(raw.Confidence),
		ConfirmedHypothesisID:   raw.ConfirmedHypothesisID,
		AffectedServices:        toStringSlice(raw.AffectedServices),
		AlternativeExplanations: toStringSlice(raw.AlternativeExplanations),
		Unknowns:                toStringSlice(raw.Unknowns),
	}
	if c.RootCause == "" {
		c.RootCause = "not determined"
		c.Confidence = models.ConfidenceLow
	}
	for _, link := range raw.EvidenceChain {
		strength := models.EvidenceStrength(strings.ToLower(link.Strength))
		if strength != models.EvidenceStrong && strength != models.EvidenceWeak {
			strength = models.EvidenceWeak
		}
		c.EvidenceChain = append(c.EvidenceChain, models.EvidenceLink{
			Finding: link.Finding, Source: link.Source, Strength: strength,
		})
	}
	return c, nil
}

// ParseRemediation decodes the remediation plan. Step IDs are assigned
// here ("step_1", ...); unknown risk levels normalize to high and force
// the approval flag.
func ParseRemediation(content string) (*models.RemediationPlan, error) {
	doc, err := ExtractJSON(content)
	if err != nil {
		return nil, fmt.Errorf("remediation response: %w", err)
	}
	var raw struct {
		Summary string `json:"summary"`
		Steps   []struct {
			Action           string `json:"action"`
			Description      string `json:"description"`
			Command          string `json:"command"`
			RollbackCommand  string `json:"rollbackCommand"`
			CodeReference    string `json:"codeReference"`
			RiskLevel        string `json:"riskLevel"`
			RequiresApproval *bool  `json:"requiresApproval"`
			MatchingSkill    string `json:"matchingSkill"`
			MatchingRunbook  string `json:"matchingRunbook"`
		} `json:"steps"`
	}
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode remediation response: %w", err)
	}
	if len(raw.Steps) == 0 {
		return nil, fmt.Errorf("remediation response contained no steps")
	}

	plan := &models.RemediationPlan{Summary: strings.TrimSpace(raw.Summary)}
	for i, s := range raw.Steps {
		if strings.TrimSpace(s.Action) == "" {
			continue
		}
		risk := models.NormalizeRisk(strings.ToLower(s.RiskLevel))
		requiresApproval := risk != models.RiskLow
		if s.RequiresApproval != nil {
			requiresApproval = *s.RequiresApproval
		}
		plan.Steps = append(plan.Steps, models.RemediationStep{
			ID:               fmt.Sprintf("step_%d", i+1),
			Action:           strings.TrimSpace(s.Action),
			Description:      s.Description,
			Command:          s.Command,
			RollbackCommand:  s.RollbackCommand,
			CodeReference:    s.CodeReference,
			RiskLevel:        risk,
			RequiresApproval: requiresApproval,
			Status:           models.StepPending,
			MatchingSkill:    strings.TrimSpace(s.MatchingSkill),
			MatchingRunbook:  strings.TrimSpace(s.MatchingRunbook),
		})
	}
	if len(plan.Steps) == 0 {
		return nil, fmt.Errorf("remediation response contained no usable steps")
	}
	return plan, nil
}

// toStringSlice coerces LLM output into a string list: nil stays nil, a
// scalar becomes a singleton, lists drop non-string and empty members.
func toStringSlice(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(val) == "" {
			return nil
		}
		return []string{strings.TrimSpace(val)}
	case []any:
		var out []string
		for _, item := range val {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case []string:
		return val
	default:
		return nil
	}
}

// parseTime accepts the timestamp layouts LLMs actually emit.
func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func normalizeConfidenceLabel(s string) models.ConfidenceLabel {
	switch models.ConfidenceLabel(strings.ToLower(s)) {
	case models.ConfidenceHigh:
		return models.ConfidenceHigh
	case models.ConfidenceMedium:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
