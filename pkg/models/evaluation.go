package models

// EvaluationAction is what the evaluator decided to do with a hypothesis.
type EvaluationAction string

const (
	ActionBranch   EvaluationAction = "branch"
	ActionPrune    EvaluationAction = "prune"
	ActionConfirm  EvaluationAction = "confirm"
	ActionContinue EvaluationAction = "continue"
)

// Valid reports whether a is a known evaluation action.
func (a EvaluationAction) Valid() bool {
	switch a {
	case ActionBranch, ActionPrune, ActionConfirm, ActionContinue:
		return true
	}
	return false
}

// EvidenceEvaluation is the structured verdict on one investigation cycle.
type EvidenceEvaluation struct {
	HypothesisID     string           `json:"hypothesisId"`
	EvidenceStrength EvidenceStrength `json:"evidenceStrength"`
	Confidence       int              `json:"confidence"` // 0..100
	Reasoning        string           `json:"reasoning,omitempty"`
	Action           EvaluationAction `json:"action"`
	Findings         []string         `json:"findings,omitempty"`
}

// ConfidenceLabel buckets a numeric confidence for user-facing output.
type ConfidenceLabel string

const (
	ConfidenceHigh   ConfidenceLabel = "high"
	ConfidenceMedium ConfidenceLabel = "medium"
	ConfidenceLow    ConfidenceLabel = "low"
)

// LabelConfidence buckets a 0–100 confidence: high ≥ 70, medium ≥ 40, else low.
func LabelConfidence(confidence int) ConfidenceLabel {
	switch {
	case confidence >= 70:
		return ConfidenceHigh
	case confidence >= 40:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
