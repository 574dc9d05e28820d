package models

import "time"

// Phase is a stage of the investigation lifecycle.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseTriage      Phase = "triage"
	PhaseHypothesize Phase = "hypothesize"
	PhaseInvestigate Phase = "investigate"
	PhaseEvaluate    Phase = "evaluate"
	PhaseConclude    Phase = "conclude"
	PhaseRemediate   Phase = "remediate"
	PhaseComplete    Phase = "complete"
)

// PhaseTransition records one phase change with its reason.
type PhaseTransition struct {
	From   Phase     `json:"from"`
	To     Phase     `json:"to"`
	Reason string    `json:"reason,omitempty"`
	At     time.Time `json:"at"`
}

// InvestigationError is a non-fatal error recorded during an investigation.
type InvestigationError struct {
	Phase   Phase     `json:"phase"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// InvestigationState is the serializable aggregate owned by one state
// machine instance. Mutated only through state-machine methods — never
// shared mutably across goroutines.
type InvestigationState struct {
	ID                  string               `json:"id"`
	Query               string               `json:"query"`
	IncidentID          string               `json:"incidentId,omitempty"`
	Phase               Phase                `json:"phase"`
	StartedAt           time.Time            `json:"startedAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
	CompletedAt         *time.Time           `json:"completedAt,omitempty"`
	Triage              *TriageResult        `json:"triage,omitempty"`
	Hypotheses          []*Hypothesis        `json:"hypotheses"`
	RootHypothesisIDs   []string             `json:"rootHypothesisIds"`
	CurrentHypothesisID string               `json:"currentHypothesisId,omitempty"`
	Evaluations         []EvidenceEvaluation `json:"evaluations"`
	Conclusion          *Conclusion          `json:"conclusion,omitempty"`
	RemediationPlan     *RemediationPlan     `json:"remediationPlan,omitempty"`
	PhaseHistory        []PhaseTransition    `json:"phaseHistory"`
	Iterations          int                  `json:"iterations"`
	MaxIterations       int                  `json:"maxIterations"`
	ToolCalls           int                  `json:"toolCalls"`
	Errors              []InvestigationError `json:"errors,omitempty"`
}

// InvestigationResult is the terminal summary carried on the done event.
type InvestigationResult struct {
	ID               string           `json:"id"`
	Query            string           `json:"query"`
	RootCause        string           `json:"rootCause,omitempty"`
	Confidence       ConfidenceLabel  `json:"confidence,omitempty"`
	AffectedServices []string         `json:"affectedServices,omitempty"`
	RemediationPlan  *RemediationPlan `json:"remediationPlan,omitempty"`
	Summary          string           `json:"summary"`
	DurationMs       int64            `json:"durationMs"`
}
