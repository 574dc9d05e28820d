package events

import "github.com/rootline-ai/rootline/pkg/models"

// InitPayload opens every stream.
type InitPayload struct {
	InvestigationID string `json:"investigationId"`
	Query           string `json:"query"`
	IncidentID      string `json:"incidentId,omitempty"`
}

// ThinkingPayload carries model reasoning text.
type ThinkingPayload struct {
	Content string `json:"content"`
}

// ToolStartPayload announces a tool call entering execution.
type ToolStartPayload struct {
	BatchID string         `json:"batchId,omitempty"`
	CallID  string         `json:"callId"`
	Tool    string         `json:"tool"`
	Args    map[string]any `json:"args,omitempty"`
}

// ToolProgressPayload is an optional mid-execution note from a tool.
type ToolProgressPayload struct {
	CallID  string `json:"callId"`
	Tool    string `json:"tool"`
	Message string `json:"message"`
}

// ToolEndPayload closes a successful tool call.
type ToolEndPayload struct {
	BatchID    string `json:"batchId,omitempty"`
	CallID     string `json:"callId"`
	Tool       string `json:"tool"`
	ResultID   string `json:"resultId,omitempty"`
	Summary    string `json:"summary,omitempty"`
	FromCache  bool   `json:"fromCache,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

// ToolErrorPayload closes a failed tool call.
type ToolErrorPayload struct {
	BatchID    string `json:"batchId,omitempty"`
	CallID     string `json:"callId"`
	Tool       string `json:"tool"`
	Error      string `json:"error"`
	TimedOut   bool   `json:"timedOut,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

// ToolLimitPayload is a graceful-limit warning. Never fatal.
type ToolLimitPayload struct {
	Tool    string `json:"tool"`
	Count   int    `json:"count"`
	Limit   int    `json:"limit,omitempty"`
	Warning string `json:"warning"`
}

// ContextClearedPayload reports an in-memory compaction pass.
type ContextClearedPayload struct {
	Cleared     int `json:"cleared"`
	Compacted   int `json:"compacted"`
	KeptFull    int `json:"keptFull"`
	TokensAfter int `json:"tokensAfter"`
}

// KnowledgeRetrievedPayload reports what the knowledge backend returned.
type KnowledgeRetrievedPayload struct {
	Runbooks    int `json:"runbooks"`
	Postmortems int `json:"postmortems"`
	KnownIssues int `json:"knownIssues"`
}

// HypothesisPayload accompanies hypothesis lifecycle events.
type HypothesisPayload struct {
	Hypothesis *models.Hypothesis `json:"hypothesis"`
}

// EvidencePayload accompanies evidence_gathered and evidence_evaluated.
type EvidencePayload struct {
	HypothesisID string                     `json:"hypothesisId"`
	Evaluation   *models.EvidenceEvaluation `json:"evaluation,omitempty"`
}

// PhaseChangePayload records a state-machine transition.
type PhaseChangePayload struct {
	From   models.Phase `json:"from"`
	To     models.Phase `json:"to"`
	Reason string       `json:"reason,omitempty"`
}

// TriagePayload accompanies triage_complete.
type TriagePayload struct {
	Triage *models.TriageResult `json:"triage"`
}

// ConclusionPayload accompanies conclusion_reached.
type ConclusionPayload struct {
	Conclusion *models.Conclusion `json:"conclusion"`
}

// RemediationPayload accompanies remediation_started.
type RemediationPayload struct {
	Plan *models.RemediationPlan `json:"plan"`
}

// StepPayload accompanies step_completed.
type StepPayload struct {
	Step *models.RemediationStep `json:"step"`
}

// ErrorPayload is a recorded, non-fatal error.
type ErrorPayload struct {
	Phase   models.Phase `json:"phase,omitempty"`
	Message string       `json:"message"`
}

// AnswerStartPayload precedes the final free-form answer text.
type AnswerStartPayload struct{}

// DonePayload terminates every stream. Result is best-effort: a cancelled
// run carries whatever conclusion (possibly none) was available.
type DonePayload struct {
	Result *models.InvestigationResult `json:"result,omitempty"`
	Answer string                      `json:"answer,omitempty"`
}
