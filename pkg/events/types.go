// Package events defines the event surface of the investigation engine.
//
// A single coordinator goroutine emits events in the total order in which
// the underlying mutations happen; subscribers observe exactly that order.
// Streams are finite — every run ends with a "done" event regardless of
// outcome (success, failure, or cancellation).
package events

import "time"

// External event types — the surface consumed by UIs and gateways.
const (
	TypeInit                = "init"
	TypeThinking            = "thinking"
	TypeToolStart           = "tool_start"
	TypeToolProgress        = "tool_progress"
	TypeToolEnd             = "tool_end"
	TypeToolError           = "tool_error"
	TypeToolLimit           = "tool_limit"
	TypeContextCleared      = "context_cleared"
	TypeKnowledgeRetrieved  = "knowledge_retrieved"
	TypeHypothesisFormed    = "hypothesis_formed"
	TypeHypothesisPruned    = "hypothesis_pruned"
	TypeHypothesisConfirmed = "hypothesis_confirmed"
	TypeEvidenceGathered    = "evidence_gathered"
	TypeAnswerStart         = "answer_start"
	TypeDone                = "done"
)

// Internal event types — emitted by the state machine and forwarded to
// subscribers that want the full investigation trace.
const (
	TypePhaseChange        = "phase_change"
	TypeTriageComplete     = "triage_complete"
	TypeHypothesisUpdated  = "hypothesis_updated"
	TypeEvidenceEvaluated  = "evidence_evaluated"
	TypeConclusionReached  = "conclusion_reached"
	TypeRemediationStarted = "remediation_started"
	TypeStepCompleted      = "step_completed"
	TypeError              = "error"
)

// Event is one tagged entry in an investigation's event stream.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}
