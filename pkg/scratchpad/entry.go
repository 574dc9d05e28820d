package scratchpad

import (
	"time"

	"github.com/rootline-ai/rootline/pkg/summarizer"
)

// EntryType tags a scratchpad log entry.
type EntryType string

const (
	EntryInit                EntryType = "init"
	EntryThinking            EntryType = "thinking"
	EntryToolResult          EntryType = "tool_result"
	EntryHypothesisFormed    EntryType = "hypothesis_formed"
	EntryHypothesisPruned    EntryType = "hypothesis_pruned"
	EntryHypothesisConfirmed EntryType = "hypothesis_confirmed"
	EntryEvidenceGathered    EntryType = "evidence_gathered"
	EntryRemediationStarted  EntryType = "remediation_started"
	EntryRemediationStep     EntryType = "remediation_step"
	EntryRemediationComplete EntryType = "remediation_complete"
)

// Entry is one line of the session log. Fields beyond Type and Timestamp are
// populated per entry type; unused fields are omitted from the JSON line.
type Entry struct {
	Type      EntryType `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	// Free-text content for init and thinking entries.
	Content string `json:"content,omitempty"`

	// Tool-result fields.
	Tool     string                        `json:"tool,omitempty"`
	CallID   string                        `json:"callId,omitempty"`
	ResultID string                        `json:"resultId,omitempty"`
	Args     map[string]any                `json:"args,omitempty"`
	Result   any                           `json:"result,omitempty"`
	Compact  *summarizer.CompactToolResult `json:"compact,omitempty"`

	// Hypothesis and evidence fields.
	HypothesisID string `json:"hypothesisId,omitempty"`

	// Structured extras (remediation step details, evidence metadata).
	Data map[string]any `json:"data,omitempty"`
}

// Tier is the in-memory state of a stored tool result.
type Tier string

const (
	TierFull    Tier = "full"
	TierCompact Tier = "compact"
	TierCleared Tier = "cleared"
)

// TieredResult is one tool result in the arena. The full body is retained
// for drill-down regardless of tier; Tier controls only how the result is
// rendered into prompt context.
type TieredResult struct {
	ResultID  string
	Tool      string
	CallID    string
	Args      map[string]any
	Tier      Tier
	Full      any
	Compact   *summarizer.CompactToolResult
	Tokens    int
	Timestamp time.Time
}

// CompactionPlan classifies stored results by target tier. Result IDs not
// named by any list keep their current tier.
type CompactionPlan struct {
	KeepFull    []string `json:"keepFull"`
	KeepCompact []string `json:"keepCompact"`
	Clear       []string `json:"clear"`
}
