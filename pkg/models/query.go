package models

// QueryType says what role a causal query plays for its hypothesis.
type QueryType string

const (
	QueryExploratory QueryType = "exploratory"
	QueryConfirming  QueryType = "confirming"
	QueryRefuting    QueryType = "refuting"
)

// CausalQuery is a planned tool invocation expressly chosen to confirm or
// refute a specific hypothesis. Produced by the planner, executed by the
// orchestrator, and recorded on the hypothesis under its query ID.
type CausalQuery struct {
	ID              string         `json:"id"`
	HypothesisID    string         `json:"hypothesisId"`
	QueryType       QueryType      `json:"queryType"`
	Tool            string         `json:"tool"`
	Parameters      map[string]any `json:"parameters"`
	ExpectedOutcome string         `json:"expectedOutcome,omitempty"`
	RelevanceScore  float64        `json:"relevanceScore"` // 0..1
}
