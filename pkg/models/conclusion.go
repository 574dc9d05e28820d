package models

// EvidenceLink is one entry in a conclusion's evidence chain.
type EvidenceLink struct {
	Finding  string           `json:"finding"`
	Source   string           `json:"source"` // hypothesis ID or tool name
	Strength EvidenceStrength `json:"strength"`
}

// Conclusion is the final root-cause statement of an investigation.
// The evidence chain contains strong and weak evidence only; contradicting
// evidence is surfaced through AlternativeExplanations instead.
type Conclusion struct {
	RootCause               string          `json:"rootCause"`
	Confidence              ConfidenceLabel `json:"confidence"`
	ConfirmedHypothesisID   string          `json:"confirmedHypothesisId,omitempty"`
	AffectedServices        []string        `json:"affectedServices,omitempty"`
	EvidenceChain           []EvidenceLink  `json:"evidenceChain,omitempty"`
	AlternativeExplanations []string        `json:"alternativeExplanations,omitempty"`
	Unknowns                []string        `json:"unknowns,omitempty"`
}
