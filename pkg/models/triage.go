package models

import "time"

// Severity grades the user-visible impact of an incident.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// NormalizeSeverity maps unknown severity strings to medium — the safe
// middle ground when the LLM invents a value.
func NormalizeSeverity(s string) Severity {
	sev := Severity(s)
	if sev.Valid() {
		return sev
	}
	return SeverityMedium
}

// TimeWindow bounds the period an investigation looks at.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IsZero reports whether the window is unset.
func (w TimeWindow) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// TriageResult is the structured outcome of the triage phase.
type TriageResult struct {
	IncidentID       string     `json:"incidentId,omitempty"`
	Summary          string     `json:"summary"`
	AffectedServices []string   `json:"affectedServices"`
	Symptoms         []string   `json:"symptoms"`
	ErrorMessages    []string   `json:"errorMessages"`
	Severity         Severity   `json:"severity"`
	TimeWindow       TimeWindow `json:"timeWindow"`
	RelatedKnowledge string     `json:"relatedKnowledge,omitempty"`
}
