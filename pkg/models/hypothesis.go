// Package models defines the core data model for Rootline investigations.
// These types are pure data — all behavior lives in the packages that own
// them (pkg/investigation for the state machine, pkg/planner for queries).
package models

import "time"

// HypothesisCategory classifies what layer of the system a hypothesis blames.
type HypothesisCategory string

const (
	CategoryInfrastructure HypothesisCategory = "infrastructure"
	CategoryApplication    HypothesisCategory = "application"
	CategoryDependency     HypothesisCategory = "dependency"
	CategoryConfiguration  HypothesisCategory = "configuration"
	CategoryCapacity       HypothesisCategory = "capacity"
	CategoryUnknown        HypothesisCategory = "unknown"
)

// Valid reports whether c is a known category.
func (c HypothesisCategory) Valid() bool {
	switch c {
	case CategoryInfrastructure, CategoryApplication, CategoryDependency,
		CategoryConfiguration, CategoryCapacity, CategoryUnknown:
		return true
	}
	return false
}

// NormalizeCategory maps unknown or empty category strings to CategoryUnknown.
// LLM output is not trusted to stay inside the enum.
func NormalizeCategory(s string) HypothesisCategory {
	c := HypothesisCategory(s)
	if c.Valid() {
		return c
	}
	return CategoryUnknown
}

// EvidenceStrength classifies how well collected data supports a hypothesis.
type EvidenceStrength string

const (
	EvidenceStrong        EvidenceStrength = "strong"
	EvidenceWeak          EvidenceStrength = "weak"
	EvidenceNone          EvidenceStrength = "none"
	EvidenceContradicting EvidenceStrength = "contradicting"
	EvidencePending       EvidenceStrength = "pending"
)

// Valid reports whether s is a known evidence strength.
func (s EvidenceStrength) Valid() bool {
	switch s {
	case EvidenceStrong, EvidenceWeak, EvidenceNone, EvidenceContradicting, EvidencePending:
		return true
	}
	return false
}

// HypothesisStatus is the lifecycle state of a hypothesis.
type HypothesisStatus string

const (
	HypothesisPending       HypothesisStatus = "pending"
	HypothesisInvestigating HypothesisStatus = "investigating"
	HypothesisConfirmed     HypothesisStatus = "confirmed"
	HypothesisPruned        HypothesisStatus = "pruned"
)

// Hypothesis is a testable statement about the root cause of an incident.
// Instances are owned by the investigation state machine; IDs are stable
// ("h_1", "h_2", ...) and children reference other hypotheses by ID.
type Hypothesis struct {
	ID                 string             `json:"id"`
	Statement          string             `json:"statement"`
	Category           HypothesisCategory `json:"category"`
	Priority           int                `json:"priority"` // 1 (highest) .. 5
	ConfirmingEvidence string             `json:"confirmingEvidence,omitempty"`
	RefutingEvidence   string             `json:"refutingEvidence,omitempty"`
	Queries            []CausalQuery      `json:"queries"`
	QueryResults       map[string]any     `json:"queryResults"` // queryID → raw result
	Reasoning          string             `json:"reasoning,omitempty"`
	Confidence         int                `json:"confidence"` // 0..100
	EvidenceStrength   EvidenceStrength   `json:"evidenceStrength"`
	Status             HypothesisStatus   `json:"status"`
	ParentID           string             `json:"parentId,omitempty"`
	Children           []string           `json:"children,omitempty"` // insertion order
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// Terminal reports whether the hypothesis can no longer change status.
func (h *Hypothesis) Terminal() bool {
	return h.Status == HypothesisConfirmed || h.Status == HypothesisPruned
}

// Active reports whether the hypothesis is still worth investigating.
func (h *Hypothesis) Active() bool {
	return h.Status == HypothesisPending || h.Status == HypothesisInvestigating
}
