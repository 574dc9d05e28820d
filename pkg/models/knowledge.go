package models

// KnowledgeType tags what kind of document a knowledge item is.
type KnowledgeType string

const (
	KnowledgeRunbook      KnowledgeType = "runbook"
	KnowledgePostmortem   KnowledgeType = "postmortem"
	KnowledgeArchitecture KnowledgeType = "architecture"
	KnowledgeKnownIssue   KnowledgeType = "known_issue"
)

// KnowledgeItem is one retrieved document fragment.
type KnowledgeItem struct {
	ID         string        `json:"id"`
	DocumentID string        `json:"documentId"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	Type       KnowledgeType `json:"type"`
	Services   []string      `json:"services,omitempty"`
	Score      float64       `json:"score"`
	SourceURL  string        `json:"sourceUrl,omitempty"`
}

// KnowledgeQuery is the retrieval request sent to the knowledge backend.
type KnowledgeQuery struct {
	Query         string     `json:"query,omitempty"`
	IncidentID    string     `json:"incidentId,omitempty"`
	Services      []string   `json:"services,omitempty"`
	Symptoms      []string   `json:"symptoms,omitempty"`
	ErrorMessages []string   `json:"errorMessages,omitempty"`
	TimeWindow    TimeWindow `json:"timeWindow,omitempty"`
}

// KnowledgeBundle groups retrieval results by document type.
type KnowledgeBundle struct {
	Runbooks     []KnowledgeItem `json:"runbooks"`
	Postmortems  []KnowledgeItem `json:"postmortems"`
	Architecture []KnowledgeItem `json:"architecture"`
	KnownIssues  []KnowledgeItem `json:"knownIssues"`
}

// Empty reports whether the bundle holds no items at all.
func (b *KnowledgeBundle) Empty() bool {
	if b == nil {
		return true
	}
	return len(b.Runbooks) == 0 && len(b.Postmortems) == 0 &&
		len(b.Architecture) == 0 && len(b.KnownIssues) == 0
}
