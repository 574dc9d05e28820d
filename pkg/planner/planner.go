// Package planner turns a hypothesis into a prioritized list of causal
// queries: concrete tool invocations chosen to confirm or refute the
// hypothesis. Planning is template-driven pattern matching over the
// hypothesis statement, followed by three adaptation passes: over-broad
// queries inherit triage context, unavailable tools are swapped through
// fallback chains, and log queries are enriched with an inferred log group.
package planner

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rootline-ai/rootline/pkg/models"
)

// fallbackPenalty is subtracted from a query's relevance per hop down a
// fallback chain, capped so a fallback never loses more than 0.1.
const (
	fallbackPenalty    = 0.05
	maxFallbackPenalty = 0.1
)

// defaultWindow is inherited by over-broad queries.
const defaultWindow = 60 * time.Minute

// broadnessKeys: a query naming none of these is considered too broad to be
// useful and gets refined with triage context.
var broadnessKeys = []string{"service", "services", "resource", "filter", "window", "start", "end"}

// Hints carry context inferred mid-investigation, such as a log group
// derived from alarm dimensions or inventory.
type Hints struct {
	LogGroup     string
	FunctionName string
}

// Config controls planning.
type Config struct {
	// AvailableTools is the runtime tool set. Empty means all tools are
	// assumed available.
	AvailableTools []string

	// DefaultLogGroup is used for log queries when no group can be
	// inferred; typically from the LOG_GROUP demo environment setting.
	DefaultLogGroup string
}

// Planner generates causal queries for hypotheses.
type Planner struct {
	available       map[string]bool
	defaultLogGroup string
}

// New creates a planner for the given runtime environment.
func New(cfg Config) *Planner {
	p := &Planner{defaultLogGroup: cfg.DefaultLogGroup}
	if len(cfg.AvailableTools) > 0 {
		p.available = make(map[string]bool, len(cfg.AvailableTools))
		for _, name := range cfg.AvailableTools {
			p.available[name] = true
		}
	}
	return p
}

// PlanQueries matches the hypothesis against the template library and
// returns adapted queries ordered by descending relevance. An empty result
// means no template matched; the orchestrator falls back to LLM-proposed
// tool calls in that case.
func (p *Planner) PlanQueries(h *models.Hypothesis, triage *models.TriageResult, hints Hints) []models.CausalQuery {
	if h == nil {
		return nil
	}
	statement := strings.ToLower(h.Statement)

	var queries []models.CausalQuery
	for _, tmpl := range templateLibrary {
		if !tmpl.pattern.MatchString(statement) {
			continue
		}
		q := models.CausalQuery{
			ID:              uuid.NewString(),
			HypothesisID:    h.ID,
			QueryType:       tmpl.queryType,
			Tool:            tmpl.tool,
			Parameters:      copyParams(tmpl.params),
			ExpectedOutcome: tmpl.expected,
			RelevanceScore:  tmpl.relevance,
		}
		if IsBroadQuery(q) {
			RefineQuery(&q, triage)
		}
		p.adaptToEnvironment(&q)
		p.enrichLogQuery(&q, hints)
		queries = append(queries, q)
	}

	sort.SliceStable(queries, func(i, j int) bool {
		return queries[i].RelevanceScore > queries[j].RelevanceScore
	})
	return queries
}

// IsBroadQuery reports whether the query names no service, resource,
// filter pattern, or time window.
func IsBroadQuery(q models.CausalQuery) bool {
	for _, key := range broadnessKeys {
		if v, ok := q.Parameters[key]; ok && v != nil && v != "" {
			return false
		}
	}
	return true
}

// RefineQuery narrows an over-broad query by inheriting the triage's first
// affected service and a default 60-minute window ending now (or the
// triage window when one was identified).
func RefineQuery(q *models.CausalQuery, triage *models.TriageResult) {
	if q.Parameters == nil {
		q.Parameters = map[string]any{}
	}
	if triage != nil && len(triage.AffectedServices) > 0 {
		q.Parameters["service"] = triage.AffectedServices[0]
	}
	window := models.TimeWindow{}
	if triage != nil {
		window = triage.TimeWindow
	}
	if window.IsZero() {
		end := time.Now().UTC()
		window = models.TimeWindow{Start: end.Add(-defaultWindow), End: end}
	}
	q.Parameters["start"] = window.Start.Format(time.RFC3339)
	q.Parameters["end"] = window.End.Format(time.RFC3339)
}

// adaptToEnvironment swaps the query's tool through its fallback chain when
// the preferred tool is unavailable, applying a small relevance penalty per
// hop. A query whose whole chain is unavailable keeps the last fallback;
// execution will surface the unknown tool.
func (p *Planner) adaptToEnvironment(q *models.CausalQuery) {
	if p.available == nil || p.available[q.Tool] {
		return
	}
	penalty := 0.0
	for _, fallback := range fallbackChains[q.Tool] {
		penalty += fallbackPenalty
		if penalty > maxFallbackPenalty {
			penalty = maxFallbackPenalty
		}
		if p.available[fallback] {
			q.Tool = fallback
			q.RelevanceScore -= penalty
			if q.RelevanceScore < 0 {
				q.RelevanceScore = 0
			}
			return
		}
	}
}

// enrichLogQuery fills in a log group for log-tool queries that lack one:
// first from an inferred function name, then from the inferred group, then
// from the configured default.
func (p *Planner) enrichLogQuery(q *models.CausalQuery, hints Hints) {
	if q.Tool != ToolLogs {
		return
	}
	if v, ok := q.Parameters["logGroup"]; ok && v != nil && v != "" {
		return
	}
	group := ""
	switch {
	case hints.FunctionName != "":
		group = fmt.Sprintf("/aws/lambda/%s", hints.FunctionName)
	case hints.LogGroup != "":
		group = hints.LogGroup
	case p.defaultLogGroup != "":
		group = p.defaultLogGroup
	}
	if group != "" {
		if q.Parameters == nil {
			q.Parameters = map[string]any{}
		}
		q.Parameters["logGroup"] = group
	}
}

func copyParams(params map[string]any) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}
