package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/agent/prompt"
	"github.com/rootline-ai/rootline/pkg/events"
	"github.com/rootline-ai/rootline/pkg/models"
	"github.com/rootline-ai/rootline/pkg/scratchpad"
)

// triagePrefetch is the ordered list of context sources tried before the
// triage call: richest signal first, broad inventory last. Prefetching
// stops at the first source that yields a meaningful result.
var triagePrefetch = []struct {
	tool  string
	label string
	args  func(r *run) map[string]any
}{
	{
		tool:  "incident-detail",
		label: "Incident details",
		args: func(r *run) map[string]any {
			id := r.sm.State().IncidentID
			if id == "" {
				return nil
			}
			return map[string]any{"incidentId": id}
		},
	},
	{
		tool:  "alarms-query",
		label: "Active alarms",
		args:  func(*run) map[string]any { return map[string]any{"state": "ALARM"} },
	},
	{
		tool:  "monitors-query",
		label: "Triggered monitors",
		args:  func(*run) map[string]any { return map[string]any{"state": "triggered"} },
	},
	{
		tool:  "inventory",
		label: "Infrastructure inventory",
		args:  func(*run) map[string]any { return map[string]any{} },
	},
}

// triage gathers context, asks the model for a structured assessment, and
// records the outcome. A model that fails twice still produces a usable
// triage: the raw query at medium severity.
func (r *run) triage(ctx context.Context, query, additionalContext string) {
	sections := r.prefetchContext(ctx)

	if bundle := r.retrieveKnowledge(ctx, models.KnowledgeQuery{Query: query}); !bundle.Empty() {
		sections["Knowledge"] = prompt.KnowledgeBlock(bundle)
	}

	triage, err := chat(ctx, r.o, r.o.builder.Triage(query, additionalContext, sections), prompt.ParseTriage)
	if err != nil {
		r.recordError("triage failed", err)
		triage = &models.TriageResult{
			Summary:  query,
			Severity: models.SeverityMedium,
		}
	}
	triage.IncidentID = r.sm.State().IncidentID

	if err := r.sm.SetTriageResult(triage); err != nil {
		r.recordError("failed to record triage", err)
		return
	}
	r.logEntry(scratchpad.Entry{
		Type:    scratchpad.EntryThinking,
		Content: fmt.Sprintf("triage: %s (severity %s)", triage.Summary, triage.Severity),
	})

	// With services and symptoms identified, re-query knowledge for
	// incident-specific material; the TTL cache absorbs the cost.
	if len(triage.AffectedServices) > 0 || len(triage.Symptoms) > 0 {
		r.retrieveKnowledge(ctx, models.KnowledgeQuery{
			Query:         query,
			IncidentID:    triage.IncidentID,
			Services:      triage.AffectedServices,
			Symptoms:      triage.Symptoms,
			ErrorMessages: triage.ErrorMessages,
			TimeWindow:    triage.TimeWindow,
		})
	}
}

// prefetchContext pulls pre-triage signal from whichever context tools are
// registered, stopping at the first meaningful result. Failures move on to
// the next source.
func (r *run) prefetchContext(ctx context.Context) map[string]string {
	sections := make(map[string]string)
	for _, src := range triagePrefetch {
		if ctx.Err() != nil {
			return sections
		}
		if !r.o.tools.Has(src.tool) {
			continue
		}
		args := src.args(r)
		if args == nil {
			continue
		}
		value, err := r.executeCall(ctx, agent.ToolCall{ID: "triage-" + src.tool, Name: src.tool, Args: args}, "")
		if err != nil {
			continue
		}
		rendered := renderValue(value)
		if !meaningfulSignal(rendered) {
			continue
		}
		sections[src.label] = rendered
		break
	}
	return sections
}

// meaningfulSignal filters out empty and trivially empty-shaped results so
// a blank alarm list does not stop the prefetch cascade.
func meaningfulSignal(rendered string) bool {
	trimmed := strings.TrimSpace(rendered)
	switch trimmed {
	case "", "null", "{}", "[]", `{"items":[]}`, `{"alarms":[]}`, `{"monitors":[]}`:
		return false
	}
	return len(trimmed) > 2
}

// retrieveKnowledge fetches from the knowledge backend when one is wired,
// caching the bundle on the run for scoring and prompt assembly.
func (r *run) retrieveKnowledge(ctx context.Context, query models.KnowledgeQuery) *models.KnowledgeBundle {
	if r.o.knowledge == nil {
		return &models.KnowledgeBundle{}
	}
	bundle, err := r.o.knowledge.Retrieve(ctx, query)
	if err != nil {
		r.o.logger.Warn("knowledge retrieval failed", "error", err)
		return &models.KnowledgeBundle{}
	}
	r.bundle = bundle
	r.o.emitter.Emit(events.TypeKnowledgeRetrieved, events.KnowledgeRetrievedPayload{
		Runbooks:    len(bundle.Runbooks),
		Postmortems: len(bundle.Postmortems),
		KnownIssues: len(bundle.KnownIssues),
	})
	return bundle
}

// hypothesize asks the model for initial hypotheses and admits them into
// the tree. A model that fails twice leaves the tree empty; the
// investigation then concludes with what triage found.
func (r *run) hypothesize(ctx context.Context) {
	if err := r.sm.TransitionTo(models.PhaseHypothesize, "triage complete"); err != nil {
		r.recordError("failed to enter hypothesize", err)
		return
	}

	proposed, err := chat(ctx, r.o, r.o.builder.Hypotheses(r.sm.State().Triage), prompt.ParseHypotheses)
	if err != nil {
		r.recordError("hypothesis generation failed", err)
		return
	}

	for _, h := range proposed {
		admitted, err := r.sm.AddHypothesis(h)
		if err != nil {
			r.recordError("hypothesis rejected", err)
			continue
		}
		r.logEntry(scratchpad.Entry{
			Type:         scratchpad.EntryHypothesisFormed,
			HypothesisID: admitted.ID,
			Content:      admitted.Statement,
		})
	}
}
