package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/events"
	"github.com/rootline-ai/rootline/pkg/executor"
	"github.com/rootline-ai/rootline/pkg/models"
	"github.com/rootline-ai/rootline/pkg/scorer"
	"github.com/rootline-ai/rootline/pkg/scratchpad"
)

// investigate runs the hypothesis loop: pick the most promising active
// hypothesis, gather evidence for it, evaluate, apply the verdict, repeat.
// The loop ends when a hypothesis is confirmed, nothing is left to
// investigate, the iteration budget runs out, or the context is cancelled.
func (r *run) investigate(ctx context.Context) {
	for r.sm.CanContinue() && ctx.Err() == nil {
		h := r.sm.NextHypothesis()
		if h == nil {
			return
		}
		r.sm.IncrementIteration()

		if err := r.sm.TransitionTo(models.PhaseInvestigate, "investigating "+h.ID); err != nil {
			r.recordError("failed to enter investigate", err)
			return
		}
		if err := r.sm.SetCurrentHypothesis(h.ID); err != nil {
			r.recordError("failed to select hypothesis", err)
			return
		}
		r.o.logger.Info("investigating hypothesis", "id", h.ID, "statement", h.Statement)

		queries := r.planner.PlanQueries(h, r.sm.State().Triage, r.hints)
		if len(queries) == 0 {
			r.logEntry(scratchpad.Entry{
				Type:         scratchpad.EntryThinking,
				HypothesisID: h.ID,
				Content:      "no query templates matched; evaluating on existing evidence",
			})
		} else {
			if err := r.sm.AttachQueries(h.ID, queries); err != nil {
				r.recordError("failed to attach queries", err)
			}
			r.executeQueries(ctx, h, queries)
		}

		if err := r.sm.TransitionTo(models.PhaseEvaluate, "evidence gathered for "+h.ID); err != nil {
			r.recordError("failed to enter evaluate", err)
			return
		}
		r.evaluate(ctx, h)

		if r.sm.ConfirmedHypothesis() != nil {
			return
		}
	}
}

// executeQueries resolves and runs the planned queries for one hypothesis.
// Cache hits short-circuit; the rest run as one grouped batch. Every query
// ends up with a recorded result, error results included.
func (r *run) executeQueries(ctx context.Context, h *models.Hypothesis, queries []models.CausalQuery) {
	var tasks []executor.Task
	confirming := make(map[string]bool)

	for _, q := range queries {
		if q.QueryType == models.QueryConfirming {
			confirming[q.ID] = true
		}
		call := agent.ToolCall{ID: q.ID, Name: q.Tool, Args: q.Parameters}

		r.checkLimits(q.Tool, q.Parameters)

		if r.o.cache != nil {
			if cached, ok := r.o.cache.Get(q.Tool, q.Parameters); ok {
				r.o.emitter.Emit(events.TypeToolEnd, events.ToolEndPayload{
					CallID: q.ID, Tool: q.Tool, FromCache: true,
				})
				r.recordQueryOutcome(ctx, h, call, cached, nil, confirming[q.ID])
				continue
			}
		}

		tool, err := r.o.tools.Get(q.Tool)
		if err != nil {
			r.o.emitter.Emit(events.TypeToolError, events.ToolErrorPayload{
				CallID: q.ID, Tool: q.Tool, Error: err.Error(),
			})
			r.recordQueryOutcome(ctx, h, call, nil, err, false)
			continue
		}
		r.o.emitter.Emit(events.TypeToolStart, events.ToolStartPayload{
			CallID: q.ID, Tool: q.Tool, Args: q.Parameters,
		})
		tasks = append(tasks, executor.Task{Call: call, Tool: tool})
	}

	if len(tasks) == 0 {
		return
	}
	batch := r.o.exec.ExecuteGrouped(ctx, tasks)
	callsByID := make(map[string]agent.ToolCall, len(tasks))
	for _, task := range tasks {
		callsByID[task.Call.ID] = task.Call
	}
	for _, result := range batch.Results {
		call := callsByID[result.CallID]
		if result.IsError() {
			r.o.emitter.Emit(events.TypeToolError, events.ToolErrorPayload{
				BatchID: batch.BatchID, CallID: result.CallID, Tool: result.Tool,
				Error: result.Err.Error(), TimedOut: result.TimedOut,
				DurationMs: result.Duration.Milliseconds(),
			})
			r.recordQueryOutcome(ctx, h, call, nil, result.Err, false)
			continue
		}
		if r.o.cache != nil {
			r.o.cache.Set(result.Tool, call.Args, result.Value)
		}
		r.o.emitter.Emit(events.TypeToolEnd, events.ToolEndPayload{
			BatchID: batch.BatchID, CallID: result.CallID, Tool: result.Tool,
			DurationMs: result.Duration.Milliseconds(),
		})
		r.recordQueryOutcome(ctx, h, call, result.Value, nil, confirming[result.CallID])
	}
}

// recordQueryOutcome attaches one query's outcome to the hypothesis, the
// scratchpad, and the scoring signals.
func (r *run) recordQueryOutcome(ctx context.Context, h *models.Hypothesis, call agent.ToolCall, value any, execErr error, confirming bool) {
	recorded := value
	if execErr != nil {
		recorded = map[string]any{"error": execErr.Error()}
	}
	if err := r.sm.RecordQueryResult(h.ID, call.ID, recorded); err != nil {
		r.recordError("failed to record query result", err)
	}
	if r.o.pad != nil {
		compact := r.o.summaries.Summarize(call.Name, recorded)
		if _, err := r.o.pad.AppendToolResult(ctx, call, recorded, compact); err != nil {
			r.o.logger.Warn("scratchpad tool-result append failed", "tool", call.Name, "error", err)
		}
	}
	r.logEntry(scratchpad.Entry{Type: scratchpad.EntryEvidenceGathered, HypothesisID: h.ID, CallID: call.ID})
	if execErr != nil {
		return
	}
	if confirming {
		r.directEvidence[h.ID] = true
	}
	r.eventTimes[h.ID] = append(r.eventTimes[h.ID], extractEventTimes(value, 0)...)
	r.updateHints(value)
}

// evaluate asks the scorer for a verdict and applies it, admitting
// branch-proposed sub-hypotheses under the current one.
func (r *run) evaluate(ctx context.Context, h *models.Hypothesis) {
	parsed, err := r.o.scorer.Score(ctx, h, r.signals(h))
	if err != nil {
		r.recordError("evaluation failed for "+h.ID, err)
	}
	if parsed == nil {
		return
	}

	if err := r.sm.ApplyEvaluation(parsed.Evaluation); err != nil {
		r.recordError("failed to apply evaluation", err)
		return
	}

	switch parsed.Evaluation.Action {
	case models.ActionConfirm:
		r.logEntry(scratchpad.Entry{
			Type: scratchpad.EntryHypothesisConfirmed, HypothesisID: h.ID, Content: h.Statement,
		})
	case models.ActionPrune:
		r.logEntry(scratchpad.Entry{
			Type: scratchpad.EntryHypothesisPruned, HypothesisID: h.ID, Content: parsed.Evaluation.Reasoning,
		})
	case models.ActionBranch:
		for _, sub := range parsed.SubHypotheses {
			sub.ParentID = h.ID
			admitted, err := r.sm.AddHypothesis(sub)
			if err != nil {
				r.recordError("sub-hypothesis rejected", err)
				continue
			}
			r.logEntry(scratchpad.Entry{
				Type: scratchpad.EntryHypothesisFormed, HypothesisID: admitted.ID, Content: admitted.Statement,
			})
		}
	}
}

// signals assembles the locally known scoring context for one hypothesis.
func (r *run) signals(h *models.Hypothesis) scorer.Signals {
	sig := scorer.Signals{
		EventTimes:     r.eventTimes[h.ID],
		DirectEvidence: r.directEvidence[h.ID],
	}
	if triage := r.sm.State().Triage; triage != nil {
		sig.IncidentStart = triage.TimeWindow.Start
	}
	if r.bundle != nil {
		sig.HistoricalMatch = scorer.HistoricalMatch(h, r.bundle)
	}
	return sig
}

// checkLimits consults the scratchpad's graceful limits and surfaces any
// warning as a tool_limit event. Warnings never block the call.
func (r *run) checkLimits(tool string, args map[string]any) {
	if r.o.pad == nil {
		return
	}
	check := r.o.pad.CanCallTool(tool, args)
	if check.Warning == "" {
		return
	}
	r.o.emitter.Emit(events.TypeToolLimit, events.ToolLimitPayload{
		Tool:    tool,
		Count:   r.o.pad.ToolCallCount(tool),
		Warning: check.Warning,
	})
}

// executeCall runs one standalone tool call through the cache and executor,
// with full event and scratchpad bookkeeping. Used outside the query batch
// path (triage prefetch, remediation support lookups).
func (r *run) executeCall(ctx context.Context, call agent.ToolCall, hypothesisID string) (any, error) {
	r.checkLimits(call.Name, call.Args)

	if r.o.cache != nil {
		if cached, ok := r.o.cache.Get(call.Name, call.Args); ok {
			r.o.emitter.Emit(events.TypeToolEnd, events.ToolEndPayload{
				CallID: call.ID, Tool: call.Name, FromCache: true,
			})
			return cached, nil
		}
	}

	tool, err := r.o.tools.Get(call.Name)
	if err != nil {
		r.o.emitter.Emit(events.TypeToolError, events.ToolErrorPayload{
			CallID: call.ID, Tool: call.Name, Error: err.Error(),
		})
		return nil, err
	}

	r.o.emitter.Emit(events.TypeToolStart, events.ToolStartPayload{
		CallID: call.ID, Tool: call.Name, Args: call.Args,
	})
	batch := r.o.exec.ExecuteBatch(ctx, []executor.Task{{Call: call, Tool: tool}})
	if len(batch.Results) == 0 {
		return nil, fmt.Errorf("call %s was not executed: %w", call.Name, ctx.Err())
	}
	result := batch.Results[0]
	if result.IsError() {
		r.o.emitter.Emit(events.TypeToolError, events.ToolErrorPayload{
			BatchID: batch.BatchID, CallID: call.ID, Tool: call.Name,
			Error: result.Err.Error(), TimedOut: result.TimedOut,
			DurationMs: result.Duration.Milliseconds(),
		})
		return nil, result.Err
	}

	if r.o.cache != nil {
		r.o.cache.Set(call.Name, call.Args, result.Value)
	}
	r.o.emitter.Emit(events.TypeToolEnd, events.ToolEndPayload{
		BatchID: batch.BatchID, CallID: call.ID, Tool: call.Name,
		DurationMs: result.Duration.Milliseconds(),
	})
	if r.o.pad != nil {
		compact := r.o.summaries.Summarize(call.Name, result.Value)
		if _, err := r.o.pad.AppendToolResult(ctx, call, result.Value, compact); err != nil {
			r.o.logger.Warn("scratchpad tool-result append failed", "tool", call.Name, "error", err)
		}
	}
	if hypothesisID != "" {
		if err := r.sm.RecordQueryResult(hypothesisID, call.ID, result.Value); err != nil {
			r.recordError("failed to record query result", err)
		}
	}
	return result.Value, nil
}

// timestampKeys are the result fields mined for temporal correlation.
var timestampKeys = map[string]bool{
	"timestamp":  true,
	"time":       true,
	"startedAt":  true,
	"deployedAt": true,
	"occurredAt": true,
	"updatedAt":  true,
}

// extractEventTimes walks a result for timestamp-shaped fields, bounded to
// four levels of nesting.
func extractEventTimes(value any, depth int) []time.Time {
	if depth > 4 {
		return nil
	}
	var out []time.Time
	switch v := value.(type) {
	case map[string]any:
		for key, child := range v {
			if s, ok := child.(string); ok && timestampKeys[key] {
				if t, err := time.Parse(time.RFC3339, s); err == nil {
					out = append(out, t.UTC())
				}
				continue
			}
			out = append(out, extractEventTimes(child, depth+1)...)
		}
	case []any:
		for _, item := range v {
			out = append(out, extractEventTimes(item, depth+1)...)
		}
	}
	return out
}

// updateHints mines a result for log-group and function-name context that
// improves later log queries.
func (r *run) updateHints(value any) {
	m, ok := value.(map[string]any)
	if !ok {
		return
	}
	if r.hints.LogGroup == "" {
		if s, ok := m["logGroup"].(string); ok && s != "" {
			r.hints.LogGroup = s
		}
	}
	if r.hints.FunctionName == "" {
		if s, ok := m["functionName"].(string); ok && s != "" {
			r.hints.FunctionName = s
		}
	}
	for _, child := range m {
		if r.hints.LogGroup != "" && r.hints.FunctionName != "" {
			return
		}
		switch c := child.(type) {
		case map[string]any:
			r.updateHints(c)
		case []any:
			for _, item := range c {
				r.updateHints(item)
			}
		}
	}
}

// renderValue flattens a tool result to text for prompt inclusion.
func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(raw)
	}
}
