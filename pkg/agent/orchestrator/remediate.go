package orchestrator

import (
	"context"
	"fmt"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/agent/prompt"
	"github.com/rootline-ai/rootline/pkg/models"
	"github.com/rootline-ai/rootline/pkg/scratchpad"
)

// skillTool is the registered name of the skill runner, when one exists.
const skillTool = "skill"

// remediate proposes and (where allowed) executes a remediation plan.
// Runs only when enabled and the conclusion named an actual root cause.
func (r *run) remediate(ctx context.Context) {
	state := r.sm.State()
	if !r.o.opts.EnableRemediation || state.Conclusion == nil ||
		state.Conclusion.RootCause == conclusionNotDetermined ||
		r.sm.Phase() != models.PhaseConclude {
		return
	}
	if err := r.sm.TransitionTo(models.PhaseRemediate, "root cause identified"); err != nil {
		r.recordError("failed to enter remediate", err)
		return
	}

	plan, err := chat(ctx, r.o,
		r.o.builder.Remediation(state.Conclusion, r.runbookTitles(), r.codeFixCandidates(ctx)),
		prompt.ParseRemediation)
	if err != nil {
		r.recordError("remediation planning failed", err)
		return
	}
	if err := r.sm.SetRemediationPlan(plan); err != nil {
		r.recordError("failed to record remediation plan", err)
		return
	}
	r.logEntry(scratchpad.Entry{Type: scratchpad.EntryRemediationStarted, Content: plan.Summary})

	for _, step := range plan.Steps {
		if ctx.Err() != nil {
			return
		}
		r.executeStep(ctx, step)
	}
	r.logEntry(scratchpad.Entry{Type: scratchpad.EntryRemediationComplete})
}

// runbookTitles lists retrieved runbooks for the remediation prompt.
func (r *run) runbookTitles() []string {
	if r.bundle == nil {
		return nil
	}
	var titles []string
	for _, item := range r.bundle.Runbooks {
		titles = append(titles, item.Title)
	}
	return titles
}

// codeFixCandidates searches the codebase for fix locations when a code
// search tool is registered. Best effort; failures return nothing.
func (r *run) codeFixCandidates(ctx context.Context) []string {
	if !r.o.tools.Has("code-search") {
		return nil
	}
	conclusion := r.sm.State().Conclusion
	value, err := r.executeCall(ctx, agent.ToolCall{
		ID:   "remediation-code-search",
		Name: "code-search",
		Args: map[string]any{"query": conclusion.RootCause},
	}, "")
	if err != nil {
		return nil
	}

	m, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	matches, ok := m["matches"].([]any)
	if !ok {
		return nil
	}
	var candidates []string
	for _, raw := range matches {
		match, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		path, _ := match["path"].(string)
		summary, _ := match["summary"].(string)
		switch {
		case path != "" && summary != "":
			candidates = append(candidates, path+": "+summary)
		case path != "":
			candidates = append(candidates, path)
		}
	}
	return candidates
}

// executeStep resolves approval and runs one plan step. Skill-backed steps
// execute through the skill tool; raw commands without a matching skill
// are never run here and stay pending for a human.
func (r *run) executeStep(ctx context.Context, step models.RemediationStep) {
	if !r.stepApproved(ctx, step) {
		r.updateStep(step.ID, models.StepPending, "awaiting approval", "")
		return
	}

	switch {
	case step.MatchingSkill != "" && r.o.tools.Has(skillTool):
		r.updateStep(step.ID, models.StepExecuting, "", "")
		value, err := r.executeCall(ctx, agent.ToolCall{
			ID:   "remediation-" + step.ID,
			Name: skillTool,
			Args: map[string]any{
				"name":    step.MatchingSkill,
				"command": step.Command,
			},
		}, "")
		if err != nil {
			r.updateStep(step.ID, models.StepFailed, "", err.Error())
			return
		}
		r.updateStep(step.ID, models.StepCompleted, renderValue(value), "")
	case step.Command != "":
		r.updateStep(step.ID, models.StepPending, "manual execution required", "")
	default:
		r.updateStep(step.ID, models.StepSkipped, "no executable action", "")
	}
}

// stepApproved resolves the approval gate for one step.
func (r *run) stepApproved(ctx context.Context, step models.RemediationStep) bool {
	if !step.RequiresApproval || r.o.opts.AutoApproveRemediation {
		return true
	}
	if r.o.opts.ApproveStep == nil {
		return false
	}
	return r.o.opts.ApproveStep(ctx, step)
}

// updateStep records a step outcome in the state machine and scratchpad.
func (r *run) updateStep(stepID string, status models.StepStatus, result, errMsg string) {
	if err := r.sm.UpdateRemediationStep(stepID, status, result, errMsg); err != nil {
		r.recordError("failed to update remediation step", err)
		return
	}
	r.logEntry(scratchpad.Entry{
		Type: scratchpad.EntryRemediationStep,
		Data: map[string]any{
			"stepId": stepID,
			"status": string(status),
			"result": result,
			"error":  errMsg,
		},
	})
	r.o.logger.Info("remediation step updated", "step", stepID, "status", status,
		"detail", fmt.Sprintf("%.80s", result))
}
