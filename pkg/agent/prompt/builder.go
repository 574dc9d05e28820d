package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rootline-ai/rootline/pkg/models"
	"github.com/rootline-ai/rootline/pkg/tokens"
)

// evidenceRenderBudget bounds how much of a raw query result is inlined
// into the evaluation prompt.
const evidenceRenderBudget = 1500

// Request is one fully built LLM request.
type Request struct {
	System string
	User   string
}

// WithStrictReminder returns the request with the parse-failure reminder
// appended, for the single retry after a schema error.
func (r Request) WithStrictReminder() Request {
	r.User += strictRetryReminder
	return r
}

// Builder composes all prompts. Stateless and safe for concurrent use.
type Builder struct{}

// NewBuilder creates a prompt builder.
func NewBuilder() *Builder { return &Builder{} }

// Triage builds the triage request. contextSections holds pre-fetched
// signal (incident details, alarms, monitors, inventory, knowledge) already
// rendered as labeled text blocks; empty sections are skipped.
func (b *Builder) Triage(query, additionalContext string, contextSections map[string]string) Request {
	var sections strings.Builder
	if additionalContext != "" {
		fmt.Fprintf(&sections, "## Additional context\n%s\n\n", additionalContext)
	}
	for _, label := range []string{"Incident details", "Active alarms", "Triggered monitors", "Infrastructure inventory", "Knowledge"} {
		if body := strings.TrimSpace(contextSections[label]); body != "" {
			fmt.Fprintf(&sections, "## %s\n%s\n\n", label, body)
		}
	}
	return Request{
		System: systemInvestigator,
		User:   fmt.Sprintf(triageTemplate, query, sections.String()),
	}
}

// Hypotheses builds the hypothesis-generation request from the triage.
func (b *Builder) Hypotheses(triage *models.TriageResult) Request {
	return Request{
		System: systemInvestigator,
		User:   fmt.Sprintf(hypothesisTemplate, TriageBlock(triage)),
	}
}

// Evaluation builds the evidence-evaluation request for one hypothesis.
func (b *Builder) Evaluation(h *models.Hypothesis) Request {
	return Request{
		System: systemInvestigator,
		User:   fmt.Sprintf(evaluationTemplate, HypothesisBlock(h), EvidenceBlock(h)),
	}
}

// Conclusion builds the conclusion request from the whole investigation.
func (b *Builder) Conclusion(state *models.InvestigationState) Request {
	return Request{
		System: systemInvestigator,
		User:   fmt.Sprintf(conclusionTemplate, InvestigationBlock(state)),
	}
}

// Remediation builds the remediation-planning request.
func (b *Builder) Remediation(c *models.Conclusion, runbookTitles, codeFixes []string) Request {
	var runbooks, fixes string
	if len(runbookTitles) > 0 {
		runbooks = "## Relevant runbooks\n- " + strings.Join(runbookTitles, "\n- ") + "\n"
	}
	if len(codeFixes) > 0 {
		fixes = "## Code-fix candidates\n- " + strings.Join(codeFixes, "\n- ") + "\n"
	}
	return Request{
		System: systemInvestigator,
		User:   fmt.Sprintf(remediationTemplate, ConclusionBlock(c), runbooks, fixes),
	}
}

// Iteration builds one turn of the free-form agent loop.
func (b *Builder) Iteration(query, tieredContext, toolStatus, knowledge, hypothesisContext string) Request {
	var extras strings.Builder
	if knowledge != "" {
		fmt.Fprintf(&extras, "## Knowledge\n%s\n\n", knowledge)
	}
	if hypothesisContext != "" {
		fmt.Fprintf(&extras, "## Working hypothesis\n%s\n\n", hypothesisContext)
	}
	if toolStatus != "" {
		toolStatus = "## Tool usage\n" + toolStatus + "\n"
	}
	return Request{
		System: systemAssistant,
		User:   fmt.Sprintf(iterationTemplate, query, tieredContext, toolStatus, extras.String()),
	}
}

// KnowledgeOnly builds the tools-forbidden runbook answer request.
func (b *Builder) KnowledgeOnly(query string, bundle *models.KnowledgeBundle) Request {
	return Request{
		System: systemAssistant,
		User:   fmt.Sprintf(knowledgeOnlyTemplate, query, KnowledgeBlock(bundle)),
	}
}

// ForcedConclusion builds the iteration-limit wrap-up request.
func (b *Builder) ForcedConclusion(iterations int) Request {
	return Request{
		System: systemAssistant,
		User:   fmt.Sprintf(forcedConclusionTemplate, iterations),
	}
}

// TriageBlock renders a triage result for inclusion in prompts.
func TriageBlock(t *models.TriageResult) string {
	if t == nil {
		return "## Triage\n(no triage available)\n"
	}
	var b strings.Builder
	b.WriteString("## Triage\n")
	fmt.Fprintf(&b, "Summary: %s\n", t.Summary)
	fmt.Fprintf(&b, "Severity: %s\n", t.Severity)
	if len(t.AffectedServices) > 0 {
		fmt.Fprintf(&b, "Affected services: %s\n", strings.Join(t.AffectedServices, ", "))
	}
	if len(t.Symptoms) > 0 {
		fmt.Fprintf(&b, "Symptoms: %s\n", strings.Join(t.Symptoms, "; "))
	}
	if len(t.ErrorMessages) > 0 {
		fmt.Fprintf(&b, "Error messages:\n")
		for _, msg := range t.ErrorMessages {
			fmt.Fprintf(&b, "  - %s\n", msg)
		}
	}
	if !t.TimeWindow.IsZero() {
		fmt.Fprintf(&b, "Time window: %s to %s\n",
			t.TimeWindow.Start.Format("2006-01-02 15:04:05Z"),
			t.TimeWindow.End.Format("2006-01-02 15:04:05Z"))
	}
	if t.RelatedKnowledge != "" {
		fmt.Fprintf(&b, "Related knowledge: %s\n", t.RelatedKnowledge)
	}
	return b.String()
}

// HypothesisBlock renders one hypothesis for evaluation.
func HypothesisBlock(h *models.Hypothesis) string {
	var b strings.Builder
	b.WriteString("## Hypothesis\n")
	fmt.Fprintf(&b, "ID: %s\n", h.ID)
	fmt.Fprintf(&b, "Statement: %s\n", h.Statement)
	fmt.Fprintf(&b, "Category: %s\n", h.Category)
	if h.ConfirmingEvidence != "" {
		fmt.Fprintf(&b, "Would confirm: %s\n", h.ConfirmingEvidence)
	}
	if h.RefutingEvidence != "" {
		fmt.Fprintf(&b, "Would refute: %s\n", h.RefutingEvidence)
	}
	return b.String()
}

// EvidenceBlock renders a hypothesis's query results, each bounded.
func EvidenceBlock(h *models.Hypothesis) string {
	if len(h.QueryResults) == 0 {
		return "(no evidence gathered yet)\n"
	}
	// Queries carry the intent; results are looked up by query ID so the
	// rendering pairs "what we asked" with "what we got".
	var b strings.Builder
	rendered := make(map[string]bool)
	for _, q := range h.Queries {
		result, ok := h.QueryResults[q.ID]
		if !ok {
			continue
		}
		rendered[q.ID] = true
		fmt.Fprintf(&b, "### %s via %s\n", q.ExpectedOutcome, q.Tool)
		b.WriteString(tokens.Truncate(renderResult(result), evidenceRenderBudget, "\n... (truncated)"))
		b.WriteString("\n")
	}
	for id, result := range h.QueryResults {
		if rendered[id] {
			continue
		}
		fmt.Fprintf(&b, "### result %s\n", id)
		b.WriteString(tokens.Truncate(renderResult(result), evidenceRenderBudget, "\n... (truncated)"))
		b.WriteString("\n")
	}
	return b.String()
}

// InvestigationBlock renders the full investigation for the conclusion
// prompt: triage, every hypothesis with its verdict, and recorded errors.
func InvestigationBlock(state *models.InvestigationState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Question\n%s\n\n", state.Query)
	b.WriteString(TriageBlock(state.Triage))
	b.WriteString("\n## Hypotheses\n")
	if len(state.Hypotheses) == 0 {
		b.WriteString("(none were formed)\n")
	}
	for _, h := range state.Hypotheses {
		fmt.Fprintf(&b, "- %s [%s, priority %d]: %s — evidence %s, confidence %d\n",
			h.ID, h.Status, h.Priority, h.Statement, h.EvidenceStrength, h.Confidence)
		if h.Reasoning != "" {
			fmt.Fprintf(&b, "  reasoning: %s\n", h.Reasoning)
		}
	}
	if len(state.Errors) > 0 {
		b.WriteString("\n## Errors encountered\n")
		for _, e := range state.Errors {
			fmt.Fprintf(&b, "- [%s] %s\n", e.Phase, e.Message)
		}
	}
	return b.String()
}

// ConclusionBlock renders a conclusion for the remediation prompt.
func ConclusionBlock(c *models.Conclusion) string {
	var b strings.Builder
	b.WriteString("## Conclusion\n")
	fmt.Fprintf(&b, "Root cause: %s\n", c.RootCause)
	fmt.Fprintf(&b, "Confidence: %s\n", c.Confidence)
	if len(c.AffectedServices) > 0 {
		fmt.Fprintf(&b, "Affected services: %s\n", strings.Join(c.AffectedServices, ", "))
	}
	for _, link := range c.EvidenceChain {
		fmt.Fprintf(&b, "- [%s] %s (%s)\n", link.Strength, link.Finding, link.Source)
	}
	return b.String()
}

// KnowledgeBlock renders a knowledge bundle, runbooks first.
func KnowledgeBlock(bundle *models.KnowledgeBundle) string {
	if bundle.Empty() {
		return "(no relevant documentation found)\n"
	}
	var b strings.Builder
	writeItems := func(label string, items []models.KnowledgeItem) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "### %s\n", label)
		for _, item := range items {
			fmt.Fprintf(&b, "#### %s\n%s\n", item.Title, item.Content)
		}
	}
	writeItems("Runbooks", bundle.Runbooks)
	writeItems("Known issues", bundle.KnownIssues)
	writeItems("Postmortems", bundle.Postmortems)
	writeItems("Architecture", bundle.Architecture)
	return b.String()
}

func renderResult(v any) string {
	switch val := v.(type) {
	case nil:
		return "(no data)"
	case string:
		return val
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(raw)
	}
}
