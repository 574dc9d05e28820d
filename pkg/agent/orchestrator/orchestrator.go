// Package orchestrator drives a structured incident investigation end to
// end: triage, hypothesis generation, the investigate/evaluate cycle,
// conclusion, and optional remediation. It owns no state of its own beyond
// wiring — each Run builds a fresh state machine and walks it through the
// phase graph, recording everything in the scratchpad and emitting events
// along the way. Failures are recorded and worked around; the only way a
// run ends without a done event is a panic.
package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/agent/prompt"
	"github.com/rootline-ai/rootline/pkg/events"
	"github.com/rootline-ai/rootline/pkg/executor"
	"github.com/rootline-ai/rootline/pkg/investigation"
	"github.com/rootline-ai/rootline/pkg/knowledge"
	"github.com/rootline-ai/rootline/pkg/models"
	"github.com/rootline-ai/rootline/pkg/planner"
	"github.com/rootline-ai/rootline/pkg/scorer"
	"github.com/rootline-ai/rootline/pkg/scratchpad"
	"github.com/rootline-ai/rootline/pkg/summarizer"
	"github.com/rootline-ai/rootline/pkg/toolcache"
)

// ApprovalFunc decides whether a remediation step may execute. Called only
// for steps that require approval when auto-approval is off.
type ApprovalFunc func(ctx context.Context, step models.RemediationStep) bool

// Deps are the collaborators an orchestrator is wired with. LLM, Tools,
// Executor, and Emitter are required; the rest degrade gracefully when nil.
type Deps struct {
	LLM      agent.LLMClient
	Tools    *agent.Registry
	Executor *executor.Executor
	Emitter  *events.Emitter

	// Optional.
	Cache      *toolcache.Cache
	Knowledge  knowledge.Retriever
	Scratchpad *scratchpad.Scratchpad
	Summaries  *summarizer.Registry
	Logger     *slog.Logger
}

// Options tune a run.
type Options struct {
	MaxIterations      int
	MaxHypothesisDepth int
	MaxHypotheses      int

	// KnownServices widens the service list affected-service inference
	// checks conclusions against.
	KnownServices []string

	// DefaultLogGroup seeds log-query enrichment when nothing better can
	// be inferred from alarms or inventory.
	DefaultLogGroup string

	// EnableRemediation turns on plan generation and step execution after
	// a conclusive root cause.
	EnableRemediation      bool
	AutoApproveRemediation bool
	ApproveStep            ApprovalFunc
}

// Orchestrator runs structured investigations. Safe for concurrent runs
// only when each run gets its own emitter and scratchpad; in practice one
// orchestrator instance serves one session.
type Orchestrator struct {
	llm       agent.LLMClient
	tools     *agent.Registry
	exec      *executor.Executor
	emitter   *events.Emitter
	cache     *toolcache.Cache
	knowledge knowledge.Retriever
	pad       *scratchpad.Scratchpad
	summaries *summarizer.Registry
	builder   *prompt.Builder
	scorer    *scorer.Scorer
	logger    *slog.Logger
	opts      Options

	finalState *models.InvestigationState
}

// FinalState returns the full investigation state of the last completed
// Run, for persistence and drill-down. Nil before the first Run finishes.
func (o *Orchestrator) FinalState() *models.InvestigationState {
	return o.finalState
}

// New wires an orchestrator. Panics when a required dependency is nil.
func New(deps Deps, opts Options) *Orchestrator {
	if deps.LLM == nil {
		panic("orchestrator: llm client is required")
	}
	if deps.Tools == nil {
		panic("orchestrator: tool registry is required")
	}
	if deps.Executor == nil {
		panic("orchestrator: executor is required")
	}
	if deps.Emitter == nil {
		panic("orchestrator: emitter is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	summaries := deps.Summaries
	if summaries == nil {
		summaries = summarizer.NewRegistry()
	}
	return &Orchestrator{
		llm:       deps.LLM,
		tools:     deps.Tools,
		exec:      deps.Executor,
		emitter:   deps.Emitter,
		cache:     deps.Cache,
		knowledge: deps.Knowledge,
		pad:       deps.Scratchpad,
		summaries: summaries,
		builder:   prompt.NewBuilder(),
		scorer:    scorer.New(deps.LLM),
		logger:    logger,
		opts:      opts,
	}
}

// run is the per-investigation working set.
type run struct {
	o       *Orchestrator
	sm      *investigation.StateMachine
	planner *planner.Planner
	hints   planner.Hints
	bundle  *models.KnowledgeBundle

	// eventTimes holds timestamps extracted from tool results per
	// hypothesis, for temporal correlation scoring.
	eventTimes map[string][]time.Time

	// directEvidence marks hypotheses where a confirming query returned
	// real data.
	directEvidence map[string]bool
}

// Run executes one investigation. The returned result is always non-nil:
// a cancelled or failed run carries whatever conclusion was reached before
// the interruption, and the done event has already been emitted when Run
// returns.
func (o *Orchestrator) Run(ctx context.Context, query, incidentID, additionalContext string) (*models.InvestigationResult, error) {
	sm := investigation.New(investigation.Config{
		Query:              query,
		IncidentID:         incidentID,
		MaxIterations:      o.opts.MaxIterations,
		MaxHypothesisDepth: o.opts.MaxHypothesisDepth,
		MaxHypotheses:      o.opts.MaxHypotheses,
	}, o.emitter)

	r := &run{
		o:  o,
		sm: sm,
		planner: planner.New(planner.Config{
			AvailableTools:  o.tools.Names(),
			DefaultLogGroup: o.opts.DefaultLogGroup,
		}),
		eventTimes:     make(map[string][]time.Time),
		directEvidence: make(map[string]bool),
	}

	o.emitter.Emit(events.TypeInit, events.InitPayload{
		InvestigationID: sm.ID(), Query: query, IncidentID: incidentID,
	})
	r.logEntry(scratchpad.Entry{Type: scratchpad.EntryInit, Content: query})
	o.logger.Info("investigation started", "id", sm.ID(), "query", query)

	if err := sm.Start(); err != nil {
		return r.finish("investigation could not start"), err
	}

	r.triage(ctx, query, additionalContext)
	r.hypothesize(ctx)
	r.investigate(ctx)
	r.conclude(ctx)
	r.remediate(ctx)

	return r.finish(r.summaryText()), ctx.Err()
}

// finish walks the state machine to complete through whatever legal
// transitions remain and emits the terminal done event.
func (r *run) finish(summary string) *models.InvestigationResult {
	for r.sm.Phase() != models.PhaseComplete {
		var err error
		switch r.sm.Phase() {
		case models.PhaseInvestigate:
			err = r.sm.TransitionTo(models.PhaseEvaluate, "winding down")
		case models.PhaseTriage, models.PhaseHypothesize, models.PhaseEvaluate:
			err = r.sm.TransitionTo(models.PhaseConclude, "winding down")
		case models.PhaseConclude, models.PhaseRemediate:
			err = r.sm.TransitionTo(models.PhaseComplete, "investigation finished")
		default:
			err = r.sm.TransitionTo(models.PhaseComplete, "investigation finished")
		}
		if err != nil {
			r.o.logger.Error("failed to finalize investigation", "phase", r.sm.Phase(), "error", err)
			break
		}
	}

	result := r.sm.Result(summary)
	r.o.finalState = r.sm.State()
	r.o.emitter.Emit(events.TypeDone, events.DonePayload{Result: result})
	r.o.logger.Info("investigation finished",
		"id", r.sm.ID(), "rootCause", result.RootCause, "durationMs", result.DurationMs)
	return result
}

// summaryText is the one-line human summary carried on the done event.
func (r *run) summaryText() string {
	state := r.sm.State()
	if state.Conclusion == nil {
		return "investigation ended without a conclusion"
	}
	if state.Conclusion.RootCause == conclusionNotDetermined {
		return "root cause not determined"
	}
	return "root cause: " + state.Conclusion.RootCause
}

// logEntry appends to the scratchpad when one is attached. Scratchpad
// failures are logged, never fatal.
func (r *run) logEntry(entry scratchpad.Entry) {
	if r.o.pad == nil {
		return
	}
	if err := r.o.pad.Append(context.Background(), entry); err != nil {
		r.o.logger.Warn("scratchpad append failed", "type", entry.Type, "error", err)
	}
}

// recordError logs and records a non-fatal failure.
func (r *run) recordError(message string, err error) {
	if err != nil {
		message = message + ": " + err.Error()
	}
	r.o.logger.Warn("investigation error", "phase", r.sm.Phase(), "message", message)
	r.sm.RecordError(message)
}

// chat is the single LLM entry point: build, send, parse via parse, and
// retry exactly once with the strict reminder when parsing fails.
func chat[T any](ctx context.Context, o *Orchestrator, req prompt.Request, parse func(string) (T, error)) (T, error) {
	attempt := func(req prompt.Request) (T, error) {
		var zero T
		resp, err := o.llm.Chat(ctx, &agent.ChatRequest{System: req.System, User: req.User})
		if err != nil {
			return zero, err
		}
		return parse(resp.Content)
	}
	out, err := attempt(req)
	if err != nil {
		out, err = attempt(req.WithStrictReminder())
	}
	return out, err
}
