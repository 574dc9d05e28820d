package queue

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/agent/loop"
	"github.com/rootline-ai/rootline/pkg/agent/orchestrator"
	"github.com/rootline-ai/rootline/pkg/compactor"
	"github.com/rootline-ai/rootline/pkg/config"
	"github.com/rootline-ai/rootline/pkg/events"
	"github.com/rootline-ai/rootline/pkg/executor"
	"github.com/rootline-ai/rootline/pkg/masking"
	"github.com/rootline-ai/rootline/pkg/models"
	"github.com/rootline-ai/rootline/pkg/scratchpad"
	"github.com/rootline-ai/rootline/pkg/session"
	"github.com/rootline-ai/rootline/pkg/slack"
	"github.com/rootline-ai/rootline/pkg/toolcache"
)

// process runs one request to its terminal state. Every exit path leaves
// the live run terminal, the done event published, and the persisted row
// (when persistence is on) consistent with the live status.
func (p *Pool) process(ctx context.Context, req Request, logger *slog.Logger) {
	run := p.deps.Manager.Get(req.ID)
	if run == nil {
		logger.Error("queued run vanished from the registry", "id", req.ID)
		return
	}
	logger = logger.With("id", req.ID, "mode", req.Mode)

	cfg, err := p.deps.Config.WithOverrides(req.Overrides)
	if err != nil {
		p.failEarly(run, req.ID, "invalid overrides: "+err.Error(), logger)
		return
	}

	pad, err := scratchpad.New(cfg.Scratchpad.GetDir(), req.scratchpadID,
		scratchpad.WithToolLimits(cfg.Investigation.ToolLimits))
	if err != nil {
		p.failEarly(run, req.ID, "open scratchpad: "+err.Error(), logger)
		return
	}
	defer func() {
		if err := pad.Close(); err != nil {
			logger.Warn("scratchpad close failed", "error", err)
		}
	}()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	run.SetCancelFunc(cancel)
	run.SetStatus(session.StatusRunning)
	if p.deps.Sessions != nil {
		if err := p.deps.Sessions.MarkRunning(context.Background(), req.ID); err != nil {
			logger.Error("failed to mark session running", "error", err)
		}
	}

	emitter := events.NewEmitter()
	emitter.Subscribe(run.Publish)
	if p.deps.Metrics != nil {
		emitter.Subscribe(p.metricsBridge())
		p.deps.Metrics.InvestigationStarted()
	}

	start := time.Now()
	var outcome string
	switch req.Mode {
	case session.ModeAssistant:
		outcome = p.runAssistant(runCtx, req, cfg, run, emitter, pad, start, logger)
	default:
		outcome = p.runInvestigation(runCtx, req, cfg, run, emitter, pad, logger)
	}
	if p.deps.Metrics != nil {
		p.deps.Metrics.InvestigationFinished(outcome, time.Since(start))
	}
	logger.Info("run finished", "outcome", outcome, "durationMs", time.Since(start).Milliseconds())
}

func (p *Pool) runInvestigation(ctx context.Context, req Request, cfg *config.Config,
	run *session.Run, emitter *events.Emitter, pad *scratchpad.Scratchpad, logger *slog.Logger) string {

	threadTS := p.deps.Notifier.NotifyInvestigationStarted(ctx, slack.InvestigationStartedInput{
		RunID:      req.ID,
		Query:      req.Query,
		IncidentID: req.IncidentID,
	})

	orch := orchestrator.New(orchestrator.Deps{
		LLM:        p.deps.LLM,
		Tools:      p.runTools(cfg),
		Executor:   p.runExecutor(cfg),
		Emitter:    emitter,
		Cache:      p.runCache(cfg),
		Knowledge:  p.deps.Knowledge,
		Scratchpad: pad,
		Summaries:  p.deps.Summaries,
		Logger:     logger,
	}, orchestrator.Options{
		MaxIterations:          cfg.Investigation.GetMaxIterations(),
		MaxHypothesisDepth:     cfg.Investigation.GetMaxHypothesisDepth(),
		MaxHypotheses:          cfg.Investigation.GetMaxHypotheses(),
		KnownServices:          cfg.Investigation.KnownServices,
		DefaultLogGroup:        cfg.Investigation.DefaultLogGroup,
		EnableRemediation:      cfg.Investigation.RemediationEnabled(),
		AutoApproveRemediation: cfg.Investigation.AutoApprove(),
	})

	result, err := orch.Run(ctx, req.Query, req.IncidentID, req.AdditionalContext)
	run.SetResult(result)

	var outcome string
	switch {
	case err == nil:
		run.SetStatus(session.StatusCompleted)
		p.persist(req.ID, logger, func(pctx context.Context) error {
			return p.deps.Sessions.CompleteInvestigation(pctx, req.ID, result, orch.FinalState())
		})
		outcome = "completed"
	case errors.Is(err, context.Canceled):
		run.SetStatus(session.StatusCancelled)
		p.persist(req.ID, logger, func(pctx context.Context) error {
			return p.deps.Sessions.Cancel(pctx, req.ID)
		})
		outcome = "cancelled"
	default:
		run.SetError(err.Error())
		p.persist(req.ID, logger, func(pctx context.Context) error {
			return p.deps.Sessions.Fail(pctx, req.ID, err.Error())
		})
		outcome = "failed"
	}

	p.notifyConcluded(req, result, err, outcome, threadTS)
	return outcome
}

// notifyConcluded posts the terminal Slack message. The run context may
// already be cancelled, so delivery uses a fresh context; the client
// applies its own timeout.
func (p *Pool) notifyConcluded(req Request, result *models.InvestigationResult,
	runErr error, outcome, threadTS string) {

	if p.deps.Notifier == nil {
		return
	}
	input := slack.InvestigationConcludedInput{
		RunID:      req.ID,
		IncidentID: req.IncidentID,
		Status:     outcome,
		ThreadTS:   threadTS,
	}
	if result != nil {
		input.RootCause = result.RootCause
		input.Confidence = string(result.Confidence)
		input.AffectedServices = result.AffectedServices
		input.Summary = result.Summary
	}
	if runErr != nil {
		input.ErrorMessage = runErr.Error()
	}
	p.deps.Notifier.NotifyInvestigationConcluded(context.Background(), input)
}

func (p *Pool) runAssistant(ctx context.Context, req Request, cfg *config.Config,
	run *session.Run, emitter *events.Emitter, pad *scratchpad.Scratchpad,
	start time.Time, logger *slog.Logger) string {

	l := loop.New(loop.Deps{
		LLM:        p.deps.LLM,
		Tools:      p.runTools(cfg),
		Executor:   p.runExecutor(cfg),
		Emitter:    emitter,
		Scratchpad: pad,
		Cache:      p.runCache(cfg),
		Knowledge:  p.deps.Knowledge,
		Summaries:  p.deps.Summaries,
		Logger:     logger,
	}, loop.Options{
		MaxIterations:          cfg.Investigation.GetFreeFormMaxIterations(),
		ContextThresholdTokens: cfg.Investigation.GetContextThresholdTokens(),
		KeepToolUses:           cfg.Investigation.GetKeepToolUses(),
		EnableSmartCompaction:  cfg.Investigation.SmartCompactionEnabled(),
		CompactionPreset:       compactor.Preset(cfg.Investigation.CompactionPreset),
	})

	answer, err := l.Run(ctx, req.Query)
	run.SetAnswer(answer)

	switch {
	case err == nil:
		run.SetStatus(session.StatusCompleted)
		p.persist(req.ID, logger, func(pctx context.Context) error {
			return p.deps.Sessions.CompleteAssistant(pctx, req.ID, answer, time.Since(start).Milliseconds())
		})
		return "completed"
	case errors.Is(err, context.Canceled):
		run.SetStatus(session.StatusCancelled)
		p.persist(req.ID, logger, func(pctx context.Context) error {
			return p.deps.Sessions.Cancel(pctx, req.ID)
		})
		return "cancelled"
	default:
		run.SetError(err.Error())
		p.persist(req.ID, logger, func(pctx context.Context) error {
			return p.deps.Sessions.Fail(pctx, req.ID, err.Error())
		})
		return "failed"
	}
}

// runTools builds the per-run registry. Always a fresh copy: the loop
// registers its drill-down tool into the registry it is handed, and that
// must not leak into the shared one.
func (p *Pool) runTools(cfg *config.Config) *agent.Registry {
	names := cfg.Investigation.AvailableTools
	if names == nil {
		names = p.deps.Tools.Names()
	}
	tools := p.deps.Tools.Filter(names)
	if p.deps.Masker != nil && p.deps.Masker.Enabled() {
		tools = masking.WrapRegistry(tools, p.deps.Masker)
	}
	return tools
}

func (p *Pool) runExecutor(cfg *config.Config) *executor.Executor {
	var limiter *rate.Limiter
	if rps := cfg.Parallel.GetRatePerSecond(); rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return executor.New(executor.Config{
		MaxConcurrent: cfg.Parallel.GetMaxConcurrent(),
		Timeout:       cfg.Parallel.GetTimeout(),
		Limiter:       limiter,
	})
}

func (p *Pool) runCache(cfg *config.Config) *toolcache.Cache {
	if !cfg.Cache.IsEnabled() {
		return nil
	}
	opts := []toolcache.Option{toolcache.WithMaxSize(cfg.Cache.GetMaxSize())}
	for tool, ttl := range cfg.Cache.GetToolTTLs() {
		opts = append(opts, toolcache.WithTTL(tool, ttl))
	}
	return toolcache.New(opts...)
}

// metricsBridge translates engine events into metric updates.
func (p *Pool) metricsBridge() events.Handler {
	m := p.deps.Metrics
	return func(ev events.Event) {
		switch payload := ev.Payload.(type) {
		case events.ToolEndPayload:
			m.ToolCall(payload.Tool, "ok", time.Duration(payload.DurationMs)*time.Millisecond)
		case events.ToolErrorPayload:
			status := "error"
			if payload.TimedOut {
				status = "timeout"
			}
			m.ToolCall(payload.Tool, status, time.Duration(payload.DurationMs)*time.Millisecond)
		case events.ContextClearedPayload:
			m.ContextCompaction()
		}
	}
}

// failEarly handles failures before the engine produced any events: the
// stream still ends with a done event so subscribers are released.
func (p *Pool) failEarly(run *session.Run, id, message string, logger *slog.Logger) {
	logger.Error("run failed before execution", "error", message)
	run.SetError(message)
	run.Publish(events.Event{Type: events.TypeDone, Timestamp: time.Now()})
	p.persist(id, logger, func(pctx context.Context) error {
		return p.deps.Sessions.Fail(pctx, id, message)
	})
}

// persist applies a terminal-state update when persistence is enabled.
// Persistence failures are logged, never fatal to the run.
func (p *Pool) persist(id string, logger *slog.Logger, update func(context.Context) error) {
	if p.deps.Sessions == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := update(ctx); err != nil {
		logger.Error("failed to persist terminal state", "id", id, "error", err)
	}
}
