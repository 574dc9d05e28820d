// Package loop implements the free-form assistant mode: instead of walking
// the structured phase machine, the model is given the tool registry and
// iterates — propose tool calls, see tiered results, propose again — until
// it answers in plain text or the iteration budget forces a conclusion.
// Procedural questions short-circuit to a knowledge-only answer with no
// tool access at all.
package loop

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/agent/prompt"
	"github.com/rootline-ai/rootline/pkg/compactor"
	"github.com/rootline-ai/rootline/pkg/events"
	"github.com/rootline-ai/rootline/pkg/executor"
	"github.com/rootline-ai/rootline/pkg/knowledge"
	"github.com/rootline-ai/rootline/pkg/models"
	"github.com/rootline-ai/rootline/pkg/scratchpad"
	"github.com/rootline-ai/rootline/pkg/summarizer"
	"github.com/rootline-ai/rootline/pkg/toolcache"
)

// Defaults applied when Options fields are zero.
const (
	DefaultMaxIterations          = 10
	DefaultContextThresholdTokens = 100000
	DefaultKeepToolUses           = 5

	// repetitiveCallLimit is how many identical (tool, canonical args)
	// calls are executed before further repeats are skipped.
	repetitiveCallLimit = 2
)

// Options tune the loop.
type Options struct {
	MaxIterations          int
	ContextThresholdTokens int
	KeepToolUses           int

	// EnableSmartCompaction scores results through the compactor instead
	// of naively clearing the oldest ones.
	EnableSmartCompaction bool
	CompactionPreset      compactor.Preset
}

// Deps are the loop's collaborators. LLM, Tools, Executor, Emitter, and
// Scratchpad are required; Cache, Knowledge, Summaries, and Logger are
// optional.
type Deps struct {
	LLM        agent.LLMClient
	Tools      *agent.Registry
	Executor   *executor.Executor
	Emitter    *events.Emitter
	Scratchpad *scratchpad.Scratchpad

	Cache     *toolcache.Cache
	Knowledge knowledge.Retriever
	Summaries *summarizer.Registry
	Logger    *slog.Logger
}

// Loop is a reusable free-form agent. One Run at a time per instance; the
// scratchpad serializes appends but the iteration state is not shared.
type Loop struct {
	llm        agent.LLMClient
	tools      *agent.Registry
	exec       *executor.Executor
	emitter    *events.Emitter
	pad        *scratchpad.Scratchpad
	cache      *toolcache.Cache
	knowledge  knowledge.Retriever
	summaries  *summarizer.Registry
	builder    *prompt.Builder
	logger     *slog.Logger
	fullResult *scratchpad.FullResultTool
	opts       Options
}

// New wires a loop. Panics when a required dependency is nil. The
// get_full_result tool is registered here so the model can always drill
// into cleared results.
func New(deps Deps, opts Options) *Loop {
	if deps.LLM == nil {
		panic("loop: llm client is required")
	}
	if deps.Tools == nil {
		panic("loop: tool registry is required")
	}
	if deps.Executor == nil {
		panic("loop: executor is required")
	}
	if deps.Emitter == nil {
		panic("loop: emitter is required")
	}
	if deps.Scratchpad == nil {
		panic("loop: scratchpad is required")
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.ContextThresholdTokens <= 0 {
		opts.ContextThresholdTokens = DefaultContextThresholdTokens
	}
	if opts.KeepToolUses <= 0 {
		opts.KeepToolUses = DefaultKeepToolUses
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	summaries := deps.Summaries
	if summaries == nil {
		summaries = summarizer.NewRegistry()
	}

	fullResult := scratchpad.NewFullResultTool()
	deps.Tools.Register(fullResult)

	return &Loop{
		llm:        deps.LLM,
		tools:      deps.Tools,
		exec:       deps.Executor,
		emitter:    deps.Emitter,
		pad:        deps.Scratchpad,
		cache:      deps.Cache,
		knowledge:  deps.Knowledge,
		summaries:  summaries,
		builder:    prompt.NewBuilder(),
		logger:     logger,
		fullResult: fullResult,
		opts:       opts,
	}
}

// Run answers one free-form query. The returned string is the final answer
// text; the done event carrying it has already been emitted when Run
// returns. Cancellation ends the run with whatever answer is available.
func (l *Loop) Run(ctx context.Context, query string) (string, error) {
	l.emitter.Emit(events.TypeInit, events.InitPayload{
		InvestigationID: l.pad.SessionID(), Query: query,
	})
	l.appendEntry(scratchpad.Entry{Type: scratchpad.EntryInit, Content: query})

	bundle := l.retrieveKnowledge(ctx, query)

	// A purely procedural question is answered from documentation alone.
	if knowledge.IsProcedural(query) && !bundle.Empty() {
		return l.answerFromKnowledge(ctx, query, bundle)
	}

	counts := make(map[string]int)
	knowledgeBlock := ""
	if !bundle.Empty() {
		knowledgeBlock = prompt.KnowledgeBlock(bundle)
	}

	for iteration := 1; iteration <= l.opts.MaxIterations; iteration++ {
		if ctx.Err() != nil {
			return l.finish("the investigation was interrupted before an answer was reached"), ctx.Err()
		}

		req := l.builder.Iteration(query, l.pad.BuildTieredContext(), l.toolStatus(), knowledgeBlock, "")
		knowledgeBlock = "" // first iteration only; later turns rely on the scratchpad

		resp, err := l.llm.Chat(ctx, &agent.ChatRequest{
			System: req.System, User: req.User, Tools: l.tools.Definitions(),
		})
		if err != nil {
			l.logger.Warn("iteration call failed", "iteration", iteration, "error", err)
			return l.finish("the investigation failed: " + err.Error()), err
		}
		if resp.Thinking != "" {
			l.emitter.Emit(events.TypeThinking, events.ThinkingPayload{Content: resp.Thinking})
			l.appendEntry(scratchpad.Entry{Type: scratchpad.EntryThinking, Content: resp.Thinking})
		}

		if len(resp.ToolCalls) == 0 {
			l.emitter.Emit(events.TypeAnswerStart, events.AnswerStartPayload{})
			return l.finish(resp.Content), nil
		}

		l.executeCalls(ctx, resp.ToolCalls, counts)
		l.compactIfNeeded(query)
	}

	return l.forcedConclusion(ctx)
}

// answerFromKnowledge answers without tools, citing retrieved sources.
func (l *Loop) answerFromKnowledge(ctx context.Context, query string, bundle *models.KnowledgeBundle) (string, error) {
	req := l.builder.KnowledgeOnly(query, bundle)
	resp, err := l.llm.Chat(ctx, &agent.ChatRequest{System: req.System, User: req.User})
	if err != nil {
		return l.finish("the documentation lookup failed: " + err.Error()), err
	}
	answer := resp.Content
	if sources := sourceList(bundle); len(sources) > 0 {
		answer += "\n\nSources:\n- " + strings.Join(sources, "\n- ")
	}
	l.emitter.Emit(events.TypeAnswerStart, events.AnswerStartPayload{})
	return l.finish(answer), nil
}

// forcedConclusion asks the model to wrap up with no further tool access.
func (l *Loop) forcedConclusion(ctx context.Context) (string, error) {
	req := l.builder.ForcedConclusion(l.opts.MaxIterations)
	req.User = l.pad.BuildTieredContext() + "\n" + req.User
	resp, err := l.llm.Chat(ctx, &agent.ChatRequest{System: req.System, User: req.User})
	if err != nil {
		return l.finish("the iteration budget was exhausted without an answer"), err
	}
	l.emitter.Emit(events.TypeAnswerStart, events.AnswerStartPayload{})
	return l.finish(resp.Content), nil
}

// finish emits the terminal done event carrying the answer.
func (l *Loop) finish(answer string) string {
	l.emitter.Emit(events.TypeDone, events.DonePayload{Answer: answer})
	return answer
}

// executeCalls runs one batch of model-proposed tool calls. Repetitive
// calls are skipped, cache hits short-circuit, and every call leaves a
// result (or error) in the scratchpad for the next iteration's context.
func (l *Loop) executeCalls(ctx context.Context, calls []agent.ToolCall, counts map[string]int) {
	snapshot := l.pad.Snapshot()
	l.fullResult.Install(snapshot)

	var tasks []executor.Task
	for _, call := range calls {
		if call.ID == "" {
			call.ID = uuid.NewString()
		}

		key := toolcache.CanonicalKey(call.Name, call.Args)
		counts[key]++
		if counts[key] > repetitiveCallLimit {
			warning := fmt.Sprintf("%s has been called %d times with identical arguments", call.Name, counts[key]-1)
			l.emitter.Emit(events.TypeToolLimit, events.ToolLimitPayload{
				Tool: call.Name, Count: counts[key] - 1, Limit: repetitiveCallLimit, Warning: warning,
			})
			l.recordFailure(ctx, call, "skipping repetitive tool call", false)
			continue
		}

		if check := l.pad.CanCallTool(call.Name, call.Args); check.Warning != "" {
			l.emitter.Emit(events.TypeToolLimit, events.ToolLimitPayload{
				Tool: call.Name, Count: l.pad.ToolCallCount(call.Name), Warning: check.Warning,
			})
		}

		if l.cache != nil {
			if cached, ok := l.cache.Get(call.Name, call.Args); ok {
				l.emitter.Emit(events.TypeToolEnd, events.ToolEndPayload{
					CallID: call.ID, Tool: call.Name, FromCache: true,
				})
				l.recordResult(ctx, call, cached)
				continue
			}
		}

		tool, err := l.tools.Get(call.Name)
		if err != nil {
			l.recordFailure(ctx, call, err.Error(), false)
			continue
		}
		l.emitter.Emit(events.TypeToolStart, events.ToolStartPayload{
			CallID: call.ID, Tool: call.Name, Args: call.Args,
		})
		tasks = append(tasks, executor.Task{Call: call, Tool: tool})
	}

	if len(tasks) == 0 {
		return
	}
	// The model proposed these together, so they are treated as
	// independent and run as a plain parallel batch.
	batch := l.exec.ExecuteBatch(ctx, tasks)
	callsByID := make(map[string]agent.ToolCall, len(tasks))
	for _, task := range tasks {
		callsByID[task.Call.ID] = task.Call
	}
	for _, result := range batch.Results {
		call := callsByID[result.CallID]
		if result.IsError() {
			l.emitter.Emit(events.TypeToolError, events.ToolErrorPayload{
				BatchID: batch.BatchID, CallID: result.CallID, Tool: result.Tool,
				Error: result.Err.Error(), TimedOut: result.TimedOut,
				DurationMs: result.Duration.Milliseconds(),
			})
			l.recordFailure(ctx, call, result.Err.Error(), true)
			continue
		}
		if l.cache != nil {
			l.cache.Set(result.Tool, call.Args, result.Value)
		}
		resultID := l.recordResult(ctx, call, result.Value)
		l.emitter.Emit(events.TypeToolEnd, events.ToolEndPayload{
			BatchID: batch.BatchID, CallID: result.CallID, Tool: result.Tool,
			ResultID: resultID, DurationMs: result.Duration.Milliseconds(),
		})
	}
}

// recordResult stores a successful tool result and returns its result ID.
func (l *Loop) recordResult(ctx context.Context, call agent.ToolCall, value any) string {
	compact := l.summaries.Summarize(call.Name, value)
	resultID, err := l.pad.AppendToolResult(ctx, call, value, compact)
	if err != nil {
		l.logger.Warn("scratchpad tool-result append failed", "tool", call.Name, "error", err)
	}
	return resultID
}

// recordFailure stores an error outcome so the model sees what went wrong.
// emitError is false when the failure event was already emitted.
func (l *Loop) recordFailure(ctx context.Context, call agent.ToolCall, message string, emitted bool) {
	if !emitted {
		l.emitter.Emit(events.TypeToolError, events.ToolErrorPayload{
			CallID: call.ID, Tool: call.Name, Error: message,
		})
	}
	l.recordResult(ctx, call, map[string]any{"error": message})
}

// compactIfNeeded shrinks the in-context view when the tiered rendering
// grows past the threshold. The session file and the full bodies in the
// arena are untouched either way.
func (l *Loop) compactIfNeeded(query string) {
	tokensBefore := l.pad.ContextTokens()
	if tokensBefore <= l.opts.ContextThresholdTokens {
		return
	}

	var cleared, compacted int
	if l.opts.EnableSmartCompaction {
		c := compactor.New(compactor.Config{Preset: l.opts.CompactionPreset, KeepToolUses: l.opts.KeepToolUses})
		plan := c.BuildPlan(l.pad.ToolResults(), compactor.Context{Query: query})
		clearedIDs := l.pad.ApplyCompactionPlan(plan)
		cleared = len(clearedIDs)
		compacted = len(plan.KeepCompact)
	} else {
		cleared = len(l.pad.ClearOldestToolResults(l.opts.KeepToolUses))
	}

	tokensAfter := l.pad.ContextTokens()
	l.emitter.Emit(events.TypeContextCleared, events.ContextClearedPayload{
		Cleared:     cleared,
		Compacted:   compacted,
		KeptFull:    len(l.pad.TieredResults()[scratchpad.TierFull]),
		TokensAfter: tokensAfter,
	})
	l.logger.Info("context compacted",
		"cleared", cleared, "compacted", compacted,
		"tokensBefore", tokensBefore, "tokensAfter", tokensAfter)
}

// toolStatus renders per-tool call counts for the iteration prompt.
func (l *Loop) toolStatus() string {
	var b strings.Builder
	for _, name := range l.tools.Names() {
		if name == scratchpad.FullResultToolName {
			continue
		}
		if count := l.pad.ToolCallCount(name); count > 0 {
			fmt.Fprintf(&b, "- %s: called %d times\n", name, count)
		}
	}
	return b.String()
}

// retrieveKnowledge fetches documentation once per run, best effort.
func (l *Loop) retrieveKnowledge(ctx context.Context, query string) *models.KnowledgeBundle {
	if l.knowledge == nil {
		return &models.KnowledgeBundle{}
	}
	bundle, err := l.knowledge.Retrieve(ctx, models.KnowledgeQuery{Query: query})
	if err != nil {
		l.logger.Warn("knowledge retrieval failed", "error", err)
		return &models.KnowledgeBundle{}
	}
	l.emitter.Emit(events.TypeKnowledgeRetrieved, events.KnowledgeRetrievedPayload{
		Runbooks:    len(bundle.Runbooks),
		Postmortems: len(bundle.Postmortems),
		KnownIssues: len(bundle.KnownIssues),
	})
	return bundle
}

// appendEntry logs to the scratchpad, best effort.
func (l *Loop) appendEntry(entry scratchpad.Entry) {
	if err := l.pad.Append(context.Background(), entry); err != nil {
		l.logger.Warn("scratchpad append failed", "type", entry.Type, "error", err)
	}
}

// sourceList collects distinct source URLs (falling back to titles) from a
// bundle, runbooks first.
func sourceList(bundle *models.KnowledgeBundle) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(items []models.KnowledgeItem) {
		for _, item := range items {
			src := item.SourceURL
			if src == "" {
				src = item.Title
			}
			if src == "" || seen[src] {
				continue
			}
			seen[src] = true
			out = append(out, src)
		}
	}
	add(bundle.Runbooks)
	add(bundle.KnownIssues)
	add(bundle.Postmortems)
	add(bundle.Architecture)
	return out
}
