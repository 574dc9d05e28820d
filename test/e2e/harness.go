// Package e2e exercises the full engine through the same path production
// requests take: a worker pool wired from a real configuration, with only
// the LLM scripted and the tools faked. Nothing here reaches into engine
// internals; assertions run against the event stream and the run registry.
package e2e

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/config"
	"github.com/rootline-ai/rootline/pkg/events"
	"github.com/rootline-ai/rootline/pkg/knowledge"
	"github.com/rootline-ai/rootline/pkg/queue"
	"github.com/rootline-ai/rootline/pkg/session"
	"github.com/rootline-ai/rootline/pkg/summarizer"
)

// runTimeout bounds how long one submitted run may take end to end.
const runTimeout = 15 * time.Second

type setup struct {
	tools     []agent.Tool
	knowledge knowledge.Retriever
	configure func(*config.Config)
}

type option func(*setup)

func withTools(tools ...agent.Tool) option {
	return func(s *setup) { s.tools = append(s.tools, tools...) }
}

func withKnowledge(r knowledge.Retriever) option {
	return func(s *setup) { s.knowledge = r }
}

func withConfig(fn func(*config.Config)) option {
	return func(s *setup) { s.configure = fn }
}

// harness is one running engine instance: built-in configuration, a fresh
// tool registry, and a started worker pool.
type harness struct {
	t       *testing.T
	cfg     *config.Config
	manager *session.Manager
	pool    *queue.Pool
}

func newHarness(t *testing.T, llm agent.LLMClient, opts ...option) *harness {
	t.Helper()
	var s setup
	for _, opt := range opts {
		opt(&s)
	}

	cfg, err := config.Initialize(context.Background(), "")
	require.NoError(t, err)
	cfg.Scratchpad.Dir = t.TempDir()
	if s.configure != nil {
		s.configure(cfg)
	}

	registry := agent.NewRegistry()
	for _, tool := range s.tools {
		registry.Register(tool)
	}

	manager := session.NewManager()
	pool := queue.NewPool(queue.Deps{
		Config:    cfg,
		LLM:       llm,
		Tools:     registry,
		Manager:   manager,
		Knowledge: s.knowledge,
		Summaries: summarizer.NewRegistry(),
	}, queue.Options{Workers: 2})
	pool.Start(context.Background())
	t.Cleanup(pool.Stop)

	return &harness{t: t, cfg: cfg, manager: manager, pool: pool}
}

// run submits a request and blocks until its stream closes and the run
// reaches a terminal status.
func (h *harness) run(req queue.Request) (session.View, []events.Event) {
	h.t.Helper()
	require.NoError(h.t, h.pool.Submit(req))
	return h.await(req.ID)
}

// await collects the full event stream of a submitted run.
func (h *harness) await(id string) (session.View, []events.Event) {
	h.t.Helper()
	run := h.manager.Get(id)
	require.NotNil(h.t, run, "run %s not registered", id)

	collected, ch, unsubscribe := run.Subscribe()
	defer unsubscribe()

	deadline := time.After(runTimeout)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				// The stream closes on the done event; the worker sets the
				// terminal status just after.
				require.Eventually(h.t, func() bool {
					return run.Snapshot().Status.Terminal()
				}, 5*time.Second, 10*time.Millisecond,
					"stream closed but run %s never went terminal", id)
				return run.Snapshot(), collected
			}
			collected = append(collected, ev)
		case <-deadline:
			h.t.Fatalf("run %s did not finish, status %s", id, run.Snapshot().Status)
			return session.View{}, nil
		}
	}
}

func typesOf(evs []events.Event) []string {
	out := make([]string, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}

func toolStarts(evs []events.Event) []events.ToolStartPayload {
	var out []events.ToolStartPayload
	for _, ev := range evs {
		if p, ok := ev.Payload.(events.ToolStartPayload); ok && ev.Type == events.TypeToolStart {
			out = append(out, p)
		}
	}
	return out
}

func toolEnds(evs []events.Event) []events.ToolEndPayload {
	var out []events.ToolEndPayload
	for _, ev := range evs {
		if p, ok := ev.Payload.(events.ToolEndPayload); ok && ev.Type == events.TypeToolEnd {
			out = append(out, p)
		}
	}
	return out
}

func toolErrors(evs []events.Event) []events.ToolErrorPayload {
	var out []events.ToolErrorPayload
	for _, ev := range evs {
		if p, ok := ev.Payload.(events.ToolErrorPayload); ok && ev.Type == events.TypeToolError {
			out = append(out, p)
		}
	}
	return out
}

func toolLimits(evs []events.Event) []events.ToolLimitPayload {
	var out []events.ToolLimitPayload
	for _, ev := range evs {
		if p, ok := ev.Payload.(events.ToolLimitPayload); ok && ev.Type == events.TypeToolLimit {
			out = append(out, p)
		}
	}
	return out
}

// staticTool returns a fixed result for every invocation.
func staticTool(name string, result any) agent.Tool {
	return &agent.ToolFunc{
		ToolName: name,
		ToolDesc: name + " fake",
		Fn: func(context.Context, map[string]any) (any, error) {
			return result, nil
		},
	}
}

// countingTool is a staticTool that also counts real executions, for
// asserting cache hits and skipped calls never reach the tool.
func countingTool(name string, result any) (agent.Tool, *atomic.Int64) {
	var count atomic.Int64
	tool := &agent.ToolFunc{
		ToolName: name,
		ToolDesc: name + " fake",
		Fn: func(context.Context, map[string]any) (any, error) {
			count.Add(1)
			return result, nil
		},
	}
	return tool, &count
}

func boolPtr(v bool) *bool { return &v }
