package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/config"
	"github.com/rootline-ai/rootline/pkg/knowledge"
	"github.com/rootline-ai/rootline/pkg/masking"
	"github.com/rootline-ai/rootline/pkg/metrics"
	"github.com/rootline-ai/rootline/pkg/scratchpad"
	"github.com/rootline-ai/rootline/pkg/services"
	"github.com/rootline-ai/rootline/pkg/session"
	"github.com/rootline-ai/rootline/pkg/slack"
	"github.com/rootline-ai/rootline/pkg/summarizer"

	entsession "github.com/rootline-ai/rootline/ent/investigationsession"
)

// DefaultQueueBound is the pending backlog limit.
const DefaultQueueBound = 64

// Deps are the pool's shared collaborators. LLM, Tools, and Manager are
// required; the rest degrade gracefully when nil.
type Deps struct {
	Config  *config.Config
	LLM     agent.LLMClient
	Tools   *agent.Registry
	Manager *session.Manager

	// Optional.
	Sessions  *services.SessionService
	Masker    *masking.Service
	Knowledge knowledge.Retriever
	Summaries *summarizer.Registry
	Metrics   *metrics.Metrics
	Notifier  *slack.Service
	Logger    *slog.Logger
}

// Options tune the pool.
type Options struct {
	// Workers is how many runs execute concurrently. Zero means 2.
	Workers int

	// QueueBound caps the pending backlog. Zero means DefaultQueueBound.
	QueueBound int
}

// Pool runs submitted requests on worker goroutines. Requests wait in a
// bounded channel; Submit fails fast when the backlog is full instead of
// blocking the API.
type Pool struct {
	deps   Deps
	opts   Options
	logger *slog.Logger

	requests chan Request
	wg       sync.WaitGroup
	cancel   context.CancelFunc

	mu      sync.Mutex
	started bool
	active  int
}

// NewPool wires a pool. Panics when a required dependency is nil.
func NewPool(deps Deps, opts Options) *Pool {
	if deps.Config == nil {
		panic("queue: config is required")
	}
	if deps.LLM == nil {
		panic("queue: llm client is required")
	}
	if deps.Tools == nil {
		panic("queue: tool registry is required")
	}
	if deps.Manager == nil {
		panic("queue: session manager is required")
	}
	if opts.Workers <= 0 {
		opts.Workers = 2
	}
	if opts.QueueBound <= 0 {
		opts.QueueBound = DefaultQueueBound
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		deps:     deps,
		opts:     opts,
		logger:   logger.With("component", "queue"),
		requests: make(chan Request, opts.QueueBound),
	}
}

// Start spawns the worker goroutines. Subsequent calls are no-ops.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.opts.Workers; i++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			p.workerLoop(ctx, id)
		}(i)
	}
	p.logger.Info("worker pool started",
		"workers", p.opts.Workers, "queue_bound", p.opts.QueueBound)
}

// Stop cancels in-flight runs and waits for workers to finish. Pending
// requests that never started are marked failed.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()

	// The channel stays open so a racing Submit cannot panic; it fails
	// the started check instead. Whatever is still queued never ran.
	for {
		select {
		case req := <-p.requests:
			p.abandon(req)
		default:
			p.logger.Info("worker pool stopped")
			return
		}
	}
}

// Submit registers the run and queues it for execution. The returned
// error distinguishes a duplicate ID, a full queue, and a persistence
// failure; on any of them nothing is left behind.
func (p *Pool) Submit(req Request) error {
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()
	if !started {
		return ErrNotStarted
	}

	if req.Mode == "" {
		req.Mode = session.ModeInvestigation
	}
	req.scratchpadID = scratchpad.GenerateSessionID()

	if _, err := p.deps.Manager.Create(req.ID, req.Query, req.IncidentID, req.Mode); err != nil {
		return err
	}

	if p.deps.Sessions != nil {
		_, err := p.deps.Sessions.Create(context.Background(), services.CreateParams{
			ID:                  req.ID,
			Query:               req.Query,
			IncidentID:          req.IncidentID,
			Mode:                entsession.Mode(req.Mode),
			ScratchpadSessionID: req.scratchpadID,
		})
		if err != nil {
			p.deps.Manager.Delete(req.ID)
			return fmt.Errorf("persist session: %w", err)
		}
	}

	select {
	case p.requests <- req:
		return nil
	default:
		p.deps.Manager.Delete(req.ID)
		if p.deps.Sessions != nil {
			if ferr := p.deps.Sessions.Fail(context.Background(), req.ID, "queue full"); ferr != nil {
				p.logger.Error("failed to mark rejected session", "id", req.ID, "error", ferr)
			}
		}
		return ErrQueueFull
	}
}

// Health returns the pool's current load.
func (p *Pool) Health() PoolHealth {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PoolHealth{
		Started:    p.started,
		Workers:    p.opts.Workers,
		ActiveRuns: p.active,
		QueueDepth: len(p.requests),
		QueueBound: p.opts.QueueBound,
	}
}

func (p *Pool) workerLoop(ctx context.Context, id int) {
	logger := p.logger.With("worker", id)
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-p.requests:
			if !ok {
				return
			}
			if ctx.Err() != nil {
				p.abandon(req)
				return
			}
			p.mu.Lock()
			p.active++
			p.mu.Unlock()

			p.process(ctx, req, logger)

			p.mu.Lock()
			p.active--
			p.mu.Unlock()
		}
	}
}

// abandon marks a request that was queued but never executed.
func (p *Pool) abandon(req Request) {
	if run := p.deps.Manager.Get(req.ID); run != nil {
		run.SetError("shut down before execution")
	}
	if p.deps.Sessions != nil {
		if err := p.deps.Sessions.Fail(context.Background(), req.ID, "shut down before execution"); err != nil {
			p.logger.Error("failed to mark abandoned session", "id", req.ID, "error", err)
		}
	}
}
