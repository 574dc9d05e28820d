// Package executor runs batches of tool calls with bounded concurrency,
// per-call timeouts, and cooperative cancellation. Results carry the batch
// and call IDs so completion order can differ from dispatch order without
// losing attribution.
package executor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/rootline-ai/rootline/pkg/agent"
)

// Defaults applied when Config fields are zero.
const (
	DefaultMaxConcurrent = 5
	DefaultTimeout       = 30 * time.Second
)

// Config controls batch execution.
type Config struct {
	MaxConcurrent int
	Timeout       time.Duration

	// Limiter optionally throttles dispatch across batches. nil = no limit.
	Limiter *rate.Limiter
}

// Task pairs a tool call with its resolved tool.
type Task struct {
	Call agent.ToolCall
	Tool agent.Tool
}

// Result is the outcome of one call within a batch.
type Result struct {
	BatchID  string
	CallID   string
	Tool     string
	Value    any
	Err      error
	TimedOut bool
	Duration time.Duration
}

// IsError reports whether the call failed (including timeout).
func (r Result) IsError() bool { return r.Err != nil }

// BatchResult holds a batch's results in completion order.
type BatchResult struct {
	BatchID string
	Results []Result
}

// Executor is a concurrency-limited batch runner. Safe for reuse across
// iterations; each batch gets a fresh ID.
type Executor struct {
	cfg Config
	sem *semaphore.Weighted
}

// New creates an executor, applying defaults for zero config values.
func New(cfg Config) *Executor {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = DefaultMaxConcurrent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Executor{cfg: cfg, sem: semaphore.NewWeighted(int64(cfg.MaxConcurrent))}
}

// ExecuteBatch runs all tasks with up to MaxConcurrent in flight. As each
// call completes the next is dispatched. If ctx is cancelled, undispatched
// tasks are dropped and in-flight calls receive the cancellation through
// their call context; completed results up to that point are returned.
func (e *Executor) ExecuteBatch(ctx context.Context, tasks []Task) *BatchResult {
	batchID := uuid.NewString()
	results := make(chan Result, len(tasks))

	var wg sync.WaitGroup
	for _, task := range tasks {
		if ctx.Err() != nil {
			break
		}
		if e.cfg.Limiter != nil {
			if err := e.cfg.Limiter.Wait(ctx); err != nil {
				break
			}
		}
		if err := e.sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(task Task) {
			defer wg.Done()
			defer e.sem.Release(1)
			results <- e.runOne(ctx, batchID, task)
		}(task)
	}

	wg.Wait()
	close(results)

	batch := &BatchResult{BatchID: batchID}
	for r := range results {
		batch.Results = append(batch.Results, r)
	}
	return batch
}

// ExecuteGrouped partitions tasks by resource signature, runs distinct
// groups in parallel, and calls within a group sequentially. Used when the
// planner cannot guarantee independence; callers may bypass grouping and
// trust LLM-proposed independence via ExecuteBatch.
func (e *Executor) ExecuteGrouped(ctx context.Context, tasks []Task) *BatchResult {
	groups := GroupByResource(tasks)
	if len(groups) <= 1 {
		return e.sequential(ctx, tasks)
	}

	batchID := uuid.NewString()
	results := make(chan Result, len(tasks))

	var wg sync.WaitGroup
	for _, group := range groups {
		wg.Add(1)
		go func(group []Task) {
			defer wg.Done()
			for _, task := range group {
				if ctx.Err() != nil {
					return
				}
				if err := e.sem.Acquire(ctx, 1); err != nil {
					return
				}
				r := e.runOne(ctx, batchID, task)
				e.sem.Release(1)
				results <- r
			}
		}(group)
	}

	wg.Wait()
	close(results)

	batch := &BatchResult{BatchID: batchID}
	for r := range results {
		batch.Results = append(batch.Results, r)
	}
	return batch
}

// sequential runs tasks one at a time under the same result contract.
func (e *Executor) sequential(ctx context.Context, tasks []Task) *BatchResult {
	batchID := uuid.NewString()
	batch := &BatchResult{BatchID: batchID}
	for _, task := range tasks {
		if ctx.Err() != nil {
			break
		}
		batch.Results = append(batch.Results, e.runOne(ctx, batchID, task))
	}
	return batch
}

// runOne executes a single call under the per-call timeout. On timeout the
// call context is cancelled and a timed-out result is recorded; a tool that
// ignores cancellation leaks its goroutine until it returns on its own.
func (e *Executor) runOne(ctx context.Context, batchID string, task Task) Result {
	callCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	start := time.Now()
	type outcome struct {
		value any
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		value, err := task.Tool.Execute(callCtx, task.Call.Args)
		done <- outcome{value: value, err: err}
	}()

	select {
	case out := <-done:
		return Result{
			BatchID:  batchID,
			CallID:   task.Call.ID,
			Tool:     task.Call.Name,
			Value:    out.value,
			Err:      out.err,
			TimedOut: out.err != nil && callCtx.Err() == context.DeadlineExceeded,
			Duration: time.Since(start),
		}
	case <-callCtx.Done():
		return Result{
			BatchID:  batchID,
			CallID:   task.Call.ID,
			Tool:     task.Call.Name,
			Err:      &TimeoutError{Tool: task.Call.Name, Timeout: e.cfg.Timeout, Cause: callCtx.Err()},
			TimedOut: callCtx.Err() == context.DeadlineExceeded,
			Duration: time.Since(start),
		}
	}
}
