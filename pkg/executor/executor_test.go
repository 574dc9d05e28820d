package executor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/agent"
)

// testTool is a configurable fake tool that honors context cancellation.
type testTool struct {
	name    string
	delay   time.Duration
	err     error
	inFlight *int32
	peak     *int32
	mu       *sync.Mutex
	started  []string
}

func (t *testTool) Name() string             { return t.name }
func (t *testTool) Description() string      { return "test tool" }
func (t *testTool) Schema() agent.ToolSchema { return agent.ToolSchema{} }

func (t *testTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	if t.inFlight != nil {
		n := atomic.AddInt32(t.inFlight, 1)
		for {
			p := atomic.LoadInt32(t.peak)
			if n <= p || atomic.CompareAndSwapInt32(t.peak, p, n) {
				break
			}
		}
		defer atomic.AddInt32(t.inFlight, -1)
	}
	if t.mu != nil {
		t.mu.Lock()
		t.started = append(t.started, t.name)
		t.mu.Unlock()
	}
	if t.delay > 0 {
		select {
		case <-time.After(t.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if t.err != nil {
		return nil, t.err
	}
	return map[string]any{"tool": t.name}, nil
}

func call(id, name string, args map[string]any) agent.ToolCall {
	if args == nil {
		args = map[string]any{}
	}
	return agent.ToolCall{ID: id, Name: name, Args: args}
}

func TestExecuteBatchAllComplete(t *testing.T) {
	e := New(Config{MaxConcurrent: 3})
	tool := &testTool{name: "t"}
	var tasks []Task
	for i := 0; i < 5; i++ {
		tasks = append(tasks, Task{Call: call(string(rune('a'+i)), "t", nil), Tool: tool})
	}

	batch := e.ExecuteBatch(context.Background(), tasks)
	require.Len(t, batch.Results, 5)
	assert.NotEmpty(t, batch.BatchID)
	for _, r := range batch.Results {
		assert.Equal(t, batch.BatchID, r.BatchID)
		assert.NoError(t, r.Err)
	}
}

func TestExecuteBatchConcurrencyBound(t *testing.T) {
	var inFlight, peak int32
	tool := &testTool{name: "t", delay: 20 * time.Millisecond, inFlight: &inFlight, peak: &peak}
	e := New(Config{MaxConcurrent: 2, Timeout: time.Second})

	var tasks []Task
	for i := 0; i < 8; i++ {
		tasks = append(tasks, Task{Call: call(string(rune('a'+i)), "t", nil), Tool: tool})
	}
	batch := e.ExecuteBatch(context.Background(), tasks)

	require.Len(t, batch.Results, 8)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2),
		"in-flight calls must never exceed MaxConcurrent")
}

func TestExecuteBatchTimeout(t *testing.T) {
	e := New(Config{MaxConcurrent: 3, Timeout: 100 * time.Millisecond})
	fast := &testTool{name: "fast"}
	slow := &testTool{name: "slow", delay: 500 * time.Millisecond}

	start := time.Now()
	batch := e.ExecuteBatch(context.Background(), []Task{
		{Call: call("c1", "fast", nil), Tool: fast},
		{Call: call("c2", "slow", nil), Tool: slow},
		{Call: call("c3", "fast", nil), Tool: fast},
	})
	elapsed := time.Since(start)

	require.Len(t, batch.Results, 3)
	assert.Less(t, elapsed, 250*time.Millisecond, "timeout must bound the batch")

	var timedOut int
	for _, r := range batch.Results {
		if r.CallID == "c2" {
			assert.True(t, r.TimedOut)
			assert.Error(t, r.Err)
			timedOut++
		} else {
			assert.NoError(t, r.Err)
		}
	}
	assert.Equal(t, 1, timedOut)
}

func TestExecuteBatchToolError(t *testing.T) {
	e := New(Config{})
	boom := errors.New("backend unavailable")
	tool := &testTool{name: "t", err: boom}

	batch := e.ExecuteBatch(context.Background(), []Task{{Call: call("c1", "t", nil), Tool: tool}})
	require.Len(t, batch.Results, 1)
	assert.ErrorIs(t, batch.Results[0].Err, boom)
	assert.False(t, batch.Results[0].TimedOut)
}

func TestExecuteBatchCancellation(t *testing.T) {
	e := New(Config{MaxConcurrent: 1, Timeout: time.Second})
	fast := &testTool{name: "fast"}
	slow := &testTool{name: "slow", delay: 300 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	batch := e.ExecuteBatch(ctx, []Task{
		{Call: call("c1", "fast", nil), Tool: fast},
		{Call: call("c2", "slow", nil), Tool: slow},
		{Call: call("c3", "fast", nil), Tool: fast},
	})

	// The fast call completed; the slow call was cancelled in flight; the
	// third was never dispatched.
	assert.LessOrEqual(t, len(batch.Results), 2)
	for _, r := range batch.Results {
		if r.CallID == "c2" {
			assert.Error(t, r.Err)
		}
	}
}

func TestGroupByResource(t *testing.T) {
	tasks := []Task{
		{Call: call("a", "logs-query", map[string]any{"service": "checkout"})},
		{Call: call("b", "logs-query", map[string]any{"service": "checkout"})},
		{Call: call("c", "logs-query", map[string]any{"service": "payments"})},
		{Call: call("d", "metrics-query", map[string]any{"service": "checkout"})},
		{Call: call("e", "inventory", nil)},
		{Call: call("f", "inventory", nil)},
	}

	groups := GroupByResource(tasks)
	// checkout logs (a,b) | payments logs (c) | checkout metrics (d) | e | f
	require.Len(t, groups, 5)
	assert.Len(t, groups[0], 2)
	assert.Equal(t, "a", groups[0][0].Call.ID)
	assert.Equal(t, "b", groups[0][1].Call.ID)
}

func TestGroupByResourceArrayNormalization(t *testing.T) {
	a := Task{Call: call("a", "q", map[string]any{"services": []any{"x", "y"}})}
	b := Task{Call: call("b", "q", map[string]any{"services": []any{"y", "x"}})}
	groups := GroupByResource([]Task{a, b})
	require.Len(t, groups, 1)
}

func TestExecuteGroupedSequentialWithinGroup(t *testing.T) {
	var inFlight, peak int32
	tool := &testTool{name: "logs-query", delay: 20 * time.Millisecond, inFlight: &inFlight, peak: &peak}
	e := New(Config{MaxConcurrent: 5, Timeout: time.Second})

	// All three share a resource signature — must run one at a time even
	// though the executor allows 5 concurrent.
	tasks := []Task{
		{Call: call("a", "logs-query", map[string]any{"service": "checkout"}), Tool: tool},
		{Call: call("b", "logs-query", map[string]any{"service": "checkout"}), Tool: tool},
		{Call: call("c", "logs-query", map[string]any{"service": "checkout"}), Tool: tool},
	}
	batch := e.ExecuteGrouped(context.Background(), tasks)

	require.Len(t, batch.Results, 3)
	assert.Equal(t, int32(1), atomic.LoadInt32(&peak))
}
