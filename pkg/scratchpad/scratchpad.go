// Package scratchpad is the durable session log of an investigation: an
// append-only file of JSON lines mirrored in memory for prompt assembly. The
// file is never truncated or rewritten; compaction only changes how stored
// tool results are rendered into context. A graceful-limit tracker rides
// along to warn (never block) on excessive or repetitive tool usage.
package scratchpad

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/summarizer"
	"github.com/rootline-ai/rootline/pkg/tokens"
)

// fullRenderTokenBudget caps how many tokens one full-tier result may
// occupy in assembled context.
const fullRenderTokenBudget = 2000

// Option configures a Scratchpad.
type Option func(*Scratchpad)

// WithToolLimits overrides the suggested per-tool call caps.
func WithToolLimits(limits map[string]int) Option {
	return func(s *Scratchpad) { s.limits = newLimitTracker(limits) }
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scratchpad) { s.now = now }
}

// Scratchpad owns one session file plus its in-memory mirror. All methods
// are safe for concurrent use, though in practice the coordinator is the
// sole writer.
type Scratchpad struct {
	mu        chanMutex
	sessionID string
	path      string
	file      *os.File
	now       func() time.Time

	entries []Entry
	results map[string]*TieredResult
	order   []string
	limits  *limitTracker
}

// chanMutex is a mutex that can be acquired with a context, so appends
// remain a cancellation suspension point even under contention.
type chanMutex chan struct{}

func newChanMutex() chanMutex {
	m := make(chanMutex, 1)
	m <- struct{}{}
	return m
}

func (m chanMutex) lock(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-m:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m chanMutex) lockNoCtx() { <-m }
func (m chanMutex) unlock()    { m <- struct{}{} }

// New opens (or creates) the session file for sessionID under dir and
// replays any existing entries into memory, so restarting with the same
// session ID resumes with an equivalent history.
func New(dir, sessionID string, opts ...Option) (*Scratchpad, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scratchpad directory: %w", err)
	}

	s := &Scratchpad{
		mu:        newChanMutex(),
		sessionID: sessionID,
		path:      filepath.Join(dir, sessionID+".ndjson"),
		now:       time.Now,
		results:   make(map[string]*TieredResult),
		limits:    newLimitTracker(nil),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.replay(); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open session file: %w", err)
	}
	s.file = file
	return s, nil
}

// SessionID returns the session identifier this scratchpad belongs to.
func (s *Scratchpad) SessionID() string { return s.sessionID }

// Path returns the on-disk location of the session file.
func (s *Scratchpad) Path() string { return s.path }

// Close releases the file handle. The scratchpad must not be used after.
func (s *Scratchpad) Close() error {
	s.mu.lockNoCtx()
	defer s.mu.unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// replay loads existing entries from disk and rebuilds the in-memory
// mirror. Tool results are restored at full tier; compaction state is not
// persisted and is recomputed on demand.
func (s *Scratchpad) replay() error {
	file, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open session file for replay: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return fmt.Errorf("corrupt session file %s at line %d: %w", s.path, line, err)
		}
		s.entries = append(s.entries, entry)
		if entry.Type == EntryToolResult && entry.ResultID != "" {
			s.storeResult(&entry)
			s.limits.record(entry.Tool, argsText(entry.Args))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read session file: %w", err)
	}
	return nil
}

// Append writes one entry to the session file and flushes it before
// returning, then records it in memory. A zero timestamp is filled in.
func (s *Scratchpad) Append(ctx context.Context, entry Entry) error {
	if err := s.mu.lock(ctx); err != nil {
		return err
	}
	defer s.mu.unlock()
	return s.appendLocked(entry)
}

func (s *Scratchpad) appendLocked(entry Entry) error {
	if s.file == nil {
		return fmt.Errorf("scratchpad is closed")
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode scratchpad entry: %w", err)
	}
	if _, err := s.file.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("failed to append to session file: %w", err)
	}
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("failed to flush session file: %w", err)
	}
	s.entries = append(s.entries, entry)
	return nil
}

// AppendToolResult logs a tool result, assigns it a stable result ID, and
// stores it in the arena at full tier. The compact form may be nil; a
// default summary is synthesized when tier demotion later needs one.
func (s *Scratchpad) AppendToolResult(ctx context.Context, call agent.ToolCall, result any, compact *summarizer.CompactToolResult) (string, error) {
	if err := s.mu.lock(ctx); err != nil {
		return "", err
	}
	defer s.mu.unlock()

	resultID := ""
	if compact != nil && compact.ResultID != "" {
		resultID = compact.ResultID
	} else {
		resultID = summarizer.NewResultID(call.Name)
	}

	entry := Entry{
		Type:     EntryToolResult,
		Tool:     call.Name,
		CallID:   call.ID,
		ResultID: resultID,
		Args:     call.Args,
		Result:   result,
		Compact:  compact,
	}
	if err := s.appendLocked(entry); err != nil {
		return "", err
	}
	s.storeResult(&s.entries[len(s.entries)-1])
	s.limits.record(call.Name, argsText(call.Args))
	return resultID, nil
}

// storeResult adds a tool-result entry to the arena. Caller holds the lock.
func (s *Scratchpad) storeResult(entry *Entry) {
	if _, exists := s.results[entry.ResultID]; exists {
		return
	}
	tr := &TieredResult{
		ResultID:  entry.ResultID,
		Tool:      entry.Tool,
		CallID:    entry.CallID,
		Args:      entry.Args,
		Tier:      TierFull,
		Full:      entry.Result,
		Compact:   entry.Compact,
		Tokens:    tokens.Estimate(renderJSON(entry.Result)),
		Timestamp: entry.Timestamp,
	}
	s.results[entry.ResultID] = tr
	s.order = append(s.order, entry.ResultID)
}

// Entries returns a copy of all log entries in append order.
func (s *Scratchpad) Entries() []Entry {
	s.mu.lockNoCtx()
	defer s.mu.unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ToolResults returns all stored results in append order. The returned
// slice holds copies of the tiered metadata; result bodies are shared.
func (s *Scratchpad) ToolResults() []TieredResult {
	s.mu.lockNoCtx()
	defer s.mu.unlock()
	return s.toolResultsLocked()
}

func (s *Scratchpad) toolResultsLocked() []TieredResult {
	out := make([]TieredResult, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.results[id])
	}
	return out
}

// TieredResults groups stored results by their current tier, each group in
// append order.
func (s *Scratchpad) TieredResults() map[Tier][]TieredResult {
	s.mu.lockNoCtx()
	defer s.mu.unlock()
	out := make(map[Tier][]TieredResult)
	for _, id := range s.order {
		tr := s.results[id]
		out[tr.Tier] = append(out[tr.Tier], *tr)
	}
	return out
}

// BuildTieredContext renders the stored results into prompt text: full-tier
// results as (bounded) JSON, compact-tier as their summaries, cleared-tier
// as a one-line header the LLM can follow up on via get_full_result.
func (s *Scratchpad) BuildTieredContext() string {
	s.mu.lockNoCtx()
	defer s.mu.unlock()

	if len(s.order) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Tool results\n")
	for _, id := range s.order {
		tr := s.results[id]
		switch tr.Tier {
		case TierFull:
			fmt.Fprintf(&b, "\n### [%s] %s (full)\n", tr.ResultID, tr.Tool)
			body := renderJSON(tr.Full)
			b.WriteString(tokens.Truncate(body, fullRenderTokenBudget, "\n... (truncated)"))
			b.WriteString("\n")
		case TierCompact:
			fmt.Fprintf(&b, "\n### [%s] %s (summary)\n", tr.ResultID, tr.Tool)
			b.WriteString(renderCompact(tr.Compact))
		case TierCleared:
			fmt.Fprintf(&b, "\n[%s] %s at %s (cleared; call get_full_result with this resultId to retrieve)\n",
				tr.ResultID, tr.Tool, tr.Timestamp.Format(time.RFC3339))
		}
	}
	return b.String()
}

// renderCompact formats a compact summary for prompt context.
func renderCompact(c *summarizer.CompactToolResult) string {
	if c == nil {
		return "(no summary available)\n"
	}
	var b strings.Builder
	b.WriteString(c.Summary)
	b.WriteString("\n")
	if c.ItemCount > 0 {
		fmt.Fprintf(&b, "items: %d\n", c.ItemCount)
	}
	if len(c.Services) > 0 {
		fmt.Fprintf(&b, "services: %s\n", strings.Join(c.Services, ", "))
	}
	if c.Health != "" && c.Health != summarizer.HealthUnknown {
		fmt.Fprintf(&b, "health: %s\n", c.Health)
	}
	for k, v := range c.Highlights {
		fmt.Fprintf(&b, "%s: %v\n", k, v)
	}
	return b.String()
}

// ContextTokens estimates the token footprint of the current tiered view.
func (s *Scratchpad) ContextTokens() int {
	return tokens.Estimate(s.BuildTieredContext())
}

// ClearOldestToolResults demotes all but the most recent keep results to
// the cleared tier, returning the IDs that were demoted. Results already
// cleared are not counted again.
func (s *Scratchpad) ClearOldestToolResults(keep int) []string {
	s.mu.lockNoCtx()
	defer s.mu.unlock()

	if keep < 0 {
		keep = 0
	}
	var cleared []string
	excess := len(s.order) - keep
	for _, id := range s.order {
		if excess <= 0 {
			break
		}
		tr := s.results[id]
		excess--
		if tr.Tier == TierCleared {
			continue
		}
		s.demoteLocked(tr, TierCleared)
		cleared = append(cleared, id)
	}
	return cleared
}

// ApplyCompactionPlan retiers stored results per the plan. Unknown result
// IDs are ignored; results the plan does not mention keep their tier.
// Returns the IDs newly demoted to cleared.
func (s *Scratchpad) ApplyCompactionPlan(plan CompactionPlan) []string {
	s.mu.lockNoCtx()
	defer s.mu.unlock()

	for _, id := range plan.KeepFull {
		if tr, ok := s.results[id]; ok {
			tr.Tier = TierFull
		}
	}
	for _, id := range plan.KeepCompact {
		if tr, ok := s.results[id]; ok && tr.Tier != TierCleared {
			s.demoteLocked(tr, TierCompact)
		}
	}
	var cleared []string
	for _, id := range plan.Clear {
		if tr, ok := s.results[id]; ok && tr.Tier != TierCleared {
			s.demoteLocked(tr, TierCleared)
			cleared = append(cleared, id)
		}
	}
	return cleared
}

// demoteLocked lowers a result's tier, synthesizing a default summary if a
// compact tier needs one. The full body stays in the arena for drill-down.
func (s *Scratchpad) demoteLocked(tr *TieredResult, tier Tier) {
	if tier == TierCompact && tr.Compact == nil {
		tr.Compact = summarizer.DefaultSummarize(tr.Tool, tr.Full)
		tr.Compact.ResultID = tr.ResultID
	}
	tr.Tier = tier
}

// CanCallTool checks the graceful limits for the next call to tool. The
// call is always allowed; the warning, when present, should be surfaced as
// a tool_limit event.
func (s *Scratchpad) CanCallTool(tool string, args map[string]any) LimitCheck {
	s.mu.lockNoCtx()
	defer s.mu.unlock()
	return s.limits.check(tool, argsText(args))
}

// ToolCallCount reports how many calls to tool have been recorded.
func (s *Scratchpad) ToolCallCount(tool string) int {
	s.mu.lockNoCtx()
	defer s.mu.unlock()
	return s.limits.count(tool)
}

// Snapshot freezes the current arena for concurrent readers, in particular
// the get_full_result tool during a parallel batch.
func (s *Scratchpad) Snapshot() *Snapshot {
	s.mu.lockNoCtx()
	defer s.mu.unlock()
	frozen := make(map[string]TieredResult, len(s.results))
	for id, tr := range s.results {
		frozen[id] = *tr
	}
	return &Snapshot{results: frozen}
}

// Snapshot is an immutable view of the result arena.
type Snapshot struct {
	results map[string]TieredResult
}

// Result looks up a stored result by ID.
func (sn *Snapshot) Result(id string) (TieredResult, bool) {
	tr, ok := sn.results[id]
	return tr, ok
}

func argsText(args map[string]any) string {
	if len(args) == 0 {
		return ""
	}
	return renderJSON(args)
}

func renderJSON(v any) string {
	if v == nil {
		return "null"
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}
