// Package summarizer produces compact, prompt-friendly summaries of raw tool
// results. Each tool can register its own summarizer; unknown tools fall
// back to a default that reports item counts and top-level keys. Result IDs
// minted here are the stable handles used for tiering and drill-down.
package summarizer

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// HealthStatus is the best-effort health classification of a tool result.
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthDegraded HealthStatus = "degraded"
	HealthCritical HealthStatus = "critical"
	HealthUnknown  HealthStatus = "unknown"
)

// CompactToolResult is the summarized form of one tool result.
type CompactToolResult struct {
	ResultID   string         `json:"resultId"`
	Tool       string         `json:"tool"`
	Summary    string         `json:"summary"`
	Highlights map[string]any `json:"highlights,omitempty"`
	ItemCount  int            `json:"itemCount"`
	IsError    bool           `json:"isError,omitempty"`
	Services   []string       `json:"services,omitempty"`
	Health     HealthStatus   `json:"health"`
}

// Func summarizes one raw result for a given tool.
type Func func(tool string, result any) *CompactToolResult

// Registry maps tool names to summarizers. Safe for concurrent reads after
// wiring; registration happens during setup.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry creates a registry holding only the default summarizer.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register installs a summarizer for a tool.
func (r *Registry) Register(tool string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[tool] = fn
}

// Summarize produces the compact form of a result, assigning a fresh result
// ID. Falls back to the default summarizer for unregistered tools.
func (r *Registry) Summarize(tool string, result any) *CompactToolResult {
	r.mu.RLock()
	fn := r.funcs[tool]
	r.mu.RUnlock()

	var compact *CompactToolResult
	if fn != nil {
		compact = fn(tool, result)
	}
	if compact == nil {
		compact = DefaultSummarize(tool, result)
	}
	if compact.ResultID == "" {
		compact.ResultID = NewResultID(tool)
	}
	compact.Tool = tool
	if compact.Health == "" {
		compact.Health = HealthUnknown
	}
	return compact
}

// NewResultID mints a result handle: "<toolPrefix>-<8 hex chars>". The
// prefix is the tool name's first dash-separated segment so IDs stay short
// ("logs-3fa2b91c" for "logs-query").
func NewResultID(tool string) string {
	prefix := tool
	if idx := strings.IndexByte(tool, '-'); idx > 0 {
		prefix = tool[:idx]
	}
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to a
		// constant-free but still unique-enough counter seed.
		return fmt.Sprintf("%s-%08x", prefix, nextFallbackID())
	}
	return prefix + "-" + hex.EncodeToString(b[:])
}

var (
	fallbackMu sync.Mutex
	fallbackN  uint32
)

func nextFallbackID() uint32 {
	fallbackMu.Lock()
	defer fallbackMu.Unlock()
	fallbackN++
	return fallbackN
}

// DefaultSummarize handles tools without a registered summarizer: item
// count, top-level keys, error flag, and best-effort service extraction.
func DefaultSummarize(tool string, result any) *CompactToolResult {
	compact := &CompactToolResult{
		Health:     classifyHealth(result),
		Services:   ExtractServices(result),
		Highlights: map[string]any{},
	}

	switch v := result.(type) {
	case nil:
		compact.Summary = fmt.Sprintf("%s returned no data", tool)
	case map[string]any:
		keys := topLevelKeys(v)
		compact.ItemCount = itemCount(v)
		compact.IsError = hasErrorField(v)
		if len(keys) > 0 {
			compact.Highlights["keys"] = keys
		}
		if compact.IsError {
			compact.Summary = fmt.Sprintf("%s returned an error: %v", tool, v["error"])
		} else if compact.ItemCount > 0 {
			compact.Summary = fmt.Sprintf("%s returned %d items across fields %s.",
				tool, compact.ItemCount, strings.Join(keys, ", "))
		} else {
			compact.Summary = fmt.Sprintf("%s returned an object with fields %s.",
				tool, strings.Join(keys, ", "))
		}
	case []any:
		compact.ItemCount = len(v)
		compact.Summary = fmt.Sprintf("%s returned %d items.", tool, len(v))
	case string:
		compact.Summary = firstSentences(v, 2)
		if compact.Summary == "" {
			compact.Summary = fmt.Sprintf("%s returned an empty response", tool)
		}
	default:
		compact.Summary = fmt.Sprintf("%s returned: %v", tool, v)
	}
	if len(compact.Highlights) == 0 {
		compact.Highlights = nil
	}
	return compact
}

// topLevelKeys returns sorted top-level keys of a result object.
func topLevelKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// itemCount sums the lengths of top-level array fields.
func itemCount(m map[string]any) int {
	n := 0
	for _, v := range m {
		if arr, ok := v.([]any); ok {
			n += len(arr)
		}
	}
	return n
}

func hasErrorField(m map[string]any) bool {
	v, ok := m["error"]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}

// firstSentences returns up to n sentences of text, trimmed.
func firstSentences(text string, n int) string {
	text = strings.TrimSpace(text)
	count := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			count++
			if count == n {
				return strings.TrimSpace(text[:i+1])
			}
		}
	}
	if len(text) > 300 {
		return text[:300]
	}
	return text
}

// serviceFieldNames are the common field names that carry service identity.
var serviceFieldNames = map[string]bool{
	"service": true, "serviceName": true, "service_name": true,
	"services": true, "functionName": true, "function_name": true,
	"application": true, "app": true,
}

// servicePattern matches conventional service naming in free text.
var servicePattern = regexp.MustCompile(`\b[a-z][a-z0-9]*(?:-[a-z0-9]+)*-(?:api|service|svc|worker|gateway|db)\b`)

// ExtractServices pulls service names out of a result, best-effort: known
// field names first, then a naming-convention regex over string values.
func ExtractServices(result any) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	var walk func(v any, depth int)
	walk = func(v any, depth int) {
		if depth > 4 {
			return
		}
		switch val := v.(type) {
		case map[string]any:
			for k, item := range val {
				if serviceFieldNames[k] {
					switch sv := item.(type) {
					case string:
						add(sv)
					case []any:
						for _, s := range sv {
							if str, ok := s.(string); ok {
								add(str)
							}
						}
					}
					continue
				}
				walk(item, depth+1)
			}
		case []any:
			for _, item := range val {
				walk(item, depth+1)
			}
		case string:
			for _, m := range servicePattern.FindAllString(val, 5) {
				add(m)
			}
		}
	}
	walk(result, 0)
	sort.Strings(out)
	return out
}

// criticalMarkers and degradedMarkers drive best-effort health
// classification from status-like fields and error text.
var (
	criticalMarkers = []string{"critical", "outage", "down", "failed", "fatal", "alarm"}
	degradedMarkers = []string{"degraded", "warning", "elevated", "throttl", "slow", "retry"}
)

func classifyHealth(result any) HealthStatus {
	text := strings.ToLower(renderForScan(result))
	if text == "" {
		return HealthUnknown
	}
	for _, marker := range criticalMarkers {
		if strings.Contains(text, marker) {
			return HealthCritical
		}
	}
	for _, marker := range degradedMarkers {
		if strings.Contains(text, marker) {
			return HealthDegraded
		}
	}
	if strings.Contains(text, "healthy") || strings.Contains(text, `"status":"ok"`) ||
		strings.Contains(text, "\"state\":\"running\"") {
		return HealthHealthy
	}
	return HealthUnknown
}

// renderForScan flattens a result to text for marker scanning. Bounded so a
// huge result does not dominate summarization time.
func renderForScan(result any) string {
	switch v := result.(type) {
	case nil:
		return ""
	case string:
		if len(v) > 4096 {
			return v[:4096]
		}
		return v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		if len(raw) > 4096 {
			raw = raw[:4096]
		}
		return string(raw)
	}
}
