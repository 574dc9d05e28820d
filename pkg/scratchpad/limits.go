package scratchpad

import (
	"fmt"
	"strings"
)

// retryLoopThreshold is the Jaccard token overlap at which two argument
// texts for the same tool are treated as a likely retry loop.
const retryLoopThreshold = 0.8

// DefaultToolLimits are the suggested per-tool call caps. Tools not listed
// carry no cap; exceeding a cap never blocks, it only produces a warning.
func DefaultToolLimits() map[string]int {
	return map[string]int{
		"aws-query":        10,
		"logs-query":       10,
		"metrics-query":    10,
		"knowledge-search": 5,
		"web-search":       3,
	}
}

// LimitCheck is the outcome of a graceful-limit check. Allowed is always
// true; Warning is non-empty when a cap is exceeded or a retry loop is
// suspected.
type LimitCheck struct {
	Allowed bool
	Warning string
}

// limitTracker counts tool calls and remembers argument token sets so
// near-identical repeat calls can be flagged. Callers hold the scratchpad
// lock; the tracker itself is not synchronized.
type limitTracker struct {
	limits  map[string]int
	counts  map[string]int
	history map[string][]map[string]bool
}

func newLimitTracker(limits map[string]int) *limitTracker {
	if limits == nil {
		limits = DefaultToolLimits()
	}
	return &limitTracker{
		limits:  limits,
		counts:  make(map[string]int),
		history: make(map[string][]map[string]bool),
	}
}

// check evaluates the next call to tool with the given argument text.
func (t *limitTracker) check(tool, argsText string) LimitCheck {
	out := LimitCheck{Allowed: true}

	if limit, ok := t.limits[tool]; ok && t.counts[tool]+1 > limit {
		out.Warning = fmt.Sprintf(
			"tool %s has been called %d times (suggested cap %d); consider a different approach",
			tool, t.counts[tool], limit)
	}

	set := tokenSet(argsText)
	if len(set) > 0 {
		best := 0.0
		for _, prior := range t.history[tool] {
			if j := jaccard(set, prior); j > best {
				best = j
			}
		}
		if best >= retryLoopThreshold {
			warn := fmt.Sprintf(
				"possible retry loop: arguments overlap %.0f%% with a previous %s call",
				best*100, tool)
			if out.Warning != "" {
				out.Warning += "; " + warn
			} else {
				out.Warning = warn
			}
		}
	}
	return out
}

// record counts an executed call and remembers its argument tokens.
func (t *limitTracker) record(tool, argsText string) {
	t.counts[tool]++
	if set := tokenSet(argsText); len(set) > 0 {
		t.history[tool] = append(t.history[tool], set)
	}
}

func (t *limitTracker) count(tool string) int { return t.counts[tool] }

// tokenSet lowercases and splits on non-alphanumeric runes.
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		set[tok] = true
	}
	return set
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if b[tok] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
