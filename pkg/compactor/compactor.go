// Package compactor decides which stored tool results stay in prompt
// context when the token budget tightens. It scores each result on recency,
// affected-service overlap, error signals, hypothesis relevance, and health,
// then classifies it into keep-full, keep-compact, or clear. The most recent
// results are always kept full so the LLM never loses its working set.
package compactor

import (
	"sort"
	"strings"

	"github.com/rootline-ai/rootline/pkg/scratchpad"
	"github.com/rootline-ai/rootline/pkg/summarizer"
)

// Preset selects a weighting profile.
type Preset string

const (
	PresetIncident Preset = "incident"
	PresetResearch Preset = "research"
	PresetBalanced Preset = "balanced"
)

// Valid reports whether p is a known preset.
func (p Preset) Valid() bool {
	switch p {
	case PresetIncident, PresetResearch, PresetBalanced:
		return true
	}
	return false
}

// Weights are the per-factor multipliers. Each factor scores in [0,1];
// the weighted sum is normalized by the weight total.
type Weights struct {
	Recency          float64
	AffectedServices float64
	ErrorSignals     float64
	Hypothesis       float64
	Health           float64
}

// presetWeights returns the profile for a preset. Incident response leans
// on error and health signals; research leans on hypothesis relevance.
func presetWeights(p Preset) Weights {
	switch p {
	case PresetIncident:
		return Weights{Recency: 2, AffectedServices: 3, ErrorSignals: 3, Hypothesis: 1, Health: 3}
	case PresetResearch:
		return Weights{Recency: 2, AffectedServices: 1, ErrorSignals: 1, Hypothesis: 4, Health: 1}
	default:
		return Weights{Recency: 2, AffectedServices: 2, ErrorSignals: 2, Hypothesis: 2, Health: 2}
	}
}

// Thresholds on the normalized score.
const (
	keepFullThreshold    = 0.6
	keepCompactThreshold = 0.3
)

// DefaultKeepToolUses is how many most-recent results are always kept full.
const DefaultKeepToolUses = 5

// Config controls plan construction.
type Config struct {
	Preset       Preset
	KeepToolUses int
}

// Context is the investigation state the scoring runs against.
type Context struct {
	Query               string
	HypothesisStatement string
	AffectedServices    []string
}

// Compactor builds compaction plans.
type Compactor struct {
	weights Weights
	keep    int
}

// New creates a compactor, applying defaults for zero config values.
func New(cfg Config) *Compactor {
	if !cfg.Preset.Valid() {
		cfg.Preset = PresetBalanced
	}
	if cfg.KeepToolUses <= 0 {
		cfg.KeepToolUses = DefaultKeepToolUses
	}
	return &Compactor{weights: presetWeights(cfg.Preset), keep: cfg.KeepToolUses}
}

// BuildPlan classifies the given results. Results are expected in append
// order; the trailing KeepToolUses entries are always keep-full regardless
// of score.
func (c *Compactor) BuildPlan(results []scratchpad.TieredResult, invCtx Context) scratchpad.CompactionPlan {
	var plan scratchpad.CompactionPlan
	if len(results) == 0 {
		return plan
	}

	pinnedFrom := len(results) - c.keep
	if pinnedFrom < 0 {
		pinnedFrom = 0
	}
	for i, tr := range results {
		if i >= pinnedFrom {
			plan.KeepFull = append(plan.KeepFull, tr.ResultID)
			continue
		}
		switch s := c.score(tr, i, len(results), invCtx); {
		case s >= keepFullThreshold:
			plan.KeepFull = append(plan.KeepFull, tr.ResultID)
		case s >= keepCompactThreshold:
			plan.KeepCompact = append(plan.KeepCompact, tr.ResultID)
		default:
			plan.Clear = append(plan.Clear, tr.ResultID)
		}
	}
	return plan
}

// score returns the normalized weighted score for one result.
func (c *Compactor) score(tr scratchpad.TieredResult, index, total int, invCtx Context) float64 {
	w := c.weights
	sum := w.Recency + w.AffectedServices + w.ErrorSignals + w.Hypothesis + w.Health
	if sum == 0 {
		return 0
	}

	recency := 0.0
	if total > 1 {
		recency = float64(index) / float64(total-1)
	}

	score := w.Recency * recency
	score += w.AffectedServices * serviceOverlap(tr, invCtx.AffectedServices)
	score += w.ErrorSignals * errorSignal(tr)
	score += w.Hypothesis * hypothesisRelevance(tr, invCtx)
	score += w.Health * healthScore(tr)
	return score / sum
}

// serviceOverlap is 1 when the result mentions any affected service.
func serviceOverlap(tr scratchpad.TieredResult, affected []string) float64 {
	if len(affected) == 0 {
		return 0
	}
	mentioned := make(map[string]bool)
	if tr.Compact != nil {
		for _, s := range tr.Compact.Services {
			mentioned[strings.ToLower(s)] = true
		}
	}
	for _, s := range summarizer.ExtractServices(tr.Args) {
		mentioned[strings.ToLower(s)] = true
	}
	for _, s := range affected {
		if mentioned[strings.ToLower(s)] {
			return 1
		}
	}
	return 0
}

// errorSignal is 1 for results that carry an error flag or a critical
// health classification.
func errorSignal(tr scratchpad.TieredResult) float64 {
	if tr.Compact != nil && (tr.Compact.IsError || tr.Compact.Health == summarizer.HealthCritical) {
		return 1
	}
	if m, ok := tr.Full.(map[string]any); ok {
		if v, present := m["error"]; present && v != nil && v != "" {
			return 1
		}
	}
	return 0
}

// hypothesisRelevance is the token overlap between the current hypothesis
// (plus the query) and the result's summary and arguments.
func hypothesisRelevance(tr scratchpad.TieredResult, invCtx Context) float64 {
	target := tokenSet(invCtx.HypothesisStatement + " " + invCtx.Query)
	if len(target) == 0 {
		return 0
	}
	var text strings.Builder
	if tr.Compact != nil {
		text.WriteString(tr.Compact.Summary)
		text.WriteString(" ")
	}
	for k, v := range tr.Args {
		text.WriteString(k)
		text.WriteString(" ")
		if s, ok := v.(string); ok {
			text.WriteString(s)
			text.WriteString(" ")
		}
	}
	resultTokens := tokenSet(text.String())
	if len(resultTokens) == 0 {
		return 0
	}
	hits := 0
	for tok := range target {
		if resultTokens[tok] {
			hits++
		}
	}
	// Overlap coefficient: normalize by the smaller set so a short summary
	// that matches the hypothesis closely still scores high.
	denom := len(target)
	if len(resultTokens) < denom {
		denom = len(resultTokens)
	}
	return float64(hits) / float64(denom)
}

// healthScore ranks critical above degraded above healthy: worse health is
// more worth keeping during an investigation.
func healthScore(tr scratchpad.TieredResult) float64 {
	if tr.Compact == nil {
		return 0
	}
	switch tr.Compact.Health {
	case summarizer.HealthCritical:
		return 1
	case summarizer.HealthDegraded:
		return 0.6
	case summarizer.HealthHealthy:
		return 0.2
	default:
		return 0
	}
}

// tokenSet lowercases and splits on non-alphanumeric runes, dropping very
// short tokens that would inflate overlap.
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if len(tok) >= 3 {
			set[tok] = true
		}
	}
	return set
}

// SortPlanForDisplay orders each plan list lexicographically; useful for
// stable logging and tests.
func SortPlanForDisplay(plan *scratchpad.CompactionPlan) {
	sort.Strings(plan.KeepFull)
	sort.Strings(plan.KeepCompact)
	sort.Strings(plan.Clear)
}
