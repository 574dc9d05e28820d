package config

import (
	"fmt"

	"dario.cat/mergo"
)

// RunOverrides carries per-request adjustments to the investigation
// settings. Nil fields leave the base configuration untouched.
type RunOverrides struct {
	MaxIterations          *int           `json:"maxIterations,omitempty" yaml:"max_iterations,omitempty"`
	MaxHypothesisDepth     *int           `json:"maxHypothesisDepth,omitempty" yaml:"max_hypothesis_depth,omitempty"`
	ContextThresholdTokens *int           `json:"contextThresholdTokens,omitempty" yaml:"context_threshold_tokens,omitempty"`
	KeepToolUses           *int           `json:"keepToolUses,omitempty" yaml:"keep_tool_uses,omitempty"`
	ToolLimits             map[string]int `json:"toolLimits,omitempty" yaml:"tool_limits,omitempty"`
	CompactionPreset       string         `json:"compactionPreset,omitempty" yaml:"compaction_preset,omitempty"`

	EnableSummarization   *bool `json:"enableSummarization,omitempty" yaml:"enable_summarization,omitempty"`
	EnableSmartCompaction *bool `json:"enableSmartCompaction,omitempty" yaml:"enable_smart_compaction,omitempty"`
	ExplainMode           *bool `json:"explainMode,omitempty" yaml:"explain_mode,omitempty"`

	EnableRemediation      *bool `json:"enableRemediation,omitempty" yaml:"enable_remediation,omitempty"`
	AutoApproveRemediation *bool `json:"autoApproveRemediation,omitempty" yaml:"auto_approve_remediation,omitempty"`

	CacheEnabled    *bool `json:"cacheEnabled,omitempty" yaml:"cache_enabled,omitempty"`
	ParallelEnabled *bool `json:"parallelEnabled,omitempty" yaml:"parallel_enabled,omitempty"`

	AvailableTools []string `json:"availableTools,omitempty" yaml:"available_tools,omitempty"`
	KnownServices  []string `json:"knownServices,omitempty" yaml:"known_services,omitempty"`
}

// WithOverrides returns a copy of the configuration with the overrides
// applied. The receiver is not modified; validation runs on the result so
// a bad override cannot smuggle in an invalid setting.
func (c *Config) WithOverrides(o *RunOverrides) (*Config, error) {
	out := *c
	if o == nil {
		return &out, nil
	}

	patch := InvestigationConfig{
		MaxIterations:          o.MaxIterations,
		MaxHypothesisDepth:     o.MaxHypothesisDepth,
		ContextThresholdTokens: o.ContextThresholdTokens,
		KeepToolUses:           o.KeepToolUses,
		ToolLimits:             o.ToolLimits,
		CompactionPreset:       o.CompactionPreset,
		EnableSummarization:    o.EnableSummarization,
		EnableSmartCompaction:  o.EnableSmartCompaction,
		ExplainMode:            o.ExplainMode,
		EnableRemediation:      o.EnableRemediation,
		AutoApproveRemediation: o.AutoApproveRemediation,
		AvailableTools:         o.AvailableTools,
		KnownServices:          o.KnownServices,
	}
	// WithoutDereference: a set pointer in the patch replaces the base
	// value even when it points at false/zero; nil pointers stay inert.
	inv := c.Investigation
	if err := mergo.Merge(&inv, patch, mergo.WithOverride, mergo.WithoutDereference); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}
	out.Investigation = inv

	if o.CacheEnabled != nil {
		cache := c.Cache
		cache.Enabled = o.CacheEnabled
		out.Cache = cache
	}
	if o.ParallelEnabled != nil {
		par := c.Parallel
		par.Enabled = o.ParallelEnabled
		out.Parallel = par
	}

	if err := validate(&out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return &out, nil
}
