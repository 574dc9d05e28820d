package config

import (
	"fmt"
	"regexp"
	"time"

	"github.com/rootline-ai/rootline/pkg/compactor"
	"github.com/rootline-ai/rootline/pkg/masking"
)

// validate performs fail-fast validation, stopping at the first error.
func validate(cfg *Config) error {
	checks := []func(*Config) error{
		validateServer,
		validateDatabase,
		validateLLM,
		validateInvestigation,
		validateCache,
		validateParallel,
		validateScratchpad,
		validateMasking,
		validateMCP,
		validateKnowledge,
		validateSlack,
	}
	for _, check := range checks {
		if err := check(cfg); err != nil {
			return err
		}
	}
	return nil
}

func validateServer(cfg *Config) error {
	if p := cfg.Server.Port; p != nil && (*p < 1 || *p > 65535) {
		return invalid("server", "port", "must be in 1..65535, got %d", *p)
	}
	return nil
}

func validateDatabase(cfg *Config) error {
	db := &cfg.Database
	if !db.IsEnabled() {
		return nil
	}
	if db.Host == "" {
		return invalid("database", "host", "required when database is enabled")
	}
	if db.User == "" {
		return invalid("database", "user", "required when database is enabled")
	}
	if db.Name == "" {
		return invalid("database", "name", "required when database is enabled")
	}
	switch db.SSLMode {
	case "disable", "require", "verify-ca", "verify-full", "prefer", "allow":
	default:
		return invalid("database", "ssl_mode", "unknown mode %q", db.SSLMode)
	}
	return nil
}

func validateLLM(cfg *Config) error {
	llm := &cfg.LLM
	if !llm.Provider.Valid() {
		return invalid("llm", "provider", "must be one of openai, grpc; got %q", llm.Provider)
	}
	if llm.Provider == ProviderGRPC && llm.GRPC.Addr == "" {
		return invalid("llm", "grpc.addr", "required when provider is grpc")
	}
	if llm.Provider == ProviderOpenAI && llm.OpenAI.APIKeyEnv == "" {
		return invalid("llm", "openai.api_key_env", "required when provider is openai")
	}
	if t := llm.OpenAI.Temperature; t != nil && (*t < 0 || *t > 2) {
		return invalid("llm", "openai.temperature", "must be in 0..2, got %g", *t)
	}
	return nil
}

func validateInvestigation(cfg *Config) error {
	inv := &cfg.Investigation
	positives := []struct {
		field string
		value *int
	}{
		{"max_iterations", inv.MaxIterations},
		{"free_form_max_iterations", inv.FreeFormMaxIterations},
		{"max_hypothesis_depth", inv.MaxHypothesisDepth},
		{"max_hypotheses", inv.MaxHypotheses},
		{"context_threshold_tokens", inv.ContextThresholdTokens},
		{"keep_tool_uses", inv.KeepToolUses},
	}
	for _, p := range positives {
		if p.value != nil && *p.value < 1 {
			return invalid("investigation", p.field, "must be at least 1, got %d", *p.value)
		}
	}
	for tool, limit := range inv.ToolLimits {
		if limit < 1 {
			return invalid("investigation", "tool_limits",
				"limit for %q must be at least 1, got %d", tool, limit)
		}
	}
	if inv.CompactionPreset != "" && !compactor.Preset(inv.CompactionPreset).Valid() {
		return invalid("investigation", "compaction_preset",
			"must be one of incident, research, balanced; got %q", inv.CompactionPreset)
	}
	return nil
}

func validateCache(cfg *Config) error {
	c := &cfg.Cache
	if c.MaxSize != nil && *c.MaxSize < 1 {
		return invalid("cache", "max_size", "must be at least 1, got %d", *c.MaxSize)
	}
	if err := checkDuration(c.DefaultTTL); err != nil {
		return invalid("cache", "default_ttl", "%v", err)
	}
	for tool, raw := range c.ToolTTLs {
		if err := checkDuration(raw); err != nil {
			return invalid("cache", "tool_ttls", "tool %q: %v", tool, err)
		}
	}
	return nil
}

func validateParallel(cfg *Config) error {
	p := &cfg.Parallel
	if p.MaxConcurrent != nil && *p.MaxConcurrent < 1 {
		return invalid("parallel_execution", "max_concurrent", "must be at least 1, got %d", *p.MaxConcurrent)
	}
	if err := checkDuration(p.Timeout); err != nil {
		return invalid("parallel_execution", "timeout", "%v", err)
	}
	if p.RatePerSecond != nil && *p.RatePerSecond < 0 {
		return invalid("parallel_execution", "rate_per_second", "must not be negative, got %g", *p.RatePerSecond)
	}
	return nil
}

func validateScratchpad(cfg *Config) error {
	if err := checkDuration(cfg.Scratchpad.Retention); err != nil {
		return invalid("scratchpad", "retention", "%v", err)
	}
	return nil
}

func validateMasking(cfg *Config) error {
	m := &cfg.Masking
	if !m.IsEnabled() {
		return nil
	}
	if !masking.KnownGroup(m.GetPatternGroup()) {
		return invalid("masking", "pattern_group", "unknown group %q", m.GetPatternGroup())
	}
	for _, p := range m.CustomPatterns {
		if p.Name == "" {
			return invalid("masking", "custom_patterns", "pattern name is required")
		}
		if _, err := regexp.Compile(p.Pattern); err != nil {
			return invalid("masking", "custom_patterns", "pattern %q does not compile: %v", p.Name, err)
		}
	}
	return nil
}

func validateMCP(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.MCP.Servers))
	for _, server := range cfg.MCP.Servers {
		if server.Name == "" {
			return invalid("mcp", "servers", "server name is required")
		}
		if seen[server.Name] {
			return invalid("mcp", "servers", "duplicate server name %q", server.Name)
		}
		seen[server.Name] = true

		tr := server.Transport
		if !tr.Type.Valid() {
			return invalid("mcp", "servers",
				"server %q: transport type must be one of stdio, http, sse; got %q", server.Name, tr.Type)
		}
		if tr.Type == TransportTypeStdio && tr.Command == "" {
			return invalid("mcp", "servers", "server %q: stdio transport requires command", server.Name)
		}
		if tr.Type != TransportTypeStdio && tr.URL == "" {
			return invalid("mcp", "servers", "server %q: %s transport requires url", server.Name, tr.Type)
		}
	}
	return nil
}

func validateKnowledge(cfg *Config) error {
	k := &cfg.Knowledge
	if !k.GetSource().Valid() {
		return invalid("knowledge", "source", "must be one of none, github; got %q", k.Source)
	}
	if k.GetSource() == KnowledgeSourceGitHub && k.RepoURL == "" {
		return invalid("knowledge", "repo_url", "required when source is github")
	}
	if k.MaxRunbooks != nil && *k.MaxRunbooks < 1 {
		return invalid("knowledge", "max_runbooks", "must be at least 1, got %d", *k.MaxRunbooks)
	}
	if err := checkDuration(k.CacheTTL); err != nil {
		return invalid("knowledge", "cache_ttl", "%v", err)
	}
	return nil
}

func validateSlack(cfg *Config) error {
	s := &cfg.Slack
	if !s.IsEnabled() {
		return nil
	}
	if s.TokenEnv == "" {
		return invalid("slack", "token_env", "required when slack is enabled")
	}
	if s.Channel == "" {
		return invalid("slack", "channel", "required when slack is enabled")
	}
	return nil
}

func checkDuration(raw string) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("not a duration: %q", raw)
	}
	if d <= 0 {
		return fmt.Errorf("must be positive, got %s", d)
	}
	return nil
}
