// Package config loads and validates the engine configuration: one YAML
// file with environment expansion, defaults filled by merge, and a
// fail-fast validator. Optional scalar fields are pointers so an explicit
// false or zero survives the defaults merge.
package config

import (
	"fmt"
	"time"
)

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configPath string

	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	LLM           LLMConfig           `yaml:"llm"`
	Investigation InvestigationConfig `yaml:"investigation"`
	Cache         CacheConfig         `yaml:"cache"`
	Parallel      ParallelConfig      `yaml:"parallel_execution"`
	Scratchpad    ScratchpadConfig    `yaml:"scratchpad"`
	Masking       MaskingConfig       `yaml:"masking"`
	MCP           MCPConfig           `yaml:"mcp"`
	Knowledge     KnowledgeConfig     `yaml:"knowledge"`
	Slack         SlackConfig         `yaml:"slack"`
}

// ConfigPath returns the path the configuration was loaded from, or ""
// when running on built-in defaults.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Host string `yaml:"host,omitempty"`
	Port *int   `yaml:"port,omitempty"`
}

// Addr returns the listen address in host:port form.
func (s *ServerConfig) Addr() string {
	port := DefaultServerPort
	if s.Port != nil {
		port = *s.Port
	}
	return fmt.Sprintf("%s:%d", s.Host, port)
}

// DatabaseConfig holds PostgreSQL settings for session persistence.
// When disabled the engine runs without history.
type DatabaseConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	Host     string `yaml:"host,omitempty"`
	Port     *int   `yaml:"port,omitempty"`
	User     string `yaml:"user,omitempty"`
	Password string `yaml:"password,omitempty"`
	Name     string `yaml:"name,omitempty"`
	SSLMode  string `yaml:"ssl_mode,omitempty"`
}

// IsEnabled reports whether session persistence is on.
func (d *DatabaseConfig) IsEnabled() bool {
	return d.Enabled != nil && *d.Enabled
}

// DSN renders the pgx connection string.
func (d *DatabaseConfig) DSN() string {
	port := DefaultDatabasePort
	if d.Port != nil {
		port = *d.Port
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, port, d.Name, d.SSLMode)
}

// LLMProvider selects the model transport.
type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderGRPC   LLMProvider = "grpc"
)

// Valid reports whether the provider is recognized.
func (p LLMProvider) Valid() bool {
	switch p {
	case ProviderOpenAI, ProviderGRPC:
		return true
	}
	return false
}

// LLMConfig selects and configures the model client.
type LLMConfig struct {
	Provider LLMProvider      `yaml:"provider,omitempty"`
	OpenAI   OpenAILLMConfig  `yaml:"openai,omitempty"`
	GRPC     GRPCGatewayLLM   `yaml:"grpc,omitempty"`
}

// OpenAILLMConfig configures the OpenAI-compatible client. The API key is
// never stored in YAML; APIKeyEnv names the environment variable holding it.
type OpenAILLMConfig struct {
	APIKeyEnv   string   `yaml:"api_key_env,omitempty"`
	BaseURL     string   `yaml:"base_url,omitempty"`
	Model       string   `yaml:"model,omitempty"`
	Temperature *float32 `yaml:"temperature,omitempty"`
	MaxTokens   *int     `yaml:"max_tokens,omitempty"`
}

// GRPCGatewayLLM configures the gRPC gateway client.
type GRPCGatewayLLM struct {
	Addr  string `yaml:"addr,omitempty"`
	Model string `yaml:"model,omitempty"`
}

// InvestigationConfig holds the per-run engine settings. Every field has
// a built-in default; a RunOverrides can adjust them per request.
type InvestigationConfig struct {
	MaxIterations          *int           `yaml:"max_iterations,omitempty"`
	FreeFormMaxIterations  *int           `yaml:"free_form_max_iterations,omitempty"`
	MaxHypothesisDepth     *int           `yaml:"max_hypothesis_depth,omitempty"`
	MaxHypotheses          *int           `yaml:"max_hypotheses,omitempty"`
	ContextThresholdTokens *int           `yaml:"context_threshold_tokens,omitempty"`
	KeepToolUses           *int           `yaml:"keep_tool_uses,omitempty"`
	ToolLimits             map[string]int `yaml:"tool_limits,omitempty"`
	CompactionPreset       string         `yaml:"compaction_preset,omitempty"`

	EnableSummarization       *bool `yaml:"enable_summarization,omitempty"`
	EnableInvestigationMemory *bool `yaml:"enable_investigation_memory,omitempty"`
	EnableSmartCompaction     *bool `yaml:"enable_smart_compaction,omitempty"`
	EnableInfraDiscovery      *bool `yaml:"enable_infra_discovery,omitempty"`
	ExplainMode               *bool `yaml:"explain_mode,omitempty"`

	EnableRemediation      *bool `yaml:"enable_remediation,omitempty"`
	AutoApproveRemediation *bool `yaml:"auto_approve_remediation,omitempty"`

	AvailableTools  []string `yaml:"available_tools,omitempty"`
	KnownServices   []string `yaml:"known_services,omitempty"`
	DefaultLogGroup string   `yaml:"default_log_group,omitempty"`
}

// GetMaxIterations returns the incident-investigation iteration budget.
func (i *InvestigationConfig) GetMaxIterations() int {
	return intOr(i.MaxIterations, DefaultMaxIterations)
}

// GetFreeFormMaxIterations returns the free-form loop iteration budget.
func (i *InvestigationConfig) GetFreeFormMaxIterations() int {
	return intOr(i.FreeFormMaxIterations, DefaultFreeFormMaxIterations)
}

func (i *InvestigationConfig) GetMaxHypothesisDepth() int {
	return intOr(i.MaxHypothesisDepth, DefaultMaxHypothesisDepth)
}

func (i *InvestigationConfig) GetMaxHypotheses() int {
	return intOr(i.MaxHypotheses, DefaultMaxHypotheses)
}

func (i *InvestigationConfig) GetContextThresholdTokens() int {
	return intOr(i.ContextThresholdTokens, DefaultContextThresholdTokens)
}

func (i *InvestigationConfig) GetKeepToolUses() int {
	return intOr(i.KeepToolUses, DefaultKeepToolUses)
}

func (i *InvestigationConfig) SummarizationEnabled() bool {
	return boolOr(i.EnableSummarization, true)
}

func (i *InvestigationConfig) InvestigationMemoryEnabled() bool {
	return boolOr(i.EnableInvestigationMemory, true)
}

func (i *InvestigationConfig) SmartCompactionEnabled() bool {
	return boolOr(i.EnableSmartCompaction, true)
}

func (i *InvestigationConfig) InfraDiscoveryEnabled() bool {
	return boolOr(i.EnableInfraDiscovery, true)
}

func (i *InvestigationConfig) ExplainModeEnabled() bool {
	return boolOr(i.ExplainMode, false)
}

func (i *InvestigationConfig) RemediationEnabled() bool {
	return boolOr(i.EnableRemediation, false)
}

func (i *InvestigationConfig) AutoApprove() bool {
	return boolOr(i.AutoApproveRemediation, false)
}

// CacheConfig holds tool-result cache settings. TTLs are duration strings
// ("60s", "5m") parsed during validation.
type CacheConfig struct {
	Enabled    *bool             `yaml:"enabled,omitempty"`
	MaxSize    *int              `yaml:"max_size,omitempty"`
	DefaultTTL string            `yaml:"default_ttl,omitempty"`
	ToolTTLs   map[string]string `yaml:"tool_ttls,omitempty"`
}

// IsEnabled reports whether the tool cache is on.
func (c *CacheConfig) IsEnabled() bool {
	return boolOr(c.Enabled, true)
}

// GetMaxSize returns the cache entry bound.
func (c *CacheConfig) GetMaxSize() int {
	return intOr(c.MaxSize, DefaultCacheMaxSize)
}

// GetDefaultTTL parses the default entry lifetime. Validation guarantees
// the string parses; a zero value falls back to the built-in default.
func (c *CacheConfig) GetDefaultTTL() time.Duration {
	return durationOr(c.DefaultTTL, DefaultCacheTTL)
}

// GetToolTTLs parses the per-tool overrides, skipping entries that fail
// to parse. Validation reports those before this is ever called.
func (c *CacheConfig) GetToolTTLs() map[string]time.Duration {
	if len(c.ToolTTLs) == 0 {
		return nil
	}
	out := make(map[string]time.Duration, len(c.ToolTTLs))
	for tool, raw := range c.ToolTTLs {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			out[tool] = d
		}
	}
	return out
}

// ParallelConfig bounds concurrent tool execution.
type ParallelConfig struct {
	Enabled       *bool    `yaml:"enabled,omitempty"`
	MaxConcurrent *int     `yaml:"max_concurrent,omitempty"`
	Timeout       string   `yaml:"timeout,omitempty"`
	RatePerSecond *float64 `yaml:"rate_per_second,omitempty"`
}

// IsEnabled reports whether parallel execution is on. When off the
// executor still runs but with a concurrency bound of one.
func (p *ParallelConfig) IsEnabled() bool {
	return boolOr(p.Enabled, true)
}

// GetMaxConcurrent returns the concurrency bound.
func (p *ParallelConfig) GetMaxConcurrent() int {
	if !p.IsEnabled() {
		return 1
	}
	return intOr(p.MaxConcurrent, DefaultMaxConcurrent)
}

// GetTimeout returns the per-call execution timeout.
func (p *ParallelConfig) GetTimeout() time.Duration {
	return durationOr(p.Timeout, DefaultToolTimeout)
}

// GetRatePerSecond returns the dispatch rate limit, 0 meaning unlimited.
func (p *ParallelConfig) GetRatePerSecond() float64 {
	if p.RatePerSecond == nil {
		return 0
	}
	return *p.RatePerSecond
}

// MaskingConfig selects the credential-scrubbing rules applied to tool
// results before they enter the scratchpad and prompts.
type MaskingConfig struct {
	Enabled        *bool           `yaml:"enabled,omitempty"`
	PatternGroup   string          `yaml:"pattern_group,omitempty"`
	CustomPatterns []CustomPattern `yaml:"custom_patterns,omitempty"`
}

// CustomPattern is one operator-supplied masking rule.
type CustomPattern struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// IsEnabled reports whether tool-result masking is on.
func (m *MaskingConfig) IsEnabled() bool {
	return boolOr(m.Enabled, true)
}

// GetPatternGroup returns the selected rule group.
func (m *MaskingConfig) GetPatternGroup() string {
	if m.PatternGroup == "" {
		return DefaultMaskingGroup
	}
	return m.PatternGroup
}

// ScratchpadConfig holds session-file settings.
type ScratchpadConfig struct {
	Dir       string `yaml:"dir,omitempty"`
	Retention string `yaml:"retention,omitempty"`
}

// GetDir returns the session-file directory.
func (s *ScratchpadConfig) GetDir() string {
	if s.Dir == "" {
		return DefaultScratchpadDir
	}
	return s.Dir
}

// GetRetention returns how long finished session files are kept.
func (s *ScratchpadConfig) GetRetention() time.Duration {
	return durationOr(s.Retention, DefaultScratchpadRetention)
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func boolOr(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

func durationOr(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
