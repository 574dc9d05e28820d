package config

import "time"

// Built-in defaults. Loaded configuration is merged over these, so every
// optional field resolves to a value.
const (
	DefaultServerPort   = 8080
	DefaultDatabasePort = 5432

	DefaultMaxIterations          = 20
	DefaultFreeFormMaxIterations  = 10
	DefaultMaxHypothesisDepth     = 4
	DefaultMaxHypotheses          = 10
	DefaultContextThresholdTokens = 100000
	DefaultKeepToolUses           = 5
	DefaultCompactionPreset       = "balanced"

	DefaultCacheMaxSize = 100
	DefaultCacheTTL     = 5 * time.Minute

	DefaultMaxConcurrent = 5
	DefaultToolTimeout   = 30 * time.Second

	DefaultScratchpadDir       = "data/scratchpad"
	DefaultScratchpadRetention = 7 * 24 * time.Hour

	DefaultMaskingGroup = "secrets"
)

// defaultConfig returns the built-in configuration. Pointer fields are
// populated so a merged Config never carries nils for them.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: intPtr(DefaultServerPort),
		},
		Database: DatabaseConfig{
			Enabled: boolPtr(false),
			Host:    "localhost",
			Port:    intPtr(DefaultDatabasePort),
			User:    "rootline",
			Name:    "rootline",
			SSLMode: "disable",
		},
		LLM: LLMConfig{
			Provider: ProviderOpenAI,
			OpenAI: OpenAILLMConfig{
				APIKeyEnv: "OPENAI_API_KEY",
			},
		},
		Investigation: InvestigationConfig{
			MaxIterations:          intPtr(DefaultMaxIterations),
			FreeFormMaxIterations:  intPtr(DefaultFreeFormMaxIterations),
			MaxHypothesisDepth:     intPtr(DefaultMaxHypothesisDepth),
			MaxHypotheses:          intPtr(DefaultMaxHypotheses),
			ContextThresholdTokens: intPtr(DefaultContextThresholdTokens),
			KeepToolUses:           intPtr(DefaultKeepToolUses),
			CompactionPreset:       DefaultCompactionPreset,

			EnableSummarization:       boolPtr(true),
			EnableInvestigationMemory: boolPtr(true),
			EnableSmartCompaction:     boolPtr(true),
			EnableInfraDiscovery:      boolPtr(true),
			ExplainMode:               boolPtr(false),
			EnableRemediation:         boolPtr(false),
			AutoApproveRemediation:    boolPtr(false),
		},
		Cache: CacheConfig{
			Enabled:    boolPtr(true),
			MaxSize:    intPtr(DefaultCacheMaxSize),
			DefaultTTL: DefaultCacheTTL.String(),
			ToolTTLs: map[string]string{
				"metrics-query":  "60s",
				"logs-query":     "60s",
				"alarms-query":   "60s",
				"monitors-query": "60s",
				"knowledge":      "300s",
				"inventory":      "300s",
				"container-list": "30s",
			},
		},
		Parallel: ParallelConfig{
			Enabled:       boolPtr(true),
			MaxConcurrent: intPtr(DefaultMaxConcurrent),
			Timeout:       DefaultToolTimeout.String(),
		},
		Scratchpad: ScratchpadConfig{
			Dir:       DefaultScratchpadDir,
			Retention: DefaultScratchpadRetention.String(),
		},
		Masking: MaskingConfig{
			Enabled:      boolPtr(true),
			PatternGroup: DefaultMaskingGroup,
		},
	}
}

func intPtr(v int) *int             { return &v }
func boolPtr(v bool) *bool          { return &v }
func float64Ptr(v float64) *float64 { return &v }
