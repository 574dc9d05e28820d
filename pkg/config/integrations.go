package config

// Integration settings: MCP tool servers, the knowledge backend, and the
// Slack notification gateway. All of them are optional; the engine runs
// with an empty tool registry, no knowledge, and no notifications.

// TransportType selects how an MCP server is reached.
type TransportType string

const (
	TransportTypeStdio TransportType = "stdio"
	TransportTypeHTTP  TransportType = "http"
	TransportTypeSSE   TransportType = "sse"
)

// Valid reports whether the transport type is recognized.
func (t TransportType) Valid() bool {
	switch t {
	case TransportTypeStdio, TransportTypeHTTP, TransportTypeSSE:
		return true
	}
	return false
}

// TransportConfig describes how to reach one MCP server.
type TransportConfig struct {
	Type TransportType `yaml:"type"`

	// Stdio transport.
	Command string            `yaml:"command,omitempty"`
	Args    []string          `yaml:"args,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`

	// HTTP and SSE transports.
	URL         string `yaml:"url,omitempty"`
	BearerToken string `yaml:"bearer_token,omitempty"`
	VerifySSL   *bool  `yaml:"verify_ssl,omitempty"`
	TimeoutSecs int    `yaml:"timeout,omitempty"`
}

// MCPServerConfig is one configured MCP server.
type MCPServerConfig struct {
	Name      string          `yaml:"name"`
	Transport TransportConfig `yaml:"transport"`
}

// MCPConfig lists the MCP servers whose tools are registered at startup.
type MCPConfig struct {
	Servers []MCPServerConfig `yaml:"servers,omitempty"`
}

// KnowledgeSource selects the retrieval backend.
type KnowledgeSource string

const (
	KnowledgeSourceNone   KnowledgeSource = "none"
	KnowledgeSourceGitHub KnowledgeSource = "github"
)

// Valid reports whether the source is recognized.
func (s KnowledgeSource) Valid() bool {
	switch s {
	case KnowledgeSourceNone, KnowledgeSourceGitHub:
		return true
	}
	return false
}

// KnowledgeConfig points the engine at a runbook repository.
type KnowledgeConfig struct {
	Source KnowledgeSource `yaml:"source,omitempty"`

	// GitHub backend. TokenEnv names the environment variable holding the
	// access token; the token itself never appears in YAML.
	RepoURL     string `yaml:"repo_url,omitempty"`
	TokenEnv    string `yaml:"token_env,omitempty"`
	MaxRunbooks *int   `yaml:"max_runbooks,omitempty"`
	CacheTTL    string `yaml:"cache_ttl,omitempty"`
}

// GetSource returns the configured backend, defaulting to none.
func (k *KnowledgeConfig) GetSource() KnowledgeSource {
	if k.Source == "" {
		return KnowledgeSourceNone
	}
	return k.Source
}

// SlackConfig configures terminal-state notifications. TokenEnv names the
// environment variable holding the bot token; empty token or channel
// disables the gateway.
type SlackConfig struct {
	Enabled      *bool  `yaml:"enabled,omitempty"`
	TokenEnv     string `yaml:"token_env,omitempty"`
	Channel      string `yaml:"channel,omitempty"`
	DashboardURL string `yaml:"dashboard_url,omitempty"`
}

// IsEnabled reports whether Slack notifications are on.
func (s *SlackConfig) IsEnabled() bool {
	return s.Enabled != nil && *s.Enabled
}
