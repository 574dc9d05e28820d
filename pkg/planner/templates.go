package planner

import (
	"regexp"

	"github.com/rootline-ai/rootline/pkg/models"
)

// Canonical tool names the template library targets. Runtime environments
// expose a subset; unavailable tools are swapped via fallback chains.
const (
	ToolMetrics   = "metrics-query"
	ToolAlarms    = "alarms-query"
	ToolLogs      = "logs-query"
	ToolInventory = "inventory"
	ToolDeploys   = "deploy-history"
	ToolDNS       = "dns-resolve"
)

// fallbackChains order the substitutes tried when a template's preferred
// tool is absent from the runtime tool set: vendor metrics degrade to
// generic alarms, then generic logs, then cloud inventory.
var fallbackChains = map[string][]string{
	ToolMetrics: {ToolAlarms, ToolLogs, ToolInventory},
	ToolAlarms:  {ToolLogs, ToolInventory},
	ToolLogs:    {ToolInventory},
	ToolDeploys: {ToolLogs, ToolInventory},
	ToolDNS:     {ToolLogs},
}

// queryTemplate is one entry in the pattern library. The pattern runs
// against the lowercased hypothesis statement.
type queryTemplate struct {
	name      string
	pattern   *regexp.Regexp
	tool      string
	queryType models.QueryType
	params    map[string]any
	expected  string
	relevance float64
}

// templateLibrary covers the recurring failure classes. Order matters only
// for ties; queries are re-sorted by relevance after adaptation.
var templateLibrary = []queryTemplate{
	{
		name:      "latency-metrics",
		pattern:   regexp.MustCompile(`latenc|slow|p9[059]|response time|timeout`),
		tool:      ToolMetrics,
		queryType: models.QueryConfirming,
		params:    map[string]any{"metric": "latency_p99", "statistic": "p99"},
		expected:  "p99 latency elevated versus the prior baseline during the incident window",
		relevance: 0.9,
	},
	{
		name:      "error-rate-metrics",
		pattern:   regexp.MustCompile(`error rate|5xx|errors?\b|fail(ure|ing|ed)`),
		tool:      ToolMetrics,
		queryType: models.QueryConfirming,
		params:    map[string]any{"metric": "error_rate"},
		expected:  "error rate above alert threshold correlated with incident start",
		relevance: 0.9,
	},
	{
		name:      "error-logs",
		pattern:   regexp.MustCompile(`error|exception|crash|panic|5xx`),
		tool:      ToolLogs,
		queryType: models.QueryExploratory,
		params:    map[string]any{"filter": "ERROR"},
		expected:  "error log lines naming the failing operation or dependency",
		relevance: 0.8,
	},
	{
		name:      "memory-metrics",
		pattern:   regexp.MustCompile(`memory|oom|out of memory|heap|leak`),
		tool:      ToolMetrics,
		queryType: models.QueryConfirming,
		params:    map[string]any{"metric": "memory_utilization"},
		expected:  "memory utilization climbing toward the limit before the incident",
		relevance: 0.85,
	},
	{
		name:      "oom-logs",
		pattern:   regexp.MustCompile(`memory|oom|out of memory`),
		tool:      ToolLogs,
		queryType: models.QueryConfirming,
		params:    map[string]any{"filter": "OutOfMemory OR OOMKilled"},
		expected:  "kill or allocation-failure messages in the incident window",
		relevance: 0.75,
	},
	{
		name:      "cpu-metrics",
		pattern:   regexp.MustCompile(`cpu|throttl|saturat`),
		tool:      ToolMetrics,
		queryType: models.QueryConfirming,
		params:    map[string]any{"metric": "cpu_utilization"},
		expected:  "sustained CPU saturation or throttling during the incident window",
		relevance: 0.85,
	},
	{
		name:      "connection-pool-logs",
		pattern:   regexp.MustCompile(`connection pool|pool exhaust|too many connections|connection refused|connection reset`),
		tool:      ToolLogs,
		queryType: models.QueryConfirming,
		params:    map[string]any{"filter": "connection pool OR too many connections"},
		expected:  "pool-exhaustion or connection-refused errors from the database client",
		relevance: 0.9,
	},
	{
		name:      "db-connection-metrics",
		pattern:   regexp.MustCompile(`connection pool|database|db\b`),
		tool:      ToolMetrics,
		queryType: models.QueryConfirming,
		params:    map[string]any{"metric": "database_connections"},
		expected:  "connection count pinned at the configured maximum",
		relevance: 0.8,
	},
	{
		name:      "deploy-history",
		pattern:   regexp.MustCompile(`deploy|release|rollout|version|regression|change`),
		tool:      ToolDeploys,
		queryType: models.QueryConfirming,
		params:    map[string]any{},
		expected:  "a deployment completed shortly before the incident started",
		relevance: 0.9,
	},
	{
		name:      "dns-resolution",
		pattern:   regexp.MustCompile(`dns|resolv|name resolution|nxdomain`),
		tool:      ToolDNS,
		queryType: models.QueryConfirming,
		params:    map[string]any{},
		expected:  "resolution failures or unexpectedly changed records",
		relevance: 0.85,
	},
	{
		name:      "dependency-health",
		pattern:   regexp.MustCompile(`dependency|upstream|downstream|third.party|external (service|api)`),
		tool:      ToolAlarms,
		queryType: models.QueryExploratory,
		params:    map[string]any{},
		expected:  "active alarms on a dependency of the affected service",
		relevance: 0.8,
	},
	{
		name:      "quota-limits",
		pattern:   regexp.MustCompile(`quota|rate limit|throttl|limit exceeded|429`),
		tool:      ToolLogs,
		queryType: models.QueryConfirming,
		params:    map[string]any{"filter": "throttl OR quota OR 429"},
		expected:  "throttling or quota-exceeded responses from the provider",
		relevance: 0.85,
	},
}
