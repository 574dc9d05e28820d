package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rootline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitializeDefaultsOnly(t *testing.T) {
	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.False(t, cfg.Database.IsEnabled())
	assert.Equal(t, 20, cfg.Investigation.GetMaxIterations())
	assert.Equal(t, 10, cfg.Investigation.GetFreeFormMaxIterations())
	assert.Equal(t, 4, cfg.Investigation.GetMaxHypothesisDepth())
	assert.Equal(t, 100000, cfg.Investigation.GetContextThresholdTokens())
	assert.Equal(t, 5, cfg.Investigation.GetKeepToolUses())
	assert.True(t, cfg.Investigation.SummarizationEnabled())
	assert.False(t, cfg.Investigation.RemediationEnabled())
	assert.True(t, cfg.Cache.IsEnabled())
	assert.Equal(t, 5*time.Minute, cfg.Cache.GetDefaultTTL())
	assert.Equal(t, 5, cfg.Parallel.GetMaxConcurrent())
}

func TestInitializeLoadsAndMerges(t *testing.T) {
	path := writeConfig(t, `
investigation:
  max_iterations: 30
  enable_summarization: false
  tool_limits:
    logs-query: 8
  known_services: [checkout-api, payments]
cache:
  max_size: 10
  tool_ttls:
    logs-query: 30s
parallel_execution:
  max_concurrent: 2
  timeout: 10s
`)
	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Investigation.GetMaxIterations())
	// Explicit false survives the defaults merge.
	assert.False(t, cfg.Investigation.SummarizationEnabled())
	// Untouched fields still come from defaults.
	assert.Equal(t, 4, cfg.Investigation.GetMaxHypothesisDepth())
	assert.Equal(t, 8, cfg.Investigation.ToolLimits["logs-query"])
	assert.Equal(t, []string{"checkout-api", "payments"}, cfg.Investigation.KnownServices)
	assert.Equal(t, 10, cfg.Cache.GetMaxSize())
	assert.Equal(t, 30*time.Second, cfg.Cache.GetToolTTLs()["logs-query"])
	assert.Equal(t, 2, cfg.Parallel.GetMaxConcurrent())
	assert.Equal(t, 10*time.Second, cfg.Parallel.GetTimeout())
}

func TestInitializeExpandsEnvironment(t *testing.T) {
	t.Setenv("ROOTLINE_TEST_DB_PASSWORD", "s3cret$1")

	path := writeConfig(t, `
database:
  enabled: true
  host: db.internal
  user: rootline
  name: rootline
  password: "{{.ROOTLINE_TEST_DB_PASSWORD}}"
`)
	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret$1", cfg.Database.Password)
	assert.Contains(t, cfg.Database.DSN(), "db.internal:5432/rootline")
}

func TestInitializeMissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeRejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, `
llm:
  provider: anthropic
`)
	_, err := Initialize(context.Background(), path)
	require.ErrorIs(t, err, ErrValidationFailed)
}

func TestExpandEnvLeavesDollarsAlone(t *testing.T) {
	t.Setenv("ROOTLINE_TEST_VAR", "value")

	out := ExpandEnv([]byte(`pattern: "^secret.*$"` + "\n" + `key: "{{.ROOTLINE_TEST_VAR}}"`))
	assert.Contains(t, string(out), `^secret.*$`)
	assert.Contains(t, string(out), `key: "value"`)

	// Missing variables expand to empty rather than failing.
	out = ExpandEnv([]byte(`key: "{{.ROOTLINE_TEST_DOES_NOT_EXIST}}"`))
	assert.Contains(t, string(out), `key: ""`)
}

func TestParallelDisabledForcesSerialExecution(t *testing.T) {
	path := writeConfig(t, `
parallel_execution:
  enabled: false
  max_concurrent: 8
`)
	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Parallel.GetMaxConcurrent())
}
