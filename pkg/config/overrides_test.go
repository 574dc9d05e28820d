package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithOverridesAppliesPatch(t *testing.T) {
	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)

	out, err := cfg.WithOverrides(&RunOverrides{
		MaxIterations:       intPtr(3),
		EnableSummarization: boolPtr(false),
		CacheEnabled:        boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, out.Investigation.GetMaxIterations())
	// An explicit false override beats the base true.
	assert.False(t, out.Investigation.SummarizationEnabled())
	assert.False(t, out.Cache.IsEnabled())

	// The receiver is untouched.
	assert.Equal(t, 20, cfg.Investigation.GetMaxIterations())
	assert.True(t, cfg.Investigation.SummarizationEnabled())
	assert.True(t, cfg.Cache.IsEnabled())
}

func TestWithOverridesNilIsIdentity(t *testing.T) {
	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)

	out, err := cfg.WithOverrides(nil)
	require.NoError(t, err)
	assert.Equal(t, cfg.Investigation.GetMaxIterations(), out.Investigation.GetMaxIterations())
}

func TestWithOverridesValidatesResult(t *testing.T) {
	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)

	_, err = cfg.WithOverrides(&RunOverrides{MaxIterations: intPtr(-1)})
	require.ErrorIs(t, err, ErrValidationFailed)
}
