package knowledge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/models"
)

func TestCachedRetrieveServesFromCache(t *testing.T) {
	calls := 0
	backend := RetrieverFunc(func(_ context.Context, _ models.KnowledgeQuery) (*models.KnowledgeBundle, error) {
		calls++
		return &models.KnowledgeBundle{
			Runbooks: []models.KnowledgeItem{{Title: "Pool exhaustion runbook"}},
		}, nil
	})
	c := NewCached(backend, time.Minute)

	query := models.KnowledgeQuery{Services: []string{"checkout-api"}, Symptoms: []string{"latency"}}
	first, err := c.Retrieve(context.Background(), query)
	require.NoError(t, err)
	second, err := c.Retrieve(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second retrieval must hit the cache")
	assert.Same(t, first, second)

	// List order does not matter for the cache key.
	_, err = c.Retrieve(context.Background(), models.KnowledgeQuery{
		Symptoms: []string{"latency"}, Services: []string{"checkout-api"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestCachedRetrieveExpires(t *testing.T) {
	calls := 0
	backend := RetrieverFunc(func(_ context.Context, _ models.KnowledgeQuery) (*models.KnowledgeBundle, error) {
		calls++
		return &models.KnowledgeBundle{}, nil
	})
	c := NewCached(backend, time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }

	_, err := c.Retrieve(context.Background(), models.KnowledgeQuery{Query: "x"})
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = c.Retrieve(context.Background(), models.KnowledgeQuery{Query: "x"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "expired entries must be refetched")
}

func TestCachedRetrieveNeverCachesErrors(t *testing.T) {
	calls := 0
	backend := RetrieverFunc(func(_ context.Context, _ models.KnowledgeQuery) (*models.KnowledgeBundle, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("backend down")
		}
		return &models.KnowledgeBundle{}, nil
	})
	c := NewCached(backend, time.Minute)

	_, err := c.Retrieve(context.Background(), models.KnowledgeQuery{Query: "x"})
	require.Error(t, err)
	_, err = c.Retrieve(context.Background(), models.KnowledgeQuery{Query: "x"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestIsProcedural(t *testing.T) {
	assert.True(t, IsProcedural("How do I rotate the API keys?"))
	assert.True(t, IsProcedural("runbook for database failover"))
	assert.True(t, IsProcedural("steps to troubleshoot DNS"))
	assert.False(t, IsProcedural("why is checkout latency elevated right now"))
}
