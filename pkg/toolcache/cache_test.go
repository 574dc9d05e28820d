package toolcache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalKeyOrderInsensitive(t *testing.T) {
	a := map[string]any{
		"service": "checkout-api",
		"window":  map[string]any{"start": "t0", "end": "t1"},
		"regions": []any{"us-east-1", "eu-west-1"},
	}
	b := map[string]any{
		"regions": []any{"eu-west-1", "us-east-1"},
		"window":  map[string]any{"end": "t1", "start": "t0"},
		"service": "checkout-api",
	}
	assert.Equal(t, CanonicalKey("logs-query", a), CanonicalKey("logs-query", b))
}

func TestCanonicalKeyDistinguishesValues(t *testing.T) {
	a := map[string]any{"service": "checkout-api"}
	b := map[string]any{"service": "payments-api"}
	assert.NotEqual(t, CanonicalKey("logs-query", a), CanonicalKey("logs-query", b))
	assert.NotEqual(t, CanonicalKey("logs-query", a), CanonicalKey("metrics-query", a))
}

func TestCanonicalKeyNumericNormalization(t *testing.T) {
	// JSON decoding yields float64; an integral float must equal the int form.
	a := map[string]any{"limit": float64(50)}
	b := map[string]any{"limit": 50}
	assert.Equal(t, CanonicalKey("t", a), CanonicalKey("t", b))
}

func TestCacheGetSetRoundTrip(t *testing.T) {
	c := New()
	args := map[string]any{"service": "checkout-api"}

	_, ok := c.Get("logs-query", args)
	require.False(t, ok)

	c.Set("logs-query", args, map[string]any{"count": 3})
	got, ok := c.Get("logs-query", args)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"count": 3}, got)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
	assert.InDelta(t, 0.5, stats.HitRate, 0.001)
}

func TestCacheNeverStoresErrors(t *testing.T) {
	c := New()
	args := map[string]any{"q": "x"}

	c.Set("logs-query", args, nil)
	_, ok := c.Get("logs-query", args)
	assert.False(t, ok, "nil results must not be stored")

	c.Set("logs-query", args, map[string]any{"error": "connection refused"})
	_, ok = c.Get("logs-query", args)
	assert.False(t, ok, "error results must not be stored")

	// An empty error field is not an error.
	c.Set("logs-query", args, map[string]any{"error": "", "rows": 1})
	_, ok = c.Get("logs-query", args)
	assert.True(t, ok)
}

func TestCacheNonCacheableBypass(t *testing.T) {
	c := New()
	args := map[string]any{"name": "restart-service"}
	c.Set("skill", args, map[string]any{"ok": true})
	_, ok := c.Get("skill", args)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Stats().Size)
}

func TestCacheTTLExpiry(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	c := New(WithClock(func() time.Time { return now }), WithTTL("container-state", 30*time.Second))
	_ = clock

	args := map[string]any{"id": "c1"}
	c.Set("container-state", args, "running")

	now = now.Add(29 * time.Second)
	_, ok := c.Get("container-state", args)
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = c.Get("container-state", args)
	assert.False(t, ok, "entry past TTL must expire")
}

func TestCacheLRUEviction(t *testing.T) {
	c := New(WithMaxSize(3))
	for i := 0; i < 3; i++ {
		c.Set("t", map[string]any{"i": i}, i)
	}
	// Touch entry 0 so entry 1 becomes the eviction candidate.
	_, ok := c.Get("t", map[string]any{"i": 0})
	require.True(t, ok)

	c.Set("t", map[string]any{"i": 3}, 3)

	_, ok = c.Get("t", map[string]any{"i": 1})
	assert.False(t, ok, "least recently used entry must be evicted")
	_, ok = c.Get("t", map[string]any{"i": 0})
	assert.True(t, ok)
	assert.Equal(t, int64(1), c.Stats().Evictions)
}

func TestCacheInvalidation(t *testing.T) {
	c := New()
	c.Set("logs-query", map[string]any{"service": "a"}, 1)
	c.Set("logs-query", map[string]any{"service": "b"}, 2)
	c.Set("metrics-query", map[string]any{"service": "a"}, 3)

	c.InvalidateTool("logs-query")
	_, ok := c.Get("logs-query", map[string]any{"service": "a"})
	assert.False(t, ok)
	_, ok = c.Get("metrics-query", map[string]any{"service": "a"})
	assert.True(t, ok)

	c.InvalidatePattern(`service="a"`)
	_, ok = c.Get("metrics-query", map[string]any{"service": "a"})
	assert.False(t, ok)

	c.Set("x", map[string]any{}, 1)
	c.InvalidateAll()
	assert.Equal(t, 0, c.Stats().Size)
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New(WithMaxSize(50))
	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func(g int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 100; i++ {
				args := map[string]any{"k": fmt.Sprintf("%d-%d", g, i%10)}
				c.Set("t", args, i)
				c.Get("t", args)
			}
		}(g)
	}
	for g := 0; g < 8; g++ {
		<-done
	}
	assert.LessOrEqual(t, c.Stats().Size, 50)
}
