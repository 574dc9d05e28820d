// Package knowledge defines the retrieval port for runbooks, postmortems,
// architecture notes, and known issues, plus a TTL cache wrapper so the
// same incident context is not re-fetched on every iteration.
package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rootline-ai/rootline/pkg/models"
)

// DefaultTTL is how long a retrieval result stays fresh.
const DefaultTTL = 5 * time.Minute

// Retriever fetches relevant knowledge for an investigation. Backends are
// external (vector stores, document services); the engine depends only on
// this port.
type Retriever interface {
	Retrieve(ctx context.Context, query models.KnowledgeQuery) (*models.KnowledgeBundle, error)
}

// RetrieverFunc adapts a function into a Retriever.
type RetrieverFunc func(ctx context.Context, query models.KnowledgeQuery) (*models.KnowledgeBundle, error)

func (f RetrieverFunc) Retrieve(ctx context.Context, query models.KnowledgeQuery) (*models.KnowledgeBundle, error) {
	return f(ctx, query)
}

type cacheEntry struct {
	bundle    *models.KnowledgeBundle
	fetchedAt time.Time
}

// Cached wraps a Retriever with a TTL cache keyed by the canonical query.
// Expired entries are cleaned up lazily on lookup — no background
// goroutine.
type Cached struct {
	retriever Retriever
	ttl       time.Duration

	mu      sync.RWMutex
	entries map[string]*cacheEntry
	now     func() time.Time
}

// NewCached wraps retriever with a cache. A non-positive ttl uses
// DefaultTTL. Panics on a nil retriever.
func NewCached(retriever Retriever, ttl time.Duration) *Cached {
	if retriever == nil {
		panic("knowledge: retriever is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cached{
		retriever: retriever,
		ttl:       ttl,
		entries:   make(map[string]*cacheEntry),
		now:       time.Now,
	}
}

// Retrieve serves from cache when fresh, otherwise delegates. Errors are
// never cached.
func (c *Cached) Retrieve(ctx context.Context, query models.KnowledgeQuery) (*models.KnowledgeBundle, error) {
	key := cacheKey(query)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		if c.now().Sub(entry.fetchedAt) <= c.ttl {
			return entry.bundle, nil
		}
		// Expired — re-check under the write lock: a concurrent Retrieve
		// may have refreshed the entry in between.
		c.mu.Lock()
		if current, present := c.entries[key]; present && c.now().Sub(current.fetchedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
	}

	bundle, err := c.retriever.Retrieve(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("knowledge retrieval failed: %w", err)
	}

	c.mu.Lock()
	c.entries[key] = &cacheEntry{bundle: bundle, fetchedAt: c.now()}
	c.mu.Unlock()
	return bundle, nil
}

// cacheKey canonicalizes a query: list fields are sorted so semantically
// equal queries share an entry.
func cacheKey(query models.KnowledgeQuery) string {
	normalized := query
	normalized.Services = sortedCopy(query.Services)
	normalized.Symptoms = sortedCopy(query.Symptoms)
	normalized.ErrorMessages = sortedCopy(query.ErrorMessages)
	raw, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Sprintf("%v", normalized)
	}
	return string(raw)
}

func sortedCopy(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}

// procedureMarkers identify questions answerable from runbooks alone.
var procedureMarkers = []string{
	"runbook", "how do i", "how to", "troubleshoot", "procedure", "fix",
	"steps to", "playbook",
}

// IsProcedural reports whether a free-form query is asking for a known
// procedure rather than live investigation.
func IsProcedural(query string) bool {
	q := strings.ToLower(query)
	for _, marker := range procedureMarkers {
		if strings.Contains(q, marker) {
			return true
		}
	}
	return false
}
