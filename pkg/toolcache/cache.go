// Package toolcache provides a bounded LRU cache over (tool, canonical-args)
// keys with per-tool TTLs. Expired entries are cleaned up lazily on Get —
// no background goroutine.
package toolcache

import (
	"container/list"
	"strings"
	"sync"
	"time"
)

// DefaultMaxSize bounds the cache when no size is configured.
const DefaultMaxSize = 100

// DefaultTTL applies to tools without a per-tool override.
const DefaultTTL = 300 * time.Second

// nonCacheable lists tools whose results must never be cached: skill
// invocation, arbitrary command execution, remediation, and approval are
// side-effecting or time-sensitive by contract.
var nonCacheable = map[string]bool{
	"skill":               true,
	"run-command":         true,
	"container-exec":      true,
	"remediation-execute": true,
	"remediation-approve": true,
}

// NonCacheable reports whether results for the named tool bypass the cache.
func NonCacheable(tool string) bool { return nonCacheable[tool] }

// Stats is a point-in-time snapshot of cache effectiveness.
type Stats struct {
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	HitRate   float64 `json:"hitRate"`
	Size      int     `json:"size"`
	Evictions int64   `json:"evictions"`
}

type entry struct {
	key      string
	tool     string
	result   any
	storedAt time.Time
	ttl      time.Duration
}

// Cache is a thread-safe bounded LRU with per-tool TTLs. Safe for
// concurrent get/set across a parallel tool batch.
type Cache struct {
	mu       sync.Mutex
	maxSize  int
	ttls     map[string]time.Duration // tool → TTL override
	order    *list.List               // front = most recently used
	entries  map[string]*list.Element

	hits      int64
	misses    int64
	evictions int64

	now func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithMaxSize overrides the entry bound.
func WithMaxSize(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// WithTTL sets a per-tool TTL override. Observability tools want short TTLs
// (~60s), knowledge ~300s, container state ~30s.
func WithTTL(tool string, ttl time.Duration) Option {
	return func(c *Cache) { c.ttls[tool] = ttl }
}

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates a cache with the given options.
func New(opts ...Option) *Cache {
	c := &Cache{
		maxSize: DefaultMaxSize,
		ttls:    make(map[string]time.Duration),
		order:   list.New(),
		entries: make(map[string]*list.Element),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached result for (tool, args) if present and unexpired.
func (c *Cache) Get(tool string, args map[string]any) (any, bool) {
	if NonCacheable(tool) {
		return nil, false
	}
	key := CanonicalKey(tool, args)

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	e := el.Value.(*entry)
	if c.now().Sub(e.storedAt) > e.ttl {
		c.removeLocked(el)
		c.misses++
		return nil, false
	}
	c.order.MoveToFront(el)
	c.hits++
	return e.result, true
}

// Set stores a result. Nil results and results carrying an error field are
// never stored; non-cacheable tools bypass the cache entirely.
func (c *Cache) Set(tool string, args map[string]any, result any) {
	if result == nil || NonCacheable(tool) || carriesError(result) {
		return
	}
	key := CanonicalKey(tool, args)
	ttl := DefaultTTL
	if override, ok := c.ttls[tool]; ok {
		ttl = override
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		e := el.Value.(*entry)
		e.result = result
		e.storedAt = c.now()
		e.ttl = ttl
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&entry{key: key, tool: tool, result: result, storedAt: c.now(), ttl: ttl})
	c.entries[key] = el

	for c.order.Len() > c.maxSize {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.removeLocked(oldest)
		c.evictions++
	}
}

// InvalidateAll drops every entry.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.entries = make(map[string]*list.Element)
}

// InvalidateTool drops all entries for one tool.
func (c *Cache) InvalidateTool(tool string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if el.Value.(*entry).tool == tool {
			c.removeLocked(el)
		}
		el = next
	}
}

// InvalidatePattern drops entries whose canonical key contains the given
// substring. Useful for targeted invalidation after a mutation
// ("service=checkout-api").
func (c *Cache) InvalidatePattern(pattern string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if strings.Contains(el.Value.(*entry).key, pattern) {
			c.removeLocked(el)
		}
		el = next
	}
}

// Stats returns a snapshot of cache counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		HitRate:   rate,
		Size:      c.order.Len(),
		Evictions: c.evictions,
	}
}

func (c *Cache) removeLocked(el *list.Element) {
	e := el.Value.(*entry)
	c.order.Remove(el)
	delete(c.entries, e.key)
}

// carriesError reports whether a result object represents a tool-level
// failure: a map with a non-empty "error" field.
func carriesError(result any) bool {
	m, ok := result.(map[string]any)
	if !ok {
		return false
	}
	errVal, present := m["error"]
	if !present || errVal == nil {
		return false
	}
	if s, ok := errVal.(string); ok {
		return s != ""
	}
	return true
}
