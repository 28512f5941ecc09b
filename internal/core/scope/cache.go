package scope

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a resolved agency id is reused before a fresh
// lookup is forced.
const DefaultCacheTTL = 5 * time.Minute

// Cache maps a user id to a previously resolved agency id. Implementations
// must treat entries older than their TTL as absent. Misses and backend
// errors are both reported as ok=false; the resolver falls through to the
// database either way.
type Cache interface {
	Get(ctx context.Context, userID string) (agencyID string, ok bool)
	Put(ctx context.Context, userID, agencyID string)
}

type memoryEntry struct {
	agencyID string
	expires  time.Time
}

// MemoryCache is the default in-process Cache. Concurrent resolutions for
// the same user may race on population; re-resolving yields the same agency
// id, so the worst case is a redundant lookup, not a wrong answer.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache returns a MemoryCache with the given TTL. A non-positive
// TTL falls back to DefaultCacheTTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, userID string) (string, bool) {
	c.mu.RLock()
	e, ok := c.entries[userID]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expires) {
		return "", false
	}
	return e.agencyID, true
}

func (c *MemoryCache) Put(_ context.Context, userID, agencyID string) {
	c.mu.Lock()
	c.entries[userID] = memoryEntry{agencyID: agencyID, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
}
