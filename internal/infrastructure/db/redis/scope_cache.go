package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agencyops/backoffice/internal/core/scope"
)

// ScopeCache is a Redis-backed scope.Cache, for deployments where multiple
// instances should share resolved agency ids. Keys expire after the TTL;
// Redis errors degrade to a cache miss so resolution falls through to the
// database instead of failing the request.
// Key format: scope:<user_id>
type ScopeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScopeCache creates a ScopeCache wrapping the given Redis client. A
// non-positive TTL falls back to scope.DefaultCacheTTL.
func NewScopeCache(client *redis.Client, ttl time.Duration) *ScopeCache {
	if ttl <= 0 {
		ttl = scope.DefaultCacheTTL
	}
	return &ScopeCache{client: client, ttl: ttl}
}

func (c *ScopeCache) Get(ctx context.Context, userID string) (string, bool) {
	agencyID, err := c.client.Get(ctx, c.key(userID)).Result()
	if err != nil {
		return "", false
	}
	return agencyID, agencyID != ""
}

func (c *ScopeCache) Put(ctx context.Context, userID, agencyID string) {
	_ = c.client.Set(ctx, c.key(userID), agencyID, c.ttl).Err()
}

func (c *ScopeCache) key(userID string) string {
	return fmt.Sprintf("scope:%s", userID)
}

// Compile-time check that ScopeCache implements scope.Cache.
var _ scope.Cache = (*ScopeCache)(nil)
