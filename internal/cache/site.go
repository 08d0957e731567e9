// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// site.go provides a Valkey-backed cache of rendered public storefront
// payloads. When a public site is served, the JSON payload is stored so
// subsequent requests under the same slug skip the DB read and the markdown
// rendering. The publish workflow invalidates entries whenever a live site
// changes, publishes, or unpublishes.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// siteKeyPrefix is the Valkey key prefix for cached site payloads.
	siteKeyPrefix = "site:"

	// DefaultSiteTTL is how long a rendered payload stays cached. The
	// publish workflow invalidates eagerly; the TTL only bounds staleness
	// when an invalidation is lost.
	DefaultSiteTTL = 5 * time.Minute
)

// SiteCache manages public payload caching in Valkey, keyed by slug.
type SiteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSiteCache creates a new site cache backed by the given Valkey client.
func NewSiteCache(client *redis.Client, ttl time.Duration) *SiteCache {
	if ttl == 0 {
		ttl = DefaultSiteTTL
	}
	return &SiteCache{client: client, ttl: ttl}
}

// Get retrieves the cached payload for a slug. Returns (nil, false) on miss;
// cache errors degrade to misses.
func (sc *SiteCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	val, err := sc.client.Get(ctx, siteKeyPrefix+slug).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("site cache get error", "slug", slug, "error", err)
		return nil, false
	}
	slog.Debug("site cache hit", "slug", slug)
	return val, true
}

// Set stores a rendered payload for a slug with the configured TTL.
func (sc *SiteCache) Set(ctx context.Context, slug string, payload []byte) {
	if err := sc.client.Set(ctx, siteKeyPrefix+slug, payload, sc.ttl).Err(); err != nil {
		slog.Warn("site cache set error", "slug", slug, "error", err)
	}
}

// Invalidate removes a single slug from the cache.
func (sc *SiteCache) Invalidate(ctx context.Context, slug string) {
	if err := sc.client.Del(ctx, siteKeyPrefix+slug).Err(); err != nil {
		slog.Warn("site cache invalidate error", "slug", slug, "error", err)
	}
	slog.Debug("site cache invalidated", "slug", slug)
}

// InvalidateAll removes every cached payload by scanning for the prefix.
func (sc *SiteCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := sc.client.Scan(ctx, cursor, siteKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("site cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := sc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("site cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("site cache fully cleared", "deleted", deleted)
	}
}
