// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// view.go provides a Valkey-backed cache of serialized JSON API responses.
// The saved-prompt sidebar listing and detail views are rebuilt from storage
// only on miss; every successful mutation invalidates the affected keys, so
// stale views after a write are impossible within a single deployment.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// viewKeyPrefix is the Valkey key prefix for cached view payloads.
	viewKeyPrefix = "view:"

	// DefaultViewTTL bounds staleness for anything that escapes explicit
	// invalidation (e.g. catalog edits on the relational backend).
	DefaultViewTTL = 5 * time.Minute
)

// View cache keys. Listing and per-record detail views are invalidated
// independently.
func SavedListKey() string         { return "saved:list" }
func SavedKey(id string) string    { return "saved:" + id }
func TemplateListKey() string      { return "templates:list" }
func TemplateKey(id string) string { return "templates:" + id }

// ViewCache manages serialized view payloads in Valkey. Cache errors are
// logged and degrade to misses — the cache never fails a request.
type ViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewViewCache creates a view cache backed by the given Valkey client.
func NewViewCache(client *redis.Client, ttl time.Duration) *ViewCache {
	if ttl == 0 {
		ttl = DefaultViewTTL
	}
	return &ViewCache{client: client, ttl: ttl}
}

// Get retrieves a cached payload. The second return is false on miss.
func (vc *ViewCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := vc.client.Get(ctx, viewKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("view cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("view cache hit", "key", key)
	return val, true
}

// Set stores a payload under key with the configured TTL.
func (vc *ViewCache) Set(ctx context.Context, key string, payload []byte) {
	if err := vc.client.Set(ctx, viewKeyPrefix+key, payload, vc.ttl).Err(); err != nil {
		slog.Warn("view cache set error", "key", key, "error", err)
	}
}

// InvalidateSaved removes the detail view of a single saved prompt.
func (vc *ViewCache) InvalidateSaved(ctx context.Context, id string) {
	vc.invalidate(ctx, SavedKey(id))
}

// InvalidateSavedList removes the saved-prompt listing view.
func (vc *ViewCache) InvalidateSavedList(ctx context.Context) {
	vc.invalidate(ctx, SavedListKey())
}

// InvalidateTemplateViews removes every cached template view by scanning for
// the prefix. Used when the catalog changes, since any view could be affected.
func (vc *ViewCache) InvalidateTemplateViews(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := vc.client.Scan(ctx, cursor, viewKeyPrefix+"templates:*", 100).Result()
		if err != nil {
			slog.Warn("view cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := vc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("view cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("template views invalidated", "deleted", deleted)
	}
}

func (vc *ViewCache) invalidate(ctx context.Context, key string) {
	if err := vc.client.Del(ctx, viewKeyPrefix+key).Err(); err != nil {
		slog.Warn("view cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("view cache invalidated", "key", key)
}
