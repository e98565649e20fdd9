// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"vehicle_backend/internal/feature/catalog/domain/entity"
	"vehicle_backend/internal/feature/catalog/usecase"
)

// CachingBrandRepository decorates a BrandRepository with Redis caching of
// list and count queries. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository. Any write
// through the decorator invalidates the whole namespace.
type CachingBrandRepository struct {
	inner     usecase.BrandRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.BrandRepository = (*CachingBrandRepository)(nil)

// NewCachingBrandRepository decorates a BrandRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "brands".
func NewCachingBrandRepository(rdb *redis.Client, ttl time.Duration, inner usecase.BrandRepository, namespace string) *CachingBrandRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "brands"
	}
	return &CachingBrandRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetByID is never cached: single-row reads are cheap and staleness after a
// soft delete would be visible to callers.
func (c *CachingBrandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	return c.inner.GetByID(ctx, id)
}

// List retrieves a page of brands, checking cache first then falling back to
// the database.
func (c *CachingBrandRepository) List(ctx context.Context, name string, skip, take int) ([]entity.Brand, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, name, skip, take)
	}

	key := c.listKey(name, skip, take)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Brand
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List(ctx, name, skip, take)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Count retrieves the filtered total, cached alongside the list pages.
func (c *CachingBrandRepository) Count(ctx context.Context, name string) (int64, error) {
	if c.rdb == nil {
		return c.inner.Count(ctx, name)
	}

	key := c.countKey(name)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out int64
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.Count(ctx, name)
	if err != nil {
		return 0, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// ListIncludingDeleted is an audit view and is never cached.
func (c *CachingBrandRepository) ListIncludingDeleted(ctx context.Context) ([]entity.Brand, error) {
	return c.inner.ListIncludingDeleted(ctx)
}

// Create persists a brand and invalidates cached listings.
func (c *CachingBrandRepository) Create(ctx context.Context, b *entity.Brand) error {
	if err := c.inner.Create(ctx, b); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update persists brand changes and invalidates cached listings.
func (c *CachingBrandRepository) Update(ctx context.Context, b *entity.Brand) error {
	if err := c.inner.Update(ctx, b); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Remove soft-deletes a brand and invalidates cached listings.
func (c *CachingBrandRepository) Remove(ctx context.Context, b *entity.Brand) error {
	if err := c.inner.Remove(ctx, b); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// invalidate drops every key in the namespace. Best effort: a failed
// invalidation only shortens cache freshness to the TTL.
func (c *CachingBrandRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

func (c *CachingBrandRepository) listKey(name string, skip, take int) string {
	return fmt.Sprintf("%s:list:%s:%d:%d", c.namespace, safe(name), skip, take)
}

func (c *CachingBrandRepository) countKey(name string) string {
	return fmt.Sprintf("%s:count:%s", c.namespace, safe(name))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingBrandRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
