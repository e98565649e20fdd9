// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"vehicle_backend/internal/feature/catalog/adapters"
	"vehicle_backend/internal/feature/catalog/usecase"
	"vehicle_backend/internal/platform/cache"
)

const brandCacheTTL = 5 * time.Minute

// NewBrandRepository creates a BrandRepository implementation.
// If Redis is available, listings are served through the caching decorator.
// Otherwise, reads go straight to the database.
func NewBrandRepository(rdb *redis.Client, conn *gorm.DB) usecase.BrandRepository {
	inner := adapters.NewBrandGorm(conn)
	if rdb != nil {
		return cache.NewCachingBrandRepository(rdb, brandCacheTTL, inner, "brands")
	}
	return inner
}
