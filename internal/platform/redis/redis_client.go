// Package redis wires the go-redis client used for the brand list cache.
package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"vehicle_backend/internal/platform/config"
	"vehicle_backend/internal/platform/logger"
)

// NewRedisClient は設定からRedisクライアントを生成し、疎通を確認します。
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	log := logger.Get()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 接続確認
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Str("address", cfg.Addr()).Msg("redis connection failed")
		return nil, err
	}

	log.Info().Str("address", cfg.Addr()).Msg("redis connection successful")
	return rdb, nil
}
