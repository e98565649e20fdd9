// Package db opens the postgres connection and prepares the schema.
package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "vehicle_backend/internal/feature/auth/domain/entity"
	catalogentity "vehicle_backend/internal/feature/catalog/domain/entity"
	"vehicle_backend/internal/platform/config"
	"vehicle_backend/internal/platform/logger"
)

const (
	connectTimeout = 60 * time.Second
	retryInterval  = 3 * time.Second
)

// Open はpostgresへの接続を確立します。起動直後のDBを待つため、
// 一定時間リトライします。TranslateErrorにより一意制約違反は
// gorm.ErrDuplicatedKeyとして返るようになります。
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	log := logger.Get()

	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(connectTimeout)
	for {
		conn, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", connectTimeout, err)
		}
		log.Warn().Err(err).Msg("db connect failed, retrying...")
		time.Sleep(retryInterval)
	}

	if cfg.RunMigrations {
		// マイグレーション（User, Brand, Model, Vehicle）
		if err := conn.AutoMigrate(
			&authentity.User{},
			&catalogentity.Brand{},
			&catalogentity.Model{},
			&catalogentity.Vehicle{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return conn, nil
}
