package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vehicle_backend/internal/feature/auth/domain/entity"
	"vehicle_backend/internal/platform/logger"
	"vehicle_backend/internal/platform/persistence"
)

// PasswordHasher は初期ユーザーのパスワードをハッシュ化します。
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// seedUser は初期投入するアカウントの定義です。
type seedUser struct {
	username string
	password string
	admin    bool
}

var seedUsers = []seedUser{
	{username: "admin", password: "Admin@123", admin: true},
	{username: "user1", password: "User1@123", admin: false},
}

// SeedUsers はユーザーテーブルが空の場合に初期アカウントを投入します。
// リクエスト外のコンテキストで通常のコミットパスを通すため、
// 行は "System" アクターで刻印されます。
func SeedUsers(ctx context.Context, conn *gorm.DB, hasher PasswordHasher) error {
	log := logger.Get()

	var count int64
	if err := conn.WithContext(ctx).Model(&entity.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if count > 0 {
		log.Debug().Int64("users", count).Msg("seed skipped, users already present")
		return nil
	}

	repo := persistence.NewRepository[entity.User](conn)
	uow := repo.NewUnitOfWork()

	for _, s := range seedUsers {
		hash, err := hasher.Hash(s.password)
		if err != nil {
			return fmt.Errorf("seed: hash password for %s: %w", s.username, err)
		}
		uow.Create(&entity.User{
			AuditFields:  persistence.AuditFields{ID: uuid.New()},
			Username:     s.username,
			PasswordHash: hash,
			IsAdmin:      s.admin,
		})
	}

	if _, err := uow.Commit(ctx); err != nil {
		return fmt.Errorf("seed: commit users: %w", err)
	}

	log.Info().Int("users", len(seedUsers)).Msg("seeded initial users")
	return nil
}
