// Package adapters はカタログフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vehicle_backend/internal/feature/catalog/domain/entity"
	"vehicle_backend/internal/feature/catalog/usecase"
	"vehicle_backend/internal/platform/persistence"
)

// nameContains は名前の部分一致フィルタを返します。空文字列ならフィルタしません。
func nameContains(name string) persistence.Scope {
	if name == "" {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("name LIKE ?", "%"+name+"%")
	}
}

// brandGorm はBrandRepositoryインターフェースのGORM実装です。
type brandGorm struct {
	repo *persistence.Repository[entity.Brand, *entity.Brand]
}

// brandGormがBrandRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.BrandRepository = (*brandGorm)(nil)

// NewBrandGorm は指定されたgorm.DB接続でbrandGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewBrandGorm(db *gorm.DB) *brandGorm {
	return &brandGorm{
		repo: persistence.NewRepository[entity.Brand](db, persistence.OrderBy("name ASC")),
	}
}

func (r *brandGorm) GetByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	return r.repo.GetByID(ctx, id)
}

func (r *brandGorm) List(ctx context.Context, name string, skip, take int) ([]entity.Brand, error) {
	return r.repo.GetAll(ctx, nameContains(name), skip, take)
}

func (r *brandGorm) Count(ctx context.Context, name string) (int64, error) {
	return r.repo.Count(ctx, nameContains(name))
}

func (r *brandGorm) ListIncludingDeleted(ctx context.Context) ([]entity.Brand, error) {
	return r.repo.GetAllIncludingDeleted(ctx)
}

func (r *brandGorm) Create(ctx context.Context, b *entity.Brand) error {
	uow := r.repo.NewUnitOfWork()
	uow.Create(b)
	_, err := uow.Commit(ctx)
	return err
}

func (r *brandGorm) Update(ctx context.Context, b *entity.Brand) error {
	uow := r.repo.NewUnitOfWork()
	uow.Update(b)
	_, err := uow.Commit(ctx)
	return err
}

func (r *brandGorm) Remove(ctx context.Context, b *entity.Brand) error {
	uow := r.repo.NewUnitOfWork()
	uow.Remove(b)
	_, err := uow.Commit(ctx)
	return err
}
