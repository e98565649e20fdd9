package adapters

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vehicle_backend/internal/feature/catalog/domain/entity"
	"vehicle_backend/internal/feature/catalog/usecase"
	"vehicle_backend/internal/platform/persistence"
)

// modelGorm はModelRepositoryインターフェースのGORM実装です。
// 読み取りは可視なBrandをプリロードします。
type modelGorm struct {
	repo *persistence.Repository[entity.Model, *entity.Model]
}

var _ usecase.ModelRepository = (*modelGorm)(nil)

// NewModelGorm は指定されたgorm.DB接続でmodelGormの新しいインスタンスを生成します。
func NewModelGorm(db *gorm.DB) *modelGorm {
	return &modelGorm{
		repo: persistence.NewRepository[entity.Model](db,
			persistence.OrderBy("name ASC"),
			persistence.PreloadVisible("Brand"),
		),
	}
}

func (r *modelGorm) GetByID(ctx context.Context, id uuid.UUID) (*entity.Model, error) {
	return r.repo.GetByID(ctx, id)
}

func (r *modelGorm) List(ctx context.Context, name string, skip, take int) ([]entity.Model, error) {
	return r.repo.GetAll(ctx, nameContains(name), skip, take)
}

func (r *modelGorm) Count(ctx context.Context, name string) (int64, error) {
	return r.repo.Count(ctx, nameContains(name))
}

func (r *modelGorm) ListIncludingDeleted(ctx context.Context) ([]entity.Model, error) {
	return r.repo.GetAllIncludingDeleted(ctx)
}

func (r *modelGorm) Create(ctx context.Context, m *entity.Model) error {
	uow := r.repo.NewUnitOfWork()
	uow.Create(m)
	_, err := uow.Commit(ctx)
	return err
}

func (r *modelGorm) Update(ctx context.Context, m *entity.Model) error {
	uow := r.repo.NewUnitOfWork()
	uow.Update(m)
	_, err := uow.Commit(ctx)
	return err
}

func (r *modelGorm) Remove(ctx context.Context, m *entity.Model) error {
	uow := r.repo.NewUnitOfWork()
	uow.Remove(m)
	_, err := uow.Commit(ctx)
	return err
}
