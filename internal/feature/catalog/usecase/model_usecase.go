package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"vehicle_backend/internal/feature/catalog/domain/entity"
	"vehicle_backend/internal/platform/persistence"
)

// ModelRepository はモデルエンティティの永続化層を抽象化します。
type ModelRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Model, error)
	List(ctx context.Context, name string, skip, take int) ([]entity.Model, error)
	Count(ctx context.Context, name string) (int64, error)
	ListIncludingDeleted(ctx context.Context) ([]entity.Model, error)
	Create(ctx context.Context, m *entity.Model) error
	Update(ctx context.Context, m *entity.Model) error
	Remove(ctx context.Context, m *entity.Model) error
}

// BrandReader はモデルが参照するブランドの存在確認に使う読み取り専用インターフェースです。
type BrandReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
}

// modelUsecase はモデルのビジネスロジックを実装します。
type modelUsecase struct {
	models ModelRepository
	brands BrandReader
}

// NewModelUsecase はmodelUsecaseの新しいインスタンスを生成します。
func NewModelUsecase(models ModelRepository, brands BrandReader) *modelUsecase {
	return &modelUsecase{models: models, brands: brands}
}

// requireBrand は参照先ブランドが可視であることを確認します。
// 削除済みブランドは存在しないものとして扱います。
func (u *modelUsecase) requireBrand(ctx context.Context, id uuid.UUID) error {
	_, err := u.brands.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ErrBrandNotFound
		}
		return err
	}
	return nil
}

// List は名前フィルタ付きのモデル一覧を1ページ分返します。
func (u *modelUsecase) List(ctx context.Context, name string, page PageQuery) (Page[entity.Model], error) {
	page = page.normalize()

	total, err := u.models.Count(ctx, name)
	if err != nil {
		return Page[entity.Model]{}, err
	}
	items, err := u.models.List(ctx, name, page.offset(), page.Size)
	if err != nil {
		return Page[entity.Model]{}, err
	}

	return Page[entity.Model]{
		Items:      items,
		PageNumber: page.Number,
		PageSize:   page.Size,
		TotalCount: total,
	}, nil
}

// Get はIDでモデルを取得します。
func (u *modelUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Model, error) {
	m, err := u.models.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	return m, nil
}

// Create は可視なブランド配下に新しいモデルを登録します。
func (u *modelUsecase) Create(ctx context.Context, name string, brandID uuid.UUID) (*entity.Model, error) {
	if err := u.requireBrand(ctx, brandID); err != nil {
		return nil, err
	}

	m := &entity.Model{
		AuditFields: persistence.AuditFields{ID: uuid.New()},
		Name:        name,
		BrandID:     brandID,
	}
	if err := u.models.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update はモデルの名前と所属ブランドを変更します。
func (u *modelUsecase) Update(ctx context.Context, id uuid.UUID, name string, brandID uuid.UUID) (*entity.Model, error) {
	m, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.requireBrand(ctx, brandID); err != nil {
		return nil, err
	}

	m.Name = name
	m.BrandID = brandID
	m.Brand = nil
	if err := u.models.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete はモデルをソフトデリートします。
func (u *modelUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	return u.models.Remove(ctx, m)
}

// ListIncludingDeleted は削除済みを含む全モデルを返します。
func (u *modelUsecase) ListIncludingDeleted(ctx context.Context) ([]entity.Model, error) {
	return u.models.ListIncludingDeleted(ctx)
}
