package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"vehicle_backend/internal/feature/catalog/domain/entity"
	"vehicle_backend/internal/platform/persistence"
)

// BrandRepository はブランドエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type BrandRepository interface {
	// GetByID は未削除ブランドを取得します。見つからない場合、persistence.ErrNotFoundを返します。
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	// List は名前の部分一致でフィルタした未削除ブランドの1ページ分を返します。
	List(ctx context.Context, name string, skip, take int) ([]entity.Brand, error)
	// Count はListと同じフィルタでの総件数を返します。
	Count(ctx context.Context, name string) (int64, error)
	// ListIncludingDeleted は削除済みを含む全ブランドを返します。
	ListIncludingDeleted(ctx context.Context) ([]entity.Brand, error)
	// Create は新しいブランドを永続化します。名前が重複する場合、persistence.ErrConflictを返します。
	Create(ctx context.Context, b *entity.Brand) error
	// Update は既存ブランドの変更を永続化します。
	Update(ctx context.Context, b *entity.Brand) error
	// Remove はブランドをソフトデリートします。
	Remove(ctx context.Context, b *entity.Brand) error
}

// brandUsecase はブランドのビジネスロジックを実装します。
type brandUsecase struct {
	brands BrandRepository
}

// NewBrandUsecase はbrandUsecaseの新しいインスタンスを生成します。
func NewBrandUsecase(brands BrandRepository) *brandUsecase {
	return &brandUsecase{brands: brands}
}

// List は名前フィルタ付きのブランド一覧を1ページ分返します。
func (u *brandUsecase) List(ctx context.Context, name string, page PageQuery) (Page[entity.Brand], error) {
	page = page.normalize()

	total, err := u.brands.Count(ctx, name)
	if err != nil {
		return Page[entity.Brand]{}, err
	}
	items, err := u.brands.List(ctx, name, page.offset(), page.Size)
	if err != nil {
		return Page[entity.Brand]{}, err
	}

	return Page[entity.Brand]{
		Items:      items,
		PageNumber: page.Number,
		PageSize:   page.Size,
		TotalCount: total,
	}, nil
}

// Get はIDでブランドを取得します。削除済み・未登録はErrBrandNotFoundになります。
func (u *brandUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	b, err := u.brands.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return b, nil
}

// Create は新しいブランドを登録します。
func (u *brandUsecase) Create(ctx context.Context, name string) (*entity.Brand, error) {
	b := &entity.Brand{
		AuditFields: persistence.AuditFields{ID: uuid.New()},
		Name:        name,
	}
	if err := u.brands.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update は既存ブランドの名前を変更します。
func (u *brandUsecase) Update(ctx context.Context, id uuid.UUID, name string) (*entity.Brand, error) {
	b, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Name = name
	if err := u.brands.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete はブランドをソフトデリートします。
func (u *brandUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	b, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	return u.brands.Remove(ctx, b)
}

// ListIncludingDeleted は削除済みを含む全ブランドを返します。
func (u *brandUsecase) ListIncludingDeleted(ctx context.Context) ([]entity.Brand, error) {
	return u.brands.ListIncludingDeleted(ctx)
}
