package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"vehicle_backend/internal/feature/catalog/domain/entity"
	"vehicle_backend/internal/platform/persistence"
)

// VehicleFilter は車両一覧の検索条件です。ゼロ値のフィールドは無視されます。
type VehicleFilter struct {
	Year         *int
	Color        string
	LicensePlate string
}

// VehicleRepository は車両エンティティの永続化層を抽象化します。
type VehicleRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	List(ctx context.Context, f VehicleFilter, skip, take int) ([]entity.Vehicle, error)
	Count(ctx context.Context, f VehicleFilter) (int64, error)
	ListIncludingDeleted(ctx context.Context) ([]entity.Vehicle, error)
	Create(ctx context.Context, v *entity.Vehicle) error
	Update(ctx context.Context, v *entity.Vehicle) error
	Remove(ctx context.Context, v *entity.Vehicle) error
}

// ModelReader は車両が参照するモデルの存在確認に使う読み取り専用インターフェースです。
type ModelReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Model, error)
}

// VehicleInput は車両の作成・更新の入力です。
type VehicleInput struct {
	Year         int
	Color        string
	LicensePlate string
	ModelID      uuid.UUID
}

// vehicleUsecase は車両のビジネスロジックを実装します。
type vehicleUsecase struct {
	vehicles VehicleRepository
	models   ModelReader
}

// NewVehicleUsecase はvehicleUsecaseの新しいインスタンスを生成します。
func NewVehicleUsecase(vehicles VehicleRepository, models ModelReader) *vehicleUsecase {
	return &vehicleUsecase{vehicles: vehicles, models: models}
}

// requireModel は参照先モデルが可視であることを確認します。
func (u *vehicleUsecase) requireModel(ctx context.Context, id uuid.UUID) error {
	_, err := u.models.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ErrModelNotFound
		}
		return err
	}
	return nil
}

// List はフィルタ付きの車両一覧を1ページ分返します。
func (u *vehicleUsecase) List(ctx context.Context, f VehicleFilter, page PageQuery) (Page[entity.Vehicle], error) {
	page = page.normalize()

	total, err := u.vehicles.Count(ctx, f)
	if err != nil {
		return Page[entity.Vehicle]{}, err
	}
	items, err := u.vehicles.List(ctx, f, page.offset(), page.Size)
	if err != nil {
		return Page[entity.Vehicle]{}, err
	}

	return Page[entity.Vehicle]{
		Items:      items,
		PageNumber: page.Number,
		PageSize:   page.Size,
		TotalCount: total,
	}, nil
}

// Get はIDで車両を取得します。
func (u *vehicleUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	v, err := u.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

// Create は可視なモデル配下に新しい車両を登録します。
func (u *vehicleUsecase) Create(ctx context.Context, in VehicleInput) (*entity.Vehicle, error) {
	if err := u.requireModel(ctx, in.ModelID); err != nil {
		return nil, err
	}

	v := &entity.Vehicle{
		AuditFields:  persistence.AuditFields{ID: uuid.New()},
		Year:         in.Year,
		Color:        in.Color,
		LicensePlate: in.LicensePlate,
		ModelID:      in.ModelID,
	}
	if err := u.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Update は車両の属性と所属モデルを変更します。
func (u *vehicleUsecase) Update(ctx context.Context, id uuid.UUID, in VehicleInput) (*entity.Vehicle, error) {
	v, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.requireModel(ctx, in.ModelID); err != nil {
		return nil, err
	}

	v.Year = in.Year
	v.Color = in.Color
	v.LicensePlate = in.LicensePlate
	v.ModelID = in.ModelID
	v.Model = nil
	if err := u.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Delete は車両をソフトデリートします。
func (u *vehicleUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	v, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	return u.vehicles.Remove(ctx, v)
}

// ListIncludingDeleted は削除済みを含む全車両を返します。
func (u *vehicleUsecase) ListIncludingDeleted(ctx context.Context) ([]entity.Vehicle, error) {
	return u.vehicles.ListIncludingDeleted(ctx)
}
