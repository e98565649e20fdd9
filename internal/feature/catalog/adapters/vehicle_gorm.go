package adapters

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vehicle_backend/internal/feature/catalog/domain/entity"
	"vehicle_backend/internal/feature/catalog/usecase"
	"vehicle_backend/internal/platform/persistence"
)

// vehicleFilterScope はVehicleFilterをSQL条件に変換します。
// 条件がひとつもなければnilを返します。
func vehicleFilterScope(f usecase.VehicleFilter) persistence.Scope {
	if f.Year == nil && f.Color == "" && f.LicensePlate == "" {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		if f.Year != nil {
			db = db.Where("year = ?", *f.Year)
		}
		if f.Color != "" {
			db = db.Where("color = ?", f.Color)
		}
		if f.LicensePlate != "" {
			db = db.Where("license_plate LIKE ?", "%"+f.LicensePlate+"%")
		}
		return db
	}
}

// vehicleGorm はVehicleRepositoryインターフェースのGORM実装です。
// 読み取りは可視なModelをプリロードします。
type vehicleGorm struct {
	repo *persistence.Repository[entity.Vehicle, *entity.Vehicle]
}

var _ usecase.VehicleRepository = (*vehicleGorm)(nil)

// NewVehicleGorm は指定されたgorm.DB接続でvehicleGormの新しいインスタンスを生成します。
func NewVehicleGorm(db *gorm.DB) *vehicleGorm {
	return &vehicleGorm{
		repo: persistence.NewRepository[entity.Vehicle](db,
			persistence.OrderBy("created_at ASC"),
			persistence.PreloadVisible("Model"),
		),
	}
}

func (r *vehicleGorm) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	return r.repo.GetByID(ctx, id)
}

func (r *vehicleGorm) List(ctx context.Context, f usecase.VehicleFilter, skip, take int) ([]entity.Vehicle, error) {
	return r.repo.GetAll(ctx, vehicleFilterScope(f), skip, take)
}

func (r *vehicleGorm) Count(ctx context.Context, f usecase.VehicleFilter) (int64, error) {
	return r.repo.Count(ctx, vehicleFilterScope(f))
}

func (r *vehicleGorm) ListIncludingDeleted(ctx context.Context) ([]entity.Vehicle, error) {
	return r.repo.GetAllIncludingDeleted(ctx)
}

func (r *vehicleGorm) Create(ctx context.Context, v *entity.Vehicle) error {
	uow := r.repo.NewUnitOfWork()
	uow.Create(v)
	_, err := uow.Commit(ctx)
	return err
}

func (r *vehicleGorm) Update(ctx context.Context, v *entity.Vehicle) error {
	uow := r.repo.NewUnitOfWork()
	uow.Update(v)
	_, err := uow.Commit(ctx)
	return err
}

func (r *vehicleGorm) Remove(ctx context.Context, v *entity.Vehicle) error {
	uow := r.repo.NewUnitOfWork()
	uow.Remove(v)
	_, err := uow.Commit(ctx)
	return err
}
