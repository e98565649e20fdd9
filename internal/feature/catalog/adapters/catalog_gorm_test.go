package adapters

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vehicle_backend/internal/feature/catalog/domain/entity"
	"vehicle_backend/internal/feature/catalog/usecase"
	"vehicle_backend/internal/platform/identity"
	"vehicle_backend/internal/platform/persistence"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Brand{}, &entity.Model{}, &entity.Vehicle{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func adminCtx() context.Context {
	return identity.WithIdentity(context.Background(), identity.Identity{
		SubjectID: uuid.New(),
		Username:  "admin",
		IsAdmin:   true,
	})
}

func mustCreateBrand(t *testing.T, r usecase.BrandRepository, name string) *entity.Brand {
	t.Helper()
	b := &entity.Brand{AuditFields: persistence.AuditFields{ID: uuid.New()}, Name: name}
	require.NoError(t, r.Create(adminCtx(), b))
	return b
}

func mustCreateModel(t *testing.T, r usecase.ModelRepository, name string, brandID uuid.UUID) *entity.Model {
	t.Helper()
	m := &entity.Model{AuditFields: persistence.AuditFields{ID: uuid.New()}, Name: name, BrandID: brandID}
	require.NoError(t, r.Create(adminCtx(), m))
	return m
}

// TestBrandGorm_ListAndCount は名前フィルタと件数の整合、名前順を検証します。
func TestBrandGorm_ListAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBrandGorm(db)

	for _, n := range []string{"Toyota", "Honda", "Nissan", "Hino"} {
		mustCreateBrand(t, repo, n)
	}

	all, err := repo.List(context.Background(), "", 0, 0)
	require.NoError(t, err)
	var names []string
	for _, b := range all {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Hino", "Honda", "Nissan", "Toyota"}, names)

	filtered, err := repo.List(context.Background(), "H", 0, 0)
	require.NoError(t, err)
	count, err := repo.Count(context.Background(), "H")
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
	assert.EqualValues(t, 2, count)
}

// TestBrandGorm_DuplicateName は名前の一意制約違反がErrConflictになることを検証します。
func TestBrandGorm_DuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBrandGorm(db)

	mustCreateBrand(t, repo, "Toyota")

	dup := &entity.Brand{AuditFields: persistence.AuditFields{ID: uuid.New()}, Name: "Toyota"}
	err := repo.Create(adminCtx(), dup)
	assert.ErrorIs(t, err, persistence.ErrConflict)
}

// TestBrandGorm_SoftDeleteVisibility は削除後の不可視化と/deleted一覧を検証します。
func TestBrandGorm_SoftDeleteVisibility(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBrandGorm(db)

	b := mustCreateBrand(t, repo, "Toyota")
	require.NoError(t, repo.Remove(adminCtx(), b))

	_, err := repo.GetByID(context.Background(), b.ID)
	assert.ErrorIs(t, err, persistence.ErrNotFound)

	visible, err := repo.List(context.Background(), "", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := repo.ListIncludingDeleted(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsDeleted)
	require.NotNil(t, all[0].DeletedBy)
	assert.Equal(t, "admin", *all[0].DeletedBy)
}

// TestModelGorm_PreloadsVisibleBrand はモデル読み取り時のブランドのプリロードと、
// 削除済みブランドがプリロードされないことを検証します。
func TestModelGorm_PreloadsVisibleBrand(t *testing.T) {
	db := setupTestDB(t)
	brands := NewBrandGorm(db)
	models := NewModelGorm(db)

	b := mustCreateBrand(t, brands, "Toyota")
	m := mustCreateModel(t, models, "Corolla", b.ID)

	got, err := models.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Brand)
	assert.Equal(t, "Toyota", got.Brand.Name)

	// ブランドを削除するとプリロードから消えるが、モデル自体は読める。
	require.NoError(t, brands.Remove(adminCtx(), b))

	got, err = models.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Brand)
}

// TestVehicleGorm_Filters は年式・色・ナンバープレートの組み合わせフィルタを検証します。
func TestVehicleGorm_Filters(t *testing.T) {
	db := setupTestDB(t)
	brands := NewBrandGorm(db)
	models := NewModelGorm(db)
	vehicles := NewVehicleGorm(db)

	b := mustCreateBrand(t, brands, "Toyota")
	m := mustCreateModel(t, models, "Corolla", b.ID)

	seed := []entity.Vehicle{
		{Year: 2020, Color: "red", LicensePlate: "AAA-1111"},
		{Year: 2020, Color: "blue", LicensePlate: "BBB-2222"},
		{Year: 2024, Color: "red", LicensePlate: "CCC-3333"},
	}
	for i := range seed {
		seed[i].ID = uuid.New()
		seed[i].ModelID = m.ID
		require.NoError(t, vehicles.Create(adminCtx(), &seed[i]))
	}

	year := 2020
	tests := []struct {
		name   string
		filter usecase.VehicleFilter
		want   int
	}{
		{"no filter", usecase.VehicleFilter{}, 3},
		{"by year", usecase.VehicleFilter{Year: &year}, 2},
		{"by color", usecase.VehicleFilter{Color: "red"}, 2},
		{"year and color", usecase.VehicleFilter{Year: &year, Color: "red"}, 1},
		{"by plate fragment", usecase.VehicleFilter{LicensePlate: "BBB"}, 1},
		{"no match", usecase.VehicleFilter{Color: "green"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vehicles.List(context.Background(), tt.filter, 0, 0)
			require.NoError(t, err)
			count, err := vehicles.Count(context.Background(), tt.filter)
			require.NoError(t, err)

			assert.Len(t, got, tt.want)
			assert.EqualValues(t, tt.want, count)
		})
	}
}

// TestVehicleGorm_DuplicatePlate はナンバープレートの一意制約違反を検証します。
func TestVehicleGorm_DuplicatePlate(t *testing.T) {
	db := setupTestDB(t)
	brands := NewBrandGorm(db)
	models := NewModelGorm(db)
	vehicles := NewVehicleGorm(db)

	b := mustCreateBrand(t, brands, "Toyota")
	m := mustCreateModel(t, models, "Corolla", b.ID)

	v := &entity.Vehicle{AuditFields: persistence.AuditFields{ID: uuid.New()}, Year: 2020, Color: "red", LicensePlate: "AAA-1111", ModelID: m.ID}
	require.NoError(t, vehicles.Create(adminCtx(), v))

	dup := &entity.Vehicle{AuditFields: persistence.AuditFields{ID: uuid.New()}, Year: 2021, Color: "blue", LicensePlate: "AAA-1111", ModelID: m.ID}
	assert.ErrorIs(t, vehicles.Create(adminCtx(), dup), persistence.ErrConflict)
}

// TestVehicleGorm_UpdateKeepsAudit は更新が監査情報を正しく引き継ぐことを検証します。
func TestVehicleGorm_UpdateKeepsAudit(t *testing.T) {
	db := setupTestDB(t)
	brands := NewBrandGorm(db)
	models := NewModelGorm(db)
	vehicles := NewVehicleGorm(db)

	b := mustCreateBrand(t, brands, "Toyota")
	m := mustCreateModel(t, models, "Corolla", b.ID)

	v := &entity.Vehicle{AuditFields: persistence.AuditFields{ID: uuid.New()}, Year: 2020, Color: "red", LicensePlate: "AAA-1111", ModelID: m.ID}
	require.NoError(t, vehicles.Create(adminCtx(), v))

	svcCtx := identity.WithIdentity(context.Background(), identity.Identity{SubjectID: uuid.New(), Username: "svc"})
	v.Color = "black"
	require.NoError(t, vehicles.Update(svcCtx, v))

	got, err := vehicles.GetByID(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, "black", got.Color)
	assert.Equal(t, "admin", got.CreatedBy)
	require.NotNil(t, got.UpdatedBy)
	assert.Equal(t, "svc", *got.UpdatedBy)
}
