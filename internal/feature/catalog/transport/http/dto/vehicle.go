package dto

import (
	"github.com/google/uuid"

	"vehicle_backend/internal/feature/catalog/domain/entity"
)

// CreateVehicleReq は車両作成リクエストのボディです。
type CreateVehicleReq struct {
	Year         int       `json:"year" binding:"required"`
	Color        string    `json:"color" binding:"required"`
	LicensePlate string    `json:"licensePlate" binding:"required"`
	ModelID      uuid.UUID `json:"modelId" binding:"required"`
}

// UpdateVehicleReq は車両更新リクエストのボディです。
type UpdateVehicleReq struct {
	Year         int       `json:"year" binding:"required"`
	Color        string    `json:"color" binding:"required"`
	LicensePlate string    `json:"licensePlate" binding:"required"`
	ModelID      uuid.UUID `json:"modelId" binding:"required"`
}

// VehicleResp は車両のレスポンス表現です。
type VehicleResp struct {
	ID           uuid.UUID `json:"id"`
	Year         int       `json:"year"`
	Color        string    `json:"color"`
	LicensePlate string    `json:"licensePlate"`
	ModelID      uuid.UUID `json:"modelId"`
	AuditResp
}

// NewVehicleResp はエンティティをレスポンスに変換します。
func NewVehicleResp(v *entity.Vehicle, admin bool) VehicleResp {
	return VehicleResp{
		ID:           v.ID,
		Year:         v.Year,
		Color:        v.Color,
		LicensePlate: v.LicensePlate,
		ModelID:      v.ModelID,
		AuditResp:    auditOf(v.AuditFields, v.SoftDeleteFields, admin),
	}
}

// NewVehicleList は一覧をレスポンスのスライスに変換します。
func NewVehicleList(vehicles []entity.Vehicle, admin bool) []VehicleResp {
	out := make([]VehicleResp, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, NewVehicleResp(&vehicles[i], admin))
	}
	return out
}
