package dto

import (
	"github.com/google/uuid"

	"vehicle_backend/internal/feature/catalog/domain/entity"
)

// CreateModelReq はモデル作成リクエストのボディです。
type CreateModelReq struct {
	Name    string    `json:"name" binding:"required"`
	BrandID uuid.UUID `json:"brandId" binding:"required"`
}

// UpdateModelReq はモデル更新リクエストのボディです。
type UpdateModelReq struct {
	Name    string    `json:"name" binding:"required"`
	BrandID uuid.UUID `json:"brandId" binding:"required"`
}

// ModelResp はモデルのレスポンス表現です。
type ModelResp struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	BrandID uuid.UUID `json:"brandId"`
	AuditResp
}

// NewModelResp はエンティティをレスポンスに変換します。
func NewModelResp(m *entity.Model, admin bool) ModelResp {
	return ModelResp{
		ID:        m.ID,
		Name:      m.Name,
		BrandID:   m.BrandID,
		AuditResp: auditOf(m.AuditFields, m.SoftDeleteFields, admin),
	}
}

// NewModelList は一覧をレスポンスのスライスに変換します。
func NewModelList(models []entity.Model, admin bool) []ModelResp {
	out := make([]ModelResp, 0, len(models))
	for i := range models {
		out = append(out, NewModelResp(&models[i], admin))
	}
	return out
}
