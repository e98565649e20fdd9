package dto

import (
	"github.com/google/uuid"

	"vehicle_backend/internal/feature/catalog/domain/entity"
)

// CreateBrandReq はブランド作成リクエストのボディです。
type CreateBrandReq struct {
	Name string `json:"name" binding:"required"`
}

// UpdateBrandReq はブランド更新リクエストのボディです。
type UpdateBrandReq struct {
	Name string `json:"name" binding:"required"`
}

// BrandResp はブランドのレスポンス表現です。
type BrandResp struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	AuditResp
}

// NewBrandResp はエンティティをレスポンスに変換します。
func NewBrandResp(b *entity.Brand, admin bool) BrandResp {
	return BrandResp{
		ID:        b.ID,
		Name:      b.Name,
		AuditResp: auditOf(b.AuditFields, b.SoftDeleteFields, admin),
	}
}

// NewBrandList は一覧をレスポンスのスライスに変換します。
func NewBrandList(brands []entity.Brand, admin bool) []BrandResp {
	out := make([]BrandResp, 0, len(brands))
	for i := range brands {
		out = append(out, NewBrandResp(&brands[i], admin))
	}
	return out
}
