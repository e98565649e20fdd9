package dto

import (
	"time"

	"vehicle_backend/internal/platform/persistence"
)

// maskedActor は非管理者に見せる監査アクターのプレースホルダーです。
const maskedActor = "WeatherBoi"

// AuditResp は監査フィールドのレスポンス表現です。
// アクター名は管理者にのみ開示されます。
type AuditResp struct {
	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy string     `json:"createdBy"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy *string    `json:"updatedBy,omitempty"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	DeletedBy *string    `json:"deletedBy,omitempty"`
}

// auditOf は監査フィールドをレスポンス形式に変換します。
// admin以外の呼び出し元にはアクター名をマスクします。
func auditOf(a persistence.AuditFields, s persistence.SoftDeleteFields, admin bool) AuditResp {
	resp := AuditResp{
		CreatedAt: a.CreatedAt,
		CreatedBy: maskActor(a.CreatedBy, admin),
		UpdatedAt: a.UpdatedAt,
		UpdatedBy: maskActorPtr(a.UpdatedBy, admin),
		DeletedAt: s.DeletedAt,
		DeletedBy: maskActorPtr(s.DeletedBy, admin),
	}
	return resp
}

func maskActor(actor string, admin bool) string {
	if admin {
		return actor
	}
	return maskedActor
}

func maskActorPtr(actor *string, admin bool) *string {
	if admin || actor == nil {
		return actor
	}
	masked := maskedActor
	return &masked
}
