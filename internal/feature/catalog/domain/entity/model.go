package entity

import (
	"github.com/google/uuid"

	"vehicle_backend/internal/platform/persistence"
)

// Model represents a vehicle model belonging to a brand.
type Model struct {
	persistence.AuditFields
	persistence.SoftDeleteFields

	// Name is the model name, unique across all models.
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`

	BrandID uuid.UUID `gorm:"type:uuid;not null;index" json:"brandId"`
	Brand   *Brand    `gorm:"foreignKey:BrandID" json:"-"`

	Vehicles []Vehicle `gorm:"foreignKey:ModelID" json:"-"`
}
