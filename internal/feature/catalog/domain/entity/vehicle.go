package entity

import (
	"github.com/google/uuid"

	"vehicle_backend/internal/platform/persistence"
)

// Vehicle represents a single registered vehicle of some model.
type Vehicle struct {
	persistence.AuditFields
	persistence.SoftDeleteFields

	Year  int    `gorm:"not null" json:"year"`
	Color string `gorm:"size:255;not null" json:"color"`

	// LicensePlate is unique across all vehicles, deleted ones included.
	LicensePlate string `gorm:"uniqueIndex;size:32;not null" json:"licensePlate"`

	ModelID uuid.UUID `gorm:"type:uuid;not null;index" json:"modelId"`
	Model   *Model    `gorm:"foreignKey:ModelID" json:"-"`
}
