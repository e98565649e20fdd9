// Package entity defines the domain entities for the vehicle catalog.
package entity

import "vehicle_backend/internal/platform/persistence"

// Brand represents a vehicle manufacturer.
type Brand struct {
	persistence.AuditFields
	persistence.SoftDeleteFields

	// Name is the brand name, unique across all brands.
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`

	Models []Model `gorm:"foreignKey:BrandID" json:"-"`
}
