// Package persistence implements the identity-aware persistence pipeline:
// the shared entity contract (audit + soft-delete fields), the commit-time
// audit interceptor, the default visibility filter for soft-deleted rows,
// and a generic repository over GORM that composes all three.
package persistence

import (
	"time"

	"github.com/google/uuid"
)

// AuditFields is embedded by every persisted aggregate. The ID is assigned
// by the creator (uuid.New()), never by the store, and is immutable.
// CreatedAt/CreatedBy are written exactly once on first persist;
// UpdatedAt/UpdatedBy on every later mutating persist. All stamping is done
// by the unit-of-work commit path; GORM's automatic timestamps are disabled
// so there is a single writer.
type AuditFields struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"autoCreateTime:false;not null" json:"createdAt"`
	CreatedBy string     `gorm:"size:255;not null" json:"createdBy"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
	UpdatedBy *string    `gorm:"size:255" json:"updatedBy,omitempty"`
}

// Audit satisfies the Auditable interface by promotion.
func (f *AuditFields) Audit() *AuditFields { return f }

// SoftDeleteFields is embedded by aggregates that are logically rather than
// physically deleted. Invariant: IsDeleted is true exactly when DeletedAt
// and DeletedBy are set; the only writer is the commit-time delete rewrite.
type SoftDeleteFields struct {
	IsDeleted bool       `gorm:"not null;default:false;index" json:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	DeletedBy *string    `gorm:"size:255" json:"deletedBy,omitempty"`
}

// SoftDelete satisfies the SoftDeletable interface by promotion.
func (f *SoftDeleteFields) SoftDelete() *SoftDeleteFields { return f }

// Deleted reports whether the row has been soft-deleted.
func (f *SoftDeleteFields) Deleted() bool { return f.IsDeleted }

// Auditable is the capability interface every persisted aggregate implements
// by embedding AuditFields. The interceptor stamps through it; there is no
// reflective field lookup, so the contract is compiler-checked.
type Auditable interface {
	Audit() *AuditFields
}

// SoftDeletable marks aggregates whose deletes are rewritten into
// soft-delete updates and whose reads are visibility-filtered by default.
type SoftDeletable interface {
	SoftDelete() *SoftDeleteFields
}
