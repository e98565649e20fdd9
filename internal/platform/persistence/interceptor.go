package persistence

import "time"

// The audit interceptor runs at the single commit boundary of a unit of
// work. It stamps audit metadata from the resolved actor and rewrites
// physical deletes into soft-delete updates. One now() snapshot is shared by
// every entity in the same commit so rows written together carry identical
// timestamps.

// auditSnapshot captures an entity's audit and soft-delete state before
// stamping. If the commit fails the snapshot is restored, so partial
// stamping is never observable on the in-memory entities.
type auditSnapshot struct {
	audit     *AuditFields
	prevAudit AuditFields
	soft      *SoftDeleteFields
	prevSoft  SoftDeleteFields
}

func snapshotOf(e Auditable) auditSnapshot {
	s := auditSnapshot{audit: e.Audit()}
	s.prevAudit = *s.audit
	if sd, ok := e.(SoftDeletable); ok {
		s.soft = sd.SoftDelete()
		s.prevSoft = *s.soft
	}
	return s
}

func (s auditSnapshot) restore() {
	*s.audit = s.prevAudit
	if s.soft != nil {
		*s.soft = s.prevSoft
	}
}

// stampCreated sets the creation audit pair. It never touches the update
// pair: a freshly created row has not been mutated yet.
func stampCreated(e Auditable, now time.Time, actor string) {
	a := e.Audit()
	a.CreatedAt = now
	a.CreatedBy = actor
}

// stampUpdated sets the update audit pair and leaves CreatedAt/CreatedBy
// untouched.
func stampUpdated(e Auditable, now time.Time, actor string) {
	a := e.Audit()
	at := now
	by := actor
	a.UpdatedAt = &at
	a.UpdatedBy = &by
}

// markDeleted sets the soft-delete triple. All other fields stay as they
// are; the corresponding storage write is restricted to these three columns.
func markDeleted(e SoftDeletable, now time.Time, actor string) {
	s := e.SoftDelete()
	at := now
	by := actor
	s.IsDeleted = true
	s.DeletedAt = &at
	s.DeletedBy = &by
}
