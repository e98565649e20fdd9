package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vehicle_backend/internal/platform/identity"
)

// Scope is a composable query refinement, GORM's scope signature. Callers
// use it both for read configuration (ordering, preloads) and for ad-hoc
// filter predicates.
type Scope func(*gorm.DB) *gorm.DB

// OrderBy returns a Scope applying the given ORDER BY expression.
func OrderBy(expr string) Scope {
	return func(db *gorm.DB) *gorm.DB { return db.Order(expr) }
}

// PreloadVisible returns a Scope eager-loading the named association,
// filtered so soft-deleted parents stay invisible, mirroring the default
// visibility of direct reads. A deleted parent therefore preloads as nil.
func PreloadVisible(name string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(name, func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false)
		})
	}
}

// Repository is a generic data-access facade over an auditable aggregate.
// Reads apply the soft-delete visibility filter and the configured read
// scopes; writes are staged in a UnitOfWork and flushed through the audit
// interceptor at commit.
//
// A Repository holds no per-request state and is safe for concurrent use;
// the request-scoped pieces are the UnitOfWork and the identity on ctx.
type Repository[T any, P interface {
	*T
	Auditable
}] struct {
	db         *gorm.DB
	readScopes []Scope
	soft       bool
	now        func() time.Time
}

// NewRepository creates a repository for T. readScopes configure the
// type-specific ordering (stable, for pagination correctness) and any eager
// loading; they apply to listing reads but not to Count, whose membership
// they cannot change.
func NewRepository[T any, P interface {
	*T
	Auditable
}](db *gorm.DB, readScopes ...Scope) *Repository[T, P] {
	_, soft := any(P(new(T))).(SoftDeletable)
	return &Repository[T, P]{
		db:         db,
		readScopes: readScopes,
		soft:       soft,
		now:        time.Now,
	}
}

// visible applies the default visibility predicate: soft-deleted rows read
// as absent without call sites having to filter explicitly.
func (r *Repository[T, P]) visible(q *gorm.DB) *gorm.DB {
	if r.soft {
		return q.Where("is_deleted = ?", false)
	}
	return q
}

// GetByID returns the entity with the given id, or ErrNotFound when no row
// resolves under the visibility filter (missing and soft-deleted look the
// same to callers).
func (r *Repository[T, P]) GetByID(ctx context.Context, id uuid.UUID) (P, error) {
	q := r.visible(r.db.WithContext(ctx))
	for _, s := range r.readScopes {
		q = s(q)
	}

	var e T
	if err := q.Where("id = ?", id).First(&e).Error; err != nil {
		var zero P
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("failed to load record: %w", err)
	}
	return &e, nil
}

// GetAll returns the visibility-filtered, optionally predicate-filtered
// page of entities in the repository's configured order. skip and take of
// zero or less mean "from the start" and "no limit".
func (r *Repository[T, P]) GetAll(ctx context.Context, filter Scope, skip, take int) ([]T, error) {
	q := r.visible(r.db.WithContext(ctx).Model(new(T)))
	if filter != nil {
		q = filter(q)
	}
	for _, s := range r.readScopes {
		q = s(q)
	}
	if skip > 0 {
		q = q.Offset(skip)
	}
	if take > 0 {
		q = q.Limit(take)
	}

	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return out, nil
}

// Count returns the number of rows over the identical filtered set GetAll
// reads from, so a page and its total can never disagree.
func (r *Repository[T, P]) Count(ctx context.Context, filter Scope) (int64, error) {
	q := r.visible(r.db.WithContext(ctx).Model(new(T)))
	if filter != nil {
		q = filter(q)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}

// GetAllIncludingDeleted bypasses the visibility filter entirely and returns
// every row, soft-deleted included. The caller decides who may use it.
func (r *Repository[T, P]) GetAllIncludingDeleted(ctx context.Context) ([]T, error) {
	q := r.db.WithContext(ctx).Model(new(T))
	for _, s := range r.readScopes {
		q = s(q)
	}

	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return out, nil
}

// NewUnitOfWork starts an empty unit of work against the repository's
// database handle. UnitOfWork values are single-use and not safe for
// concurrent use; create one per logical mutation.
func (r *Repository[T, P]) NewUnitOfWork() *UnitOfWork[T, P] {
	return &UnitOfWork[T, P]{db: r.db, now: r.now}
}

type opKind int

const (
	opCreate opKind = iota
	opUpdate
	opDelete
)

type operation[T any, P interface {
	*T
	Auditable
}] struct {
	kind   opKind
	entity P
}

// UnitOfWork batches staged creates, updates and deletes and flushes them
// in one transaction at Commit, where the audit interceptor runs.
type UnitOfWork[T any, P interface {
	*T
	Auditable
}] struct {
	db  *gorm.DB
	now func() time.Time
	ops []operation[T, P]
}

// Create stages an insert. No stamping happens here; stamping belongs to
// Commit.
func (u *UnitOfWork[T, P]) Create(e P) P {
	u.ops = append(u.ops, operation[T, P]{kind: opCreate, entity: e})
	return e
}

// Update stages a full-row update.
func (u *UnitOfWork[T, P]) Update(e P) P {
	u.ops = append(u.ops, operation[T, P]{kind: opUpdate, entity: e})
	return e
}

// Remove stages a delete. For soft-deletable entities Commit rewrites it
// into a soft-delete update; the physical delete never reaches storage.
func (u *UnitOfWork[T, P]) Remove(e P) {
	u.ops = append(u.ops, operation[T, P]{kind: opDelete, entity: e})
}

// Commit flushes all staged operations in one transaction and returns the
// number of affected rows. Audit stamps share a single now() snapshot and
// the actor resolved from ctx. On any failure the transaction rolls back
// and the in-memory stamps are restored, so either the whole batch commits
// stamped or none of it is. Uniqueness violations surface as ErrConflict.
func (u *UnitOfWork[T, P]) Commit(ctx context.Context) (int64, error) {
	if len(u.ops) == 0 {
		return 0, nil
	}

	now := u.now().UTC()
	actor := identity.ActorFromContext(ctx)

	snapshots := make([]auditSnapshot, 0, len(u.ops))
	for _, op := range u.ops {
		snapshots = append(snapshots, snapshotOf(op.entity))
	}

	var affected int64
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range u.ops {
			res, err := u.apply(tx, op, now, actor)
			if err != nil {
				return err
			}
			affected += res
		}
		return nil
	})
	if err != nil {
		for _, s := range snapshots {
			s.restore()
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return 0, fmt.Errorf("commit failed: %w", err)
	}

	u.ops = nil
	return affected, nil
}

func (u *UnitOfWork[T, P]) apply(tx *gorm.DB, op operation[T, P], now time.Time, actor string) (int64, error) {
	switch op.kind {
	case opCreate:
		stampCreated(op.entity, now, actor)
		res := tx.Omit(clause.Associations).Create(op.entity)
		return res.RowsAffected, res.Error

	case opUpdate:
		stampUpdated(op.entity, now, actor)
		res := tx.Omit(clause.Associations).Save(op.entity)
		return res.RowsAffected, res.Error

	case opDelete:
		sd, ok := any(op.entity).(SoftDeletable)
		if !ok {
			res := tx.Delete(op.entity)
			return res.RowsAffected, res.Error
		}
		markDeleted(sd, now, actor)
		res := tx.Model(op.entity).Updates(map[string]interface{}{
			"is_deleted": true,
			"deleted_at": now,
			"deleted_by": actor,
		})
		return res.RowsAffected, res.Error
	}
	return 0, nil
}
