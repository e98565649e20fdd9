// Package identity carries the resolved caller of a request through the
// call chain as a context value. It is the only channel between the HTTP
// layer and the persistence layer's audit stamping.
package identity

import (
	"context"

	"github.com/google/uuid"
)

// SystemActor is the actor recorded for operations that run outside any
// request, e.g. database seeding or background jobs.
const SystemActor = "System"

// Identity is the resolved caller of a request. It is immutable once
// attached to a context.
type Identity struct {
	// SubjectID is the user's unique identifier (the token's sub claim).
	SubjectID uuid.UUID

	// Username is the human-readable account name used for audit stamping.
	Username string

	// IsAdmin reports whether the caller holds the Admin role.
	IsAdmin bool
}

// ctxKey is unexported so only this package can attach identities.
// Using a private type avoids collisions with other context values.
type ctxKey struct{}

// WithIdentity returns a child context carrying the given identity.
// Identities are strictly request-scoped: they live on the request context
// and never in package-level state, so concurrent requests cannot observe
// each other's caller.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity attached to ctx, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

// ActorFromContext resolves the audit actor for ctx: the authenticated
// username, or SystemActor when the context carries no identity
// (unauthenticated requests and non-request contexts alike).
func ActorFromContext(ctx context.Context) string {
	if id, ok := FromContext(ctx); ok && id.Username != "" {
		return id.Username
	}
	return SystemActor
}
