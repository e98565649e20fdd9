package persistence

import "errors"

var (
	// ErrNotFound is returned by reads when no row resolves under the
	// current visibility filter, including when the row exists but is
	// soft-deleted.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a commit violates a uniqueness
	// constraint. It bubbles unchanged to the application layer, which maps
	// it to a user-visible conflict.
	ErrConflict = errors.New("uniqueness conflict")
)
