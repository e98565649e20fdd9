// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when the username or password is wrong.
	// Callers must not reveal which of the two it was.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
