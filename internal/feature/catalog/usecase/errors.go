// Package usecase はカタログフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrBrandNotFound is returned when a brand does not exist or is deleted.
	ErrBrandNotFound = errors.New("brand not found")

	// ErrModelNotFound is returned when a model does not exist or is deleted.
	ErrModelNotFound = errors.New("model not found")

	// ErrVehicleNotFound is returned when a vehicle does not exist or is deleted.
	ErrVehicleNotFound = errors.New("vehicle not found")
)
