package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no snapshot exists in the requested scope.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable indicates the draft store rejected a read or
	// write. Callers degrade to in-memory state and warn; form
	// interaction continues.
	ErrStorageUnavailable = errors.New("draft storage unavailable")
)

// storageErr wraps a low-level store failure so callers can match it with
// errors.Is(err, ErrStorageUnavailable) while keeping the cause.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(ErrStorageUnavailable, err))
}
