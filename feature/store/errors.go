package store

import (
	"errors"
	"fmt"
)

// ErrStoreNotFound is matched by StoreNotFoundError.
var ErrStoreNotFound = errors.New("store not found")

// StoreNotFoundError reports a report request for a store that does not exist.
type StoreNotFoundError struct {
	ID uint
}

func (e *StoreNotFoundError) Error() string {
	return fmt.Sprintf("No store found with ID: %d", e.ID)
}

func (e *StoreNotFoundError) Is(target error) bool { return target == ErrStoreNotFound }
