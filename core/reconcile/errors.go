package reconcile

import (
	"errors"
	"fmt"

	"inventory-manager/core/database"
)

// ErrStorageUnavailable is matched by every StorageUnavailableError.
var ErrStorageUnavailable = errors.New("storage unavailable")

// StorageUnavailableError reports that the database could not be reached.
// Callers abort the whole batch when they see it.
type StorageUnavailableError struct {
	Op  string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable during %s: %v", e.Op, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

func (e *StorageUnavailableError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

// Classify wraps connectivity failures into a StorageUnavailableError and
// returns every other error unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var sue *StorageUnavailableError
	if errors.As(err, &sue) {
		return err
	}
	if database.IsUnavailable(err) {
		return &StorageUnavailableError{Op: op, Err: err}
	}
	return err
}
