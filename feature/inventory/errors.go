package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by every row validation failure.
// A validation failure rejects the whole upload.
var ErrValidation = errors.New("validation failed")

// MissingFieldsError reports required columns that are absent or empty.
type MissingFieldsError struct {
	Row    int
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("Row %d: Missing required fields: %s", e.Row, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Is(target error) bool { return target == ErrValidation }

// EmptyFieldError reports text columns that contain only whitespace.
type EmptyFieldError struct {
	Row    int
	Fields []string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("Row %d: Fields cannot be empty: %s", e.Row, strings.Join(e.Fields, ", "))
}

func (e *EmptyFieldError) Is(target error) bool { return target == ErrValidation }

// InvalidPagesError reports a pages value that is not an integer of at least 1.
type InvalidPagesError struct {
	Row   int
	Value string
}

func (e *InvalidPagesError) Error() string {
	return fmt.Sprintf("Row %d: Invalid pages value: %s. Must be a positive integer.", e.Row, e.Value)
}

func (e *InvalidPagesError) Is(target error) bool { return target == ErrValidation }

// InvalidPriceError reports a price value that is not a non-negative number.
type InvalidPriceError struct {
	Row   int
	Value string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("Row %d: Invalid price value: %s. Must be a non-negative number.", e.Row, e.Value)
}

func (e *InvalidPriceError) Is(target error) bool { return target == ErrValidation }

// MalformedRowError reports input that could not be parsed as CSV.
type MalformedRowError struct {
	Row int
	Err error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("Row %d: Malformed CSV: %v", e.Row, e.Err)
}

func (e *MalformedRowError) Unwrap() error { return e.Err }

func (e *MalformedRowError) Is(target error) bool { return target == ErrValidation }

// ReconciliationError wraps the failure of one record. It never aborts the batch.
type ReconciliationError struct {
	Row    int
	Record InventoryRecord
	Err    error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("Row %d: %v", e.Row, e.Err)
}

func (e *ReconciliationError) Unwrap() error { return e.Err }
