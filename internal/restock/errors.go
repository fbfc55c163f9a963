package restock

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when the trimmed product name is empty.
	ErrEmptyName = errors.New("product name must not be empty")
	// ErrInvalidQuantity is returned when a quantity is not a positive
	// finite number.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
	// ErrInvalidUnit is returned for a unit outside the known set.
	ErrInvalidUnit = errors.New("unknown unit")
	// ErrEntryNotFound is returned by lookups that need an existing entry.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrAmbiguousID is returned when an ID prefix matches several entries.
	ErrAmbiguousID = errors.New("entry id prefix is ambiguous")
)

// ValidationError reports which input field was rejected.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a classification validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
