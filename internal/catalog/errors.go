package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for the catalog. Typed errors below match them through
// errors.Is.
var (
	// ErrPasswordMismatch is returned when a new password and its
	// confirmation differ.
	ErrPasswordMismatch = errors.New("password mismatch")

	// ErrNotFound is returned by lookups for an unknown id.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable is returned when the persistence medium fails.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidInput is returned when a mutation would break a catalog
	// invariant.
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError names the resource a lookup could not find.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StorageError wraps a persistence failure. The catalog is unchanged when
// a mutation returns one.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: storage unavailable for %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

// ValidationError reports which input field was rejected and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
