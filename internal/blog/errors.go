package blog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the slug or id does not resolve to a live entity.
	ErrNotFound = errors.New("not found")

	// ErrForbidden indicates the action requires an authentication or
	// admin capability the caller lacks.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports a rejected write with the offending field, so
// the presentation layer can re-render the form with it indicated.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Reason)
}

// StorageError wraps a persistence-layer failure crossing the domain
// boundary. The domain performs no retries; retry policy belongs to the
// storage collaborator.
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure in %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying storage error
func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
