package usecase

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ValidationError is a client-side precondition failure. It is raised
// before any upload or database call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UploadError wraps a storage failure; the enclosing mutation aborts
// before any row is written.
type UploadError struct {
	Field string
	Err   error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload %s: %v", e.Field, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// QueryError wraps a backend read failure.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// MutationError wraps a backend write failure.
type MutationError struct {
	Err error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("mutation failed: %v", e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether an error is a missing-record condition.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsValidation reports whether an error is a client precondition failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
