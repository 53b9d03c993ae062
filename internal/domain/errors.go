package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUniqueViolation matches any *UniqueViolationError.
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrReferenceNotFound matches any *ReferenceError.
	ErrReferenceNotFound = errors.New("referenced entity not found")
)

// UniqueViolationError reports a collision on a globally unique user field:
// username, email or walletAddress.
type UniqueViolationError struct {
	Field string
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("%s already taken", e.Field)
}

func (e *UniqueViolationError) Is(target error) bool {
	return target == ErrUniqueViolation
}

// ReferenceError reports a foreign key pointing at a row that does not exist.
type ReferenceError struct {
	Field string
	ID    int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Field, e.ID)
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrReferenceNotFound
}

// ValidationError rejects malformed input before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError is a shorthand constructor.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// AsUniqueViolation unwraps err into a *UniqueViolationError.
func AsUniqueViolation(err error) (*UniqueViolationError, bool) {
	var ue *UniqueViolationError
	ok := errors.As(err, &ue)
	return ue, ok
}
