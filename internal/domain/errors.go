// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates that the record is absent for the given owner.
	ErrNotFound = errors.New("record not found")
	// ErrStorage indicates that the underlying storage rejected a read or a write.
	// The operation may be retried.
	ErrStorage = errors.New("storage unavailable")
	// ErrMissingOwner indicates that an operation was called without an owner context.
	ErrMissingOwner = errors.New("missing owner")
	// ErrCategoryAlreadyExists indicates that the owner already has a category with the same name and kind.
	ErrCategoryAlreadyExists = errors.New("category already exists")
	// ErrBusClosed indicates a publish on a closed sync bus.
	ErrBusClosed = errors.New("sync bus closed")
)

// ValidationError holds every human readable reason why an input was rejected.
type ValidationError struct {
	Reasons []string
}

// NewValidationError returns ValidationError for the given reasons.
func NewValidationError(reasons ...string) *ValidationError {
	return &ValidationError{Reasons: reasons}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Reasons, "; ")
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// SyncDeliveryError collects failures of sync bus handlers.
// Failing handlers never stop delivery to the others.
type SyncDeliveryError struct {
	Topic  string
	Errors []error
}

func (e *SyncDeliveryError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}

	return "sync delivery on " + e.Topic + ": " + strings.Join(msgs, "; ")
}

// Unwrap returns handler errors.
func (e *SyncDeliveryError) Unwrap() []error {
	return e.Errors
}
