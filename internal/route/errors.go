package route

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable marks reasoning-provider timeouts, network
	// failures, and malformed responses. Recovered internally; never
	// surfaced to the caller.
	ErrProviderUnavailable = errors.New("reasoning provider unavailable")

	// ErrInvalidAdjustment marks a provider reordering that is not a
	// valid permutation of the input addresses. Recovered internally.
	ErrInvalidAdjustment = errors.New("invalid adjustment signal")
)

// ValidationError reports a violated input constraint with field-level
// detail. The only error kind surfaced to clients.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a field-level validation error.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// AsValidationError unwraps err into a *ValidationError if possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
