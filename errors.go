package domainkit

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is matched by every *ValidationFailure.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidValue is returned when a derived value cannot exist for the
	// current input, e.g. the value of an unset identifier.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidUsage is raised when the sanctioned construction paths are bypassed.
	ErrInvalidUsage = errors.New("invalid usage")
)

// InvalidValueError describes an invalid-state access.
type InvalidValueError struct {
	Target string
	Reason string
}

// NewInvalidValueError creates an InvalidValueError for target.
func NewInvalidValueError(target, reason string) *InvalidValueError {
	return &InvalidValueError{Target: target, Reason: reason}
}

func (e *InvalidValueError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidValue, e.Target)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidValue, e.Target, e.Reason)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

func invalidUsage(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidUsage, reason)
}
