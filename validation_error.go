package domainkit

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// ValidationError is a single failure reported by a value object,
// tagged with the qualified path of the slot it occupies.
type ValidationError struct {
	Name    string
	Message string
}

// ValidationErrors maps a qualified path (`field`, `field.sub`, `field[i]`)
// to the messages reported for it. Messages for a path are unique and kept
// in order of first appearance.
type ValidationErrors map[string][]string

// NewValidationErrors creates an empty error map.
func NewValidationErrors() ValidationErrors {
	return make(ValidationErrors)
}

// Collect builds an error map from a flat list of failures.
// Returns nil when the list is empty.
func Collect(errs []ValidationError) ValidationErrors {
	if len(errs) == 0 {
		return nil
	}
	ve := NewValidationErrors()
	ve.AddAll(errs...)
	return ve
}

// Add records message under name unless it is already present.
func (ve ValidationErrors) Add(name, message string) {
	if slices.Contains(ve[name], message) {
		return
	}
	ve[name] = append(ve[name], message)
}

// AddAll records every failure in order.
func (ve ValidationErrors) AddAll(errs ...ValidationError) {
	for _, err := range errs {
		ve.Add(err.Name, err.Message)
	}
}

// Merge unions other into ve, path by path.
func (ve ValidationErrors) Merge(other ValidationErrors) {
	// Sorted iteration keeps message order stable when two sources share a path.
	for _, name := range other.Fields() {
		for _, message := range other[name] {
			ve.Add(name, message)
		}
	}
}

// Qualify returns a copy with every path prefixed by prefix.
func (ve ValidationErrors) Qualify(prefix string) ValidationErrors {
	if len(ve) == 0 {
		return nil
	}
	out := make(ValidationErrors, len(ve))
	for name, messages := range ve {
		out[prefix+name] = slices.Clone(messages)
	}
	return out
}

// Has checks if a path has any errors.
func (ve ValidationErrors) Has(name string) bool {
	return len(ve[name]) > 0
}

// Get returns the messages recorded for a path.
func (ve ValidationErrors) Get(name string) []string {
	return slices.Clone(ve[name])
}

// Fields returns the failing paths in lexical order.
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for name := range ve {
		fields = append(fields, name)
	}
	slices.Sort(fields)
	return fields
}

// IsEmpty returns true if there are no validation errors.
func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Clone returns a deep copy. A nil map clones to nil.
func (ve ValidationErrors) Clone() ValidationErrors {
	if ve == nil {
		return nil
	}
	out := make(ValidationErrors, len(ve))
	for name, messages := range ve {
		out[name] = slices.Clone(messages)
	}
	return out
}

// String renders the map as `path: msg, msg; path: msg` in path order.
func (ve ValidationErrors) String() string {
	parts := make([]string, 0, len(ve))
	for _, name := range ve.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(ve[name], ", ")))
	}
	return strings.Join(parts, "; ")
}

// LogValue implements slog.LogValuer.
func (ve ValidationErrors) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(ve))
	for _, name := range ve.Fields() {
		attrs = append(attrs, slog.Any(name, ve[name]))
	}
	return slog.GroupValue(attrs...)
}

// ValidationFailure is returned by the entity lifecycle when one or more
// fields fail. Its message is fixed; the detail lives in Errors.
type ValidationFailure struct {
	errors ValidationErrors
}

// NewValidationFailure wraps a copy of errs.
func NewValidationFailure(errs ValidationErrors) *ValidationFailure {
	return &ValidationFailure{errors: errs.Clone()}
}

func (f *ValidationFailure) Error() string {
	return ErrValidationFailed.Error()
}

// Errors returns a copy of the path-keyed messages.
func (f *ValidationFailure) Errors() ValidationErrors {
	return f.errors.Clone()
}

// Is reports whether target is ErrValidationFailed.
func (f *ValidationFailure) Is(target error) bool {
	return target == ErrValidationFailed
}

// ExtractValidationErrors extracts the error map from a validation failure.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var failure *ValidationFailure
	if errors.As(err, &failure) {
		return failure.Errors()
	}

	return nil
}

func IsValidationFailure(err error) bool {
	if err == nil {
		return false
	}

	var failure *ValidationFailure
	return errors.As(err, &failure)
}
