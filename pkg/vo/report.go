package vo

import (
	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/validator"
)

// report converts rule failures into leaf validation errors.
func report(errs validator.ValidationErrors) []domainkit.ValidationError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]domainkit.ValidationError, len(errs))
	for i, e := range errs {
		out[i] = domainkit.ValidationError{Name: e.Field, Message: e.Message}
	}
	return out
}

// Nullable is the raw input of leaves whose input may be absent.
type Nullable[T any] struct {
	V     T
	Valid bool
}

// Null returns the absent input.
func Null[T any]() Nullable[T] {
	return Nullable[T]{}
}

// Valued returns a present input.
func Valued[T any](v T) Nullable[T] {
	return Nullable[T]{V: v, Valid: true}
}
