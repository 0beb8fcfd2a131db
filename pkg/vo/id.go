package vo

import (
	"cmp"
	"math"
	"strings"

	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/validator"
)

var (
	errStringIDUnset = domainkit.NewInvalidValueError("id", "id is not set")
	errIntIDUnset    = domainkit.NewInvalidValueError("id", "id is not set")
)

// StringID is an opaque textual identifier that may be absent, typically
// before the entity has been persisted. Reading Value of an absent id
// panics with an error matching domainkit.ErrInvalidValue.
type StringID[S any] struct {
	*domainkit.Base[Nullable[string], Nullable[string], string]
}

func NewStringID[S any](input Nullable[string]) *StringID[S] {
	return &StringID[S]{Base: domainkit.NewBase(input, domainkit.Pipeline[Nullable[string], Nullable[string], string]{
		ToOutput: func(inner Nullable[string]) (string, error) {
			if !inner.Valid {
				return "", errStringIDUnset
			}
			return inner.V, nil
		},
	})}
}

// StringIDOf wraps a present id.
func StringIDOf[S any](id string) *StringID[S] {
	return NewStringID[S](Valued(id))
}

// UnsetStringID returns an absent id.
func UnsetStringID[S any]() *StringID[S] {
	return NewStringID[S](Null[string]())
}

func (id *StringID[S]) IsSet() bool {
	return id.Input().Valid
}

func (id *StringID[S]) Compare(other *StringID[S]) int {
	a, b := id.Inner(), other.Inner()
	if !a.Valid || !b.Valid {
		return domainkit.CompareNullable(!a.Valid, !b.Valid)
	}
	return strings.Compare(a.V, b.V)
}

func (id *StringID[S]) Equals(other *StringID[S]) bool {
	if other == nil {
		return false
	}
	return id.Compare(other) == 0
}

// GetErrors reports nothing for an absent id; a present id must not be blank.
func (id *StringID[S]) GetErrors(name string, _ *StringID[S]) []domainkit.ValidationError {
	inner := id.Inner()
	if !inner.Valid {
		return nil
	}
	return report(validator.Failures(validator.Required(name, inner.V)))
}

// Plain returns the id, or nil when absent.
func (id *StringID[S]) Plain() any {
	inner := id.Inner()
	if !inner.Valid {
		return nil
	}
	return inner.V
}

// IntID is a numeric identifier that may be absent. Fractions are floored.
// Reading Value of an absent id panics with an error matching
// domainkit.ErrInvalidValue.
type IntID[S any] struct {
	*domainkit.Base[Nullable[NumberInput], Nullable[float64], int64]
}

func NewIntID[S any](input Nullable[NumberInput]) *IntID[S] {
	return &IntID[S]{Base: domainkit.NewBase(input, domainkit.Pipeline[Nullable[NumberInput], Nullable[float64], int64]{
		FromInput: func(in Nullable[NumberInput]) Nullable[float64] {
			if !in.Valid {
				return Null[float64]()
			}
			return Valued(math.Floor(parseNumber(in.V)))
		},
		ToOutput: func(inner Nullable[float64]) (int64, error) {
			if !inner.Valid {
				return 0, errIntIDUnset
			}
			return toSafeInt(inner.V)
		},
	})}
}

// IntIDOf wraps a present id.
func IntIDOf[S any](id int64) *IntID[S] {
	return NewIntID[S](Valued(Num(float64(id))))
}

// ParseIntID wraps a present id given as text.
func ParseIntID[S any](id string) *IntID[S] {
	return NewIntID[S](Valued(NumText(id)))
}

// UnsetIntID returns an absent id.
func UnsetIntID[S any]() *IntID[S] {
	return NewIntID[S](Null[NumberInput]())
}

func (id *IntID[S]) IsSet() bool {
	return id.Input().Valid
}

func (id *IntID[S]) Compare(other *IntID[S]) int {
	a, b := id.Inner(), other.Inner()
	if !a.Valid || !b.Valid {
		return domainkit.CompareNullable(!a.Valid, !b.Valid)
	}
	return cmp.Compare(a.V, b.V)
}

func (id *IntID[S]) Equals(other *IntID[S]) bool {
	if other == nil {
		return false
	}
	return id.Compare(other) == 0
}

func (id *IntID[S]) GetErrors(name string, _ *IntID[S]) []domainkit.ValidationError {
	in, inner := id.Input(), id.Inner()
	if !inner.Valid {
		return nil
	}
	return report(validator.FirstFailure(
		validator.When(in.V.IsText, validator.IntegerString(name, in.V.Text)),
		validator.SafeInteger(name, inner.V),
	))
}

// Plain returns the id, or nil when absent or out of range.
func (id *IntID[S]) Plain() any {
	v, err := id.Output()
	if err != nil {
		return nil
	}
	return v
}
