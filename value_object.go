package domainkit

import (
	"cmp"
	"sync"
)

// Leaf is the contract every concrete value object type satisfies.
// T is the implementing type itself, usually a pointer, so Compare and
// Equals only ever accept another value of the very same kind.
type Leaf[T any] interface {
	// Compare orders two values of the same kind.
	Compare(other T) int
	// Equals reports Compare(other) == 0; it is false for a nil other.
	Equals(other T) bool
	// GetErrors reports failures for the current input under name.
	// prev is the value that occupied the same slot before an update, or
	// the zero T when there is none.
	GetErrors(name string, prev T) []ValidationError
	// Plain returns the public value for plain-object projection.
	Plain() any
}

// Pipeline describes how a value object derives its representations.
// A nil stage is the identity transform.
type Pipeline[In, Inner, Out any] struct {
	FromInput func(In) Inner
	ToOutput  func(Inner) (Out, error)
}

// Base holds the raw input of a value object and memoizes the inner and
// output representations derived from it. Both are computed at most once.
type Base[In, Inner, Out any] struct {
	input    In
	pipeline Pipeline[In, Inner, Out]

	innerOnce sync.Once
	inner     Inner

	outputOnce sync.Once
	output     Out
	outputErr  error
}

// NewBase wraps input. Nothing is computed until first access.
func NewBase[In, Inner, Out any](input In, pipeline Pipeline[In, Inner, Out]) *Base[In, Inner, Out] {
	return &Base[In, Inner, Out]{input: input, pipeline: pipeline}
}

// Input returns the raw input as supplied.
func (b *Base[In, Inner, Out]) Input() In {
	return b.input
}

// Inner returns the memoized intermediate representation.
func (b *Base[In, Inner, Out]) Inner() Inner {
	b.innerOnce.Do(func() {
		if b.pipeline.FromInput != nil {
			b.inner = b.pipeline.FromInput(b.input)
			return
		}
		b.inner = identity[In, Inner](b.input)
	})
	return b.inner
}

// Output returns the memoized public value, or the error that prevented it.
func (b *Base[In, Inner, Out]) Output() (Out, error) {
	b.outputOnce.Do(func() {
		inner := b.Inner()
		if b.pipeline.ToOutput != nil {
			b.output, b.outputErr = b.pipeline.ToOutput(inner)
			return
		}
		b.output = identity[Inner, Out](inner)
	})
	return b.output, b.outputErr
}

// Value returns the memoized public value.
// It panics when the value cannot exist for the current input; callers that
// cannot rule that out should use Output.
func (b *Base[In, Inner, Out]) Value() Out {
	out, err := b.Output()
	if err != nil {
		panic(err)
	}
	return out
}

func identity[From, To any](v From) To {
	if out, ok := any(v).(To); ok {
		return out
	}
	var zero To
	if any(v) == nil {
		return zero
	}
	panic(invalidUsage("identity stage requires matching types"))
}

// ValidateLeaf turns the failures of a single value object into an error.
func ValidateLeaf[T Leaf[T]](name string, v T, prev T) error {
	errs := Collect(v.GetErrors(name, prev))
	if errs.IsEmpty() {
		return nil
	}
	return NewValidationFailure(errs)
}

// CompareNullable orders two values of which at least one is null:
// null sorts after any non-null value and two nulls are equal.
func CompareNullable(aNull, bNull bool) int {
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return 1
	case bNull:
		return -1
	default:
		return 0
	}
}

// CompareOrdered is cmp.Compare, exposed for leaf implementations.
func CompareOrdered[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}
