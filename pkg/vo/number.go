package vo

import (
	"cmp"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/sanitizer"
	"github.com/dmitrymomot/domainkit/pkg/validator"
)

// NumberSpec configures Float and Int leaves. Min and Max report false
// when the bound is not set. In truncate mode out-of-range input is
// clamped to the bound instead of being reported.
type NumberSpec interface {
	Min() (float64, bool)
	Max() (float64, bool)
	Truncate() bool
}

// NumberDefaults is an unbounded, non-truncating number spec.
type NumberDefaults struct{}

func (NumberDefaults) Min() (float64, bool) { return 0, false }
func (NumberDefaults) Max() (float64, bool) { return 0, false }
func (NumberDefaults) Truncate() bool       { return false }

// NumberInput is the raw input of numeric leaves: a number, or the text
// it was given as.
type NumberInput struct {
	Number float64
	Text   string
	IsText bool
}

// Num wraps a numeric input.
func Num(v float64) NumberInput {
	return NumberInput{Number: v}
}

// NumText wraps a textual numeric input.
func NumText(s string) NumberInput {
	return NumberInput{Text: s, IsText: true}
}

// parseNumber reads the input as a float. Text that is not a number
// yields NaN; text too large for a float64 yields an infinity.
func parseNumber(in NumberInput) float64 {
	if !in.IsText {
		return in.Number
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(in.Text), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return n
}

func clampNumber[S NumberSpec](n float64) float64 {
	var spec S
	if !spec.Truncate() || math.IsNaN(n) {
		return n
	}
	if max, ok := spec.Max(); ok {
		n = sanitizer.ClampMax(n, max)
	}
	if min, ok := spec.Min(); ok {
		n = sanitizer.ClampMin(n, min)
	}
	return n
}

// numberFailures reports the first of: malformed text, not a number,
// above max, below min.
func numberFailures[S NumberSpec](name string, in NumberInput, n float64) validator.ValidationErrors {
	var spec S
	max, hasMax := spec.Max()
	min, hasMin := spec.Min()
	return validator.FirstFailure(
		validator.When(in.IsText, validator.NumericString(name, in.Text)),
		validator.NotNaN(name, n),
		validator.When(hasMax, validator.MaxNum(name, n, max)),
		validator.When(hasMin, validator.MinNum(name, n, min)),
	)
}

// Float is a floating point number given as a number or numeric text.
type Float[S NumberSpec] struct {
	*domainkit.Base[NumberInput, float64, float64]
}

func NewFloat[S NumberSpec](input NumberInput) *Float[S] {
	return &Float[S]{Base: domainkit.NewBase(input, domainkit.Pipeline[NumberInput, float64, float64]{
		FromInput: func(in NumberInput) float64 {
			return clampNumber[S](parseNumber(in))
		},
	})}
}

// FloatOf is shorthand for NewFloat(Num(v)).
func FloatOf[S NumberSpec](v float64) *Float[S] {
	return NewFloat[S](Num(v))
}

// ParseFloat is shorthand for NewFloat(NumText(s)).
func ParseFloat[S NumberSpec](s string) *Float[S] {
	return NewFloat[S](NumText(s))
}

func (f *Float[S]) Compare(other *Float[S]) int {
	return cmp.Compare(f.Inner(), other.Inner())
}

func (f *Float[S]) Equals(other *Float[S]) bool {
	if other == nil {
		return false
	}
	return f.Compare(other) == 0
}

func (f *Float[S]) GetErrors(name string, _ *Float[S]) []domainkit.ValidationError {
	return report(numberFailures[S](name, f.Input(), f.Inner()))
}

func (f *Float[S]) Plain() any {
	return f.Value()
}

// Int is an integer given as a number or integer text. Fractions are
// floored.
type Int[S NumberSpec] struct {
	*domainkit.Base[NumberInput, float64, int64]
}

func NewInt[S NumberSpec](input NumberInput) *Int[S] {
	return &Int[S]{Base: domainkit.NewBase(input, domainkit.Pipeline[NumberInput, float64, int64]{
		FromInput: func(in NumberInput) float64 {
			return math.Floor(clampNumber[S](parseNumber(in)))
		},
		ToOutput: toSafeInt,
	})}
}

// IntOf is shorthand for NewInt(Num(float64(v))).
func IntOf[S NumberSpec](v int64) *Int[S] {
	return NewInt[S](Num(float64(v)))
}

// ParseInt is shorthand for NewInt(NumText(s)).
func ParseInt[S NumberSpec](s string) *Int[S] {
	return NewInt[S](NumText(s))
}

func toSafeInt(n float64) (int64, error) {
	if !validator.SafeInteger("", n).Check() {
		return 0, domainkit.NewInvalidValueError("int", "not a safe integer")
	}
	return int64(n), nil
}

func (i *Int[S]) Compare(other *Int[S]) int {
	return cmp.Compare(i.Inner(), other.Inner())
}

func (i *Int[S]) Equals(other *Int[S]) bool {
	if other == nil {
		return false
	}
	return i.Compare(other) == 0
}

// GetErrors applies the Float rules, then integer format, then the safe
// integer range, reporting only the first failure.
func (i *Int[S]) GetErrors(name string, _ *Int[S]) []domainkit.ValidationError {
	in := i.Input()
	if errs := numberFailures[S](name, in, i.Inner()); len(errs) > 0 {
		return report(errs)
	}
	return report(validator.FirstFailure(
		validator.When(in.IsText, validator.IntegerString(name, in.Text)),
		validator.SafeInteger(name, i.Inner()),
	))
}

// Plain returns the int64 value, or nil when there is none.
func (i *Int[S]) Plain() any {
	v, err := i.Output()
	if err != nil {
		return nil
	}
	return v
}
