package validator

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// MaxSafeInteger is the largest integer a float64 represents exactly (2^53-1).
const MaxSafeInteger = 1<<53 - 1

var (
	numericRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	integerRegex = regexp.MustCompile(`^[+-]?\d+$`)
)

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
			Code:    "validation.min",
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %v", max),
			Code:    "validation.max",
		},
	}
}

// NotNaN validates that value is a number. Infinities pass.
func NotNaN(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return !math.IsNaN(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid number",
			Code:    "validation.numeric",
		},
	}
}

// NumericString validates that value is a decimal number literal.
func NumericString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return numericRegex.MatchString(strings.TrimSpace(value))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid number",
			Code:    "validation.numeric",
		},
	}
}

// IntegerString validates that value is an integer literal.
func IntegerString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return integerRegex.MatchString(strings.TrimSpace(value))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid integer",
			Code:    "validation.integer",
		},
	}
}

// SafeInteger validates that value is a whole number within ±MaxSafeInteger.
func SafeInteger(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
				return false
			}
			return math.Abs(value) <= MaxSafeInteger
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a safe integer",
			Code:    "validation.safe_integer",
		},
	}
}
