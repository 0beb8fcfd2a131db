package validator

import (
	"fmt"
	"slices"
)

// InList validates that value is one of allowedValues.
func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", allowedValues),
			Code:    "validation.in_list",
		},
	}
}

// DefinedFlag validates that value names one of the declared flags.
// The message quotes the offending input.
func DefinedFlag(field, value string, flags []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(flags, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "undefined flag: " + value,
			Code:    "validation.undefined_flag",
		},
	}
}
