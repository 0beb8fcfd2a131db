package validator

import (
	"strings"
	"time"
)

// DateLayouts lists the accepted textual date formats, tried in order.
var DateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"2006/01/02",
}

// ParseDate parses value with the first matching layout in DateLayouts.
// Values without a zone are read as UTC.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidDate validates that value is a date or an ISO 8601 timestamp.
func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseDate(value)
			return ok
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid date",
			Code:    "validation.date",
		},
	}
}
