package vo

import (
	"time"

	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/validator"
)

// DateInput is the raw input of a Date: a time, or the text it was given as.
type DateInput struct {
	Time   time.Time
	Text   string
	IsText bool
}

// Date is a point in time. The inner form is an RFC 3339 UTC string so
// that it survives serialization unchanged; an unreadable input yields an
// empty inner form.
type Date[S any] struct {
	*domainkit.Base[DateInput, string, time.Time]
}

func NewDate[S any](input DateInput) *Date[S] {
	return &Date[S]{Base: domainkit.NewBase(input, domainkit.Pipeline[DateInput, string, time.Time]{
		FromInput: func(in DateInput) string {
			t := in.Time
			if in.IsText {
				var ok bool
				if t, ok = validator.ParseDate(in.Text); !ok {
					return ""
				}
			}
			return t.UTC().Format(time.RFC3339Nano)
		},
		ToOutput: func(inner string) (time.Time, error) {
			t, err := time.Parse(time.RFC3339Nano, inner)
			if err != nil {
				return time.Time{}, domainkit.NewInvalidValueError("date", "invalid date")
			}
			return t, nil
		},
	})}
}

// DateOf wraps a time.
func DateOf[S any](t time.Time) *Date[S] {
	return NewDate[S](DateInput{Time: t})
}

// ParseDate wraps a date given as text. See validator.DateLayouts.
func ParseDate[S any](s string) *Date[S] {
	return NewDate[S](DateInput{Text: s, IsText: true})
}

// DateFromUnixMilli wraps a Unix timestamp in milliseconds.
func DateFromUnixMilli[S any](ms int64) *Date[S] {
	return DateOf[S](time.UnixMilli(ms))
}

// Compare orders by instant. An unreadable date sorts after every readable one.
func (d *Date[S]) Compare(other *Date[S]) int {
	a, aErr := d.Output()
	b, bErr := other.Output()
	if aErr != nil || bErr != nil {
		return domainkit.CompareNullable(aErr != nil, bErr != nil)
	}
	return a.Compare(b)
}

func (d *Date[S]) Equals(other *Date[S]) bool {
	if other == nil {
		return false
	}
	return d.Compare(other) == 0
}

// GetErrors only checks textual input; a time.Time is always a date.
func (d *Date[S]) GetErrors(name string, _ *Date[S]) []domainkit.ValidationError {
	in := d.Input()
	return report(validator.Failures(validator.When(in.IsText, validator.ValidDate(name, in.Text))))
}

// Plain returns the time.Time, or nil when the input was unreadable.
func (d *Date[S]) Plain() any {
	t, err := d.Output()
	if err != nil {
		return nil
	}
	return t
}
