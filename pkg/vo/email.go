package vo

import (
	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/sanitizer"
	"github.com/dmitrymomot/domainkit/pkg/validator"
)

// EmailMaxLength bounds every e-mail address.
const EmailMaxLength = 180

// EmailDefaults is the stock e-mail spec. It is a TextSpec capped at
// EmailMaxLength characters.
type EmailDefaults struct{ TextDefaults }

func (EmailDefaults) MaxLength() int { return EmailMaxLength }

// Email is a Text that must also be a well-formed address.
type Email[S TextSpec] struct {
	*domainkit.Base[string, string, string]
}

func NewEmail[S TextSpec](input string) *Email[S] {
	return &Email[S]{Base: domainkit.NewBase(input, domainkit.Pipeline[string, string, string]{})}
}

func (e *Email[S]) Compare(other *Email[S]) int {
	var spec S
	return compareText(spec.Locale(), e.Inner(), other.Inner())
}

func (e *Email[S]) Equals(other *Email[S]) bool {
	if other == nil {
		return false
	}
	return e.Compare(other) == 0
}

// GetErrors reports text failures first; the address format is only
// checked once those pass.
func (e *Email[S]) GetErrors(name string, _ *Email[S]) []domainkit.ValidationError {
	var spec S
	addr := e.Inner()
	if errs := textFailures[S](spec, name, addr); len(errs) > 0 {
		return report(errs)
	}
	return report(validator.Failures(validator.ValidEmail(name, addr)))
}

func (e *Email[S]) Plain() any {
	return e.Value()
}

// Normalized returns the trimmed, lower-cased address.
func (e *Email[S]) Normalized() string {
	return sanitizer.NormalizeEmail(e.Inner())
}
