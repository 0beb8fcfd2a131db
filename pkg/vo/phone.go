package vo

import (
	"strings"

	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/sanitizer"
	"github.com/dmitrymomot/domainkit/pkg/validator"
)

// Phone is a phone number kept as typed, minus surrounding whitespace.
type Phone[S any] struct {
	*domainkit.Base[string, string, string]
}

func NewPhone[S any](input string) *Phone[S] {
	return &Phone[S]{Base: domainkit.NewBase(input, domainkit.Pipeline[string, string, string]{
		FromInput: strings.TrimSpace,
	})}
}

func (p *Phone[S]) Compare(other *Phone[S]) int {
	return strings.Compare(p.Inner(), other.Inner())
}

func (p *Phone[S]) Equals(other *Phone[S]) bool {
	if other == nil {
		return false
	}
	return p.Compare(other) == 0
}

func (p *Phone[S]) GetErrors(name string, _ *Phone[S]) []domainkit.ValidationError {
	phone := p.Inner()
	return report(validator.FirstFailure(
		validator.RequiredPhone(name, phone),
		validator.ValidPhone(name, phone),
	))
}

func (p *Phone[S]) Plain() any {
	return p.Value()
}

// Normalized strips spaces, dashes and parentheses, keeping a leading '+'.
func (p *Phone[S]) Normalized() string {
	return sanitizer.NormalizePhone(p.Inner())
}
