package vo

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/validator"
)

// TextSpec configures a Text leaf. A zero length bound means no bound.
type TextSpec interface {
	MinLength() int
	MaxLength() int
	Locale() language.Tag
}

// TextDefaults is an unbounded text spec collated with root rules.
type TextDefaults struct{}

func (TextDefaults) MinLength() int       { return 0 }
func (TextDefaults) MaxLength() int       { return 0 }
func (TextDefaults) Locale() language.Tag { return language.Und }

// Text is a required string with optional length bounds.
// Lengths are counted in characters.
type Text[S TextSpec] struct {
	*domainkit.Base[string, string, string]
}

func NewText[S TextSpec](input string) *Text[S] {
	return &Text[S]{Base: domainkit.NewBase(input, domainkit.Pipeline[string, string, string]{})}
}

func (t *Text[S]) Compare(other *Text[S]) int {
	var spec S
	return compareText(spec.Locale(), t.Inner(), other.Inner())
}

func (t *Text[S]) Equals(other *Text[S]) bool {
	if other == nil {
		return false
	}
	return t.Compare(other) == 0
}

func (t *Text[S]) GetErrors(name string, _ *Text[S]) []domainkit.ValidationError {
	var spec S
	return report(textFailures[S](spec, name, t.Inner()))
}

func (t *Text[S]) Plain() any {
	return t.Value()
}

func (t *Text[S]) String() string {
	return t.Inner()
}

func textFailures[S TextSpec](spec S, name, text string) validator.ValidationErrors {
	return validator.FirstFailure(
		validator.Required(name, text),
		validator.When(spec.MinLength() > 0, validator.MinLen(name, text, spec.MinLength())),
		validator.When(spec.MaxLength() > 0, validator.MaxLen(name, text, spec.MaxLength())),
	)
}
