package vo

import (
	"strings"

	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/validator"
)

// FlagSpec declares the allowed members of a Flag.
type FlagSpec interface {
	FlagTypes() []string
}

// Flag is one member of a closed set of string constants.
type Flag[S FlagSpec] struct {
	*domainkit.Base[string, string, string]
}

func NewFlag[S FlagSpec](input string) *Flag[S] {
	return &Flag[S]{Base: domainkit.NewBase(input, domainkit.Pipeline[string, string, string]{})}
}

// Is reports whether the flag holds member.
func (f *Flag[S]) Is(member string) bool {
	return f.Inner() == member
}

func (f *Flag[S]) Compare(other *Flag[S]) int {
	return strings.Compare(f.Inner(), other.Inner())
}

func (f *Flag[S]) Equals(other *Flag[S]) bool {
	if other == nil {
		return false
	}
	return f.Compare(other) == 0
}

func (f *Flag[S]) GetErrors(name string, _ *Flag[S]) []domainkit.ValidationError {
	var spec S
	return report(validator.Failures(validator.DefinedFlag(name, f.Inner(), spec.FlagTypes())))
}

func (f *Flag[S]) Plain() any {
	return f.Value()
}

func (f *Flag[S]) String() string {
	return f.Inner()
}
