package vo

import (
	"strings"

	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/sanitizer"
	"github.com/dmitrymomot/domainkit/pkg/validator"
)

// URL is an absolute URL with a scheme and a host.
type URL[S any] struct {
	*domainkit.Base[string, string, string]
}

func NewURL[S any](input string) *URL[S] {
	return &URL[S]{Base: domainkit.NewBase(input, domainkit.Pipeline[string, string, string]{})}
}

func (u *URL[S]) Compare(other *URL[S]) int {
	return strings.Compare(u.Inner(), other.Inner())
}

func (u *URL[S]) Equals(other *URL[S]) bool {
	if other == nil {
		return false
	}
	return u.Compare(other) == 0
}

func (u *URL[S]) GetErrors(name string, _ *URL[S]) []domainkit.ValidationError {
	return report(validator.Failures(validator.ValidURL(name, u.Inner())))
}

func (u *URL[S]) Plain() any {
	return u.Value()
}

// Normalized returns the URL with a lower-cased host and no bare trailing slash.
func (u *URL[S]) Normalized() string {
	return sanitizer.NormalizeURL(u.Inner())
}
