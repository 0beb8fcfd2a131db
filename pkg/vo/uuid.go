package vo

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/validator"
)

// UUID is a non-nil RFC 4122 identifier given in canonical text form.
type UUID[S any] struct {
	*domainkit.Base[string, string, uuid.UUID]
}

func NewUUID[S any](input string) *UUID[S] {
	return &UUID[S]{Base: domainkit.NewBase(input, domainkit.Pipeline[string, string, uuid.UUID]{
		FromInput: func(in string) string {
			return strings.ToLower(strings.TrimSpace(in))
		},
		ToOutput: func(inner string) (uuid.UUID, error) {
			id, err := uuid.Parse(inner)
			if err != nil {
				return uuid.Nil, domainkit.NewInvalidValueError("uuid", err.Error())
			}
			return id, nil
		},
	})}
}

// GenerateUUID returns a fresh time-ordered (version 7) UUID.
func GenerateUUID[S any]() *UUID[S] {
	return NewUUID[S](uuid.Must(uuid.NewV7()).String())
}

func (u *UUID[S]) Compare(other *UUID[S]) int {
	return strings.Compare(u.Inner(), other.Inner())
}

func (u *UUID[S]) Equals(other *UUID[S]) bool {
	if other == nil {
		return false
	}
	return u.Compare(other) == 0
}

func (u *UUID[S]) GetErrors(name string, _ *UUID[S]) []domainkit.ValidationError {
	return report(validator.Failures(validator.ValidUUID(name, u.Inner())))
}

// Plain returns the canonical text form.
func (u *UUID[S]) Plain() any {
	return u.Inner()
}
