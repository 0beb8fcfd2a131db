package vo

import (
	"encoding/json"
	"strings"

	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/validator"
)

// ObjectSpec configures an Object leaf. Validate reports failures with
// names relative to the object; they are qualified with the field name.
type ObjectSpec interface {
	RequiredKeys() []string
	Validate(obj domainkit.FrozenMap[string, any]) []domainkit.ValidationError
}

// ObjectDefaults accepts any object.
type ObjectDefaults struct{}

func (ObjectDefaults) RequiredKeys() []string { return nil }

func (ObjectDefaults) Validate(domainkit.FrozenMap[string, any]) []domainkit.ValidationError {
	return nil
}

// Object is an opaque JSON-like document. A nil input is the null object,
// which is always valid. Nested maps and slices are frozen.
type Object[S ObjectSpec] struct {
	*domainkit.Base[map[string]any, any, domainkit.FrozenMap[string, any]]
}

func NewObject[S ObjectSpec](input map[string]any) *Object[S] {
	return &Object[S]{Base: domainkit.NewBase(input, domainkit.Pipeline[map[string]any, any, domainkit.FrozenMap[string, any]]{
		FromInput: func(in map[string]any) any {
			if in == nil {
				return nil
			}
			return domainkit.Freeze(in)
		},
		ToOutput: func(inner any) (domainkit.FrozenMap[string, any], error) {
			m, _ := inner.(domainkit.FrozenMap[string, any])
			return m, nil
		},
	})}
}

// IsNull reports whether the object was given as nil.
func (o *Object[S]) IsNull() bool {
	return o.Inner() == nil
}

// Compare orders by the JSON encoding. Null sorts last.
func (o *Object[S]) Compare(other *Object[S]) int {
	if o.IsNull() || other.IsNull() {
		return domainkit.CompareNullable(o.IsNull(), other.IsNull())
	}
	return strings.Compare(o.encoded(), other.encoded())
}

func (o *Object[S]) Equals(other *Object[S]) bool {
	if other == nil {
		return false
	}
	return o.Compare(other) == 0
}

// GetErrors reports a missing or null required key as `name.key`, then
// appends the spec's own failures qualified as `name.sub`.
func (o *Object[S]) GetErrors(name string, _ *Object[S]) []domainkit.ValidationError {
	if o.IsNull() {
		return nil
	}

	var spec S
	obj := o.Value()

	var rules []validator.Rule
	for _, key := range spec.RequiredKeys() {
		v, ok := obj.Get(key)
		rules = append(rules, validator.Rule{
			Check: func() bool { return ok && v != nil },
			Error: validator.ValidationError{
				Field:   name + "." + key,
				Message: "field is required",
				Code:    "validation.required",
			},
		})
	}

	out := report(validator.Failures(rules...))
	for _, e := range spec.Validate(obj) {
		out = append(out, domainkit.ValidationError{Name: name + "." + e.Name, Message: e.Message})
	}
	return out
}

// Plain returns a mutable deep copy, or nil for the null object.
func (o *Object[S]) Plain() any {
	if o.IsNull() {
		return nil
	}
	return domainkit.Thaw(o.Inner())
}

func (o *Object[S]) encoded() string {
	b, err := json.Marshal(domainkit.Thaw(o.Inner()))
	if err != nil {
		return ""
	}
	return string(b)
}
