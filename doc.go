// Package domainkit provides typed building blocks for domain models:
// value objects, entities and collections that validate themselves into a
// single map of field-path keyed error messages.
//
// # Value objects
//
// A value object derives up to three representations from its raw input:
// the input itself, an inner form used for validation and comparison, and
// the public output. Embed *Base to get lazy, memoized derivation:
//
//	type Code struct {
//		*domainkit.Base[string, string, string]
//	}
//
//	func NewCode(s string) *Code {
//		return &Code{Base: domainkit.NewBase(s, domainkit.Pipeline[string, string, string]{
//			FromInput: strings.TrimSpace,
//		})}
//	}
//
// and implement Leaf: Compare, Equals, GetErrors and Plain. Ready-made leaf
// types live in pkg/vo.
//
// # Entities
//
// An entity is a props struct listing its children through Fields:
//
//	func (p OrderProps) Fields() domainkit.Fields {
//		return domainkit.Fields{
//			domainkit.ValueField("ref", p.Ref),
//			domainkit.EntityField("customer", p.Customer),
//			domainkit.CollectionField("lines", p.Lines),
//		}
//	}
//
// Instances are obtained through Create (validated), Reconstruct (trusted
// state, not validated) and Update (copy with overrides, validated against
// the previous instance). Failures are returned as *ValidationFailure:
//
//	order, err := domainkit.Create(props)
//	if errs := domainkit.ExtractValidationErrors(err); errs != nil {
//		// errs["lines[2].qty"] == []string{"must be at least 1"}
//	}
//
// Error paths are `field` for value objects, `field.sub` for nested
// entities, `field[i]` for collection elements and `field[i].sub` for
// entities inside collections.
//
// # Projections
//
// Object returns plain data suitable for encoding, with unset fields
// present as nil. PropsMap returns the same shape holding the child
// instances instead of their values.
package domainkit
