package domainkit

// Props is implemented by the field struct of a concrete entity.
//
// Fields declares the entity's children explicitly, in the order they are
// validated and projected. Equals defines the entity's identity, usually
// by comparing one or more designated id fields.
//
// Props structs are copied by value on Update, so they should hold only
// pointers to value objects, entities and collections, never slices or maps.
type Props[P any] interface {
	Fields() Fields
	Equals(other P) bool
}

// Lifecycle records how an entity instance came to be.
type Lifecycle int

const (
	Reconstructed Lifecycle = iota
	Created
	Updated
)

func (l Lifecycle) String() string {
	switch l {
	case Created:
		return "created"
	case Updated:
		return "updated"
	default:
		return "reconstructed"
	}
}

// Override changes one or more fields of a props copy during Update.
type Override[P any] func(*P)

// Entity is an immutable composite of named fields. Instances are only
// obtained through Create, Reconstruct and Update.
type Entity[P Props[P]] struct {
	props     P
	lifecycle Lifecycle
}

// Create builds an entity from fresh props and validates it with no prior
// state. On failure no instance is returned.
func Create[P Props[P]](props P) (*Entity[P], error) {
	e := &Entity[P]{props: props, lifecycle: Created}
	if err := e.Validate(nil); err != nil {
		return nil, err
	}
	return e, nil
}

// Reconstruct builds an entity without validating it. Use it for state
// that is already known to be valid, such as rows loaded from storage.
func Reconstruct[P Props[P]](props P) *Entity[P] {
	return &Entity[P]{props: props, lifecycle: Reconstructed}
}

// Update builds a new entity from target's props with overrides applied,
// then validates it using target as the previous state. target is never
// modified; on failure no instance is returned.
func Update[P Props[P]](target *Entity[P], overrides ...Override[P]) (*Entity[P], error) {
	if target == nil {
		return nil, invalidUsage("update requires a target entity")
	}

	props := target.props
	for _, override := range overrides {
		if override != nil {
			override(&props)
		}
	}

	e := &Entity[P]{props: props, lifecycle: Updated}
	if err := e.Validate(target); err != nil {
		return nil, err
	}
	return e, nil
}

// Props returns a copy of the entity's field struct.
func (e *Entity[P]) Props() P {
	return e.props
}

func (e *Entity[P]) Lifecycle() Lifecycle {
	return e.lifecycle
}

// Fields returns the declared field table.
func (e *Entity[P]) Fields() Fields {
	return e.props.Fields()
}

// Get returns the child stored under key. The boolean is false for an
// undeclared key; a declared but unset field returns (nil, true).
func (e *Entity[P]) Get(key string) (any, bool) {
	f, ok := e.props.Fields().Lookup(key)
	if !ok {
		return nil, false
	}
	return f.value, true
}

// Equals compares identity as defined by the props type.
func (e *Entity[P]) Equals(other *Entity[P]) bool {
	if other == nil {
		return false
	}
	return e.props.Equals(other.props)
}

// GetErrors walks every set field and aggregates failures into one map:
// value objects under their field name, nested entities under
// `field.sub`, collections under `field[i]`. When prev is given, each
// child is validated against prev's child of the same name.
func (e *Entity[P]) GetErrors(prev *Entity[P]) ValidationErrors {
	errs := NewValidationErrors()

	var prevFields Fields
	if prev != nil {
		prevFields = prev.props.Fields()
	}

	for _, f := range e.props.Fields() {
		if !f.IsSet() {
			continue
		}
		var prevValue any
		if pf, ok := prevFields.Lookup(f.name); ok {
			prevValue = pf.value
		}
		errs.Merge(f.errors(prevValue))
	}

	return errs
}

// Validate returns a *ValidationFailure when GetErrors(prev) is not empty.
func (e *Entity[P]) Validate(prev *Entity[P]) error {
	errs := e.GetErrors(prev)
	if errs.IsEmpty() {
		return nil
	}
	return NewValidationFailure(errs)
}

// Object projects the entity to plain data: value objects become their
// values, nested entities recurse and collections become slices. Unset
// fields are present with a nil value.
func (e *Entity[P]) Object() map[string]any {
	fields := e.props.Fields()
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if !f.IsSet() {
			out[f.name] = nil
			continue
		}
		out[f.name] = f.object()
	}
	return out
}

// PropsMap projects the entity to its instance graph: value objects stay
// as instances, nested entities recurse and collections become slices of
// their elements' projections. Unset fields are present with a nil value.
func (e *Entity[P]) PropsMap() map[string]any {
	fields := e.props.Fields()
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if !f.IsSet() {
			out[f.name] = nil
			continue
		}
		out[f.name] = f.props()
	}
	return out
}
