package domainkit

// FieldKind tells which of the three child kinds a field holds.
type FieldKind int

const (
	KindValue FieldKind = iota + 1
	KindEntity
	KindCollection
)

func (k FieldKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindEntity:
		return "entity"
	case KindCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// Field is one entry of an entity's declared field table. Build it with
// ValueField, EntityField or CollectionField; a nil child yields an unset
// field that contributes no errors and projects to nil.
type Field struct {
	name   string
	kind   FieldKind
	value  any
	errors func(prev any) ValidationErrors
	object func() any
	props  func() any
}

func (f Field) Name() string {
	return f.name
}

func (f Field) Kind() FieldKind {
	return f.kind
}

// Value returns the child instance, or nil when unset.
func (f Field) Value() any {
	return f.value
}

func (f Field) IsSet() bool {
	return f.value != nil
}

// Fields is an entity's field table in declaration order.
type Fields []Field

// Lookup finds a field by name.
func (fs Fields) Lookup(name string) (Field, bool) {
	for _, f := range fs {
		if f.name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Names lists field names in declaration order.
func (fs Fields) Names() []string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.name
	}
	return names
}

// ValueField declares a value object field. T must be a pointer type so
// that a nil T can stand for an unset optional field.
func ValueField[V any, T interface {
	*V
	Leaf[T]
}](name string, v T) Field {
	f := Field{name: name, kind: KindValue}
	if v == nil {
		return f
	}
	f.value = v
	f.errors = func(prev any) ValidationErrors {
		p, _ := prev.(T)
		return Collect(v.GetErrors(name, p))
	}
	f.object = func() any { return v.Plain() }
	f.props = func() any { return v }
	return f
}

// EntityField declares a nested entity field. Its failures are reported
// as `name.sub`.
func EntityField[P Props[P]](name string, e *Entity[P]) Field {
	f := Field{name: name, kind: KindEntity}
	if e == nil {
		return f
	}
	f.value = e
	f.errors = func(prev any) ValidationErrors {
		p, _ := prev.(*Entity[P])
		return e.GetErrors(p).Qualify(name + ".")
	}
	f.object = func() any { return e.Object() }
	f.props = func() any { return e.PropsMap() }
	return f
}

// CollectionField declares a collection field. Its failures are reported
// as `name[i]` or `name[i].sub`.
func CollectionField[T any](name string, c *Collection[T]) Field {
	f := Field{name: name, kind: KindCollection}
	if c == nil {
		return f
	}
	f.value = c
	f.errors = func(prev any) ValidationErrors {
		p, _ := prev.(*Collection[T])
		return c.GetErrors(name, p)
	}
	f.object = func() any { return c.Plain() }
	f.props = func() any { return c.Raw() }
	return f
}
