package domainkit

// Optional is the nullable flavour of any leaf type. An unset Optional
// is valid, sorts after every set value and projects to nil.
type Optional[T Leaf[T]] struct {
	value T
	set   bool
}

// Some wraps a present value.
func Some[T Leaf[T]](v T) *Optional[T] {
	return &Optional[T]{value: v, set: true}
}

// None returns the null value.
func None[T Leaf[T]]() *Optional[T] {
	return &Optional[T]{}
}

func (o *Optional[T]) IsSet() bool {
	return o != nil && o.set
}

// Get returns the wrapped value and whether it is present.
func (o *Optional[T]) Get() (T, bool) {
	if !o.IsSet() {
		var zero T
		return zero, false
	}
	return o.value, true
}

func (o *Optional[T]) Compare(other *Optional[T]) int {
	if !o.IsSet() || !other.IsSet() {
		return CompareNullable(!o.IsSet(), !other.IsSet())
	}
	return o.value.Compare(other.value)
}

func (o *Optional[T]) Equals(other *Optional[T]) bool {
	if other == nil {
		return false
	}
	return o.Compare(other) == 0
}

func (o *Optional[T]) GetErrors(name string, prev *Optional[T]) []ValidationError {
	if !o.IsSet() {
		return nil
	}
	p, _ := prev.Get()
	return o.value.GetErrors(name, p)
}

func (o *Optional[T]) Plain() any {
	if !o.IsSet() {
		return nil
	}
	return o.value.Plain()
}
