package domainkit

import (
	"iter"
	"slices"
	"strconv"
)

// Collection is an immutable, ordered sequence of value objects or entities
// of a single kind. The backing slice is copied on construction and never
// exposed.
type Collection[T any] struct {
	items  []T
	equals func(a, b T) bool
	errors func(path string, item, prev T) ValidationErrors
	plain  func(item T) any
	raw    func(item T) any
}

// NewCollection creates a collection of value objects.
func NewCollection[T Leaf[T]](items ...T) *Collection[T] {
	return &Collection[T]{
		items: slices.Clone(items),
		equals: func(a, b T) bool {
			return a.Equals(b)
		},
		errors: func(path string, item, prev T) ValidationErrors {
			return Collect(item.GetErrors(path, prev))
		},
		plain: func(item T) any {
			return item.Plain()
		},
		raw: func(item T) any {
			return item
		},
	}
}

// NewEntityCollection creates a collection of entities. Element failures
// are reported as `field[i].sub`.
func NewEntityCollection[P Props[P]](items ...*Entity[P]) *Collection[*Entity[P]] {
	return &Collection[*Entity[P]]{
		items: slices.Clone(items),
		equals: func(a, b *Entity[P]) bool {
			return a.Equals(b)
		},
		errors: func(path string, item, prev *Entity[P]) ValidationErrors {
			return item.GetErrors(prev).Qualify(path + ".")
		},
		plain: func(item *Entity[P]) any {
			return item.Object()
		},
		raw: func(item *Entity[P]) any {
			return item.PropsMap()
		},
	}
}

// Derive creates a new collection of the same kind holding items.
func (c *Collection[T]) Derive(items ...T) *Collection[T] {
	return &Collection[T]{
		items:  slices.Clone(items),
		equals: c.equals,
		errors: c.errors,
		plain:  c.plain,
		raw:    c.raw,
	}
}

func (c *Collection[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

func (c *Collection[T]) IsEmpty() bool {
	return c.Len() == 0
}

// At returns the element at index i. It panics if i is out of range.
func (c *Collection[T]) At(i int) T {
	return c.items[i]
}

// All iterates elements in construction order.
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range c.Len() {
			if !yield(i, c.items[i]) {
				return
			}
		}
	}
}

// Items returns a copy of the elements.
func (c *Collection[T]) Items() []T {
	if c == nil {
		return nil
	}
	return slices.Clone(c.items)
}

// Find returns the first element satisfying pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	for _, item := range c.All() {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the matching elements in their original order.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	var out []T
	for _, item := range c.All() {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Sorted returns a stably sorted copy; the collection is left untouched.
func (c *Collection[T]) Sorted(compare func(a, b T) int) []T {
	out := c.Items()
	slices.SortStableFunc(out, compare)
	return out
}

// Equals is strict positional equality: same length and every pair equal.
func (c *Collection[T]) Equals(other *Collection[T]) bool {
	if other == nil || c.Len() != other.Len() {
		return false
	}
	for i, item := range c.All() {
		if !c.equals(item, other.items[i]) {
			return false
		}
	}
	return true
}

// GetErrors validates every element under `name[i]`. Each element is
// checked against the first element of prev it Equals, regardless of
// position, so reordering or insertions never pair an element with stale
// state. Returns nil when no element failed.
func (c *Collection[T]) GetErrors(name string, prev *Collection[T]) ValidationErrors {
	var out ValidationErrors
	for i, item := range c.All() {
		errs := c.errors(name+"["+strconv.Itoa(i)+"]", item, c.match(item, prev))
		if errs.IsEmpty() {
			continue
		}
		if out == nil {
			out = NewValidationErrors()
		}
		out.Merge(errs)
	}
	return out
}

func (c *Collection[T]) match(item T, prev *Collection[T]) T {
	for _, candidate := range prev.All() {
		if c.equals(item, candidate) {
			return candidate
		}
	}
	var zero T
	return zero
}

// Plain projects every element to its plain form.
func (c *Collection[T]) Plain() []any {
	if c == nil {
		return nil
	}
	out := make([]any, len(c.items))
	for i, item := range c.items {
		out[i] = c.plain(item)
	}
	return out
}

// Raw projects every element to its instance graph: value objects as
// themselves, entities as their PropsMap.
func (c *Collection[T]) Raw() []any {
	if c == nil {
		return nil
	}
	out := make([]any, len(c.items))
	for i, item := range c.items {
		out[i] = c.raw(item)
	}
	return out
}

// Map projects every element with fn, preserving order.
func Map[T, U any](c *Collection[T], fn func(T) U) []U {
	out := make([]U, 0, c.Len())
	for _, item := range c.All() {
		out = append(out, fn(item))
	}
	return out
}
