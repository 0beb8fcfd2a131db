package domainkit

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
)

// FrozenList is a read-only view over a private copy of a slice.
type FrozenList[T any] struct {
	items []T
}

// FreezeList copies items into a FrozenList.
func FreezeList[T any](items []T) FrozenList[T] {
	return FrozenList[T]{items: slices.Clone(items)}
}

func (l FrozenList[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i. It panics if i is out of range.
func (l FrozenList[T]) At(i int) T {
	return l.items[i]
}

func (l FrozenList[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

// Slice returns a mutable copy.
func (l FrozenList[T]) Slice() []T {
	return slices.Clone(l.items)
}

// FrozenMap is a read-only view over a private copy of a map.
type FrozenMap[K comparable, V any] struct {
	m map[K]V
}

// FreezeMap copies m into a FrozenMap. A nil map freezes to an empty view.
func FreezeMap[K comparable, V any](m map[K]V) FrozenMap[K, V] {
	return FrozenMap[K, V]{m: maps.Clone(m)}
}

func (m FrozenMap[K, V]) Len() int {
	return len(m.m)
}

func (m FrozenMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.m[key]
	return v, ok
}

func (m FrozenMap[K, V]) Has(key K) bool {
	_, ok := m.m[key]
	return ok
}

func (m FrozenMap[K, V]) All() iter.Seq2[K, V] {
	return maps.All(m.m)
}

// Map returns a mutable shallow copy.
func (m FrozenMap[K, V]) Map() map[K]V {
	return maps.Clone(m.m)
}

// Freeze converts a decoded JSON-like tree into read-only views:
// every map with string-like keys becomes FrozenMap[string, any] and every
// slice or array becomes FrozenList[any], recursively. Typed containers
// such as []string or map[string]int are converted too, so the result
// shares no memory with v. Maps with other key kinds are keyed by the
// fmt rendering of the key. Nil containers freeze to nil; other values
// are returned as-is.
func Freeze(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		if t == nil {
			return nil
		}
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = Freeze(item)
		}
		return FrozenMap[string, any]{m: out}
	case []any:
		if t == nil {
			return nil
		}
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Freeze(item)
		}
		return FrozenList[any]{items: out}
	case FrozenMap[string, any], FrozenList[any]:
		return Freeze(Thaw(t))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		entries := rv.MapRange()
		for entries.Next() {
			out[mapKey(entries.Key())] = Freeze(entries.Value().Interface())
		}
		return FrozenMap[string, any]{m: out}
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		return freezeSequence(rv)
	case reflect.Array:
		return freezeSequence(rv)
	default:
		return v
	}
}

func freezeSequence(rv reflect.Value) FrozenList[any] {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = Freeze(rv.Index(i).Interface())
	}
	return FrozenList[any]{items: out}
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

// Thaw reverses Freeze, producing fresh map[string]any and []any values.
func Thaw(v any) any {
	switch t := v.(type) {
	case FrozenMap[string, any]:
		out := make(map[string]any, len(t.m))
		for k, item := range t.m {
			out[k] = Thaw(item)
		}
		return out
	case FrozenList[any]:
		out := make([]any, len(t.items))
		for i, item := range t.items {
			out[i] = Thaw(item)
		}
		return out
	default:
		return v
	}
}
