package domainkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/domainkit"
)

func TestFreezeList(t *testing.T) {
	src := []int{1, 2, 3}
	l := domainkit.FreezeList(src)
	src[0] = 9

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.At(0))

	out := l.Slice()
	out[1] = 9
	assert.Equal(t, 2, l.At(1))
}

func TestFreezeMap(t *testing.T) {
	src := map[string]int{"a": 1}
	m := domainkit.FreezeMap(src)
	src["a"] = 2
	src["b"] = 3

	assert.Equal(t, 1, m.Len())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.False(t, m.Has("b"))

	out := m.Map()
	out["c"] = 4
	assert.False(t, m.Has("c"))

	assert.Equal(t, 0, domainkit.FreezeMap[string, int](nil).Len())
}

func TestFreezeThaw(t *testing.T) {
	tree := map[string]any{
		"name": "x",
		"tags": []any{"a", map[string]any{"k": 1}},
	}

	frozen := domainkit.Freeze(tree)
	fm, ok := frozen.(domainkit.FrozenMap[string, any])
	require.True(t, ok)

	tags, ok := fm.Get("tags")
	require.True(t, ok)
	fl, ok := tags.(domainkit.FrozenList[any])
	require.True(t, ok)
	_, ok = fl.At(1).(domainkit.FrozenMap[string, any])
	assert.True(t, ok, "freezing is recursive")

	tree["name"] = "changed"
	tree["tags"].([]any)[0] = "changed"

	thawed := domainkit.Thaw(frozen)
	assert.Equal(t, map[string]any{
		"name": "x",
		"tags": []any{"a", map[string]any{"k": 1}},
	}, thawed)

	assert.Equal(t, 42, domainkit.Freeze(42))
	assert.Equal(t, "s", domainkit.Thaw("s"))
}

func TestFreezeTypedContainers(t *testing.T) {
	names := []string{"a", "b"}
	scores := map[string]int{"a": 1}
	byID := map[int]string{7: "seven"}
	var empty []string

	frozen := domainkit.Freeze(map[string]any{
		"names":  names,
		"scores": scores,
		"by_id":  byID,
		"pair":   [2]int{1, 2},
		"empty":  empty,
	})

	names[0] = "changed"
	scores["a"] = 9

	assert.Equal(t, map[string]any{
		"names":  []any{"a", "b"},
		"scores": map[string]any{"a": 1},
		"by_id":  map[string]any{"7": "seven"},
		"pair":   []any{1, 2},
		"empty":  nil,
	}, domainkit.Thaw(frozen))
}

func TestFreezeRefreezesFrozenViews(t *testing.T) {
	tags := []string{"a"}
	view := domainkit.FreezeMap(map[string]any{"tags": tags})

	frozen := domainkit.Freeze(view)
	tags[0] = "changed"

	assert.Equal(t, map[string]any{"tags": []any{"a"}}, domainkit.Thaw(frozen))
}
