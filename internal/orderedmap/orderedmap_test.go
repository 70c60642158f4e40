package orderedmap_test

import (
	"testing"

	"github.com/htmlint/htmlint/internal/orderedmap"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	m := orderedmap.New[string, int]()

	if !assert.NoError(t, m.Set("one", 1)) {
		return
	}
	if !assert.NoError(t, m.Set("two", 2)) {
		return
	}
	assert.ErrorIs(t, m.Set("one", 99), orderedmap.ErrDuplicateEntry)

	v, ok := m.Get("one")
	assert.True(t, ok)
	assert.Equal(t, 1, v, "duplicate Set must not override")

	assert.True(t, m.Has("two"))
	assert.False(t, m.Has("three"))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"one", "two"}, m.Keys())
}

func TestMapReplace(t *testing.T) {
	m := orderedmap.New[string, int]()
	if !assert.NoError(t, m.Set("a", 1)) {
		return
	}
	if !assert.NoError(t, m.Set("b", 2)) {
		return
	}

	m.Replace("a", 10)
	v, _ := m.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, []string{"a", "b"}, m.Keys(), "replacing keeps the original position")

	m.Replace("c", 3)
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys(), "replacing an absent key appends")
}

func TestMapRange(t *testing.T) {
	m := orderedmap.New[string, int]()
	for i, k := range []string{"x", "y", "z"} {
		if !assert.NoError(t, m.Set(k, i)) {
			return
		}
	}
	var keys []string
	var vals []int
	for k, v := range m.Range() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	assert.Equal(t, []string{"x", "y", "z"}, keys)
	assert.Equal(t, []int{0, 1, 2}, vals)
}
