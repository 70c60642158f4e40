// Package orderedmap provides a map that remembers insertion order and
// rejects duplicate keys. The attribute-set tables are built on it: rule
// resolution needs by-name lookup, completion needs stable iteration
// order, and the duplicate rejection keeps two rules from silently
// claiming the same attribute name at registry-build time.
package orderedmap

import (
	"errors"
	"iter"
)

var ErrDuplicateEntry = errors.New("duplicate entry")

type Map[K comparable, V any] struct {
	order []K
	keys  map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		keys: make(map[K]V),
	}
}

// Set inserts key. Inserting a key that is already present is an error;
// use Replace to override.
func (m *Map[K, V]) Set(key K, value V) error {
	if _, exists := m.keys[key]; exists {
		return ErrDuplicateEntry
	}
	m.order = append(m.order, key)
	m.keys[key] = value
	return nil
}

// Replace overrides the value for an existing key, keeping its original
// position, or appends it if absent.
func (m *Map[K, V]) Replace(key K, value V) {
	if _, exists := m.keys[key]; !exists {
		m.order = append(m.order, key)
	}
	m.keys[key] = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.keys[key]
	return ok
}

func (m *Map[K, V]) Len() int {
	return len(m.order)
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.order))
	copy(out, m.order)
	return out
}

// Range iterates entries in insertion order.
func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.order {
			if !yield(k, m.keys[k]) {
				break
			}
		}
	}
}
