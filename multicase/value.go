package multicase

import (
	"iter"
	"slices"
)

// Value is one node of a nested document. The set of implementations is
// closed:
//
//   - [Scalar]: a leaf holding any Go value (string, number, bool, nil, ...)
//   - [List]: an ordered sequence of Values
//   - [*Map]: an ordered mapping with string keys
//   - [*Dict]: a mapping whose keys have been rewritten by a case handler
type Value interface {
	isValue()
}

// Scalar is a leaf value. It is passed through every transformation as is.
type Scalar struct {
	v any
}

// ScalarOf wraps v as a Scalar.
func ScalarOf(v any) Scalar {
	return Scalar{v: v}
}

// Null is the Scalar holding nil.
var Null = Scalar{}

// Interface returns the wrapped Go value.
func (s Scalar) Interface() any {
	return s.v
}

// List is an ordered sequence of Values.
type List []Value

// Pair is one key/value entry of a Map.
type Pair struct {
	Key   string
	Value Value
}

// Map is a mapping from string keys to Values that remembers insertion
// order. The zero value and a nil *Map are empty maps; a nil *Map cannot be
// written to.
type Map struct {
	keys  []string
	items map[string]Value
}

// NewMap returns an empty Map with room for size entries.
func NewMap(size int) *Map {
	return &Map{
		keys:  make([]string, 0, size),
		items: make(map[string]Value, size),
	}
}

// MapOf builds a Map from pairs. A repeated key keeps its first position and
// takes the last value, like a literal in most data formats.
func MapOf(pairs ...Pair) *Map {
	m := NewMap(len(pairs))
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

func (Scalar) isValue() {}
func (List) isValue()   {}
func (*Map) isValue()   {}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return []string{}
	}
	return slices.Clone(m.keys)
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.items[key]
	return v, ok
}

// Set stores v under key. A new key is appended; an existing key keeps its
// position. A nil v is stored as Null.
func (m *Map) Set(key string, v Value) {
	if v == nil {
		v = Null
	}
	if m.items == nil {
		m.items = make(map[string]Value)
	}
	if _, exists := m.items[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.items[key] = v
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.items[key]; !ok {
		return false
	}
	delete(m.items, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
	return true
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.items[k]) {
				return
			}
		}
	}
}

// HasExactKeys reports whether the set of keys in m is exactly keys,
// ignoring order. It is the shape check used to recognise a known record
// type in loosely typed input.
func (m *Map) HasExactKeys(keys ...string) bool {
	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	if len(want) != m.Len() {
		return false
	}
	for k := range want {
		if _, ok := m.Get(k); !ok {
			return false
		}
	}
	return true
}
