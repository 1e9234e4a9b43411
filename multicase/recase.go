package multicase

import (
	"fmt"

	"github.com/erraggy/keycase/keyerrors"
	"github.com/erraggy/keycase/naming"
)

// ReCase returns a new plain Map tree built from d's current data with h
// applied to every key, following the same collision rule as New: the first
// entry to produce a key wins. The source document is not consulted, so a
// Dict can be emitted in any convention after it is built.
//
// A nil h keeps the keys as they are.
func (d *Dict) ReCase(h naming.Handler) *Map {
	if h == nil {
		h = func(s string) string { return s }
	}
	return recaseMapping(d, h)
}

// ReCaseStyle is ReCase with the handler of a named style.
func (d *Dict) ReCaseStyle(style naming.Style) (*Map, error) {
	if !style.IsValid() {
		return nil, fmt.Errorf("multicase: %w", &keyerrors.ConfigError{Option: "style", Value: int(style), Message: "unknown style"})
	}
	return d.ReCase(style.Handler()), nil
}

// SnakeCase returns the data with snake_case keys.
func (d *Dict) SnakeCase() *Map { return d.ReCase(naming.ToSnakeCase) }

// CamelCase returns the data with camelCase keys.
func (d *Dict) CamelCase() *Map { return d.ReCase(naming.ToCamelCase) }

// PascalCase returns the data with PascalCase keys.
func (d *Dict) PascalCase() *Map { return d.ReCase(naming.ToPascalCase) }

// KebabCase returns the data with kebab-case keys.
func (d *Dict) KebabCase() *Map { return d.ReCase(naming.ToKebabCase) }

// ConstantCase returns the data with CONSTANT_CASE keys.
func (d *Dict) ConstantCase() *Map { return d.ReCase(naming.ToConstantCase) }

// ToMap returns the data as a plain Map with the cased keys unchanged.
func (d *Dict) ToMap() *Map { return d.ReCase(nil) }

// UserCase returns the data under the original source keys, recovered
// through the reverse map of every level. Values replaced with Set appear
// under the key they replaced.
func (d *Dict) UserCase() *Map {
	out := NewMap(d.Len())
	for k, v := range d.All() {
		out.Set(d.reverse[k], userCaseValue(v))
	}
	return out
}

func userCaseValue(v Value) Value {
	switch tv := v.(type) {
	case *Dict:
		return tv.UserCase()
	case List:
		out := make(List, len(tv))
		for i, item := range tv {
			out[i] = userCaseValue(item)
		}
		return out
	default:
		return v
	}
}

func recaseMapping(src Value, h naming.Handler) *Map {
	seq, size, _ := entries(src)
	out := NewMap(size)
	if seq == nil {
		return out
	}
	for k, v := range seq {
		cased := h(k)
		if _, dup := out.Get(cased); dup {
			continue
		}
		out.Set(cased, recaseValue(v, h))
	}
	return out
}

func recaseValue(v Value, h naming.Handler) Value {
	switch tv := v.(type) {
	case *Map, *Dict:
		return recaseMapping(tv, h)
	case List:
		out := make(List, len(tv))
		for i, item := range tv {
			out[i] = recaseValue(item, h)
		}
		return out
	default:
		return v
	}
}

// ReCase returns a copy of m with h applied to every key at every depth,
// first entry winning on collision. A nil h copies the tree unchanged.
// A cyclic or too deeply nested m is rejected as by Check.
func (m *Map) ReCase(h naming.Handler) (*Map, error) {
	if err := Check(m, DefaultMaxDepth); err != nil {
		return nil, fmt.Errorf("multicase: %w", err)
	}
	if h == nil {
		h = func(s string) string { return s }
	}
	return recaseMapping(m, h), nil
}
