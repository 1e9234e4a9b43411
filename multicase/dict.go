package multicase

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/erraggy/keycase/keyerrors"
	"github.com/erraggy/keycase/naming"
)

// Dict is a mapping whose keys were rewritten by a case handler, together
// with the reverse map from every cased key to the source key it came from.
//
// Nested mappings are themselves Dicts, each with its own reverse map, and
// sequences hold Scalars, Lists and Dicts only. A Dict is never modified
// after it is built; Set returns a new Dict.
//
// A Dict should come from New. The zero value is an empty Dict that keeps
// keys as they are and rejects Set on every key.
type Dict struct {
	handler    naming.Handler
	cfg        *config
	keys       []string
	values     map[string]Value
	reverse    map[string]string
	collisions []Collision
}

func (*Dict) isValue() {}

// Collision records a source entry that was dropped because its key cased to
// the same key as an earlier entry at the same level.
type Collision struct {
	// Key is the source key of the dropped entry
	Key string
	// CasedKey is the key both entries cased to
	CasedKey string
	// KeptKey is the source key of the entry that was kept
	KeptKey string
}

// New builds a Dict from source by applying h to every key at every depth,
// including mappings inside sequences.
//
// Entries are visited in source order. When a key cases to a key that was
// already produced at the same level, the entry is dropped and recorded as a
// Collision: the first entry wins and nothing is merged. A nil or empty
// source yields an empty Dict.
//
// The source must be a finite tree. A mapping reachable from itself fails
// with a *keyerrors.CycleError, and nesting beyond the configured depth fails
// with a *keyerrors.ResourceLimitError.
func New(source *Map, h naming.Handler, opts ...Option) (*Dict, error) {
	if h == nil {
		return nil, fmt.Errorf("multicase: %w", &keyerrors.ConfigError{Option: "handler", Message: "case handler is required"})
	}
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("multicase: invalid options: %w", err)
	}

	d, err := newBuilder(h, cfg).dict(source, "", 0)
	if err != nil {
		return nil, fmt.Errorf("multicase: %w", err)
	}
	cfg.logger.Debug("multicase: built dictionary", "keys", d.Len(), "collisions", len(d.collisions))
	return d, nil
}

// NewFromGo converts src with FromGo and builds a Dict from it.
// Go maps carry no order, so keys are visited in sorted order.
func NewFromGo(src map[string]any, h naming.Handler, opts ...Option) (*Dict, error) {
	m, _ := FromGo(src).(*Map)
	return New(m, h, opts...)
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the cased keys in source order.
func (d *Dict) Keys() []string {
	if d == nil {
		return []string{}
	}
	return slices.Clone(d.keys)
}

// Get returns the value stored under an already cased key.
func (d *Dict) Get(casedKey string) (Value, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[casedKey]
	return v, ok
}

// Lookup applies the Dict's handler to key and returns the value stored
// under the result, so any spelling of a key finds its entry.
func (d *Dict) Lookup(key string) (Value, bool) {
	if d == nil {
		return nil, false
	}
	return d.Get(d.casing()(key))
}

// Original returns the source key that casedKey was derived from.
func (d *Dict) Original(casedKey string) (string, bool) {
	if d == nil {
		return "", false
	}
	k, ok := d.reverse[casedKey]
	return k, ok
}

// ReverseMap returns a copy of the map from cased key to source key for
// this level.
func (d *Dict) ReverseMap() map[string]string {
	if d == nil {
		return map[string]string{}
	}
	return maps.Clone(d.reverse)
}

// Collisions returns the entries dropped at this level while building.
func (d *Dict) Collisions() []Collision {
	if d == nil {
		return nil
	}
	return slices.Clone(d.collisions)
}

// Handler returns the case handler the Dict was built with.
func (d *Dict) Handler() naming.Handler {
	if d == nil {
		return nil
	}
	return d.handler
}

// All iterates over the entries in source order.
func (d *Dict) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if d == nil {
			return
		}
		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// Set returns a copy of d with value stored under the cased form of key.
// The value is cased with the same handler before it is stored.
//
// The cased key must already be present: updating a key that was never part
// of the source fails with a *keyerrors.LookupError unless the Dict was
// built WithInsertUnknownKeys(true), in which case the entry is appended and
// key is recorded in the reverse map.
func (d *Dict) Set(key string, value Value) (*Dict, error) {
	if d == nil {
		return nil, fmt.Errorf("multicase: set on nil dictionary")
	}
	h, cfg := d.casing(), d.settings()
	cased := h(key)
	_, known := d.reverse[cased]
	if !known && !cfg.insertUnknownKeys {
		return nil, fmt.Errorf("multicase: %w", &keyerrors.LookupError{Key: key, CasedKey: cased})
	}

	v, err := newBuilder(h, cfg).value(value, cased, 1)
	if err != nil {
		return nil, fmt.Errorf("multicase: %w", err)
	}

	out := d.clone()
	if !known {
		out.keys = append(out.keys, cased)
		out.reverse[cased] = key
		cfg.logger.Debug("multicase: inserted key", "key", key, "cased", cased)
	}
	out.values[cased] = v
	return out, nil
}

// casing returns the handler, or the identity for a zero Dict.
func (d *Dict) casing() naming.Handler {
	if d.handler == nil {
		return func(s string) string { return s }
	}
	return d.handler
}

func (d *Dict) settings() *config {
	if d.cfg == nil {
		return defaultConfig()
	}
	return d.cfg
}

func (d *Dict) clone() *Dict {
	out := &Dict{
		handler:    d.handler,
		cfg:        d.cfg,
		keys:       slices.Clone(d.keys),
		values:     maps.Clone(d.values),
		reverse:    maps.Clone(d.reverse),
		collisions: slices.Clone(d.collisions),
	}
	if out.values == nil {
		out.values = make(map[string]Value)
	}
	if out.reverse == nil {
		out.reverse = make(map[string]string)
	}
	return out
}
