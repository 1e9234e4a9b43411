package multicase

import (
	"iter"
	"reflect"
	"slices"
)

// FromGo converts plain Go data into a Value.
//
// map[string]any and map[string]string become *Map with keys in sorted
// order, since Go maps have no order of their own. []any, []map[string]any
// and []string become List. Values that already implement Value are returned
// unchanged, nil becomes Null, and anything else is wrapped as a Scalar.
func FromGo(v any) Value {
	switch tv := v.(type) {
	case nil:
		return Null
	case Value:
		return tv
	case map[string]any:
		keys := sortedKeys(tv)
		m := NewMap(len(keys))
		for _, k := range keys {
			m.Set(k, FromGo(tv[k]))
		}
		return m
	case map[string]string:
		keys := sortedKeys(tv)
		m := NewMap(len(keys))
		for _, k := range keys {
			m.Set(k, ScalarOf(tv[k]))
		}
		return m
	case []any:
		out := make(List, len(tv))
		for i, item := range tv {
			out[i] = FromGo(item)
		}
		return out
	case []map[string]any:
		out := make(List, len(tv))
		for i, item := range tv {
			out[i] = FromGo(item)
		}
		return out
	case []string:
		out := make(List, len(tv))
		for i, item := range tv {
			out[i] = ScalarOf(item)
		}
		return out
	default:
		return ScalarOf(v)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ToGo converts a Value into plain Go data: mappings become map[string]any,
// sequences []any, and Scalars their wrapped value. Key order is lost.
// v must be acyclic; see Check.
func ToGo(v Value) any {
	switch tv := v.(type) {
	case Scalar:
		return tv.v
	case List:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = ToGo(item)
		}
		return out
	case *Map, *Dict:
		seq, size, _ := entries(tv)
		out := make(map[string]any, size)
		for k, item := range seq {
			out[k] = ToGo(item)
		}
		return out
	default:
		return nil
	}
}

// Equal reports whether a and b hold the same tree. Mappings must have the
// same keys in the same order; a *Dict and a *Map with equal entries are
// equal. Scalars are compared with reflect.DeepEqual. Both trees must be
// acyclic.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	aSeq, aLen, aIsMap := entries(a)
	bSeq, bLen, bIsMap := entries(b)
	if aIsMap || bIsMap {
		if !aIsMap || !bIsMap || aLen != bLen {
			return false
		}
		aKeys, aVals := collect(aSeq)
		bKeys, bVals := collect(bSeq)
		if !slices.Equal(aKeys, bKeys) {
			return false
		}
		for i := range aVals {
			if !Equal(aVals[i], bVals[i]) {
				return false
			}
		}
		return true
	}

	switch ta := a.(type) {
	case List:
		tb, ok := b.(List)
		if !ok || len(ta) != len(tb) {
			return false
		}
		for i := range ta {
			if !Equal(ta[i], tb[i]) {
				return false
			}
		}
		return true
	case Scalar:
		tb, ok := b.(Scalar)
		return ok && reflect.DeepEqual(ta.v, tb.v)
	default:
		return false
	}
}

func collect(seq iter.Seq2[string, Value]) ([]string, []Value) {
	var keys []string
	var vals []Value
	for k, v := range seq {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	return keys, vals
}
