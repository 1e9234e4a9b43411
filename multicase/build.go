package multicase

import (
	"iter"
	"strconv"

	"github.com/erraggy/keycase/keyerrors"
	"github.com/erraggy/keycase/naming"
)

// builder walks a source tree once, producing Dicts.
type builder struct {
	handler naming.Handler
	cfg     *config
	// visiting holds the mappings on the current path. Only pointer
	// Values are ever stored.
	visiting map[Value]struct{}
}

func newBuilder(h naming.Handler, cfg *config) *builder {
	return &builder{handler: h, cfg: cfg, visiting: make(map[Value]struct{})}
}

// entries returns an iterator over a mapping Value (*Map or *Dict).
func entries(v Value) (iter.Seq2[string, Value], int, bool) {
	switch m := v.(type) {
	case *Map:
		return m.All(), m.Len(), true
	case *Dict:
		return m.All(), m.Len(), true
	default:
		return nil, 0, false
	}
}

func (b *builder) checkDepth(depth int) error {
	if depth > b.cfg.maxDepth {
		return &keyerrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(b.cfg.maxDepth),
			Actual:       int64(depth),
		}
	}
	return nil
}

// dict builds a Dict from a mapping Value.
func (b *builder) dict(src Value, path string, depth int) (*Dict, error) {
	if err := b.checkDepth(depth); err != nil {
		return nil, err
	}
	if _, seen := b.visiting[src]; seen {
		return nil, &keyerrors.CycleError{Path: path}
	}
	b.visiting[src] = struct{}{}
	defer delete(b.visiting, src)

	seq, size, _ := entries(src)
	d := &Dict{
		handler: b.handler,
		cfg:     b.cfg,
		keys:    make([]string, 0, size),
		values:  make(map[string]Value, size),
		reverse: make(map[string]string, size),
	}
	if seq == nil {
		return d, nil
	}

	for key, val := range seq {
		cased := b.handler(key)
		if kept, dup := d.reverse[cased]; dup {
			d.collisions = append(d.collisions, Collision{Key: key, CasedKey: cased, KeptKey: kept})
			b.cfg.logger.Debug("multicase: dropped colliding key",
				"path", path, "key", key, "cased", cased, "kept", kept)
			continue
		}

		v, err := b.value(val, joinPath(path, key), depth+1)
		if err != nil {
			return nil, err
		}
		d.keys = append(d.keys, cased)
		d.values[cased] = v
		d.reverse[cased] = key
	}

	return d, nil
}

// value transforms one value: mappings become Dicts, sequences are rebuilt
// element by element, everything else is returned as is.
func (b *builder) value(v Value, path string, depth int) (Value, error) {
	switch tv := v.(type) {
	case nil:
		return Null, nil
	case *Map, *Dict:
		d, err := b.dict(tv, path, depth)
		if err != nil {
			return nil, err
		}
		return d, nil
	case List:
		if err := b.checkDepth(depth); err != nil {
			return nil, err
		}
		out := make(List, len(tv))
		for i, item := range tv {
			iv, err := b.value(item, path+"["+strconv.Itoa(i)+"]", depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = iv
		}
		return out, nil
	default:
		return v, nil
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// Check reports whether v is a finite tree nested no deeper than maxDepth,
// failing the way New does: a mapping reachable from itself gives a
// *keyerrors.CycleError and deeper nesting a *keyerrors.ResourceLimitError.
// A maxDepth of zero or less means DefaultMaxDepth.
//
// Functions that walk an arbitrary Value, such as Map.ReCase and the codec
// encoders, call Check first.
func Check(v Value, maxDepth int) error {
	cfg := defaultConfig()
	if maxDepth > 0 {
		cfg.maxDepth = maxDepth
	}
	return newBuilder(nil, cfg).check(v, "", 0)
}

func (b *builder) check(v Value, path string, depth int) error {
	switch tv := v.(type) {
	case *Map, *Dict:
		if err := b.checkDepth(depth); err != nil {
			return err
		}
		if _, seen := b.visiting[tv]; seen {
			return &keyerrors.CycleError{Path: path}
		}
		b.visiting[tv] = struct{}{}
		defer delete(b.visiting, tv)

		seq, _, _ := entries(tv)
		for key, val := range seq {
			if err := b.check(val, joinPath(path, key), depth+1); err != nil {
				return err
			}
		}
		return nil
	case List:
		if err := b.checkDepth(depth); err != nil {
			return err
		}
		for i, item := range tv {
			if err := b.check(item, path+"["+strconv.Itoa(i)+"]", depth+1); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}
