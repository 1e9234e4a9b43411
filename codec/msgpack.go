package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/erraggy/keycase/keyerrors"
	"github.com/erraggy/keycase/multicase"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// msgpackDecoder reads maps and arrays header by header so that map entries
// keep the order they were written in. Scalars are left to the msgpack
// package.
type msgpackDecoder struct {
	dec  *msgpack.Decoder
	r    *bytes.Reader
	size int
}

func decodeMsgpack(data []byte) (multicase.Value, error) {
	if len(data) == 0 {
		return multicase.Null, nil
	}

	r := bytes.NewReader(data)
	d := &msgpackDecoder{dec: msgpack.NewDecoder(r), r: r, size: len(data)}
	v, err := d.value(0)
	if err != nil {
		return nil, err
	}
	if r.Len() > 0 {
		return nil, d.errorf(nil, "unexpected data after document")
	}
	return v, nil
}

func (d *msgpackDecoder) offset() int {
	return d.size - d.r.Len()
}

func (d *msgpackDecoder) errorf(cause error, format string, args ...any) *keyerrors.ParseError {
	msg := fmt.Sprintf(format, args...)
	if errors.Is(cause, io.EOF) || errors.Is(cause, io.ErrUnexpectedEOF) {
		msg = "unexpected end of data"
	}
	return &keyerrors.ParseError{
		Format:  string(FormatMsgpack),
		Message: fmt.Sprintf("%s at offset %d", msg, d.offset()),
		Cause:   cause,
	}
}

func (d *msgpackDecoder) value(depth int) (multicase.Value, error) {
	if depth > maxDepth {
		return nil, depthError(depth)
	}

	code, err := d.dec.PeekCode()
	if err != nil {
		return nil, d.errorf(err, "failed to read type code")
	}

	switch {
	case isMsgpackMap(code):
		return d.mapping(depth)
	case isMsgpackArray(code):
		n, err := d.dec.DecodeArrayLen()
		if err != nil {
			return nil, d.errorf(err, "invalid array header")
		}
		out := make(multicase.List, 0, d.capacity(n))
		for range n {
			v, err := d.value(depth + 1)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	default:
		v, err := d.dec.DecodeInterfaceLoose()
		if err != nil {
			return nil, d.errorf(err, "invalid value: %v", err)
		}
		return multicase.ScalarOf(v), nil
	}
}

func (d *msgpackDecoder) mapping(depth int) (*multicase.Map, error) {
	n, err := d.dec.DecodeMapLen()
	if err != nil {
		return nil, d.errorf(err, "invalid map header")
	}

	m := multicase.NewMap(d.capacity(n))
	for range n {
		key, err := d.key()
		if err != nil {
			return nil, err
		}
		v, err := d.value(depth + 1)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
	return m, nil
}

// key reads a map key. String keys are used as is and other scalar keys
// are formatted with fmt.
func (d *msgpackDecoder) key() (string, error) {
	code, err := d.dec.PeekCode()
	if err != nil {
		return "", d.errorf(err, "failed to read map key")
	}
	if isMsgpackMap(code) || isMsgpackArray(code) {
		return "", d.errorf(nil, "map keys must be scalars")
	}

	k, err := d.dec.DecodeInterfaceLoose()
	if err != nil {
		return "", d.errorf(err, "invalid map key: %v", err)
	}
	switch tk := k.(type) {
	case string:
		return tk, nil
	case nil:
		return "null", nil
	default:
		return fmt.Sprint(tk), nil
	}
}

// capacity bounds a preallocation by the input size, since a header can
// claim more entries than the data holds.
func (d *msgpackDecoder) capacity(n int) int {
	return max(0, min(n, d.r.Len()))
}

func isMsgpackMap(c byte) bool {
	return msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32
}

func isMsgpackArray(c byte) bool {
	return msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32
}

func encodeMsgpack(v multicase.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.UseCompactInts(true)
	if err := writeMsgpackValue(enc, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeMsgpackValue(enc *msgpack.Encoder, v multicase.Value) error {
	switch tv := v.(type) {
	case nil:
		return wrapMsgpack(enc.EncodeNil(), v)

	case *multicase.Map, *multicase.Dict:
		if err := enc.EncodeMapLen(mappingLen(tv)); err != nil {
			return wrapMsgpack(err, v)
		}
		for key, item := range entriesOf(tv) {
			if err := enc.EncodeString(key); err != nil {
				return wrapMsgpack(err, key)
			}
			if err := writeMsgpackValue(enc, item); err != nil {
				return err
			}
		}
		return nil

	case multicase.List:
		if err := enc.EncodeArrayLen(len(tv)); err != nil {
			return wrapMsgpack(err, v)
		}
		for _, item := range tv {
			if err := writeMsgpackValue(enc, item); err != nil {
				return err
			}
		}
		return nil

	case multicase.Scalar:
		return wrapMsgpack(enc.Encode(tv.Interface()), tv.Interface())

	default:
		return &keyerrors.EncodeError{Format: string(FormatMsgpack), Message: fmt.Sprintf("unsupported value %T", v)}
	}
}

func wrapMsgpack(err error, v any) error {
	if err == nil {
		return nil
	}
	return &keyerrors.EncodeError{Format: string(FormatMsgpack), Message: fmt.Sprintf("cannot encode %T", v), Cause: err}
}
