package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/erraggy/keycase/keyerrors"
	"github.com/erraggy/keycase/multicase"
)

// decodeJSON checks that data is strict JSON and then reads it through the
// YAML node decoder, which keeps key order.
func decodeJSON(data []byte) (multicase.Value, error) {
	if isBlank(data) {
		return multicase.Null, nil
	}
	if !json.Valid(data) {
		return nil, jsonParseError(data)
	}
	return decodeYAML(data, FormatJSON)
}

// jsonParseError reports why data is not valid JSON, with the position of
// the offending byte.
func jsonParseError(data []byte) *keyerrors.ParseError {
	var v any
	err := json.Unmarshal(data, &v)
	if err == nil {
		err = errors.New("invalid JSON")
	}

	pe := &keyerrors.ParseError{
		Format:  string(FormatJSON),
		Message: err.Error(),
		Cause:   err,
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		pe.Line, pe.Column = position(data, syntaxErr.Offset)
	}
	return pe
}

// position converts the offset of a json.SyntaxError, which counts the
// offending byte, into the 1-based line and column of that byte.
func position(data []byte, offset int64) (line, column int) {
	offset = max(0, min(offset-1, int64(len(data))))
	before := data[:offset]
	line = bytes.Count(before, []byte{'\n'}) + 1
	column = len(before) - bytes.LastIndexByte(before, '\n')
	return line, column
}

func encodeJSON(v multicase.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSONIndent(v multicase.Value, indent string) ([]byte, error) {
	data, err := encodeJSON(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", indent); err != nil {
		return nil, &keyerrors.EncodeError{Format: string(FormatJSON), Message: "failed to indent output", Cause: err}
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// writeJSONValue writes v to buf as JSON, keeping mapping order.
func writeJSONValue(buf *bytes.Buffer, v multicase.Value) error {
	switch tv := v.(type) {
	case nil:
		buf.WriteString("null")
		return nil

	case *multicase.Map, *multicase.Dict:
		buf.WriteByte('{')
		first := true
		for key, item := range entriesOf(tv) {
			if !first {
				buf.WriteByte(',')
			}
			first = false

			if err := writeJSON(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSONValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case multicase.List:
		buf.WriteByte('[')
		for i, item := range tv {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case multicase.Scalar:
		return writeJSON(buf, tv.Interface())

	default:
		return &keyerrors.EncodeError{Format: string(FormatJSON), Message: fmt.Sprintf("unsupported value %T", v)}
	}
}

// writeJSON marshals a leaf value to JSON and writes it to the buffer.
func writeJSON(buf *bytes.Buffer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &keyerrors.EncodeError{Format: string(FormatJSON), Message: fmt.Sprintf("cannot encode %T", v), Cause: err}
	}
	buf.Write(data)
	return nil
}
