package codec

import (
	"fmt"
	"iter"

	"github.com/erraggy/keycase/keyerrors"
	"github.com/erraggy/keycase/multicase"
)

// Encode writes v in the given format. Mappings, including *multicase.Dict,
// are written in their stored key order. A cyclic or too deeply nested v is
// rejected as by multicase.Check.
func Encode(v multicase.Value, format Format) ([]byte, error) {
	if err := multicase.Check(v, maxDepth); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = encodeJSON(v)
	case FormatYAML:
		data, err = encodeYAML(v, 0)
	case FormatMsgpack:
		data, err = encodeMsgpack(v)
	default:
		return nil, unknownFormat(format)
	}
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return data, nil
}

// EncodeIndent is like Encode but indents nested structures. For JSON each
// level is prefixed with one more copy of indent and the output ends with a
// newline; for YAML the indent width is len(indent). MessagePack output is
// binary and ignores indent.
func EncodeIndent(v multicase.Value, format Format, indent string) ([]byte, error) {
	if err := multicase.Check(v, maxDepth); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = encodeJSONIndent(v, indent)
	case FormatYAML:
		data, err = encodeYAML(v, len(indent))
	case FormatMsgpack:
		data, err = encodeMsgpack(v)
	default:
		return nil, unknownFormat(format)
	}
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return data, nil
}

func unknownFormat(format Format) error {
	return fmt.Errorf("codec: %w", &keyerrors.ConfigError{
		Option:  "format",
		Value:   string(format),
		Message: "must be one of json, yaml, msgpack",
	})
}

// entriesOf iterates over the entries of a *multicase.Map or *multicase.Dict.
func entriesOf(v multicase.Value) iter.Seq2[string, multicase.Value] {
	switch m := v.(type) {
	case *multicase.Map:
		return m.All()
	case *multicase.Dict:
		return m.All()
	default:
		return func(func(string, multicase.Value) bool) {}
	}
}

func mappingLen(v multicase.Value) int {
	switch m := v.(type) {
	case *multicase.Map:
		return m.Len()
	case *multicase.Dict:
		return m.Len()
	default:
		return 0
	}
}
