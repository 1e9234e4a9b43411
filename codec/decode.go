package codec

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/keycase/keyerrors"
	"github.com/erraggy/keycase/multicase"
)

// maxDepth bounds the nesting of decoded documents.
const maxDepth = multicase.DefaultMaxDepth

// Decode parses data in the given format into a value tree. Empty input
// decodes to multicase.Null.
func Decode(data []byte, format Format) (multicase.Value, error) {
	var (
		v   multicase.Value
		err error
	)
	switch format {
	case FormatJSON:
		v, err = decodeJSON(data)
	case FormatYAML:
		v, err = decodeYAML(data, FormatYAML)
	case FormatMsgpack:
		v, err = decodeMsgpack(data)
	default:
		return nil, unknownFormat(format)
	}
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return v, nil
}

// DecodeMap is like Decode but requires the document root to be a mapping.
// Empty input decodes to an empty Map.
func DecodeMap(data []byte, format Format) (*multicase.Map, error) {
	v, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return rootMap(v, format)
}

// DecodeFile reads and decodes the mapping stored at path. An empty format
// is taken from the file extension, or from the content when the extension
// is not recognised. The format that was used is returned with the Map.
func DecodeFile(path string, format Format) (*multicase.Map, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("codec: failed to read %s: %w", path, err)
	}
	if format == "" {
		if f, ok := FormatFromPath(path); ok {
			format = f
		} else {
			format = DetectFormat(data)
		}
	}

	m, err := DecodeMap(data, format)
	if err != nil {
		var pe *keyerrors.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = path
		}
		return nil, format, err
	}
	return m, format, nil
}

func rootMap(v multicase.Value, format Format) (*multicase.Map, error) {
	switch tv := v.(type) {
	case *multicase.Map:
		return tv, nil
	case multicase.Scalar:
		if tv.Interface() == nil {
			return multicase.NewMap(0), nil
		}
	}
	return nil, fmt.Errorf("codec: %w", &keyerrors.ParseError{
		Format:  string(format),
		Message: fmt.Sprintf("document root must be a mapping, got %s", kindOf(v)),
	})
}

func kindOf(v multicase.Value) string {
	switch v.(type) {
	case *multicase.Map, *multicase.Dict:
		return "mapping"
	case multicase.List:
		return "sequence"
	default:
		return "scalar"
	}
}

func isBlank(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}

func depthError(depth int) error {
	return &keyerrors.ResourceLimitError{
		ResourceType: "nesting_depth",
		Limit:        maxDepth,
		Actual:       int64(depth),
	}
}
