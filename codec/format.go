package codec

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/erraggy/keycase/keyerrors"
)

// Format identifies a document serialization format.
type Format string

const (
	// FormatJSON is JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
	// FormatMsgpack is MessagePack.
	FormatMsgpack Format = "msgpack"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatMsgpack}
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is a supported format.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatMsgpack:
		return true
	default:
		return false
	}
}

var formatAliases = map[string]Format{
	"json":        FormatJSON,
	"yaml":        FormatYAML,
	"yml":         FormatYAML,
	"msgpack":     FormatMsgpack,
	"messagepack": FormatMsgpack,
	"mpk":         FormatMsgpack,
}

// ParseFormat parses a format name. Matching is case-insensitive and accepts
// the common short forms "yml" and "mpk".
func ParseFormat(name string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return "", &keyerrors.ConfigError{
		Option:  "format",
		Value:   name,
		Message: "must be one of json, yaml, msgpack",
	}
}

// FormatFromPath returns the format implied by the file extension of path.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".msgpack", ".mpk":
		return FormatMsgpack, true
	default:
		return "", false
	}
}

// DetectFormat guesses the format of data from its content.
// Binary input that starts with a MessagePack map or array header is
// MessagePack. Text whose first non-space byte is '{' or '[' is JSON, and
// anything else is treated as YAML.
func DetectFormat(data []byte) Format {
	if len(data) > 0 && !utf8.Valid(data) && (isMsgpackMap(data[0]) || isMsgpackArray(data[0])) {
		return FormatMsgpack
	}

	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}
