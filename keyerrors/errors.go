package keyerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnknownKey indicates an update addressed a key with no reverse-map entry.
	ErrUnknownKey = errors.New("unknown key")

	// ErrCycle indicates a mapping was reached again while it was being transformed.
	ErrCycle = errors.New("cyclic structure")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrParse indicates a document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrEncode indicates a document could not be encoded.
	ErrEncode = errors.New("encode error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// LookupError is returned when a single-key update targets a key that was
// never part of the constructed dictionary.
type LookupError struct {
	// Key is the key as supplied by the caller
	Key string
	// CasedKey is Key after the dictionary's case handler was applied
	CasedKey string
}

// Error returns a human-readable error message.
func (e *LookupError) Error() string {
	msg := "unknown key"
	if e.Key != "" {
		msg += fmt.Sprintf(" %q", e.Key)
	}
	if e.CasedKey != "" && e.CasedKey != e.Key {
		msg += fmt.Sprintf(" (cased %q)", e.CasedKey)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *LookupError) Is(target error) bool {
	return target == ErrUnknownKey
}

// CycleError is returned when the input structure is not a finite tree.
type CycleError struct {
	// Path is the dotted key path at which the mapping was seen again
	Path string
}

// Error returns a human-readable error message.
func (e *CycleError) Error() string {
	msg := "cyclic structure"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded, e.g. "nesting_depth"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ParseError represents a failure to decode an input document.
type ParseError struct {
	// Format is the document format, e.g. "json", "yaml" or "msgpack"
	Format string
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg = e.Format + " " + msg
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// EncodeError represents a failure to serialize a document.
type EncodeError struct {
	// Format is the target format
	Format string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *EncodeError) Error() string {
	msg := "encode error"
	if e.Format != "" {
		msg = e.Format + " " + msg
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *EncodeError) Is(target error) bool {
	return target == ErrEncode
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, unknown style or format names, and
// logging settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
