// Package keyerrors provides structured error types for the keycase library.
//
// Import path: github.com/erraggy/keycase/keyerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// so callers can tell an unknown-key update apart from a malformed input
// document or a bad option.
//
// # Error Types
//
//   - [LookupError]: an update addressed a key the dictionary was never built with
//   - [CycleError]: a mapping is reachable from itself
//   - [ResourceLimitError]: nesting depth exceeded the configured maximum
//   - [ParseError]: JSON/YAML/MessagePack decoding failures
//   - [EncodeError]: serialization failures
//   - [ConfigError]: invalid options, styles, formats or logging settings
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrUnknownKey]: Matches any [LookupError]
//   - [ErrCycle]: Matches any [CycleError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrEncode]: Matches any [EncodeError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	updated, err := dict.Set("FirstName", multicase.ScalarOf("Ann"))
//	if errors.Is(err, keyerrors.ErrUnknownKey) {
//	    // the key was not part of the source document
//	}
//
//	var lookupErr *keyerrors.LookupError
//	if errors.As(err, &lookupErr) {
//	    fmt.Printf("no entry for %s (cased %s)\n", lookupErr.Key, lookupErr.CasedKey)
//	}
package keyerrors
