// Package codec reads and writes keycase documents as JSON, YAML or
// MessagePack while keeping the order of mapping keys.
//
// Decoding produces the multicase value tree: mappings become *multicase.Map,
// sequences multicase.List and everything else multicase.Scalar. JSON and
// YAML are both read through YAML node trees, so anchors and aliases are
// resolved and merge keys (<<) are applied. MessagePack maps are read entry
// by entry so their order survives as well.
//
// Encoding accepts any multicase.Value, including *multicase.Dict, and
// writes mappings in their stored order in all three formats.
//
// Decode failures are returned as *keyerrors.ParseError, with line and column
// when the underlying parser reports them. Encode failures are returned as
// *keyerrors.EncodeError.
package codec
