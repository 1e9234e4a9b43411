// Package keycase rewrites the keys of nested documents into a single naming
// convention and keeps track of where every key came from.
//
// Configuration files, API payloads and message bodies often mix naming
// styles: a YAML file written by hand uses snake_case, a JSON payload from a
// JavaScript client uses camelCase, and a Go service wants to look both up
// the same way. keycase walks the whole document, mappings nested inside
// sequences included, and produces a dictionary whose keys all follow one
// style, together with a reverse map back to the original spelling.
//
// # Overview
//
// The module consists of the following packages:
//
//   - naming: Word splitting and the case handlers (snake, camel, pascal,
//     kebab, constant, title, dot)
//   - multicase: The value tree and the immutable, recursively cased Dict
//   - codec: Order-preserving JSON, YAML and MessagePack decoding and encoding
//   - logging: The Logger facade over log/slog and logrus, plus timing helpers
//   - keyerrors: Sentinel and structured errors shared by all packages
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/keycase
//
// Install the CLI tool:
//
//	go install github.com/erraggy/keycase/cmd/keycase@latest
//
// # Quick Start
//
// Convert a JSON document to snake_case keys:
//
//	import (
//		"github.com/erraggy/keycase/codec"
//		"github.com/erraggy/keycase/multicase"
//		"github.com/erraggy/keycase/naming"
//	)
//
//	src, err := codec.DecodeMap(data, codec.FormatJSON)
//	if err != nil {
//		log.Fatal(err)
//	}
//	dict, err := multicase.New(src, naming.ToSnakeCase)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := codec.EncodeIndent(dict, codec.FormatJSON, "  ")
//
// Emit the same data in another convention, or with the original keys:
//
//	camel := dict.CamelCase()
//	original := dict.UserCase()
//
// Look a key up by any spelling:
//
//	v, ok := dict.Lookup("userName") // finds "user_name"
//
// # Collisions
//
// When two keys at the same level become the same key, the first one in
// source order is kept and the other is dropped. Dropped entries are never
// merged; they are listed by Dict.Collisions and logged at debug level when
// a logger is configured with multicase.WithLogger.
//
// # Command Line
//
// The keycase command converts files from the shell:
//
//	keycase convert --case camel -o out.yaml config.yaml
//	cat payload.json | keycase convert --collisions -
//	keycase styles
//
// Run 'keycase help' for the full list of commands.
package keycase
