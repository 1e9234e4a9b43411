// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/keycase/codec"
	"github.com/erraggy/keycase/multicase"
)

// NewUserDocument returns a small nested document with PascalCase keys,
// including a mapping inside a sequence.
func NewUserDocument() *multicase.Map {
	return multicase.MapOf(
		multicase.Pair{Key: "UserInfo", Value: multicase.MapOf(
			multicase.Pair{Key: "FirstName", Value: multicase.ScalarOf("Ann")},
			multicase.Pair{Key: "LastName", Value: multicase.ScalarOf("Lee")},
		)},
		multicase.Pair{Key: "Tags", Value: multicase.List{
			multicase.MapOf(multicase.Pair{Key: "TagName", Value: multicase.ScalarOf("x")}),
			multicase.ScalarOf("plain"),
		}},
	)
}

// NewCollidingDocument returns a document whose two keys both become
// "foo_bar" in snake case.
func NewCollidingDocument() *multicase.Map {
	return multicase.MapOf(
		multicase.Pair{Key: "fooBar", Value: multicase.ScalarOf(1)},
		multicase.Pair{Key: "foo_bar", Value: multicase.ScalarOf(2)},
	)
}

// WriteTempFile writes data to name inside a fresh temporary directory and
// returns the file path.
func WriteTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}

// WriteTempDocument encodes doc in format and writes it to a temporary file
// named after the format, e.g. "test.yaml".
func WriteTempDocument(t *testing.T, doc multicase.Value, format codec.Format) string {
	t.Helper()

	data, err := codec.Encode(doc, format)
	if err != nil {
		t.Fatalf("Failed to encode document as %s: %v", format, err)
	}
	return WriteTempFile(t, "test."+format.String(), data)
}
