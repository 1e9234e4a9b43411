package cliutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritef(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{name: "one arg", format: "Hello, %s!", args: []any{"World"}, want: "Hello, World!"},
		{name: "no args", format: "Simple message", want: "Simple message"},
		{name: "many args", format: "%s: %d keys, %v dropped", args: []any{"user_info", 3, true}, want: "user_info: 3 keys, true dropped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Writef(&buf, tt.format, tt.args...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}

func TestWritef_WriteError(t *testing.T) {
	assert.NotPanics(t, func() {
		Writef(errorWriter{}, "This will fail")
	})
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("writes with owner permissions", func(t *testing.T) {
		path := filepath.Join(dir, "out.json")
		require.NoError(t, WriteFile(path, "", []byte(`{}`)))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("refuses to overwrite input", func(t *testing.T) {
		path := filepath.Join(dir, "in.json")
		err := WriteFile(path, path, []byte(`{}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "would overwrite input file")
	})

	t.Run("refuses symlink", func(t *testing.T) {
		target := filepath.Join(dir, "target.json")
		require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))
		link := filepath.Join(dir, "link.json")
		require.NoError(t, os.Symlink(target, link))

		err := WriteFile(link, "", []byte(`{}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "symlink")

		data, _ := os.ReadFile(target)
		assert.Equal(t, "x", string(data))
	})
}
