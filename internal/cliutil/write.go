// Package cliutil provides output helpers for the keycase command.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/erraggy/keycase/internal/fileutil"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteFile writes data to path with owner-only permissions. It refuses to
// follow a symlink at path and to overwrite inputPath.
func WriteFile(path, inputPath string, data []byte) error {
	cleaned := filepath.Clean(path)
	if inputPath != "" {
		absOut, err := filepath.Abs(cleaned)
		if err != nil {
			return fmt.Errorf("invalid output path: %w", err)
		}
		absIn, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOut == absIn {
			return fmt.Errorf("output file %s would overwrite input file %s", path, inputPath)
		}
	}

	info, err := os.Lstat(cleaned)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return fmt.Errorf("checking output path: %w", err)
	case info.Mode()&os.ModeSymlink != 0:
		return fmt.Errorf("refusing to write to symlink: %s", cleaned)
	}

	if err := os.WriteFile(cleaned, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
