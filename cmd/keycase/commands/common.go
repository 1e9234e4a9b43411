// Package commands provides CLI command handlers for keycase.
package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/keycase/logging"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// FormatInputPath returns a display-friendly path for the input document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatInputPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// LogFlags are the logging flags shared by commands.
type LogFlags struct {
	Level   string
	Backend string
	Format  string
	Dir     string
}

// LogConfig merges the flags over the KEYCASE_LOG_* environment. Setting a
// level or a log directory on the command line enables logging.
func (f *LogFlags) LogConfig() logging.Config {
	cfg := logging.ConfigFromEnv()
	if f.Level != "" {
		cfg.Enable = true
		cfg.Level = f.Level
	}
	if f.Dir != "" {
		cfg.Enable = true
	}
	if f.Backend != "" {
		cfg.Backend = f.Backend
	}
	if f.Format != "" {
		cfg.Format = f.Format
	}
	return cfg
}

// NewLogger builds the logger described by the flags. Output goes to stderr,
// or to the daily log file under Dir when it is set. The returned close
// function releases the log file and is safe to call when there is none.
func (f *LogFlags) NewLogger(stderr io.Writer) (logging.Logger, func(), error) {
	cfg := f.LogConfig()
	closeFn := func() {}

	w := stderr
	if f.Dir != "" {
		file, err := logging.OpenLogFile(f.Dir, "keycase", time.Now())
		if err != nil {
			return nil, closeFn, err
		}
		w = file
		closeFn = func() { _ = file.Close() }
	}

	logger, err := logging.New(cfg, w)
	if err != nil {
		closeFn()
		return nil, func() {}, err
	}
	return logger, closeFn, nil
}

// readInput reads the document at path, or stdin for StdinFilePath.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinFilePath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304 - path is the user's CLI argument
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return data, nil
}
