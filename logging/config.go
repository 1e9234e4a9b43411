package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/erraggy/keycase/internal/fileutil"
	"github.com/erraggy/keycase/keyerrors"
	"github.com/sirupsen/logrus"
)

// Level is a logging threshold.
type Level int

// Supported levels. LevelCritical is accepted for compatibility with older
// configuration files and behaves like LevelError.
const (
	LevelDebug Level = iota + 1
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
)

// Backend names.
const (
	BackendSlog   = "slog"
	BackendLogrus = "logrus"
)

// Output format names.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var levelNames = map[string]Level{
	"debug":    LevelDebug,
	"info":     LevelInfo,
	"warn":     LevelWarn,
	"warning":  LevelWarn,
	"error":    LevelError,
	"critical": LevelCritical,
}

// ParseLevel resolves a level name, ignoring case.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, &keyerrors.ConfigError{Option: "level", Message: "logging level is not configured"}
	}
	if l, ok := levelNames[name]; ok {
		return l, nil
	}
	return 0, &keyerrors.ConfigError{
		Option:  "level",
		Value:   name,
		Message: "must be one of debug, info, warn, error, critical",
	}
}

// String returns the canonical level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	default:
		return "unknown"
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError, LevelCritical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l Level) logrusLevel() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError, LevelCritical:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Config describes a logger.
type Config struct {
	// Enable turns logging on. A disabled config yields a NopLogger.
	Enable bool `yaml:"enable" json:"enable"`
	// Level is the minimum level name: debug, info, warn, error or critical.
	Level string `yaml:"level" json:"level"`
	// Backend is "slog" (default) or "logrus".
	Backend string `yaml:"backend,omitempty" json:"backend,omitempty"`
	// Format is "text" (default) or "json".
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// Validate checks every field. The level is required even when logging is
// disabled so that a config file is rejected early rather than on first use.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	switch c.Backend {
	case "", BackendSlog, BackendLogrus:
	default:
		return &keyerrors.ConfigError{
			Option:  "backend",
			Value:   c.Backend,
			Message: "must be one of slog, logrus",
		}
	}
	switch c.Format {
	case "", FormatText, FormatJSON:
	default:
		return &keyerrors.ConfigError{
			Option:  "format",
			Value:   c.Format,
			Message: "must be one of text, json",
		}
	}
	return nil
}

// New builds a Logger writing to w from cfg.
func New(cfg Config, w io.Writer) (Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	if !cfg.Enable {
		return NopLogger{}, nil
	}
	if w == nil {
		w = os.Stderr
	}

	level, _ := ParseLevel(cfg.Level)

	if cfg.Backend == BackendLogrus {
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(level.logrusLevel())
		if cfg.Format == FormatJSON {
			l.SetFormatter(&logrus.JSONFormatter{})
		} else {
			l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		}
		return NewLogrusAdapter(l), nil
	}

	opts := &slog.HandlerOptions{Level: level.slogLevel()}
	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return NewSlogAdapter(slog.New(handler)), nil
}

// Environment variables read by ConfigFromEnv.
const (
	EnvEnable  = "KEYCASE_LOG_ENABLE"
	EnvLevel   = "KEYCASE_LOG_LEVEL"
	EnvBackend = "KEYCASE_LOG_BACKEND"
	EnvFormat  = "KEYCASE_LOG_FORMAT"
)

// ConfigFromEnv reads a Config from KEYCASE_LOG_* environment variables.
// Invalid values log a warning and fall back to the default.
func ConfigFromEnv() Config {
	return Config{
		Enable:  envBool(EnvEnable, false),
		Level:   envChoice(EnvLevel, "info", func(v string) bool { _, err := ParseLevel(v); return err == nil }),
		Backend: envChoice(EnvBackend, BackendSlog, func(v string) bool { return v == BackendSlog || v == BackendLogrus }),
		Format:  envChoice(EnvFormat, FormatText, func(v string) bool { return v == FormatText || v == FormatJSON }),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envChoice(key, fallback string, valid func(string) bool) string {
	v := strings.ToLower(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if !valid(v) {
		slog.Warn("invalid env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return v
}

// LogFileName returns the daily log file name for name,
// formatted as <year>-<day>-<month>-<name>.log.
func LogFileName(name string, t time.Time) string {
	return fmt.Sprintf("%d-%d-%d-%s.log", t.Year(), t.Day(), int(t.Month()), name)
}

// OpenLogFile opens (creating if needed) today's log file for name under
// dir/logs for appending.
func OpenLogFile(dir, name string, now time.Time) (*os.File, error) {
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, fileutil.OwnerDir); err != nil {
		return nil, fmt.Errorf("logging: creating log directory: %w", err)
	}
	path := filepath.Join(logDir, LogFileName(name, now))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, fileutil.OwnerReadWrite) //nolint:gosec // G304: path built from caller-provided directory
	if err != nil {
		return nil, fmt.Errorf("logging: opening log file: %w", err)
	}
	return f, nil
}
