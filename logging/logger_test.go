package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = NopLogger{}
	})

	t.Run("methods do nothing", func(t *testing.T) {
		l := NopLogger{}
		// Should not panic
		l.Debug("test message", "key", "value")
		l.Info("test message", "key", "value")
		l.Warn("test message", "key", "value")
		l.Error("test message", "key", "value")
	})

	t.Run("With returns same NopLogger", func(t *testing.T) {
		l := NopLogger{}
		_, ok := l.With("key", "value").(NopLogger)
		assert.True(t, ok, "With should return NopLogger")
	})
}

func TestOrNop(t *testing.T) {
	_, ok := OrNop(nil).(NopLogger)
	assert.True(t, ok)

	s := NewSlogAdapter(nil)
	assert.Same(t, s, OrNop(s))
}

func newBufferedSlog(level slog.Level) (*SlogAdapter, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogAdapter(slog.New(handler)), &buf
}

func TestSlogAdapter(t *testing.T) {
	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		assert.NotNil(t, adapter.logger)
	})

	t.Run("logs at each level", func(t *testing.T) {
		adapter, buf := newBufferedSlog(slog.LevelDebug)

		adapter.Debug("test debug", "foo", "bar")
		adapter.Info("test info")
		adapter.Warn("test warn")
		adapter.Error("test error")

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "foo=bar")
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "level=ERROR")
	})

	t.Run("respects handler level", func(t *testing.T) {
		adapter, buf := newBufferedSlog(slog.LevelWarn)
		adapter.Info("hidden")
		adapter.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("With adds attributes", func(t *testing.T) {
		adapter, buf := newBufferedSlog(slog.LevelDebug)
		adapter.With("component", "multicase").Info("built")
		assert.Contains(t, buf.String(), "component=multicase")
	})
}

func TestLogrusAdapter(t *testing.T) {
	newAdapter := func() (*LogrusAdapter, *bytes.Buffer) {
		var buf bytes.Buffer
		l := logrus.New()
		l.SetOutput(&buf)
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
		return NewLogrusAdapter(l), &buf
	}

	t.Run("NewLogrusAdapter with nil uses standard logger", func(t *testing.T) {
		adapter := NewLogrusAdapter(nil)
		require.NotNil(t, adapter.entry)
		assert.Same(t, logrus.StandardLogger(), adapter.entry.Logger)
	})

	t.Run("logs fields", func(t *testing.T) {
		adapter, buf := newAdapter()
		adapter.Debug("dropped key", "key", "foo_bar", "kept", "fooBar")
		out := buf.String()
		assert.Contains(t, out, "level=debug")
		assert.Contains(t, out, `msg="dropped key"`)
		assert.Contains(t, out, "key=foo_bar")
		assert.Contains(t, out, "kept=fooBar")
	})

	t.Run("each level", func(t *testing.T) {
		adapter, buf := newAdapter()
		adapter.Info("i")
		adapter.Warn("w")
		adapter.Error("e")
		out := buf.String()
		assert.Contains(t, out, "level=info")
		assert.Contains(t, out, "level=warning")
		assert.Contains(t, out, "level=error")
	})

	t.Run("With carries fields", func(t *testing.T) {
		adapter, buf := newAdapter()
		adapter.With("component", "codec").Info("decoded")
		assert.Contains(t, buf.String(), "component=codec")
	})
}

func TestToFields(t *testing.T) {
	tests := []struct {
		name  string
		attrs []any
		want  logrus.Fields
	}{
		{name: "empty", attrs: nil, want: logrus.Fields{}},
		{name: "pairs", attrs: []any{"a", 1, "b", "two"}, want: logrus.Fields{"a": 1, "b": "two"}},
		{name: "non-string key", attrs: []any{42, true}, want: logrus.Fields{"42": true}},
		{name: "dangling value", attrs: []any{"a", 1, "orphan"}, want: logrus.Fields{"a": 1, badKey: "orphan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toFields(tt.attrs))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("disabled returns NopLogger", func(t *testing.T) {
		l, err := New(Config{Level: "info"}, nil)
		require.NoError(t, err)
		_, ok := l.(NopLogger)
		assert.True(t, ok)
	})

	t.Run("slog text backend", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(Config{Enable: true, Level: "debug"}, &buf)
		require.NoError(t, err)
		_, ok := l.(*SlogAdapter)
		require.True(t, ok)

		l.Debug("hello", "k", "v")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("slog json backend", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(Config{Enable: true, Level: "info", Format: FormatJSON}, &buf)
		require.NoError(t, err)

		l.Debug("hidden")
		l.Info("hello")
		out := strings.TrimSpace(buf.String())
		assert.NotContains(t, out, "hidden")
		assert.True(t, strings.HasPrefix(out, "{"), "expected JSON output, got %s", out)
	})

	t.Run("logrus backend", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(Config{Enable: true, Level: "warn", Backend: BackendLogrus}, &buf)
		require.NoError(t, err)
		_, ok := l.(*LogrusAdapter)
		require.True(t, ok)

		l.Info("hidden")
		l.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := New(Config{Enable: true}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logging level is not configured")
	})
}
