package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// badKey is the field name used for a trailing attribute without a value,
// matching what log/slog does.
const badKey = "!BADKEY"

// LogrusAdapter wraps a *logrus.Logger to implement the Logger interface.
type LogrusAdapter struct {
	entry *logrus.Entry
}

// NewLogrusAdapter creates a new LogrusAdapter.
// If logger is nil, logrus.StandardLogger() is used.
func NewLogrusAdapter(logger *logrus.Logger) *LogrusAdapter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusAdapter{entry: logrus.NewEntry(logger)}
}

// Debug implements Logger.
func (l *LogrusAdapter) Debug(msg string, attrs ...any) {
	l.entry.WithFields(toFields(attrs)).Debug(msg)
}

// Info implements Logger.
func (l *LogrusAdapter) Info(msg string, attrs ...any) {
	l.entry.WithFields(toFields(attrs)).Info(msg)
}

// Warn implements Logger.
func (l *LogrusAdapter) Warn(msg string, attrs ...any) {
	l.entry.WithFields(toFields(attrs)).Warn(msg)
}

// Error implements Logger.
func (l *LogrusAdapter) Error(msg string, attrs ...any) {
	l.entry.WithFields(toFields(attrs)).Error(msg)
}

// With implements Logger.
func (l *LogrusAdapter) With(attrs ...any) Logger {
	return &LogrusAdapter{entry: l.entry.WithFields(toFields(attrs))}
}

var _ Logger = (*LogrusAdapter)(nil)

// toFields converts slog-style alternating key-value pairs to logrus fields.
func toFields(attrs []any) logrus.Fields {
	fields := make(logrus.Fields, (len(attrs)+1)/2)
	for i := 0; i < len(attrs); i += 2 {
		if i+1 >= len(attrs) {
			fields[badKey] = attrs[i]
			break
		}
		key, ok := attrs[i].(string)
		if !ok {
			key = fmt.Sprint(attrs[i])
		}
		fields[key] = attrs[i+1]
	}
	return fields
}
