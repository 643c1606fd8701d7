package logger

import (
	"fmt"
	"testing"
)

// TestLogger routes log output through the test runner so messages show
// up attached to the test that produced them. A nil T discards output.
type TestLogger struct {
	T      *testing.T
	fields map[string]interface{}
}

// NewTestLogger creates a logger backed by t
func NewTestLogger(t *testing.T) Logger {
	return &TestLogger{T: t}
}

func (l *TestLogger) log(level, msg string) {
	if l.T == nil {
		return
	}
	if len(l.fields) > 0 {
		l.T.Logf("[%s] %s %s", level, msg, fmt.Sprintf("%v", l.fields))
		return
	}
	l.T.Logf("[%s] %s", level, msg)
}

func (l *TestLogger) Debug(msg string) { l.log("DEBUG", msg) }
func (l *TestLogger) Info(msg string)  { l.log("INFO", msg) }
func (l *TestLogger) Warn(msg string)  { l.log("WARN", msg) }
func (l *TestLogger) Error(msg string) { l.log("ERROR", msg) }
func (l *TestLogger) Fatal(msg string) { l.log("FATAL", msg) }

// WithField returns a copy carrying the extra field
func (l *TestLogger) WithField(key string, value interface{}) Logger {
	fields := make(map[string]interface{}, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &TestLogger{T: l.T, fields: fields}
}

// WithFields returns a copy carrying the extra fields
func (l *TestLogger) WithFields(extra map[string]interface{}) Logger {
	fields := make(map[string]interface{}, len(l.fields)+len(extra))
	for k, v := range l.fields {
		fields[k] = v
	}
	for k, v := range extra {
		fields[k] = v
	}
	return &TestLogger{T: l.T, fields: fields}
}
