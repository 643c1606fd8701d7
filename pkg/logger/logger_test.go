package logger

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// captureOutput redirects os.Stdout for the duration of f. The logger
// binds its writer at construction, so NewLogger must be called inside f.
func captureOutput(f func()) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outputChan := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outputChan <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = oldStdout
	return <-outputChan
}

func TestNewLogger(t *testing.T) {
	log := NewLogger()
	assert.NotNil(t, log)
	assert.IsType(t, &zerologLogger{}, log)
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level   string
		logFunc func(Logger, string)
	}{
		{"debug", func(l Logger, msg string) { l.Debug(msg) }},
		{"info", func(l Logger, msg string) { l.Info(msg) }},
		{"warn", func(l Logger, msg string) { l.Warn(msg) }},
		{"error", func(l Logger, msg string) { l.Error(msg) }},
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			output := captureOutput(func() {
				tt.logFunc(NewLogger(), "workplace created")
			})

			assert.Contains(t, output, "workplace created")
			assert.Contains(t, output, `"level":"`+tt.level+`"`)
		})
	}
}

func TestLogLevelFiltering(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	output := captureOutput(func() {
		NewLogger().Debug("connection pool stats")
	})
	assert.NotContains(t, output, "connection pool stats")

	zerolog.SetGlobalLevel(zerolog.ErrorLevel)

	output = captureOutput(func() {
		NewLogger().Info("request served")
	})
	assert.NotContains(t, output, "request served")

	output = captureOutput(func() {
		NewLogger().Error("provisioning failed")
	})
	assert.Contains(t, output, "provisioning failed")
}

func TestWithField(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	output := captureOutput(func() {
		NewLogger().
			WithField("workplace_id", "acme").
			WithField("retries", 3).
			WithField("optimistic", true).
			Info("board mutation applied")
	})

	assert.Contains(t, output, "board mutation applied")
	assert.Contains(t, output, `"workplace_id":"acme"`)
	assert.Contains(t, output, `"retries":3`)
	assert.Contains(t, output, `"optimistic":true`)
}

func TestWithFields(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	output := captureOutput(func() {
		NewLogger().WithFields(map[string]interface{}{
			"workplace_id": "acme",
			"project_id":   "proj1",
			"order":        1.5,
			"invited":      nil,
		}).Info("task moved")
	})

	assert.Contains(t, output, "task moved")
	assert.Contains(t, output, `"workplace_id":"acme"`)
	assert.Contains(t, output, `"project_id":"proj1"`)
	assert.Contains(t, output, `"order":1.5`)
	assert.Contains(t, output, `"invited":null`)
}

func TestWithFieldReturnsNewInstance(t *testing.T) {
	base := NewLogger()

	assert.NotEqual(t, base, base.WithField("workplace_id", "acme"))
	assert.NotEqual(t, base, base.WithFields(map[string]interface{}{"user_id": "u1"}))
}

func TestNewLoggerWithLevel(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		expectedLevel zerolog.Level
	}{
		{"debug level", "debug", zerolog.DebugLevel},
		{"info level", "info", zerolog.InfoLevel},
		{"warn level", "warn", zerolog.WarnLevel},
		{"warning alias", "warning", zerolog.WarnLevel},
		{"error level", "error", zerolog.ErrorLevel},
		{"fatal level", "fatal", zerolog.FatalLevel},
		{"panic level", "panic", zerolog.PanicLevel},
		{"disabled level", "disabled", zerolog.Disabled},
		{"off alias", "off", zerolog.Disabled},
		{"unknown defaults to info", "verbose", zerolog.InfoLevel},
		{"empty defaults to info", "", zerolog.InfoLevel},
		{"mixed case", "DEBUG", zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := NewLoggerWithLevel(tt.level)
			assert.NotNil(t, log)
			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestTestLogger(t *testing.T) {
	log := NewTestLogger(t)

	log.Debug("debug line")
	log.Info("info line")
	log.Warn("warn line")
	log.Error("error line")

	withFields := log.WithField("workplace_id", "acme").
		WithFields(map[string]interface{}{"project_id": "proj1"})
	withFields.Info("carrying fields")

	assert.NotSame(t, log, withFields)

	// A nil test handle discards output instead of panicking
	silent := &TestLogger{}
	silent.Info("dropped")
	silent.WithField("key", "value").Error("also dropped")
}
