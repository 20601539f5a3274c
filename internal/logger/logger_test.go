package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
		{"bogus", InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("warn", "text", &buf)
	t.Cleanup(func() { defaultLogger = nil })

	Debug("hidden %d", 1)
	Info("hidden %d", 2)
	Warn("shown %d", 3)
	Error("shown %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown 3")
	assert.Contains(t, out, "[ERROR] shown 4")
}

func TestRunIDText(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", "text", &buf)
	t.Cleanup(func() { defaultLogger = nil })

	SetRunID("abc")
	Info("loaded")
	SetRunID("")
	Info("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[INFO] run=abc loaded")
	assert.NotContains(t, lines[1], "run=")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("debug", "json", &buf)
	t.Cleanup(func() { defaultLogger = nil })

	SetRunID("run-1")
	Debug("window %s matched %d readings", "sunrise", 3)

	var entry map[string]string
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "run-1", entry["run_id"])
	assert.Equal(t, "window sunrise matched 3 readings", entry["msg"])
	assert.NotEmpty(t, entry["time"])
}

func TestNilLoggerIsNoop(t *testing.T) {
	defaultLogger = nil
	assert.NotPanics(t, func() {
		Debug("x")
		Info("x")
		Warn("x")
		Error("x")
		SetRunID("x")
	})
}

func TestTextFormatIncludesCallerFile(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", "text", &buf)
	t.Cleanup(func() { defaultLogger = nil })

	Info("where")

	assert.Contains(t, buf.String(), "logger_test.go:")
	assert.Contains(t, buf.String(), "[INFO] where")
}

func TestJSONFormatOmitsCallerFile(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", "json", &buf)
	t.Cleanup(func() { defaultLogger = nil })

	Info("where")

	assert.NotContains(t, buf.String(), "logger_test.go:")
}
