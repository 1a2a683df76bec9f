package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLoggerWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	config := NewConfig(LogLevelInfo, LogFormatJSON, "codecasino", "test", EnvironmentTest, false)
	InitLoggerWithWriter(config, &buf)

	slog.Default().Info("hello")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{"), "expected JSON output, got %q", out)
	assert.Contains(t, out, `"service":"codecasino"`)
}

func TestFromContext_IncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig(LogLevelDebug, LogFormatText, "codecasino", "test", EnvironmentTest, false), &buf)

	ctx := WithRequestID(context.Background(), "req-123")
	FromContext(ctx).Info("with id")

	assert.Contains(t, buf.String(), "req-123")
}

func TestRequestIDFromContext_AbsentByDefault(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestLogLevel_Parsing(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{Level: "debug"}.LogLevel())
	assert.Equal(t, slog.LevelWarn, Config{Level: "WARNING"}.LogLevel())
	assert.Equal(t, slog.LevelInfo, Config{Level: "bogus"}.LogLevel())
}
