package observability

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromEnv(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, levelFromEnv("debug"))
	assert.Equal(t, slog.LevelWarn, levelFromEnv("warn"))
	assert.Equal(t, slog.LevelError, levelFromEnv("error"))
	assert.Equal(t, slog.LevelInfo, levelFromEnv("info"))
	assert.Equal(t, slog.LevelInfo, levelFromEnv(""))
	assert.Equal(t, slog.LevelInfo, levelFromEnv("nonsense"))
}

func TestLoggerFromContext(t *testing.T) {
	// Without a run_id the shared logger comes back as-is.
	assert.Same(t, Logger(), LoggerFromContext(context.Background()))

	ctx := WithRunID(context.Background(), "run-123")
	assert.NotSame(t, Logger(), LoggerFromContext(ctx))
}
