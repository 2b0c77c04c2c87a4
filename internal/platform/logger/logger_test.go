package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/phrazzld/elearn-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLevels(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	tests := []struct {
		level       string
		debugLogged bool
		infoLogged  bool
	}{
		{level: "debug", debugLogged: true, infoLogged: true},
		{level: "info", debugLogged: false, infoLogged: true},
		{level: "warn", debugLogged: false, infoLogged: false},
		{level: "ERROR", debugLogged: false, infoLogged: false},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := setup(config.ServerConfig{LogLevel: tc.level}, &buf)

			l.Debug("debug message")
			assert.Equal(t, tc.debugLogged, bytes.Contains(buf.Bytes(), []byte("debug message")))

			buf.Reset()
			l.Info("info message")
			assert.Equal(t, tc.infoLogged, bytes.Contains(buf.Bytes(), []byte("info message")))
		})
	}
}

func TestSetupInvalidLevelWarnsAndUsesInfo(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var buf bytes.Buffer
	l := setup(config.ServerConfig{LogLevel: "chatty"}, &buf)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "chatty", entry["configured_level"])

	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
	assert.Same(t, l, slog.Default())
}

func TestContextHelpers(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	scoped := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, FromContext(ctx))
	assert.Same(t, scoped, FromContextOrDefault(ctx, fallback))

	//nolint:staticcheck
	assert.Same(t, fallback, FromContextOrDefault(nil, fallback))
}
