package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw     string
		want    Level
		wantErr bool
	}{
		{raw: "", want: LevelInfo},
		{raw: "debug", want: LevelDebug},
		{raw: " WARN ", want: LevelWarn},
		{raw: "error", want: LevelError},
		{raw: "loud", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.raw)
		if tt.wantErr {
			require.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestLogger_WritesFieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core)).Named("etl").With("run_id", "r-1")

	logger.Warn("source missing", "label", "t20", "error", errors.New("no such file"))
	logger.InfoContext(context.Background(), "published", "players", 3)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "etl", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	assert.Equal(t, "r-1", fields["run_id"])
	assert.Equal(t, "t20", fields["label"])
	assert.Equal(t, "no such file", fields["error"])
	assert.Equal(t, int64(3), entries[1].ContextMap()["players"])
}

func TestLogger_NilIsSafe(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Info("ignored")
		_ = logger.With("k", "v")
		_ = logger.Sync()
	})
}
