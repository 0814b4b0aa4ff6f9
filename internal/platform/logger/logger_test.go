package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treetap/treetap-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantDebug bool
	}{
		{
			name:      "debug level",
			logLevel:  "debug",
			wantDebug: true,
		},
		{
			name:      "info level",
			logLevel:  "info",
			wantDebug: false,
		},
		{
			name:      "error level",
			logLevel:  "error",
			wantDebug: false,
		},
		{
			name:      "invalid level falls back to info",
			logLevel:  "bogus",
			wantDebug: false,
		},
		{
			name:      "case insensitive",
			logLevel:  "DEBUG",
			wantDebug: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})

			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.Equal(t, tt.wantDebug, logger.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestSetupSetsDefaultLogger(t *testing.T) {
	logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "warn"})

	require.NoError(t, err)
	assert.Equal(t, logger, slog.Default())
}
