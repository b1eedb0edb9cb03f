package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pycraft/pkg/log"
)

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		format  string
		wantErr bool
	}{
		"text":    {format: "text"},
		"logfmt":  {format: "logfmt"},
		"json":    {format: "json"},
		"default": {format: ""},
		"unknown": {format: "yaml", wantErr: true},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h, err := log.CreateHandler(&bytes.Buffer{}, "info", tc.format)
			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, h)
		})
	}
}

func TestCreateHandlerRespectsLevel(t *testing.T) {
	t.Parallel()

	b := &bytes.Buffer{}
	h, err := log.CreateHandler(b, "error", "json")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("hidden")
	logger.Error("shown")

	out := b.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level string
		want  slog.Level
	}{
		"debug":    {level: "debug", want: slog.LevelDebug},
		"trace":    {level: "trace", want: slog.LevelDebug},
		"info":     {level: "info", want: slog.LevelInfo},
		"warn":     {level: "warn", want: slog.LevelWarn},
		"warning":  {level: "WARNING", want: slog.LevelWarn},
		"error":    {level: "error", want: slog.LevelError},
		"fatal":    {level: "fatal", want: slog.LevelError},
		"fallback": {level: "bogus", want: slog.LevelInfo},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, log.GetLevel(tc.level))
		})
	}
}
