package symlog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konfuzian/symbolic-language/symlog"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    slog.Level
		expectError bool
	}{
		"error level":      {input: "error", expected: slog.LevelError},
		"warn level":       {input: "warn", expected: slog.LevelWarn},
		"warning level":    {input: "warning", expected: slog.LevelWarn},
		"info level":       {input: "info", expected: slog.LevelInfo},
		"debug level":      {input: "debug", expected: slog.LevelDebug},
		"case insensitive": {input: "INFO", expected: slog.LevelInfo},
		"unknown level":    {input: "unknown", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			lvl, err := symlog.GetLevel(tc.input)
			if tc.expectError {
				require.Error(t, err)
				require.ErrorIs(t, err, symlog.ErrUnknownLogLevel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, lvl)
		})
	}
}

func TestGetFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    symlog.Format
		expectError bool
	}{
		"json format":       {input: "json", expected: symlog.FormatJSON},
		"logfmt format":     {input: "logfmt", expected: symlog.FormatLogfmt},
		"case insensitive":  {input: "JSON", expected: symlog.FormatJSON},
		"unknown format":    {input: "xml", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := symlog.GetFormat(tc.input)
			if tc.expectError {
				require.Error(t, err)
				require.ErrorIs(t, err, symlog.ErrUnknownLogFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, f)
		})
	}
}

func TestCreateHandlerWithStringsInvalidArgument(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	_, err := symlog.CreateHandlerWithStrings(&buf, "bogus", "json")
	require.Error(t, err)
	assert.ErrorIs(t, err, symlog.ErrInvalidArgument)
}

func TestCreateHandlerRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := symlog.CreateHandler(&buf, slog.LevelWarn, symlog.FormatJSON)
	logger := slog.New(handler)

	logger.Info("should be filtered")
	assert.Empty(t, buf.String())

	logger.Warn("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestCreateHandlerLogfmtFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := symlog.CreateHandler(&buf, slog.LevelInfo, symlog.FormatLogfmt)
	slog.New(handler).Info("hello", "key", "value")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "key=value")
}
