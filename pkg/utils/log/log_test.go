package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeisme/wcagcheck/pkg/configs"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.WarnLevel,
		"bogus":   zerolog.WarnLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}

func TestResolveLevelPriority(t *testing.T) {
	cfg := &configs.LogConfig{Level: "error"}
	assert.Equal(t, zerolog.DebugLevel, resolveLevel(cfg, &configs.AppConfig{Debug: true, Verbose: true}))
	assert.Equal(t, zerolog.InfoLevel, resolveLevel(cfg, &configs.AppConfig{Verbose: true}))
	assert.Equal(t, zerolog.ErrorLevel, resolveLevel(cfg, &configs.AppConfig{}))
}

func TestNew_JSONConsole(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	logger := New(context.Background(), &buf,
		&configs.LogConfig{Level: "info", Mode: "console", JSON: true},
		&configs.AppConfig{Name: "wcagcheck", Verbose: true})

	logger.Debug().Msg("hidden")
	logger.Warn().Str("theme", "dark").Msg("no block found")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "dark", entry["theme"])
	assert.Equal(t, "wcagcheck", entry["app"])
}

func TestNew_QuietDiscards(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	logger := New(context.Background(), &buf,
		&configs.LogConfig{Level: "debug", Mode: "console", JSON: true},
		&configs.AppConfig{Quiet: true, Debug: true})
	logger.Error().Msg("dropped")
	assert.Zero(t, buf.Len())
}
