package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := map[string]zerolog.Level{
		"debug":    zerolog.DebugLevel,
		"warn":     zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"":         zerolog.InfoLevel,
		"chatty":   zerolog.InfoLevel,
		"disabled": zerolog.Disabled,
	}
	for in, want := range tests {
		SetLevel(in)
		assert.Equal(t, want, zerolog.GlobalLevel(), "SetLevel(%q)", in)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var jsonOut, consoleOut bytes.Buffer
	l := New("json", &jsonOut, &consoleOut)

	l.Info().Str("route", "/questions").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &line))
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "/questions", line["route"])
	assert.Zero(t, consoleOut.Len())
}

func TestNewConsoleFormat(t *testing.T) {
	var jsonOut, consoleOut bytes.Buffer
	l := New("console", &jsonOut, &consoleOut)

	l.Info().Msg("hello")

	assert.Contains(t, consoleOut.String(), "hello")
	assert.False(t, json.Valid(consoleOut.Bytes()))
	assert.Zero(t, jsonOut.Len())
}

func TestConfigureAppliesLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	Configure("json", "warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
