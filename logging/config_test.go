package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]struct {
		want zerolog.Level
		ok   bool
	}{
		"":          {zerolog.InfoLevel, false},
		"DEBUG":     {zerolog.DebugLevel, true},
		" warning ": {zerolog.WarnLevel, true},
		"off":       {zerolog.Disabled, true},
		"trace":     {zerolog.TraceLevel, true},
		"loud":      {zerolog.InfoLevel, false},
	}
	for raw, tc := range cases {
		got, ok := parseLevel(raw)
		assert.Equal(t, tc.want, got, raw)
		assert.Equal(t, tc.ok, ok, raw)
	}
}

func TestParseFormatAndBool(t *testing.T) {
	f, ok := parseFormat("JSON")
	assert.True(t, ok)
	assert.Equal(t, FormatJSON, f)
	_, ok = parseFormat("xml")
	assert.False(t, ok)

	v, ok := parseBool("true")
	assert.True(t, ok)
	assert.True(t, v)
	_, ok = parseBool("maybe")
	assert.False(t, ok)
}

func TestApplyEnvOverrides(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:     "error",
		EnvLogFormat:    "json",
		EnvLogTimestamp: "false",
	}
	cfg := DefaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg, func(k string) string { return env[k] })

	assert.Equal(t, Config{Level: zerolog.ErrorLevel, Format: FormatJSON, Timestamp: false}, cfg)

	// Unknown values leave the profile untouched.
	cfg = DefaultConfig(ProfileTest)
	applyEnvOverrides(&cfg, func(string) string { return "???" })
	assert.Equal(t, DefaultConfig(ProfileTest), cfg)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Level: zerolog.InfoLevel, Format: FormatJSON})
	l.Debug().Msg("hidden")
	l.Info().Int("trial", 3).Msg("visible")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "visible", ev["message"])
	assert.Equal(t, "wot", ev["app"])
	assert.EqualValues(t, 3, ev["trial"])
	assert.NotContains(t, ev, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Level: zerolog.DebugLevel, Format: FormatConsole, Timestamp: true})
	l.Debug().Str("pair", "0→1").Msg("solving")

	assert.Contains(t, buf.String(), "solving")
	assert.Contains(t, buf.String(), "pair=")
	assert.NotContains(t, buf.String(), "\x1b[", "no colour outside a terminal")
}

func TestConfigureOnce(t *testing.T) {
	a := ConfigureTests()
	b := ConfigureRuntime()
	assert.Equal(t, a.GetLevel(), b.GetLevel())
}
