// Package notify_test tests typed access to handler configuration maps.
// Related: internal/notify/config.go
// Tags: notify, config, accessors
package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigAccessors(t *testing.T) {
	t.Parallel()

	cfg := Config{
		"summary":  "hi",
		"timeout":  float64(2500),
		"yaml_int": 7,
		"fraction": 1.5,
		"negative": float64(-3),
		"volume":   0.4,
		"random":   true,
		"files":    []any{"a.wav", 3, "b.wav"},
		"headers":  map[string]any{"X-A": "1", "X-N": float64(2)},
	}

	assert.Equal(t, "hi", cfg.String("summary", "d"))
	assert.Equal(t, "d", cfg.String("missing", "d"))
	assert.Equal(t, "d", cfg.String("timeout", "d"), "non-string falls back")

	assert.Equal(t, 2500, cfg.Int("timeout", 1))
	assert.Equal(t, 7, cfg.Int("yaml_int", 1))
	assert.Equal(t, 1, cfg.Int("fraction", 1))
	assert.Equal(t, 1, cfg.Int("negative", 1))
	assert.Equal(t, 1, cfg.Int("summary", 1))

	assert.InDelta(t, 0.4, cfg.Float("volume", 1), 1e-9)
	assert.InDelta(t, 7.0, cfg.Float("yaml_int", 1), 1e-9)
	assert.InDelta(t, 1.0, cfg.Float("missing", 1), 1e-9)

	assert.True(t, cfg.Bool("random", false))
	assert.True(t, cfg.Bool("missing", true))

	files, ok := cfg.Strings("files")
	require.True(t, ok)
	assert.Equal(t, []string{"a.wav", "b.wav"}, files)
	_, ok = cfg.Strings("summary")
	assert.False(t, ok)
	_, ok = cfg.Strings("missing")
	assert.False(t, ok)

	assert.Equal(t, map[string]string{"X-A": "1", "X-N": "2"}, cfg.Map("headers"))
	assert.Nil(t, cfg.Map("summary"))
}

func TestConfigRequire(t *testing.T) {
	t.Parallel()

	cfg := Config{"url": "https://example.com", "port": float64(1)}

	got, err := cfg.Require("Webhook", "url")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got)

	_, err = cfg.Require("Signal", "recipient")
	require.Error(t, err)
	assert.Equal(t, "Signal handler requires 'recipient' configuration", err.Error())

	_, err = cfg.Require("Email", "port")
	assert.Error(t, err, "non-string values do not satisfy Require")
}

func TestParseUrgency(t *testing.T) {
	t.Parallel()

	assert.Equal(t, UrgencyLow, ParseUrgency("low"))
	assert.Equal(t, UrgencyCritical, ParseUrgency("critical"))
	assert.Equal(t, UrgencyNormal, ParseUrgency("normal"))
	assert.Equal(t, UrgencyNormal, ParseUrgency("urgent"))
}
