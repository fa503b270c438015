// Package config_test tests BOOPIFIER_* environment settings.
// Related: internal/config/settings.go
// Tags: config, settings, env-vars, koanf
package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("BOOPIFIER_DEBUG", "")
	t.Setenv("BOOPIFIER_LOG_FILE", "")
	t.Setenv("BOOPIFIER_CONFIG", "")
	t.Setenv(ProjectDirEnv, "/proj")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.False(t, s.Debug)
	assert.Equal(t, DefaultLogFile(), s.LogFile)
	assert.Empty(t, s.ConfigPath)
	assert.Equal(t, "/proj", s.ProjectDir)
}

func TestLoadSettings_FromEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BOOPIFIER_DEBUG", "true")
	t.Setenv("BOOPIFIER_LOG_FILE", "~/boop.log")
	t.Setenv("BOOPIFIER_CONFIG", "/etc/boop.json")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.True(t, s.Debug)
	assert.Equal(t, filepath.Join(home, "boop.log"), s.LogFile)
	assert.Equal(t, "/etc/boop.json", s.ConfigPath)
}

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "log_file", envTransform("BOOPIFIER_LOG_FILE"))
	assert.Equal(t, "debug", envTransform("BOOPIFIER_DEBUG"))
}
