package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into Settings.
const EnvPrefix = "BOOPIFIER_"

// Settings are process-level runtime options, separate from the handler
// configuration file. Command-line flags take precedence over these.
type Settings struct {
	// Debug enables the debug log file.
	Debug bool `koanf:"debug"`

	// LogFile is where debug output is appended.
	LogFile string `koanf:"log_file"`

	// ConfigPath overrides config file auto-detection.
	ConfigPath string `koanf:"config"`

	// ProjectDir is the active project, normally exported by Claude Code.
	ProjectDir string `koanf:"-"`
}

// DefaultLogFile returns the default debug log location.
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), "boopifier.log")
}

// LoadSettings reads Settings from BOOPIFIER_* environment variables.
// Example: BOOPIFIER_LOG_FILE -> log_file
func LoadSettings() (Settings, error) {
	k := koanf.New(".")
	if err := k.Set("log_file", DefaultLogFile()); err != nil {
		return Settings{}, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return Settings{}, fmt.Errorf("failed to load environment: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if s.LogFile == "" {
		s.LogFile = DefaultLogFile()
	}
	s.LogFile = expandHomePath(s.LogFile)
	s.ConfigPath = expandHomePath(s.ConfigPath)
	s.ProjectDir = os.Getenv(ProjectDirEnv)
	return s, nil
}

// envTransform converts environment variable names to settings keys
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
