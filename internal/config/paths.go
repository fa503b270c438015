package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// ClaudeDir is the Claude Code settings directory name.
	ClaudeDir = ".claude"
	// FileName is the configuration file name inside ClaudeDir.
	FileName = "boopifier.json"
	// ProjectDirEnv names the project directory exported by Claude Code.
	ProjectDirEnv = "CLAUDE_PROJECT_DIR"
)

// Location describes where the configuration was found.
type Location struct {
	Path string

	// ProjectLocal is true when Path lives inside the project directory.
	// Overrides are only applied to the global file.
	ProjectLocal bool
}

// ResolvePath picks the configuration file:
//  1. $CLAUDE_PROJECT_DIR/.claude/boopifier.json if it exists
//  2. ~/.claude/boopifier.json otherwise
func ResolvePath(projectDir, homeDir string) Location {
	if projectDir != "" {
		candidate := ProjectConfigPath(projectDir)
		if fileExists(candidate) {
			return Location{Path: candidate, ProjectLocal: true}
		}
	}
	if homeDir == "" {
		homeDir = "."
	}
	return Location{Path: filepath.Join(homeDir, ClaudeDir, FileName)}
}

// ProjectConfigPath returns the project-local configuration path.
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(projectDir, ClaudeDir, FileName)
}

// ShouldApplyOverrides reports whether overrides apply for projectDir: only
// when a project directory is known and it has no config file of its own.
func ShouldApplyOverrides(projectDir string) bool {
	if projectDir == "" {
		return false
	}
	return !fileExists(ProjectConfigPath(projectDir))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

// ExpandHomePath expands a leading ~ in path.
func ExpandHomePath(path string) string {
	return expandHomePath(path)
}
