package errors

import "fmt"

// ConfigFileNotFound reports a missing configuration file.
func ConfigFileNotFound(path string) *AppError {
	return &AppError{
		Category: Configuration,
		Message:  fmt.Sprintf("Failed to load config from %s: file not found", path),
		Remediation: []string{
			"Create ~/.claude/boopifier.json or $CLAUDE_PROJECT_DIR/.claude/boopifier.json",
			"Pass an explicit path with --config",
		},
	}
}

// ConfigLoadError reports a configuration file that could not be read,
// parsed, validated or resolved.
func ConfigLoadError(path string, err error) *AppError {
	return &AppError{
		Category: Configuration,
		Message:  fmt.Sprintf("Failed to load config from %s: %v", path, err),
		Err:      err,
		Remediation: []string{
			"Run 'boopifier check' to see the full error",
			"Verify the file is valid JSON (or YAML for .yaml/.yml files)",
		},
	}
}

// SecretNotFound reports an unset environment variable referenced by {{env.NAME}}.
func SecretNotFound(name string) *AppError {
	return &AppError{
		Category:    Configuration,
		Message:     fmt.Sprintf("Environment variable not found: %s", name),
		Remediation: []string{fmt.Sprintf("Export %s before Claude Code starts", name)},
	}
}

// SecretFileUnreadable reports a {{file.PATH}} reference that cannot be read.
func SecretFileUnreadable(path string, err error) *AppError {
	return &AppError{
		Category:    Configuration,
		Message:     fmt.Sprintf("Failed to read file %s: %v", path, err),
		Err:         err,
		Remediation: []string{"Check the file exists and is readable"},
	}
}

// InvalidHandlerConfig reports a handler entry that failed validation.
func InvalidHandlerConfig(name string, err error) *AppError {
	return &AppError{
		Category: Configuration,
		Message:  fmt.Sprintf("Invalid handler %q: %v", name, err),
		Err:      err,
	}
}

// StdinReadError reports a failure to read the event line.
func StdinReadError(err error) *AppError {
	return &AppError{
		Category: Event,
		Message:  fmt.Sprintf("Error reading stdin: %v", err),
		Err:      err,
	}
}

// EventParseError reports an event that is not a JSON object.
func EventParseError(err error) *AppError {
	return &AppError{
		Category: Event,
		Message:  fmt.Sprintf("Invalid JSON: %v", err),
		Err:      err,
	}
}

// UnknownHook reports an unrecognized hook_event_name.
func UnknownHook(err error) *AppError {
	return &AppError{
		Category:    Hook,
		Message:     fmt.Sprintf("Unknown hook: %v", err),
		Err:         err,
		Remediation: []string{"Upgrade boopifier or remove the hook registration from Claude Code settings"},
	}
}

// UnknownHandlerType reports a handler type missing from the registry.
func UnknownHandlerType(handlerType string) *AppError {
	return &AppError{
		Category:    Handler,
		Message:     fmt.Sprintf("unknown handler type: %s", handlerType),
		Remediation: []string{"Run 'boopifier --list-handlers' to see available types"},
	}
}
