// Package errors_test tests error formatting with and without colors.
// Related: internal/errors/format.go
// Tags: errors, formatting, colors, output, plain-text
package errors

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Run("nil error returns empty string", func(t *testing.T) {
		t.Parallel()
		if result := FormatError(nil); result != "" {
			t.Errorf("Expected empty string, got %q", result)
		}
	})

	t.Run("basic error formatting", func(t *testing.T) {
		t.Parallel()
		err := &AppError{
			Category: Configuration,
			Message:  "test message",
		}

		result := FormatError(err)

		if !strings.Contains(result, "Configuration Error") {
			t.Error("Expected output to contain 'Configuration Error'")
		}
		if !strings.Contains(result, "test message") {
			t.Error("Expected output to contain 'test message'")
		}
		if strings.Contains(result, "To fix this:") {
			t.Error("Expected no remediation section")
		}
	})

	t.Run("error with remediation", func(t *testing.T) {
		t.Parallel()
		err := &AppError{
			Category:    Event,
			Message:     "error",
			Remediation: []string{"step 1", "step 2"},
		}

		result := FormatError(err)

		if !strings.Contains(result, "To fix this:") {
			t.Error("Expected output to contain 'To fix this:'")
		}
		if !strings.Contains(result, "step 1") || !strings.Contains(result, "step 2") {
			t.Error("Expected output to contain both steps")
		}
	})
}

func TestFormatErrorPlain(t *testing.T) {
	t.Run("nil error returns empty string", func(t *testing.T) {
		t.Parallel()
		if result := FormatErrorPlain(nil); result != "" {
			t.Errorf("Expected empty string, got %q", result)
		}
	})

	t.Run("basic formatting without colors", func(t *testing.T) {
		t.Parallel()
		err := &AppError{
			Category:    Configuration,
			Message:     "config error",
			Remediation: []string{"fix it"},
		}

		result := FormatErrorPlain(err)

		if strings.Contains(result, "\x1b[") {
			t.Error("Expected no ANSI escape codes")
		}
		if !strings.HasPrefix(result, "Configuration Error: config error") {
			t.Errorf("Unexpected output %q", result)
		}
	})

	t.Run("plain error gets runtime category", func(t *testing.T) {
		t.Parallel()
		result := FormatErrorPlain(&testError{})
		if !strings.HasPrefix(result, "Runtime Error: test error") {
			t.Errorf("Unexpected output %q", result)
		}
	})
}

func TestPrintError(t *testing.T) {
	// PrintError writes to stderr; this only verifies it doesn't panic
	PrintError(&AppError{Category: Runtime, Message: "test"})
	PrintError(nil)
}

func TestFprintError(t *testing.T) {
	t.Run("nil error does nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		FprintError(&buf, nil)

		if buf.Len() != 0 {
			t.Errorf("Expected no output for nil error, got %q", buf.String())
		}
	})

	t.Run("writes error to buffer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		FprintError(&buf, &AppError{Category: Handler, Message: "webhook failed"})

		if !strings.Contains(buf.String(), "webhook failed") {
			t.Error("Expected buffer to contain error message")
		}
	})
}

func TestFormatSimpleError(t *testing.T) {
	t.Run("nil error returns empty string", func(t *testing.T) {
		t.Parallel()
		if result := FormatSimpleError(nil, Runtime); result != "" {
			t.Errorf("Expected empty string, got %q", result)
		}
	})

	t.Run("formats regular error", func(t *testing.T) {
		t.Parallel()
		result := FormatSimpleError(&testError{}, Handler)

		if !strings.Contains(result, "Handler Error") {
			t.Error("Expected output to contain 'Handler Error'")
		}
		if !strings.Contains(result, "test error") {
			t.Error("Expected output to contain the error message")
		}
	})

	t.Run("keeps category of AppError", func(t *testing.T) {
		t.Parallel()
		result := FormatSimpleError(NewHookError("bad hook"), Handler)
		if !strings.Contains(result, "Hook Error") {
			t.Error("Expected output to keep the Hook category")
		}
	})
}
