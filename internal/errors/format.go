package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders err with its category header and remediation, colored.
func FormatError(err error) string {
	return format(err, true)
}

// FormatErrorPlain renders err without ANSI colors. Used for log files.
func FormatErrorPlain(err error) string {
	return format(err, false)
}

// FormatSimpleError renders any error under the given category.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	if appErr := AsAppError(err); appErr != nil {
		return FormatError(appErr)
	}
	return FormatError(&AppError{Category: category, Message: err.Error()})
}

// PrintError writes err to stderr.
func PrintError(err error) {
	FprintError(os.Stderr, err)
}

// FprintError writes err to w. Nil errors write nothing.
func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}

func format(err error, colored bool) string {
	if err == nil {
		return ""
	}

	appErr := AsAppError(err)
	if appErr == nil {
		appErr = &AppError{Category: Runtime, Message: err.Error()}
	}

	header := color.New(color.FgRed, color.Bold)
	step := color.New(color.FgYellow)
	if !colored {
		header.DisableColor()
		step.DisableColor()
	}

	var b strings.Builder
	b.WriteString(header.Sprint(appErr.Category.String()))
	b.WriteString(": ")
	b.WriteString(appErr.Message)
	b.WriteString("\n")

	if len(appErr.Remediation) > 0 {
		b.WriteString("\nTo fix this:\n")
		for _, r := range appErr.Remediation {
			b.WriteString("  ")
			b.WriteString(step.Sprint("-"))
			b.WriteString(" ")
			b.WriteString(r)
			b.WriteString("\n")
		}
	}

	return b.String()
}
