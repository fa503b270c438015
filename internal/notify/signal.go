package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/boopifier/boopifier/internal/event"
)

const signalTimeout = 30 * time.Second

// SignalHandler sends a message with signal-cli.
//
// Config keys: recipient (required), account (sender number), signal_cli_path
// (default "signal-cli"), message ({{field}} template).
type SignalHandler struct{}

// NewSignalHandler creates a SignalHandler.
func NewSignalHandler() *SignalHandler {
	return &SignalHandler{}
}

func (h *SignalHandler) Type() string {
	return "signal"
}

func (h *SignalHandler) Handle(ctx context.Context, ev event.Event, cfg Config) error {
	recipient, err := cfg.Require("Signal", "recipient")
	if err != nil {
		return err
	}

	message := RenderField(cfg, "message", ev, "Claude Code Event: "+ev.JSON())
	path := cfg.String("signal_cli_path", "signal-cli")

	ctx, cancel := context.WithTimeout(ctx, signalTimeout)
	defer cancel()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, signalArgs(cfg, recipient, message)...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("signal-cli did not finish: %w", ctx.Err())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("signal-cli failed: %s", strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("failed to execute signal-cli: %w", err)
	}
	return nil
}

// signalArgs builds: [-a ACCOUNT] send -m MESSAGE RECIPIENT
func signalArgs(cfg Config, recipient, message string) []string {
	var args []string
	if account, ok := cfg.Lookup("account"); ok {
		args = append(args, "-a", account)
	}
	return append(args, "send", "-m", message, recipient)
}
