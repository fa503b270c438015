package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/boopifier/boopifier/internal/event"
)

const (
	defaultSummary        = "Claude Code Notification"
	defaultDesktopTimeout = 5000
)

// DesktopHandler shows a native desktop notification.
//
// Config keys: summary, body ({{field}} template; defaults to the event
// JSON), timeout (milliseconds, default 5000), urgency (low|normal|critical).
type DesktopHandler struct {
	sender Sender
}

// NewDesktopHandler creates a DesktopHandler sending through sender.
func NewDesktopHandler(sender Sender) *DesktopHandler {
	return &DesktopHandler{sender: sender}
}

func (h *DesktopHandler) Type() string {
	return "desktop"
}

func (h *DesktopHandler) Handle(ctx context.Context, ev event.Event, cfg Config) error {
	n := NewNotification(
		cfg.String("summary", defaultSummary),
		RenderField(cfg, "body", ev, ev.JSON()),
	)
	n.Timeout = time.Duration(cfg.Int("timeout", defaultDesktopTimeout)) * time.Millisecond
	n.Urgency = ParseUrgency(cfg.String("urgency", string(UrgencyNormal)))

	if err := h.sender.SendVisual(ctx, n); err != nil {
		return fmt.Errorf("failed to send desktop notification: %w", err)
	}
	return nil
}
