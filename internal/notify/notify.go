package notify

import (
	"context"
	"time"

	"github.com/boopifier/boopifier/internal/event"
	"github.com/boopifier/boopifier/internal/hook"
)

// Handler delivers one event to one notification backend.
type Handler interface {
	// Type is the name configuration files use to select this backend.
	Type() string

	// Handle delivers ev using the handler-specific cfg. Handle must not
	// modify ev; cfg is a private copy.
	Handle(ctx context.Context, ev event.Event, cfg Config) error
}

// Decider is implemented by handlers that answer PreToolUse permission
// requests. The dispatcher calls Decide instead of Handle for them.
type Decider interface {
	Decide(ctx context.Context, ev event.Event, cfg Config) (hook.Decision, string, error)
}

// Urgency is the importance hint of a desktop notification.
type Urgency string

const (
	// UrgencyLow is for background information.
	UrgencyLow Urgency = "low"
	// UrgencyNormal is the default.
	UrgencyNormal Urgency = "normal"
	// UrgencyCritical stays visible until dismissed on most desktops.
	UrgencyCritical Urgency = "critical"
)

// ParseUrgency maps configuration text to an Urgency. Anything unknown is
// treated as normal.
func ParseUrgency(s string) Urgency {
	switch Urgency(s) {
	case UrgencyLow, UrgencyCritical:
		return Urgency(s)
	default:
		return UrgencyNormal
	}
}

// Notification is a single desktop notification.
type Notification struct {
	// AppName is shown by notification daemons that support it.
	AppName string

	// Summary is the notification title.
	Summary string

	// Body is the notification text.
	Body string

	Urgency Urgency

	// Timeout is how long the notification stays on screen. Zero leaves the
	// decision to the desktop.
	Timeout time.Duration
}

// NewNotification creates a normal-urgency Notification.
func NewNotification(summary, body string) Notification {
	return Notification{
		AppName: appName,
		Summary: summary,
		Body:    body,
		Urgency: UrgencyNormal,
	}
}

const appName = "Claude Code"
