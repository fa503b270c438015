// Package notify implements the notification backends boopifier dispatches
// hook events to.
//
// Each backend is a Handler identified by its type name, which is what the
// "type" field of a handler entry in the configuration file refers to:
//
//   - desktop: native desktop notification (notify-send, osascript, PowerShell)
//   - sound: plays an audio file (paplay, afplay, PowerShell), capped at 5s
//   - signal: sends a message through signal-cli
//   - webhook: POSTs JSON, Slack or Discord payloads
//   - email: sends a plain-text mail over SMTP
//   - decision: answers PreToolUse permission requests with a fixed decision
//
// Backends read their settings from a Config map and may embed event fields
// in their texts with {{field}} placeholders.
//
// # Usage
//
//	reg := notify.NewRegistry(notify.WithDebug(true))
//	h, ok := reg.Lookup("desktop")
//	if ok {
//		err := h.Handle(ctx, ev, notify.Config{"summary": "Done"})
//	}
package notify
