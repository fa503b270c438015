// Package hook classifies Claude Code hook events and builds the JSON response
// each hook category expects on stdout.
//
// Every category except PreToolUse is passive: handlers only observe and the
// response is an empty object. PreToolUse answers with a permission decision,
// taken from the first interactive handler outcome or "allow" when none exists.
package hook

import (
	"fmt"

	"github.com/boopifier/boopifier/internal/event"
)

// Kind is a hook category.
type Kind int

// Hook kinds, one per supported hook_event_name.
const (
	KindStop Kind = iota
	KindSubagentStop
	KindNotification
	KindPreToolUse
	KindPostToolUse
	KindPermissionRequest
	KindUserPromptSubmit
	KindSessionStart
	KindSessionEnd
	KindPreCompact
)

var kindNames = map[Kind]string{
	KindStop:              "Stop",
	KindSubagentStop:      "SubagentStop",
	KindNotification:      "Notification",
	KindPreToolUse:        "PreToolUse",
	KindPostToolUse:       "PostToolUse",
	KindPermissionRequest: "PermissionRequest",
	KindUserPromptSubmit:  "UserPromptSubmit",
	KindSessionStart:      "SessionStart",
	KindSessionEnd:        "SessionEnd",
	KindPreCompact:        "PreCompact",
}

// String returns the hook event name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Kinds lists every supported hook kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindStop, KindSubagentStop, KindNotification, KindPreToolUse, KindPostToolUse,
		KindPermissionRequest, KindUserPromptSubmit, KindSessionStart, KindSessionEnd, KindPreCompact,
	}
}

// ParseKind maps a hook event name onto a Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Hook is the category of the current event.
type Hook struct {
	Kind Kind

	// Name is the hook_event_name exactly as received. Stop and SubagentStop
	// share behavior but keep their own name.
	Name string

	// ToolName is populated for PreToolUse.
	ToolName string
}

// UnknownHookError reports an event whose hook_event_name is not recognized.
type UnknownHookError struct {
	Name string
}

func (e *UnknownHookError) Error() string {
	return fmt.Sprintf("unknown hook type: %s", e.Name)
}

// FromEvent derives the hook from the event's hook_event_name field.
func FromEvent(ev event.Event) (Hook, error) {
	name := ev.HookEventName()
	kind, ok := ParseKind(name)
	if !ok {
		return Hook{}, &UnknownHookError{Name: name}
	}

	h := Hook{Kind: kind, Name: name}
	if kind == KindPreToolUse {
		h.ToolName = "unknown"
		if tool, ok := ev.String("tool_name"); ok {
			h.ToolName = tool
		}
	}
	return h, nil
}

// Type returns the hook name used for logging and response labels.
func (h Hook) Type() string {
	if h.Name != "" {
		return h.Name
	}
	return h.Kind.String()
}

// Passive reports whether the hook ignores handler outcomes.
func (h Hook) Passive() bool {
	return h.Kind != KindPreToolUse
}

// Response builds the stdout response for this hook from the handler outcomes.
func (h Hook) Response(outcomes []Outcome) Response {
	if h.Kind != KindPreToolUse {
		return Response{}
	}

	decision, reason := Allow, ""
	for _, o := range outcomes {
		if o.Kind == OutcomeInteractive {
			decision, reason = o.Decision, o.Reason
			break
		}
	}

	return Response{
		HookSpecificOutput: &SpecificOutput{
			HookEventName:            KindPreToolUse.String(),
			PermissionDecision:       decision,
			PermissionDecisionReason: reason,
		},
	}
}
