package hook

import "encoding/json"

// WarningPrefix starts the system message of a degraded response.
const WarningPrefix = "Boopifier warning: "

// Response is the JSON object written to stdout. The zero value encodes as {}.
type Response struct {
	Continue           bool            `json:"continue,omitempty"`
	SystemMessage      string          `json:"systemMessage,omitempty"`
	HookSpecificOutput *SpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// SpecificOutput carries a PreToolUse permission decision.
type SpecificOutput struct {
	HookEventName            string   `json:"hookEventName"`
	PermissionDecision       Decision `json:"permissionDecision"`
	PermissionDecisionReason string   `json:"permissionDecisionReason,omitempty"`
}

// ErrorResponse tells Claude Code to carry on and surfaces a warning.
// Used for every fatal error so the caller is never blocked.
func ErrorResponse(message string) Response {
	return Response{
		Continue:      true,
		SystemMessage: WarningPrefix + message,
	}
}

// IsEmpty reports whether the response encodes as {}.
func (r Response) IsEmpty() bool {
	return !r.Continue && r.SystemMessage == "" && r.HookSpecificOutput == nil
}

// Encode renders the response as a single line of JSON.
func (r Response) Encode() ([]byte, error) {
	return json.Marshal(r)
}
