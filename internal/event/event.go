// Package event models a single Claude Code hook event as read from stdin.
//
// Events are free-form JSON objects. Fields are looked up either directly by
// name or by a dot-separated path that walks nested objects ("tool_input.command").
package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FieldHookEventName is the field that declares which hook fired.
const FieldHookEventName = "hook_event_name"

// Event is one hook event. It is treated as read-only once parsed.
type Event map[string]any

// Parse decodes a single JSON object into an Event.
// Anything other than a JSON object (arrays, scalars, trailing data) is rejected.
func Parse(data []byte) (Event, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding event: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decoding event: unexpected data after JSON object")
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decoding event: expected a JSON object, got %s", kindOf(raw))
	}
	return Event(obj), nil
}

// Get returns the top-level field with the given name.
func (e Event) Get(key string) (any, bool) {
	v, ok := e[key]
	return v, ok
}

// String returns a top-level field as a string. Non-string values report false.
func (e Event) String(key string) (string, bool) {
	v, ok := e[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Lookup resolves a dot-separated path through nested objects.
// A path without dots is a plain top-level lookup.
func (e Event) Lookup(path string) (any, bool) {
	if !strings.Contains(path, ".") {
		return e.Get(path)
	}

	var current any = map[string]any(e)
	for _, part := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// NestedString resolves a dotted path and returns the leaf only if it is a string.
func (e Event) NestedString(path string) (string, bool) {
	v, ok := e.Lookup(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// HookEventName returns the declared hook name, or "unknown" when absent.
func (e Event) HookEventName() string {
	if name, ok := e.String(FieldHookEventName); ok {
		return name
	}
	return "unknown"
}

// JSON renders the event as compact JSON. Used as a fallback message body.
func (e Event) JSON() string {
	data, err := json.Marshal(map[string]any(e))
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(e))
	}
	return string(data)
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
