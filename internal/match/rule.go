// Package match decides whether a hook event satisfies a handler's match rules.
//
// Rules come from configuration as untyped JSON objects. ParseRule turns them
// into an explicit Rule once, at load time:
//
//	{"hook_event_name": "Notification"}                        // simple
//	{"any": [{"hook_event_name": "Stop"}, {"tool_name": "Bash"}]} // complex
//
// Any object that contains one of the reserved keys "all", "any" or "not" is a
// complex rule. A top-level event field with one of those names therefore can
// never be matched by a simple rule.
package match

import (
	"fmt"
	"strings"
)

// Type selects how string values are compared.
type Type string

const (
	// Exact compares strings byte for byte.
	Exact Type = "exact"
	// Regex compiles the expected string as a regular expression.
	Regex Type = "regex"
)

// ParseType converts a configuration value into a Type. Empty means Exact.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case "", Exact:
		return Exact, nil
	case Regex:
		return Regex, nil
	default:
		return "", fmt.Errorf("unknown match type %q (expected exact or regex)", s)
	}
}

// Kind discriminates simple and complex rules.
type Kind int

const (
	// KindSimple is an implicit AND over field/value pairs.
	KindSimple Kind = iota
	// KindComplex combines simple rules with all/any/not.
	KindComplex
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// Simple maps a field name or dotted path to the expected value.
type Simple map[string]any

// Rule is a parsed match rule. For KindSimple only Fields is used; for
// KindComplex only All, Any and Not are used. A nil slice or map means the
// member is absent, which differs from an empty member.
type Rule struct {
	Kind   Kind
	Fields Simple

	All []Simple
	Any []Simple
	Not Simple
}

// NewSimple builds a simple rule.
func NewSimple(fields map[string]any) *Rule {
	return &Rule{Kind: KindSimple, Fields: Simple(fields)}
}

// NewComplex builds a complex rule. Pass nil for absent members.
func NewComplex(all, any []Simple, not Simple) *Rule {
	return &Rule{Kind: KindComplex, All: all, Any: any, Not: not}
}

var reservedKeys = []string{"all", "any", "not"}

// ParseRule normalizes a decoded configuration value into a Rule.
// A nil value means "no rule" and yields a nil Rule.
func ParseRule(raw any) (*Rule, error) {
	if raw == nil {
		return nil, nil
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("match_rules must be an object, got %T", raw)
	}

	if !hasReservedKey(obj) {
		return NewSimple(copyMap(obj)), nil
	}

	return &Rule{
		Kind: KindComplex,
		All:  simpleList(obj["all"]),
		Any:  simpleList(obj["any"]),
		Not:  simpleObject(obj["not"]),
	}, nil
}

// Raw converts the rule back into its configuration shape.
func (r *Rule) Raw() map[string]any {
	if r == nil {
		return nil
	}
	if r.Kind == KindSimple {
		return copyMap(r.Fields)
	}

	out := make(map[string]any, 3)
	if r.All != nil {
		out["all"] = simplesToRaw(r.All)
	}
	if r.Any != nil {
		out["any"] = simplesToRaw(r.Any)
	}
	if r.Not != nil {
		out["not"] = copyMap(r.Not)
	}
	return out
}

func hasReservedKey(obj map[string]any) bool {
	for _, k := range reservedKeys {
		if _, ok := obj[k]; ok {
			return true
		}
	}
	return false
}

// simpleList extracts the object elements of an array. Non-arrays are absent,
// non-object elements are dropped.
func simpleList(v any) []Simple {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Simple, 0, len(arr))
	for _, item := range arr {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, Simple(copyMap(obj)))
		}
	}
	return out
}

func simpleObject(v any) Simple {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return Simple(copyMap(obj))
}

func simplesToRaw(list []Simple) []any {
	out := make([]any, 0, len(list))
	for _, s := range list {
		out = append(out, copyMap(s))
	}
	return out
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
