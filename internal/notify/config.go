package notify

import (
	"fmt"
	"math"
)

// Config holds the handler-specific settings of one handler entry. Values
// come straight from the configuration file, so numbers are float64 for JSON
// and int for YAML.
type Config map[string]any

// String returns the string at key, or def when missing or not a string.
func (c Config) String(key, def string) string {
	if s, ok := c.Lookup(key); ok {
		return s
	}
	return def
}

// Lookup returns the string at key and whether it was present as a string.
func (c Config) Lookup(key string) (string, bool) {
	s, ok := c[key].(string)
	return s, ok
}

// Require returns the string at key or an error naming the backend.
// Example: "Signal handler requires 'recipient' configuration"
func (c Config) Require(backend, key string) (string, error) {
	s, ok := c.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%s handler requires '%s' configuration", backend, key)
	}
	return s, nil
}

// Int returns a non-negative whole number at key, or def.
func (c Config) Int(key string, def int) int {
	f, ok := toFloat(c[key])
	if !ok || f < 0 || f != math.Trunc(f) {
		return def
	}
	return int(f)
}

// Float returns the number at key, or def.
func (c Config) Float(key string, def float64) float64 {
	if f, ok := toFloat(c[key]); ok {
		return f
	}
	return def
}

// Bool returns the boolean at key, or def.
func (c Config) Bool(key string, def bool) bool {
	if b, ok := c[key].(bool); ok {
		return b
	}
	return def
}

// Strings returns the string elements of the array at key. Non-string
// elements are skipped. ok is false when key is missing or not an array.
func (c Config) Strings(key string) (values []string, ok bool) {
	raw, present := c[key]
	if !present {
		return nil, false
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []string:
		return append([]string(nil), v...), true
	default:
		return nil, false
	}

	values = make([]string, 0, len(items))
	for _, item := range items {
		if s, isString := item.(string); isString {
			values = append(values, s)
		}
	}
	return values, true
}

// Map returns the object at key as a string map. Non-string values are
// formatted with %v.
func (c Config) Map(key string) map[string]string {
	raw, ok := c[key].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, isString := v.(string); isString {
			out[k] = s
			continue
		}
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
