package notify

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/boopifier/boopifier/internal/event"
)

// Render replaces every {{key}} in tmpl with the value of the top-level event
// field key. Strings are inserted as-is, anything else as compact JSON.
// Placeholders naming absent fields are left untouched.
func Render(tmpl string, ev event.Event) string {
	if !strings.Contains(tmpl, "{{") {
		return tmpl
	}

	keys := make([]string, 0, len(ev))
	for k := range ev {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := tmpl
	for _, k := range keys {
		placeholder := "{{" + k + "}}"
		if strings.Contains(result, placeholder) {
			result = strings.ReplaceAll(result, placeholder, valueString(ev[k]))
		}
	}
	return result
}

// RenderField renders the template stored at cfg[key], or returns fallback
// when the key is missing or not a string.
func RenderField(cfg Config, key string, ev event.Event, fallback string) string {
	tmpl, ok := cfg.Lookup(key)
	if !ok {
		return fallback
	}
	return Render(tmpl, ev)
}

// RenderValue renders every string inside v, recursing into objects and
// arrays. Other values are returned unchanged.
func RenderValue(v any, ev event.Event) any {
	switch val := v.(type) {
	case string:
		return Render(val, ev)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = RenderValue(item, ev)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = RenderValue(item, ev)
		}
		return out
	default:
		return v
	}
}

func valueString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
