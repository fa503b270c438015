package match

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/boopifier/boopifier/internal/event"
)

// Matches reports whether ev satisfies rule. A nil rule matches every event.
func Matches(ev event.Event, rule *Rule, mode Type) bool {
	if rule == nil {
		return true
	}
	switch rule.Kind {
	case KindSimple:
		return matchesSimple(ev, rule.Fields, mode)
	case KindComplex:
		return matchesComplex(ev, rule, mode)
	default:
		return false
	}
}

func matchesSimple(ev event.Event, fields Simple, mode Type) bool {
	for key, expected := range fields {
		actual, ok := lookup(ev, key)
		if !ok {
			return false
		}
		if !valueMatches(actual, expected, mode) {
			return false
		}
	}
	return true
}

// lookup resolves a rule key. Dotted paths only resolve to string leaves.
func lookup(ev event.Event, key string) (any, bool) {
	if strings.Contains(key, ".") {
		s, ok := ev.NestedString(key)
		if !ok {
			return nil, false
		}
		return s, true
	}
	return ev.Get(key)
}

func matchesComplex(ev event.Event, rule *Rule, mode Type) bool {
	// A complex rule with nothing in it never matches.
	if rule.All == nil && rule.Any == nil && rule.Not == nil {
		return false
	}

	if rule.All != nil {
		for _, sub := range rule.All {
			if !matchesSimple(ev, sub, mode) {
				return false
			}
		}
	}

	if rule.Any != nil {
		matched := false
		for _, sub := range rule.Any {
			if matchesSimple(ev, sub, mode) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if rule.Not != nil && matchesSimple(ev, rule.Not, mode) {
		return false
	}

	return true
}

func valueMatches(actual, expected any, mode Type) bool {
	switch e := expected.(type) {
	case string:
		a, ok := actual.(string)
		if !ok {
			return false
		}
		return stringMatches(a, e, mode)

	case bool:
		a, ok := actual.(bool)
		return ok && a == e

	case []any:
		a, ok := actual.([]any)
		if !ok {
			return false
		}
		return containsAll(a, e)

	case map[string]any:
		a, ok := actual.(map[string]any)
		if !ok {
			return false
		}
		for k, ev := range e {
			av, ok := a[k]
			if !ok || !valueMatches(av, ev, mode) {
				return false
			}
		}
		return true

	default:
		if en, ok := toFloat(expected); ok {
			an, ok := toFloat(actual)
			return ok && an == en
		}
		return false
	}
}

func stringMatches(actual, expected string, mode Type) bool {
	if mode != Regex {
		return actual == expected
	}
	re, err := regexp.Compile(expected)
	if err != nil {
		return false
	}
	return re.MatchString(actual)
}

// containsAll reports whether every expected element equals some actual element.
func containsAll(actual, expected []any) bool {
	for _, want := range expected {
		found := false
		for _, have := range actual {
			if jsonEqual(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// jsonEqual is deep equality that ignores the Go type of numbers, since YAML
// configs decode integers as int while events always carry float64.
func jsonEqual(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	switch av := a.(type) {
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !jsonEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, ok := bv[k]
			if !ok || !jsonEqual(v, other) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
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
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}
