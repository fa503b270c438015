package config

import (
	"os"
	"strings"

	clierrors "github.com/boopifier/boopifier/internal/errors"
)

const (
	envPrefix      = "{{env."
	filePrefix     = "{{file."
	placeholderEnd = "}}"
)

// LookupFunc looks up an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(name string) (string, bool)

// ResolveSecrets substitutes {{env.NAME}} and {{file.PATH}} placeholders in
// every string inside every handler's config, including override handlers.
// The first unresolvable placeholder fails the whole configuration.
func (c *Config) ResolveSecrets(lookup LookupFunc) error {
	for i := range c.Handlers {
		if err := resolveHandler(&c.Handlers[i], lookup); err != nil {
			return err
		}
	}
	for i := range c.Overrides {
		for j := range c.Overrides[i].Handlers {
			if err := resolveHandler(&c.Overrides[i].Handlers[j], lookup); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolveHandler(h *HandlerConfig, lookup LookupFunc) error {
	for key, value := range h.Config {
		resolved, err := resolveValue(value, lookup)
		if err != nil {
			return err
		}
		h.Config[key] = resolved
	}
	return nil
}

func resolveValue(v any, lookup LookupFunc) (any, error) {
	switch val := v.(type) {
	case string:
		return ResolveString(val, lookup)
	case map[string]any:
		for k, item := range val {
			resolved, err := resolveValue(item, lookup)
			if err != nil {
				return nil, err
			}
			val[k] = resolved
		}
		return val, nil
	case []any:
		for i, item := range val {
			resolved, err := resolveValue(item, lookup)
			if err != nil {
				return nil, err
			}
			val[i] = resolved
		}
		return val, nil
	default:
		return v, nil
	}
}

// ResolveString performs one substitution pass per placeholder kind. The first
// {{env.NAME}} is looked up and every identical placeholder is replaced; then
// the same happens for the first {{file.PATH}}. A second, different
// placeholder of the same kind is left untouched.
func ResolveString(s string, lookup LookupFunc) (string, error) {
	result := s

	if name, ok := firstPlaceholder(result, envPrefix); ok {
		value, found := lookup(name)
		if !found {
			return "", clierrors.SecretNotFound(name)
		}
		result = strings.ReplaceAll(result, envPrefix+name+placeholderEnd, value)
	}

	if path, ok := firstPlaceholder(result, filePrefix); ok {
		data, err := os.ReadFile(expandHomePath(path))
		if err != nil {
			return "", clierrors.SecretFileUnreadable(path, err)
		}
		result = strings.ReplaceAll(result, filePrefix+path+placeholderEnd, strings.TrimSpace(string(data)))
	}

	return result, nil
}

// firstPlaceholder returns the body of the first prefix...}} occurrence.
func firstPlaceholder(s, prefix string) (string, bool) {
	start := strings.Index(s, prefix)
	if start < 0 {
		return "", false
	}
	end := strings.Index(s[start:], placeholderEnd)
	if end < 0 || end < len(prefix) {
		return "", false
	}
	return s[start+len(prefix) : start+end], true
}
