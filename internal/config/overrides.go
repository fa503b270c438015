package config

import (
	"github.com/gobwas/glob"
)

// ApplyOverrides replaces Handlers with the handlers of the last override
// whose path_pattern matches projectPath. The base handlers are discarded, not
// merged. Returns the winning pattern, or false when nothing matched.
func (c *Config) ApplyOverrides(projectPath string) (string, bool) {
	matched := -1
	for i, o := range c.Overrides {
		if PatternMatches(o.PathPattern, projectPath) {
			matched = i
		}
	}
	if matched < 0 {
		return "", false
	}

	winner := c.Overrides[matched]
	c.Handlers = append([]HandlerConfig(nil), winner.Handlers...)
	return winner.PathPattern, true
}

// PatternMatches reports whether path matches the glob pattern. Wildcards
// cross path separators, so "/work/*" also matches "/work/a/b". Invalid
// patterns never match.
func PatternMatches(pattern, path string) bool {
	g, err := glob.Compile(pattern)
	if err != nil {
		return false
	}
	return g.Match(path)
}
