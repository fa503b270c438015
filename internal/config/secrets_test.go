// Package config_test tests {{env.NAME}} and {{file.PATH}} secret substitution.
// Related: internal/config/secrets.go
// Tags: config, secrets, env-vars, files, substitution
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(vars map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestResolveString_Env(t *testing.T) {
	t.Parallel()

	lookup := mapLookup(map[string]string{"FOO": "bar", "OTHER": "zzz"})

	tests := map[string]struct {
		input string
		want  string
	}{
		"no placeholder":     {input: "plain text", want: "plain text"},
		"embedded":           {input: "x_{{env.FOO}}_y", want: "x_bar_y"},
		"repeated":           {input: "{{env.FOO}}/{{env.FOO}}", want: "bar/bar"},
		"second name intact": {input: "{{env.FOO}}-{{env.OTHER}}", want: "bar-{{env.OTHER}}"},
		"unterminated":       {input: "{{env.FOO", want: "{{env.FOO"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ResolveString(tt.input, lookup)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveString_EnvMissing(t *testing.T) {
	t.Parallel()

	_, err := ResolveString("{{env.MISSING}}", mapLookup(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Environment variable not found: MISSING")
}

func TestResolveString_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  s3cret\n"), 0600))

	got, err := ResolveString("Bearer {{file."+path+"}}", mapLookup(nil))
	require.NoError(t, err)
	assert.Equal(t, "Bearer s3cret", got)
}

func TestResolveString_FileTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "pw"), []byte("hunter2\n"), 0600))

	got, err := ResolveString("{{file.~/pw}}", mapLookup(nil))
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
}

func TestResolveString_FileMissing(t *testing.T) {
	t.Parallel()

	_, err := ResolveString("{{file./definitely/not/here}}", mapLookup(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read file /definitely/not/here")
}

func TestResolveString_EnvThenFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pw")
	require.NoError(t, os.WriteFile(path, []byte("p"), 0600))

	got, err := ResolveString("{{env.USER_NAME}}:{{file."+path+"}}", mapLookup(map[string]string{"USER_NAME": "u"}))
	require.NoError(t, err)
	assert.Equal(t, "u:p", got)
}

func TestResolveSecrets_NestedAndOverrides(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Handlers: []HandlerConfig{{
			Name: "hook",
			Type: "webhook",
			Config: map[string]any{
				"url":     "https://x/{{env.TOKEN}}",
				"port":    float64(25),
				"headers": map[string]any{"Authorization": "Bearer {{env.TOKEN}}"},
				"list":    []any{"{{env.TOKEN}}", true},
			},
		}},
		Overrides: []ProjectOverride{{
			PathPattern: "/p/*",
			Handlers: []HandlerConfig{{
				Name:   "o",
				Type:   "desktop",
				Config: map[string]any{"body": "{{env.TOKEN}}"},
			}},
		}},
	}

	require.NoError(t, cfg.ResolveSecrets(mapLookup(map[string]string{"TOKEN": "t"})))

	c := cfg.Handlers[0].Config
	assert.Equal(t, "https://x/t", c["url"])
	assert.Equal(t, float64(25), c["port"])
	assert.Equal(t, "Bearer t", c["headers"].(map[string]any)["Authorization"])
	assert.Equal(t, []any{"t", true}, c["list"])
	assert.Equal(t, "t", cfg.Overrides[0].Handlers[0].Config["body"])
}

func TestResolveSecrets_FirstFailureAborts(t *testing.T) {
	t.Parallel()

	cfg := &Config{Handlers: []HandlerConfig{{
		Name:   "x",
		Type:   "desktop",
		Config: map[string]any{"body": "{{env.NOPE}}"},
	}}}

	assert.Error(t, cfg.ResolveSecrets(mapLookup(nil)))
}
