// Package config_test tests configuration syntax checking for JSON and YAML files.
// Related: internal/config/validate.go
// Tags: config, validation, syntax, json, yaml, line-numbers
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSyntax_ValidJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "boopifier.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"handlers": []}`), 0644))

	assert.NoError(t, ValidateSyntax(path))
}

func TestValidateSyntax_InvalidJSONHasLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "boopifier.json")
	content := "{\n  \"handlers\": [\n    {\"name\": }\n  ]\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	err := ValidateSyntax(path)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, path, vErr.FilePath)
	assert.Equal(t, 3, vErr.Line)
	assert.Greater(t, vErr.Column, 1)
	assert.Contains(t, vErr.Error(), path+":3:")
}

func TestValidateSyntax_JSONMustBeObject(t *testing.T) {
	t.Parallel()

	err := ValidateSyntaxFromBytes([]byte(`[1, 2]`), "boopifier.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top level must be a JSON object")
}

func TestValidateSyntax_ValidYAML(t *testing.T) {
	t.Parallel()

	data := []byte("handlers:\n  - name: desk\n    type: desktop\n")
	assert.NoError(t, ValidateSyntaxFromBytes(data, "boopifier.yaml"))
}

func TestValidateSyntax_InvalidYAMLHasLine(t *testing.T) {
	t.Parallel()

	data := []byte("handlers:\n  - name: desk\n    type: [unterminated\n")
	err := ValidateSyntaxFromBytes(data, "boopifier.yml")
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Greater(t, vErr.Line, 0)
}

func TestValidateSyntax_EmptyYAML(t *testing.T) {
	t.Parallel()

	err := ValidateSyntaxFromBytes([]byte("  \n"), "boopifier.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file is empty")
}

func TestValidateSyntax_MissingFile(t *testing.T) {
	t.Parallel()

	err := ValidateSyntax(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestExtractLineColumn(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		msg      string
		wantLine int
		wantCol  int
	}{
		"line only":       {msg: "yaml: line 5: could not find expected ':'", wantLine: 5, wantCol: 1},
		"line and column": {msg: "yaml: line 2: column 7: mapping values are not allowed", wantLine: 2, wantCol: 7},
		"no position":     {msg: "something else", wantLine: 0, wantCol: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			line, col := extractLineColumn(tt.msg)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}

func TestCleanYAMLError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "could not find expected ':'", cleanYAMLError("yaml: line 5: could not find expected ':'"))
	assert.Equal(t, "plain message", cleanYAMLError("plain message"))
}

func TestOffsetToLineColumn(t *testing.T) {
	t.Parallel()

	data := []byte("ab\ncd\nef")
	line, col := offsetToLineColumn(data, 5)
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)
}
