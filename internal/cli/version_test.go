// Package cli_test tests the version command for displaying build information.
// Related: internal/cli/version.go
// Tags: cli, version, metadata, build-info, formatting
package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/boopifier/boopifier/internal/build"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getVersionCmd finds the version command from rootCmd
func getVersionCmd() *cobra.Command {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "version" {
			return cmd
		}
	}
	return nil
}

func TestVersionCmdRegistration(t *testing.T) {
	t.Parallel()

	cmd := getVersionCmd()
	require.NotNil(t, cmd, "version command should be registered")
	assert.Contains(t, cmd.Aliases, "v")
	assert.Equal(t, GroupDiagnostics, cmd.GroupID)
}

func TestVersionCmdOutput(t *testing.T) {
	// No t.Parallel() - tests share global versionCmd instance and race on SetOut
	cmd := getVersionCmd()
	require.NotNil(t, cmd)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	t.Cleanup(func() { cmd.SetOut(nil) })
	cmd.Run(cmd, []string{})

	out := buf.String()
	assert.Contains(t, out, "boopifier")
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, "Go:")
	assert.Contains(t, out, "Platform:")
}

func TestPrintVersionPlain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printVersion(&buf, true)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "boopifier "+build.Version, lines[0])
	assert.Equal(t, "Commit: "+truncateCommit(build.Commit), lines[1])
	assert.Equal(t, "Built: "+build.BuildDate, lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Go: go"))
}

func TestTruncateCommit(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		commit string
		want   string
	}{
		"long hash":  {commit: "0123456789abcdef", want: "01234567"},
		"short hash": {commit: "abc", want: "abc"},
		"unknown":    {commit: "unknown", want: "unknown"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncateCommit(tt.commit))
		})
	}
}
