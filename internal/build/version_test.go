// Package build_test tests version information helpers.
// Related: internal/build/version.go
// Tags: build, version, user-agent
package build

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserAgent(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "1.2.3"
	assert.Equal(t, "boopifier/1.2.3", UserAgent())
	assert.False(t, IsDevBuild())

	Version = "dev"
	assert.True(t, IsDevBuild())
}

func TestGoVersion(t *testing.T) {
	t.Parallel()

	assert.True(t, strings.HasPrefix(GoVersion(), "go") || GoVersion() != "")
}
