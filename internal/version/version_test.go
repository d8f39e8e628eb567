package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuildVars(t *testing.T, version, commit, tag, dirty string) {
	t.Helper()
	origVersion, origCommit, origTag, origDirty := Version, GitCommit, GitTag, GitDirty
	t.Cleanup(func() {
		Version, GitCommit, GitTag, GitDirty = origVersion, origCommit, origTag, origDirty
	})
	Version, GitCommit, GitTag, GitDirty = version, commit, tag, dirty
}

func TestGetVersion(t *testing.T) {
	t.Run("ldflags win", func(t *testing.T) {
		withBuildVars(t, "v1.2.3", "unknown", "unknown", "")
		assert.Equal(t, "v1.2.3", GetVersion())
	})

	t.Run("git tag and commit", func(t *testing.T) {
		withBuildVars(t, "dev", "abc1234567", "v1.2.3", "")
		got := GetVersion()
		// test binaries may carry module build info, which takes precedence
		if got != "dev" && got != "v1.2.3-abc1234" {
			assert.NotEmpty(t, got)
			return
		}
		assert.Equal(t, "v1.2.3-abc1234", got)
	})

	t.Run("dirty tree", func(t *testing.T) {
		withBuildVars(t, "dev", "abc1234", "v1.2.3", "dirty")
		got := GetVersion()
		if got == "v1.2.3-abc1234-dirty" {
			return
		}
		assert.NotEmpty(t, got)
	})
}

func TestShortCommit(t *testing.T) {
	assert.Equal(t, "abc1234", shortCommit("abc1234567"))
	assert.Equal(t, "abc", shortCommit("abc"))
	assert.Equal(t, "", shortCommit(""))
}

func TestInfoString(t *testing.T) {
	assert.Equal(t, "v1.0.0", Info{Version: "v1.0.0", GitCommit: "unknown"}.String())
	assert.Equal(t,
		"v1.0.0 (commit: abc1234, built: 2026-01-01)",
		Info{Version: "v1.0.0", GitCommit: "abc1234567", BuildTime: "2026-01-01"}.String())
}

func TestGet(t *testing.T) {
	withBuildVars(t, "v2.0.0", "deadbeef", "v2.0.0", "dirty")
	info := Get()
	assert.Equal(t, "v2.0.0", info.Version)
	assert.Equal(t, "deadbeef", info.GitCommit)
	assert.True(t, info.Dirty)
}
