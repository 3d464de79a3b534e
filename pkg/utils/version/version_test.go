package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillFromBuildInfo(t *testing.T) {
	info := Info{Version: "dev", GitCommit: "unknown", BuildDate: "unknown"}
	fillFromBuildInfo(&info, &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2025-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})
	assert.Equal(t, Info{Version: "v1.2.3", GitCommit: "abc123", BuildDate: "2025-01-02T03:04:05Z", Modified: true}, info)
}

func TestFillFromBuildInfo_KeepsInjectedValues(t *testing.T) {
	info := Info{Version: "1.0.0", GitCommit: "deadbeef", BuildDate: "2024-06-01T00:00:00Z"}
	fillFromBuildInfo(&info, &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "deadbeef", info.GitCommit)
}

func TestGetShortVersionString(t *testing.T) {
	assert.Contains(t, GetShortVersionString(), "https://github.com/yeisme/wcagcheck/releases/tag/v")
}
