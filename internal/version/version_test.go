package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionFromBuildInfo(t *testing.T) {
	for _, tc := range []struct {
		name     string
		info     *debug.BuildInfo
		expected string
	}{
		{
			name:     "main module",
			info:     &debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "v0.3.0"}},
			expected: "v0.3.0",
		},
		{
			name:     "devel",
			info:     &debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "(devel)"}},
			expected: Default,
		},
		{
			name: "dependency",
			info: &debug.BuildInfo{
				Main: debug.Module{Path: "example.com/emulator"},
				Deps: []*debug.Module{{Path: "golang.org/x/sys", Version: "v0.41.0"}, {Path: modulePath, Version: "v0.1.2"}},
			},
			expected: "v0.1.2",
		},
		{
			name: "replaced dependency",
			info: &debug.BuildInfo{
				Main: debug.Module{Path: "example.com/emulator"},
				Deps: []*debug.Module{{Path: modulePath, Version: "v0.1.2", Replace: &debug.Module{Path: "../armjit", Version: "v0.0.0-20260101000000-abcdef012345"}}},
			},
			expected: "v0.0.0-20260101000000-abcdef012345",
		},
		{
			name:     "absent",
			info:     &debug.BuildInfo{Main: debug.Module{Path: "example.com/emulator"}},
			expected: Default,
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, versionFromBuildInfo(tc.info))
		})
	}
}

func TestGetArmjitVersion(t *testing.T) {
	require.NotEmpty(t, GetArmjitVersion())
}
