package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCodeSize = 8 * 1024

func TestMmapCodeSegment(t *testing.T) {
	requireSupportedOSArch(t)

	code, err := MmapCodeSegment(testCodeSize)
	require.NoError(t, err)
	require.Equal(t, testCodeSize, len(code))
	require.Equal(t, make([]byte, testCodeSize), code)

	// The region is writable.
	code[0], code[testCodeSize-1] = 0xc3, 0xcc
	require.Equal(t, byte(0xc3), code[0])

	require.NoError(t, MunmapCodeSegment(code))

	t.Run("panic on zero length", func(t *testing.T) {
		require.PanicsWithError(t, "BUG: MmapCodeSegment with zero length", func() {
			_, _ = MmapCodeSegment(0)
		})
	})
}

func TestMunmapCodeSegment(t *testing.T) {
	requireSupportedOSArch(t)

	require.PanicsWithError(t, "BUG: MunmapCodeSegment with zero length", func() {
		_ = MunmapCodeSegment(nil)
	})
}

func TestCompilerSupported(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		require.False(t, CompilerSupported())
	}
}

// requireSupportedOSArch is duplicated also in the jit package to ensure no cyclic dependency.
func requireSupportedOSArch(t *testing.T) {
	if !CompilerSupported() {
		t.Skip()
	}
}
