// Package platform includes runtime-specific code needed for the recompiler: executable memory for
// generated code and the check for whether this host can run it.
package platform

import (
	"errors"
	"runtime"
)

// CompilerSupported returns true when the recompiler can run on the current host: an amd64 CPU under
// an operating system where anonymous executable mappings are available.
func CompilerSupported() bool {
	if runtime.GOARCH != "amd64" {
		return false
	}
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd", "netbsd", "windows":
		return true
	}
	return false
}

// MmapCodeSegment returns a readable, writable and executable region of size bytes, zeroed.
//
// See https://man7.org/linux/man-pages/man2/mmap.2.html for mmap API and flags.
func MmapCodeSegment(size int) ([]byte, error) {
	if size <= 0 {
		panic(errors.New("BUG: MmapCodeSegment with zero length"))
	}
	return mmapCodeSegment(size)
}

// MunmapCodeSegment unmaps the given memory region.
func MunmapCodeSegment(code []byte) error {
	if len(code) == 0 {
		panic(errors.New("BUG: MunmapCodeSegment with zero length"))
	}
	return munmapCodeSegment(code)
}
