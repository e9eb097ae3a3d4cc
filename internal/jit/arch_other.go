//go:build !amd64

package jit

import (
	"fmt"
	"runtime"
)

// jitcall is never reached on this architecture because NewEngine refuses to build an engine.
func jitcall(codeSegment, state uintptr) {
	panic(fmt.Errorf("BUG: jitcall on unsupported GOARCH %s", runtime.GOARCH))
}
