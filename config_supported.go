//go:build amd64

package armjit

import "github.com/armjit/armjit/internal/platform"

// NewConfig returns NewConfigJIT when the host can run compiled code, and NewConfigInterpreter otherwise.
func NewConfig() Config {
	if platform.CompilerSupported() {
		return NewConfigJIT()
	}
	return NewConfigInterpreter()
}
