//go:build !amd64

package armjit

// NewConfig returns NewConfigInterpreter
func NewConfig() Config {
	return NewConfigInterpreter()
}
