package armjit

import (
	"log/slog"

	"github.com/armjit/armjit/internal/jit"
)

// DefaultCodeCacheSize is the code cache size of a Config unless WithCodeCacheSize sets another.
const DefaultCodeCacheSize = jit.DefaultCodeCacheSize

// Config controls how a CPU executes guest code, with the default implementation as NewConfig.
//
// Config is immutable: each With function returns a new instance including the corresponding change.
type Config interface {
	// WithCodeCacheSize sets the size in bytes of the executable memory holding compiled blocks. Defaults
	// to 32MiB. When it fills up, every compiled block is dropped and compilation starts over.
	//
	// This has no effect with NewConfigInterpreter.
	WithCodeCacheSize(bytes int) Config

	// WithLogger sets the logger of compilation and cache events. Defaults to discarding everything.
	WithLogger(logger *slog.Logger) Config

	// WithSupervisorCall sets the handler of SVC instructions. When unset, an SVC makes CPU.Run return an
	// error matching ErrSupervisorCall.
	WithSupervisorCall(fn SupervisorCall) Config
}

// SupervisorCall handles an SVC instruction with the given immediate. When it is called, the PC of cpu
// already points past the SVC instruction and the registers are up to date. A non-nil error stops
// CPU.Run.
type SupervisorCall func(cpu CPU, imm uint32) error

type engineKind int

const (
	engineKindInterpreter engineKind = iota
	engineKindJIT
)

type config struct {
	engineKind     engineKind
	codeCacheSize  int
	logger         *slog.Logger
	supervisorCall SupervisorCall
}

// engineLessConfig helps avoid copy/pasting the wrong defaults.
var engineLessConfig = &config{
	codeCacheSize: jit.DefaultCodeCacheSize,
}

// NewConfigJIT translates guest code into amd64 machine code as it is first executed.
//
// Note: NewCPU fails with ErrUnsupportedPlatform when the host cannot run compiled code. Use NewConfig to
// fall back to NewConfigInterpreter when needed.
func NewConfigJIT() Config {
	ret := engineLessConfig.clone()
	ret.engineKind = engineKindJIT
	return ret
}

// NewConfigInterpreter executes guest code one instruction at a time without compiling it.
func NewConfigInterpreter() Config {
	ret := engineLessConfig.clone()
	ret.engineKind = engineKindInterpreter
	return ret
}

// clone makes a deep copy of this config.
func (c *config) clone() *config {
	ret := *c
	return &ret
}

// WithCodeCacheSize implements Config.WithCodeCacheSize
func (c *config) WithCodeCacheSize(bytes int) Config {
	if bytes <= 0 {
		bytes = jit.DefaultCodeCacheSize
	}
	ret := c.clone()
	ret.codeCacheSize = bytes
	return ret
}

// WithLogger implements Config.WithLogger
func (c *config) WithLogger(logger *slog.Logger) Config {
	ret := c.clone()
	ret.logger = logger
	return ret
}

// WithSupervisorCall implements Config.WithSupervisorCall
func (c *config) WithSupervisorCall(fn SupervisorCall) Config {
	ret := c.clone()
	ret.supervisorCall = fn
	return ret
}
