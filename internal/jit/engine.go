// Package jit translates guest code into amd64 blocks and runs them, falling back to the
// interpreter one instruction at a time for everything it does not translate.
package jit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime/debug"
	"unsafe"

	"github.com/armjit/armjit/internal/arm"
	"github.com/armjit/armjit/internal/interpreter"
	"github.com/armjit/armjit/internal/memory"
	"github.com/armjit/armjit/internal/platform"
)

// DefaultCodeCacheSize is the size of the code space when none is configured.
const DefaultCodeCacheSize = 32 << 20

// ErrUnsupportedPlatform is returned by NewEngine when compiled code cannot run on this host.
var ErrUnsupportedPlatform = errors.New("recompiler is not supported on this platform")

// Engine runs the guest of an interpreter.Interpreter with compiled blocks. The interpreter's
// State is the architectural state: it is copied into jitState when Run starts and written back
// whenever Go code needs it, so it is up to date whenever Run is not executing.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	// state is read and written by compiled code through R15. It must stay the first field so
	// it is not moved by a change of the struct.
	state jitState

	interp *interpreter.Interpreter
	arch   *arm.State
	cache  *cache
	logger *slog.Logger
	// debug prints the stack trace of recovered panics.
	debug bool
}

// NewEngine returns an Engine with a code space of codeCacheSize bytes. logger may be nil.
func NewEngine(interp *interpreter.Interpreter, codeCacheSize int, logger *slog.Logger) (*Engine, error) {
	if !platform.CompilerSupported() {
		return nil, ErrUnsupportedPlatform
	}
	if codeCacheSize <= 0 {
		codeCacheSize = DefaultCodeCacheSize
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	space, err := newCodeSpace(codeCacheSize)
	if err != nil {
		return nil, err
	}
	return &Engine{
		interp: interp,
		arch:   interp.State,
		cache:  newCache(space),
		logger: logger,
	}, nil
}

// Run executes n guest instructions and returns how many took effect. It stops early only on
// error, in which case the instruction that failed is the one at PC.
func (e *Engine) Run(n uint64) (executed uint64, err error) {
	// Panics from the dispatch are programming errors, they are returned rather than crash
	// the embedder. The architectural state is left as of the last time it was written back.
	defer func() {
		if v := recover(); v != nil {
			if e.debug {
				debug.PrintStack()
			}
			if runtimeErr, ok := v.(error); ok {
				err = fmt.Errorf("jit runtime error: %w", runtimeErr)
			} else {
				err = fmt.Errorf("jit runtime error: %v", v)
			}
			e.state = jitState{}
		}
	}()

	e.state.load(e.arch)
	executed, err = e.run(n)
	e.state.store(e.arch)
	return
}

func (e *Engine) run(n uint64) (executed uint64, err error) {
	for executed < n {
		remaining := n - executed
		loc := e.state.location()
		if loc.Thumb {
			loc.PC &^= 1
		} else {
			loc.PC &^= 3
		}

		b, err := e.lookupOrCompile(loc)
		if err != nil {
			// The first instruction of the block cannot be fetched: the interpreter reports
			// the fault.
			ticks, err := e.interpret()
			executed += ticks
			if err != nil {
				return executed, err
			}
			continue
		}

		budget := remaining
		if budget > math.MaxInt64 {
			budget = math.MaxInt64
		}
		e.state.cyclesRemaining = int64(budget)
		err = e.exec(e.cache.space.address(b.offset))
		// Blocks linked before the current one already consumed their cycles.
		executed += budget - uint64(e.state.cyclesRemaining)
		if err != nil {
			executed += uint64(e.state.builtinRetired)
			return executed, err
		}

		switch e.state.statusCode {
		case jitCallStatusCodeReturned:
		case jitCallStatusCodeInsufficientBudget, jitCallStatusCodeInterpret:
			ticks, err := e.interpret()
			executed += ticks
			if err != nil {
				return executed, err
			}
		default:
			panic(fmt.Errorf("BUG: unexpected status %s at %s", e.state.statusCode, e.state.location()))
		}
	}
	return
}

// exec enters compiled code at entry and performs the builtin calls it makes until it exits.
// An error is a fault of a builtin memory access.
func (e *Engine) exec(entry uintptr) error {
	for {
		jitcall(entry, uintptr(unsafe.Pointer(&e.state)))
		if e.state.statusCode != jitCallStatusCodeCallBuiltInFunction {
			return nil
		}
		if err := e.callBuiltin(); err != nil {
			return err
		}
		entry = e.state.continuationAddress
	}
}

// interpret executes the instruction at PC with the interpreter.
func (e *Engine) interpret() (ticks uint64, err error) {
	e.state.store(e.arch)
	ticks, err = e.interp.Step(1)
	e.state.load(e.arch)
	if err != nil {
		e.logger.Warn("interpreter fault", slog.String("pc", fmt.Sprintf("%#08x", e.arch.Regs[arm.PC])),
			slog.Any("error", err))
	}
	return
}

// callBuiltin performs the memory access requested by compiled code on guest registers in
// jitState.
func (e *Engine) callBuiltin() (err error) {
	s := &e.state
	f, addr, r := s.builtinID, s.builtinAddress, arm.Reg(s.builtinRegister)
	mem, be := e.interp.Memory, f.bigEndian()

	if f.write() {
		switch f.width() {
		case accessWidth8:
			err = memory.Write8(mem, addr, s.regs[r])
		case accessWidth16:
			err = memory.Write16(mem, addr, s.regs[r], be)
		case accessWidth32:
			err = memory.Write32(mem, addr, s.regs[r], be)
		case accessWidth64:
			err = memory.Write64(mem, addr, uint64(s.regs[r+1])<<32|uint64(s.regs[r]), be)
		}
		return
	}

	var v uint32
	switch f.width() {
	case accessWidth8:
		v, err = memory.Read8(mem, addr)
	case accessWidth16:
		v, err = memory.Read16(mem, addr, be)
	case accessWidth32:
		v, err = memory.Read32(mem, addr, be)
	case accessWidth64:
		var d uint64
		if d, err = memory.Read64(mem, addr, be); err == nil {
			v = uint32(d)
			s.regs[r+1] = uint32(d >> 32)
		}
	}
	if err == nil {
		s.regs[r] = v
	}
	return
}

// lookupOrCompile returns the block at loc, compiling it if needed. A full code space is
// cleared once before giving up.
func (e *Engine) lookupOrCompile(loc Location) (*block, error) {
	if b, ok := e.cache.lookup(loc); ok {
		return b, nil
	}
	cb, err := compileBlock(e.interp.Memory, loc)
	if err != nil {
		return nil, err
	}
	b, err := e.cache.insert(cb)
	if errors.Is(err, errCodeSpaceFull) {
		e.logger.Info("code cache full, clearing", slog.Int("blocks", e.cache.len()))
		e.cache.clear(false)
		b, err = e.cache.insert(cb)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cache block at %s (%d bytes): %w", loc, len(cb.code), err)
	}
	if e.logger.Enabled(context.Background(), slog.LevelDebug) {
		e.logger.Debug("compiled block", slog.String("location", loc.String()),
			slog.Uint64("instructions", uint64(cb.instructions)), slog.Int("size", len(cb.code)))
	}
	return b, nil
}

// ClearCache drops every compiled block and zeroes the code space.
func (e *Engine) ClearCache() {
	e.logger.Info("clearing code cache", slog.Int("blocks", e.cache.len()))
	e.cache.clear(true)
}

// FastClearCache drops every compiled block without zeroing the code space.
func (e *Engine) FastClearCache() {
	e.logger.Info("fast clearing code cache", slog.Int("blocks", e.cache.len()))
	e.cache.clear(false)
}

// Blocks lists the compiled blocks in location order.
func (e *Engine) Blocks() []BlockInfo {
	return e.cache.infos()
}

// Code returns a copy of the host code of the block at loc, or nil if it is not compiled.
func (e *Engine) Code(loc Location) []byte {
	b, ok := e.cache.lookup(loc)
	if !ok {
		return nil
	}
	return append([]byte(nil), e.cache.space.bytes(b.offset, b.size)...)
}

// CodeCacheUsage returns the bytes of code space used and its capacity.
func (e *Engine) CodeCacheUsage() (used, capacity int) {
	return e.cache.space.used, e.cache.space.size()
}

// SetDebug makes Run print the stack trace of the panics it recovers.
func (e *Engine) SetDebug(debug bool) { e.debug = debug }

// Close releases the code space. The Engine must not be used afterwards.
func (e *Engine) Close() error {
	e.cache.clear(false)
	return e.cache.space.close()
}
