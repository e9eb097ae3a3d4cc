package jit

import (
	"fmt"

	"github.com/armjit/armjit/internal/arm"
)

// jitState is the part of the guest state compiled code reads and writes. The engine copies
// arm.State into it before entering compiled code and back whenever Go code needs the
// architectural view, e.g. to run the interpreter.
//
// Flags are kept unpacked, one uint32 per flag holding 0 or 1, so native code can write them
// with a single SETcc and test them with a single CMPL.
type jitState struct {
	regs [arm.NumRegs]uint32

	n, z, c, v uint32
	// t and e are only written by compiled code when it exits: inside a block they are
	// compile time constants.
	t, e uint32

	// cyclesRemaining is the instruction budget left for this jitcall. Blocks check it on
	// entry and subtract their length on exit.
	cyclesRemaining int64

	exclusiveTag   uint32
	exclusiveState uint32

	// The following fields are the exit protocol written by compiled code before RET.

	statusCode jitCallStatusCode
	builtinID  builtinFunction
	// continuationAddress is where to resume after a builtin function call.
	continuationAddress uintptr
	// builtinAddress is the guest address accessed by a builtin function.
	builtinAddress uint32
	// builtinRegister is the guest register a builtin load writes to or a builtin store reads.
	// Double word accesses use it and the following register.
	builtinRegister uint32
	// builtinRetired is how many instructions of the block took effect before the builtin
	// call, which is what the block consumed if the access faults.
	builtinRetired uint32
}

// Native code reads and writes jitState with the following constants.
// See TestVerifyOffsetValue for how to derive these values.
const (
	jitStateRegsOffset                = 0
	jitStateNOffset                   = 64
	jitStateZOffset                   = 68
	jitStateCOffset                   = 72
	jitStateVOffset                   = 76
	jitStateTOffset                   = 80
	jitStateEOffset                   = 84
	jitStateCyclesRemainingOffset     = 88
	jitStateExclusiveTagOffset        = 96
	jitStateExclusiveStateOffset      = 100
	jitStateStatusCodeOffset          = 104
	jitStateBuiltinIDOffset           = 108
	jitStateContinuationAddressOffset = 112
	jitStateBuiltinAddressOffset      = 120
	jitStateBuiltinRegisterOffset     = 124
	jitStateBuiltinRetiredOffset      = 128
)

// regOffset returns the offset of guest register r in jitState.
func regOffset(r arm.Reg) int64 {
	return jitStateRegsOffset + int64(r)*4
}

// jitCallStatusCode represents the result of `jitcall`.
// This is set by the jitted native code.
type jitCallStatusCode uint32

const (
	// jitCallStatusCodeReturned means the block ended and regs[PC], t and e hold the next
	// location to dispatch to.
	jitCallStatusCodeReturned jitCallStatusCode = iota
	// jitCallStatusCodeInsufficientBudget means the block at regs[PC] is longer than the
	// remaining budget. Nothing of it was executed.
	jitCallStatusCodeInsufficientBudget
	// jitCallStatusCodeInterpret means the instruction at regs[PC] must be executed by the
	// interpreter. The instructions before it in the block are accounted for.
	jitCallStatusCodeInterpret
	// jitCallStatusCodeCallBuiltInFunction means the jitcall returns to make a builtin function
	// call and expects to be resumed at continuationAddress.
	jitCallStatusCodeCallBuiltInFunction
)

func (s jitCallStatusCode) String() (ret string) {
	switch s {
	case jitCallStatusCodeReturned:
		ret = "returned"
	case jitCallStatusCodeInsufficientBudget:
		ret = "insufficient_budget"
	case jitCallStatusCodeInterpret:
		ret = "interpret"
	case jitCallStatusCodeCallBuiltInFunction:
		ret = "call_builtin_function"
	default:
		ret = fmt.Sprintf("unknown(%d)", uint32(s))
	}
	return
}

// builtinFunction selects the memory access performed by Go on behalf of compiled code. Every
// multi-byte access exists once per data endianness, which is known when the accessing
// instruction is compiled.
type builtinFunction uint32

const (
	builtinFunctionRead8 builtinFunction = iota
	builtinFunctionRead16LE
	builtinFunctionRead16BE
	builtinFunctionRead32LE
	builtinFunctionRead32BE
	builtinFunctionRead64LE
	builtinFunctionRead64BE
	builtinFunctionWrite8
	builtinFunctionWrite16LE
	builtinFunctionWrite16BE
	builtinFunctionWrite32LE
	builtinFunctionWrite32BE
	builtinFunctionWrite64LE
	builtinFunctionWrite64BE
)

// accessWidth is the size in bits of a builtin memory access.
type accessWidth byte

const (
	accessWidth8  accessWidth = 8
	accessWidth16 accessWidth = 16
	accessWidth32 accessWidth = 32
	accessWidth64 accessWidth = 64
)

func readBuiltin(width accessWidth, bigEndian bool) builtinFunction {
	return selectBuiltin(builtinFunctionRead8, width, bigEndian)
}

func writeBuiltin(width accessWidth, bigEndian bool) builtinFunction {
	return selectBuiltin(builtinFunctionWrite8, width, bigEndian)
}

func selectBuiltin(base builtinFunction, width accessWidth, bigEndian bool) builtinFunction {
	if width == accessWidth8 {
		return base
	}
	f := base + 1 // 16LE
	switch width {
	case accessWidth32:
		f += 2
	case accessWidth64:
		f += 4
	}
	if bigEndian {
		f++
	}
	return f
}

// write returns true for the store builtins.
func (f builtinFunction) write() bool { return f >= builtinFunctionWrite8 }

func (f builtinFunction) bigEndian() bool {
	switch f {
	case builtinFunctionRead16BE, builtinFunctionRead32BE, builtinFunctionRead64BE,
		builtinFunctionWrite16BE, builtinFunctionWrite32BE, builtinFunctionWrite64BE:
		return true
	}
	return false
}

func (f builtinFunction) width() accessWidth {
	switch f {
	case builtinFunctionRead8, builtinFunctionWrite8:
		return accessWidth8
	case builtinFunctionRead16LE, builtinFunctionRead16BE, builtinFunctionWrite16LE, builtinFunctionWrite16BE:
		return accessWidth16
	case builtinFunctionRead32LE, builtinFunctionRead32BE, builtinFunctionWrite32LE, builtinFunctionWrite32BE:
		return accessWidth32
	}
	return accessWidth64
}

// load copies s into the fields compiled code works on.
func (j *jitState) load(s *arm.State) {
	j.regs = s.Regs
	n, z, c, v := s.Flags()
	j.n, j.z, j.c, j.v = boolToUint32(n), boolToUint32(z), boolToUint32(c), boolToUint32(v)
	j.t, j.e = boolToUint32(s.Thumb()), boolToUint32(s.BigEndian())
	j.exclusiveTag = s.ExclusiveTag
	j.exclusiveState = boolToUint32(s.ExclusiveState)
}

// store copies the fields compiled code works on back into s, packing the flags into CPSR.
func (j *jitState) store(s *arm.State) {
	s.Regs = j.regs
	s.SetFlags(j.n != 0, j.z != 0, j.c != 0, j.v != 0)
	s.SetBit(arm.CPSRT, j.t != 0)
	s.SetBit(arm.CPSRE, j.e != 0)
	s.ExclusiveTag = j.exclusiveTag
	s.ExclusiveState = j.exclusiveState != 0
}

// location returns the location compiled code exited at.
func (j *jitState) location() Location {
	return Location{PC: j.regs[arm.PC], Thumb: j.t != 0, BigEndian: j.e != 0}
}

func boolToUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
