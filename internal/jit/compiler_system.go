package jit

import (
	"github.com/armjit/armjit/internal/arm"
	"github.com/armjit/armjit/internal/asm/amd64"
)

// SETEND implements decoder.Visitor SETEND
//
// The data endianness is part of the location, so it only changes what the following
// instructions of the block are compiled for.
func (c *compiler) SETEND(e bool) error {
	c.loc.BigEndian = e
	return nil
}

// NOP implements decoder.Visitor NOP
func (c *compiler) NOP(arm.Cond) error { return nil }

// YIELD implements decoder.Visitor YIELD
func (c *compiler) YIELD(arm.Cond) error { return nil }

// WFE implements decoder.Visitor WFE
func (c *compiler) WFE(arm.Cond) error { return nil }

// WFI implements decoder.Visitor WFI
func (c *compiler) WFI(arm.Cond) error { return nil }

// SEV implements decoder.Visitor SEV
func (c *compiler) SEV(arm.Cond) error { return nil }

// PLD implements decoder.Visitor PLD
func (c *compiler) PLD() error { return nil }

// CLREX implements decoder.Visitor CLREX
func (c *compiler) CLREX() error {
	c.compileCond(arm.CondAL)
	c.assembler.CompileConstToMemory(amd64.MOVL, 0, amd64ReservedRegisterForState, jitStateExclusiveStateOffset)
	return nil
}

// LDREX implements decoder.Visitor LDREX
func (c *compiler) LDREX(cond arm.Cond, n, d arm.Reg) error {
	return c.compileLoadExclusive(accessWidth32, cond, n, d)
}

// LDREXB implements decoder.Visitor LDREXB
func (c *compiler) LDREXB(cond arm.Cond, n, d arm.Reg) error {
	return c.compileLoadExclusive(accessWidth8, cond, n, d)
}

// LDREXH implements decoder.Visitor LDREXH
func (c *compiler) LDREXH(cond arm.Cond, n, d arm.Reg) error {
	return c.compileLoadExclusive(accessWidth16, cond, n, d)
}

// LDREXD implements decoder.Visitor LDREXD
func (c *compiler) LDREXD(cond arm.Cond, n, d arm.Reg) error {
	return c.compileLoadExclusive(accessWidth64, cond, n, d)
}

// STREX implements decoder.Visitor STREX
func (c *compiler) STREX(cond arm.Cond, n, d, m arm.Reg) error {
	return c.compileStoreExclusive(accessWidth32, cond, n, d, m)
}

// STREXB implements decoder.Visitor STREXB
func (c *compiler) STREXB(cond arm.Cond, n, d, m arm.Reg) error {
	return c.compileStoreExclusive(accessWidth8, cond, n, d, m)
}

// STREXH implements decoder.Visitor STREXH
func (c *compiler) STREXH(cond arm.Cond, n, d, m arm.Reg) error {
	return c.compileStoreExclusive(accessWidth16, cond, n, d, m)
}

// STREXD implements decoder.Visitor STREXD
func (c *compiler) STREXD(cond arm.Cond, n, d, m arm.Reg) error {
	return c.compileStoreExclusive(accessWidth64, cond, n, d, m)
}

// invalidPair returns true for the first registers of a doubleword transfer which make the
// instruction undefined.
func invalidPair(r arm.Reg) bool {
	return r%2 != 0 || r == arm.LR
}

// compileLoadExclusive loads d (and d+1) through a builtin call, then marks the granule of the
// address exclusive.
func (c *compiler) compileLoadExclusive(width accessWidth, cond arm.Cond, n, d arm.Reg) error {
	if n == arm.PC || d == arm.PC || (width == accessWidth64 && invalidPair(d)) {
		return c.Default("LDREX")
	}
	c.compileCond(cond)
	c.regs.flushEverything()
	a := c.assembler

	addr := c.regs.allocTemp()
	a.CompileMemoryToRegister(amd64.MOVL, amd64ReservedRegisterForState, regOffset(n), addr)
	c.compileCallBuiltinFunction(readBuiltin(width, c.loc.BigEndian), addr, d)

	// addr is clobbered by the call: the address is read back from jitState.
	a.CompileMemoryToRegister(amd64.MOVL, amd64ReservedRegisterForState, jitStateBuiltinAddressOffset, addr)
	a.CompileConstToRegister(amd64.ANDL, int64(arm.ExclusiveGranuleMask), addr)
	a.CompileRegisterToMemory(amd64.MOVL, addr, amd64ReservedRegisterForState, jitStateExclusiveTagOffset)
	a.CompileConstToMemory(amd64.MOVL, 1, amd64ReservedRegisterForState, jitStateExclusiveStateOffset)
	c.regs.releaseTemp(addr)
	return nil
}

// compileStoreExclusive stores m (and m+1) through a builtin call only when the address is
// covered by the outstanding reservation, and writes the status of the attempt to d.
func (c *compiler) compileStoreExclusive(width accessWidth, cond arm.Cond, n, d, m arm.Reg) error {
	if n == arm.PC || d == arm.PC || m == arm.PC || (width == accessWidth64 && invalidPair(m)) {
		return c.Default("STREX")
	}
	c.compileCond(cond)
	c.regs.flushEverything()
	a := c.assembler

	addr := c.regs.allocTemp()
	a.CompileMemoryToRegister(amd64.MOVL, amd64ReservedRegisterForState, regOffset(n), addr)

	granule := c.regs.allocTemp()
	a.CompileRegisterToRegister(amd64.MOVL, addr, granule)
	a.CompileConstToRegister(amd64.ANDL, int64(arm.ExclusiveGranuleMask), granule)
	a.CompileMemoryToConst(amd64.CMPL, amd64ReservedRegisterForState, jitStateExclusiveStateOffset, 0)
	jmpIfNotExclusive := a.CompileJump(amd64.JEQ)
	a.CompileMemoryToRegister(amd64.CMPL, amd64ReservedRegisterForState, jitStateExclusiveTagOffset, granule)
	jmpIfOtherGranule := a.CompileJump(amd64.JNE)
	c.regs.releaseTemp(granule)

	c.compileCallBuiltinFunction(writeBuiltin(width, c.loc.BigEndian), addr, m)
	a.CompileConstToMemory(amd64.MOVL, 0, amd64ReservedRegisterForState, jitStateExclusiveStateOffset)
	a.CompileConstToMemory(amd64.MOVL, 0, amd64ReservedRegisterForState, regOffset(d))
	jmpToDone := a.CompileJump(amd64.JMP)

	a.SetJumpTargetOnNext(jmpIfNotExclusive, jmpIfOtherGranule)
	a.CompileConstToMemory(amd64.MOVL, 1, amd64ReservedRegisterForState, regOffset(d))
	a.SetJumpTargetOnNext(jmpToDone)
	c.regs.releaseTemp(addr)
	return nil
}
