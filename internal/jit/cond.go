package jit

import (
	"github.com/armjit/armjit/internal/arm"
	"github.com/armjit/armjit/internal/asm"
	"github.com/armjit/armjit/internal/asm/amd64"
)

// compileCond makes the code emitted next execute only when cond holds.
//
// The condition of the previous instruction stays active, so consecutive instructions with the
// same condition share one test, unless flagsDirty was called in between. Changing the
// condition first closes the region of the previous one: the pending jump around it lands
// here. All register bindings are written back on both sides of a test so that the skipped and
// the executed path agree on where guest registers live.
func (c *compiler) compileCond(cond arm.Cond) {
	if cond == arm.CondNV {
		// Unpredictable, executed like AL.
		cond = arm.CondAL
	}
	if cond == c.currentCond && !c.flagsDirtied {
		return
	}
	c.flagsDirtied = false
	if c.currentCond != arm.CondAL {
		c.regs.flushEverything()
		c.assembler.SetJumpTargetOnNext(c.condSkip)
		c.condSkip = nil
	}
	c.currentCond = cond
	if cond == arm.CondAL {
		return
	}

	c.regs.flushEverything()
	c.condSkip = c.compileCondSkip(cond)
}

// flagsDirty must be called by every instruction which writes N, Z, C or V so that the next
// conditional instruction tests the flags again.
func (c *compiler) flagsDirty() {
	c.flagsDirtied = true
}

// compileCondSkip emits the test of cond against the flags in jitState and returns the jump
// taken when cond does not hold.
func (c *compiler) compileCondSkip(cond arm.Cond) asm.Node {
	a := c.assembler
	switch cond {
	case arm.CondEQ, arm.CondNE:
		a.CompileMemoryToConst(amd64.CMPL, amd64ReservedRegisterForState, jitStateZOffset, 0)
		return a.CompileJump(pick(cond == arm.CondEQ, amd64.JEQ, amd64.JNE))
	case arm.CondCS, arm.CondCC:
		a.CompileMemoryToConst(amd64.CMPL, amd64ReservedRegisterForState, jitStateCOffset, 0)
		return a.CompileJump(pick(cond == arm.CondCS, amd64.JEQ, amd64.JNE))
	case arm.CondMI, arm.CondPL:
		a.CompileMemoryToConst(amd64.CMPL, amd64ReservedRegisterForState, jitStateNOffset, 0)
		return a.CompileJump(pick(cond == arm.CondMI, amd64.JEQ, amd64.JNE))
	case arm.CondVS, arm.CondVC:
		a.CompileMemoryToConst(amd64.CMPL, amd64ReservedRegisterForState, jitStateVOffset, 0)
		return a.CompileJump(pick(cond == arm.CondVS, amd64.JEQ, amd64.JNE))
	}

	tmp := c.regs.allocTemp()
	defer c.regs.releaseTemp(tmp)
	switch cond {
	case arm.CondHI, arm.CondLS:
		// C - Z is above zero, unsigned, only for C set and Z clear.
		a.CompileMemoryToRegister(amd64.MOVL, amd64ReservedRegisterForState, jitStateZOffset, tmp)
		a.CompileMemoryToRegister(amd64.CMPL, amd64ReservedRegisterForState, jitStateCOffset, tmp)
		return a.CompileJump(pick(cond == arm.CondHI, amd64.JLS, amd64.JHI))
	case arm.CondGE, arm.CondLT:
		a.CompileMemoryToRegister(amd64.MOVL, amd64ReservedRegisterForState, jitStateVOffset, tmp)
		a.CompileMemoryToRegister(amd64.CMPL, amd64ReservedRegisterForState, jitStateNOffset, tmp)
		return a.CompileJump(pick(cond == arm.CondGE, amd64.JNE, amd64.JEQ))
	default: // GT, LE
		// (N ^ V) | Z is zero only when GT holds.
		a.CompileMemoryToRegister(amd64.MOVL, amd64ReservedRegisterForState, jitStateNOffset, tmp)
		a.CompileMemoryToRegister(amd64.XORL, amd64ReservedRegisterForState, jitStateVOffset, tmp)
		a.CompileMemoryToRegister(amd64.ORL, amd64ReservedRegisterForState, jitStateZOffset, tmp)
		a.CompileRegisterToRegister(amd64.TESTL, tmp, tmp)
		return a.CompileJump(pick(cond == arm.CondGT, amd64.JNE, amd64.JEQ))
	}
}

func pick(first bool, a, b asm.Instruction) asm.Instruction {
	if first {
		return a
	}
	return b
}
