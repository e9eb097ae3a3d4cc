package jit

import (
	"github.com/armjit/armjit/internal/arm"
	"github.com/armjit/armjit/internal/asm/amd64"
)

// B implements decoder.Visitor B
func (c *compiler) B(cond arm.Cond, imm24 uint32) error {
	c.compileCond(cond)
	c.compileBranch(c.armBranchTarget(imm24), false)
	return nil
}

// BL implements decoder.Visitor BL
func (c *compiler) BL(cond arm.Cond, imm24 uint32) error {
	c.compileCond(cond)
	c.compileWriteLR(c.pc + 4)
	c.compileBranch(c.armBranchTarget(imm24), false)
	return nil
}

// BLXImm implements decoder.Visitor BLXImm
func (c *compiler) BLXImm(h bool, imm24 uint32) error {
	offset := imm24 << 2
	if h {
		offset |= 2
	}
	c.compileCond(arm.CondAL)
	c.compileWriteLR(c.pc + 4)
	c.compileBranch(c.pcValue()+arm.SignExtend(offset, 26), true)
	return nil
}

// BX implements decoder.Visitor BX
func (c *compiler) BX(cond arm.Cond, m arm.Reg) error {
	return c.compileBranchExchange(cond, m, false)
}

// BXJ implements decoder.Visitor BXJ
func (c *compiler) BXJ(cond arm.Cond, m arm.Reg) error {
	return c.compileBranchExchange(cond, m, false)
}

// BLXReg implements decoder.Visitor BLXReg
func (c *compiler) BLXReg(cond arm.Cond, m arm.Reg) error {
	return c.compileBranchExchange(cond, m, true)
}

// ThumbBCond implements decoder.Visitor ThumbBCond
func (c *compiler) ThumbBCond(cond arm.Cond, imm8 uint32) error {
	c.compileCond(cond)
	c.compileBranch(c.pcValue()+arm.SignExtend(imm8<<1, 9), true)
	return nil
}

// ThumbB implements decoder.Visitor ThumbB
func (c *compiler) ThumbB(imm11 uint32) error {
	c.compileCond(arm.CondAL)
	c.compileBranch(c.pcValue()+arm.SignExtend(imm11<<1, 12), true)
	return nil
}

// ThumbBLXPrefix implements decoder.Visitor ThumbBLXPrefix
func (c *compiler) ThumbBLXPrefix(imm11 uint32) error {
	c.compileCond(arm.CondAL)
	lr := c.pcValue() + arm.SignExtend(imm11, 11)<<12
	c.compileWriteLR(lr)
	c.nextBLPrefix, c.nextBLPrefixValid = lr, true
	return nil
}

// ThumbBLXSuffix implements decoder.Visitor ThumbBLXSuffix
//
// The target depends on LR, which is only known here when the prefix is the previous
// instruction of the same block.
func (c *compiler) ThumbBLXSuffix(x bool, imm11 uint32) error {
	if !c.blPrefixValid {
		return c.Default("ThumbBLXSuffix")
	}
	c.compileCond(arm.CondAL)
	target := c.blPrefix + imm11<<1
	c.compileWriteLR((c.pc + 2) | 1)
	c.compileBranch(target, !x)
	return nil
}

func (c *compiler) armBranchTarget(imm24 uint32) uint32 {
	return c.pcValue() + arm.SignExtend(imm24<<2, 26)
}

// compileBranch ends the block with a jump to target in the given instruction set.
func (c *compiler) compileBranch(target uint32, thumb bool) {
	if thumb {
		target &^= 1
	} else {
		target &^= 3
	}
	c.compileJumpToBlock(Location{PC: target, Thumb: thumb, BigEndian: c.loc.BigEndian})
	c.stop = true
}

func (c *compiler) compileWriteLR(v uint32) {
	c.compileConstToOperand(v, c.regs.lockForWrite(arm.LR))
	c.regs.unlock(arm.LR)
}

// compileBranchExchange ends the block with a branch to the address in m, switching to Thumb
// when its bit 0 is set. The target is only known at runtime, so the block returns to the
// engine to look it up.
func (c *compiler) compileBranchExchange(cond arm.Cond, m arm.Reg, link bool) error {
	if m == arm.PC {
		return c.Default("BX")
	}
	c.compileCond(cond)
	a := c.assembler

	target := c.regs.allocTemp()
	c.compileOperandToRegister(c.regs.lockForRead(m), target)
	c.regs.unlock(m)
	if link {
		if c.loc.Thumb {
			c.compileWriteLR((c.pc + 2) | 1)
		} else {
			c.compileWriteLR(c.pc + 4)
		}
	}

	a.CompileRegisterToMemory(amd64.MOVL, target, amd64ReservedRegisterForState, jitStateTOffset)
	a.CompileConstToMemory(amd64.ANDL, 1, amd64ReservedRegisterForState, jitStateTOffset)
	a.CompileConstToRegister(amd64.ANDL, int64(^uint32(1)), target)
	a.CompileMemoryToConst(amd64.CMPL, amd64ReservedRegisterForState, jitStateTOffset, 0)
	jmpIfThumb := a.CompileJump(amd64.JNE)
	a.CompileConstToRegister(amd64.ANDL, int64(^uint32(3)), target)
	a.SetJumpTargetOnNext(jmpIfThumb)
	a.CompileRegisterToMemory(amd64.MOVL, target, amd64ReservedRegisterForState, regOffset(arm.PC))
	c.regs.releaseTemp(target)

	c.compileReturnToDispatch()
	c.stop = true
	return nil
}
