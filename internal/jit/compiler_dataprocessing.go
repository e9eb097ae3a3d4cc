package jit

import (
	"github.com/armjit/armjit/internal/arm"
	"github.com/armjit/armjit/internal/asm"
	"github.com/armjit/armjit/internal/asm/amd64"
)

// dataProcessingOp selects the native lowering of a data processing instruction with an
// immediate operand.
type dataProcessingOp byte

const (
	dataProcessingOpAND dataProcessingOp = iota
	dataProcessingOpEOR
	dataProcessingOpORR
	dataProcessingOpBIC
	dataProcessingOpADD
	dataProcessingOpADC
	dataProcessingOpSUB
	dataProcessingOpSBC
	dataProcessingOpRSB
	dataProcessingOpRSC
)

// logical returns true for the operations which only set N and Z, and C from the shifter.
func (op dataProcessingOp) logical() bool { return op <= dataProcessingOpBIC }

// ANDImm implements decoder.Visitor ANDImm
func (c *compiler) ANDImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return c.compileDataProcessingImm(dataProcessingOpAND, cond, s, n, d, rotate, imm8)
}

// EORImm implements decoder.Visitor EORImm
func (c *compiler) EORImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return c.compileDataProcessingImm(dataProcessingOpEOR, cond, s, n, d, rotate, imm8)
}

// ORRImm implements decoder.Visitor ORRImm
func (c *compiler) ORRImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return c.compileDataProcessingImm(dataProcessingOpORR, cond, s, n, d, rotate, imm8)
}

// BICImm implements decoder.Visitor BICImm
func (c *compiler) BICImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return c.compileDataProcessingImm(dataProcessingOpBIC, cond, s, n, d, rotate, imm8)
}

// ADDImm implements decoder.Visitor ADDImm
func (c *compiler) ADDImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return c.compileDataProcessingImm(dataProcessingOpADD, cond, s, n, d, rotate, imm8)
}

// ADCImm implements decoder.Visitor ADCImm
func (c *compiler) ADCImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return c.compileDataProcessingImm(dataProcessingOpADC, cond, s, n, d, rotate, imm8)
}

// SUBImm implements decoder.Visitor SUBImm
func (c *compiler) SUBImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return c.compileDataProcessingImm(dataProcessingOpSUB, cond, s, n, d, rotate, imm8)
}

// SBCImm implements decoder.Visitor SBCImm
func (c *compiler) SBCImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return c.compileDataProcessingImm(dataProcessingOpSBC, cond, s, n, d, rotate, imm8)
}

// RSBImm implements decoder.Visitor RSBImm
func (c *compiler) RSBImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return c.compileDataProcessingImm(dataProcessingOpRSB, cond, s, n, d, rotate, imm8)
}

// RSCImm implements decoder.Visitor RSCImm
func (c *compiler) RSCImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return c.compileDataProcessingImm(dataProcessingOpRSC, cond, s, n, d, rotate, imm8)
}

// MOVImm implements decoder.Visitor MOVImm
func (c *compiler) MOVImm(cond arm.Cond, s bool, d arm.Reg, rotate, imm8 uint32) error {
	return c.compileMoveImm(cond, s, d, rotate, imm8, false)
}

// MVNImm implements decoder.Visitor MVNImm
func (c *compiler) MVNImm(cond arm.Cond, s bool, d arm.Reg, rotate, imm8 uint32) error {
	return c.compileMoveImm(cond, s, d, rotate, imm8, true)
}

// TSTImm implements decoder.Visitor TSTImm
func (c *compiler) TSTImm(cond arm.Cond, n arm.Reg, rotate, imm8 uint32) error {
	return c.compileTestImm(amd64.ANDL, cond, n, rotate, imm8)
}

// TEQImm implements decoder.Visitor TEQImm
func (c *compiler) TEQImm(cond arm.Cond, n arm.Reg, rotate, imm8 uint32) error {
	return c.compileTestImm(amd64.XORL, cond, n, rotate, imm8)
}

// CMPImm implements decoder.Visitor CMPImm
func (c *compiler) CMPImm(cond arm.Cond, n arm.Reg, rotate, imm8 uint32) error {
	if n == arm.PC {
		return c.Default("CMPImm")
	}
	c.compileCond(cond)
	imm := arm.ExpandImm(rotate, imm8)
	if o := c.regs.lockForRead(n); o.onRegister() {
		c.assembler.CompileRegisterToConst(amd64.CMPL, o.register, int64(imm))
	} else {
		c.assembler.CompileMemoryToConst(amd64.CMPL, amd64ReservedRegisterForState, o.offset, int64(imm))
	}
	c.compileSubtractionFlags()
	c.regs.unlock(n)
	return nil
}

// CMNImm implements decoder.Visitor CMNImm
func (c *compiler) CMNImm(cond arm.Cond, n arm.Reg, rotate, imm8 uint32) error {
	if n == arm.PC {
		return c.Default("CMNImm")
	}
	c.compileCond(cond)
	imm := arm.ExpandImm(rotate, imm8)
	tmp := c.regs.allocTemp()
	c.compileOperandToRegister(c.regs.lockForRead(n), tmp)
	c.assembler.CompileConstToRegister(amd64.ADDL, int64(imm), tmp)
	c.compileAdditionFlags()
	c.regs.releaseTemp(tmp)
	c.regs.unlock(n)
	return nil
}

func (c *compiler) compileMoveImm(cond arm.Cond, s bool, d arm.Reg, rotate, imm8 uint32, not bool) error {
	if d == arm.PC {
		return c.Default("MOVImm")
	}
	c.compileCond(cond)
	// The carry in only matters when the rotation is zero, in which case C is left alone.
	imm, carry := arm.ExpandImmC(rotate, imm8, false)
	if not {
		imm = ^imm
	}
	c.compileConstToOperand(imm, c.regs.lockForWrite(d))
	c.regs.unlock(d)
	if s {
		c.compileConstToFlag(jitStateNOffset, imm&(1<<31) != 0)
		c.compileConstToFlag(jitStateZOffset, imm == 0)
		if rotate != 0 {
			c.compileConstToFlag(jitStateCOffset, carry)
		}
		c.flagsDirty()
	}
	return nil
}

func (c *compiler) compileTestImm(inst asm.Instruction, cond arm.Cond, n arm.Reg, rotate, imm8 uint32) error {
	if n == arm.PC {
		return c.Default(amd64.InstructionName(inst))
	}
	c.compileCond(cond)
	imm, carry := arm.ExpandImmC(rotate, imm8, false)
	tmp := c.regs.allocTemp()
	c.compileOperandToRegister(c.regs.lockForRead(n), tmp)
	c.assembler.CompileConstToRegister(inst, int64(imm), tmp)
	c.compileLogicalFlags(rotate, carry)
	c.regs.releaseTemp(tmp)
	c.regs.unlock(n)
	return nil
}

func (c *compiler) compileDataProcessingImm(op dataProcessingOp, cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	if n == arm.PC || d == arm.PC {
		return c.Default("DataProcessingImm")
	}
	c.compileCond(cond)
	imm, carry := arm.ExpandImmC(rotate, imm8, false)

	if op == dataProcessingOpRSB || op == dataProcessingOpRSC {
		c.compileReverseSubtractImm(op == dataProcessingOpRSC, s, n, d, imm)
		return nil
	}

	rn := c.regs.bindForRead(n)
	rd := c.regs.bindForWrite(d)
	a := c.assembler

	// Load the guest carry into the host carry before the operands are set up: MOVL does not
	// touch the host flags.
	switch op {
	case dataProcessingOpADC:
		tmp := c.regs.allocTemp()
		a.CompileMemoryToRegister(amd64.MOVL, amd64ReservedRegisterForState, jitStateCOffset, tmp)
		a.CompileConstToRegister(amd64.SHRL, 1, tmp)
		c.regs.releaseTemp(tmp)
	case dataProcessingOpSBC:
		// Host borrow is the inverse of the guest carry.
		a.CompileMemoryToConst(amd64.CMPL, amd64ReservedRegisterForState, jitStateCOffset, 1)
	}
	if rn != rd {
		a.CompileRegisterToRegister(amd64.MOVL, rn, rd)
	}

	switch op {
	case dataProcessingOpAND:
		a.CompileConstToRegister(amd64.ANDL, int64(imm), rd)
	case dataProcessingOpEOR:
		a.CompileConstToRegister(amd64.XORL, int64(imm), rd)
	case dataProcessingOpORR:
		a.CompileConstToRegister(amd64.ORL, int64(imm), rd)
	case dataProcessingOpBIC:
		a.CompileConstToRegister(amd64.ANDL, int64(^imm), rd)
	case dataProcessingOpADD:
		a.CompileConstToRegister(amd64.ADDL, int64(imm), rd)
	case dataProcessingOpADC:
		a.CompileConstToRegister(amd64.ADCL, int64(imm), rd)
	case dataProcessingOpSUB:
		a.CompileConstToRegister(amd64.SUBL, int64(imm), rd)
	case dataProcessingOpSBC:
		a.CompileConstToRegister(amd64.SBBL, int64(imm), rd)
	}

	if s {
		switch {
		case op.logical():
			c.compileLogicalFlags(rotate, carry)
		case op == dataProcessingOpADD || op == dataProcessingOpADC:
			c.compileAdditionFlags()
		default:
			c.compileSubtractionFlags()
		}
	}

	c.regs.unlock(d)
	if n != d {
		c.regs.unlock(n)
	}
	return nil
}

// compileReverseSubtractImm computes imm - n into d, minus the inverted carry for RSC.
func (c *compiler) compileReverseSubtractImm(withCarry, s bool, n, d arm.Reg, imm uint32) {
	a := c.assembler
	rn := c.regs.bindForRead(n)
	tmp := c.regs.allocTemp()
	a.CompileConstToRegister(amd64.MOVL, int64(imm), tmp)
	if withCarry {
		a.CompileMemoryToConst(amd64.CMPL, amd64ReservedRegisterForState, jitStateCOffset, 1)
		a.CompileRegisterToRegister(amd64.SBBL, rn, tmp)
	} else {
		a.CompileRegisterToRegister(amd64.SUBL, rn, tmp)
	}
	if s {
		c.compileSubtractionFlags()
	}
	rd := c.regs.bindForWrite(d)
	a.CompileRegisterToRegister(amd64.MOVL, tmp, rd)
	c.regs.releaseTemp(tmp)
	c.regs.unlock(d)
	if n != d {
		c.regs.unlock(n)
	}
}

// compileOperandToRegister copies the guest register at o into reg.
func (c *compiler) compileOperandToRegister(o operand, reg asm.Register) {
	if o.onRegister() {
		c.assembler.CompileRegisterToRegister(amd64.MOVL, o.register, reg)
	} else {
		c.assembler.CompileMemoryToRegister(amd64.MOVL, amd64ReservedRegisterForState, o.offset, reg)
	}
}

// compileLogicalFlags writes N and Z from the host flags, and C from the immediate expansion
// when it was rotated.
func (c *compiler) compileLogicalFlags(rotate uint32, carry bool) {
	c.compileSetFlag(amd64.SETMI, jitStateNOffset)
	c.compileSetFlag(amd64.SETEQ, jitStateZOffset)
	if rotate != 0 {
		c.compileConstToFlag(jitStateCOffset, carry)
	}
	c.flagsDirty()
}

func (c *compiler) compileAdditionFlags() {
	c.compileSetFlag(amd64.SETMI, jitStateNOffset)
	c.compileSetFlag(amd64.SETEQ, jitStateZOffset)
	c.compileSetFlag(amd64.SETCS, jitStateCOffset)
	c.compileSetFlag(amd64.SETOS, jitStateVOffset)
	c.flagsDirty()
}

// compileSubtractionFlags writes the flags after a host SUB, SBB or CMP. The guest carry is
// the inverse of the host borrow.
func (c *compiler) compileSubtractionFlags() {
	c.compileSetFlag(amd64.SETMI, jitStateNOffset)
	c.compileSetFlag(amd64.SETEQ, jitStateZOffset)
	c.compileSetFlag(amd64.SETCC, jitStateCOffset)
	c.compileSetFlag(amd64.SETOS, jitStateVOffset)
	c.flagsDirty()
}
