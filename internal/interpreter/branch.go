package interpreter

import "github.com/armjit/armjit/internal/arm"

func (i *Interpreter) armBranchTarget(imm24 uint32) uint32 {
	return i.reg(arm.PC) + arm.SignExtend(imm24<<2, 26)
}

// B implements decoder.Visitor B
func (i *Interpreter) B(cond arm.Cond, imm24 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	i.branchWritePC(i.armBranchTarget(imm24))
	return nil
}

// BL implements decoder.Visitor BL
func (i *Interpreter) BL(cond arm.Cond, imm24 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	i.State.Regs[arm.LR] = i.pc + 4
	i.branchWritePC(i.armBranchTarget(imm24))
	return nil
}

// BLXImm implements decoder.Visitor BLXImm
func (i *Interpreter) BLXImm(h bool, imm24 uint32) error {
	offset := imm24 << 2
	if h {
		offset |= 2
	}
	target := i.reg(arm.PC) + arm.SignExtend(offset, 26)
	i.State.Regs[arm.LR] = i.pc + 4
	i.State.SetBit(arm.CPSRT, true)
	i.branchWritePC(target)
	return nil
}

// BX implements decoder.Visitor BX
func (i *Interpreter) BX(cond arm.Cond, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	i.bxWritePC(i.reg(m))
	return nil
}

// BXJ implements decoder.Visitor BXJ
//
// Jazelle is never available so this is BX.
func (i *Interpreter) BXJ(cond arm.Cond, m arm.Reg) error {
	return i.BX(cond, m)
}

// BLXReg implements decoder.Visitor BLXReg
func (i *Interpreter) BLXReg(cond arm.Cond, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	target := i.reg(m)
	if i.thumb() {
		i.State.Regs[arm.LR] = (i.pc + 2) | 1
	} else {
		i.State.Regs[arm.LR] = i.pc + 4
	}
	i.bxWritePC(target)
	return nil
}

// ThumbBCond implements decoder.Visitor ThumbBCond
func (i *Interpreter) ThumbBCond(cond arm.Cond, imm8 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	i.branchWritePC(i.reg(arm.PC) + arm.SignExtend(imm8<<1, 9))
	return nil
}

// ThumbB implements decoder.Visitor ThumbB
func (i *Interpreter) ThumbB(imm11 uint32) error {
	i.branchWritePC(i.reg(arm.PC) + arm.SignExtend(imm11<<1, 12))
	return nil
}

// ThumbBLXPrefix implements decoder.Visitor ThumbBLXPrefix
func (i *Interpreter) ThumbBLXPrefix(imm11 uint32) error {
	i.State.Regs[arm.LR] = i.reg(arm.PC) + arm.SignExtend(imm11, 11)<<12
	return nil
}

// ThumbBLXSuffix implements decoder.Visitor ThumbBLXSuffix
func (i *Interpreter) ThumbBLXSuffix(x bool, imm11 uint32) error {
	target := i.State.Regs[arm.LR] + imm11<<1
	i.State.Regs[arm.LR] = (i.pc + 2) | 1
	if x {
		i.State.SetBit(arm.CPSRT, false)
	}
	i.branchWritePC(target)
	return nil
}
