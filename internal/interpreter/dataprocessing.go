package interpreter

import "github.com/armjit/armjit/internal/arm"

type dpOp byte

const (
	dpAND dpOp = iota
	dpEOR
	dpSUB
	dpRSB
	dpADD
	dpADC
	dpSBC
	dpRSC
	dpTST
	dpTEQ
	dpCMP
	dpCMN
	dpORR
	dpMOV
	dpBIC
	dpMVN
)

var dpNames = [...]string{"AND", "EOR", "SUB", "RSB", "ADD", "ADC", "SBC", "RSC", "TST", "TEQ", "CMP", "CMN", "ORR", "MOV", "BIC", "MVN"}

// test returns true for the comparison operations which only set flags.
func (op dpOp) test() bool { return op >= dpTST && op <= dpCMN }

// logical returns true for the operations whose carry comes from the shifter.
func (op dpOp) logical() bool {
	switch op {
	case dpAND, dpEOR, dpTST, dpTEQ, dpORR, dpMOV, dpBIC, dpMVN:
		return true
	}
	return false
}

// dataProcessing executes op on rn and the already shifted operand2.
func (i *Interpreter) dataProcessing(op dpOp, s bool, rn uint32, d arm.Reg, operand2 uint32, shifterCarry bool) error {
	var result uint32
	var c, v bool
	switch op {
	case dpAND, dpTST:
		result = rn & operand2
	case dpEOR, dpTEQ:
		result = rn ^ operand2
	case dpORR:
		result = rn | operand2
	case dpBIC:
		result = rn &^ operand2
	case dpMOV:
		result = operand2
	case dpMVN:
		result = ^operand2
	case dpSUB, dpCMP:
		result, c, v = arm.AddWithCarry(rn, ^operand2, true)
	case dpRSB:
		result, c, v = arm.AddWithCarry(^rn, operand2, true)
	case dpADD, dpCMN:
		result, c, v = arm.AddWithCarry(rn, operand2, false)
	case dpADC:
		result, c, v = arm.AddWithCarry(rn, operand2, i.carry())
	case dpSBC:
		result, c, v = arm.AddWithCarry(rn, ^operand2, i.carry())
	case dpRSC:
		result, c, v = arm.AddWithCarry(^rn, operand2, i.carry())
	}

	if !op.test() {
		if d == arm.PC && s {
			// Exception return, meaningless in user mode.
			return i.unimplemented(dpNames[op] + "S pc")
		}
		i.setReg(d, result)
	}
	if s || op.test() {
		i.setNZ(result)
		if op.logical() {
			i.State.SetBit(arm.CPSRC, shifterCarry)
		} else {
			i.State.SetBit(arm.CPSRC, c)
			i.State.SetBit(arm.CPSRV, v)
		}
	}
	return nil
}

func (i *Interpreter) dpImm(op dpOp, cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	rn := i.reg(n)
	if i.thumb() {
		// ADR reads PC word aligned.
		rn = i.base(n)
	}
	operand2, carry := arm.ExpandImmC(rotate, imm8, i.carry())
	return i.dataProcessing(op, s, rn, d, operand2, carry)
}

func (i *Interpreter) dpReg(op dpOp, cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	operand2, carry := arm.ShiftImm(i.reg(m), shift, imm5, i.carry())
	return i.dataProcessing(op, s, i.reg(n), d, operand2, carry)
}

func (i *Interpreter) dpRsr(op dpOp, cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	if d == arm.PC || n == arm.PC || sReg == arm.PC || m == arm.PC {
		return i.unimplemented(dpNames[op] + " (rsr) with pc")
	}
	operand2, carry := arm.Shift(i.reg(m), shift, i.reg(sReg), i.carry())
	return i.dataProcessing(op, s, i.reg(n), d, operand2, carry)
}

// ADCImm implements decoder.Visitor ADCImm
func (i *Interpreter) ADCImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpADC, cond, s, n, d, rotate, imm8)
}

// ADCReg implements decoder.Visitor ADCReg
func (i *Interpreter) ADCReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpADC, cond, s, n, d, imm5, shift, m)
}

// ADCRsr implements decoder.Visitor ADCRsr
func (i *Interpreter) ADCRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpADC, cond, s, n, d, sReg, shift, m)
}

// ADDImm implements decoder.Visitor ADDImm
func (i *Interpreter) ADDImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpADD, cond, s, n, d, rotate, imm8)
}

// ADDReg implements decoder.Visitor ADDReg
func (i *Interpreter) ADDReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpADD, cond, s, n, d, imm5, shift, m)
}

// ADDRsr implements decoder.Visitor ADDRsr
func (i *Interpreter) ADDRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpADD, cond, s, n, d, sReg, shift, m)
}

// ANDImm implements decoder.Visitor ANDImm
func (i *Interpreter) ANDImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpAND, cond, s, n, d, rotate, imm8)
}

// ANDReg implements decoder.Visitor ANDReg
func (i *Interpreter) ANDReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpAND, cond, s, n, d, imm5, shift, m)
}

// ANDRsr implements decoder.Visitor ANDRsr
func (i *Interpreter) ANDRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpAND, cond, s, n, d, sReg, shift, m)
}

// BICImm implements decoder.Visitor BICImm
func (i *Interpreter) BICImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpBIC, cond, s, n, d, rotate, imm8)
}

// BICReg implements decoder.Visitor BICReg
func (i *Interpreter) BICReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpBIC, cond, s, n, d, imm5, shift, m)
}

// BICRsr implements decoder.Visitor BICRsr
func (i *Interpreter) BICRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpBIC, cond, s, n, d, sReg, shift, m)
}

// CMNImm implements decoder.Visitor CMNImm
func (i *Interpreter) CMNImm(cond arm.Cond, n arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpCMN, cond, true, n, 0, rotate, imm8)
}

// CMNReg implements decoder.Visitor CMNReg
func (i *Interpreter) CMNReg(cond arm.Cond, n arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpCMN, cond, true, n, 0, imm5, shift, m)
}

// CMNRsr implements decoder.Visitor CMNRsr
func (i *Interpreter) CMNRsr(cond arm.Cond, n, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpCMN, cond, true, n, 0, sReg, shift, m)
}

// CMPImm implements decoder.Visitor CMPImm
func (i *Interpreter) CMPImm(cond arm.Cond, n arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpCMP, cond, true, n, 0, rotate, imm8)
}

// CMPReg implements decoder.Visitor CMPReg
func (i *Interpreter) CMPReg(cond arm.Cond, n arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpCMP, cond, true, n, 0, imm5, shift, m)
}

// CMPRsr implements decoder.Visitor CMPRsr
func (i *Interpreter) CMPRsr(cond arm.Cond, n, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpCMP, cond, true, n, 0, sReg, shift, m)
}

// EORImm implements decoder.Visitor EORImm
func (i *Interpreter) EORImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpEOR, cond, s, n, d, rotate, imm8)
}

// EORReg implements decoder.Visitor EORReg
func (i *Interpreter) EORReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpEOR, cond, s, n, d, imm5, shift, m)
}

// EORRsr implements decoder.Visitor EORRsr
func (i *Interpreter) EORRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpEOR, cond, s, n, d, sReg, shift, m)
}

// MOVImm implements decoder.Visitor MOVImm
func (i *Interpreter) MOVImm(cond arm.Cond, s bool, d arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpMOV, cond, s, 0, d, rotate, imm8)
}

// MOVReg implements decoder.Visitor MOVReg
func (i *Interpreter) MOVReg(cond arm.Cond, s bool, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpMOV, cond, s, 0, d, imm5, shift, m)
}

// MOVRsr implements decoder.Visitor MOVRsr
func (i *Interpreter) MOVRsr(cond arm.Cond, s bool, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpMOV, cond, s, 0, d, sReg, shift, m)
}

// MVNImm implements decoder.Visitor MVNImm
func (i *Interpreter) MVNImm(cond arm.Cond, s bool, d arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpMVN, cond, s, 0, d, rotate, imm8)
}

// MVNReg implements decoder.Visitor MVNReg
func (i *Interpreter) MVNReg(cond arm.Cond, s bool, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpMVN, cond, s, 0, d, imm5, shift, m)
}

// MVNRsr implements decoder.Visitor MVNRsr
func (i *Interpreter) MVNRsr(cond arm.Cond, s bool, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpMVN, cond, s, 0, d, sReg, shift, m)
}

// ORRImm implements decoder.Visitor ORRImm
func (i *Interpreter) ORRImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpORR, cond, s, n, d, rotate, imm8)
}

// ORRReg implements decoder.Visitor ORRReg
func (i *Interpreter) ORRReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpORR, cond, s, n, d, imm5, shift, m)
}

// ORRRsr implements decoder.Visitor ORRRsr
func (i *Interpreter) ORRRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpORR, cond, s, n, d, sReg, shift, m)
}

// RSBImm implements decoder.Visitor RSBImm
func (i *Interpreter) RSBImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpRSB, cond, s, n, d, rotate, imm8)
}

// RSBReg implements decoder.Visitor RSBReg
func (i *Interpreter) RSBReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpRSB, cond, s, n, d, imm5, shift, m)
}

// RSBRsr implements decoder.Visitor RSBRsr
func (i *Interpreter) RSBRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpRSB, cond, s, n, d, sReg, shift, m)
}

// RSCImm implements decoder.Visitor RSCImm
func (i *Interpreter) RSCImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpRSC, cond, s, n, d, rotate, imm8)
}

// RSCReg implements decoder.Visitor RSCReg
func (i *Interpreter) RSCReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpRSC, cond, s, n, d, imm5, shift, m)
}

// RSCRsr implements decoder.Visitor RSCRsr
func (i *Interpreter) RSCRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpRSC, cond, s, n, d, sReg, shift, m)
}

// SBCImm implements decoder.Visitor SBCImm
func (i *Interpreter) SBCImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpSBC, cond, s, n, d, rotate, imm8)
}

// SBCReg implements decoder.Visitor SBCReg
func (i *Interpreter) SBCReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpSBC, cond, s, n, d, imm5, shift, m)
}

// SBCRsr implements decoder.Visitor SBCRsr
func (i *Interpreter) SBCRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpSBC, cond, s, n, d, sReg, shift, m)
}

// SUBImm implements decoder.Visitor SUBImm
func (i *Interpreter) SUBImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpSUB, cond, s, n, d, rotate, imm8)
}

// SUBReg implements decoder.Visitor SUBReg
func (i *Interpreter) SUBReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpSUB, cond, s, n, d, imm5, shift, m)
}

// SUBRsr implements decoder.Visitor SUBRsr
func (i *Interpreter) SUBRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpSUB, cond, s, n, d, sReg, shift, m)
}

// TEQImm implements decoder.Visitor TEQImm
func (i *Interpreter) TEQImm(cond arm.Cond, n arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpTEQ, cond, true, n, 0, rotate, imm8)
}

// TEQReg implements decoder.Visitor TEQReg
func (i *Interpreter) TEQReg(cond arm.Cond, n arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpTEQ, cond, true, n, 0, imm5, shift, m)
}

// TEQRsr implements decoder.Visitor TEQRsr
func (i *Interpreter) TEQRsr(cond arm.Cond, n, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpTEQ, cond, true, n, 0, sReg, shift, m)
}

// TSTImm implements decoder.Visitor TSTImm
func (i *Interpreter) TSTImm(cond arm.Cond, n arm.Reg, rotate, imm8 uint32) error {
	return i.dpImm(dpTST, cond, true, n, 0, rotate, imm8)
}

// TSTReg implements decoder.Visitor TSTReg
func (i *Interpreter) TSTReg(cond arm.Cond, n arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	return i.dpReg(dpTST, cond, true, n, 0, imm5, shift, m)
}

// TSTRsr implements decoder.Visitor TSTRsr
func (i *Interpreter) TSTRsr(cond arm.Cond, n, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error {
	return i.dpRsr(dpTST, cond, true, n, 0, sReg, shift, m)
}
