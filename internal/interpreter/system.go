package interpreter

import (
	"fmt"

	"github.com/armjit/armjit/internal/arm"
)

const systemControlCoprocessor = 15

// cp15Register maps the user accessible CP15 registers.
func cp15Register(opc1, crn, opc2, crm uint32) (arm.CP15Register, bool) {
	if opc1 != 0 || crm != 0 {
		return 0, false
	}
	switch {
	case crn == 0 && opc2 == 0:
		return arm.CP15MainID, true
	case crn == 13 && opc2 == 2:
		return arm.CP15ThreadUPRW, true
	case crn == 13 && opc2 == 3:
		return arm.CP15ThreadURO, true
	case crn == 13 && opc2 == 4:
		return arm.CP15ThreadPRW, true
	}
	return 0, false
}

// barrier returns true for the CP15 c7 operations that are barriers or prefetch flushes.
func barrier(opc1, crn, opc2, crm uint32) bool {
	if opc1 != 0 || crn != 7 {
		return false
	}
	return crm == 10 && (opc2 == 4 || opc2 == 5) || crm == 5 && opc2 == 4
}

// MCR implements decoder.Visitor MCR
func (i *Interpreter) MCR(cond arm.Cond, opc1, crn uint32, t arm.Reg, coproc, opc2, crm uint32) error {
	if !i.passed(cond) {
		return nil
	}
	if coproc == systemControlCoprocessor {
		if barrier(opc1, crn, opc2, crm) {
			return nil
		}
		if r, ok := cp15Register(opc1, crn, opc2, crm); ok && r == arm.CP15ThreadUPRW && t != arm.PC {
			i.State.CP15[r] = i.reg(t)
			return nil
		}
	}
	return i.unimplemented(fmt.Sprintf("MCR p%d, %d, %s, c%d, c%d, %d", coproc, opc1, t, crn, crm, opc2))
}

// MRC implements decoder.Visitor MRC
func (i *Interpreter) MRC(cond arm.Cond, opc1, crn uint32, t arm.Reg, coproc, opc2, crm uint32) error {
	if !i.passed(cond) {
		return nil
	}
	if coproc == systemControlCoprocessor {
		if r, ok := cp15Register(opc1, crn, opc2, crm); ok {
			v := i.State.CP15[r]
			if t == arm.PC {
				const nzcv = arm.CPSRN | arm.CPSRZ | arm.CPSRC | arm.CPSRV
				i.State.CPSR = i.State.CPSR&^nzcv | v&nzcv
			} else {
				i.State.Regs[t] = v
			}
			return nil
		}
	}
	return i.unimplemented(fmt.Sprintf("MRC p%d, %d, %s, c%d, c%d, %d", coproc, opc1, t, crn, crm, opc2))
}

// CDP implements decoder.Visitor CDP
func (i *Interpreter) CDP(cond arm.Cond) error { return i.unimplementedIf(cond, "CDP") }

// LDC implements decoder.Visitor LDC
func (i *Interpreter) LDC(cond arm.Cond) error { return i.unimplementedIf(cond, "LDC") }

// STC implements decoder.Visitor STC
func (i *Interpreter) STC(cond arm.Cond) error { return i.unimplementedIf(cond, "STC") }

// MCRR implements decoder.Visitor MCRR
func (i *Interpreter) MCRR(cond arm.Cond) error { return i.unimplementedIf(cond, "MCRR") }

// MRRC implements decoder.Visitor MRRC
func (i *Interpreter) MRRC(cond arm.Cond) error { return i.unimplementedIf(cond, "MRRC") }

// MRS implements decoder.Visitor MRS
func (i *Interpreter) MRS(cond arm.Cond, spsr bool, d arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	if spsr {
		return i.unimplemented("MRS spsr")
	}
	i.State.Regs[d] = i.State.CPSR
	return nil
}

// msrMask returns the CPSR bits writable in user mode selected by the MSR field mask.
func msrMask(mask uint32) (m uint32) {
	if mask&8 != 0 {
		m |= 0xf8000000 // NZCVQ
	}
	if mask&4 != 0 {
		m |= arm.CPSRGE
	}
	if mask&2 != 0 {
		m |= arm.CPSRE
	}
	return
}

func (i *Interpreter) msr(cond arm.Cond, spsr bool, mask, v uint32) error {
	if !i.passed(cond) {
		return nil
	}
	if spsr {
		return i.unimplemented("MSR spsr")
	}
	m := msrMask(mask)
	i.State.CPSR = i.State.CPSR&^m | v&m
	return nil
}

// MSRImm implements decoder.Visitor MSRImm
func (i *Interpreter) MSRImm(cond arm.Cond, spsr bool, mask, rotate, imm8 uint32) error {
	return i.msr(cond, spsr, mask, arm.ExpandImm(rotate, imm8))
}

// MSRReg implements decoder.Visitor MSRReg
func (i *Interpreter) MSRReg(cond arm.Cond, spsr bool, mask uint32, n arm.Reg) error {
	return i.msr(cond, spsr, mask, i.reg(n))
}

// CPS implements decoder.Visitor CPS
//
// Mode and interrupt mask changes have no effect in user mode.
func (i *Interpreter) CPS() error { return nil }

// SETEND implements decoder.Visitor SETEND
func (i *Interpreter) SETEND(e bool) error {
	i.State.SetBit(arm.CPSRE, e)
	return nil
}

// RFE implements decoder.Visitor RFE
func (i *Interpreter) RFE() error { return i.unimplemented("RFE") }

// SRS implements decoder.Visitor SRS
func (i *Interpreter) SRS() error { return i.unimplemented("SRS") }

// NOP implements decoder.Visitor NOP
func (i *Interpreter) NOP(arm.Cond) error { return nil }

// YIELD implements decoder.Visitor YIELD
func (i *Interpreter) YIELD(arm.Cond) error { return nil }

// WFE implements decoder.Visitor WFE
func (i *Interpreter) WFE(arm.Cond) error { return nil }

// WFI implements decoder.Visitor WFI
func (i *Interpreter) WFI(arm.Cond) error { return nil }

// SEV implements decoder.Visitor SEV
func (i *Interpreter) SEV(arm.Cond) error { return nil }

// PLD implements decoder.Visitor PLD
func (i *Interpreter) PLD() error { return nil }

// BKPT implements decoder.Visitor BKPT
func (i *Interpreter) BKPT(cond arm.Cond, imm16 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	return fmt.Errorf("%w #%#x at %#08x", ErrBreakpoint, imm16, i.pc)
}

// SVC implements decoder.Visitor SVC
func (i *Interpreter) SVC(cond arm.Cond, imm24 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	i.State.Regs[arm.PC] = i.pc + i.size
	i.branched, i.retired = true, true
	if i.SupervisorCall != nil {
		return i.SupervisorCall(imm24)
	}
	return fmt.Errorf("%w #%#x at %#08x", ErrSupervisorCall, imm24, i.pc)
}

// UDF implements decoder.Visitor UDF
func (i *Interpreter) UDF() error { return i.undefined() }
