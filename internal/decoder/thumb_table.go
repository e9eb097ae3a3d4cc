package decoder

import "github.com/armjit/armjit/internal/arm"

// thumbTable is scanned from the end, see DecodeThumb. Each entry translates the 16-bit
// encoding into the equivalent ARM Visitor call with the condition AL.
var thumbTable = []*Instruction{
	newThumbInstruction("LSL/LSR/ASR (imm)", "000oovvvvvmmmddd", func(v Visitor, f *fields) error {
		// o == 3 is taken by the ADD/SUB entries below.
		return v.MOVReg(arm.CondAL, true, f.reg(3), f[1], f.shift(0), f.reg(2))
	}),
	newThumbInstruction("ADD/SUB (reg)", "000110ommmnnnddd", func(v Visitor, f *fields) error {
		if f.bit(0) {
			return v.SUBReg(arm.CondAL, true, f.reg(2), f.reg(3), 0, arm.LSL, f.reg(1))
		}
		return v.ADDReg(arm.CondAL, true, f.reg(2), f.reg(3), 0, arm.LSL, f.reg(1))
	}),
	newThumbInstruction("ADD/SUB (imm3)", "000111ovvvnnnddd", func(v Visitor, f *fields) error {
		if f.bit(0) {
			return v.SUBImm(arm.CondAL, true, f.reg(2), f.reg(3), 0, f[1])
		}
		return v.ADDImm(arm.CondAL, true, f.reg(2), f.reg(3), 0, f[1])
	}),
	newThumbInstruction("MOV/CMP/ADD/SUB (imm8)", "001oodddvvvvvvvv", func(v Visitor, f *fields) error {
		d, imm8 := f.reg(1), f[2]
		switch f[0] {
		case 0:
			return v.MOVImm(arm.CondAL, true, d, 0, imm8)
		case 1:
			return v.CMPImm(arm.CondAL, d, 0, imm8)
		case 2:
			return v.ADDImm(arm.CondAL, true, d, d, 0, imm8)
		default:
			return v.SUBImm(arm.CondAL, true, d, d, 0, imm8)
		}
	}),
	newThumbInstruction("Data processing (reg)", "010000oooommmddd", func(v Visitor, f *fields) error {
		m, d := f.reg(1), f.reg(2)
		switch f[0] {
		case 0:
			return v.ANDReg(arm.CondAL, true, d, d, 0, arm.LSL, m)
		case 1:
			return v.EORReg(arm.CondAL, true, d, d, 0, arm.LSL, m)
		case 2:
			return v.MOVRsr(arm.CondAL, true, d, m, arm.LSL, d)
		case 3:
			return v.MOVRsr(arm.CondAL, true, d, m, arm.LSR, d)
		case 4:
			return v.MOVRsr(arm.CondAL, true, d, m, arm.ASR, d)
		case 5:
			return v.ADCReg(arm.CondAL, true, d, d, 0, arm.LSL, m)
		case 6:
			return v.SBCReg(arm.CondAL, true, d, d, 0, arm.LSL, m)
		case 7:
			return v.MOVRsr(arm.CondAL, true, d, m, arm.ROR, d)
		case 8:
			return v.TSTReg(arm.CondAL, d, 0, arm.LSL, m)
		case 9:
			// NEG
			return v.RSBImm(arm.CondAL, true, m, d, 0, 0)
		case 10:
			return v.CMPReg(arm.CondAL, d, 0, arm.LSL, m)
		case 11:
			return v.CMNReg(arm.CondAL, d, 0, arm.LSL, m)
		case 12:
			return v.ORRReg(arm.CondAL, true, d, d, 0, arm.LSL, m)
		case 13:
			return v.MUL(arm.CondAL, true, d, d, m)
		case 14:
			return v.BICReg(arm.CondAL, true, d, d, 0, arm.LSL, m)
		default:
			return v.MVNReg(arm.CondAL, true, d, 0, arm.LSL, m)
		}
	}),
	newThumbInstruction("Special data processing", "010001oodmmmmddd", func(v Visitor, f *fields) error {
		// The destination is D:ddd.
		d, m := f.reg(1), f.reg(2)
		switch f[0] {
		case 0:
			return v.ADDReg(arm.CondAL, false, d, d, 0, arm.LSL, m)
		case 1:
			return v.CMPReg(arm.CondAL, d, 0, arm.LSL, m)
		case 2:
			return v.MOVReg(arm.CondAL, false, d, 0, arm.LSL, m)
		default:
			// BX and BLX with non-zero low bits.
			return v.UDF()
		}
	}),
	newThumbInstruction("BX/BLX (reg)", "01000111lmmmm000", func(v Visitor, f *fields) error {
		if f.bit(0) {
			return v.BLXReg(arm.CondAL, f.reg(1))
		}
		return v.BX(arm.CondAL, f.reg(1))
	}),
	newThumbInstruction("LDR (literal)", "01001dddvvvvvvvv", func(v Visitor, f *fields) error {
		return v.LDRImm(arm.CondAL, true, true, false, arm.PC, f.reg(0), f[1]*4)
	}),
	newThumbInstruction("Load/store (reg)", "0101ooommmnnnddd", func(v Visitor, f *fields) error {
		m, n, d := f.reg(1), f.reg(2), f.reg(3)
		switch f[0] {
		case 0:
			return v.STRReg(arm.CondAL, true, true, false, n, d, 0, arm.LSL, m)
		case 1:
			return v.STRHReg(arm.CondAL, true, true, false, n, d, m)
		case 2:
			return v.STRBReg(arm.CondAL, true, true, false, n, d, 0, arm.LSL, m)
		case 3:
			return v.LDRSBReg(arm.CondAL, true, true, false, n, d, m)
		case 4:
			return v.LDRReg(arm.CondAL, true, true, false, n, d, 0, arm.LSL, m)
		case 5:
			return v.LDRHReg(arm.CondAL, true, true, false, n, d, m)
		case 6:
			return v.LDRBReg(arm.CondAL, true, true, false, n, d, 0, arm.LSL, m)
		default:
			return v.LDRSHReg(arm.CondAL, true, true, false, n, d, m)
		}
	}),
	newThumbInstruction("STR(B)/LDR(B) (imm)", "011oovvvvvnnnddd", func(v Visitor, f *fields) error {
		offset, n, d := f[1], f.reg(2), f.reg(3)
		switch f[0] {
		case 0:
			return v.STRImm(arm.CondAL, true, true, false, n, d, offset*4)
		case 1:
			return v.LDRImm(arm.CondAL, true, true, false, n, d, offset*4)
		case 2:
			return v.STRBImm(arm.CondAL, true, true, false, n, d, offset)
		default:
			return v.LDRBImm(arm.CondAL, true, true, false, n, d, offset)
		}
	}),
	newThumbInstruction("STRH/LDRH (imm)", "1000lvvvvvnnnddd", func(v Visitor, f *fields) error {
		if f.bit(0) {
			return v.LDRHImm(arm.CondAL, true, true, false, f.reg(2), f.reg(3), f[1]*2)
		}
		return v.STRHImm(arm.CondAL, true, true, false, f.reg(2), f.reg(3), f[1]*2)
	}),
	newThumbInstruction("STR/LDR (SP)", "1001ldddvvvvvvvv", func(v Visitor, f *fields) error {
		if f.bit(0) {
			return v.LDRImm(arm.CondAL, true, true, false, arm.SP, f.reg(1), f[2]*4)
		}
		return v.STRImm(arm.CondAL, true, true, false, arm.SP, f.reg(1), f[2]*4)
	}),
	newThumbInstruction("ADD (SP/PC)", "1010sdddvvvvvvvv", func(v Visitor, f *fields) error {
		n := arm.PC
		if f.bit(0) {
			n = arm.SP
		}
		// A rotation of 0xF scales imm8 by four.
		return v.ADDImm(arm.CondAL, false, n, f.reg(1), 0xf, f[2])
	}),
	newThumbInstruction("ADD/SUB (SP)", "10110000ovvvvvvv", func(v Visitor, f *fields) error {
		if f.bit(0) {
			return v.SUBImm(arm.CondAL, false, arm.SP, arm.SP, 0xf, f[1])
		}
		return v.ADDImm(arm.CondAL, false, arm.SP, arm.SP, 0xf, f[1])
	}),
	newThumbInstruction("Sign/zero extend", "10110010oommmddd", func(v Visitor, f *fields) error {
		m, d := f.reg(1), f.reg(2)
		switch f[0] {
		case 0:
			return v.SXTH(arm.CondAL, d, 0, m)
		case 1:
			return v.SXTB(arm.CondAL, d, 0, m)
		case 2:
			return v.UXTH(arm.CondAL, d, 0, m)
		default:
			return v.UXTB(arm.CondAL, d, 0, m)
		}
	}),
	newThumbInstruction("PUSH/POP", "1011l10rvvvvvvvv", func(v Visitor, f *fields) error {
		list := arm.RegList(f[2])
		if f.bit(0) {
			if f.bit(1) {
				list |= 1 << arm.PC
			}
			// LDMIA SP!, {list}
			return v.LDM(arm.CondAL, false, true, true, arm.SP, list)
		}
		if f.bit(1) {
			list |= 1 << arm.LR
		}
		// STMDB SP!, {list}
		return v.STM(arm.CondAL, true, false, true, arm.SP, list)
	}),
	newThumbInstruction("SETEND", "101101100101e000", func(v Visitor, f *fields) error {
		return v.SETEND(f.bit(0))
	}),
	newThumbInstruction("CPS", "10110110011-0---", func(v Visitor, _ *fields) error {
		return v.CPS()
	}),
	newThumbInstruction("Reverse bytes", "10111010oommmddd", func(v Visitor, f *fields) error {
		m, d := f.reg(1), f.reg(2)
		switch f[0] {
		case 0:
			return v.REV(arm.CondAL, d, m)
		case 1:
			return v.REV16(arm.CondAL, d, m)
		case 2:
			return v.UDF()
		default:
			return v.REVSH(arm.CondAL, d, m)
		}
	}),
	newThumbInstruction("BKPT", "10111110vvvvvvvv", func(v Visitor, f *fields) error {
		return v.BKPT(arm.CondAL, f[0])
	}),
	newThumbInstruction("STMIA/LDMIA", "1100lnnnvvvvvvvv", func(v Visitor, f *fields) error {
		n, list := f.reg(1), arm.RegList(f[2])
		if f.bit(0) {
			// Writeback only happens when the base is not loaded.
			return v.LDM(arm.CondAL, false, true, !list.Contains(n), n, list)
		}
		return v.STM(arm.CondAL, false, true, true, n, list)
	}),
	newThumbInstruction("B<cond>", "1101ccccvvvvvvvv", func(v Visitor, f *fields) error {
		if f.cond(0) == arm.CondAL {
			return v.UDF()
		}
		return v.ThumbBCond(f.cond(0), f[1])
	}),
	newThumbInstruction("SVC", "11011111vvvvvvvv", func(v Visitor, f *fields) error {
		return v.SVC(arm.CondAL, f[0])
	}),
	newThumbInstruction("B", "11100vvvvvvvvvvv", func(v Visitor, f *fields) error {
		return v.ThumbB(f[0])
	}),
	newThumbInstruction("BLX (suffix)", "11101vvvvvvvvvv0", func(v Visitor, f *fields) error {
		return v.ThumbBLXSuffix(true, f[0]<<1)
	}),
	newThumbInstruction("BL/BLX (prefix)", "11110vvvvvvvvvvv", func(v Visitor, f *fields) error {
		return v.ThumbBLXPrefix(f[0])
	}),
	newThumbInstruction("BL (suffix)", "11111vvvvvvvvvvv", func(v Visitor, f *fields) error {
		return v.ThumbBLXSuffix(false, f[0])
	}),
}
