package decoder

import "github.com/armjit/armjit/internal/arm"

// armTable is scanned in declaration order and the first match wins, so encodings that
// overlap a more general pattern must come first.
var armTable = []*Instruction{
	// Branch instructions
	newARMInstruction("BLX (imm)", "1111101hvvvvvvvvvvvvvvvvvvvvvvvv", func(v Visitor, f *fields) error { return v.BLXImm(f.bit(0), f[1]) }),
	newARMInstruction("BLX (reg)", "cccc000100101111111111110011mmmm", func(v Visitor, f *fields) error { return v.BLXReg(f.cond(0), f.reg(1)) }),
	newARMInstruction("B", "cccc1010vvvvvvvvvvvvvvvvvvvvvvvv", func(v Visitor, f *fields) error { return v.B(f.cond(0), f[1]) }),
	newARMInstruction("BL", "cccc1011vvvvvvvvvvvvvvvvvvvvvvvv", func(v Visitor, f *fields) error { return v.BL(f.cond(0), f[1]) }),
	newARMInstruction("BX", "cccc000100101111111111110001mmmm", func(v Visitor, f *fields) error { return v.BX(f.cond(0), f.reg(1)) }),
	newARMInstruction("BXJ", "cccc000100101111111111110010mmmm", func(v Visitor, f *fields) error { return v.BXJ(f.cond(0), f.reg(1)) }),

	// Coprocessor instructions
	newARMInstruction("CDP2", "11111110-------------------0----", func(v Visitor, _ *fields) error { return v.CDP(arm.CondNV) }),
	newARMInstruction("CDP", "cccc1110-------------------0----", func(v Visitor, f *fields) error { return v.CDP(f.cond(0)) }),
	newARMInstruction("LDC2", "1111110----1--------------------", func(v Visitor, _ *fields) error { return v.LDC(arm.CondNV) }),
	newARMInstruction("LDC", "cccc110----1--------------------", func(v Visitor, f *fields) error { return v.LDC(f.cond(0)) }),
	newARMInstruction("MCR2", "11111110aaa0nnnnttttppppbbb1mmmm", func(v Visitor, f *fields) error { return v.MCR(arm.CondNV, f[0], f[1], f.reg(2), f[3], f[4], f[5]) }),
	newARMInstruction("MCR", "cccc1110aaa0nnnnttttppppbbb1mmmm", func(v Visitor, f *fields) error { return v.MCR(f.cond(0), f[1], f[2], f.reg(3), f[4], f[5], f[6]) }),
	newARMInstruction("MCRR2", "111111000100--------------------", func(v Visitor, _ *fields) error { return v.MCRR(arm.CondNV) }),
	newARMInstruction("MCRR", "cccc11000100--------------------", func(v Visitor, f *fields) error { return v.MCRR(f.cond(0)) }),
	newARMInstruction("MRC2", "11111110aaa1nnnnttttppppbbb1mmmm", func(v Visitor, f *fields) error { return v.MRC(arm.CondNV, f[0], f[1], f.reg(2), f[3], f[4], f[5]) }),
	newARMInstruction("MRC", "cccc1110aaa1nnnnttttppppbbb1mmmm", func(v Visitor, f *fields) error { return v.MRC(f.cond(0), f[1], f[2], f.reg(3), f[4], f[5], f[6]) }),
	newARMInstruction("MRRC2", "111111000101--------------------", func(v Visitor, _ *fields) error { return v.MRRC(arm.CondNV) }),
	newARMInstruction("MRRC", "cccc11000101--------------------", func(v Visitor, f *fields) error { return v.MRRC(f.cond(0)) }),
	newARMInstruction("STC2", "1111110----0--------------------", func(v Visitor, _ *fields) error { return v.STC(arm.CondNV) }),
	newARMInstruction("STC", "cccc110----0--------------------", func(v Visitor, f *fields) error { return v.STC(f.cond(0)) }),

	// Data processing instructions
	newARMInstruction("ADC (imm)", "cccc0010101Snnnnddddrrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.ADCImm(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f[5]) }),
	newARMInstruction("ADC (reg)", "cccc0000101Snnnnddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.ADCReg(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f.shift(5), f.reg(6)) }),
	newARMInstruction("ADC (rsr)", "cccc0000101Snnnnddddssss0rr1mmmm", func(v Visitor, f *fields) error { return v.ADCRsr(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.shift(5), f.reg(6)) }),
	newARMInstruction("ADD (imm)", "cccc0010100Snnnnddddrrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.ADDImm(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f[5]) }),
	newARMInstruction("ADD (reg)", "cccc0000100Snnnnddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.ADDReg(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f.shift(5), f.reg(6)) }),
	newARMInstruction("ADD (rsr)", "cccc0000100Snnnnddddssss0rr1mmmm", func(v Visitor, f *fields) error { return v.ADDRsr(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.shift(5), f.reg(6)) }),
	newARMInstruction("AND (imm)", "cccc0010000Snnnnddddrrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.ANDImm(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f[5]) }),
	newARMInstruction("AND (reg)", "cccc0000000Snnnnddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.ANDReg(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f.shift(5), f.reg(6)) }),
	newARMInstruction("AND (rsr)", "cccc0000000Snnnnddddssss0rr1mmmm", func(v Visitor, f *fields) error { return v.ANDRsr(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.shift(5), f.reg(6)) }),
	newARMInstruction("BIC (imm)", "cccc0011110Snnnnddddrrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.BICImm(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f[5]) }),
	newARMInstruction("BIC (reg)", "cccc0001110Snnnnddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.BICReg(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f.shift(5), f.reg(6)) }),
	newARMInstruction("BIC (rsr)", "cccc0001110Snnnnddddssss0rr1mmmm", func(v Visitor, f *fields) error { return v.BICRsr(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.shift(5), f.reg(6)) }),
	newARMInstruction("CMN (imm)", "cccc00110111nnnn0000rrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.CMNImm(f.cond(0), f.reg(1), f[2], f[3]) }),
	newARMInstruction("CMN (reg)", "cccc00010111nnnn0000vvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.CMNReg(f.cond(0), f.reg(1), f[2], f.shift(3), f.reg(4)) }),
	newARMInstruction("CMN (rsr)", "cccc00010111nnnn0000ssss0rr1mmmm", func(v Visitor, f *fields) error { return v.CMNRsr(f.cond(0), f.reg(1), f.reg(2), f.shift(3), f.reg(4)) }),
	newARMInstruction("CMP (imm)", "cccc00110101nnnn0000rrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.CMPImm(f.cond(0), f.reg(1), f[2], f[3]) }),
	newARMInstruction("CMP (reg)", "cccc00010101nnnn0000vvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.CMPReg(f.cond(0), f.reg(1), f[2], f.shift(3), f.reg(4)) }),
	newARMInstruction("CMP (rsr)", "cccc00010101nnnn0000ssss0rr1mmmm", func(v Visitor, f *fields) error { return v.CMPRsr(f.cond(0), f.reg(1), f.reg(2), f.shift(3), f.reg(4)) }),
	newARMInstruction("EOR (imm)", "cccc0010001Snnnnddddrrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.EORImm(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f[5]) }),
	newARMInstruction("EOR (reg)", "cccc0000001Snnnnddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.EORReg(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f.shift(5), f.reg(6)) }),
	newARMInstruction("EOR (rsr)", "cccc0000001Snnnnddddssss0rr1mmmm", func(v Visitor, f *fields) error { return v.EORRsr(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.shift(5), f.reg(6)) }),
	newARMInstruction("MOV (imm)", "cccc0011101S0000ddddrrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.MOVImm(f.cond(0), f.bit(1), f.reg(2), f[3], f[4]) }),
	newARMInstruction("MOV (reg)", "cccc0001101S0000ddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.MOVReg(f.cond(0), f.bit(1), f.reg(2), f[3], f.shift(4), f.reg(5)) }),
	newARMInstruction("MOV (rsr)", "cccc0001101S0000ddddssss0rr1mmmm", func(v Visitor, f *fields) error { return v.MOVRsr(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.shift(4), f.reg(5)) }),
	newARMInstruction("MVN (imm)", "cccc0011111S0000ddddrrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.MVNImm(f.cond(0), f.bit(1), f.reg(2), f[3], f[4]) }),
	newARMInstruction("MVN (reg)", "cccc0001111S0000ddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.MVNReg(f.cond(0), f.bit(1), f.reg(2), f[3], f.shift(4), f.reg(5)) }),
	newARMInstruction("MVN (rsr)", "cccc0001111S0000ddddssss0rr1mmmm", func(v Visitor, f *fields) error { return v.MVNRsr(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.shift(4), f.reg(5)) }),
	newARMInstruction("ORR (imm)", "cccc0011100Snnnnddddrrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.ORRImm(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f[5]) }),
	newARMInstruction("ORR (reg)", "cccc0001100Snnnnddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.ORRReg(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f.shift(5), f.reg(6)) }),
	newARMInstruction("ORR (rsr)", "cccc0001100Snnnnddddssss0rr1mmmm", func(v Visitor, f *fields) error { return v.ORRRsr(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.shift(5), f.reg(6)) }),
	newARMInstruction("RSB (imm)", "cccc0010011Snnnnddddrrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.RSBImm(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f[5]) }),
	newARMInstruction("RSB (reg)", "cccc0000011Snnnnddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.RSBReg(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f.shift(5), f.reg(6)) }),
	newARMInstruction("RSB (rsr)", "cccc0000011Snnnnddddssss0rr1mmmm", func(v Visitor, f *fields) error { return v.RSBRsr(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.shift(5), f.reg(6)) }),
	newARMInstruction("RSC (imm)", "cccc0010111Snnnnddddrrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.RSCImm(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f[5]) }),
	newARMInstruction("RSC (reg)", "cccc0000111Snnnnddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.RSCReg(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f.shift(5), f.reg(6)) }),
	newARMInstruction("RSC (rsr)", "cccc0000111Snnnnddddssss0rr1mmmm", func(v Visitor, f *fields) error { return v.RSCRsr(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.shift(5), f.reg(6)) }),
	newARMInstruction("SBC (imm)", "cccc0010110Snnnnddddrrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.SBCImm(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f[5]) }),
	newARMInstruction("SBC (reg)", "cccc0000110Snnnnddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.SBCReg(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f.shift(5), f.reg(6)) }),
	newARMInstruction("SBC (rsr)", "cccc0000110Snnnnddddssss0rr1mmmm", func(v Visitor, f *fields) error { return v.SBCRsr(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.shift(5), f.reg(6)) }),
	newARMInstruction("SUB (imm)", "cccc0010010Snnnnddddrrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.SUBImm(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f[5]) }),
	newARMInstruction("SUB (reg)", "cccc0000010Snnnnddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.SUBReg(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f[4], f.shift(5), f.reg(6)) }),
	newARMInstruction("SUB (rsr)", "cccc0000010Snnnnddddssss0rr1mmmm", func(v Visitor, f *fields) error { return v.SUBRsr(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.shift(5), f.reg(6)) }),
	newARMInstruction("TEQ (imm)", "cccc00110011nnnn0000rrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.TEQImm(f.cond(0), f.reg(1), f[2], f[3]) }),
	newARMInstruction("TEQ (reg)", "cccc00010011nnnn0000vvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.TEQReg(f.cond(0), f.reg(1), f[2], f.shift(3), f.reg(4)) }),
	newARMInstruction("TEQ (rsr)", "cccc00010011nnnn0000ssss0rr1mmmm", func(v Visitor, f *fields) error { return v.TEQRsr(f.cond(0), f.reg(1), f.reg(2), f.shift(3), f.reg(4)) }),
	newARMInstruction("TST (imm)", "cccc00110001nnnn0000rrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.TSTImm(f.cond(0), f.reg(1), f[2], f[3]) }),
	newARMInstruction("TST (reg)", "cccc00010001nnnn0000vvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.TSTReg(f.cond(0), f.reg(1), f[2], f.shift(3), f.reg(4)) }),
	newARMInstruction("TST (rsr)", "cccc00010001nnnn0000ssss0rr1mmmm", func(v Visitor, f *fields) error { return v.TSTRsr(f.cond(0), f.reg(1), f.reg(2), f.shift(3), f.reg(4)) }),

	// Exception generating instructions
	newARMInstruction("BKPT", "cccc00010010vvvvvvvvvvvv0111vvvv", func(v Visitor, f *fields) error { return v.BKPT(f.cond(0), f[1]) }),
	newARMInstruction("SVC", "cccc1111vvvvvvvvvvvvvvvvvvvvvvvv", func(v Visitor, f *fields) error { return v.SVC(f.cond(0), f[1]) }),
	newARMInstruction("UDF", "111001111111------------1111----", func(v Visitor, _ *fields) error { return v.UDF() }),

	// Extension instructions
	newARMInstruction("SXTB", "cccc011010101111ddddrr000111mmmm", func(v Visitor, f *fields) error { return v.SXTB(f.cond(0), f.reg(1), f.rotation(2), f.reg(3)) }),
	newARMInstruction("SXTB16", "cccc011010001111ddddrr000111mmmm", func(v Visitor, f *fields) error { return v.SXTB16(f.cond(0), f.reg(1), f.rotation(2), f.reg(3)) }),
	newARMInstruction("SXTH", "cccc011010111111ddddrr000111mmmm", func(v Visitor, f *fields) error { return v.SXTH(f.cond(0), f.reg(1), f.rotation(2), f.reg(3)) }),
	newARMInstruction("SXTAB", "cccc01101010nnnnddddrr000111mmmm", func(v Visitor, f *fields) error { return v.SXTAB(f.cond(0), f.reg(1), f.reg(2), f.rotation(3), f.reg(4)) }),
	newARMInstruction("SXTAB16", "cccc01101000nnnnddddrr000111mmmm", func(v Visitor, f *fields) error { return v.SXTAB16(f.cond(0), f.reg(1), f.reg(2), f.rotation(3), f.reg(4)) }),
	newARMInstruction("SXTAH", "cccc01101011nnnnddddrr000111mmmm", func(v Visitor, f *fields) error { return v.SXTAH(f.cond(0), f.reg(1), f.reg(2), f.rotation(3), f.reg(4)) }),
	newARMInstruction("UXTB", "cccc011011101111ddddrr000111mmmm", func(v Visitor, f *fields) error { return v.UXTB(f.cond(0), f.reg(1), f.rotation(2), f.reg(3)) }),
	newARMInstruction("UXTB16", "cccc011011001111ddddrr000111mmmm", func(v Visitor, f *fields) error { return v.UXTB16(f.cond(0), f.reg(1), f.rotation(2), f.reg(3)) }),
	newARMInstruction("UXTH", "cccc011011111111ddddrr000111mmmm", func(v Visitor, f *fields) error { return v.UXTH(f.cond(0), f.reg(1), f.rotation(2), f.reg(3)) }),
	newARMInstruction("UXTAB", "cccc01101110nnnnddddrr000111mmmm", func(v Visitor, f *fields) error { return v.UXTAB(f.cond(0), f.reg(1), f.reg(2), f.rotation(3), f.reg(4)) }),
	newARMInstruction("UXTAB16", "cccc01101100nnnnddddrr000111mmmm", func(v Visitor, f *fields) error { return v.UXTAB16(f.cond(0), f.reg(1), f.reg(2), f.rotation(3), f.reg(4)) }),
	newARMInstruction("UXTAH", "cccc01101111nnnnddddrr000111mmmm", func(v Visitor, f *fields) error { return v.UXTAH(f.cond(0), f.reg(1), f.reg(2), f.rotation(3), f.reg(4)) }),

	// Hint instructions
	newARMInstruction("PLD", "111101---101----1111------------", func(v Visitor, _ *fields) error { return v.PLD() }),
	newARMInstruction("SEV", "cccc0011001000001111000000000100", func(v Visitor, f *fields) error { return v.SEV(f.cond(0)) }),
	newARMInstruction("WFE", "cccc0011001000001111000000000010", func(v Visitor, f *fields) error { return v.WFE(f.cond(0)) }),
	newARMInstruction("WFI", "cccc0011001000001111000000000011", func(v Visitor, f *fields) error { return v.WFI(f.cond(0)) }),
	newARMInstruction("YIELD", "cccc0011001000001111000000000001", func(v Visitor, f *fields) error { return v.YIELD(f.cond(0)) }),

	// Synchronization primitive instructions
	newARMInstruction("CLREX", "11110101011111111111000000011111", func(v Visitor, _ *fields) error { return v.CLREX() }),
	newARMInstruction("LDREX", "cccc00011001nnnndddd111110011111", func(v Visitor, f *fields) error { return v.LDREX(f.cond(0), f.reg(1), f.reg(2)) }),
	newARMInstruction("LDREXB", "cccc00011101nnnndddd111110011111", func(v Visitor, f *fields) error { return v.LDREXB(f.cond(0), f.reg(1), f.reg(2)) }),
	newARMInstruction("LDREXD", "cccc00011011nnnndddd111110011111", func(v Visitor, f *fields) error { return v.LDREXD(f.cond(0), f.reg(1), f.reg(2)) }),
	newARMInstruction("LDREXH", "cccc00011111nnnndddd111110011111", func(v Visitor, f *fields) error { return v.LDREXH(f.cond(0), f.reg(1), f.reg(2)) }),
	newARMInstruction("STREX", "cccc00011000nnnndddd11111001mmmm", func(v Visitor, f *fields) error { return v.STREX(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("STREXB", "cccc00011100nnnndddd11111001mmmm", func(v Visitor, f *fields) error { return v.STREXB(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("STREXD", "cccc00011010nnnndddd11111001mmmm", func(v Visitor, f *fields) error { return v.STREXD(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("STREXH", "cccc00011110nnnndddd11111001mmmm", func(v Visitor, f *fields) error { return v.STREXH(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("SWP", "cccc00010000nnnndddd00001001mmmm", func(v Visitor, f *fields) error { return v.SWP(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("SWPB", "cccc00010100nnnndddd00001001mmmm", func(v Visitor, f *fields) error { return v.SWPB(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),

	// Load/store instructions
	newARMInstruction("LDR (imm)", "cccc010pu0w1nnnnddddvvvvvvvvvvvv", func(v Visitor, f *fields) error { return v.LDRImm(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f[6]) }),
	newARMInstruction("LDR (reg)", "cccc011pu0w1nnnnddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.LDRReg(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f[6], f.shift(7), f.reg(8)) }),
	newARMInstruction("LDRB (imm)", "cccc010pu1w1nnnnddddvvvvvvvvvvvv", func(v Visitor, f *fields) error { return v.LDRBImm(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f[6]) }),
	newARMInstruction("LDRB (reg)", "cccc011pu1w1nnnnddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.LDRBReg(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f[6], f.shift(7), f.reg(8)) }),
	newARMInstruction("LDRBT (A1)", "cccc0100-111--------------------", func(v Visitor, f *fields) error { return v.LDRBT(f.cond(0)) }),
	newARMInstruction("LDRBT (A2)", "cccc0110-111---------------0----", func(v Visitor, f *fields) error { return v.LDRBT(f.cond(0)) }),
	newARMInstruction("LDRD (imm)", "cccc000pu1w0nnnnddddvvvv1101vvvv", func(v Visitor, f *fields) error { return v.LDRDImm(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f[6]) }),
	newARMInstruction("LDRD (reg)", "cccc000pu0w0nnnndddd00001101mmmm", func(v Visitor, f *fields) error { return v.LDRDReg(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f.reg(6)) }),
	newARMInstruction("LDRH (imm)", "cccc000pu1w1nnnnddddvvvv1011vvvv", func(v Visitor, f *fields) error { return v.LDRHImm(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f[6]) }),
	newARMInstruction("LDRH (reg)", "cccc000pu0w1nnnndddd00001011mmmm", func(v Visitor, f *fields) error { return v.LDRHReg(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f.reg(6)) }),
	newARMInstruction("LDRHT (A1)", "cccc0000-111------------1011----", func(v Visitor, f *fields) error { return v.LDRHT(f.cond(0)) }),
	newARMInstruction("LDRHT (A2)", "cccc0000-011--------00001011----", func(v Visitor, f *fields) error { return v.LDRHT(f.cond(0)) }),
	newARMInstruction("LDRSB (imm)", "cccc000pu1w1nnnnddddvvvv1101vvvv", func(v Visitor, f *fields) error { return v.LDRSBImm(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f[6]) }),
	newARMInstruction("LDRSB (reg)", "cccc000pu0w1nnnndddd00001101mmmm", func(v Visitor, f *fields) error { return v.LDRSBReg(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f.reg(6)) }),
	newARMInstruction("LDRSBT (A1)", "cccc0000-111------------1101----", func(v Visitor, f *fields) error { return v.LDRSBT(f.cond(0)) }),
	newARMInstruction("LDRSBT (A2)", "cccc0000-011--------00001101----", func(v Visitor, f *fields) error { return v.LDRSBT(f.cond(0)) }),
	newARMInstruction("LDRSH (imm)", "cccc000pu1w1nnnnddddvvvv1111vvvv", func(v Visitor, f *fields) error { return v.LDRSHImm(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f[6]) }),
	newARMInstruction("LDRSH (reg)", "cccc000pu0w1nnnndddd00001111mmmm", func(v Visitor, f *fields) error { return v.LDRSHReg(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f.reg(6)) }),
	newARMInstruction("LDRSHT (A1)", "cccc0000-111------------1111----", func(v Visitor, f *fields) error { return v.LDRSHT(f.cond(0)) }),
	newARMInstruction("LDRSHT (A2)", "cccc0000-011--------00001111----", func(v Visitor, f *fields) error { return v.LDRSHT(f.cond(0)) }),
	newARMInstruction("LDRT (A1)", "cccc0100-011--------------------", func(v Visitor, f *fields) error { return v.LDRT(f.cond(0)) }),
	newARMInstruction("LDRT (A2)", "cccc0110-011---------------0----", func(v Visitor, f *fields) error { return v.LDRT(f.cond(0)) }),
	newARMInstruction("STR (imm)", "cccc010pu0w0nnnnddddvvvvvvvvvvvv", func(v Visitor, f *fields) error { return v.STRImm(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f[6]) }),
	newARMInstruction("STR (reg)", "cccc011pu0w0nnnnddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.STRReg(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f[6], f.shift(7), f.reg(8)) }),
	newARMInstruction("STRB (imm)", "cccc010pu1w0nnnnddddvvvvvvvvvvvv", func(v Visitor, f *fields) error { return v.STRBImm(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f[6]) }),
	newARMInstruction("STRB (reg)", "cccc011pu1w0nnnnddddvvvvvrr0mmmm", func(v Visitor, f *fields) error { return v.STRBReg(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f[6], f.shift(7), f.reg(8)) }),
	newARMInstruction("STRBT (A1)", "cccc0100-110--------------------", func(v Visitor, f *fields) error { return v.STRBT(f.cond(0)) }),
	newARMInstruction("STRBT (A2)", "cccc0110-110---------------0----", func(v Visitor, f *fields) error { return v.STRBT(f.cond(0)) }),
	newARMInstruction("STRD (imm)", "cccc000pu1w0nnnnddddvvvv1111vvvv", func(v Visitor, f *fields) error { return v.STRDImm(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f[6]) }),
	newARMInstruction("STRD (reg)", "cccc000pu0w0nnnndddd00001111mmmm", func(v Visitor, f *fields) error { return v.STRDReg(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f.reg(6)) }),
	newARMInstruction("STRH (imm)", "cccc000pu1w0nnnnddddvvvv1011vvvv", func(v Visitor, f *fields) error { return v.STRHImm(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f[6]) }),
	newARMInstruction("STRH (reg)", "cccc000pu0w0nnnndddd00001011mmmm", func(v Visitor, f *fields) error { return v.STRHReg(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.reg(5), f.reg(6)) }),
	newARMInstruction("STRHT (A1)", "cccc0000-110------------1011----", func(v Visitor, f *fields) error { return v.STRHT(f.cond(0)) }),
	newARMInstruction("STRHT (A2)", "cccc0000-010--------00001011----", func(v Visitor, f *fields) error { return v.STRHT(f.cond(0)) }),
	newARMInstruction("STRT (A1)", "cccc0100-010--------------------", func(v Visitor, f *fields) error { return v.STRT(f.cond(0)) }),
	newARMInstruction("STRT (A2)", "cccc0110-010---------------0----", func(v Visitor, f *fields) error { return v.STRT(f.cond(0)) }),

	// Load/store multiple instructions
	newARMInstruction("LDM", "cccc100pu0w1nnnnxxxxxxxxxxxxxxxx", func(v Visitor, f *fields) error { return v.LDM(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.list(5)) }),
	newARMInstruction("LDM (usr reg)", "cccc100--101--------------------", func(v Visitor, f *fields) error { return v.LDMUsr(f.cond(0)) }),
	newARMInstruction("LDM (exce ret)", "cccc100--1-1----1---------------", func(v Visitor, f *fields) error { return v.LDMEret(f.cond(0)) }),
	newARMInstruction("STM", "cccc100pu0w0nnnnxxxxxxxxxxxxxxxx", func(v Visitor, f *fields) error { return v.STM(f.cond(0), f.bit(1), f.bit(2), f.bit(3), f.reg(4), f.list(5)) }),
	newARMInstruction("STM (usr reg)", "cccc100--100--------------------", func(v Visitor, f *fields) error { return v.STMUsr(f.cond(0)) }),

	// Miscellaneous instructions
	newARMInstruction("CLZ", "cccc000101101111dddd11110001mmmm", func(v Visitor, f *fields) error { return v.CLZ(f.cond(0), f.reg(1), f.reg(2)) }),
	newARMInstruction("NOP", "cccc001100100000111100000000----", func(v Visitor, f *fields) error { return v.NOP(f.cond(0)) }),
	newARMInstruction("SEL", "cccc01101000nnnndddd11111011mmmm", func(v Visitor, f *fields) error { return v.SEL(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),

	// Unsigned sum of absolute differences instructions
	newARMInstruction("USAD8", "cccc01111000dddd1111mmmm0001nnnn", func(v Visitor, f *fields) error { return v.USAD8(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("USADA8", "cccc01111000ddddaaaammmm0001nnnn", func(v Visitor, f *fields) error { return v.USADA8(f.cond(0), f.reg(1), f.reg(2), f.reg(3), f.reg(4)) }),

	// Packing instructions
	newARMInstruction("PKHBT", "cccc01101000nnnnddddvvvvv001mmmm", func(v Visitor, f *fields) error { return v.PKHBT(f.cond(0), f.reg(1), f.reg(2), f[3], f.reg(4)) }),
	newARMInstruction("PKHTB", "cccc01101000nnnnddddvvvvv101mmmm", func(v Visitor, f *fields) error { return v.PKHTB(f.cond(0), f.reg(1), f.reg(2), f[3], f.reg(4)) }),

	// Reversal instructions
	newARMInstruction("REV", "cccc011010111111dddd11110011mmmm", func(v Visitor, f *fields) error { return v.REV(f.cond(0), f.reg(1), f.reg(2)) }),
	newARMInstruction("REV16", "cccc011010111111dddd11111011mmmm", func(v Visitor, f *fields) error { return v.REV16(f.cond(0), f.reg(1), f.reg(2)) }),
	newARMInstruction("REVSH", "cccc011011111111dddd11111011mmmm", func(v Visitor, f *fields) error { return v.REVSH(f.cond(0), f.reg(1), f.reg(2)) }),

	// Saturation instructions
	newARMInstruction("SSAT", "cccc0110101sssssddddvvvvvr01nnnn", func(v Visitor, f *fields) error { return v.SSAT(f.cond(0), f[1], f.reg(2), f[3], f.bit(4), f.reg(5)) }),
	newARMInstruction("SSAT16", "cccc01101010vvvvdddd11110011nnnn", func(v Visitor, f *fields) error { return v.SSAT16(f.cond(0), f[1], f.reg(2), f.reg(3)) }),
	newARMInstruction("USAT", "cccc0110111sssssddddvvvvvr01nnnn", func(v Visitor, f *fields) error { return v.USAT(f.cond(0), f[1], f.reg(2), f[3], f.bit(4), f.reg(5)) }),
	newARMInstruction("USAT16", "cccc01101110vvvvdddd11110011nnnn", func(v Visitor, f *fields) error { return v.USAT16(f.cond(0), f[1], f.reg(2), f.reg(3)) }),

	// Multiply instructions
	newARMInstruction("MLA", "cccc0000001Sddddaaaammmm1001nnnn", func(v Visitor, f *fields) error { return v.MLA(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.reg(5)) }),
	newARMInstruction("MUL", "cccc0000000Sdddd0000mmmm1001nnnn", func(v Visitor, f *fields) error { return v.MUL(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4)) }),
	newARMInstruction("SMLAL", "cccc0000111Sddddaaaammmm1001nnnn", func(v Visitor, f *fields) error { return v.SMLAL(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.reg(5)) }),
	newARMInstruction("SMULL", "cccc0000110Sddddaaaammmm1001nnnn", func(v Visitor, f *fields) error { return v.SMULL(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.reg(5)) }),
	newARMInstruction("UMAAL", "cccc00000100ddddaaaammmm1001nnnn", func(v Visitor, f *fields) error { return v.UMAAL(f.cond(0), f.reg(1), f.reg(2), f.reg(3), f.reg(4)) }),
	newARMInstruction("UMLAL", "cccc0000101Sddddaaaammmm1001nnnn", func(v Visitor, f *fields) error { return v.UMLAL(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.reg(5)) }),
	newARMInstruction("UMULL", "cccc0000100Sddddaaaammmm1001nnnn", func(v Visitor, f *fields) error { return v.UMULL(f.cond(0), f.bit(1), f.reg(2), f.reg(3), f.reg(4), f.reg(5)) }),
	newARMInstruction("SMLALXY", "cccc00010100ddddaaaammmm1xy0nnnn", func(v Visitor, f *fields) error { return v.SMLALxy(f.cond(0), f.reg(1), f.reg(2), f.reg(3), f.bit(4), f.bit(5), f.reg(6)) }),
	newARMInstruction("SMLAXY", "cccc00010000ddddaaaammmm1xy0nnnn", func(v Visitor, f *fields) error { return v.SMLAxy(f.cond(0), f.reg(1), f.reg(2), f.reg(3), f.bit(4), f.bit(5), f.reg(6)) }),
	newARMInstruction("SMULXY", "cccc00010110dddd0000mmmm1xy0nnnn", func(v Visitor, f *fields) error { return v.SMULxy(f.cond(0), f.reg(1), f.reg(2), f.bit(3), f.bit(4), f.reg(5)) }),
	newARMInstruction("SMLAWY", "cccc00010010ddddaaaammmm1y00nnnn", func(v Visitor, f *fields) error { return v.SMLAWy(f.cond(0), f.reg(1), f.reg(2), f.reg(3), f.bit(4), f.reg(5)) }),
	newARMInstruction("SMULWY", "cccc00010010dddd0000mmmm1y10nnnn", func(v Visitor, f *fields) error { return v.SMULWy(f.cond(0), f.reg(1), f.reg(2), f.bit(3), f.reg(4)) }),
	newARMInstruction("SMMUL", "cccc01110101dddd1111mmmm00R1nnnn", func(v Visitor, f *fields) error { return v.SMMUL(f.cond(0), f.reg(1), f.reg(2), f.bit(3), f.reg(4)) }),
	newARMInstruction("SMMLA", "cccc01110101ddddaaaammmm00R1nnnn", func(v Visitor, f *fields) error { return v.SMMLA(f.cond(0), f.reg(1), f.reg(2), f.reg(3), f.bit(4), f.reg(5)) }),
	newARMInstruction("SMMLS", "cccc01110101ddddaaaammmm11R1nnnn", func(v Visitor, f *fields) error { return v.SMMLS(f.cond(0), f.reg(1), f.reg(2), f.reg(3), f.bit(4), f.reg(5)) }),
	newARMInstruction("SMLAD", "cccc01110000ddddaaaammmm00M1nnnn", func(v Visitor, f *fields) error { return v.SMLAD(f.cond(0), f.reg(1), f.reg(2), f.reg(3), f.bit(4), f.reg(5)) }),
	newARMInstruction("SMLALD", "cccc01110100ddddaaaammmm00M1nnnn", func(v Visitor, f *fields) error { return v.SMLALD(f.cond(0), f.reg(1), f.reg(2), f.reg(3), f.bit(4), f.reg(5)) }),
	newARMInstruction("SMLSD", "cccc01110000ddddaaaammmm01M1nnnn", func(v Visitor, f *fields) error { return v.SMLSD(f.cond(0), f.reg(1), f.reg(2), f.reg(3), f.bit(4), f.reg(5)) }),
	newARMInstruction("SMLSLD", "cccc01110100ddddaaaammmm01M1nnnn", func(v Visitor, f *fields) error { return v.SMLSLD(f.cond(0), f.reg(1), f.reg(2), f.reg(3), f.bit(4), f.reg(5)) }),
	newARMInstruction("SMUAD", "cccc01110000dddd1111mmmm00M1nnnn", func(v Visitor, f *fields) error { return v.SMUAD(f.cond(0), f.reg(1), f.reg(2), f.bit(3), f.reg(4)) }),
	newARMInstruction("SMUSD", "cccc01110000dddd1111mmmm01M1nnnn", func(v Visitor, f *fields) error { return v.SMUSD(f.cond(0), f.reg(1), f.reg(2), f.bit(3), f.reg(4)) }),

	// Parallel add/subtract instructions
	newARMInstruction("SADD8", "cccc01100001nnnndddd11111001mmmm", func(v Visitor, f *fields) error { return v.SADD8(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("SADD16", "cccc01100001nnnndddd11110001mmmm", func(v Visitor, f *fields) error { return v.SADD16(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("SASX", "cccc01100001nnnndddd11110011mmmm", func(v Visitor, f *fields) error { return v.SASX(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("SSAX", "cccc01100001nnnndddd11110101mmmm", func(v Visitor, f *fields) error { return v.SSAX(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("SSUB8", "cccc01100001nnnndddd11111111mmmm", func(v Visitor, f *fields) error { return v.SSUB8(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("SSUB16", "cccc01100001nnnndddd11110111mmmm", func(v Visitor, f *fields) error { return v.SSUB16(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UADD8", "cccc01100101nnnndddd11111001mmmm", func(v Visitor, f *fields) error { return v.UADD8(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UADD16", "cccc01100101nnnndddd11110001mmmm", func(v Visitor, f *fields) error { return v.UADD16(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UASX", "cccc01100101nnnndddd11110011mmmm", func(v Visitor, f *fields) error { return v.UASX(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("USAX", "cccc01100101nnnndddd11110101mmmm", func(v Visitor, f *fields) error { return v.USAX(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("USUB8", "cccc01100101nnnndddd11111111mmmm", func(v Visitor, f *fields) error { return v.USUB8(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("USUB16", "cccc01100101nnnndddd11110111mmmm", func(v Visitor, f *fields) error { return v.USUB16(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("QADD8", "cccc01100010nnnndddd11111001mmmm", func(v Visitor, f *fields) error { return v.QADD8(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("QADD16", "cccc01100010nnnndddd11110001mmmm", func(v Visitor, f *fields) error { return v.QADD16(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("QASX", "cccc01100010nnnndddd11110011mmmm", func(v Visitor, f *fields) error { return v.QASX(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("QSAX", "cccc01100010nnnndddd11110101mmmm", func(v Visitor, f *fields) error { return v.QSAX(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("QSUB8", "cccc01100010nnnndddd11111111mmmm", func(v Visitor, f *fields) error { return v.QSUB8(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("QSUB16", "cccc01100010nnnndddd11110111mmmm", func(v Visitor, f *fields) error { return v.QSUB16(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UQADD8", "cccc01100110nnnndddd11111001mmmm", func(v Visitor, f *fields) error { return v.UQADD8(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UQADD16", "cccc01100110nnnndddd11110001mmmm", func(v Visitor, f *fields) error { return v.UQADD16(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UQASX", "cccc01100110nnnndddd11110011mmmm", func(v Visitor, f *fields) error { return v.UQASX(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UQSAX", "cccc01100110nnnndddd11110101mmmm", func(v Visitor, f *fields) error { return v.UQSAX(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UQSUB8", "cccc01100110nnnndddd11111111mmmm", func(v Visitor, f *fields) error { return v.UQSUB8(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UQSUB16", "cccc01100110nnnndddd11110111mmmm", func(v Visitor, f *fields) error { return v.UQSUB16(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("SHADD8", "cccc01100011nnnndddd11111001mmmm", func(v Visitor, f *fields) error { return v.SHADD8(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("SHADD16", "cccc01100011nnnndddd11110001mmmm", func(v Visitor, f *fields) error { return v.SHADD16(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("SHASX", "cccc01100011nnnndddd11110011mmmm", func(v Visitor, f *fields) error { return v.SHASX(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("SHSAX", "cccc01100011nnnndddd11110101mmmm", func(v Visitor, f *fields) error { return v.SHSAX(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("SHSUB8", "cccc01100011nnnndddd11111111mmmm", func(v Visitor, f *fields) error { return v.SHSUB8(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("SHSUB16", "cccc01100011nnnndddd11110111mmmm", func(v Visitor, f *fields) error { return v.SHSUB16(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UHADD8", "cccc01100111nnnndddd11111001mmmm", func(v Visitor, f *fields) error { return v.UHADD8(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UHADD16", "cccc01100111nnnndddd11110001mmmm", func(v Visitor, f *fields) error { return v.UHADD16(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UHASX", "cccc01100111nnnndddd11110011mmmm", func(v Visitor, f *fields) error { return v.UHASX(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UHSAX", "cccc01100111nnnndddd11110101mmmm", func(v Visitor, f *fields) error { return v.UHSAX(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UHSUB8", "cccc01100111nnnndddd11111111mmmm", func(v Visitor, f *fields) error { return v.UHSUB8(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("UHSUB16", "cccc01100111nnnndddd11110111mmmm", func(v Visitor, f *fields) error { return v.UHSUB16(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),

	// Saturated add/subtract instructions
	newARMInstruction("QADD", "cccc00010000nnnndddd00000101mmmm", func(v Visitor, f *fields) error { return v.QADD(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("QSUB", "cccc00010010nnnndddd00000101mmmm", func(v Visitor, f *fields) error { return v.QSUB(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("QDADD", "cccc00010100nnnndddd00000101mmmm", func(v Visitor, f *fields) error { return v.QDADD(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),
	newARMInstruction("QDSUB", "cccc00010110nnnndddd00000101mmmm", func(v Visitor, f *fields) error { return v.QDSUB(f.cond(0), f.reg(1), f.reg(2), f.reg(3)) }),

	// Status register access instructions
	newARMInstruction("CPS", "111100010000---00000000---0-----", func(v Visitor, _ *fields) error { return v.CPS() }),
	newARMInstruction("SETEND", "1111000100000001000000e000000000", func(v Visitor, f *fields) error { return v.SETEND(f.bit(0)) }),
	newARMInstruction("MRS", "cccc00010r00----dddd00--00000000", func(v Visitor, f *fields) error { return v.MRS(f.cond(0), f.bit(1), f.reg(2)) }),
	newARMInstruction("MSR (imm)", "cccc00110R10mmmm1111rrrrvvvvvvvv", func(v Visitor, f *fields) error { return v.MSRImm(f.cond(0), f.bit(1), f[2], f[3], f[4]) }),
	newARMInstruction("MSR (reg)", "cccc00010R10mmmm1111--------nnnn", func(v Visitor, f *fields) error { return v.MSRReg(f.cond(0), f.bit(1), f[2], f.reg(3)) }),
	newARMInstruction("RFE", "----0001101-0000---------110----", func(v Visitor, _ *fields) error { return v.RFE() }),
	newARMInstruction("SRS", "0000011--0-00000000000000001----", func(v Visitor, _ *fields) error { return v.SRS() }),
}
