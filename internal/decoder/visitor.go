package decoder

import "github.com/armjit/armjit/internal/arm"

// Visitor receives exactly one method call per decoded instruction. Methods are named after
// the instruction mnemonic, with Imm, Reg and Rsr distinguishing the immediate, register and
// register-shifted-register forms. Operands are passed in the order their fields appear in
// the encoding.
//
// Thumb instructions are translated into the equivalent ARM method where one exists, so a
// Visitor only needs the Thumb* methods for the branches that have no ARM counterpart.
type Visitor interface {
	// Branch instructions
	BLXImm(h bool, imm24 uint32) error
	BLXReg(cond arm.Cond, m arm.Reg) error
	B(cond arm.Cond, imm24 uint32) error
	BL(cond arm.Cond, imm24 uint32) error
	BX(cond arm.Cond, m arm.Reg) error
	BXJ(cond arm.Cond, m arm.Reg) error

	// Coprocessor instructions
	CDP(cond arm.Cond) error
	LDC(cond arm.Cond) error
	MCR(cond arm.Cond, opc1, crn uint32, t arm.Reg, coproc, opc2, crm uint32) error
	MCRR(cond arm.Cond) error
	MRC(cond arm.Cond, opc1, crn uint32, t arm.Reg, coproc, opc2, crm uint32) error
	MRRC(cond arm.Cond) error
	STC(cond arm.Cond) error

	// Data processing instructions
	ADCImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error
	ADCReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	ADCRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	ADDImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error
	ADDReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	ADDRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	ANDImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error
	ANDReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	ANDRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	BICImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error
	BICReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	BICRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	CMNImm(cond arm.Cond, n arm.Reg, rotate, imm8 uint32) error
	CMNReg(cond arm.Cond, n arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	CMNRsr(cond arm.Cond, n, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	CMPImm(cond arm.Cond, n arm.Reg, rotate, imm8 uint32) error
	CMPReg(cond arm.Cond, n arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	CMPRsr(cond arm.Cond, n, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	EORImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error
	EORReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	EORRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	MOVImm(cond arm.Cond, s bool, d arm.Reg, rotate, imm8 uint32) error
	MOVReg(cond arm.Cond, s bool, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	MOVRsr(cond arm.Cond, s bool, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	MVNImm(cond arm.Cond, s bool, d arm.Reg, rotate, imm8 uint32) error
	MVNReg(cond arm.Cond, s bool, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	MVNRsr(cond arm.Cond, s bool, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	ORRImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error
	ORRReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	ORRRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	RSBImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error
	RSBReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	RSBRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	RSCImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error
	RSCReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	RSCRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	SBCImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error
	SBCReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	SBCRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	SUBImm(cond arm.Cond, s bool, n, d arm.Reg, rotate, imm8 uint32) error
	SUBReg(cond arm.Cond, s bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	SUBRsr(cond arm.Cond, s bool, n, d, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	TEQImm(cond arm.Cond, n arm.Reg, rotate, imm8 uint32) error
	TEQReg(cond arm.Cond, n arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	TEQRsr(cond arm.Cond, n, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error
	TSTImm(cond arm.Cond, n arm.Reg, rotate, imm8 uint32) error
	TSTReg(cond arm.Cond, n arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	TSTRsr(cond arm.Cond, n, sReg arm.Reg, shift arm.ShiftType, m arm.Reg) error

	// Exception generating instructions
	BKPT(cond arm.Cond, imm16 uint32) error
	SVC(cond arm.Cond, imm24 uint32) error
	UDF() error

	// Extension instructions
	SXTB(cond arm.Cond, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error
	SXTB16(cond arm.Cond, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error
	SXTH(cond arm.Cond, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error
	SXTAB(cond arm.Cond, n, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error
	SXTAB16(cond arm.Cond, n, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error
	SXTAH(cond arm.Cond, n, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error
	UXTB(cond arm.Cond, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error
	UXTB16(cond arm.Cond, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error
	UXTH(cond arm.Cond, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error
	UXTAB(cond arm.Cond, n, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error
	UXTAB16(cond arm.Cond, n, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error
	UXTAH(cond arm.Cond, n, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error

	// Hint instructions
	PLD() error
	SEV(cond arm.Cond) error
	WFE(cond arm.Cond) error
	WFI(cond arm.Cond) error
	YIELD(cond arm.Cond) error

	// Synchronization primitive instructions
	CLREX() error
	LDREX(cond arm.Cond, n, d arm.Reg) error
	LDREXB(cond arm.Cond, n, d arm.Reg) error
	LDREXD(cond arm.Cond, n, d arm.Reg) error
	LDREXH(cond arm.Cond, n, d arm.Reg) error
	STREX(cond arm.Cond, n, d, m arm.Reg) error
	STREXB(cond arm.Cond, n, d, m arm.Reg) error
	STREXD(cond arm.Cond, n, d, m arm.Reg) error
	STREXH(cond arm.Cond, n, d, m arm.Reg) error
	SWP(cond arm.Cond, n, d, m arm.Reg) error
	SWPB(cond arm.Cond, n, d, m arm.Reg) error

	// Load/store instructions
	LDRImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm12 uint32) error
	LDRReg(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	LDRBImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm12 uint32) error
	LDRBReg(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	LDRBT(cond arm.Cond) error
	LDRDImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm8 uint32) error
	LDRDReg(cond arm.Cond, p, u, w bool, n, d, m arm.Reg) error
	LDRHImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm8 uint32) error
	LDRHReg(cond arm.Cond, p, u, w bool, n, d, m arm.Reg) error
	LDRHT(cond arm.Cond) error
	LDRSBImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm8 uint32) error
	LDRSBReg(cond arm.Cond, p, u, w bool, n, d, m arm.Reg) error
	LDRSBT(cond arm.Cond) error
	LDRSHImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm8 uint32) error
	LDRSHReg(cond arm.Cond, p, u, w bool, n, d, m arm.Reg) error
	LDRSHT(cond arm.Cond) error
	LDRT(cond arm.Cond) error
	STRImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm12 uint32) error
	STRReg(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	STRBImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm12 uint32) error
	STRBReg(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error
	STRBT(cond arm.Cond) error
	STRDImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm8 uint32) error
	STRDReg(cond arm.Cond, p, u, w bool, n, d, m arm.Reg) error
	STRHImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm8 uint32) error
	STRHReg(cond arm.Cond, p, u, w bool, n, d, m arm.Reg) error
	STRHT(cond arm.Cond) error
	STRT(cond arm.Cond) error

	// Load/store multiple instructions
	LDM(cond arm.Cond, p, u, w bool, n arm.Reg, list arm.RegList) error
	LDMUsr(cond arm.Cond) error
	LDMEret(cond arm.Cond) error
	STM(cond arm.Cond, p, u, w bool, n arm.Reg, list arm.RegList) error
	STMUsr(cond arm.Cond) error

	// Miscellaneous instructions
	CLZ(cond arm.Cond, d, m arm.Reg) error
	NOP(cond arm.Cond) error
	SEL(cond arm.Cond, n, d, m arm.Reg) error

	// Unsigned sum of absolute differences instructions
	USAD8(cond arm.Cond, d, m, n arm.Reg) error
	USADA8(cond arm.Cond, d, a, m, n arm.Reg) error

	// Packing instructions
	PKHBT(cond arm.Cond, n, d arm.Reg, imm5 uint32, m arm.Reg) error
	PKHTB(cond arm.Cond, n, d arm.Reg, imm5 uint32, m arm.Reg) error

	// Reversal instructions
	REV(cond arm.Cond, d, m arm.Reg) error
	REV16(cond arm.Cond, d, m arm.Reg) error
	REVSH(cond arm.Cond, d, m arm.Reg) error

	// Saturation instructions
	SSAT(cond arm.Cond, satImm uint32, d arm.Reg, imm5 uint32, sh bool, n arm.Reg) error
	SSAT16(cond arm.Cond, satImm uint32, d, n arm.Reg) error
	USAT(cond arm.Cond, satImm uint32, d arm.Reg, imm5 uint32, sh bool, n arm.Reg) error
	USAT16(cond arm.Cond, satImm uint32, d, n arm.Reg) error

	// Multiply instructions
	MLA(cond arm.Cond, s bool, d, a, m, n arm.Reg) error
	MUL(cond arm.Cond, s bool, d, m, n arm.Reg) error
	SMLAL(cond arm.Cond, s bool, dHi, dLo, m, n arm.Reg) error
	SMULL(cond arm.Cond, s bool, dHi, dLo, m, n arm.Reg) error
	UMAAL(cond arm.Cond, dHi, dLo, m, n arm.Reg) error
	UMLAL(cond arm.Cond, s bool, dHi, dLo, m, n arm.Reg) error
	UMULL(cond arm.Cond, s bool, dHi, dLo, m, n arm.Reg) error
	SMLALxy(cond arm.Cond, dHi, dLo, m arm.Reg, mTop, nTop bool, n arm.Reg) error
	SMLAxy(cond arm.Cond, d, a, m arm.Reg, mTop, nTop bool, n arm.Reg) error
	SMULxy(cond arm.Cond, d, m arm.Reg, mTop, nTop bool, n arm.Reg) error
	SMLAWy(cond arm.Cond, d, a, m arm.Reg, mTop bool, n arm.Reg) error
	SMULWy(cond arm.Cond, d, m arm.Reg, mTop bool, n arm.Reg) error
	SMMUL(cond arm.Cond, d, m arm.Reg, round bool, n arm.Reg) error
	SMMLA(cond arm.Cond, d, a, m arm.Reg, round bool, n arm.Reg) error
	SMMLS(cond arm.Cond, d, a, m arm.Reg, round bool, n arm.Reg) error
	SMLAD(cond arm.Cond, d, a, m arm.Reg, swap bool, n arm.Reg) error
	SMLALD(cond arm.Cond, dHi, dLo, m arm.Reg, swap bool, n arm.Reg) error
	SMLSD(cond arm.Cond, d, a, m arm.Reg, swap bool, n arm.Reg) error
	SMLSLD(cond arm.Cond, dHi, dLo, m arm.Reg, swap bool, n arm.Reg) error
	SMUAD(cond arm.Cond, d, m arm.Reg, swap bool, n arm.Reg) error
	SMUSD(cond arm.Cond, d, m arm.Reg, swap bool, n arm.Reg) error

	// Parallel add/subtract instructions
	SADD8(cond arm.Cond, n, d, m arm.Reg) error
	SADD16(cond arm.Cond, n, d, m arm.Reg) error
	SASX(cond arm.Cond, n, d, m arm.Reg) error
	SSAX(cond arm.Cond, n, d, m arm.Reg) error
	SSUB8(cond arm.Cond, n, d, m arm.Reg) error
	SSUB16(cond arm.Cond, n, d, m arm.Reg) error
	UADD8(cond arm.Cond, n, d, m arm.Reg) error
	UADD16(cond arm.Cond, n, d, m arm.Reg) error
	UASX(cond arm.Cond, n, d, m arm.Reg) error
	USAX(cond arm.Cond, n, d, m arm.Reg) error
	USUB8(cond arm.Cond, n, d, m arm.Reg) error
	USUB16(cond arm.Cond, n, d, m arm.Reg) error
	QADD8(cond arm.Cond, n, d, m arm.Reg) error
	QADD16(cond arm.Cond, n, d, m arm.Reg) error
	QASX(cond arm.Cond, n, d, m arm.Reg) error
	QSAX(cond arm.Cond, n, d, m arm.Reg) error
	QSUB8(cond arm.Cond, n, d, m arm.Reg) error
	QSUB16(cond arm.Cond, n, d, m arm.Reg) error
	UQADD8(cond arm.Cond, n, d, m arm.Reg) error
	UQADD16(cond arm.Cond, n, d, m arm.Reg) error
	UQASX(cond arm.Cond, n, d, m arm.Reg) error
	UQSAX(cond arm.Cond, n, d, m arm.Reg) error
	UQSUB8(cond arm.Cond, n, d, m arm.Reg) error
	UQSUB16(cond arm.Cond, n, d, m arm.Reg) error
	SHADD8(cond arm.Cond, n, d, m arm.Reg) error
	SHADD16(cond arm.Cond, n, d, m arm.Reg) error
	SHASX(cond arm.Cond, n, d, m arm.Reg) error
	SHSAX(cond arm.Cond, n, d, m arm.Reg) error
	SHSUB8(cond arm.Cond, n, d, m arm.Reg) error
	SHSUB16(cond arm.Cond, n, d, m arm.Reg) error
	UHADD8(cond arm.Cond, n, d, m arm.Reg) error
	UHADD16(cond arm.Cond, n, d, m arm.Reg) error
	UHASX(cond arm.Cond, n, d, m arm.Reg) error
	UHSAX(cond arm.Cond, n, d, m arm.Reg) error
	UHSUB8(cond arm.Cond, n, d, m arm.Reg) error
	UHSUB16(cond arm.Cond, n, d, m arm.Reg) error

	// Saturated add/subtract instructions
	QADD(cond arm.Cond, n, d, m arm.Reg) error
	QSUB(cond arm.Cond, n, d, m arm.Reg) error
	QDADD(cond arm.Cond, n, d, m arm.Reg) error
	QDSUB(cond arm.Cond, n, d, m arm.Reg) error

	// Status register access instructions
	CPS() error
	SETEND(e bool) error
	MRS(cond arm.Cond, spsr bool, d arm.Reg) error
	MSRImm(cond arm.Cond, spsr bool, mask, rotate, imm8 uint32) error
	MSRReg(cond arm.Cond, spsr bool, mask uint32, n arm.Reg) error
	RFE() error
	SRS() error

	// Thumb specific instructions
	ThumbBCond(cond arm.Cond, imm8 uint32) error
	ThumbB(imm11 uint32) error
	ThumbBLXPrefix(imm11 uint32) error
	ThumbBLXSuffix(x bool, imm11 uint32) error
}
