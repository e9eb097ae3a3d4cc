package decoder

import "github.com/armjit/armjit/internal/arm"

// Fallback implements Visitor by passing the method name of every instruction to Default.
// Embed it to handle only a subset of instructions.
type Fallback struct {
	Default func(name string) error
}

// BLXImm implements Visitor.BLXImm
func (f Fallback) BLXImm(bool, uint32) error { return f.Default("BLXImm") }

// BLXReg implements Visitor.BLXReg
func (f Fallback) BLXReg(arm.Cond, arm.Reg) error { return f.Default("BLXReg") }

// B implements Visitor.B
func (f Fallback) B(arm.Cond, uint32) error { return f.Default("B") }

// BL implements Visitor.BL
func (f Fallback) BL(arm.Cond, uint32) error { return f.Default("BL") }

// BX implements Visitor.BX
func (f Fallback) BX(arm.Cond, arm.Reg) error { return f.Default("BX") }

// BXJ implements Visitor.BXJ
func (f Fallback) BXJ(arm.Cond, arm.Reg) error { return f.Default("BXJ") }

// CDP implements Visitor.CDP
func (f Fallback) CDP(arm.Cond) error { return f.Default("CDP") }

// LDC implements Visitor.LDC
func (f Fallback) LDC(arm.Cond) error { return f.Default("LDC") }

// MCR implements Visitor.MCR
func (f Fallback) MCR(arm.Cond, uint32, uint32, arm.Reg, uint32, uint32, uint32) error { return f.Default("MCR") }

// MCRR implements Visitor.MCRR
func (f Fallback) MCRR(arm.Cond) error { return f.Default("MCRR") }

// MRC implements Visitor.MRC
func (f Fallback) MRC(arm.Cond, uint32, uint32, arm.Reg, uint32, uint32, uint32) error { return f.Default("MRC") }

// MRRC implements Visitor.MRRC
func (f Fallback) MRRC(arm.Cond) error { return f.Default("MRRC") }

// STC implements Visitor.STC
func (f Fallback) STC(arm.Cond) error { return f.Default("STC") }

// ADCImm implements Visitor.ADCImm
func (f Fallback) ADCImm(arm.Cond, bool, arm.Reg, arm.Reg, uint32, uint32) error { return f.Default("ADCImm") }

// ADCReg implements Visitor.ADCReg
func (f Fallback) ADCReg(arm.Cond, bool, arm.Reg, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("ADCReg") }

// ADCRsr implements Visitor.ADCRsr
func (f Fallback) ADCRsr(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("ADCRsr") }

// ADDImm implements Visitor.ADDImm
func (f Fallback) ADDImm(arm.Cond, bool, arm.Reg, arm.Reg, uint32, uint32) error { return f.Default("ADDImm") }

// ADDReg implements Visitor.ADDReg
func (f Fallback) ADDReg(arm.Cond, bool, arm.Reg, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("ADDReg") }

// ADDRsr implements Visitor.ADDRsr
func (f Fallback) ADDRsr(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("ADDRsr") }

// ANDImm implements Visitor.ANDImm
func (f Fallback) ANDImm(arm.Cond, bool, arm.Reg, arm.Reg, uint32, uint32) error { return f.Default("ANDImm") }

// ANDReg implements Visitor.ANDReg
func (f Fallback) ANDReg(arm.Cond, bool, arm.Reg, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("ANDReg") }

// ANDRsr implements Visitor.ANDRsr
func (f Fallback) ANDRsr(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("ANDRsr") }

// BICImm implements Visitor.BICImm
func (f Fallback) BICImm(arm.Cond, bool, arm.Reg, arm.Reg, uint32, uint32) error { return f.Default("BICImm") }

// BICReg implements Visitor.BICReg
func (f Fallback) BICReg(arm.Cond, bool, arm.Reg, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("BICReg") }

// BICRsr implements Visitor.BICRsr
func (f Fallback) BICRsr(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("BICRsr") }

// CMNImm implements Visitor.CMNImm
func (f Fallback) CMNImm(arm.Cond, arm.Reg, uint32, uint32) error { return f.Default("CMNImm") }

// CMNReg implements Visitor.CMNReg
func (f Fallback) CMNReg(arm.Cond, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("CMNReg") }

// CMNRsr implements Visitor.CMNRsr
func (f Fallback) CMNRsr(arm.Cond, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("CMNRsr") }

// CMPImm implements Visitor.CMPImm
func (f Fallback) CMPImm(arm.Cond, arm.Reg, uint32, uint32) error { return f.Default("CMPImm") }

// CMPReg implements Visitor.CMPReg
func (f Fallback) CMPReg(arm.Cond, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("CMPReg") }

// CMPRsr implements Visitor.CMPRsr
func (f Fallback) CMPRsr(arm.Cond, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("CMPRsr") }

// EORImm implements Visitor.EORImm
func (f Fallback) EORImm(arm.Cond, bool, arm.Reg, arm.Reg, uint32, uint32) error { return f.Default("EORImm") }

// EORReg implements Visitor.EORReg
func (f Fallback) EORReg(arm.Cond, bool, arm.Reg, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("EORReg") }

// EORRsr implements Visitor.EORRsr
func (f Fallback) EORRsr(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("EORRsr") }

// MOVImm implements Visitor.MOVImm
func (f Fallback) MOVImm(arm.Cond, bool, arm.Reg, uint32, uint32) error { return f.Default("MOVImm") }

// MOVReg implements Visitor.MOVReg
func (f Fallback) MOVReg(arm.Cond, bool, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("MOVReg") }

// MOVRsr implements Visitor.MOVRsr
func (f Fallback) MOVRsr(arm.Cond, bool, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("MOVRsr") }

// MVNImm implements Visitor.MVNImm
func (f Fallback) MVNImm(arm.Cond, bool, arm.Reg, uint32, uint32) error { return f.Default("MVNImm") }

// MVNReg implements Visitor.MVNReg
func (f Fallback) MVNReg(arm.Cond, bool, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("MVNReg") }

// MVNRsr implements Visitor.MVNRsr
func (f Fallback) MVNRsr(arm.Cond, bool, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("MVNRsr") }

// ORRImm implements Visitor.ORRImm
func (f Fallback) ORRImm(arm.Cond, bool, arm.Reg, arm.Reg, uint32, uint32) error { return f.Default("ORRImm") }

// ORRReg implements Visitor.ORRReg
func (f Fallback) ORRReg(arm.Cond, bool, arm.Reg, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("ORRReg") }

// ORRRsr implements Visitor.ORRRsr
func (f Fallback) ORRRsr(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("ORRRsr") }

// RSBImm implements Visitor.RSBImm
func (f Fallback) RSBImm(arm.Cond, bool, arm.Reg, arm.Reg, uint32, uint32) error { return f.Default("RSBImm") }

// RSBReg implements Visitor.RSBReg
func (f Fallback) RSBReg(arm.Cond, bool, arm.Reg, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("RSBReg") }

// RSBRsr implements Visitor.RSBRsr
func (f Fallback) RSBRsr(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("RSBRsr") }

// RSCImm implements Visitor.RSCImm
func (f Fallback) RSCImm(arm.Cond, bool, arm.Reg, arm.Reg, uint32, uint32) error { return f.Default("RSCImm") }

// RSCReg implements Visitor.RSCReg
func (f Fallback) RSCReg(arm.Cond, bool, arm.Reg, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("RSCReg") }

// RSCRsr implements Visitor.RSCRsr
func (f Fallback) RSCRsr(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("RSCRsr") }

// SBCImm implements Visitor.SBCImm
func (f Fallback) SBCImm(arm.Cond, bool, arm.Reg, arm.Reg, uint32, uint32) error { return f.Default("SBCImm") }

// SBCReg implements Visitor.SBCReg
func (f Fallback) SBCReg(arm.Cond, bool, arm.Reg, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("SBCReg") }

// SBCRsr implements Visitor.SBCRsr
func (f Fallback) SBCRsr(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("SBCRsr") }

// SUBImm implements Visitor.SUBImm
func (f Fallback) SUBImm(arm.Cond, bool, arm.Reg, arm.Reg, uint32, uint32) error { return f.Default("SUBImm") }

// SUBReg implements Visitor.SUBReg
func (f Fallback) SUBReg(arm.Cond, bool, arm.Reg, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("SUBReg") }

// SUBRsr implements Visitor.SUBRsr
func (f Fallback) SUBRsr(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("SUBRsr") }

// TEQImm implements Visitor.TEQImm
func (f Fallback) TEQImm(arm.Cond, arm.Reg, uint32, uint32) error { return f.Default("TEQImm") }

// TEQReg implements Visitor.TEQReg
func (f Fallback) TEQReg(arm.Cond, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("TEQReg") }

// TEQRsr implements Visitor.TEQRsr
func (f Fallback) TEQRsr(arm.Cond, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("TEQRsr") }

// TSTImm implements Visitor.TSTImm
func (f Fallback) TSTImm(arm.Cond, arm.Reg, uint32, uint32) error { return f.Default("TSTImm") }

// TSTReg implements Visitor.TSTReg
func (f Fallback) TSTReg(arm.Cond, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("TSTReg") }

// TSTRsr implements Visitor.TSTRsr
func (f Fallback) TSTRsr(arm.Cond, arm.Reg, arm.Reg, arm.ShiftType, arm.Reg) error { return f.Default("TSTRsr") }

// BKPT implements Visitor.BKPT
func (f Fallback) BKPT(arm.Cond, uint32) error { return f.Default("BKPT") }

// SVC implements Visitor.SVC
func (f Fallback) SVC(arm.Cond, uint32) error { return f.Default("SVC") }

// UDF implements Visitor.UDF
func (f Fallback) UDF() error { return f.Default("UDF") }

// SXTB implements Visitor.SXTB
func (f Fallback) SXTB(arm.Cond, arm.Reg, arm.SignExtendRotation, arm.Reg) error { return f.Default("SXTB") }

// SXTB16 implements Visitor.SXTB16
func (f Fallback) SXTB16(arm.Cond, arm.Reg, arm.SignExtendRotation, arm.Reg) error { return f.Default("SXTB16") }

// SXTH implements Visitor.SXTH
func (f Fallback) SXTH(arm.Cond, arm.Reg, arm.SignExtendRotation, arm.Reg) error { return f.Default("SXTH") }

// SXTAB implements Visitor.SXTAB
func (f Fallback) SXTAB(arm.Cond, arm.Reg, arm.Reg, arm.SignExtendRotation, arm.Reg) error { return f.Default("SXTAB") }

// SXTAB16 implements Visitor.SXTAB16
func (f Fallback) SXTAB16(arm.Cond, arm.Reg, arm.Reg, arm.SignExtendRotation, arm.Reg) error { return f.Default("SXTAB16") }

// SXTAH implements Visitor.SXTAH
func (f Fallback) SXTAH(arm.Cond, arm.Reg, arm.Reg, arm.SignExtendRotation, arm.Reg) error { return f.Default("SXTAH") }

// UXTB implements Visitor.UXTB
func (f Fallback) UXTB(arm.Cond, arm.Reg, arm.SignExtendRotation, arm.Reg) error { return f.Default("UXTB") }

// UXTB16 implements Visitor.UXTB16
func (f Fallback) UXTB16(arm.Cond, arm.Reg, arm.SignExtendRotation, arm.Reg) error { return f.Default("UXTB16") }

// UXTH implements Visitor.UXTH
func (f Fallback) UXTH(arm.Cond, arm.Reg, arm.SignExtendRotation, arm.Reg) error { return f.Default("UXTH") }

// UXTAB implements Visitor.UXTAB
func (f Fallback) UXTAB(arm.Cond, arm.Reg, arm.Reg, arm.SignExtendRotation, arm.Reg) error { return f.Default("UXTAB") }

// UXTAB16 implements Visitor.UXTAB16
func (f Fallback) UXTAB16(arm.Cond, arm.Reg, arm.Reg, arm.SignExtendRotation, arm.Reg) error { return f.Default("UXTAB16") }

// UXTAH implements Visitor.UXTAH
func (f Fallback) UXTAH(arm.Cond, arm.Reg, arm.Reg, arm.SignExtendRotation, arm.Reg) error { return f.Default("UXTAH") }

// PLD implements Visitor.PLD
func (f Fallback) PLD() error { return f.Default("PLD") }

// SEV implements Visitor.SEV
func (f Fallback) SEV(arm.Cond) error { return f.Default("SEV") }

// WFE implements Visitor.WFE
func (f Fallback) WFE(arm.Cond) error { return f.Default("WFE") }

// WFI implements Visitor.WFI
func (f Fallback) WFI(arm.Cond) error { return f.Default("WFI") }

// YIELD implements Visitor.YIELD
func (f Fallback) YIELD(arm.Cond) error { return f.Default("YIELD") }

// CLREX implements Visitor.CLREX
func (f Fallback) CLREX() error { return f.Default("CLREX") }

// LDREX implements Visitor.LDREX
func (f Fallback) LDREX(arm.Cond, arm.Reg, arm.Reg) error { return f.Default("LDREX") }

// LDREXB implements Visitor.LDREXB
func (f Fallback) LDREXB(arm.Cond, arm.Reg, arm.Reg) error { return f.Default("LDREXB") }

// LDREXD implements Visitor.LDREXD
func (f Fallback) LDREXD(arm.Cond, arm.Reg, arm.Reg) error { return f.Default("LDREXD") }

// LDREXH implements Visitor.LDREXH
func (f Fallback) LDREXH(arm.Cond, arm.Reg, arm.Reg) error { return f.Default("LDREXH") }

// STREX implements Visitor.STREX
func (f Fallback) STREX(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("STREX") }

// STREXB implements Visitor.STREXB
func (f Fallback) STREXB(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("STREXB") }

// STREXD implements Visitor.STREXD
func (f Fallback) STREXD(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("STREXD") }

// STREXH implements Visitor.STREXH
func (f Fallback) STREXH(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("STREXH") }

// SWP implements Visitor.SWP
func (f Fallback) SWP(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SWP") }

// SWPB implements Visitor.SWPB
func (f Fallback) SWPB(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SWPB") }

// LDRImm implements Visitor.LDRImm
func (f Fallback) LDRImm(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, uint32) error { return f.Default("LDRImm") }

// LDRReg implements Visitor.LDRReg
func (f Fallback) LDRReg(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("LDRReg") }

// LDRBImm implements Visitor.LDRBImm
func (f Fallback) LDRBImm(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, uint32) error { return f.Default("LDRBImm") }

// LDRBReg implements Visitor.LDRBReg
func (f Fallback) LDRBReg(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("LDRBReg") }

// LDRBT implements Visitor.LDRBT
func (f Fallback) LDRBT(arm.Cond) error { return f.Default("LDRBT") }

// LDRDImm implements Visitor.LDRDImm
func (f Fallback) LDRDImm(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, uint32) error { return f.Default("LDRDImm") }

// LDRDReg implements Visitor.LDRDReg
func (f Fallback) LDRDReg(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("LDRDReg") }

// LDRHImm implements Visitor.LDRHImm
func (f Fallback) LDRHImm(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, uint32) error { return f.Default("LDRHImm") }

// LDRHReg implements Visitor.LDRHReg
func (f Fallback) LDRHReg(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("LDRHReg") }

// LDRHT implements Visitor.LDRHT
func (f Fallback) LDRHT(arm.Cond) error { return f.Default("LDRHT") }

// LDRSBImm implements Visitor.LDRSBImm
func (f Fallback) LDRSBImm(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, uint32) error { return f.Default("LDRSBImm") }

// LDRSBReg implements Visitor.LDRSBReg
func (f Fallback) LDRSBReg(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("LDRSBReg") }

// LDRSBT implements Visitor.LDRSBT
func (f Fallback) LDRSBT(arm.Cond) error { return f.Default("LDRSBT") }

// LDRSHImm implements Visitor.LDRSHImm
func (f Fallback) LDRSHImm(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, uint32) error { return f.Default("LDRSHImm") }

// LDRSHReg implements Visitor.LDRSHReg
func (f Fallback) LDRSHReg(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("LDRSHReg") }

// LDRSHT implements Visitor.LDRSHT
func (f Fallback) LDRSHT(arm.Cond) error { return f.Default("LDRSHT") }

// LDRT implements Visitor.LDRT
func (f Fallback) LDRT(arm.Cond) error { return f.Default("LDRT") }

// STRImm implements Visitor.STRImm
func (f Fallback) STRImm(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, uint32) error { return f.Default("STRImm") }

// STRReg implements Visitor.STRReg
func (f Fallback) STRReg(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("STRReg") }

// STRBImm implements Visitor.STRBImm
func (f Fallback) STRBImm(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, uint32) error { return f.Default("STRBImm") }

// STRBReg implements Visitor.STRBReg
func (f Fallback) STRBReg(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, uint32, arm.ShiftType, arm.Reg) error { return f.Default("STRBReg") }

// STRBT implements Visitor.STRBT
func (f Fallback) STRBT(arm.Cond) error { return f.Default("STRBT") }

// STRDImm implements Visitor.STRDImm
func (f Fallback) STRDImm(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, uint32) error { return f.Default("STRDImm") }

// STRDReg implements Visitor.STRDReg
func (f Fallback) STRDReg(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("STRDReg") }

// STRHImm implements Visitor.STRHImm
func (f Fallback) STRHImm(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, uint32) error { return f.Default("STRHImm") }

// STRHReg implements Visitor.STRHReg
func (f Fallback) STRHReg(arm.Cond, bool, bool, bool, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("STRHReg") }

// STRHT implements Visitor.STRHT
func (f Fallback) STRHT(arm.Cond) error { return f.Default("STRHT") }

// STRT implements Visitor.STRT
func (f Fallback) STRT(arm.Cond) error { return f.Default("STRT") }

// LDM implements Visitor.LDM
func (f Fallback) LDM(arm.Cond, bool, bool, bool, arm.Reg, arm.RegList) error { return f.Default("LDM") }

// LDMUsr implements Visitor.LDMUsr
func (f Fallback) LDMUsr(arm.Cond) error { return f.Default("LDMUsr") }

// LDMEret implements Visitor.LDMEret
func (f Fallback) LDMEret(arm.Cond) error { return f.Default("LDMEret") }

// STM implements Visitor.STM
func (f Fallback) STM(arm.Cond, bool, bool, bool, arm.Reg, arm.RegList) error { return f.Default("STM") }

// STMUsr implements Visitor.STMUsr
func (f Fallback) STMUsr(arm.Cond) error { return f.Default("STMUsr") }

// CLZ implements Visitor.CLZ
func (f Fallback) CLZ(arm.Cond, arm.Reg, arm.Reg) error { return f.Default("CLZ") }

// NOP implements Visitor.NOP
func (f Fallback) NOP(arm.Cond) error { return f.Default("NOP") }

// SEL implements Visitor.SEL
func (f Fallback) SEL(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SEL") }

// USAD8 implements Visitor.USAD8
func (f Fallback) USAD8(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("USAD8") }

// USADA8 implements Visitor.USADA8
func (f Fallback) USADA8(arm.Cond, arm.Reg, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("USADA8") }

// PKHBT implements Visitor.PKHBT
func (f Fallback) PKHBT(arm.Cond, arm.Reg, arm.Reg, uint32, arm.Reg) error { return f.Default("PKHBT") }

// PKHTB implements Visitor.PKHTB
func (f Fallback) PKHTB(arm.Cond, arm.Reg, arm.Reg, uint32, arm.Reg) error { return f.Default("PKHTB") }

// REV implements Visitor.REV
func (f Fallback) REV(arm.Cond, arm.Reg, arm.Reg) error { return f.Default("REV") }

// REV16 implements Visitor.REV16
func (f Fallback) REV16(arm.Cond, arm.Reg, arm.Reg) error { return f.Default("REV16") }

// REVSH implements Visitor.REVSH
func (f Fallback) REVSH(arm.Cond, arm.Reg, arm.Reg) error { return f.Default("REVSH") }

// SSAT implements Visitor.SSAT
func (f Fallback) SSAT(arm.Cond, uint32, arm.Reg, uint32, bool, arm.Reg) error { return f.Default("SSAT") }

// SSAT16 implements Visitor.SSAT16
func (f Fallback) SSAT16(arm.Cond, uint32, arm.Reg, arm.Reg) error { return f.Default("SSAT16") }

// USAT implements Visitor.USAT
func (f Fallback) USAT(arm.Cond, uint32, arm.Reg, uint32, bool, arm.Reg) error { return f.Default("USAT") }

// USAT16 implements Visitor.USAT16
func (f Fallback) USAT16(arm.Cond, uint32, arm.Reg, arm.Reg) error { return f.Default("USAT16") }

// MLA implements Visitor.MLA
func (f Fallback) MLA(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("MLA") }

// MUL implements Visitor.MUL
func (f Fallback) MUL(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("MUL") }

// SMLAL implements Visitor.SMLAL
func (f Fallback) SMLAL(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SMLAL") }

// SMULL implements Visitor.SMULL
func (f Fallback) SMULL(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SMULL") }

// UMAAL implements Visitor.UMAAL
func (f Fallback) UMAAL(arm.Cond, arm.Reg, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UMAAL") }

// UMLAL implements Visitor.UMLAL
func (f Fallback) UMLAL(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UMLAL") }

// UMULL implements Visitor.UMULL
func (f Fallback) UMULL(arm.Cond, bool, arm.Reg, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UMULL") }

// SMLALxy implements Visitor.SMLALxy
func (f Fallback) SMLALxy(arm.Cond, arm.Reg, arm.Reg, arm.Reg, bool, bool, arm.Reg) error { return f.Default("SMLALxy") }

// SMLAxy implements Visitor.SMLAxy
func (f Fallback) SMLAxy(arm.Cond, arm.Reg, arm.Reg, arm.Reg, bool, bool, arm.Reg) error { return f.Default("SMLAxy") }

// SMULxy implements Visitor.SMULxy
func (f Fallback) SMULxy(arm.Cond, arm.Reg, arm.Reg, bool, bool, arm.Reg) error { return f.Default("SMULxy") }

// SMLAWy implements Visitor.SMLAWy
func (f Fallback) SMLAWy(arm.Cond, arm.Reg, arm.Reg, arm.Reg, bool, arm.Reg) error { return f.Default("SMLAWy") }

// SMULWy implements Visitor.SMULWy
func (f Fallback) SMULWy(arm.Cond, arm.Reg, arm.Reg, bool, arm.Reg) error { return f.Default("SMULWy") }

// SMMUL implements Visitor.SMMUL
func (f Fallback) SMMUL(arm.Cond, arm.Reg, arm.Reg, bool, arm.Reg) error { return f.Default("SMMUL") }

// SMMLA implements Visitor.SMMLA
func (f Fallback) SMMLA(arm.Cond, arm.Reg, arm.Reg, arm.Reg, bool, arm.Reg) error { return f.Default("SMMLA") }

// SMMLS implements Visitor.SMMLS
func (f Fallback) SMMLS(arm.Cond, arm.Reg, arm.Reg, arm.Reg, bool, arm.Reg) error { return f.Default("SMMLS") }

// SMLAD implements Visitor.SMLAD
func (f Fallback) SMLAD(arm.Cond, arm.Reg, arm.Reg, arm.Reg, bool, arm.Reg) error { return f.Default("SMLAD") }

// SMLALD implements Visitor.SMLALD
func (f Fallback) SMLALD(arm.Cond, arm.Reg, arm.Reg, arm.Reg, bool, arm.Reg) error { return f.Default("SMLALD") }

// SMLSD implements Visitor.SMLSD
func (f Fallback) SMLSD(arm.Cond, arm.Reg, arm.Reg, arm.Reg, bool, arm.Reg) error { return f.Default("SMLSD") }

// SMLSLD implements Visitor.SMLSLD
func (f Fallback) SMLSLD(arm.Cond, arm.Reg, arm.Reg, arm.Reg, bool, arm.Reg) error { return f.Default("SMLSLD") }

// SMUAD implements Visitor.SMUAD
func (f Fallback) SMUAD(arm.Cond, arm.Reg, arm.Reg, bool, arm.Reg) error { return f.Default("SMUAD") }

// SMUSD implements Visitor.SMUSD
func (f Fallback) SMUSD(arm.Cond, arm.Reg, arm.Reg, bool, arm.Reg) error { return f.Default("SMUSD") }

// SADD8 implements Visitor.SADD8
func (f Fallback) SADD8(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SADD8") }

// SADD16 implements Visitor.SADD16
func (f Fallback) SADD16(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SADD16") }

// SASX implements Visitor.SASX
func (f Fallback) SASX(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SASX") }

// SSAX implements Visitor.SSAX
func (f Fallback) SSAX(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SSAX") }

// SSUB8 implements Visitor.SSUB8
func (f Fallback) SSUB8(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SSUB8") }

// SSUB16 implements Visitor.SSUB16
func (f Fallback) SSUB16(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SSUB16") }

// UADD8 implements Visitor.UADD8
func (f Fallback) UADD8(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UADD8") }

// UADD16 implements Visitor.UADD16
func (f Fallback) UADD16(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UADD16") }

// UASX implements Visitor.UASX
func (f Fallback) UASX(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UASX") }

// USAX implements Visitor.USAX
func (f Fallback) USAX(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("USAX") }

// USUB8 implements Visitor.USUB8
func (f Fallback) USUB8(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("USUB8") }

// USUB16 implements Visitor.USUB16
func (f Fallback) USUB16(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("USUB16") }

// QADD8 implements Visitor.QADD8
func (f Fallback) QADD8(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("QADD8") }

// QADD16 implements Visitor.QADD16
func (f Fallback) QADD16(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("QADD16") }

// QASX implements Visitor.QASX
func (f Fallback) QASX(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("QASX") }

// QSAX implements Visitor.QSAX
func (f Fallback) QSAX(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("QSAX") }

// QSUB8 implements Visitor.QSUB8
func (f Fallback) QSUB8(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("QSUB8") }

// QSUB16 implements Visitor.QSUB16
func (f Fallback) QSUB16(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("QSUB16") }

// UQADD8 implements Visitor.UQADD8
func (f Fallback) UQADD8(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UQADD8") }

// UQADD16 implements Visitor.UQADD16
func (f Fallback) UQADD16(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UQADD16") }

// UQASX implements Visitor.UQASX
func (f Fallback) UQASX(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UQASX") }

// UQSAX implements Visitor.UQSAX
func (f Fallback) UQSAX(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UQSAX") }

// UQSUB8 implements Visitor.UQSUB8
func (f Fallback) UQSUB8(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UQSUB8") }

// UQSUB16 implements Visitor.UQSUB16
func (f Fallback) UQSUB16(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UQSUB16") }

// SHADD8 implements Visitor.SHADD8
func (f Fallback) SHADD8(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SHADD8") }

// SHADD16 implements Visitor.SHADD16
func (f Fallback) SHADD16(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SHADD16") }

// SHASX implements Visitor.SHASX
func (f Fallback) SHASX(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SHASX") }

// SHSAX implements Visitor.SHSAX
func (f Fallback) SHSAX(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SHSAX") }

// SHSUB8 implements Visitor.SHSUB8
func (f Fallback) SHSUB8(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SHSUB8") }

// SHSUB16 implements Visitor.SHSUB16
func (f Fallback) SHSUB16(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("SHSUB16") }

// UHADD8 implements Visitor.UHADD8
func (f Fallback) UHADD8(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UHADD8") }

// UHADD16 implements Visitor.UHADD16
func (f Fallback) UHADD16(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UHADD16") }

// UHASX implements Visitor.UHASX
func (f Fallback) UHASX(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UHASX") }

// UHSAX implements Visitor.UHSAX
func (f Fallback) UHSAX(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UHSAX") }

// UHSUB8 implements Visitor.UHSUB8
func (f Fallback) UHSUB8(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UHSUB8") }

// UHSUB16 implements Visitor.UHSUB16
func (f Fallback) UHSUB16(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("UHSUB16") }

// QADD implements Visitor.QADD
func (f Fallback) QADD(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("QADD") }

// QSUB implements Visitor.QSUB
func (f Fallback) QSUB(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("QSUB") }

// QDADD implements Visitor.QDADD
func (f Fallback) QDADD(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("QDADD") }

// QDSUB implements Visitor.QDSUB
func (f Fallback) QDSUB(arm.Cond, arm.Reg, arm.Reg, arm.Reg) error { return f.Default("QDSUB") }

// CPS implements Visitor.CPS
func (f Fallback) CPS() error { return f.Default("CPS") }

// SETEND implements Visitor.SETEND
func (f Fallback) SETEND(bool) error { return f.Default("SETEND") }

// MRS implements Visitor.MRS
func (f Fallback) MRS(arm.Cond, bool, arm.Reg) error { return f.Default("MRS") }

// MSRImm implements Visitor.MSRImm
func (f Fallback) MSRImm(arm.Cond, bool, uint32, uint32, uint32) error { return f.Default("MSRImm") }

// MSRReg implements Visitor.MSRReg
func (f Fallback) MSRReg(arm.Cond, bool, uint32, arm.Reg) error { return f.Default("MSRReg") }

// RFE implements Visitor.RFE
func (f Fallback) RFE() error { return f.Default("RFE") }

// SRS implements Visitor.SRS
func (f Fallback) SRS() error { return f.Default("SRS") }

// ThumbBCond implements Visitor.ThumbBCond
func (f Fallback) ThumbBCond(arm.Cond, uint32) error { return f.Default("ThumbBCond") }

// ThumbB implements Visitor.ThumbB
func (f Fallback) ThumbB(uint32) error { return f.Default("ThumbB") }

// ThumbBLXPrefix implements Visitor.ThumbBLXPrefix
func (f Fallback) ThumbBLXPrefix(uint32) error { return f.Default("ThumbBLXPrefix") }

// ThumbBLXSuffix implements Visitor.ThumbBLXSuffix
func (f Fallback) ThumbBLXSuffix(bool, uint32) error { return f.Default("ThumbBLXSuffix") }
