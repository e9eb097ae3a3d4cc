package interpreter

import (
	"math/bits"

	"github.com/armjit/armjit/internal/arm"
)

func rotated(v uint32, rotate arm.SignExtendRotation) uint32 {
	return bits.RotateLeft32(v, -int(rotate.Amount()))
}

func signExtendByte16(v uint32) uint32 {
	return arm.SignExtend(v&0xff, 8)&0xffff | arm.SignExtend(v>>16&0xff, 8)<<16
}

func add16(a, b uint32) uint32 {
	return (a+b)&0xffff | (a>>16+b>>16)<<16
}

func (i *Interpreter) extend(cond arm.Cond, d arm.Reg, v uint32) error {
	if !i.passed(cond) {
		return nil
	}
	i.State.Regs[d] = v
	return nil
}

// SXTB implements decoder.Visitor SXTB
func (i *Interpreter) SXTB(cond arm.Cond, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error {
	return i.extend(cond, d, arm.SignExtend(rotated(i.reg(m), rotate)&0xff, 8))
}

// SXTB16 implements decoder.Visitor SXTB16
func (i *Interpreter) SXTB16(cond arm.Cond, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error {
	return i.extend(cond, d, signExtendByte16(rotated(i.reg(m), rotate)))
}

// SXTH implements decoder.Visitor SXTH
func (i *Interpreter) SXTH(cond arm.Cond, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error {
	return i.extend(cond, d, arm.SignExtend(rotated(i.reg(m), rotate)&0xffff, 16))
}

// SXTAB implements decoder.Visitor SXTAB
func (i *Interpreter) SXTAB(cond arm.Cond, n, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error {
	return i.extend(cond, d, i.reg(n)+arm.SignExtend(rotated(i.reg(m), rotate)&0xff, 8))
}

// SXTAB16 implements decoder.Visitor SXTAB16
func (i *Interpreter) SXTAB16(cond arm.Cond, n, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error {
	return i.extend(cond, d, add16(i.reg(n), signExtendByte16(rotated(i.reg(m), rotate))))
}

// SXTAH implements decoder.Visitor SXTAH
func (i *Interpreter) SXTAH(cond arm.Cond, n, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error {
	return i.extend(cond, d, i.reg(n)+arm.SignExtend(rotated(i.reg(m), rotate)&0xffff, 16))
}

// UXTB implements decoder.Visitor UXTB
func (i *Interpreter) UXTB(cond arm.Cond, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error {
	return i.extend(cond, d, rotated(i.reg(m), rotate)&0xff)
}

// UXTB16 implements decoder.Visitor UXTB16
func (i *Interpreter) UXTB16(cond arm.Cond, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error {
	return i.extend(cond, d, rotated(i.reg(m), rotate)&0x00ff00ff)
}

// UXTH implements decoder.Visitor UXTH
func (i *Interpreter) UXTH(cond arm.Cond, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error {
	return i.extend(cond, d, rotated(i.reg(m), rotate)&0xffff)
}

// UXTAB implements decoder.Visitor UXTAB
func (i *Interpreter) UXTAB(cond arm.Cond, n, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error {
	return i.extend(cond, d, i.reg(n)+rotated(i.reg(m), rotate)&0xff)
}

// UXTAB16 implements decoder.Visitor UXTAB16
func (i *Interpreter) UXTAB16(cond arm.Cond, n, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error {
	return i.extend(cond, d, add16(i.reg(n), rotated(i.reg(m), rotate)&0x00ff00ff))
}

// UXTAH implements decoder.Visitor UXTAH
func (i *Interpreter) UXTAH(cond arm.Cond, n, d arm.Reg, rotate arm.SignExtendRotation, m arm.Reg) error {
	return i.extend(cond, d, i.reg(n)+rotated(i.reg(m), rotate)&0xffff)
}

// PKHBT implements decoder.Visitor PKHBT
func (i *Interpreter) PKHBT(cond arm.Cond, n, d arm.Reg, imm5 uint32, m arm.Reg) error {
	shifted, _ := arm.ShiftImm(i.reg(m), arm.LSL, imm5, false)
	return i.extend(cond, d, i.reg(n)&0xffff|shifted&0xffff0000)
}

// PKHTB implements decoder.Visitor PKHTB
func (i *Interpreter) PKHTB(cond arm.Cond, n, d arm.Reg, imm5 uint32, m arm.Reg) error {
	shifted, _ := arm.ShiftImm(i.reg(m), arm.ASR, imm5, false)
	return i.extend(cond, d, i.reg(n)&0xffff0000|shifted&0xffff)
}

// REV implements decoder.Visitor REV
func (i *Interpreter) REV(cond arm.Cond, d, m arm.Reg) error {
	return i.extend(cond, d, bits.ReverseBytes32(i.reg(m)))
}

// REV16 implements decoder.Visitor REV16
func (i *Interpreter) REV16(cond arm.Cond, d, m arm.Reg) error {
	v := i.reg(m)
	return i.extend(cond, d, v>>8&0x00ff00ff|v<<8&0xff00ff00)
}

// REVSH implements decoder.Visitor REVSH
func (i *Interpreter) REVSH(cond arm.Cond, d, m arm.Reg) error {
	return i.extend(cond, d, arm.SignExtend(uint32(bits.ReverseBytes16(uint16(i.reg(m)))), 16))
}

// CLZ implements decoder.Visitor CLZ
func (i *Interpreter) CLZ(cond arm.Cond, d, m arm.Reg) error {
	return i.extend(cond, d, uint32(bits.LeadingZeros32(i.reg(m))))
}

// SEL implements decoder.Visitor SEL
func (i *Interpreter) SEL(cond arm.Cond, n, d, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	rn, rm := i.reg(n), i.reg(m)
	var result uint32
	for b := uint32(0); b < 4; b++ {
		mask := uint32(0xff) << (b * 8)
		if i.State.CPSR&(1<<(16+b)) != 0 {
			result |= rn & mask
		} else {
			result |= rm & mask
		}
	}
	i.State.Regs[d] = result
	return nil
}

func absoluteDifferences(a, b uint32) (sum uint32) {
	for shift := 0; shift < 32; shift += 8 {
		x, y := a>>shift&0xff, b>>shift&0xff
		if x > y {
			sum += x - y
		} else {
			sum += y - x
		}
	}
	return
}

// USAD8 implements decoder.Visitor USAD8
func (i *Interpreter) USAD8(cond arm.Cond, d, m, n arm.Reg) error {
	return i.extend(cond, d, absoluteDifferences(i.reg(n), i.reg(m)))
}

// USADA8 implements decoder.Visitor USADA8
func (i *Interpreter) USADA8(cond arm.Cond, d, a, m, n arm.Reg) error {
	return i.extend(cond, d, i.reg(a)+absoluteDifferences(i.reg(n), i.reg(m)))
}

func (i *Interpreter) saturate(cond arm.Cond, signed bool, to uint, d arm.Reg, imm5 uint32, sh bool, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	shift := arm.LSL
	if sh {
		shift = arm.ASR
	}
	operand, _ := arm.ShiftImm(i.reg(n), shift, imm5, false)
	var result uint32
	var saturated bool
	if signed {
		var s int32
		s, saturated = arm.SignedSaturate(int64(int32(operand)), to)
		result = uint32(s)
	} else {
		result, saturated = arm.UnsignedSaturate(int64(int32(operand)), to)
	}
	if saturated {
		i.setQ()
	}
	i.State.Regs[d] = result
	return nil
}

// SSAT implements decoder.Visitor SSAT
func (i *Interpreter) SSAT(cond arm.Cond, satImm uint32, d arm.Reg, imm5 uint32, sh bool, n arm.Reg) error {
	return i.saturate(cond, true, uint(satImm)+1, d, imm5, sh, n)
}

// USAT implements decoder.Visitor USAT
func (i *Interpreter) USAT(cond arm.Cond, satImm uint32, d arm.Reg, imm5 uint32, sh bool, n arm.Reg) error {
	return i.saturate(cond, false, uint(satImm), d, imm5, sh, n)
}

func (i *Interpreter) saturate16(cond arm.Cond, signed bool, to uint, d, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	rn := i.reg(n)
	var result uint32
	for _, shift := range [2]uint32{0, 16} {
		v := int64(half(rn, shift == 16))
		var lane uint32
		var saturated bool
		if signed {
			var s int32
			s, saturated = arm.SignedSaturate(v, to)
			lane = uint32(s)
		} else {
			lane, saturated = arm.UnsignedSaturate(v, to)
		}
		if saturated {
			i.setQ()
		}
		result |= lane & 0xffff << shift
	}
	i.State.Regs[d] = result
	return nil
}

// SSAT16 implements decoder.Visitor SSAT16
func (i *Interpreter) SSAT16(cond arm.Cond, satImm uint32, d, n arm.Reg) error {
	return i.saturate16(cond, true, uint(satImm)+1, d, n)
}

// USAT16 implements decoder.Visitor USAT16
func (i *Interpreter) USAT16(cond arm.Cond, satImm uint32, d, n arm.Reg) error {
	return i.saturate16(cond, false, uint(satImm), d, n)
}

func (i *Interpreter) saturated(v int64) uint32 {
	s, sat := arm.SignedSaturate(v, 32)
	if sat {
		i.setQ()
	}
	return uint32(s)
}

func (i *Interpreter) saturatingArithmetic(cond arm.Cond, double, subtract bool, n, d, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	rn := int64(int32(i.reg(n)))
	if double {
		rn = int64(int32(i.saturated(2 * rn)))
	}
	rm := int64(int32(i.reg(m)))
	if subtract {
		i.State.Regs[d] = i.saturated(rm - rn)
	} else {
		i.State.Regs[d] = i.saturated(rm + rn)
	}
	return nil
}

// QADD implements decoder.Visitor QADD
func (i *Interpreter) QADD(cond arm.Cond, n, d, m arm.Reg) error {
	return i.saturatingArithmetic(cond, false, false, n, d, m)
}

// QSUB implements decoder.Visitor QSUB
func (i *Interpreter) QSUB(cond arm.Cond, n, d, m arm.Reg) error {
	return i.saturatingArithmetic(cond, false, true, n, d, m)
}

// QDADD implements decoder.Visitor QDADD
func (i *Interpreter) QDADD(cond arm.Cond, n, d, m arm.Reg) error {
	return i.saturatingArithmetic(cond, true, false, n, d, m)
}

// QDSUB implements decoder.Visitor QDSUB
func (i *Interpreter) QDSUB(cond arm.Cond, n, d, m arm.Reg) error {
	return i.saturatingArithmetic(cond, true, true, n, d, m)
}

// parallelMode selects how the lanes of a parallel add/subtract are interpreted and how the
// results are narrowed.
type parallelMode byte

const (
	parallelSigned parallelMode = iota
	parallelUnsigned
	parallelSignedSaturating
	parallelUnsignedSaturating
	parallelSignedHalving
	parallelUnsignedHalving
)

func (p parallelMode) signed() bool {
	return p == parallelSigned || p == parallelSignedSaturating || p == parallelSignedHalving
}

type parallelOp byte

const (
	parallelAdd8 parallelOp = iota
	parallelAdd16
	// parallelASX adds the top halves and subtracts the bottom halves, with the halves of the
	// second operand exchanged.
	parallelASX
	// parallelSAX subtracts the top halves and adds the bottom halves, with the halves of the
	// second operand exchanged.
	parallelSAX
	parallelSub8
	parallelSub16
)

func laneValue(v uint32, lane, width int, signed bool) int64 {
	x := v >> (lane * width) & (1<<width - 1)
	if signed {
		return int64(int32(arm.SignExtend(x, uint(width))))
	}
	return int64(x)
}

func (i *Interpreter) parallel(cond arm.Cond, mode parallelMode, op parallelOp, n, d, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	rn, rm := i.reg(n), i.reg(m)
	width, lanes := 16, 2
	if op == parallelAdd8 || op == parallelSub8 {
		width, lanes = 8, 4
	}
	signed := mode.signed()

	var result, ge uint32
	for lane := 0; lane < lanes; lane++ {
		a := laneValue(rn, lane, width, signed)
		other, add := lane, true
		switch op {
		case parallelSub8, parallelSub16:
			add = false
		case parallelASX:
			other, add = 1-lane, lane == 1
		case parallelSAX:
			other, add = 1-lane, lane == 0
		}
		b := laneValue(rm, other, width, signed)

		r := a - b
		if add {
			r = a + b
		}

		var out uint32
		switch mode {
		case parallelSigned, parallelUnsigned:
			out = uint32(r)
		case parallelSignedSaturating:
			s, _ := arm.SignedSaturate(r, uint(width))
			out = uint32(s)
		case parallelUnsignedSaturating:
			out, _ = arm.UnsignedSaturate(r, uint(width))
		default:
			out = uint32(r >> 1)
		}
		result |= out & (1<<width - 1) << (lane * width)

		var geLane bool
		if signed || !add {
			geLane = r >= 0
		} else {
			geLane = r >= 1<<width
		}
		if geLane {
			bytesPerLane := width / 8
			ge |= (1<<bytesPerLane - 1) << (lane * bytesPerLane)
		}
	}

	i.State.Regs[d] = result
	if mode == parallelSigned || mode == parallelUnsigned {
		i.State.CPSR = i.State.CPSR&^arm.CPSRGE | ge<<16
	}
	return nil
}

// SADD8 implements decoder.Visitor SADD8
func (i *Interpreter) SADD8(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSigned, parallelAdd8, n, d, m)
}

// SADD16 implements decoder.Visitor SADD16
func (i *Interpreter) SADD16(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSigned, parallelAdd16, n, d, m)
}

// SASX implements decoder.Visitor SASX
func (i *Interpreter) SASX(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSigned, parallelASX, n, d, m)
}

// SSAX implements decoder.Visitor SSAX
func (i *Interpreter) SSAX(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSigned, parallelSAX, n, d, m)
}

// SSUB8 implements decoder.Visitor SSUB8
func (i *Interpreter) SSUB8(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSigned, parallelSub8, n, d, m)
}

// SSUB16 implements decoder.Visitor SSUB16
func (i *Interpreter) SSUB16(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSigned, parallelSub16, n, d, m)
}

// UADD8 implements decoder.Visitor UADD8
func (i *Interpreter) UADD8(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsigned, parallelAdd8, n, d, m)
}

// UADD16 implements decoder.Visitor UADD16
func (i *Interpreter) UADD16(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsigned, parallelAdd16, n, d, m)
}

// UASX implements decoder.Visitor UASX
func (i *Interpreter) UASX(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsigned, parallelASX, n, d, m)
}

// USAX implements decoder.Visitor USAX
func (i *Interpreter) USAX(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsigned, parallelSAX, n, d, m)
}

// USUB8 implements decoder.Visitor USUB8
func (i *Interpreter) USUB8(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsigned, parallelSub8, n, d, m)
}

// USUB16 implements decoder.Visitor USUB16
func (i *Interpreter) USUB16(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsigned, parallelSub16, n, d, m)
}

// QADD8 implements decoder.Visitor QADD8
func (i *Interpreter) QADD8(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSignedSaturating, parallelAdd8, n, d, m)
}

// QADD16 implements decoder.Visitor QADD16
func (i *Interpreter) QADD16(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSignedSaturating, parallelAdd16, n, d, m)
}

// QASX implements decoder.Visitor QASX
func (i *Interpreter) QASX(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSignedSaturating, parallelASX, n, d, m)
}

// QSAX implements decoder.Visitor QSAX
func (i *Interpreter) QSAX(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSignedSaturating, parallelSAX, n, d, m)
}

// QSUB8 implements decoder.Visitor QSUB8
func (i *Interpreter) QSUB8(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSignedSaturating, parallelSub8, n, d, m)
}

// QSUB16 implements decoder.Visitor QSUB16
func (i *Interpreter) QSUB16(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSignedSaturating, parallelSub16, n, d, m)
}

// UQADD8 implements decoder.Visitor UQADD8
func (i *Interpreter) UQADD8(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsignedSaturating, parallelAdd8, n, d, m)
}

// UQADD16 implements decoder.Visitor UQADD16
func (i *Interpreter) UQADD16(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsignedSaturating, parallelAdd16, n, d, m)
}

// UQASX implements decoder.Visitor UQASX
func (i *Interpreter) UQASX(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsignedSaturating, parallelASX, n, d, m)
}

// UQSAX implements decoder.Visitor UQSAX
func (i *Interpreter) UQSAX(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsignedSaturating, parallelSAX, n, d, m)
}

// UQSUB8 implements decoder.Visitor UQSUB8
func (i *Interpreter) UQSUB8(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsignedSaturating, parallelSub8, n, d, m)
}

// UQSUB16 implements decoder.Visitor UQSUB16
func (i *Interpreter) UQSUB16(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsignedSaturating, parallelSub16, n, d, m)
}

// SHADD8 implements decoder.Visitor SHADD8
func (i *Interpreter) SHADD8(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSignedHalving, parallelAdd8, n, d, m)
}

// SHADD16 implements decoder.Visitor SHADD16
func (i *Interpreter) SHADD16(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSignedHalving, parallelAdd16, n, d, m)
}

// SHASX implements decoder.Visitor SHASX
func (i *Interpreter) SHASX(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSignedHalving, parallelASX, n, d, m)
}

// SHSAX implements decoder.Visitor SHSAX
func (i *Interpreter) SHSAX(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSignedHalving, parallelSAX, n, d, m)
}

// SHSUB8 implements decoder.Visitor SHSUB8
func (i *Interpreter) SHSUB8(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSignedHalving, parallelSub8, n, d, m)
}

// SHSUB16 implements decoder.Visitor SHSUB16
func (i *Interpreter) SHSUB16(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelSignedHalving, parallelSub16, n, d, m)
}

// UHADD8 implements decoder.Visitor UHADD8
func (i *Interpreter) UHADD8(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsignedHalving, parallelAdd8, n, d, m)
}

// UHADD16 implements decoder.Visitor UHADD16
func (i *Interpreter) UHADD16(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsignedHalving, parallelAdd16, n, d, m)
}

// UHASX implements decoder.Visitor UHASX
func (i *Interpreter) UHASX(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsignedHalving, parallelASX, n, d, m)
}

// UHSAX implements decoder.Visitor UHSAX
func (i *Interpreter) UHSAX(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsignedHalving, parallelSAX, n, d, m)
}

// UHSUB8 implements decoder.Visitor UHSUB8
func (i *Interpreter) UHSUB8(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsignedHalving, parallelSub8, n, d, m)
}

// UHSUB16 implements decoder.Visitor UHSUB16
func (i *Interpreter) UHSUB16(cond arm.Cond, n, d, m arm.Reg) error {
	return i.parallel(cond, parallelUnsignedHalving, parallelSub16, n, d, m)
}
