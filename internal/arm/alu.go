package arm

import "math/bits"

// ExpandImm returns the value of a data processing immediate: imm8 rotated right by twice rotate.
func ExpandImm(rotate, imm8 uint32) uint32 {
	return bits.RotateLeft32(imm8, -int(rotate*2))
}

// ExpandImmC is ExpandImm which also returns the shifter carry out. carryIn is returned
// unchanged when rotate is zero.
func ExpandImmC(rotate, imm8 uint32, carryIn bool) (uint32, bool) {
	v := ExpandImm(rotate, imm8)
	if rotate == 0 {
		return v, carryIn
	}
	return v, v&(1<<31) != 0
}

// ShiftImm applies an immediate shift as encoded in instruction bits: imm5 == 0 encodes
// LSR #32, ASR #32 and RRX for the respective shift types.
func ShiftImm(value uint32, typ ShiftType, imm5 uint32, carryIn bool) (uint32, bool) {
	switch typ {
	case LSL:
		return Shift(value, LSL, imm5, carryIn)
	case LSR, ASR:
		if imm5 == 0 {
			imm5 = 32
		}
		return Shift(value, typ, imm5, carryIn)
	default:
		if imm5 == 0 {
			// RRX.
			out := value>>1 | uint32(b2u(carryIn))<<31
			return out, value&1 != 0
		}
		return Shift(value, ROR, imm5, carryIn)
	}
}

// Shift applies a shift by amount, where amount comes from a register (only its bottom byte counts).
func Shift(value uint32, typ ShiftType, amount uint32, carryIn bool) (uint32, bool) {
	amount &= 0xff
	if amount == 0 {
		return value, carryIn
	}
	switch typ {
	case LSL:
		switch {
		case amount < 32:
			return value << amount, value&(1<<(32-amount)) != 0
		case amount == 32:
			return 0, value&1 != 0
		default:
			return 0, false
		}
	case LSR:
		switch {
		case amount < 32:
			return value >> amount, value&(1<<(amount-1)) != 0
		case amount == 32:
			return 0, value&(1<<31) != 0
		default:
			return 0, false
		}
	case ASR:
		if amount >= 32 {
			if int32(value) < 0 {
				return 0xffffffff, true
			}
			return 0, false
		}
		return uint32(int32(value) >> amount), value&(1<<(amount-1)) != 0
	default:
		amount &= 31
		if amount == 0 {
			return value, value&(1<<31) != 0
		}
		out := bits.RotateLeft32(value, -int(amount))
		return out, out&(1<<31) != 0
	}
}

// AddWithCarry returns x + y + carryIn with the resulting carry and overflow flags.
func AddWithCarry(x, y uint32, carryIn bool) (result uint32, carry, overflow bool) {
	sum, c := bits.Add32(x, y, uint32(b2u(carryIn)))
	overflow = (x^sum)&(y^sum)&(1<<31) != 0
	return sum, c != 0, overflow
}

// SignedSaturate clamps v to a signed n-bit range and reports whether it was clamped.
func SignedSaturate(v int64, n uint) (int32, bool) {
	hi := int64(1)<<(n-1) - 1
	lo := -(int64(1) << (n - 1))
	switch {
	case v > hi:
		return int32(hi), true
	case v < lo:
		return int32(lo), true
	}
	return int32(v), false
}

// UnsignedSaturate clamps v to an unsigned n-bit range and reports whether it was clamped.
func UnsignedSaturate(v int64, n uint) (uint32, bool) {
	hi := int64(1)<<n - 1
	switch {
	case v > hi:
		return uint32(hi), true
	case v < 0:
		return 0, true
	}
	return uint32(v), false
}

// SignExtend sign extends the low n bits of v.
func SignExtend(v uint32, n uint) uint32 {
	shift := 32 - n
	return uint32(int32(v<<shift) >> shift)
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
