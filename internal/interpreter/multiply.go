package interpreter

import "github.com/armjit/armjit/internal/arm"

func (i *Interpreter) setLong(dHi, dLo arm.Reg, v uint64) {
	i.State.Regs[dLo] = uint32(v)
	i.State.Regs[dHi] = uint32(v >> 32)
}

func (i *Interpreter) long(dHi, dLo arm.Reg) uint64 {
	return uint64(i.reg(dHi))<<32 | uint64(i.reg(dLo))
}

func (i *Interpreter) setNZLong(v uint64) {
	i.State.SetBit(arm.CPSRN, v&(1<<63) != 0)
	i.State.SetBit(arm.CPSRZ, v == 0)
}

func half(v uint32, top bool) int32 {
	if top {
		return int32(v) >> 16
	}
	return int32(int16(v))
}

// MUL implements decoder.Visitor MUL
func (i *Interpreter) MUL(cond arm.Cond, s bool, d, m, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	result := i.reg(n) * i.reg(m)
	i.State.Regs[d] = result
	if s {
		i.setNZ(result)
	}
	return nil
}

// MLA implements decoder.Visitor MLA
func (i *Interpreter) MLA(cond arm.Cond, s bool, d, a, m, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	result := i.reg(n)*i.reg(m) + i.reg(a)
	i.State.Regs[d] = result
	if s {
		i.setNZ(result)
	}
	return nil
}

func (i *Interpreter) multiplyLong(cond arm.Cond, s, signed, accumulate bool, dHi, dLo, m, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	var result uint64
	if signed {
		result = uint64(int64(int32(i.reg(n))) * int64(int32(i.reg(m))))
	} else {
		result = uint64(i.reg(n)) * uint64(i.reg(m))
	}
	if accumulate {
		result += i.long(dHi, dLo)
	}
	i.setLong(dHi, dLo, result)
	if s {
		i.setNZLong(result)
	}
	return nil
}

// SMULL implements decoder.Visitor SMULL
func (i *Interpreter) SMULL(cond arm.Cond, s bool, dHi, dLo, m, n arm.Reg) error {
	return i.multiplyLong(cond, s, true, false, dHi, dLo, m, n)
}

// SMLAL implements decoder.Visitor SMLAL
func (i *Interpreter) SMLAL(cond arm.Cond, s bool, dHi, dLo, m, n arm.Reg) error {
	return i.multiplyLong(cond, s, true, true, dHi, dLo, m, n)
}

// UMULL implements decoder.Visitor UMULL
func (i *Interpreter) UMULL(cond arm.Cond, s bool, dHi, dLo, m, n arm.Reg) error {
	return i.multiplyLong(cond, s, false, false, dHi, dLo, m, n)
}

// UMLAL implements decoder.Visitor UMLAL
func (i *Interpreter) UMLAL(cond arm.Cond, s bool, dHi, dLo, m, n arm.Reg) error {
	return i.multiplyLong(cond, s, false, true, dHi, dLo, m, n)
}

// UMAAL implements decoder.Visitor UMAAL
func (i *Interpreter) UMAAL(cond arm.Cond, dHi, dLo, m, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	result := uint64(i.reg(n))*uint64(i.reg(m)) + uint64(i.reg(dHi)) + uint64(i.reg(dLo))
	i.setLong(dHi, dLo, result)
	return nil
}

// SMULxy implements decoder.Visitor SMULxy
func (i *Interpreter) SMULxy(cond arm.Cond, d, m arm.Reg, mTop, nTop bool, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	i.State.Regs[d] = uint32(half(i.reg(n), nTop) * half(i.reg(m), mTop))
	return nil
}

// SMLAxy implements decoder.Visitor SMLAxy
func (i *Interpreter) SMLAxy(cond arm.Cond, d, a, m arm.Reg, mTop, nTop bool, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	product := int64(half(i.reg(n), nTop) * half(i.reg(m), mTop))
	result := product + int64(int32(i.reg(a)))
	if result != int64(int32(result)) {
		i.setQ()
	}
	i.State.Regs[d] = uint32(result)
	return nil
}

// SMLALxy implements decoder.Visitor SMLALxy
func (i *Interpreter) SMLALxy(cond arm.Cond, dHi, dLo, m arm.Reg, mTop, nTop bool, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	product := int64(half(i.reg(n), nTop) * half(i.reg(m), mTop))
	i.setLong(dHi, dLo, i.long(dHi, dLo)+uint64(product))
	return nil
}

// SMULWy implements decoder.Visitor SMULWy
func (i *Interpreter) SMULWy(cond arm.Cond, d, m arm.Reg, mTop bool, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	product := int64(int32(i.reg(n))) * int64(half(i.reg(m), mTop))
	i.State.Regs[d] = uint32(product >> 16)
	return nil
}

// SMLAWy implements decoder.Visitor SMLAWy
func (i *Interpreter) SMLAWy(cond arm.Cond, d, a, m arm.Reg, mTop bool, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	product := int64(int32(i.reg(n))) * int64(half(i.reg(m), mTop)) >> 16
	result := product + int64(int32(i.reg(a)))
	if result != int64(int32(result)) {
		i.setQ()
	}
	i.State.Regs[d] = uint32(result)
	return nil
}

func (i *Interpreter) mostSignificant(cond arm.Cond, d, a, m arm.Reg, round, accumulate, subtract bool, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	product := int64(int32(i.reg(n))) * int64(int32(i.reg(m)))
	var result int64
	switch {
	case subtract:
		result = int64(i.reg(a))<<32 - product
	case accumulate:
		result = int64(i.reg(a))<<32 + product
	default:
		result = product
	}
	if round {
		result += 0x80000000
	}
	i.State.Regs[d] = uint32(result >> 32)
	return nil
}

// SMMUL implements decoder.Visitor SMMUL
func (i *Interpreter) SMMUL(cond arm.Cond, d, m arm.Reg, round bool, n arm.Reg) error {
	return i.mostSignificant(cond, d, 0, m, round, false, false, n)
}

// SMMLA implements decoder.Visitor SMMLA
func (i *Interpreter) SMMLA(cond arm.Cond, d, a, m arm.Reg, round bool, n arm.Reg) error {
	return i.mostSignificant(cond, d, a, m, round, true, false, n)
}

// SMMLS implements decoder.Visitor SMMLS
func (i *Interpreter) SMMLS(cond arm.Cond, d, a, m arm.Reg, round bool, n arm.Reg) error {
	return i.mostSignificant(cond, d, a, m, round, true, true, n)
}

// dual returns the two signed halfword products of n and m, where swap exchanges the halves of m.
func (i *Interpreter) dual(m arm.Reg, swap bool, n arm.Reg) (lo, hi int64) {
	rn, rm := i.reg(n), i.reg(m)
	if swap {
		rm = rm>>16 | rm<<16
	}
	return int64(half(rn, false)) * int64(half(rm, false)), int64(half(rn, true)) * int64(half(rm, true))
}

func (i *Interpreter) setDual(d arm.Reg, result int64) {
	if result != int64(int32(result)) {
		i.setQ()
	}
	i.State.Regs[d] = uint32(result)
}

// SMUAD implements decoder.Visitor SMUAD
func (i *Interpreter) SMUAD(cond arm.Cond, d, m arm.Reg, swap bool, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	lo, hi := i.dual(m, swap, n)
	i.setDual(d, lo+hi)
	return nil
}

// SMUSD implements decoder.Visitor SMUSD
func (i *Interpreter) SMUSD(cond arm.Cond, d, m arm.Reg, swap bool, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	lo, hi := i.dual(m, swap, n)
	i.State.Regs[d] = uint32(lo - hi)
	return nil
}

// SMLAD implements decoder.Visitor SMLAD
func (i *Interpreter) SMLAD(cond arm.Cond, d, a, m arm.Reg, swap bool, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	lo, hi := i.dual(m, swap, n)
	i.setDual(d, lo+hi+int64(int32(i.reg(a))))
	return nil
}

// SMLSD implements decoder.Visitor SMLSD
func (i *Interpreter) SMLSD(cond arm.Cond, d, a, m arm.Reg, swap bool, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	lo, hi := i.dual(m, swap, n)
	i.setDual(d, lo-hi+int64(int32(i.reg(a))))
	return nil
}

// SMLALD implements decoder.Visitor SMLALD
func (i *Interpreter) SMLALD(cond arm.Cond, dHi, dLo, m arm.Reg, swap bool, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	lo, hi := i.dual(m, swap, n)
	i.setLong(dHi, dLo, i.long(dHi, dLo)+uint64(lo+hi))
	return nil
}

// SMLSLD implements decoder.Visitor SMLSLD
func (i *Interpreter) SMLSLD(cond arm.Cond, dHi, dLo, m arm.Reg, swap bool, n arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	lo, hi := i.dual(m, swap, n)
	i.setLong(dHi, dLo, i.long(dHi, dLo)+uint64(lo-hi))
	return nil
}
