package interpreter

import (
	"math/bits"

	"github.com/armjit/armjit/internal/arm"
	"github.com/armjit/armjit/internal/memory"
)

type accessSize byte

const (
	accessByte accessSize = iota
	accessSignedByte
	accessHalf
	accessSignedHalf
	accessWord
	accessDouble
)

// address returns the address accessed and the value written back to n, if any.
func (i *Interpreter) address(p, u, w bool, n arm.Reg, offset uint32) (addr, wback uint32, writeBack bool) {
	base := i.base(n)
	offsetAddr := base - offset
	if u {
		offsetAddr = base + offset
	}
	addr = base
	if p {
		addr = offsetAddr
	}
	return addr, offsetAddr, !p || w
}

func (i *Interpreter) load(size accessSize, p, u, w bool, n, d arm.Reg, offset uint32) error {
	addr, wback, writeBack := i.address(p, u, w, n, offset)
	e := i.bigEndian()

	var v, v2 uint32
	var err error
	switch size {
	case accessByte:
		v, err = memory.Read8(i.Memory, addr)
	case accessSignedByte:
		v, err = memory.Read8(i.Memory, addr)
		v = arm.SignExtend(v, 8)
	case accessHalf:
		v, err = memory.Read16(i.Memory, addr, e)
	case accessSignedHalf:
		v, err = memory.Read16(i.Memory, addr, e)
		v = arm.SignExtend(v, 16)
	case accessWord:
		v, err = memory.Read32(i.Memory, addr, e)
	case accessDouble:
		if v, err = memory.Read32(i.Memory, addr, e); err == nil {
			v2, err = memory.Read32(i.Memory, addr+4, e)
		}
	}
	if err != nil {
		return err
	}

	// Write back first so the loaded value wins when n == d.
	if writeBack {
		i.State.Regs[n] = wback
	}
	i.loadReg(d, v)
	if size == accessDouble {
		i.State.Regs[d+1] = v2
	}
	return nil
}

func (i *Interpreter) store(size accessSize, p, u, w bool, n, d arm.Reg, offset uint32) error {
	addr, wback, writeBack := i.address(p, u, w, n, offset)
	e := i.bigEndian()

	v := i.reg(d)
	var err error
	switch size {
	case accessByte:
		err = memory.Write8(i.Memory, addr, v)
	case accessHalf:
		err = memory.Write16(i.Memory, addr, v, e)
	case accessWord:
		err = memory.Write32(i.Memory, addr, v, e)
	case accessDouble:
		err = memory.Write64(i.Memory, addr, uint64(i.reg(d+1))<<32|uint64(v), e)
	}
	if err != nil {
		return err
	}
	if writeBack {
		i.State.Regs[n] = wback
	}
	return nil
}

// unprivileged returns true for the post-indexed writeback encodings which are the LDRT
// family.
func unprivileged(p, w bool) bool { return !p && w }

// LDRImm implements decoder.Visitor LDRImm
func (i *Interpreter) LDRImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm12 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("LDRT")
	}
	return i.load(accessWord, p, u, w, n, d, imm12)
}

// LDRReg implements decoder.Visitor LDRReg
func (i *Interpreter) LDRReg(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("LDRT")
	}
	offset, _ := arm.ShiftImm(i.reg(m), shift, imm5, i.carry())
	return i.load(accessWord, p, u, w, n, d, offset)
}

// LDRBImm implements decoder.Visitor LDRBImm
func (i *Interpreter) LDRBImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm12 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("LDRBT")
	}
	return i.load(accessByte, p, u, w, n, d, imm12)
}

// LDRBReg implements decoder.Visitor LDRBReg
func (i *Interpreter) LDRBReg(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("LDRBT")
	}
	offset, _ := arm.ShiftImm(i.reg(m), shift, imm5, i.carry())
	return i.load(accessByte, p, u, w, n, d, offset)
}

// LDRBT implements decoder.Visitor LDRBT
func (i *Interpreter) LDRBT(cond arm.Cond) error { return i.unimplementedIf(cond, "LDRBT") }

// LDRDImm implements decoder.Visitor LDRDImm
func (i *Interpreter) LDRDImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm8 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	if d%2 != 0 || d == arm.LR {
		return i.undefined()
	}
	return i.load(accessDouble, p, u, w, n, d, imm8)
}

// LDRDReg implements decoder.Visitor LDRDReg
func (i *Interpreter) LDRDReg(cond arm.Cond, p, u, w bool, n, d, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	if d%2 != 0 || d == arm.LR {
		return i.undefined()
	}
	return i.load(accessDouble, p, u, w, n, d, i.reg(m))
}

// LDRHImm implements decoder.Visitor LDRHImm
func (i *Interpreter) LDRHImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm8 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("LDRHT")
	}
	return i.load(accessHalf, p, u, w, n, d, imm8)
}

// LDRHReg implements decoder.Visitor LDRHReg
func (i *Interpreter) LDRHReg(cond arm.Cond, p, u, w bool, n, d, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("LDRHT")
	}
	return i.load(accessHalf, p, u, w, n, d, i.reg(m))
}

// LDRHT implements decoder.Visitor LDRHT
func (i *Interpreter) LDRHT(cond arm.Cond) error { return i.unimplementedIf(cond, "LDRHT") }

// LDRSBImm implements decoder.Visitor LDRSBImm
func (i *Interpreter) LDRSBImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm8 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("LDRSBT")
	}
	return i.load(accessSignedByte, p, u, w, n, d, imm8)
}

// LDRSBReg implements decoder.Visitor LDRSBReg
func (i *Interpreter) LDRSBReg(cond arm.Cond, p, u, w bool, n, d, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("LDRSBT")
	}
	return i.load(accessSignedByte, p, u, w, n, d, i.reg(m))
}

// LDRSBT implements decoder.Visitor LDRSBT
func (i *Interpreter) LDRSBT(cond arm.Cond) error { return i.unimplementedIf(cond, "LDRSBT") }

// LDRSHImm implements decoder.Visitor LDRSHImm
func (i *Interpreter) LDRSHImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm8 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("LDRSHT")
	}
	return i.load(accessSignedHalf, p, u, w, n, d, imm8)
}

// LDRSHReg implements decoder.Visitor LDRSHReg
func (i *Interpreter) LDRSHReg(cond arm.Cond, p, u, w bool, n, d, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("LDRSHT")
	}
	return i.load(accessSignedHalf, p, u, w, n, d, i.reg(m))
}

// LDRSHT implements decoder.Visitor LDRSHT
func (i *Interpreter) LDRSHT(cond arm.Cond) error { return i.unimplementedIf(cond, "LDRSHT") }

// LDRT implements decoder.Visitor LDRT
func (i *Interpreter) LDRT(cond arm.Cond) error { return i.unimplementedIf(cond, "LDRT") }

// STRImm implements decoder.Visitor STRImm
func (i *Interpreter) STRImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm12 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("STRT")
	}
	return i.store(accessWord, p, u, w, n, d, imm12)
}

// STRReg implements decoder.Visitor STRReg
func (i *Interpreter) STRReg(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("STRT")
	}
	offset, _ := arm.ShiftImm(i.reg(m), shift, imm5, i.carry())
	return i.store(accessWord, p, u, w, n, d, offset)
}

// STRBImm implements decoder.Visitor STRBImm
func (i *Interpreter) STRBImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm12 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("STRBT")
	}
	return i.store(accessByte, p, u, w, n, d, imm12)
}

// STRBReg implements decoder.Visitor STRBReg
func (i *Interpreter) STRBReg(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm5 uint32, shift arm.ShiftType, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("STRBT")
	}
	offset, _ := arm.ShiftImm(i.reg(m), shift, imm5, i.carry())
	return i.store(accessByte, p, u, w, n, d, offset)
}

// STRBT implements decoder.Visitor STRBT
func (i *Interpreter) STRBT(cond arm.Cond) error { return i.unimplementedIf(cond, "STRBT") }

// STRDImm implements decoder.Visitor STRDImm
func (i *Interpreter) STRDImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm8 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	if d%2 != 0 || d == arm.LR {
		return i.undefined()
	}
	return i.store(accessDouble, p, u, w, n, d, imm8)
}

// STRDReg implements decoder.Visitor STRDReg
func (i *Interpreter) STRDReg(cond arm.Cond, p, u, w bool, n, d, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	if d%2 != 0 || d == arm.LR {
		return i.undefined()
	}
	return i.store(accessDouble, p, u, w, n, d, i.reg(m))
}

// STRHImm implements decoder.Visitor STRHImm
func (i *Interpreter) STRHImm(cond arm.Cond, p, u, w bool, n, d arm.Reg, imm8 uint32) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("STRHT")
	}
	return i.store(accessHalf, p, u, w, n, d, imm8)
}

// STRHReg implements decoder.Visitor STRHReg
func (i *Interpreter) STRHReg(cond arm.Cond, p, u, w bool, n, d, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	if unprivileged(p, w) {
		return i.unimplemented("STRHT")
	}
	return i.store(accessHalf, p, u, w, n, d, i.reg(m))
}

// STRHT implements decoder.Visitor STRHT
func (i *Interpreter) STRHT(cond arm.Cond) error { return i.unimplementedIf(cond, "STRHT") }

// STRT implements decoder.Visitor STRT
func (i *Interpreter) STRT(cond arm.Cond) error { return i.unimplementedIf(cond, "STRT") }

// multipleAddress returns the lowest address accessed by a load/store multiple and the value
// written back to the base.
func (i *Interpreter) multipleAddress(p, u bool, n arm.Reg, list arm.RegList) (start, wback uint32) {
	rn := i.reg(n)
	size := uint32(bits.OnesCount16(uint16(list))) * 4
	switch {
	case !p && u: // IA
		start, wback = rn, rn+size
	case p && u: // IB
		start, wback = rn+4, rn+size
	case !p && !u: // DA
		start, wback = rn-size+4, rn-size
	default: // DB
		start, wback = rn-size, rn-size
	}
	return start &^ 3, wback
}

// LDM implements decoder.Visitor LDM
func (i *Interpreter) LDM(cond arm.Cond, p, u, w bool, n arm.Reg, list arm.RegList) error {
	if !i.passed(cond) {
		return nil
	}
	if list == 0 {
		return i.unimplemented("LDM with an empty list")
	}
	addr, wback := i.multipleAddress(p, u, n, list)
	var values [arm.NumRegs]uint32
	for r := arm.R0; r <= arm.PC; r++ {
		if !list.Contains(r) {
			continue
		}
		v, err := memory.Read32(i.Memory, addr, i.bigEndian())
		if err != nil {
			return err
		}
		values[r] = v
		addr += 4
	}
	if w && !list.Contains(n) {
		i.State.Regs[n] = wback
	}
	for r := arm.R0; r <= arm.PC; r++ {
		if list.Contains(r) {
			i.loadReg(r, values[r])
		}
	}
	return nil
}

// LDMUsr implements decoder.Visitor LDMUsr
func (i *Interpreter) LDMUsr(cond arm.Cond) error { return i.unimplementedIf(cond, "LDM (user registers)") }

// LDMEret implements decoder.Visitor LDMEret
func (i *Interpreter) LDMEret(cond arm.Cond) error {
	return i.unimplementedIf(cond, "LDM (exception return)")
}

// STM implements decoder.Visitor STM
func (i *Interpreter) STM(cond arm.Cond, p, u, w bool, n arm.Reg, list arm.RegList) error {
	if !i.passed(cond) {
		return nil
	}
	if list == 0 {
		return i.unimplemented("STM with an empty list")
	}
	addr, wback := i.multipleAddress(p, u, n, list)
	for r := arm.R0; r <= arm.PC; r++ {
		if !list.Contains(r) {
			continue
		}
		if err := memory.Write32(i.Memory, addr, i.reg(r), i.bigEndian()); err != nil {
			return err
		}
		addr += 4
	}
	if w {
		i.State.Regs[n] = wback
	}
	return nil
}

// STMUsr implements decoder.Visitor STMUsr
func (i *Interpreter) STMUsr(cond arm.Cond) error { return i.unimplementedIf(cond, "STM (user registers)") }

func (i *Interpreter) loadExclusive(cond arm.Cond, size accessSize, n, d arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	if n == arm.PC || d == arm.PC {
		return i.unimplemented("LDREX with pc")
	}
	if size == accessDouble && (d%2 != 0 || d == arm.LR) {
		return i.undefined()
	}
	addr := i.reg(n)
	if err := i.load(size, true, true, false, n, d, 0); err != nil {
		return err
	}
	i.State.SetExclusive(addr)
	return nil
}

func (i *Interpreter) storeExclusive(cond arm.Cond, size accessSize, n, d, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	if n == arm.PC || d == arm.PC || m == arm.PC {
		return i.unimplemented("STREX with pc")
	}
	if size == accessDouble && (m%2 != 0 || m == arm.LR) {
		return i.undefined()
	}
	addr := i.reg(n)
	if !i.State.IsExclusive(addr) {
		i.State.Regs[d] = 1
		return nil
	}
	if err := i.store(size, true, true, false, n, m, 0); err != nil {
		return err
	}
	i.State.ClearExclusive()
	i.State.Regs[d] = 0
	return nil
}

// CLREX implements decoder.Visitor CLREX
func (i *Interpreter) CLREX() error {
	i.State.ClearExclusive()
	return nil
}

// LDREX implements decoder.Visitor LDREX
func (i *Interpreter) LDREX(cond arm.Cond, n, d arm.Reg) error {
	return i.loadExclusive(cond, accessWord, n, d)
}

// LDREXB implements decoder.Visitor LDREXB
func (i *Interpreter) LDREXB(cond arm.Cond, n, d arm.Reg) error {
	return i.loadExclusive(cond, accessByte, n, d)
}

// LDREXD implements decoder.Visitor LDREXD
func (i *Interpreter) LDREXD(cond arm.Cond, n, d arm.Reg) error {
	return i.loadExclusive(cond, accessDouble, n, d)
}

// LDREXH implements decoder.Visitor LDREXH
func (i *Interpreter) LDREXH(cond arm.Cond, n, d arm.Reg) error {
	return i.loadExclusive(cond, accessHalf, n, d)
}

// STREX implements decoder.Visitor STREX
func (i *Interpreter) STREX(cond arm.Cond, n, d, m arm.Reg) error {
	return i.storeExclusive(cond, accessWord, n, d, m)
}

// STREXB implements decoder.Visitor STREXB
func (i *Interpreter) STREXB(cond arm.Cond, n, d, m arm.Reg) error {
	return i.storeExclusive(cond, accessByte, n, d, m)
}

// STREXD implements decoder.Visitor STREXD
func (i *Interpreter) STREXD(cond arm.Cond, n, d, m arm.Reg) error {
	return i.storeExclusive(cond, accessDouble, n, d, m)
}

// STREXH implements decoder.Visitor STREXH
func (i *Interpreter) STREXH(cond arm.Cond, n, d, m arm.Reg) error {
	return i.storeExclusive(cond, accessHalf, n, d, m)
}

func (i *Interpreter) swap(cond arm.Cond, byteSize bool, n, d, m arm.Reg) error {
	if !i.passed(cond) {
		return nil
	}
	addr, e := i.reg(n), i.bigEndian()
	var old uint32
	var err error
	if byteSize {
		if old, err = memory.Read8(i.Memory, addr); err == nil {
			err = memory.Write8(i.Memory, addr, i.reg(m))
		}
	} else {
		if old, err = memory.Read32(i.Memory, addr, e); err == nil {
			err = memory.Write32(i.Memory, addr, i.reg(m), e)
		}
	}
	if err != nil {
		return err
	}
	i.State.Regs[d] = old
	return nil
}

// SWP implements decoder.Visitor SWP
func (i *Interpreter) SWP(cond arm.Cond, n, d, m arm.Reg) error { return i.swap(cond, false, n, d, m) }

// SWPB implements decoder.Visitor SWPB
func (i *Interpreter) SWPB(cond arm.Cond, n, d, m arm.Reg) error { return i.swap(cond, true, n, d, m) }
