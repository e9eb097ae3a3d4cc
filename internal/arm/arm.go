// Package arm models the guest ARMv6K architecture: registers, condition codes,
// the status register layout and the arithmetic helpers shared by the
// interpreter and the recompiler.
package arm

import "fmt"

// Reg is the index of a guest general purpose register.
type Reg uint8

const (
	R0 Reg = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	SP
	LR
	PC
)

// NumRegs is the number of guest general purpose registers, including PC.
const NumRegs = 16

// String implements fmt.Stringer.
func (r Reg) String() string {
	switch r {
	case SP:
		return "sp"
	case LR:
		return "lr"
	case PC:
		return "pc"
	}
	if r < NumRegs {
		return fmt.Sprintf("r%d", r)
	}
	return fmt.Sprintf("Reg(%d)", uint8(r))
}

// RegList is the register list bitmap of the load/store multiple instructions.
type RegList uint16

// Contains returns true if r is in the list.
func (l RegList) Contains(r Reg) bool {
	return l&(1<<r) != 0
}

// Cond is the 4-bit condition field of an instruction.
type Cond uint8

const (
	CondEQ Cond = iota
	CondNE
	CondCS
	CondCC
	CondMI
	CondPL
	CondVS
	CondVC
	CondHI
	CondLS
	CondGE
	CondLT
	CondGT
	CondLE
	CondAL
	// CondNV is the "never" encoding. On ARMv5 and later it marks unconditional instructions.
	CondNV
)

var condNames = [...]string{"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc", "hi", "ls", "ge", "lt", "gt", "le", "al", "nv"}

// String implements fmt.Stringer.
func (c Cond) String() string {
	if int(c) < len(condNames) {
		return condNames[c]
	}
	return fmt.Sprintf("Cond(%d)", uint8(c))
}

// Passed returns true when the condition holds for the given flag values.
// CondAL and CondNV always pass.
func (c Cond) Passed(n, z, carry, v bool) bool {
	switch c {
	case CondEQ:
		return z
	case CondNE:
		return !z
	case CondCS:
		return carry
	case CondCC:
		return !carry
	case CondMI:
		return n
	case CondPL:
		return !n
	case CondVS:
		return v
	case CondVC:
		return !v
	case CondHI:
		return carry && !z
	case CondLS:
		return !carry || z
	case CondGE:
		return n == v
	case CondLT:
		return n != v
	case CondGT:
		return !z && n == v
	case CondLE:
		return z || n != v
	default:
		return true
	}
}

// ShiftType is the shift applied to the second operand of data processing and
// load/store instructions.
type ShiftType uint8

const (
	LSL ShiftType = iota
	LSR
	ASR
	ROR
)

var shiftNames = [...]string{"lsl", "lsr", "asr", "ror"}

// String implements fmt.Stringer.
func (s ShiftType) String() string {
	return shiftNames[s&3]
}

// SignExtendRotation is the rotation field of the extend instructions, in units of 8 bits.
type SignExtendRotation uint8

// Amount returns the rotation in bits.
func (r SignExtendRotation) Amount() uint32 {
	return uint32(r&3) * 8
}
