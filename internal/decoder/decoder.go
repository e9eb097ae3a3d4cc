// Package decoder matches raw ARM and Thumb instruction words against bit-pattern tables and
// dispatches each match to exactly one Visitor method.
//
// A pattern is a string with one character per instruction bit, most significant first. '0' and
// '1' are fixed bits, '-' is a don't-care bit, and any other character names an operand field.
// Every occurrence of the same character belongs to the same field, so a field may be split over
// non-adjacent bit ranges; its value is the concatenation of those bits from high to low.
package decoder

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/armjit/armjit/internal/arm"
)

// ErrUndefinedInstruction is returned when no table entry matches an instruction word, and by
// executors for encodings that are architecturally undefined.
var ErrUndefinedInstruction = errors.New("undefined instruction")

// maxFields is the largest number of distinct fields in any pattern.
const maxFields = 9

// fields holds the operand values extracted from one instruction word, in order of first
// appearance in the pattern.
type fields [maxFields]uint32

func (f *fields) cond(i int) arm.Cond { return arm.Cond(f[i]) }

func (f *fields) bit(i int) bool { return f[i] != 0 }

func (f *fields) reg(i int) arm.Reg { return arm.Reg(f[i]) }

func (f *fields) shift(i int) arm.ShiftType { return arm.ShiftType(f[i]) }

func (f *fields) list(i int) arm.RegList { return arm.RegList(f[i]) }

func (f *fields) rotation(i int) arm.SignExtendRotation { return arm.SignExtendRotation(f[i]) }

// matcher is the compiled form of a pattern.
type matcher struct {
	mask, expected uint32
	// fieldMasks are the bits of each field, in order of first appearance.
	fieldMasks []uint32
}

func compilePattern(pattern string, width int) matcher {
	if len(pattern) != width {
		panic(fmt.Sprintf("BUG: pattern %q must be %d characters", pattern, width))
	}
	var m matcher
	index := map[byte]int{}
	for i := 0; i < width; i++ {
		bit := uint32(1) << (width - 1 - i)
		switch c := pattern[i]; c {
		case '0':
			m.mask |= bit
		case '1':
			m.mask |= bit
			m.expected |= bit
		case '-':
		default:
			idx, ok := index[c]
			if !ok {
				idx = len(m.fieldMasks)
				index[c] = idx
				m.fieldMasks = append(m.fieldMasks, 0)
			}
			m.fieldMasks[idx] |= bit
		}
	}
	if len(m.fieldMasks) > maxFields {
		panic(fmt.Sprintf("BUG: pattern %q has more than %d fields", pattern, maxFields))
	}
	return m
}

func (m *matcher) match(inst uint32) bool {
	return inst&m.mask == m.expected
}

// extract gathers the bits of inst selected by mask into the low bits of the result, keeping
// their order.
func extract(inst, mask uint32) uint32 {
	shift := bits.TrailingZeros32(mask)
	if contiguous := mask >> shift; contiguous&(contiguous+1) == 0 {
		return (inst & mask) >> shift
	}
	var v uint32
	for bit := uint32(1) << 31; bit != 0; bit >>= 1 {
		if mask&bit != 0 {
			v <<= 1
			if inst&bit != 0 {
				v |= 1
			}
		}
	}
	return v
}

// Instruction is one entry of a decode table.
type Instruction struct {
	// Name is the mnemonic with its encoding variant, e.g. "LDR (imm)".
	Name string
	// Pattern is the bit pattern the entry was built from.
	Pattern string

	matcher
	visit func(v Visitor, f *fields) error
}

func newARMInstruction(name, pattern string, visit func(v Visitor, f *fields) error) *Instruction {
	return &Instruction{Name: name, Pattern: pattern, matcher: compilePattern(pattern, 32), visit: visit}
}

func newThumbInstruction(name, pattern string, visit func(v Visitor, f *fields) error) *Instruction {
	return &Instruction{Name: name, Pattern: pattern, matcher: compilePattern(pattern, 16), visit: visit}
}

// Match returns true if inst has the fixed bits of this entry.
func (i *Instruction) Match(inst uint32) bool {
	return i.match(inst)
}

// Fields returns the operand fields of inst in order of first appearance in the pattern.
func (i *Instruction) Fields(inst uint32) []uint32 {
	ret := make([]uint32, len(i.fieldMasks))
	for j, mask := range i.fieldMasks {
		ret[j] = extract(inst, mask)
	}
	return ret
}

// Visit extracts the operands of inst and calls the Visitor method of this entry.
func (i *Instruction) Visit(v Visitor, inst uint32) error {
	var f fields
	for j, mask := range i.fieldMasks {
		f[j] = extract(inst, mask)
	}
	return i.visit(v, &f)
}

// DecodeARM returns the first entry of the ARM table matching inst.
func DecodeARM(inst uint32) (*Instruction, error) {
	for _, i := range armTable {
		if i.match(inst) {
			return i, nil
		}
	}
	return nil, fmt.Errorf("%w: arm %#08x", ErrUndefinedInstruction, inst)
}

// DecodeThumb returns the matching entry of the Thumb table. The table lists broad patterns
// before the narrower ones they contain, so it is searched from the end.
func DecodeThumb(inst uint16) (*Instruction, error) {
	for j := len(thumbTable) - 1; j >= 0; j-- {
		if i := thumbTable[j]; i.match(uint32(inst)) {
			return i, nil
		}
	}
	return nil, fmt.Errorf("%w: thumb %#04x", ErrUndefinedInstruction, inst)
}
