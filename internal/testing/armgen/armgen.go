// Package armgen generates pseudo random guest programs for differential tests between the
// interpreter and the recompiler.
//
// Note: "pseudo" here means the determinism of the generated results: the same seed returns
// exactly the same instructions for the same code base.
package armgen

import (
	"fmt"
	"math/rand"
)

// BranchToSelfARM is "b ." in ARM state. Programs end with it so running past the generated
// instructions spins in place.
const BranchToSelfARM uint32 = 0xeafffffe

// BranchToSelfThumb is "b ." in Thumb state.
const BranchToSelfThumb uint16 = 0xe7fe

// EnterThumbARM is "blx #4" placed at address zero, branching to Thumb code at address 4.
const EnterThumbARM uint32 = 0xfaffffff

// InitialCPSR is user mode with interrupts masked and every flag clear.
const InitialCPSR uint32 = 0x1d0

// Pattern is a bit-pattern string compiled to the value and mask of its fixed bits. Every
// character other than '0' and '1' is a bit left to the generator.
type Pattern struct {
	Bits, Mask uint32
}

// Parse compiles a 32 or 16 character pattern.
func Parse(s string) (Pattern, error) {
	if len(s) != 32 && len(s) != 16 {
		return Pattern{}, fmt.Errorf("pattern %q has %d bits", s, len(s))
	}
	var p Pattern
	for i := 0; i < len(s); i++ {
		bit := uint32(1) << (len(s) - 1 - i)
		switch s[i] {
		case '0':
			p.Mask |= bit
		case '1':
			p.Bits |= bit
			p.Mask |= bit
		}
	}
	return p, nil
}

// MustParse is Parse which panics on error.
func MustParse(s string) Pattern {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Fill returns the instruction with the free bits taken from randoms.
func (p Pattern) Fill(randoms uint32) uint32 {
	return p.Bits | randoms&^p.Mask
}

// Matches returns true when the fixed bits of inst are the ones of p.
func (p Pattern) Matches(inst uint32) bool {
	return inst&p.Mask == p.Bits
}

var armDataProcessing = parseAll(
	"cccc0010101Snnnnddddrrrrvvvvvvvv", // ADC
	"cccc0000101Snnnnddddvvvvvrr0mmmm",
	"cccc0000101Snnnnddddssss0rr1mmmm",
	"cccc0010100Snnnnddddrrrrvvvvvvvv", // ADD
	"cccc0000100Snnnnddddvvvvvrr0mmmm",
	"cccc0000100Snnnnddddssss0rr1mmmm",
	"cccc0010000Snnnnddddrrrrvvvvvvvv", // AND
	"cccc0000000Snnnnddddvvvvvrr0mmmm",
	"cccc0000000Snnnnddddssss0rr1mmmm",
	"cccc0011110Snnnnddddrrrrvvvvvvvv", // BIC
	"cccc0001110Snnnnddddvvvvvrr0mmmm",
	"cccc0001110Snnnnddddssss0rr1mmmm",
	"cccc00110111nnnn0000rrrrvvvvvvvv", // CMN
	"cccc00010111nnnn0000vvvvvrr0mmmm",
	"cccc00010111nnnn0000ssss0rr1mmmm",
	"cccc00110101nnnn0000rrrrvvvvvvvv", // CMP
	"cccc00010101nnnn0000vvvvvrr0mmmm",
	"cccc00010101nnnn0000ssss0rr1mmmm",
	"cccc0010001Snnnnddddrrrrvvvvvvvv", // EOR
	"cccc0000001Snnnnddddvvvvvrr0mmmm",
	"cccc0000001Snnnnddddssss0rr1mmmm",
	"cccc0011101S0000ddddrrrrvvvvvvvv", // MOV
	"cccc0001101S0000ddddvvvvvrr0mmmm",
	"cccc0001101S0000ddddssss0rr1mmmm",
	"cccc0011111S0000ddddrrrrvvvvvvvv", // MVN
	"cccc0001111S0000ddddvvvvvrr0mmmm",
	"cccc0001111S0000ddddssss0rr1mmmm",
	"cccc0011100Snnnnddddrrrrvvvvvvvv", // ORR
	"cccc0001100Snnnnddddvvvvvrr0mmmm",
	"cccc0001100Snnnnddddssss0rr1mmmm",
	"cccc0010011Snnnnddddrrrrvvvvvvvv", // RSB
	"cccc0000011Snnnnddddvvvvvrr0mmmm",
	"cccc0000011Snnnnddddssss0rr1mmmm",
	"cccc0010111Snnnnddddrrrrvvvvvvvv", // RSC
	"cccc0000111Snnnnddddvvvvvrr0mmmm",
	"cccc0000111Snnnnddddssss0rr1mmmm",
	"cccc0010110Snnnnddddrrrrvvvvvvvv", // SBC
	"cccc0000110Snnnnddddvvvvvrr0mmmm",
	"cccc0000110Snnnnddddssss0rr1mmmm",
	"cccc0010010Snnnnddddrrrrvvvvvvvv", // SUB
	"cccc0000010Snnnnddddvvvvvrr0mmmm",
	"cccc0000010Snnnnddddssss0rr1mmmm",
	"cccc00110011nnnn0000rrrrvvvvvvvv", // TEQ
	"cccc00010011nnnn0000vvvvvrr0mmmm",
	"cccc00010011nnnn0000ssss0rr1mmmm",
	"cccc00110001nnnn0000rrrrvvvvvvvv", // TST
	"cccc00010001nnnn0000vvvvvrr0mmmm",
	"cccc00010001nnnn0000ssss0rr1mmmm",
)

var armLoadStore = parseAll(
	"cccc010pu0w1nnnnddddvvvvvvvvvvvv", // LDR (imm)
	"cccc011pu0w1nnnnddddvvvvvrr0mmmm", // LDR (reg)
	"cccc010pu1w1nnnnddddvvvvvvvvvvvv", // LDRB (imm)
	"cccc011pu1w1nnnnddddvvvvvrr0mmmm", // LDRB (reg)
	"cccc010pu0w0nnnnddddvvvvvvvvvvvv", // STR (imm)
	"cccc011pu0w0nnnnddddvvvvvrr0mmmm", // STR (reg)
	"cccc010pu1w0nnnnddddvvvvvvvvvvvv", // STRB (imm)
	"cccc011pu1w0nnnnddddvvvvvrr0mmmm", // STRB (reg)
	"cccc000pu1w1nnnnddddvvvv1011vvvv", // LDRH (imm)
	"cccc000pu0w1nnnndddd00001011mmmm", // LDRH (reg)
	"cccc000pu1w1nnnnddddvvvv1101vvvv", // LDRSB (imm)
	"cccc000pu0w1nnnndddd00001101mmmm", // LDRSB (reg)
	"cccc000pu1w1nnnnddddvvvv1111vvvv", // LDRSH (imm)
	"cccc000pu0w1nnnndddd00001111mmmm", // LDRSH (reg)
	"cccc000pu1w0nnnnddddvvvv1011vvvv", // STRH (imm)
	"cccc000pu0w0nnnndddd00001011mmmm", // STRH (reg)
	"1111000100000001000000e000000000", // SETEND
)

// armOffsetAccess are the pre-indexed forms without writeback of armLoadStore.
var armOffsetAccess = parseAll(
	"cccc0101u001nnnnddddvvvvvvvvvvvv", // LDR (imm)
	"cccc0101u101nnnnddddvvvvvvvvvvvv", // LDRB (imm)
	"cccc0101u000nnnnddddvvvvvvvvvvvv", // STR (imm)
	"cccc0101u100nnnnddddvvvvvvvvvvvv", // STRB (imm)
	"cccc0001u101nnnnddddvvvv1011vvvv", // LDRH (imm)
	"cccc0001u101nnnnddddvvvv1101vvvv", // LDRSB (imm)
	"cccc0001u101nnnnddddvvvv1111vvvv", // LDRSH (imm)
	"cccc0001u100nnnnddddvvvv1011vvvv", // STRH (imm)
)

var (
	armLoadExclusive  = MustParse("cccc00011001nnnndddd111110011111")
	armStoreExclusive = MustParse("cccc00011000nnnndddd11111001mmmm")
)

var armBranch = parseAll(
	"1111101hvvvvvvvvvvvvvvvvvvvvvvvv", // BLX (imm)
	"cccc000100101111111111110011mmmm", // BLX (reg)
	"cccc1010vvvvvvvvvvvvvvvvvvvvvvvv", // B
	"cccc1011vvvvvvvvvvvvvvvvvvvvvvvv", // BL
	"cccc000100101111111111110001mmmm", // BX
	"cccc000100101111111111110010mmmm", // BXJ
)

var thumb = parseAll(
	"00000xxxxxxxxxxx", // LSL (imm)
	"00001xxxxxxxxxxx", // LSR (imm)
	"00010xxxxxxxxxxx", // ASR (imm)
	"000110oxxxxxxxxx", // ADD/SUB (reg)
	"000111oxxxxxxxxx", // ADD/SUB (imm)
	"001ooxxxxxxxxxxx", // ADD/SUB/CMP/MOV (imm)
	"010000ooooxxxxxx", // data processing
	"010001000hxxxxxx", // ADD (high registers)
	"010001010hxxxxxx", // CMP (high registers)
	"01000101h0xxxxxx", // CMP (high registers)
	"010001100hxxxxxx", // MOV (high registers)
	"10110000oxxxxxxx", // adjust SP
	"10110010ooxxxxxx", // SXT/UXT
	"1011101000xxxxxx", // REV
	"1011101001xxxxxx", // REV16
	"1011101011xxxxxx", // REVSH
	"01001xxxxxxxxxxx", // LDR (literal)
	"0101oooxxxxxxxxx", // LDR/STR (reg)
	"011xxxxxxxxxxxxx", // LDR(B)/STR(B) (imm)
	"1000xxxxxxxxxxxx", // LDRH/STRH (imm)
	"1001xxxxxxxxxxxx", // LDR/STR (SP)
	"101101100101x000", // SETEND
)

var thumbBranch = parseAll(
	"01000111xxxxx000", // BX/BLX
	"1010oxxxxxxxxxxx", // ADD to PC/SP
	"11100xxxxxxxxxxx", // B
	"01000100h0xxxxxx", // ADD (high registers)
	"01000110h0xxxxxx", // MOV (high registers)
	"1101ccccxxxxxxxx", // B<cond>, cond from 0b0000 to 0b1101
)

func parseAll(patterns ...string) []Pattern {
	ret := make([]Pattern, len(patterns))
	for i, s := range patterns {
		ret[i] = MustParse(s)
	}
	return ret
}

// Generator produces random instructions. The zero value is not usable, see New.
type Generator struct {
	r *rand.Rand
}

// New returns a Generator seeded with seed.
func New(seed int64) *Generator {
	return &Generator{r: rand.New(rand.NewSource(seed))}
}

// Registers returns random values for R0 to R14.
func (g *Generator) Registers() (regs [15]uint32) {
	for i := range regs {
		regs[i] = g.r.Uint32()
	}
	return
}

// between returns a random value in [lo, hi].
func (g *Generator) between(lo, hi uint32) uint32 {
	return lo + uint32(g.r.Int63n(int64(hi-lo)+1))
}

// cond is AL except for one instruction in 25 which gets any other condition but NV.
func (g *Generator) cond() uint32 {
	if g.between(1, 25) == 1 {
		return g.between(0x0, 0xd)
	}
	return 0xe
}

// ARMDataProcessing returns an ARM data processing instruction which never writes PC. Rn may
// be PC.
func (g *Generator) ARMDataProcessing() uint32 {
	p := armDataProcessing[g.r.Intn(len(armDataProcessing))]
	rn, rd := g.between(0, 15), g.between(0, 14)
	s, operand := g.between(0, 1), g.between(0, 0xfff)
	return p.Fill(operand | rd<<12 | rn<<16 | s<<20 | g.cond()<<28)
}

// ARMLoadStore returns an ARM single register load or store, or SETEND. No register is PC.
func (g *Generator) ARMLoadStore() uint32 {
	p := armLoadStore[g.r.Intn(len(armLoadStore))]
	rn, rd, rm := g.between(0, 14), g.between(0, 14), g.between(0, 14)
	var w uint32
	pre := g.between(0, 1)
	if pre == 1 {
		w = g.between(0, 1)
	}
	u, imm := g.between(0, 1), g.between(0, 0xff)
	return p.Fill(rm | imm<<4 | rd<<12 | rn<<16 | w<<21 | u<<23 | pre<<24 | g.cond()<<28)
}

// ARMMemoryAccess returns a load or store at an immediate offset from base, or one in four
// times an LDREX or STREX at exclusiveBase. Neither base is written back. The data registers
// are in R0 to R10.
func (g *Generator) ARMMemoryAccess(base, exclusiveBase uint32) uint32 {
	rd := g.between(0, 10)
	random := g.r.Uint32()&^0xf00ff000 | g.cond()<<28 | rd<<12
	if g.between(0, 3) != 0 {
		p := armOffsetAccess[g.r.Intn(len(armOffsetAccess))]
		return p.Fill(random | base<<16)
	}
	if g.between(0, 1) == 0 {
		return armLoadExclusive.Fill(random | exclusiveBase<<16)
	}
	// STREX with the status register also the data register is unpredictable.
	rm := (rd + g.between(1, 10)) % 11
	return armStoreExclusive.Fill(random&^0xf | exclusiveBase<<16 | rm)
}

// ARMBranch returns an ARM branch with any condition but NV.
func (g *Generator) ARMBranch() uint32 {
	p := armBranch[g.r.Intn(len(armBranch))]
	cond, random, rm := g.between(0, 0xe), g.between(0, 0xffffff), g.between(0, 14)
	return p.Fill(cond<<28 | random<<4 | rm)
}

// Thumb returns a Thumb instruction which does not change PC.
func (g *Generator) Thumb() uint16 {
	p := thumb[g.r.Intn(len(thumb))]
	return uint16(p.Fill(g.between(0, 0xffff)))
}

// ThumbBranch returns a Thumb instruction which may write PC.
func (g *Generator) ThumbBranch() uint16 {
	p := thumbBranch[g.r.Intn(len(thumbBranch))]
	random := g.between(0, 0xffff)
	if p.Mask == 0xf000 { // B<cond>
		random = random&^0x0f00 | g.between(0, 0xd)<<8
	}
	return uint16(p.Fill(random))
}

// ARMProgram returns count instructions from next followed by BranchToSelfARM.
func ARMProgram(count int, next func() uint32) []uint32 {
	ret := make([]uint32, 0, count+1)
	for i := 0; i < count; i++ {
		ret = append(ret, next())
	}
	return append(ret, BranchToSelfARM)
}

// ThumbProgram returns count instructions from next followed by BranchToSelfThumb.
func ThumbProgram(count int, next func() uint16) []uint16 {
	ret := make([]uint16, 0, count+1)
	for i := 0; i < count; i++ {
		ret = append(ret, next())
	}
	return append(ret, BranchToSelfThumb)
}
