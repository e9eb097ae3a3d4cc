package jit

import (
	"fmt"

	"github.com/armjit/armjit/api"
	"github.com/armjit/armjit/internal/arm"
	"github.com/armjit/armjit/internal/asm"
	"github.com/armjit/armjit/internal/asm/amd64"
	"github.com/armjit/armjit/internal/decoder"
	"github.com/armjit/armjit/internal/memory"
)

// pageSize bounds a block: compilation stops before the first instruction on a different
// guest page than the block start.
const pageSize = 4096

// patchSlotNOP is the placeholder of a jump to another block: a 6-byte NOP, exactly the size
// of the JG rel32 written over it once the target is compiled.
var patchSlotNOP = []byte{0x66, 0x0f, 0x1f, 0x44, 0x00, 0x00}

// blockEndMarker follows the code of every block to make blocks easy to spot in a dump.
var blockEndMarker = []byte{0x90, 0xcc, 0x90}

// compiledBlock is the output of the compiler for one block, not yet placed in the code space.
type compiledBlock struct {
	location Location
	code     []byte
	// instructions is the number of guest instructions in the block.
	instructions uint32
	// jumps are the patch slots in code.
	jumps []jumpSite
}

// jumpSite is a patch slot at offset in the code of a block, to be rewritten into a jump to
// target once target is compiled.
type jumpSite struct {
	offset uint64
	target Location
}

type pendingJump struct {
	slot   asm.Node
	target Location
}

// compiler translates one block of guest code into amd64. It visits each decoded instruction
// and either emits native code for it, or emits a stub which exits to the interpreter and
// ends the block. Embedding decoder.Fallback makes the stub the default for every instruction
// without a native implementation.
type compiler struct {
	decoder.Fallback

	assembler amd64.Assembler
	regs      *registerAllocator
	mem       api.Memory

	start Location
	// loc is the location of the instruction being compiled, and of the next one once it is.
	loc Location
	// pc and size are the address and length of the instruction being compiled.
	pc, size uint32
	// instructions counts the guest instructions compiled so far, including the current one.
	instructions uint32
	// stop is set by instructions which end the block.
	stop bool

	// budgetCheck compares the remaining cycles with the block length, which is only known at
	// the end of the block.
	budgetCheck asm.Node
	jumps       []pendingJump

	currentCond  arm.Cond
	condSkip     asm.Node
	flagsDirtied bool

	// blPrefix is the LR written by a Thumb BL prefix compiled as the previous instruction,
	// valid only while blPrefixValid is set. nextBLPrefix is set by the prefix itself.
	blPrefix, nextBLPrefix           uint32
	blPrefixValid, nextBLPrefixValid bool
}

var _ decoder.Visitor = &compiler{}

func newCompiler(mem api.Memory, start Location) (*compiler, error) {
	a, err := amd64.NewAssembler()
	if err != nil {
		return nil, fmt.Errorf("failed to create a new assembler: %w", err)
	}
	c := &compiler{
		assembler:   a,
		regs:        newRegisterAllocator(a),
		mem:         mem,
		start:       start,
		loc:         start,
		currentCond: arm.CondAL,
	}
	c.Fallback.Default = c.compileInterpret
	return c, nil
}

// compileBlock compiles the block at start. It fails only when the first instruction of the
// block cannot be fetched: undefined and unsupported instructions compile to interpreter stubs
// which report them when executed.
func compileBlock(mem api.Memory, start Location) (*compiledBlock, error) {
	c, err := newCompiler(mem, start)
	if err != nil {
		return nil, err
	}
	return c.compile()
}

func (c *compiler) compile() (*compiledBlock, error) {
	c.compilePreamble()

	for !c.stop {
		if c.instructions > 0 && c.loc.PC/pageSize != c.start.PC/pageSize {
			break
		}
		inst, word, err := c.fetch()
		if err != nil {
			if c.instructions == 0 {
				return nil, err
			}
			// End the block before the unreadable instruction, executing it faults.
			break
		}

		c.pc = c.loc.PC
		c.instructions++
		if inst == nil {
			err = c.compileInterpret("undefined")
		} else {
			err = inst.Visit(c, word)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to compile %#08x at %s: %w", word, c.loc, err)
		}
		c.blPrefix, c.blPrefixValid = c.nextBLPrefix, c.nextBLPrefixValid
		c.nextBLPrefixValid = false
		c.loc.PC = c.pc + c.size
	}
	return c.finish()
}

// finish closes the block after its last instruction and assembles it.
func (c *compiler) finish() (*compiledBlock, error) {
	// Fall through to the next instruction, either because the block reached its end or
	// because the last instruction was a conditional exit.
	if !c.stop || c.currentCond != arm.CondAL {
		c.compileCond(arm.CondAL)
		c.compileJumpToBlock(c.loc)
	}
	c.regs.assertNoLocked()

	c.budgetCheck.AssignDestinationConstant(int64(c.instructions))
	c.assembler.CompileRawBytes(blockEndMarker...)

	code, err := c.assembler.Assemble()
	if err != nil {
		return nil, fmt.Errorf("failed to assemble block at %s: %w", c.start, err)
	}

	ret := &compiledBlock{location: c.start, code: code, instructions: c.instructions}
	for _, j := range c.jumps {
		offset := j.slot.OffsetInBinary()
		if got := code[offset : offset+uint64(len(patchSlotNOP))]; string(got) != string(patchSlotNOP) {
			panic(fmt.Sprintf("BUG: patch slot at %#x is %x", offset, got))
		}
		ret.jumps = append(ret.jumps, jumpSite{offset: offset, target: j.target})
	}
	return ret, nil
}

// fetch reads the instruction at c.loc. inst is nil when the word does not decode.
func (c *compiler) fetch() (inst *decoder.Instruction, word uint32, err error) {
	if c.loc.Thumb {
		c.size = 2
		var half uint16
		if half, err = memory.FetchThumb(c.mem, c.loc.PC); err != nil {
			return
		}
		word = uint32(half)
		inst, _ = decoder.DecodeThumb(half)
	} else {
		c.size = 4
		if word, err = memory.FetchARM(c.mem, c.loc.PC); err != nil {
			return
		}
		inst, _ = decoder.DecodeARM(word)
	}
	return
}

// compilePreamble exits before executing anything when the remaining budget is smaller than
// the block.
func (c *compiler) compilePreamble() {
	c.budgetCheck = c.assembler.CompileMemoryToConst(amd64.CMPQ,
		amd64ReservedRegisterForState, jitStateCyclesRemainingOffset, 0)
	jmpIfEnoughBudget := c.assembler.CompileJump(amd64.JGE)
	c.compileWriteLocation(c.start)
	c.compileExitFromNativeCode(jitCallStatusCodeInsufficientBudget)
	c.assembler.SetJumpTargetOnNext(jmpIfEnoughBudget)
}

// compileInterpret is the fallback for every instruction without a native implementation: it
// exits to the interpreter for this one instruction and ends the block.
func (c *compiler) compileInterpret(string) error {
	c.compileCond(arm.CondAL)
	c.regs.flushEverything()
	c.compileConsumeCycles(c.instructions - 1)
	c.compileWriteLocation(Location{PC: c.pc, Thumb: c.loc.Thumb, BigEndian: c.loc.BigEndian})
	c.compileExitFromNativeCode(jitCallStatusCodeInterpret)
	c.stop = true
	return nil
}

// compileJumpToBlock ends the current path with a jump to the block at target. The jump is a
// patch slot which stays a NOP until target is compiled, in which case the code below it
// returns to the engine with target as the next location.
func (c *compiler) compileJumpToBlock(target Location) {
	c.regs.flushEverything()
	c.compileConsumeCycles(c.instructions)
	c.assembler.CompileMemoryToConst(amd64.CMPQ, amd64ReservedRegisterForState, jitStateCyclesRemainingOffset, 0)
	slot := c.assembler.CompileRawBytes(patchSlotNOP...)
	c.jumps = append(c.jumps, pendingJump{slot: slot, target: target})
	c.compileWriteLocation(target)
	c.compileExitFromNativeCode(jitCallStatusCodeReturned)
}

// compileReturnToDispatch ends the current path when the next location is only known at
// runtime. regs[PC] and t must already be written.
func (c *compiler) compileReturnToDispatch() {
	c.regs.flushEverything()
	c.compileConsumeCycles(c.instructions)
	c.assembler.CompileConstToMemory(amd64.MOVL, int64(boolToUint32(c.loc.BigEndian)),
		amd64ReservedRegisterForState, jitStateEOffset)
	c.compileExitFromNativeCode(jitCallStatusCodeReturned)
}

func (c *compiler) compileConsumeCycles(n uint32) {
	if n == 0 {
		return
	}
	c.assembler.CompileConstToMemory(amd64.SUBQ, int64(n), amd64ReservedRegisterForState, jitStateCyclesRemainingOffset)
}

func (c *compiler) compileWriteLocation(l Location) {
	c.assembler.CompileConstToMemory(amd64.MOVL, int64(l.PC), amd64ReservedRegisterForState, regOffset(arm.PC))
	c.assembler.CompileConstToMemory(amd64.MOVL, int64(boolToUint32(l.Thumb)), amd64ReservedRegisterForState, jitStateTOffset)
	c.assembler.CompileConstToMemory(amd64.MOVL, int64(boolToUint32(l.BigEndian)), amd64ReservedRegisterForState, jitStateEOffset)
}

func (c *compiler) compileExitFromNativeCode(status jitCallStatusCode) {
	c.assembler.CompileConstToMemory(amd64.MOVL, int64(status), amd64ReservedRegisterForState, jitStateStatusCodeOffset)
	c.assembler.CompileStandAlone(amd64.RET)
}

// compileCallBuiltinFunction exits to Go to perform a memory access on guest register reg at
// the address in addressRegister, and resumes right after once it is done. All guest
// registers must be flushed: Go reads and writes them in jitState, and every host register
// holds garbage when the code resumes.
func (c *compiler) compileCallBuiltinFunction(f builtinFunction, addressRegister asm.Register, reg arm.Reg) {
	a := c.assembler
	a.CompileRegisterToMemory(amd64.MOVL, addressRegister, amd64ReservedRegisterForState, jitStateBuiltinAddressOffset)
	a.CompileConstToMemory(amd64.MOVL, int64(reg), amd64ReservedRegisterForState, jitStateBuiltinRegisterOffset)
	a.CompileConstToMemory(amd64.MOVL, int64(f), amd64ReservedRegisterForState, jitStateBuiltinIDOffset)
	a.CompileConstToMemory(amd64.MOVL, int64(c.instructions-1), amd64ReservedRegisterForState, jitStateBuiltinRetiredOffset)
	c.compileWriteLocation(Location{PC: c.pc, Thumb: c.loc.Thumb, BigEndian: c.loc.BigEndian})

	// The continuation is the instruction right after the RET below.
	a.CompileReadInstructionAddress(addressRegister, amd64.RET)
	a.CompileRegisterToMemory(amd64.MOVQ, addressRegister, amd64ReservedRegisterForState, jitStateContinuationAddressOffset)
	c.compileExitFromNativeCode(jitCallStatusCodeCallBuiltInFunction)
}

// compileConstToOperand moves v into o.
func (c *compiler) compileConstToOperand(v uint32, o operand) {
	if o.onRegister() {
		c.assembler.CompileConstToRegister(amd64.MOVL, int64(v), o.register)
	} else {
		c.assembler.CompileConstToMemory(amd64.MOVL, int64(v), amd64ReservedRegisterForState, o.offset)
	}
}

// compileConstToFlag writes a flag known at compile time.
func (c *compiler) compileConstToFlag(offset int64, v bool) {
	c.assembler.CompileConstToMemory(amd64.MOVL, int64(boolToUint32(v)), amd64ReservedRegisterForState, offset)
}

// compileSetFlag writes a flag from the host flags with a SETcc.
func (c *compiler) compileSetFlag(setcc asm.Instruction, offset int64) {
	c.assembler.CompileNoneToMemory(setcc, amd64ReservedRegisterForState, offset)
}

// pcValue is the value PC reads as in the instruction being compiled.
func (c *compiler) pcValue() uint32 {
	if c.loc.Thumb {
		return c.pc + 4
	}
	return c.pc + 8
}
