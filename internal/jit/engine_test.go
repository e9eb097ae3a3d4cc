package jit

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/armjit/armjit/internal/arm"
	"github.com/armjit/armjit/internal/interpreter"
	"github.com/armjit/armjit/internal/memory"
	"github.com/armjit/armjit/internal/platform"
	"github.com/armjit/armjit/internal/testing/armgen"
)

// requireSupportedOSArch is duplicated also in the platform package to ensure no cyclic dependency.
func requireSupportedOSArch(t *testing.T) {
	if !platform.CompilerSupported() {
		t.Skip()
	}
}

const testCodeCacheSize = 1 << 20

func newTestEngine(t *testing.T, mem *memory.Flat, codeCacheSize int) *Engine {
	interp := interpreter.New(&arm.State{CPSR: arm.ModeUser}, mem)
	e, err := NewEngine(interp, codeCacheSize, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, e.Close()) })
	return e
}

func TestEngine_Run(t *testing.T) {
	requireSupportedOSArch(t)

	e := newTestEngine(t, newTestMemory(t, 0x100, 0,
		0xe3a00005, // mov r0, #5
		0xe2801003, // add r1, r0, #3
		0xeafffffe, // b .
	), testCodeCacheSize)

	// The budget is smaller than the block: the interpreter executes one instruction at a time.
	executed, err := e.Run(2)
	require.NoError(t, err)
	require.Equal(t, uint64(2), executed)
	require.Equal(t, uint32(5), e.arch.Regs[arm.R0])
	require.Equal(t, uint32(8), e.arch.Regs[arm.R1])
	require.Equal(t, uint32(8), e.arch.Regs[arm.PC])

	// The branch to itself is linked to its own entry and runs until the budget is exhausted.
	executed, err = e.Run(1000)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), executed)
	require.Equal(t, uint32(8), e.arch.Regs[arm.PC])
	require.Zero(t, e.cache.pendingPatches(Location{PC: 8}))

	blocks := e.Blocks()
	require.Equal(t, 3, len(blocks))
	for i, pc := range []uint32{0, 4, 8} {
		require.Equal(t, Location{PC: pc}, blocks[i].Location)
		require.Equal(t, blocks[i].Size, len(e.Code(blocks[i].Location)))
	}
	require.Nil(t, e.Code(Location{PC: 8, Thumb: true}))
	used, capacity := e.CodeCacheUsage()
	require.True(t, used > 0)
	require.Equal(t, testCodeCacheSize, capacity)
}

func TestEngine_flags(t *testing.T) {
	requireSupportedOSArch(t)

	e := newTestEngine(t, newTestMemory(t, 0x100, 0,
		0xe3a00001, // mov r0, #1
		0xe2500001, // subs r0, r0, #1
		0x03a01007, // moveq r1, #7
		0x13a02007, // movne r2, #7
		0xe2900000, // adds r0, r0, #0
		0x43a03007, // movmi r3, #7
		0xe3e04000, // mvn r4, #0
		0xe2944001, // adds r4, r4, #1
		0x23a05007, // movcs r5, #7
		0xeafffffe, // b .
	), testCodeCacheSize)

	executed, err := e.Run(10)
	require.NoError(t, err)
	require.Equal(t, uint64(10), executed)
	require.Equal(t, [6]uint32{0, 7, 0, 0, 0, 7}, [6]uint32(e.arch.Regs[:6]))
	n, z, c, v := e.arch.Flags()
	require.Equal(t, [4]bool{false, true, true, false}, [4]bool{n, z, c, v})
}

// TestEngine_conditions runs every condition code against every combination of flags.
func TestEngine_conditions(t *testing.T) {
	requireSupportedOSArch(t)

	e := newTestEngine(t, memory.NewFlat(0, 0x100), testCodeCacheSize)
	for cond := arm.CondEQ; cond <= arm.CondNV; cond++ {
		// A block made of "mov<cond> r0, #1" at address zero.
		c, err := newCompiler(e.interp.Memory, Location{})
		require.NoError(t, err)
		c.compilePreamble()
		c.instructions, c.loc.PC = 1, 4
		c.compileCond(cond)
		c.compileConstToOperand(1, c.regs.lockForWrite(arm.R0))
		c.regs.unlock(arm.R0)
		cb, err := c.finish()
		require.NoError(t, err)

		e.cache.clear(false)
		b, err := e.cache.insert(cb)
		require.NoError(t, err)

		for nzcv := uint32(0); nzcv < 16; nzcv++ {
			n, z, carry, v := nzcv&8 != 0, nzcv&4 != 0, nzcv&2 != 0, nzcv&1 != 0
			e.state = jitState{n: nzcv >> 3 & 1, z: nzcv >> 2 & 1, c: nzcv >> 1 & 1, v: nzcv & 1, cyclesRemaining: 1}
			require.NoError(t, e.exec(e.cache.space.address(b.offset)))

			name := fmt.Sprintf("%s with nzcv=%04b", cond, nzcv)
			require.Equal(t, jitCallStatusCodeReturned, e.state.statusCode, name)
			require.Equal(t, Location{PC: 4}, e.state.location(), name)
			require.Zero(t, e.state.cyclesRemaining, name)
			require.Equal(t, boolToUint32(cond.Passed(n, z, carry, v)), e.state.regs[arm.R0], name)
			require.Equal(t, [4]uint32{nzcv >> 3 & 1, nzcv >> 2 & 1, nzcv >> 1 & 1, nzcv & 1},
				[4]uint32{e.state.n, e.state.z, e.state.c, e.state.v}, name)
		}
	}
}

func TestEngine_linking(t *testing.T) {
	requireSupportedOSArch(t)

	e := newTestEngine(t, newTestMemory(t, 0x100, 0,
		0xe2800001, // 0x00: add r0, r0, #1
		0xea000001, // 0x04: b 0x10
		0, 0,
		0xe2800002, // 0x10: add r0, r0, #2
		0xea000001, // 0x14: b 0x20
		0, 0,
		0xe2800004, // 0x20: add r0, r0, #4
		0xeafffffe, // 0x24: b .
	), testCodeCacheSize)

	// Compile the blocks in reverse order of execution, so that each one is linked when its
	// target is already there.
	for _, pc := range []uint32{0x20, 0x10, 0} {
		e.arch.Regs[arm.PC] = pc
		executed, err := e.Run(2)
		require.NoError(t, err)
		require.Equal(t, uint64(2), executed)
	}
	for _, pc := range []uint32{0, 0x10} {
		require.True(t, bytes.Contains(e.Code(Location{PC: pc}), jgRel32[:]))
	}
	require.Equal(t, 1, e.cache.pendingPatches(Location{PC: 0x24}))

	e.arch.Regs[arm.R0], e.arch.Regs[arm.PC] = 0, 0
	executed, err := e.Run(6)
	require.NoError(t, err)
	require.Equal(t, uint64(6), executed)
	require.Equal(t, uint32(7), e.arch.Regs[arm.R0])
	require.Equal(t, uint32(0x24), e.arch.Regs[arm.PC])

	executed, err = e.Run(5)
	require.NoError(t, err)
	require.Equal(t, uint64(5), executed)
	require.Zero(t, e.cache.pendingPatches(Location{PC: 0x24}))
	require.Equal(t, 4, len(e.Blocks()))
}

func TestEngine_clearCache(t *testing.T) {
	requireSupportedOSArch(t)

	e := newTestEngine(t, newTestMemory(t, 0x100, 0,
		0xe2800001, // add r0, r0, #1
		0xeafffffd, // b 0
	), testCodeCacheSize)

	run := func() {
		e.arch.Regs[arm.R0], e.arch.Regs[arm.PC] = 0, 0
		executed, err := e.Run(20)
		require.NoError(t, err)
		require.Equal(t, uint64(20), executed)
		require.Equal(t, uint32(10), e.arch.Regs[arm.R0])
	}

	run()
	require.Equal(t, 1, len(e.Blocks()))
	e.ClearCache()
	require.Zero(t, len(e.Blocks()))
	used, _ := e.CodeCacheUsage()
	require.Zero(t, used)

	run()
	require.Equal(t, 1, len(e.Blocks()))
	e.FastClearCache()
	require.Zero(t, len(e.Blocks()))
	run()
}

func TestEngine_smallCodeCache(t *testing.T) {
	requireSupportedOSArch(t)

	// The blocks do not fit together: the cache is cleared whenever it is full, and a block
	// which does not fit at all is left to the interpreter.
	e := newTestEngine(t, newTestMemory(t, 0x100, 0,
		0xe2800001, // 0x00: add r0, r0, #1
		0xea000001, // 0x04: b 0x10
		0, 0,
		0xe2800002, // 0x10: add r0, r0, #2
		0xea000001, // 0x14: b 0x20
		0, 0,
		0xe2800004, // 0x20: add r0, r0, #4
		0xeafffff5, // 0x24: b 0
	), 256)

	executed, err := e.Run(60)
	require.NoError(t, err)
	require.Equal(t, uint64(60), executed)
	require.Equal(t, uint32(70), e.arch.Regs[arm.R0])
	require.Equal(t, uint32(0), e.arch.Regs[arm.PC])
	used, capacity := e.CodeCacheUsage()
	require.True(t, used <= capacity)
}

func TestEngine_exclusive(t *testing.T) {
	requireSupportedOSArch(t)

	mem := newTestMemory(t, 0x100, 0,
		0xe1901f9f, // ldrex r1, [r0]
		0xe2811001, // add r1, r1, #1
		0xe1802f91, // strex r2, r1, [r0]
		0xe1803f91, // strex r3, r1, [r0]
		0xeafffffe, // b .
	)
	require.NoError(t, memory.Write32(mem, 0x84, 41, false))
	e := newTestEngine(t, mem, testCodeCacheSize)
	e.arch.Regs[arm.R0] = 0x84
	e.arch.Regs[arm.R2], e.arch.Regs[arm.R3] = 0xff, 0xff

	executed, err := e.Run(5)
	require.NoError(t, err)
	require.Equal(t, uint64(5), executed)
	require.Equal(t, uint32(42), e.arch.Regs[arm.R1])
	// The first store succeeds, the second finds the reservation gone.
	require.Equal(t, uint32(0), e.arch.Regs[arm.R2])
	require.Equal(t, uint32(1), e.arch.Regs[arm.R3])
	require.False(t, e.arch.ExclusiveState)
	require.Equal(t, uint32(0x80), e.arch.ExclusiveTag)
	v, err := memory.Read32(mem, 0x84, false)
	require.NoError(t, err)
	require.Equal(t, uint32(42), v)
}

func TestEngine_builtinFault(t *testing.T) {
	requireSupportedOSArch(t)

	e := newTestEngine(t, newTestMemory(t, 0x100, 0,
		0xe3a01001, // mov r1, #1
		0xe1902f9f, // ldrex r2, [r0]
		0xeafffffe, // b .
	), testCodeCacheSize)
	e.arch.Regs[arm.R0] = 0x10000

	executed, err := e.Run(5)
	require.ErrorIs(t, err, memory.ErrFault)
	require.Equal(t, uint64(1), executed)
	require.Equal(t, uint32(1), e.arch.Regs[arm.R1])
	require.Equal(t, uint32(4), e.arch.Regs[arm.PC])
	require.False(t, e.arch.ExclusiveState)
}

func TestEngine_builtinFaultAfterLink(t *testing.T) {
	requireSupportedOSArch(t)

	e := newTestEngine(t, newTestMemory(t, 0x100, 0,
		0xe2811001, // add r1, r1, #1
		0xea000001, // b 0x10
		0, 0,
		0xe1902f9f, // 0x10: ldrex r2, [r0]
	), testCodeCacheSize)
	e.arch.Regs[arm.R0] = 0x10000

	// The block at 0x10 exists first, so the one at zero jumps straight into it.
	_, err := e.lookupOrCompile(Location{PC: 0x10})
	require.NoError(t, err)

	executed, err := e.Run(5)
	require.ErrorIs(t, err, memory.ErrFault)
	require.Equal(t, uint64(2), executed)
	require.Equal(t, uint32(1), e.arch.Regs[arm.R1])
	require.Equal(t, uint32(0x10), e.arch.Regs[arm.PC])
	require.Zero(t, e.cache.pendingPatches(Location{PC: 0x10}))
}

func TestEngine_unboundedBudget(t *testing.T) {
	requireSupportedOSArch(t)

	e := newTestEngine(t, newTestMemory(t, 0x100, 0,
		0xe2500001, // subs r0, r0, #1
		0x1afffffd, // bne 0
		0xe1912f9f, // ldrex r2, [r1]
	), testCodeCacheSize)
	e.arch.Regs[arm.R0] = 1000
	e.arch.Regs[arm.R1] = 0x10000

	executed, err := e.Run(math.MaxUint64)
	require.ErrorIs(t, err, memory.ErrFault)
	require.Equal(t, uint64(2000), executed)
	require.Zero(t, e.arch.Regs[arm.R0])
	require.Equal(t, uint32(8), e.arch.Regs[arm.PC])
	// The faulting block was entered with the largest budget jitState holds.
	require.Equal(t, int64(math.MaxInt64), e.state.cyclesRemaining)
}

func TestEngine_fetchFault(t *testing.T) {
	requireSupportedOSArch(t)

	e := newTestEngine(t, newTestMemory(t, 0x100, 0,
		0xe3a01001, // mov r1, #1
		0xea00003d, // b 0x100
	), testCodeCacheSize)

	executed, err := e.Run(5)
	require.ErrorIs(t, err, memory.ErrFault)
	require.Equal(t, uint64(2), executed)
	require.Equal(t, uint32(0x100), e.arch.Regs[arm.PC])
}

func TestEngine_thumb(t *testing.T) {
	requireSupportedOSArch(t)

	mem := newTestThumbMemory(t, 0x100, 0x10,
		0xf000, // 0x10: bl 0x18 (prefix)
		0xf802, // 0x12: bl 0x18 (suffix)
		0xe7fe, // 0x14: b .
		0x0000,
		0x4770, // 0x18: bx lr
	)
	e := newTestEngine(t, mem, testCodeCacheSize)
	e.arch.Regs[arm.PC] = 0x10
	e.arch.SetBit(arm.CPSRT, true)

	executed, err := e.Run(3)
	require.NoError(t, err)
	require.Equal(t, uint64(3), executed)
	require.Equal(t, uint32(0x15), e.arch.Regs[arm.LR])
	require.Equal(t, uint32(0x14), e.arch.Regs[arm.PC])
	require.True(t, e.arch.Thumb())

	executed, err = e.Run(3)
	require.NoError(t, err)
	require.Equal(t, uint64(3), executed)
	require.Equal(t, uint32(0x14), e.arch.Regs[arm.PC])
	blocks := e.Blocks()
	require.Equal(t, 3, len(blocks))
	require.Equal(t, Location{PC: 0x18, Thumb: true}, blocks[2].Location)
	require.Equal(t, uint32(1), blocks[2].Instructions)
}

func TestEngine_setend(t *testing.T) {
	requireSupportedOSArch(t)

	e := newTestEngine(t, newTestMemory(t, 0x100, 0,
		0xf1010200, // setend be
		0xe3a00005, // mov r0, #5
		0xeafffffe, // b .
	), testCodeCacheSize)

	executed, err := e.Run(4)
	require.NoError(t, err)
	require.Equal(t, uint64(4), executed)
	require.True(t, e.arch.BigEndian())
	require.Equal(t, uint32(8), e.arch.Regs[arm.PC])
	blocks := e.Blocks()
	require.Equal(t, 2, len(blocks))
	require.Equal(t, Location{PC: 8, BigEndian: true}, blocks[1].Location)
}

// requireSameAsInterpreter runs program from address zero on the interpreter and on the
// engine, and requires both to end in the same state.
func requireSameAsInterpreter(t *testing.T, program []byte, regs [15]uint32, steps uint64) {
	newCPU := func() (*interpreter.Interpreter, *memory.Recorder) {
		flat := memory.NewFlat(0, 0x4000)
		copy(flat.Buffer, program)
		rec := memory.NewRecorder(flat)
		s := &arm.State{CPSR: armgen.InitialCPSR}
		copy(s.Regs[:], regs[:])
		return interpreter.New(s, rec), rec
	}

	ref, refMem := newCPU()
	expectedTicks, expectedErr := ref.Step(steps)

	interp, mem := newCPU()
	e, err := NewEngine(interp, testCodeCacheSize, nil)
	require.NoError(t, err)
	defer e.Close()
	executed, err := e.Run(steps)

	msg := fmt.Sprintf("program %x with registers %#x", program, regs)
	require.Equal(t, expectedErr != nil, err != nil, msg)
	require.Equal(t, expectedTicks, executed, msg)
	require.Equal(t, *ref.State, *interp.State, msg)
	require.Equal(t, refMem.Writes, mem.Writes, msg)
}

func armBytes(words []uint32) []byte {
	ret := make([]byte, 4*len(words))
	for i, w := range words {
		ret[4*i], ret[4*i+1], ret[4*i+2], ret[4*i+3] = byte(w), byte(w>>8), byte(w>>16), byte(w>>24)
	}
	return ret
}

func TestEngine_differentialARM(t *testing.T) {
	requireSupportedOSArch(t)

	for seed := int64(0); seed < 200; seed++ {
		g := armgen.New(seed)
		regs := g.Registers()
		next := g.ARMDataProcessing
		if seed%4 == 3 {
			next = func() uint32 {
				if g.Registers()[0]%8 == 0 {
					return g.ARMBranch()
				}
				return g.ARMDataProcessing()
			}
		}
		program := armgen.ARMProgram(int(seed%16)+1, next)
		requireSameAsInterpreter(t, armBytes(program), regs, uint64(len(program))+8)
	}
}

func TestEngine_differentialARMMemory(t *testing.T) {
	requireSupportedOSArch(t)

	for seed := int64(0); seed < 300; seed++ {
		g := armgen.New(seed)
		regs := g.Registers()
		// Accesses stay above 0x1000, away from the program.
		regs[arm.R11] = 0x2000 | regs[arm.R11]&0x1ff8
		regs[arm.R12] = 0x2000 | regs[arm.R12]&0x1ffc
		next := func() uint32 {
			if g.Registers()[0]%2 == 0 {
				return g.ARMMemoryAccess(uint32(arm.R12), uint32(arm.R11))
			}
			for {
				inst := g.ARMDataProcessing()
				if rd := arm.Reg(inst >> 12 & 0xf); rd != arm.R11 && rd != arm.R12 {
					return inst
				}
			}
		}
		program := armgen.ARMProgram(int(seed%16)+1, next)
		requireSameAsInterpreter(t, armBytes(program), regs, uint64(len(program))+8)
	}
}

func TestEngine_differentialThumb(t *testing.T) {
	requireSupportedOSArch(t)

	for seed := int64(0); seed < 200; seed++ {
		g := armgen.New(seed)
		regs := g.Registers()
		next := g.Thumb
		if seed%2 == 1 {
			next = func() uint16 {
				if g.Registers()[0]%4 == 0 {
					return g.ThumbBranch()
				}
				return g.Thumb()
			}
		}
		program := armgen.ThumbProgram(int(seed%16)+1, next)
		code := armBytes([]uint32{armgen.EnterThumbARM})
		for _, half := range program {
			code = append(code, byte(half), byte(half>>8))
		}
		requireSameAsInterpreter(t, code, regs, uint64(len(program))+8)
	}
}
