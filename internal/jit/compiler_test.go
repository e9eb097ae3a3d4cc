package jit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/armjit/armjit/internal/memory"
)

// newTestMemory places code at base of a fresh memory of size bytes.
func newTestMemory(t *testing.T, size, base uint32, code ...uint32) *memory.Flat {
	mem := memory.NewFlat(0, size)
	for idx, word := range code {
		require.NoError(t, memory.Write32(mem, base+uint32(idx*4), word, false))
	}
	return mem
}

// newTestThumbMemory places Thumb code at base of a fresh memory of size bytes.
func newTestThumbMemory(t *testing.T, size, base uint32, code ...uint16) *memory.Flat {
	mem := memory.NewFlat(0, size)
	for idx, half := range code {
		require.NoError(t, memory.Write16(mem, base+uint32(idx*2), uint32(half), false))
	}
	return mem
}

func jumpTargets(cb *compiledBlock) (ret []Location) {
	for _, j := range cb.jumps {
		ret = append(ret, j.target)
	}
	return
}

func TestCompileBlock(t *testing.T) {
	for _, tc := range []struct {
		name         string
		mem          func(t *testing.T) *memory.Flat
		start        Location
		instructions uint32
		targets      []Location
	}{
		{
			name: "ends at branch",
			mem: func(t *testing.T) *memory.Flat {
				return newTestMemory(t, 0x100, 0,
					0xe3a00005, // mov r0, #5
					0xe2801003, // add r1, r0, #3
					0xeafffffe, // b .
					0xe3a00005, // mov r0, #5
				)
			},
			instructions: 3,
			targets:      []Location{{PC: 8}},
		},
		{
			name: "conditional branch falls through",
			mem: func(t *testing.T) *memory.Flat {
				return newTestMemory(t, 0x100, 0,
					0xe3500000, // cmp r0, #0
					0x0a000002, // beq #0x14
				)
			},
			instructions: 2,
			targets:      []Location{{PC: 0x14}, {PC: 8}},
		},
		{
			name: "interpreter fallback ends the block",
			mem: func(t *testing.T) *memory.Flat {
				return newTestMemory(t, 0x100, 0,
					0xe3a00005, // mov r0, #5
					0xe5901000, // ldr r1, [r0]
					0xe3a00005, // mov r0, #5
				)
			},
			instructions: 2,
		},
		{
			name: "conditional fallback",
			mem: func(t *testing.T) *memory.Flat {
				return newTestMemory(t, 0x100, 0,
					0x15901000, // ldrne r1, [r0]
				)
			},
			instructions: 1,
		},
		{
			name: "undefined instruction",
			mem: func(t *testing.T) *memory.Flat {
				return newTestMemory(t, 0x100, 0, 0xe7f000f0)
			},
			instructions: 1,
		},
		{
			name: "page boundary",
			mem: func(t *testing.T) *memory.Flat {
				return newTestMemory(t, 0x2000, 0xff8,
					0xe3a00005, // mov r0, #5
					0xe3a00005, // mov r0, #5
					0xe3a00005, // mov r0, #5
				)
			},
			start:        Location{PC: 0xff8},
			instructions: 2,
			targets:      []Location{{PC: 0x1000}},
		},
		{
			name: "end of memory",
			mem: func(t *testing.T) *memory.Flat {
				return newTestMemory(t, 0x8, 0,
					0xe3a00005, // mov r0, #5
					0xe3a00005, // mov r0, #5
				)
			},
			instructions: 2,
			targets:      []Location{{PC: 8}},
		},
		{
			name: "setend",
			mem: func(t *testing.T) *memory.Flat {
				return newTestMemory(t, 0x100, 0,
					0xf1010200, // setend be
					0xe3a00005, // mov r0, #5
					0xeafffffe, // b .
				)
			},
			instructions: 3,
			targets:      []Location{{PC: 8, BigEndian: true}},
		},
		{
			name: "blx",
			mem: func(t *testing.T) *memory.Flat {
				return newTestMemory(t, 0x100, 0, 0xfa000001) // blx #0xc
			},
			instructions: 1,
			targets:      []Location{{PC: 0xc, Thumb: true}},
		},
		{
			name: "thumb bl pair",
			mem: func(t *testing.T) *memory.Flat {
				return newTestThumbMemory(t, 0x100, 0x10,
					0xf000, // bl #0x18 (prefix)
					0xf802, // bl #0x18 (suffix)
				)
			},
			start:        Location{PC: 0x10, Thumb: true},
			instructions: 2,
			targets:      []Location{{PC: 0x18, Thumb: true}},
		},
		{
			name: "thumb blx suffix alone",
			mem: func(t *testing.T) *memory.Flat {
				return newTestThumbMemory(t, 0x100, 0x10, 0xe802)
			},
			start:        Location{PC: 0x10, Thumb: true},
			instructions: 1,
		},
		{
			name: "bx",
			mem: func(t *testing.T) *memory.Flat {
				return newTestMemory(t, 0x100, 0, 0xe12fff11) // bx r1
			},
			instructions: 1,
		},
		{
			name: "conditional bx",
			mem: func(t *testing.T) *memory.Flat {
				return newTestMemory(t, 0x100, 0, 0x112fff11) // bxne r1
			},
			instructions: 1,
			targets:      []Location{{PC: 4}},
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cb, err := compileBlock(tc.mem(t), tc.start)
			require.NoError(t, err)
			require.Equal(t, tc.start, cb.location)
			require.Equal(t, tc.instructions, cb.instructions)
			require.Equal(t, tc.targets, jumpTargets(cb))
			require.True(t, bytes.HasSuffix(cb.code, blockEndMarker))
			for _, j := range cb.jumps {
				require.Equal(t, patchSlotNOP, cb.code[j.offset:j.offset+uint64(len(patchSlotNOP))])
			}
		})
	}
}

func TestCompileBlock_budgetCheck(t *testing.T) {
	cb, err := compileBlock(newTestMemory(t, 0x100, 0,
		0xe3a00005, // mov r0, #5
		0xe2801003, // add r1, r0, #3
		0xeafffffe, // b .
	), Location{})
	require.NoError(t, err)
	// CMPQ 88(R15), $3 comes first.
	require.Equal(t, []byte{0x49, 0x83, 0x7f, jitStateCyclesRemainingOffset, 0x03}, cb.code[:5])
}

func TestCompileBlock_fetchError(t *testing.T) {
	mem := newTestMemory(t, 0x100, 0)
	_, err := compileBlock(mem, Location{PC: 0x100})
	require.Error(t, err)

	// A block on the last word of memory ends after it.
	require.NoError(t, memory.Write32(mem, 0xfc, 0xe3a00005, false))
	cb, err := compileBlock(mem, Location{PC: 0xfc})
	require.NoError(t, err)
	require.Equal(t, uint32(1), cb.instructions)
	require.Equal(t, []Location{{PC: 0x100}}, jumpTargets(cb))
}

func TestCompiler_exclusive(t *testing.T) {
	cb, err := compileBlock(newTestMemory(t, 0x100, 0,
		0xe1901f9f, // ldrex r1, [r0]
		0xe1802f91, // strex r2, r1, [r0]
		0xf57ff01f, // clrex
		0xeafffffe, // b .
	), Location{})
	require.NoError(t, err)
	require.Equal(t, uint32(4), cb.instructions)
	require.Equal(t, []Location{{PC: 0xc}}, jumpTargets(cb))
}

func TestCompiler_pcValue(t *testing.T) {
	c, err := newCompiler(newTestMemory(t, 0x10, 0), Location{})
	require.NoError(t, err)
	c.pc = 0x100
	require.Equal(t, uint32(0x108), c.pcValue())
	c.loc.Thumb = true
	require.Equal(t, uint32(0x104), c.pcValue())
}
