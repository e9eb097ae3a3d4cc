package amd64

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/armjit/armjit/internal/asm"
)

func newTestAssembler(t *testing.T) Assembler {
	a, err := NewAssembler()
	require.NoError(t, err)
	return a
}

func TestAssembler_Encoding(t *testing.T) {
	for _, tc := range []struct {
		name     string
		compile  func(a Assembler)
		expected []byte
	}{
		{
			name:     "RET",
			compile:  func(a Assembler) { a.CompileStandAlone(RET) },
			expected: []byte{0xc3},
		},
		{
			name:     "MOVL $5, AX",
			compile:  func(a Assembler) { a.CompileConstToRegister(MOVL, 5, RegAX) },
			expected: []byte{0xb8, 0x05, 0x00, 0x00, 0x00},
		},
		{
			name:     "XORL AX, AX",
			compile:  func(a Assembler) { a.CompileRegisterToRegister(XORL, RegAX, RegAX) },
			expected: []byte{0x31, 0xc0},
		},
		{
			name:     "MOVL 8(R15), AX",
			compile:  func(a Assembler) { a.CompileMemoryToRegister(MOVL, RegR15, 8, RegAX) },
			expected: []byte{0x41, 0x8b, 0x47, 0x08},
		},
		{
			name:     "MOVL AX, 8(R15)",
			compile:  func(a Assembler) { a.CompileRegisterToMemory(MOVL, RegAX, RegR15, 8) },
			expected: []byte{0x41, 0x89, 0x47, 0x08},
		},
		{
			name:     "CMPL 16(R15), $0",
			compile:  func(a Assembler) { a.CompileMemoryToConst(CMPL, RegR15, 16, 0) },
			expected: []byte{0x41, 0x83, 0x7f, 0x10, 0x00},
		},
		{
			name:     "raw bytes",
			compile:  func(a Assembler) { a.CompileRawBytes(0x90, 0xcc, 0x90) },
			expected: []byte{0x90, 0xcc, 0x90},
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAssembler(t)
			tc.compile(a)
			code, err := a.Assemble()
			require.NoError(t, err)
			require.Equal(t, tc.expected, code)
		})
	}
}

func TestAssembler_CompileRawBytes(t *testing.T) {
	a := newTestAssembler(t)
	a.CompileConstToRegister(MOVL, 1, RegAX)
	slot := a.CompileRawBytes(0x66, 0x0f, 0x1f, 0x44, 0x00, 0x00)
	a.CompileStandAlone(RET)

	code, err := a.Assemble()
	require.NoError(t, err)
	require.Equal(t, asm.NodeOffsetInBinary(5), slot.OffsetInBinary())
	require.Equal(t, []byte{0x66, 0x0f, 0x1f, 0x44, 0x00, 0x00}, code[5:11])
}

func TestAssembler_CompileReadInstructionAddress(t *testing.T) {
	a := newTestAssembler(t)
	a.CompileReadInstructionAddress(RegAX, RET)
	a.CompileStandAlone(RET)
	target := a.CompileRawBytes(0x90)

	code, err := a.Assemble()
	require.NoError(t, err)

	// LEAQ off(RIP), AX is REX.W, 0x8d, ModRM with mod=00 and rm=101, then a 32-bit displacement.
	require.Equal(t, []byte{0x48, 0x8d, 0x05}, code[:3])
	const leaLength = 7
	offset := binary.LittleEndian.Uint32(code[3:leaLength])
	require.Equal(t, uint32(target.OffsetInBinary())-leaLength, offset)
}

func TestAssembler_OnGenerateCallBack(t *testing.T) {
	a := newTestAssembler(t)
	a.CompileRawBytes(0x00)
	a.AddOnGenerateCallBack(func(code []byte) error {
		code[0] = 0xcc
		return nil
	})
	code, err := a.Assemble()
	require.NoError(t, err)
	require.Equal(t, []byte{0xcc}, code)
}

func TestAssembler_SetJumpTargetOnNext(t *testing.T) {
	a := newTestAssembler(t)
	jmp := a.CompileJump(JNE)
	a.SetJumpTargetOnNext(jmp)
	_, err := a.Assemble()
	require.Error(t, err)

	a = newTestAssembler(t)
	jmp = a.CompileJump(JNE)
	a.SetJumpTargetOnNext(jmp)
	ret := a.CompileStandAlone(RET)
	code, err := a.Assemble()
	require.NoError(t, err)
	require.Equal(t, byte(0xc3), code[ret.OffsetInBinary()])
	require.Equal(t, int(ret.OffsetInBinary())+1, len(code))
}

func TestInstructionName(t *testing.T) {
	require.Equal(t, "SETOS", InstructionName(SETOS))
	require.Equal(t, "Unknown", InstructionName(instructionEnd))
	require.Equal(t, "R15", RegisterName(RegR15))
	require.Equal(t, "nil", RegisterName(asm.NilRegister))
}
