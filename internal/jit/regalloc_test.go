package jit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/armjit/armjit/internal/arm"
	"github.com/armjit/armjit/internal/asm"
	"github.com/armjit/armjit/internal/asm/amd64"
)

func newTestRegisterAllocator(t *testing.T) (*registerAllocator, amd64.Assembler) {
	a, err := amd64.NewAssembler()
	require.NoError(t, err)
	return newRegisterAllocator(a), a
}

func TestRegisterAllocator_bind(t *testing.T) {
	r, a := newTestRegisterAllocator(t)

	r0 := r.bindForRead(arm.R0)
	require.Equal(t, amd64.RegAX, r0)
	r1 := r.bindForWrite(arm.R1)
	require.Equal(t, amd64.RegCX, r1)
	require.Equal(t, "r0=AX(locked) r1=CX(dirty)(locked) ", r.String())

	// A bound register is found again.
	r.unlock(arm.R0)
	require.Equal(t, r0, r.bindForRead(arm.R0))
	r.unlock(arm.R0)
	r.unlock(arm.R1)

	// Operands report where the value currently is.
	require.Equal(t, operand{register: amd64.RegAX}, r.lockForRead(arm.R0))
	r.unlock(arm.R0)
	o := r.lockForWrite(arm.R5)
	require.Equal(t, operand{register: asm.NilRegister, offset: regOffset(arm.R5)}, o)
	require.False(t, o.onRegister())
	require.Equal(t, "20(R15)", o.String())
	r.unlock(arm.R5)

	r.flushEverything()
	require.Equal(t, "", r.String())
	r.assertNoLocked()

	// R0 is loaded, R1 is written back, nothing is emitted for the clean R0.
	a.CompileStandAlone(amd64.RET)
	code, err := a.Assemble()
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x41, 0x8b, 0x07, // MOVL (R15), AX
		0x41, 0x89, 0x4f, 0x04, // MOVL CX, 4(R15)
		0xc3,
	}, code)
}

func TestRegisterAllocator_evict(t *testing.T) {
	r, _ := newTestRegisterAllocator(t)

	for g := arm.R0; g < arm.Reg(len(amd64AllocatableRegisters)); g++ {
		require.Equal(t, amd64AllocatableRegisters[g], r.bindForRead(g))
	}
	// Every host register holds a locked guest register.
	require.Panics(t, func() { r.allocTemp() })

	r.unlock(arm.R4)
	tmp := r.allocTemp()
	require.Equal(t, amd64AllocatableRegisters[4], tmp)
	require.Equal(t, operand{register: asm.NilRegister, offset: regOffset(arm.R4)}, r.lockForRead(arm.R4))
	r.unlock(arm.R4)

	require.PanicsWithValue(t, "BUG: flush with r0 locked", r.flushEverything)
	for g := arm.R0; g < arm.Reg(len(amd64AllocatableRegisters)); g++ {
		if g != arm.R4 {
			r.unlock(g)
		}
	}
	r.flushEverything()
	require.PanicsWithValue(t, "BUG: "+amd64.RegisterName(tmp)+" is still locked", r.assertNoLocked)
	r.releaseTemp(tmp)
	r.assertNoLocked()
}

func TestRegisterAllocator_lockHost(t *testing.T) {
	r, _ := newTestRegisterAllocator(t)

	require.Equal(t, amd64.RegAX, r.bindForWrite(arm.R2))
	require.Panics(t, func() { r.lockHost(amd64.RegAX) })
	r.unlock(arm.R2)

	// The guest register is written back and moves elsewhere on its next use.
	r.lockHost(amd64.RegAX)
	require.Equal(t, amd64.RegCX, r.bindForRead(arm.R2))
	r.unlock(arm.R2)
	require.Equal(t, amd64.RegDX, r.allocTemp())
	require.Panics(t, func() { r.releaseTemp(amd64.RegAX) })
	r.releaseTemp(amd64.RegDX)
	r.unlockHost(amd64.RegAX)
	require.Panics(t, func() { r.unlockHost(amd64.RegAX) })
	r.flushEverything()
	r.assertNoLocked()

	// A reserved register stays reserved across a flush, as around a call.
	r.lockHost(amd64.RegDI)
	r.flushEverything()
	require.PanicsWithValue(t, "BUG: "+amd64.RegisterName(amd64.RegDI)+" is still locked", r.assertNoLocked)
	require.Equal(t, amd64.RegAX, r.allocTemp())
	r.releaseTemp(amd64.RegAX)
	r.unlockHost(amd64.RegDI)
	r.assertNoLocked()
}

func TestRegisterAllocator_misuse(t *testing.T) {
	r, _ := newTestRegisterAllocator(t)

	require.PanicsWithValue(t, "BUG: pc cannot be allocated", func() { r.bindForRead(arm.PC) })
	require.PanicsWithValue(t, "BUG: r3 is not locked", func() { r.unlock(arm.R3) })
	require.Panics(t, func() { hostIndex(amd64.RegR15) })

	r.lockForRead(arm.R7)
	require.PanicsWithValue(t, "BUG: r7 is still locked", r.assertNoLocked)
}
