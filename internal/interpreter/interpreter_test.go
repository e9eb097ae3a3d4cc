package interpreter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/armjit/armjit/internal/arm"
	"github.com/armjit/armjit/internal/decoder"
	"github.com/armjit/armjit/internal/memory"
)

const testMemorySize = 0x1000

// newTestInterpreter places code at address zero of a fresh memory in ARM user mode.
func newTestInterpreter(t *testing.T, code ...uint32) (*Interpreter, *memory.Flat) {
	mem := memory.NewFlat(0, testMemorySize)
	for idx, word := range code {
		require.NoError(t, memory.Write32(mem, uint32(idx*4), word, false))
	}
	return New(&arm.State{CPSR: arm.ModeUser}, mem), mem
}

func TestInterpreter_Step(t *testing.T) {
	i, _ := newTestInterpreter(t,
		0xe3a00005, // mov r0, #5
		0xe2801003, // add r1, r0, #3
		0xeafffffe, // b .
	)
	ticks, err := i.Step(3)
	require.NoError(t, err)
	require.Equal(t, uint64(3), ticks)
	require.Equal(t, uint32(5), i.State.Regs[0])
	require.Equal(t, uint32(8), i.State.Regs[1])
	require.Equal(t, uint32(8), i.State.Regs[arm.PC])

	// The branch to itself keeps PC in place.
	ticks, err = i.Step(10)
	require.NoError(t, err)
	require.Equal(t, uint64(10), ticks)
	require.Equal(t, uint32(8), i.State.Regs[arm.PC])
}

func TestInterpreter_Conditional(t *testing.T) {
	i, _ := newTestInterpreter(t,
		0xe0502000, // subs r2, r0, r0
		0x03a03001, // moveq r3, #1
		0x13a04001, // movne r4, #1
	)
	i.State.Regs[0] = 7
	ticks, err := i.Step(3)
	require.NoError(t, err)
	// A failed condition still takes a tick.
	require.Equal(t, uint64(3), ticks)

	n, z, c, v := i.State.Flags()
	require.False(t, n)
	require.True(t, z)
	require.True(t, c)
	require.False(t, v)
	require.Equal(t, uint32(1), i.State.Regs[3])
	require.Zero(t, i.State.Regs[4])
	require.Equal(t, uint32(12), i.State.Regs[arm.PC])
}

func TestInterpreter_LoadStore(t *testing.T) {
	i, mem := newTestInterpreter(t,
		0xe5a10004, // str r0, [r1, #4]!
		0xe4912004, // ldr r2, [r1], #4
	)
	i.State.Regs[0] = 0xdeadbeef
	i.State.Regs[1] = 0x100

	_, err := i.Step(1)
	require.NoError(t, err)
	require.Equal(t, uint32(0x104), i.State.Regs[1])
	v, err := memory.Read32(mem, 0x104, false)
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), v)

	_, err = i.Step(1)
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), i.State.Regs[2])
	require.Equal(t, uint32(0x108), i.State.Regs[1])
}

func TestInterpreter_BigEndian(t *testing.T) {
	i, mem := newTestInterpreter(t,
		0xf1010200, // setend be
		0xe5810000, // str r0, [r1]
	)
	i.State.Regs[0] = 0x11223344
	i.State.Regs[1] = 0x100

	_, err := i.Step(2)
	require.NoError(t, err)
	require.True(t, i.State.BigEndian())
	require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, mem.Buffer[0x100:0x104])
}

func TestInterpreter_PushPop(t *testing.T) {
	i, mem := newTestInterpreter(t,
		0xe92d4010, // push {r4, lr}
		0xe3a04000, // mov r4, #0
		0xe8bd8010, // pop {r4, pc}
	)
	i.State.Regs[arm.SP] = 0x200
	i.State.Regs[4] = 7
	i.State.Regs[arm.LR] = 0x40

	_, err := i.Step(1)
	require.NoError(t, err)
	require.Equal(t, uint32(0x1f8), i.State.Regs[arm.SP])
	v, err := memory.Read32(mem, 0x1fc, false)
	require.NoError(t, err)
	require.Equal(t, uint32(0x40), v)

	_, err = i.Step(2)
	require.NoError(t, err)
	require.Equal(t, uint32(7), i.State.Regs[4])
	require.Equal(t, uint32(0x200), i.State.Regs[arm.SP])
	require.Equal(t, uint32(0x40), i.State.Regs[arm.PC])
	require.False(t, i.State.Thumb())
}

func TestInterpreter_Exclusive(t *testing.T) {
	i, mem := newTestInterpreter(t,
		0xe1910f9f, // ldrex r0, [r1]
		0xe1812f93, // strex r2, r3, [r1]
		0xe1812f93, // strex r2, r3, [r1]
	)
	require.NoError(t, memory.Write32(mem, 0x100, 0x11, false))
	i.State.Regs[1] = 0x100
	i.State.Regs[3] = 0x22

	_, err := i.Step(1)
	require.NoError(t, err)
	require.Equal(t, uint32(0x11), i.State.Regs[0])
	require.True(t, i.State.IsExclusive(0x104))

	_, err = i.Step(1)
	require.NoError(t, err)
	require.Zero(t, i.State.Regs[2])
	v, err := memory.Read32(mem, 0x100, false)
	require.NoError(t, err)
	require.Equal(t, uint32(0x22), v)
	require.False(t, i.State.ExclusiveState)

	// The reservation is gone so the second store fails and leaves memory alone.
	i.State.Regs[3] = 0x33
	_, err = i.Step(1)
	require.NoError(t, err)
	require.Equal(t, uint32(1), i.State.Regs[2])
	v, err = memory.Read32(mem, 0x100, false)
	require.NoError(t, err)
	require.Equal(t, uint32(0x22), v)
}

func TestInterpreter_Thumb(t *testing.T) {
	i, _ := newTestInterpreter(t,
		0x30032005, // movs r0, #5; adds r0, #3
		0x0000e7fe, // b .
	)
	i.State.CPSR |= arm.CPSRT

	ticks, err := i.Step(3)
	require.NoError(t, err)
	require.Equal(t, uint64(3), ticks)
	require.Equal(t, uint32(8), i.State.Regs[0])
	require.Equal(t, uint32(4), i.State.Regs[arm.PC])
}

func TestInterpreter_Interworking(t *testing.T) {
	i, mem := newTestInterpreter(t,
		0xfa000002, // blx 0x10
	)
	require.NoError(t, memory.Write16(mem, 0x10, 0x4770, false)) // bx lr

	_, err := i.Step(1)
	require.NoError(t, err)
	require.True(t, i.State.Thumb())
	require.Equal(t, uint32(0x10), i.State.Regs[arm.PC])
	require.Equal(t, uint32(4), i.State.Regs[arm.LR])

	_, err = i.Step(1)
	require.NoError(t, err)
	require.False(t, i.State.Thumb())
	require.Equal(t, uint32(4), i.State.Regs[arm.PC])
}

func TestInterpreter_ThumbBL(t *testing.T) {
	i, mem := newTestInterpreter(t)
	i.State.CPSR |= arm.CPSRT
	// bl 0x100, as a prefix and suffix pair.
	require.NoError(t, memory.Write16(mem, 0, 0xf000, false))
	require.NoError(t, memory.Write16(mem, 2, 0xf87e, false))

	ticks, err := i.Step(2)
	require.NoError(t, err)
	require.Equal(t, uint64(2), ticks)
	require.Equal(t, uint32(0x100), i.State.Regs[arm.PC])
	require.Equal(t, uint32(5), i.State.Regs[arm.LR])
	require.True(t, i.State.Thumb())
}

func TestInterpreter_ThreadRegister(t *testing.T) {
	i, _ := newTestInterpreter(t,
		0xee1d0f70, // mrc p15, 0, r0, c13, c0, 3
	)
	i.State.CP15[arm.CP15ThreadURO] = 0x1234

	_, err := i.Step(1)
	require.NoError(t, err)
	require.Equal(t, uint32(0x1234), i.State.Regs[0])
}

func TestInterpreter_Errors(t *testing.T) {
	t.Run("breakpoint", func(t *testing.T) {
		i, _ := newTestInterpreter(t, 0xe1200070) // bkpt #0
		ticks, err := i.Step(1)
		require.True(t, errors.Is(err, ErrBreakpoint))
		require.Zero(t, ticks)
		require.Zero(t, i.State.Regs[arm.PC])
	})
	t.Run("supervisor call", func(t *testing.T) {
		i, _ := newTestInterpreter(t, 0xef000042) // svc #0x42
		ticks, err := i.Step(5)
		require.True(t, errors.Is(err, ErrSupervisorCall))
		require.Equal(t, uint64(1), ticks)
		require.Equal(t, uint32(4), i.State.Regs[arm.PC])
	})
	t.Run("supervisor call handler", func(t *testing.T) {
		i, _ := newTestInterpreter(t,
			0xef000042, // svc #0x42
			0xe3a00001, // mov r0, #1
		)
		var calls []uint32
		i.SupervisorCall = func(imm uint32) error {
			calls = append(calls, imm)
			return nil
		}
		ticks, err := i.Step(2)
		require.NoError(t, err)
		require.Equal(t, uint64(2), ticks)
		require.Equal(t, []uint32{0x42}, calls)
		require.Equal(t, uint32(1), i.State.Regs[0])
	})
	t.Run("undefined", func(t *testing.T) {
		i, _ := newTestInterpreter(t, 0xe7f000f0) // udf #0
		ticks, err := i.Step(1)
		require.True(t, errors.Is(err, decoder.ErrUndefinedInstruction))
		require.Zero(t, ticks)
	})
	t.Run("unprivileged load", func(t *testing.T) {
		i, _ := newTestInterpreter(t, 0xe4b10000) // ldrt r0, [r1]
		_, err := i.Step(1)
		require.True(t, errors.Is(err, ErrUnimplemented))
	})
	t.Run("skipped unimplemented", func(t *testing.T) {
		i, _ := newTestInterpreter(t, 0x04b10000) // ldrteq r0, [r1]
		ticks, err := i.Step(1)
		require.NoError(t, err)
		require.Equal(t, uint64(1), ticks)
	})
	t.Run("data fault", func(t *testing.T) {
		i, _ := newTestInterpreter(t, 0xe5910000) // ldr r0, [r1]
		i.State.Regs[1] = 0x10000
		ticks, err := i.Step(1)
		require.True(t, errors.Is(err, memory.ErrFault))
		require.Zero(t, ticks)
		require.Zero(t, i.State.Regs[arm.PC])
	})
	t.Run("fetch fault", func(t *testing.T) {
		i, _ := newTestInterpreter(t)
		i.State.Regs[arm.PC] = 0x2000
		_, err := i.Step(1)
		require.True(t, errors.Is(err, memory.ErrFault))
	})
}

func TestInterpreter_Media(t *testing.T) {
	i, _ := newTestInterpreter(t)
	r := &i.State.Regs

	t.Run("uadd8", func(t *testing.T) {
		r[1], r[3] = 0x80ff0001, 0x80010001
		require.NoError(t, i.UADD8(arm.CondAL, 1, 2, 3))
		require.Equal(t, uint32(0x00000002), r[2])
		require.Equal(t, uint32(0b1100)<<16, i.State.CPSR&arm.CPSRGE)
	})
	t.Run("sel", func(t *testing.T) {
		r[1], r[3] = 0xaaaaaaaa, 0xbbbbbbbb
		require.NoError(t, i.SEL(arm.CondAL, 1, 2, 3))
		require.Equal(t, uint32(0xaaaabbbb), r[2])
	})
	t.Run("qadd", func(t *testing.T) {
		i.State.CPSR &^= arm.CPSRQ
		r[1], r[3] = 0x7fffffff, 1
		require.NoError(t, i.QADD(arm.CondAL, 1, 2, 3))
		require.Equal(t, uint32(0x7fffffff), r[2])
		require.NotZero(t, i.State.CPSR&arm.CPSRQ)
	})
	t.Run("ssub16", func(t *testing.T) {
		r[1], r[3] = 0x00010005, 0x00020003
		require.NoError(t, i.SSUB16(arm.CondAL, 1, 2, 3))
		require.Equal(t, uint32(0xffff0002), r[2])
		require.Equal(t, uint32(0b0011)<<16, i.State.CPSR&arm.CPSRGE)
	})
	t.Run("uqsub8", func(t *testing.T) {
		r[1], r[3] = 0x01020304, 0x02020202
		require.NoError(t, i.UQSUB8(arm.CondAL, 1, 2, 3))
		require.Equal(t, uint32(0x00000102), r[2])
	})
	t.Run("shadd16", func(t *testing.T) {
		r[1], r[3] = 0xfffe0004, 0xfffe0002
		require.NoError(t, i.SHADD16(arm.CondAL, 1, 2, 3))
		require.Equal(t, uint32(0xfffe0003), r[2])
	})
	t.Run("ssat", func(t *testing.T) {
		i.State.CPSR &^= arm.CPSRQ
		r[1] = 0x1000
		require.NoError(t, i.SSAT(arm.CondAL, 7, 2, 0, false, 1))
		require.Equal(t, uint32(0x7f), r[2])
		require.NotZero(t, i.State.CPSR&arm.CPSRQ)
	})
	t.Run("rev", func(t *testing.T) {
		r[1] = 0x11223344
		require.NoError(t, i.REV(arm.CondAL, 2, 1))
		require.Equal(t, uint32(0x44332211), r[2])
		require.NoError(t, i.REV16(arm.CondAL, 2, 1))
		require.Equal(t, uint32(0x22114433), r[2])
		r[1] = 0x0080
		require.NoError(t, i.REVSH(arm.CondAL, 2, 1))
		require.Equal(t, uint32(0xffff8000), r[2])
	})
	t.Run("sxtab16", func(t *testing.T) {
		r[1], r[3] = 0x00010001, 0x00ff0080
		require.NoError(t, i.SXTAB16(arm.CondAL, 1, 2, 0, 3))
		require.Equal(t, uint32(0x0000ff81), r[2])
	})
	t.Run("usad8", func(t *testing.T) {
		r[1], r[3] = 0x01020304, 0x04030201
		require.NoError(t, i.USAD8(arm.CondAL, 2, 3, 1))
		require.Equal(t, uint32(8), r[2])
	})
	t.Run("clz", func(t *testing.T) {
		r[1] = 0x00f00000
		require.NoError(t, i.CLZ(arm.CondAL, 2, 1))
		require.Equal(t, uint32(8), r[2])
	})
}

func TestInterpreter_Multiply(t *testing.T) {
	i, _ := newTestInterpreter(t)
	r := &i.State.Regs

	r[1], r[2] = 0xffffffff, 2
	require.NoError(t, i.SMULL(arm.CondAL, true, 4, 3, 2, 1))
	require.Equal(t, uint32(0xfffffffe), r[3])
	require.Equal(t, uint32(0xffffffff), r[4])
	require.True(t, i.State.CPSR&arm.CPSRN != 0)

	require.NoError(t, i.UMULL(arm.CondAL, false, 4, 3, 2, 1))
	require.Equal(t, uint32(0xfffffffe), r[3])
	require.Equal(t, uint32(1), r[4])

	r[1], r[2] = 0x00020003, 0x00040005
	require.NoError(t, i.SMUAD(arm.CondAL, 3, 2, false, 1))
	require.Equal(t, uint32(2*4+3*5), r[3])
	require.NoError(t, i.SMUSD(arm.CondAL, 3, 2, true, 1))
	require.Equal(t, uint32(3*4-2*5), r[3])

	r[1], r[2] = 0x00030000, 0x00000007
	require.NoError(t, i.SMULxy(arm.CondAL, 3, 2, false, true, 1))
	require.Equal(t, uint32(21), r[3])

	r[1], r[2] = 0x40000000, 4
	require.NoError(t, i.SMMUL(arm.CondAL, 3, 2, false, 1))
	require.Equal(t, uint32(1), r[3])
}
