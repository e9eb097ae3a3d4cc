package armjit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/armjit/armjit/internal/memory"
	"github.com/armjit/armjit/internal/platform"
)

// testConfigs are the configs every CPU test runs with, skipping the recompiler where unsupported.
func testConfigs(t *testing.T) map[string]Config {
	ret := map[string]Config{"interpreter": NewConfigInterpreter()}
	if platform.CompilerSupported() {
		ret["jit"] = NewConfigJIT().WithCodeCacheSize(1 << 20)
	} else {
		t.Log("recompiler not supported on this platform")
	}
	return ret
}

func newTestCPU(t *testing.T, cfg Config, code ...uint32) (CPU, *memory.Flat) {
	mem := memory.NewFlat(0, 0x1000)
	for idx, word := range code {
		require.NoError(t, memory.Write32(mem, uint32(idx*4), word, false))
	}
	c, err := NewCPU(mem, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, c.Close()) })
	return c, mem
}

func TestCPU_Run(t *testing.T) {
	for name, cfg := range testConfigs(t) {
		cfg := cfg
		t.Run(name, func(t *testing.T) {
			c, _ := newTestCPU(t, cfg,
				0xe3a00005, // mov r0, #5
				0xe2801003, // add r1, r0, #3
				0xeafffffe, // b .
			)
			require.Equal(t, uint32(0x10), c.CPSR())

			executed, err := c.Run(3)
			require.NoError(t, err)
			require.Equal(t, uint64(3), executed)
			require.Equal(t, uint32(5), c.Reg(0))
			require.Equal(t, uint32(8), c.Reg(1))
			require.Equal(t, uint32(8), c.PC())
			require.Equal(t, uint32(8), c.Reg(15))

			executed, err = c.Run(100)
			require.NoError(t, err)
			require.Equal(t, uint64(100), executed)
			require.Equal(t, uint64(103), c.Instructions())
			require.Equal(t, uint32(8), c.PC())
		})
	}
}

func TestCPU_registers(t *testing.T) {
	for name, cfg := range testConfigs(t) {
		cfg := cfg
		t.Run(name, func(t *testing.T) {
			c, _ := newTestCPU(t, cfg,
				0xe0810002, // add r0, r1, r2
				0xee1d3f70, // mrc p15, 0, r3, c13, c0, 3
				0xeafffffe, // b .
			)
			c.SetReg(1, 40)
			c.SetReg(2, 2)
			c.SetCP15Register(CP15ThreadURO, 0xcafe)
			c.SetVFPReg(3, 0x3f800000)
			c.SetVFPSystemReg(VFPFPSCR, 0x03000000)

			_, err := c.Run(3)
			require.NoError(t, err)
			require.Equal(t, uint32(42), c.Reg(0))
			require.Equal(t, uint32(0xcafe), c.Reg(3))
			require.Equal(t, uint32(0xcafe), c.CP15Register(CP15ThreadURO))
			require.Equal(t, uint32(0x3f800000), c.VFPReg(3))
			require.Equal(t, uint32(0x03000000), c.VFPSystemReg(VFPFPSCR))

			c.SetPC(0)
			require.Equal(t, uint32(0), c.PC())
			c.SetCPSR(0x10 | 1<<30)
			require.Equal(t, uint32(0x10|1<<30), c.CPSR())
		})
	}
}

func TestCPU_SupervisorCall(t *testing.T) {
	code := []uint32{
		0xef000042, // svc #0x42
		0xeafffffe, // b .
	}

	for name, cfg := range testConfigs(t) {
		cfg := cfg
		t.Run(name, func(t *testing.T) {
			t.Run("no handler", func(t *testing.T) {
				c, _ := newTestCPU(t, cfg, code...)
				executed, err := c.Run(2)
				require.ErrorIs(t, err, ErrSupervisorCall)
				require.Equal(t, uint64(1), executed)
				require.Equal(t, uint32(4), c.PC())
			})

			t.Run("handler", func(t *testing.T) {
				var called []uint32
				c, _ := newTestCPU(t, cfg.WithSupervisorCall(func(cpu CPU, imm uint32) error {
					called = append(called, imm)
					require.Equal(t, uint32(4), cpu.PC())
					cpu.SetReg(0, imm+1)
					return nil
				}), code...)
				executed, err := c.Run(2)
				require.NoError(t, err)
				require.Equal(t, uint64(2), executed)
				require.Equal(t, []uint32{0x42}, called)
				require.Equal(t, uint32(0x43), c.Reg(0))
			})

			t.Run("handler error", func(t *testing.T) {
				stop := errors.New("stop")
				c, _ := newTestCPU(t, cfg.WithSupervisorCall(func(CPU, uint32) error { return stop }), code...)
				_, err := c.Run(2)
				require.ErrorIs(t, err, stop)
				require.Equal(t, uint32(4), c.PC())
			})
		})
	}
}

func TestCPU_errors(t *testing.T) {
	for name, cfg := range testConfigs(t) {
		cfg := cfg
		t.Run(name, func(t *testing.T) {
			c, _ := newTestCPU(t, cfg,
				0xe7f000f0, // udf
			)
			_, err := c.Run(1)
			require.ErrorIs(t, err, ErrUndefinedInstruction)
			require.Equal(t, uint32(0), c.PC())

			c, _ = newTestCPU(t, cfg,
				0xe1200070, // bkpt
			)
			_, err = c.Run(1)
			require.ErrorIs(t, err, ErrBreakpoint)

			c, _ = newTestCPU(t, cfg)
			c.SetPC(0x2000)
			executed, err := c.Run(1)
			require.ErrorIs(t, err, ErrFault)
			require.Zero(t, executed)
		})
	}
}

func TestCPU_context(t *testing.T) {
	for name, cfg := range testConfigs(t) {
		cfg := cfg
		t.Run(name, func(t *testing.T) {
			c, _ := newTestCPU(t, cfg,
				0xe2800001, // add r0, r0, #1
				0xeafffffd, // b 0
			)

			var a, b ThreadContext
			c.ResetContext(&a, 0x800, 0, 10)
			require.Equal(t, ThreadContext{Regs: [13]uint32{10}, SP: 0x800, CPSR: 0x10}, a)
			c.ResetContext(&b, 0x900, 0, 20)

			// Alternate two threads on the same CPU.
			for i := 0; i < 3; i++ {
				c.LoadContext(&a)
				_, err := c.Run(2)
				require.NoError(t, err)
				c.SaveContext(&a)

				c.LoadContext(&b)
				_, err = c.Run(4)
				require.NoError(t, err)
				c.SaveContext(&b)
			}
			require.Equal(t, uint32(13), a.Regs[0])
			require.Equal(t, uint32(26), b.Regs[0])
			require.Equal(t, uint32(0x800), a.SP)
			require.Equal(t, uint32(0x900), b.SP)
			require.Equal(t, uint32(0), a.PC)
		})
	}

	t.Run("thumb entry", func(t *testing.T) {
		c, _ := newTestCPU(t, NewConfigInterpreter())
		var ctx ThreadContext
		c.ResetContext(&ctx, 0x800, 0x101, 0)
		require.Equal(t, uint32(0x100), ctx.PC)
		require.Equal(t, uint32(0x30), ctx.CPSR)
	})

	t.Run("fpu", func(t *testing.T) {
		c, _ := newTestCPU(t, NewConfigInterpreter())
		ctx := ThreadContext{LR: 0x44, FPSCR: 1, FPEXC: 1 << 30}
		ctx.FPURegs[63] = 7
		c.LoadContext(&ctx)
		require.Equal(t, uint32(0x44), c.Reg(14))
		require.Equal(t, uint32(7), c.VFPReg(63))
		require.Equal(t, uint32(1<<30), c.VFPSystemReg(VFPFPEXC))

		var saved ThreadContext
		c.SaveContext(&saved)
		require.Equal(t, ctx, saved)
	})
}

func TestCPU_cache(t *testing.T) {
	if !platform.CompilerSupported() {
		t.Skip()
	}
	c, mem := newTestCPU(t, NewConfigJIT().WithCodeCacheSize(1<<20),
		0xe3a00005, // mov r0, #5
		0xeafffffe, // b .
	)
	_, err := c.Run(2)
	require.NoError(t, err)
	blocks := c.Blocks()
	require.Equal(t, 1, len(blocks))
	require.Equal(t, uint32(0), blocks[0].PC)
	require.False(t, blocks[0].Thumb)
	require.Equal(t, uint32(2), blocks[0].Instructions)
	used, capacity := c.CodeCacheUsage()
	require.Equal(t, 1<<20, capacity)
	require.True(t, used >= blocks[0].Size)

	// Modified code runs once the cache is cleared.
	require.NoError(t, memory.Write32(mem, 0, 0xe3a00007, false)) // mov r0, #7
	c.ClearCache()
	require.Empty(t, c.Blocks())
	c.SetPC(0)
	_, err = c.Run(2)
	require.NoError(t, err)
	require.Equal(t, uint32(7), c.Reg(0))

	c.FastClearCache()
	used, _ = c.CodeCacheUsage()
	require.Zero(t, used)
}

func TestCPU_interpreterCache(t *testing.T) {
	c, _ := newTestCPU(t, NewConfigInterpreter(), 0xeafffffe)
	_, err := c.Run(10)
	require.NoError(t, err)
	c.ClearCache()
	c.FastClearCache()
	require.Nil(t, c.Blocks())
	used, capacity := c.CodeCacheUsage()
	require.Zero(t, used)
	require.Zero(t, capacity)
}

func TestCPU_scenario(t *testing.T) {
	for name, cfg := range testConfigs(t) {
		cfg := cfg
		t.Run(name, func(t *testing.T) {
			c, _ := newTestCPU(t, cfg,
				0xe3a00005, // mov r0, #5
				0xe2800003, // add r0, r0, #3
				0xeafffffe, // b .
			)
			c.SetCPSR(0x1d0)

			executed, err := c.Run(2)
			require.NoError(t, err)
			require.Equal(t, uint64(2), executed)
			require.Equal(t, uint32(8), c.Reg(0))
			require.Equal(t, uint32(8), c.PC())
			require.Equal(t, uint32(0x1d0), c.CPSR())
		})
	}
}

func TestCPU_exclusive(t *testing.T) {
	for name, cfg := range testConfigs(t) {
		cfg := cfg
		t.Run(name, func(t *testing.T) {
			c, mem := newTestCPU(t, cfg,
				0xe1901f9f, // ldrex r1, [r0]
				0xe1802f93, // strex r2, r3, [r0]
				0xe2833001, // add r3, r3, #1
				0xe1804f93, // strex r4, r3, [r0]
				0xeafffffe, // b .
			)
			require.NoError(t, memory.Write32(mem, 0x100, 0x11111111, false))
			c.SetReg(0, 0x100)
			c.SetReg(3, 0xdeadbeef)
			c.SetReg(4, 0x55)

			_, err := c.Run(5)
			require.NoError(t, err)
			require.Equal(t, uint32(0x11111111), c.Reg(1))
			require.Equal(t, uint32(0), c.Reg(2))
			// The reservation was consumed by the first store.
			require.Equal(t, uint32(1), c.Reg(4))
			v, err := memory.Read32(mem, 0x100, false)
			require.NoError(t, err)
			require.Equal(t, uint32(0xdeadbeef), v)
		})
	}
}
