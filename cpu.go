package armjit

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/armjit/armjit/api"
	"github.com/armjit/armjit/internal/arm"
	"github.com/armjit/armjit/internal/decoder"
	"github.com/armjit/armjit/internal/interpreter"
	"github.com/armjit/armjit/internal/jit"
	"github.com/armjit/armjit/internal/memory"
)

var (
	// ErrUnsupportedPlatform is returned by NewCPU for NewConfigJIT when the host cannot run compiled code.
	ErrUnsupportedPlatform = jit.ErrUnsupportedPlatform
	// ErrUndefinedInstruction is returned by CPU.Run for an instruction word no encoding matches.
	ErrUndefinedInstruction = decoder.ErrUndefinedInstruction
	// ErrUnimplemented is returned by CPU.Run for instructions which have no meaning in user mode.
	ErrUnimplemented = interpreter.ErrUnimplemented
	// ErrSupervisorCall is returned by CPU.Run for an SVC when no SupervisorCall is configured.
	ErrSupervisorCall = interpreter.ErrSupervisorCall
	// ErrBreakpoint is returned by CPU.Run for a BKPT. PC still points at it.
	ErrBreakpoint = interpreter.ErrBreakpoint
	// ErrFault is returned by CPU.Run when an instruction fetch or data access is outside api.Memory.
	ErrFault = memory.ErrFault
)

// VFPSystemRegister indexes CPU.VFPSystemReg.
type VFPSystemRegister = arm.VFPSystemRegister

const (
	VFPFPSID = arm.VFPFPSID
	VFPFPSCR = arm.VFPFPSCR
	VFPFPEXC = arm.VFPFPEXC
)

// CP15Register indexes CPU.CP15Register.
type CP15Register = arm.CP15Register

const (
	CP15MainID     = arm.CP15MainID
	CP15ThreadUPRW = arm.CP15ThreadUPRW
	CP15ThreadURO  = arm.CP15ThreadURO
	CP15ThreadPRW  = arm.CP15ThreadPRW
)

// CPU is one ARMv6K core running user mode code against an api.Memory.
//
// Registers can be read and written whenever Run is not executing, or from a SupervisorCall.
//
// Note: A CPU is not safe for concurrent use. Use one CPU per guest core.
type CPU interface {
	// PC returns the address of the next instruction.
	PC() uint32
	// SetPC sets the address of the next instruction.
	SetPC(pc uint32)
	// Reg returns general purpose register index, 0 to 15.
	Reg(index int) uint32
	// SetReg sets general purpose register index, 0 to 15.
	SetReg(index int, v uint32)
	// CPSR returns the current program status register.
	CPSR() uint32
	// SetCPSR sets the current program status register. Bit 5 selects Thumb and bit 9 big endian data.
	SetCPSR(cpsr uint32)
	// VFPReg returns word index, 0 to 63, of the VFP register bank.
	VFPReg(index int) uint32
	// SetVFPReg sets word index, 0 to 63, of the VFP register bank.
	SetVFPReg(index int, v uint32)
	// VFPSystemReg returns one of FPSID, FPSCR and FPEXC.
	VFPSystemReg(reg VFPSystemRegister) uint32
	// SetVFPSystemReg sets one of FPSID, FPSCR and FPEXC.
	SetVFPSystemReg(reg VFPSystemRegister, v uint32)
	// CP15Register returns a system control coprocessor register.
	CP15Register(reg CP15Register) uint32
	// SetCP15Register sets a system control coprocessor register.
	SetCP15Register(reg CP15Register, v uint32)

	// Run executes n instructions and returns how many took effect. An instruction whose condition
	// fails counts as executed.
	//
	// Run returns early only with an error, in which case PC points at the instruction that failed, or
	// past it for an SVC.
	Run(n uint64) (executed uint64, err error)
	// Instructions returns the total of instructions executed by Run.
	Instructions() uint64

	// ResetContext initializes ctx for a thread starting at entryPoint in user mode, with arg in r0 and
	// stackTop in SP. An odd entryPoint starts in Thumb state.
	ResetContext(ctx *ThreadContext, stackTop, entryPoint, arg uint32)
	// SaveContext copies the registers of this CPU into ctx.
	SaveContext(ctx *ThreadContext)
	// LoadContext replaces the registers of this CPU with those of ctx.
	LoadContext(ctx *ThreadContext)

	// ClearCache drops every compiled block and zeroes the code cache. Call it when guest code is
	// modified.
	ClearCache()
	// FastClearCache drops every compiled block without zeroing the code cache.
	FastClearCache()
	// Blocks lists the compiled blocks ordered by location. It is always empty with NewConfigInterpreter.
	Blocks() []BlockInfo
	// CodeCacheUsage returns the bytes of code cache used and its capacity.
	CodeCacheUsage() (used, capacity int)

	// Close releases the code cache. The CPU must not be used afterwards.
	Close() error
}

// BlockInfo describes a compiled block.
type BlockInfo struct {
	// PC is the guest address of the first instruction.
	PC uint32
	// Thumb and BigEndian are the modes the block was compiled for.
	Thumb, BigEndian bool
	// Address is the host address of the entry of the block.
	Address uintptr
	// Size is the length in bytes of the host code.
	Size int
	// Instructions is the number of guest instructions in the block.
	Instructions uint32
}

// NewCPU returns a CPU executing from mem with the given config. The CPU starts with every register
// zeroed in ARM user mode.
func NewCPU(mem api.Memory, cfg Config) (CPU, error) {
	c, ok := cfg.(*config)
	if !ok {
		panic(fmt.Errorf("unsupported armjit.Config implementation: %v", cfg))
	}
	logger := c.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ret := &cpu{state: &arm.State{CPSR: arm.ModeUser}}
	ret.interp = interpreter.New(ret.state, mem)
	if fn := c.supervisorCall; fn != nil {
		ret.interp.SupervisorCall = func(imm uint32) error { return fn(ret, imm) }
	}
	if c.engineKind == engineKindJIT {
		e, err := jit.NewEngine(ret.interp, c.codeCacheSize, logger)
		if err != nil {
			return nil, err
		}
		ret.engine = e
	}
	return ret, nil
}

// cpu implements CPU with an interpreter, and a JIT engine when engine is not nil.
type cpu struct {
	state        *arm.State
	interp       *interpreter.Interpreter
	engine       *jit.Engine
	instructions uint64
}

// PC implements CPU.PC
func (c *cpu) PC() uint32 { return c.state.Regs[arm.PC] }

// SetPC implements CPU.SetPC
func (c *cpu) SetPC(pc uint32) { c.state.Regs[arm.PC] = pc }

// Reg implements CPU.Reg
func (c *cpu) Reg(index int) uint32 { return c.state.Regs[index] }

// SetReg implements CPU.SetReg
func (c *cpu) SetReg(index int, v uint32) { c.state.Regs[index] = v }

// CPSR implements CPU.CPSR
func (c *cpu) CPSR() uint32 { return c.state.CPSR }

// SetCPSR implements CPU.SetCPSR
func (c *cpu) SetCPSR(cpsr uint32) { c.state.CPSR = cpsr }

// VFPReg implements CPU.VFPReg
func (c *cpu) VFPReg(index int) uint32 { return c.state.ExtRegs[index] }

// SetVFPReg implements CPU.SetVFPReg
func (c *cpu) SetVFPReg(index int, v uint32) { c.state.ExtRegs[index] = v }

// VFPSystemReg implements CPU.VFPSystemReg
func (c *cpu) VFPSystemReg(reg VFPSystemRegister) uint32 { return c.state.VFP[reg] }

// SetVFPSystemReg implements CPU.SetVFPSystemReg
func (c *cpu) SetVFPSystemReg(reg VFPSystemRegister, v uint32) { c.state.VFP[reg] = v }

// CP15Register implements CPU.CP15Register
func (c *cpu) CP15Register(reg CP15Register) uint32 { return c.state.CP15[reg] }

// SetCP15Register implements CPU.SetCP15Register
func (c *cpu) SetCP15Register(reg CP15Register, v uint32) { c.state.CP15[reg] = v }

// Run implements CPU.Run
func (c *cpu) Run(n uint64) (executed uint64, err error) {
	if c.engine != nil {
		executed, err = c.engine.Run(n)
	} else {
		executed, err = c.interp.Step(n)
	}
	c.instructions += executed
	return
}

// Instructions implements CPU.Instructions
func (c *cpu) Instructions() uint64 { return c.instructions }

// ResetContext implements CPU.ResetContext
func (c *cpu) ResetContext(ctx *ThreadContext, stackTop, entryPoint, arg uint32) {
	*ctx = ThreadContext{SP: stackTop, PC: entryPoint, CPSR: arm.ModeUser}
	ctx.Regs[0] = arg
	if entryPoint&1 != 0 {
		ctx.PC &^= 1
		ctx.CPSR |= arm.CPSRT
	}
}

// SaveContext implements CPU.SaveContext
func (c *cpu) SaveContext(ctx *ThreadContext) {
	s := c.state
	copy(ctx.Regs[:], s.Regs[:arm.SP])
	ctx.SP, ctx.LR, ctx.PC = s.Regs[arm.SP], s.Regs[arm.LR], s.Regs[arm.PC]
	ctx.CPSR = s.CPSR
	ctx.FPURegs = s.ExtRegs
	ctx.FPSCR, ctx.FPEXC = s.VFP[arm.VFPFPSCR], s.VFP[arm.VFPFPEXC]
}

// LoadContext implements CPU.LoadContext
func (c *cpu) LoadContext(ctx *ThreadContext) {
	s := c.state
	copy(s.Regs[:arm.SP], ctx.Regs[:])
	s.Regs[arm.SP], s.Regs[arm.LR], s.Regs[arm.PC] = ctx.SP, ctx.LR, ctx.PC
	s.CPSR = ctx.CPSR
	s.ExtRegs = ctx.FPURegs
	s.VFP[arm.VFPFPSCR], s.VFP[arm.VFPFPEXC] = ctx.FPSCR, ctx.FPEXC
}

// ClearCache implements CPU.ClearCache
func (c *cpu) ClearCache() {
	if c.engine != nil {
		c.engine.ClearCache()
	}
}

// FastClearCache implements CPU.FastClearCache
func (c *cpu) FastClearCache() {
	if c.engine != nil {
		c.engine.FastClearCache()
	}
}

// Blocks implements CPU.Blocks
func (c *cpu) Blocks() []BlockInfo {
	if c.engine == nil {
		return nil
	}
	infos := c.engine.Blocks()
	ret := make([]BlockInfo, 0, len(infos))
	for _, info := range infos {
		ret = append(ret, BlockInfo{
			PC:           info.Location.PC,
			Thumb:        info.Location.Thumb,
			BigEndian:    info.Location.BigEndian,
			Address:      info.Address,
			Size:         info.Size,
			Instructions: info.Instructions,
		})
	}
	return ret
}

// CodeCacheUsage implements CPU.CodeCacheUsage
func (c *cpu) CodeCacheUsage() (used, capacity int) {
	if c.engine == nil {
		return 0, 0
	}
	return c.engine.CodeCacheUsage()
}

// Close implements CPU.Close
func (c *cpu) Close() (err error) {
	if c.engine != nil {
		err = c.engine.Close()
		c.engine = nil
	}
	return
}
