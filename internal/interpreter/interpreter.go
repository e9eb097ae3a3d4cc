// Package interpreter executes guest instructions one at a time over an arm.State. It is the
// fallback for instructions the recompiler does not translate and the reference its output is
// tested against.
package interpreter

import (
	"errors"
	"fmt"

	"github.com/armjit/armjit/api"
	"github.com/armjit/armjit/internal/arm"
	"github.com/armjit/armjit/internal/decoder"
	"github.com/armjit/armjit/internal/memory"
)

var (
	// ErrUnimplemented is returned for instructions this package does not execute, such as the
	// privileged and coprocessor forms that have no meaning for user mode code.
	ErrUnimplemented = errors.New("unimplemented instruction")
	// ErrSupervisorCall is returned by SVC when no SupervisorCall handler is set. PC already
	// points past the SVC instruction.
	ErrSupervisorCall = errors.New("supervisor call")
	// ErrBreakpoint is returned by BKPT. PC still points at the BKPT instruction.
	ErrBreakpoint = errors.New("breakpoint")
)

// SupervisorCall handles an SVC instruction with the given immediate. PC already points past the
// SVC instruction when it is called.
type SupervisorCall func(imm uint32) error

// Interpreter executes instructions of State against Memory.
type Interpreter struct {
	State  *arm.State
	Memory api.Memory
	// SupervisorCall is optional. When nil, SVC returns ErrSupervisorCall.
	SupervisorCall SupervisorCall

	// pc is the address of the instruction being executed.
	pc uint32
	// size is the length of the instruction being executed: 2 or 4 bytes.
	size uint32
	// branched is set when the instruction being executed wrote PC.
	branched bool
	// retired is set once the instruction being executed has taken effect.
	retired bool
}

// New returns an Interpreter of state over mem.
func New(state *arm.State, mem api.Memory) *Interpreter {
	return &Interpreter{State: state, Memory: mem}
}

var _ decoder.Visitor = &Interpreter{}

// Step executes up to n instructions and returns how many took effect, one tick each. An
// instruction whose condition fails still counts. On error, the returned count includes the
// failing instruction only if it took effect before the error (SVC).
func (i *Interpreter) Step(n uint64) (ticks uint64, err error) {
	for ticks < n {
		err = i.step()
		if i.retired {
			ticks++
		}
		if err != nil {
			return
		}
	}
	return
}

func (i *Interpreter) step() (err error) {
	s := i.State
	i.branched, i.retired = false, false

	var inst *decoder.Instruction
	var word uint32
	if s.Thumb() {
		i.pc, i.size = s.Regs[arm.PC]&^1, 2
		var half uint16
		if half, err = memory.FetchThumb(i.Memory, i.pc); err != nil {
			return
		}
		word = uint32(half)
		inst, err = decoder.DecodeThumb(half)
	} else {
		i.pc, i.size = s.Regs[arm.PC]&^3, 4
		if word, err = memory.FetchARM(i.Memory, i.pc); err != nil {
			return
		}
		inst, err = decoder.DecodeARM(word)
	}
	if err != nil {
		return
	}

	if err = inst.Visit(i, word); err != nil {
		return
	}
	if !i.branched {
		s.Regs[arm.PC] = i.pc + i.size
	}
	i.retired = true
	return
}

func (i *Interpreter) thumb() bool { return i.State.Thumb() }

func (i *Interpreter) bigEndian() bool { return i.State.BigEndian() }

func (i *Interpreter) passed(cond arm.Cond) bool { return i.State.ConditionPassed(cond) }

func (i *Interpreter) carry() bool { return i.State.CPSR&arm.CPSRC != 0 }

// reg reads r, where PC reads as the address of the current instruction plus 8 in ARM state and
// plus 4 in Thumb state.
func (i *Interpreter) reg(r arm.Reg) uint32 {
	if r == arm.PC {
		if i.thumb() {
			return i.pc + 4
		}
		return i.pc + 8
	}
	return i.State.Regs[r]
}

// base reads r as a base address, where PC is word aligned as for literal loads and ADR.
func (i *Interpreter) base(r arm.Reg) uint32 {
	if r == arm.PC {
		return i.reg(r) &^ 3
	}
	return i.State.Regs[r]
}

// setReg writes a data processing result. Writing PC branches without changing state.
func (i *Interpreter) setReg(r arm.Reg, v uint32) {
	if r == arm.PC {
		i.branchWritePC(v)
		return
	}
	i.State.Regs[r] = v
}

// loadReg writes a loaded value. Loading PC may change between ARM and Thumb state.
func (i *Interpreter) loadReg(r arm.Reg, v uint32) {
	if r == arm.PC {
		i.bxWritePC(v)
		return
	}
	i.State.Regs[r] = v
}

func (i *Interpreter) branchWritePC(v uint32) {
	if i.thumb() {
		v &^= 1
	} else {
		v &^= 3
	}
	i.State.Regs[arm.PC] = v
	i.branched = true
}

func (i *Interpreter) bxWritePC(v uint32) {
	i.State.SetBit(arm.CPSRT, v&1 != 0)
	i.branchWritePC(v)
}

func (i *Interpreter) setNZ(v uint32) {
	i.State.SetBit(arm.CPSRN, v&(1<<31) != 0)
	i.State.SetBit(arm.CPSRZ, v == 0)
}

func (i *Interpreter) setQ() {
	i.State.CPSR |= arm.CPSRQ
}

func (i *Interpreter) unimplemented(name string) error {
	return fmt.Errorf("%w: %s at %#08x", ErrUnimplemented, name, i.pc)
}

func (i *Interpreter) undefined() error {
	return fmt.Errorf("%w at %#08x", decoder.ErrUndefinedInstruction, i.pc)
}

// unimplementedIf fails only when the condition passes: a skipped instruction has no effect
// regardless of what it would do.
func (i *Interpreter) unimplementedIf(cond arm.Cond, name string) error {
	if !i.passed(cond) {
		return nil
	}
	return i.unimplemented(name)
}
