package jit

import (
	"fmt"

	"github.com/armjit/armjit/internal/arm"
	"github.com/armjit/armjit/internal/asm"
	"github.com/armjit/armjit/internal/asm/amd64"
)

// amd64ReservedRegisterForState holds the address of the jitState during the execution of
// compiled code. It is set by jitcall.
const amd64ReservedRegisterForState = amd64.RegR15

// amd64AllocatableRegisters are the host registers the allocator hands out. SP and BP belong to
// the Go stack, R14 holds the current goroutine and R15 the jitState.
var amd64AllocatableRegisters = []asm.Register{
	amd64.RegAX, amd64.RegCX, amd64.RegDX, amd64.RegBX, amd64.RegSI, amd64.RegDI,
	amd64.RegR8, amd64.RegR9, amd64.RegR10, amd64.RegR11, amd64.RegR12, amd64.RegR13,
}

// operand is where the current value of a guest register can be accessed: either a host
// register, or the guest register's slot in jitState.
type operand struct {
	// register is asm.NilRegister when the operand is in memory.
	register asm.Register
	offset   int64
}

func (o operand) onRegister() bool { return o.register != asm.NilRegister }

func (o operand) String() string {
	if o.onRegister() {
		return amd64.RegisterName(o.register)
	}
	return fmt.Sprintf("%d(%s)", o.offset, amd64.RegisterName(amd64ReservedRegisterForState))
}

// guestBinding tracks one guest register during the compilation of a block.
type guestBinding struct {
	// host is the index into amd64AllocatableRegisters, or -1 when the value lives in jitState.
	host int
	// dirty means the host register is newer than jitState.
	dirty  bool
	locked bool
}

// hostBinding tracks one allocatable host register.
type hostBinding struct {
	// guest is the guest register cached here, only meaningful when bound is set.
	guest arm.Reg
	bound bool
	// temp is set for scratch registers handed out by allocTemp.
	temp bool
	// manual is set for registers reserved with lockHost.
	manual bool
}

// registerAllocator maps guest registers onto host registers while a block is compiled. Every
// bind or lock must be paired with an unlock while compiling the same instruction, and all
// bindings are written back with flushEverything wherever compiled code may exit or join
// another path.
//
// Allocation is first fit over amd64AllocatableRegisters. When no register is free, the first
// bound register whose guest is not locked is written back and reused.
type registerAllocator struct {
	assembler amd64.Assembler
	guests    [arm.NumRegs]guestBinding
	hosts     []hostBinding
}

func newRegisterAllocator(a amd64.Assembler) *registerAllocator {
	r := &registerAllocator{assembler: a, hosts: make([]hostBinding, len(amd64AllocatableRegisters))}
	for i := range r.guests {
		r.guests[i].host = -1
	}
	return r
}

func (r *registerAllocator) String() string {
	var s string
	for g, b := range r.guests {
		if b.host < 0 && !b.locked {
			continue
		}
		s += fmt.Sprintf("%s=", arm.Reg(g))
		if b.host >= 0 {
			s += amd64.RegisterName(amd64AllocatableRegisters[b.host])
		} else {
			s += "mem"
		}
		if b.dirty {
			s += "(dirty)"
		}
		if b.locked {
			s += "(locked)"
		}
		s += " "
	}
	return s
}

func checkGuest(g arm.Reg) {
	if g >= arm.PC {
		panic(fmt.Sprintf("BUG: %s cannot be allocated", g))
	}
}

// bindForRead returns a host register holding the current value of g and locks g.
func (r *registerAllocator) bindForRead(g arm.Reg) asm.Register {
	checkGuest(g)
	b := &r.guests[g]
	if b.host < 0 {
		b.host = r.allocate()
		r.hosts[b.host] = hostBinding{guest: g, bound: true}
		r.assembler.CompileMemoryToRegister(amd64.MOVL, amd64ReservedRegisterForState, regOffset(g),
			amd64AllocatableRegisters[b.host])
	}
	b.locked = true
	return amd64AllocatableRegisters[b.host]
}

// bindForWrite returns a host register which will hold the new value of g and locks g. The
// previous value is not loaded.
func (r *registerAllocator) bindForWrite(g arm.Reg) asm.Register {
	checkGuest(g)
	b := &r.guests[g]
	if b.host < 0 {
		b.host = r.allocate()
		r.hosts[b.host] = hostBinding{guest: g, bound: true}
	}
	b.locked, b.dirty = true, true
	return amd64AllocatableRegisters[b.host]
}

// lockForRead returns where the current value of g is without loading it into a host register.
func (r *registerAllocator) lockForRead(g arm.Reg) operand {
	checkGuest(g)
	b := &r.guests[g]
	b.locked = true
	if b.host < 0 {
		return operand{offset: regOffset(g)}
	}
	return operand{register: amd64AllocatableRegisters[b.host]}
}

// lockForWrite returns where the new value of g must be written without binding it to a host
// register.
func (r *registerAllocator) lockForWrite(g arm.Reg) operand {
	o := r.lockForRead(g)
	if o.onRegister() {
		r.guests[g].dirty = true
	}
	return o
}

// unlock releases the lock taken by any of the bind or lock methods.
func (r *registerAllocator) unlock(g arm.Reg) {
	checkGuest(g)
	if !r.guests[g].locked {
		panic(fmt.Sprintf("BUG: %s is not locked", g))
	}
	r.guests[g].locked = false
}

// allocTemp returns a scratch host register unrelated to any guest register.
func (r *registerAllocator) allocTemp() asm.Register {
	i := r.allocate()
	r.hosts[i] = hostBinding{temp: true}
	return amd64AllocatableRegisters[i]
}

// releaseTemp returns a register obtained with allocTemp.
func (r *registerAllocator) releaseTemp(reg asm.Register) {
	i := hostIndex(reg)
	if !r.hosts[i].temp {
		panic(fmt.Sprintf("BUG: %s is not a temporary register", amd64.RegisterName(reg)))
	}
	r.hosts[i] = hostBinding{}
}

// lockHost reserves reg, writing back the guest register it holds if any. The allocator never
// hands out a reserved register until unlockHost.
//
// Compiled blocks do not call host helpers yet; lockHost is the hook a native call path uses to
// pin argument registers such as AX and DI across the call.
func (r *registerAllocator) lockHost(reg asm.Register) {
	i := hostIndex(reg)
	h := &r.hosts[i]
	switch {
	case h.manual || h.temp:
		panic(fmt.Sprintf("BUG: %s is already in use", amd64.RegisterName(reg)))
	case h.bound:
		if r.guests[h.guest].locked {
			panic(fmt.Sprintf("BUG: %s holds locked %s", amd64.RegisterName(reg), h.guest))
		}
		r.spill(i)
	}
	r.hosts[i] = hostBinding{manual: true}
}

// unlockHost releases a register reserved with lockHost.
func (r *registerAllocator) unlockHost(reg asm.Register) {
	i := hostIndex(reg)
	if !r.hosts[i].manual {
		panic(fmt.Sprintf("BUG: %s is not locked", amd64.RegisterName(reg)))
	}
	r.hosts[i] = hostBinding{}
}

// flushEverything writes back every dirty guest register and frees every host register bound
// to a guest register. Temporary and manually locked registers are kept.
func (r *registerAllocator) flushEverything() {
	for i := range r.hosts {
		if !r.hosts[i].bound {
			continue
		}
		if g := r.hosts[i].guest; r.guests[g].locked {
			panic(fmt.Sprintf("BUG: flush with %s locked", g))
		}
		r.spill(i)
	}
}

// assertNoLocked panics if a guest register, temporary or manually locked host register is
// still held.
func (r *registerAllocator) assertNoLocked() {
	for g := range r.guests {
		if r.guests[g].locked {
			panic(fmt.Sprintf("BUG: %s is still locked", arm.Reg(g)))
		}
	}
	for i := range r.hosts {
		if r.hosts[i].temp || r.hosts[i].manual {
			panic(fmt.Sprintf("BUG: %s is still locked", amd64.RegisterName(amd64AllocatableRegisters[i])))
		}
	}
}

// allocate returns the index of a free host register, evicting a guest register if necessary.
func (r *registerAllocator) allocate() int {
	for i := range r.hosts {
		if h := r.hosts[i]; !h.bound && !h.temp && !h.manual {
			return i
		}
	}
	for i := range r.hosts {
		if h := r.hosts[i]; h.bound && !r.guests[h.guest].locked {
			r.spill(i)
			return i
		}
	}
	panic("BUG: all host registers are locked")
}

// spill writes back the guest register bound to host register i if dirty and unbinds it.
func (r *registerAllocator) spill(i int) {
	g := r.hosts[i].guest
	if r.guests[g].dirty {
		r.assembler.CompileRegisterToMemory(amd64.MOVL, amd64AllocatableRegisters[i],
			amd64ReservedRegisterForState, regOffset(g))
	}
	r.guests[g] = guestBinding{host: -1}
	r.hosts[i] = hostBinding{}
}

func hostIndex(reg asm.Register) int {
	for i, r := range amd64AllocatableRegisters {
		if r == reg {
			return i
		}
	}
	panic(fmt.Sprintf("BUG: %s is not allocatable", amd64.RegisterName(reg)))
}
