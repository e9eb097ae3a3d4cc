package armjit

// ThreadContext is the register state of a guest thread, saved and restored by the OS layer when it
// switches threads on a CPU.
type ThreadContext struct {
	// Regs are r0 to r12.
	Regs [13]uint32
	SP   uint32
	LR   uint32
	PC   uint32
	CPSR uint32

	// FPURegs is the VFP register bank as 32-bit words.
	FPURegs [64]uint32
	FPSCR   uint32
	FPEXC   uint32
}
