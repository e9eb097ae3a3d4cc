package arm

// CPSR bits.
const (
	CPSRN uint32 = 1 << 31
	CPSRZ uint32 = 1 << 30
	CPSRC uint32 = 1 << 29
	CPSRV uint32 = 1 << 28
	CPSRQ uint32 = 1 << 27
	CPSRE uint32 = 1 << 9
	CPSRA uint32 = 1 << 8
	CPSRI uint32 = 1 << 7
	CPSRF uint32 = 1 << 6
	CPSRT uint32 = 1 << 5

	// CPSRGE holds the four GE bits set by the parallel add/subtract instructions.
	CPSRGE uint32 = 0xf << 16
	// CPSRMode holds the processor mode.
	CPSRMode uint32 = 0x1f
)

const (
	// ModeUser is the only processor mode guest code runs in.
	ModeUser uint32 = 0x10
	// ModeSystem shares the user mode register bank.
	ModeSystem uint32 = 0x1f
)

// ExclusiveGranuleMask masks an address down to the reservation granule of the exclusive monitor.
const ExclusiveGranuleMask uint32 = 0xFFFFFFF8

// VFPSystemRegister indexes State.VFP.
type VFPSystemRegister int

const (
	VFPFPSID VFPSystemRegister = iota
	VFPFPSCR
	VFPFPEXC
	NumVFPSystemRegisters
)

// CP15Register indexes State.CP15.
type CP15Register int

const (
	// CP15MainID is c0, c0, 0.
	CP15MainID CP15Register = iota
	// CP15ThreadUPRW is the user read/write thread ID register (c13, c0, 2).
	CP15ThreadUPRW
	// CP15ThreadURO is the user read-only thread ID register (c13, c0, 3).
	CP15ThreadURO
	// CP15ThreadPRW is the privileged thread ID register (c13, c0, 4).
	CP15ThreadPRW
	NumCP15Registers
)

// NumExtRegs is the number of 32-bit words in the VFP register bank.
const NumExtRegs = 64

// State is the architectural state of one guest core.
type State struct {
	Regs [NumRegs]uint32
	CPSR uint32

	ExtRegs [NumExtRegs]uint32
	VFP     [NumVFPSystemRegisters]uint32
	CP15    [NumCP15Registers]uint32

	// ExclusiveTag is the reservation granule of the last LDREX, masked with ExclusiveGranuleMask.
	ExclusiveTag uint32
	// ExclusiveState is true while a reservation is outstanding.
	ExclusiveState bool
}

// Thumb returns true when the core is in Thumb state.
func (s *State) Thumb() bool { return s.CPSR&CPSRT != 0 }

// BigEndian returns true when data accesses are big-endian.
func (s *State) BigEndian() bool { return s.CPSR&CPSRE != 0 }

// Flags returns the N, Z, C and V flags.
func (s *State) Flags() (n, z, c, v bool) {
	return s.CPSR&CPSRN != 0, s.CPSR&CPSRZ != 0, s.CPSR&CPSRC != 0, s.CPSR&CPSRV != 0
}

// SetFlags replaces the N, Z, C and V flags.
func (s *State) SetFlags(n, z, c, v bool) {
	s.CPSR = s.CPSR&^(CPSRN|CPSRZ|CPSRC|CPSRV) |
		flagBit(n, CPSRN) | flagBit(z, CPSRZ) | flagBit(c, CPSRC) | flagBit(v, CPSRV)
}

// SetBit sets or clears the given CPSR bit.
func (s *State) SetBit(bit uint32, on bool) {
	s.CPSR = s.CPSR&^bit | flagBit(on, bit)
}

// ConditionPassed evaluates c against the current flags.
func (s *State) ConditionPassed(c Cond) bool {
	n, z, carry, v := s.Flags()
	return c.Passed(n, z, carry, v)
}

// ClearExclusive drops the outstanding reservation, if any.
func (s *State) ClearExclusive() {
	s.ExclusiveState = false
}

// SetExclusive records a reservation on the granule containing addr.
func (s *State) SetExclusive(addr uint32) {
	s.ExclusiveTag = addr & ExclusiveGranuleMask
	s.ExclusiveState = true
}

// IsExclusive returns true when a reservation covering addr is outstanding.
func (s *State) IsExclusive(addr uint32) bool {
	return s.ExclusiveState && s.ExclusiveTag == addr&ExclusiveGranuleMask
}

func flagBit(on bool, bit uint32) uint32 {
	if on {
		return bit
	}
	return 0
}
