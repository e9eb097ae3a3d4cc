// Package api includes constants and interfaces used by both end-users and internal implementations.
package api

// Memory is the 32-bit guest address space a CPU loads from and stores to.
//
// All multi-byte accessors are little-endian. Big-endian data accesses (CPSR.E set) are composed
// by the CPU from these by swapping bytes, so implementations never need to know the guest
// endianness.
//
// Accessors return false when the address is not backed by memory. The CPU reports this as a
// fault to the caller of Run rather than continuing.
//
// Note: A CPU calls Memory from the goroutine that called Run. Implementations shared between
// CPUs must do their own locking.
type Memory interface {
	// ReadByte reads a single byte at the address or returns false if out of range.
	ReadByte(addr uint32) (byte, bool)

	// ReadUint16Le reads a uint16 in little-endian encoding at the address or returns false if
	// out of range.
	ReadUint16Le(addr uint32) (uint16, bool)

	// ReadUint32Le reads a uint32 in little-endian encoding at the address or returns false if
	// out of range.
	ReadUint32Le(addr uint32) (uint32, bool)

	// ReadUint64Le reads a uint64 in little-endian encoding at the address or returns false if
	// out of range.
	ReadUint64Le(addr uint32) (uint64, bool)

	// WriteByte writes a single byte at the address or returns false if out of range.
	WriteByte(addr uint32, v byte) bool

	// WriteUint16Le writes the value in little-endian encoding at the address or returns false
	// if out of range.
	WriteUint16Le(addr uint32, v uint16) bool

	// WriteUint32Le writes the value in little-endian encoding at the address or returns false
	// if out of range.
	WriteUint32Le(addr, v uint32) bool

	// WriteUint64Le writes the value in little-endian encoding at the address or returns false
	// if out of range.
	WriteUint64Le(addr uint32, v uint64) bool
}
