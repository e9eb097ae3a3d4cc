package memory

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/armjit/armjit/api"
)

// ErrFault is returned when a guest access touches an address the memory does not back.
var ErrFault = errors.New("memory fault")

func fault(op string, addr uint32) error {
	return fmt.Errorf("%w: %s at %#08x", ErrFault, op, addr)
}

// Read8 reads a byte at addr.
func Read8(m api.Memory, addr uint32) (uint32, error) {
	v, ok := m.ReadByte(addr)
	if !ok {
		return 0, fault("read8", addr)
	}
	return uint32(v), nil
}

// Read16 reads a halfword at addr in the given data endianness.
func Read16(m api.Memory, addr uint32, bigEndian bool) (uint32, error) {
	v, ok := m.ReadUint16Le(addr)
	if !ok {
		return 0, fault("read16", addr)
	}
	if bigEndian {
		v = bits.ReverseBytes16(v)
	}
	return uint32(v), nil
}

// Read32 reads a word at addr in the given data endianness.
func Read32(m api.Memory, addr uint32, bigEndian bool) (uint32, error) {
	v, ok := m.ReadUint32Le(addr)
	if !ok {
		return 0, fault("read32", addr)
	}
	if bigEndian {
		v = bits.ReverseBytes32(v)
	}
	return v, nil
}

// Read64 reads the two consecutive words at addr, each in the given data endianness. The word
// at addr is returned in the low half.
func Read64(m api.Memory, addr uint32, bigEndian bool) (uint64, error) {
	lo, err := Read32(m, addr, bigEndian)
	if err != nil {
		return 0, err
	}
	hi, err := Read32(m, addr+4, bigEndian)
	if err != nil {
		return 0, err
	}
	return uint64(hi)<<32 | uint64(lo), nil
}

// Write8 writes the low byte of v at addr.
func Write8(m api.Memory, addr, v uint32) error {
	if !m.WriteByte(addr, byte(v)) {
		return fault("write8", addr)
	}
	return nil
}

// Write16 writes the low halfword of v at addr in the given data endianness.
func Write16(m api.Memory, addr, v uint32, bigEndian bool) error {
	h := uint16(v)
	if bigEndian {
		h = bits.ReverseBytes16(h)
	}
	if !m.WriteUint16Le(addr, h) {
		return fault("write16", addr)
	}
	return nil
}

// Write32 writes v at addr in the given data endianness.
func Write32(m api.Memory, addr, v uint32, bigEndian bool) error {
	if bigEndian {
		v = bits.ReverseBytes32(v)
	}
	if !m.WriteUint32Le(addr, v) {
		return fault("write32", addr)
	}
	return nil
}

// Write64 writes the low half of v at addr and the high half at addr+4, each word in the given
// data endianness.
func Write64(m api.Memory, addr uint32, v uint64, bigEndian bool) error {
	if err := Write32(m, addr, uint32(v), bigEndian); err != nil {
		return err
	}
	return Write32(m, addr+4, uint32(v>>32), bigEndian)
}

// FetchARM reads an ARM instruction word. Instruction fetches are little-endian regardless of
// CPSR.E.
func FetchARM(m api.Memory, addr uint32) (uint32, error) {
	v, ok := m.ReadUint32Le(addr)
	if !ok {
		return 0, fault("fetch", addr)
	}
	return v, nil
}

// FetchThumb reads a Thumb instruction halfword.
func FetchThumb(m api.Memory, addr uint32) (uint16, error) {
	v, ok := m.ReadUint16Le(addr)
	if !ok {
		return 0, fault("fetch", addr)
	}
	return v, nil
}
