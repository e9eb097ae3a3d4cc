// Package memory implements guest memories and the endian-aware accessors CPUs use on top of
// api.Memory.
package memory

import (
	"encoding/binary"

	"github.com/armjit/armjit/api"
)

// Flat is a contiguous guest memory mapped at Base.
type Flat struct {
	Base   uint32
	Buffer []byte
}

var _ api.Memory = &Flat{}

// NewFlat returns a zeroed memory of size bytes mapped at base.
func NewFlat(base, size uint32) *Flat {
	return &Flat{Base: base, Buffer: make([]byte, size)}
}

// Size returns the size in bytes available.
func (m *Flat) Size() uint32 {
	return uint32(len(m.Buffer))
}

// offset returns the buffer offset of addr if sizeInBytes bytes are available there.
func (m *Flat) offset(addr, sizeInBytes uint32) (uint32, bool) {
	if addr < m.Base {
		return 0, false
	}
	off := addr - m.Base
	return off, uint64(off)+uint64(sizeInBytes) <= uint64(m.Size()) // uint64 prevents overflow on add
}

// ReadByte implements api.Memory ReadByte
func (m *Flat) ReadByte(addr uint32) (byte, bool) {
	off, ok := m.offset(addr, 1)
	if !ok {
		return 0, false
	}
	return m.Buffer[off], true
}

// ReadUint16Le implements api.Memory ReadUint16Le
func (m *Flat) ReadUint16Le(addr uint32) (uint16, bool) {
	off, ok := m.offset(addr, 2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(m.Buffer[off : off+2]), true
}

// ReadUint32Le implements api.Memory ReadUint32Le
func (m *Flat) ReadUint32Le(addr uint32) (uint32, bool) {
	off, ok := m.offset(addr, 4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(m.Buffer[off : off+4]), true
}

// ReadUint64Le implements api.Memory ReadUint64Le
func (m *Flat) ReadUint64Le(addr uint32) (uint64, bool) {
	off, ok := m.offset(addr, 8)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(m.Buffer[off : off+8]), true
}

// WriteByte implements api.Memory WriteByte
func (m *Flat) WriteByte(addr uint32, v byte) bool {
	off, ok := m.offset(addr, 1)
	if !ok {
		return false
	}
	m.Buffer[off] = v
	return true
}

// WriteUint16Le implements api.Memory WriteUint16Le
func (m *Flat) WriteUint16Le(addr uint32, v uint16) bool {
	off, ok := m.offset(addr, 2)
	if !ok {
		return false
	}
	binary.LittleEndian.PutUint16(m.Buffer[off:], v)
	return true
}

// WriteUint32Le implements api.Memory WriteUint32Le
func (m *Flat) WriteUint32Le(addr, v uint32) bool {
	off, ok := m.offset(addr, 4)
	if !ok {
		return false
	}
	binary.LittleEndian.PutUint32(m.Buffer[off:], v)
	return true
}

// WriteUint64Le implements api.Memory WriteUint64Le
func (m *Flat) WriteUint64Le(addr uint32, v uint64) bool {
	off, ok := m.offset(addr, 8)
	if !ok {
		return false
	}
	binary.LittleEndian.PutUint64(m.Buffer[off:], v)
	return true
}

// Write copies val into memory at addr or returns false if out of range.
func (m *Flat) Write(addr uint32, val []byte) bool {
	off, ok := m.offset(addr, uint32(len(val)))
	if !ok {
		return false
	}
	copy(m.Buffer[off:], val)
	return true
}
