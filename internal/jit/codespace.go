package jit

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/armjit/armjit/internal/platform"
)

// errCodeSpaceFull is returned by codeSpace.alloc when the block does not fit in what is left.
var errCodeSpaceFull = errors.New("code space is full")

// codeSpaceAlignment is the alignment of the entry of every block.
const codeSpaceAlignment = 16

// codeSpace is a fixed executable region blocks are copied into one after the other. It never
// grows: blocks jump to each other with rel32 displacements and the engine holds their
// addresses, so the region cannot move. When it is full, the engine drops every block and
// starts over.
type codeSpace struct {
	buf  []byte
	used int
}

func newCodeSpace(size int) (*codeSpace, error) {
	buf, err := platform.MmapCodeSegment(size)
	if err != nil {
		return nil, fmt.Errorf("failed to map %d bytes of executable memory: %w", size, err)
	}
	return &codeSpace{buf: buf}, nil
}

// alloc copies code into the space and returns its offset.
func (s *codeSpace) alloc(code []byte) (int, error) {
	offset := (s.used + codeSpaceAlignment - 1) &^ (codeSpaceAlignment - 1)
	if offset+len(code) > len(s.buf) {
		return 0, errCodeSpaceFull
	}
	copy(s.buf[offset:], code)
	s.used = offset + len(code)
	return offset, nil
}

// address returns the host address of offset.
func (s *codeSpace) address(offset int) uintptr {
	return uintptr(unsafe.Pointer(&s.buf[0])) + uintptr(offset)
}

// bytes returns the size bytes at offset. The slice aliases the executable region.
func (s *codeSpace) bytes(offset, size int) []byte {
	return s.buf[offset : offset+size]
}

// reset makes the whole space available again. zero also overwrites the code written so far.
func (s *codeSpace) reset(zero bool) {
	if zero {
		clear(s.buf[:s.used])
	}
	s.used = 0
}

func (s *codeSpace) size() int { return len(s.buf) }

func (s *codeSpace) close() error {
	if s.buf == nil {
		return nil
	}
	err := platform.MunmapCodeSegment(s.buf)
	s.buf, s.used = nil, 0
	return err
}
