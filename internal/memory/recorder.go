package memory

import (
	"fmt"

	"github.com/armjit/armjit/api"
)

// Write is one store observed by a Recorder.
type Write struct {
	Addr  uint32
	Size  uint8
	Value uint64
}

// String implements fmt.Stringer.
func (w Write) String() string {
	return fmt.Sprintf("[%#08x]%d <- %#x", w.Addr, w.Size, w.Value)
}

// Recorder is an api.Memory which forwards to Memory and records every successful store in
// order.
type Recorder struct {
	api.Memory
	Writes []Write
}

var _ api.Memory = &Recorder{}

// NewRecorder wraps m.
func NewRecorder(m api.Memory) *Recorder {
	return &Recorder{Memory: m}
}

func (r *Recorder) record(ok bool, addr uint32, size uint8, v uint64) bool {
	if ok {
		r.Writes = append(r.Writes, Write{Addr: addr, Size: size, Value: v})
	}
	return ok
}

// WriteByte implements api.Memory WriteByte
func (r *Recorder) WriteByte(addr uint32, v byte) bool {
	return r.record(r.Memory.WriteByte(addr, v), addr, 1, uint64(v))
}

// WriteUint16Le implements api.Memory WriteUint16Le
func (r *Recorder) WriteUint16Le(addr uint32, v uint16) bool {
	return r.record(r.Memory.WriteUint16Le(addr, v), addr, 2, uint64(v))
}

// WriteUint32Le implements api.Memory WriteUint32Le
func (r *Recorder) WriteUint32Le(addr, v uint32) bool {
	return r.record(r.Memory.WriteUint32Le(addr, v), addr, 4, uint64(v))
}

// WriteUint64Le implements api.Memory WriteUint64Le
func (r *Recorder) WriteUint64Le(addr uint32, v uint64) bool {
	return r.record(r.Memory.WriteUint64Le(addr, v), addr, 8, v)
}

// Reset forgets the recorded stores.
func (r *Recorder) Reset() {
	r.Writes = r.Writes[:0]
}
