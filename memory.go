package armjit

import "github.com/armjit/armjit/internal/memory"

// FlatMemory is an api.Memory backed by one contiguous byte slice mapped at Base.
type FlatMemory = memory.Flat

// NewFlatMemory returns a zeroed FlatMemory of size bytes mapped at guest address base.
func NewFlatMemory(base, size uint32) *FlatMemory {
	return memory.NewFlat(base, size)
}
