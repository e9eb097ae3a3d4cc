package jit

import (
	"encoding/binary"
	"fmt"

	"github.com/google/btree"
)

// Location identifies a block: the guest address of its first instruction and the instruction
// set and data endianness it was compiled for. Blocks at the same PC compiled for another mode
// are distinct.
type Location struct {
	PC        uint32
	Thumb     bool
	BigEndian bool
}

// Less orders locations by PC, ARM before Thumb and little before big endian.
func (l Location) Less(o Location) bool {
	if l.PC != o.PC {
		return l.PC < o.PC
	}
	if l.Thumb != o.Thumb {
		return !l.Thumb
	}
	return !l.BigEndian && o.BigEndian
}

func (l Location) String() string {
	mode, e := "arm", "le"
	if l.Thumb {
		mode = "thumb"
	}
	if l.BigEndian {
		e = "be"
	}
	return fmt.Sprintf("%#08x/%s/%s", l.PC, mode, e)
}

// BlockInfo describes a compiled block.
type BlockInfo struct {
	Location Location
	// Address is the host address of the entry of the block.
	Address uintptr
	// Size is the length in bytes of the host code.
	Size int
	// Instructions is the number of guest instructions compiled into the block.
	Instructions uint32
}

type block struct {
	location     Location
	offset, size int
	instructions uint32
}

// jgRel32 is the opcode of the jump written over a patch slot.
var jgRel32 = [2]byte{0x0f, 0x8f}

// cache owns the compiled blocks. Every location is compiled at most once until the next
// clear. A jump to a location not compiled yet is left as a NOP slot, recorded in patches and
// rewritten when the location is inserted.
type cache struct {
	space  *codeSpace
	blocks map[Location]*block
	// index orders blocks by location for listing.
	index *btree.BTreeG[*block]
	// patches are the code space offsets of the slots jumping to each location not compiled yet.
	patches map[Location][]int
}

func newCache(space *codeSpace) *cache {
	return &cache{
		space:   space,
		blocks:  map[Location]*block{},
		index:   btree.NewG(8, func(a, b *block) bool { return a.location.Less(b.location) }),
		patches: map[Location][]int{},
	}
}

func (c *cache) lookup(l Location) (*block, bool) {
	b, ok := c.blocks[l]
	return b, ok
}

// insert copies a compiled block into the code space and links it: its own jumps to compiled
// blocks are patched right away, and the slots waiting for it are patched to its entry.
// It panics if the location is already compiled.
func (c *cache) insert(cb *compiledBlock) (*block, error) {
	if _, ok := c.blocks[cb.location]; ok {
		panic(fmt.Sprintf("BUG: block at %s is already compiled", cb.location))
	}
	offset, err := c.space.alloc(cb.code)
	if err != nil {
		return nil, err
	}
	b := &block{location: cb.location, offset: offset, size: len(cb.code), instructions: cb.instructions}
	c.blocks[b.location] = b
	c.index.ReplaceOrInsert(b)

	for _, j := range cb.jumps {
		slot := offset + int(j.offset)
		if target, ok := c.blocks[j.target]; ok {
			c.patch(slot, target)
		} else {
			c.patches[j.target] = append(c.patches[j.target], slot)
		}
	}
	for _, slot := range c.patches[b.location] {
		c.patch(slot, b)
	}
	delete(c.patches, b.location)
	return b, nil
}

// patch rewrites the NOP slot at offset into a jump to target, taken while budget remains.
func (c *cache) patch(slot int, target *block) {
	code := c.space.bytes(slot, len(patchSlotNOP))
	if string(code) != string(patchSlotNOP) {
		panic(fmt.Sprintf("BUG: patch slot at %#x is %x", slot, code))
	}
	rel := target.offset - (slot + len(patchSlotNOP))
	code[0], code[1] = jgRel32[0], jgRel32[1]
	binary.LittleEndian.PutUint32(code[2:], uint32(int32(rel)))
}

// pendingPatches returns how many slots wait for l to be compiled.
func (c *cache) pendingPatches(l Location) int {
	return len(c.patches[l])
}

// clear drops every block. See codeSpace.reset for zero.
func (c *cache) clear(zero bool) {
	c.blocks = map[Location]*block{}
	c.index.Clear(false)
	c.patches = map[Location][]int{}
	c.space.reset(zero)
}

func (c *cache) len() int { return len(c.blocks) }

// infos lists the compiled blocks in location order.
func (c *cache) infos() []BlockInfo {
	ret := make([]BlockInfo, 0, c.index.Len())
	c.index.Ascend(func(b *block) bool {
		ret = append(ret, BlockInfo{
			Location:     b.location,
			Address:      c.space.address(b.offset),
			Size:         b.size,
			Instructions: b.instructions,
		})
		return true
	})
	return ret
}
