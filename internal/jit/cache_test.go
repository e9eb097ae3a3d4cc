package jit

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	arm := Location{PC: 0x100}
	thumb := Location{PC: 0x100, Thumb: true}
	be := Location{PC: 0x100, BigEndian: true}

	require.True(t, arm.Less(thumb))
	require.False(t, thumb.Less(arm))
	require.True(t, arm.Less(be))
	require.True(t, be.Less(thumb))
	require.False(t, arm.Less(arm))
	require.True(t, thumb.Less(Location{PC: 0x102}))

	require.Equal(t, "0x00000100/arm/le", arm.String())
	require.Equal(t, "0x00000100/thumb/be", Location{PC: 0x100, Thumb: true, BigEndian: true}.String())
}

func newTestCache(size int) *cache {
	return newCache(&codeSpace{buf: make([]byte, size)})
}

// testBlock returns a block of code which is a RET followed by one patch slot per target.
func testBlock(l Location, targets ...Location) *compiledBlock {
	cb := &compiledBlock{location: l, code: []byte{0xc3}, instructions: 1}
	for _, target := range targets {
		cb.jumps = append(cb.jumps, jumpSite{offset: uint64(len(cb.code)), target: target})
		cb.code = append(cb.code, patchSlotNOP...)
	}
	return cb
}

// requirePatched requires the slot at offset to jump to target.
func requirePatched(t *testing.T, c *cache, slot, target int) {
	code := c.space.bytes(slot, len(patchSlotNOP))
	require.Equal(t, jgRel32[:], code[:2])
	require.Equal(t, int32(target-(slot+len(patchSlotNOP))), int32(binary.LittleEndian.Uint32(code[2:])))
}

func TestCache_insert(t *testing.T) {
	c := newTestCache(1024)
	a, b := Location{PC: 0x0}, Location{PC: 0x40}

	ba, err := c.insert(testBlock(a, b, a))
	require.NoError(t, err)
	require.Equal(t, 0, ba.offset)
	// The jump to itself is linked right away, the one to b waits.
	requirePatched(t, c, 1+len(patchSlotNOP), 0)
	require.Equal(t, patchSlotNOP, c.space.bytes(1, len(patchSlotNOP)))
	require.Equal(t, 1, c.pendingPatches(b))

	bb, err := c.insert(testBlock(b, a))
	require.NoError(t, err)
	require.Equal(t, 16, bb.offset)
	requirePatched(t, c, 1, 16)
	requirePatched(t, c, 16+1, 0)
	require.Zero(t, c.pendingPatches(b))

	got, ok := c.lookup(b)
	require.True(t, ok)
	require.Equal(t, bb, got)
	_, ok = c.lookup(Location{PC: 0x40, Thumb: true})
	require.False(t, ok)

	require.PanicsWithValue(t, "BUG: block at 0x00000040/arm/le is already compiled", func() {
		_, _ = c.insert(testBlock(b))
	})
}

func TestCache_patchChain(t *testing.T) {
	// Blocks compiled in reverse order of execution each wait for the previous one.
	c := newTestCache(1024)
	locs := []Location{{PC: 0x0}, {PC: 0x4}, {PC: 0x8}, {PC: 0xc}}
	offsets := map[Location]int{}
	for i := len(locs) - 1; i >= 0; i-- {
		var targets []Location
		if i+1 < len(locs) {
			targets = append(targets, locs[i+1])
		}
		if i > 0 {
			targets = append(targets, locs[i-1])
		}
		b, err := c.insert(testBlock(locs[i], targets...))
		require.NoError(t, err)
		offsets[locs[i]] = b.offset
	}
	for i := 0; i < len(locs); i++ {
		slot := offsets[locs[i]] + 1
		if i+1 < len(locs) {
			requirePatched(t, c, slot, offsets[locs[i+1]])
			slot += len(patchSlotNOP)
		}
		if i > 0 {
			requirePatched(t, c, slot, offsets[locs[i-1]])
		}
		require.Zero(t, c.pendingPatches(locs[i]))
	}

	infos := c.infos()
	require.Equal(t, 4, len(infos))
	for i, info := range infos {
		require.Equal(t, locs[i], info.Location)
		require.Equal(t, c.space.address(offsets[locs[i]]), info.Address)
		require.Equal(t, uint32(1), info.Instructions)
	}
}

func TestCache_full(t *testing.T) {
	c := newTestCache(32)
	_, err := c.insert(testBlock(Location{PC: 0}, Location{PC: 8}))
	require.NoError(t, err)
	_, err = c.insert(testBlock(Location{PC: 4}, Location{PC: 8}))
	require.NoError(t, err)
	require.Equal(t, 2, c.pendingPatches(Location{PC: 8}))

	_, err = c.insert(testBlock(Location{PC: 8}))
	require.ErrorIs(t, err, errCodeSpaceFull)
	_, ok := c.lookup(Location{PC: 8})
	require.False(t, ok)

	c.clear(true)
	require.Zero(t, c.len())
	require.Zero(t, c.pendingPatches(Location{PC: 8}))
	require.Equal(t, make([]byte, 32), c.space.buf)

	b, err := c.insert(testBlock(Location{PC: 8}))
	require.NoError(t, err)
	require.Equal(t, 0, b.offset)
	require.Equal(t, 1, c.len())
}

func TestCache_patchCorrupted(t *testing.T) {
	c := newTestCache(64)
	_, err := c.insert(testBlock(Location{PC: 0}, Location{PC: 4}))
	require.NoError(t, err)
	c.space.buf[1] = 0x90
	require.Panics(t, func() { _, _ = c.insert(testBlock(Location{PC: 4})) })
}

func TestCodeSpace(t *testing.T) {
	s := &codeSpace{buf: make([]byte, 40)}
	offset, err := s.alloc([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 0, offset)
	offset, err = s.alloc([]byte{4})
	require.NoError(t, err)
	require.Equal(t, 16, offset)
	require.Equal(t, 17, s.used)
	_, err = s.alloc(make([]byte, 9))
	require.ErrorIs(t, err, errCodeSpaceFull)
	offset, err = s.alloc(make([]byte, 8))
	require.NoError(t, err)
	require.Equal(t, 32, offset)
	require.Equal(t, []byte{4}, s.bytes(16, 1))
	require.Equal(t, s.address(0)+16, s.address(16))

	s.reset(false)
	require.Zero(t, s.used)
	require.Equal(t, []byte{1, 2, 3}, s.bytes(0, 3))
	require.Equal(t, 40, s.size())
}
