package armgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse("cccc0010100Snnnnddddrrrrvvvvvvvv")
	require.NoError(t, err)
	require.Equal(t, Pattern{Bits: 0x02800000, Mask: 0x0fe00000}, p)

	p, err = Parse("101101100101x000")
	require.NoError(t, err)
	require.Equal(t, Pattern{Bits: 0xb650, Mask: 0xfff7}, p)

	_, err = Parse("0101")
	require.EqualError(t, err, `pattern "0101" has 4 bits`)
	require.Panics(t, func() { MustParse("") })
}

func TestPattern_Fill(t *testing.T) {
	p := MustParse("cccc1010vvvvvvvvvvvvvvvvvvvvvvvv")
	inst := p.Fill(0xffffffff)
	require.Equal(t, uint32(0xfaffffff), inst)
	require.True(t, p.Matches(inst))
	require.True(t, p.Matches(BranchToSelfARM))
	require.False(t, p.Matches(0xeb000000))
}

func TestGenerator_deterministic(t *testing.T) {
	a, b := New(42), New(42)
	require.Equal(t, a.Registers(), b.Registers())
	for i := 0; i < 100; i++ {
		require.Equal(t, a.ARMDataProcessing(), b.ARMDataProcessing())
		require.Equal(t, a.ARMLoadStore(), b.ARMLoadStore())
		require.Equal(t, a.ARMBranch(), b.ARMBranch())
		require.Equal(t, a.Thumb(), b.Thumb())
		require.Equal(t, a.ThumbBranch(), b.ThumbBranch())
	}
}

func TestGenerator_ARMDataProcessing(t *testing.T) {
	g := New(1)
	for i := 0; i < 1000; i++ {
		inst := g.ARMDataProcessing()
		require.NotEqual(t, uint32(0xf), inst>>28, "%#08x has condition NV", inst)
		require.NotEqual(t, uint32(0xf), inst>>12&0xf, "%#08x writes PC", inst)
		matched := false
		for _, p := range armDataProcessing {
			matched = matched || p.Matches(inst)
		}
		require.True(t, matched, "%#08x", inst)
	}
}

func TestGenerator_ARMLoadStore(t *testing.T) {
	g := New(2)
	for i := 0; i < 1000; i++ {
		inst := g.ARMLoadStore()
		if inst>>28 == 0xf {
			require.True(t, armLoadStore[len(armLoadStore)-1].Matches(inst), "%#08x", inst)
			continue
		}
		require.NotEqual(t, uint32(0xf), inst>>16&0xf, "%#08x uses PC as base", inst)
		require.NotEqual(t, uint32(0xf), inst>>12&0xf, "%#08x uses PC as data", inst)
		if inst>>24&1 == 0 {
			require.Zero(t, inst>>21&1, "%#08x writes back with post-indexing", inst)
		}
	}
}

func TestGenerator_ARMMemoryAccess(t *testing.T) {
	g := New(4)
	var exclusive int
	for i := 0; i < 1000; i++ {
		inst := g.ARMMemoryAccess(12, 11)
		require.NotEqual(t, uint32(0xf), inst>>28, "%#08x has condition NV", inst)
		rd := inst >> 12 & 0xf
		require.LessOrEqual(t, rd, uint32(10), "%#08x", inst)
		switch {
		case armLoadExclusive.Matches(inst):
			exclusive++
			require.Equal(t, uint32(11), inst>>16&0xf, "%#08x", inst)
		case armStoreExclusive.Matches(inst):
			exclusive++
			require.Equal(t, uint32(11), inst>>16&0xf, "%#08x", inst)
			require.NotEqual(t, rd, inst&0xf, "%#08x", inst)
			require.LessOrEqual(t, inst&0xf, uint32(10), "%#08x", inst)
		default:
			matched := false
			for _, p := range armOffsetAccess {
				matched = matched || p.Matches(inst)
			}
			require.True(t, matched, "%#08x", inst)
			require.Equal(t, uint32(12), inst>>16&0xf, "%#08x", inst)
		}
	}
	require.True(t, exclusive > 0)
}

func TestGenerator_ThumbBranch(t *testing.T) {
	g := New(3)
	condBranch := MustParse("1101xxxxxxxxxxxx")
	for i := 0; i < 1000; i++ {
		inst := g.ThumbBranch()
		if condBranch.Matches(uint32(inst)) {
			require.LessOrEqual(t, inst>>8&0xf, uint16(0xd), "%#04x", inst)
		}
	}
}

func TestProgram(t *testing.T) {
	var n uint32
	next := func() uint32 { n++; return n }
	require.Equal(t, []uint32{1, 2, 3, BranchToSelfARM}, ARMProgram(3, next))
	require.Equal(t, []uint16{BranchToSelfThumb}, ThumbProgram(0, func() uint16 { return 0 }))
}
