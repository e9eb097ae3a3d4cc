package memory

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func TestFlat(t *testing.T) {
	m := NewFlat(0x1000, 16)
	require.Equal(t, uint32(16), m.Size())

	require.True(t, m.WriteUint32Le(0x1000, 0x11223344))
	v, ok := m.ReadUint32Le(0x1000)
	require.True(t, ok)
	require.Equal(t, uint32(0x11223344), v)
	b, ok := m.ReadByte(0x1000)
	require.True(t, ok)
	require.Equal(t, byte(0x44), b)

	require.True(t, m.WriteUint64Le(0x1008, 0x0102030405060708))
	require.False(t, m.WriteUint64Le(0x1009, 0))
	require.False(t, m.WriteByte(0xfff, 0))
	_, ok = m.ReadUint16Le(0x100f)
	require.False(t, ok)
	// The range check must not overflow near the top of the address space.
	_, ok = m.ReadUint32Le(0xffffffff)
	require.False(t, ok)

	require.True(t, m.Write(0x1004, []byte{1, 2}))
	require.False(t, m.Write(0x100f, []byte{1, 2}))
}

func TestAccess_Endianness(t *testing.T) {
	m := NewFlat(0, 16)
	require.NoError(t, Write32(m, 0, 0x11223344, false))
	require.Equal(t, []byte{0x44, 0x33, 0x22, 0x11}, m.Buffer[:4])
	require.NoError(t, Write32(m, 4, 0x11223344, true))
	require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, m.Buffer[4:8])

	v, err := Read32(m, 4, true)
	require.NoError(t, err)
	require.Equal(t, uint32(0x11223344), v)
	v, err = Read16(m, 4, true)
	require.NoError(t, err)
	require.Equal(t, uint32(0x1122), v)
	v, err = Read16(m, 4, false)
	require.NoError(t, err)
	require.Equal(t, uint32(0x2211), v)

	require.NoError(t, Write64(m, 8, 0xaabbccdd_11223344, true))
	d, err := Read64(m, 8, true)
	require.NoError(t, err)
	require.Equal(t, uint64(0xaabbccdd_11223344), d)
	lo, err := Read32(m, 8, true)
	require.NoError(t, err)
	require.Equal(t, uint32(0x11223344), lo)

	// Instruction fetch ignores the data endianness.
	w, err := FetchARM(m, 4)
	require.NoError(t, err)
	require.Equal(t, uint32(0x44332211), w)

	_, err = Read32(m, 14, false)
	require.True(t, errors.Is(err, ErrFault))
	require.EqualError(t, Write8(m, 16, 1), "memory fault: write8 at 0x00000010")
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(NewFlat(0, 8))
	require.True(t, r.WriteByte(1, 0xff))
	require.True(t, r.WriteUint32Le(4, 7))
	require.False(t, r.WriteUint32Le(6, 7))
	require.Equal(t, []Write{{Addr: 1, Size: 1, Value: 0xff}, {Addr: 4, Size: 4, Value: 7}}, r.Writes)
	require.Equal(t, "[0x00000004]4 <- 0x7", r.Writes[1].String())

	v, ok := r.ReadUint32Le(4)
	require.True(t, ok)
	require.Equal(t, uint32(7), v)

	r.Reset()
	require.Empty(t, r.Writes)
}

func TestReadImage(t *testing.T) {
	image := bytes.Repeat([]byte{0x05, 0x00, 0xa0, 0xe3}, 64)

	t.Run("raw", func(t *testing.T) {
		actual, err := ReadImage(bytes.NewReader(image), "guest.bin")
		require.NoError(t, err)
		require.Equal(t, image, actual)
	})

	t.Run("lz4", func(t *testing.T) {
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		_, err := w.Write(image)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		actual, err := ReadImage(&buf, "guest.bin.lz4")
		require.NoError(t, err)
		require.Equal(t, image, actual)
	})

	t.Run("xz", func(t *testing.T) {
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		require.NoError(t, err)
		_, err = w.Write(image)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		path := filepath.Join(t.TempDir(), "guest.bin.XZ")
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
		actual, err := LoadImage(path)
		require.NoError(t, err)
		require.Equal(t, image, actual)
	})

	t.Run("corrupt xz", func(t *testing.T) {
		_, err := ReadImage(bytes.NewReader([]byte("not xz")), "guest.xz")
		require.Error(t, err)
	})
}
