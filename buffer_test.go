package tscodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferBits(t *testing.T) {
	// Mixed signed/unsigned bit fields
	b := NewBuffer(2)
	assert.NoError(t, b.PutBits(2, 3))
	assert.NoError(t, b.PutBitsSigned(-333, 11))
	assert.NoError(t, b.PutBitsSigned(-1, 2))
	assert.Equal(t, 16, b.CurrentWriteBitOffset())
	assert.Equal(t, []byte{0x5a, 0xcf}, b.Data())

	// Read back
	assert.Equal(t, uint64(2), b.GetBits(3))
	assert.Equal(t, int64(-333), b.GetBitsSigned(11))
	assert.Equal(t, int64(-1), b.GetBitsSigned(2))
	assert.True(t, b.EndOfRead())
	assert.NoError(t, b.Err())
}

func TestBufferBitsWidthSweep(t *testing.T) {
	b := NewBuffer(DefaultBufferSize)
	for bits := 1; bits <= 64; bits++ {
		v := uint64(0x0123456789abcdef)
		if bits < 64 {
			v &= 1<<bits - 1
		}
		assert.NoError(t, b.PutBits(v, bits))
		assert.Equal(t, v, b.GetBits(bits), "width %d", bits)
	}
	assert.NoError(t, b.Err())
}

func TestBufferLittleEndianBitOrder(t *testing.T) {
	b := NewBuffer(2)
	b.SetLittleEndianBitOrder()
	assert.False(t, b.IsBigEndianBitOrder())
	assert.NoError(t, b.PutBits(0b101, 3))
	assert.NoError(t, b.WriteRealignByte(0))
	assert.Equal(t, byte(0x05), b.Data()[0])

	assert.Equal(t, uint64(0b101), b.GetBits(3))
	assert.NoError(t, b.ReadRealignByte())
	assert.True(t, b.EndOfRead())
}

func TestBufferStickyReadError(t *testing.T) {
	b := NewReadOnlyBuffer([]byte{0x12, 0x34})
	assert.Equal(t, uint32(0), b.GetUInt32())
	assert.True(t, b.ReadError())

	// Sticky: cursor untouched, further reads keep failing
	assert.Equal(t, 0, b.CurrentReadByteOffset())
	assert.Equal(t, uint8(0), b.GetUInt8())
	assert.Equal(t, ErrReadUnderflow, b.Err())

	b.ClearReadError()
	assert.Equal(t, uint16(0x1234), b.GetUInt16())
	assert.NoError(t, b.Err())
}

func TestBufferStickyWriteError(t *testing.T) {
	b := NewBuffer(2)
	assert.NoError(t, b.PutUInt16(0xbeef))
	assert.Equal(t, ErrWriteOverflow, b.PutUInt8(1))
	assert.True(t, b.WriteError())
	assert.Equal(t, 2, b.CurrentWriteByteOffset())

	b.ClearWriteError()
	assert.False(t, b.Error())
}

func TestBufferUserError(t *testing.T) {
	b := NewBuffer(4)
	b.SetUserError()
	assert.True(t, b.UserError())
	assert.Equal(t, ErrUser, b.Err())
	b.ClearUserError()
	assert.NoError(t, b.Err())
}

func TestBufferSkipBack(t *testing.T) {
	b := NewReadOnlyBuffer([]byte{1, 2, 3, 4})
	assert.NoError(t, b.SkipBytes(2))
	assert.Equal(t, uint8(3), b.GetUInt8())
	assert.NoError(t, b.BackBytes(3))
	assert.Equal(t, uint8(1), b.GetUInt8())

	// Failed moves leave the cursor alone
	assert.Equal(t, ErrReadUnderflow, b.SkipBytes(10))
	b.ClearReadError()
	assert.Equal(t, 1, b.CurrentReadByteOffset())
	assert.Equal(t, ErrReadUnderflow, b.BackBytes(2))
	b.ClearReadError()
	assert.Equal(t, uint8(2), b.GetUInt8())

	assert.NoError(t, b.SkipBits(3))
	assert.NoError(t, b.BackBits(3))
	assert.Equal(t, uint8(3), b.GetUInt8())
}

func TestBufferSeek(t *testing.T) {
	b := NewReadOnlyBuffer([]byte{1, 2, 3, 4})
	assert.NoError(t, b.ReadSeek(2, 0))
	assert.Equal(t, uint8(3), b.GetUInt8())

	// Seeking past the write cursor clamps and fails
	assert.Equal(t, ErrReadUnderflow, b.ReadSeek(10, 0))
	assert.Equal(t, 4, b.CurrentReadByteOffset())
	b.ClearReadError()

	w := NewBuffer(8)
	assert.NoError(t, w.PutUInt32(0x01020304))
	assert.NoError(t, w.WriteSeek(2, 0))
	assert.NoError(t, w.PutUInt8(0xff))
	assert.Equal(t, []byte{1, 2, 0xff, 4, 0, 0, 0, 0}, w.Data())
}

func TestBufferWriteRealign(t *testing.T) {
	b := NewBuffer(2)
	assert.NoError(t, b.PutBits(0b1001, 4))
	assert.NoError(t, b.WriteRealignByte(1))
	assert.Equal(t, byte(0x9f), b.Data()[0])
	assert.Equal(t, 1, b.CurrentWriteByteOffset())

	assert.NoError(t, b.PutBits(0b1001, 4))
	assert.NoError(t, b.WriteRealignByte(0))
	assert.Equal(t, byte(0x90), b.Data()[1])
}

func TestBufferUnalignedBytes(t *testing.T) {
	b := NewReadOnlyBuffer([]byte{0x12, 0x34, 0x56})
	assert.NoError(t, b.SkipBits(4))
	assert.Equal(t, []byte{0x23, 0x45}, b.GetBytes(2))
	assert.NoError(t, b.Err())
}

func TestBufferResize(t *testing.T) {
	b := NewBuffer(8)
	assert.NoError(t, b.PutUInt32(1))

	// Cannot shrink below the write cursor
	assert.Equal(t, ErrWriteOverflow, b.Resize(2, false))
	assert.Equal(t, 4, b.Size())

	// Growing beyond capacity needs reallocation
	assert.Error(t, b.Resize(100, false))
	assert.NoError(t, b.Resize(100, true))
	assert.Equal(t, 100, b.Size())
	assert.Equal(t, uint32(1), b.GetUInt32())
}

func TestBufferResetModes(t *testing.T) {
	b := NewBuffer(4)
	assert.True(t, b.InternalMemory())
	assert.NoError(t, b.PutUInt8(1))

	data := []byte{9, 8}
	b.ResetOver(data)
	assert.True(t, b.ExternalMemory())
	assert.False(t, b.ReadOnly())
	assert.NoError(t, b.PutUInt8(7))
	assert.Equal(t, byte(7), data[0])

	b.ResetReadOnly(data)
	assert.True(t, b.ReadOnly())
	assert.Equal(t, 2, b.RemainingReadBytes())
	assert.Equal(t, ErrWriteOverflow, b.PutUInt8(1))
}

func TestBufferEndianness(t *testing.T) {
	b := NewBuffer(8)
	assert.True(t, b.IsBigEndian())
	assert.NoError(t, b.PutUInt16(0x1234))
	b.SetLittleEndian()
	assert.NoError(t, b.PutUInt16(0x1234))
	assert.Equal(t, []byte{0x12, 0x34, 0x34, 0x12}, b.Data()[:4])

	b.SwitchEndian()
	assert.True(t, b.IsBigEndian())
	b.SetNativeEndian()
	assert.Equal(t, b.IsLittleEndian(), !b.IsBigEndian())
}
