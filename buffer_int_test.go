package tscodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferIntLayout(t *testing.T) {
	b := NewBuffer(16)
	assert.NoError(t, b.PutUInt24(0x123456))
	b.SetLittleEndian()
	assert.NoError(t, b.PutUInt24(0x123456))
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x56, 0x34, 0x12}, b.Data()[:6])

	assert.Equal(t, uint32(0x563412), b.GetUInt24())
	b.SetBigEndian()
	assert.Equal(t, uint32(0x563412), b.GetUInt24())
}

func TestBufferIntSignExtension(t *testing.T) {
	b := NewReadOnlyBuffer([]byte{0xff, 0xfe, 0x00})
	assert.Equal(t, int32(-0x200), b.GetInt24())
	assert.NoError(t, b.Err())

	b.ResetReadOnly([]byte{0xff, 0xff, 0xff, 0xff, 0xfe})
	assert.Equal(t, int64(-2), b.GetInt40())
	assert.NoError(t, b.Err())
}

func TestBufferIntRoundTrip(t *testing.T) {
	b := NewBuffer(DefaultBufferSize)

	assert.NoError(t, b.PutUInt8(0xab))
	assert.NoError(t, b.PutUInt16(0xabcd))
	assert.NoError(t, b.PutUInt32(0xdeadbeef))
	assert.NoError(t, b.PutUInt40(0x0102030405))
	assert.NoError(t, b.PutUInt48(0x010203040506))
	assert.NoError(t, b.PutUInt64(0x0102030405060708))
	assert.NoError(t, b.PutInt16(-12345))
	assert.NoError(t, b.PutInt32(-1234567))

	assert.Equal(t, uint8(0xab), b.GetUInt8())
	assert.Equal(t, uint16(0xabcd), b.GetUInt16())
	assert.Equal(t, uint32(0xdeadbeef), b.GetUInt32())
	assert.Equal(t, uint64(0x0102030405), b.GetUInt40())
	assert.Equal(t, uint64(0x010203040506), b.GetUInt48())
	assert.Equal(t, uint64(0x0102030405060708), b.GetUInt64())
	assert.Equal(t, int16(-12345), b.GetInt16())
	assert.Equal(t, int32(-1234567), b.GetInt32())
	assert.NoError(t, b.Err())
}

func TestBufferIntVar(t *testing.T) {
	b := NewBuffer(DefaultBufferSize)
	for n := 1; n <= 8; n++ {
		v := uint64(0x0123456789abcdef)
		if n < 8 {
			v &= 1<<(8*n) - 1
		}
		assert.NoError(t, b.PutUIntVar(v, n))
		assert.Equal(t, v, b.GetUIntVar(n), "byte count %d", n)
	}
	assert.NoError(t, b.PutIntVar(-5, 3))
	assert.Equal(t, int64(-5), b.GetIntVar(3))
	assert.NoError(t, b.Err())
}
