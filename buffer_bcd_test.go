package tscodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferBCD(t *testing.T) {
	b := NewBuffer(4)
	assert.NoError(t, b.PutBCD(45, 2))
	assert.Equal(t, byte(0x45), b.Data()[0])
	assert.Equal(t, uint64(45), b.GetBCD(2))
	assert.NoError(t, b.Err())
}

func TestBufferBCDOddDigits(t *testing.T) {
	b := NewBuffer(2)
	assert.NoError(t, b.PutBCD(912, 3))
	assert.NoError(t, b.WriteRealignByte(1))
	assert.Equal(t, []byte{0x91, 0x2f}, b.Data())

	assert.Equal(t, uint64(912), b.GetBCD(3))
	assert.Equal(t, uint64(0xf), b.GetBits(4))
	assert.NoError(t, b.Err())
}

func TestBufferBCDTruncation(t *testing.T) {
	// Values wider than the digit count keep the low digits
	b := NewBuffer(2)
	assert.NoError(t, b.PutBCD(1234, 2))
	assert.Equal(t, byte(0x34), b.Data()[0])
}

func TestBufferBCDInvalidNibble(t *testing.T) {
	b := NewReadOnlyBuffer([]byte{0x4a})
	b.GetBCD(2)
	assert.True(t, b.ReadError())
	assert.Equal(t, ErrReadUnderflow, b.Err())
}

func TestBufferSecondsBCD(t *testing.T) {
	b := NewBuffer(4)
	assert.NoError(t, b.PutSecondsBCD(59))
	assert.NoError(t, b.PutSecondsBCD(7))
	assert.Equal(t, []byte{0x59, 0x07}, b.Data()[:2])
	assert.Equal(t, 59, b.GetSecondsBCD())
	assert.Equal(t, 7, b.GetSecondsBCD())
	assert.NoError(t, b.Err())
}
