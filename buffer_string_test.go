package tscodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferLanguageCode(t *testing.T) {
	b := NewBuffer(8)
	assert.NoError(t, b.PutLanguageCode(NewLanguageCode("eng")))
	assert.Equal(t, []byte("eng"), b.Data()[:3])
	assert.Equal(t, "eng", b.GetLanguageCode().String())
	assert.NoError(t, b.Err())

	// Short codes are zero padded
	assert.Equal(t, LanguageCode{'f', 'r', 0}, NewLanguageCode("fr"))
}

func TestBufferUTF8(t *testing.T) {
	b := NewBuffer(32)
	assert.NoError(t, b.PutUTF8("héllo"))
	assert.Equal(t, "héllo", b.GetUTF8(6))
	assert.NoError(t, b.Err())
}

func TestBufferUTF8WithLength(t *testing.T) {
	b := NewBuffer(32)
	assert.NoError(t, b.PutUTF8WithLength("service", 8))
	assert.Equal(t, byte(7), b.Data()[0])
	assert.Equal(t, "service", b.GetUTF8WithLength(8))
	assert.NoError(t, b.Err())
}

func TestBufferUTF8WithLengthAtomic(t *testing.T) {
	// Prefix announces more bytes than available: nothing is consumed
	b := NewReadOnlyBuffer([]byte{0x05, 'a', 'b'})
	assert.Equal(t, "", b.GetUTF8WithLength(8))
	assert.True(t, b.ReadError())
	b.ClearReadError()
	assert.Equal(t, 0, b.CurrentReadByteOffset())
	assert.Equal(t, uint8(0x05), b.GetUInt8())
}

func TestBufferFixedUTF8(t *testing.T) {
	b := NewBuffer(8)
	assert.NoError(t, b.PutFixedUTF8("ab", 4, ' '))
	assert.Equal(t, []byte("ab  "), b.Data()[:4])

	assert.Equal(t, ErrWriteOverflow, b.PutFixedUTF8("toolong", 4, ' '))
	assert.True(t, b.WriteError())
}

func TestBufferPartialUTF8(t *testing.T) {
	// 5 bytes of room, "héllo" is 6 bytes with a 2-byte é at index 1
	b := NewBuffer(5)
	n := b.PutPartialUTF8("héllo")
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("héll"), b.Data())

	// Truncation never splits a multi-byte character
	b.Reset(2)
	n = b.PutPartialUTF8("héllo")
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte("h"), b.Data()[:1])
	assert.NoError(t, b.Err())
}

func TestBufferPartialUTF8WithLength(t *testing.T) {
	b := NewBuffer(4)
	n := b.PutPartialUTF8WithLength("hello", 8)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{3, 'h', 'e', 'l'}, b.Data())
	assert.Equal(t, "hel", b.GetUTF8WithLength(8))
	assert.NoError(t, b.Err())
}

func TestBufferUTF16(t *testing.T) {
	b := NewBuffer(32)
	assert.NoError(t, b.PutUTF16("ab"))
	assert.Equal(t, []byte{0x00, 'a', 0x00, 'b'}, b.Data()[:4])
	assert.Equal(t, "ab", b.GetUTF16(4))
	assert.NoError(t, b.Err())

	// Little-endian code units
	b.Reset(32)
	b.SetLittleEndian()
	assert.NoError(t, b.PutUTF16("ab"))
	assert.Equal(t, []byte{'a', 0x00, 'b', 0x00}, b.Data()[:4])
	assert.Equal(t, "ab", b.GetUTF16(4))
}

func TestBufferUTF16SurrogatePairs(t *testing.T) {
	b := NewBuffer(32)
	assert.NoError(t, b.PutUTF16("a\U0001F600"))
	assert.Equal(t, "a\U0001F600", b.GetUTF16(6))
	assert.NoError(t, b.Err())

	// Partial write keeps surrogate pairs together
	b.Reset(4)
	n := b.PutPartialUTF16("a\U0001F600")
	assert.Equal(t, 1, n)
	assert.Equal(t, "a", b.GetUTF16(2))
}

func TestBufferUTF16WithLength(t *testing.T) {
	b := NewBuffer(32)
	assert.NoError(t, b.PutUTF16WithLength("hi", 8))
	assert.Equal(t, byte(4), b.Data()[0])
	assert.Equal(t, "hi", b.GetUTF16WithLength(8))
	assert.NoError(t, b.Err())
}

func TestBufferFixedUTF16(t *testing.T) {
	b := NewBuffer(8)
	assert.NoError(t, b.PutFixedUTF16("a", 6, ' '))
	assert.Equal(t, "a  ", b.GetUTF16(6))
	assert.NoError(t, b.Err())
}

func TestBufferUTF16OddByteCount(t *testing.T) {
	b := NewReadOnlyBuffer([]byte{0x00, 'a', 0x99})
	assert.Equal(t, "a", b.GetUTF16(3))
	assert.True(t, b.EndOfRead())
	assert.NoError(t, b.Err())
}
