package tscodec

import (
	"encoding/binary"
	"errors"
)

// Buffer sizes
const (
	DefaultBufferSize = 1024
	minimumBufferSize = 16
)

// Buffer errors. Low-level operations set a sticky flag and return a default
// value; mutating operations additionally return one of these so that call
// sites can either batch-check via Err() or handle each failure in place.
var (
	ErrReadUnderflow = errors.New("tscodec: read beyond available bytes")
	ErrWriteOverflow = errors.New("tscodec: write beyond buffer capacity")
	ErrUser          = errors.New("tscodec: user error")
	ErrStateStack    = errors.New("tscodec: unbalanced buffer state stack")
)

// Buffer is a bit-addressable memory buffer with independent read and write
// cursors. It either owns its storage or borrows an external byte region, and
// carries sticky read/write error flags: once an operation fails, every
// subsequent unconditional operation keeps reporting a default value until
// the error is cleared. Multi-byte integers honor the byte-order mode, bit
// fields smaller than a byte honor the independent bit-order mode.
//
// A Buffer is exclusively owned by the call stack using it and carries no
// internal synchronization.
type Buffer struct {
	buf       []byte // full storage, len(buf) == capacity
	external  bool   // storage is borrowed, never reallocated nor freed here
	bigEndian bool   // byte order of multi-byte integers
	bitsLE    bool   // little-endian numbering of bits inside a byte
	state     cursorState
	saved     []stateFrame
	readErr   bool
	writeErr  bool
	userErr   bool
}

type cursorState struct {
	readOnly     bool
	end          int // usable size in bytes, end <= cap
	rbyte, rbit  int // read cursor
	wbyte, wbit  int // write cursor
}

type pushReason uint8

const (
	pushFull pushReason = iota
	pushReadSize
	pushWriteSize
	pushWriteLenSeq
)

type stateFrame struct {
	cursorState
	reason   pushReason
	lenBits  int
	readErr  bool
	writeErr bool
}

// NewBuffer returns a buffer with its own zeroed storage of the given size.
// Both cursors start at the beginning: nothing to read, everything to write.
func NewBuffer(size int) *Buffer {
	if size < 0 {
		size = 0
	}
	capacity := size
	if capacity < minimumBufferSize {
		capacity = minimumBufferSize
	}
	b := &Buffer{
		buf:       make([]byte, capacity),
		bigEndian: true,
	}
	b.state.end = size
	return b
}

// NewBufferOver returns a buffer borrowing the given mutable byte region. The
// region must outlive the buffer. Both cursors start at the beginning.
func NewBufferOver(data []byte) *Buffer {
	b := &Buffer{
		buf:       data,
		external:  true,
		bigEndian: true,
	}
	b.state.end = len(data)
	return b
}

// NewReadOnlyBuffer returns a buffer borrowing the given immutable byte
// region. The write cursor starts at the end: everything already written,
// everything to read.
func NewReadOnlyBuffer(data []byte) *Buffer {
	b := NewBufferOver(data)
	b.state.readOnly = true
	b.state.wbyte = len(data)
	return b
}

// Reset re-binds the buffer to fresh internal storage of the given size,
// clearing cursors, error flags and the state stack. An already owned larger
// storage is kept.
func (b *Buffer) Reset(size int) {
	if size < 0 {
		size = 0
	}
	if b.external || cap(b.buf) < size {
		capacity := size
		if capacity < minimumBufferSize {
			capacity = minimumBufferSize
		}
		b.buf = make([]byte, capacity)
	}
	b.external = false
	b.state = cursorState{end: size}
	b.saved = b.saved[:0]
	b.ClearError()
}

// ResetOver re-binds the buffer to an external mutable byte region.
func (b *Buffer) ResetOver(data []byte) {
	b.buf = data
	b.external = true
	b.state = cursorState{end: len(data)}
	b.saved = b.saved[:0]
	b.ClearError()
}

// ResetReadOnly re-binds the buffer to an external immutable byte region.
func (b *Buffer) ResetReadOnly(data []byte) {
	b.ResetOver(data)
	b.state.readOnly = true
	b.state.wbyte = len(data)
}

// Capacity returns the allocated storage size in bytes.
func (b *Buffer) Capacity() int { return len(b.buf) }

// Size returns the usable size in bytes.
func (b *Buffer) Size() int { return b.state.end }

// Data returns the usable byte region. The slice aliases the buffer storage.
func (b *Buffer) Data() []byte { return b.buf[:b.state.end] }

// ReadOnly reports whether the buffer rejects writes.
func (b *Buffer) ReadOnly() bool { return b.state.readOnly }

// InternalMemory reports whether the buffer owns its storage.
func (b *Buffer) InternalMemory() bool { return !b.external }

// ExternalMemory reports whether the buffer borrows its storage.
func (b *Buffer) ExternalMemory() bool { return b.external }

// SetBigEndian selects big-endian byte order for multi-byte integers.
func (b *Buffer) SetBigEndian() { b.bigEndian = true }

// SetLittleEndian selects little-endian byte order for multi-byte integers.
func (b *Buffer) SetLittleEndian() { b.bigEndian = false }

// SetNativeEndian selects the byte order of the host.
func (b *Buffer) SetNativeEndian() {
	b.bigEndian = binary.NativeEndian.Uint16([]byte{0x12, 0x34}) == binary.BigEndian.Uint16([]byte{0x12, 0x34})
}

// SwitchEndian flips the current byte order.
func (b *Buffer) SwitchEndian() { b.bigEndian = !b.bigEndian }

func (b *Buffer) IsBigEndian() bool    { return b.bigEndian }
func (b *Buffer) IsLittleEndian() bool { return !b.bigEndian }

// SetBigEndianBitOrder numbers bits inside a byte from the most significant
// down, the usual MPEG/DVB convention and the default.
func (b *Buffer) SetBigEndianBitOrder() { b.bitsLE = false }

// SetLittleEndianBitOrder numbers bits inside a byte from the least
// significant up. Byte stream order is unaffected.
func (b *Buffer) SetLittleEndianBitOrder() { b.bitsLE = true }

func (b *Buffer) IsBigEndianBitOrder() bool { return !b.bitsLE }

// Error state

func (b *Buffer) ReadError() bool  { return b.readErr }
func (b *Buffer) WriteError() bool { return b.writeErr }
func (b *Buffer) UserError() bool  { return b.userErr }

// Error reports whether any error flag is set.
func (b *Buffer) Error() bool { return b.readErr || b.writeErr || b.userErr }

// Err returns the first pending error flag as an error value, or nil.
func (b *Buffer) Err() error {
	switch {
	case b.readErr:
		return ErrReadUnderflow
	case b.writeErr:
		return ErrWriteOverflow
	case b.userErr:
		return ErrUser
	}
	return nil
}

func (b *Buffer) ClearReadError()  { b.readErr = false }
func (b *Buffer) ClearWriteError() { b.writeErr = false }
func (b *Buffer) ClearUserError()  { b.userErr = false }
func (b *Buffer) ClearError()      { b.readErr, b.writeErr, b.userErr = false, false, false }

// SetUserError flags an application-level error, e.g. invalid data format.
func (b *Buffer) SetUserError() { b.userErr = true }

// Cursors

func (b *Buffer) CurrentReadByteOffset() int  { return b.state.rbyte }
func (b *Buffer) CurrentReadBitOffset() int   { return 8*b.state.rbyte + b.state.rbit }
func (b *Buffer) CurrentWriteByteOffset() int { return b.state.wbyte }
func (b *Buffer) CurrentWriteBitOffset() int  { return 8*b.state.wbyte + b.state.wbit }

// RemainingReadBytes returns the number of whole bytes left to read,
// ignoring the bit offset inside the current byte.
func (b *Buffer) RemainingReadBytes() int { return b.state.wbyte - b.state.rbyte }

func (b *Buffer) RemainingReadBits() int {
	return b.CurrentWriteBitOffset() - b.CurrentReadBitOffset()
}

func (b *Buffer) RemainingWriteBytes() int { return b.state.end - b.state.wbyte }

func (b *Buffer) RemainingWriteBits() int {
	return 8*b.state.end - b.CurrentWriteBitOffset()
}

// EndOfRead reports whether the read cursor reached the write cursor.
func (b *Buffer) EndOfRead() bool {
	return b.state.rbyte == b.state.wbyte && b.state.rbit == b.state.wbit
}

// EndOfWrite reports whether the write cursor reached the usable size.
func (b *Buffer) EndOfWrite() bool { return b.state.wbyte >= b.state.end }

func (b *Buffer) CanRead() bool { return !b.Error() && !b.EndOfRead() }

func (b *Buffer) CanReadBytes(n int) bool { return !b.Error() && b.RemainingReadBytes() >= n }

func (b *Buffer) CanReadBits(n int) bool { return !b.Error() && b.RemainingReadBits() >= n }

func (b *Buffer) CanWrite() bool { return !b.Error() && !b.EndOfWrite() }

func (b *Buffer) CanWriteBytes(n int) bool { return !b.Error() && b.RemainingWriteBytes() >= n }

func (b *Buffer) CanWriteBits(n int) bool { return !b.Error() && b.RemainingWriteBits() >= n }

func (b *Buffer) ReadIsByteAligned() bool  { return b.state.rbit == 0 }
func (b *Buffer) WriteIsByteAligned() bool { return b.state.wbit == 0 }

// ReadRealignByte rounds the read cursor up to the next byte boundary.
// No-op if already aligned, never touches data.
func (b *Buffer) ReadRealignByte() error {
	if b.state.rbit == 0 {
		return nil
	}
	if b.state.rbyte == b.state.wbyte {
		b.readErr = true
		return ErrReadUnderflow
	}
	b.state.rbyte++
	b.state.rbit = 0
	return nil
}

// WriteRealignByte rounds the write cursor up to the next byte boundary,
// filling the remaining bits of a partially written byte with the stuffing
// bit value (0 or 1).
func (b *Buffer) WriteRealignByte(stuffing int) error {
	if b.state.readOnly {
		b.writeErr = true
		return ErrWriteOverflow
	}
	if b.state.wbit == 0 {
		return nil
	}
	var mask byte
	if b.bitsLE {
		mask = 0xff << b.state.wbit
	} else {
		mask = 0xff >> b.state.wbit
	}
	if stuffing == 0 {
		b.buf[b.state.wbyte] &^= mask
	} else {
		b.buf[b.state.wbyte] |= mask
	}
	b.state.wbyte++
	b.state.wbit = 0
	return nil
}

// SkipBits moves the read cursor forward. On failure the cursor is unchanged
// and the read error flag is set.
func (b *Buffer) SkipBits(n int) error {
	if n < 0 || b.readErr || b.RemainingReadBits() < n {
		b.readErr = true
		return ErrReadUnderflow
	}
	off := b.CurrentReadBitOffset() + n
	b.state.rbyte, b.state.rbit = off/8, off%8
	return nil
}

// SkipBytes moves the read cursor forward by whole bytes, keeping the bit
// offset inside the byte.
func (b *Buffer) SkipBytes(n int) error {
	if n < 0 {
		b.readErr = true
		return ErrReadUnderflow
	}
	return b.SkipBits(8 * n)
}

// SkipReservedBits skips bits whose value is fixed by the standard.
func (b *Buffer) SkipReservedBits(n int) error { return b.SkipBits(n) }

// BackBits moves the read cursor backward. On failure the cursor is
// unchanged and the read error flag is set.
func (b *Buffer) BackBits(n int) error {
	if n < 0 || b.readErr || b.CurrentReadBitOffset() < n {
		b.readErr = true
		return ErrReadUnderflow
	}
	off := b.CurrentReadBitOffset() - n
	b.state.rbyte, b.state.rbit = off/8, off%8
	return nil
}

func (b *Buffer) BackBytes(n int) error {
	if n < 0 {
		b.readErr = true
		return ErrReadUnderflow
	}
	return b.BackBits(8 * n)
}

// ReadSeek positions the read cursor at an absolute byte/bit offset. Seeking
// past the write cursor moves the read cursor to the write cursor and sets
// the read error flag.
func (b *Buffer) ReadSeek(byteOffset, bitOffset int) error {
	if byteOffset < 0 || bitOffset < 0 || bitOffset > 7 {
		b.readErr = true
		return ErrReadUnderflow
	}
	if 8*byteOffset+bitOffset > b.CurrentWriteBitOffset() {
		b.state.rbyte = b.state.wbyte
		b.state.rbit = b.state.wbit
		b.readErr = true
		return ErrReadUnderflow
	}
	b.state.rbyte = byteOffset
	b.state.rbit = bitOffset
	return nil
}

// WriteSeek positions the write cursor at an absolute byte/bit offset,
// bounded by the read cursor and the end of the buffer.
func (b *Buffer) WriteSeek(byteOffset, bitOffset int) error {
	if b.state.readOnly || byteOffset < 0 || bitOffset < 0 || bitOffset > 7 {
		b.writeErr = true
		return ErrWriteOverflow
	}
	off := 8*byteOffset + bitOffset
	if off < b.CurrentReadBitOffset() {
		b.state.wbyte = b.state.rbyte
		b.state.wbit = b.state.rbit
		b.writeErr = true
		return ErrWriteOverflow
	}
	if off > 8*b.state.end {
		b.state.wbyte = b.state.end
		b.state.wbit = 0
		b.writeErr = true
		return ErrWriteOverflow
	}
	b.state.wbyte = byteOffset
	b.state.wbit = bitOffset
	return nil
}

// Resize changes the usable size of the buffer. The new size cannot shrink
// below the current write cursor (including saved frames). Growing beyond
// the capacity succeeds only for owned storage with reallocate set.
func (b *Buffer) Resize(size int, reallocate bool) error {
	minSize := b.state.wbyte
	if b.state.wbit > 0 {
		minSize++
	}
	for _, f := range b.saved {
		m := f.wbyte
		if f.wbit > 0 {
			m++
		}
		if m > minSize {
			minSize = m
		}
	}
	newSize := size
	if newSize < minSize {
		newSize = minSize
	}
	if reallocate && !b.external && newSize != len(b.buf) {
		capacity := newSize
		if capacity < minimumBufferSize {
			capacity = minimumBufferSize
		}
		nb := make([]byte, capacity)
		copy(nb, b.buf)
		b.buf = nb
		for i := range b.saved {
			if b.saved[i].end > newSize {
				b.saved[i].end = newSize
			}
		}
	}
	if newSize > len(b.buf) {
		newSize = len(b.buf)
	}
	b.state.end = newSize
	if size != newSize {
		return ErrWriteOverflow
	}
	return nil
}

// Bit access

// GetBit reads the next bit and advances the read cursor. Returns 0 and sets
// the read error flag when nothing is left to read.
func (b *Buffer) GetBit() uint8 {
	if b.readErr || b.EndOfRead() {
		b.readErr = true
		return 0
	}
	shift := 7 - b.state.rbit
	if b.bitsLE {
		shift = b.state.rbit
	}
	bit := (b.buf[b.state.rbyte] >> shift) & 1
	b.state.rbit++
	if b.state.rbit > 7 {
		b.state.rbyte++
		b.state.rbit = 0
	}
	return bit
}

// GetBool reads the next bit as a boolean.
func (b *Buffer) GetBool() bool { return b.GetBit() != 0 }

// PutBit writes the next bit and advances the write cursor.
func (b *Buffer) PutBit(bit uint8) error {
	if b.state.readOnly || b.writeErr || b.EndOfWrite() {
		b.writeErr = true
		return ErrWriteOverflow
	}
	shift := 7 - b.state.wbit
	if b.bitsLE {
		shift = b.state.wbit
	}
	mask := byte(1) << shift
	if bit == 0 {
		b.buf[b.state.wbyte] &^= mask
	} else {
		b.buf[b.state.wbyte] |= mask
	}
	b.state.wbit++
	if b.state.wbit > 7 {
		b.state.wbyte++
		b.state.wbit = 0
	}
	return nil
}

// PutBool writes the next bit from a boolean.
func (b *Buffer) PutBool(v bool) error {
	var bit uint8
	if v {
		bit = 1
	}
	return b.PutBit(bit)
}

// GetBits reads the next bits as an unsigned value, 1 to 64 bits. On failure
// the cursor is unchanged, the read error flag is set and 0 is returned.
func (b *Buffer) GetBits(bits int) uint64 {
	if bits < 0 || bits > 64 || b.readErr || b.RemainingReadBits() < bits {
		b.readErr = true
		return 0
	}
	var v uint64
	if b.bitsLE {
		for i := 0; i < bits; i++ {
			v |= uint64(b.GetBit()) << i
		}
	} else {
		for i := 0; i < bits; i++ {
			v = v<<1 | uint64(b.GetBit())
		}
	}
	return v
}

// GetBitsSigned reads the next bits as a two's-complement value and
// sign-extends it to 64 bits.
func (b *Buffer) GetBitsSigned(bits int) int64 {
	v := b.GetBits(bits)
	if b.readErr {
		return 0
	}
	return signExtend(v, bits)
}

// PutBits writes the low bits of an unsigned value, 1 to 64 bits, most
// significant bit first in big-endian bit order.
func (b *Buffer) PutBits(value uint64, bits int) error {
	if bits < 0 || bits > 64 || b.state.readOnly || b.writeErr || b.RemainingWriteBits() < bits {
		b.writeErr = true
		return ErrWriteOverflow
	}
	if b.bitsLE {
		for i := 0; i < bits; i++ {
			b.PutBit(uint8(value>>i) & 1)
		}
	} else {
		for i := bits - 1; i >= 0; i-- {
			b.PutBit(uint8(value>>i) & 1)
		}
	}
	return nil
}

// PutBitsSigned writes the low bits of a signed value. A value wider than
// the declared field wraps silently, matching the wire behavior of existing
// encoders.
func (b *Buffer) PutBitsSigned(value int64, bits int) error {
	return b.PutBits(uint64(value), bits)
}

// PutReserved writes reserved '1' bits, 0 to 64.
func (b *Buffer) PutReserved(bits int) error { return b.PutBits(^uint64(0), bits) }

func signExtend(v uint64, bits int) int64 {
	if bits > 0 && bits < 64 && v&(1<<(bits-1)) != 0 {
		v |= ^uint64(0) << bits
	}
	return int64(v)
}

// Byte access

// readBytes fills dst with the next bytes, combining across byte boundaries
// when the read cursor is not byte-aligned. On failure dst is untouched, the
// cursor unchanged and the read error flag set.
func (b *Buffer) readBytes(dst []byte) bool {
	n := len(dst)
	if b.readErr {
		return false
	}
	if b.state.rbit == 0 {
		if b.state.rbyte+n > b.state.wbyte {
			b.readErr = true
			return false
		}
		copy(dst, b.buf[b.state.rbyte:])
		b.state.rbyte += n
		return true
	}
	if b.CurrentReadBitOffset()+8*n > b.CurrentWriteBitOffset() {
		b.readErr = true
		return false
	}
	rbit := b.state.rbit
	for i := 0; i < n; i++ {
		cur := b.buf[b.state.rbyte]
		next := b.buf[b.state.rbyte+1]
		if b.bitsLE {
			dst[i] = cur>>rbit | next<<(8-rbit)
		} else {
			dst[i] = cur<<rbit | next>>(8-rbit)
		}
		b.state.rbyte++
	}
	return true
}

// GetBytes reads the next n bytes. Returns nil and sets the read error flag
// when fewer bytes are available.
func (b *Buffer) GetBytes(n int) []byte {
	if n < 0 || b.readErr {
		b.readErr = true
		return nil
	}
	out := make([]byte, n)
	if !b.readBytes(out) {
		return nil
	}
	return out
}

// PutBytes writes the given bytes. On failure nothing is consumed and the
// write error flag is set.
func (b *Buffer) PutBytes(data []byte) error {
	if b.state.readOnly || b.writeErr || b.RemainingWriteBits() < 8*len(data) {
		b.writeErr = true
		return ErrWriteOverflow
	}
	if b.state.wbit == 0 {
		copy(b.buf[b.state.wbyte:], data)
		b.state.wbyte += len(data)
		return nil
	}
	for _, c := range data {
		b.PutBits(uint64(c), 8)
	}
	return nil
}
