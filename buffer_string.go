package tscodec

import "unicode/utf16"

// LanguageCode is the 3-character ISO 639 code carried by many descriptors.
type LanguageCode [3]byte

func (c LanguageCode) String() string { return string(c[:]) }

// NewLanguageCode builds a code from a string, truncated or zero-padded to
// 3 bytes.
func NewLanguageCode(s string) (c LanguageCode) {
	copy(c[:], s)
	return c
}

// GetLanguageCode reads exactly 3 bytes as a language code. Always byte
// oriented, independent of the bit-order mode.
func (b *Buffer) GetLanguageCode() (c LanguageCode) {
	b.readBytes(c[:])
	return c
}

// PutLanguageCode writes exactly 3 bytes.
func (b *Buffer) PutLanguageCode(c LanguageCode) error { return b.PutBytes(c[:]) }

// Strings. Reads work from any cursor position; writes require the write
// cursor to be byte-aligned, like the rest of the byte-oriented operations.

// GetUTF8 reads a fixed byte count as a UTF-8 string, no length prefix.
func (b *Buffer) GetUTF8(byteCount int) string {
	return string(b.GetBytes(byteCount))
}

// GetUTF8WithLength reads a length prefix of the given bit width immediately
// followed by that many UTF-8 bytes. Prefix and payload are consumed
// atomically: on any failure the cursor is back before the prefix.
func (b *Buffer) GetUTF8WithLength(lengthBits int) string {
	n, ok := b.getLengthPrefix(lengthBits)
	if !ok {
		return ""
	}
	return string(b.GetBytes(n))
}

func (b *Buffer) getLengthPrefix(lengthBits int) (int, bool) {
	if b.readErr || lengthBits < 1 || lengthBits > 63 {
		b.readErr = true
		return 0, false
	}
	saved := b.state
	length := int(b.GetBits(lengthBits))
	if b.readErr || b.state.rbit != 0 || length > b.RemainingReadBytes() {
		b.state = saved
		b.readErr = true
		return 0, false
	}
	return length, true
}

// PutUTF8 writes the whole string without a length prefix; fails when it
// does not fit.
func (b *Buffer) PutUTF8(s string) error { return b.PutBytes([]byte(s)) }

// PutFixedUTF8 writes the string into an exact byte count, padding with the
// filler byte; fails when the string is longer than the count.
func (b *Buffer) PutFixedUTF8(s string, size int, pad byte) error {
	if len(s) > size || b.state.readOnly || b.writeErr || b.state.wbit != 0 || b.RemainingWriteBytes() < size {
		b.writeErr = true
		return ErrWriteOverflow
	}
	copy(b.buf[b.state.wbyte:], s)
	for i := b.state.wbyte + len(s); i < b.state.wbyte+size; i++ {
		b.buf[i] = pad
	}
	b.state.wbyte += size
	return nil
}

// PutPartialUTF8 writes as many leading characters as fit, never splitting a
// multi-byte character, and returns the number of bytes written. Running out
// of room is not an error.
func (b *Buffer) PutPartialUTF8(s string) int {
	if b.state.readOnly || b.writeErr || b.state.wbit != 0 {
		b.writeErr = true
		return 0
	}
	n := b.RemainingWriteBytes()
	if n > len(s) {
		n = len(s)
	}
	for n > 0 && n < len(s) && s[n]&0xc0 == 0x80 {
		n--
	}
	copy(b.buf[b.state.wbyte:], s[:n])
	b.state.wbyte += n
	return n
}

// PutUTF8WithLength writes a length prefix of the given bit width followed
// by the whole string; fails when the string does not fit in the buffer or
// in the length field.
func (b *Buffer) PutUTF8WithLength(s string, lengthBits int) error {
	max, ok := b.checkLengthPrefixWrite(lengthBits)
	if !ok {
		return ErrWriteOverflow
	}
	lengthBytes := (b.state.wbit + lengthBits) / 8
	if len(s) > max || b.RemainingWriteBytes() < lengthBytes+len(s) {
		b.writeErr = true
		return ErrWriteOverflow
	}
	b.PutBits(uint64(len(s)), lengthBits)
	return b.PutBytes([]byte(s))
}

// PutPartialUTF8WithLength writes a length prefix and as many leading
// characters as fit in the buffer and the length field, returning the number
// of bytes written.
func (b *Buffer) PutPartialUTF8WithLength(s string, lengthBits int) int {
	max, ok := b.checkLengthPrefixWrite(lengthBits)
	if !ok {
		return 0
	}
	lengthBytes := (b.state.wbit + lengthBits) / 8
	n := b.RemainingWriteBytes() - lengthBytes
	if n > max {
		n = max
	}
	if n > len(s) {
		n = len(s)
	}
	if n < 0 {
		b.writeErr = true
		return 0
	}
	for n > 0 && n < len(s) && s[n]&0xc0 == 0x80 {
		n--
	}
	b.PutBits(uint64(n), lengthBits)
	b.PutBytes([]byte(s[:n]))
	return n
}

// checkLengthPrefixWrite validates a length-prefixed write: the cursor must
// be byte-aligned after the length field. Returns the maximum byte count
// representable in the field.
func (b *Buffer) checkLengthPrefixWrite(lengthBits int) (int, bool) {
	if b.state.readOnly || b.writeErr || lengthBits < 1 || lengthBits > 63 || (b.state.wbit+lengthBits)%8 != 0 {
		b.writeErr = true
		return 0, false
	}
	max := int(uint64(1)<<lengthBits - 1)
	return max, true
}

// UTF-16 strings: 16-bit code units in the buffer byte order.

// GetUTF16 reads a fixed byte count as UTF-16 code units. A trailing odd
// byte is consumed and ignored.
func (b *Buffer) GetUTF16(byteCount int) string {
	bs := b.GetBytes(byteCount)
	if bs == nil {
		return ""
	}
	units := make([]uint16, 0, len(bs)/2)
	for i := 0; i+1 < len(bs); i += 2 {
		if b.bigEndian {
			units = append(units, uint16(bs[i])<<8|uint16(bs[i+1]))
		} else {
			units = append(units, uint16(bs[i+1])<<8|uint16(bs[i]))
		}
	}
	return string(utf16.Decode(units))
}

// GetUTF16WithLength reads a length prefix of the given bit width followed
// by that many bytes of UTF-16 code units.
func (b *Buffer) GetUTF16WithLength(lengthBits int) string {
	n, ok := b.getLengthPrefix(lengthBits)
	if !ok {
		return ""
	}
	return b.GetUTF16(n)
}

// PutUTF16 writes the whole string as UTF-16 code units; fails when it does
// not fit.
func (b *Buffer) PutUTF16(s string) error {
	units := utf16.Encode([]rune(s))
	if b.state.readOnly || b.writeErr || b.state.wbit != 0 || b.RemainingWriteBytes() < 2*len(units) {
		b.writeErr = true
		return ErrWriteOverflow
	}
	for _, u := range units {
		b.PutUInt16(u)
	}
	return nil
}

// PutPartialUTF16 writes as many leading code units as fit, keeping
// surrogate pairs together, and returns the number of code units written.
func (b *Buffer) PutPartialUTF16(s string) int {
	if b.state.readOnly || b.writeErr || b.state.wbit != 0 {
		b.writeErr = true
		return 0
	}
	units := utf16.Encode([]rune(s))
	n := b.RemainingWriteBytes() / 2
	if n > len(units) {
		n = len(units)
	}
	if n > 0 && n < len(units) && units[n-1] >= 0xd800 && units[n-1] < 0xdc00 {
		n--
	}
	for i := 0; i < n; i++ {
		b.PutUInt16(units[i])
	}
	return n
}

// PutFixedUTF16 writes the string into an exact byte count, padding with the
// filler code unit; fails when the encoded string is longer than the count.
func (b *Buffer) PutFixedUTF16(s string, size int, pad uint16) error {
	units := utf16.Encode([]rune(s))
	if 2*len(units) > size || b.state.readOnly || b.writeErr || b.state.wbit != 0 || b.RemainingWriteBytes() < size {
		b.writeErr = true
		return ErrWriteOverflow
	}
	for _, u := range units {
		b.PutUInt16(u)
	}
	left := size - 2*len(units)
	for ; left >= 2; left -= 2 {
		b.PutUInt16(pad)
	}
	if left > 0 {
		b.PutUInt8(uint8(pad))
	}
	return nil
}

// PutUTF16WithLength writes a length prefix of the given bit width followed
// by the whole string as UTF-16 code units.
func (b *Buffer) PutUTF16WithLength(s string, lengthBits int) error {
	max, ok := b.checkLengthPrefixWrite(lengthBits)
	if !ok {
		return ErrWriteOverflow
	}
	units := utf16.Encode([]rune(s))
	lengthBytes := (b.state.wbit + lengthBits) / 8
	if 2*len(units) > max || b.RemainingWriteBytes() < lengthBytes+2*len(units) {
		b.writeErr = true
		return ErrWriteOverflow
	}
	b.PutBits(uint64(2*len(units)), lengthBits)
	for _, u := range units {
		b.PutUInt16(u)
	}
	return nil
}
