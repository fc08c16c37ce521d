package tscodec

// Fixed-width integer access. Each operation consumes exactly its byte width
// and honors the buffer byte-order mode. An out-of-range request sets the
// read or write error flag, leaves the cursor unchanged and returns zero.

func (b *Buffer) getUIntN(n int) uint64 {
	var tmp [8]byte
	if !b.readBytes(tmp[:n]) {
		return 0
	}
	var v uint64
	if b.bigEndian {
		for i := 0; i < n; i++ {
			v = v<<8 | uint64(tmp[i])
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			v = v<<8 | uint64(tmp[i])
		}
	}
	return v
}

func (b *Buffer) putUIntN(v uint64, n int) error {
	var tmp [8]byte
	if b.bigEndian {
		for i := n - 1; i >= 0; i-- {
			tmp[i] = byte(v)
			v >>= 8
		}
	} else {
		for i := 0; i < n; i++ {
			tmp[i] = byte(v)
			v >>= 8
		}
	}
	return b.PutBytes(tmp[:n])
}

func (b *Buffer) GetUInt8() uint8   { return uint8(b.getUIntN(1)) }
func (b *Buffer) GetUInt16() uint16 { return uint16(b.getUIntN(2)) }
func (b *Buffer) GetUInt24() uint32 { return uint32(b.getUIntN(3)) }
func (b *Buffer) GetUInt32() uint32 { return uint32(b.getUIntN(4)) }
func (b *Buffer) GetUInt40() uint64 { return b.getUIntN(5) }
func (b *Buffer) GetUInt48() uint64 { return b.getUIntN(6) }
func (b *Buffer) GetUInt64() uint64 { return b.getUIntN(8) }

func (b *Buffer) GetInt8() int8   { return int8(b.getUIntN(1)) }
func (b *Buffer) GetInt16() int16 { return int16(b.getUIntN(2)) }
func (b *Buffer) GetInt24() int32 { return int32(signExtend(b.getUIntN(3), 24)) }
func (b *Buffer) GetInt32() int32 { return int32(b.getUIntN(4)) }
func (b *Buffer) GetInt40() int64 { return signExtend(b.getUIntN(5), 40) }
func (b *Buffer) GetInt48() int64 { return signExtend(b.getUIntN(6), 48) }
func (b *Buffer) GetInt64() int64 { return int64(b.getUIntN(8)) }

func (b *Buffer) PutUInt8(v uint8) error   { return b.putUIntN(uint64(v), 1) }
func (b *Buffer) PutUInt16(v uint16) error { return b.putUIntN(uint64(v), 2) }
func (b *Buffer) PutUInt24(v uint32) error { return b.putUIntN(uint64(v), 3) }
func (b *Buffer) PutUInt32(v uint32) error { return b.putUIntN(uint64(v), 4) }
func (b *Buffer) PutUInt40(v uint64) error { return b.putUIntN(v, 5) }
func (b *Buffer) PutUInt48(v uint64) error { return b.putUIntN(v, 6) }
func (b *Buffer) PutUInt64(v uint64) error { return b.putUIntN(v, 8) }

func (b *Buffer) PutInt8(v int8) error   { return b.putUIntN(uint64(uint8(v)), 1) }
func (b *Buffer) PutInt16(v int16) error { return b.putUIntN(uint64(uint16(v)), 2) }
func (b *Buffer) PutInt24(v int32) error { return b.putUIntN(uint64(v)&0xffffff, 3) }
func (b *Buffer) PutInt32(v int32) error { return b.putUIntN(uint64(uint32(v)), 4) }
func (b *Buffer) PutInt40(v int64) error { return b.putUIntN(uint64(v)&0xffffffffff, 5) }
func (b *Buffer) PutInt48(v int64) error { return b.putUIntN(uint64(v)&0xffffffffffff, 6) }
func (b *Buffer) PutInt64(v int64) error { return b.putUIntN(uint64(v), 8) }

// GetUIntVar reads an unsigned integer spanning 1 to 8 bytes, matching the
// fixed-width operation of the same byte count.
func (b *Buffer) GetUIntVar(byteCount int) uint64 {
	if byteCount < 1 || byteCount > 8 {
		b.readErr = true
		return 0
	}
	return b.getUIntN(byteCount)
}

// GetIntVar reads a signed integer spanning 1 to 8 bytes, sign-extended.
func (b *Buffer) GetIntVar(byteCount int) int64 {
	return signExtend(b.GetUIntVar(byteCount), 8*byteCount)
}

// PutUIntVar writes an unsigned integer over 1 to 8 bytes.
func (b *Buffer) PutUIntVar(v uint64, byteCount int) error {
	if byteCount < 1 || byteCount > 8 {
		b.writeErr = true
		return ErrWriteOverflow
	}
	return b.putUIntN(v, byteCount)
}

// PutIntVar writes a signed integer over 1 to 8 bytes, truncated.
func (b *Buffer) PutIntVar(v int64, byteCount int) error {
	return b.PutUIntVar(uint64(v), byteCount)
}
