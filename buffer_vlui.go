package tscodec

// vluimsbf5: variable length unsigned integer, most significant bit first.
// A run of '1' bits followed by a terminating '0' announces the number of
// 4-bit value groups, then the value itself follows, most significant group
// first. Each group therefore costs 5 bits.

// GetVluimsbf5 reads a vluimsbf5-coded unsigned integer.
func (b *Buffer) GetVluimsbf5() uint64 {
	n := 1
	for !b.readErr && b.GetBit() == 1 {
		n++
	}
	return b.GetBits(4 * n)
}

// PutVluimsbf5 writes a vluimsbf5-coded unsigned integer.
func (b *Buffer) PutVluimsbf5(value uint64) error {
	n := 1
	for tmp := value; tmp > 0xf; tmp >>= 4 {
		n++
	}
	if err := b.PutBits(^uint64(0), n-1); err != nil {
		return err
	}
	if err := b.PutBit(0); err != nil {
		return err
	}
	return b.PutBits(value, 4*n)
}
