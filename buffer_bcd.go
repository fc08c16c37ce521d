package tscodec

// BCD fields: one decimal digit per 4-bit nibble, most significant digit
// first.

// GetBCD reads the given number of BCD digits as an unsigned value. A nibble
// above 9 sets the read error flag and counts as 0.
func (b *Buffer) GetBCD(digits int) uint64 {
	if digits < 0 || b.readErr || b.RemainingReadBits() < 4*digits {
		b.readErr = true
		return 0
	}
	var v uint64
	for i := 0; i < digits; i++ {
		nibble := b.GetBits(4)
		if nibble > 9 {
			b.readErr = true
			nibble = 0
		}
		v = 10*v + nibble
	}
	return v
}

// PutBCD writes the given number of BCD digits, truncating the value modulo
// 10^digits.
func (b *Buffer) PutBCD(value uint64, digits int) error {
	if digits < 0 || b.state.readOnly || b.writeErr || b.RemainingWriteBits() < 4*digits {
		b.writeErr = true
		return ErrWriteOverflow
	}
	if digits > 0 {
		factor := pow10(digits)
		for digits > 0 {
			value %= factor
			factor /= 10
			b.PutBits(value/factor, 4)
			digits--
		}
	}
	return nil
}

// GetSecondsBCD reads one two-digit BCD field, the encoding of the HH, MM
// and SS components of time-of-day fields.
func (b *Buffer) GetSecondsBCD() int { return int(b.GetBCD(2)) }

// PutSecondsBCD writes one two-digit BCD field.
func (b *Buffer) PutSecondsBCD(value int) error { return b.PutBCD(uint64(value), 2) }

func pow10(digits int) uint64 {
	v := uint64(1)
	for i := 0; i < digits && i < 19; i++ {
		v *= 10
	}
	return v
}
