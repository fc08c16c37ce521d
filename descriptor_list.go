package tscodec

import (
	"encoding/binary"
	"fmt"

	"github.com/asticode/go-astikit"
)

// Descriptor lists as carried inside PSI/SI sections: a 12-bit total byte
// count followed by back-to-back envelopes.

// ParseDescriptorList parses a length-prefixed descriptor list off the
// iterator, dispatching each envelope through the registry.
func ParseDescriptorList(i *astikit.BytesIterator) (o []Descriptor, err error) {
	// Get next 2 bytes
	var bs []byte
	if bs, err = i.NextBytesNoCopy(2); err != nil || len(bs) < 2 {
		err = fmt.Errorf("tscodec: fetching next bytes failed: %w", err)
		return
	}

	// Get length
	length := int(binary.BigEndian.Uint16(bs) & 0xfff)

	// Loop
	offsetEnd := i.Offset() + length
	for i.Offset() < offsetEnd {
		if bs, err = i.NextBytesNoCopy(2); err != nil || len(bs) < 2 {
			err = fmt.Errorf("tscodec: fetching next bytes failed: %w", err)
			return
		}

		env := Envelope{Tag: DescriptorTag(bs[0])}
		if n := int(bs[1]); n > 0 {
			if env.Payload, err = i.NextBytes(n); err != nil {
				err = fmt.Errorf("tscodec: fetching next bytes failed: %w", err)
				return
			}
		}

		var d Descriptor
		if d, err = ParseDescriptor(env); err != nil {
			return
		}
		o = append(o, d)
	}
	return
}

// WriteDescriptorListWithLength serializes each descriptor and writes the
// 12-bit length field followed by the envelopes. The 4 bits above the length
// are set to 1 as reserved.
func WriteDescriptorListWithLength(w *astikit.BitsWriter, ds []Descriptor) (int, error) {
	envs := make([]Envelope, len(ds))
	var length uint16
	for idx, d := range ds {
		env, err := Serialize(d)
		if err != nil {
			return 0, fmt.Errorf("tscodec: serializing descriptor %#x failed: %w", uint8(d.Tag()), err)
		}
		envs[idx] = env
		length += descriptorHeaderSize + uint16(env.Length())
	}

	b := astikit.NewBitsWriterBatch(w)
	b.Write(length | 0xf000)
	for _, env := range envs {
		b.Write(uint8(env.Tag))
		b.Write(env.Length())
		b.Write(env.Payload)
	}
	if err := b.Err(); err != nil {
		return 0, err
	}
	return int(length) + 2, nil // 2 for length
}
