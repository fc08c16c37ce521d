package tscodec

import "errors"

type DescriptorTag uint8

// Descriptor tags used by the built-in catalogue
// Chapter: 6.1 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
const (
	DescriptorTagRegistration     DescriptorTag = 0x05
	DescriptorTagISO639Language   DescriptorTag = 0x0a
	DescriptorTagMaximumBitrate   DescriptorTag = 0x0e
	DescriptorTagAVCVideo         DescriptorTag = 0x28
	DescriptorTagService          DescriptorTag = 0x48
	DescriptorTagShortEvent       DescriptorTag = 0x4d
	DescriptorTagStreamIdentifier DescriptorTag = 0x52
	DescriptorTagLocalTimeOffset  DescriptorTag = 0x58
	DescriptorTagExtension        DescriptorTag = 0x7f
)

// DescriptorTagApplication is only meaningful inside an Application
// Information Table and is therefore not wired into the global registry.
const DescriptorTagApplication DescriptorTag = 0x00

// Descriptor extension tags
// Chapter: 6.3 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
const (
	DescriptorTagExtensionSupplementaryAudio = 0x06
)

const (
	// MaxDescriptorPayloadSize is the largest payload an 8-bit length field
	// can announce.
	MaxDescriptorPayloadSize = 255

	descriptorHeaderSize = 2
	maxEnvelopeSize      = descriptorHeaderSize + MaxDescriptorPayloadSize
)

// Descriptor contract errors.
var (
	ErrInvalidState         = errors.New("tscodec: descriptor in invalid state")
	ErrTagMismatch          = errors.New("tscodec: envelope tag does not match descriptor")
	ErrExtensionTagMismatch = errors.New("tscodec: extension tag does not match descriptor")
	ErrTrailingData         = errors.New("tscodec: descriptor payload not fully consumed")
)

// Descriptor is the capability set every concrete descriptor type
// implements. SerializePayload and DeserializePayload codec the payload only,
// never the tag+length header, and report failures through the buffer's
// sticky error flags; Serialize and Deserialize are the boundary that turns
// those flags into definite results.
type Descriptor interface {
	Tag() DescriptorTag
	ClearContent()
	SerializePayload(b *Buffer)
	DeserializePayload(b *Buffer)
	BuildXML(e Element)
	AnalyzeXML(e Element) bool
}

// ExtensionDescriptor is a descriptor sharing the standard-registered
// extension tag with other sub-types, disambiguated by a private tag carried
// as the first payload byte.
type ExtensionDescriptor interface {
	Descriptor
	ExtensionTag() uint8
}

// Envelope is the wire record of one descriptor instance: tag, 8-bit byte
// count, payload.
type Envelope struct {
	Tag     DescriptorTag
	Payload []byte
}

// Length returns the payload byte count as carried on the wire.
func (e Envelope) Length() uint8 { return uint8(len(e.Payload)) }

// Bytes returns the complete tag+length+payload encoding.
func (e Envelope) Bytes() []byte {
	out := make([]byte, descriptorHeaderSize+len(e.Payload))
	out[0] = uint8(e.Tag)
	out[1] = uint8(len(e.Payload))
	copy(out[descriptorHeaderSize:], e.Payload)
	return out
}

// ParseEnvelope slices one envelope off the front of data without copying
// the payload. Returns the number of bytes consumed.
func ParseEnvelope(data []byte) (Envelope, int, error) {
	if len(data) < descriptorHeaderSize {
		return Envelope{}, 0, ErrReadUnderflow
	}
	n := int(data[1])
	if len(data) < descriptorHeaderSize+n {
		return Envelope{}, 0, ErrReadUnderflow
	}
	return Envelope{
		Tag:     DescriptorTag(data[0]),
		Payload: data[descriptorHeaderSize : descriptorHeaderSize+n],
	}, descriptorHeaderSize + n, nil
}

// Serialize encodes a descriptor into a wire envelope. The payload is
// written through a scratch buffer; any write error inside SerializePayload,
// including a nested length backpatch failure, fails the whole operation.
func Serialize(d Descriptor) (Envelope, error) {
	if d == nil {
		return Envelope{}, ErrInvalidState
	}
	scratch := poolOfScratch.get()
	defer poolOfScratch.put(scratch)

	b := NewBufferOver(scratch.bs[descriptorHeaderSize:])
	if ed, ok := d.(ExtensionDescriptor); ok {
		b.PutUInt8(ed.ExtensionTag())
	}
	d.SerializePayload(b)
	b.WriteRealignByte(0)
	if b.WriteError() {
		return Envelope{}, ErrWriteOverflow
	}
	n := b.CurrentWriteByteOffset()
	payload := make([]byte, n)
	copy(payload, scratch.bs[descriptorHeaderSize:descriptorHeaderSize+n])
	return Envelope{Tag: d.Tag(), Payload: payload}, nil
}

// Deserialize decodes a wire envelope into a descriptor. The descriptor is
// cleared first; on any failure it stays cleared. Success requires the tag
// (and extension tag, when applicable) to match and every payload byte to be
// consumed.
func Deserialize(d Descriptor, env Envelope) error {
	if d == nil {
		return ErrInvalidState
	}
	d.ClearContent()
	if env.Tag != d.Tag() {
		return ErrTagMismatch
	}
	b := NewReadOnlyBuffer(env.Payload)
	if ed, ok := d.(ExtensionDescriptor); ok {
		if !b.CanReadBytes(1) {
			return ErrReadUnderflow
		}
		if b.GetUInt8() != ed.ExtensionTag() {
			return ErrExtensionTagMismatch
		}
	}
	d.DeserializePayload(b)
	if b.ReadError() {
		d.ClearContent()
		return ErrReadUnderflow
	}
	if !b.EndOfRead() {
		d.ClearContent()
		return ErrTrailingData
	}
	return nil
}
