package tscodec

import "fmt"

// DescriptorFactory builds an empty descriptor ready for Deserialize.
type DescriptorFactory func() Descriptor

var descriptorFactoryLUT [256]DescriptorFactory
var extensionFactoryLUT [256]DescriptorFactory

// RegisterDescriptor binds a tag to a factory. Later registrations replace
// earlier ones.
func RegisterDescriptor(t DescriptorTag, f DescriptorFactory) {
	descriptorFactoryLUT[t] = f
}

// RegisterExtensionDescriptor binds an extension tag, carried as the first
// payload byte under DescriptorTagExtension, to a factory.
func RegisterExtensionDescriptor(extTag uint8, f DescriptorFactory) {
	extensionFactoryLUT[extTag] = f
}

func init() {
	RegisterDescriptor(DescriptorTagRegistration, func() Descriptor { return &RegistrationDescriptor{} })
	RegisterDescriptor(DescriptorTagISO639Language, func() Descriptor { return &ISO639LanguageDescriptor{} })
	RegisterDescriptor(DescriptorTagMaximumBitrate, func() Descriptor { return &MaximumBitrateDescriptor{} })
	RegisterDescriptor(DescriptorTagAVCVideo, func() Descriptor { return &AVCVideoDescriptor{} })
	RegisterDescriptor(DescriptorTagService, func() Descriptor { return &ServiceDescriptor{} })
	RegisterDescriptor(DescriptorTagShortEvent, func() Descriptor { return &ShortEventDescriptor{} })
	RegisterDescriptor(DescriptorTagStreamIdentifier, func() Descriptor { return &StreamIdentifierDescriptor{} })
	RegisterDescriptor(DescriptorTagLocalTimeOffset, func() Descriptor { return &LocalTimeOffsetDescriptor{} })
	RegisterExtensionDescriptor(DescriptorTagExtensionSupplementaryAudio, func() Descriptor { return &SupplementaryAudioDescriptor{} })

	for i := range descriptorFactoryLUT {
		if descriptorFactoryLUT[i] != nil {
			continue
		}
		tag := DescriptorTag(i)
		if i&0x80 > 0 && i != 0xff {
			descriptorFactoryLUT[i] = func() Descriptor { return &UserDefinedDescriptor{tag: tag} }
		} else {
			descriptorFactoryLUT[i] = func() Descriptor { return &UnknownDescriptor{tag: tag} }
		}
	}
}

// NewDescriptor returns an empty descriptor for the tag, falling back to the
// raw-payload types for user-private and unregistered tags.
func NewDescriptor(t DescriptorTag) Descriptor {
	return descriptorFactoryLUT[t]()
}

// ParseDescriptor decodes one envelope through the registry, resolving
// extension descriptors by their first payload byte.
func ParseDescriptor(env Envelope) (Descriptor, error) {
	var d Descriptor
	if env.Tag == DescriptorTagExtension && len(env.Payload) > 0 && extensionFactoryLUT[env.Payload[0]] != nil {
		d = extensionFactoryLUT[env.Payload[0]]()
	} else {
		d = NewDescriptor(env.Tag)
	}
	if err := Deserialize(d, env); err != nil {
		return nil, fmt.Errorf("tscodec: parsing descriptor %#x failed: %w", uint8(env.Tag), err)
	}
	return d, nil
}
