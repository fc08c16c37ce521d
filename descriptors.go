package tscodec

import "time"

// Built-in descriptor catalogue. Each type codecs its payload only; the
// tag+length header and the extension tag byte are handled by the
// Serialize/Deserialize boundary.

// RegistrationDescriptor
// Chapter: 2.6.8 | Link: https://ecee.colorado.edu/~ecen5653/ecen5653/papers/iso13818-1.pdf
type RegistrationDescriptor struct {
	FormatIdentifier             uint32
	AdditionalIdentificationInfo []byte
}

func (d *RegistrationDescriptor) Tag() DescriptorTag { return DescriptorTagRegistration }

func (d *RegistrationDescriptor) ClearContent() {
	d.FormatIdentifier = 0
	d.AdditionalIdentificationInfo = nil
}

func (d *RegistrationDescriptor) SerializePayload(b *Buffer) {
	b.PutUInt32(d.FormatIdentifier)
	b.PutBytes(d.AdditionalIdentificationInfo)
}

func (d *RegistrationDescriptor) DeserializePayload(b *Buffer) {
	d.FormatIdentifier = b.GetUInt32()
	if n := b.RemainingReadBytes(); n > 0 {
		d.AdditionalIdentificationInfo = b.GetBytes(n)
	}
}

func (d *RegistrationDescriptor) BuildXML(e Element) {
	e.SetIntAttribute("format_identifier", int64(d.FormatIdentifier), true)
	if len(d.AdditionalIdentificationInfo) > 0 {
		e.AddHexaTextChild("additional_identification_info", d.AdditionalIdentificationInfo)
	}
}

func (d *RegistrationDescriptor) AnalyzeXML(e Element) bool {
	v, ok := e.IntAttribute("format_identifier")
	if !ok {
		return false
	}
	d.FormatIdentifier = uint32(v)
	d.AdditionalIdentificationInfo, _ = e.HexaTextChild("additional_identification_info")
	return true
}

// MaximumBitrateDescriptor
// Chapter: 2.6.26 | Link: https://ecee.colorado.edu/~ecen5653/ecen5653/papers/iso13818-1.pdf
type MaximumBitrateDescriptor struct {
	// Bitrate is in bytes/second; the wire carries units of 50 bytes/second.
	Bitrate uint32
}

func (d *MaximumBitrateDescriptor) Tag() DescriptorTag { return DescriptorTagMaximumBitrate }

func (d *MaximumBitrateDescriptor) ClearContent() { d.Bitrate = 0 }

func (d *MaximumBitrateDescriptor) SerializePayload(b *Buffer) {
	b.PutReserved(2)
	b.PutBits(uint64(d.Bitrate/50), 22)
}

func (d *MaximumBitrateDescriptor) DeserializePayload(b *Buffer) {
	b.SkipReservedBits(2)
	d.Bitrate = uint32(b.GetBits(22)) * 50
}

func (d *MaximumBitrateDescriptor) BuildXML(e Element) {
	e.SetIntAttribute("maximum_bitrate", int64(d.Bitrate), false)
}

func (d *MaximumBitrateDescriptor) AnalyzeXML(e Element) bool {
	v, ok := e.IntAttribute("maximum_bitrate")
	if !ok {
		return false
	}
	d.Bitrate = uint32(v)
	return true
}

// ISO639LanguageDescriptor
// Chapter: 2.6.18 | Link: https://ecee.colorado.edu/~ecen5653/ecen5653/papers/iso13818-1.pdf
type ISO639LanguageDescriptor struct {
	Items []ISO639LanguageItem
}

type ISO639LanguageItem struct {
	Language  LanguageCode
	AudioType uint8
}

func (d *ISO639LanguageDescriptor) Tag() DescriptorTag { return DescriptorTagISO639Language }

func (d *ISO639LanguageDescriptor) ClearContent() { d.Items = nil }

func (d *ISO639LanguageDescriptor) SerializePayload(b *Buffer) {
	for _, item := range d.Items {
		b.PutLanguageCode(item.Language)
		b.PutUInt8(item.AudioType)
	}
}

func (d *ISO639LanguageDescriptor) DeserializePayload(b *Buffer) {
	for b.CanReadBytes(4) {
		d.Items = append(d.Items, ISO639LanguageItem{
			Language:  b.GetLanguageCode(),
			AudioType: b.GetUInt8(),
		})
	}
}

func (d *ISO639LanguageDescriptor) BuildXML(e Element) {
	for _, item := range d.Items {
		c := e.AddChild("language")
		c.SetStringAttribute("code", item.Language.String())
		c.SetIntAttribute("audio_type", int64(item.AudioType), true)
	}
}

func (d *ISO639LanguageDescriptor) AnalyzeXML(e Element) bool {
	for _, c := range e.Children("language") {
		code, ok := c.StringAttribute("code")
		if !ok {
			return false
		}
		at, ok := c.IntAttribute("audio_type")
		if !ok {
			return false
		}
		d.Items = append(d.Items, ISO639LanguageItem{
			Language:  NewLanguageCode(code),
			AudioType: uint8(at),
		})
	}
	return true
}

// AVCVideoDescriptor
// Chapter: 2.6.64 | Link: https://ecee.colorado.edu/~ecen5653/ecen5653/papers/iso13818-1.pdf
type AVCVideoDescriptor struct {
	ProfileIDC           uint8
	ConstraintSet0Flag   bool
	ConstraintSet1Flag   bool
	ConstraintSet2Flag   bool
	CompatibleFlags      uint8
	LevelIDC             uint8
	StillPresent         bool
	AVC24HourPictureFlag bool
}

func (d *AVCVideoDescriptor) Tag() DescriptorTag { return DescriptorTagAVCVideo }

func (d *AVCVideoDescriptor) ClearContent() { *d = AVCVideoDescriptor{} }

func (d *AVCVideoDescriptor) SerializePayload(b *Buffer) {
	b.PutUInt8(d.ProfileIDC)
	b.PutBool(d.ConstraintSet0Flag)
	b.PutBool(d.ConstraintSet1Flag)
	b.PutBool(d.ConstraintSet2Flag)
	b.PutBits(uint64(d.CompatibleFlags), 5)
	b.PutUInt8(d.LevelIDC)
	b.PutBool(d.StillPresent)
	b.PutBool(d.AVC24HourPictureFlag)
	b.PutReserved(6)
}

func (d *AVCVideoDescriptor) DeserializePayload(b *Buffer) {
	d.ProfileIDC = b.GetUInt8()
	d.ConstraintSet0Flag = b.GetBool()
	d.ConstraintSet1Flag = b.GetBool()
	d.ConstraintSet2Flag = b.GetBool()
	d.CompatibleFlags = uint8(b.GetBits(5))
	d.LevelIDC = b.GetUInt8()
	d.StillPresent = b.GetBool()
	d.AVC24HourPictureFlag = b.GetBool()
	b.SkipReservedBits(6)
}

func (d *AVCVideoDescriptor) BuildXML(e Element) {
	e.SetIntAttribute("profile_idc", int64(d.ProfileIDC), false)
	e.SetBoolAttribute("constraint_set0", d.ConstraintSet0Flag)
	e.SetBoolAttribute("constraint_set1", d.ConstraintSet1Flag)
	e.SetBoolAttribute("constraint_set2", d.ConstraintSet2Flag)
	e.SetIntAttribute("AVC_compatible_flags", int64(d.CompatibleFlags), true)
	e.SetIntAttribute("level_idc", int64(d.LevelIDC), false)
	e.SetBoolAttribute("AVC_still_present", d.StillPresent)
	e.SetBoolAttribute("AVC_24_hour_picture", d.AVC24HourPictureFlag)
}

func (d *AVCVideoDescriptor) AnalyzeXML(e Element) bool {
	profile, ok1 := e.IntAttribute("profile_idc")
	level, ok2 := e.IntAttribute("level_idc")
	if !ok1 || !ok2 {
		return false
	}
	d.ProfileIDC = uint8(profile)
	d.LevelIDC = uint8(level)
	d.ConstraintSet0Flag, _ = e.BoolAttribute("constraint_set0")
	d.ConstraintSet1Flag, _ = e.BoolAttribute("constraint_set1")
	d.ConstraintSet2Flag, _ = e.BoolAttribute("constraint_set2")
	if v, ok := e.IntAttribute("AVC_compatible_flags"); ok {
		d.CompatibleFlags = uint8(v)
	}
	d.StillPresent, _ = e.BoolAttribute("AVC_still_present")
	d.AVC24HourPictureFlag, _ = e.BoolAttribute("AVC_24_hour_picture")
	return true
}

// StreamIdentifierDescriptor
// Chapter: 6.2.39 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type StreamIdentifierDescriptor struct {
	ComponentTag uint8
}

func (d *StreamIdentifierDescriptor) Tag() DescriptorTag { return DescriptorTagStreamIdentifier }

func (d *StreamIdentifierDescriptor) ClearContent() { d.ComponentTag = 0 }

func (d *StreamIdentifierDescriptor) SerializePayload(b *Buffer) {
	b.PutUInt8(d.ComponentTag)
}

func (d *StreamIdentifierDescriptor) DeserializePayload(b *Buffer) {
	d.ComponentTag = b.GetUInt8()
}

func (d *StreamIdentifierDescriptor) BuildXML(e Element) {
	e.SetIntAttribute("component_tag", int64(d.ComponentTag), true)
}

func (d *StreamIdentifierDescriptor) AnalyzeXML(e Element) bool {
	v, ok := e.IntAttribute("component_tag")
	if !ok {
		return false
	}
	d.ComponentTag = uint8(v)
	return true
}

// ServiceDescriptor
// Chapter: 6.2.33 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type ServiceDescriptor struct {
	Type     uint8
	Provider string
	Name     string
}

func (d *ServiceDescriptor) Tag() DescriptorTag { return DescriptorTagService }

func (d *ServiceDescriptor) ClearContent() { *d = ServiceDescriptor{} }

func (d *ServiceDescriptor) SerializePayload(b *Buffer) {
	b.PutUInt8(d.Type)
	b.PutUTF8WithLength(d.Provider, 8)
	b.PutUTF8WithLength(d.Name, 8)
}

func (d *ServiceDescriptor) DeserializePayload(b *Buffer) {
	d.Type = b.GetUInt8()
	d.Provider = b.GetUTF8WithLength(8)
	d.Name = b.GetUTF8WithLength(8)
}

func (d *ServiceDescriptor) BuildXML(e Element) {
	e.SetIntAttribute("service_type", int64(d.Type), true)
	e.SetStringAttribute("service_provider_name", d.Provider)
	e.SetStringAttribute("service_name", d.Name)
}

func (d *ServiceDescriptor) AnalyzeXML(e Element) bool {
	v, ok := e.IntAttribute("service_type")
	if !ok {
		return false
	}
	d.Type = uint8(v)
	d.Provider, _ = e.StringAttribute("service_provider_name")
	d.Name, _ = e.StringAttribute("service_name")
	return true
}

// ShortEventDescriptor
// Chapter: 6.2.37 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type ShortEventDescriptor struct {
	Language  LanguageCode
	EventName string
	Text      string
}

func (d *ShortEventDescriptor) Tag() DescriptorTag { return DescriptorTagShortEvent }

func (d *ShortEventDescriptor) ClearContent() { *d = ShortEventDescriptor{} }

func (d *ShortEventDescriptor) SerializePayload(b *Buffer) {
	b.PutLanguageCode(d.Language)
	b.PutUTF8WithLength(d.EventName, 8)
	b.PutUTF8WithLength(d.Text, 8)
}

func (d *ShortEventDescriptor) DeserializePayload(b *Buffer) {
	d.Language = b.GetLanguageCode()
	d.EventName = b.GetUTF8WithLength(8)
	d.Text = b.GetUTF8WithLength(8)
}

func (d *ShortEventDescriptor) BuildXML(e Element) {
	e.SetStringAttribute("language_code", d.Language.String())
	e.SetStringAttribute("event_name", d.EventName)
	e.SetStringAttribute("text", d.Text)
}

func (d *ShortEventDescriptor) AnalyzeXML(e Element) bool {
	code, ok := e.StringAttribute("language_code")
	if !ok {
		return false
	}
	d.Language = NewLanguageCode(code)
	d.EventName, _ = e.StringAttribute("event_name")
	d.Text, _ = e.StringAttribute("text")
	return true
}

// LocalTimeOffsetDescriptor
// Chapter: 6.2.20 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type LocalTimeOffsetDescriptor struct {
	Items []LocalTimeOffsetItem
}

type LocalTimeOffsetItem struct {
	CountryCode     LanguageCode
	CountryRegionID uint8
	Polarity        bool
	CurrentOffset   time.Duration
	TimeOfChange    time.Time
	NextOffset      time.Duration
}

func (d *LocalTimeOffsetDescriptor) Tag() DescriptorTag { return DescriptorTagLocalTimeOffset }

func (d *LocalTimeOffsetDescriptor) ClearContent() { d.Items = nil }

func (d *LocalTimeOffsetDescriptor) SerializePayload(b *Buffer) {
	for _, item := range d.Items {
		b.PutLanguageCode(item.CountryCode)
		b.PutBits(uint64(item.CountryRegionID), 6)
		b.PutReserved(1)
		b.PutBool(item.Polarity)
		b.PutBCDDurationMinutes(item.CurrentOffset)
		b.PutMJDTime(item.TimeOfChange)
		b.PutBCDDurationMinutes(item.NextOffset)
	}
}

func (d *LocalTimeOffsetDescriptor) DeserializePayload(b *Buffer) {
	for b.CanReadBytes(13) {
		var item LocalTimeOffsetItem
		item.CountryCode = b.GetLanguageCode()
		item.CountryRegionID = uint8(b.GetBits(6))
		b.SkipReservedBits(1)
		item.Polarity = b.GetBool()
		item.CurrentOffset = b.GetBCDDurationMinutes()
		item.TimeOfChange = b.GetMJDTime()
		item.NextOffset = b.GetBCDDurationMinutes()
		d.Items = append(d.Items, item)
	}
}

func (d *LocalTimeOffsetDescriptor) BuildXML(e Element) {
	for _, item := range d.Items {
		c := e.AddChild("region")
		c.SetStringAttribute("country_code", item.CountryCode.String())
		c.SetIntAttribute("country_region_id", int64(item.CountryRegionID), false)
		c.SetBoolAttribute("local_time_offset_polarity", item.Polarity)
		c.SetIntAttribute("local_time_offset", int64(item.CurrentOffset/time.Minute), false)
		c.SetStringAttribute("time_of_change", item.TimeOfChange.Format(time.RFC3339))
		c.SetIntAttribute("next_time_offset", int64(item.NextOffset/time.Minute), false)
	}
}

func (d *LocalTimeOffsetDescriptor) AnalyzeXML(e Element) bool {
	for _, c := range e.Children("region") {
		var item LocalTimeOffsetItem
		code, ok := c.StringAttribute("country_code")
		if !ok {
			return false
		}
		item.CountryCode = NewLanguageCode(code)
		if v, ok := c.IntAttribute("country_region_id"); ok {
			item.CountryRegionID = uint8(v)
		}
		item.Polarity, _ = c.BoolAttribute("local_time_offset_polarity")
		if v, ok := c.IntAttribute("local_time_offset"); ok {
			item.CurrentOffset = time.Duration(v) * time.Minute
		}
		if s, ok := c.StringAttribute("time_of_change"); ok {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return false
			}
			item.TimeOfChange = t
		}
		if v, ok := c.IntAttribute("next_time_offset"); ok {
			item.NextOffset = time.Duration(v) * time.Minute
		}
		d.Items = append(d.Items, item)
	}
	return true
}

// ApplicationDescriptor is the AIT application descriptor. Only meaningful
// inside an Application Information Table, hence not in the global registry.
// Chapter: 5.3.5.3 | Link: https://www.etsi.org/deliver/etsi_ts/102800_102899/102809/01.03.01_60/ts_102809v010301p.pdf
type ApplicationDescriptor struct {
	Profiles                []ApplicationProfile
	ServiceBound            bool
	Visibility              uint8
	Priority                uint8
	TransportProtocolLabels []byte
}

type ApplicationProfile struct {
	Profile      uint16
	VersionMajor uint8
	VersionMinor uint8
	VersionMicro uint8
}

func (d *ApplicationDescriptor) Tag() DescriptorTag { return DescriptorTagApplication }

func (d *ApplicationDescriptor) ClearContent() { *d = ApplicationDescriptor{} }

func (d *ApplicationDescriptor) SerializePayload(b *Buffer) {
	b.WriteFramed(8, func(b *Buffer) {
		for _, p := range d.Profiles {
			b.PutUInt16(p.Profile)
			b.PutUInt8(p.VersionMajor)
			b.PutUInt8(p.VersionMinor)
			b.PutUInt8(p.VersionMicro)
		}
	})
	b.PutBool(d.ServiceBound)
	b.PutBits(uint64(d.Visibility), 2)
	b.PutReserved(5)
	b.PutUInt8(d.Priority)
	b.PutBytes(d.TransportProtocolLabels)
}

func (d *ApplicationDescriptor) DeserializePayload(b *Buffer) {
	_ = b.ReadFramed(8, func(b *Buffer) {
		for b.CanReadBytes(5) {
			d.Profiles = append(d.Profiles, ApplicationProfile{
				Profile:      b.GetUInt16(),
				VersionMajor: b.GetUInt8(),
				VersionMinor: b.GetUInt8(),
				VersionMicro: b.GetUInt8(),
			})
		}
	})
	d.ServiceBound = b.GetBool()
	d.Visibility = uint8(b.GetBits(2))
	b.SkipReservedBits(5)
	d.Priority = b.GetUInt8()
	if n := b.RemainingReadBytes(); n > 0 {
		d.TransportProtocolLabels = b.GetBytes(n)
	}
}

func (d *ApplicationDescriptor) BuildXML(e Element) {
	for _, p := range d.Profiles {
		c := e.AddChild("profile")
		c.SetIntAttribute("application_profile", int64(p.Profile), true)
		c.SetIntAttribute("version_major", int64(p.VersionMajor), false)
		c.SetIntAttribute("version_minor", int64(p.VersionMinor), false)
		c.SetIntAttribute("version_micro", int64(p.VersionMicro), false)
	}
	e.SetBoolAttribute("service_bound", d.ServiceBound)
	e.SetIntAttribute("visibility", int64(d.Visibility), false)
	e.SetIntAttribute("application_priority", int64(d.Priority), false)
	if len(d.TransportProtocolLabels) > 0 {
		e.AddHexaTextChild("transport_protocol_labels", d.TransportProtocolLabels)
	}
}

func (d *ApplicationDescriptor) AnalyzeXML(e Element) bool {
	for _, c := range e.Children("profile") {
		p, ok := c.IntAttribute("application_profile")
		if !ok {
			return false
		}
		var profile ApplicationProfile
		profile.Profile = uint16(p)
		if v, ok := c.IntAttribute("version_major"); ok {
			profile.VersionMajor = uint8(v)
		}
		if v, ok := c.IntAttribute("version_minor"); ok {
			profile.VersionMinor = uint8(v)
		}
		if v, ok := c.IntAttribute("version_micro"); ok {
			profile.VersionMicro = uint8(v)
		}
		d.Profiles = append(d.Profiles, profile)
	}
	pri, ok := e.IntAttribute("application_priority")
	if !ok {
		return false
	}
	d.Priority = uint8(pri)
	d.ServiceBound, _ = e.BoolAttribute("service_bound")
	if v, ok := e.IntAttribute("visibility"); ok {
		d.Visibility = uint8(v)
	}
	d.TransportProtocolLabels, _ = e.HexaTextChild("transport_protocol_labels")
	return true
}

// SupplementaryAudioDescriptor is carried under the extension tag.
// Chapter: 6.4.11 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type SupplementaryAudioDescriptor struct {
	MixType                 bool
	EditorialClassification uint8
	HasLanguage             bool
	Language                LanguageCode
	PrivateData             []byte
}

func (d *SupplementaryAudioDescriptor) Tag() DescriptorTag { return DescriptorTagExtension }

func (d *SupplementaryAudioDescriptor) ExtensionTag() uint8 {
	return DescriptorTagExtensionSupplementaryAudio
}

func (d *SupplementaryAudioDescriptor) ClearContent() { *d = SupplementaryAudioDescriptor{} }

func (d *SupplementaryAudioDescriptor) SerializePayload(b *Buffer) {
	b.PutBool(d.MixType)
	b.PutBits(uint64(d.EditorialClassification), 5)
	b.PutReserved(1)
	b.PutBool(d.HasLanguage)
	if d.HasLanguage {
		b.PutLanguageCode(d.Language)
	}
	b.PutBytes(d.PrivateData)
}

func (d *SupplementaryAudioDescriptor) DeserializePayload(b *Buffer) {
	d.MixType = b.GetBool()
	d.EditorialClassification = uint8(b.GetBits(5))
	b.SkipReservedBits(1)
	d.HasLanguage = b.GetBool()
	if d.HasLanguage {
		d.Language = b.GetLanguageCode()
	}
	if n := b.RemainingReadBytes(); n > 0 {
		d.PrivateData = b.GetBytes(n)
	}
}

func (d *SupplementaryAudioDescriptor) BuildXML(e Element) {
	e.SetBoolAttribute("mix_type", d.MixType)
	e.SetIntAttribute("editorial_classification", int64(d.EditorialClassification), true)
	if d.HasLanguage {
		e.SetStringAttribute("language_code", d.Language.String())
	}
	if len(d.PrivateData) > 0 {
		e.AddHexaTextChild("private_data", d.PrivateData)
	}
}

func (d *SupplementaryAudioDescriptor) AnalyzeXML(e Element) bool {
	d.MixType, _ = e.BoolAttribute("mix_type")
	if v, ok := e.IntAttribute("editorial_classification"); ok {
		d.EditorialClassification = uint8(v)
	}
	if s, ok := e.StringAttribute("language_code"); ok {
		d.HasLanguage = true
		d.Language = NewLanguageCode(s)
	}
	d.PrivateData, _ = e.HexaTextChild("private_data")
	return true
}

// UnknownDescriptor carries the raw payload of a standard-range tag with no
// registered type.
type UnknownDescriptor struct {
	tag  DescriptorTag
	Data []byte
}

// NewUnknownDescriptor builds a raw descriptor for an arbitrary tag.
func NewUnknownDescriptor(t DescriptorTag, data []byte) *UnknownDescriptor {
	return &UnknownDescriptor{tag: t, Data: data}
}

func (d *UnknownDescriptor) Tag() DescriptorTag { return d.tag }

func (d *UnknownDescriptor) ClearContent() { d.Data = nil }

func (d *UnknownDescriptor) SerializePayload(b *Buffer) { b.PutBytes(d.Data) }

func (d *UnknownDescriptor) DeserializePayload(b *Buffer) {
	if n := b.RemainingReadBytes(); n > 0 {
		d.Data = b.GetBytes(n)
	}
}

func (d *UnknownDescriptor) BuildXML(e Element) {
	e.SetIntAttribute("tag", int64(d.tag), true)
	e.AddHexaTextChild("payload", d.Data)
}

func (d *UnknownDescriptor) AnalyzeXML(e Element) bool {
	v, ok := e.IntAttribute("tag")
	if !ok {
		return false
	}
	d.tag = DescriptorTag(v)
	d.Data, _ = e.HexaTextChild("payload")
	return true
}

// UserDefinedDescriptor carries the raw payload of a user-private tag
// (0x80-0xfe).
type UserDefinedDescriptor struct {
	tag  DescriptorTag
	Data []byte
}

// NewUserDefinedDescriptor builds a raw descriptor for a user-private tag.
func NewUserDefinedDescriptor(t DescriptorTag, data []byte) *UserDefinedDescriptor {
	return &UserDefinedDescriptor{tag: t, Data: data}
}

func (d *UserDefinedDescriptor) Tag() DescriptorTag { return d.tag }

func (d *UserDefinedDescriptor) ClearContent() { d.Data = nil }

func (d *UserDefinedDescriptor) SerializePayload(b *Buffer) { b.PutBytes(d.Data) }

func (d *UserDefinedDescriptor) DeserializePayload(b *Buffer) {
	if n := b.RemainingReadBytes(); n > 0 {
		d.Data = b.GetBytes(n)
	}
}

func (d *UserDefinedDescriptor) BuildXML(e Element) {
	e.SetIntAttribute("tag", int64(d.tag), true)
	e.AddHexaTextChild("payload", d.Data)
}

func (d *UserDefinedDescriptor) AnalyzeXML(e Element) bool {
	v, ok := e.IntAttribute("tag")
	if !ok {
		return false
	}
	d.tag = DescriptorTag(v)
	d.Data, _ = e.HexaTextChild("payload")
	return true
}
