package tscodec

import (
	"math"
	"time"
)

// DVB time fields: a 16-bit Modified Julian Date followed by 6 BCD digits
// (HHMMSS). Durations are 4 or 6 BCD digits (HHMM / HHMMSS).
// Annex C | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf

// GetMJDTime reads a 5-byte DVB date/time as a UTC time. The messy date
// computation follows the reference formula of the annex.
func (b *Buffer) GetMJDTime() time.Time {
	mjd := float64(b.GetUInt16())
	ytf := math.Floor((mjd - 15078.2) / 365.25)
	mtf := math.Floor((mjd - 14956.1 - math.Floor(ytf*365.25)) / 30.6001)
	mt := int(mtf)
	day := int(mjd - 14956 - math.Floor(ytf*365.25) - math.Floor(mtf*30.6001))

	k := 0
	if mt>>1 == 7 {
		k = 1
	}
	year := int(ytf) + k
	month := mt - 1 - k*12

	hour := b.GetSecondsBCD()
	minute := b.GetSecondsBCD()
	second := b.GetSecondsBCD()
	if b.readErr {
		return time.Time{}
	}
	return time.Date(1900+year, time.Month(month), day, hour, minute, second, 0, time.UTC)
}

// PutMJDTime writes a 5-byte DVB date/time.
func (b *Buffer) PutMJDTime(t time.Time) error {
	t = t.UTC()
	year := t.Year() - 1900
	month := t.Month()
	day := t.Day()

	l := 0
	if month <= time.February {
		l = 1
	}
	mjd := 14956 + day + int(float64(year-l)*365.25) + int(float64(int(month)+1+l*12)*30.6001)

	if err := b.PutUInt16(uint16(mjd)); err != nil {
		return err
	}
	hour, minute, second := t.Clock()
	b.PutSecondsBCD(hour)
	b.PutSecondsBCD(minute)
	return b.PutSecondsBCD(second)
}

// GetBCDDurationMinutes reads a 2-byte HHMM BCD duration.
func (b *Buffer) GetBCDDurationMinutes() time.Duration {
	h := b.GetSecondsBCD()
	m := b.GetSecondsBCD()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
}

// PutBCDDurationMinutes writes a 2-byte HHMM BCD duration.
func (b *Buffer) PutBCDDurationMinutes(d time.Duration) error {
	b.PutSecondsBCD(int(d.Hours()))
	return b.PutSecondsBCD(int(d.Minutes()) % 60)
}

// GetBCDDurationSeconds reads a 3-byte HHMMSS BCD duration.
func (b *Buffer) GetBCDDurationSeconds() time.Duration {
	h := b.GetSecondsBCD()
	m := b.GetSecondsBCD()
	s := b.GetSecondsBCD()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}

// PutBCDDurationSeconds writes a 3-byte HHMMSS BCD duration.
func (b *Buffer) PutBCDDurationSeconds(d time.Duration) error {
	b.PutSecondsBCD(int(d.Hours()))
	b.PutSecondsBCD(int(d.Minutes()) % 60)
	return b.PutSecondsBCD(int(d.Seconds()) % 60)
}
